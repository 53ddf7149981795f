package krypt

/*
integer.go implements the ASN.1 INTEGER and ENUMERATED codecs (tags 2
and 10), which share one encoding per spec.md §4.3's table. Grounded
on the teacher's int.go/enum.go, collapsed to a single
arbitrary-precision type backed by math/big so both tags reuse the
same two's-complement minimal-length codec.
*/

import "math/big"

type intCodec struct{}

// decodeTwosComplement parses a minimal-length two's-complement,
// most-significant-byte-first integer (spec.md §4.3).
func decodeTwosComplement(raw []byte) (*big.Int, error) {
	if len(raw) == 0 {
		return nil, newParseError("INTEGER: empty content")
	}
	negative := raw[0]&0x80 != 0

	n := new(big.Int)
	if !negative {
		n.SetBytes(raw)
		return n, nil
	}

	// Two's complement negative: invert bits then add one, over the
	// full-width magnitude.
	inv := make([]byte, len(raw))
	for i, b := range raw {
		inv[i] = ^b
	}
	n.SetBytes(inv)
	n.Add(n, big.NewInt(1))
	n.Neg(n)
	return n, nil
}

// encodeTwosComplement renders n as minimal-length two's-complement,
// most-significant-byte-first.
func encodeTwosComplement(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0x00}
	}
	if n.Sign() > 0 {
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	// Negative: two's complement of the smallest byte-width that fits.
	mag := new(big.Int).Neg(n)
	bitLen := mag.BitLen()
	byteLen := (bitLen + 7) / 8
	// Need an extra byte if the magnitude's top bit would collide
	// with the sign bit once complemented (e.g. -128 fits in one
	// byte, -129 needs two).
	full := new(big.Int).Lsh(big.NewInt(1), uint(byteLen*8))
	twos := new(big.Int).Sub(full, mag)
	b := twos.Bytes()
	for len(b) < byteLen {
		b = append([]byte{0x00}, b...)
	}
	if len(b) == 0 || b[0]&0x80 == 0 {
		b = append([]byte{0xFF}, b...)
	}
	return b
}

func (intCodec) Decode(raw []byte) (any, error) { return decodeTwosComplement(raw) }

func (intCodec) Encode(sem any) ([]byte, error) {
	switch v := sem.(type) {
	case *big.Int:
		return encodeTwosComplement(v), nil
	case int:
		return encodeTwosComplement(big.NewInt(int64(v))), nil
	case int64:
		return encodeTwosComplement(big.NewInt(v)), nil
	default:
		return nil, newSerializeError("INTEGER: unsupported Go type for semantic value")
	}
}

func init() {
	registerCodec(TagInteger, intCodec{})
	registerCodec(TagEnumerated, intCodec{})
}

// NewInteger constructs an INTEGER Value from any integer-like Go
// value (spec.md §6).
func NewInteger[T int | int64 | *big.Int](x T, opts ...TagOverride) (*Value, error) {
	raw, err := intCodec{}.Encode(any(x))
	if err != nil {
		return nil, err
	}
	return newTaggedPrimitive(TagInteger, raw, opts), nil
}

// NewEnumerated constructs an ENUMERATED Value (spec.md §4.3: shares
// the INTEGER codec, distinguished only by its UNIVERSAL tag).
func NewEnumerated(x int, opts ...TagOverride) *Value {
	raw, _ := intCodec{}.Encode(big.NewInt(int64(x)))
	return newTaggedPrimitive(TagEnumerated, raw, opts)
}
