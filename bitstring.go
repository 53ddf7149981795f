package krypt

/*
bitstring.go implements the ASN.1 BIT STRING codec (tag 3), grounded
on the teacher's bs.go.
*/

// BitStringValue is the semantic value of a decoded BIT STRING: the
// data bytes plus the count of unused trailing bits in the final
// octet (spec.md §4.3: "first octet = unused_bits (0..7)").
type BitStringValue struct {
	Bytes     []byte
	UnusedBits int
}

type bitStringCodec struct{}

func (bitStringCodec) Decode(raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, newParseError("BIT STRING: empty content (missing unused-bits octet)")
	}
	unused := int(raw[0])
	if unused < 0 || unused > 7 {
		return nil, newParseError(errorBadBitStringUnused.Error())
	}
	data := raw[1:]
	if unused != 0 && len(data) == 0 {
		return nil, newParseError(errorBadBitStringEmpty.Error())
	}
	return BitStringValue{Bytes: append([]byte(nil), data...), UnusedBits: unused}, nil
}

func (bitStringCodec) Encode(sem any) ([]byte, error) {
	bs, ok := sem.(BitStringValue)
	if !ok {
		return nil, newSerializeError("BIT STRING: expected BitStringValue")
	}
	if bs.UnusedBits < 0 || bs.UnusedBits > 7 {
		return nil, newSerializeError(errorBadBitStringUnused.Error())
	}
	if bs.UnusedBits != 0 && len(bs.Bytes) == 0 {
		return nil, newSerializeError(errorBadBitStringEmpty.Error())
	}
	out := make([]byte, 0, 1+len(bs.Bytes))
	out = append(out, byte(bs.UnusedBits))
	out = append(out, bs.Bytes...)
	return out, nil
}

func init() { registerCodec(TagBitString, bitStringCodec{}) }

// NewBitString constructs a BIT STRING Value (spec.md §6).
func NewBitString(data []byte, unusedBits int, opts ...TagOverride) (*Value, error) {
	raw, err := bitStringCodec{}.Encode(BitStringValue{Bytes: data, UnusedBits: unusedBits})
	if err != nil {
		return nil, err
	}
	return newTaggedPrimitive(TagBitString, raw, opts), nil
}
