package krypt

/*
oid.go implements the ASN.1 OBJECT IDENTIFIER codec (tag 6), grounded
on the teacher's oid.go. RELATIVE-OID (tag 13) is one of spec.md's
reserved/undefined tags and is intentionally left without a codec.
*/

import (
	"math/big"
	"strconv"
)

// ObjectIdentifier is an ordered sequence of nonnegative arcs.
type ObjectIdentifier []*big.Int

func (oid ObjectIdentifier) String() string {
	parts := make([]string, len(oid))
	for i, a := range oid {
		parts[i] = a.String()
	}
	return join(parts, ".")
}

type oidCodec struct{}

// decodeOIDVarints parses the whole content as a sequence of
// base-128 (high-bit-continuation) arc values, each possibly
// spanning multiple octets.
func decodeOIDVarints(raw []byte) ([]*big.Int, error) {
	var vals []*big.Int
	i := 0
	for i < len(raw) {
		arc := new(big.Int)
		for {
			if i >= len(raw) {
				return nil, newParseError(errorTruncatedContent.Error())
			}
			b := raw[i]
			i++
			arc.Lsh(arc, 7)
			arc.Or(arc, big.NewInt(int64(b&0x7F)))
			if b&0x80 == 0 {
				break
			}
		}
		vals = append(vals, arc)
	}
	return vals, nil
}

func (oidCodec) Decode(raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, newParseError(errorEmptyOID.Error())
	}

	vals, err := decodeOIDVarints(raw)
	if err != nil {
		return nil, err
	}

	first := vals[0]
	var arc1, arc2 *big.Int
	switch {
	case first.Cmp(big.NewInt(40)) < 0:
		arc1, arc2 = big.NewInt(0), first
	case first.Cmp(big.NewInt(80)) < 0:
		arc1 = big.NewInt(1)
		arc2 = new(big.Int).Sub(first, big.NewInt(40))
	default:
		arc1 = big.NewInt(2)
		arc2 = new(big.Int).Sub(first, big.NewInt(80))
	}

	arcs := append([]*big.Int{arc1, arc2}, vals[1:]...)
	return ObjectIdentifier(arcs), nil
}

func (oidCodec) Encode(sem any) ([]byte, error) {
	oid, ok := sem.(ObjectIdentifier)
	if !ok {
		return nil, newSerializeError("OBJECT IDENTIFIER: expected ObjectIdentifier")
	}
	if len(oid) < 2 {
		return nil, newSerializeError(errorEmptyOID.Error())
	}

	arc1 := oid[0].Int64()
	arc2 := oid[1]
	if arc1 < 0 || arc1 > 2 {
		return nil, newSerializeError(errorBadOIDFirstArc.Error())
	}
	if arc1 < 2 && arc2.Cmp(big.NewInt(40)) >= 0 {
		return nil, newSerializeError(errorBadOIDSecondArc.Error())
	}

	out := make([]byte, 0, len(oid)+2)
	first := new(big.Int).Mul(big.NewInt(arc1), big.NewInt(40))
	first.Add(first, arc2)
	out = append(out, encodeOIDArc(first)...)

	for _, arc := range oid[2:] {
		out = append(out, encodeOIDArc(arc)...)
	}
	return out, nil
}

func encodeOIDArc(arc *big.Int) []byte {
	if arc.Sign() == 0 {
		return []byte{0x00}
	}
	v := new(big.Int).Set(arc)
	var septets []byte
	for v.Sign() > 0 {
		b := new(big.Int).And(v, big.NewInt(0x7F)).Int64()
		septets = append(septets, byte(b))
		v.Rsh(v, 7)
	}
	out := make([]byte, len(septets))
	for i, s := range septets {
		v := s
		if i != 0 {
			v |= 0x80
		}
		out[len(septets)-1-i] = v
	}
	return out
}

func init() { registerCodec(TagOID, oidCodec{}) }

// NewObjectIdentifier constructs an OBJECT IDENTIFIER Value from a
// dotted-arc sequence of nonnegative integers (spec.md §6).
func NewObjectIdentifier(arcs []int64, opts ...TagOverride) (*Value, error) {
	oid := make(ObjectIdentifier, len(arcs))
	for i, a := range arcs {
		oid[i] = big.NewInt(a)
	}
	raw, err := oidCodec{}.Encode(oid)
	if err != nil {
		return nil, err
	}
	return newTaggedPrimitive(TagOID, raw, opts), nil
}

// ParseOID parses a dotted string ("1.2.840.113549") into an
// ObjectIdentifier. Leading/trailing whitespace around each arc is
// tolerated, so a hand-typed "1. 2.840 .113549" still parses.
func ParseOID(s string) (ObjectIdentifier, error) {
	parts := split(trimS(s), ".")
	oid := make(ObjectIdentifier, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(trimS(p), 10, 64)
		if err != nil {
			return nil, newParseError("OBJECT IDENTIFIER: invalid arc " + p)
		}
		oid[i] = big.NewInt(n)
	}
	return oid, nil
}
