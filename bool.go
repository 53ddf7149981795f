package krypt

/*
bool.go implements the ASN.1 BOOLEAN codec (tag 1), grounded on the
teacher's bool.go.
*/

type boolCodec struct{}

func (boolCodec) Decode(raw []byte) (any, error) {
	if len(raw) != 1 {
		return nil, newParseError("BOOLEAN: expected exactly one content octet")
	}
	// Any non-zero octet is accepted on parse (spec.md §4.3 table).
	return raw[0] != 0x00, nil
}

func (boolCodec) Encode(sem any) ([]byte, error) {
	b, ok := sem.(bool)
	if !ok {
		return nil, newSerializeError("BOOLEAN: expected bool")
	}
	if b {
		return []byte{0xFF}, nil
	}
	return []byte{0x00}, nil
}

func init() { registerCodec(TagBoolean, boolCodec{}) }

// NewBoolean constructs a BOOLEAN Value (spec.md §6).
func NewBoolean(v bool, opts ...TagOverride) *Value {
	raw, _ := boolCodec{}.Encode(v)
	return newTaggedPrimitive(TagBoolean, raw, opts)
}
