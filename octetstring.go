package krypt

/*
octetstring.go implements the ASN.1 OCTET STRING codec (tag 4),
grounded on the teacher's oct.go. The codec itself is the identity
transform; the interesting behaviour — indefinite-length
reassembly of a constructed OCTET STRING from same-tagged children —
lives in decode.go/encode.go, per spec.md §4.4's scenario 6.
*/

type octetStringCodec struct{}

func (octetStringCodec) Decode(raw []byte) (any, error) { return append([]byte(nil), raw...), nil }

func (octetStringCodec) Encode(sem any) ([]byte, error) {
	b, ok := sem.([]byte)
	if !ok {
		return nil, newSerializeError("OCTET STRING: expected []byte")
	}
	return append([]byte(nil), b...), nil
}

func init() { registerCodec(TagOctetString, octetStringCodec{}) }

// NewOctetString constructs an OCTET STRING Value (spec.md §6).
func NewOctetString(data []byte, opts ...TagOverride) *Value {
	raw, _ := octetStringCodec{}.Encode(data)
	return newTaggedPrimitive(TagOctetString, raw, opts)
}
