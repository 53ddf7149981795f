package krypt

/*
null.go implements the ASN.1 NULL codec (tag 5), grounded on the
teacher's null.go.
*/

// NullValue is the unit semantic value decoded NULL carries.
type NullValue struct{}

type nullCodec struct{}

func (nullCodec) Decode(raw []byte) (any, error) {
	if len(raw) != 0 {
		return nil, newParseError(errorNonEmptyNull.Error())
	}
	return NullValue{}, nil
}

func (nullCodec) Encode(sem any) ([]byte, error) {
	if sem != nil {
		if _, ok := sem.(NullValue); !ok {
			return nil, newSerializeError("NULL: expected NullValue")
		}
	}
	return []byte{}, nil
}

func init() { registerCodec(TagNull, nullCodec{}) }

// NewNull constructs a NULL Value (spec.md §6).
func NewNull(opts ...TagOverride) *Value { return newTaggedPrimitive(TagNull, []byte{}, opts) }
