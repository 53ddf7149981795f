package krypt

/*
encode.go implements the generic encoder described in spec.md §4.5,
grounded on the teacher's writeTLV/encodeTLV in tlv.go and ber.go.
*/

// EncodeOption customizes a single Encode call.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	indefinite bool
}

// WithIndefinite forces constructed output to use the indefinite
// length form (spec.md §4.1/§4.5), terminated by an EOC marker.
func WithIndefinite() EncodeOption { return func(c *encodeConfig) { c.indefinite = true } }

// Encode writes v's TLV encoding to dst (spec.md §6's public
// `encode(value, sink)`).
func Encode(v *Value, dst Writable, opts ...EncodeOption) error {
	debugEnter("Encode")
	cfg := &encodeConfig{}
	for _, o := range opts {
		o(cfg)
	}
	b, err := encodeValue(v, cfg)
	if err != nil {
		observeEncode(err)
		debugExit("Encode", err)
		return err
	}
	_, err = dst.Write(b)
	observeEncode(err)
	debugExit("Encode", err)
	return err
}

// ToBytes renders v's TLV encoding directly to a byte slice.
func ToBytes(v *Value, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{}
	for _, o := range opts {
		o(cfg)
	}
	b, err := encodeValue(v, cfg)
	observeEncode(err)
	return b, err
}

func encodeValue(v *Value, cfg *encodeConfig) ([]byte, error) {
	// Fast path: nothing invalidated since decode, emit the original
	// bytes verbatim (spec.md §4.5, the round-trip-fidelity contract).
	if v.Kind != KindConstructive && v.Object.Header.cached() && v.Object.Bytes != nil {
		return v.Object.FullBytes(), nil
	}

	switch v.Kind {
	case KindPrimitive:
		return encodePrimitiveValue(v)
	case KindOpaque:
		return encodeOpaqueValue(v, cfg)
	default:
		return encodeConstructiveValue(v, cfg)
	}
}

func encodePrimitiveValue(v *Value) ([]byte, error) {
	raw := v.Object.Bytes
	if v.hasDecoded {
		codec := lookupCodec(v.Object.Header.Tag)
		if codec == nil {
			return nil, newSerializeError("no codec for tag " + itoa(v.Object.Header.Tag))
		}
		var err error
		raw, err = codec.Encode(v.decoded)
		if err != nil {
			return nil, err
		}
	}
	v.Object.Header.SetLength(len(raw))
	out := make([]byte, 0, v.Object.Header.HeaderLen()+len(raw))
	out = append(out, v.Object.Header.Bytes()...)
	out = append(out, raw...)
	return out, nil
}

func encodeOpaqueValue(v *Value, cfg *encodeConfig) ([]byte, error) {
	if len(v.Children) == 0 {
		v.Object.Header.SetLength(len(v.Object.Bytes))
		out := make([]byte, 0, v.Object.Header.HeaderLen()+len(v.Object.Bytes))
		out = append(out, v.Object.Header.Bytes()...)
		out = append(out, v.Object.Bytes...)
		return out, nil
	}
	return encodeConstructiveValue(v, cfg)
}

func encodeConstructiveValue(v *Value, cfg *encodeConfig) ([]byte, error) {
	childBytes := make([][]byte, len(v.Children))
	total := 0
	for i, c := range v.Children {
		b, err := encodeValue(c, cfg)
		if err != nil {
			return nil, err
		}
		childBytes[i] = b
		total += len(b)
	}

	indefinite := cfg.indefinite || v.Object.Header.Infinite
	h := &v.Object.Header
	// Keep the cached header octets while they still describe this
	// content, so an untouched decoded value re-encodes byte-for-byte.
	keep := h.cached() && h.Constructed && h.Infinite == indefinite && (indefinite || h.Length == total)
	if !keep {
		if indefinite {
			h.SetLength(-1)
		} else {
			h.SetLength(total)
		}
		h.SetConstructed(true)
	}

	out := make([]byte, 0, v.Object.Header.HeaderLen()+total+2)
	out = append(out, v.Object.Header.Bytes()...)
	for _, b := range childBytes {
		out = append(out, b...)
	}
	if indefinite {
		out = append(out, 0x00, 0x00) // end-of-contents marker
	}
	return out, nil
}
