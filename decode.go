package krypt

/*
decode.go implements the generic decoder described in spec.md §4.4,
grounded on the teacher's gen.go/constr.go TLV-tree construction,
generalized to spec.md's Value variant.
*/

import "time"

// DecodeOption customizes a single Decode call (spec.md §2 "Generic
// decoder"), the functional-options idiom the teacher applies to
// Marshal/Unmarshal in runtime.go.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	rule Rule
}

// Rule distinguishes BER from DER on decode: DER additionally rejects
// indefinite lengths and non-minimal length encodings (spec.md §6: "round-trips unmodified
// DER"). Encoding rule CER from the teacher's repertoire has no home
// in spec.md and is dropped (see DESIGN.md).
type Rule int

const (
	BER Rule = iota
	DER
)

// WithRule selects the encoding rule strictness applied during
// decode (default BER).
func WithRule(r Rule) DecodeOption { return func(c *decodeConfig) { c.rule = r } }

// Decode reads one TLV from src and returns the resulting Value tree
// (spec.md §6's public `decode(source) → Value`).
func Decode(src Readable, opts ...DecodeOption) (*Value, error) {
	debugEnter("Decode")
	start := time.Now()
	cfg := &decodeConfig{rule: BER}
	for _, o := range opts {
		o(cfg)
	}
	v, err := decodeValue(src, cfg)
	observeDecode(start, err)
	debugExit("Decode", err)
	return v, err
}

func decodeValue(src Readable, cfg *decodeConfig) (*Value, error) {
	h, err := decodeHeader(src)
	if err != nil {
		return nil, err
	}

	if cfg.rule == DER {
		if err := derCheckHeader(src, h); err != nil {
			return nil, err
		}
	}

	switch {
	case h.Class != ClassUniversal:
		return decodeOpaque(src, h, cfg)
	case !h.Constructed:
		return decodePrimitive(src, h)
	default:
		return decodeConstructive(src, h, cfg)
	}
}

// derCheckHeader enforces the length rules DER adds on top of BER:
// definite length only, in its minimal encoding (spec.md §6).
func derCheckHeader(src Readable, h Header) error {
	if h.Infinite {
		return newParseErrorAt(src, "DER: indefinite length is not permitted")
	}
	if string(h.lengthBytes) != string(appendDERLength(nil, h.Length)) {
		return newParseErrorAt(src, "DER: length is not minimally encoded")
	}
	return nil
}

func decodePrimitive(src Readable, h Header) (*Value, error) {
	raw := make([]byte, h.Length)
	if err := readFull(src, raw); err != nil {
		return nil, err
	}
	kind := KindPrimitive
	if reservedTags[h.Tag] {
		// UNIVERSAL but no codec defined: keep the bytes as Opaque.
		kind = KindOpaque
	}
	return &Value{Kind: kind, Object: Object{Header: h, Bytes: raw}}, nil
}

func decodeOpaque(src Readable, h Header, cfg *decodeConfig) (*Value, error) {
	v := &Value{Kind: KindOpaque, Object: Object{Header: h}}
	if !h.Constructed {
		raw := make([]byte, h.Length)
		if err := readFull(src, raw); err != nil {
			return nil, err
		}
		v.Object.Bytes = raw
		return v, nil
	}
	// Constructed but non-UNIVERSAL: still assemble children so the
	// caller can walk them, but leave interpretation to the caller
	// (spec.md §3: "children remain unparsed until the user supplies
	// an interpretation").
	children, err := decodeChildren(src, h, cfg)
	if err != nil {
		return nil, err
	}
	v.Children = children
	return v, nil
}

func decodeConstructive(src Readable, h Header, cfg *decodeConfig) (*Value, error) {
	if reservedTags[h.Tag] {
		// UNIVERSAL but no codec defined: treat like Opaque so the
		// caller still gets the byte-identity fallback (spec.md
		// §4.3: "generic decoder falls back to an identity
		// byte-sequence representation").
		return decodeOpaqueConstructed(src, h, cfg)
	}

	children, err := decodeChildren(src, h, cfg)
	if err != nil {
		return nil, err
	}

	if h.Infinite && h.Tag != TagSequence && h.Tag != TagSet {
		if err := checkIndefiniteChildTags(src, h.Tag, children); err != nil {
			return nil, err
		}
	}

	return &Value{Kind: KindConstructive, Object: Object{Header: h}, Children: children}, nil
}

func decodeOpaqueConstructed(src Readable, h Header, cfg *decodeConfig) (*Value, error) {
	children, err := decodeChildren(src, h, cfg)
	if err != nil {
		return nil, err
	}
	return &Value{Kind: KindOpaque, Object: Object{Header: h}, Children: children}, nil
}

// checkIndefiniteChildTags enforces spec.md §4.4: "For indefinite
// primitive values (e.g. a constructed OCTET STRING), children must
// all carry the same universal tag as the outer form."
func checkIndefiniteChildTags(src Readable, outerTag int, children []*Value) error {
	for _, c := range children {
		if c.Kind == KindPrimitive && c.Object.Header.Tag != outerTag {
			return newParseErrorAt(src, errorMismatchedIndefiniteChildren.Error())
		}
	}
	return nil
}

// decodeChildren reads child TLVs from the constructed value octets
// of h, either until exactly h.Length bytes are consumed (definite)
// or until an EOC (tag 0, length 0) is seen at this nesting level
// (indefinite), per spec.md §4.4.
func decodeChildren(src Readable, h Header, cfg *decodeConfig) ([]*Value, error) {
	if h.Infinite {
		return decodeChildrenIndefinite(src, cfg)
	}

	bounded := &boundedReader{r: src, remaining: h.Length}
	var children []*Value
	for bounded.remaining > 0 {
		child, err := decodeValue(bounded, cfg)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func decodeChildrenIndefinite(src Readable, cfg *decodeConfig) ([]*Value, error) {
	var children []*Value
	for {
		h, err := decodeHeader(src)
		if err != nil {
			return nil, err
		}
		if h.Class == ClassUniversal && h.Tag == 0 && !h.Constructed && h.Length == 0 {
			return children, nil // end-of-contents marker consumed
		}

		var child *Value
		switch {
		case h.Class != ClassUniversal:
			child, err = decodeOpaqueFromHeader(src, h, cfg)
		case !h.Constructed:
			child, err = decodePrimitive(src, h)
		default:
			child, err = decodeConstructive(src, h, cfg)
		}
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func decodeOpaqueFromHeader(src Readable, h Header, cfg *decodeConfig) (*Value, error) {
	return decodeOpaque(src, h, cfg)
}

// boundedReader limits reads to a fixed remaining byte budget, so
// nested decodeValue calls cannot read past their parent's declared
// content length.
type boundedReader struct {
	r         Readable
	remaining int
}

func (b *boundedReader) Read(buf []byte) (int, error) {
	if b.remaining <= 0 {
		return 0, errEOFSentinel
	}
	if len(buf) > b.remaining {
		buf = buf[:b.remaining]
	}
	n, err := b.r.Read(buf)
	b.remaining -= n
	return n, err
}

var errEOFSentinel = newParseError("read past declared content length")
