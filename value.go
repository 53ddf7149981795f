package krypt

/*
value.go implements the tagged-variant Value node described in
spec.md §3: Primitive | Constructive | Opaque. The teacher favors a
flat struct with a discriminant over a deep class hierarchy (see
spec.md §9's "Deep/virtual inheritance ... collapses to a single
tagged variant"); this module follows that shape directly instead of
three separate Go types plus an interface, since Go's zero-cost
struct embedding makes the single-struct form both simpler and exactly
as fast.
*/

// Kind discriminates the three shapes a Value can take.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindConstructive
	KindOpaque
)

// Value is a node in the decoded (or synthesized) TLV tree.
//
//   - KindPrimitive:    Object.Bytes holds the content octets; the
//     semantic value is materialized lazily by Decoded and
//     Object.Bytes is retained so re-encoding can reuse the original
//     bytes unchanged.
//   - KindConstructive: Children holds the ordered sub-Values and
//     Object.Bytes stays nil, since re-encoding walks Children.
//   - KindOpaque:       a non-UNIVERSAL class or reserved UNIVERSAL
//     tag; a primitive encoding keeps its untouched content bytes in
//     Object.Bytes, while a constructed one has its Children decoded
//     generically, with no interpretation of their meaning.
type Value struct {
	Kind     Kind
	Object   Object
	Children []*Value

	decoded  any
	hasDecoded bool
}

// Tag returns the receiver's UNIVERSAL (or opaque) tag number.
func (v *Value) Tag() int { return v.Object.Header.Tag }

// Class returns the receiver's tag class.
func (v *Value) Class() TagClass { return v.Object.Header.Class }

// NewPrimitive builds a KindPrimitive Value from already-encoded
// content bytes and an explicit tag and class. The per-type
// constructors (NewBoolean, NewInteger, ...) are the ones that default
// to the type's UNIVERSAL tag and class (spec.md §6 "Value
// constructors per universal type").
func NewPrimitive(universalTag int, class TagClass, raw []byte) *Value {
	h := NewHeader(class, universalTag, false)
	h.SetLength(len(raw))
	return &Value{Kind: KindPrimitive, Object: Object{Header: h, Bytes: raw}}
}

// NewConstructive builds a KindConstructive Value from already-built
// children.
func NewConstructive(tag int, class TagClass, children ...*Value) *Value {
	h := NewHeader(class, tag, true)
	return &Value{Kind: KindConstructive, Object: Object{Header: h}, Children: children}
}

// TagOverride customizes the tag/class a per-type constructor (e.g.
// NewBoolean, NewInteger) assigns to its Value, per spec.md §6:
// "Value constructors per universal type, accepting (payload, [tag,
// tag_class]), defaulting tag to the type's universal tag and class
// to UNIVERSAL".
type TagOverride func(*Header)

// WithTag overrides the tag number a constructor assigns.
func WithTag(tag int) TagOverride { return func(h *Header) { h.SetTag(tag) } }

// WithClass overrides the tag class a constructor assigns.
func WithClass(c TagClass) TagOverride { return func(h *Header) { h.SetClass(c) } }

func newTaggedPrimitive(universalTag int, raw []byte, opts []TagOverride) *Value {
	v := NewPrimitive(universalTag, ClassUniversal, raw)
	for _, o := range opts {
		o(&v.Object.Header)
	}
	return v
}

// Decoded returns the memoized semantic value for a KindPrimitive
// node, materializing it via the codec table on first access
// (spec.md §4.4 "Lazy decoding"). It returns an error if called on a
// non-primitive node or a tag with no codec — callers that don't know
// the node's shape should check Kind first.
func (v *Value) Decoded() (any, error) {
	if v.Kind != KindPrimitive {
		return nil, mkerr("Value.Decoded: not a primitive node")
	}
	if v.hasDecoded {
		return v.decoded, nil
	}
	codec := lookupCodec(v.Object.Header.Tag)
	if codec == nil {
		return nil, mkerrf("no codec for tag ", itoa(v.Object.Header.Tag))
	}
	sem, err := codec.Decode(v.Object.Bytes)
	if err != nil {
		return nil, err
	}
	v.decoded = sem
	v.hasDecoded = true
	return sem, nil
}

// SetDecoded installs a semantic value directly, invalidating the raw
// byte cache so the next encode recomputes it from the new value
// (spec.md §3: "user mutation of decoded invalidates bytes").
func (v *Value) SetDecoded(sem any) {
	v.decoded = sem
	v.hasDecoded = true
	v.Object.Bytes = nil
	v.Object.Header.invalidate()
}
