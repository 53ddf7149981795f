package krypt

/*
template.go implements the template definition and template value
types from spec.md §3. The teacher's adapt.go derives an equivalent
schema implicitly, at Marshal/Unmarshal time, by reflecting over Go
struct tags (`asn1:"tag:0,explicit"`); spec.md instead wants an
explicit, hand-authored TemplateDefinition object ("The system
consumes hand-authored schemas expressed through the
template-definition interface" — Non-goal: no schema compilation from
struct tags or ASN.1 source). This module keeps the teacher's tagging
vocabulary (Options-style Explicit/Implicit, tag/class override) but
expresses it as data instead of reflected struct metadata.
*/

import "reflect"

// TemplateCodec names the shape a TemplateDefinition matches
// (spec.md §3/§4.6).
type TemplateCodec int

const (
	CodecPrimitive TemplateCodec = iota
	CodecSequence
	CodecSet
	CodecSequenceOf
	CodecSetOf
	CodecTemplate
	CodecAny
	CodecChoice
)

// Tagging selects IMPLICIT or EXPLICIT tagging for a Tag override
// (spec.md §3, §4.6).
type Tagging int

const (
	Implicit Tagging = iota
	Explicit
)

// TemplateDefinition is a hand-authored schema node (spec.md §3).
// Exactly one of the following applies depending on Codec:
//
//   - CodecPrimitive: Type holds the UNIVERSAL tag number.
//   - CodecTemplate, CodecSequenceOf, CodecSetOf: Type holds a type
//     identifier resolvable via the template registry (registry.go).
//   - CodecChoice: Alternatives holds the ordered list of candidate
//     definitions.
//   - CodecSequence, CodecSet: Layout holds the ordered sub-fields.
type TemplateDefinition struct {
	Codec TemplateCodec
	Type  any // int (PRIMITIVE universal tag) | string (type identifier)
	Name  string

	Tag     *int // explicit tag/class override; nil => UNIVERSAL default
	Class   TagClass
	Tagging Tagging

	Optional bool
	Default  any // Default != nil implies Optional (spec.md §3 invariant)

	Layout       []*TemplateDefinition // SEQUENCE / SET
	Alternatives []*TemplateDefinition // CHOICE
	MinSize      int                   // SEQUENCE / SET: minimum Layout entries that must match a TLV (defaults not counted)

	// HostType names the concrete Go type a composite alternative
	// materializes into when no pre-typed host field already pins one
	// down — CHOICE alternatives being the case that needs it, since a
	// Choice.Value field is `any` rather than a declared struct type.
	HostType reflect.Type
}

// HasTagOverride reports whether the schema declares an explicit
// tag/class override rather than deferring to the UNIVERSAL default.
func (d *TemplateDefinition) HasTagOverride() bool { return d.Tag != nil }

// expectedTagClass returns the (tag, class) a TLV must present to
// match this definition, defaulting to the UNIVERSAL codec's own tag
// when the schema is silent (spec.md §4.6 "match").
func (d *TemplateDefinition) expectedTagClass() (tag int, class TagClass) {
	if d.HasTagOverride() {
		return *d.Tag, d.Class
	}
	switch d.Codec {
	case CodecPrimitive:
		return d.Type.(int), ClassUniversal
	case CodecSequence, CodecSequenceOf:
		return TagSequence, ClassUniversal
	case CodecSet, CodecSetOf:
		return TagSet, ClassUniversal
	default:
		return invalidTag, ClassUniversal
	}
}

// templateState is the Fresh -> Parsed -> Decoded state machine
// spec.md §4.6 assigns to a TemplateValue.
type templateState int

const (
	stateFresh templateState = iota
	stateParsed
	stateDecoded
)

// TemplateValue lifts an Object into the schema world (spec.md §3).
type TemplateValue struct {
	Object     Object
	Definition *TemplateDefinition
	state      templateState

	// decoded and children are not filled in by ParseTemplate /
	// ParseTemplateDef, which bind their results onto the caller's
	// host value instead; both stay at their zero values.
	decoded any

	children []*TemplateValue
}

// State reports Fresh/Parsed/Decoded (spec.md §4.6); exported for
// tests and introspection.
func (t *TemplateValue) State() string {
	switch t.state {
	case stateFresh:
		return "Fresh"
	case stateParsed:
		return "Parsed"
	default:
		return "Decoded"
	}
}
