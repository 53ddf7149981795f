package krypt

/*
engine.go implements the template engine's match/parse/decode
dispatch table and the public ParseTemplate entry point described in
spec.md §4.6. It decodes the raw input through the generic decoder
(decode.go) first, then walks the resulting Value tree against a
TemplateDefinition, binding named fields onto a caller-supplied host
struct via reflection — the same reflect.Value plumbing the teacher
leans on in adapt.go/seq.go, but driven by an explicit schema instead
of struct-tag introspection.
*/

import (
	"math/big"
	"reflect"
	"time"
)

// matchResult is the four-valued outcome spec.md §4.6 assigns to
// match(): matched=1, not-present=-1 (missing optional), skipped with
// a default installed=-2, error=0.
type matchResult int

const (
	matchError          matchResult = 0
	matchMatched        matchResult = 1
	matchNotPresent      matchResult = -1
	matchSkippedDefault matchResult = -2
)

// ParseTemplate decodes data against the registered schema typeName
// and binds its fields onto host, a pointer to a struct (spec.md §6:
// `parse(bytes, type) → instance`).
func ParseTemplate(data []byte, typeName string, host any) (*TemplateValue, error) {
	observeTemplateParse(typeName)
	def, err := resolveTemplateType(typeName)
	if err != nil {
		return nil, err
	}
	return ParseTemplateDef(data, def, host)
}

// ParseTemplateDef is ParseTemplate with an already-resolved
// definition, for schemas the caller builds inline rather than
// registering by name. host must be a non-nil pointer whose pointee
// shape matches def: a struct for CodecSequence/CodecSet (fields are
// bound by name from def.Layout), a slice for CodecSequenceOf/
// CodecSetOf, a Choice for CodecChoice, and otherwise whatever Go type
// the element's codec or assignSemantic's conversions accept.
func ParseTemplateDef(data []byte, def *TemplateDefinition, host any) (*TemplateValue, error) {
	v, err := Decode(NewMemoryReader(data))
	if err != nil {
		return nil, err
	}

	hv := reflect.ValueOf(host)
	if hv.Kind() != reflect.Ptr || hv.IsNil() {
		return nil, newParseError("ParseTemplate: host must be a non-nil pointer")
	}
	dst := hv.Elem()
	if (def.Codec == CodecSequence || def.Codec == CodecSet) && dst.Kind() != reflect.Struct {
		return nil, newParseError("ParseTemplate: host must be a pointer to a struct for SEQUENCE/SET")
	}

	tv := &TemplateValue{Object: v.Object, Definition: def}
	if err := bindTop(v, def, dst); err != nil {
		return nil, err
	}
	tv.state = stateDecoded
	return tv, nil
}

// match compares v's header against what def expects (spec.md §4.6).
func match(v *Value, def *TemplateDefinition) matchResult {
	wantTag, wantClass := def.expectedTagClass()
	gotTag, gotClass := v.Tag(), v.Class()

	if def.Codec == CodecAny {
		return matchMatched
	}

	if gotTag == wantTag && gotClass == wantClass {
		return matchMatched
	}

	if def.Default != nil {
		return matchSkippedDefault
	}
	if def.Optional {
		return matchNotPresent
	}
	return matchError
}

// unwrapTagging peels an EXPLICIT wrapper (the outer header matches
// def's override, the inner TLV carries the type's own default tag)
// or validates an IMPLICIT override (the outer header already IS the
// overridden tag; the underlying codec still reads its value bytes),
// per spec.md §4.6.
func unwrapTagging(v *Value, def *TemplateDefinition) (*Value, error) {
	if !def.HasTagOverride() || def.Tagging == Implicit {
		return v, nil
	}
	// Explicit: the matched node must be constructed and carry
	// exactly one inner TLV.
	if len(v.Children) != 1 {
		return nil, newParseError("EXPLICIT " + def.Name + ": expected exactly one inner TLV, got " + itoa(len(v.Children)))
	}
	return v.Children[0], nil
}

// bindTop dispatches on def.Codec exactly per spec.md §4.6's table,
// writing the materialized result into dst (the host struct, or a
// single struct field for recursive calls).
func bindTop(v *Value, def *TemplateDefinition, dst reflect.Value) error {
	switch def.Codec {
	case CodecSequence, CodecSet:
		return bindSequence(v, def, dst)
	case CodecChoice:
		return bindChoice(v, def, dst)
	case CodecSequenceOf, CodecSetOf:
		return bindRepeated(v, def, dst)
	case CodecTemplate:
		return bindNestedTemplate(v, def, dst)
	case CodecAny:
		return bindAny(v, dst)
	default: // CodecPrimitive
		return bindPrimitive(v, def, dst)
	}
}

func bindPrimitive(v *Value, def *TemplateDefinition, dst reflect.Value) error {
	inner, err := unwrapTagging(v, def)
	if err != nil {
		return err
	}

	var sem any
	if inner.Kind == KindPrimitive && !def.HasTagOverride() {
		// UNIVERSAL tag, no override: reuse the generic decoder's own
		// memoized decode (spec.md §4.4 lazy decoding).
		sem, err = inner.Decoded()
	} else {
		// IMPLICIT/EXPLICIT override left this node tagged outside
		// UNIVERSAL (or the node is a non-UNIVERSAL opaque value to
		// begin with); the codec table entry is keyed on the schema's
		// own universal tag, not the wire tag actually observed.
		tag := def.Type.(int)
		codec := lookupCodec(tag)
		if codec == nil {
			return mkerrf("no primitive codec for tag ", itoa(tag))
		}
		sem, err = codec.Decode(contentBytes(inner))
	}
	if err != nil {
		return err
	}
	return assignSemantic(dst, sem)
}

// contentBytes returns v's content octets, reassembling them from
// children when v was decoded as a constructed encoding of a
// primitive type (spec.md §4.4 scenario 6: indefinite-length OCTET
// STRING reassembly). A flat node (KindPrimitive, or KindOpaque with
// no children) already carries its content directly.
func contentBytes(v *Value) []byte {
	if v.Kind != KindConstructive && len(v.Children) == 0 {
		return v.Object.Bytes
	}
	var out []byte
	for _, c := range v.Children {
		out = append(out, contentBytes(c)...)
	}
	return out
}

func bindAny(v *Value, dst reflect.Value) error {
	// ANY always matches and binds the raw TLV verbatim (spec.md
	// §4.6's dispatch table).
	return assignSemantic(dst, v)
}

func bindNestedTemplate(v *Value, def *TemplateDefinition, dst reflect.Value) error {
	inner, err := unwrapTagging(v, def)
	if err != nil {
		return err
	}
	subDef, err := resolveTemplateType(def.Type.(string))
	if err != nil {
		return err
	}

	target := dst
	if dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		target = dst.Elem()
	}
	return bindTop(inner, subDef, target)
}

// assignSemantic writes a decoded semantic value into a struct field,
// converting between the codec's native representation and common Go
// shapes (int64, string, []byte, etc.) where a direct assignment
// would otherwise fail. Fields typed `any` always succeed.
func assignSemantic(dst reflect.Value, sem any) error {
	sv := reflect.ValueOf(sem)

	if dst.Kind() == reflect.Interface {
		dst.Set(sv)
		return nil
	}
	if sv.Type().AssignableTo(dst.Type()) {
		dst.Set(sv)
		return nil
	}
	if sv.Type().ConvertibleTo(dst.Type()) {
		dst.Set(sv.Convert(dst.Type()))
		return nil
	}

	switch n := sem.(type) {
	case *big.Int:
		switch dst.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if !n.IsInt64() {
				return newParseError("INTEGER: value overflows destination field")
			}
			dst.SetInt(n.Int64())
			return nil
		}
	case time.Time:
		if dst.Type() == reflect.TypeOf(time.Time{}) {
			dst.Set(reflect.ValueOf(n))
			return nil
		}
	}

	return newParseError("cannot bind decoded " + reflect.TypeOf(sem).String() + " into field of type " + dst.Type().String())
}

// materialize decodes v against def without requiring a pre-typed
// host destination, for contexts like CHOICE where the host field is
// `any` rather than a declared struct type. Primitive and ANY
// alternatives materialize directly; composite alternatives require
// def.HostType to know what concrete Go type to allocate.
func materialize(v *Value, def *TemplateDefinition) (any, error) {
	switch def.Codec {
	case CodecPrimitive:
		inner, err := unwrapTagging(v, def)
		if err != nil {
			return nil, err
		}
		if inner.Kind == KindPrimitive && !def.HasTagOverride() {
			return inner.Decoded()
		}
		codec := lookupCodec(def.Type.(int))
		if codec == nil {
			return nil, mkerrf("no primitive codec for tag ", itoa(def.Type.(int)))
		}
		return codec.Decode(contentBytes(inner))
	case CodecAny:
		return v, nil
	default:
		if def.HostType == nil {
			return nil, newParseError(def.Name + ": composite alternative needs a HostType to materialize without a pre-typed host field")
		}
		ptr := reflect.New(def.HostType)
		if err := bindTop(v, def, ptr.Elem()); err != nil {
			return nil, err
		}
		return ptr.Elem().Interface(), nil
	}
}

// fieldByName finds an exported field on a struct reflect.Value by
// name, per spec.md §4.6's "records the TLV into the named field".
func fieldByName(v reflect.Value, name string) (reflect.Value, bool) {
	f := v.FieldByName(name)
	if !f.IsValid() || !f.CanSet() {
		return reflect.Value{}, false
	}
	return f, true
}
