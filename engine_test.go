package krypt

import "testing"

func TestParseTemplateIntegerRoundTrip(t *testing.T) {
	def := &TemplateDefinition{Codec: CodecPrimitive, Type: TagInteger, Name: "N"}
	var n int64

	raw := []byte{0x02, 0x01, 0x01} // INTEGER 1
	if _, err := ParseTemplateDef(raw, def, &n); err != nil {
		t.Fatalf("ParseTemplateDef: %v", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
}

func TestParseTemplateSequenceOfIntegerAndString(t *testing.T) {
	def := &TemplateDefinition{
		Codec: CodecSequence,
		Name:  "Pair",
		Layout: []*TemplateDefinition{
			{Codec: CodecPrimitive, Type: TagInteger, Name: "N"},
			{Codec: CodecPrimitive, Type: TagPrintableString, Name: "S"},
		},
	}
	type host struct {
		N int64
		S string
	}
	var h host

	raw := []byte{
		0x30, 0x07,
		0x02, 0x01, 0x01,
		0x13, 0x02, 'h', 'i',
	}
	if _, err := ParseTemplateDef(raw, def, &h); err != nil {
		t.Fatalf("ParseTemplateDef: %v", err)
	}
	if h.N != 1 || h.S != "hi" {
		t.Fatalf("got N=%d S=%q, want N=1 S=\"hi\"", h.N, h.S)
	}
}

func TestParseTemplateExplicitTag(t *testing.T) {
	zero := 0
	def := &TemplateDefinition{
		Codec: CodecPrimitive, Type: TagInteger, Name: "N",
		Tag: &zero, Class: ClassContextSpecific, Tagging: Explicit,
	}
	var n int64

	// [0] EXPLICIT INTEGER 5: constructed context tag 0 wrapping a
	// plain universal INTEGER.
	raw := []byte{0xA0, 0x03, 0x02, 0x01, 0x05}
	if _, err := ParseTemplateDef(raw, def, &n); err != nil {
		t.Fatalf("ParseTemplateDef: %v", err)
	}
	if n != 5 {
		t.Fatalf("n = %d, want 5", n)
	}
}

func TestParseTemplateImplicitTag(t *testing.T) {
	zero := 0
	def := &TemplateDefinition{
		Codec: CodecPrimitive, Type: TagInteger, Name: "N",
		Tag: &zero, Class: ClassContextSpecific, Tagging: Implicit,
	}
	var n int64

	// [0] IMPLICIT INTEGER 5: the universal tag is replaced outright,
	// content octets unchanged.
	raw := []byte{0x80, 0x01, 0x05}
	if _, err := ParseTemplateDef(raw, def, &n); err != nil {
		t.Fatalf("ParseTemplateDef: %v", err)
	}
	if n != 5 {
		t.Fatalf("n = %d, want 5", n)
	}
}

func TestParseTemplateOptionalFieldMissing(t *testing.T) {
	def := &TemplateDefinition{
		Codec: CodecSequence,
		Name:  "WithOptional",
		Layout: []*TemplateDefinition{
			{Codec: CodecPrimitive, Type: TagInteger, Name: "N"},
			{Codec: CodecPrimitive, Type: TagPrintableString, Name: "S", Optional: true},
		},
	}
	type host struct {
		N int64
		S string
	}
	var h host

	// Only the INTEGER is present; the optional PrintableString is absent.
	raw := []byte{0x30, 0x03, 0x02, 0x01, 0x07}
	if _, err := ParseTemplateDef(raw, def, &h); err != nil {
		t.Fatalf("ParseTemplateDef: %v", err)
	}
	if h.N != 7 {
		t.Fatalf("N = %d, want 7", h.N)
	}
	if h.S != "" {
		t.Fatalf("S = %q, want empty (left at zero value)", h.S)
	}
}

func TestParseTemplateDefaultApplied(t *testing.T) {
	def := &TemplateDefinition{
		Codec: CodecSequence,
		Name:  "WithDefault",
		Layout: []*TemplateDefinition{
			{Codec: CodecPrimitive, Type: TagInteger, Name: "N"},
			{Codec: CodecPrimitive, Type: TagPrintableString, Name: "S", Default: "fallback"},
		},
	}
	type host struct {
		N int64
		S string
	}
	var h host

	raw := []byte{0x30, 0x03, 0x02, 0x01, 0x02}
	if _, err := ParseTemplateDef(raw, def, &h); err != nil {
		t.Fatalf("ParseTemplateDef: %v", err)
	}
	if h.S != "fallback" {
		t.Fatalf("S = %q, want the declared default \"fallback\"", h.S)
	}
}

func TestParseTemplateIndefiniteOctetStringField(t *testing.T) {
	def := &TemplateDefinition{Codec: CodecPrimitive, Type: TagOctetString, Name: "Data"}
	var data []byte

	raw := []byte{
		0x24, 0x80,
		0x04, 0x02, 'a', 'b',
		0x04, 0x02, 'c', 'd',
		0x00, 0x00,
	}
	if _, err := ParseTemplateDef(raw, def, &data); err != nil {
		t.Fatalf("ParseTemplateDef: %v", err)
	}
	if string(data) != "abcd" {
		t.Fatalf("data = %q, want \"abcd\"", data)
	}
}

func TestParseTemplateMandatoryFieldMissingErrors(t *testing.T) {
	def := &TemplateDefinition{
		Codec: CodecSequence,
		Name:  "Strict",
		Layout: []*TemplateDefinition{
			{Codec: CodecPrimitive, Type: TagInteger, Name: "N"},
		},
	}
	type host struct{ N int64 }
	var h host

	raw := []byte{0x30, 0x00}
	if _, err := ParseTemplateDef(raw, def, &h); err == nil {
		t.Fatalf("expected error for missing mandatory field")
	}
}

func TestParseTemplateChoiceSelectsFirstMatch(t *testing.T) {
	def := &TemplateDefinition{
		Codec: CodecChoice,
		Name:  "Either",
		Alternatives: []*TemplateDefinition{
			{Codec: CodecPrimitive, Type: TagInteger, Name: "AsInt"},
			{Codec: CodecPrimitive, Type: TagPrintableString, Name: "AsString"},
		},
	}
	var c Choice

	raw := []byte{0x13, 0x02, 'h', 'i'}
	if _, err := ParseTemplateDef(raw, def, &c); err != nil {
		t.Fatalf("ParseTemplateDef: %v", err)
	}
	if c.Selected != "AsString" {
		t.Fatalf("Selected = %q, want AsString", c.Selected)
	}
	if c.Value.(string) != "hi" {
		t.Fatalf("Value = %#v, want \"hi\"", c.Value)
	}
}

func TestParseTemplateByRegisteredName(t *testing.T) {
	RegisterTemplate("engineTestGreeting", &TemplateDefinition{
		Codec: CodecPrimitive, Type: TagPrintableString, Name: "Greeting",
	})
	var greeting string

	raw := []byte{0x13, 0x02, 'h', 'i'}
	if _, err := ParseTemplate(raw, "engineTestGreeting", &greeting); err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	if greeting != "hi" {
		t.Fatalf("greeting = %q, want \"hi\"", greeting)
	}
}
