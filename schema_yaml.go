package krypt

/*
schema_yaml.go implements an alternate authoring surface for
TemplateDefinition trees: a YAML document decoded into the same
hand-authored schema shape spec.md §3 describes, never compiled from
an ASN.1 grammar (spec.md's explicit Non-goal). Grounded on
zoomoid-go-ipfix's yaml.go, which serializes/deserializes its own
schema-ish InformationElement records the same way.
*/

import (
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDef mirrors TemplateDefinition's shape for YAML (de)serialization,
// using string spellings for the enums a human author would write.
type yamlDef struct {
	Codec   string      `yaml:"codec"`
	Type    any         `yaml:"type,omitempty"`
	Name    string      `yaml:"name,omitempty"`
	Tag     *int        `yaml:"tag,omitempty"`
	Class   string      `yaml:"class,omitempty"`
	Tagging string      `yaml:"tagging,omitempty"`

	Optional bool `yaml:"optional,omitempty"`
	Default  any  `yaml:"default,omitempty"`

	Layout       []yamlDef `yaml:"layout,omitempty"`
	Alternatives []yamlDef `yaml:"alternatives,omitempty"`
	MinSize      int       `yaml:"minSize,omitempty"`
}

// Keys are matched case-insensitively with surrounding whitespace
// ignored (lc(trimS(...)) in toTemplateDefinition), so every key here
// must already be lowercase.
var yamlCodecNames = map[string]TemplateCodec{
	"primitive":  CodecPrimitive,
	"sequence":   CodecSequence,
	"set":        CodecSet,
	"sequenceof": CodecSequenceOf,
	"setof":      CodecSetOf,
	"template":   CodecTemplate,
	"any":        CodecAny,
	"choice":     CodecChoice,
}

var yamlClassNames = map[string]TagClass{
	"universal":       ClassUniversal,
	"application":     ClassApplication,
	"context":         ClassContextSpecific,
	"contextspecific": ClassContextSpecific,
	"private":         ClassPrivate,
}

// LoadSchema decodes a YAML document containing one or more named
// TemplateDefinition trees and registers each one (spec.md §4.6's
// registry). The document is a mapping of type name to schema node.
func LoadSchema(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc map[string]yamlDef
	if err := dec.Decode(&doc); err != nil {
		return newParseError("LoadSchema: " + err.Error())
	}

	for name, node := range doc {
		def, err := node.toTemplateDefinition()
		if err != nil {
			return err
		}
		RegisterTemplate(name, def)
	}
	return nil
}

func (y yamlDef) toTemplateDefinition() (*TemplateDefinition, error) {
	codec, ok := yamlCodecNames[lc(trimS(y.Codec))]
	if !ok {
		return nil, newParseError("LoadSchema: unknown codec kind " + y.Codec)
	}

	def := &TemplateDefinition{
		Codec:    codec,
		Type:     normalizeYAMLType(codec, y.Type),
		Name:     trimS(y.Name),
		Optional: y.Optional,
		Default:  y.Default,
		MinSize:  y.MinSize,
	}

	if y.Tag != nil {
		def.Tag = y.Tag
		def.Class = yamlClassNames[lc(trimS(y.Class))]
		if lc(trimS(y.Tagging)) == "explicit" {
			def.Tagging = Explicit
		}
	}

	for _, l := range y.Layout {
		sub, err := l.toTemplateDefinition()
		if err != nil {
			return nil, err
		}
		def.Layout = append(def.Layout, sub)
	}
	for _, a := range y.Alternatives {
		sub, err := a.toTemplateDefinition()
		if err != nil {
			return nil, err
		}
		def.Alternatives = append(def.Alternatives, sub)
	}
	return def, nil
}

// normalizeYAMLType coerces YAML's native int decoding (already an
// int for a PRIMITIVE tag literal) or a string type identifier into
// the any the rest of the engine expects from TemplateDefinition.Type.
func normalizeYAMLType(codec TemplateCodec, t any) any {
	if codec != CodecPrimitive {
		return t
	}
	switch v := t.(type) {
	case int:
		return v
	default:
		return t
	}
}
