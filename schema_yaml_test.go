package krypt

import (
	"strings"
	"testing"
)

func TestLoadSchemaRegistersAndParses(t *testing.T) {
	doc := `
yamlPair:
  codec: sequence
  name: Pair
  layout:
    - codec: primitive
      type: 2
      name: N
    - codec: primitive
      type: 19
      name: S
`
	if err := LoadSchema(strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadSchema: %v", err)
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
	if _, err := ParseTemplate(raw, "yamlPair", &h); err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	if h.N != 1 || h.S != "hi" {
		t.Fatalf("got N=%d S=%q, want N=1 S=\"hi\"", h.N, h.S)
	}
}

func TestLoadSchemaRejectsUnknownFields(t *testing.T) {
	doc := `
bad:
  codec: primitive
  type: 2
  bogusField: 1
`
	if err := LoadSchema(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected error for unknown YAML field")
	}
}

func TestLoadSchemaRejectsUnknownCodec(t *testing.T) {
	doc := `
bad2:
  codec: not-a-real-codec
  type: 2
`
	if err := LoadSchema(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected error for unknown codec name")
	}
}
