package krypt

/*
choice.go implements CHOICE alternative resolution (spec.md §4.6):
alternatives are tried in declaration order and the first one whose
header matches wins. Grounded on the teacher's Choice transport type
in choice.go, generalized from a Go-type-keyed union to the schema's
named-alternative list.
*/

import "reflect"

// Choice holds the outcome of a resolved CHOICE: which alternative
// matched and its decoded value, bound onto a host field whose Go
// type is Choice (spec.md §4.6, §3 GLOSSARY "CHOICE").
type Choice struct {
	Selected string
	Value    any
}

// bindChoice tries each of def.Alternatives in order against v,
// selecting the first that matches (spec.md §4.6: "CHOICE: match is
// tried against each alternative in the order declared; the first
// alternative whose match succeeds is selected").
func bindChoice(v *Value, def *TemplateDefinition, dst reflect.Value) error {
	debugChoice(def.Name)
	for _, alt := range def.Alternatives {
		if match(v, alt) != matchMatched {
			continue
		}

		sem, err := materialize(v, alt)
		if err != nil {
			return err
		}

		c := Choice{Selected: alt.Name, Value: sem}
		return assignSemantic(dst, c)
	}

	if def.Default != nil {
		return assignSemantic(dst, def.Default)
	}
	if def.Optional {
		return nil
	}
	return newParseError("CHOICE " + def.Name + ": no alternative matched")
}
