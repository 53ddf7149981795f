package krypt

/*
sequence.go implements the iterative SEQUENCE/SET layout walk and the
SEQUENCE OF/SET OF repetition described in spec.md §4.6. Grounded on
the teacher's seq.go/set.go constructed-value iteration, adapted to
walk a hand-authored Layout instead of reflected struct fields.
*/

import "reflect"

// bindSequence walks v's children against def.Layout in declaration
// order, matching each child TLV against the next sub-definition
// (spec.md §4.6: "iterates its Layout in order, matching each
// incoming TLV against the next sub-definition"). SET shares the
// same walk; canonical member ordering on encode is left to the
// caller (spec.md §9 Open Question).
func bindSequence(v *Value, def *TemplateDefinition, dst reflect.Value) error {
	debugSeqSet(def.Name)
	matchedCount := 0
	ci := 0
	for _, sub := range def.Layout {
		var child *Value
		if ci < len(v.Children) {
			child = v.Children[ci]
		}

		if child == nil {
			if sub.Default != nil || sub.Optional {
				if err := applyAbsent(sub, dst); err != nil {
					return err
				}
				continue
			}
			return newParseError("SEQUENCE/SET " + def.Name + ": missing mandatory field " + sub.Name)
		}

		res := match(child, sub)
		switch res {
		case matchMatched:
			ci++
			matchedCount++
			if sub.Name != "" {
				if f, ok := fieldByName(dst, sub.Name); ok {
					if err := bindTop(child, sub, f); err != nil {
						return err
					}
				}
			}
		case matchSkippedDefault, matchNotPresent:
			if err := applyAbsent(sub, dst); err != nil {
				return err
			}
		default:
			return newParseError("SEQUENCE/SET " + def.Name + ": field " + sub.Name + " did not match and has no default")
		}
	}

	if ci != len(v.Children) {
		return newParseError("SEQUENCE/SET " + def.Name + ": trailing unmatched TLVs")
	}
	if matchedCount < def.MinSize {
		return newParseError("SEQUENCE/SET " + def.Name + ": matched fewer fields than MinSize requires")
	}
	return nil
}

// applyAbsent installs a sub-definition's Default value (if any) into
// its host field, leaving the field at its zero value when the field
// is simply Optional and absent (spec.md §4.6/§8).
func applyAbsent(sub *TemplateDefinition, dst reflect.Value) error {
	if sub.Default == nil || sub.Name == "" {
		return nil
	}
	f, ok := fieldByName(dst, sub.Name)
	if !ok {
		return nil
	}
	return assignSemantic(f, sub.Default)
}

// bindRepeated binds SEQUENCE OF/SET OF: every child TLV is matched
// against the same inner element definition and appended to the host
// slice field (spec.md §4.6).
func bindRepeated(v *Value, def *TemplateDefinition, dst reflect.Value) error {
	if dst.Kind() != reflect.Slice {
		return newParseError("SEQUENCE OF/SET OF " + def.Name + ": host field must be a slice")
	}

	elemDef, err := repeatedElementDef(def)
	if err != nil {
		return err
	}

	out := reflect.MakeSlice(dst.Type(), 0, len(v.Children))
	for _, child := range v.Children {
		if res := match(child, elemDef); res != matchMatched {
			return newParseError("SEQUENCE OF/SET OF " + def.Name + ": element did not match its definition")
		}
		elem := reflect.New(dst.Type().Elem()).Elem()
		if err := bindTop(child, elemDef, elem); err != nil {
			return err
		}
		out = reflect.Append(out, elem)
	}
	dst.Set(out)
	return nil
}

// repeatedElementDef resolves the element definition a SEQUENCE
// OF/SET OF node repeats: either an inline primitive (Type holds the
// UNIVERSAL tag, Layout/Alternatives empty) or a named template.
func repeatedElementDef(def *TemplateDefinition) (*TemplateDefinition, error) {
	switch t := def.Type.(type) {
	case string:
		return resolveTemplateType(t)
	case int:
		return &TemplateDefinition{Codec: CodecPrimitive, Type: t, Name: def.Name}, nil
	default:
		return nil, newParseError("SEQUENCE OF/SET OF " + def.Name + ": Type must name a UNIVERSAL tag or a registered template")
	}
}
