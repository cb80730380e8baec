package schema

import (
	"fmt"
	"strings"

	"relfunc/internal/diagnostic"
	"relfunc/value"
)

// Validate performs structural validation of a shape declaration. It walks
// the whole tree and reports every finding, it does not stop at the first.
func Validate(s Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	validateShape(res, s, "")

	return res
}

func validateShape(res *diagnostic.Diagnostics, s Schema, path string) {
	switch s.Kind {
	case KindText, KindInt:
		return

	case KindChoice:
		if len(s.Choices) == 0 {
			res.AddError("empty_choice", "choice set has no literals", path)
			return
		}

		seen := map[string]struct{}{}

		for i, c := range s.Choices {
			if c.Kind != value.KindText && c.Kind != value.KindInt {
				res.AddError("invalid_choice_literal",
					fmt.Sprintf("choice literal %d has kind %s, only text and int literals are allowed", i, c.Kind),
					path)

				continue
			}

			key := c.Kind.String() + ":" + c.String()
			if _, ok := seen[key]; ok {
				res.AddWarning("duplicate_choice_literal",
					fmt.Sprintf("choice literal %q appears more than once", c.String()),
					path)
			}

			seen[key] = struct{}{}
		}

	case KindTuple:
		if len(s.Elems) == 0 {
			res.AddError("empty_tuple", "tuple shape has no components", path)
			return
		}

		for i, e := range s.Elems {
			validateShape(res, e, joinPath(path, fmt.Sprintf("[%d]", i)))
		}

	case KindRecord:
		if len(s.Fields) == 0 {
			res.AddError("empty_record", "record shape has no fields", path)
			return
		}

		seen := map[string]struct{}{}

		for _, f := range s.Fields {
			fieldPath := joinPath(path, f.Name)

			if f.Name == "" {
				res.AddError("empty_field_name", "record field has an empty name", path)
				continue
			}

			if strings.TrimSpace(f.Name) != f.Name {
				res.AddError("whitespace_field_name",
					fmt.Sprintf("field name %q carries surrounding whitespace", f.Name),
					path)
			}

			if _, ok := seen[f.Name]; ok {
				res.AddError("duplicate_field",
					fmt.Sprintf("field %q is declared more than once", f.Name),
					path)
			}

			seen[f.Name] = struct{}{}

			validateShape(res, f.Shape, fieldPath)
		}

	default:
		res.AddError("unknown_kind",
			fmt.Sprintf("shape kind %s is not recognised", s.Kind),
			path)
	}
}

func joinPath(base, seg string) string {
	if base == "" {
		return seg
	}

	return base + "." + seg
}
