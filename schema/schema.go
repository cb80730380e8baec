package schema

import (
	"strings"

	"relfunc/internal/common"
	"relfunc/value"
)

// Kind discriminates the shape variants a Schema node can describe.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindText
	KindInt
	KindChoice
	KindTuple
	KindRecord

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindChoice:
		return "choice"
	case KindTuple:
		return "tuple"
	case KindRecord:
		return "record"
	default:
		return common.UnknownStr
	}
}

// Schema describes a nested record shape: a tree whose leaves are scalar
// kinds (text, integer, fixed choice set) and whose internal nodes are
// named-field records or fixed-arity tuples. Schemas are supplied by the
// caller ahead of parsing, never inferred, and outlive all parsed values.
type Schema struct {
	Kind Kind

	// Choices holds the allowed literals when Kind is KindChoice, in
	// declaration order. Each literal is a concrete text or int scalar.
	Choices []value.Value

	// Elems holds the component shapes when Kind is KindTuple.
	Elems []Schema

	// Fields holds the record fields when Kind is KindRecord, in
	// declaration order.
	Fields []Field
}

// Field is one named field of a record shape.
type Field struct {
	Name  string
	Shape Schema
}

// Text returns the text scalar shape.
func Text() Schema {
	return Schema{Kind: KindText}
}

// Int returns the base-10 signed integer scalar shape.
func Int() Schema {
	return Schema{Kind: KindInt}
}

// ChoiceOf returns a fixed one-of-N-literals shape. Each literal keeps its
// own scalar kind; cells are converted per candidate in declaration order.
func ChoiceOf(literals ...value.Value) Schema {
	return Schema{Kind: KindChoice, Choices: literals}
}

// TupleOf returns a fixed-arity product of the given shapes.
func TupleOf(elems ...Schema) Schema {
	return Schema{Kind: KindTuple, Elems: elems}
}

// RecordOf returns a named-field record shape, fields kept in argument order.
func RecordOf(fields ...Field) Schema {
	return Schema{Kind: KindRecord, Fields: fields}
}

// IsScalar returns true for leaf shapes parsed from a single cell.
func (s Schema) IsScalar() bool {
	switch s.Kind {
	case KindText, KindInt, KindChoice:
		return true
	default:
		return false
	}
}

// IsComposite returns true for record and tuple shapes.
func (s Schema) IsComposite() bool {
	return s.Kind == KindTuple || s.Kind == KindRecord
}

// String renders the shape for error messages, e.g.
// "record{zip_code: int, flavour: choice[vanilla, ants]}".
func (s Schema) String() string {
	switch s.Kind {
	case KindText, KindInt:
		return s.Kind.String()
	case KindChoice:
		parts := make([]string, len(s.Choices))
		for i, c := range s.Choices {
			parts[i] = c.String()
		}

		return "choice[" + strings.Join(parts, ", ") + "]"
	case KindTuple:
		parts := make([]string, len(s.Elems))
		for i, e := range s.Elems {
			parts[i] = e.String()
		}

		return "tuple(" + strings.Join(parts, ", ") + ")"
	case KindRecord:
		parts := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			parts[i] = f.Name + ": " + f.Shape.String()
		}

		return "record{" + strings.Join(parts, ", ") + "}"
	default:
		return common.UnknownStr
	}
}
