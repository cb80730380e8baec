package value

import (
	"strconv"
	"strings"

	"relfunc/internal/common"
)

// Kind discriminates the variants a Value can hold.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindWildcard
	KindText
	KindInt
	KindTuple
	KindRecord

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindWildcard:
		return "wildcard"
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindTuple:
		return "tuple"
	case KindRecord:
		return "record"
	default:
		return common.UnknownStr
	}
}

// Value is a tagged variant: the wildcard sentinel, a concrete scalar, or a
// composite built from other Values. The zero Value is invalid; use the
// constructors. Values are immutable after construction and safe to share.
type Value struct {
	Kind Kind

	// Text is set when Kind is KindText.
	Text string
	// Int is set when Kind is KindInt.
	Int int64
	// Items is set when Kind is KindTuple.
	Items []Value
	// Fields is set when Kind is KindRecord, in declaration order.
	Fields []FieldValue
}

// FieldValue is one named field of a record Value.
type FieldValue struct {
	Name  string
	Value Value
}

// Wildcard returns the "match anything" sentinel.
func Wildcard() Value {
	return Value{Kind: KindWildcard}
}

// Text returns a concrete text scalar.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Int returns a concrete integer scalar.
func Int(n int64) Value {
	return Value{Kind: KindInt, Int: n}
}

// TupleOf returns a fixed-arity tuple of the given values.
func TupleOf(items ...Value) Value {
	return Value{Kind: KindTuple, Items: items}
}

// RecordOf returns a record with the given fields, kept in argument order.
func RecordOf(fields ...FieldValue) Value {
	return Value{Kind: KindRecord, Fields: fields}
}

// Fld pairs a field name with its value for use with RecordOf.
func Fld(name string, v Value) FieldValue {
	return FieldValue{Name: name, Value: v}
}

// IsWildcard returns true if v is the wildcard sentinel.
func (v Value) IsWildcard() bool {
	return v.Kind == KindWildcard
}

// Equal reports wildcard-aware structural equality: a wildcard on either
// side matches anything at that position, recursively. Two concrete values
// of different kinds never match.
func Equal(a, b Value) bool {
	if a.Kind == KindWildcard || b.Kind == KindWildcard {
		return true
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindText:
		return a.Text == b.Text
	case KindInt:
		return a.Int == b.Int
	case KindTuple:
		if len(a.Items) != len(b.Items) {
			return false
		}

		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}

		return true
	case KindRecord:
		if len(a.Fields) != len(b.Fields) {
			return false
		}

		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name {
				return false
			}

			if !Equal(a.Fields[i].Value, b.Fields[i].Value) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// String renders the value for error messages and dumps. The wildcard
// renders as "*", matching the reserved cell token.
func (v Value) String() string {
	switch v.Kind {
	case KindWildcard:
		return "*"
	case KindText:
		return v.Text
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindTuple:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = item.String()
		}

		return "(" + strings.Join(parts, ", ") + ")"
	case KindRecord:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = f.Name + ": " + f.Value.String()
		}

		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return common.UnknownStr
	}
}
