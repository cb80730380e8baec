package relation

import (
	"relfunc/record"
	"relfunc/schema"
	"relfunc/value"
)

// AllWildcard returns the identity element of intersection for a shape:
// the wildcard sentinel at every scalar leaf, with the record and tuple
// structure preserved.
func AllWildcard(shape schema.Schema) value.Value {
	switch shape.Kind {
	case schema.KindTuple:
		items := make([]value.Value, len(shape.Elems))
		for i, e := range shape.Elems {
			items[i] = AllWildcard(e)
		}

		return value.TupleOf(items...)

	case schema.KindRecord:
		fields := make([]value.FieldValue, len(shape.Fields))
		for i, f := range shape.Fields {
			fields[i] = value.Fld(f.Name, AllWildcard(f.Shape))
		}

		return value.RecordOf(fields...)

	default:
		return value.Wildcard()
	}
}

// Intersect merges same-shaped values field by field. At each scalar leaf
// the values are folded starting from the wildcard: a wildcard input keeps
// the accumulator, a wildcard accumulator adopts the input, and two
// differing concrete values are a MergeConflictError. An empty input
// yields the all-wildcard value of the shape.
//
// Intersect trusts a prior successful Check; it does not re-derive
// consistency, the conflict error is a contract backstop.
func Intersect(shape schema.Schema, vals []value.Value) (value.Value, error) {
	switch {
	case shape.IsScalar():
		acc := value.Wildcard()

		for _, v := range vals {
			if v.IsWildcard() {
				continue
			}

			if !acc.IsWildcard() && !value.Equal(acc, v) {
				return value.Value{}, &MergeConflictError{Have: acc, Got: v}
			}

			acc = v
		}

		return acc, nil

	case shape.Kind == schema.KindTuple:
		items := make([]value.Value, len(shape.Elems))

		for i, elem := range shape.Elems {
			projected, err := projectItems(shape, vals, i)
			if err != nil {
				return value.Value{}, err
			}

			merged, err := Intersect(elem, projected)
			if err != nil {
				return value.Value{}, err
			}

			items[i] = merged
		}

		return value.TupleOf(items...), nil

	case shape.Kind == schema.KindRecord:
		fields := make([]value.FieldValue, len(shape.Fields))

		for i, f := range shape.Fields {
			projected, err := projectFields(shape, vals, i)
			if err != nil {
				return value.Value{}, err
			}

			merged, err := Intersect(f.Shape, projected)
			if err != nil {
				return value.Value{}, err
			}

			fields[i] = value.Fld(f.Name, merged)
		}

		return value.RecordOf(fields...), nil

	default:
		return value.Value{}, &record.UnsupportedTypeError{Kind: shape.Kind}
	}
}

// projectItems projects every input to tuple element i. A wildcard input
// projects to wildcards everywhere; anything else must be a tuple of the
// shape's arity.
func projectItems(shape schema.Schema, vals []value.Value, i int) ([]value.Value, error) {
	out := make([]value.Value, len(vals))

	for n, v := range vals {
		if v.IsWildcard() {
			out[n] = value.Wildcard()
			continue
		}

		if v.Kind != value.KindTuple || len(v.Items) != len(shape.Elems) {
			return nil, &MergeConflictError{Have: AllWildcard(shape), Got: v}
		}

		out[n] = v.Items[i]
	}

	return out, nil
}

// projectFields projects every input to record field i, by position.
func projectFields(shape schema.Schema, vals []value.Value, i int) ([]value.Value, error) {
	out := make([]value.Value, len(vals))

	for n, v := range vals {
		if v.IsWildcard() {
			out[n] = value.Wildcard()
			continue
		}

		if v.Kind != value.KindRecord || len(v.Fields) != len(shape.Fields) {
			return nil, &MergeConflictError{Have: AllWildcard(shape), Got: v}
		}

		out[n] = v.Fields[i].Value
	}

	return out, nil
}
