package schema

import "relfunc/value"

// OfValue infers the shape of an already-materialised value. Concrete
// scalars map to their scalar kind; wildcard leaves map to the text shape,
// which is a safe stand-in because merging and equality at scalar leaves
// never consult the scalar kind.
func OfValue(v value.Value) Schema {
	switch v.Kind {
	case value.KindInt:
		return Int()
	case value.KindTuple:
		elems := make([]Schema, len(v.Items))
		for i, item := range v.Items {
			elems[i] = OfValue(item)
		}

		return TupleOf(elems...)
	case value.KindRecord:
		fields := make([]Field, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = Field{Name: f.Name, Shape: OfValue(f.Value)}
		}

		return RecordOf(fields...)
	default:
		return Text()
	}
}
