// Package record parses rows of named text cells into wildcard-capable
// typed values, directed by an explicit shape description.
//
// Parsing is recursive over the shape: tuples flatten several shapes over
// one shared row, records pull scalar fields out of the row by column name
// and substitute the wildcard for absent columns, and nested record fields
// are entered regardless of row presence.
package record

import (
	"fmt"
	"strconv"

	"relfunc/schema"
	"relfunc/value"
)

// WildcardToken is the reserved cell text denoting "match anything".
const WildcardToken = "*"

// Row is one logical data line: a mapping from column name to raw cell
// text. Column names must carry no surrounding whitespace; the row-set
// loader enforces this before rows reach the parser.
type Row map[string]string

// ParseCell converts one raw text cell into a scalar value of the target
// shape, or into the wildcard sentinel when the cell is the wildcard token.
//
// Choice shapes convert the cell per candidate literal, using that
// literal's own scalar kind, and accept the first converted result equal
// to its literal; declaration order decides ties.
func ParseCell(cell string, shape schema.Schema) (value.Value, error) {
	if cell == WildcardToken {
		return value.Wildcard(), nil
	}

	switch shape.Kind {
	case schema.KindText:
		return value.Text(cell), nil

	case schema.KindInt:
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return value.Value{}, &ParseError{Cell: cell, Shape: shape}
		}

		return value.Int(n), nil

	case schema.KindChoice:
		for _, lit := range shape.Choices {
			converted, ok := convertAs(cell, lit.Kind)
			if !ok {
				continue
			}

			if value.Equal(converted, lit) {
				return converted, nil
			}
		}

		return value.Value{}, &ParseError{Cell: cell, Shape: shape, Allowed: shape.Choices}

	default:
		return value.Value{}, &UnsupportedTypeError{Kind: shape.Kind}
	}
}

// convertAs converts a cell with the kind of a single choice candidate.
func convertAs(cell string, kind value.Kind) (value.Value, bool) {
	switch kind {
	case value.KindText:
		return value.Text(cell), true
	case value.KindInt:
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return value.Value{}, false
		}

		return value.Int(n), true
	default:
		return value.Value{}, false
	}
}

// ParseRecord builds the full nested value for a composite shape from one
// row. Scalar fields absent from the row become the wildcard sentinel;
// every tuple component is parsed independently off the same row, which
// allows flattening several record shapes over one shared set of columns.
//
// A scalar shape at this level is an UnsupportedTypeError: scalars only
// occur as record fields, where the field name selects their cell.
func ParseRecord(row Row, shape schema.Schema) (value.Value, error) {
	switch shape.Kind {
	case schema.KindTuple:
		items := make([]value.Value, len(shape.Elems))

		for i, elem := range shape.Elems {
			v, err := ParseRecord(row, elem)
			if err != nil {
				return value.Value{}, fmt.Errorf("tuple element %d: %w", i, err)
			}

			items[i] = v
		}

		return value.TupleOf(items...), nil

	case schema.KindRecord:
		fields := make([]value.FieldValue, len(shape.Fields))

		for i, f := range shape.Fields {
			var (
				v   value.Value
				err error
			)

			if f.Shape.IsComposite() {
				v, err = ParseRecord(row, f.Shape)
			} else if cell, ok := row[f.Name]; ok {
				v, err = ParseCell(cell, f.Shape)
			} else {
				v = value.Wildcard()
			}

			if err != nil {
				return value.Value{}, fmt.Errorf("field %q: %w", f.Name, err)
			}

			fields[i] = value.Fld(f.Name, v)
		}

		return value.RecordOf(fields...), nil

	default:
		return value.Value{}, &UnsupportedTypeError{Kind: shape.Kind}
	}
}
