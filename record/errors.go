package record

import (
	"fmt"
	"strings"

	"relfunc/internal/common"
	"relfunc/schema"
	"relfunc/value"
)

// ParseError reports a cell whose text cannot be converted to its declared
// scalar kind, or that matches none of a fixed choice set.
type ParseError struct {
	// Cell is the offending raw cell text.
	Cell string
	// Shape is the scalar shape the cell was parsed against.
	Shape schema.Schema
	// Allowed holds the choice literals when Shape is a choice kind.
	Allowed []value.Value
}

func (e *ParseError) Error() string {
	if !common.IsEmpty(e.Allowed) {
		parts := make([]string, len(e.Allowed))
		for i, a := range e.Allowed {
			parts[i] = a.String()
		}

		return fmt.Sprintf("cell %q is not in (%s)", e.Cell, strings.Join(parts, ", "))
	}

	return fmt.Sprintf("cell %q is not a valid %s", e.Cell, e.Shape.Kind)
}

// UnsupportedTypeError reports a shape kind the parser does not recognise
// at that position. It signals a schema configuration mistake, not bad data.
type UnsupportedTypeError struct {
	Kind schema.Kind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("don't know how to deal with shape kind %s", e.Kind)
}
