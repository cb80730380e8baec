package csvio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"relfunc/record"
	"relfunc/relation"
	"relfunc/schema"
	"relfunc/value"
)

// Loader drives the record parser over every row of a row-set.
type Loader struct {
	r     *Reader
	shape schema.Schema
}

// NewLoader returns a Loader parsing rows of r against the given shape.
func NewLoader(r io.Reader, shape schema.Schema) *Loader {
	return &Loader{r: NewReader(r), shape: shape}
}

// Next parses and returns the next typed record, or io.EOF after the last
// row. One row is consumed per call.
func (l *Loader) Next() (value.Value, error) {
	row, err := l.r.Next()
	if err != nil {
		return value.Value{}, err
	}

	return record.ParseRecord(row, l.shape)
}

// Load materialises every record of the row-set.
func Load(r io.Reader, shape schema.Schema) ([]value.Value, error) {
	loader := NewLoader(r, shape)

	var out []value.Value

	for {
		v, err := loader.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}
}

// LoadFile materialises every record of a CSV file.
func LoadFile(path string, shape schema.Schema) ([]value.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer f.Close()

	out, err := Load(f, shape)
	if err != nil {
		return nil, fmt.Errorf("data file %s: %w", path, err)
	}

	return out, nil
}

// LoadRelation reads (domain, range) pairs off a row-set by parsing every
// row against the tuple of the two shapes: both sides pull their columns
// out of the same shared row.
func LoadRelation(r io.Reader, domain, rng schema.Schema) (relation.Relation, error) {
	pairShape := schema.TupleOf(domain, rng)

	vals, err := Load(r, pairShape)
	if err != nil {
		return nil, err
	}

	rel := make(relation.Relation, len(vals))
	for i, v := range vals {
		rel[i] = relation.Pair{Domain: v.Items[0], Range: v.Items[1]}
	}

	return rel, nil
}
