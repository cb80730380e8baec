// Package csvio supplies the row-set side of the pipeline: it tokenises
// CSV input into named-cell rows and drives the record parser over them,
// producing a lazy, forward-only stream of typed values.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"relfunc/record"
)

// MalformedRowError reports a header column name carrying leading or
// trailing whitespace. Detected before any row is parsed and fatal for
// the whole row-set.
type MalformedRowError struct {
	Column string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("no whitespace allowed in column name %q", e.Column)
}

// Reader reads one named-cell row per data line. The first CSV record is
// the header; its names key the cells of every following row.
type Reader struct {
	cr     *csv.Reader
	header []string
}

// NewReader returns a Reader over r. Field counts are enforced against
// the header width by the underlying csv reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{cr: csv.NewReader(r)}
}

// Next returns the next row, or io.EOF after the last one. The stream is
// forward-only and non-restartable.
func (r *Reader) Next() (record.Row, error) {
	if r.header == nil {
		header, err := r.cr.Read()
		if err != nil {
			return nil, err
		}

		for _, name := range header {
			if strings.TrimSpace(name) != name {
				return nil, &MalformedRowError{Column: name}
			}
		}

		r.header = header
	}

	cells, err := r.cr.Read()
	if err != nil {
		return nil, err
	}

	row := make(record.Row, len(r.header))
	for i, name := range r.header {
		row[name] = cells[i]
	}

	return row, nil
}
