package relation

import (
	"relfunc/internal/common"
	"relfunc/schema"
	"relfunc/value"
)

// Func looks up a query key in a validated relation. The result merges the
// ranges of every pair whose domain overlaps the key; with no overlapping
// pair it is the all-wildcard value, never an error.
type Func func(key value.Value) (value.Value, error)

// ToFunc turns a finite relation into a lookup function. The relation is
// copied and checked for consistency eagerly, before any callable is
// returned; a ConsistencyError blocks construction entirely. The result
// shape is inferred from the first pair's range.
func ToFunc(rel Relation) (Func, error) {
	collected := make(Relation, len(rel))
	copy(collected, rel)

	first, ok := common.First(collected)
	if !ok {
		return nil, ErrEmptyRelation
	}

	if err := Check(collected); err != nil {
		return nil, err
	}

	shape := schema.OfValue(first.Range)

	return func(key value.Value) (value.Value, error) {
		var matches []value.Value

		for _, p := range collected {
			if value.Equal(p.Domain, key) {
				matches = append(matches, p.Range)
			}
		}

		return Intersect(shape, matches)
	}, nil
}
