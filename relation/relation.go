// Package relation treats a finite collection of (domain, range) pairs,
// each side possibly containing wildcards at any depth, as a partial
// function: it checks that the pairs are mutually consistent and produces
// a lookup that merges the ranges of every pair overlapping the query key.
package relation

import "relfunc/value"

// Pair maps a domain value to a range value. Either side may contain the
// wildcard sentinel at any depth.
type Pair struct {
	Domain value.Value
	Range  value.Value
}

// Relation is a finite ordered collection of pairs. Order carries no
// meaning; consistency is defined over unordered pairwise comparison.
type Relation []Pair

// Check verifies the relation denotes a partial function: no two pairs may
// have overlapping domains (wildcard-aware equality) with conflicting
// ranges. All distinct unordered pairs are compared, quadratic by design,
// and the first conflict found is returned as a ConsistencyError.
func Check(rel Relation) error {
	for i := range rel {
		for j := i + 1; j < len(rel); j++ {
			if value.Equal(rel[i].Domain, rel[j].Domain) && !value.Equal(rel[i].Range, rel[j].Range) {
				return &ConsistencyError{First: rel[i], Second: rel[j]}
			}
		}
	}

	return nil
}
