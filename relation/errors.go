package relation

import (
	"errors"
	"fmt"

	"relfunc/value"
)

// ErrEmptyRelation reports a relation with zero pairs: there is no range
// value to infer a result shape from, so no function can be built.
var ErrEmptyRelation = errors.New("relation has no pairs, cannot infer a result shape")

// ConsistencyError reports two pairs whose domains overlap under
// wildcard-aware equality while their ranges conflict. Such a relation
// does not denote a partial function.
type ConsistencyError struct {
	First  Pair
	Second Pair
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s and %s are compatible (overlap) but their respective mappings %s and %s conflict",
		e.First.Domain, e.Second.Domain, e.First.Range, e.Second.Range)
}

// MergeConflictError reports two differing concrete values met at the same
// leaf during intersection. It indicates either an inconsistent relation
// that slipped past Check or a shape mismatch among the merged values.
type MergeConflictError struct {
	Have value.Value
	Got  value.Value
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("cannot merge %s with %s", e.Have, e.Got)
}
