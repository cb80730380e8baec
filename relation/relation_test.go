package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relfunc/value"
)

func zRec(v value.Value) value.Value {
	return value.RecordOf(value.Fld("z", v))
}

func TestCheckDisjointDomains(t *testing.T) {
	rel := Relation{
		{Domain: zRec(value.Int(1)), Range: value.Text("A")},
		{Domain: zRec(value.Int(2)), Range: value.Text("B")},
	}

	assert.NoError(t, Check(rel))
}

func TestCheckConflictingPair(t *testing.T) {
	rel := Relation{
		{Domain: zRec(value.Int(1)), Range: value.Text("A")},
		{Domain: zRec(value.Int(1)), Range: value.Text("B")},
	}

	err := Check(rel)
	require.Error(t, err)

	var conflict *ConsistencyError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, rel[0], conflict.First)
	assert.Equal(t, rel[1], conflict.Second)
	assert.Contains(t, err.Error(), "conflict")
}

func TestCheckOverlappingDomainsAgreeingRanges(t *testing.T) {
	rel := Relation{
		{Domain: zRec(value.Int(1)), Range: value.Text("A")},
		{Domain: zRec(value.Int(1)), Range: value.Text("A")},
	}

	assert.NoError(t, Check(rel))
}

func TestCheckWildcardDomainOverlap(t *testing.T) {
	// Wildcard domain overlaps every concrete domain, so ranges must agree
	consistent := Relation{
		{Domain: zRec(value.Wildcard()), Range: value.Text("A")},
		{Domain: zRec(value.Int(1)), Range: value.Text("A")},
	}
	assert.NoError(t, Check(consistent))

	inconsistent := Relation{
		{Domain: zRec(value.Wildcard()), Range: value.Text("A")},
		{Domain: zRec(value.Int(1)), Range: value.Text("B")},
	}
	assert.Error(t, Check(inconsistent))
}

func TestCheckWildcardRangeOverlapsConcrete(t *testing.T) {
	// A wildcard range overlaps any concrete range, so no conflict
	rel := Relation{
		{Domain: zRec(value.Int(1)), Range: zRec(value.Wildcard())},
		{Domain: zRec(value.Int(1)), Range: zRec(value.Int(5))},
	}

	assert.NoError(t, Check(rel))
}

func TestCheckOrderIrrelevant(t *testing.T) {
	a := Pair{Domain: zRec(value.Wildcard()), Range: value.Text("A")}
	b := Pair{Domain: zRec(value.Int(1)), Range: value.Text("B")}

	assert.Error(t, Check(Relation{a, b}))
	assert.Error(t, Check(Relation{b, a}))
}

func TestCheckEmptyAndSingleton(t *testing.T) {
	assert.NoError(t, Check(nil))
	assert.NoError(t, Check(Relation{{Domain: zRec(value.Int(1)), Range: value.Text("A")}}))
}
