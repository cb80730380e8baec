package value

import (
	"testing"
)

func TestEqualScalars(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"equal text", Text("vanilla"), Text("vanilla"), true},
		{"differing text", Text("vanilla"), Text("ants"), false},
		{"equal int", Int(42), Int(42), true},
		{"differing int", Int(42), Int(7), false},
		{"mixed kinds", Text("42"), Int(42), false},

		// Wildcard compares equal to everything
		{"wildcard vs text", Wildcard(), Text("vanilla"), true},
		{"text vs wildcard", Text("vanilla"), Wildcard(), true},
		{"wildcard vs int", Wildcard(), Int(42), true},
		{"wildcard vs wildcard", Wildcard(), Wildcard(), true},
		{"wildcard vs record", Wildcard(), RecordOf(Fld("z", Int(1))), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Equal(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, result, tt.expected)
			}

			// Equality is symmetric
			if Equal(tt.b, tt.a) != tt.expected {
				t.Errorf("Equal(%s, %s) is not symmetric", tt.b, tt.a)
			}
		})
	}
}

func TestEqualComposites(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{
			"equal records",
			RecordOf(Fld("brand", Text("Ben")), Fld("zip", Int(12345))),
			RecordOf(Fld("brand", Text("Ben")), Fld("zip", Int(12345))),
			true,
		},
		{
			"differing leaf",
			RecordOf(Fld("brand", Text("Ben")), Fld("zip", Int(12345))),
			RecordOf(Fld("brand", Text("Ben")), Fld("zip", Int(54321))),
			false,
		},
		{
			"nested wildcard matches leaf",
			RecordOf(Fld("brand", Text("Ben")), Fld("zip", Wildcard())),
			RecordOf(Fld("brand", Text("Ben")), Fld("zip", Int(12345))),
			true,
		},
		{
			"differing field names",
			RecordOf(Fld("brand", Text("Ben"))),
			RecordOf(Fld("edition", Text("Ben"))),
			false,
		},
		{
			"differing arity",
			RecordOf(Fld("brand", Text("Ben"))),
			RecordOf(Fld("brand", Text("Ben")), Fld("zip", Int(1))),
			false,
		},
		{
			"equal tuples",
			TupleOf(Int(1), Text("a")),
			TupleOf(Int(1), Text("a")),
			true,
		},
		{
			"tuple with wildcard element",
			TupleOf(Int(1), Wildcard()),
			TupleOf(Int(1), Text("anything")),
			true,
		},
		{
			"tuple arity mismatch",
			TupleOf(Int(1)),
			TupleOf(Int(1), Int(2)),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Equal(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input    Value
		expected string
	}{
		{Wildcard(), "*"},
		{Text("vanilla"), "vanilla"},
		{Int(-7), "-7"},
		{TupleOf(Int(1), Wildcard()), "(1, *)"},
		{
			RecordOf(Fld("brand", Text("Ben")), Fld("zip", Wildcard())),
			"{brand: Ben, zip: *}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.input.String()
			if result != tt.expected {
				t.Errorf("String() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindWildcard, "wildcard"},
		{KindText, "text"},
		{KindInt, "int"},
		{KindTuple, "tuple"},
		{KindRecord, "record"},
		{Kind(0), "unknown"},
	}

	for _, tt := range tests {
		if result := tt.kind.String(); result != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), result, tt.expected)
		}
	}
}
