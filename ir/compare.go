package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Object comparison is order-sensitive: two objects with the same
// bindings in different field order are unequal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareValues(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports deep, order-sensitive equality of two nodes.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case StringType:
		return 1
	case ArrayType:
		return 2
	case ObjectType:
		return 3
	}
	return 4
}

func compareObjects(a, b *Node) int {
	if d := cmp.Compare(len(a.Fields), len(b.Fields)); d != 0 {
		return d
	}
	for i := range a.Fields {
		if d := strings.Compare(a.Fields[i], b.Fields[i]); d != 0 {
			return d
		}
	}
	return compareValues(a, b)
}

func compareValues(a, b *Node) int {
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}
