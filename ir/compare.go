package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
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
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case TimeType, DateType:
		return a.Time.Compare(b.Time)
	case DecimalType:
		return a.Decimal.Cmp(b.Decimal)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank orders types: Null < Bool < Number < String < Time < Date <
// Decimal < Array < Object.
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case TimeType:
		return 4
	case DateType:
		return 5
	case DecimalType:
		return 6
	case ArrayType:
		return 7
	case ObjectType:
		return 8
	default:
		return 9
	}
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	return cmp.Compare(numFloat(a), numFloat(b))
}

func numFloat(y *Node) float64 {
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return 0
}

func compareArrays(a, b *Node) int {
	for i := range a.Values {
		if i >= len(b.Values) {
			return 1
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	if len(a.Values) < len(b.Values) {
		return -1
	}
	return 0
}

func compareObjects(a, b *Node) int {
	for i := range a.Fields {
		if i >= len(b.Fields) {
			return 1
		}
		if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	if len(a.Fields) < len(b.Fields) {
		return -1
	}
	return 0
}
