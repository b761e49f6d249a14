package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Numbers which parse as floats compare numerically, so 1 and 1.0 are
// equal. Otherwise numbers and strings compare by their text.
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
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.Unquoted(), b.Unquoted())
	case ArrayType, ObjectType:
		return compareValues(a, b)
	case NameValueType:
		if c := Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return Compare(a.Value, b.Value)
	}
	return 0
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < False < True < Number < String < Array < Object < NameValue
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case FalseType:
		return 1
	case TrueType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	case NameValueType:
		return 7
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	fa, errA := ParseFloat(a.Raw, 64)
	fb, errB := ParseFloat(b.Raw, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(fa, fb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a.Raw, b.Raw)
}

func compareValues(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
