package ir

import (
	"cmp"
	"slices"
	"strings"
)

// typeOrder ranks types for Compare: null, bool, number, string, array,
// object.
var typeOrder = [...]int{
	NullType:   0,
	BoolType:   1,
	NumberType: 2,
	StringType: 3,
	ArrayType:  4,
	ObjectType: 5,
}

func typeRank(t Type) int {
	if t < 0 || int(t) >= len(typeOrder) {
		return len(typeOrder)
	}
	return typeOrder[t]
}

// Compare orders two trees. nil sorts before everything, integers sort
// before floats whatever their values, and objects are compared as sets
// of key/value pairs, so field order does not matter.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(typeRank(a.Type), typeRank(b.Type)); c != 0 {
		return c
	}
	switch a.Type {
	case BoolType:
		return cmp.Compare(boolInt(a.Bool), boolInt(b.Bool))
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return slices.CompareFunc(a.Values, b.Values, Compare)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same JSON value, including the
// int/float kind of every number.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func compareNumbers(a, b *Node) int {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return cmp.Compare(*a.Int64, *b.Int64)
	case a.Float64 != nil && b.Float64 != nil:
		return cmp.Compare(*a.Float64, *b.Float64)
	case a.Int64 != nil:
		return -1
	case b.Int64 != nil:
		return 1
	case a.Float64 != nil:
		return -1
	case b.Float64 != nil:
		return 1
	}
	return 0
}

func sortedFields(y *Node) []int {
	idx := make([]int, len(y.Fields))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int {
		return strings.Compare(y.Fields[i].String, y.Fields[j].String)
	})
	return idx
}

func compareObjects(a, b *Node) int {
	ia, ib := sortedFields(a), sortedFields(b)
	for k := range min(len(ia), len(ib)) {
		if c := strings.Compare(a.Fields[ia[k]].String, b.Fields[ib[k]].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[ia[k]], b.Values[ib[k]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ia), len(ib))
}
