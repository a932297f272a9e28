package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values sort before collections.  Collections compare by their sorted
// keyed entries first and then by their unkeyed children.  Line and
// Compact are not considered.
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
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case ValueType:
		return strings.Compare(a.String, b.String)
	case CollectionType:
		if c := compareFields(a, b); c != 0 {
			return c
		}
		return compareValues(a.Values, b.Values)
	}
	return 0
}

// Equal reports whether a and b hold the same keyed entries and the same
// unkeyed children in the same order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareFields(a, b *Node) int {
	ka, kb := a.Keys(), b.Keys()
	for i := 0; i < min(len(ka), len(kb)); i++ {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := Compare(a.Fields[ka[i]], b.Fields[kb[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}

func compareValues(a, b []*Node) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
