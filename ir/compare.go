package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
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
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case StringType, SymbolType:
		return strings.Compare(a.String, b.String)
	case BytesType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case RecordType:
		if c := Compare(a.Label, b.Label); c != 0 {
			return c
		}
		return compareSeqs(a.Values, b.Values)
	case SeqType, SetType:
		return compareSeqs(a.Values, b.Values)
	case DictType:
		return compareDicts(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Bool < Int < String < Bytes < Symbol < Record < Seq < Set < Dict
func rank(t Type) int {
	switch t {
	case BoolType:
		return 0
	case IntType:
		return 1
	case StringType:
		return 2
	case BytesType:
		return 3
	case SymbolType:
		return 4
	case RecordType:
		return 5
	case SeqType:
		return 6
	case SetType:
		return 7
	case DictType:
		return 8
	}
	return 100
}

func compareSeqs(a, b []*Node) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareDicts(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
