package libdiff

import (
	"slices"

	"github.com/signadot/go-syrup/encode"
	"github.com/signadot/go-syrup/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// runeBase keeps mapped runes clear of the surrogate range.
const runeBase = 0xE000

// diffSeq aligns the elements of two lists or the fields of two records.
//
// Each element is reduced to a summary which is mapped to a rune, and
// the rune sequences are diffed.  Leaves summarize to their value and
// containers to their type, so aligned containers are compared
// recursively.  In a run of deletions followed by insertions, each
// insertion is paired with the first pending deletion of the same type;
// deletions passed over are reported as such.
func (d *differ) diffSeq(from, to *ir.Node) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var deleted []*ir.Node
	flush := func() {
		for _, v := range deleted {
			d.add(Change{Path: v.Path(), Op: Delete, From: v})
		}
		deleted = deleted[:0]
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				deleted = append(deleted, from.Values[fi])
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				v := to.Values[ti]
				j := slices.IndexFunc(deleted, func(x *ir.Node) bool { return x.Type == v.Type })
				if j == -1 {
					d.add(Change{Path: v.Path(), Op: Insert, To: v})
				} else {
					for _, x := range deleted[:j] {
						d.add(Change{Path: x.Path(), Op: Delete, From: x})
					}
					d.diff(deleted[j], v)
					deleted = deleted[j+1:]
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				d.diff(from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		}
	}
	flush()
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(runeBase + len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.SeqType, ir.SetType, ir.DictType:
		return node.Type.String()
	case ir.RecordType:
		return node.Type.String() + "-" + encode.MustString(node.Label)
	default:
		return node.Type.String() + "-" + encode.MustString(node)
	}
}
