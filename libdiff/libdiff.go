package libdiff

import (
	"fmt"

	"github.com/signadot/go-syrup/debug"
	"github.com/signadot/go-syrup/encode"
	"github.com/signadot/go-syrup/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

// Sign returns the one character marker used when printing o.
func (o Op) Sign() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is a single difference.
//
// From is nil for Insert and To is nil for Delete.  Path is the path of
// From, or of To for an Insert.  Text holds an inline rendering of a
// Replace between two strings, symbols or byte strings.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
	Text string
}

func (c Change) String() string {
	switch {
	case c.Op == Insert:
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, encode.MustString(c.To))
	case c.Op == Delete:
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, encode.MustString(c.From))
	case c.Text != "":
		return fmt.Sprintf("%s %s: %s", c.Op.Sign(), c.Path, c.Text)
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op.Sign(), c.Path,
			encode.MustString(c.From), encode.MustString(c.To))
	}
}

// Diff returns the changes turning from into to, in document order.
// Equal trees give no changes.
func Diff(from, to *ir.Node) []Change {
	d := &differ{}
	d.diff(from, to)
	if debug.Diff() {
		log := debug.Logger()
		for _, c := range d.res {
			log.Debug("change", "op", c.Op.String(), "path", c.Path)
		}
	}
	return d.res
}

// Reverse returns the changes turning to back into from.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
			r.Path = c.Path
		case Delete:
			r.Op = Insert
			r.Path = c.Path
		default:
			r.Op = Replace
			r.Path = c.To.Path()
			if c.Text != "" {
				r.Text = inlineText(c.To, c.From)
			}
		}
		res[i] = r
	}
	return res
}

type differ struct {
	res []Change
}

func (d *differ) add(c Change) {
	d.res = append(d.res, c)
}

func (d *differ) replace(from, to *ir.Node) {
	c := Change{Path: from.Path(), Op: Replace, From: from, To: to}
	if from.Type == to.Type {
		c.Text = inlineText(from, to)
	}
	d.add(c)
}

func (d *differ) diff(from, to *ir.Node) {
	if ir.Equal(from, to) {
		return
	}
	if from.Type != to.Type {
		d.replace(from, to)
		return
	}
	switch from.Type {
	case ir.RecordType:
		d.diff(from.Label, to.Label)
		d.diffSeq(from, to)
	case ir.SeqType:
		d.diffSeq(from, to)
	case ir.SetType:
		d.diffSet(from, to)
	case ir.DictType:
		d.diffDict(from, to)
	default:
		d.replace(from, to)
	}
}

// diffSet reports members missing from to as deletions and new members
// as insertions.  Both sides are sorted, so one merge pass suffices.
func (d *differ) diffSet(from, to *ir.Node) {
	i, j := 0, 0
	for i < len(from.Values) || j < len(to.Values) {
		var c int
		switch {
		case i == len(from.Values):
			c = 1
		case j == len(to.Values):
			c = -1
		default:
			c = ir.Compare(from.Values[i], to.Values[j])
		}
		switch {
		case c < 0:
			d.add(Change{Path: from.Values[i].Path(), Op: Delete, From: from.Values[i]})
			i++
		case c > 0:
			d.add(Change{Path: to.Values[j].Path(), Op: Insert, To: to.Values[j]})
			j++
		default:
			i++
			j++
		}
	}
}

// diffDict matches entries by key.
func (d *differ) diffDict(from, to *ir.Node) {
	i, j := 0, 0
	for i < len(from.Fields) || j < len(to.Fields) {
		var c int
		switch {
		case i == len(from.Fields):
			c = 1
		case j == len(to.Fields):
			c = -1
		default:
			c = ir.Compare(from.Fields[i], to.Fields[j])
		}
		switch {
		case c < 0:
			v := from.Values[i]
			d.add(Change{Path: v.Path(), Op: Delete, From: v})
			i++
		case c > 0:
			v := to.Values[j]
			d.add(Change{Path: v.Path(), Op: Insert, To: v})
			j++
		default:
			d.diff(from.Values[i], to.Values[j])
			i++
			j++
		}
	}
}
