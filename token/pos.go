package token

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps offsets of a document to lines and columns.  Newlines are
// indexed lazily on first use.
type PosDoc struct {
	d       []byte
	n       []int
	indexed bool
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) index() {
	if p.indexed {
		return
	}
	p.indexed = true
	for i := 0; i < len(p.d); {
		j := bytes.IndexByte(p.d[i:], '\n')
		if j == -1 {
			break
		}
		p.n = append(p.n, i+j)
		i += j + 1
	}
}

func (p *PosDoc) LineCol(off int) (int, int) {
	p.index()
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	if p.D == nil {
		return fmt.Sprintf("`...%s...` at offset %d", sample, p.I)
	}
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
