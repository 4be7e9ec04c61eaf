// Package parse provides syrup decoding support.
package parse

import (
	"context"
	"io"
	"log/slog"

	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/token"
)

// Decode decodes the value at the start of d.  It returns the value and
// the offset one past its last byte; bytes after that are not examined.
// On failure it returns a nil node and offset 0.
func Decode(d []byte, opts ...DecodeOption) (*ir.Node, int, error) {
	s := newDecodeState(d, token.NewPosDoc(d), newParseOpts(opts))
	return s.top(0)
}

// DecodeString is Decode over a string.
func DecodeString(v string, opts ...DecodeOption) (*ir.Node, int, error) {
	return Decode([]byte(v), opts...)
}

// DecodeAll decodes consecutive values until d is exhausted.
func DecodeAll(d []byte, opts ...DecodeOption) ([]*ir.Node, error) {
	dec := NewDecoder(d, opts...)
	var res []*ir.Node
	for {
		node, err := dec.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, node)
	}
}

// Decoder decodes consecutive values from a buffer held in memory.
type Decoder struct {
	s   *decodeState
	off int
}

func NewDecoder(d []byte, opts ...DecodeOption) *Decoder {
	return &Decoder{s: newDecodeState(d, token.NewPosDoc(d), newParseOpts(opts))}
}

// Next decodes the next value.  It returns io.EOF once the buffer is
// consumed.  On failure the offset is unchanged.
func (dec *Decoder) Next() (*ir.Node, error) {
	if !dec.More() {
		return nil, io.EOF
	}
	node, end, err := dec.s.top(dec.off)
	if err != nil {
		return nil, err
	}
	dec.off = end
	return node, nil
}

// More reports whether any input remains.
func (dec *Decoder) More() bool {
	return dec.off < len(dec.s.d)
}

// Offset returns the offset of the next value to decode.
func (dec *Decoder) Offset() int {
	return dec.off
}

type posEntry struct {
	node *ir.Node
	off  int
}

type decodeState struct {
	d         []byte
	doc       *token.PosDoc
	opts      *parseOpts
	depth     int
	positions []posEntry
}

func newDecodeState(d []byte, doc *token.PosDoc, opts *parseOpts) *decodeState {
	return &decodeState{d: d, doc: doc, opts: opts}
}

// top decodes one top level value at off.
func (s *decodeState) top(off int) (*ir.Node, int, error) {
	s.depth = 0
	s.positions = s.positions[:0]
	node, end, err := s.value(off)
	if err != nil {
		if s.opts.log != nil {
			s.opts.log.Debug("decode failed", "off", off, "err", err)
		}
		return nil, 0, err
	}
	if s.opts.positions != nil {
		for _, pe := range s.positions {
			s.opts.positions[pe.node] = s.doc.Pos(pe.off)
		}
	}
	return node, end, nil
}

// value is the dispatcher.  Digit prefixed forms are selected by the
// delimiter following the digit run, all other forms by their leading byte.
func (s *decodeState) value(off int) (*ir.Node, int, error) {
	if off >= len(s.d) {
		return nil, off, s.errorf(ErrUnexpectedEnd, off, "expected a value")
	}
	var (
		node *ir.Node
		typ  token.Type
		end  int
		err  error
	)
	if token.IsDigit(s.d[off]) {
		digitsEnd := token.Digits(s.d, off)
		if digitsEnd == len(s.d) {
			return nil, off, s.errorf(ErrUnexpectedEnd, digitsEnd, "expected a delimiter after digits")
		}
		var ok bool
		typ, ok = token.Delim(s.d[digitsEnd])
		if !ok {
			return nil, off, s.errorf(ErrSyntax, digitsEnd, "%s after digits", token.Describe(s.d, digitsEnd))
		}
		switch typ {
		case token.TInteger:
			node, end, err = s.integer(off, digitsEnd)
		case token.TBytes:
			node, end, err = s.bytestring(off, digitsEnd)
		case token.TString, token.TSymbol:
			node, end, err = s.text(typ, off, digitsEnd)
		}
	} else {
		var ok bool
		typ, ok = token.Lead(s.d[off])
		if !ok {
			return nil, off, s.errorf(ErrSyntax, off, "%s", token.Describe(s.d, off))
		}
		switch typ {
		case token.TBool:
			node, end = s.boolean(off), off+1
		case token.TDict:
			node, end, err = s.dictionary(off)
		case token.TList:
			node, end, err = s.list(off)
		case token.TRecord:
			node, end, err = s.record(off)
		case token.TSet:
			node, end, err = s.set(off)
		}
	}
	if err != nil {
		return nil, off, err
	}
	s.positions = append(s.positions, posEntry{node: node, off: off})
	if s.opts.log != nil && s.opts.log.Enabled(context.Background(), slog.LevelDebug) {
		s.opts.log.Debug("decoded", "form", typ.String(), "off", off, "end", end, "depth", s.depth)
	}
	return node, end, nil
}
