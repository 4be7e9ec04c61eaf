package parse

import (
	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/token"
)

func (s *decodeState) enter(typ token.Type, off int) error {
	if s.opts.maxDepth > 0 && s.depth >= s.opts.maxDepth {
		return s.errorf(ErrTooDeep, off, "%s exceeds nesting depth %d", typ, s.opts.maxDepth)
	}
	s.depth++
	return nil
}

func (s *decodeState) leave() {
	s.depth--
}

// children decodes the values of a container opened at off up to its
// closing marker.
func (s *decodeState) children(typ token.Type, off int) ([]*ir.Node, int, error) {
	if err := s.enter(typ, off); err != nil {
		return nil, off, err
	}
	defer s.leave()
	closer := token.Closer(typ)
	var res []*ir.Node
	i := off + 1
	for {
		if i >= len(s.d) {
			return nil, off, s.errorf(ErrUnexpectedEnd, i, "expected %q closing %s opened by %q at offset %d", closer, typ, token.Opener(typ), off)
		}
		if s.d[i] == closer {
			return res, i + 1, nil
		}
		child, next, err := s.value(i)
		if err != nil {
			return nil, off, err
		}
		res = append(res, child)
		i = next
	}
}

func (s *decodeState) list(off int) (*ir.Node, int, error) {
	vs, end, err := s.children(token.TList, off)
	if err != nil {
		return nil, off, err
	}
	return ir.FromSlice(vs), end, nil
}

func (s *decodeState) set(off int) (*ir.Node, int, error) {
	vs, end, err := s.children(token.TSet, off)
	if err != nil {
		return nil, off, err
	}
	return ir.FromSet(vs), end, nil
}

func (s *decodeState) record(off int) (*ir.Node, int, error) {
	if off+1 < len(s.d) && s.d[off+1] == '>' {
		return nil, off, s.errorf(ErrSyntax, off+1, "record has no label")
	}
	vs, end, err := s.children(token.TRecord, off)
	if err != nil {
		return nil, off, err
	}
	rec, err := ir.RecordFromChildren(vs)
	if err != nil {
		return nil, off, s.errorf(ErrSyntax, off, "%s", err)
	}
	return rec, end, nil
}

// dictionary decodes key value pairs.  A later pair overwrites an earlier
// one with an equal key.
func (s *decodeState) dictionary(off int) (*ir.Node, int, error) {
	if err := s.enter(token.TDict, off); err != nil {
		return nil, off, err
	}
	defer s.leave()
	var kvs []ir.KeyVal
	i := off + 1
	for {
		if i >= len(s.d) {
			return nil, off, s.errorf(ErrUnexpectedEnd, i, "expected %q closing %s opened by %q at offset %d",
				token.Closer(token.TDict), token.TDict, token.Opener(token.TDict), off)
		}
		if s.d[i] == '}' {
			return ir.FromKeyVals(kvs), i + 1, nil
		}
		k, next, err := s.value(i)
		if err != nil {
			return nil, off, err
		}
		if next < len(s.d) && s.d[next] == '}' {
			return nil, off, s.errorf(ErrSyntax, next, "dictionary key at offset %d has no value", i)
		}
		v, next, err := s.value(next)
		if err != nil {
			return nil, off, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: v})
		i = next
	}
}
