package parse

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/token"
)

func (s *decodeState) boolean(off int) *ir.Node {
	return ir.FromBool(s.d[off] == 't')
}

// integer decodes the digits in [off, end) with the sign suffix at end.
func (s *decodeState) integer(off, end int) (*ir.Node, int, error) {
	digits := string(s.d[off:end])
	mag, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return nil, off, s.errorf(ErrMalformedInteger, off, "%s does not fit in 64 bits", digits)
	}
	var v int64
	switch s.d[end] {
	case '+':
		if mag > math.MaxInt64 {
			return nil, off, s.errorf(ErrMalformedInteger, off, "%s+ overflows int64", digits)
		}
		v = int64(mag)
	case '-':
		if mag > 1<<63 {
			return nil, off, s.errorf(ErrMalformedInteger, off, "%s- overflows int64", digits)
		}
		// 1<<63 wraps to math.MinInt64, which is its own negation.
		v = -int64(mag)
	default:
		return nil, off, s.errorf(ErrMalformedInteger, end, "expected '+' or '-', got %s", token.Describe(s.d, end))
	}
	return ir.FromInt(v), end + 1, nil
}

// payload returns the bounds of the length prefixed payload whose length
// digits are [off, end) and whose delimiter is at end.
func (s *decodeState) payload(typ token.Type, off, end int) (int, int, error) {
	start := end + 1
	n, err := strconv.ParseUint(string(s.d[off:end]), 10, 63)
	if err != nil || n > uint64(len(s.d)-start) {
		return 0, 0, s.errorf(ErrUnexpectedEnd, off, "%s of declared length %s exceeds remaining %d bytes",
			typ, s.d[off:end], len(s.d)-start)
	}
	return start, start + int(n), nil
}

func (s *decodeState) bytestring(off, end int) (*ir.Node, int, error) {
	start, stop, err := s.payload(token.TBytes, off, end)
	if err != nil {
		return nil, off, err
	}
	return ir.FromBytes(s.d[start:stop]), stop, nil
}

// text decodes strings and symbols, which differ only in delimiter and
// resulting type.
func (s *decodeState) text(typ token.Type, off, end int) (*ir.Node, int, error) {
	start, stop, err := s.payload(typ, off, end)
	if err != nil {
		return nil, off, err
	}
	p := s.d[start:stop]
	if !utf8.Valid(p) {
		return nil, off, s.errorf(ErrInvalidEncoding, start+invalidUTF8(p), "%s payload is not valid UTF-8", typ)
	}
	if typ == token.TSymbol {
		return ir.FromSymbol(string(p)), stop, nil
	}
	return ir.FromString(string(p)), stop, nil
}

// invalidUTF8 returns the offset of the first invalid sequence in p.
func invalidUTF8(p []byte) int {
	for i := 0; i < len(p); {
		r, n := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && n == 1 {
			return i
		}
		i += n
	}
	return len(p)
}
