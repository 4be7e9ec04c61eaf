package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/go-syrup/token"
)

var (
	ErrDecode           = errors.New("decode error")
	ErrSyntax           = fmt.Errorf("%w: no matching value form", ErrDecode)
	ErrUnexpectedEnd    = fmt.Errorf("%w: unexpected end", ErrDecode)
	ErrMalformedInteger = fmt.Errorf("%w: malformed integer", ErrDecode)
	ErrInvalidEncoding  = fmt.Errorf("%w: invalid encoding", ErrDecode)
	ErrTooDeep          = fmt.Errorf("%w: nesting too deep", ErrDecode)
)

// Error is the error returned for malformed input.  Err is one of the
// sentinel errors of this package.
type Error struct {
	Err error
	Pos *token.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Err, e.Msg, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (s *decodeState) errorf(err error, off int, format string, args ...any) error {
	return &Error{
		Err: err,
		Pos: s.doc.Pos(off),
		Msg: fmt.Sprintf(format, args...),
	}
}
