package parse

import (
	"log/slog"

	"github.com/signadot/go-syrup/debug"
	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/token"
)

// DefaultMaxDepth is the default container nesting ceiling.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth  int
	positions map[*ir.Node]*token.Pos
	log       *slog.Logger
}

type DecodeOption func(*parseOpts)

// DecodeMaxDepth sets the container nesting ceiling.  n <= 0 removes it.
func DecodeMaxDepth(n int) DecodeOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// DecodePositions records the start position of every decoded node in m.
// Nothing is recorded for a failed decode.
func DecodePositions(m map[*ir.Node]*token.Pos) DecodeOption {
	return func(o *parseOpts) { o.positions = m }
}

// DecodeLogger traces decoded nodes to l at debug level.
func DecodeLogger(l *slog.Logger) DecodeOption {
	return func(o *parseOpts) { o.log = l }
}

func newParseOpts(opts []DecodeOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	if debug.Decode() {
		pOpts.log = debug.Logger()
	}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
