package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/go-syrup/ir"
)

// MustString returns the compact text rendering of node.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
