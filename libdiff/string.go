package libdiff

import (
	"encoding/hex"
	"strings"

	"github.com/signadot/go-syrup/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// inlineText renders the character level difference between two
// strings, symbols or byte strings, marking deletions as [-x-] and
// insertions as {+x+}.  Byte strings are compared in hex.  It returns ""
// for other types.
func inlineText(from, to *ir.Node) string {
	var a, b string
	switch from.Type {
	case ir.StringType, ir.SymbolType:
		a, b = from.String, to.String
	case ir.BytesType:
		a, b = hex.EncodeToString(from.Bytes), hex.EncodeToString(to.Bytes)
	default:
		return ""
	}
	dmp := diffpatch.New()
	doMultiLine := strings.Contains(a, "\n") && strings.Contains(b, "\n")
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, doMultiLine))
	var sb strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(diff.Text)
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + diff.Text + "+}")
		}
	}
	return sb.String()
}
