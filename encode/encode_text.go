package encode

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/go-syrup/ir"
)

func encodeText(node *ir.Node, buf *bytes.Buffer, es *EncState) {
	switch node.Type {
	case ir.BoolType:
		v := "#f"
		if node.Bool {
			v = "#t"
		}
		buf.WriteString(applyValueColor(es, node.Type, v))
	case ir.IntType:
		buf.WriteString(applyValueColor(es, node.Type, strconv.FormatInt(node.Int64, 10)))
	case ir.StringType:
		buf.WriteString(applyValueColor(es, node.Type, strconv.Quote(node.String)))
	case ir.SymbolType:
		buf.WriteString(applyValueColor(es, node.Type, QuoteSymbol(node.String)))
	case ir.BytesType:
		buf.WriteString(applyValueColor(es, node.Type, `#x"`+hex.EncodeToString(node.Bytes)+`"`))
	case ir.RecordType:
		encodeRecord(node, buf, es)
	case ir.SeqType:
		encodeElems(node, "[", "]", buf, es)
	case ir.SetType:
		encodeElems(node, "#{", "}", buf, es)
	case ir.DictType:
		encodeDict(node, buf, es)
	default:
		panic("type")
	}
}

func encodeRecord(node *ir.Node, buf *bytes.Buffer, es *EncState) {
	buf.WriteString(applyColor(es, node.Type, SepColor, "<"))
	label := bytes.NewBuffer(nil)
	encodeText(node.Label, label, es)
	buf.WriteString(applyColor(es, node.Type, LabelColor, label.String()))
	flat := es.wire || allLeaves(node.Values)
	es.depth++
	for _, f := range node.Values {
		if flat {
			buf.WriteByte(' ')
		} else {
			writeNL(buf, es)
		}
		encodeText(f, buf, es)
	}
	es.depth--
	if !flat {
		writeNL(buf, es)
	}
	buf.WriteString(applyColor(es, node.Type, SepColor, ">"))
}

func encodeElems(node *ir.Node, open, close string, buf *bytes.Buffer, es *EncState) {
	buf.WriteString(applyColor(es, node.Type, SepColor, open))
	if len(node.Values) == 0 {
		buf.WriteString(applyColor(es, node.Type, SepColor, close))
		return
	}
	es.depth++
	for i, v := range node.Values {
		if es.wire {
			if i > 0 {
				buf.WriteByte(' ')
			}
		} else {
			writeNL(buf, es)
		}
		encodeText(v, buf, es)
	}
	es.depth--
	writeNL(buf, es)
	buf.WriteString(applyColor(es, node.Type, SepColor, close))
}

func encodeDict(node *ir.Node, buf *bytes.Buffer, es *EncState) {
	buf.WriteString(applyColor(es, node.Type, SepColor, "{"))
	if len(node.Fields) == 0 {
		buf.WriteString(applyColor(es, node.Type, SepColor, "}"))
		return
	}
	es.depth++
	for i, k := range node.Fields {
		if es.wire {
			if i > 0 {
				buf.WriteByte(' ')
			}
		} else {
			writeNL(buf, es)
		}
		key := bytes.NewBuffer(nil)
		encodeText(k, key, es)
		buf.WriteString(applyColor(es, node.Type, FieldColor, key.String()))
		buf.WriteString(applyColor(es, node.Type, SepColor, ":"))
		buf.WriteByte(' ')
		encodeText(node.Values[i], buf, es)
	}
	es.depth--
	writeNL(buf, es)
	buf.WriteString(applyColor(es, node.Type, SepColor, "}"))
}

func writeNL(buf *bytes.Buffer, es *EncState) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func allLeaves(ns []*ir.Node) bool {
	for _, n := range ns {
		if !n.Type.IsLeaf() {
			return false
		}
	}
	return true
}

// QuoteSymbol renders a symbol bare when it cannot be mistaken for
// another value, otherwise between '|'.
func QuoteSymbol(v string) string {
	if symbolIsBare(v) {
		return v
	}
	var sb strings.Builder
	sb.WriteByte('|')
	for _, r := range v {
		switch r {
		case '|', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			if unicode.IsPrint(r) {
				sb.WriteRune(r)
				continue
			}
			q := strconv.QuoteRune(r)
			sb.WriteString(q[1 : len(q)-1])
		}
	}
	sb.WriteByte('|')
	return sb.String()
}

func symbolIsBare(v string) bool {
	if v == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(v)
	if unicode.IsDigit(first) || first == '#' {
		return false
	}
	if (first == '-' || first == '+') && len(v) > 1 && v[1] >= '0' && v[1] <= '9' {
		return false
	}
	for _, r := range v {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if !strings.ContainsRune("-_+*/!?=.$%&~^", r) {
			return false
		}
	}
	return true
}
