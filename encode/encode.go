package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-syrup/format"
	"github.com/signadot/go-syrup/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node to w in the selected format, followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch es.format {
	case format.TextFormat:
		buf := bytes.NewBuffer(nil)
		encodeText(node, buf, es)
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	case format.JSONFormat:
		return encodeJSON(ir.ToAny(node), w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.IRFormat:
		return encodeJSON(node, w, es)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func encodeJSON(v any, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.wire {
		d, err = json.Marshal(v)
	} else {
		d, err = json.MarshalIndent(v, "", strings.Repeat(" ", es.indent))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d)+"\n")
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	var yOpts []yaml.EncodeOption
	if es.indent > 0 {
		yOpts = append(yOpts, yaml.Indent(es.indent))
	}
	if es.wire {
		yOpts = append(yOpts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(ir.ToAny(node), yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
