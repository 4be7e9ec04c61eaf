package encode

import "github.com/signadot/go-syrup/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeWire selects the compact single line rendering.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
