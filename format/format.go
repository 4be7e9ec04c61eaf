// Package format names the output renderings of a decoded value.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	JSONFormat
	YAMLFormat
	IRFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"ir":   IRFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case IRFormat:
		return []byte("ir"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, JSONFormat, YAMLFormat, IRFormat}
}
