package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s: got %s", f, g)
		}
	}
	for abbr, want := range map[string]Format{"t": TextFormat, "j": JSONFormat, "y": YAMLFormat} {
		got, err := ParseFormat(abbr)
		if err != nil || got != want {
			t.Errorf("%q: got %s %v", abbr, got, err)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	if !TextFormat.IsText() || JSONFormat.IsText() || !YAMLFormat.IsYAML() || IRFormat.IsYAML() {
		t.Errorf("format predicates disagree with constants")
	}
	if s := Format(99).String(); s != "<err: 99 is not a format>" {
		t.Errorf("got %q", s)
	}
}
