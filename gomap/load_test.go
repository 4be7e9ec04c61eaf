package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/parse"
)

type point struct {
	Label  string `json:"label"`
	Fields []int  `json:"fields"`
}

type config struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Key   []byte   `json:"key"`
	Where point    `json:"where"`
}

func TestLoad(t *testing.T) {
	in := `{4'name5"alice4'tags#1'a1'b$3'key2:` + "\x00\xff" + `5'where<2'pt1+2+>}`
	var got config
	if err := Load([]byte(in), &got); err != nil {
		t.Fatal(err)
	}
	want := config{
		Name:  "alice",
		Tags:  []string{"a", "b"},
		Key:   []byte{0, 0xff},
		Where: point{Label: "pt", Fields: []int{1, 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type counter struct {
	n int
}

func (c *counter) FromIR(node *ir.Node) error {
	c.n = node.Len()
	return nil
}

func TestLoadIRFromer(t *testing.T) {
	c := &counter{}
	if err := Load([]byte("[t f t]"), c); err == nil {
		t.Fatal("expected a syntax error for spaces")
	}
	if err := Load([]byte("[tft]"), c); err != nil {
		t.Fatal(err)
	}
	if c.n != 3 {
		t.Errorf("got %d", c.n)
	}
}

func TestLoadErrors(t *testing.T) {
	var s string
	if err := Load([]byte("["), &s); !errors.Is(err, parse.ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd, got %v", err)
	}
	if err := Load([]byte("1+"), &s); err == nil {
		t.Error("expected a type mismatch")
	}
}
