package eval

import (
	"errors"
	"testing"

	"github.com/signadot/go-syrup/encode"
	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/parse"
)

func TestEval(t *testing.T) {
	doc, _, err := parse.DecodeString(`{1'a1+1'b[1+2+3+]1's3'foo1'r<1'p5"hello>}`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		src  string
		env  Env
		want string
	}{
		{src: "v.a + 1", want: "2"},
		{src: "len(v.b)", want: "3"},
		{src: "filter(v.b, # > 1)", want: "[2 3]"},
		{src: `v.s == "foo"`, want: "#t"},
		{src: "v.r.label", want: `"p"`},
		{src: "v.r.fields[0]", want: `"hello"`},
		{src: `getpath("$.b[2]") * 2`, want: "6"},
		{src: `listpath("$.b[*]")`, want: "[1 2 3]"},
		{src: `typeof("$.r")`, want: `"Record"`},
		{src: `decode("3'bar")`, want: "bar"},
		{src: "x * 2", env: Env{"x": 21}, want: "42"},
		{src: `{"k": v.a}`, want: `{"k": 1}`},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			res, err := Eval(doc, test.src, test.env)
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(res); got != test.want {
				t.Errorf("got %s want %s", got, test.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString("a"), Val: ir.FromInt(1)}})
	if _, err := Eval(doc, "v.missing", nil); !errors.Is(err, ErrNoValue) {
		t.Errorf("expected ErrNoValue, got %v", err)
	}
	if _, err := Eval(doc, "1.5", nil); !errors.Is(err, ir.ErrNoGoValue) {
		t.Errorf("expected ErrNoGoValue, got %v", err)
	}
	if _, err := Eval(doc, "v.a +", nil); err == nil {
		t.Error("expected a compile error")
	}
	if _, err := Eval(doc, `decode("[")`, nil); err == nil {
		t.Error("expected a decode error")
	}
}
