package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/parse"
)

func decode(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, _, err := parse.DecodeString(in)
	if err != nil {
		t.Fatalf("decode %q: %v", in, err)
	}
	return node
}

func changeStrings(cs []Change) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = c.String()
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "equal",
			from: "[1+2+]",
			to:   "[1+2+]",
			want: []string{},
		},
		{
			name: "type change",
			from: "1+",
			to:   "t",
			want: []string{"~ $: 1 -> #t"},
		},
		{
			name: "int",
			from: "[1+]",
			to:   "[2+]",
			want: []string{"~ $[0]: 1 -> 2"},
		},
		{
			name: "list insert",
			from: "[1+3+]",
			to:   "[1+2+3+]",
			want: []string{"+ $[1]: 2"},
		},
		{
			name: "list delete",
			from: "[1+2+3+]",
			to:   "[1+3+]",
			want: []string{"- $[1]: 2"},
		},
		{
			name: "nested",
			from: "[1+[t]]",
			to:   "[1+[f]]",
			want: []string{"~ $[1][0]: #t -> #f"},
		},
		{
			name: "string",
			from: `5"hello`,
			to:   `5"hallo`,
			want: []string{"~ $: h[-e-]{+a+}llo"},
		},
		{
			name: "bytes",
			from: "1:\x01",
			to:   "1:\x02",
			want: []string{"~ $: 0[-1-]{+2+}"},
		},
		{
			name: "dict",
			from: `{1'a1+1'b2+}`,
			to:   `{1'b3+1'c4+}`,
			want: []string{
				"- $.a: 1",
				"~ $.b: 2 -> 3",
				"+ $.c: 4",
			},
		},
		{
			name: "set",
			from: "#1+2+$",
			to:   "#2+3+$",
			want: []string{"- $[0]: 1", "+ $[1]: 3"},
		},
		{
			name: "mixed replacement",
			from: `[1+4"abcd]`,
			to:   `[1+5+4"abce]`,
			want: []string{"+ $[1]: 5", "~ $[1]: abc[-d-]{+e+}"},
		},
		{
			name: "type change in list",
			from: `[1+4"abcd]`,
			to:   `[1+t]`,
			want: []string{"+ $[1]: #t", "- $[1]: \"abcd\""},
		},
		{
			name: "record label",
			from: "<1'p1+>",
			to:   "<1'q1+>",
			want: []string{"~ $<>: [-p-]{+q+}"},
		},
		{
			name: "record field",
			from: "<1'p1+2+>",
			to:   "<1'p1+>",
			want: []string{"- $[1]: 2"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := changeStrings(Diff(decode(t, test.from), decode(t, test.to)))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffOps(t *testing.T) {
	from := decode(t, `{1'a[1+2+]}`)
	to := decode(t, `{1'a[2+]1'b0+}`)
	cs := Diff(from, to)
	if len(cs) != 2 {
		t.Fatalf("expected 2 changes, got %v", changeStrings(cs))
	}
	if cs[0].Op != Delete || cs[0].To != nil || !ir.Equal(cs[0].From, ir.FromInt(1)) {
		t.Errorf("bad delete %+v", cs[0])
	}
	if cs[1].Op != Insert || cs[1].From != nil || cs[1].To.Root() != to {
		t.Errorf("bad insert %+v", cs[1])
	}
}

func TestReverse(t *testing.T) {
	from := decode(t, `[1+5"hello3'sym]`)
	to := decode(t, `[5"hallo3'sym2+]`)
	got := changeStrings(Reverse(Diff(from, to)))
	want := changeStrings(Diff(to, from))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
