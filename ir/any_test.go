package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	y := FromRecord(FromSymbol("animal"), []*Node{
		FromKeyVals([]KeyVal{
			{Key: FromSymbol("name"), Val: FromString("George")},
			{Key: FromSymbol("eats"), Val: FromSet([]*Node{FromBytes([]byte("insects")), FromBytes([]byte("bananas"))})},
		}),
		FromKeyVals([]KeyVal{{Key: FromInt(1), Val: FromBool(false)}}),
	})
	want := Record{
		Label: Symbol("animal"),
		Fields: []any{
			map[string]any{
				"name": "George",
				"eats": Set{[]byte("bananas"), []byte("insects")},
			},
			[]DictEntry{{Key: int64(1), Value: false}},
		},
	}
	if diff := cmp.Diff(want, ToAny(y)); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

func TestToAnyCollidingKeys(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: FromString("k"), Val: FromInt(1)},
		{Key: FromSymbol("k"), Val: FromInt(2)},
	})
	want := []DictEntry{
		{Key: "k", Value: int64(1)},
		{Key: Symbol("k"), Value: int64(2)},
	}
	if diff := cmp.Diff(want, ToAny(y)); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *Node
	}{
		{"bool", true, FromBool(true)},
		{"int", 3, FromInt(3)},
		{"integral float", 4.0, FromInt(4)},
		{"uint8", uint8(200), FromInt(200)},
		{"string", "s", FromString("s")},
		{"symbol", Symbol("s"), FromSymbol("s")},
		{"bytes", []byte{0xff}, FromBytes([]byte{0xff})},
		{"seq", []any{1, "a"}, FromSlice([]*Node{FromInt(1), FromString("a")})},
		{"set", Set{2, 1, 2}, FromSet([]*Node{FromInt(1), FromInt(2)})},
		{"map", map[string]any{"b": 1, "a": 2}, FromKeyVals([]KeyVal{
			{Key: FromString("a"), Val: FromInt(2)},
			{Key: FromString("b"), Val: FromInt(1)},
		})},
		{"record", Record{Label: Symbol("r"), Fields: []any{1}}, FromRecord(FromSymbol("r"), []*Node{FromInt(1)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("FromAny(%v) = %v, want %v", tt.in, ToAny(got), ToAny(tt.want))
			}
		})
	}
}

func TestFromAnyErrors(t *testing.T) {
	for _, v := range []any{1.5, math.NaN(), uint64(math.MaxUint64), struct{}{}, []any{0.25}} {
		if _, err := FromAny(v); !errors.Is(err, ErrNoGoValue) {
			t.Errorf("FromAny(%v): expected ErrNoGoValue, got %v", v, err)
		}
	}
}

func TestToAnyFromAny(t *testing.T) {
	y := FromRecord(FromSymbol("r"), []*Node{
		FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromSet([]*Node{FromInt(1)})}}),
		FromKeyVals([]KeyVal{{Key: FromSymbol("b"), Val: FromBytes([]byte("x"))}, {Key: FromInt(1), Val: FromSlice(nil)}}),
	})
	back, err := FromAny(ToAny(y))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(y, back) {
		t.Errorf("round trip through Go values changed the tree")
	}
}
