package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Bool < Int < String < Bytes < Symbol < Record < Seq < Set < Dict
		{"Bool < Int", FromBool(true), FromInt(0), -1},
		{"Int < String", FromInt(99), FromString(""), -1},
		{"String < Bytes", FromString("z"), FromBytes([]byte("a")), -1},
		{"Bytes < Symbol", FromBytes([]byte("z")), FromSymbol("a"), -1},
		{"Symbol < Record", FromSymbol("z"), FromRecord(FromBool(false), nil), -1},
		{"Record < Seq", FromRecord(FromSymbol("r"), nil), FromSlice(nil), -1},
		{"Seq < Set", FromSlice(nil), FromSet(nil), -1},
		{"Set < Dict", FromSet(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"Int < Int", FromInt(-3), FromInt(2), -1},
		{"String < String", FromString("a"), FromString("b"), -1},
		{"Symbol == Symbol", FromSymbol("foo"), FromSymbol("foo"), 0},
		{"Bytes prefix", FromBytes([]byte("ab")), FromBytes([]byte("abc")), -1},

		{"Record label", FromRecord(FromSymbol("a"), nil), FromRecord(FromSymbol("b"), nil), -1},
		{"Record fields",
			FromRecord(FromSymbol("a"), []*Node{FromInt(1)}),
			FromRecord(FromSymbol("a"), []*Node{FromInt(1), FromInt(0)}),
			-1},

		{"Empty Seq == Empty Seq", FromSlice(nil), FromSlice(nil), 0},
		{"Short Seq < Long Seq", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Seq Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{"Set order independent",
			FromSet([]*Node{FromInt(2), FromInt(1)}),
			FromSet([]*Node{FromInt(1), FromInt(2)}),
			0},

		{"Dict Key Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(1)}}),
			-1},
		{"Dict Value Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(2)}}),
			-1},
		{"Dict order independent",
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(2)}, {Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}, {Key: FromString("b"), Val: FromInt(2)}}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			if tt.expected == 0 && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal nodes hash differently")
			}
		})
	}
}

func TestSymbolNotString(t *testing.T) {
	if Equal(FromSymbol("foo"), FromString("foo")) {
		t.Fatal("symbol foo equals string foo")
	}
	if FromSymbol("foo").Hash() == FromString("foo").Hash() {
		t.Error("symbol and string share a hash")
	}
}
