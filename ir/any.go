package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Symbol is the Go form of a SymbolType node.
type Symbol string

// Set is the Go form of a SetType node.
type Set []any

// Record is the Go form of a RecordType node.
type Record struct {
	Label  any   `json:"label" yaml:"label"`
	Fields []any `json:"fields" yaml:"fields"`
}

// DictEntry is one entry of a dictionary whose keys are not all text.
type DictEntry struct {
	Key   any `json:"key" yaml:"key"`
	Value any `json:"value" yaml:"value"`
}

// ToAny converts a node to plain Go values.
//
// Dictionaries whose keys are all Strings or Symbols become map[string]any,
// other dictionaries become []DictEntry in key order.
func ToAny(y *Node) any {
	switch y.Type {
	case BoolType:
		return y.Bool
	case IntType:
		return y.Int64
	case StringType:
		return y.String
	case SymbolType:
		return Symbol(y.String)
	case BytesType:
		return slices.Clone(y.Bytes)
	case RecordType:
		return Record{Label: ToAny(y.Label), Fields: toAnys(y.Values)}
	case SeqType:
		return toAnys(y.Values)
	case SetType:
		return Set(toAnys(y.Values))
	case DictType:
		if y.textKeys() {
			res := make(map[string]any, len(y.Fields))
			for i, f := range y.Fields {
				res[f.String] = ToAny(y.Values[i])
			}
			return res
		}
		res := make([]DictEntry, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = DictEntry{Key: ToAny(f), Value: ToAny(y.Values[i])}
		}
		return res
	}
	return nil
}

func toAnys(ys []*Node) []any {
	res := make([]any, len(ys))
	for i, y := range ys {
		res[i] = ToAny(y)
	}
	return res
}

// textKeys reports whether the dictionary keys remain distinct when
// reduced to their text.
func (y *Node) textKeys() bool {
	seen := make(map[string]bool, len(y.Fields))
	for _, f := range y.Fields {
		if f.Type != StringType && f.Type != SymbolType {
			return false
		}
		if seen[f.String] {
			return false
		}
		seen[f.String] = true
	}
	return true
}

// FromAny converts plain Go values, as produced by ToAny, back to a node.
// Integral floats are accepted as integers; other floats are rejected.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case string:
		return FromString(x), nil
	case Symbol:
		return FromSymbol(string(x)), nil
	case []byte:
		return FromBytes(x), nil
	case []any:
		vs, err := fromAnys(x)
		if err != nil {
			return nil, err
		}
		return FromSlice(vs), nil
	case Set:
		vs, err := fromAnys(x)
		if err != nil {
			return nil, err
		}
		return FromSet(vs), nil
	case Record:
		label, err := FromAny(x.Label)
		if err != nil {
			return nil, err
		}
		fields, err := fromAnys(x.Fields)
		if err != nil {
			return nil, err
		}
		return FromRecord(label, fields), nil
	case map[string]any:
		kvs := make([]KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			val, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: FromString(k), Val: val})
		}
		return FromKeyVals(kvs), nil
	case []DictEntry:
		kvs := make([]KeyVal, len(x))
		for i, e := range x {
			k, err := FromAny(e.Key)
			if err != nil {
				return nil, err
			}
			val, err := FromAny(e.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: k, Val: val}
		}
		return FromKeyVals(kvs), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNoGoValue, v)
}

func fromAnys(xs []any) ([]*Node, error) {
	res := make([]*Node, len(xs))
	for i, x := range xs {
		y, err := FromAny(x)
		if err != nil {
			return nil, err
		}
		res[i] = y
	}
	return res, nil
}

func fromUint(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrNoGoValue, u)
	}
	return FromInt(int64(u)), nil
}

func fromFloat(f float64) (*Node, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: float %v", ErrNoGoValue, f)
	}
	return FromInt(int64(f)), nil
}
