package ir

import (
	"encoding/json"
	"fmt"
	"slices"
)

type irBase struct {
	Type   Type    `json:"type"`
	Label  *Node   `json:"label,omitempty"`
	Fields []*Node `json:"fields,omitempty"`
	Values []*Node `json:"values,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Label:  y.Label,
		Fields: y.Fields,
		Values: y.Values,
	}
	switch y.Type {
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	case IntType:
		type C struct {
			irBase
			Int64 int64 `json:"int"`
		}
		return json.Marshal(C{irBase: *base, Int64: y.Int64})
	case StringType, SymbolType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BytesType:
		type C struct {
			irBase
			Bytes []byte `json:"bytes"`
		}
		return json.Marshal(C{irBase: *base, Bytes: y.Bytes})
	case SeqType, SetType, DictType:
		// empty containers keep their values key
		type C struct {
			Type   Type    `json:"type"`
			Fields []*Node `json:"fields,omitempty"`
			Values []*Node `json:"values"`
		}
		vs := y.Values
		if vs == nil {
			vs = []*Node{}
		}
		return json.Marshal(C{Type: y.Type, Fields: y.Fields, Values: vs})
	default:
		return json.Marshal(base)
	}
}

// UnmarshalJSON decodes the form produced by MarshalJSON.  Sets and
// dictionaries are rebuilt through FromSet and FromKeyVals so that their
// canonical order and uniqueness hold regardless of the input.
func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
		Int64  int64  `json:"int"`
		Bytes  []byte `json:"bytes"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	if i := slices.Index(tmp.Values, nil); i != -1 {
		return fmt.Errorf("null %s value at index %d", tmp.Type, i)
	}
	if i := slices.Index(tmp.Fields, nil); i != -1 {
		return fmt.Errorf("null %s field at index %d", tmp.Type, i)
	}
	var res *Node
	switch tmp.Type {
	case BoolType:
		res = FromBool(tmp.Bool)
	case IntType:
		res = FromInt(tmp.Int64)
	case StringType:
		res = FromString(tmp.String)
	case SymbolType:
		res = FromSymbol(tmp.String)
	case BytesType:
		res = FromBytes(tmp.Bytes)
	case RecordType:
		if tmp.Label == nil {
			return fmt.Errorf("%w: missing label", ErrEmptyRecord)
		}
		res = FromRecord(tmp.Label, tmp.Values)
	case SeqType:
		res = FromSlice(tmp.Values)
	case SetType:
		res = FromSet(tmp.Values)
	case DictType:
		if len(tmp.Fields) != len(tmp.Values) {
			return fmt.Errorf("dict with %d fields and %d values", len(tmp.Fields), len(tmp.Values))
		}
		kvs := make([]KeyVal, len(tmp.Fields))
		for i := range tmp.Fields {
			kvs[i] = KeyVal{Key: tmp.Fields[i], Val: tmp.Values[i]}
		}
		res = FromKeyVals(kvs)
	default:
		return fmt.Errorf("unrecognized type %d", tmp.Type)
	}
	res.CloneTo(y)
	y.Parent = nil
	y.ParentIndex = 0
	return nil
}
