package ir

import "fmt"

type Type int

const (
	BoolType Type = iota
	IntType
	StringType
	BytesType
	SymbolType
	RecordType
	SeqType
	SetType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		BoolType:   "Bool",
		IntType:    "Int",
		StringType: "String",
		BytesType:  "Bytes",
		SymbolType: "Symbol",
		RecordType: "Record",
		SeqType:    "Seq",
		SetType:    "Set",
		DictType:   "Dict",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Bool":   BoolType,
		"Int":    IntType,
		"String": StringType,
		"Bytes":  BytesType,
		"Symbol": SymbolType,
		"Record": RecordType,
		"Seq":    SeqType,
		"Set":    SetType,
		"Dict":   DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		BoolType,
		IntType,
		StringType,
		BytesType,
		SymbolType,
		RecordType,
		SeqType,
		SetType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case RecordType, SeqType, SetType, DictType:
		return false
	default:
		return true
	}
}
