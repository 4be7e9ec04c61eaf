package ir

import (
	"slices"
	"sort"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Label is the label of a RecordType node.
	Label *Node
	// Fields holds dictionary keys; Fields[i] is the key of Values[i].
	Fields []*Node
	// Values holds sequence and set elements, record fields and
	// dictionary values.
	Values []*Node

	Bool   bool
	Int64  int64
	Bytes  []byte
	String string
}

// LabelIndex is the ParentIndex of a record label.
const LabelIndex = -1

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

// FromBytes copies v.
func FromBytes(v []byte) *Node {
	return &Node{
		Type:  BytesType,
		Bytes: slices.Clone(v),
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSymbol(v string) *Node {
	return &Node{
		Type:   SymbolType,
		String: v,
	}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: SeqType, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		res.Values[i] = adopt(res, v, i)
	}
	return res
}

// FromRecord creates a record with the given label and fields.  It panics
// if label is nil.
func FromRecord(label *Node, fields []*Node) *Node {
	if label == nil {
		panic("ir: FromRecord called with nil label")
	}
	res := &Node{Type: RecordType, Values: make([]*Node, len(fields))}
	res.Label = adopt(res, label, LabelIndex)
	for i, f := range fields {
		res.Values[i] = adopt(res, f, i)
	}
	return res
}

// RecordFromChildren creates a record from its decoded children: the
// first child is the label and the rest are the fields in order.
func RecordFromChildren(children []*Node) (*Node, error) {
	if len(children) == 0 {
		return nil, ErrEmptyRecord
	}
	return FromRecord(children[0], children[1:]), nil
}

// FromSet creates a set from vs.  Elements which compare equal collapse to
// one, and the elements are held in canonical order.
func FromSet(vs []*Node) *Node {
	sorted := slices.Clone(vs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) < 0
	})
	sorted = slices.CompactFunc(sorted, Equal)
	res := &Node{Type: SetType, Values: sorted}
	for i, v := range sorted {
		adopt(res, v, i)
	}
	return res
}

// FromKeyVals creates a dictionary from kvs.  When two entries have equal
// keys, the one occurring later in kvs wins.  Entries are held in key order.
func FromKeyVals(kvs []KeyVal) *Node {
	sorted := slices.Clone(kvs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i].Key, sorted[j].Key) < 0
	})
	res := &Node{Type: DictType}
	for i, kv := range sorted {
		if i+1 < len(sorted) && Equal(kv.Key, sorted[i+1].Key) {
			continue
		}
		n := len(res.Values)
		res.Fields = append(res.Fields, adopt(res, kv.Key, n))
		res.Values = append(res.Values, adopt(res, kv.Val, n))
	}
	return res
}

// SetAdd adds v to a set, reporting whether it was absent.
func (y *Node) SetAdd(v *Node) bool {
	i, found := slices.BinarySearchFunc(y.Values, v, Compare)
	if found {
		return false
	}
	y.Values = slices.Insert(y.Values, i, v)
	y.reindex(i)
	return true
}

func (y *Node) SetHas(v *Node) bool {
	if y.Type != SetType {
		return false
	}
	_, found := slices.BinarySearchFunc(y.Values, v, Compare)
	return found
}

// DictPut sets the value of key k in a dictionary, replacing any value
// already held under an equal key.
func (y *Node) DictPut(k, v *Node) {
	i, found := slices.BinarySearchFunc(y.Fields, k, Compare)
	if found {
		y.Fields[i] = adopt(y, k, i)
		y.Values[i] = adopt(y, v, i)
		return
	}
	y.Fields = slices.Insert(y.Fields, i, k)
	y.Values = slices.Insert(y.Values, i, v)
	y.reindex(i)
}

func (y *Node) DictGet(k *Node) *Node {
	if y.Type != DictType {
		return nil
	}
	i, found := slices.BinarySearchFunc(y.Fields, k, Compare)
	if !found {
		return nil
	}
	return y.Values[i]
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		adopt(y, y.Values[i], i)
		if y.Type == DictType {
			adopt(y, y.Fields[i], i)
		}
	}
}

func adopt(p, c *Node, i int) *Node {
	c.Parent = p
	c.ParentIndex = i
	return c
}

// Len returns the number of elements, fields or entries of a container
// node and 0 for leaves.
func (y *Node) Len() int {
	if y.Type.IsLeaf() {
		return 0
	}
	return len(y.Values)
}

// Children returns the direct children of y in order: the label first for
// records and key, value pairs for dictionaries.
func (y *Node) Children() []*Node {
	switch y.Type {
	case RecordType:
		return append([]*Node{y.Label}, y.Values...)
	case DictType:
		res := make([]*Node, 0, 2*len(y.Values))
		for i := range y.Values {
			res = append(res, y.Fields[i], y.Values[i])
		}
		return res
	case SeqType, SetType:
		return y.Values
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Type = y.Type
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.String = y.String
	dst.Bytes = slices.Clone(y.Bytes)
	dst.Label = nil
	if y.Label != nil {
		dst.Label = adopt(dst, y.Label.Clone(), LabelIndex)
	}
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = adopt(dst, yv.Clone(), i)
		}
	}
	dst.Fields = nil
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = adopt(dst, yf.Clone(), i)
		}
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children() {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
