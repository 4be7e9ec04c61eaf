package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node.  Nodes which are Equal have the
// same hash within a process.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Type))

	var b [8]byte
	writeChild := func(c *Node) {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	switch n.Type {
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		h.Write(b[:])
	case StringType, SymbolType:
		h.WriteString(n.String)
	case BytesType:
		h.Write(n.Bytes)
	case RecordType:
		writeChild(n.Label)
		for _, v := range n.Values {
			writeChild(v)
		}
	case SeqType, SetType:
		// sets are held in canonical order so this is order independent
		// with respect to construction.
		for _, v := range n.Values {
			writeChild(v)
		}
	case DictType:
		for i, field := range n.Fields {
			writeChild(field)
			writeChild(n.Values[i])
		}
	}
	return h.Sum64()
}
