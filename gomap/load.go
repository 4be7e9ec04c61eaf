// Package gomap decodes syrup values into Go values.
//
// Values are mapped through their JSON form: dictionaries with text keys
// fill structs and maps, lists and sets fill slices, symbols fill
// strings, byte strings fill []byte and records fill a struct with
// Label and Fields.
package gomap

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/parse"
)

// IRFromer is implemented by types which load themselves from a node.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// Load decodes the first value in d into p.
func Load(d []byte, p any, opts ...parse.DecodeOption) error {
	node, _, err := parse.Decode(d, opts...)
	if err != nil {
		return err
	}
	return LoadNode(node, p)
}

// LoadNode fills p from node.
func LoadNode(node *ir.Node, p any) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	d, err := json.Marshal(ir.ToAny(node))
	if err != nil {
		return fmt.Errorf("could not map %s: %w", node.Type, err)
	}
	return json.Unmarshal(d, p)
}
