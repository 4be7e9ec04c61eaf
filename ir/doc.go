// Package ir provides the value tree that Syrup documents decode into.
//
// # Overview
//
// A Node is a recursive tagged union over the Syrup value kinds:
//
//   - Atomic types: Bool, Int, String, Bytes, Symbol
//   - Composite types: Record (a label plus fields), Seq, Set, Dict
//
// Values are placed in fields depending on the node type: Bool, Int64,
// String (for both String and Symbol nodes) and Bytes for atoms; Label and
// Values for records; Values for sequences and sets; Fields (keys) and
// Values for dictionaries.
//
// # Creating Nodes
//
//	s := ir.FromString("hello")
//	sym := ir.FromSymbol("hello") // not Equal to s
//	rec := ir.FromRecord(ir.FromSymbol("point"), []*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//	dict := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromSymbol("name"), Val: ir.FromString("alice")},
//	})
//
// # Structure Constraints
//
// Sets never hold two Equal elements and dictionaries never hold two Equal
// keys.  Both are held in canonical order (by Compare), so two sets or
// dictionaries with the same content are Equal however they were built.
// When a dictionary is built from entries with duplicate keys, the later
// entry wins.
//
// A record always has a label; its field count is fixed when it is built.
//
// # Comparison and Hashing
//
// Compare gives a total order over nodes, ranking kinds as
// Bool < Int < String < Bytes < Symbol < Record < Seq < Set < Dict.
// Hash is consistent with Equal within a process.
//
// # Paths
//
// Path, GetPath and ListPath use `$`-rooted paths:
//
//	$[0]        element, field or dict value 0
//	$.name      dict value under the String or Symbol key "name"
//	${0}        dict key 0
//	$<>         record label
//	$[*]        all elements
//	$...name    name fields of all descendants
//
// # Thread Safety
//
// Node structures are not thread-safe. Decoded trees are not modified by
// this module after they are returned, so concurrent reads are fine.
package ir
