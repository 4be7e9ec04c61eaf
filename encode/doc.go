// Package encode renders decoded values for display.
//
// It is not a syrup encoder.  The text format is a readable notation
// in which every type remains distinguishable:
//
//	#t #f                 booleans
//	-12                   integers
//	"a\nb"                strings
//	sym |two words|       symbols
//	#x"00ff"              byte strings
//	<label f1 f2>         records
//	[a b]                 lists
//	#{a b}                sets
//	{k: v k2: v2}         dictionaries
//
// The json and yaml formats render ir.ToAny of the node; the ir format
// renders the node's own JSON form.
//
// # Usage
//
//	node, _, err := parse.DecodeString(`{3'key5"value}`)
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// # Related Packages
//
//   - github.com/signadot/go-syrup/ir - value tree
//   - github.com/signadot/go-syrup/parse - decode syrup to ir
package encode
