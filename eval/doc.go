// Package eval evaluates expr-lang expressions against decoded values.
//
// The document is bound to the variable v as plain Go values: booleans,
// ints, strings (for both strings and symbols), []byte, []any for lists
// and sets, map[string]any for dictionaries with text keys and records
// (as {"label": ..., "fields": [...]}), and a list of {"key", "value"}
// maps for other dictionaries.
//
// Besides the expr-lang builtins, expressions may call
//
//	getpath(p)   the value at path p of the document, or nil
//	listpath(p)  the values matching path p
//	decode(s)    the value encoded in the syrup string s
//	typeof(p)    the type name of the node at path p
//	getenv(k)    the environment variable k
package eval
