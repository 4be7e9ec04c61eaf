// Package token provides the lexical layer of Syrup decoding.
//
// Every Syrup value form is recognizable from at most two lexemes: either a
// single leading byte ([Lead]), or a decimal digit run ([Digits]) followed
// by a delimiter byte ([Delim]).  [PosDoc] and [Pos] turn byte offsets into
// line and column information for diagnostics.
package token
