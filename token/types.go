package token

type Type int

const (
	TBool Type = iota
	TInteger
	TBytes
	TString
	TSymbol
	TDict
	TList
	TRecord
	TSet
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TBool:    "boolean",
		TInteger: "integer",
		TBytes:   "byte string",
		TString:  "string",
		TSymbol:  "symbol",
		TDict:    "dictionary",
		TList:    "list",
		TRecord:  "record",
		TSet:     "set",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// IsContainer reports whether t is a bracketed form.
func (t Type) IsContainer() bool {
	switch t {
	case TDict, TList, TRecord, TSet:
		return true
	}
	return false
}

// Lead classifies a value by its leading byte.  It does not classify digit
// prefixed forms; see Delim.
func Lead(c byte) (Type, bool) {
	switch c {
	case 't', 'f':
		return TBool, true
	case '{':
		return TDict, true
	case '[':
		return TList, true
	case '<':
		return TRecord, true
	case '#':
		return TSet, true
	}
	return 0, false
}

// Delim classifies a digit prefixed value by the byte which follows its
// digit run.
func Delim(c byte) (Type, bool) {
	switch c {
	case '+', '-':
		return TInteger, true
	case ':':
		return TBytes, true
	case '"':
		return TString, true
	case '\'':
		return TSymbol, true
	}
	return 0, false
}

// Opener returns the opening marker of a container type.
func Opener(t Type) byte {
	switch t {
	case TDict:
		return '{'
	case TList:
		return '['
	case TRecord:
		return '<'
	case TSet:
		return '#'
	}
	return 0
}

// Closer returns the closing marker of a container type.
func Closer(t Type) byte {
	switch t {
	case TDict:
		return '}'
	case TList:
		return ']'
	case TRecord:
		return '>'
	case TSet:
		return '$'
	}
	return 0
}

func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Digits returns the end of the maximal run of decimal digits in d
// starting at off.  It returns off if d[off] is not a digit.
func Digits(d []byte, off int) int {
	i := off
	for i < len(d) && IsDigit(d[i]) {
		i++
	}
	return i
}
