package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the path of y from the root of its tree.
//
//   - `[i]` selects element, field or dictionary value i
//   - `.name` selects the dictionary value under the String or Symbol key "name",
//     when only one key has that text
//   - `{i}` selects dictionary key i
//   - `<>` selects a record label
func (y *Node) Path() string {
	p := y.Parent
	if p == nil {
		return "$"
	}
	i := y.ParentIndex
	switch p.Type {
	case RecordType:
		if i == LabelIndex {
			return p.Path() + "<>"
		}
		return p.Path() + "[" + strconv.Itoa(i) + "]"
	case SeqType, SetType:
		return p.Path() + "[" + strconv.Itoa(i) + "]"
	case DictType:
		if i < len(p.Fields) && p.Fields[i] == y {
			return p.Path() + "{" + strconv.Itoa(i) + "}"
		}
		if k := p.Fields[i]; (k.Type == StringType || k.Type == SymbolType) && p.fieldIndex(k.String) == i {
			return p.Path() + "." + pathString(k.String)
		}
		return p.Path() + "[" + strconv.Itoa(i) + "]"
	default:
		panic("parent but not in container")
	}
}

type Path struct {
	IndexAll bool
	Index    *int
	Key      *int
	Field    *string
	Label    bool
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Label:
			buf.WriteString("<>")
		case x.Field != nil:
			buf.WriteString("." + pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		case x.Key != nil:
			fmt.Fprintf(buf, "{%d}", *x.Key)
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '<':
		if !strings.HasPrefix(frag, "<>") {
			return fmt.Errorf("%w: expected '<>'", ErrPath)
		}
		parent.Label = true
		rest = frag[2:]
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("%w: expected '[' <index> ']'", ErrPath)
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	case '{':
		i := strings.IndexByte(frag[1:], '}')
		if i == -1 {
			return fmt.Errorf("%w: expected '{' <index> '}'", ErrPath)
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		if all {
			return fmt.Errorf("%w: '{*}' is not supported", ErrPath)
		}
		parent.Key = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("%w: expected '.', '<>', '{' or '['", ErrPath)
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrPath, err)
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("%w: expected field at end of string", ErrPath)
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[<{")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("%w: end of string scanning for \"'\"", ErrPath)
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]<>{}\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// step applies a single path element, returning nil if it selects nothing.
// Indices out of range and elements that do not fit the node's kind give
// errors wrapping both ErrPath and ErrNoValue.
func (y *Node) step(yp *Path) (*Node, error) {
	switch {
	case yp.Label:
		if y.Type != RecordType {
			return nil, fmt.Errorf("%w: %w: expected record, got %s", ErrPath, ErrNoValue, y.Type)
		}
		return y.Label, nil
	case yp.Index != nil:
		if y.Type.IsLeaf() {
			return nil, fmt.Errorf("%w: %w: expected container, got %s", ErrPath, ErrNoValue, y.Type)
		}
		index := *yp.Index
		if index >= len(y.Values) {
			return nil, fmt.Errorf("%w: %w: index out of bounds %d (len %d)", ErrPath, ErrNoValue, index, len(y.Values))
		}
		return y.Values[index], nil
	case yp.Key != nil:
		if y.Type != DictType {
			return nil, fmt.Errorf("%w: %w: expected dict, got %s", ErrPath, ErrNoValue, y.Type)
		}
		index := *yp.Key
		if index >= len(y.Fields) {
			return nil, fmt.Errorf("%w: %w: key index out of bounds %d (len %d)", ErrPath, ErrNoValue, index, len(y.Fields))
		}
		return y.Fields[index], nil
	case yp.Field != nil:
		if y.Type != DictType {
			return nil, fmt.Errorf("%w: %w: expected dict, got %s", ErrPath, ErrNoValue, y.Type)
		}
		if i := y.fieldIndex(*yp.Field); i != -1 {
			return y.Values[i], nil
		}
		return nil, nil
	}
	return y, nil
}

// fieldIndex returns the index of the only String or Symbol key with
// text field, or -1 if there is none or more than one.
func (y *Node) fieldIndex(field string) int {
	res := -1
	for i, f := range y.Fields {
		if (f.Type == StringType || f.Type == SymbolType) && f.String == field {
			if res != -1 {
				return -1
			}
			res = i
		}
	}
	return res
}

// GetPath returns a copy of the node at yPath, or nil if a dictionary
// along the path has no such field.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		res, err = res.step(yp)
		if err != nil {
			return nil, err
		}
		if res == nil {
			return nil, nil
		}
	}
	return res.Clone(), nil
}

// ListPath appends to dst copies of all nodes matching yPath.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp)
}

func (y *Node) listPath(dst []*Node, yp *Path) ([]*Node, error) {
	if yp == nil {
		return append(dst, y.Clone()), nil
	}
	var err error
	if yp.Subtree {
		if err := y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst, err = node.listPath(dst, yp.Next)
			if err != nil {
				return false, err
			}
			return !node.Type.IsLeaf(), nil
		}); err != nil {
			return nil, err
		}
		return dst, nil
	}
	if yp.IndexAll {
		if y.Type.IsLeaf() {
			return dst, nil
		}
		for _, yv := range y.Values {
			dst, err = yv.listPath(dst, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	}
	next, err := y.step(yp)
	if err != nil || next == nil {
		// mismatched kinds select nothing when listing
		return dst, nil
	}
	return next.listPath(dst, yp.Next)
}
