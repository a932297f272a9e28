package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed "$" rooted path.  Each element selects either a keyed
// child (Field), an unkeyed child (Index), every unkeyed child (IndexAll)
// or every node in the subtree (Subtree).
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !x.prevSubtree(p) {
				buf.WriteByte('.')
			}
			buf.WriteString(PathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func (p *Path) prevSubtree(root *Path) bool {
	for x := root; x != nil; x = x.Next {
		if x.Next == p {
			return x.Subtree
		}
	}
	return false
}

// PathField returns key as it appears in a path, quoted if needed.
func PathField(key string) string {
	if key != "" && strings.IndexAny(key, "'.*$[]\\") == -1 {
		return key
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(key) + "'"
}

// KeyPath extends the path parent by the keyed child key.
func KeyPath(parent, key string) string {
	return parent + "." + PathField(key)
}

// IndexPath extends the path parent by the unkeyed child i.
func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
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
			if len(frag) == 2 {
				return nil
			}
			rest = frag[2:]
			if rest[0] != '[' {
				// "$..name" selects the field name anywhere below.
				rest = "." + rest
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
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
	default:
		return fmt.Errorf("expected '.' or '['")
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
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case escaped:
			escaped = false
			res = append(res, c)
		case c == '\\':
			escaped = true
		case c == '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at path, or nil if there is none.  Paths
// containing "[*]" or ".." select more than one node and are rejected; use
// ListPath for those.
func (y *Node) GetPath(path string) (*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil && res != nil; yp = yp.Next {
		switch {
		case yp.IndexAll:
			return nil, fmt.Errorf("%w: [*] in get %q", ErrPath, path)
		case yp.Subtree:
			return nil, fmt.Errorf("%w: recursive .. in get %q", ErrPath, path)
		case yp.Index != nil:
			if !res.IsCollection() {
				return nil, fmt.Errorf("%w: index %d into %s", ErrPath, *yp.Index, res.Type)
			}
			res = res.Index(*yp.Index)
		case yp.Field != nil:
			if !res.IsCollection() {
				return nil, fmt.Errorf("%w: field %q of %s", ErrPath, *yp.Field, res.Type)
			}
			res = res.Get(*yp.Field)
		}
	}
	return res, nil
}

// ListPath appends every node matching path to dst.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y)
	}
	switch {
	case yp.Subtree:
		_ = y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			if yp.Next == nil {
				dst = append(dst, node)
				return true, nil
			}
			dst = node.listPath(dst, yp.Next)
			return true, nil
		})
		return dst
	case yp.Field != nil:
		if v := y.Get(*yp.Field); v != nil {
			dst = v.listPath(dst, yp.Next)
		}
		return dst
	case yp.Index != nil:
		if v := y.Index(*yp.Index); v != nil {
			dst = v.listPath(dst, yp.Next)
		}
		return dst
	case yp.IndexAll:
		for _, v := range y.Values {
			dst = v.listPath(dst, yp.Next)
		}
		return dst
	}
	// "$" alone
	return y.listPath(dst, yp.Next)
}

// Walk calls f with the path and node of y and every node below it, keyed
// children in key order before unkeyed ones.  Walk stops at the first
// error f returns.
func (y *Node) Walk(f func(path string, n *Node) error) error {
	return y.walk("$", f)
}

func (y *Node) walk(path string, f func(string, *Node) error) error {
	if err := f(path, y); err != nil {
		return err
	}
	for _, k := range y.Keys() {
		if err := y.Fields[k].walk(KeyPath(path, k), f); err != nil {
			return err
		}
	}
	for i, v := range y.Values {
		if err := v.walk(IndexPath(path, i), f); err != nil {
			return err
		}
	}
	return nil
}
