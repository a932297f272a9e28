package ir

import (
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type    Type
	Line    int
	Compact bool

	String string
	Fields map[string]*Node
	Values []*Node
}

func FromString(v string) *Node {
	return &Node{Type: ValueType, String: v}
}

func FromInt(v int64) *Node {
	return FromString(strconv.FormatInt(v, 10))
}

func FromFloat(f float64) *Node {
	return FromString(strconv.FormatFloat(f, 'g', -1, 64))
}

func FromBool(v bool) *Node {
	return FromString(strconv.FormatBool(v))
}

func NewCollection() *Node {
	return &Node{Type: CollectionType}
}

// FromMap returns a key-only collection holding the entries of m.
func FromMap(m map[string]*Node) *Node {
	res := NewCollection()
	if len(m) != 0 {
		res.Fields = maps.Clone(m)
	}
	return res
}

// FromSlice returns a list-only collection holding vs in order.
func FromSlice(vs []*Node) *Node {
	res := NewCollection()
	res.Values = slices.Clone(vs)
	return res
}

func FromStrings(vs []string) *Node {
	res := NewCollection()
	for _, v := range vs {
		res.Values = append(res.Values, FromString(v))
	}
	return res
}

func (y *Node) IsValue() bool {
	return y != nil && y.Type == ValueType
}

func (y *Node) IsCollection() bool {
	return y != nil && y.Type == CollectionType
}

// IsEmpty reports whether y is a collection with no children.
func (y *Node) IsEmpty() bool {
	return y.IsCollection() && len(y.Fields) == 0 && len(y.Values) == 0
}

func (y *Node) Get(key string) *Node {
	if !y.IsCollection() {
		return nil
	}
	return y.Fields[key]
}

func (y *Node) Has(key string) bool {
	return y.Get(key) != nil
}

// Set stores v under key, replacing any previous value.
func (y *Node) Set(key string, v *Node) bool {
	if !y.IsCollection() || v == nil {
		return false
	}
	if y.Fields == nil {
		y.Fields = map[string]*Node{}
	}
	y.Fields[key] = v
	return true
}

// Delete removes key and reports whether it was present.
func (y *Node) Delete(key string) bool {
	if !y.Has(key) {
		return false
	}
	delete(y.Fields, key)
	return true
}

func (y *Node) KeyCount() int {
	if !y.IsCollection() {
		return 0
	}
	return len(y.Fields)
}

// Keys returns the keys of y in the order they are encoded.
func (y *Node) Keys() []string {
	if !y.IsCollection() {
		return nil
	}
	return slices.Sorted(maps.Keys(y.Fields))
}

// Len returns the number of unkeyed children.
func (y *Node) Len() int {
	if !y.IsCollection() {
		return 0
	}
	return len(y.Values)
}

func (y *Node) Index(i int) *Node {
	if i < 0 || i >= y.Len() {
		return nil
	}
	return y.Values[i]
}

func (y *Node) SetIndex(i int, v *Node) bool {
	if v == nil || i < 0 || i >= y.Len() {
		return false
	}
	y.Values[i] = v
	return true
}

func (y *Node) RemoveIndex(i int) bool {
	if i < 0 || i >= y.Len() {
		return false
	}
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

func (y *Node) Append(v *Node) bool {
	if !y.IsCollection() || v == nil {
		return false
	}
	y.Values = append(y.Values, v)
	return true
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		Line:    y.Line,
		Compact: y.Compact,
		String:  y.String,
	}
	if y.Fields != nil {
		res.Fields = make(map[string]*Node, len(y.Fields))
		for k, v := range y.Fields {
			res.Fields[k] = v.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit calls f on y and, if f returns true, on each of its children
// (keyed in key order, then unkeyed), and finally on y again with isPost
// set.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, k := range y.Keys() {
			if err := y.Fields[k].Visit(f); err != nil {
				return err
			}
		}
		for _, yy := range y.Values {
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
