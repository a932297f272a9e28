package ir

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Text returns the string held by a value node, or def.
func (y *Node) Text(def string) string {
	if !y.IsValue() {
		return def
	}
	return y.String
}

func (y *Node) Int(def int) int {
	if !y.IsValue() {
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(y.String))
	if err != nil {
		return def
	}
	return i
}

func (y *Node) Float(def float64) float64 {
	if !y.IsValue() {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(y.String), 64)
	if err != nil {
		return def
	}
	return f
}

// Bool interprets a value by its first character: one of "1yYtT" is true,
// anything else, including the empty string, is false.  Collections yield
// def.
func (y *Node) Bool(def bool) bool {
	if !y.IsValue() {
		return def
	}
	r, _ := utf8.DecodeRuneInString(y.String)
	return strings.ContainsRune("1yYtT", r)
}

func (y *Node) GetString(key, def string) string {
	return y.Get(key).Text(def)
}

func (y *Node) GetInt(key string, def int) int {
	return y.Get(key).Int(def)
}

func (y *Node) GetFloat(key string, def float64) float64 {
	return y.Get(key).Float(def)
}

func (y *Node) GetBool(key string, def bool) bool {
	v := y.Get(key)
	if v == nil {
		return def
	}
	return v.Bool(def)
}

// GetCollection returns the collection stored under key.  If there is none
// it returns a new empty collection when defaultToEmpty is set and nil
// otherwise.  The empty collection is not inserted into y.
func (y *Node) GetCollection(key string, defaultToEmpty bool) *Node {
	v := y.Get(key)
	if v.IsCollection() {
		return v
	}
	if defaultToEmpty {
		return NewCollection()
	}
	return nil
}

// GetStringList returns the unkeyed values of the collection under key.
// Nested collections in the list are skipped.  A single value under key is
// returned as a list of one.
func (y *Node) GetStringList(key string, def []string) []string {
	v := y.Get(key)
	switch {
	case v == nil:
		return def
	case v.IsValue():
		return []string{v.String}
	}
	res := make([]string, 0, len(v.Values))
	for _, e := range v.Values {
		if e.IsValue() {
			res = append(res, e.String)
		}
	}
	return res
}
