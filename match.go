package grfon

import (
	"github.com/signadot/grfon-format/go-grfon/debug"
	"github.com/signadot/grfon-format/go-grfon/ir"
)

type MatchConfig struct {
	// ListSubset lets every unkeyed child of the match find a distinct
	// matching child of the document, in any order.  Otherwise lists
	// match position by position and must have equal length.
	ListSubset bool
}

type MatchOpt func(*MatchConfig)

func MatchListSubset(v bool) MatchOpt {
	return func(c *MatchConfig) { c.ListSubset = v }
}

// Match reports whether doc matches match.  An empty value in match
// matches anything, other values match equal values and collections
// match collections holding at least the keys of match with matching
// children.
func Match(doc, match *ir.Node, opts ...MatchOpt) bool {
	cfg := &MatchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.match(doc, match)
}

func (c *MatchConfig) match(doc, match *ir.Node) bool {
	if match == nil || (match.Type == ir.ValueType && match.String == "") {
		return true
	}
	if doc == nil || doc.Type != match.Type {
		return false
	}
	if match.Type == ir.ValueType {
		return doc.String == match.String
	}
	for k, mv := range match.Fields {
		if !c.match(doc.Get(k), mv) {
			if debug.Match() {
				debug.Logf("match: field %q differs\n", k)
			}
			return false
		}
	}
	if c.ListSubset {
		return c.pairValues(doc, match) != nil
	}
	if len(doc.Values) != len(match.Values) {
		return false
	}
	for i, mv := range match.Values {
		if !c.match(doc.Values[i], mv) {
			return false
		}
	}
	return true
}

// pairValues assigns each unkeyed child of match the first unused
// matching child of doc.  The result is nil if some child finds none.
func (c *MatchConfig) pairValues(doc, match *ir.Node) []int {
	used := make([]bool, len(doc.Values))
	res := make([]int, 0, len(match.Values))
	for _, mv := range match.Values {
		found := -1
		for i, dv := range doc.Values {
			if !used[i] && c.match(dv, mv) {
				found = i
				break
			}
		}
		if found == -1 {
			return nil
		}
		used[found] = true
		res = append(res, found)
	}
	return res
}

// Trim returns a copy of doc holding only what match selects: keys of
// match and, for each unkeyed child of match, the first unused matching
// child of doc.  Values and nodes selected by an empty match value are
// copied whole.
func Trim(match, doc *ir.Node) *ir.Node {
	if doc == nil {
		return nil
	}
	if match == nil || match.Type == ir.ValueType || doc.Type == ir.ValueType {
		return doc.Clone()
	}
	res := ir.NewCollection()
	res.Line = doc.Line
	res.Compact = doc.Compact
	for k, dv := range doc.Fields {
		mv := match.Get(k)
		if mv == nil {
			continue
		}
		res.Set(k, Trim(mv, dv))
	}
	c := &MatchConfig{ListSubset: true}
	used := make([]bool, len(doc.Values))
	for _, mv := range match.Values {
		for i, dv := range doc.Values {
			if !used[i] && c.match(dv, mv) {
				used[i] = true
				res.Append(Trim(mv, dv))
				break
			}
		}
	}
	return res
}
