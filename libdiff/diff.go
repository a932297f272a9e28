package libdiff

import (
	"slices"

	"github.com/signadot/grfon-format/go-grfon/debug"
	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order.
// Either side may be nil.
func Diff(from, to *ir.Node) []Change {
	d := &differ{}
	d.diff("$", from, to)
	return d.res
}

type differ struct {
	res []Change
}

func (d *differ) add(c Change) {
	d.res = append(d.res, c)
}

func (d *differ) diff(path string, from, to *ir.Node) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil:
		d.add(Change{Path: path, Kind: Added, To: to})
		return
	case to == nil:
		d.add(Change{Path: path, Kind: Removed, From: from})
		return
	}
	if from.Type != to.Type {
		d.add(Change{Path: path, Kind: Changed, From: from, To: to})
		return
	}
	if from.Type == ir.ValueType {
		if from.String != to.String {
			d.add(Change{Path: path, Kind: Changed, From: from, To: to})
		}
		return
	}
	d.fields(path, from, to)
	d.values(path, from, to)
}

func (d *differ) fields(path string, from, to *ir.Node) {
	keys := from.Keys()
	for _, k := range to.Keys() {
		if !from.Has(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		d.diff(ir.KeyPath(path, k), from.Get(k), to.Get(k))
	}
}

// values diffs the unkeyed children.  A removal directly followed by an
// insertion is paired up element-wise and diffed recursively.  Removed
// paths index from, all others index to.
func (d *differ) values(path string, from, to *ir.Node) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from.Values)
	toRunes := mapValues(m, to.Values)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	if debug.Diff() {
		debug.Logf("diff %s: %d unkeyed vs %d, %d runs\n", path, len(from.Values), len(to.Values), len(diffs))
	}
	fi, ti := 0, 0
	var dels []int
	flush := func() {
		for _, i := range dels {
			d.add(Change{Path: ir.IndexPath(path, i), Kind: Removed, From: from.Values[i]})
		}
		dels = dels[:0]
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			flush()
			fi += n
			ti += n
		case diffpatch.DiffDelete:
			for range n {
				dels = append(dels, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(dels) != 0 {
					d.diff(ir.IndexPath(path, ti), from.Values[dels[0]], to.Values[ti])
					dels = dels[1:]
				} else {
					d.add(Change{Path: ir.IndexPath(path, ti), Kind: Added, To: to.Values[ti]})
				}
				ti++
			}
		}
	}
	flush()
}

func mapValues(m map[string]rune, vs []*ir.Node) []rune {
	rs := make([]rune, len(vs))
	for i, v := range vs {
		s := v.Type.String() + "-" + encode.MustString(v, encode.EncodeCompact(true))
		r, ok := m[s]
		if !ok {
			r = rune(len(m))
			m[s] = r
		}
		rs[i] = r
	}
	return rs
}
