package grfon

import (
	"testing"

	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, diags := parse.ParseString(in)
	if diags.HasErrors() {
		t.Fatalf("parse %q: %v", in, diags)
	}
	return node
}

type matchTest struct {
	in     string
	match  string
	subset bool
	res    bool
}

var matchTests = []matchTest{
	{in: "1", match: "1", res: true},
	{in: "0", match: "1", res: false},
	{in: "x; y", match: "x; y", res: true},
	{in: "x; y", match: "x", res: false},
	{in: "x; y", match: "y", subset: true, res: true},
	{in: "x; y; z", match: "z; x", subset: true, res: true},
	{in: "x; y", match: "x; x", subset: true, res: false},
	{in: "a: b; c: d", match: "a: b", res: true},
	{in: "a: b", match: "a: b; c: d", res: false},
	{in: "a: { b: 1 }", match: "a:", res: true},
	{in: "a: { b: 1 }", match: "a: { b: 2 }", res: false},
	{in: "a: { b: 1; c: 2 }", match: "a: { c: 2 }", res: true},
	{in: "a: b", match: "x", res: false},
	{in: "x", match: "a: b", res: false},
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		doc := mustParse(t, mt.in)
		m := mustParse(t, mt.match)
		if res := Match(doc, m, MatchListSubset(mt.subset)); res != mt.res {
			t.Errorf("match %q on %q (subset %t): got %t want %t", mt.match, mt.in, mt.subset, res, mt.res)
		}
	}
}

func TestMatchNil(t *testing.T) {
	if !Match(nil, nil) {
		t.Error("nil match should match nil doc")
	}
	if Match(nil, ir.FromString("x")) {
		t.Error("value matched nil doc")
	}
	if !Match(ir.FromString("x"), nil) {
		t.Error("nil match should match anything")
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		match, doc, want string
	}{
		{
			match: "a:; l: { x }",
			doc:   "a: 1; b: 2; l: { y; x }",
			want:  "a: 1; l: { x }",
		},
		{
			match: "a: { b: }",
			doc:   "a: { b: { c: 1 }; d: 2 }",
			want:  "a: { b: { c: 1 } }",
		},
		{
			match: "x",
			doc:   "v; x",
			want:  "x",
		},
	}
	for _, tc := range tests {
		got := Trim(mustParse(t, tc.match), mustParse(t, tc.doc))
		want := mustParse(t, tc.want)
		if !ir.Equal(got, want) {
			t.Errorf("trim %q by %q: got\n%s\nwant\n%s", tc.doc, tc.match, encode.MustString(got), encode.MustString(want))
		}
	}
}
