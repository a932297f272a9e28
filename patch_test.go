package grfon

import (
	"errors"
	"testing"

	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/ir"
)

func TestPatch(t *testing.T) {
	doc := mustParse(t, "a: 1; b: { c: 2 }; l: { x; y }")
	patch := mustParse(t, `{ op: replace; path: /a; value: 3 }
{ op: remove; path: /b/c }
{ op: add; path: /d; value: x }
{ op: remove; path: /l/0 }`)
	got, err := Patch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, "a: 3; b: { }; d: x; l: { y }")
	if !ir.Equal(got, want) {
		t.Errorf("got\n%s\nwant\n%s", encode.MustString(got), encode.MustString(want))
	}
	if doc.GetString("a", "") != "1" {
		t.Errorf("doc modified")
	}
}

func TestPatchErrors(t *testing.T) {
	doc := mustParse(t, "a: 1")
	tests := []struct {
		name  string
		patch string
	}{
		{name: "not a list", patch: "op: add"},
		{name: "missing path", patch: "{ op: remove; path: /zz }"},
		{name: "failed test", patch: "{ op: test; path: /a; value: 2 }"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Patch(doc, mustParse(t, tc.patch))
			if !errors.Is(err, ErrPatch) {
				t.Errorf("got %v, want %v", err, ErrPatch)
			}
		})
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustParse(t, "a: 1; b: 2; c: { d: 3; e: 4 }")
	patch := mustParse(t, "b: 5; c: { e: 6 }; f: 7")
	got, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, "a: 1; b: 5; c: { d: 3; e: 6 }; f: 7")
	if !ir.Equal(got, want) {
		t.Errorf("got\n%s\nwant\n%s", encode.MustString(got), encode.MustString(want))
	}
}
