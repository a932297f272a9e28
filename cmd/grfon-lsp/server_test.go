package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []protocol.Diagnostic
	}{
		{name: "clean", content: "a: 1\nb: { c }\n", want: []protocol.Diagnostic{}},
		{
			name:    "unclosed",
			content: "a: { b: 1",
			want: []protocol.Diagnostic{{
				Range:    protocol.Range{Start: protocol.Position{Line: 0, Character: 3}, End: protocol.Position{Line: 0, Character: 4}},
				Severity: protocol.DiagnosticSeverityWarning,
				Source:   "grfon",
				Message:  "collection is not closed",
			}},
		},
		{
			name:    "unmatched",
			content: "a: 1\n}",
			want: []protocol.Diagnostic{{
				Range:    protocol.Range{Start: protocol.Position{Line: 1, Character: 0}, End: protocol.Position{Line: 1, Character: 1}},
				Severity: protocol.DiagnosticSeverityError,
				Source:   "grfon",
				Message:  "unmatched closing delimiter",
			}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := newDocument("file:///x.grfon", tc.content, 1)
			if d := cmp.Diff(tc.want, validateDocument(doc)); d != "" {
				t.Errorf("diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestFormatEdits(t *testing.T) {
	doc := newDocument("u", "b: 1; a: 2", 1)
	want := []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 1, Character: 0},
		},
		NewText: "a: 2\nb: 1\n",
	}}
	if d := cmp.Diff(want, formatEdits(doc, 0)); d != "" {
		t.Errorf("diff (-want +got):\n%s", d)
	}
	if got := formatEdits(newDocument("u", "a: 2\nb: 1\n", 1), 0); got == nil || len(got) != 0 {
		t.Errorf("formatted input: got %v", got)
	}
	if got := formatEdits(newDocument("u", "b: 1 // keep\na: 2", 1), 0); got != nil {
		t.Errorf("comments: got %v", got)
	}
	if got := formatEdits(newDocument("u", "}", 1), 0); got != nil {
		t.Errorf("errors: got %v", got)
	}
}

func TestHoverText(t *testing.T) {
	doc := newDocument("u", "a: { b: 1 }\nc: x", 1)
	tests := []struct {
		pos  protocol.Position
		want string
	}{
		{
			pos:  protocol.Position{Line: 1, Character: 3},
			want: "**Path:** `$.c`\n\n**Type:** Value\n\n**Value:** `x`",
		},
		{
			pos:  protocol.Position{Line: 0, Character: 0},
			want: "**Path:** `$.a`\n\n**Type:** Collection\n\n**Value:** 1 keys, 0 items",
		},
		{
			pos:  protocol.Position{Line: 0, Character: 9},
			want: "**Path:** `$.a.b`\n\n**Type:** Value\n\n**Value:** `1`",
		},
		{pos: protocol.Position{Line: 5, Character: 0}},
	}
	for _, tc := range tests {
		if got := hoverText(doc, tc.pos); got != tc.want {
			t.Errorf("%v: got %q want %q", tc.pos, got, tc.want)
		}
	}
}

func TestSemanticTokens(t *testing.T) {
	tests := []struct {
		content string
		want    []uint32
	}{
		{
			content: "a: 1 // n",
			want:    []uint32{0, 0, 1, semProperty, 0, 0, 1, 1, semOperator, 0, 0, 2, 1, semNumber, 0, 0, 2, 4, semComment, 0},
		},
		{
			content: "a: x\n{ y }",
			want: []uint32{
				0, 0, 1, semProperty, 0,
				0, 1, 1, semOperator, 0,
				0, 2, 1, semString, 0,
				1, 0, 1, semOperator, 0,
				0, 2, 1, semString, 0,
				0, 2, 1, semOperator, 0,
			},
		},
		{
			content: "é: x",
			want:    []uint32{0, 0, 1, semProperty, 0, 0, 1, 1, semOperator, 0, 0, 2, 1, semString, 0},
		},
	}
	for _, tc := range tests {
		doc := newDocument("u", tc.content, 1)
		if d := cmp.Diff(tc.want, semanticTokens(doc, 1, 100)); d != "" {
			t.Errorf("%q: diff (-want +got):\n%s", tc.content, d)
		}
	}
	doc := newDocument("u", "a: x\nb: y\nc: z", 1)
	got := semanticTokens(doc, 2, 3)
	want := []uint32{1, 0, 1, semProperty, 0, 0, 1, 1, semOperator, 0, 0, 2, 1, semString, 0}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("range: diff (-want +got):\n%s", d)
	}
}

func TestKeyCompletions(t *testing.T) {
	doc := newDocument("u", "a: { b: 1 }; c: 2; { a: 3 }", 1)
	var got []string
	for _, item := range keyCompletions(doc.node) {
		got = append(got, item.Label)
	}
	if d := cmp.Diff([]string{"a", "b", "c"}, got); d != "" {
		t.Errorf("diff (-want +got):\n%s", d)
	}
}

func TestDocumentStore(t *testing.T) {
	s := NewServer(serverLogger())
	ctx := context.Background()
	uri := protocol.DocumentURI("file:///a.grfon")
	err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "a: 1", Version: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "a: 2"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(string(uri))
	if doc == nil || doc.version != 2 || doc.node.GetString("a", "") != "2" {
		t.Fatalf("after change: %+v", doc)
	}
	if err := s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}); err != nil {
		t.Fatal(err)
	}
	if s.docs.get(string(uri)) != nil {
		t.Errorf("document still open")
	}
}
