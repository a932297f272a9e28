package main

import (
	"context"
	"slices"

	"github.com/signadot/grfon-format/go-grfon/ir"
	"go.lsp.dev/protocol"
)

// Completion offers the keys already used in the document.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{Items: keyCompletions(doc.node)}, nil
}

func keyCompletions(root *ir.Node) []protocol.CompletionItem {
	if root == nil {
		return []protocol.CompletionItem{}
	}
	seen := map[string]bool{}
	_ = root.Walk(func(_ string, n *ir.Node) error {
		for k := range n.Fields {
			seen[k] = true
		}
		return nil
	})
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	res := make([]protocol.CompletionItem, 0, len(keys))
	for _, k := range keys {
		res = append(res, protocol.CompletionItem{
			Label:      k,
			Kind:       protocol.CompletionItemKindProperty,
			InsertText: k + ": ",
		})
	}
	return res
}
