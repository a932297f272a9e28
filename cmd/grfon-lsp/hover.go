package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	text := hoverText(doc, params.Position)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

func hoverText(doc *document, at protocol.Position) string {
	lines := splitLines(doc.content)
	line := int(at.Line) + 1
	col := 0
	if int(at.Line) < len(lines) {
		col = byteCol(lines[at.Line], at.Character)
	}
	path, node := findNode(doc, line, col)
	if node == nil {
		return ""
	}
	return buildHoverText(path, node)
}

// findNode returns the node starting last on line at or before col, or
// the first one on line if all start after col.
func findNode(doc *document, line, col int) (string, *ir.Node) {
	var (
		bestPath string
		bestNode *ir.Node
		bestPos  token.Pos
	)
	_ = doc.node.Walk(func(path string, n *ir.Node) error {
		pos, ok := doc.positions[n]
		if !ok || pos.Line != line || n == doc.node {
			return nil
		}
		better := false
		switch {
		case bestNode == nil:
			better = true
		case pos.Col <= col && (bestPos.Col > col || bestPos.Col < pos.Col):
			better = true
		case pos.Col > col && bestPos.Col > col && pos.Col < bestPos.Col:
			better = true
		}
		if better {
			bestPath, bestNode, bestPos = path, n, pos
		}
		return nil
	})
	return bestPath, bestNode
}

func buildHoverText(path string, node *ir.Node) string {
	parts := []string{fmt.Sprintf("**Path:** `%s`", path)}
	parts = append(parts, fmt.Sprintf("**Type:** %s", node.Type))
	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func valueInfo(node *ir.Node) string {
	if node.Type == ir.CollectionType {
		return fmt.Sprintf("%d keys, %d items", node.KeyCount(), node.Len())
	}
	if node.String == "" {
		return "empty"
	}
	val := node.String
	if len([]rune(val)) > 50 {
		val = string([]rune(val)[:50]) + "..."
	}
	return fmt.Sprintf("`%s`", val)
}
