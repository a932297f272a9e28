package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc, int(params.Options.TabSize)), nil
}

// formatEdits replaces the whole text of doc by its encoding.  Documents
// with errors or comments are left alone, as encoding drops comments.
func formatEdits(doc *document, indent int) []protocol.TextEdit {
	if doc.diags.HasErrors() || doc.node == nil || hasComments(doc.content) {
		return nil
	}
	var opts []encode.EncodeOption
	if indent > 0 {
		opts = append(opts, encode.EncodeIndent(indent))
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc.node, buf, opts...); err != nil {
		return nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}
}

func hasComments(content string) bool {
	for _, tok := range token.Tokenize(content) {
		if tok.Type == token.TComment {
			return true
		}
	}
	return false
}
