package main

import (
	"context"

	"github.com/signadot/grfon-format/go-grfon/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(doc.version),
		Diagnostics: validateDocument(doc),
	})
}

func validateDocument(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	lines := splitLines(doc.content)
	for _, d := range doc.diags {
		start := lspPosition(lines, d.Line, d.Col)
		end := start
		end.Character++
		sev := protocol.DiagnosticSeverityError
		if d.Severity == parse.SeverityWarning {
			sev = protocol.DiagnosticSeverityWarning
		}
		res = append(res, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: sev,
			Source:   "grfon",
			Message:  d.Message,
		})
	}
	return res
}
