package main

import (
	"context"
	"sync"

	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/parse"
	"github.com/signadot/grfon-format/go-grfon/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text with its parse.  Documents are replaced, not
// modified, so a *document may be used after the lock is released.
type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	diags     parse.Diagnostics
	positions map[*ir.Node]token.Pos
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[*ir.Node]token.Pos)
	node, diags := parse.ParseString(content, parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		diags:     diags,
		positions: positions,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.log.Debug("open", "uri", uri, "diagnostics", len(doc.diags))
	return s.publishDiagnostics(ctx, doc)
}

// DidChange expects full document changes, the only kind announced in
// Initialize.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(uri, content, params.TextDocument.Version)
	s.log.Debug("change", "uri", uri, "version", doc.version, "diagnostics", len(doc.diags))
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	if s.conn == nil {
		return nil
	}
	// clear what was published for the document
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
}
