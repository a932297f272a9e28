package main

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/grfon-format/go-grfon/token"
	"go.lsp.dev/protocol"
)

// indexes into tokenLegend.TokenTypes
const (
	semComment uint32 = iota
	semString
	semNumber
	semOperator
	semProperty
)

func semanticType(tok *token.Token) uint32 {
	switch tok.Type {
	case token.TComment:
		return semComment
	case token.TKeyword:
		return semProperty
	case token.TValue:
		if _, err := strconv.ParseFloat(strings.TrimSpace(tok.Text), 64); err == nil {
			return semNumber
		}
		return semString
	default:
		return semOperator
	}
}

// semanticTokens encodes the tokens of doc on lines [from, to), 1-based,
// in the relative form of the lsp semantic tokens data.
func semanticTokens(doc *document, from, to int) []uint32 {
	lines := splitLines(doc.content)
	res := []uint32{}
	prev := protocol.Position{}
	for _, tok := range token.Tokenize(doc.content) {
		if tok.Pos.Line < from || tok.Pos.Line >= to || tok.Raw == "" {
			continue
		}
		start := lspPosition(lines, tok.Pos.Line, tok.Pos.Col)
		length := utf16Len(tok.Raw)
		dLine := start.Line - prev.Line
		dChar := start.Character
		if dLine == 0 {
			dChar -= prev.Character
		}
		res = append(res, dLine, dChar, length, semanticType(&tok), 0)
		prev = start
	}
	return res
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc, 1, math.MaxInt)}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	return &protocol.SemanticTokens{Data: semanticTokens(doc, int(r.Start.Line)+1, int(r.End.Line)+2)}, nil
}
