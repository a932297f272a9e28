package parse

import (
	"fmt"
	"log/slog"

	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/token"
)

const (
	msgUnmatchedClose = "unmatched closing delimiter"
	msgNoColon        = "colon not found after keyword"
	msgUnclosed       = "collection is not closed"
)

// Builder assembles a node tree from a token stream.
//
// The root collection is created when the first node is inserted.  Each
// '{' pushes a new collection which the matching '}' pops; the root itself
// is never popped.  A keyword must be followed by a colon and names the
// next value or collection inserted.
type Builder struct {
	log       *slog.Logger
	positions map[*ir.Node]token.Pos

	stack []*ir.Node
	open  []token.Pos
	diags Diagnostics

	key      string
	keyTok   token.Token
	hasKey   bool
	colonDue bool
}

func NewBuilder(opts ...ParseOption) *Builder {
	return newBuilder(newParseOpts(opts))
}

func newBuilder(pOpts *parseOpts) *Builder {
	return &Builder{
		log:       pOpts.log,
		positions: pOpts.positions,
	}
}

// Push feeds the next token to the builder.
func (b *Builder) Push(tok token.Token) {
	if b.colonDue && tok.Type != token.TColon {
		b.report(b.keyTok, SeverityError, msgNoColon)
		b.hasKey = false
		b.colonDue = false
	}
	switch tok.Type {
	case token.TColon:
		b.colonDue = false
	case token.TComment:
	case token.TKeyword:
		b.flushKey(tok)
		b.key = tok.Text
		b.keyTok = tok
		b.hasKey = true
		b.colonDue = true
	case token.TValue:
		b.insert(&ir.Node{Type: ir.ValueType, String: tok.Text, Line: tok.Pos.Line}, tok)
	case token.TLCurl:
		c := &ir.Node{Type: ir.CollectionType, Line: tok.Pos.Line}
		b.insert(c, tok)
		b.stack = append(b.stack, c)
		b.open = append(b.open, tok.Pos)
	case token.TRCurl:
		b.flushKey(tok)
		if len(b.stack) < 2 {
			b.report(tok, SeverityError, msgUnmatchedClose)
			return
		}
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.open = b.open[:len(b.open)-1]
		if top.Line == tok.Pos.Line {
			top.Compact = true
		}
	}
}

// Finish ends the token stream and returns the root, or nil if nothing was
// inserted, together with everything reported along the way.
func (b *Builder) Finish(line int) (*ir.Node, Diagnostics) {
	end := token.Token{Pos: token.Pos{Line: line}}
	if b.colonDue {
		b.report(b.keyTok, SeverityError, msgNoColon)
		b.hasKey = false
		b.colonDue = false
	}
	b.flushKey(end)
	for i := len(b.open) - 1; i >= 0; i-- {
		b.diags = append(b.diags, Diagnostic{
			Line:     b.open[i].Line,
			Col:      b.open[i].Col,
			Severity: SeverityWarning,
			Message:  msgUnclosed,
		})
	}
	if len(b.stack) == 0 {
		return nil, b.diags
	}
	return b.stack[0], b.diags
}

// flushKey gives a keyword whose value never came an empty value.
func (b *Builder) flushKey(at token.Token) {
	if !b.hasKey {
		return
	}
	b.insert(&ir.Node{Type: ir.ValueType, Line: b.keyTok.Pos.Line}, b.keyTok)
	b.log.Debug("empty value", "key", b.keyTok.Text, "line", b.keyTok.Pos.Line, "before", at.Type)
}

func (b *Builder) insert(n *ir.Node, at token.Token) {
	if len(b.stack) == 0 {
		root := &ir.Node{Type: ir.CollectionType, Line: at.Pos.Line}
		b.stack = append(b.stack, root)
		if b.positions != nil {
			b.positions[root] = token.Pos{Line: at.Pos.Line}
		}
	}
	if b.positions != nil {
		b.positions[n] = at.Pos
	}
	top := b.stack[len(b.stack)-1]
	if b.hasKey {
		top.Set(b.key, n)
		b.hasKey = false
		return
	}
	top.Append(n)
}

func (b *Builder) report(at token.Token, sev Severity, msg string) {
	d := Diagnostic{Line: at.Pos.Line, Col: at.Pos.Col, Severity: sev, Message: msg}
	if at.Type == token.TKeyword {
		d.Message = fmt.Sprintf("%s %q", msg, at.Text)
	}
	b.log.Debug("diagnostic", "line", d.Line, "col", d.Col, "severity", d.Severity, "message", d.Message)
	b.diags = append(b.diags, d)
}
