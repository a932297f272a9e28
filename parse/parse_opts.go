package parse

import (
	"log/slog"

	"github.com/signadot/grfon-format/go-grfon/format"
	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/token"
)

type parseOpts struct {
	format    format.Format
	log       *slog.Logger
	positions map[*ir.Node]token.Pos
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{
		format: format.GRFONFormat,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.TokenLogger(o.log)}
}

type ParseOption func(*parseOpts)

func ParseGRFON() ParseOption {
	return ParseFormat(format.GRFONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseLogger traces tokens and diagnostics at debug level.
func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) {
		if l != nil {
			o.log = l
		}
	}
}

// ParsePositions records the position of the token each node was built
// from in m.  Empty values added for a keyword without a value get the
// keyword's position.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
