package token

import (
	"fmt"
	"io"
)

// PrintTokens writes one line per token under a heading naming their
// source.  Decoded text is shown only when it differs from the source.
func PrintTokens(w io.Writer, toks []Token, source string) {
	fmt.Fprintf(w, "%s: %d tokens\n", source, len(toks))
	for i := range toks {
		t := &toks[i]
		line := fmt.Sprintf("\t%d:%d %s %q", t.Pos.Line, t.Pos.Col, t.Type, t.Raw)
		if t.Text != t.Raw {
			line += fmt.Sprintf(" -> %q", t.Text)
		}
		fmt.Fprintln(w, line)
	}
}
