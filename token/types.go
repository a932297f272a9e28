package token

import "fmt"

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TKeyword
	TColon
	TValue
	TComment
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TKeyword: "TKeyword",
		TColon:   "TColon",
		TValue:   "TValue",
		TComment: "TComment",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// Token is one lexical unit of a GRFON document.
//
// Raw is the source text the token was scanned from (without trimmed
// whitespace).  Text is the decoded content: the unescaped keyword or value,
// or the comment body after "//".
type Token struct {
	Type TokenType
	Pos  Pos
	Raw  string
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos)
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Text, t.Pos)
}
