package token

import (
	"errors"
	"io"
	"iter"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Tokenizer scans a LineSource one line at a time.
//
// The only state carried between tokens is the current line, the cursor in
// it, the line number and whether a keyword may start at the cursor.  A key
// is possible at the start of every line, after ';', '{' and '}', and not
// after any other token.
type Tokenizer struct {
	src LineSource
	log *slog.Logger

	line        string
	pos         int
	lnum        int
	loaded      bool
	keyPossible bool
}

type TokenOpt func(*Tokenizer)

// TokenLogger traces every token produced at debug level.
func TokenLogger(l *slog.Logger) TokenOpt {
	return func(t *Tokenizer) {
		if l != nil {
			t.log = l
		}
	}
}

func NewTokenizer(src LineSource, opts ...TokenOpt) *Tokenizer {
	t := &Tokenizer{
		src: src,
		log: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Line returns the number of the line the tokenizer is on.
func (t *Tokenizer) Line() int {
	return t.lnum
}

// Next returns the next token, io.EOF at the end of input, or a
// *TokenizeErr if the LineSource fails.
func (t *Tokenizer) Next() (Token, error) {
	for {
		if !t.loaded || t.pos >= len(t.line) {
			ln, err := t.src.ReadLine()
			if err != nil {
				t.loaded = false
				if errors.Is(err, io.EOF) {
					return Token{}, io.EOF
				}
				return Token{}, NewTokenizeErr(err, Pos{Line: t.lnum + 1})
			}
			t.line = ln
			t.pos = 0
			t.lnum = t.src.Line()
			t.loaded = true
			t.keyPossible = true
		}
		t.skipBlank()
		if t.pos >= len(t.line) {
			continue
		}
		tok := t.scan()
		t.log.Debug("token", "type", tok.Type, "text", tok.Text, "line", tok.Pos.Line, "col", tok.Pos.Col)
		return tok, nil
	}
}

// All yields tokens until the end of input.  A source error is yielded
// once, as the last element.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Tokenize returns all tokens of a document held in memory.
func Tokenize(doc string, opts ...TokenOpt) []Token {
	var res []Token
	for tok := range NewTokenizer(NewStringSource(doc), opts...).All() {
		res = append(res, tok)
	}
	return res
}

// skipBlank skips spaces, tabs and semicolons; a semicolon ends a
// statement just like a line break.
func (t *Tokenizer) skipBlank() {
	for t.pos < len(t.line) {
		switch t.line[t.pos] {
		case ' ', '\t':
		case ';':
			t.keyPossible = true
		default:
			return
		}
		t.pos++
	}
}

func (t *Tokenizer) scan() Token {
	start := t.pos
	rest := t.line[start:]
	p := Pos{Line: t.lnum, Col: start}
	switch rest[0] {
	case '{':
		t.pos++
		t.keyPossible = true
		return Token{Type: TLCurl, Pos: p, Raw: "{", Text: "{"}
	case '}':
		t.pos++
		t.keyPossible = true
		return Token{Type: TRCurl, Pos: p, Raw: "}", Text: "}"}
	}
	if rest[0] == ':' && !strings.HasPrefix(rest, urlSep) {
		t.pos++
		t.keyPossible = false
		return Token{Type: TColon, Pos: p, Raw: ":", Text: ":"}
	}
	if strings.HasPrefix(rest, "//") {
		t.pos = len(t.line)
		t.keyPossible = false
		return Token{Type: TComment, Pos: p, Raw: rest, Text: rest[2:]}
	}
	end, colon := scanStatement(t.line, start)
	typ := TValue
	if t.keyPossible && colon != -1 {
		typ = TKeyword
		end = colon
	}
	raw := trimBlankRight(t.line[start:end])
	t.pos = end
	t.keyPossible = false
	return Token{Type: typ, Pos: p, Raw: raw, Text: Unescape(raw)}
}

// scanStatement finds where the text starting at start ends: at the first
// unescaped ';', '{', '}' or "//", or at the end of the line.  It also
// returns the offset of the first unescaped ':' before that point which is
// not part of "://", or -1.
func scanStatement(ln string, start int) (end, colon int) {
	colon = -1
	i := start
	for i < len(ln) {
		switch ln[i] {
		case '\\':
			if i+1 == len(ln) {
				return len(ln), colon
			}
			_, sz := utf8.DecodeRuneInString(ln[i+1:])
			i += 1 + sz
			continue
		case ':':
			if strings.HasPrefix(ln[i:], urlSep) {
				i += len(urlSep)
				continue
			}
			if colon == -1 {
				colon = i
			}
		case ';', '{', '}':
			return i, colon
		case '/':
			if strings.HasPrefix(ln[i:], "//") {
				return i, colon
			}
		}
		i++
	}
	return len(ln), colon
}

// trimBlankRight trims trailing spaces and tabs that are not escaped.
func trimBlankRight(s string) string {
	for n := len(s); n > 0; n-- {
		c := s[n-1]
		if c != ' ' && c != '\t' {
			return s[:n]
		}
		bs := 0
		for j := n - 2; j >= 0 && s[j] == '\\'; j-- {
			bs++
		}
		if bs%2 == 1 {
			return s[:n]
		}
	}
	return ""
}
