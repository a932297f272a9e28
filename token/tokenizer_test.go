package token

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tk struct {
	Type TokenType
	Text string
}

func kinds(toks []Token) []tk {
	res := make([]tk, len(toks))
	for i, tok := range toks {
		res[i] = tk{tok.Type, tok.Text}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []tk
	}{
		{
			name: "empty",
			in:   "",
			want: []tk{},
		},
		{
			name: "blank lines and semicolons",
			in:   "\n  \t\n;;\n",
			want: []tk{},
		},
		{
			name: "keyed value with comment",
			in:   "test1: foo  // comment\ntest2: { bar\nbaz }",
			want: []tk{
				{TKeyword, "test1"}, {TColon, ":"}, {TValue, "foo"}, {TComment, " comment"},
				{TKeyword, "test2"}, {TColon, ":"}, {TLCurl, "{"}, {TValue, "bar"},
				{TValue, "baz"}, {TRCurl, "}"},
			},
		},
		{
			name: "escapes",
			in:   `foo: semi\;colons; bar:line\nbreak`,
			want: []tk{
				{TKeyword, "foo"}, {TColon, ":"}, {TValue, "semi;colons"},
				{TKeyword, "bar"}, {TColon, ":"}, {TValue, "line\nbreak"},
			},
		},
		{
			name: "compact collection",
			in:   "{ name: Bob; occupation: Builder }",
			want: []tk{
				{TLCurl, "{"},
				{TKeyword, "name"}, {TColon, ":"}, {TValue, "Bob"},
				{TKeyword, "occupation"}, {TColon, ":"}, {TValue, "Builder"},
				{TRCurl, "}"},
			},
		},
		{
			name: "url is not a key or a comment",
			in:   "http://example.com/a//b\nsite: https://example.com // home",
			want: []tk{
				{TValue, "http://example.com/a"}, {TComment, "b"},
				{TKeyword, "site"}, {TColon, ":"}, {TValue, "https://example.com"}, {TComment, " home"},
			},
		},
		{
			name: "colon in value after key",
			in:   "time: 12:30",
			want: []tk{{TKeyword, "time"}, {TColon, ":"}, {TValue, "12:30"}},
		},
		{
			name: "colon in comment does not make a key",
			in:   "bar // note: x",
			want: []tk{{TValue, "bar"}, {TComment, " note: x"}},
		},
		{
			name: "key after closing brace",
			in:   "a: { b } c: d",
			want: []tk{
				{TKeyword, "a"}, {TColon, ":"}, {TLCurl, "{"}, {TValue, "b"}, {TRCurl, "}"},
				{TKeyword, "c"}, {TColon, ":"}, {TValue, "d"},
			},
		},
		{
			name: "nested keyed collection",
			in:   "outer: { inner: { x: 1 } }",
			want: []tk{
				{TKeyword, "outer"}, {TColon, ":"}, {TLCurl, "{"},
				{TKeyword, "inner"}, {TColon, ":"}, {TLCurl, "{"},
				{TKeyword, "x"}, {TColon, ":"}, {TValue, "1"},
				{TRCurl, "}"}, {TRCurl, "}"},
			},
		},
		{
			name: "key keeps inner spaces, trims trailing",
			in:   "first name  : Ann Lee  ",
			want: []tk{{TKeyword, "first name"}, {TColon, ":"}, {TValue, "Ann Lee"}},
		},
		{
			name: "escaped trailing space survives",
			in:   `a: x\ `,
			want: []tk{{TKeyword, "a"}, {TColon, ":"}, {TValue, "x "}},
		},
		{
			name: "trailing lone backslash",
			in:   `path: C:\`,
			want: []tk{{TKeyword, "path"}, {TColon, ":"}, {TValue, `C:\`}},
		},
		{
			name: "stray colon",
			in:   "k: : v",
			want: []tk{{TKeyword, "k"}, {TColon, ":"}, {TColon, ":"}, {TValue, "v"}},
		},
		{
			name: "leading colon",
			in:   ": v",
			want: []tk{{TColon, ":"}, {TValue, "v"}},
		},
		{
			name: "crlf",
			in:   "a: 1\r\nb: 2\r\n",
			want: []tk{
				{TKeyword, "a"}, {TColon, ":"}, {TValue, "1"},
				{TKeyword, "b"}, {TColon, ":"}, {TValue, "2"},
			},
		},
		{
			name: "unicode",
			in:   "ключ: значение; 名前: 値",
			want: []tk{
				{TKeyword, "ключ"}, {TColon, ":"}, {TValue, "значение"},
				{TKeyword, "名前"}, {TColon, ":"}, {TValue, "値"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(Tokenize(tt.in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	toks := Tokenize("test1: foo  // comment\ntest2: { bar\nbaz }")
	want := []Pos{
		{1, 0}, {1, 5}, {1, 7}, {1, 12},
		{2, 0}, {2, 5}, {2, 7}, {2, 9},
		{3, 0}, {3, 4},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Pos != want[i] {
			t.Errorf("token %d (%s): pos %s, want %s", i, tok.Type, tok.Pos, want[i])
		}
	}
}

func TestTokenRaw(t *testing.T) {
	toks := Tokenize(`k\:ey: va\;lue  ; x`)
	if toks[0].Raw != `k\:ey` || toks[0].Text != "k:ey" {
		t.Errorf("keyword raw %q text %q", toks[0].Raw, toks[0].Text)
	}
	if toks[2].Raw != `va\;lue` || toks[2].Text != "va;lue" {
		t.Errorf("value raw %q text %q", toks[2].Raw, toks[2].Text)
	}
}

type failingSource struct {
	n int
}

var errBoom = errors.New("boom")

func (f *failingSource) ReadLine() (string, error) {
	if f.n > 0 {
		return "", errBoom
	}
	f.n++
	return "a: b", nil
}

func (f *failingSource) Line() int { return f.n }

func TestTokenizerSourceError(t *testing.T) {
	tz := NewTokenizer(&failingSource{})
	var err error
	n := 0
	for _, e := range tz.All() {
		if e != nil {
			err = e
			break
		}
		n++
	}
	if n != 3 {
		t.Errorf("got %d tokens before error, want 3", n)
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}
	var te *TokenizeErr
	if !errors.As(err, &te) || te.Pos.Line != 2 {
		t.Errorf("expected TokenizeErr at line 2, got %v", err)
	}
}

func TestTokenizerReaderSource(t *testing.T) {
	tz := NewTokenizer(NewReaderSource(strings.NewReader("a: 1\r\n\r\nb: { c }\n")))
	var got []Token
	for {
		tok, err := tz.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, tok)
	}
	if len(got) != 8 {
		t.Fatalf("got %d tokens: %v", len(got), got)
	}
	if got[3].Pos.Line != 3 || got[3].Text != "b" {
		t.Errorf("unexpected token %v", got[3])
	}
}

func TestPrintTokens(t *testing.T) {
	buf := &strings.Builder{}
	PrintTokens(buf, Tokenize(`a\;b: x // c`), "t")
	want := strings.Join([]string{
		"t: 4 tokens",
		"\t1:0 TKeyword \"a\\\\;b\" -> \"a;b\"",
		"\t1:4 TColon \":\"",
		"\t1:6 TValue \"x\"",
		"\t1:8 TComment \"// c\" -> \" c\"",
		"",
	}, "\n")
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("diff (-want +got):\n%s", d)
	}
}
