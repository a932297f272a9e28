package token

import (
	"strings"
	"unicode/utf8"
)

// urlSep is passed through untouched by every scan in this package.
const urlSep = "://"

// Escape escapes the characters GRFON treats specially inside a value:
// ';' and '\' are prefixed with '\', and newline, carriage return and tab
// become \n, \r and \t.  s is returned as is when nothing needs escaping.
func Escape(s string) string {
	if !strings.ContainsAny(s, ";\\\n\r\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		writeEscaped(&b, r)
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, r rune) bool {
	switch r {
	case ';', '\\':
		b.WriteByte('\\')
		b.WriteRune(r)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	default:
		b.WriteRune(r)
		return false
	}
	return true
}

// Unescape reverses Escape.  A backslash followed by n, r or t yields the
// corresponding control character; followed by anything else it yields that
// character.  A trailing lone backslash is kept literally.
func Unescape(s string) string {
	i := strings.IndexByte(s, '\\')
	if i == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		if strings.HasPrefix(s[i:], urlSep) {
			b.WriteString(urlSep)
			i += len(urlSep)
			continue
		}
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 == len(s) {
			b.WriteByte('\\')
			break
		}
		r, sz := utf8.DecodeRuneInString(s[i+1:])
		switch r {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteString(s[i+1 : i+1+sz])
		}
		i += 1 + sz
	}
	return b.String()
}

// Quote escapes s so that the tokenizer reads it back as exactly one
// keyword (keyPos true) or value token.  In addition to what Escape does it
// escapes braces, comment markers, leading and trailing blanks, a leading
// ':', and in key position any ':' that is not part of "://".  Unescape(Quote(s, k)) == s.
func Quote(s string, keyPos bool) string {
	if !needsQuote(s, keyPos) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	last := len(s)
	if n := len(strings.TrimRight(s, " \t")); n < last {
		last = n
	}
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], urlSep) {
			b.WriteString(urlSep)
			i += len(urlSep)
			continue
		}
		r, sz := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == ' ' && (i == 0 || i >= last):
			b.WriteString(`\ `)
		case r == '{', r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '/' && strings.HasPrefix(s[i+sz:], "/"):
			b.WriteString(`\/`)
		case r == ':' && (keyPos || i == 0):
			b.WriteString(`\:`)
		default:
			writeEscaped(&b, r)
		}
		i += sz
	}
	return b.String()
}

func needsQuote(s string, keyPos bool) bool {
	if s == "" {
		return false
	}
	if s[0] == ' ' || s[0] == ':' || s[len(s)-1] == ' ' || s[len(s)-1] == '\t' {
		return true
	}
	if strings.ContainsAny(s, ";\\\n\r\t{}") {
		return true
	}
	rest := strings.ReplaceAll(s, urlSep, "")
	if strings.Contains(rest, "//") {
		return true
	}
	return keyPos && strings.Contains(rest, ":")
}
