package main

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// lspPosition converts a 1-based line and a byte column, as recorded by
// the tokenizer, to a zero based lsp position counting utf-16 units.
func lspPosition(lines []string, line, col int) protocol.Position {
	if line < 1 {
		line = 1
	}
	ln := ""
	if line <= len(lines) {
		ln = lines[line-1]
	}
	return protocol.Position{Line: uint32(line - 1), Character: utf16Len(ln[:min(col, len(ln))])}
}

// byteCol converts an lsp character offset in ln to a byte offset.
func byteCol(ln string, char uint32) int {
	n := uint32(0)
	for i, r := range ln {
		if n >= char {
			return i
		}
		n += uint32(utf16.RuneLen(r))
	}
	return len(ln)
}

func utf16Len(s string) uint32 {
	n := uint32(0)
	for len(s) > 0 {
		r, sz := utf8.DecodeRuneInString(s)
		s = s[sz:]
		if r == utf8.RuneError && sz == 1 {
			n++
			continue
		}
		n += uint32(utf16.RuneLen(r))
	}
	return n
}

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}
