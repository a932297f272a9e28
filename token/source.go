package token

import (
	"bufio"
	"io"
	"strings"
)

// LineSource is an ordered sequence of text lines.
//
// ReadLine returns the next line without its terminator, or io.EOF once the
// source is exhausted.  Line reports the 1-based number of the line most
// recently returned by ReadLine.
type LineSource interface {
	ReadLine() (string, error)
	Line() int
}

// StringSource is a LineSource over an in-memory document.  Lines are
// terminated by "\r\n", "\r" or "\n"; a terminator at the very end of the
// document does not start another line.
type StringSource struct {
	rest string
	line int
	done bool
}

func NewStringSource(s string) *StringSource {
	return &StringSource{rest: s, done: s == ""}
}

func NewBytesSource(d []byte) *StringSource {
	return NewStringSource(string(d))
}

func (s *StringSource) ReadLine() (string, error) {
	if s.done {
		return "", io.EOF
	}
	s.line++
	i := strings.IndexAny(s.rest, "\r\n")
	if i == -1 {
		ln := s.rest
		s.rest = ""
		s.done = true
		return ln, nil
	}
	ln := s.rest[:i]
	n := 1
	if s.rest[i] == '\r' && i+1 < len(s.rest) && s.rest[i+1] == '\n' {
		n = 2
	}
	s.rest = s.rest[i+n:]
	if s.rest == "" {
		s.done = true
	}
	return ln, nil
}

func (s *StringSource) Line() int {
	return s.line
}

// ReaderSource is a LineSource reading incrementally from an io.Reader.  It
// recognizes the same terminators as StringSource and only buffers the
// current line.
type ReaderSource struct {
	r       *bufio.Reader
	line    int
	pending []string
	err     error
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

func (s *ReaderSource) ReadLine() (string, error) {
	for len(s.pending) == 0 {
		if s.err != nil {
			return "", s.err
		}
		s.fill()
	}
	ln := s.pending[0]
	s.pending = s.pending[1:]
	s.line++
	return ln, nil
}

func (s *ReaderSource) fill() {
	chunk, err := s.r.ReadString('\n')
	if err != nil {
		s.err = err
	}
	if chunk == "" {
		return
	}
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")
	// a lone '\r' terminates a line too; "\r\n" was handled above.
	s.pending = append(s.pending, strings.Split(chunk, "\r")...)
}

func (s *ReaderSource) Line() int {
	return s.line
}

// SliceSource is a LineSource over lines that are already split.
type SliceSource struct {
	lines []string
	line  int
}

func NewSliceSource(lines []string) *SliceSource {
	return &SliceSource{lines: lines}
}

func (s *SliceSource) ReadLine() (string, error) {
	if s.line >= len(s.lines) {
		return "", io.EOF
	}
	s.line++
	return s.lines[s.line-1], nil
}

func (s *SliceSource) Line() int {
	return s.line
}
