package token

import (
	"io"
	"strings"
)

// LineSink receives complete lines of output, without terminators.
type LineSink interface {
	WriteLine(string) error
}

// WriterSink writes each line followed by "\n" to an io.Writer and counts
// the bytes written.
type WriterSink struct {
	w      io.Writer
	offset int
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) WriteLine(ln string) error {
	n, err := io.WriteString(s.w, ln+"\n")
	s.offset += n
	return err
}

// Offset returns the number of bytes written so far.
func (s *WriterSink) Offset() int {
	return s.offset
}

// SliceSink collects lines in memory.
type SliceSink struct {
	Lines []string
}

func (s *SliceSink) WriteLine(ln string) error {
	s.Lines = append(s.Lines, ln)
	return nil
}

func (s *SliceSink) String() string {
	if len(s.Lines) == 0 {
		return ""
	}
	return strings.Join(s.Lines, "\n") + "\n"
}

// Sink builds indented lines on top of a LineSink.
//
// Words are appended to the current line separated by a single space; the
// line is started lazily with the indentation in effect at that moment and
// handed to the LineSink by EndLine.
type Sink struct {
	out    LineSink
	indent string
	depth  int

	cur   strings.Builder
	open  bool
	words int
	err   error
}

func NewSink(out LineSink, indent string) *Sink {
	return &Sink{out: out, indent: indent}
}

func (s *Sink) Indent() {
	s.depth++
}

func (s *Sink) Outdent() {
	if s.depth > 0 {
		s.depth--
	}
}

func (s *Sink) Depth() int {
	return s.depth
}

// Word appends w to the current line, starting one if needed.  An empty
// word starts the line but adds nothing to it.
func (s *Sink) Word(w string) {
	if !s.open {
		s.open = true
		s.words = 0
		s.cur.Reset()
		s.cur.WriteString(strings.Repeat(s.indent, s.depth))
	}
	if w == "" {
		return
	}
	if s.words > 0 {
		s.cur.WriteByte(' ')
	}
	s.cur.WriteString(w)
	s.words++
}

// Line writes w as a complete line of its own, ending any open line first.
func (s *Sink) Line(w string) error {
	if err := s.EndLine(); err != nil {
		return err
	}
	s.Word(w)
	return s.EndLine()
}

// EndLine terminates the current line if one is open.
func (s *Sink) EndLine() error {
	if s.err != nil {
		return s.err
	}
	if !s.open {
		return nil
	}
	s.open = false
	s.err = s.out.WriteLine(s.cur.String())
	return s.err
}

// Open reports whether a line has been started but not ended.
func (s *Sink) Open() bool {
	return s.open
}

// Flush ends any open line.
func (s *Sink) Flush() error {
	return s.EndLine()
}
