package parse

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/token"
)

// Parse parses a document held in memory.  The result is nil if the
// document holds no data.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, Diagnostics) {
	pOpts := newParseOpts(opts)
	if !pOpts.format.IsGRFON() {
		return parseData(d, pOpts)
	}
	res, diags, _ := parseSource(token.NewBytesSource(d), pOpts)
	return res, diags
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, Diagnostics) {
	pOpts := newParseOpts(opts)
	if !pOpts.format.IsGRFON() {
		return parseData([]byte(s), pOpts)
	}
	res, diags, _ := parseSource(token.NewStringSource(s), pOpts)
	return res, diags
}

// ParseReader parses a document read line by line from r.  The error is
// only set when reading from r fails, in which case the tree built so far
// is returned as well.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, Diagnostics, error) {
	pOpts := newParseOpts(opts)
	if !pOpts.format.IsGRFON() {
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, nil, err
		}
		res, diags := parseData(d, pOpts)
		return res, diags, nil
	}
	return parseSource(token.NewReaderSource(r), pOpts)
}

// ParseSource parses the lines of src.  The error is only set when src
// fails.
func ParseSource(src token.LineSource, opts ...ParseOption) (*ir.Node, Diagnostics, error) {
	pOpts := newParseOpts(opts)
	if !pOpts.format.IsGRFON() {
		var lines []string
		for {
			ln, err := src.ReadLine()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, nil, err
			}
			lines = append(lines, ln)
		}
		res, diags := parseData([]byte(strings.Join(lines, "\n")), pOpts)
		return res, diags, nil
	}
	return parseSource(src, pOpts)
}

func parseSource(src token.LineSource, pOpts *parseOpts) (*ir.Node, Diagnostics, error) {
	tz := token.NewTokenizer(src, pOpts.TokenizeOpts()...)
	b := newBuilder(pOpts)
	var srcErr error
	for tok, err := range tz.All() {
		if err != nil {
			var te *token.TokenizeErr
			if errors.As(err, &te) {
				err = te.Err
			}
			srcErr = err
			break
		}
		b.Push(tok)
	}
	res, diags := b.Finish(tz.Line())
	return res, diags, srcErr
}

// parseData maps a YAML or JSON document onto a node tree.
func parseData(d []byte, pOpts *parseOpts) (*ir.Node, Diagnostics) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, nil
	}
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, Diagnostics{{Line: 1, Severity: SeverityError, Message: pOpts.format.String() + ": " + err.Error()}}
	}
	if v == nil {
		return nil, nil
	}
	res, err := ir.FromAny(v)
	if err != nil {
		return nil, Diagnostics{{Line: 1, Severity: SeverityError, Message: err.Error()}}
	}
	pOpts.log.Debug("parsed", "format", pOpts.format, "type", res.Type)
	return res, nil
}
