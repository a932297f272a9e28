package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/grfon-format/go-grfon"
	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/parse"

	"github.com/scott-cotton/cli"
)

// readDoc parses the file at path, or cc.In if path is "-", returning
// the diagnostics without judging them.
func readDoc(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, parse.Diagnostics, error) {
	if path == "-" {
		return parse.ParseReader(cc.In, cfg.parseOpts()...)
	}
	return grfon.Load(path, cfg.parseOpts()...)
}

// getObjFile is readDoc which fails on errors and logs warnings.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	node, diags, err := readDoc(cfg, cc, path)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		if d.Severity == parse.SeverityWarning {
			theLog.Warn(d.Message, "file", path, "line", d.Line, "col", d.Col)
		}
	}
	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return node, nil
}

// getish reads the node given by arg, which is a file path or, if s is
// set, the document itself.
func getish(cfg *MainConfig, cc *cli.Context, s bool, arg string) (*ir.Node, error) {
	if !s {
		return getObjFile(cfg, cc, arg)
	}
	node, diags, err := parse.ParseReader(strings.NewReader(arg), cfg.parseOpts()...)
	if err != nil {
		return nil, err
	}
	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return node, nil
}

// inputs returns the file arguments, stdin if there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// writeSep writes the separator before the output for file, when there
// are several outputs.  For grfon output it is a comment naming the file.
func writeSep(cfg *MainConfig, w io.Writer, file string, i, n int) error {
	if n < 2 {
		return nil
	}
	if i > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if !cfg.outFormat().IsGRFON() {
		return nil
	}
	_, err := fmt.Fprintf(w, "// %s\n", file)
	return err
}
