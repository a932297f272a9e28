package grfon

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/signadot/grfon-format/go-grfon/format"
	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/parse"
)

// Open opens the file at path for reading.  Files ending in .gz or .zst
// are decompressed.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := Decompress(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	return rc, nil
}

// Decompress wraps r according to the compression suffix of name.  The
// result closes r when closed.
func Decompress(r io.ReadCloser, name string) (io.ReadCloser, error) {
	switch filepath.Ext(name) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &closers{Reader: zr, close: []func() error{zr.Close, r.Close}}, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		zClose := func() error {
			zr.Close()
			return nil
		}
		return &closers{Reader: zr, close: []func() error{zClose, r.Close}}, nil
	default:
		return r, nil
	}
}

type closers struct {
	io.Reader
	close []func() error
}

func (c *closers) Close() error {
	var first error
	for _, f := range c.close {
		if err := f(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Load opens and parses the file at path.  The format is taken from the
// file name unless opts set one.
func Load(path string, opts ...parse.ParseOption) (*ir.Node, parse.Diagnostics, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()
	opts = append([]parse.ParseOption{parse.ParseFormat(format.FromPath(path))}, opts...)
	node, diags, err := parse.ParseReader(rc, opts...)
	if err != nil {
		return node, diags, fmt.Errorf("%s: %w", path, err)
	}
	return node, diags, nil
}
