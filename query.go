package grfon

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/grfon-format/go-grfon/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Query is a compiled expression over a document.  Within the
// expression, doc holds the document as generic data (see ir.ToAny) and
// the functions getpath, listpath and getenv are available.
type Query struct {
	src string
	prg *vm.Program
}

func CompileQuery(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(queryEnv{}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string { return q.src }

// Run evaluates q against doc and converts the result to a node.
func (q *Query) Run(doc *ir.Node) (*ir.Node, error) {
	res, err := expr.Run(q.prg, newQueryEnv(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrQuery, err)
	}
	return node, nil
}

// RunQuery compiles and runs src against doc.
func RunQuery(doc *ir.Node, src string) (*ir.Node, error) {
	q, err := CompileQuery(src)
	if err != nil {
		return nil, err
	}
	return q.Run(doc)
}

type queryEnv struct {
	Doc      any                         `expr:"doc"`
	GetPath  func(string) (any, error)   `expr:"getpath"`
	ListPath func(string) ([]any, error) `expr:"listpath"`
	GetEnv   func(string) string         `expr:"getenv"`
}

func newQueryEnv(doc *ir.Node) queryEnv {
	return queryEnv{
		Doc: ir.ToAny(doc),
		GetPath: func(path string) (any, error) {
			node, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return ir.ToAny(node), nil
		},
		ListPath: func(path string) ([]any, error) {
			nodes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, n := range nodes {
				res[i] = ir.ToAny(n)
			}
			return res, nil
		},
		GetEnv: os.Getenv,
	}
}
