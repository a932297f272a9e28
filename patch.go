package grfon

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch applies an RFC 6902 patch to doc.  patch is a list of operations,
// each a collection with op, path and value or from keys.  All values
// are strings after patching.
func Patch(doc, patch *ir.Node) (*ir.Node, error) {
	pd, err := json.Marshal(ir.ToAny(patch))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return viaJSON(doc, func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// MergePatch applies an RFC 7386 merge patch to doc.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	pd, err := json.Marshal(ir.ToAny(patch))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return viaJSON(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, pd)
	})
}

func viaJSON(doc *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	d, err := json.Marshal(ir.ToAny(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, diags := parse.Parse(out, parse.ParseJSON())
	if err := diags.Err(); err != nil {
		return nil, err
	}
	if res == nil {
		res = ir.NewCollection()
	}
	return res, nil
}
