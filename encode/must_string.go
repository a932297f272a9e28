package encode

import (
	"strings"

	"github.com/signadot/grfon-format/go-grfon/ir"
)

// MustString is Encode into a string, minus the line break ending the
// last line.  It is meant for tests and messages and panics on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
