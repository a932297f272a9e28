package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/ir"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "add"
	case Removed:
		return "remove"
	case Changed:
		return "change"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

// Change is a difference at Path.  From is nil for Added and To is nil
// for Removed.
type Change struct {
	Path string
	Kind Kind
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s: %s", c.Path, short(c.To))
	case Removed:
		return fmt.Sprintf("- %s: %s", c.Path, short(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, short(c.From), short(c.To))
	}
}

func short(n *ir.Node) string {
	s := encode.MustString(n, encode.EncodeCompact(true), encode.EncodeDocument(false))
	return strings.TrimSuffix(s, ";")
}

// Reverse returns the changes which undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i := range changes {
		c := changes[i]
		c.From, c.To = c.To, c.From
		switch c.Kind {
		case Added:
			c.Kind = Removed
		case Removed:
			c.Kind = Added
		}
		res[i] = c
	}
	return res
}

// Node renders changes as a collection keyed by path.  Each entry holds
// "-" for the old node and "+" for the new one.
func Node(changes []Change) *ir.Node {
	res := ir.NewCollection()
	for i := range changes {
		c := &changes[i]
		entry := ir.NewCollection()
		if c.From != nil {
			entry.Set("-", c.From.Clone())
		}
		if c.To != nil {
			entry.Set("+", c.To.Clone())
		}
		res.Set(c.Path, entry)
	}
	return res
}
