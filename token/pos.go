package token

import "fmt"

// Pos is a position in a line oriented source.  Line is 1-based, Col is the
// 0-based byte offset within the line.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("(line=%d, col=%d)", p.Line, p.Col)
}

// Before reports whether p comes strictly before o.
func (p Pos) Before(o Pos) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Col < o.Col
}
