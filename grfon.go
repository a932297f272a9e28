package grfon

import (
	"github.com/signadot/grfon-format/go-grfon/gomap"
)

// Marshal returns the GRFON encoding of v.
func Marshal(v any, opts ...gomap.MapOption) ([]byte, error) {
	return gomap.ToGRFON(v, opts...)
}

// Unmarshal parses d and stores the result in the value pointed to by v.
func Unmarshal(d []byte, v any, opts ...gomap.UnmapOption) error {
	return gomap.FromGRFON(d, v, opts...)
}
