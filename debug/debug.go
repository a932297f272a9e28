// Package debug holds switches read from the environment at start up
// which enable tracing in the grfon commands.
package debug

import (
	"os"
	"strconv"

	"github.com/signadot/grfon-format/go-grfon/parse"
)

type debug struct {
	Parse bool
	LSP   bool
	Diff  bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("GRFON_DEBUG_PARSE")
	d.LSP = boolEnv("GRFON_DEBUG_LSP")
	d.Diff = boolEnv("GRFON_DEBUG_DIFF")
	d.Match = boolEnv("GRFON_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func LSP() bool {
	return d.LSP
}
func Diff() bool {
	return d.Diff
}
func Match() bool {
	return d.Match
}

// ParseOpts returns the parse options tracing tokens and diagnostics to
// stderr when GRFON_DEBUG_PARSE is set.
func ParseOpts() []parse.ParseOption {
	if !d.Parse {
		return nil
	}
	return []parse.ParseOption{parse.ParseLogger(Logger())}
}
