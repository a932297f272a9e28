// Package parse parses GRFON text into ir nodes.
//
// # Usage
//
//	node, diags := parse.Parse([]byte("name: Bob; tags: { a; b }"))
//	if err := diags.Err(); err != nil {
//	    return err
//	}
//
//	// incrementally, from any io.Reader
//	node, diags, err := parse.ParseReader(os.Stdin)
//
// The parser never fails on malformed input.  Problems such as an
// unmatched '}' are reported as Diagnostics and the best effort tree is
// returned.  A document with no content yields a nil node, which is
// distinct from an empty collection.
//
// YAML and JSON input are accepted with ParseFormat and are mapped onto
// the same node tree (see ir.FromAny).
//
// # Related Packages
//
//   - github.com/signadot/grfon-format/go-grfon/ir - node tree
//   - github.com/signadot/grfon-format/go-grfon/encode - encode nodes to text
//   - github.com/signadot/grfon-format/go-grfon/token - tokenization
package parse
