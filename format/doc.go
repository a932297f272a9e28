// Package format names the textual formats go-grfon can read and write.
//
// GRFON is the native format. YAML and JSON are supported at the edges
// (parse input, encode output) by converting through the generic value
// bridge in package ir.
//
// # Related Packages
//
//   - github.com/signadot/grfon-format/go-grfon/parse - Parse text to IR
//   - github.com/signadot/grfon-format/go-grfon/encode - Encode IR to text
package format
