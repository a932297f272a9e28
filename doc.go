// Package grfon provides whole-document operations on GRFON data.
//
// GRFON is a line oriented format of keyed and unkeyed values nested in
// braces:
//
//	name: Bob
//	tags: { builder; fixer }
//	address: { city: Bricktown; zip: 1234 }
//
// The subpackages hold the pieces:
//
//   - token: escaping, line sources and sinks, the tokenizer
//   - ir: the node tree, paths and the bridge to plain Go values
//   - parse: building node trees from text, with diagnostics
//   - encode: writing node trees as GRFON, YAML or JSON
//   - gomap: mapping Go values to and from node trees
//   - libdiff: structural and line diffs
//
// This package ties them together: Marshal and Unmarshal for Go values,
// Load and Open for files which may be compressed, Patch and MergePatch
// for JSON patches, Query for expressions and Match for structural
// matching.
package grfon
