// Package gomap converts between Go values and GRFON nodes.
//
// Types may map themselves by implementing IRMapper and IRUnmapper.  All
// other values are mapped by reflection:
//
//   - strings, booleans and numbers become values
//   - encoding.TextMarshaler and encoding.TextUnmarshaler types become values
//   - slices and arrays become list-only collections
//   - maps with string keys and structs become key-only collections
//   - nil pointers, maps, slices and interfaces are omitted from their
//     enclosing struct or map and become empty values elsewhere
//
// Only exported struct fields are mapped.  A grfon struct tag renames or
// skips a field:
//
//	type Server struct {
//	    Host    string   `grfon:"field=host"`
//	    Aliases []string `grfon:"field=aliases,omitempty"`
//	    Secret  string   `grfon:"omit"`
//	}
//
// Embedded structs have their fields promoted into the enclosing
// collection.
package gomap
