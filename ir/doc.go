// Package ir provides the in-memory node tree for GRFON documents.
//
// # Node Structure
//
// A Node is a tagged union selected by its Type field:
//
//   - ValueType: a leaf holding one unescaped string in String.
//   - CollectionType: keyed children in Fields and unkeyed children in
//     Values.  A collection may be empty, key-only, list-only or mixed.
//
// Keys are unique within a collection; setting an existing key replaces
// its value.  Keys carry no order and are always serialized sorted.  The
// order of unkeyed children is significant and preserved.
//
// Line records the 1-based source line a node was parsed from and is 0 for
// nodes built by hand.  Compact records that a collection was opened and
// closed on the same source line; it only affects layout when encoding.
//
// # Creating Nodes
//
//	doc := ir.NewCollection()
//	doc.Set("name", ir.FromString("Bob"))
//	doc.Set("tags", ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")}))
//	doc.Append(ir.FromInt(3))
//
// # Reading Nodes
//
// Accessors and typed getters never fail.  Missing keys, out of range
// indices and unparsable values all yield the caller supplied default:
//
//	port := doc.GetInt("port", 8080)
//	debug := doc.GetBool("debug", false)
//	opts := doc.GetCollection("options", true) // never nil
//
// Collection accessors called on a value node behave as on an empty
// collection; mutators report false and do nothing.
//
// # Paths
//
// GetPath and ListPath address nodes with "$" rooted paths such as
// "$.server.hosts[0]", "$.'a.b'", "$.items[*]" and "$..name".
//
// # Generic Data
//
// ToAny and FromAny convert between nodes and the map[string]any, []any
// and string values used by encoding/json and YAML libraries.  A mixed
// collection becomes an object holding its unkeyed children under the
// "@items" key.
//
// # Thread Safety
//
// Nodes are not synchronized.  Concurrent reads are safe, concurrent
// mutation must be serialized by the caller.
package ir
