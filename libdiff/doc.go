// Package libdiff computes differences between GRFON documents.
//
// # Usage
//
//	// structural diff, one Change per differing path
//	changes := libdiff.Diff(oldNode, newNode)
//	fmt.Println(encode.MustString(libdiff.Node(changes)))
//
//	// line diff of two encodings
//	fmt.Print(libdiff.Text(oldText, newText))
//
// Keyed children are matched by key. Unkeyed children are matched by
// diffing the sequence of their compact encodings, so insertions and
// removals in the middle of a list do not report every later element
// as changed.
package libdiff
