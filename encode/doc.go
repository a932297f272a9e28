// Package encode writes ir nodes as GRFON, JSON or YAML.
//
// GRFON output is canonical: keyed children come first in sorted key
// order, then unkeyed children in order.  Collections marked Compact, and
// all collections when EncodeCompact is set, are written on one line with
// each value terminated by ';':
//
//	person: { name: Bob; occupation: Builder; }
//
// Comments and source whitespace are not preserved.
package encode
