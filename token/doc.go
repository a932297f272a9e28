// Package token provides line-oriented tokenization support for GRFON.
//
// GRFON has no quoting, so the [Tokenizer] decides what a run of text means
// from context: whether a key is still possible in the current statement,
// and escape-aware lookahead for the delimiters ';', '{', '}', ':' and the
// comment marker "//".  The sequence "://" is never a delimiter, so URLs
// need no escaping.
//
// Text enters through a [LineSource] and leaves through a [LineSink]; [Sink]
// layers indentation on top of a LineSink for the encoder.
//
// [Escape] and [Unescape] implement the escaping codec; [Quote] is the
// stricter form used when encoding.
package token
