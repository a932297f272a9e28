package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/grfon-format/go-grfon/format"
	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/token"
)

type EncState struct {
	indent   int
	document bool
	compact  bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:   2,
		document: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w.  A nil node writes nothing.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	}
	return encodeLines(node, token.NewWriterSink(w), es)
}

// EncodeLines writes node as GRFON to out, one line at a time.
func EncodeLines(node *ir.Node, out token.LineSink, opts ...EncodeOption) error {
	es := newEncState(opts)
	if !es.format.IsGRFON() {
		return fmt.Errorf("%w: line output is only available for %s", ErrEncoding, format.GRFONFormat)
	}
	return encodeLines(node, out, es)
}

func encodeLines(node *ir.Node, out token.LineSink, es *EncState) error {
	if node == nil {
		return nil
	}
	sink := token.NewSink(out, strings.Repeat(" ", es.indent))
	es.encode(sink, node, "", es.document, es.compact)
	return sink.Flush()
}

// encode writes node, preceded by key if it is keyed.  Sink errors are
// sticky and surface in the final Flush.
func (es *EncState) encode(sink *token.Sink, node *ir.Node, key string, isDoc, compact bool) {
	if node.Type == ir.ValueType {
		keyed := key != ""
		v := es.color(ir.ValueType, ValueColor, token.Quote(node.String, !keyed))
		if key != "" {
			sink.Word(key)
		}
		switch {
		case compact:
			sink.Word(v + es.color(ir.ValueType, SepColor, ";"))
		case node.String == "" && keyed:
			sink.EndLine()
		default:
			sink.Word(v)
			sink.EndLine()
		}
		return
	}
	own := compact || node.Compact
	if isDoc {
		es.children(sink, node, own)
		if own {
			sink.EndLine()
		}
		return
	}
	open := es.color(ir.CollectionType, SepColor, "{")
	shut := es.color(ir.CollectionType, SepColor, "}")
	if key != "" {
		sink.Word(key)
	}
	if node.KeyCount() == 0 && node.Len() == 0 {
		sink.Word(open)
		sink.Word(shut)
		if !compact {
			sink.EndLine()
		}
		return
	}
	sink.Word(open)
	if !own {
		sink.EndLine()
		sink.Indent()
	}
	es.children(sink, node, own)
	if !own {
		sink.Outdent()
	}
	sink.Word(shut)
	if !compact {
		sink.EndLine()
	}
}

// children writes the keyed children in key order, then the unkeyed
// ones.  An empty keyed value would take the next unkeyed child as its
// value when read back, so in a collection with unkeyed children the
// empty keyed values are written last.
func (es *EncState) children(sink *token.Sink, node *ir.Node, compact bool) {
	var empty []string
	for _, k := range node.Keys() {
		v := node.Fields[k]
		if len(node.Values) != 0 && v.Type == ir.ValueType && v.String == "" {
			empty = append(empty, k)
			continue
		}
		es.field(sink, k, v, compact)
	}
	for _, v := range node.Values {
		es.encode(sink, v, "", false, compact)
	}
	for _, k := range empty {
		es.field(sink, k, node.Fields[k], compact)
	}
}

func (es *EncState) field(sink *token.Sink, k string, v *ir.Node, compact bool) {
	key := es.color(ir.CollectionType, FieldColor, token.Quote(k, true)) + es.color(ir.CollectionType, SepColor, ":")
	es.encode(sink, v, key, false, compact)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	if !es.compact {
		enc.SetIndent("", strings.Repeat(" ", es.indent))
	}
	if err := enc.Encode(ir.ToAny(node)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	if node == nil {
		return nil
	}
	d, err := yaml.Marshal(ir.ToAny(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
