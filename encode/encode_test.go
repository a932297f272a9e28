package encode

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/signadot/grfon-format/go-grfon/format"
	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/parse"
	"github.com/signadot/grfon-format/go-grfon/token"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, diags := parse.ParseString(in)
	if diags.HasErrors() {
		t.Fatalf("parse %q: %v", in, diags)
	}
	return node
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []EncodeOption
		want string
	}{
		{
			name: "sorted keys",
			in:   "b: 1\na: 2",
			want: "a: 2\nb: 1\n",
		},
		{
			name: "compact collection",
			in:   "{ name: Bob; occupation: Builder }",
			want: "{ name: Bob; occupation: Builder; }\n",
		},
		{
			name: "expanded collection",
			in:   "{\n name: Bob\n occupation: Builder\n}",
			want: "{\n  name: Bob\n  occupation: Builder\n}\n",
		},
		{
			name: "scenario",
			in:   "test1: foo  // comment\ntest2: { bar\nbaz }",
			want: "test1: foo\ntest2: {\n  bar\n  baz\n}\n",
		},
		{
			name: "compact document",
			in:   "test1: foo  // comment\ntest2: { bar\nbaz }",
			opts: []EncodeOption{EncodeCompact(true)},
			want: "test1: foo; test2: { bar; baz; }\n",
		},
		{
			name: "keyed before unkeyed",
			in:   "x\nk: v\ny",
			want: "k: v\nx\ny\n",
		},
		{
			name: "not a document",
			in:   "a: 1",
			opts: []EncodeOption{EncodeDocument(false)},
			want: "{\n  a: 1\n}\n",
		},
		{
			name: "indent",
			in:   "a: { b: { c } \n}",
			opts: []EncodeOption{EncodeIndent(4)},
			want: "a: {\n    b: { c; }\n}\n",
		},
		{
			name: "escapes",
			in:   `foo: semi\;colons; bar:line\nbreak`,
			want: "bar: line\\nbreak\nfoo: semi\\;colons\n",
		},
		{
			name: "empty value and collection",
			in:   "a:\ne: {\n}",
			want: "a:\ne: { }\n",
		},
		{
			name: "url",
			in:   "site: https://example.com/a // home",
			want: "site: https://example.com/a\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustString(mustParse(t, tt.in), tt.opts...) + "\n"
			if got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

var specials = []string{
	"semi;colon", "a:b", "{braces}", "// slashes", " lead", "trail ", "trail\t",
	"tab\tnl\nret\r", `back\slash`, "://", "x://y//z", "ключ", "café: ok",
	":start", `end\`, "}", "a;b{c}d//e:f", "  ", `\;`,
}

func specialsDoc() *ir.Node {
	doc := ir.NewCollection()
	sub := ir.NewCollection()
	for i, s := range specials {
		doc.Set(s, ir.FromString(s))
		doc.Append(ir.FromString(s))
		sub.Set(fmt.Sprintf("k%d", i), ir.FromString(s))
		sub.Append(ir.FromString(s))
	}
	doc.Set("sub", sub)
	doc.Set("empty", ir.FromString(""))
	doc.Set("none", ir.NewCollection())
	deep := ir.FromString("bottom")
	for range 40 {
		deep = ir.FromSlice([]*ir.Node{deep})
	}
	doc.Set("deep", deep)
	return doc
}

func TestRoundTrip(t *testing.T) {
	for _, compact := range []bool{false, true} {
		t.Run(fmt.Sprintf("compact=%t", compact), func(t *testing.T) {
			doc := specialsDoc()
			out := MustString(doc, EncodeCompact(compact))
			back, diags := parse.ParseString(out)
			if len(diags) != 0 {
				t.Fatalf("diagnostics: %v\n%s", diags, out)
			}
			if !ir.Equal(doc, back) {
				t.Fatalf("round trip changed the tree:\n%s\nvs\n%s", out, MustString(back))
			}
			again := MustString(back, EncodeCompact(compact))
			if again != out {
				t.Errorf("encoding is not idempotent:\n%s\nvs\n%s", out, again)
			}
		})
	}
}

func TestRoundTripText(t *testing.T) {
	docs := []string{
		"a: 1\nb: { c: 2; d }\n x",
		"url: https://example.com/x?y=1 // c",
		"list: {\n  { a: 1 }\n  { a: 2 }\n}",
		"n: {\n}\n{}\n{ { } }",
		`w\:k: \{v\}`,
	}
	for _, in := range docs {
		n1 := mustParse(t, in)
		out := MustString(n1)
		n2 := mustParse(t, out)
		if !ir.Equal(n1, n2) {
			t.Errorf("%q: parse(encode(parse)) differs:\n%s", in, out)
		}
		if MustString(n2) != out {
			t.Errorf("%q: not idempotent", in)
		}
	}
}

func TestEmptyKeyedWithList(t *testing.T) {
	inner := ir.NewCollection()
	inner.Set("a", ir.FromString(""))
	inner.Set("b", ir.FromString("1"))
	inner.Append(ir.FromString("x"))
	nested := ir.NewCollection()
	nested.Set("c", inner)

	root := ir.NewCollection()
	root.Set("a", ir.FromString(""))
	root.Append(ir.NewCollection())

	if got, want := MustString(nested), "c: {\n  b: 1\n  x\n  a:\n}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, doc := range []*ir.Node{nested, root} {
		for _, compact := range []bool{false, true} {
			out := MustString(doc, EncodeCompact(compact))
			back, diags := parse.ParseString(out)
			if diags.HasErrors() {
				t.Fatalf("%q: %v", out, diags)
			}
			if !ir.Equal(doc, back) {
				t.Errorf("compact=%t: %q read back as %q", compact, out, MustString(back))
			}
		}
	}
}

func TestEncodeNil(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(nil, buf); err != nil || buf.Len() != 0 {
		t.Errorf("got %q %v", buf.String(), err)
	}
}

func TestEncodeLines(t *testing.T) {
	sink := &token.SliceSink{}
	doc := mustParse(t, "a: { b }")
	if err := EncodeLines(doc, sink); err != nil {
		t.Fatal(err)
	}
	if len(sink.Lines) != 1 || sink.Lines[0] != "a: { b; }" {
		t.Errorf("got %q", sink.Lines)
	}
	if err := EncodeLines(doc, sink, EncodeFormat(format.JSONFormat)); !errors.Is(err, ErrEncoding) {
		t.Errorf("expected encoding error, got %v", err)
	}
}

type failSink struct{ n int }

var errFull = errors.New("full")

func (f *failSink) WriteLine(string) error {
	f.n++
	if f.n > 1 {
		return errFull
	}
	return nil
}

func TestEncodeSinkError(t *testing.T) {
	doc := mustParse(t, "a: 1\nb: 2\nc: 3")
	if err := EncodeLines(doc, &failSink{}); !errors.Is(err, errFull) {
		t.Errorf("expected sink error, got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.CollectionType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.ValueType, Attr: ValueColor}:      func(s string, _ ...any) string { return "[" + s + "]" },
		},
	}
	got := MustString(mustParse(t, "a: 1; b: { x }"), EncodeColors(c))
	want := "<a>: [1]\n<b>: { [x]; }"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if NewColors().Get(ir.CollectionType, FieldColor) == nil {
		t.Error("missing default colors")
	}
}

func TestEncodeFormats(t *testing.T) {
	doc := mustParse(t, "a: 1\nl: { x; y }\nm: { k: v; z }")
	buf := &bytes.Buffer{}
	if err := Encode(doc, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": "1",
  "l": [
    "x",
    "y"
  ],
  "m": {
    "@items": [
      "z"
    ],
    "k": "v"
  }
}
`
	if buf.String() != want {
		t.Errorf("json: got\n%s", buf.String())
	}
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		buf.Reset()
		if err := Encode(doc, buf, EncodeFormat(f)); err != nil {
			t.Fatal(err)
		}
		back, diags := parse.Parse(buf.Bytes(), parse.ParseFormat(f))
		if len(diags) != 0 {
			t.Fatalf("%s: %v", f, diags)
		}
		if !ir.Equal(doc, back) {
			t.Errorf("%s round trip:\n%s", f, buf.String())
		}
	}
	if !strings.Contains(MustString(doc, EncodeFormat(format.JSONFormat), EncodeCompact(true)), `{"a":"1"`) {
		t.Error("compact json")
	}
}
