package main

import (
	"bytes"
	"testing"

	"github.com/signadot/grfon-format/go-grfon/format"
)

func TestFormats(t *testing.T) {
	yaml := format.YAMLFormat
	tests := []struct {
		name   string
		cfg    MainConfig
		in     bool
		inFmt  format.Format
		outFmt format.Format
	}{
		{name: "default", outFmt: format.GRFONFormat},
		{name: "json", cfg: MainConfig{J: true}, in: true, inFmt: format.JSONFormat, outFmt: format.JSONFormat},
		{name: "-O wins", cfg: MainConfig{J: true, OutFormat: &yaml}, in: true, inFmt: format.JSONFormat, outFmt: format.YAMLFormat},
		{name: "-I only", cfg: MainConfig{InFormat: &yaml}, in: true, inFmt: format.YAMLFormat, outFmt: format.GRFONFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fp := tc.cfg.ioFormat()
			if tc.cfg.InFormat != nil {
				fp = tc.cfg.InFormat
			}
			if (fp != nil) != tc.in {
				t.Fatalf("input format set: got %t want %t", fp != nil, tc.in)
			}
			if fp != nil && *fp != tc.inFmt {
				t.Errorf("input format: got %s want %s", *fp, tc.inFmt)
			}
			if got := tc.cfg.outFormat(); got != tc.outFmt {
				t.Errorf("output format: got %s want %s", got, tc.outFmt)
			}
		})
	}
}

func TestWriteSep(t *testing.T) {
	cfg := &MainConfig{}
	buf := &bytes.Buffer{}
	for i, f := range []string{"a.grfon", "b.grfon"} {
		if err := writeSep(cfg, buf, f, i, 2); err != nil {
			t.Fatal(err)
		}
		buf.WriteString("x\n")
	}
	want := "// a.grfon\nx\n\n// b.grfon\nx\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	buf.Reset()
	if err := writeSep(cfg, buf, "a", 0, 1); err != nil || buf.Len() != 0 {
		t.Errorf("single input: got %q, %v", buf.String(), err)
	}
	cfg.J = true
	if err := writeSep(cfg, buf, "b", 1, 2); err != nil || buf.String() != "\n" {
		t.Errorf("json: got %q, %v", buf.String(), err)
	}
}

func TestInputs(t *testing.T) {
	if got := inputs(nil); len(got) != 1 || got[0] != "-" {
		t.Errorf("no args: got %v", got)
	}
	if got := inputs([]string{"a"}); len(got) != 1 || got[0] != "a" {
		t.Errorf("one arg: got %v", got)
	}
}
