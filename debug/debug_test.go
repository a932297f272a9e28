package debug

import (
	"testing"

	"github.com/signadot/grfon-format/go-grfon/parse"
)

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"yes", false},
	}
	for _, tc := range tests {
		t.Setenv("GRFON_DEBUG_TEST", tc.v)
		if got := boolEnv("GRFON_DEBUG_TEST"); got != tc.want {
			t.Errorf("%q: got %t, want %t", tc.v, got, tc.want)
		}
	}
}

func TestParseOpts(t *testing.T) {
	saved := *d
	defer func() { *d = saved }()

	d.Parse = false
	if opts := ParseOpts(); len(opts) != 0 {
		t.Errorf("got %d options with parse tracing off", len(opts))
	}
	d.Parse = true
	opts := ParseOpts()
	if len(opts) != 1 {
		t.Fatalf("got %d options with parse tracing on", len(opts))
	}
	node, diags := parse.ParseString("a: 1", opts...)
	if len(diags) != 0 || node.GetString("a", "") != "1" {
		t.Errorf("got %v %v", node, diags)
	}
}
