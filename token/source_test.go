package token

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func readAll(t *testing.T, src LineSource) []string {
	t.Helper()
	res := []string{}
	for {
		ln, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return res
		}
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, ln)
		if src.Line() != len(res) {
			t.Fatalf("line %d after %d lines", src.Line(), len(res))
		}
	}
}

func TestLineSources(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\n", []string{"a", ""}},
		{"a\r\nb\rc\nd", []string{"a", "b", "c", "d"}},
		{"\n", []string{""}},
		{"x\r\r\ny", []string{"x", "", "y"}},
	}
	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.in, "\n", `\n`), func(t *testing.T) {
			got := readAll(t, NewStringSource(tt.in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("StringSource (-want +got):\n%s", diff)
			}
			got = readAll(t, NewReaderSource(iotest.OneByteReader(strings.NewReader(tt.in))))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReaderSource (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSliceSource(t *testing.T) {
	lines := []string{"a: 1", "", "b: 2"}
	got := readAll(t, NewSliceSource(lines))
	if diff := cmp.Diff(lines, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReaderSourceError(t *testing.T) {
	src := NewReaderSource(iotest.TimeoutReader(strings.NewReader("a\nb\n")))
	for {
		_, err := src.ReadLine()
		if err == nil {
			continue
		}
		if !errors.Is(err, iotest.ErrTimeout) {
			t.Errorf("expected timeout, got %v", err)
		}
		break
	}
}
