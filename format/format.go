package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is one of the formats a document may be read from or written
// to.  The zero value is GRFON.
type Format int

const (
	GRFONFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

var names = [...]string{
	GRFONFormat: "grfon",
	YAMLFormat:  "yaml",
	JSONFormat:  "json",
}

// ParseFormat accepts a format name or its first letter, as the -I and
// -O command line options do.
func ParseFormat(v string) (Format, error) {
	for f, name := range names {
		if v == name || v == name[:1] {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(names) {
		return fmt.Sprintf("<format %d>", int(f))
	}
	return names[f]
}

func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(names) {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(names[f]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsGRFON() bool { return f == GRFONFormat }

// FromPath picks the format of a file by its extension after dropping
// a .gz or .zst suffix.  Unknown extensions are read as GRFON.
func FromPath(p string) Format {
	ext := filepath.Ext(p)
	switch strings.ToLower(ext) {
	case ".gz", ".zst":
		return FromPath(strings.TrimSuffix(p, ext))
	case ".yaml", ".yml":
		return YAMLFormat
	case ".json":
		return JSONFormat
	}
	return GRFONFormat
}

func AllFormats() []Format {
	return []Format{GRFONFormat, YAMLFormat, JSONFormat}
}
