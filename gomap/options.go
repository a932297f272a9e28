package gomap

import (
	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/parse"
)

// MapOption is an option for controlling the mapping process from Go to GRFON.
type MapOption func(*mapConfig)

// UnmapOption is an option for controlling the unmapping process from GRFON to Go.
type UnmapOption func(*unmapConfig)

type mapConfig struct {
	encodeOptions []encode.EncodeOption
}

type unmapConfig struct {
	parseOptions []parse.ParseOption
	strict       bool
}

// WithEncodeOptions passes options through to encode.Encode.
func WithEncodeOptions(opts ...encode.EncodeOption) MapOption {
	return func(c *mapConfig) { c.encodeOptions = append(c.encodeOptions, opts...) }
}

// WithParseOptions passes options through to parse.Parse.
func WithParseOptions(opts ...parse.ParseOption) UnmapOption {
	return func(c *unmapConfig) { c.parseOptions = append(c.parseOptions, opts...) }
}

// Strict makes unmapping fail on any parse diagnostic, warnings included.
// By default only error diagnostics fail.
func Strict(v bool) UnmapOption {
	return func(c *unmapConfig) { c.strict = v }
}

func newMapConfig(opts []MapOption) *mapConfig {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func newUnmapConfig(opts []UnmapOption) *unmapConfig {
	cfg := &unmapConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
