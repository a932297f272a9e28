package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/grfon-format/go-grfon/debug"
	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/format"
	"github.com/signadot/grfon-format/go-grfon/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='encode on one line'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Indent  int  `cli:"name=indent desc='spaces per nesting level (default 2)'"`

	G bool `cli:"name=g aliases=grfon desc='do i/o in grfon'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// ioFormat is the format set by -g, -j or -y, or nil.
func (cfg *MainConfig) ioFormat() *format.Format {
	var f format.Format
	switch {
	case cfg.G:
		f = format.GRFONFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	default:
		return nil
	}
	return &f
}

// parseOpts gives the options for reading.  Without an explicit format,
// files are read in the format their name suggests and stdin as grfon.
func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := debug.ParseOpts()
	fp := cfg.ioFormat()
	if cfg.InFormat != nil {
		fp = cfg.InFormat
	}
	if fp != nil {
		res = append(res, parse.ParseFormat(*fp))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	f := format.GRFONFormat
	if fp := cfg.ioFormat(); fp != nil {
		f = *fp
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeCompact(cfg.Compact),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// plainEncOpts is encOpts without colors, for output which is compared
// or post processed.
func (cfg *MainConfig) plainEncOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeCompact(cfg.Compact),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Tokens bool `cli:"name=tokens desc='dump the tokens instead of the node tree'"`

	Dump *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Warnings bool `cli:"name=w desc='fail on warnings too'"`
	Quiet    bool `cli:"name=q desc='only set the exit status'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='list every match of paths with [*] or ..'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='diff the encoded lines'"`
	Node    bool `cli:"name=n aliases=node desc='output the diff as a document'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='apply a json merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	Subset bool `cli:"name=subset desc='match lists as unordered subsets'"`
	String bool `cli:"name=s desc='match arg as string'"`
}
