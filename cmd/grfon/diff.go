package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/ir"
	"github.com/signadot/grfon-format/go-grfon/libdiff"

	"github.com/scott-cotton/cli"
)

// diff exits with status 1 when the inputs differ.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one input may be stdin", cli.ErrUsage)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	var differs bool
	if cfg.Text {
		differs, err = diffText(cfg, cc.Out, a, b)
	} else {
		differs, err = diffInputs(cfg, cc.Out, a, b)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Node {
		node := libdiff.Node(changes)
		if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
			return false, err
		}
		return true, nil
	}
	for i := range changes {
		if _, err := fmt.Fprintln(w, changes[i].String()); err != nil {
			return false, err
		}
	}
	return true, nil
}

func diffText(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	ta, err := encodeText(cfg.MainConfig, a)
	if err != nil {
		return false, err
	}
	tb, err := encodeText(cfg.MainConfig, b)
	if err != nil {
		return false, err
	}
	d := libdiff.Text(ta, tb)
	if d == "" {
		return false, nil
	}
	_, err = io.WriteString(w, d)
	return true, err
}

func encodeText(cfg *MainConfig, node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, cfg.plainEncOpts()...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
