package main

import (
	"fmt"
	"io"

	"github.com/signadot/grfon-format/go-grfon/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		if err := writeSep(cfg.MainConfig, cc.Out, file, i, len(files)); err != nil {
			return err
		}
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	node, err := getObjFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
