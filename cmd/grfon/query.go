package main

import (
	"fmt"

	"github.com/signadot/grfon-format/go-grfon"
	"github.com/signadot/grfon-format/go-grfon/encode"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	q, err := grfon.CompileQuery(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := inputs(args[1:])
	for i, file := range files {
		if err := writeSep(cfg.MainConfig, cc.Out, file, i, len(files)); err != nil {
			return err
		}
		doc, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := q.Run(doc)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
