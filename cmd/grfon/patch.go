package main

import (
	"fmt"

	"github.com/signadot/grfon-format/go-grfon"
	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch object and optionally files to which to apply it", cli.ErrUsage)
	}
	p, err := getish(cfg.MainConfig, cc, cfg.String, args[0])
	if err != nil {
		return fmt.Errorf("error reading patch: %w", err)
	}
	apply := grfon.Patch
	if cfg.Merge {
		apply = grfon.MergePatch
	}
	files := inputs(args[1:])
	for i, file := range files {
		if err := writeSep(cfg.MainConfig, cc.Out, file, i, len(files)); err != nil {
			return err
		}
		target, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if target == nil {
			target = ir.NewCollection()
		}
		res, err := apply(target, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
