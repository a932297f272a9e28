package main

import (
	"fmt"

	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := inputs(args[1:])
	for i, file := range files {
		if err := writeSep(cfg.MainConfig, cc.Out, file, i, len(files)); err != nil {
			return err
		}
		if err := getFile(cfg, cc, file, path); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file, path string) error {
	doc, err := getObjFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	var res *ir.Node
	if cfg.List {
		nodes, err := doc.ListPath(nil, path)
		if err != nil {
			return err
		}
		res = ir.FromSlice(nodes)
	} else {
		res, err = doc.GetPath(path)
		if err != nil {
			return err
		}
	}
	if res == nil {
		// nothing there, and nothing to complain about
		return nil
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
