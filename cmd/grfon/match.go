package main

import (
	"fmt"

	"github.com/signadot/grfon-format/go-grfon"
	"github.com/signadot/grfon-format/go-grfon/encode"
	"github.com/signadot/grfon-format/go-grfon/ir"

	"github.com/scott-cotton/cli"
)

// match writes the inputs which match the match object.  The exit
// status is 1 if none do.
func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	m, err := getish(cfg.MainConfig, cc, cfg.String, args[0])
	if err != nil {
		return fmt.Errorf("error reading match: %w", err)
	}
	var res []*ir.Node
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if !grfon.Match(doc, m, grfon.MatchListSubset(cfg.Subset)) {
			continue
		}
		if cfg.Trim {
			doc = grfon.Trim(m, doc)
		}
		res = append(res, doc)
	}
	if len(res) == 0 {
		return cli.ExitCodeErr(1)
	}
	for i, doc := range res {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(doc, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}
