package main

import (
	"fmt"

	"github.com/signadot/grfon-format/go-grfon/parse"

	"github.com/scott-cotton/cli"
)

// check reports the diagnostics of each input.  The exit status is 1
// if any input has errors, or warnings with -w.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, file := range inputs(args) {
		_, diags, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		for _, d := range diags {
			if d.Severity == parse.SeverityError || cfg.Warnings {
				failed = true
			}
			if cfg.Quiet {
				continue
			}
			if _, err := fmt.Fprintf(cc.Out, "%s:%s\n", file, d); err != nil {
				return err
			}
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
