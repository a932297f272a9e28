package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/grfon-format/go-grfon"
	"github.com/signadot/grfon-format/go-grfon/token"

	"github.com/scott-cotton/cli"
)

// dump writes the node tree of each input, including lines and compact
// marks, as json.  With -tokens it lists the tokens instead.
func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Tokens {
		for _, file := range inputs(args) {
			if err := dumpTokens(cc, file); err != nil {
				return err
			}
		}
		return nil
	}
	enc := json.NewEncoder(cc.Out)
	enc.SetIndent("", "  ")
	for _, file := range inputs(args) {
		node, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if node == nil {
			continue
		}
		if err := enc.Encode(node); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func dumpTokens(cc *cli.Context, file string) error {
	var r io.Reader = cc.In
	if file != "-" {
		rc, err := grfon.Open(file)
		if err != nil {
			return err
		}
		defer rc.Close()
		r = rc
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	token.PrintTokens(cc.Out, token.Tokenize(string(d)), file)
	return nil
}
