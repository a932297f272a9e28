package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

const lsName = "grfon-lsp"

var (
	version = "0.0.1"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
