// Package main is the entry point for the xidgen CLI.
package main

import (
	"os"

	"github.com/gpukit/xidgen/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
