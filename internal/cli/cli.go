// Package cli provides the command-line interface for xidgen.
package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gpukit/xidgen/internal/catalog"
	"github.com/gpukit/xidgen/internal/emit"
	"github.com/gpukit/xidgen/internal/errors"
	"github.com/gpukit/xidgen/internal/output"
	"github.com/gpukit/xidgen/internal/xlsx"
)

const usage = "Usage: xidgen <path-to-Xid-Catalog.xlsx> <path-to-output-go-file>"

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return run(args, output.New())
}

func run(args []string, out *output.Writer) int {
	if len(args) != 2 {
		out.Errorln(usage)
		return errors.ExitFailure
	}

	xlsxPath, err := filepath.Abs(args[0])
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitFailure
	}
	outputPath, err := filepath.Abs(args[1])
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitFailure
	}

	if fi, err := os.Stat(xlsxPath); err != nil || fi.IsDir() {
		out.ErrorPrefix("catalog file not found: %s", xlsxPath)
		return errors.ExitFailure
	}

	wb, err := xlsx.Open(xlsxPath)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	sheet1, err := wb.Sheet(xlsx.Sheet1Part)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	sheet2, err := wb.Sheet(xlsx.Sheet2Part)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	entries, err := catalog.BuildEntries(sheet1)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	rules, err := catalog.BuildRules(sheet2)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	src := emit.Generate(entries, rules, time.Now().UTC())
	if err := os.WriteFile(outputPath, []byte(src), 0644); err != nil {
		out.ErrorPrefix("writing %s: %v", outputPath, err)
		return errors.ExitFailure
	}

	out.Success("Generated catalog data to %s", outputPath)
	return errors.ExitSuccess
}
