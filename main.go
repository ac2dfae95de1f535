// Package main implements the main entry point for a CHIP-8 emulator and disassembler
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	retrocli "github.com/retroenv/retrogolib/cli"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	cmd := retrocli.NewCommand("retrochip8", "CHIP-8 emulator and disassembler")
	cmd.SetVersion(buildinfo.Version(version, commit, date))
	cmd.AddSubcommand("run", "run a CHIP-8 ROM", runCommand)
	cmd.AddSubcommand("disasm", "disassemble a CHIP-8 ROM", disasmCommand)

	os.Exit(cmd.Execute(os.Args[1:]))
}

func runCommand(args []string) int {
	opts, err := cli.ParseRun(args)
	if err != nil {
		return handleParseError(err, opts.Debug, opts.Quiet)
	}

	logger := config.CreateLogger(opts.Debug, opts.Trace, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts.Quiet, version, commit, date)

	if err := fileprocessor.Run(app.Context(), logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation stopped")
			return 0
		}
		logger.Error("Emulation failed", log.Err(err))
		return 1
	}
	return 0
}

func disasmCommand(args []string) int {
	opts, disasmOptions, err := cli.ParseDisasm(args)
	if err != nil {
		return handleParseError(err, opts.Debug, opts.Quiet)
	}

	logger := config.CreateLogger(opts.Debug, false, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts.Quiet || opts.Output == "", version, commit, date)

	if err := fileprocessor.Disassemble(logger, opts, disasmOptions); err != nil {
		logger.Error("Disassembling failed", log.Err(err))
		return 1
	}
	return 0
}

// handleParseError returns the exit code for a failed argument parse.
// The flag set has already printed usage for help requests and flag
// syntax errors.
func handleParseError(err error, debug, quiet bool) int {
	if errors.Is(err, retrocli.ErrHelpRequested) {
		return 0
	}

	logger := config.CreateLogger(debug, false, quiet)
	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		logger.Error(usageErr.Error())
		usageErr.ShowUsage()
		return 1
	}
	logger.Error("Parsing arguments failed", log.Err(err))
	return 1
}
