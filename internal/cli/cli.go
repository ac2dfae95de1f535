// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/cli"
)

// Program name used in usage output.
const programName = "retrochip8"

// ParseRun parses the arguments of the run command.
func ParseRun(args []string) (options.Run, error) {
	var opts options.Run

	flags := cli.NewFlagSet(programName + " run")
	flags.AddSection("Emulation", &opts.Emulation)
	flags.AddSection("Debugging", &opts.Tracing)
	flags.AddSection("Flags", &opts.Flags)
	flags.AddPositional(&opts.Positional)

	if err := parse(flags, args); err != nil {
		return opts, err
	}
	if err := validateRun(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// ParseDisasm parses the arguments of the disasm command and returns
// program and disassembler options.
func ParseDisasm(args []string) (options.Program, options.Disassembler, error) {
	var opts options.Program

	flags := cli.NewFlagSet(programName + " disasm")
	flags.AddSection("Parameters", &opts.Parameters)
	flags.AddSection("Output", &opts.OutputFlags)
	flags.AddSection("Flags", &opts.Flags)
	flags.AddPositional(&opts.Positional)

	if err := parse(flags, args); err != nil {
		return opts, options.Disassembler{}, err
	}

	disasmOptions := options.NewDisassembler()
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.OffsetComments = !opts.NoOffsets
	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *cli.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage of the command that failed to parse.
func (e *UsageError) ShowUsage() {
	if e.flags != nil {
		e.flags.ShowUsage()
	}
}

// parse runs the flag parser. Flag syntax errors and help requests are
// printed by the flag set itself, missing or superfluous arguments are
// returned as UsageError.
func parse(flags *cli.FlagSet, args []string) error {
	remaining, err := flags.Parse(args)
	if err != nil {
		var missing *cli.MissingArgsError
		if errors.As(err, &missing) {
			return &UsageError{flags: flags, msg: err.Error()}
		}
		return err
	}
	if err := validateArgs(remaining); err != nil {
		return &UsageError{flags: flags, msg: err.Error()}
	}
	return nil
}

// validateArgs checks that no arguments follow the ROM file.
func validateArgs(args []string) error {
	for _, arg := range args {
		if arg != "" && arg[0] == '-' {
			return fmt.Errorf("potential argument %s found after ROM file, please pass the ROM file as last argument", arg)
		}
		return fmt.Errorf("unexpected argument %s", arg)
	}
	return nil
}

// validateRun checks value ranges of the run options.
func validateRun(opts options.Run) error {
	switch {
	case opts.CyclesPerSecond < 0:
		return fmt.Errorf("invalid cycles per second %d", opts.CyclesPerSecond)
	case opts.Scale < 0:
		return fmt.Errorf("invalid scale %d", opts.Scale)
	case opts.Frames < 0:
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	return nil
}
