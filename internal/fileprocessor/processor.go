// Package fileprocessor runs the emulator and disassembler workflows for a ROM file.
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Run loads the ROM of the options and emulates it until the window is
// closed, the context is canceled, the frame limit is reached or the
// machine fails.
func Run(ctx context.Context, logger *log.Logger, opts options.Run) error {
	settings, err := config.LoadSettings(opts.Config)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	settings.Override(opts.Emulation)
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validating settings: %w", err)
	}

	program, err := loader.New(logger).Load(opts.File)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	m, err := newMachine(logger, program, opts.Seed)
	if err != nil {
		return err
	}
	logger.Debug("Program loaded",
		log.String("file", opts.File),
		log.Int("size", len(program)),
		log.Int("cycles_per_second", settings.Emulation.CyclesPerSecond))

	if opts.Headless {
		return runTerminal(ctx, logger, m, settings, opts.Frames, os.Stdout)
	}
	return runWindow(ctx, logger, m, program, settings, opts.Frames)
}

func newMachine(logger *log.Logger, program []byte, seed uint64) (*machine.Machine, error) {
	var machineOptions []machine.Option
	if seed != 0 {
		machineOptions = append(machineOptions, machine.WithRandomSource(machine.NewRandomSource(seed)))
	}

	m := machine.New(logger, machineOptions...)
	if err := m.Load(program); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	return m, nil
}

// runTerminal runs the machine without window and audio. The display is
// redrawn in place on large enough terminals and printed once at the
// end otherwise.
func runTerminal(ctx context.Context, logger *log.Logger, m *machine.Machine,
	settings config.Settings, frames int, file *os.File) error {

	terminal := frontend.NewTerminal(file)
	runner := host.New(logger, m, settings.Emulation.CyclesPerSecond, host.WithVideo(terminal))

	runErr := runner.Run(ctx, frames)
	logger.Debug("Emulation stopped", log.Int("frames", runner.Frames()))

	if !terminal.Live() {
		if err := terminal.Print(m.Display()); err != nil {
			return fmt.Errorf("printing display: %w", err)
		}
	}
	return runErr
}

func runWindow(ctx context.Context, logger *log.Logger, m *machine.Machine, program []byte,
	settings config.Settings, frames int) error {

	window := frontend.NewWindow(logger, settings.Video, settings.Keys)
	hostOptions := []host.Option{
		host.WithVideo(window),
		host.WithInput(window),
	}

	if settings.Audio.Enabled {
		tone := audio.NewTone(settings.Audio.Frequency, settings.Audio.Volume)
		player, err := audio.NewPlayer(tone)
		if err != nil {
			logger.Warn("Audio output not available", log.Err(err))
		} else {
			defer logger.Closer(player, "Closing audio player failed")
			hostOptions = append(hostOptions, host.WithAudio(player))
		}
	}

	runner := host.New(logger, m, settings.Emulation.CyclesPerSecond, hostOptions...)
	reset := func() error {
		m.Reset()
		return m.Load(program)
	}

	if err := window.Run(ctx, runner, frames, reset); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Disassemble writes the disassembly of the ROM of the options to the
// output file or stdout.
func Disassemble(logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) (err error) {
	program, err := loader.New(logger).Load(opts.File)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			if closeErr := closer.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", closeErr)
			}
		}
	}()

	dis := disasm.New(logger, disasmOptions)
	if err := dis.Process(program, writer); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information.
func PrintBanner(logger *log.Logger, quiet bool, version, commit, date string) {
	if quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
