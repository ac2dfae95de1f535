// Package options contains the program options.
package options

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"CHIP-8 ROM file" required:"true"`
}

// Flags contains behavior options shared by all commands.
type Flags struct {
	Debug bool `flag:"debug" usage:"enable debug logging"`
	Quiet bool `flag:"q" usage:"quiet mode"`
}

// Emulation contains options of the run command that override the
// settings file.
type Emulation struct {
	Config          string `flag:"c" usage:"settings file"`
	CyclesPerSecond int    `flag:"cps" usage:"instructions executed per second (default: from settings)"`
	Scale           int    `flag:"scale" usage:"window scale factor (default: from settings)"`
	Headless        bool   `flag:"headless" usage:"run without window and audio, print the display on exit"`
	Frames          int    `flag:"frames" usage:"stop after this many frames (0: unlimited)"`
	Seed            uint64 `flag:"seed" usage:"seed of the random number generator (0: random)"`
}

// Tracing contains options of the run command for debugging ROMs.
type Tracing struct {
	Trace bool `flag:"trace" usage:"log every executed instruction"`
}

// Run options of the emulator.
type Run struct {
	Positional
	Emulation
	Tracing
	Flags
}

// Parameters contains file path options of the disassembler.
type Parameters struct {
	Output string `flag:"o" usage:"output .asm file (default: stdout)"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
	NoOffsets     bool `flag:"nooffsets" usage:"omit file offsets in comments"`
}

// Program options of the disassembler.
type Program struct {
	Positional
	Parameters
	OutputFlags
	Flags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	HexComments    bool
	OffsetComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments:    true,
		OffsetComments: true,
	}
}
