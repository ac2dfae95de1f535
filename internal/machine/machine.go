// Package machine implements the CHIP-8 virtual CPU: memory, registers,
// stack, timers, display and keypad plus the fetch, decode and execute
// cycle that drives them.
//
// A Machine is single threaded. Hosts drive it by calling Step, or
// Execute and TickTimers separately when instructions and timers run at
// different rates, and observe it through Display, Keypad and ToneActive.
package machine

import (
	"context"

	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrogolib/log"
)

// RegisterCount is the number of general purpose registers V0-VF.
const RegisterCount = 16

// Status is returned by every executed cycle.
type Status struct {
	// AwaitingKey is set while a LD Vx, K instruction waits for a key press.
	AwaitingKey bool
	// Register is the register that receives the key once pressed.
	Register opcode.Register
}

// State is a snapshot of the CPU registers.
type State struct {
	V      [RegisterCount]byte
	I      uint16
	PC     uint16
	SP     uint8
	Stack  [StackDepth]uint16
	Delay  uint8
	Sound  uint8
	Status Status
}

// Option configures a Machine.
type Option func(*Machine)

// WithRandomSource sets the source used by the RND instruction.
func WithRandomSource(src RandomSource) Option {
	return func(m *Machine) {
		m.random = src
	}
}

// Machine is a CHIP-8 virtual CPU.
type Machine struct {
	logger *log.Logger
	random RandomSource

	memory  Memory
	v       [RegisterCount]byte
	i       uint16
	pc      uint16
	stack   Stack
	timers  Timers
	display Display
	keypad  Keypad

	wait   Status
	beeped bool
	halted error
}

// New returns a machine in its power-on state with the font loaded and
// the program counter at ProgramStart.
func New(logger *log.Logger, options ...Option) *Machine {
	m := &Machine{
		logger: logger,
	}
	for _, option := range options {
		option(m)
	}
	if m.random == nil {
		m.random = newDefaultSource()
	}
	m.Reset()
	return m
}

// Reset restores the power-on state. The loaded program is cleared.
func (m *Machine) Reset() {
	m.memory.reset()
	m.v = [RegisterCount]byte{}
	m.i = 0
	m.pc = ProgramStart
	m.stack = Stack{}
	m.timers = Timers{}
	m.display = Display{}
	m.keypad.reset()
	m.wait = Status{}
	m.beeped = false
	m.halted = nil
}

// Load copies the program into memory at ProgramStart.
func (m *Machine) Load(program []byte) error {
	return m.LoadProgram(program, ProgramStart)
}

// LoadProgram copies the program into memory at offset. Memory is not
// modified if the program does not fit.
func (m *Machine) LoadProgram(program []byte, offset uint16) error {
	available := MemorySize - int(offset)
	if available < 0 {
		available = 0
	}
	if len(program) > available {
		return &ProgramTooLargeError{
			Size:      len(program),
			Offset:    offset,
			Available: available,
		}
	}
	if len(program) > 0 {
		copy(m.memory[offset:], program)
	}
	return nil
}

// Step runs a single cycle: one instruction followed by one timer tick.
func (m *Machine) Step() (Status, error) {
	status, err := m.Execute()
	if err != nil {
		return status, err
	}
	m.TickTimers()
	return status, nil
}

// Execute fetches, decodes and executes the instruction at PC without
// touching the timers. Errors are returned as *ExecError and halt the
// machine, every later call returns the same error.
func (m *Machine) Execute() (Status, error) {
	if m.halted != nil {
		return Status{}, m.halted
	}

	pc := m.pc
	code, err := m.memory.region(pc, opcode.Size)
	if err != nil {
		return Status{}, m.halt(pc, 0, err)
	}
	word := opcode.Word(code[0], code[1])

	ins, err := opcode.Decode(word)
	if err != nil {
		return Status{}, m.halt(pc, word, err)
	}

	if m.logger.Enabled(context.Background(), log.TraceLevel) {
		m.logger.Trace("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.Stringer("instruction", ins))
	}

	if err := m.execute(ins); err != nil {
		return Status{}, m.halt(pc, word, err)
	}
	return m.wait, nil
}

// TickTimers decrements the delay and sound timers once and reports
// whether the sound timer expired on this tick.
func (m *Machine) TickTimers() bool {
	m.beeped = m.timers.tick()
	return m.beeped
}

func (m *Machine) halt(pc, word uint16, err error) error {
	m.halted = &ExecError{
		PC:     pc,
		Opcode: word,
		Err:    err,
	}
	return m.halted
}

// Err returns the error that halted the machine, if any.
func (m *Machine) Err() error {
	return m.halted
}

// Display returns the frame buffer.
func (m *Machine) Display() *Display {
	return &m.display
}

// Keypad returns the keypad that the input host writes to.
func (m *Machine) Keypad() *Keypad {
	return &m.keypad
}

// Memory returns the address space.
func (m *Machine) Memory() *Memory {
	return &m.memory
}

// ToneActive reports whether the tone should be audible.
func (m *Machine) ToneActive() bool {
	return m.timers.Sound > 0
}

// Beeped reports whether the sound timer expired on the last timer tick.
func (m *Machine) Beeped() bool {
	return m.beeped
}

// State returns a snapshot of the registers, stack and timers.
func (m *Machine) State() State {
	return State{
		V:      m.v,
		I:      m.i,
		PC:     m.pc,
		SP:     m.stack.sp,
		Stack:  m.stack.entries,
		Delay:  m.timers.Delay,
		Sound:  m.timers.Sound,
		Status: m.wait,
	}
}
