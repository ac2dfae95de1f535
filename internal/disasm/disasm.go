// Package disasm implements a trace based CHIP-8 disassembler.
package disasm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

type offsetType uint8

const (
	dataOffset    offsetType = iota
	codeOffset               // first byte of an instruction
	operandOffset            // second byte of an instruction
)

type offset struct {
	kind        offsetType
	label       string
	instruction opcode.Instruction
}

// Disasm disassembles CHIP-8 programs.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	data    []byte
	offsets []offset
	queue   []uint16
	visited set.Set[uint16]
	jumps   set.Set[uint16] // targets of jumps and calls
	refs    set.Set[uint16] // targets of index register loads
}

// New returns a disassembler using the output options.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
	}
}

// Process disassembles the program that is loaded at the program start
// address and writes the listing to w.
func (dis *Disasm) Process(program []byte, w io.Writer) error {
	dis.data = program
	dis.offsets = make([]offset, len(program))
	dis.queue = dis.queue[:0]
	dis.visited = set.New[uint16]()
	dis.jumps = set.New[uint16]()
	dis.refs = set.New[uint16]()

	dis.addAddressToParse(machine.ProgramStart)
	for len(dis.queue) > 0 {
		address := dis.queue[0]
		dis.queue = dis.queue[1:]
		dis.processAddress(address)
	}
	dis.assignLabels()

	buf := bufio.NewWriter(w)
	dis.write(buf)
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (dis *Disasm) addAddressToParse(address uint16) {
	if dis.visited.Contains(address) {
		return
	}
	dis.visited.Add(address)
	dis.queue = append(dis.queue, address)
}

// index returns the program index of address and whether a complete
// instruction fits at it.
func (dis *Disasm) index(address uint16) (int, bool) {
	index := int(address) - machine.ProgramStart
	return index, index >= 0 && index+opcode.Size <= len(dis.data)
}

// processAddress decodes the instruction at address and queues all
// addresses that execution can continue at.
func (dis *Disasm) processAddress(address uint16) {
	index, ok := dis.index(address)
	if !ok {
		dis.logger.Debug("Code path leaves the program", log.Hex("address", address))
		return
	}
	if dis.offsets[index].kind != dataOffset || dis.offsets[index+1].kind != dataOffset {
		dis.logger.Debug("Code path overlaps an instruction", log.Hex("address", address))
		return
	}

	word := opcode.Word(dis.data[index], dis.data[index+1])
	ins, err := opcode.Decode(word)
	if err != nil {
		dis.logger.Debug("Code path ends at unknown opcode",
			log.Hex("address", address), log.Hex("opcode", word))
		return
	}

	dis.offsets[index] = offset{kind: codeOffset, instruction: ins}
	dis.offsets[index+1].kind = operandOffset

	next := address + opcode.Size
	switch ins := ins.(type) {
	case opcode.Ret, opcode.JumpOffset:
		// the target is only known at run time

	case opcode.Jump:
		dis.jumps.Add(uint16(ins.Addr))
		dis.addAddressToParse(uint16(ins.Addr))

	case opcode.Call:
		dis.jumps.Add(uint16(ins.Addr))
		dis.addAddressToParse(uint16(ins.Addr))
		dis.addAddressToParse(next)

	case opcode.LoadIndex:
		dis.refs.Add(uint16(ins.Addr))
		dis.addAddressToParse(next)

	default:
		dis.addAddressToParse(next)
		if chip8.SkipInstructions.Contains(ins.Name()) {
			dis.addAddressToParse(next + opcode.Size)
		}
	}
}

// assignLabels names every referenced address that starts a line of the
// listing. Data references into code keep the code unlabeled.
func (dis *Disasm) assignLabels() {
	for _, address := range set.Sorted(dis.jumps) {
		index, ok := dis.index(address)
		if ok && dis.offsets[index].kind == codeOffset {
			dis.offsets[index].label = labelName(address)
		}
	}
	for _, address := range set.Sorted(dis.refs) {
		index := int(address) - machine.ProgramStart
		if index >= 0 && index < len(dis.offsets) && dis.offsets[index].kind == dataOffset {
			dis.offsets[index].label = labelName(address)
		}
	}
	if len(dis.offsets) > 0 {
		dis.offsets[0].label = "Start"
	}
}

func labelName(address uint16) string {
	return fmt.Sprintf("label_%03X", address)
}
