package opcode

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode is matched by every UnknownOpcodeError.
var ErrUnknownOpcode = errors.New("unknown opcode")

// UnknownOpcodeError is returned for words that do not encode any
// instruction of the CHIP-8 instruction set.
type UnknownOpcodeError struct {
	Word uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X", e.Word)
}

// Is reports whether target is ErrUnknownOpcode.
func (e *UnknownOpcodeError) Is(target error) bool {
	return target == ErrUnknownOpcode
}

// Size is the size of every CHIP-8 instruction in bytes.
const Size = 2

// Word combines the two big-endian instruction bytes.
func Word(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Decode returns the instruction encoded by word. It has no side effects.
func Decode(word uint16) (Instruction, error) {
	x := Register((word >> 8) & 0xF)
	y := Register((word >> 4) & 0xF)
	n := uint8(word & 0xF)
	kk := byte(word)
	nnn := Address(word & 0x0FFF)

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			return Cls{}, nil
		case 0x00EE:
			return Ret{}, nil
		}
		return Sys{Addr: nnn}, nil

	case 0x1:
		return Jump{Addr: nnn}, nil

	case 0x2:
		return Call{Addr: nnn}, nil

	case 0x3:
		return SkipEqualImm{X: x, Value: kk}, nil

	case 0x4:
		return SkipNotEqualImm{X: x, Value: kk}, nil

	case 0x5:
		if n == 0 {
			return SkipEqualReg{X: x, Y: y}, nil
		}

	case 0x6:
		return LoadImm{X: x, Value: kk}, nil

	case 0x7:
		return AddImm{X: x, Value: kk}, nil

	case 0x8:
		return decodeALU(word, x, y, n)

	case 0x9:
		if n == 0 {
			return SkipNotEqualReg{X: x, Y: y}, nil
		}

	case 0xA:
		return LoadIndex{Addr: nnn}, nil

	case 0xB:
		return JumpOffset{Addr: nnn}, nil

	case 0xC:
		return Random{X: x, Mask: kk}, nil

	case 0xD:
		return Draw{X: x, Y: y, Rows: n}, nil

	case 0xE:
		switch kk {
		case 0x9E:
			return SkipKeyPressed{X: x}, nil
		case 0xA1:
			return SkipKeyNotPressed{X: x}, nil
		}

	case 0xF:
		return decodeMisc(word, x, kk)
	}

	return nil, &UnknownOpcodeError{Word: word}
}

// decodeALU decodes the 8xyN register to register operations.
func decodeALU(word uint16, x, y Register, n uint8) (Instruction, error) {
	switch n {
	case 0x0:
		return LoadReg{X: x, Y: y}, nil
	case 0x1:
		return Or{X: x, Y: y}, nil
	case 0x2:
		return And{X: x, Y: y}, nil
	case 0x3:
		return Xor{X: x, Y: y}, nil
	case 0x4:
		return AddReg{X: x, Y: y}, nil
	case 0x5:
		return Sub{X: x, Y: y}, nil
	case 0x6:
		return ShiftRight{X: x}, nil
	case 0x7:
		return SubReverse{X: x, Y: y}, nil
	case 0xE:
		return ShiftLeft{X: x}, nil
	}
	return nil, &UnknownOpcodeError{Word: word}
}

// decodeMisc decodes the FxKK timer, keypad, index and memory operations.
func decodeMisc(word uint16, x Register, kk byte) (Instruction, error) {
	switch kk {
	case 0x07:
		return LoadDelay{X: x}, nil
	case 0x0A:
		return WaitKey{X: x}, nil
	case 0x15:
		return SetDelay{X: x}, nil
	case 0x18:
		return SetSound{X: x}, nil
	case 0x1E:
		return AddIndex{X: x}, nil
	case 0x29:
		return LoadFont{X: x}, nil
	case 0x33:
		return StoreBCD{X: x}, nil
	case 0x55:
		return StoreRegisters{X: x}, nil
	case 0x65:
		return LoadRegisters{X: x}, nil
	}
	return nil, &UnknownOpcodeError{Word: word}
}
