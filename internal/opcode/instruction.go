// Package opcode decodes CHIP-8 instruction words into typed instructions.
package opcode

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// SysName is the mnemonic of the legacy machine code call, which the
// retrogolib instruction table does not list.
const SysName = "sys"

// Register identifies one of the general purpose registers V0-VF.
type Register uint8

// VF is the register that receives carry, borrow and collision flags.
const VF Register = 0xF

func (r Register) String() string {
	return fmt.Sprintf("V%X", uint8(r))
}

// Address is a 12-bit memory address embedded in an instruction word.
type Address uint16

func (a Address) String() string {
	return fmt.Sprintf("$%03X", uint16(a))
}

// Instruction is a decoded CHIP-8 instruction. The set of implementations
// is closed, every instruction carries only the operands it uses.
type Instruction interface {
	fmt.Stringer

	// Name returns the lowercase instruction mnemonic.
	Name() string

	instruction()
}

// Sys calls a machine code routine on the original hardware (0nnn).
type Sys struct{ Addr Address }

// Cls clears the display (00E0).
type Cls struct{}

// Ret returns from a subroutine (00EE).
type Ret struct{}

// Jump sets the program counter to Addr (1nnn).
type Jump struct{ Addr Address }

// Call pushes the return address and jumps to Addr (2nnn).
type Call struct{ Addr Address }

// SkipEqualImm skips the next instruction if X equals Value (3xkk).
type SkipEqualImm struct {
	X     Register
	Value byte
}

// SkipNotEqualImm skips the next instruction if X does not equal Value (4xkk).
type SkipNotEqualImm struct {
	X     Register
	Value byte
}

// SkipEqualReg skips the next instruction if X equals Y (5xy0).
type SkipEqualReg struct{ X, Y Register }

// LoadImm sets X to Value (6xkk).
type LoadImm struct {
	X     Register
	Value byte
}

// AddImm adds Value to X without touching VF (7xkk).
type AddImm struct {
	X     Register
	Value byte
}

// LoadReg sets X to Y (8xy0).
type LoadReg struct{ X, Y Register }

// Or sets X to X OR Y (8xy1).
type Or struct{ X, Y Register }

// And sets X to X AND Y (8xy2).
type And struct{ X, Y Register }

// Xor sets X to X XOR Y (8xy3).
type Xor struct{ X, Y Register }

// AddReg sets X to X + Y and VF to the carry (8xy4).
type AddReg struct{ X, Y Register }

// Sub sets X to X - Y and VF to NOT borrow (8xy5).
type Sub struct{ X, Y Register }

// ShiftRight shifts X right by one, VF receives the shifted out bit (8xy6).
type ShiftRight struct{ X Register }

// SubReverse sets X to Y - X and VF to NOT borrow (8xy7).
type SubReverse struct{ X, Y Register }

// ShiftLeft shifts X left by one, VF receives the shifted out bit (8xyE).
type ShiftLeft struct{ X Register }

// SkipNotEqualReg skips the next instruction if X does not equal Y (9xy0).
type SkipNotEqualReg struct{ X, Y Register }

// LoadIndex sets I to Addr (Annn).
type LoadIndex struct{ Addr Address }

// JumpOffset jumps to Addr + V0 (Bnnn).
type JumpOffset struct{ Addr Address }

// Random sets X to a random byte AND Mask (Cxkk).
type Random struct {
	X    Register
	Mask byte
}

// Draw XORs a sprite of Rows bytes read from I onto the display at (X, Y)
// and sets VF on collision (Dxyn).
type Draw struct {
	X, Y Register
	Rows uint8
}

// SkipKeyPressed skips the next instruction if the key in X is down (Ex9E).
type SkipKeyPressed struct{ X Register }

// SkipKeyNotPressed skips the next instruction if the key in X is up (ExA1).
type SkipKeyNotPressed struct{ X Register }

// LoadDelay sets X to the delay timer value (Fx07).
type LoadDelay struct{ X Register }

// WaitKey blocks until a key is pressed and stores it in X (Fx0A).
type WaitKey struct{ X Register }

// SetDelay sets the delay timer to X (Fx15).
type SetDelay struct{ X Register }

// SetSound sets the sound timer to X (Fx18).
type SetSound struct{ X Register }

// AddIndex adds X to I (Fx1E).
type AddIndex struct{ X Register }

// LoadFont points I at the font glyph for the digit in X (Fx29).
type LoadFont struct{ X Register }

// StoreBCD writes the decimal digits of X to I, I+1 and I+2 (Fx33).
type StoreBCD struct{ X Register }

// StoreRegisters writes V0 through X to memory starting at I (Fx55).
type StoreRegisters struct{ X Register }

// LoadRegisters reads V0 through X from memory starting at I (Fx65).
type LoadRegisters struct{ X Register }

func (Sys) Name() string               { return SysName }
func (Cls) Name() string               { return chip8.ClsName }
func (Ret) Name() string               { return chip8.RetName }
func (Jump) Name() string              { return chip8.JpName }
func (Call) Name() string              { return chip8.CallName }
func (SkipEqualImm) Name() string      { return chip8.SeName }
func (SkipNotEqualImm) Name() string   { return chip8.SneName }
func (SkipEqualReg) Name() string      { return chip8.SeName }
func (LoadImm) Name() string           { return chip8.LdName }
func (AddImm) Name() string            { return chip8.AddName }
func (LoadReg) Name() string           { return chip8.LdName }
func (Or) Name() string                { return chip8.OrName }
func (And) Name() string               { return chip8.AndName }
func (Xor) Name() string               { return chip8.XorName }
func (AddReg) Name() string            { return chip8.AddName }
func (Sub) Name() string               { return chip8.SubName }
func (ShiftRight) Name() string        { return chip8.ShrName }
func (SubReverse) Name() string        { return chip8.SubnName }
func (ShiftLeft) Name() string         { return chip8.ShlName }
func (SkipNotEqualReg) Name() string   { return chip8.SneName }
func (LoadIndex) Name() string         { return chip8.LdName }
func (JumpOffset) Name() string        { return chip8.JpName }
func (Random) Name() string            { return chip8.RndName }
func (Draw) Name() string              { return chip8.DrwName }
func (SkipKeyPressed) Name() string    { return chip8.SkpName }
func (SkipKeyNotPressed) Name() string { return chip8.SknpName }
func (LoadDelay) Name() string         { return chip8.LdName }
func (WaitKey) Name() string           { return chip8.LdName }
func (SetDelay) Name() string          { return chip8.LdName }
func (SetSound) Name() string          { return chip8.LdName }
func (AddIndex) Name() string          { return chip8.AddName }
func (LoadFont) Name() string          { return chip8.LdName }
func (StoreBCD) Name() string          { return chip8.LdName }
func (StoreRegisters) Name() string    { return chip8.LdName }
func (LoadRegisters) Name() string     { return chip8.LdName }

func (i Sys) String() string  { return fmt.Sprintf("%s %s", i.Name(), i.Addr) }
func (i Cls) String() string  { return i.Name() }
func (i Ret) String() string  { return i.Name() }
func (i Jump) String() string { return fmt.Sprintf("%s %s", i.Name(), i.Addr) }
func (i Call) String() string { return fmt.Sprintf("%s %s", i.Name(), i.Addr) }

func (i SkipEqualImm) String() string    { return formatRegisterValue(i.Name(), i.X, i.Value) }
func (i SkipNotEqualImm) String() string { return formatRegisterValue(i.Name(), i.X, i.Value) }
func (i SkipEqualReg) String() string    { return formatRegisterRegister(i.Name(), i.X, i.Y) }
func (i LoadImm) String() string         { return formatRegisterValue(i.Name(), i.X, i.Value) }
func (i AddImm) String() string          { return formatRegisterValue(i.Name(), i.X, i.Value) }
func (i LoadReg) String() string         { return formatRegisterRegister(i.Name(), i.X, i.Y) }
func (i Or) String() string              { return formatRegisterRegister(i.Name(), i.X, i.Y) }
func (i And) String() string             { return formatRegisterRegister(i.Name(), i.X, i.Y) }
func (i Xor) String() string             { return formatRegisterRegister(i.Name(), i.X, i.Y) }
func (i AddReg) String() string          { return formatRegisterRegister(i.Name(), i.X, i.Y) }
func (i Sub) String() string             { return formatRegisterRegister(i.Name(), i.X, i.Y) }
func (i ShiftRight) String() string      { return formatRegister(i.Name(), i.X) }
func (i SubReverse) String() string      { return formatRegisterRegister(i.Name(), i.X, i.Y) }
func (i ShiftLeft) String() string       { return formatRegister(i.Name(), i.X) }
func (i SkipNotEqualReg) String() string { return formatRegisterRegister(i.Name(), i.X, i.Y) }

func (i LoadIndex) String() string  { return fmt.Sprintf("%s I, %s", i.Name(), i.Addr) }
func (i JumpOffset) String() string { return fmt.Sprintf("%s V0, %s", i.Name(), i.Addr) }
func (i Random) String() string     { return formatRegisterValue(i.Name(), i.X, i.Mask) }
func (i Draw) String() string {
	return fmt.Sprintf("%s %s, %s, $%X", i.Name(), i.X, i.Y, i.Rows)
}

func (i SkipKeyPressed) String() string    { return formatRegister(i.Name(), i.X) }
func (i SkipKeyNotPressed) String() string { return formatRegister(i.Name(), i.X) }
func (i LoadDelay) String() string         { return fmt.Sprintf("%s %s, DT", i.Name(), i.X) }
func (i WaitKey) String() string           { return fmt.Sprintf("%s %s, K", i.Name(), i.X) }
func (i SetDelay) String() string          { return fmt.Sprintf("%s DT, %s", i.Name(), i.X) }
func (i SetSound) String() string          { return fmt.Sprintf("%s ST, %s", i.Name(), i.X) }
func (i AddIndex) String() string          { return fmt.Sprintf("%s I, %s", i.Name(), i.X) }
func (i LoadFont) String() string          { return fmt.Sprintf("%s F, %s", i.Name(), i.X) }
func (i StoreBCD) String() string          { return fmt.Sprintf("%s B, %s", i.Name(), i.X) }
func (i StoreRegisters) String() string    { return fmt.Sprintf("%s [I], %s", i.Name(), i.X) }
func (i LoadRegisters) String() string     { return fmt.Sprintf("%s %s, [I]", i.Name(), i.X) }

func (Sys) instruction()               {}
func (Cls) instruction()               {}
func (Ret) instruction()               {}
func (Jump) instruction()              {}
func (Call) instruction()              {}
func (SkipEqualImm) instruction()      {}
func (SkipNotEqualImm) instruction()   {}
func (SkipEqualReg) instruction()      {}
func (LoadImm) instruction()           {}
func (AddImm) instruction()            {}
func (LoadReg) instruction()           {}
func (Or) instruction()                {}
func (And) instruction()               {}
func (Xor) instruction()               {}
func (AddReg) instruction()            {}
func (Sub) instruction()               {}
func (ShiftRight) instruction()        {}
func (SubReverse) instruction()        {}
func (ShiftLeft) instruction()         {}
func (SkipNotEqualReg) instruction()   {}
func (LoadIndex) instruction()         {}
func (JumpOffset) instruction()        {}
func (Random) instruction()            {}
func (Draw) instruction()              {}
func (SkipKeyPressed) instruction()    {}
func (SkipKeyNotPressed) instruction() {}
func (LoadDelay) instruction()         {}
func (WaitKey) instruction()           {}
func (SetDelay) instruction()          {}
func (SetSound) instruction()          {}
func (AddIndex) instruction()          {}
func (LoadFont) instruction()          {}
func (StoreBCD) instruction()          {}
func (StoreRegisters) instruction()    {}
func (LoadRegisters) instruction()     {}

// formatRegister formats instructions with a single register operand (SHR, SKP).
func formatRegister(name string, x Register) string {
	return fmt.Sprintf("%s %s", name, x)
}

// formatRegisterValue formats register and immediate byte operands (SE, LD, RND).
func formatRegisterValue(name string, x Register, value byte) string {
	return fmt.Sprintf("%s %s, $%02X", name, x, value)
}

// formatRegisterRegister formats two register operands (OR, SUB, SNE).
func formatRegisterRegister(name string, x, y Register) string {
	return fmt.Sprintf("%s %s, %s", name, x, y)
}
