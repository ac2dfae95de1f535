package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrStackOverflow is returned when a CALL would exceed the stack depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned on a RET with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrMemoryOutOfBounds is returned for any access outside of the 4 KB address space.
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
	// ErrProgramTooLarge is returned when a program does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
)

// ExecError wraps an error of the instruction at PC. Once it has been
// returned the machine stays halted until Reset.
type ExecError struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing opcode %04X at $%03X: %v", e.Opcode, e.PC, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// ProgramTooLargeError describes a rejected program load.
type ProgramTooLargeError struct {
	Size      int
	Offset    uint16
	Available int
}

func (e *ProgramTooLargeError) Error() string {
	return fmt.Sprintf("%v: %d bytes at offset $%03X, %d bytes available",
		ErrProgramTooLarge, e.Size, e.Offset, e.Available)
}

// Is reports whether target is ErrProgramTooLarge.
func (e *ProgramTooLargeError) Is(target error) bool {
	return target == ErrProgramTooLarge
}
