package machine

import "fmt"

// CHIP-8 memory layout.
//
//	0x000-0x04F: font glyphs 0-F, 5 bytes each
//	0x050-0x1FF: reserved for the interpreter
//	0x200-0xFFF: program space
const (
	MemorySize   = 4096
	ProgramStart = 0x200
	FontStart    = 0x000
	GlyphSize    = 5
)

var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat CHIP-8 address space.
type Memory [MemorySize]byte

// region returns the n bytes starting at addr. The returned slice aliases
// the memory so writes through it are visible.
func (m *Memory) region(addr uint16, n int) ([]byte, error) {
	end := int(addr) + n
	if end > MemorySize {
		return nil, fmt.Errorf("%w: address $%04X length %d", ErrMemoryOutOfBounds, addr, n)
	}
	return m[addr:end], nil
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) (byte, error) {
	b, err := m.region(addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (m *Memory) reset() {
	clear(m[:])
	copy(m[FontStart:], font[:])
}
