package machine

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrogolib/assert"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy byte
		word   uint16 // operates on V1, V2
		result byte
		flag   byte
	}{
		{"ADD carry", 0xFF, 0x01, 0x8124, 0x00, 1},
		{"ADD no carry", 0x10, 0x20, 0x8124, 0x30, 0},
		{"SUB borrow", 0x01, 0x02, 0x8125, 0xFF, 0},
		{"SUB no borrow", 0x05, 0x03, 0x8125, 0x02, 1},
		{"SUB equal", 0x07, 0x07, 0x8125, 0x00, 1},
		{"SUBN borrow", 0x05, 0x03, 0x8127, 0xFE, 0},
		{"SUBN no borrow", 0x03, 0x05, 0x8127, 0x02, 1},
		{"SUBN equal", 0x07, 0x07, 0x8127, 0x00, 1},
		{"SHR odd", 0x05, 0xFF, 0x8126, 0x02, 1},
		{"SHR even", 0x04, 0xFF, 0x8126, 0x02, 0},
		{"SHL high", 0x81, 0x00, 0x812E, 0x02, 1},
		{"SHL low", 0x41, 0x00, 0x812E, 0x82, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.word)
			m.v[1] = tt.vx
			m.v[2] = tt.vy
			m.v[opcode.VF] = 0xAA
			step(t, m, 1)

			assert.Equal(t, tt.result, m.v[1])
			assert.Equal(t, tt.vy, m.v[2])
			assert.Equal(t, tt.flag, m.v[opcode.VF])
			assert.Equal(t, uint16(0x202), m.pc)
		})
	}
}

func TestLogic(t *testing.T) {
	tests := []struct {
		name   string
		word   uint16
		result byte
	}{
		{"LD", 0x8120, 0x0F},
		{"OR", 0x8121, 0x3F},
		{"AND", 0x8122, 0x0C},
		{"XOR", 0x8123, 0x33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.word)
			m.v[1] = 0x3C
			m.v[2] = 0x0F
			m.v[opcode.VF] = 0xAA
			step(t, m, 1)

			assert.Equal(t, tt.result, m.v[1])
			assert.Equal(t, byte(0xAA), m.v[opcode.VF])
		})
	}
}

func TestFlagWrittenLast(t *testing.T) {
	m := newTestMachine(t,
		0x6FFF, // LD VF, $FF
		0x6101, // LD V1, $01
		0x8F14, // ADD VF, V1
		0x6F01, // LD VF, $01
		0x6202, // LD V2, $02
		0x8F25, // SUB VF, V2
		0x6F03, // LD VF, $03
		0x8FF6, // SHR VF
	)

	step(t, m, 3)
	assert.Equal(t, byte(1), m.v[opcode.VF])

	step(t, m, 3)
	assert.Equal(t, byte(0), m.v[opcode.VF])

	step(t, m, 2)
	assert.Equal(t, byte(1), m.v[opcode.VF])
}

func TestAddImmediate(t *testing.T) {
	m := newTestMachine(t,
		0x60FF, // LD V0, $FF
		0x7002, // ADD V0, $02
	)
	m.v[opcode.VF] = 0x55
	step(t, m, 2)
	assert.Equal(t, byte(0x01), m.v[0])
	assert.Equal(t, byte(0x55), m.v[opcode.VF])
}

func TestCallReturn(t *testing.T) {
	m := newTestMachine(t, 0x2300) // CALL $300
	assert.NoError(t, m.LoadProgram([]byte{0x00, 0xEE}, 0x300))

	step(t, m, 1)
	state := m.State()
	assert.Equal(t, uint16(0x300), state.PC)
	assert.Equal(t, uint8(1), state.SP)
	assert.Equal(t, uint16(0x202), state.Stack[0])

	step(t, m, 1)
	state = m.State()
	assert.Equal(t, uint16(0x202), state.PC)
	assert.Equal(t, uint8(0), state.SP)
}

func TestStackOverflow(t *testing.T) {
	m := newTestMachine(t, 0x2200) // CALL $200
	step(t, m, StackDepth)
	assert.Equal(t, uint8(StackDepth), m.State().SP)

	_, err := m.Step()
	assert.ErrorIs(t, err, ErrStackOverflow)
	assert.Equal(t, uint8(StackDepth), m.State().SP)
	assert.Equal(t, uint16(0x200), m.State().PC)
}

func TestStackUnderflow(t *testing.T) {
	m := newTestMachine(t, 0x00EE) // RET
	_, err := m.Step()
	assert.ErrorIs(t, err, ErrStackUnderflow)
	assert.Equal(t, uint16(0x200), m.State().PC)
}

func TestJumps(t *testing.T) {
	m := newTestMachine(t, 0x1240) // JP $240
	step(t, m, 1)
	assert.Equal(t, uint16(0x240), m.pc)

	m = newTestMachine(t,
		0x6010, // LD V0, $10
		0xB300, // JP V0, $300
	)
	step(t, m, 2)
	assert.Equal(t, uint16(0x310), m.pc)
}

func TestSys(t *testing.T) {
	m := newTestMachine(t, 0x0123) // SYS $123
	step(t, m, 1)
	assert.Equal(t, uint16(0x202), m.pc)
}

func TestSkips(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		pc   uint16
	}{
		{"SE imm taken", 0x3142, 0x204},
		{"SE imm not taken", 0x3143, 0x202},
		{"SNE imm taken", 0x4143, 0x204},
		{"SNE imm not taken", 0x4142, 0x202},
		{"SE reg taken", 0x5120, 0x204},
		{"SE reg not taken", 0x5130, 0x202},
		{"SNE reg taken", 0x9130, 0x204},
		{"SNE reg not taken", 0x9120, 0x202},
		{"SKP taken", 0xE49E, 0x204},
		{"SKP not taken", 0xE59E, 0x202},
		{"SKNP taken", 0xE5A1, 0x204},
		{"SKNP not taken", 0xE4A1, 0x202},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.word)
			m.v[1] = 0x42
			m.v[2] = 0x42
			m.v[3] = 0x41
			m.v[4] = 0x07
			m.v[5] = 0x08
			m.Keypad().Press(7)
			step(t, m, 1)
			assert.Equal(t, tt.pc, m.pc)
		})
	}
}

func TestSkipKeyUsesLowNibble(t *testing.T) {
	m := newTestMachine(t,
		0x60F3, // LD V0, $F3
		0xE09E, // SKP V0
	)
	m.Keypad().Press(3)
	step(t, m, 2)
	assert.Equal(t, uint16(0x206), m.pc)
}

func TestRandom(t *testing.T) {
	m := newTestMachine(t, 0xC30F) // RND V3, $0F
	step(t, m, 1)
	assert.Equal(t, byte(0x05), m.v[3])
}

func TestIndex(t *testing.T) {
	m := newTestMachine(t,
		0xAFFE, // LD I, $FFE
		0x6010, // LD V0, $10
		0xF01E, // ADD I, V0
		0x610B, // LD V1, $0B
		0xF129, // LD F, V1
		0x62FB, // LD V2, $FB
		0xF229, // LD F, V2
	)
	m.v[opcode.VF] = 0x77

	step(t, m, 3)
	assert.Equal(t, uint16(0x100E), m.i)
	assert.Equal(t, byte(0x77), m.v[opcode.VF])

	step(t, m, 2)
	assert.Equal(t, uint16(0xB*GlyphSize), m.i)

	step(t, m, 2)
	assert.Equal(t, uint16(0xB*GlyphSize), m.i)
}

func TestDrawGlyphTwice(t *testing.T) {
	m := newTestMachine(t,
		0x6000, // LD V0, $00
		0xF029, // LD F, V0
		0xD005, // DRW V0, V0, $5
		0xD005, // DRW V0, V0, $5
	)
	step(t, m, 3)

	display := m.Display()
	assert.True(t, display.Dirty())
	assert.Equal(t, byte(0), m.v[opcode.VF])
	for x := range 4 {
		assert.True(t, display.Pixel(x, 0))
		assert.True(t, display.Pixel(x, 4))
	}
	assert.True(t, display.Pixel(0, 2))
	assert.False(t, display.Pixel(1, 2))
	assert.True(t, display.Pixel(3, 2))
	assert.Equal(t, 14, litPixels(display))

	display.ClearDirty()
	assert.False(t, display.Dirty())

	step(t, m, 1)
	assert.True(t, display.Dirty())
	assert.Equal(t, byte(1), m.v[opcode.VF])
	assert.Equal(t, 0, litPixels(display))
}

func TestDrawWraps(t *testing.T) {
	m := newTestMachine(t,
		0x603E, // LD V0, $3E
		0x611F, // LD V1, $1F
		0xA20A, // LD I, $20A
		0xD012, // DRW V0, V1, $2
		0x1208, // JP $208
	)
	assert.NoError(t, m.LoadProgram([]byte{0xFF, 0x81}, 0x20A))
	step(t, m, 4)

	display := m.Display()
	// row 31 holds 11111111 starting at x=62
	assert.True(t, display.Pixel(62, 31))
	assert.True(t, display.Pixel(63, 31))
	for x := range 6 {
		assert.True(t, display.Pixel(x, 31))
	}
	assert.False(t, display.Pixel(6, 31))
	// row 0 holds 10000001 starting at x=62
	assert.True(t, display.Pixel(62, 0))
	assert.False(t, display.Pixel(63, 0))
	assert.True(t, display.Pixel(5, 0))
	assert.Equal(t, 10, litPixels(display))
}

func TestDrawCoordinatesWrap(t *testing.T) {
	m := newTestMachine(t,
		0x6041, // LD V0, $41
		0x6122, // LD V1, $22
		0xD011, // DRW V0, V1, $1
	)
	m.i = FontStart + GlyphSize // glyph 1 row 0 is $20
	step(t, m, 3)
	assert.True(t, m.Display().Pixel(3, 2))
	assert.Equal(t, 1, litPixels(m.Display()))
}

func TestDrawOutOfBounds(t *testing.T) {
	m := newTestMachine(t,
		0xAFFE, // LD I, $FFE
		0xD005, // DRW V0, V0, $5
	)
	step(t, m, 1)
	_, err := m.Step()
	assert.ErrorIs(t, err, ErrMemoryOutOfBounds)
	assert.False(t, m.Display().Dirty())
}

func TestClearScreen(t *testing.T) {
	m := newTestMachine(t,
		0xD005, // DRW V0, V0, $5
		0x00E0, // CLS
	)
	step(t, m, 1)
	m.Display().ClearDirty()
	step(t, m, 1)
	assert.True(t, m.Display().Dirty())
	assert.Equal(t, 0, litPixels(m.Display()))
}

func TestStoreBCD(t *testing.T) {
	tests := []struct {
		value    byte
		expected []byte
	}{
		{234, []byte{2, 3, 4}},
		{7, []byte{0, 0, 7}},
		{100, []byte{1, 0, 0}},
		{255, []byte{2, 5, 5}},
	}

	for _, tt := range tests {
		m := newTestMachine(t,
			0xA300, // LD I, $300
			0xF533, // LD B, V5
		)
		m.v[5] = tt.value
		step(t, m, 2)
		assert.Equal(t, tt.expected, m.memory[0x300:0x303])
		assert.Equal(t, uint16(0x300), m.i)
	}
}

func TestStoreLoadRegisters(t *testing.T) {
	m := newTestMachine(t,
		0xA300, // LD I, $300
		0xF355, // LD [I], V3
		0xA400, // LD I, $400
		0xF265, // LD V2, [I]
	)
	assert.NoError(t, m.LoadProgram([]byte{0x11, 0x22, 0x33, 0x44}, 0x400))
	m.v = [RegisterCount]byte{0xA0, 0xA1, 0xA2, 0xA3, 0xA4}

	step(t, m, 2)
	assert.Equal(t, []byte{0xA0, 0xA1, 0xA2, 0xA3, 0x00}, m.memory[0x300:0x305])
	assert.Equal(t, uint16(0x300), m.i)

	step(t, m, 2)
	assert.Equal(t, byte(0x11), m.v[0])
	assert.Equal(t, byte(0x22), m.v[1])
	assert.Equal(t, byte(0x33), m.v[2])
	assert.Equal(t, byte(0xA3), m.v[3])
	assert.Equal(t, uint16(0x400), m.i)
}

func TestRegisterBlockOutOfBounds(t *testing.T) {
	for _, word := range []uint16{0xF155, 0xF165, 0xF033} {
		m := newTestMachine(t,
			0xAFFF, // LD I, $FFF
			word,
		)
		step(t, m, 1)
		before := m.State()

		_, err := m.Step()
		assert.ErrorIs(t, err, ErrMemoryOutOfBounds)
		assert.Equal(t, before, m.State())
	}

	// the last byte of memory is still reachable
	m := newTestMachine(t,
		0xAFFF, // LD I, $FFF
		0xF055, // LD [I], V0
	)
	m.v[0] = 0x99
	step(t, m, 2)
	assert.Equal(t, byte(0x99), m.memory[0xFFF])
}

func TestWaitKey(t *testing.T) {
	m := newTestMachine(t,
		0xF30A, // LD V3, K
		0x1202, // JP $202
	)
	m.Keypad().Press(9) // pressed before the wait, discarded
	m.timers.Delay = 10

	status, err := m.Step()
	assert.NoError(t, err)
	assert.True(t, status.AwaitingKey)
	assert.Equal(t, opcode.Register(3), status.Register)
	assert.Equal(t, uint16(0x200), m.pc)

	for range 3 {
		status, err = m.Step()
		assert.NoError(t, err)
		assert.True(t, status.AwaitingKey)
	}
	assert.Equal(t, uint16(0x200), m.pc)
	assert.Equal(t, uint8(6), m.timers.Delay)
	assert.True(t, m.State().Status.AwaitingKey)

	m.Keypad().Release(9)
	m.Keypad().Press(0xC)
	status, err = m.Step()
	assert.NoError(t, err)
	assert.False(t, status.AwaitingKey)
	assert.Equal(t, byte(0xC), m.v[3])
	assert.Equal(t, uint16(0x202), m.pc)

	status, err = m.Step()
	assert.NoError(t, err)
	assert.False(t, status.AwaitingKey)
}

func TestWaitKeyHeldKeyIsNotRepeated(t *testing.T) {
	m := newTestMachine(t,
		0xF00A, // LD V0, K
		0xF10A, // LD V1, K
	)
	step(t, m, 1)
	m.Keypad().Press(4)
	step(t, m, 1)
	assert.Equal(t, byte(4), m.v[0])

	// key 4 is still held, the second wait needs a new press
	m.Keypad().Press(4)
	step(t, m, 3)
	assert.True(t, m.State().Status.AwaitingKey)
	assert.Equal(t, uint16(0x202), m.pc)

	m.Keypad().Release(4)
	m.Keypad().Press(4)
	step(t, m, 1)
	assert.Equal(t, byte(4), m.v[1])
	assert.Equal(t, uint16(0x204), m.pc)
}

func litPixels(d *Display) int {
	lit := 0
	for y := range DisplayHeight {
		for x := range DisplayWidth {
			if d.Pixel(x, y) {
				lit++
			}
		}
	}
	return lit
}
