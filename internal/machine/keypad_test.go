package machine

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad(t *testing.T) {
	var k Keypad
	k.Press(0x1A)
	assert.True(t, k.Pressed(0xA))
	assert.True(t, k.Pressed(0x2A))

	k.Set(0xA, false)
	assert.False(t, k.Pressed(0xA))

	k.Press(3)
	k.Press(1)
	key, ok := k.takeLatched()
	assert.True(t, ok)
	assert.Equal(t, uint8(1), key)
	key, ok = k.takeLatched()
	assert.True(t, ok)
	assert.Equal(t, uint8(3), key)
	key, ok = k.takeLatched()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xA), key)
	_, ok = k.takeLatched()
	assert.False(t, ok)
}

func TestStack(t *testing.T) {
	var s Stack
	for i := range StackDepth {
		assert.NoError(t, s.push(uint16(i)))
	}
	assert.ErrorIs(t, s.push(0x500), ErrStackOverflow)
	assert.Equal(t, StackDepth, s.Len())

	for i := StackDepth - 1; i >= 0; i-- {
		addr, err := s.pop()
		assert.NoError(t, err)
		assert.Equal(t, uint16(i), addr)
	}
	_, err := s.pop()
	assert.ErrorIs(t, err, ErrStackUnderflow)
}

func TestRandomSourceSeeded(t *testing.T) {
	a := NewRandomSource(42)
	b := NewRandomSource(42)
	for range 32 {
		assert.Equal(t, a.Byte(), b.Byte())
	}
}

func TestMemoryRegion(t *testing.T) {
	var m Memory
	_, err := m.region(0xFFF, 1)
	assert.NoError(t, err)
	_, err = m.region(0xFFF, 2)
	assert.ErrorIs(t, err, ErrMemoryOutOfBounds)
	_, err = m.region(0xFFFF, 0)
	assert.ErrorIs(t, err, ErrMemoryOutOfBounds)

	_, err = m.Read(0x1000)
	assert.ErrorContains(t, err, "address $1000 length 1")
}
