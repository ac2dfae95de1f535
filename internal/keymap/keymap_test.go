package keymap

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/input"
)

func TestDefault(t *testing.T) {
	k := Default()

	tests := []struct {
		host  input.Key
		chip8 uint8
	}{
		{input.Key1, 0x1},
		{input.Key4, 0xC},
		{input.Q, 0x4},
		{input.R, 0xD},
		{input.A, 0x7},
		{input.F, 0xE},
		{input.Z, 0xA},
		{input.X, 0x0},
		{input.C, 0xB},
		{input.V, 0xF},
	}
	for _, tt := range tests {
		key, ok := k.Lookup(tt.host)
		assert.True(t, ok)
		assert.Equal(t, tt.chip8, key)
	}

	_, ok := k.Lookup(input.P)
	assert.False(t, ok)
	_, ok = k.Lookup(input.Unknown)
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	k := Default()
	k.Set(0x5, input.Up)
	assert.Equal(t, input.Up, k[5])

	key, ok := k.Lookup(input.Up)
	assert.True(t, ok)
	assert.Equal(t, uint8(5), key)
	_, ok = k.Lookup(input.W)
	assert.False(t, ok)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		expected input.Key
	}{
		{"a", input.A},
		{"Z", input.Z},
		{"0", input.Key0},
		{"9", input.Key9},
		{"kp0", input.KP0},
		{"KP7", input.KP7},
		{"f1", input.F1},
		{"f12", input.F12},
		{" space ", input.Space},
		{"up", input.Up},
		{"Enter", input.Enter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.name)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, name := range []string{"", "ab", "kp", "kpx", "f0", "f13", "f1x", "10"} {
		key, err := ParseKey(name)
		assert.ErrorIs(t, err, ErrUnknownKey)
		assert.Equal(t, input.Unknown, key)
	}
}
