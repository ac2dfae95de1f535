// Package keymap maps host keyboard keys to the CHIP-8 keypad.
package keymap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/input"
)

// ErrUnknownKey is returned for key names that do not name a host key.
var ErrUnknownKey = errors.New("unknown key")

// Keymap holds the host key for every CHIP-8 key 0-F.
type Keymap [16]input.Key

// Default returns the conventional layout that maps the left hand block
// of a QWERTY keyboard onto the 4x4 COSMAC VIP keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
func Default() Keymap {
	return Keymap{
		0x0: input.X,
		0x1: input.Key1,
		0x2: input.Key2,
		0x3: input.Key3,
		0x4: input.Q,
		0x5: input.W,
		0x6: input.E,
		0x7: input.A,
		0x8: input.S,
		0x9: input.D,
		0xA: input.Z,
		0xB: input.C,
		0xC: input.Key4,
		0xD: input.R,
		0xE: input.F,
		0xF: input.V,
	}
}

// Set assigns a host key to the CHIP-8 key.
func (k *Keymap) Set(chip8Key uint8, hostKey input.Key) {
	k[chip8Key&0xF] = hostKey
}

// Lookup returns the CHIP-8 key that the host key is mapped to.
func (k *Keymap) Lookup(hostKey input.Key) (uint8, bool) {
	for i, key := range k {
		if key == hostKey && key != input.Unknown {
			return uint8(i), true
		}
	}
	return 0, false
}

var namedKeys = map[string]input.Key{
	"space":     input.Space,
	"enter":     input.Enter,
	"tab":       input.Tab,
	"backspace": input.Backspace,
	"escape":    input.Escape,
	"up":        input.Up,
	"down":      input.Down,
	"left":      input.Left,
	"right":     input.Right,
	"comma":     input.Comma,
	"period":    input.Period,
	"minus":     input.Minus,
	"slash":     input.Slash,
	"semicolon": input.Semicolon,
}

// ParseKey returns the host key with the given name. Names are case
// insensitive: letters a-z, digits 0-9, keypad digits kp0-kp9, f1-f12
// and named keys such as space or up.
func ParseKey(name string) (input.Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if key, ok := namedKeys[name]; ok {
		return key, nil
	}

	switch {
	case len(name) == 1 && name[0] >= 'a' && name[0] <= 'z':
		return input.A + input.Key(name[0]-'a'), nil
	case len(name) == 1 && name[0] >= '0' && name[0] <= '9':
		return input.Key0 + input.Key(name[0]-'0'), nil
	case len(name) == 3 && strings.HasPrefix(name, "kp") && name[2] >= '0' && name[2] <= '9':
		return input.KP0 + input.Key(name[2]-'0'), nil
	}

	if rest, ok := strings.CutPrefix(name, "f"); ok {
		n, err := strconv.Atoi(rest)
		if err == nil && n >= 1 && n <= 12 && rest == strconv.Itoa(n) {
			return input.F1 + input.Key(n-1), nil
		}
	}

	return input.Unknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
