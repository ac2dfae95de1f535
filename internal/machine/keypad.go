package machine

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// Keypad is the state of the 16 keys 0-F. Keys are indexed by their low
// nibble so out of range values never panic. Every transition from
// released to pressed is latched until consumed by a key wait.
type Keypad struct {
	down    [KeyCount]bool
	latched uint16
}

// Press marks key as held down.
func (k *Keypad) Press(key uint8) {
	k.Set(key, true)
}

// Release marks key as released.
func (k *Keypad) Release(key uint8) {
	k.Set(key, false)
}

// Set updates the state of key.
func (k *Keypad) Set(key uint8, pressed bool) {
	key &= 0xF
	if pressed && !k.down[key] {
		k.latched |= 1 << key
	}
	k.down[key] = pressed
}

// Pressed returns whether key is held down.
func (k *Keypad) Pressed(key uint8) bool {
	return k.down[key&0xF]
}

func (k *Keypad) clearLatch() {
	k.latched = 0
}

// takeLatched consumes the lowest latched key press.
func (k *Keypad) takeLatched() (uint8, bool) {
	for key := range uint8(KeyCount) {
		bit := uint16(1) << key
		if k.latched&bit != 0 {
			k.latched &^= bit
			return key, true
		}
	}
	return 0, false
}

func (k *Keypad) reset() {
	*k = Keypad{}
}
