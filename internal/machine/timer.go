package machine

// Timers are the delay and sound counters. Both count down towards zero
// once per tick and stay there.
type Timers struct {
	Delay uint8
	Sound uint8
}

// tick decrements both timers and reports whether the sound timer
// expired on this tick.
func (t *Timers) tick() bool {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound == 0 {
		return false
	}
	t.Sound--
	return t.Sound == 0
}
