// Package audio generates the CHIP-8 tone and plays it on the host.
package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// SampleRate of the generated tone in Hz.
const SampleRate = 44100

const bytesPerSample = 4 // mono float32

// Tone is a square wave generator. It implements io.Reader and produces
// float32 little endian mono samples, silence while the tone is off.
// SetTone may be called from a different goroutine than Read.
type Tone struct {
	active atomic.Bool

	period int // samples per wave period
	volume float32
	pos    int
}

// NewTone returns a tone generator for the frequency in Hz and the
// volume in the range 0 to 1.
func NewTone(frequency, volume float64) *Tone {
	period := int(math.Round(SampleRate / frequency))
	return &Tone{
		period: max(period, 2),
		volume: float32(volume),
	}
}

// SetTone switches the tone on or off.
func (t *Tone) SetTone(active bool) {
	t.active.Store(active)
}

// Active reports whether the tone is on.
func (t *Tone) Active() bool {
	return t.active.Load()
}

// Read fills p with samples. It never fails and always fills whole samples.
func (t *Tone) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerSample
	active := t.active.Load()

	for i := range samples {
		var sample float32
		if active {
			sample = t.volume
			if t.pos >= t.period/2 {
				sample = -t.volume
			}
			t.pos = (t.pos + 1) % t.period
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(sample))
	}
	if !active {
		t.pos = 0
	}
	return samples * bytesPerSample, nil
}
