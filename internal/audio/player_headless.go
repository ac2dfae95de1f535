//go:build headless

package audio

// Player discards the tone in headless builds.
type Player struct {
	tone *Tone
}

// NewPlayer returns a player that produces no sound.
func NewPlayer(tone *Tone) (*Player, error) {
	return &Player{tone: tone}, nil
}

// SetTone switches the tone on or off.
func (p *Player) SetTone(active bool) {
	p.tone.SetTone(active)
}

// Close does nothing.
func (p *Player) Close() error {
	return nil
}
