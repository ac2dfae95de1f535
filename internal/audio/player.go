//go:build !headless

package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Player plays a tone on the default audio device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *Tone
}

// NewPlayer opens the audio device and starts playing the tone. The tone
// is silent until switched on.
func NewPlayer(tone *Tone) (*Player, error) {
	options := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(options)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	p := &Player{
		ctx:  ctx,
		tone: tone,
	}
	p.player = ctx.NewPlayer(tone)
	p.player.Play()
	return p, nil
}

// SetTone switches the tone on or off.
func (p *Player) SetTone(active bool) {
	p.tone.SetTone(active)
}

// Close stops the playback.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
