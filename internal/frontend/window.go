//go:build !headless

package frontend

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

const (
	pauseKey = ebiten.KeyF5
	resetKey = ebiten.KeyF6
	quitKey  = ebiten.KeyEscape
)

type mappedKey struct {
	key ebiten.Key
	ok  bool
}

// Window shows the display in an ebiten window and reads the keypad
// from the keyboard. It implements host.Video and host.Input.
type Window struct {
	logger *log.Logger

	scale      int
	foreground color.RGBA
	background color.RGBA
	keys       [machine.KeyCount]mappedKey

	pixels []byte
	frame  *ebiten.Image

	ctx       context.Context
	runner    *host.Runner
	reset     func() error
	maxFrames int
	paused    bool
	err       error
}

// NewWindow returns a window using the video settings and key layout.
func NewWindow(logger *log.Logger, video config.Video, keys keymap.Keymap) *Window {
	w := &Window{
		logger:     logger,
		scale:      video.Scale,
		foreground: video.ForegroundColor(),
		background: video.BackgroundColor(),
		pixels:     make([]byte, FrameSize),
	}
	for i, hostKey := range keys {
		k, ok := ebitenKey(hostKey)
		if !ok {
			logger.Warn("Host key has no window binding", log.Hex("key", i))
		}
		w.keys[i] = mappedKey{key: k, ok: ok}
	}
	return w
}

// Present renders the display into the frame buffer that is shown by the
// next Draw call.
func (w *Window) Present(display *machine.Display) error {
	RenderRGBA(w.pixels, display, w.foreground, w.background)
	return nil
}

// Poll sets the keypad state from the keyboard.
func (w *Window) Poll(keypad *machine.Keypad) {
	for i, k := range w.keys {
		keypad.Set(uint8(i), k.ok && ebiten.IsKeyPressed(k.key))
	}
}

// Run opens the window and runs the runner until the window is closed,
// the context is done or maxFrames frames have run. F5 pauses the
// machine and F6 calls reset.
func (w *Window) Run(ctx context.Context, runner *host.Runner, maxFrames int, reset func() error) error {
	w.ctx = ctx
	w.runner = runner
	w.maxFrames = maxFrames
	w.reset = reset

	RenderRGBA(w.pixels, runner.Machine().Display(), w.foreground, w.background)

	ebiten.SetWindowSize(machine.DisplayWidth*w.scale, machine.DisplayHeight*w.scale)
	ebiten.SetWindowTitle("retrochip8")
	ebiten.SetTPS(host.FrameRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return w.err
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if err := w.ctx.Err(); err != nil {
		w.err = fmt.Errorf("running machine: %w", err)
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(quitKey) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(pauseKey) {
		w.paused = !w.paused
		w.logger.Debug("Pause toggled", log.Bool("paused", w.paused))
	}
	if inpututil.IsKeyJustPressed(resetKey) && w.reset != nil {
		if err := w.reset(); err != nil {
			w.err = fmt.Errorf("resetting machine: %w", err)
			return ebiten.Termination
		}
		w.logger.Info("Machine reset")
	}

	if w.paused {
		return nil
	}
	if err := w.runner.Frame(); err != nil {
		w.err = err
		return ebiten.Termination
	}
	if w.maxFrames > 0 && w.runner.Frames() >= w.maxFrames {
		w.logger.Debug("Frame limit reached", log.Int("frames", w.runner.Frames()))
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame == nil {
		w.frame = ebiten.NewImage(machine.DisplayWidth, machine.DisplayHeight)
	}
	w.frame.WritePixels(w.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.frame, op)

	if w.paused {
		text.Draw(screen, "PAUSED", basicfont.Face7x13, 8, 16, w.foreground)
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return machine.DisplayWidth * w.scale, machine.DisplayHeight * w.scale
}
