// Package host drives a machine at a fixed frame rate and connects it to
// the video, audio and input collaborators of a frontend.
package host

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the number of frames per second, the timers tick once per frame.
const FrameRate = 60

// Video presents the display.
type Video interface {
	Present(display *machine.Display) error
}

// Audio switches the tone on and off.
type Audio interface {
	SetTone(active bool)
}

// Input updates the keypad from the host keyboard.
type Input interface {
	Poll(keypad *machine.Keypad)
}

// Option configures a Runner.
type Option func(*Runner)

// WithVideo sets the video output.
func WithVideo(video Video) Option {
	return func(r *Runner) {
		r.video = video
	}
}

// WithAudio sets the audio output.
func WithAudio(audio Audio) Option {
	return func(r *Runner) {
		r.audio = audio
	}
}

// WithInput sets the input source.
func WithInput(input Input) Option {
	return func(r *Runner) {
		r.input = input
	}
}

// Runner executes a machine frame by frame.
type Runner struct {
	logger  *log.Logger
	machine *machine.Machine

	video Video
	audio Audio
	input Input

	cyclesPerSecond int
	budget          int // cycles carried over between frames
	frames          int
}

// New returns a runner that executes cyclesPerSecond instructions per
// second on the machine.
func New(logger *log.Logger, m *machine.Machine, cyclesPerSecond int, options ...Option) *Runner {
	r := &Runner{
		logger:          logger,
		machine:         m,
		cyclesPerSecond: cyclesPerSecond,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Machine returns the machine driven by the runner.
func (r *Runner) Machine() *machine.Machine {
	return r.machine
}

// Frames returns the number of completed frames.
func (r *Runner) Frames() int {
	return r.frames
}

// Frame runs one frame: it polls the input, executes the instructions
// of the frame, ticks the timers once and updates audio and video. The
// instructions of a frame stop early while the machine waits for a key.
func (r *Runner) Frame() error {
	if r.input != nil {
		r.input.Poll(r.machine.Keypad())
	}

	r.budget += r.cyclesPerSecond
	cycles := r.budget / FrameRate
	r.budget %= FrameRate

	for range cycles {
		status, err := r.machine.Execute()
		if err != nil {
			return fmt.Errorf("running frame %d: %w", r.frames, err)
		}
		if status.AwaitingKey {
			break
		}
	}

	if r.machine.TickTimers() {
		r.logger.Trace("Sound timer expired", log.Int("frame", r.frames))
	}
	if r.audio != nil {
		r.audio.SetTone(r.machine.ToneActive())
	}

	display := r.machine.Display()
	if r.video != nil && display.Dirty() {
		if err := r.video.Present(display); err != nil {
			return fmt.Errorf("presenting frame %d: %w", r.frames, err)
		}
		display.ClearDirty()
	}

	r.frames++
	return nil
}

// Run calls Frame at FrameRate until the context is done, maxFrames
// frames have run or an error occurs. A maxFrames of 0 runs without limit.
func (r *Runner) Run(ctx context.Context, maxFrames int) error {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for maxFrames == 0 || r.frames < maxFrames {
		select {
		case <-ctx.Done():
			return fmt.Errorf("running machine: %w", ctx.Err())
		case <-ticker.C:
		}

		if err := r.Frame(); err != nil {
			return err
		}
	}

	r.logger.Debug("Frame limit reached", log.Int("frames", r.frames))
	return nil
}
