//go:build headless

package frontend

import (
	"context"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Window is not available in headless builds.
type Window struct{}

// NewWindow returns a window that can not be opened.
func NewWindow(_ *log.Logger, _ config.Video, _ keymap.Keymap) *Window {
	return &Window{}
}

// Present does nothing.
func (w *Window) Present(_ *machine.Display) error {
	return nil
}

// Poll does nothing.
func (w *Window) Poll(_ *machine.Keypad) {}

// Run returns ErrNotSupported.
func (w *Window) Run(_ context.Context, _ *host.Runner, _ int, _ func() error) error {
	return ErrNotSupported
}
