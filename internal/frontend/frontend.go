// Package frontend presents a machine on the host. It provides an ebiten
// window with keyboard input and a text renderer for terminals.
package frontend

import (
	"errors"
	"image/color"

	"github.com/retroenv/retrochip8/internal/machine"
)

// ErrNotSupported is returned by the window in builds without window support.
var ErrNotSupported = errors.New("window output is not supported in headless builds")

// FrameSize is the size of an RGBA frame of the display in bytes.
const FrameSize = machine.DisplayWidth * machine.DisplayHeight * 4

// RenderRGBA writes the display as RGBA pixels into dst, which has to be
// FrameSize bytes long.
func RenderRGBA(dst []byte, display *machine.Display, foreground, background color.RGBA) {
	for y := range machine.DisplayHeight {
		for x := range machine.DisplayWidth {
			c := background
			if display.Pixel(x, y) {
				c = foreground
			}
			offset := (y*machine.DisplayWidth + x) * 4
			dst[offset] = c.R
			dst[offset+1] = c.G
			dst[offset+2] = c.B
			dst[offset+3] = c.A
		}
	}
}
