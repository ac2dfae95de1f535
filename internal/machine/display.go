package machine

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome frame buffer. The dirty flag is set by every
// instruction that touches the display and cleared by the host once the
// frame has been presented.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]bool
	dirty  bool
}

// Pixel returns whether the pixel at x, y is lit. Coordinates outside of
// the display return false.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d.pixels[y*DisplayWidth+x]
}

// Dirty reports whether the display changed since the last ClearDirty.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty acknowledges the current frame.
func (d *Display) ClearDirty() {
	d.dirty = false
}

func (d *Display) clear() {
	clear(d.pixels[:])
	d.dirty = true
}

// draw XORs the sprite rows onto the display at x, y. Pixels past an
// edge wrap around to the opposite side. It returns whether any lit
// pixel was turned off.
func (d *Display) draw(x, y uint8, sprite []byte) bool {
	collision := false
	for row, bits := range sprite {
		py := (int(y) + row) % DisplayHeight
		for col := range 8 {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % DisplayWidth
			pixel := &d.pixels[py*DisplayWidth+px]
			if *pixel {
				collision = true
			}
			*pixel = !*pixel
		}
	}
	d.dirty = true
	return collision
}
