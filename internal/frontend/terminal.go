package frontend

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
	"golang.org/x/term"
)

const (
	litPixel   = "█"
	unlitPixel = " "

	// moves the cursor to the top left corner
	cursorHome = "\x1b[H"
	clearTerm  = "\x1b[2J"
)

// Terminal renders the display as text. In live mode every presented
// frame is redrawn in place using ANSI escape codes, otherwise only
// explicit Print calls produce output.
type Terminal struct {
	w       io.Writer
	live    bool
	started bool
	buf     bytes.Buffer
}

// NewTerminal returns a renderer writing to file. Live mode is enabled
// when the file is a terminal that is large enough to hold the display.
func NewTerminal(file *os.File) *Terminal {
	fd := int(file.Fd())
	live := false
	if term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		live = err == nil && width >= machine.DisplayWidth && height > machine.DisplayHeight
	}
	return NewTerminalWriter(file, live)
}

// NewTerminalWriter returns a renderer writing to w.
func NewTerminalWriter(w io.Writer, live bool) *Terminal {
	return &Terminal{
		w:    w,
		live: live,
	}
}

// Live reports whether presented frames are drawn.
func (t *Terminal) Live() bool {
	return t.live
}

// Present redraws the display in live mode and does nothing otherwise.
func (t *Terminal) Present(display *machine.Display) error {
	if !t.live {
		return nil
	}

	t.buf.Reset()
	if !t.started {
		t.buf.WriteString(clearTerm)
		t.started = true
	}
	t.buf.WriteString(cursorHome)
	render(&t.buf, display)
	if _, err := t.w.Write(t.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Print writes the display once without escape codes.
func (t *Terminal) Print(display *machine.Display) error {
	t.buf.Reset()
	render(&t.buf, display)
	if _, err := t.w.Write(t.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func render(buf *bytes.Buffer, display *machine.Display) {
	for y := range machine.DisplayHeight {
		for x := range machine.DisplayWidth {
			if display.Pixel(x, y) {
				buf.WriteString(litPixel)
			} else {
				buf.WriteString(unlitPixel)
			}
		}
		buf.WriteByte('\n')
	}
}
