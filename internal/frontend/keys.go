//go:build !headless

package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/input"
)

var (
	letterKeys = [...]ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	digitKeys = [...]ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	keypadKeys = [...]ebiten.Key{
		ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3,
		ebiten.KeyNumpad4, ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7,
		ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}
	functionKeys = [...]ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
)

var namedKeys = map[input.Key]ebiten.Key{
	input.Space:     ebiten.KeySpace,
	input.Enter:     ebiten.KeyEnter,
	input.Tab:       ebiten.KeyTab,
	input.Backspace: ebiten.KeyBackspace,
	input.Escape:    ebiten.KeyEscape,
	input.Up:        ebiten.KeyArrowUp,
	input.Down:      ebiten.KeyArrowDown,
	input.Left:      ebiten.KeyArrowLeft,
	input.Right:     ebiten.KeyArrowRight,
	input.Comma:     ebiten.KeyComma,
	input.Period:    ebiten.KeyPeriod,
	input.Minus:     ebiten.KeyMinus,
	input.Slash:     ebiten.KeySlash,
	input.Semicolon: ebiten.KeySemicolon,
}

// ebitenKey translates a host key to the ebiten key code.
func ebitenKey(key input.Key) (ebiten.Key, bool) {
	switch {
	case key >= input.A && key <= input.Z:
		return letterKeys[key-input.A], true
	case key >= input.Key0 && key <= input.Key9:
		return digitKeys[key-input.Key0], true
	case key >= input.KP0 && key <= input.KP9:
		return keypadKeys[key-input.KP0], true
	case key >= input.F1 && key <= input.F12:
		return functionKeys[key-input.F1], true
	}
	k, ok := namedKeys[key]
	return k, ok
}
