package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/config"
)

// ErrInvalidSetting is returned for setting values outside of their valid range.
var ErrInvalidSetting = errors.New("invalid setting")

const keysSection = "keys"

// Settings contains the emulator settings that can be stored in a
// settings file. Missing keys use the defaults of the struct tags.
//
//	[emulation]
//	cycles_per_second = 700
//
//	[video]
//	scale = 10
//	foreground = 0xFFFFFF
//	background = 0x000000
//
//	[audio]
//	enabled = true
//	frequency = 440.0
//	volume = 0.25
//
//	[keys]
//	key0 = x
//	keyc = 4
type Settings struct {
	Emulation Emulation     `config:"emulation"`
	Video     Video         `config:"video"`
	Audio     Audio         `config:"audio"`
	Keys      keymap.Keymap `config:"-"`
}

// Emulation contains the interpreter speed settings.
type Emulation struct {
	CyclesPerSecond int `config:"cycles_per_second,default=700"`
}

// Video contains the window settings. Colors are 0xRRGGBB values.
type Video struct {
	Scale      int `config:"scale,default=10"`
	Foreground int `config:"foreground,default=0xFFFFFF"`
	Background int `config:"background,default=0x000000"`
}

// Audio contains the tone settings.
type Audio struct {
	Enabled   bool    `config:"enabled,default=true"`
	Frequency float64 `config:"frequency,default=440.0"`
	Volume    float64 `config:"volume,default=0.25"`
}

// DefaultSettings returns the settings used when no settings file is given.
func DefaultSettings() Settings {
	settings, err := parseSettings(strings.NewReader(""))
	if err != nil {
		panic(fmt.Sprintf("parsing default settings: %v", err))
	}
	return settings
}

// LoadSettings reads the settings file at path. An empty path returns
// the default settings.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}

	doc, err := config.Open(path, config.Options{})
	if err != nil {
		return Settings{}, fmt.Errorf("opening settings file: %w", err)
	}
	return decodeSettings(doc)
}

func parseSettings(reader io.Reader) (Settings, error) {
	doc, err := config.Parse(reader, config.Options{})
	if err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	return decodeSettings(doc)
}

func decodeSettings(doc *config.Config) (Settings, error) {
	var settings Settings
	if err := doc.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}

	settings.Keys = keymap.Default()
	for entry := range doc.Entries() {
		if entry.Section != keysSection {
			continue
		}
		if err := setKey(&settings.Keys, entry.Key, entry.Value.Raw); err != nil {
			return Settings{}, fmt.Errorf("line %d: %w", entry.Line, err)
		}
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// setKey applies a keyN = name entry of the keys section.
func setKey(keys *keymap.Keymap, name, value string) error {
	index, ok := strings.CutPrefix(name, "key")
	if !ok || len(index) != 1 {
		return fmt.Errorf("%w: unknown key setting %q", ErrInvalidSetting, name)
	}
	chip8Key, err := strconv.ParseUint(index, 16, 8)
	if err != nil {
		return fmt.Errorf("%w: unknown key setting %q", ErrInvalidSetting, name)
	}

	hostKey, err := keymap.ParseKey(value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	keys.Set(uint8(chip8Key), hostKey)
	return nil
}

// Validate checks that all values are within their valid range.
func (s Settings) Validate() error {
	switch {
	case s.Emulation.CyclesPerSecond <= 0:
		return fmt.Errorf("%w: cycles per second %d must be positive", ErrInvalidSetting, s.Emulation.CyclesPerSecond)
	case s.Video.Scale <= 0:
		return fmt.Errorf("%w: scale %d must be positive", ErrInvalidSetting, s.Video.Scale)
	case s.Video.Foreground < 0 || s.Video.Foreground > 0xFFFFFF:
		return fmt.Errorf("%w: foreground color 0x%X", ErrInvalidSetting, s.Video.Foreground)
	case s.Video.Background < 0 || s.Video.Background > 0xFFFFFF:
		return fmt.Errorf("%w: background color 0x%X", ErrInvalidSetting, s.Video.Background)
	case s.Audio.Frequency <= 0:
		return fmt.Errorf("%w: tone frequency %g must be positive", ErrInvalidSetting, s.Audio.Frequency)
	case s.Audio.Volume < 0 || s.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %g must be between 0 and 1", ErrInvalidSetting, s.Audio.Volume)
	}
	return nil
}

// Override applies the emulation options given on the command line.
// Zero values keep the settings file values.
func (s *Settings) Override(emulation options.Emulation) {
	if emulation.CyclesPerSecond > 0 {
		s.Emulation.CyclesPerSecond = emulation.CyclesPerSecond
	}
	if emulation.Scale > 0 {
		s.Video.Scale = emulation.Scale
	}
	if emulation.Headless {
		s.Audio.Enabled = false
	}
}

// ForegroundColor returns the color of lit pixels.
func (v Video) ForegroundColor() color.RGBA {
	return rgb(v.Foreground)
}

// BackgroundColor returns the color of unlit pixels.
func (v Video) BackgroundColor() color.RGBA {
	return rgb(v.Background)
}

func rgb(value int) color.RGBA {
	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xFF,
	}
}
