// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// MaxSize is the largest program that fits into memory at the default offset.
const MaxSize = machine.MemorySize - machine.ProgramStart

// ErrEmptyFile is returned for ROM files without content.
var ErrEmptyFile = errors.New("empty ROM file")

var knownExtensions = []string{".ch8", ".c8", ".rom"}

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the ROM file at path. Files that are empty or do not fit
// into the program space are rejected.
func (l *Loader) Load(path string) ([]byte, error) {
	if !hasKnownExtension(path) {
		l.logger.Warn("Unknown ROM file extension, loading as CHIP-8 program",
			log.String("file", path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.read(file, path)
}

func (l *Loader) read(reader io.Reader, path string) ([]byte, error) {
	// read one byte past the limit to detect oversized files
	data, err := io.ReadAll(io.LimitReader(reader, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	switch {
	case len(data) == 0:
		return nil, fmt.Errorf("loading %s: %w", path, ErrEmptyFile)
	case len(data) > MaxSize:
		return nil, fmt.Errorf("loading %s: %w", path, &machine.ProgramTooLargeError{
			Size:      len(data),
			Offset:    machine.ProgramStart,
			Available: MaxSize,
		})
	}

	l.logger.Debug("Loaded ROM",
		log.String("file", path),
		log.Int("size", len(data)))
	return data, nil
}

func hasKnownExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(knownExtensions, ext)
}
