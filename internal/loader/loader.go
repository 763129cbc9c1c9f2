// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/uxndisasm/internal/arch/uxn"
)

// StdinName is the input name that selects reading the ROM from stdin.
const StdinName = "-"

// ErrROMTooLarge is returned for ROMs that do not fit into memory after the zero page.
var ErrROMTooLarge = errors.New("rom too large")

// Loader handles loading ROM files from disk or stdin.
type Loader struct {
	stdin io.Reader
}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{
		stdin: os.Stdin,
	}
}

// Load reads the ROM content of the input file, "-" reads from stdin.
// It returns the ROM content and the name of the source to use in the listing.
func (l *Loader) Load(input string) ([]byte, string, error) {
	if input == StdinName {
		rom, err := l.LoadFromReader(l.stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return rom, "stdin", nil
	}

	file, err := os.Open(input)
	if err != nil {
		return nil, "", fmt.Errorf("opening file %s: %w", input, err)
	}
	defer func() { _ = file.Close() }()

	rom, err := l.LoadFromReader(file)
	if err != nil {
		return nil, "", fmt.Errorf("reading file %s: %w", input, err)
	}
	return rom, input, nil
}

// LoadFromReader reads the ROM content from the reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	rom, err := io.ReadAll(io.LimitReader(reader, uxn.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}
	if len(rom) > uxn.MaxROMSize {
		return nil, fmt.Errorf("%w: maximum size is %d bytes", ErrROMTooLarge, uxn.MaxROMSize)
	}
	return rom, nil
}
