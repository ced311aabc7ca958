package config

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SymbolSet selects the glyphs used to draw pieces.
type SymbolSet int

const (
	ASCII   SymbolSet = iota // letters, upper case for White
	Unicode                  // chess figurines
)

// String returns the name used on the command line.
func (s SymbolSet) String() string {
	switch s {
	case ASCII:
		return "ascii"
	case Unicode:
		return "unicode"
	}
	return "unknown"
}

// DisplayConfig holds settings related to drawing the board.
type DisplayConfig struct {
	// Symbols selects letters or figurines.
	Symbols SymbolSet

	// Flipped draws the board from Black's side.
	Flipped bool

	// Coordinates draws rank and file labels around the board.
	Coordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Symbols:     ASCII,
		Coordinates: true,
	}
}

// Validate checks the display settings.
func (d DisplayConfig) Validate() error {
	if d.Symbols != ASCII && d.Symbols != Unicode {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown symbol set %d", int(d.Symbols))
	}
	return nil
}
