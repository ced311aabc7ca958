// Package config provides configuration for an interactive chess session.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // no diagnostics
	Summary    = 1 // one line per finished game
	Commentary = 2 // every accepted and rejected move
	MaxVerbose = Commentary
)

// Config holds all session configuration.
type Config struct {
	// Verbosity gates diagnostic logging: 0=nothing, 1=game summary,
	// 2=running commentary.
	Verbosity int

	// Display controls how the board is drawn.
	Display DisplayConfig

	// Rules controls draw handling and promotion defaults.
	Rules RulesConfig

	// LogFilename names the file diagnostics go to; empty means LogFile.
	LogFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Display:    *NewDisplayConfig(),
		Rules:      *NewRulesConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the board and prompts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate reports every invalid setting at once. Each problem wraps
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Verbosity < Silent || c.Verbosity > MaxVerbose {
		result = multierror.Append(result,
			errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0-%d", c.Verbosity, MaxVerbose))
	}
	if c.OutputFile == nil {
		result = multierror.Append(result, errors.Wrap(errors.ErrInvalidConfig, "no output writer"))
	}
	if c.LogFile == nil && c.LogFilename == "" {
		result = multierror.Append(result, errors.Wrap(errors.ErrInvalidConfig, "no log destination"))
	}
	if err := c.Display.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Rules.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// String summarises the configuration for the verbose log.
func (c *Config) String() string {
	return fmt.Sprintf("verbosity=%d symbols=%s flipped=%v auto-draw=%v promotion=%s",
		c.Verbosity, c.Display.Symbols, c.Display.Flipped, c.Rules.AutoDraw, c.Rules.DefaultPromotion)
}
