package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithSymbols sets the piece glyphs.
func (b *ConfigBuilder) WithSymbols(symbols SymbolSet) *ConfigBuilder {
	b.cfg.Display.Symbols = symbols
	return b
}

// Flipped draws the board from Black's side.
func (b *ConfigBuilder) Flipped(flipped bool) *ConfigBuilder {
	b.cfg.Display.Flipped = flipped
	return b
}

// WithCoordinates controls rank and file labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = enabled
	return b
}

// WithAutoDraw controls whether draws by rule end the game on their own.
func (b *ConfigBuilder) WithAutoDraw(enabled bool) *ConfigBuilder {
	b.cfg.Rules.AutoDraw = enabled
	return b
}

// WithDefaultPromotion sets the piece chosen on an empty promotion answer.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.DefaultPromotion = kind
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithLogFile sets the name of the file diagnostics are appended to.
func (b *ConfigBuilder) WithLogFile(name string) *ConfigBuilder {
	b.cfg.LogFilename = name
	return b
}
