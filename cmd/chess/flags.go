// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

var (
	// Display options
	unicodeBoard = flag.Bool("unicode", false, "Draw pieces with chess figurines")
	flipBoard    = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords     = flag.Bool("nocoords", false, "Don't draw rank and file labels")

	// Rules
	promoteTo  = flag.String("promote", "", "Piece chosen on an empty promotion answer (queen, rook, bishop, knight)")
	noAutoDraw = flag.Bool("no-auto-draw", false, "Fifty-move and repetition draws must be claimed with 'draw'")

	// Logging
	verbosity = flag.Int("v", config.Summary, "Log verbosity: 0=silent, 1=game summary, 2=every move")
	logFile   = flag.String("log", "", "Append diagnostics to this file (default: stderr)")

	// Move generator check
	perftDepth = flag.Int("perft", 0, "Print the move tree node count to this depth from the initial position and exit")
	workers    = flag.Int("workers", 0, "Number of worker goroutines for -perft (0 = number of CPUs)")

	// Other options
	help    = flag.Bool("help", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig turns the command-line flags into a validated configuration.
func buildConfig() (*config.Config, error) {
	b := config.NewConfigBuilder().
		WithVerbosity(*verbosity).
		Flipped(*flipBoard).
		WithCoordinates(!*noCoords).
		WithAutoDraw(!*noAutoDraw).
		WithLogFile(*logFile)

	if *unicodeBoard {
		b.WithSymbols(config.Unicode)
	}

	if *promoteTo != "" {
		kind, err := notation.ParsePromotion(*promoteTo)
		if err != nil {
			return nil, errors.Wrap(err, "-promote")
		}
		b.WithDefaultPromotion(kind)
	}

	cfg := b.Build()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
