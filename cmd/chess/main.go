// chess is a two-player chess game played at the console.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	closeLog := setupLogFile(cfg)
	defer closeLog()

	if *perftDepth > 0 {
		err := runPerft(context.Background(), os.Stdout, *perftDepth, *workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	stdout := bufio.NewWriter(os.Stdout)
	cfg.SetOutput(stdout)

	logger := log.New(cfg.LogFile, "chess: ", log.LstdFlags)
	game := engine.NewGame(engine.WithAutoDraw(cfg.Rules.AutoDraw))
	s := newSession(cfg, game, os.Stdin, output.NewConsoleWriter(stdout, cfg), logger)

	err = s.run()
	if ferr := stdout.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		logger.Printf("session ended: %v", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogFile points cfg.LogFile at the -log file, appending to it. The
// returned function closes the file.
func setupLogFile(cfg *config.Config) func() {
	if cfg.LogFilename == "" {
		return func() {}
	}

	file, err := os.OpenFile(cfg.LogFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.LogFile = file

	var closed bool
	return func() {
		if !closed {
			closed = true
			_ = file.Close()
		}
	}
}

func usage() {
	w := io.Writer(os.Stderr)
	fmt.Fprintf(w, "Usage: chess [options]\n\n")
	fmt.Fprintf(w, "A two-player chess game played at the console.\n\n")
	fmt.Fprintf(w, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(w, "\n%s", output.HelpText)
}
