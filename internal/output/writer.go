package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// SessionWriter is what a console session writes to the players.
type SessionWriter interface {
	// WriteBoard draws the board.
	WriteBoard(board *chess.Board) error

	// WritePrompt asks colour for a move.
	WritePrompt(colour chess.Colour) error

	// WriteOutcome reports an accepted move: a promotion prompt or a check
	// announcement for the side now to move.
	WriteOutcome(out engine.Outcome) error

	// WriteResult announces the end of the game.
	WriteResult(res engine.Result) error

	// WriteError reports a rejected command.
	WriteError(err error) error

	// WriteMoves lists moves, wrapping long lines.
	WriteMoves(moves []chess.Move) error

	// WriteText writes free text such as the help screen.
	WriteText(text string) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error
}

// ConsoleWriter writes plain text for a terminal.
type ConsoleWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewConsoleWriter creates a console writer drawing the board as cfg says.
func NewConsoleWriter(w io.Writer, cfg *config.Config) *ConsoleWriter {
	return &ConsoleWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteBoard draws the board.
func (cw *ConsoleWriter) WriteBoard(board *chess.Board) error {
	_, err := io.WriteString(cw.w, RenderBoard(board, cw.cfg.Display))
	return err
}

// WritePrompt asks colour for a move. No newline follows the prompt.
func (cw *ConsoleWriter) WritePrompt(colour chess.Colour) error {
	_, err := io.WriteString(cw.w, Prompt(colour))
	return err
}

// WriteOutcome reports an accepted move.
func (cw *ConsoleWriter) WriteOutcome(out engine.Outcome) error {
	var err error
	switch {
	case out.PromotionPending:
		_, err = io.WriteString(cw.w, PromotionPrompt)
	case out.InCheck && out.State != chess.CheckmateState:
		_, err = fmt.Fprintln(cw.w, CheckMessage(out.Colour.Opposite()))
	}
	return err
}

// WriteResult announces the end of the game. Nothing is written while the
// game is in progress.
func (cw *ConsoleWriter) WriteResult(res engine.Result) error {
	msg := ResultMessage(res)
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintln(cw.w, msg)
	return err
}

// WriteError reports a rejected command.
func (cw *ConsoleWriter) WriteError(err error) error {
	_, werr := fmt.Fprintln(cw.w, ErrorMessage(err))
	return werr
}

// WriteMoves lists moves separated by spaces, at most lineLength columns
// per line.
func (cw *ConsoleWriter) WriteMoves(moves []chess.Move) error {
	lw := NewLineWriter(cw.w, lineLength)
	for _, m := range moves {
		lw.Write(m.String())
	}
	lw.NewLine()
	return lw.Err()
}

// WriteText writes text as is.
func (cw *ConsoleWriter) WriteText(text string) error {
	_, err := io.WriteString(cw.w, text)
	return err
}

// Flush flushes the underlying writer when it buffers.
func (cw *ConsoleWriter) Flush() error {
	if f, ok := cw.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

const lineLength = 72

// LineWriter writes space separated words with line length control.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewLineWriter creates a line writer. A non-positive maxLineLength means 80.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, preceded by a space or a line break.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *LineWriter) Err() error {
	return o.err
}

func (o *LineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}
