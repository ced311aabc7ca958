package main

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// session runs one game between two players sharing the console.
type session struct {
	cfg  *config.Config
	game *engine.Game
	in   *bufio.Scanner
	out  output.SessionWriter
	log  *log.Logger
}

func newSession(cfg *config.Config, game *engine.Game, in io.Reader, out output.SessionWriter, logger *log.Logger) *session {
	return &session{
		cfg:  cfg,
		game: game,
		in:   bufio.NewScanner(in),
		out:  out,
		log:  logger,
	}
}

// logf writes to the diagnostic log when the verbosity is at least level.
func (s *session) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity >= level {
		s.log.Printf(format, args...)
	}
}

// readLine returns the next line of input, false at end of input.
func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// run plays until the game ends, the players quit or the input runs out.
// Only write and read failures are returned.
func (s *session) run() error {
	s.logf(config.Commentary, "new game: %s", s.cfg)
	if !engine.IsStandardMaterial(s.game.Board()) {
		s.logf(config.Commentary, "starting position has non-standard material")
	}

	for !s.game.Result().Over {
		if err := s.out.WriteBoard(s.game.Board()); err != nil {
			return err
		}
		if err := s.prompt(func() error { return s.out.WritePrompt(s.game.ToMove()) }); err != nil {
			return err
		}

		line, ok := s.readLine()
		if !ok {
			s.logf(config.Summary, "input ended after %d plies, game unfinished", s.game.Ply())
			return s.in.Err()
		}

		quit, err := s.handle(line)
		if err != nil {
			return err
		}
		if quit {
			s.logf(config.Summary, "players quit after %d plies", s.game.Ply())
			return nil
		}
	}

	return s.finish()
}

// prompt writes a prompt and flushes it so it shows before input is read.
func (s *session) prompt(write func() error) error {
	if err := write(); err != nil {
		return err
	}
	return s.out.Flush()
}

// handle carries out one line of input. It reports whether the players
// asked to quit.
func (s *session) handle(line string) (bool, error) {
	cmd, err := notation.ParseCommand(line)
	if err != nil {
		s.logf(config.Commentary, "unparsable input %q: %v", line, err)
		return false, s.out.WriteError(err)
	}

	switch cmd.Action {
	case notation.ActionMove:
		return false, s.play(cmd.Move, cmd.Promotion)

	case notation.ActionCastle:
		return false, s.play(notation.CastleMove(s.game.ToMove(), cmd.Kingside), chess.Empty)

	case notation.ActionResign:
		if err := s.game.Resign(s.game.ToMove()); err != nil {
			return false, s.out.WriteError(err)
		}

	case notation.ActionDraw:
		if err := s.game.ClaimDraw(); err != nil {
			s.logf(config.Commentary, "draw claim refused: %v", err)
			return false, s.out.WriteError(err)
		}

	case notation.ActionMoves:
		return false, s.out.WriteMoves(s.game.LegalMoves())

	case notation.ActionHelp:
		return false, s.out.WriteText(output.HelpText)

	case notation.ActionQuit:
		return true, nil
	}

	// ActionBoard needs nothing: the board is drawn before every prompt.
	return false, nil
}

// play makes a move for the side to move, asking for the promotion piece
// when the move needs one and none was given.
func (s *session) play(move chess.Move, promotion chess.Kind) error {
	colour := s.game.ToMove()
	number := s.game.MoveNumber()
	if promotion != chess.Empty && !s.promotes(move) {
		s.logf(config.Commentary, "rejected %s %s: piece %s given for a move that does not promote", colour, move, promotion)
		return s.out.WriteError(errors.ErrInvalidPromotionChoice)
	}
	out, err := s.game.Move(move.From, move.To)
	if err != nil {
		s.logf(config.Commentary, "rejected %s %s: %v", colour, move, err)
		return s.out.WriteError(err)
	}

	if out.PromotionPending {
		out, err = s.promote(out, promotion)
		if err != nil {
			s.logf(config.Commentary, "rejected %s %s: %v", colour, move, err)
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return s.out.WriteError(err)
		}
	}

	s.logf(config.Commentary, "%d. %s", number, output.DescribeOutcome(out))
	return s.out.WriteOutcome(out)
}

// promotes reports whether move takes a pawn of the side to move to its
// last rank. Anything else is left for Game.Move to judge.
func (s *session) promotes(move chess.Move) bool {
	piece := s.game.Board().At(move.From)
	if piece.IsEmpty() || piece.Colour != s.game.ToMove() {
		return true
	}
	return piece.Kind == chess.Pawn && move.To.Row == chess.PromotionRow(piece.Colour)
}

// promote completes a pending promotion. Without a piece on the move line
// the player is asked; a blank answer takes the configured default or asks
// again. A bad answer withdraws the move.
func (s *session) promote(pending engine.Outcome, kind chess.Kind) (engine.Outcome, error) {
	for kind == chess.Empty {
		if err := s.prompt(func() error { return s.out.WriteOutcome(pending) }); err != nil {
			_ = s.game.CancelPromotion()
			return engine.Outcome{}, err
		}

		answer, ok := s.readLine()
		if !ok {
			_ = s.game.CancelPromotion()
			return engine.Outcome{}, io.ErrUnexpectedEOF
		}

		if strings.TrimSpace(answer) == "" {
			kind = s.cfg.Rules.DefaultPromotion
			continue
		}

		var err error
		kind, err = notation.ParsePromotion(answer)
		if err != nil {
			_ = s.game.CancelPromotion()
			return engine.Outcome{}, err
		}
	}
	return s.game.Promote(kind)
}

// finish draws the final position and announces the result.
func (s *session) finish() error {
	res := s.game.Result()
	if !res.Resigned {
		if err := s.out.WriteBoard(s.game.Board()); err != nil {
			return err
		}
	}
	if err := s.out.WriteResult(res); err != nil {
		return err
	}
	s.logf(config.Summary, "game over: %s (%s) after %d plies", res, res.Reason(), s.game.Ply())
	return s.out.Flush()
}
