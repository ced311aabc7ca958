package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Action is what a line of player input asks for.
type Action int

const (
	ActionMove Action = iota
	ActionCastle
	ActionResign
	ActionDraw
	ActionMoves
	ActionBoard
	ActionHelp
	ActionQuit
)

// Command is one parsed line of player input.
type Command struct {
	Action Action

	// Move is set for ActionMove.
	Move chess.Move

	// Promotion is the piece named after the destination ("e7e8q"), or
	// chess.Empty.
	Promotion chess.Kind

	// Kingside is set for ActionCastle.
	Kingside bool
}

var keywords = map[string]Action{
	"resign": ActionResign,
	"draw":   ActionDraw,
	"moves":  ActionMoves,
	"board":  ActionBoard,
	"help":   ActionHelp,
	"?":      ActionHelp,
	"quit":   ActionQuit,
	"exit":   ActionQuit,
}

// ParseCommand parses a line of player input. Moves may be written as
// "e2 e4", "e2e4" or "e2-e4", optionally followed by a promotion piece
// ("e7e8q", "e7 e8 Q") and a check mark. Castling is "O-O" or "O-O-O",
// also with zeros.
func ParseCommand(line string) (Command, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return Command{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: line, Expected: "a move or command"}
	}
	if action, ok := keywords[strings.ToLower(text)]; ok {
		return Command{Action: action}, nil
	}

	text = strings.TrimRightFunc(text, func(r rune) bool { return r < 128 && isCheck(byte(r)) })
	if text == "" {
		return Command{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: line, Expected: "a move or command"}
	}
	if isCastlingChar(text[0]) {
		return parseCastle(line, text)
	}
	return parseMove(line, text)
}

func parseCastle(line, text string) (Command, error) {
	var count int
	for i := 0; i < len(text); i++ {
		switch {
		case isCastlingChar(text[i]):
			count++
		case text[i] == '-':
		default:
			return Command{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: line, Expected: "O-O or O-O-O"}
		}
	}
	switch count {
	case 2:
		return Command{Action: ActionCastle, Kingside: true}, nil
	case 3:
		return Command{Action: ActionCastle, Kingside: false}, nil
	}
	return Command{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: line, Expected: "O-O or O-O-O"}
}

func parseMove(line, text string) (Command, error) {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '=' || (r < 128 && isSeparator(byte(r))) {
			return -1
		}
		return r
	}, text)

	if len(compact) != 4 && len(compact) != 5 {
		return Command{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: line, Expected: "a move such as e2 e4"}
	}

	from, err := ParseSquare(compact[0:2])
	if err != nil {
		return Command{}, errors.Wrapf(err, "source of %q", strings.TrimSpace(line))
	}
	to, err := ParseSquare(compact[2:4])
	if err != nil {
		return Command{}, errors.Wrapf(err, "destination of %q", strings.TrimSpace(line))
	}

	cmd := Command{Action: ActionMove, Move: chess.Move{From: from, To: to}}
	if len(compact) == 5 {
		kind, err := ParsePromotion(compact[4:])
		if err != nil {
			return Command{}, err
		}
		cmd.Promotion = kind
	}
	return cmd, nil
}
