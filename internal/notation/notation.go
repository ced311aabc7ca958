// Package notation converts between the text a player types and the
// coordinates the engine works with.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isSeparator returns true if c may sit between the two squares of a move.
func isSeparator(c byte) bool {
	return c == '-' || c == 'x' || c == 'X' || c == ':'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// ParseSquare converts algebraic text such as "e4" to a square. File
// letters may be upper case.
func ParseSquare(text string) (chess.Square, error) {
	s := strings.TrimSpace(text)
	if len(s) != 2 {
		return chess.NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "file a-h and rank 1-8"}
	}
	file := lower(s[0])
	if !isCol(file) || !isRank(s[1]) {
		return chess.NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "file a-h and rank 1-8"}
	}
	return chess.Sq(file, s[1]), nil
}

// FormatSquare returns the algebraic name of sq, "-" when it is off the board.
func FormatSquare(sq chess.Square) string {
	return sq.String()
}

// FormatMove returns a move in the "e2 e4" form used in prompts.
func FormatMove(m chess.Move) string {
	return m.From.String() + " " + m.To.String()
}

// ParsePromotion converts a promotion answer to a piece kind. Full names
// and single letters are accepted in any case, along with the Dutch and
// German letters D, T, S and L.
func ParsePromotion(text string) (chess.Kind, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch s {
	case "q", "queen", "d":
		return chess.Queen, nil
	case "r", "rook", "t":
		return chess.Rook, nil
	case "b", "bishop", "l":
		return chess.Bishop, nil
	case "n", "knight", "s":
		return chess.Knight, nil
	}
	return chess.Empty, &errors.ParseError{
		Err:      errors.ErrInvalidPromotionChoice,
		Input:    text,
		Expected: "Queen, Rook, Bishop or Knight",
	}
}

// CastleMove returns the king move that castles for colour.
func CastleMove(colour chess.Colour, kingside bool) chess.Move {
	row := chess.HomeRow(colour)
	to := chess.KingCol - 2
	if kingside {
		to = chess.KingCol + 2
	}
	return chess.Move{
		From: chess.NewSquare(row, chess.KingCol),
		To:   chess.NewSquare(row, to),
	}
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
