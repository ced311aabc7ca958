package output

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PromotionPrompt asks for the piece a pawn on the last rank becomes.
const PromotionPrompt = "Pawn promotion! Choose piece (Queen, Rook, Bishop, Knight): "

// HelpText lists the commands a player can type.
const HelpText = `Commands:
  e2 e4, e2e4, e2-e4   move a piece (add q, r, b or n to promote: e7e8q)
  O-O, O-O-O           castle kingside or queenside
  moves                list the legal moves
  board                show the board again
  draw                 claim a draw by the fifty-move rule or repetition
  resign               give up the game
  quit                 leave without finishing
`

// errorTexts maps each rejection to what the player is told.
var errorTexts = []struct {
	err  error
	text string
}{
	{errors.ErrNoPieceAtSource, "No piece at starting position"},
	{errors.ErrWrongOwner, "Not your piece"},
	{errors.ErrInvalidDestination, "Invalid move"},
	{errors.ErrIllegalPieceMove, "Invalid move"},
	{errors.ErrIllegalCastle, "Invalid castling move"},
	{errors.ErrMoveExposesCheck, "Move puts your king in check"},
	{errors.ErrInvalidPromotionChoice, "Invalid promotion piece"},
	{errors.ErrInvalidSquare, "Invalid position format"},
	{errors.ErrParseFailure, "Invalid position format"},
	{errors.ErrPromotionPending, "Choose a promotion piece first"},
	{errors.ErrNoPromotionPending, "No promotion pending"},
	{errors.ErrNoDrawAvailable, "No draw available"},
	{errors.ErrGameOver, "The game is over"},
}

// Prompt asks colour for its next move.
func Prompt(colour chess.Colour) string {
	return fmt.Sprintf("%s's turn. Enter move (e.g., e2 e4, O-O, O-O-O) or 'resign': ", colour)
}

// CheckMessage announces that colour's king is attacked.
func CheckMessage(colour chess.Colour) string {
	return fmt.Sprintf("%s is in check!", colour)
}

// ErrorMessage describes a rejected command. Known rejections get their
// short text, anything else its own message.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorTexts {
		if errors.Is(err, e.err) {
			return "Error: " + e.text
		}
	}
	return "Error: " + err.Error()
}

// ResultMessage announces how a game ended. It is empty while the game is
// still in progress.
func ResultMessage(res engine.Result) string {
	switch {
	case !res.Over:
		return ""
	case res.Resigned:
		return fmt.Sprintf("%s resigns. %s wins!", res.Winner.Opposite(), res.Winner)
	}

	switch res.State {
	case chess.CheckmateState:
		return fmt.Sprintf("Checkmate! %s wins!", res.Winner)
	case chess.StalemateState:
		return "Stalemate! The game is a draw."
	case chess.FiftyMoveDraw:
		return "Draw by 50-move rule!"
	case chess.ThreefoldRepetition:
		return "Draw by threefold repetition!"
	case chess.InsufficientMaterial:
		return "Draw by insufficient material!"
	}
	return "Game over: " + res.String()
}

// DescribeOutcome is a one-line account of an accepted move for the
// commentary log, e.g. "White Pawn e7e8 promotes to Queen".
func DescribeOutcome(out engine.Outcome) string {
	desc := fmt.Sprintf("%s %s %s", out.Colour, out.Piece, out.Move)
	switch {
	case out.Castle:
		desc += " castles"
	case out.EnPassant:
		desc += " takes en passant"
	case out.Captured != chess.Empty:
		desc += " takes " + out.Captured.String()
	}
	if out.PromotedTo != chess.Empty {
		desc += " promotes to " + out.PromotedTo.String()
	}
	return desc
}
