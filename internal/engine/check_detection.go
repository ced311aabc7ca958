package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check. A board
// without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks the square.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.IsValid() {
		return false
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if Attacks(board, piece, sq) {
				return true
			}
		}
	}
	return false
}

// Attackers returns every piece of byColour that attacks the square.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Piece {
	var attackers []chess.Piece
	for _, piece := range board.Pieces(byColour) {
		if Attacks(board, piece, sq) {
			attackers = append(attackers, piece)
		}
	}
	return attackers
}
