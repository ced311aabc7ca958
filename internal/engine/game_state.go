package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsGameOver reports whether colour, about to move, has no legal move left.
// It is Checkmate if the king is in check, Stalemate otherwise.
func IsGameOver(board *chess.Board, colour chess.Colour) chess.Termination {
	if HasLegalMoves(board, colour) {
		return chess.NotOver
	}
	if IsInCheck(board, colour) {
		return chess.Checkmate
	}
	return chess.Stalemate
}

// IsCheckmate returns true if colour is to move and checkmated.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is to move and stalemated.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
