// Package engine provides chess move validation, transactional move
// application and game-end detection on top of the chess board model.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// IsFiftyMoveDraw returns true once 100 half-moves have passed without a
// capture or a pawn move.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= chess.FiftyMoveLimit
}

// IsThreefoldRepetition returns true if the most recent position has
// occurred at least three times in the recorded history.
func IsThreefoldRepetition(board *chess.Board) bool {
	last, ok := board.LastPosition()
	if !ok {
		return false
	}
	return hashing.FromHistory(board.History).Count(last) >= chess.RepetitionLimit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, piece := range board.Pieces(colour) {
			switch piece.Kind {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = piece.Square.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = piece.Square.IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return isMinorPiece(blackPieces[0])
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return isMinorPiece(whitePieces[0])
	}

	// K+B vs K+B
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

func isMinorPiece(kind chess.Kind) bool {
	return kind == chess.Bishop || kind == chess.Knight
}

// QueryState reports the state of the game from the point of view of
// colour, assumed to be the side to move. Terminal states take precedence
// over Check.
func QueryState(board *chess.Board, colour chess.Colour) chess.GameState {
	switch IsGameOver(board, colour) {
	case chess.Checkmate:
		return chess.CheckmateState
	case chess.Stalemate:
		return chess.StalemateState
	}

	switch {
	case IsFiftyMoveDraw(board):
		return chess.FiftyMoveDraw
	case IsThreefoldRepetition(board):
		return chess.ThreefoldRepetition
	}
	return playState(board, colour)
}

// playState is QueryState without the claimable draws: the state of a game
// that goes on because nobody has claimed the fifty-move rule or a
// repetition. Mate and stalemate are the caller's to test first.
func playState(board *chess.Board, colour chess.Colour) chess.GameState {
	switch {
	case HasInsufficientMaterial(board):
		return chess.InsufficientMaterial
	case IsInCheck(board, colour):
		return chess.Check
	}
	return chess.Ongoing
}

// ClaimableDraw returns the draw the side to move could claim, FiftyMoveDraw
// before ThreefoldRepetition, or Ongoing when neither applies.
func ClaimableDraw(board *chess.Board) chess.GameState {
	switch {
	case IsFiftyMoveDraw(board):
		return chess.FiftyMoveDraw
	case IsThreefoldRepetition(board):
		return chess.ThreefoldRepetition
	}
	return chess.Ongoing
}

// IsStandardMaterial checks whether both sides still have exactly the
// starting material.
func IsStandardMaterial(board *chess.Board) bool {
	expected := map[chess.Kind]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		actual := make(map[chess.Kind]int)
		for _, piece := range board.Pieces(colour) {
			actual[piece.Kind]++
		}
		for kind, want := range expected {
			if actual[kind] != want {
				return false
			}
		}
	}
	return true
}
