package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns every legal move for colour, in board scan order
// (rank 8 to rank 1, file a to h, then destination in the same order).
// A promoting pawn move is listed once. The board is left exactly as it
// was found.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	scanMoves(board, colour, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	scanMoves(board, colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMovesFrom returns the legal destinations of the piece on from.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.Occupant(from)
	if !ok {
		return nil
	}
	var targets []chess.Square
	saved := board.SaveState()
	defer board.RestoreState(saved)

	forEachSquare(func(to chess.Square) bool {
		if isLegal(board, piece.Colour, from, to) {
			targets = append(targets, to)
		}
		return true
	})
	return targets
}

// scanMoves tries every piece of colour against every square and calls
// yield for each legal move until yield returns false. The board state is
// restored on every exit path.
func scanMoves(board *chess.Board, colour chess.Colour, yield func(chess.Move) bool) {
	saved := board.SaveState()
	defer board.RestoreState(saved)

	for _, piece := range board.Pieces(colour) {
		from := piece.Square
		more := forEachSquare(func(to chess.Square) bool {
			if _, ok := CanReach(board, piece, to); !ok {
				return true
			}
			if !isLegal(board, colour, from, to) {
				return true
			}
			return yield(chess.Move{From: from, To: to})
		})
		if !more {
			return
		}
	}
}

// forEachSquare calls fn for all 64 squares until fn returns false. It
// reports whether the walk completed.
func forEachSquare(fn func(chess.Square) bool) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if !fn(chess.NewSquare(row, col)) {
				return false
			}
		}
	}
	return true
}
