package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CanCastle reports whether colour may castle on the given wing right now:
// king and rook on their home squares and never moved, the king not in
// check, the squares between them empty, and no square the king stands on
// or crosses attacked.
func CanCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	row := chess.HomeRow(colour)
	kingSq := chess.NewSquare(row, chess.KingCol)
	rookSq, _ := rookSquares(colour, kingside)

	king := board.At(kingSq)
	if !king.Is(colour, chess.King) || king.HasMoved {
		return false
	}
	rook := board.At(rookSq)
	if !rook.Is(colour, chess.Rook) || rook.HasMoved {
		return false
	}

	if IsInCheck(board, colour) {
		return false
	}

	step := castleStep(kingside)
	for col := chess.KingCol + step; col != rookSq.Col; col += step {
		if !board.IsEmpty(chess.NewSquare(row, col)) {
			return false
		}
	}

	opponent := colour.Opposite()
	for col := chess.KingCol; col != chess.KingCol+3*step; col += step {
		if IsSquareAttacked(board, chess.NewSquare(row, col), opponent) {
			return false
		}
	}

	return true
}

// rookSquares returns where the castling rook starts and where it lands.
func rookSquares(colour chess.Colour, kingside bool) (from, to chess.Square) {
	row := chess.HomeRow(colour)
	if kingside {
		return chess.NewSquare(row, chess.KingsideRookCol), chess.NewSquare(row, chess.KingCol+1)
	}
	return chess.NewSquare(row, chess.QueensideRookCol), chess.NewSquare(row, chess.KingCol-1)
}

// castleStep returns the column direction the king travels when castling.
func castleStep(kingside bool) int {
	if kingside {
		return 1
	}
	return -1
}
