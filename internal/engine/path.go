package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isDiagonal reports whether from and to share a diagonal.
func isDiagonal(from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	return rowDiff != 0 && rowDiff == abs(to.Col-from.Col)
}

// isStraight reports whether from and to share a row or column.
func isStraight(from, to chess.Square) bool {
	return from != to && (from.Row == to.Row || from.Col == to.Col)
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq.IsValid() && sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return sq == to
}
