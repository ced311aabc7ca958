package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Reach describes a geometrically legal displacement and the special
// handling it needs when applied.
type Reach struct {
	// NeedsPromotion is set when a pawn lands on the far rank.
	NeedsPromotion bool

	// EnPassant is set when a pawn captures the pawn that just double-stepped
	// past its destination.
	EnPassant bool

	// Castle is set for a two-column king move. It still has to pass CanCastle.
	Castle bool
}

// movement is the rule pair every piece kind provides.
type movement struct {
	// reach tests raw geometry for a normal move. The destination is known
	// to be on the board, distinct from the piece's square and not held by
	// a friendly piece.
	reach func(board *chess.Board, p chess.Piece, to chess.Square) (Reach, bool)

	// attacks tests whether p threatens to regardless of what stands there.
	attacks func(board *chess.Board, p chess.Piece, to chess.Square) bool
}

var movements = [chess.NumKinds]movement{
	chess.Pawn:   {reach: pawnReach, attacks: pawnAttacks},
	chess.Knight: {reach: reachByAttack(knightAttacks), attacks: knightAttacks},
	chess.Bishop: {reach: reachByAttack(bishopAttacks), attacks: bishopAttacks},
	chess.Rook:   {reach: reachByAttack(rookAttacks), attacks: rookAttacks},
	chess.Queen:  {reach: reachByAttack(queenAttacks), attacks: queenAttacks},
	chess.King:   {reach: kingReach, attacks: kingAttacks},
}

// CanReach reports whether p can move to the given square by its own
// movement rules. It ignores whose turn it is and whether the mover's king
// ends up in check, and never modifies the board.
func CanReach(board *chess.Board, p chess.Piece, to chess.Square) (Reach, bool) {
	if p.IsEmpty() || !p.Square.IsValid() || !to.IsValid() || to == p.Square {
		return Reach{}, false
	}
	if target, ok := board.Occupant(to); ok && target.Colour == p.Colour {
		return Reach{}, false
	}
	return movements[p.Kind].reach(board, p, to)
}

// Attacks reports whether p threatens the given square. Unlike CanReach it
// does not care what occupies the square, and pawns only threaten
// diagonally.
func Attacks(board *chess.Board, p chess.Piece, to chess.Square) bool {
	if p.IsEmpty() || !p.Square.IsValid() || !to.IsValid() || to == p.Square {
		return false
	}
	return movements[p.Kind].attacks(board, p, to)
}

// reachByAttack turns an attack pattern into a move rule for pieces that
// move the way they capture.
func reachByAttack(attacks func(*chess.Board, chess.Piece, chess.Square) bool) func(*chess.Board, chess.Piece, chess.Square) (Reach, bool) {
	return func(board *chess.Board, p chess.Piece, to chess.Square) (Reach, bool) {
		return Reach{}, attacks(board, p, to)
	}
}

func knightAttacks(_ *chess.Board, p chess.Piece, to chess.Square) bool {
	rowDiff := abs(to.Row - p.Square.Row)
	colDiff := abs(to.Col - p.Square.Col)
	return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)
}

func bishopAttacks(board *chess.Board, p chess.Piece, to chess.Square) bool {
	return isDiagonal(p.Square, to) && isPathClear(board, p.Square, to)
}

func rookAttacks(board *chess.Board, p chess.Piece, to chess.Square) bool {
	return isStraight(p.Square, to) && isPathClear(board, p.Square, to)
}

func queenAttacks(board *chess.Board, p chess.Piece, to chess.Square) bool {
	return bishopAttacks(board, p, to) || rookAttacks(board, p, to)
}

func kingAttacks(_ *chess.Board, p chess.Piece, to chess.Square) bool {
	return abs(to.Row-p.Square.Row) <= 1 && abs(to.Col-p.Square.Col) <= 1
}

// kingReach allows one step in any direction, plus the two-column lateral
// move from the king's home square while it has never moved.
func kingReach(board *chess.Board, p chess.Piece, to chess.Square) (Reach, bool) {
	if kingAttacks(board, p, to) {
		return Reach{}, true
	}
	from := p.Square
	if !p.HasMoved && from.Row == chess.HomeRow(p.Colour) && from.Col == chess.KingCol &&
		to.Row == from.Row && abs(to.Col-from.Col) == 2 {
		return Reach{Castle: true}, true
	}
	return Reach{}, false
}
