package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnReach implements pawn pushes, captures and en passant. The double
// step is allowed from the starting rank only, whatever the pawn's history.
func pawnReach(board *chess.Board, p chess.Piece, to chess.Square) (Reach, bool) {
	from := p.Square
	direction := chess.Forward(p.Colour)
	rowDiff := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)
	promotes := to.Row == chess.PromotionRow(p.Colour)

	switch {
	case colDiff == 0 && rowDiff == direction:
		if board.IsEmpty(to) {
			return Reach{NeedsPromotion: promotes}, true
		}

	case colDiff == 0 && rowDiff == 2*direction:
		if from.Row == chess.PawnRow(p.Colour) &&
			board.IsEmpty(from.Offset(direction, 0)) && board.IsEmpty(to) {
			return Reach{}, true
		}

	case colDiff == 1 && rowDiff == direction:
		if target, ok := board.Occupant(to); ok {
			return Reach{NeedsPromotion: promotes}, target.Colour != p.Colour
		}
		if isEnPassantCapture(board, p, to) {
			return Reach{EnPassant: true}, true
		}
	}

	return Reach{}, false
}

// pawnAttacks is the diagonal-forward pattern, whether or not the square
// is occupied.
func pawnAttacks(_ *chess.Board, p chess.Piece, to chess.Square) bool {
	return to.Row-p.Square.Row == chess.Forward(p.Colour) && abs(to.Col-p.Square.Col) == 1
}

// isEnPassantCapture reports whether a diagonal pawn move to the empty
// square to captures en passant: the previous move was an enemy pawn's
// double step that passed over to and now stands beside the capturing pawn.
func isEnPassantCapture(board *chess.Board, p chess.Piece, to chess.Square) bool {
	target, ok := board.EnPassantTarget()
	if !ok || target != to {
		return false
	}
	victimSq := enPassantVictim(p.Square, to)
	if board.LastTo != victimSq {
		return false
	}
	return board.At(victimSq).Is(p.Colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn captured en passant by a
// pawn moving from -> to.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.NewSquare(from.Row, to.Col)
}
