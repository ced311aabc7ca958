package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// transaction is one move attempt applied to the board. Until commit it can
// be rolled back to the exact prior occupancy of every square it touched.
type transaction struct {
	board  *chess.Board
	colour chess.Colour
	from   chess.Square
	to     chess.Square
	mover  chess.Piece
	reach  Reach

	// The captured piece (empty if none) and where it stood. For en passant
	// this is not the destination square.
	captured   chess.Piece
	capturedAt chess.Square

	// The castling rook (empty unless castling).
	rook     chess.Piece
	rookFrom chess.Square
	rookTo   chess.Square

	// The piece that replaced a promoting pawn (empty until promote).
	promoted chess.Piece

	applied bool
}

// isValidMove checks the destination is on the board and not held by the
// mover's own piece.
func isValidMove(board *chess.Board, piece chess.Piece, to chess.Square) bool {
	if !to.IsValid() {
		return false
	}
	target, ok := board.Occupant(to)
	return !ok || target.Colour != piece.Colour
}

// prepareMove runs every check that can be made without touching the
// board: source ownership, destination, geometry and castling conditions.
func prepareMove(board *chess.Board, colour chess.Colour, from, to chess.Square) (*transaction, error) {
	mover, ok := board.Occupant(from)
	if !ok {
		return nil, errors.ErrNoPieceAtSource
	}
	if mover.Colour != colour {
		return nil, errors.ErrWrongOwner
	}
	if !isValidMove(board, mover, to) {
		return nil, errors.ErrInvalidDestination
	}

	reach, ok := CanReach(board, mover, to)
	if !ok {
		return nil, errors.ErrIllegalPieceMove
	}

	tx := &transaction{
		board:      board,
		colour:     colour,
		from:       from,
		to:         to,
		mover:      mover,
		reach:      reach,
		capturedAt: chess.NoSquare,
		rookFrom:   chess.NoSquare,
		rookTo:     chess.NoSquare,
	}

	switch {
	case reach.EnPassant:
		tx.capturedAt = enPassantVictim(from, to)
		tx.captured = board.At(tx.capturedAt)

	case reach.Castle:
		kingside := to.Col > from.Col
		if !CanCastle(board, colour, kingside) {
			return nil, errors.ErrIllegalCastle
		}
		tx.rookFrom, tx.rookTo = rookSquares(colour, kingside)
		tx.rook = board.At(tx.rookFrom)

	default:
		if target, ok := board.Occupant(to); ok {
			tx.captured = target
			tx.capturedAt = to
		}
	}

	return tx, nil
}

// attemptMove prepares and applies a move, rolling it back if it leaves the
// mover's king in check. On success the move stays applied but uncommitted.
func attemptMove(board *chess.Board, colour chess.Colour, from, to chess.Square) (*transaction, error) {
	tx, err := prepareMove(board, colour, from, to)
	if err != nil {
		return nil, err
	}

	tx.apply()
	if IsInCheck(board, colour) {
		tx.rollback()
		return nil, errors.ErrMoveExposesCheck
	}
	return tx, nil
}

// apply moves the pieces on the board. Captured pieces are only lifted off,
// so rollback can put them back.
func (tx *transaction) apply() {
	if tx.applied {
		return
	}
	if !tx.captured.IsEmpty() {
		tx.board.Remove(tx.capturedAt)
	}
	tx.board.Remove(tx.from)
	tx.board.Place(tx.to, tx.mover)

	if tx.reach.Castle {
		tx.board.Remove(tx.rookFrom)
		tx.board.Place(tx.rookTo, tx.rook)
	}
	tx.applied = true
}

// rollback restores the occupancy of every square apply touched. Has-moved
// flags are untouched because they are only set by commit.
func (tx *transaction) rollback() {
	if !tx.applied {
		return
	}
	if tx.reach.Castle {
		tx.board.Remove(tx.rookTo)
		tx.board.Place(tx.rookFrom, tx.rook)
	}

	tx.board.Remove(tx.to)
	tx.board.Place(tx.from, tx.mover)

	if !tx.captured.IsEmpty() {
		tx.board.Place(tx.capturedAt, tx.captured)
	}
	tx.promoted = chess.Piece{}
	tx.applied = false
}

// promote replaces the pawn on the destination with a new piece of kind.
func (tx *transaction) promote(kind chess.Kind) error {
	if !kind.IsPromotionChoice() {
		return errors.ErrInvalidPromotionChoice
	}
	tx.promoted = tx.board.Spawn(kind, tx.colour)
	tx.board.Place(tx.to, tx.promoted)
	return nil
}

// commit makes the move permanent: the moved pieces are flagged as moved,
// the last-move record and half-move clock are updated and the resulting
// position is appended to the history.
func (tx *transaction) commit() {
	moved := tx.board.At(tx.to)
	moved.HasMoved = true
	tx.board.Place(tx.to, moved)

	if tx.reach.Castle {
		rook := tx.board.At(tx.rookTo)
		rook.HasMoved = true
		tx.board.Place(tx.rookTo, rook)
	}

	tx.board.RecordMove(tx.from, tx.to, tx.mover.Kind, !tx.captured.IsEmpty())
	tx.board.PushPosition(hashing.Fingerprint(tx.board))
	tx.applied = false
}

// isLegal reports whether colour may play from -> to, leaving the board as
// it found it. A promoting move is tested with a queen on the last rank.
func isLegal(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	tx, err := attemptMove(board, colour, from, to)
	if err != nil {
		return false
	}
	defer tx.rollback()

	if tx.reach.NeedsPromotion {
		if err := tx.promote(chess.Queen); err != nil {
			return false
		}
		return !IsInCheck(board, colour)
	}
	return true
}
