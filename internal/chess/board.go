package chess

import "strings"

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed [row][col]. Row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece

	// Source and destination of the last completed move.
	LastFrom Square
	LastTo   Square

	// Was the last completed move a pawn advancing two squares?
	LastWasDoubleStep bool

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// Position fingerprints in the order they occurred.
	History []string

	nextID int
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		LastFrom: NoSquare,
		LastTo:   NoSquare,
	}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}
	b.nextID = 0

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{White, Black} {
		for col := 0; col < BoardSize; col++ {
			b.Place(Square{HomeRow(colour), col}, b.Spawn(backRank[col], colour))
			b.Place(Square{PawnRow(colour), col}, b.Spawn(Pawn, colour))
		}
	}

	b.LastFrom = NoSquare
	b.LastTo = NoSquare
	b.LastWasDoubleStep = false
	b.HalfmoveClock = 0
	b.History = nil
}

// Spawn creates a new, unplaced piece with a fresh ID.
func (b *Board) Spawn(kind Kind, colour Colour) Piece {
	b.nextID++
	return Piece{ID: b.nextID, Kind: kind, Colour: colour, Square: NoSquare}
}

// At returns the piece at sq. Empty squares and invalid coordinates
// both yield an empty piece.
func (b *Board) At(sq Square) Piece {
	if !sq.IsValid() {
		return Piece{}
	}
	return b.Squares[sq.Row][sq.Col]
}

// Occupant returns the piece at sq and whether there is one.
func (b *Board) Occupant(sq Square) (Piece, bool) {
	p := b.At(sq)
	return p, !p.IsEmpty()
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.IsValid() && b.Squares[sq.Row][sq.Col].IsEmpty()
}

// Place assigns p to sq without any legality check. Placing an empty
// piece clears the square. Invalid squares are ignored.
func (b *Board) Place(sq Square, p Piece) {
	if !sq.IsValid() {
		return
	}
	if p.IsEmpty() {
		b.Squares[sq.Row][sq.Col] = Piece{}
		return
	}
	p.Square = sq
	b.Squares[sq.Row][sq.Col] = p
}

// Remove clears sq and returns whatever was there.
func (b *Board) Remove(sq Square) Piece {
	p := b.At(sq)
	b.Place(sq, Piece{})
	return p
}

// Pieces returns all pieces of the given colour, scanning rank 8 to rank 1.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, King) {
				return Square{row, col}, true
			}
		}
	}
	return NoSquare, false
}

// CastlingRights records which castling options are still available in
// principle (king and rook on their home squares and never moved).
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Has reports whether colour retains the right to castle on the given wing.
func (r CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return r.WhiteKingside
	case colour == White:
		return r.WhiteQueenside
	case kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// CastlingRights derives the castling rights from piece placement and
// has-moved flags.
func (b *Board) CastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  b.hasCastlingRight(White, true),
		WhiteQueenside: b.hasCastlingRight(White, false),
		BlackKingside:  b.hasCastlingRight(Black, true),
		BlackQueenside: b.hasCastlingRight(Black, false),
	}
}

func (b *Board) hasCastlingRight(colour Colour, kingside bool) bool {
	row := HomeRow(colour)
	king := b.Squares[row][KingCol]
	if !king.Is(colour, King) || king.HasMoved {
		return false
	}
	rookCol := QueensideRookCol
	if kingside {
		rookCol = KingsideRookCol
	}
	rook := b.Squares[row][rookCol]
	return rook.Is(colour, Rook) && !rook.HasMoved
}

// EnPassantTarget returns the square passed over by the last move if it
// was a pawn double step.
func (b *Board) EnPassantTarget() (Square, bool) {
	if !b.LastWasDoubleStep {
		return NoSquare, false
	}
	return Square{Row: (b.LastFrom.Row + b.LastTo.Row) / 2, Col: b.LastTo.Col}, true
}

// RecordMove updates the last-move record and the half-move clock after a
// completed move of a piece of the given kind.
func (b *Board) RecordMove(from, to Square, moved Kind, capture bool) {
	b.LastFrom = from
	b.LastTo = to
	b.LastWasDoubleStep = moved == Pawn && from.Col == to.Col &&
		(to.Row-from.Row == 2 || from.Row-to.Row == 2)

	if capture || moved == Pawn {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
}

// PushPosition appends a position fingerprint to the history.
func (b *Board) PushPosition(fingerprint string) {
	b.History = append(b.History, fingerprint)
}

// LastPosition returns the most recent fingerprint, if any.
func (b *Board) LastPosition() (string, bool) {
	if len(b.History) == 0 {
		return "", false
	}
	return b.History[len(b.History)-1], true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.History = append([]string(nil), b.History...)
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// This is cheaper than Copy() when the board is modified temporarily and
// then restored (e.g., scanning for legal moves).
type BoardState struct {
	Squares           [BoardSize][BoardSize]Piece
	LastFrom          Square
	LastTo            Square
	LastWasDoubleStep bool
	HalfmoveClock     int
	HistoryLen        int
	NextID            int
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:           b.Squares,
		LastFrom:          b.LastFrom,
		LastTo:            b.LastTo,
		LastWasDoubleStep: b.LastWasDoubleStep,
		HalfmoveClock:     b.HalfmoveClock,
		HistoryLen:        len(b.History),
		NextID:            b.nextID,
	}
}

// RestoreState restores the board to a previously saved state. History
// entries appended since the save are discarded.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
	b.LastFrom = s.LastFrom
	b.LastTo = s.LastTo
	b.LastWasDoubleStep = s.LastWasDoubleStep
	b.HalfmoveClock = s.HalfmoveClock
	if s.HistoryLen <= len(b.History) {
		b.History = b.History[:s.HistoryLen]
	}
	b.nextID = s.NextID
}

// String renders the board as eight lines of symbols, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
