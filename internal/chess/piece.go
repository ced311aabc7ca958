package chess

// Piece is a single chessman. Pieces are stored by value in the board's
// squares; the zero value (Kind == Empty) is an empty square.
type Piece struct {
	// ID identifies the piece for roster bookkeeping. IDs are unique per board.
	ID int

	Kind   Kind
	Colour Colour

	// Square always equals the square that holds the piece.
	Square Square

	// HasMoved is set once the piece completes a move and is never cleared.
	// It only gates castling.
	HasMoved bool
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Symbol returns the letter used for p in position fingerprints:
// uppercase for White, lowercase for Black and '.' for an empty square.
func (p Piece) Symbol() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		return letter + ('a' - 'A')
	}
	return letter
}

// String returns a human readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}
