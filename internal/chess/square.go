package chess

// Square is a board coordinate. Row 0 is rank 8 and row 7 is rank 1;
// col 0 is file a and col 7 is file h.
type Square struct {
	Row int
	Col int
}

// NoSquare is the sentinel for an off-board coordinate. It is never used
// to index the board.
var NoSquare = Square{Row: -1, Col: -1}

// NewSquare returns the square at row, col, or NoSquare if either index
// is outside the board.
func NewSquare(row, col int) Square {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoSquare
	}
	return Square{Row: row, Col: col}
}

// Sq builds a square from file and rank characters, e.g. Sq('e', '4').
func Sq(file, rank byte) Square {
	return NewSquare(int('8')-int(rank), int(file)-int('a'))
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Rank returns the rank number (1-8), or 0 for an invalid square.
func (s Square) Rank() int {
	if !s.IsValid() {
		return 0
	}
	return BoardSize - s.Row
}

// File returns the file letter ('a'-'h'), or 0 for an invalid square.
func (s Square) File() byte {
	if !s.IsValid() {
		return 0
	}
	return byte('a' + s.Col)
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	if !s.IsValid() {
		return NoSquare
	}
	return NewSquare(s.Row+dr, s.Col+dc)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// String returns the algebraic name of the square, or "-" if invalid.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{s.File(), byte('0' + s.Rank())})
}

// Move is an intended displacement from one square to another. It carries
// no piece reference; legality is resolved against the board at apply time.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
