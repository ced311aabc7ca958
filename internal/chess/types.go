// Package chess provides core chess types and the board data model.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to k.
func (k Kind) IsPromotionChoice() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// Constants for board dimensions and game rules.
const (
	BoardSize = 8

	// FiftyMoveLimit is the half-move clock value at which the fifty-move rule applies.
	FiftyMoveLimit = 100

	// RepetitionLimit is the number of occurrences of a position that draws the game.
	RepetitionLimit = 3

	// KingCol is the starting column of both kings.
	KingCol = 4

	// KingsideRookCol and QueensideRookCol are the rook starting columns.
	KingsideRookCol  = BoardSize - 1
	QueensideRookCol = 0
)

// HomeRow returns the back-rank row of the given colour.
// Row 0 is rank 8, row 7 is rank 1.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row the given colour's pawns start on.
func PawnRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow returns the far row for the given colour's pawns.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// Forward returns -1 for White, +1 for Black (for pawn direction in rows).
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Termination classifies the end of the game for one side.
type Termination int

const (
	NotOver Termination = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a termination.
func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "None"
}

// GameState is the externally visible state of the game for one side.
type GameState int

const (
	Ongoing GameState = iota
	Check
	CheckmateState
	StalemateState
	FiftyMoveDraw
	ThreefoldRepetition
	InsufficientMaterial
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	names := []string{
		"Ongoing", "Check", "Checkmate", "Stalemate",
		"FiftyMoveDraw", "ThreefoldRepetition", "InsufficientMaterial",
	}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsTerminal reports whether the state ends the game.
func (s GameState) IsTerminal() bool {
	return s != Ongoing && s != Check
}

// IsDraw reports whether the state is a drawn result.
func (s GameState) IsDraw() bool {
	switch s {
	case StalemateState, FiftyMoveDraw, ThreefoldRepetition, InsufficientMaterial:
		return true
	}
	return false
}
