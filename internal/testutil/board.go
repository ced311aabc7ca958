package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var kindByLetter = map[byte]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// Square parses an algebraic square such as "e4" and fails the test if it
// is malformed.
func Square(t testing.TB, s string) chess.Square {
	t.Helper()
	if len(s) != 2 {
		t.Fatalf("bad square %q", s)
	}
	sq := chess.Sq(s[0], s[1])
	if !sq.IsValid() {
		t.Fatalf("bad square %q", s)
	}
	return sq
}

// BuildBoard returns a board holding only the listed pieces. Each entry is
// a piece letter followed by a square: upper case for White ("Ke1"), lower
// case for Black ("qh8"). A trailing '*' marks the piece as having moved.
func BuildBoard(t testing.TB, placements ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for _, placement := range placements {
		moved := strings.HasSuffix(placement, "*")
		placement = strings.TrimSuffix(placement, "*")
		if len(placement) != 3 {
			t.Fatalf("bad placement %q", placement)
		}

		letter := placement[0]
		colour := chess.White
		if letter >= 'a' && letter <= 'z' {
			colour = chess.Black
			letter -= 'a' - 'A'
		}
		kind, ok := kindByLetter[letter]
		if !ok {
			t.Fatalf("bad piece letter in %q", placement)
		}

		sq := Square(t, placement[1:])
		if !board.IsEmpty(sq) {
			t.Fatalf("square %s placed twice", sq)
		}
		piece := board.Spawn(kind, colour)
		piece.HasMoved = moved
		board.Place(sq, piece)
	}
	return board
}

// Move parses a move such as "e2e4".
func Move(t testing.TB, s string) chess.Move {
	t.Helper()
	if len(s) != 4 {
		t.Fatalf("bad move %q", s)
	}
	return chess.Move{From: Square(t, s[:2]), To: Square(t, s[2:])}
}
