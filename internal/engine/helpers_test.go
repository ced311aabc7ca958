package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// play applies and commits a move given as "e2e4" (or "a7a8q") directly on
// the board, failing the test if it is rejected.
func play(t testing.TB, board *chess.Board, colour chess.Colour, move string) {
	t.Helper()
	m := testutil.Move(t, move[:4])
	tx, err := attemptMove(board, colour, m.From, m.To)
	if err != nil {
		t.Fatalf("move %s for %v: %v", move, colour, err)
	}
	if tx.reach.NeedsPromotion {
		kind := chess.Queen
		if len(move) == 5 {
			kind = kindFromLetter(move[4])
		}
		if err := tx.promote(kind); err != nil {
			t.Fatalf("promote %s: %v", move, err)
		}
	}
	tx.commit()
}

// playAll plays alternating moves starting with colour.
func playAll(t testing.TB, board *chess.Board, colour chess.Colour, moves ...string) chess.Colour {
	t.Helper()
	for _, m := range moves {
		play(t, board, colour, m)
		colour = colour.Opposite()
	}
	return colour
}

func kindFromLetter(c byte) chess.Kind {
	switch c {
	case 'q':
		return chess.Queen
	case 'r':
		return chess.Rook
	case 'b':
		return chess.Bishop
	case 'n':
		return chess.Knight
	}
	return chess.Empty
}

// withHistory records the board's current position as its first history
// entry, the way a new game does.
func withHistory(board *chess.Board) *chess.Board {
	board.PushPosition(hashing.Fingerprint(board))
	return board
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
