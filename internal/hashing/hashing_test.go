package hashing

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestFingerprintConsistency(t *testing.T) {
	// Two identical boards produce the same fingerprint
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	fp1 := Fingerprint(board1)
	fp2 := Fingerprint(board2)

	if fp1 != fp2 {
		t.Errorf("Identical boards produced different fingerprints: %q != %q", fp1, fp2)
	}
}

func TestFingerprintInitialPosition(t *testing.T) {
	want := "rnbqkbnr" + "pppppppp" + strings.Repeat("........", 4) + "PPPPPPPP" + "RNBQKBNR" +
		"WKSWQSBKSBQS"
	if got := Fingerprint(chess.NewInitialBoard()); got != want {
		t.Errorf("Fingerprint(initial) = %q, want %q", got, want)
	}
}

func TestFingerprintDifferentPositions(t *testing.T) {
	board1 := chess.NewInitialBoard()

	board2 := chess.NewInitialBoard()
	// Manually move e2 to e4
	pawn := board2.Remove(chess.Sq('e', '2'))
	board2.Place(chess.Sq('e', '4'), pawn)

	if Fingerprint(board1) == Fingerprint(board2) {
		t.Error("Different positions produced the same fingerprint")
	}
}

func TestFingerprintCastlingRights(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	rook := board2.At(chess.Sq('h', '1'))
	rook.HasMoved = true
	board2.Place(chess.Sq('h', '1'), rook)

	fp1 := Fingerprint(board1)
	fp2 := Fingerprint(board2)
	if fp1 == fp2 {
		t.Fatal("Positions with different castling rights produced the same fingerprint")
	}
	if strings.Contains(fp2, whiteKingsideMarker) {
		t.Errorf("Fingerprint(%q) contains %q after the h1 rook moved", fp2, whiteKingsideMarker)
	}
	if !strings.Contains(fp2, whiteQueensideMarker) {
		t.Errorf("Fingerprint(%q) lost %q", fp2, whiteQueensideMarker)
	}
}

func TestFingerprintEnPassantTarget(t *testing.T) {
	board := chess.NewInitialBoard()
	pawn := board.Remove(chess.Sq('e', '2'))
	board.Place(chess.Sq('e', '4'), pawn)
	withoutTarget := Fingerprint(board)

	board.RecordMove(chess.Sq('e', '2'), chess.Sq('e', '4'), chess.Pawn, false)
	withTarget := Fingerprint(board)

	if withTarget == withoutTarget {
		t.Fatal("en passant availability did not change the fingerprint")
	}
	if !strings.HasSuffix(withTarget, "e3") {
		t.Errorf("Fingerprint() = %q, want suffix %q", withTarget, "e3")
	}
}

func TestRepetitionTable(t *testing.T) {
	table := NewRepetitionTable()

	if got := table.Add("a"); got != 1 {
		t.Errorf("Add(a) = %d, want 1", got)
	}
	table.Add("b")
	if got := table.Add("a"); got != 2 {
		t.Errorf("Add(a) = %d, want 2", got)
	}

	if got := table.Count("a"); got != 2 {
		t.Errorf("Count(a) = %d, want 2", got)
	}
	if got := table.Count("c"); got != 0 {
		t.Errorf("Count(c) = %d, want 0", got)
	}
	if got := table.Positions(); got != 3 {
		t.Errorf("Positions() = %d, want 3", got)
	}
	if got := table.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d, want 2", got)
	}

	table.Reset()
	if table.Positions() != 0 || table.UniqueCount() != 0 {
		t.Errorf("after Reset() Positions() = %d, UniqueCount() = %d, want 0, 0",
			table.Positions(), table.UniqueCount())
	}
}

func TestFromHistory(t *testing.T) {
	table := FromHistory([]string{"x", "y", "x", "z", "x"})
	if got := table.Count("x"); got != 3 {
		t.Errorf("FromHistory().Count(x) = %d, want 3", got)
	}
	if got := table.Positions(); got != 5 {
		t.Errorf("FromHistory().Positions() = %d, want 5", got)
	}
}
