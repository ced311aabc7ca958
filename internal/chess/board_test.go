package chess

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.LastFrom != NoSquare || b.LastTo != NoSquare {
			t.Errorf("last move = %v-%v; want none", b.LastFrom, b.LastTo)
		}
		if b.LastWasDoubleStep {
			t.Error("LastWasDoubleStep = true; want false")
		}
		if b.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock)
		}
		if len(b.History) != 0 {
			t.Errorf("len(History) = %d; want 0", len(b.History))
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				sq := NewSquare(row, col)
				if !b.IsEmpty(sq) {
					t.Errorf("IsEmpty(%v) = false; want true", sq)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		square string
		colour Colour
		kind   Kind
	}{
		{"a1", White, Rook},
		{"b1", White, Knight},
		{"c1", White, Bishop},
		{"d1", White, Queen},
		{"e1", White, King},
		{"h1", White, Rook},
		{"e2", White, Pawn},
		{"a8", Black, Rook},
		{"d8", Black, Queen},
		{"e8", Black, King},
		{"g8", Black, Knight},
		{"h7", Black, Pawn},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq := Sq(tt.square[0], tt.square[1])
			p, ok := b.Occupant(sq)
			if !ok {
				t.Fatalf("Occupant(%s) empty", tt.square)
			}
			if !p.Is(tt.colour, tt.kind) {
				t.Errorf("Occupant(%s) = %v; want %v %v", tt.square, p, tt.colour, tt.kind)
			}
			if p.Square != sq {
				t.Errorf("piece square = %v; want %v", p.Square, sq)
			}
			if p.HasMoved {
				t.Error("HasMoved = true; want false")
			}
		})
	}

	if n := len(b.Pieces(White)); n != 16 {
		t.Errorf("len(Pieces(White)) = %d; want 16", n)
	}
	if n := len(b.Pieces(Black)); n != 16 {
		t.Errorf("len(Pieces(Black)) = %d; want 16", n)
	}
	for row := 2; row < 6; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.IsEmpty(NewSquare(row, col)) {
				t.Errorf("square %v not empty", NewSquare(row, col))
			}
		}
	}
}

func TestBoard_UniqueIDs(t *testing.T) {
	b := NewInitialBoard()
	seen := make(map[int]bool)
	for _, colour := range []Colour{White, Black} {
		for _, p := range b.Pieces(colour) {
			if p.ID == 0 || seen[p.ID] {
				t.Errorf("piece %v has duplicate or zero ID %d", p, p.ID)
			}
			seen[p.ID] = true
		}
	}
	if p := b.Spawn(Queen, White); seen[p.ID] {
		t.Errorf("Spawn reused ID %d", p.ID)
	}
}

func TestBoard_PlaceRemove(t *testing.T) {
	b := NewBoard()
	e4 := Sq('e', '4')

	b.Place(e4, b.Spawn(Knight, Black))
	p, ok := b.Occupant(e4)
	if !ok || !p.Is(Black, Knight) || p.Square != e4 {
		t.Fatalf("Occupant(e4) = %+v, %v", p, ok)
	}

	removed := b.Remove(e4)
	if !removed.Is(Black, Knight) {
		t.Errorf("Remove(e4) = %v; want Black Knight", removed)
	}
	if !b.IsEmpty(e4) {
		t.Error("e4 not empty after Remove")
	}

	// Invalid coordinates are ignored and read as empty.
	b.Place(NoSquare, b.Spawn(Rook, White))
	if _, ok := b.Occupant(NoSquare); ok {
		t.Error("Occupant(NoSquare) reported a piece")
	}
	if b.IsEmpty(NoSquare) {
		t.Error("IsEmpty(NoSquare) = true; want false")
	}
}

func TestBoard_FindKing(t *testing.T) {
	b := NewInitialBoard()
	if sq, ok := b.FindKing(White); !ok || sq != Sq('e', '1') {
		t.Errorf("FindKing(White) = %v, %v; want e1, true", sq, ok)
	}
	if sq, ok := b.FindKing(Black); !ok || sq != Sq('e', '8') {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", sq, ok)
	}
	if _, ok := NewBoard().FindKing(White); ok {
		t.Error("FindKing on empty board = true; want false")
	}
}

func TestBoard_CastlingRights(t *testing.T) {
	b := NewInitialBoard()
	all := CastlingRights{true, true, true, true}
	if got := b.CastlingRights(); got != all {
		t.Errorf("CastlingRights() = %+v; want %+v", got, all)
	}

	rook := b.At(Sq('h', '1'))
	rook.HasMoved = true
	b.Place(rook.Square, rook)
	b.Remove(Sq('a', '8'))

	got := b.CastlingRights()
	want := CastlingRights{WhiteKingside: false, WhiteQueenside: true, BlackKingside: true, BlackQueenside: false}
	if got != want {
		t.Errorf("CastlingRights() = %+v; want %+v", got, want)
	}
	if got.Has(White, true) || !got.Has(White, false) || !got.Has(Black, true) || got.Has(Black, false) {
		t.Errorf("Has() disagrees with %+v", got)
	}
}

func TestBoard_RecordMove(t *testing.T) {
	tests := []struct {
		name       string
		from, to   Square
		kind       Kind
		capture    bool
		startClock int
		wantClock  int
		wantDouble bool
	}{
		{"white double step", Sq('e', '2'), Sq('e', '4'), Pawn, false, 7, 0, true},
		{"black double step", Sq('d', '7'), Sq('d', '5'), Pawn, false, 0, 0, true},
		{"single step", Sq('e', '2'), Sq('e', '3'), Pawn, false, 3, 0, false},
		{"knight move", Sq('g', '1'), Sq('f', '3'), Knight, false, 3, 4, false},
		{"rook moving two squares", Sq('a', '1'), Sq('a', '3'), Rook, false, 0, 1, false},
		{"capture", Sq('c', '4'), Sq('f', '7'), Bishop, true, 42, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			b.HalfmoveClock = tt.startClock
			b.RecordMove(tt.from, tt.to, tt.kind, tt.capture)

			if b.HalfmoveClock != tt.wantClock {
				t.Errorf("HalfmoveClock = %d; want %d", b.HalfmoveClock, tt.wantClock)
			}
			if b.LastWasDoubleStep != tt.wantDouble {
				t.Errorf("LastWasDoubleStep = %v; want %v", b.LastWasDoubleStep, tt.wantDouble)
			}
			if b.LastFrom != tt.from || b.LastTo != tt.to {
				t.Errorf("last move = %v-%v; want %v-%v", b.LastFrom, b.LastTo, tt.from, tt.to)
			}
		})
	}
}

func TestBoard_EnPassantTarget(t *testing.T) {
	b := NewBoard()
	if _, ok := b.EnPassantTarget(); ok {
		t.Error("EnPassantTarget() on fresh board = true")
	}

	b.RecordMove(Sq('e', '2'), Sq('e', '4'), Pawn, false)
	if sq, ok := b.EnPassantTarget(); !ok || sq != Sq('e', '3') {
		t.Errorf("EnPassantTarget() = %v, %v; want e3, true", sq, ok)
	}

	b.RecordMove(Sq('c', '7'), Sq('c', '5'), Pawn, false)
	if sq, ok := b.EnPassantTarget(); !ok || sq != Sq('c', '6') {
		t.Errorf("EnPassantTarget() = %v, %v; want c6, true", sq, ok)
	}

	b.RecordMove(Sq('g', '1'), Sq('f', '3'), Knight, false)
	if _, ok := b.EnPassantTarget(); ok {
		t.Error("EnPassantTarget() after knight move = true")
	}
}

func TestBoard_SaveRestoreState(t *testing.T) {
	b := NewInitialBoard()
	b.PushPosition("start")
	saved := b.SaveState()

	b.Remove(Sq('e', '2'))
	b.Place(Sq('e', '4'), b.Spawn(Pawn, White))
	b.RecordMove(Sq('e', '2'), Sq('e', '4'), Pawn, false)
	b.PushPosition("after")

	b.RestoreState(saved)

	if b.String() != NewInitialBoard().String() {
		t.Errorf("board after restore:\n%s", b)
	}
	if len(b.History) != 1 || b.History[0] != "start" {
		t.Errorf("History = %v; want [start]", b.History)
	}
	if b.LastWasDoubleStep || b.LastTo != NoSquare {
		t.Error("last-move record not restored")
	}
	if b.SaveState() != saved {
		t.Error("SaveState() after restore differs from the saved state")
	}
}

func TestBoard_Copy(t *testing.T) {
	b := NewInitialBoard()
	b.PushPosition("start")

	c := b.Copy()
	c.Remove(Sq('d', '1'))
	c.PushPosition("other")
	c.History[0] = "changed"

	if b.IsEmpty(Sq('d', '1')) {
		t.Error("Copy shares squares with the original")
	}
	if len(b.History) != 1 || b.History[0] != "start" {
		t.Errorf("original History = %v; want [start]", b.History)
	}
}

func TestBoard_String(t *testing.T) {
	want := strings.Join([]string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	}, "\n") + "\n"

	if got := NewInitialBoard().String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
