package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestDivide_InitialPosition(t *testing.T) {
	board := withHistory(chess.NewInitialBoard())
	before := board.SaveState()

	counts, err := Divide(context.Background(), board, chess.White, 2, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(counts), 20)
	testutil.AssertEqual(t, counts[0].String(), "a2a4: 20")

	total := 0
	for _, c := range counts {
		if c.Nodes != 20 {
			t.Errorf("%s: Nodes = %d, want 20", c.Move, c.Nodes)
		}
		total += c.Nodes
	}
	testutil.AssertEqual(t, total, 400)
	testutil.AssertEqual(t, board.SaveState(), before)
}

func TestDivide_Promotions(t *testing.T) {
	board := testutil.BuildBoard(t, "Kh1", "Pb7", "Pg7", "ka1", "pb2", "nc8")

	counts, err := Divide(context.Background(), board, chess.White, 2, 2)
	testutil.AssertNoError(t, err)

	var names []string
	total := 0
	for _, c := range counts {
		if c.Move.From == testutil.Square(t, "b7") && c.Move.To == testutil.Square(t, "b8") {
			names = append(names, c.String()[:5])
		}
		total += c.Nodes
	}
	testutil.AssertEqual(t, names, []string{"b7b8q", "b7b8r", "b7b8b", "b7b8n"})
	testutil.AssertEqual(t, total, Perft(board, chess.White, 2))
}

func TestDivide_ZeroDepth(t *testing.T) {
	counts, err := Divide(context.Background(), chess.NewInitialBoard(), chess.White, 0, 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(counts), 0)
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	counts, err := Divide(ctx, chess.NewInitialBoard(), chess.White, 2, 2)
	testutil.AssertTrue(t, errors.Is(err, context.Canceled), "Divide() error = %v", err)
	testutil.AssertTrue(t, counts == nil, "counts = %v", counts)
}

func TestPerft_LeavesBoardUnchanged(t *testing.T) {
	board := testutil.BuildBoard(t, "Ke1", "Ra1", "Rh1", "Pe5", "ke8", "pd7", "ra8")
	board = withHistory(board)
	before := board.SaveState()

	if got := Perft(board, chess.White, 3); got == 0 {
		t.Fatal("Perft(3) = 0")
	}
	testutil.AssertEqual(t, board.SaveState(), before)
}

func TestMoveCount_String(t *testing.T) {
	tests := []struct {
		mc   MoveCount
		want string
	}{
		{MoveCount{Move: testutil.Move(t, "e2e4"), Nodes: 600}, "e2e4: 600"},
		{MoveCount{Move: testutil.Move(t, "b7b8"), Promotion: chess.Knight, Nodes: 4}, "b7b8n: 4"},
	}
	for _, tt := range tests {
		if got := tt.mc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
