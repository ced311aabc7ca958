package engine

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

var (
	promotionChoices = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
	noPromotion      = []chess.Kind{chess.Empty}
)

// MoveCount is the number of leaf nodes below one root move.
type MoveCount struct {
	Move      chess.Move
	Promotion chess.Kind
	Nodes     int
}

// String returns the count in the usual divide form, e.g. "b7b8q: 4".
func (mc MoveCount) String() string {
	move := mc.Move.String()
	if mc.Promotion != chess.Empty {
		move += string(mc.Promotion.Letter() + 'a' - 'A')
	}
	return fmt.Sprintf("%s: %d", move, mc.Nodes)
}

// Perft counts the leaf nodes of the legal move tree depth plies below the
// position, colour to move. Each promotion choice is a separate move. The
// board is left as it was found.
func Perft(board *chess.Board, colour chess.Colour, depth int) int {
	if depth <= 0 {
		return 1
	}
	var nodes int
	for _, m := range LegalMoves(board, colour) {
		for _, kind := range promotionsFor(board, m) {
			nodes += perftAfter(board, colour, m, kind, depth-1)
		}
	}
	return nodes
}

// Divide runs Perft below every root move, each on its own copy of the
// board, spread over the given number of workers. The counts come back in
// LegalMoves order with promotions in queen, rook, bishop, knight order.
func Divide(ctx context.Context, board *chess.Board, colour chess.Colour, depth, workers int) ([]MoveCount, error) {
	if depth <= 0 {
		return nil, nil
	}

	var items []worker.WorkItem
	for _, m := range LegalMoves(board, colour) {
		for _, kind := range promotionsFor(board, m) {
			items = append(items, worker.WorkItem{
				Board:     board.Copy(),
				Colour:    colour,
				Move:      m,
				Promotion: kind,
				Depth:     depth - 1,
				Index:     len(items),
			})
		}
	}

	pool := worker.NewPool(countNodes, worker.WithWorkers(workers), worker.WithBufferSize(len(items)))
	pool.Start(ctx)
	for _, item := range items {
		pool.Submit(item)
	}
	pool.Close()

	counts := make([]MoveCount, len(items))
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil && firstErr == nil {
			firstErr = res.Error
		}
		counts[res.Index] = MoveCount{Move: res.Move, Promotion: res.Promotion, Nodes: res.Nodes}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return counts, firstErr
}

func countNodes(item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Index: item.Index, Move: item.Move, Promotion: item.Promotion}
	if err := playMove(item.Board, item.Colour, item.Move, item.Promotion); err != nil {
		res.Error = err
		return res
	}
	res.Nodes = Perft(item.Board, item.Colour.Opposite(), item.Depth)
	return res
}

func promotionsFor(board *chess.Board, m chess.Move) []chess.Kind {
	p := board.At(m.From)
	if p.Kind == chess.Pawn && m.To.Row == chess.PromotionRow(p.Colour) {
		return promotionChoices
	}
	return noPromotion
}

func perftAfter(board *chess.Board, colour chess.Colour, m chess.Move, kind chess.Kind, depth int) int {
	saved := board.SaveState()
	defer board.RestoreState(saved)

	if err := playMove(board, colour, m, kind); err != nil {
		return 0
	}
	return Perft(board, colour.Opposite(), depth)
}

// playMove applies and commits a move on a bare board, promoting to kind
// when the move reaches the last rank.
func playMove(board *chess.Board, colour chess.Colour, m chess.Move, kind chess.Kind) error {
	tx, err := attemptMove(board, colour, m.From, m.To)
	if err != nil {
		return err
	}
	if tx.reach.NeedsPromotion {
		if err := tx.promote(kind); err != nil {
			tx.rollback()
			return err
		}
	}
	tx.commit()
	return nil
}
