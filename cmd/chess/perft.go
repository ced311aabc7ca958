package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// runPerft prints the node count below each root move of the initial
// position, then the total.
func runPerft(ctx context.Context, w io.Writer, depth, numWorkers int) error {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	counts, err := engine.Divide(ctx, chess.NewInitialBoard(), chess.White, depth, numWorkers)
	if err != nil {
		return err
	}

	var total int
	for _, c := range counts {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
		total += c.Nodes
	}
	_, err = fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	return err
}
