// Package worker provides a worker pool for counting move trees in
// parallel, one root move per work item.
package worker

import (
	"context"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem is one root move to expand. The board belongs to the item and
// is not shared with other items.
type WorkItem struct {
	Board     *chess.Board
	Colour    chess.Colour
	Move      chess.Move
	Promotion chess.Kind // Empty unless Move promotes
	Depth     int        // plies to count below Move
	Index     int        // position in submission order
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Index     int
	Move      chess.Move
	Promotion chess.Kind
	Nodes     int
	Error     error
}

// ProcessFunc counts the nodes below one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	items      chan WorkItem
	results    chan ProcessResult
	process    ProcessFunc
	wg         sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size. A pool whose buffer holds
// every item can be filled and closed without a concurrent reader.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool returns a pool running process on one worker with a buffer of
// ten items unless the options say otherwise.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Once ctx is done, remaining items
// are drained without being processed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.items {
		if ctx.Err() != nil {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.items <- item
}

// Close stops accepting items, waits for the workers to drain the queue
// and then closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results delivers one ProcessResult per processed item, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
