// Package worker provides a worker pool that evaluates candidate moves in
// parallel. Positions are immutable, so workers share them freely.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is a candidate move to evaluate.
type WorkItem struct {
	Move  engine.Move
	Index int // Position of the move in the submitted list
	Depth int // Remaining search depth below the move (0 = the move only)
}

// ProcessResult is the outcome of evaluating one candidate move.
type ProcessResult struct {
	Move       engine.Move
	Index      int
	Transition engine.Transition
	Nodes      uint64 // Leaf count below the move
	Text       string // Notated move text
}

// ProcessFunc evaluates a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel move evaluation.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Set by Stop; read atomically
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

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool around processFunc. Without options it
// runs one worker with a buffer of 10 items.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Stop makes workers skip every item they have not started yet.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

func (p *Pool) start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

// work evaluates items until the work channel closes. Once stopped it only
// drains the channel.
func (p *Pool) work() {
	defer p.wg.Done()
	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// feed submits items until they run out or the pool stops, then closes the
// work channel and waits for the workers before closing the results.
func (p *Pool) feed(items []WorkItem) {
	for _, item := range items {
		if p.IsStopped() {
			break
		}
		p.workChan <- item
	}
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Run starts the pool, feeds it items, and returns the results ordered by
// Index. Cancelling ctx stops the pool: items not yet taken by a worker are
// skipped and the partial results are returned with ctx.Err().
func (p *Pool) Run(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	if ctx.Err() != nil {
		p.Stop()
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-done:
		}
	}()

	p.start()
	go p.feed(items)

	results := make([]ProcessResult, 0, len(items))
	for r := range p.resultChan {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, ctx.Err()
}
