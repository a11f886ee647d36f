// Package worker provides a worker pool for replaying move scripts in
// parallel. Each item is replayed on its own game, so workers share no
// engine state.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/playchess-go/internal/parser"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// WorkItem represents a script to be replayed.
type WorkItem struct {
	Script *parser.Script
	Index  int // Position of the script in the input
}

// ProcessResult represents the result of replaying a script.
type ProcessResult struct {
	Report       *processing.Report
	Index        int
	Matched      bool // Whether the report passed the match filters
	ShouldOutput bool // Whether to write the report to the main output
	OutputToDup  bool // Whether to write the report to the duplicate file
	Error        error
}

// ProcessFunc replays one work item. It is called from several goroutines
// at once.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan ProcessResult
	process    ProcessFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
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

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool; values below 1 fall back to the defaults of
// NewPoolWithOptions.
func NewPool(numWorkers, bufferSize int, process ProcessFunc) *Pool {
	return NewPoolWithOptions(process, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool with 1 worker and a buffer of 10 unless
// the options say otherwise.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without replaying
		}
		p.resultChan <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues an item without blocking. It returns false if the buffer
// is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes the workers discard queued items instead of replaying them.
// Items already being replayed still produce results.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends the input, waits for the workers and then closes the result
// channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel results are delivered on, in completion
// order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, replays every script and hands the results to emit
// in script order, from the calling goroutine. When ctx is cancelled the
// pool stops; results after the first skipped script are dropped and
// ctx.Err() is returned.
func (p *Pool) Run(ctx context.Context, scripts []*parser.Script, emit func(ProcessResult)) error {
	stopOnCancel := context.AfterFunc(ctx, p.Stop)
	defer stopOnCancel()

	p.Start()
	go func() {
		defer p.Close()
		for i, script := range scripts {
			if ctx.Err() != nil {
				return
			}
			select {
			case p.workChan <- WorkItem{Script: script, Index: i}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var order resultOrder
	for result := range p.resultChan {
		order.add(result, emit)
	}
	if err := ctx.Err(); err != nil {
		p.Stop()
		return err
	}
	return nil
}

// resultOrder holds back results until every lower index has been emitted.
type resultOrder struct {
	pending map[int]ProcessResult
	next    int
}

func (o *resultOrder) add(result ProcessResult, emit func(ProcessResult)) {
	if o.pending == nil {
		o.pending = make(map[int]ProcessResult)
	}
	o.pending[result.Index] = result
	for {
		r, ok := o.pending[o.next]
		if !ok {
			return
		}
		delete(o.pending, o.next)
		emit(r)
		o.next++
	}
}
