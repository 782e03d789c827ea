// Package worker analyses position lines on a pool of goroutines.
package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/bureaucrat-chess/internal/processing"
)

// WorkItem represents one input line to be analysed.
type WorkItem struct {
	Line   string
	Source string // Input file name or "stdin"
	LineNo int    // 1-based line number within Source
	Index  int    // Position in the batch, from 0
}

// ProcessResult represents the result of analysing one line.
type ProcessResult struct {
	Item     WorkItem
	Index    int
	Analysis *processing.PositionAnalysis // nil when Error is set
	Error    error
}

// ProcessFunc analyses one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over one batch of work items.
// Once stopped, items still queued are drained without being processed.
type Pool struct {
	numWorkers  int
	bufferSize  int
	processFunc ProcessFunc
	stopped     atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines; n < 1 means one per CPU.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		p.numWorkers = n
	}
}

// WithBufferSize sets the work and result channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: one worker per CPU, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers:  runtime.NumCPU(),
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run feeds items to the workers and returns their results, in completion
// order. The channel is closed when every item has been processed or skipped.
// Cancelling ctx stops the pool.
func (p *Pool) Run(ctx context.Context, items []WorkItem) <-chan ProcessResult {
	work := make(chan WorkItem, p.bufferSize)
	results := make(chan ProcessResult, p.bufferSize)
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				if p.Stopped() {
					continue
				}
				results <- p.processFunc(item)
			}
		}()
	}

	go func() {
		defer close(work)
		for _, item := range items {
			if ctx.Err() != nil {
				p.Stop()
				return
			}
			select {
			case work <- item:
			case <-ctx.Done():
				p.Stop()
				return
			}
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-done:
		}
	}()

	go func() {
		wg.Wait()
		close(results)
		close(done)
	}()

	return results
}

// Stop makes the workers skip every item they have not started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether the pool was stopped.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
