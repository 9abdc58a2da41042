// Package worker runs scenarios on a pool of goroutines. Each scenario
// builds and owns its snapshot, so workers share no game state.
package worker

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/scenario"
)

// WorkItem is a scenario waiting to be evaluated.
type WorkItem struct {
	Scenario *scenario.Scenario
	Index    int // Submission order, used to restore it afterwards
}

// ProcessResult is the outcome of evaluating one work item.
type ProcessResult struct {
	Index  int
	Report *scenario.Report
}

// ProcessFunc evaluates a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a fixed set of workers reading from a shared channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
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

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// RunScenario is the ProcessFunc used for scenario files. A panic raised
// while evaluating, such as a query on a board without a king, fails that
// scenario only.
func RunScenario(item WorkItem) (result ProcessResult) {
	result.Index = item.Index
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			result.Report = &scenario.Report{
				Scenario: item.Scenario.Name,
				File:     item.Scenario.File,
				Err:      fmt.Errorf("panic: %w", err),
			}
		}
	}()
	result.Report = item.Scenario.Run()
	return result
}

// Evaluate runs scenarios on the given number of workers and returns
// their reports in input order. With failFast set, scenarios not yet
// started when one fails are skipped and have no report.
func Evaluate(scenarios []scenario.Scenario, workers int, failFast bool) []*scenario.Report {
	pool := NewPool(RunScenario, WithWorkers(workers), WithBufferSize(len(scenarios)+1))
	pool.Start()

	go func() {
		for i := range scenarios {
			pool.Submit(WorkItem{Scenario: &scenarios[i], Index: i})
		}
		pool.Close()
	}()

	reports := make([]*scenario.Report, len(scenarios))
	for result := range pool.Results() {
		reports[result.Index] = result.Report
		if failFast && result.Report.Failed() {
			pool.Stop()
		}
	}
	return reports
}
