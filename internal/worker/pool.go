package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job.
type Result interface {
	GetError() error
}

// Pool runs jobs on a fixed number of worker goroutines. Results come back
// in completion order, not submission order.
type Pool struct {
	workers int
	jobs    chan Job

	// submitMu serializes Submit against queue close, so a late Submit
	// cannot send on a closed channel.
	submitMu sync.Mutex
	closed   bool

	mu      sync.Mutex
	results []Result

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a pool with the given worker count (minimum 1).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers: workers,
		// Buffered so submitters rarely block on a busy pool.
		jobs:   make(chan Job, workers*2),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.collect(job.Execute(p.ctx))
		}
	}
}

func (p *Pool) collect(r Result) {
	p.mu.Lock()
	p.results = append(p.results, r)
	p.mu.Unlock()
}

// Submit queues a job. Submitting after Wait or Shutdown is a no-op.
func (p *Pool) Submit(job Job) {
	p.submitMu.Lock()
	defer p.submitMu.Unlock()

	if p.closed {
		return
	}
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// closeQueue closes the job channel exactly once.
func (p *Pool) closeQueue() {
	p.submitMu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.submitMu.Unlock()
}

// Wait closes the queue, waits for the workers to drain it and returns
// everything they produced. Safe to call more than once.
func (p *Pool) Wait() []Result {
	p.closeQueue()
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

// Shutdown cancels outstanding work and stops the workers. Jobs already
// running finish; queued jobs are abandoned.
func (p *Pool) Shutdown() {
	p.cancel()
	p.closeQueue()
	p.wg.Wait()
}
