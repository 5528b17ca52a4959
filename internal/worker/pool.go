// Package worker runs document extraction jobs concurrently.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of extraction work.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job.
type Result interface {
	GetError() error
}

// Pool executes jobs on a fixed number of workers. The tagger endpoint
// is the bottleneck, so the pool stays small and the rate limiter does
// the real throttling.
type Pool struct {
	workers    int
	jobQueue   chan Job
	results    chan Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	return NewPoolWithContext(context.Background(), workers)
}

// NewPoolWithContext ties the pool's lifetime to ctx: when ctx is
// cancelled the workers stop and pending submissions are dropped.
func NewPoolWithContext(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, workers*2),
		results:    make(chan Result, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job. Submissions after Shutdown are dropped.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Results exposes the result stream. Both channels are buffered at
// workers*2, so when the job count can exceed that, results must be
// read concurrently with Submit or the pool deadlocks.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Close signals that no more jobs will be submitted, waits for the
// workers to drain the queue, and closes the result channel. Call it
// exactly once after the last Submit.
func (p *Pool) Close() {
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
}

// Wait closes the queue, waits for the workers to drain it, and returns
// all results. Call it exactly once after the last Submit.
func (p *Pool) Wait() []Result {
	close(p.jobQueue)

	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}

	return results
}

// Shutdown cancels in-flight jobs and stops the workers.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
