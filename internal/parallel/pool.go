// Package parallel runs independent lint jobs on a fixed set of workers.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines that execute submitted jobs.
//
// Each worker owns a queue. Jobs are dealt round-robin and an idle worker
// steals from the other queues, so one slow icon does not hold up the rest
// of the batch.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu orders Close after every in-flight submission, so no job is queued
	// once the workers have drained.
	mu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case job := <-p.queues[(id+i)%p.workers]:
			return job
		default:
		}
	}
	return nil
}

// ExecuteAll runs every job and waits for all of them to return.
// Jobs submitted after Close run on the calling goroutine. ExecuteAll may
// race with Close; it must not be called from inside a job.
func (p *WorkerPool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))

	p.mu.RLock()
	inline := !p.running.Load()
	for i, job := range jobs {
		wrapped := func() {
			defer wg.Done()
			job()
		}
		if inline {
			wrapped()
			continue
		}
		p.queues[i%p.workers] <- wrapped
	}
	p.mu.RUnlock()

	wg.Wait()
}

// Map applies fn to every item on the pool and returns the results in
// input order. Items not yet started when ctx is cancelled are skipped and
// left as the zero value; the context error is returned.
func Map[T, R any](ctx context.Context, p *WorkerPool, items []T, fn func(context.Context, T) R) ([]R, error) {
	out := make([]R, len(items))
	jobs := make([]func(), len(items))
	for i, item := range items {
		jobs[i] = func() {
			if ctx.Err() != nil {
				return
			}
			out[i] = fn(ctx, item)
		}
	}
	p.ExecuteAll(jobs)
	return out, ctx.Err()
}

// Close stops the workers after the queued jobs have run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still dispatches to its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
