package ordering

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool implementing Scheduler. Workers are
// spawned once at creation and reused by every sort scheduled on the pool.
//
// Tasks must not call Go on the pool that runs them: once the queue is full
// such a task blocks its own worker and a small pool deadlocks. Sorted only
// submits from the calling goroutine.
//
// Usage:
//
//	pool := ordering.NewPool(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	sorted := ordering.NewSorted(items, byName, ordering.WithScheduler(pool))
type Pool struct {
	numWorkers int
	workC      chan func()

	mu        sync.RWMutex
	closeOnce sync.Once
	closed    atomic.Bool
}

// NewPool creates a new worker pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan func(), numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for task := range p.workC {
		task()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Go queues task for a worker. Once the pool is closed, task runs on the
// calling goroutine instead.
func (p *Pool) Go(task func()) {
	p.mu.RLock()
	if p.closed.Load() {
		p.mu.RUnlock()
		task()
		return
	}
	p.workC <- task
	p.mu.RUnlock()
}

// Close shuts down the worker pool. Queued work still completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.closed.Store(true)
		close(p.workC)
	})
}
