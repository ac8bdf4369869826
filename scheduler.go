package ordering

import "context"

// Scheduler runs units of work in the background.
// Go must not block until task completes; Sorted joins the results itself.
type Scheduler interface {
	// Go arranges for task to be run. It may run it on another goroutine
	// immediately, queue it, or run it before returning.
	Go(task func())
}

// SchedulerFunc is a function adapter that implements the Scheduler interface.
// This allows using simple functions as schedulers.
type SchedulerFunc func(task func())

// Go implements the Scheduler interface for SchedulerFunc.
func (f SchedulerFunc) Go(task func()) {
	f(task)
}

// Goroutines starts one goroutine per task.
var Goroutines Scheduler = SchedulerFunc(func(task func()) { go task() })

// Inline runs each task on the submitting goroutine before Go returns.
var Inline Scheduler = SchedulerFunc(func(task func()) { task() })

// Future is the handle of a sort running in the background.
type Future[T any] struct {
	result   []T
	panicked any
	done     chan struct{}
}

// goFuture schedules task on s and returns the handle of its result.
// A panic raised by task is captured and re-raised by Wait or Await.
func goFuture[T any](s Scheduler, task func() []T) *Future[T] {
	f := &Future[T]{
		done: make(chan struct{}),
	}
	s.Go(func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.panicked = r
			}
		}()
		f.result = task()
	})
	return f
}

// Done returns a channel that is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available and returns it.
func (f *Future[T]) Wait() []T {
	<-f.done
	return f.get()
}

// Await is Wait bounded by ctx. The background task keeps running when ctx
// ends first; only the caller stops waiting.
func (f *Future[T]) Await(ctx context.Context) ([]T, error) {
	// Check context cancellation first
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case <-f.done:
		return f.get(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *Future[T]) get() []T {
	if f.panicked != nil {
		panic(f.panicked)
	}
	return f.result
}

// awaitAll waits for every future in order and returns their results.
func awaitAll[T any](ctx context.Context, futures []*Future[T]) ([][]T, error) {
	results := make([][]T, len(futures))
	for i, f := range futures {
		r, err := f.Await(ctx)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}
