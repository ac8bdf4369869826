package ordering

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
)

// Option configures a Sorted.
type Option func(*settings)

type settings struct {
	scheduler Scheduler
	logger    *zap.Logger
	cfg       Config
}

func newSettings(opts []Option) settings {
	s := settings{
		scheduler: Goroutines,
		logger:    zap.NewNop(),
		cfg:       DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithScheduler sets the scheduler that runs background sorts.
// The default starts one goroutine per task.
func WithScheduler(s Scheduler) Option {
	return func(o *settings) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithLogger sets the logger used for fan-out and join diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *settings) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConfig sets the configuration. Zero fields take their default value.
func WithConfig(cfg Config) Option {
	return func(o *settings) {
		o.cfg = cfg.withDefaults()
	}
}

// Sorted pairs a sequence with the comparer that orders it.
//
// A Sorted never mutates the slice it was created from, and every sorting
// method produces a fresh slice.
type Sorted[T any] struct {
	items    []T
	comparer Comparer[T]
	settings settings
}

// NewSorted wraps a copy of items with comparer c.
func NewSorted[T any](items []T, c Comparer[T], opts ...Option) *Sorted[T] {
	return &Sorted[T]{
		items:    slices.Clone(items),
		comparer: c,
		settings: newSettings(opts),
	}
}

// SortedFrom wraps a copy of items with the comparer registered for T in r.
func SortedFrom[T any](r *Registry, items []T, opts ...Option) (*Sorted[T], error) {
	c, err := Lookup[T](r)
	if err != nil {
		return nil, err
	}
	return NewSorted(items, c, opts...), nil
}

// Items returns a copy of the wrapped sequence.
func (s *Sorted[T]) Items() []T {
	return slices.Clone(s.items)
}

// Len returns the length of the wrapped sequence.
func (s *Sorted[T]) Len() int {
	return len(s.items)
}

// Comparer returns the comparer of s.
func (s *Sorted[T]) Comparer() Comparer[T] {
	return s.comparer
}

// Sort returns a new Sorted holding the stably sorted sequence. Each extra
// comparer extends the existing one as a further tie-break, in order.
func (s *Sorted[T]) Sort(extra ...Comparer[T]) *Sorted[T] {
	c := s.comparer
	for _, next := range extra {
		c = c.OrElse(next)
	}
	return &Sorted[T]{
		items:    stableSorted(s.items, c),
		comparer: c,
		settings: s.settings,
	}
}

// Async runs Sort on the scheduler and returns the handle of its result.
func (s *Sorted[T]) Async() *Future[T] {
	return goFuture(s.settings.scheduler, func() []T {
		return stableSorted(s.items, s.comparer)
	})
}

// Parallel splits the sequence in half, sorts both halves concurrently and
// merges them once both are done. It fans out exactly once.
func (s *Sorted[T]) Parallel(ctx context.Context) ([]T, error) {
	mid := len(s.items) / 2
	return s.fanOut(ctx, [][2]int{{0, mid}, {mid, len(s.items)}})
}

// MergeSort halves the sequence Config.ParallelDepth times, sorts the
// leaves concurrently, then merges them pairwise back up on the calling goroutine.
func (s *Sorted[T]) MergeSort(ctx context.Context) ([]T, error) {
	return s.fanOut(ctx, halve(0, len(s.items), s.settings.cfg.ParallelDepth))
}

// Verify reports whether seq is in order under the comparer of s.
func (s *Sorted[T]) Verify(seq []T) bool {
	return Verify(seq, s.comparer)
}

// fanOut sorts each [lo, hi) leaf as its own task, waits for all of them and
// merges adjacent results pairwise until one remains. Tasks never wait on
// each other, so any Scheduler works, even one with a single worker.
func (s *Sorted[T]) fanOut(ctx context.Context, leaves [][2]int) ([]T, error) {
	logger := s.settings.logger.With(zap.Int("items", len(s.items)), zap.Int("leaves", len(leaves)))
	logger.Debug("fan out")
	start := time.Now()

	futures := make([]*Future[T], len(leaves))
	for i, leaf := range leaves {
		part := s.items[leaf[0]:leaf[1]]
		futures[i] = goFuture(s.settings.scheduler, func() []T {
			return stableSorted(part, s.comparer)
		})
	}

	runs, err := awaitAll(ctx, futures)
	if err != nil {
		logger.Debug("join abandoned", zap.Error(err))
		return nil, err
	}
	logger.Debug("joined", zap.Duration("elapsed", time.Since(start)))

	for len(runs) > 1 {
		next := make([][]T, 0, (len(runs)+1)/2)
		for i := 0; i < len(runs); i += 2 {
			if i+1 == len(runs) {
				next = append(next, runs[i])
				continue
			}
			next = append(next, Merge(runs[i], runs[i+1], s.comparer))
		}
		runs = next
	}
	logger.Debug("merged", zap.Duration("elapsed", time.Since(start)))

	if len(runs) == 0 {
		return []T{}, nil
	}
	return runs[0], nil
}

// halve splits [lo, hi) in half depth times and returns the leaves in order.
func halve(lo, hi, depth int) [][2]int {
	if depth <= 0 {
		return [][2]int{{lo, hi}}
	}
	mid := lo + (hi-lo)/2
	return append(halve(lo, mid, depth-1), halve(mid, hi, depth-1)...)
}

// stableSorted returns a stably sorted copy of items.
func stableSorted[T any](items []T, c Comparer[T]) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, c.Func())
	return sorted
}
