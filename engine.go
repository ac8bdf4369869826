package ordering

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Algorithm names an in-place sorting algorithm of the engine.
type Algorithm string

const (
	// AlgorithmDefault is the quicksort backed default.
	AlgorithmDefault Algorithm = "default"
	// AlgorithmInsertion is the quadratic, stable baseline.
	AlgorithmInsertion Algorithm = "insertion"
	// AlgorithmMerge is the stable hybrid merge sort.
	AlgorithmMerge Algorithm = "merge"
	// AlgorithmQuick is the unstable hybrid quicksort.
	AlgorithmQuick Algorithm = "quick"
	// AlgorithmStable is the standard library's stable sort.
	AlgorithmStable Algorithm = "stable"
)

// Algorithms lists every algorithm ParseAlgorithm accepts.
var Algorithms = []Algorithm{AlgorithmDefault, AlgorithmInsertion, AlgorithmMerge, AlgorithmQuick, AlgorithmStable}

// ParseAlgorithm parses an algorithm name, ignoring case and surrounding space.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Algorithms, a) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// String returns the algorithm name.
func (a Algorithm) String() string { return string(a) }

// Sorter sorts slices in place with a fixed comparer and configuration.
// The slice handed to a Sorter must not be touched by anyone else until
// the call returns.
type Sorter[T any] struct {
	comparer Comparer[T]
	cfg      Config
}

// NewSorter creates a Sorter. Zero fields of cfg take their default value.
func NewSorter[T any](c Comparer[T], cfg Config) *Sorter[T] {
	return &Sorter[T]{
		comparer: c,
		cfg:      cfg.withDefaults(),
	}
}

// Config returns the effective configuration.
func (s *Sorter[T]) Config() Config {
	return s.cfg
}

// Sort sorts xs with the configured algorithm.
func (s *Sorter[T]) Sort(xs []T) {
	s.SortWith(s.cfg.Algorithm, xs)
}

// SortWith sorts xs with the given algorithm. An unknown algorithm falls back to the default.
func (s *Sorter[T]) SortWith(alg Algorithm, xs []T) {
	switch alg {
	case AlgorithmInsertion:
		s.Insertion(xs)
	case AlgorithmMerge:
		s.Merge(xs)
	case AlgorithmStable:
		slices.SortStableFunc(xs, s.comparer.Func())
	default:
		s.Quick(xs)
	}
}

// Insertion sorts xs with insertion sort. It is stable and O(n²).
func (s *Sorter[T]) Insertion(xs []T) {
	s.InsertionRange(xs, 0, len(xs))
}

// InsertionRange insertion sorts xs[start:end].
func (s *Sorter[T]) InsertionRange(xs []T, start, end int) {
	for i := start + 1; i < end; i++ {
		x := xs[i]
		j := i
		// Only strictly smaller elements move past their predecessors.
		for ; j > start && s.comparer(x, xs[j-1]) == Less; j-- {
			xs[j] = xs[j-1]
		}
		xs[j] = x
	}
}

// Merge sorts xs with a bottom-up hybrid merge sort.
// It is stable and allocates one scratch buffer of len(xs).
func (s *Sorter[T]) Merge(xs []T) {
	n := len(xs)
	if n < s.cfg.InsertionCutoff {
		s.Insertion(xs)
		return
	}

	run := s.cfg.RunSize
	for start := 0; start < n; start += run {
		s.InsertionRange(xs, start, min(start+run, n))
	}

	// src always holds the runs of the current width; dst receives the merged pass.
	src, dst := xs, make([]T, n)
	for width := run; width < n; width *= 2 {
		for start := 0; start < n; start += 2 * width {
			mid := min(start+width, n)
			end := min(start+2*width, n)
			mergeRuns(src, dst, start, mid, end, s.comparer)
		}
		src, dst = dst, src
	}

	if &src[0] != &xs[0] {
		copy(xs, src)
	}
}

// Quick sorts xs with a hybrid quicksort. It is not stable.
func (s *Sorter[T]) Quick(xs []T) {
	s.quick(xs, 0, len(xs))
}

func (s *Sorter[T]) quick(xs []T, lo, hi int) {
	for hi-lo > s.cfg.InsertionCutoff {
		p := s.partition(xs, lo, hi)

		// Recurse into the smaller side and loop on the larger one to keep the stack shallow.
		if p-lo < hi-p-1 {
			s.quick(xs, lo, p)
			lo = p + 1
		} else {
			s.quick(xs, p+1, hi)
			hi = p
		}
	}
	s.InsertionRange(xs, lo, hi)
}

// partition uses the middle element of xs[lo:hi] as pivot and returns its final index.
func (s *Sorter[T]) partition(xs []T, lo, hi int) int {
	last := hi - 1
	mid := int(uint(lo+hi) >> 1)
	xs[mid], xs[last] = xs[last], xs[mid]
	pivot := xs[last]

	store := lo
	for i := lo; i < last; i++ {
		if s.comparer(xs[i], pivot) == Less {
			xs[i], xs[store] = xs[store], xs[i]
			store++
		}
	}
	xs[store], xs[last] = xs[last], xs[store]
	return store
}

// mergeRuns merges the sorted runs src[start:mid] and src[mid:end] into dst[start:end].
// On ties the element of the left run comes first.
func mergeRuns[T any](src, dst []T, start, mid, end int, c Comparer[T]) {
	i, j, k := start, mid, start
	for i < mid && j < end {
		switch r := c(src[i], src[j]); r {
		case Less, Same:
			dst[k] = src[i]
			i++
		case More:
			dst[k] = src[j]
			j++
		default:
			panic(&InvariantError{Op: "merge", Result: r})
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:end])
}

// InsertionSort sorts xs in place with insertion sort.
func InsertionSort[T any](xs []T, c Comparer[T]) {
	NewSorter(c, DefaultConfig()).Insertion(xs)
}

// MergeSort sorts xs in place with the stable hybrid merge sort.
func MergeSort[T any](xs []T, c Comparer[T]) {
	NewSorter(c, DefaultConfig()).Merge(xs)
}

// QuickSort sorts xs in place with the hybrid quicksort.
func QuickSort[T any](xs []T, c Comparer[T]) {
	NewSorter(c, DefaultConfig()).Quick(xs)
}

// Sort sorts xs in place with the default algorithm.
func Sort[T any](xs []T, c Comparer[T]) {
	NewSorter(c, DefaultConfig()).Sort(xs)
}

// SortOrdered sorts xs in place in natural order with the default algorithm.
func SortOrdered[T cmp.Ordered](xs []T) {
	Sort(xs, Natural[T]())
}
