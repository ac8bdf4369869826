package ordering

import "container/heap"

// Merge merges two sorted slices into a new sorted slice.
// Equal elements of a come before those of b. Neither input is modified.
func Merge[T any](a, b []T, c Comparer[T]) []T {
	n := len(a) + len(b)
	src := make([]T, 0, n)
	src = append(src, a...)
	src = append(src, b...)

	dst := make([]T, n)
	mergeRuns(src, dst, 0, len(a), n, c)
	return dst
}

// MergeAll merges any number of sorted slices into a new sorted slice
// using a heap based multi-way merge. Equal elements keep the order of
// the slices they come from.
func MergeAll[T any](seqs [][]T, c Comparer[T]) []T {
	total := 0
	for _, seq := range seqs {
		total += len(seq)
	}
	result := make([]T, 0, total)

	// Initialize the heap with the head of each non-empty slice
	h := &mergeHeap[T]{
		items:    make([]mergeHeapItem[T], 0, len(seqs)),
		comparer: c,
	}
	for i, seq := range seqs {
		if len(seq) > 0 {
			h.items = append(h.items, mergeHeapItem[T]{item: seq[0], seqIndex: i})
		}
	}
	heap.Init(h)

	for h.Len() > 0 {
		head := heap.Pop(h).(mergeHeapItem[T])
		result = append(result, head.item)

		// Push the next item from the same slice if available
		if next := head.itemIndex + 1; next < len(seqs[head.seqIndex]) {
			heap.Push(h, mergeHeapItem[T]{
				item:      seqs[head.seqIndex][next],
				seqIndex:  head.seqIndex,
				itemIndex: next,
			})
		}
	}

	return result
}

// Verify reports whether every adjacent pair of seq is in order under c.
func Verify[T any](seq []T, c Comparer[T]) bool {
	for i := 1; i < len(seq); i++ {
		if !c.LessEq(seq[i-1], seq[i]) {
			return false
		}
	}
	return true
}

// mergeHeapItem represents an item in the priority queue for MergeAll.
type mergeHeapItem[T any] struct {
	item      T
	seqIndex  int
	itemIndex int
}

// mergeHeap implements heap.Interface for multi-way merge.
type mergeHeap[T any] struct {
	items    []mergeHeapItem[T]
	comparer Comparer[T]
}

func (h *mergeHeap[T]) Len() int { return len(h.items) }

func (h *mergeHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	switch r := h.comparer(a.item, b.item); r {
	case Less:
		return true
	case More:
		return false
	case Same:
		return a.seqIndex < b.seqIndex
	default:
		panic(&InvariantError{Op: "merge", Result: r})
	}
}

func (h *mergeHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *mergeHeap[T]) Push(x any) {
	h.items = append(h.items, x.(mergeHeapItem[T]))
}

func (h *mergeHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[0 : n-1]
	return item
}
