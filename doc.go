// Package ordering provides composable three-valued comparers and a small
// family of in-place, stable and parallel sorting algorithms that consume them.
//
// A Comparer[T] returns a Comparison (Less, Same or More). Comparers for
// larger types are derived from comparers of their parts, by projection
// (Snap, By, Then), by priority (OrElse, Chain, RecordN) or by container
// (OptionalOf, SliceOf, SeqOf). A tie-break comparer runs only when every
// comparer before it reported Same.
//
// Sorter sorts slices in place with insertion sort, a hybrid merge sort or a
// hybrid quicksort. Sorted wraps a sequence with its comparer and produces
// sorted copies synchronously, in the background, or with a fixed two level
// fork/join.
package ordering

//go:generate go run gen_record.go -output zrecord.go
