package ordering

import "iter"

// Optional holds a value that may be absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OptionalOf compares two optionals with c when both are present.
// If either side is absent the result is Same: absence neither sorts
// first nor last, it simply carries no ordering information.
func OptionalOf[T any](c Comparer[T]) Comparer[Optional[T]] {
	return func(a, b Optional[T]) Comparison {
		if !a.present || !b.present {
			return Same
		}
		return c(a.value, b.value)
	}
}

// PointerOf is OptionalOf for pointers, nil being absent.
func PointerOf[T any](c Comparer[T]) Comparer[*T] {
	return func(a, b *T) Comparison {
		if a == nil || b == nil {
			return Same
		}
		return c(*a, *b)
	}
}

// SliceOf compares two slices position by position up to the length of the
// shorter one. Earlier positions dominate later ones. When every compared
// position is Same the result is Same, whatever the lengths.
func SliceOf[T any](c Comparer[T]) Comparer[[]T] {
	return func(a, b []T) Comparison {
		n := min(len(a), len(b))
		for i := 0; i < n; i++ {
			if r := c(a[i], b[i]); r != Same {
				return r
			}
		}
		return Same
	}
}

// SeqOf is SliceOf for iterators. Both sequences are pulled in lockstep and
// abandoned as soon as a position differs or either one is exhausted.
func SeqOf[T any](c Comparer[T]) Comparer[iter.Seq[T]] {
	return func(a, b iter.Seq[T]) Comparison {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		for {
			x, okA := nextA()
			y, okB := nextB()
			if !okA || !okB {
				return Same
			}
			if r := c(x, y); r != Same {
				return r
			}
		}
	}
}
