package ordering

import "cmp"

// Comparer is a function type that compares two elements.
// c(a, b) reports a relative to b:
//   - Less if a sorts before b
//   - Same if neither dominates
//   - More if a sorts after b
//
// Comparers are immutable. Every combinator returns a new Comparer and
// leaves its inputs untouched.
type Comparer[T any] func(a, b T) Comparison

// Natural returns the comparer for the natural ordering of an ordered type.
// NaN sorts before every other float, as with cmp.Compare.
func Natural[T cmp.Ordered]() Comparer[T] {
	return func(a, b T) Comparison {
		return FromInt(cmp.Compare(a, b))
	}
}

// FromFunc adapts a conventional three-way comparison function.
func FromFunc[T any](fn func(a, b T) int) Comparer[T] {
	return func(a, b T) Comparison {
		return FromInt(fn(a, b))
	}
}

// FromLess adapts a strict less-than function.
func FromLess[T any](less func(a, b T) bool) Comparer[T] {
	return func(a, b T) Comparison {
		switch {
		case less(a, b):
			return Less
		case less(b, a):
			return More
		default:
			return Same
		}
	}
}

// Neutral returns a comparer that finds every pair Same.
// It is the starting point of a Then chain.
func Neutral[T any]() Comparer[T] {
	return func(T, T) Comparison {
		return Same
	}
}

// By creates a comparer that extracts a comparable key from elements
// and compares them using the natural ordering of the key type.
// This is useful for sorting by a specific field of a struct.
func By[T any, K cmp.Ordered](key func(T) K) Comparer[T] {
	return Snap(Natural[K](), key)
}

// ByDesc is By in descending order.
func ByDesc[T any, K cmp.Ordered](key func(T) K) Comparer[T] {
	return By(key).Invert()
}

// Snap derives a comparer for U by projecting both operands through lens
// and comparing the projections with c.
func Snap[U, T any](c Comparer[T], lens func(U) T) Comparer[U] {
	return func(a, b U) Comparison {
		return c(lens(a), lens(b))
	}
}

// Then appends a tie-break on the natural ordering of lens(x).
//
//	byDate := ordering.Then(ordering.Then(ordering.Then(
//		ordering.Neutral[Date](),
//		func(d Date) int { return d.Year }),
//		func(d Date) int { return d.Month }),
//		func(d Date) int { return d.Day })
func Then[T any, U cmp.Ordered](c Comparer[T], lens func(T) U) Comparer[T] {
	return c.OrElse(By(lens))
}

// ThenBy appends a tie-break on lens(x) using the comparer registered for U in r.
func ThenBy[T, U any](c Comparer[T], r *Registry, lens func(T) U) (Comparer[T], error) {
	next, err := Lookup[U](r)
	if err != nil {
		return nil, err
	}
	return c.OrElse(Snap(next, lens)), nil
}

// Chain combines multiple comparers into one.
// It applies each comparer in order until one returns Less or More.
// Comparers after the deciding one are never called.
func Chain[T any](comparers ...Comparer[T]) Comparer[T] {
	return func(a, b T) Comparison {
		for _, c := range comparers {
			if r := c(a, b); r != Same {
				return r
			}
		}
		return Same
	}
}

// Compare returns c(a, b).
func (c Comparer[T]) Compare(a, b T) Comparison {
	return c(a, b)
}

// Curried returns c in curried form. The first argument supplied is the
// left operand: c.Curried()(a)(b) == c(a, b).
func (c Comparer[T]) Curried() func(a T) func(b T) Comparison {
	return func(a T) func(b T) Comparison {
		return func(b T) Comparison {
			return c(a, b)
		}
	}
}

// Less reports whether a sorts before b.
func (c Comparer[T]) Less(a, b T) bool { return c(a, b) == Less }

// LessEq is defined as "not Greater", so Same satisfies it.
func (c Comparer[T]) LessEq(a, b T) bool { return c(a, b) != More }

// Greater reports whether a sorts after b.
func (c Comparer[T]) Greater(a, b T) bool { return c(a, b) == More }

// GreaterEq is defined as "not Less", so Same satisfies it.
func (c Comparer[T]) GreaterEq(a, b T) bool { return c(a, b) != Less }

// Equal reports whether c finds a and b Same.
func (c Comparer[T]) Equal(a, b T) bool { return c(a, b) == Same }

// NotEqual reports whether c finds a and b Less or More.
func (c Comparer[T]) NotEqual(a, b T) bool { return c(a, b) != Same }

// OrElse returns a comparer that applies c and falls through to other
// only when c reports Same.
func (c Comparer[T]) OrElse(other Comparer[T]) Comparer[T] {
	return func(a, b T) Comparison {
		if r := c(a, b); r != Same {
			return r
		}
		return other(a, b)
	}
}

// OrElseNot is OrElse with the tie-break in reverse order.
func (c Comparer[T]) OrElseNot(other Comparer[T]) Comparer[T] {
	return c.OrElse(other.Invert())
}

// Invert returns a new comparer that reverses the order of the original.
func (c Comparer[T]) Invert() Comparer[T] {
	return func(a, b T) Comparison {
		return c(a, b).Flip()
	}
}

// Func returns c as a function usable with slices.SortFunc and friends.
func (c Comparer[T]) Func() func(a, b T) int {
	return func(a, b T) int {
		return c(a, b).Int()
	}
}

// LessFunc returns c as a strict less-than function.
func (c Comparer[T]) LessFunc() func(a, b T) bool {
	return c.Less
}
