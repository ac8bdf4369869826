package ordering

import "fmt"

// Comparison is the three-valued result of comparing a left operand against a right operand.
//   - Less: the left operand sorts before the right operand
//   - Same: the comparison carries no ordering information
//   - More: the left operand sorts after the right operand
//
// The numeric value of a Comparison is its conventional three-way result,
// so Less < Same < More holds for the underlying integers.
type Comparison int8

const (
	// Less reports that the left operand is smaller.
	Less Comparison = -1
	// Same reports that neither operand dominates.
	Same Comparison = 0
	// More reports that the left operand is greater.
	More Comparison = 1
)

// Different returns Less when isLess is true and More otherwise.
func Different(isLess bool) Comparison {
	if isLess {
		return Less
	}
	return More
}

// FromInt converts the result of a conventional three-way comparison
// function (negative, zero, positive) into a Comparison.
func FromInt(n int) Comparison {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return More
	default:
		return Same
	}
}

// Evaluate returns the tri-state view of c: ok is false for Same,
// otherwise isLess tells which side is smaller.
func (c Comparison) Evaluate() (isLess, ok bool) {
	switch c {
	case Less:
		return true, true
	case More:
		return false, true
	case Same:
		return false, false
	default:
		panic(invalidComparison(c))
	}
}

// Int returns -1, 0 or +1.
func (c Comparison) Int() int {
	return int(c)
}

// IsDifferent reports whether c is Less or More.
func (c Comparison) IsDifferent() bool {
	return c != Same
}

// And combines two evaluated comparisons, keeping the numerically smaller one.
func (c Comparison) And(other Comparison) Comparison {
	return min(c, other)
}

// Or combines two evaluated comparisons, keeping the numerically larger one.
func (c Comparison) Or(other Comparison) Comparison {
	return max(c, other)
}

// AndThen is the short-circuit form of And: other is only evaluated when c is not Less.
func (c Comparison) AndThen(other func() Comparison) Comparison {
	if c == Less {
		return c
	}
	return c.And(other())
}

// OrThen is the short-circuit form of Or: other is only evaluated when c is not More.
func (c Comparison) OrThen(other func() Comparison) Comparison {
	if c == More {
		return c
	}
	return c.Or(other())
}

// OrElse returns c when it is Less or More. Only a Same result evaluates other,
// so an expensive or side-effecting tie-break never runs once the order is known.
func (c Comparison) OrElse(other func() Comparison) Comparison {
	if c != Same {
		return c
	}
	return other()
}

// OrElseValue is OrElse for an already evaluated tie-break.
func (c Comparison) OrElseValue(other Comparison) Comparison {
	if c != Same {
		return c
	}
	return other
}

// Flip swaps Less and More. Same is left unchanged.
func (c Comparison) Flip() Comparison {
	return -c
}

func (c Comparison) String() string {
	switch c {
	case Less:
		return "Less"
	case Same:
		return "Same"
	case More:
		return "More"
	default:
		return fmt.Sprintf("Comparison(%d)", int8(c))
	}
}
