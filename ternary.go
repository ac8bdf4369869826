package ordering

// Ternary is a Kleene three-valued truth value.
//
// It is a derived view of Comparison rather than its representation:
// Less maps to False, Same to Unknown and More to True. The mapping is
// order preserving, so Comparison.And and Comparison.Or agree with the
// Kleene conjunction and disjunction below.
type Ternary int8

// Truth values, ordered False < Unknown < True.
const (
	// False is the view of Less.
	False Ternary = -1
	// Unknown is the view of Same.
	Unknown Ternary = 0
	// True is the view of More.
	True Ternary = 1
)

// Known returns True or False for b.
func Known(b bool) Ternary {
	if b {
		return True
	}
	return False
}

// And is Kleene conjunction.
func (t Ternary) And(other Ternary) Ternary {
	return min(t, other)
}

// Or is Kleene disjunction.
func (t Ternary) Or(other Ternary) Ternary {
	return max(t, other)
}

// Not is Kleene negation; Unknown stays Unknown.
func (t Ternary) Not() Ternary {
	return -t
}

// Bool returns the truth value and whether it is known.
func (t Ternary) Bool() (value, ok bool) {
	return t == True, t != Unknown
}

func (t Ternary) String() string {
	switch t {
	case False:
		return "False"
	case True:
		return "True"
	default:
		return "Unknown"
	}
}

// Ternary converts c to its three-valued logic view.
func (c Comparison) Ternary() Ternary {
	return Ternary(c)
}

// FromTernary is the inverse of Comparison.Ternary.
func FromTernary(t Ternary) Comparison {
	return Comparison(t)
}
