package ordering

import "fmt"

// Error is a string based error type that allows sentinel errors to be declared as constants.
//
//	const ErrSomething ordering.Error = "something went wrong"
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

const (
	// ErrNoComparer is returned when a Registry has no comparer for the requested type.
	ErrNoComparer Error = "no comparer registered"
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig Error = "invalid config"
	// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
	ErrUnknownAlgorithm Error = "unknown sort algorithm"
)

// InvariantError reports a comparer result that is not Less, Same or More.
// It is raised with panic: reaching it means the comparer is broken,
// and there is no meaningful way to continue the sort.
type InvariantError struct {
	Op     string
	Result Comparison
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ordering: %s: comparer returned %d, want -1, 0 or +1", e.Op, int8(e.Result))
}

func invalidComparison(c Comparison) *InvariantError {
	return &InvariantError{Op: "evaluate", Result: c}
}
