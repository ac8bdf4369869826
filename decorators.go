package ordering

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Logged wraps a comparer and logs every comparison at debug level.
// If logger is nil, nothing is logged.
func Logged[T any](c Comparer[T], logger *zap.Logger) Comparer[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(a, b T) Comparison {
		r := c(a, b)
		if ce := logger.Check(zap.DebugLevel, "compare"); ce != nil {
			ce.Write(
				zap.Any("left", a),
				zap.Any("right", b),
				zap.Stringer("result", r),
			)
		}
		return r
	}
}

// Counted wraps a comparer and adds one to calls each time it is invoked.
// It is safe to share calls between comparers used concurrently.
func Counted[T any](c Comparer[T], calls *atomic.Int64) Comparer[T] {
	return func(a, b T) Comparison {
		calls.Add(1)
		return c(a, b)
	}
}
