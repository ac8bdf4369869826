package ordering

import (
	"fmt"
	"reflect"
	"sync"
	"time"
)

// Registry maps types to their default comparer.
//
// A Registry is an explicit value that callers own and pass around;
// there is no package level registry. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	comparers map[reflect.Type]any
}

// NewRegistry creates a Registry with the natural ordering registered for
// the built-in ordered types, bool (false before true) and time.Time.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	Register(r, Natural[int]())
	Register(r, Natural[int8]())
	Register(r, Natural[int16]())
	Register(r, Natural[int32]())
	Register(r, Natural[int64]())
	Register(r, Natural[uint]())
	Register(r, Natural[uint8]())
	Register(r, Natural[uint16]())
	Register(r, Natural[uint32]())
	Register(r, Natural[uint64]())
	Register(r, Natural[uintptr]())
	Register(r, Natural[float32]())
	Register(r, Natural[float64]())
	Register(r, Natural[string]())
	Register(r, Comparer[bool](func(a, b bool) Comparison {
		if a == b {
			return Same
		}
		return Different(!a)
	}))
	Register(r, Comparer[time.Time](func(a, b time.Time) Comparison {
		return FromInt(a.Compare(b))
	}))
	return r
}

// NewEmptyRegistry creates a Registry with nothing registered.
func NewEmptyRegistry() *Registry {
	return &Registry{comparers: make(map[reflect.Type]any)}
}

// Register makes c the default comparer for T in r, replacing any previous one.
func Register[T any](r *Registry, c Comparer[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comparers[reflect.TypeFor[T]()] = c
}

// Lookup returns the comparer registered for T.
func Lookup[T any](r *Registry) (Comparer[T], error) {
	typ := reflect.TypeFor[T]()

	r.mu.RLock()
	c, ok := r.comparers[typ]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoComparer, typ)
	}
	return c.(Comparer[T]), nil
}

// MustLookup is Lookup that panics when T has no comparer.
func MustLookup[T any](r *Registry) Comparer[T] {
	c, err := Lookup[T](r)
	if err != nil {
		panic(err)
	}
	return c
}
