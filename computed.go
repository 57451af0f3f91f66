package samara

import "github.com/wuzekang/samara/internal"

// Computed is a derived value recomputed lazily from its dependencies. It
// always propagates a fresh result downstream on recompute, regardless of
// whether the value is equal to the previous one; for equality-suppressed
// derivations use Memo instead.
type Computed[T any] struct {
	key internal.Key
}

// NewComputed derives a value from fn, which receives the previous value
// and whether one has ever been produced (false on the very first run).
// Nothing runs until the first Get/Peek.
func NewComputed[T any](fn func(prev T, hasPrev bool) T) *Computed[T] {
	r := internal.GetRuntime()
	key := r.NewComputed(func(prev any, hasPrev bool) any {
		var p T
		if hasPrev {
			p = as[T](prev)
		}
		return fn(p, hasPrev)
	})
	return &Computed[T]{key: key}
}

func (c *Computed[T]) Get() T  { return as[T](internal.GetRuntime().ReadComputed(c.key)) }
func (c *Computed[T]) Peek() T { return as[T](internal.GetRuntime().PeekComputed(c.key)) }

// Track establishes a dependency on c for the currently active subscriber
// without returning its value. It brings c up to date first, exactly as
// Get does, so a stale or never-evaluated c is evaluated by this call.
func (c *Computed[T]) Track() {
	internal.GetRuntime().ReadComputed(c.key)
}

// Memo is a derived value that suppresses propagation when a recompute
// yields a value equal to the last one, per Options.equal (default ==).
type Memo[T any] struct {
	key internal.Key
}

// NewMemo derives a value from fn, comparing each recompute against the
// previous result to decide whether subscribers should see a change.
func NewMemo[T any](fn func() T, opts ...func(*Options[T])) *Memo[T] {
	o := buildOptions(opts)
	r := internal.GetRuntime()
	key := r.NewMemo(func() any { return fn() }, wrapEqual(o.equal))
	return &Memo[T]{key: key}
}

func (m *Memo[T]) Get() T  { return as[T](internal.GetRuntime().ReadComputed(m.key)) }
func (m *Memo[T]) Peek() T { return as[T](internal.GetRuntime().PeekComputed(m.key)) }
