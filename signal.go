package samara

import "github.com/wuzekang/samara/internal"

// Options configures a Signal or Memo at construction. Use With* to
// build one.
type Options[T any] struct {
	equal func(a, b T) bool
}

// WithEqual overrides the equality function used to suppress a write (or,
// for a Memo, a recompute) that produces a value equal to the current one.
func WithEqual[T any](eq func(a, b T) bool) func(*Options[T]) {
	return func(o *Options[T]) { o.equal = eq }
}

func buildOptions[T any](opts []func(*Options[T])) Options[T] {
	var o Options[T]
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func wrapEqual[T any](eq func(a, b T) bool) func(a, b any) bool {
	if eq == nil {
		return nil
	}
	return func(a, b any) bool { return eq(as[T](a), as[T](b)) }
}

// Signal is a mutable reactive cell. The zero Signal is not usable; create
// one with NewSignal.
type Signal[T any] struct {
	key internal.Key
}

// NewSignal creates a signal holding initial, disposed along with
// whatever scope is current when NewSignal is called.
func NewSignal[T any](initial T, opts ...func(*Options[T])) *Signal[T] {
	o := buildOptions(opts)
	r := internal.GetRuntime()
	return &Signal[T]{key: r.NewSignal(initial, wrapEqual(o.equal))}
}

// Get returns the current value, tracking a dependency on it if called
// while something is being evaluated.
func (s *Signal[T]) Get() T {
	var v T
	r := internal.GetRuntime()
	r.BorrowRead(s.key, "Get", func() { v = as[T](r.ReadSignal(s.key)) })
	return v
}

// Peek returns the current value without tracking a dependency.
func (s *Signal[T]) Peek() T {
	var v T
	r := internal.GetRuntime()
	r.BorrowRead(s.key, "Peek", func() { v = as[T](r.PeekSignal(s.key)) })
	return v
}

// Read acquires a read borrow on s, tracking a dependency as Get does, and
// runs fn with the current value — the Go rendition of the guard the
// original returns, scoped to fn's lifetime rather than a drop. Calling
// Set/Update/Write on s from inside fn panics with a *BorrowError.
func (s *Signal[T]) Read(fn func(T)) {
	r := internal.GetRuntime()
	r.BorrowRead(s.key, "Read", func() { fn(as[T](r.ReadSignal(s.key))) })
}

// Write acquires an exclusive borrow on s for the duration of fn, which
// receives the current value and returns the value to store; the borrow
// releases before the resulting write propagates, so an effect that reads
// s as a consequence of this write (directly, or via a watching ancestor
// flushed synchronously underneath it) never contends with it. Reading or
// writing s again from inside fn panics with a *BorrowError.
func (s *Signal[T]) Write(fn func(T) T) {
	r := internal.GetRuntime()
	var next T
	r.BorrowWrite(s.key, "Write", func() {
		next = fn(as[T](r.PeekSignal(s.key)))
	})
	r.WriteSignal(s.key, next)
}

// Set stores v, propagating to subscribers if it differs from the current
// value.
func (s *Signal[T]) Set(v T) {
	internal.GetRuntime().WriteSignal(s.key, v)
}

// Update reads the current value, applies fn, and stores the result —
// the guard-scoped form is Write; Update is its value-returning shorthand.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Write(fn)
}

// ReadOnly returns a view of s that can be read but not written, useful
// for exposing a signal's value without letting callers mutate it.
func (s *Signal[T]) ReadOnly() *ReadOnlySignal[T] {
	return &ReadOnlySignal[T]{s: s}
}

// ReadOnlySignal exposes Get/Peek but not Set/Update.
type ReadOnlySignal[T any] struct {
	s *Signal[T]
}

func (r *ReadOnlySignal[T]) Get() T  { return r.s.Get() }
func (r *ReadOnlySignal[T]) Peek() T { return r.s.Peek() }
