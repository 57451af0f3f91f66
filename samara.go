// Package samara is a fine-grained reactive runtime: mutable cells
// (Signal), memoized derivations (Computed), and side-effecting observers
// (Effect), wired together by a push/pull dependency graph that settles
// glitch-free and without duplicate re-evaluation.
package samara

import "github.com/wuzekang/samara/internal"

// as converts an any produced by the internal package back to its static
// Go type. A nil interface converts to the zero value of T.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// Batch defers the settle pass until fn returns, so that several signal
// writes collapse into a single round of effect re-runs instead of one
// per write. Nested Batch calls just extend the outermost deferral.
func Batch(fn func()) {
	internal.GetRuntime().Batch(fn)
}

// Untrack runs fn without attaching any dependency to whatever is
// currently being tracked, and returns fn's result.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers fn to run before the current effect's next run, or
// when the current scope is disposed, whichever comes first.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

// OnDispose registers fn to run once, when the current scope is disposed.
// Unlike OnCleanup it is never re-armed by an effect rerunning.
func OnDispose(fn func()) {
	internal.GetRuntime().OnDispose(fn)
}

// WithCapacity overrides the node/link arena pre-allocation for every
// runtime created after the call, on any goroutine (a goroutine's runtime
// is created on its first call into this package). A goroutine that
// already has a live runtime is not affected; it is a startup-time tuning
// knob, not a way to resize an arena already in use.
func WithCapacity(n int) {
	internal.SetInitialCapacity(n)
}

// OnError registers fn on the current scope to receive any panic raised
// inside an effect body running under it: the scope itself when it is an
// effect, or a nested scope or effect with no catcher of its own. A panic
// raised directly inside a Scope.Run body, outside any effect, is not
// caught. If no scope up the chain has a catcher, the panic propagates to
// whatever called Set, Batch, or the flush that triggered it.
func OnError(fn func(any)) {
	internal.GetRuntime().OnError(fn)
}
