package samara

import "github.com/wuzekang/samara/internal"

// Context carries a value down through nested scopes: a descendant scope
// that doesn't provide its own sees the nearest ancestor's value.
type Context[T any] struct {
	key     internal.ContextKey
	initial T
}

// NewContext creates a context whose value defaults to initial wherever
// nothing has called Provide.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{key: internal.NewContextKey(), initial: initial}
}

// Provide sets v for c in the current scope, visible to it and its
// descendants until shadowed by a nested Provide.
func (c *Context[T]) Provide(v T) {
	internal.GetRuntime().ProvideContext(c.key, v)
}

// Use returns the nearest ancestor-provided value, or initial if none was
// ever provided.
func (c *Context[T]) Use() T {
	if v, ok := internal.GetRuntime().UseContext(c.key); ok {
		return as[T](v)
	}
	return c.initial
}
