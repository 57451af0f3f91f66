package samara

import "github.com/wuzekang/samara/internal"

// Effect is a side-effecting observer, run once at creation and again
// whenever one of its dependencies changes. Its body may return a cleanup
// func, run before the next rerun and at disposal.
type Effect struct {
	key internal.Key
}

// NewEffect creates and immediately runs an effect under the current
// scope, disposed along with it.
func NewEffect(fn func() func()) *Effect {
	return &Effect{key: internal.GetRuntime().NewEffect(fn)}
}

// Dispose tears down the effect: its last cleanup runs, its own child
// scopes are disposed, and it is detached from the graph.
func (e *Effect) Dispose() {
	internal.GetRuntime().DisposeNode(e.key)
}
