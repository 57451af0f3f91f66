package samara

import "github.com/wuzekang/samara/internal"

// Scope is a pure lifecycle container: it owns no value, only a position
// in the cleanup/disposal tree and a context map. Use it to group a batch
// of signals, computeds and effects so they can all be torn down together.
type Scope struct {
	key internal.Key
}

// NewScope creates a scope nested under whatever scope is current.
func NewScope() *Scope {
	return &Scope{key: internal.GetRuntime().NewScope()}
}

// Run executes fn with this scope installed as current: anything fn
// creates becomes this scope's child, and OnCleanup/OnDispose/OnError
// calls made directly inside fn attach to this scope.
func (s *Scope) Run(fn func()) {
	internal.GetRuntime().RunInScope(s.key, fn)
}

// Scoped wraps fn so that, whenever the result is eventually called, it
// runs as though called from inside s.Run — useful for a callback handed
// off to code (another goroutine, a library callback) that won't call it
// from within s.Run itself.
func (s *Scope) Scoped(fn func()) func() {
	r := internal.GetRuntime()
	return func() { r.RunInScope(s.key, fn) }
}

// Dispose tears down the scope and everything nested under it.
func (s *Scope) Dispose() {
	internal.GetRuntime().DisposeNode(s.key)
}

// Cleanup disposes everything created since this goroutine's runtime
// started, the global counterpart to (*Scope).Dispose for the implicit
// root scope every runtime begins with. After Cleanup, Count reports
// (1, 0): only the root remains.
func Cleanup() {
	internal.GetRuntime().Cleanup()
}

// Count reports the current arena occupancy as (nodes, links), used by
// tests asserting that disposal actually reclaims arena slots.
func Count() (nodes, links int) {
	return internal.GetRuntime().Counts()
}
