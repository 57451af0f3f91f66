package internal

// track attaches a link from depKey to the current active subscriber, if
// any, and if dependency tracking is currently enabled. active_sub is
// always either a Computed mid-evaluation or an Effect mid-run, both of
// which are always eligible subscribers, so no further walk is needed to
// find the right target.
func (r *Runtime) track(depKey Key) {
	if r.untracked || !r.activeSub.Valid() {
		return
	}
	r.attach(depKey, r.activeSub)
}

// withActiveSub runs fn with sub installed as the active subscriber,
// restoring the previous one (even across panics propagated by fn, since
// the defer still runs before the panic continues unwinding).
func (r *Runtime) withActiveSub(sub Key, fn func()) {
	prev := r.activeSub
	r.activeSub = sub
	defer func() { r.activeSub = prev }()
	fn()
}

// Untrack runs fn with dependency tracking disabled: any signal or
// computed read inside fn is not attached to whatever is currently active.
func (r *Runtime) Untrack(fn func()) {
	prev := r.untracked
	r.untracked = true
	defer func() { r.untracked = prev }()
	fn()
}

// TrackingSnapshot is the pair of coordinates that determine where a read
// attaches and what owns cleanups: the active subscriber and the current
// scope. A suspended task captures one so it can restore the same
// coordinates across every resumption.
type TrackingSnapshot struct {
	scope Key
	sub   Key
}

// Snapshot captures the runtime's current tracking coordinates.
func (r *Runtime) Snapshot() TrackingSnapshot {
	return TrackingSnapshot{scope: r.currentScope, sub: r.activeSub}
}

// RunWithSnapshot runs fn with snap installed as the current scope and
// active subscriber, restoring whatever was installed beforehand
// afterward, including across a panic.
func (r *Runtime) RunWithSnapshot(snap TrackingSnapshot, fn func()) {
	prevScope, prevSub := r.currentScope, r.activeSub
	r.currentScope, r.activeSub = snap.scope, snap.sub
	defer func() { r.currentScope, r.activeSub = prevScope, prevSub }()
	fn()
}
