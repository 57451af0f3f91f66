// Package async is the cooperative-suspension collaborator spec.md lists
// alongside the engine itself: a thin wrapper letting code that yields
// control mid-body (a poll-driven future, a callback-based I/O library)
// resume later as though it had never left the reactive call it started
// in. samara has no opinion on how the body actually suspends; it only
// needs to know where to reattach when it resumes.
package async

import "github.com/wuzekang/samara/internal"

// Task is a single captured point in the dependency-tracking state: the
// scope owning cleanups and the subscriber (if any) that reads should
// attach to. Like the rest of this engine (see the runtime's per-goroutine
// registry), a Task is only ever valid on the goroutine that created it —
// it captures a *internal.Runtime, not a value safe to hand to another
// goroutine.
type Task struct {
	runtime   *internal.Runtime
	snap      internal.TrackingSnapshot
	cancelled bool
}

// Capture snapshots the calling goroutine's current scope and active
// subscriber, and registers a cleanup on that scope so the task is marked
// cancelled the moment the scope is disposed — Poll becomes a no-op from
// that point on, rather than resuming into a scope that no longer exists.
// Call it at the point a body is about to suspend — e.g. the top of an
// Effect that kicks off a poll-driven operation and returns control to
// its caller before the operation resolves.
func Capture() *Task {
	r := internal.GetRuntime()
	t := &Task{runtime: r, snap: r.Snapshot()}
	r.OnDispose(func() { t.cancelled = true })
	return t
}

// Cancelled reports whether the scope captured by Capture has since been
// disposed.
func (t *Task) Cancelled() bool { return t.cancelled }

// Poll reinstates the captured scope and active subscriber for the
// duration of fn, so any Signal or Computed fn reads attaches exactly
// where it would have if the original body were still running
// synchronously, then restores whatever was current before Poll was
// called — even if fn panics. A no-op once the capturing scope has been
// disposed. Call it once per resumption, always from the same goroutine
// that called Capture.
func (t *Task) Poll(fn func()) {
	if t.cancelled {
		return
	}
	t.runtime.RunWithSnapshot(t.snap, fn)
}
