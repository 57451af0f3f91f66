package samara

import "github.com/wuzekang/samara/internal"

// Trigger runs f, tracking whatever Signals and Computeds it reads exactly
// as an Effect would, then immediately forces every other subscriber of
// each of them to re-check as though that dependency had just changed —
// without f's own tracking surviving past this call. Use it to fan a
// manual invalidation out through the graph without maintaining a real
// Signal to back it (e.g. telling existing observers of some externally
// mutated value that they're stale). Calling Trigger with an f that reads
// nothing is a no-op, even inside a Batch.
func Trigger(f func()) {
	internal.GetRuntime().Trigger(f)
}
