// Package samara is a fine-grained, push-pull reactive runtime: mutable
// cells (Signal), memoized derivations (Computed / Memo) and
// side-effecting observers (Effect) wired together by a dependency graph
// that settles glitch-free, without duplicate re-evaluation.
//
// # Core types
//
// Signal[T] holds a value and notifies whatever reads it inside a
// Computed or Effect.
//
// Computed[T] derives a value from other signals/computeds and
// recomputes lazily, only when read after a dependency changed; it
// always propagates a fresh result on recompute.
//
// Memo[T] is a Computed whose recompute is suppressed from propagating
// when it produces a value equal to the last one.
//
// Effect reruns its body (and any cleanup it returned) whenever a
// dependency changes, without needing to be read by anything else.
//
// Scope groups a set of nodes for lifecycle purposes: disposing it
// disposes everything created inside it. Context threads a value down
// through nested scopes. Batch coalesces multiple signal writes into a
// single flush so observers see one consistent update instead of one per
// write.
//
// # Example usage
//
//	count := samara.NewSignal(0)
//	double := samara.NewMemo(func() int { return count.Get() * 2 })
//
//	samara.NewEffect(func() func() {
//	    fmt.Println("double is", double.Get())
//	    return nil
//	})
//
//	samara.Batch(func() {
//	    count.Set(1)
//	    count.Set(2)
//	}) // double is 4 — printed once, for the settled value
//
// # Scopes and cleanup
//
//	scope := samara.NewScope()
//	scope.Run(func() {
//	    samara.NewEffect(func() func() {
//	        conn := dial()
//	        return func() { conn.Close() } // runs on rerun and on dispose
//	    })
//	})
//	scope.Dispose() // tears down the effect and its last cleanup
//
// # Concurrency
//
// The runtime is confined to the goroutine that created it: each
// goroutine that calls into samara gets its own independent graph, keyed
// internally by goroutine id. Signals, Computeds and Scopes are handles
// into that per-goroutine graph and are not meant to be read or written
// concurrently from a different goroutine than the one that created them;
// see the async subpackage for carrying reactive context across a
// cooperative suspension point on the same goroutine.
package samara
