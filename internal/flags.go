package internal

// Flags is the compact per-node state bitset.
type Flags uint8

const (
	// Mutable marks a node that holds authoritative state (Signal), or a
	// Computed/Effect currently being re-evaluated.
	Mutable Flags = 1 << iota
	// Watching marks an effect eligible to be notified and flushed.
	Watching
	// RecursedCheck marks a node currently executing (on the call stack),
	// guarding against self-feedback during tracking.
	RecursedCheck
	// Recursed is set during propagation when a node already marked
	// pending is revisited, requesting a second pass.
	Recursed
	// Dirty marks a known-dirty node: skip check-dirty, recompute
	// unconditionally.
	Dirty
	// Pending marks a possibly-dirty node: run check-dirty before
	// deciding whether to recompute.
	Pending
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

func (f *Flags) Set(flag Flags) { *f |= flag }

func (f *Flags) Clear(flag Flags) { *f &^= flag }
