package internal

// NodeKind tags which payload a Node carries.
type NodeKind uint8

const (
	KindSignal NodeKind = iota
	KindComputed
	KindEffect
	KindScope
)

// Node is the arena-resident representation of every reactive entity:
// Signal, Computed, Effect and Scope all share this shape, distinguished by
// Kind and by which payload pointer is non-nil.
type Node struct {
	Kind  NodeKind
	Flags Flags

	// Dependency tracking (what this node depends on).
	DepsHead, DepsTail Key
	// Subscription tracking (what depends on this node).
	SubsHead, SubsTail Key

	// Parent/child tree anchors: every node sits in exactly one parent's
	// child list, regardless of kind.
	Parent      Key
	ChildHead   Key
	PrevSibling Key
	NextSibling Key

	Signal   *signalState
	Computed *computedState
	Effect   *effectState
	// Owner is non-nil for Scope and Effect kinds: both share the
	// cleanup/disposal pathway (§9).
	Owner *ownerState
}

type signalState struct {
	value any
	equal func(a, b any) bool
	borrow *borrowState
}

type computedState struct {
	// isMemo selects the memo equality-suppression strategy over the
	// always-propagates plain strategy.
	isMemo bool
	equal  func(a, b any) bool

	// plainGetter receives the previous value (and whether one exists)
	// when isMemo is false; memoGetter takes no argument when isMemo is
	// true. Exactly one is set.
	plainGetter func(prev any, hasPrev bool) any
	memoGetter  func() any

	value    any
	hasValue bool
}

type effectState struct {
	fn func() func()

	// cleanup is the func the body returned last run, invoked before the
	// next run or on disposal.
	cleanup func()
}

type ownerState struct {
	// cleanups fire in LIFO order, re-armed every effect run.
	cleanups []func()
	// onDispose fires once, also LIFO, at scope disposal. Distinct from
	// cleanups: OnCleanup re-arms across effect reruns, OnDispose does not.
	onDispose []func()
	onErrors  []func(any)

	ctx map[ContextKey]any
}

func newOwnerState() *ownerState {
	return &ownerState{}
}
