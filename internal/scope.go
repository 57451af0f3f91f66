package internal

// attachChild inserts child as the new head of parent's child list. Every
// node, regardless of kind, lives in exactly one parent's child list.
func (r *Runtime) attachChild(parent, child Key) {
	p := r.node(parent)
	c := r.node(child)

	c.Parent = parent
	c.PrevSibling = Key{}
	c.NextSibling = p.ChildHead
	if p.ChildHead.Valid() {
		r.node(p.ChildHead).PrevSibling = child
	}
	p.ChildHead = child
}

// detachFromParent removes child from its parent's child list, if any.
func (r *Runtime) detachFromParent(child Key) {
	c := r.node(child)
	if !c.Parent.Valid() {
		return
	}

	if c.PrevSibling.Valid() {
		r.node(c.PrevSibling).NextSibling = c.NextSibling
	} else if p, ok := r.tryNode(c.Parent); ok {
		p.ChildHead = c.NextSibling
	}
	if c.NextSibling.Valid() {
		r.node(c.NextSibling).PrevSibling = c.PrevSibling
	}

	c.Parent, c.PrevSibling, c.NextSibling = Key{}, Key{}, Key{}
}

// DisposeNode is disposeScope exposed for handles outside this package
// (Effect.Dispose, Scope.Dispose) to call directly by key.
func (r *Runtime) DisposeNode(key Key) { r.disposeScope(key) }

// NewScope allocates a pure container node under the current scope.
func (r *Runtime) NewScope() Key {
	n := Node{Kind: KindScope, Owner: newOwnerState()}
	key := r.nodes.Insert(n)
	r.attachChild(r.currentScope, key)
	return key
}

// CurrentScope is the owner that OnCleanup/OnDispose/context writes
// currently target.
func (r *Runtime) CurrentScope() Key { return r.currentScope }

// RunInScope installs key as current_scope for the duration of fn,
// restoring the previous scope afterward, including across a panic.
func (r *Runtime) RunInScope(key Key, fn func()) {
	prev := r.currentScope
	r.currentScope = key
	defer func() { r.currentScope = prev }()
	fn()
}

// Scoped returns a function wrapping fn, capturing the scope current at
// the moment Scoped itself is called rather than at call time of the
// returned function: a closure that can be handed to another goroutine or
// callback and still runs under the scope that created it.
func (r *Runtime) Scoped(fn func()) func() {
	captured := r.currentScope
	return func() {
		r.RunInScope(captured, fn)
	}
}

func (r *Runtime) OnCleanup(fn func()) {
	n, ok := r.tryNode(r.currentScope)
	if !ok || n.Owner == nil {
		return
	}
	n.Owner.cleanups = append(n.Owner.cleanups, fn)
}

func (r *Runtime) OnDispose(fn func()) {
	n, ok := r.tryNode(r.currentScope)
	if !ok || n.Owner == nil {
		return
	}
	n.Owner.onDispose = append(n.Owner.onDispose, fn)
}

func (r *Runtime) OnError(fn func(any)) {
	n, ok := r.tryNode(r.currentScope)
	if !ok || n.Owner == nil {
		return
	}
	n.Owner.onErrors = append(n.Owner.onErrors, fn)
}

// catchError walks from the scope that panicked up the owner chain,
// handing the recovered value to the first scope with a catcher. If none
// catches it, it is re-panicked for the caller of Run/flush to observe.
func (r *Runtime) catchError(start Key, recovered any) {
	for key := start; key.Valid(); {
		n, ok := r.tryNode(key)
		if !ok {
			break
		}
		if n.Owner != nil && len(n.Owner.onErrors) > 0 {
			for _, catch := range n.Owner.onErrors {
				catch(recovered)
			}
			return
		}
		key = n.Parent
	}
	panic(recovered)
}

// cleanupOwner runs key's accumulated OnCleanup callbacks in LIFO order
// and clears the list, ready to be re-armed by the next effect run.
func (r *Runtime) cleanupOwner(key Key) {
	n, ok := r.tryNode(key)
	if !ok || n.Owner == nil {
		return
	}
	cleanups := n.Owner.cleanups
	n.Owner.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// purgeScope recursively disposes every child of key, leaving key itself
// alive. Used to wipe the transient child tree an effect's body created on
// its previous run before that body runs again.
//
// Always disposes key's current ChildHead rather than walking a captured
// chain of NextSibling pointers: disposing one child can itself collect a
// sibling not yet visited (e.g. a Memo that loses its last subscriber when
// an Effect ahead of it in the list is torn down), which would leave a
// stale sibling key for a later r.node() call to panic on. Re-reading
// ChildHead each pass always sees the live list, which disposeScope's own
// detachFromParent keeps correct as children are removed.
func (r *Runtime) purgeScope(key Key) {
	for {
		n, ok := r.tryNode(key)
		if !ok || !n.ChildHead.Valid() {
			return
		}
		r.disposeScope(n.ChildHead)
	}
}

// disposeScope is the terminal teardown of a single node: its children are
// purged (recursively disposed) first, then its own cleanups run, its
// dependency and subscription links are severed, its OnDispose callbacks
// fire in LIFO order, and it is removed from both the tree and the arena.
func (r *Runtime) disposeScope(key Key) {
	n, ok := r.tryNode(key)
	if !ok {
		return
	}

	r.purgeScope(key)
	r.cleanupOwner(key)

	if n.Kind == KindEffect && n.Effect.cleanup != nil {
		cleanup := n.Effect.cleanup
		n.Effect.cleanup = nil
		cleanup()
	}

	if n.Owner != nil {
		onDispose := n.Owner.onDispose
		n.Owner.onDispose = nil
		for i := len(onDispose) - 1; i >= 0; i-- {
			onDispose[i]()
		}
	}

	r.purgeDeps(key, true)
	for link := n.SubsHead; link.Valid(); {
		next := r.link(link).NextSub
		r.unlink(link)
		link = next
	}

	r.detachFromParent(key)
	r.nodes.Remove(key)
}
