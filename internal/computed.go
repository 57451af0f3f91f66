package internal

// NewComputed allocates a plain computed: fn receives the previous value
// (and whether one exists yet) and always propagates a fresh result to its
// subscribers, regardless of equality. Evaluation is lazy: nothing runs
// until the first read.
func (r *Runtime) NewComputed(fn func(prev any, hasPrev bool) any) Key {
	n := Node{
		Kind: KindComputed,
		Computed: &computedState{
			plainGetter: fn,
		},
	}
	key := r.nodes.Insert(n)
	r.attachChild(r.currentScope, key)
	return key
}

// NewMemo allocates a memoized computed: fn takes no argument, and the
// result is compared with equal (default ==) against the previous value
// to decide whether subscribers should be told anything changed.
func (r *Runtime) NewMemo(fn func() any, equal func(a, b any) bool) Key {
	n := Node{
		Kind: KindComputed,
		Computed: &computedState{
			isMemo:     true,
			equal:      equal,
			memoGetter: fn,
		},
	}
	key := r.nodes.Insert(n)
	r.attachChild(r.currentScope, key)
	return key
}

// ReadComputed brings the computed current (recomputing if Dirty, or if
// Pending and check-dirty confirms a change, or on first-ever access),
// tracks it against the current active subscriber, and returns its value.
func (r *Runtime) ReadComputed(key Key) any {
	n := r.node(key)
	if !n.Computed.hasValue || n.Flags.Has(Dirty) || n.Flags.Has(Pending) {
		r.ensureCurrent(key)
		n = r.node(key)
		if !n.Computed.hasValue {
			r.evaluateComputed(key)
		}
	}
	r.track(key)
	return r.node(key).Computed.value
}

// PeekComputed returns the current value, forcing evaluation if it has
// never run or is known dirty, but without tracking a dependency.
func (r *Runtime) PeekComputed(key Key) any {
	n := r.node(key)
	if !n.Computed.hasValue || n.Flags.Has(Dirty) || n.Flags.Has(Pending) {
		r.ensureCurrent(key)
		if !r.node(key).Computed.hasValue {
			r.evaluateComputed(key)
		}
	}
	return r.node(key).Computed.value
}

// evaluateComputed runs the computed's getter with itself installed as
// active_sub, resets its dep-list cursor for the pass, purges whatever
// wasn't re-confirmed, and reports whether the resulting value changed.
func (r *Runtime) evaluateComputed(key Key) bool {
	n := r.node(key)
	c := n.Computed

	r.cycle++
	n.Flags.Clear(Dirty | Pending | Recursed)
	n.Flags.Set(Mutable | RecursedCheck)
	n.DepsTail = Key{}

	var newValue any
	r.withActiveSub(key, func() {
		if c.isMemo {
			newValue = c.memoGetter()
		} else {
			newValue = c.plainGetter(c.value, c.hasValue)
		}
	})

	n.Flags.Clear(RecursedCheck)
	r.purgeDeps(key, false)

	changed := true
	if c.isMemo && c.hasValue {
		eq := c.equal
		if eq == nil {
			eq = defaultEqual
		}
		changed = !eq(c.value, newValue)
	}

	c.value = newValue
	c.hasValue = true

	// Mutable here just marks "this node is a Computed with a value", not
	// "currently evaluating" — §4.2 scopes Mutable to the run itself, but
	// nothing downstream keys off it outside of this run (dispatch goes by
	// Kind), so leaving it set between runs is harmless.
	wasRecursed := n.Flags.Has(Recursed)
	n.Flags = Mutable
	if wasRecursed {
		n.Flags.Set(Pending)
	}

	return changed
}
