package internal

// checkFrame resumes an ancestor level of the check-dirty walk once the
// descent into one of its Pending deps has resolved.
type checkFrame struct {
	link  Key
	sub   Key
	dirty bool
}

// checkDirty verifies whether a Pending (not yet Dirty) node is actually
// dirty, by walking its dep list and recursively resolving any dep that is
// itself only Pending. Only Mutable deps (Signals and evaluated Computeds)
// are updated or descended into; a nested Effect linked as a dep is
// skipped. Every intermediate level popped off the ascent stack
// that turns out dirty is brought current (update) and, if its value
// actually changed, shallow-propagated before the walk continues upward —
// and it is "changed", not merely "was recomputed", that gets carried to
// the level above, so a memo that recomputes to an equal value does not
// make its dependents look dirty. The root itself is never updated here:
// rootKey may be an Effect, which update has no case for and which the
// caller (runEffect) reruns unconditionally once it knows a dep changed.
// The final return value reports whether the root's subtree changed,
// leaving the root still Pending for the caller to resolve.
func (r *Runtime) checkDirty(rootKey Key) bool {
	stack := r.checkStack[:0]

	sub := rootKey
	link := r.node(sub).DepsHead
	dirty := false

	for {
		for link.Valid() {
			l := r.link(link)
			depKey := l.Dep
			dep := r.node(depKey)

			switch {
			case dep.Flags.Has(Mutable) && dep.Flags.Has(Dirty):
				if r.update(depKey) {
					if dep.SubsHead.Valid() {
						r.shallowPropagate(dep.SubsHead)
					}
					dirty = true
				}
				link = l.NextDep

			case dep.Flags.Has(Mutable) && dep.Flags.Has(Pending):
				stack = append(stack, checkFrame{link: l.NextDep, sub: sub, dirty: dirty})
				sub = depKey
				link = dep.DepsHead
				dirty = false

			default:
				link = l.NextDep
			}
		}

		switch {
		case sub == rootKey:
			if !dirty {
				r.node(sub).Flags.Clear(Pending)
			}
		case dirty:
			changed := r.update(sub)
			s := r.node(sub)
			if changed && s.SubsHead.Valid() {
				r.shallowPropagate(s.SubsHead)
			}
			dirty = changed
		default:
			r.node(sub).Flags.Clear(Pending)
		}

		if len(stack) == 0 {
			break
		}
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		levelDirty := dirty
		sub = frame.sub
		link = frame.link
		dirty = frame.dirty || levelDirty
	}

	r.checkStack = stack[:0]
	return dirty
}

// update brings a dep current and reports whether its observable value
// changed. A Signal is never out of date on its own account: Dirty on a
// Signal only records "changed since some check last looked," consumed
// and cleared here. A Computed recomputes.
func (r *Runtime) update(key Key) bool {
	n := r.node(key)
	switch n.Kind {
	case KindSignal:
		changed := n.Flags.Has(Dirty)
		n.Flags.Clear(Dirty | Pending)
		return changed
	case KindComputed:
		return r.evaluateComputed(key)
	default:
		panic(&InternalError{Detail: "update called on a node with no observable value"})
	}
}

// ensureCurrent is the read-path entry point: it resolves DIRTY directly,
// or runs checkDirty for PENDING, leaving the node ready to be read from
// its cached value in either case. checkDirty never updates its root (it
// may be an Effect, which has no observable value), so when the node
// queried here is Pending and turns out dirty, ensureCurrent performs the
// actual update itself.
func (r *Runtime) ensureCurrent(key Key) {
	n := r.node(key)
	if n.Flags.Has(Dirty) {
		changed := r.update(key)
		if changed && n.SubsHead.Valid() {
			r.shallowPropagate(n.SubsHead)
		}
		return
	}
	if n.Flags.Has(Pending) && r.checkDirty(key) {
		changed := r.update(key)
		n = r.node(key)
		if changed && n.SubsHead.Valid() {
			r.shallowPropagate(n.SubsHead)
		}
	}
}
