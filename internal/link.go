package internal

// Link is a directed dependency edge from a dep node to a sub(scriber)
// node, threaded simultaneously into the dep's subscriber list and the
// sub's dependency list.
type Link struct {
	Dep, Sub Key
	// Version is the cycle counter snapshot stamped at attach/refresh time.
	Version uint64

	PrevDep, NextDep Key
	PrevSub, NextSub Key
}

// attach implements link(dep, sub, version): three short-circuits before
// allocating a new Link.
func (r *Runtime) attach(depKey, subKey Key) {
	sub := r.node(subKey)
	dep := r.node(depKey)

	// (a) deps_tail already references this dep: nothing to do.
	if sub.DepsTail.Valid() && r.link(sub.DepsTail).Dep == depKey {
		return
	}

	// (b) the link just past deps_tail has the same dep: advance the
	// cursor and refresh its version stamp.
	if candidate := r.depAfterCursor(sub); candidate.Valid() {
		cl := r.link(candidate)
		if cl.Dep == depKey {
			cl.Version = r.cycle
			sub.DepsTail = candidate
			return
		}
	}

	// (c) the dep's own subs_tail already references this sub at this
	// version: skip, a link was already spliced in during this pass.
	if dep.SubsTail.Valid() {
		tl := r.link(dep.SubsTail)
		if tl.Sub == subKey && tl.Version == r.cycle {
			return
		}
	}

	linkKey := r.links.Insert(Link{Dep: depKey, Sub: subKey, Version: r.cycle})
	link := r.link(linkKey)
	r.insertDepLink(sub, linkKey, link)
	r.insertSubLink(dep, linkKey, link)
}

// depAfterCursor returns the link key immediately after sub's deps_tail
// cursor (the head of the list if the cursor was reset to none for this
// pass).
func (r *Runtime) depAfterCursor(sub *Node) Key {
	if sub.DepsTail.Valid() {
		return r.link(sub.DepsTail).NextDep
	}
	return sub.DepsHead
}

// insertDepLink splices link in immediately after sub's current deps_tail
// cursor, then advances the cursor to it. Anything that was already past
// the cursor is pushed further down the list, to be matched on a later
// access this pass or evicted by purgeDeps once the pass ends.
func (r *Runtime) insertDepLink(sub *Node, linkKey Key, link *Link) {
	if !sub.DepsTail.Valid() {
		if sub.DepsHead.Valid() {
			old := sub.DepsHead
			link.NextDep = old
			link.PrevDep = Key{}
			r.link(old).PrevDep = linkKey
			sub.DepsHead = linkKey
		} else {
			sub.DepsHead = linkKey
			link.PrevDep, link.NextDep = Key{}, Key{}
		}
		sub.DepsTail = linkKey
		return
	}

	tail := r.link(sub.DepsTail)
	next := tail.NextDep
	link.PrevDep = sub.DepsTail
	link.NextDep = next
	tail.NextDep = linkKey
	if next.Valid() {
		r.link(next).PrevDep = linkKey
	}
	sub.DepsTail = linkKey
}

// insertSubLink appends link at the physical end of dep's subscriber list.
// Unlike the dep list, the subscriber list carries no per-pass cursor.
func (r *Runtime) insertSubLink(dep *Node, linkKey Key, link *Link) {
	if !dep.SubsTail.Valid() {
		dep.SubsHead = linkKey
		dep.SubsTail = linkKey
		link.PrevSub, link.NextSub = Key{}, Key{}
		return
	}

	tail := dep.SubsTail
	link.PrevSub = tail
	link.NextSub = Key{}
	r.link(tail).NextSub = linkKey
	dep.SubsTail = linkKey
}

func (r *Runtime) removeDepLink(sub *Node, linkKey Key, link *Link) {
	if link.PrevDep.Valid() {
		r.link(link.PrevDep).NextDep = link.NextDep
	} else {
		sub.DepsHead = link.NextDep
	}
	if link.NextDep.Valid() {
		r.link(link.NextDep).PrevDep = link.PrevDep
	} else {
		sub.DepsTail = link.PrevDep
	}
	link.PrevDep, link.NextDep = Key{}, Key{}
}

func (r *Runtime) removeSubLink(dep *Node, linkKey Key, link *Link) {
	if link.PrevSub.Valid() {
		r.link(link.PrevSub).NextSub = link.NextSub
	} else {
		dep.SubsHead = link.NextSub
	}
	if link.NextSub.Valid() {
		r.link(link.NextSub).PrevSub = link.PrevSub
	} else {
		dep.SubsTail = link.PrevSub
	}
	link.PrevSub, link.NextSub = Key{}, Key{}
}

// unlink removes L, fixes the four neighbor pointers, updates both
// endpoints' head/tail anchors, and — if L was the dep's last subscriber —
// invokes unwatched(dep).
func (r *Runtime) unlink(linkKey Key) {
	link := r.link(linkKey)
	depKey, subKey := link.Dep, link.Sub
	sub := r.node(subKey)
	dep := r.node(depKey)

	r.removeDepLink(sub, linkKey, link)
	r.removeSubLink(dep, linkKey, link)
	r.links.Remove(linkKey)

	if !dep.SubsHead.Valid() {
		r.unwatched(depKey)
	}
}

// purgeDeps walks from just past deps_tail (or from the head if
// includeTail) through next_dep and unlinks each.
func (r *Runtime) purgeDeps(subKey Key, includeTail bool) {
	sub := r.node(subKey)

	var start Key
	switch {
	case includeTail:
		start = sub.DepsHead
	case sub.DepsTail.Valid():
		start = r.link(sub.DepsTail).NextDep
	default:
		start = sub.DepsHead
	}

	for link := start; link.Valid(); {
		next := r.link(link).NextDep
		r.unlink(link)
		link = next
	}
}

// unwatched demotes a dep that just lost its last subscriber: a
// Computed is fully purged and collected (disposed); any other node that
// still has a dep list of its own is marked dirty and has that list
// cleared, since nothing is pulling it anymore. Signals never carry a dep
// list, so for them this does nothing; an Effect created while another
// effect was running is linked to it as a dep and reaches this branch when
// that link is removed.
func (r *Runtime) unwatched(depKey Key) {
	dep, ok := r.tryNode(depKey)
	if !ok {
		return
	}

	if dep.Kind == KindComputed {
		r.purgeDeps(depKey, true)
		r.collectUnwatched(depKey)
		return
	}

	if dep.DepsHead.Valid() {
		dep.Flags.Set(Dirty)
		r.purgeDeps(depKey, true)
	}
}

// collectUnwatched removes an unreferenced Computed from the tree and the
// arena. It is never observed again, so no handle can dangle meaningfully
// — any copy of its key will simply read as disposed.
func (r *Runtime) collectUnwatched(key Key) {
	n, ok := r.tryNode(key)
	if !ok || n.Kind != KindComputed {
		return
	}
	r.detachFromParent(key)
	r.nodes.Remove(key)
}
