package internal

// propagateFrame resumes a subscriber list at the sibling that still needs
// visiting once the current descent into a Computed's own subscribers
// finishes.
type propagateFrame struct {
	link Key
}

// propagate is the breadth-like walk driven off a changed dep's subscriber
// list head. Every visited subscriber is classified into one of three
// outcomes, then — if the walk proceeds past it and it is itself a
// Computed with its own subscribers — the walk descends into that
// subscriber's own list, pushing a continuation so the sibling at the
// current level is not lost.
func (r *Runtime) propagate(startLink Key) {
	stack := r.propagateStack[:0]
	link := startLink

	for {
		for link.Valid() {
			l := r.link(link)
			subKey := l.Sub
			sub := r.node(subKey)

			proceed := r.classifyVisit(sub)

			if proceed && sub.Flags.Has(Watching) {
				r.notify(subKey)
			}

			if proceed && sub.Kind == KindComputed {
				if next := l.NextSub; next.Valid() {
					stack = append(stack, propagateFrame{link: next})
				}
				link = sub.SubsHead
				continue
			}

			link = l.NextSub
		}

		if len(stack) == 0 {
			break
		}
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		link = frame.link
	}

	r.propagateStack = stack[:0]
}

const blockedMask = RecursedCheck | Recursed | Dirty | Pending

// classifyVisit applies one of the three propagation outcomes to sub and
// reports whether the walk should continue downstream through it.
func (r *Runtime) classifyVisit(sub *Node) bool {
	switch {
	case sub.Flags&blockedMask == 0:
		sub.Flags.Set(Pending)
		return true
	case sub.Flags.Has(RecursedCheck) && !sub.Flags.Has(Dirty) && !sub.Flags.Has(Pending):
		sub.Flags.Set(Recursed | Pending)
		return true
	default:
		return false
	}
}

// shallowPropagate upgrades any subscriber in the list starting at
// startLink that is PENDING but not yet DIRTY, notifying it if it is
// Watching. Used once a dep is confirmed to have actually changed, to push
// that certainty one level down without a full recursive walk.
func (r *Runtime) shallowPropagate(startLink Key) {
	for link := startLink; link.Valid(); {
		l := r.link(link)
		sub := r.node(l.Sub)
		if sub.Flags.Has(Pending) && !sub.Flags.Has(Dirty) {
			sub.Flags.Clear(Pending)
			sub.Flags.Set(Dirty)
			if sub.Flags.Has(Watching) {
				r.notify(l.Sub)
			}
		}
		link = l.NextSub
	}
}
