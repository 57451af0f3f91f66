package internal

// Trigger runs f with a throwaway WATCHING node installed as active_sub,
// so any Signal or Computed f reads attaches a link to it exactly as a
// real effect would. Once f returns, every dependency just collected is
// unlinked again; for each one that still has other subscribers left,
// propagate marks everything downstream for a re-check and its direct
// subscribers are marked dirty, as if that dependency's value had just
// changed — even though nothing about the dependency itself did.
// Flushes immediately unless a batch is already in progress. The
// throwaway node never persists: f leaves no trace in the graph once
// Trigger returns, only a cascade of re-checks on whatever it read.
func (r *Runtime) Trigger(f func()) {
	key := r.nodes.Insert(Node{Kind: KindEffect, Flags: Watching})
	r.withActiveSub(key, f)

	node := r.node(key)
	for link := node.DepsHead; link.Valid(); {
		l := r.link(link)
		depKey, next := l.Dep, l.NextDep
		r.unlink(link)
		if dep, ok := r.tryNode(depKey); ok && dep.SubsHead.Valid() {
			r.propagate(dep.SubsHead)
			r.shallowPropagate(dep.SubsHead)
		}
		link = next
	}

	if r.batchDepth == 0 {
		r.flush()
	}

	r.nodes.Remove(key)
}
