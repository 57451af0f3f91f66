package internal

// NewSignal allocates a Signal node under the current scope and returns
// its key. equal may be nil, in which case writes compare with ==.
func (r *Runtime) NewSignal(initial any, equal func(a, b any) bool) Key {
	n := Node{
		Kind:  KindSignal,
		Flags: Mutable,
		Signal: &signalState{
			value: initial,
			equal: equal,
		},
	}
	key := r.nodes.Insert(n)
	r.attachChild(r.currentScope, key)
	return key
}

// ReadSignal tracks the signal against the current active subscriber and
// returns its current value. A signal's own value is always current; its
// Dirty bit, if set, only informs other nodes' check-dirty walks that it
// changed since they last looked.
func (r *Runtime) ReadSignal(key Key) any {
	r.track(key)
	return r.node(key).Signal.value
}

// PeekSignal returns the current value without tracking a dependency.
func (r *Runtime) PeekSignal(key Key) any {
	return r.node(key).Signal.value
}

// WriteSignal stores v, and if it differs from the current value (per the
// signal's equality function), marks the signal dirty and propagates to
// its subscribers, flushing immediately unless a batch is in progress. The
// store itself acquires a write borrow (§4.14), released before
// propagation so a watching effect flushed synchronously as a result of
// this write can freely read the signal it just observed changing.
func (r *Runtime) WriteSignal(key Key, v any) {
	n := r.node(key)
	s := n.Signal

	changed := false
	r.BorrowWrite(key, "Set", func() {
		eq := s.equal
		if eq == nil {
			eq = defaultEqual
		}
		if eq(s.value, v) {
			return
		}
		s.value = v
		n.Flags.Set(Mutable | Dirty)
		changed = true
	})
	if !changed {
		return
	}

	if n.SubsHead.Valid() {
		r.propagate(n.SubsHead)
	}

	if r.batchDepth == 0 {
		r.flush()
	}
}
