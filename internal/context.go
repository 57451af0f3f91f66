package internal

// ContextKey identifies one Context instance for the lifetime of the
// runtime. Each call to NewContext mints a distinct key, even for two
// contexts carrying the same Go type, so they never collide.
type ContextKey = *struct{}

// NewContextKey mints a fresh identity for a Context instance.
func NewContextKey() ContextKey { return new(struct{}) }

// ProvideContext stores v against key in the current scope's own context
// map, shadowing (for descendants) whatever an ancestor scope provided
// under the same key.
func (r *Runtime) ProvideContext(key ContextKey, v any) {
	n := r.node(r.currentScope)
	if n.Owner == nil {
		return
	}
	if n.Owner.ctx == nil {
		n.Owner.ctx = make(map[ContextKey]any)
	}
	n.Owner.ctx[key] = v
}

// UseContext walks from the current scope up through parents, returning
// the nearest value provided under key.
func (r *Runtime) UseContext(key ContextKey) (any, bool) {
	for owner := r.currentScope; owner.Valid(); {
		n, ok := r.tryNode(owner)
		if !ok {
			return nil, false
		}
		if n.Owner != nil && n.Owner.ctx != nil {
			if v, found := n.Owner.ctx[key]; found {
				return v, true
			}
		}
		owner = n.Parent
	}
	return nil, false
}
