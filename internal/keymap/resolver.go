package keymap

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings. When two bindings share a
// key, the first one wins.
func NewResolver(bindings ...[]Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, group := range bindings {
		for _, b := range group {
			for _, key := range b.Keys {
				if _, taken := r.bindings[key]; !taken {
					r.bindings[key] = b.Action
				}
			}
			r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
		}
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// ForContexts builds a resolver from the bindings of the given contexts, in
// priority order.
func ForContexts(contexts ...string) *Resolver {
	groups := make([][]Binding, 0, len(contexts))
	for _, c := range contexts {
		groups = append(groups, ByContext(c))
	}
	return NewResolver(groups...)
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
