package keymap

// Resolver maps key strings, as produced by tea.KeyMsg.String, to actions.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string // in binding order, for hints
}

// NewResolver indexes bindings. A key claimed by two bindings resolves to the
// first one.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, taken := r.actions[key]; taken {
				continue
			}
			r.actions[key] = b.Action
			r.keys[b.Action] = append(r.keys[b.Action], key)
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys that resolve to action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Hint returns the display label of the first key bound to action.
func (r *Resolver) Hint(action Action) (string, bool) {
	keys := r.keys[action]
	if len(keys) == 0 {
		return "", false
	}
	return KeyLabel(keys[0]), true
}

// KeyLabel returns how a key is shown to the user.
func KeyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
