package keymap

import (
	"slices"
	"strings"
)

// Resolver maps key strings to actions and back.
type Resolver struct {
	actions map[string]Action
	help    map[Action]help
}

type help struct {
	keys []string
	desc string
}

// NewResolver indexes bindings. A key bound twice resolves to the later
// binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		help:    make(map[Action]help),
	}
	for _, b := range bindings {
		h := r.help[b.Action]
		for _, key := range b.Keys {
			r.actions[key] = b.Action
			if !slices.Contains(h.keys, key) {
				h.keys = append(h.keys, key)
			}
		}
		h.desc = b.Description
		r.help[b.Action] = h
	}
	return r
}

// Resolve returns the action bound to key, or "" when there is none.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.help[action].keys
}

// Hint renders one line of help from the first key of each action:
// "space play/pause · s stop". Unbound actions are left out.
func (r *Resolver) Hint(actions ...Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		h, ok := r.help[a]
		if !ok || len(h.keys) == 0 {
			continue
		}
		parts = append(parts, keyName(h.keys[0])+" "+strings.ToLower(h.desc))
	}
	return strings.Join(parts, " · ")
}

func keyName(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
