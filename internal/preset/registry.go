package preset

import (
	"fmt"
	"sort"
	"sync"
)

// Action is an invocable computation bound to one preset, typically a
// closure that computes and renders metrics for the current document.
type Action func(p Preset) error

// Registry maps preset names to registered actions. It is owned by the
// orchestration layer; the pipeline itself has no awareness of it. Actions
// are added and removed as presets are created and deleted.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
	store   *Store
}

// NewRegistry creates a registry backed by the given store.
func NewRegistry(store *Store) *Registry {
	return &Registry{
		actions: make(map[string]Action),
		store:   store,
	}
}

// Register binds an action to a preset name. The preset must exist in the
// backing store. Re-registering replaces the previous action.
func (r *Registry) Register(name string, action Action) error {
	if _, err := r.store.Get(name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = action
	return nil
}

// Deregister removes the action bound to a preset name.
func (r *Registry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.actions, name)
}

// Invoke runs the action registered for the named preset, passing it the
// current preset value from the store.
func (r *Registry) Invoke(name string) error {
	r.mu.RLock()
	action, ok := r.actions[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no action registered for preset %q", name)
	}
	p, err := r.store.Get(name)
	if err != nil {
		return err
	}
	return action(p)
}

// Names returns the registered preset names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
