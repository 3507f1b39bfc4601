package plugin

import (
	"fmt"
	"sort"
	"sync"
)

type entry struct {
	def     ActionDef
	handler Handler
}

// Registry maps action identifiers to their handlers.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]entry
}

// NewRegistry creates a new empty action registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]entry),
	}
}

// Register adds an action to the registry.
func (r *Registry) Register(def ActionDef, h Handler) error {
	if def.Name == "" {
		return fmt.Errorf("action name is required")
	}
	if h == nil {
		return fmt.Errorf("action %q: handler is nil", def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[def.Name]; exists {
		return fmt.Errorf("action %q already registered", def.Name)
	}
	r.actions[def.Name] = entry{def: def, handler: h}
	return nil
}

// Get returns the handler for an action identifier.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.actions[name]
	return e.handler, ok
}

// Def returns the metadata of an action.
func (r *Registry) Def(name string) (ActionDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.actions[name]
	return e.def, ok
}

// List returns the sorted identifiers of all registered actions.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defs returns the metadata of all registered actions, sorted by name.
func (r *Registry) Defs() []ActionDef {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]ActionDef, 0, len(names))
	for _, name := range names {
		defs = append(defs, r.actions[name].def)
	}
	return defs
}
