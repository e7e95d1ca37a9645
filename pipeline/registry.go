package pipeline

import (
	"sort"
	"sync"
)

// Registry provides named coder and windowing lookup for loader-driven
// pipeline construction.
type Registry struct {
	mu         sync.RWMutex
	coders     map[string]Coder
	windowings map[string]Windowing
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		coders:     make(map[string]Coder),
		windowings: make(map[string]Windowing),
	}
}

// RegisterCoder adds a coder to the registry.
func (r *Registry) RegisterCoder(c Coder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coders[c.Name()] = c
}

// RegisterWindowing adds a windowing strategy to the registry.
func (r *Registry) RegisterWindowing(w Windowing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windowings[w.Name()] = w
}

// Coder retrieves a coder by name.
func (r *Registry) Coder(name string) (Coder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.coders[name]
	return c, ok
}

// Windowing retrieves a windowing strategy by name.
func (r *Registry) Windowing(name string) (Windowing, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windowings[name]
	return w, ok
}

// Coders returns sorted names of all registered coders.
func (r *Registry) Coders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.coders))
	for name := range r.coders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Windowings returns sorted names of all registered windowing strategies.
func (r *Registry) Windowings() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.windowings))
	for name := range r.windowings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
