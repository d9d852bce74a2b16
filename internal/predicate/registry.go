package predicate

import (
	"os"
	"sync"
)

// Registry holds an ordered set of predicates evaluated as an implicit AND:
// the first non-Accept decision short-circuits the rest. Order is the order
// predicates were registered in, since Go maps (unlike the registry this was
// modeled on) don't preserve insertion order on their own.
type Registry struct {
	mu         sync.RWMutex
	names      []string
	predicates map[string]Predicate
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{predicates: make(map[string]Predicate)}
}

// Register adds or replaces a named predicate. Re-registering an existing
// name keeps its original position in evaluation order.
func (r *Registry) Register(name string, p Predicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.predicates[name]; !exists {
		r.names = append(r.names, name)
	}
	r.predicates[name] = p
}

// Remove drops a named predicate, if present.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.predicates[name]; !exists {
		return
	}
	delete(r.predicates, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
}

// Get returns the named predicate and whether it exists.
func (r *Registry) Get(name string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.predicates[name]
	return p, ok
}

// Len returns the number of registered predicates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Evaluate runs every registered predicate in registration order and
// short-circuits on the first non-Accept decision. An empty registry always
// Accepts.
func (r *Registry) Evaluate(path string, info os.FileInfo) Decision {
	r.mu.RLock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	preds := r.predicates
	r.mu.RUnlock()

	for _, name := range names {
		if d := preds[name].Evaluate(path, info); d != Accept {
			return d
		}
	}
	return Accept
}
