package supply

import "sync"

// Registry holds the blueprints of every class that participates in hybrid
// construction, keyed by blueprint name.
//
// Registration happens at bootstrap (service providers, init wiring);
// Create only reads. The lock exists so a late Define racing steady-state
// creation is still safe, not because creation calls contend — each call
// works on its own argument frame.
type Registry struct {
	mu         sync.RWMutex
	blueprints map[string]*Blueprint
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{blueprints: make(map[string]*Blueprint)}
}

// Register adds a blueprint. Registering a second blueprint under the same
// name is a DuplicateBlueprintError — redefinition is a wiring mistake, not
// an override mechanism.
func (r *Registry) Register(b *Blueprint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.blueprints[b.name]; exists {
		return DuplicateBlueprintError{Name: b.name}
	}
	r.blueprints[b.name] = b
	return nil
}

// Define is shorthand for NewBlueprint + Register.
//
//	_, err := reg.Define("reports.service", NewReportService,
//	    supply.Supplied("secret"),
//	    supply.Resolved("reports.store"),
//	)
func (r *Registry) Define(name string, ctor any, slots ...Slot) (*Blueprint, error) {
	b, err := NewBlueprint(name, ctor, slots...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Lookup returns the blueprint registered under name.
func (r *Registry) Lookup(name string) (*Blueprint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.blueprints[name]
	return b, ok
}

// Defined returns true if a blueprint exists under name.
func (r *Registry) Defined(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns all registered blueprint names (for debugging).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.blueprints))
	for name := range r.blueprints {
		out = append(out, name)
	}
	return out
}
