package lint

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds all registered rules.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Rule
	byName map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule to the registry.
// If a rule with the same ID already exists, it is replaced.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.byID[rule.ID()]; ok {
		delete(r.byName, old.Name())
	}
	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// GetByID retrieves a rule by its ID only.
func (r *Registry) GetByID(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byID[id]
	return rule, ok
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Rules returns all registered rules sorted by ID.
// This order is the rule-execution order used to break sort ties.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byID))
	for _, rule := range r.byID {
		result = append(result, rule)
	}

	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
