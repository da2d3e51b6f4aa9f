package cereal

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps record type names to their definitions. Registration is
// guarded by a mutex so type definition can happen from any goroutine;
// steady-state lookups take only a read lock and codec calls touch the
// registry not at all.
type Registry struct {
	mutex sync.RWMutex
	types map[string]*RecordType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*RecordType)}
}

// Register adds a record type. Registering a second type under the same
// name fails with ErrDuplicateType.
func (r *Registry) Register(rt *RecordType) error {
	if rt == nil {
		return fmt.Errorf("%w: nil record type", ErrUnknownType)
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.types[rt.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateType, rt.Name())
	}
	r.types[rt.Name()] = rt
	return nil
}

// Lookup returns the record type registered under name.
func (r *Registry) Lookup(name string) (*RecordType, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	rt, ok := r.types[name]
	return rt, ok
}

// MustLookup returns the record type or panics if it is not registered.
func (r *Registry) MustLookup(name string) *RecordType {
	rt, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("cereal: record type %q not registered", name))
	}
	return rt
}

// Count returns the number of registered record types.
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.types)
}

// Names returns all registered type names, sorted alphabetically.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes all registered record types.
func (r *Registry) Clear() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.types = make(map[string]*RecordType)
}

// Global registry

var globalRegistry = NewRegistry()

// RegisterType registers a record type in the process-wide registry.
func RegisterType(rt *RecordType) error {
	return globalRegistry.Register(rt)
}

// LookupType returns a record type from the process-wide registry.
func LookupType(name string) (*RecordType, bool) {
	return globalRegistry.Lookup(name)
}

// TypeNames returns all names in the process-wide registry, sorted.
func TypeNames() []string {
	return globalRegistry.Names()
}

// ClearRegistry empties the process-wide registry. Intended for tests.
func ClearRegistry() {
	globalRegistry.Clear()
}
