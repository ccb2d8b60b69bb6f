package cradle

import (
	"reflect"
	"sync"
)

// serviceRegistry holds the contract to descriptor bindings. It has no
// resolution logic of its own.
type serviceRegistry struct {
	mu          sync.RWMutex
	descriptors map[reflect.Type]*Descriptor
}

func newServiceRegistry() *serviceRegistry {
	return &serviceRegistry{
		descriptors: make(map[reflect.Type]*Descriptor),
	}
}

// register stores the descriptor under its contract type. The last
// registration for a contract wins; any previously cached singleton goes
// away with its descriptor.
func (r *serviceRegistry) register(d *Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[d.Type] = d
}

// lookup is a pure read of the binding for a contract.
func (r *serviceRegistry) lookup(contract reflect.Type) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[contract]
	return d, ok
}

// contracts returns a snapshot of every registered contract type. Used for
// suggestions in resolution error messages.
func (r *serviceRegistry) contracts() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reflect.Type, 0, len(r.descriptors))
	for t := range r.descriptors {
		out = append(out, t)
	}
	return out
}

// count returns the number of registered contracts.
func (r *serviceRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}
