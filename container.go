package cradle

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/cradle-di/cradle/internal/reflection"
)

// Container is an inversion-of-control container. It owns a registry of
// contract bindings and resolves fully-constructed object graphs from them.
//
// A Container is safe for concurrent use: registration is guarded by the
// registry's lock, and resolution is serialized by a container-level lock so
// a singleton's constructor runs at most once even when first resolved from
// multiple goroutines.
type Container struct {
	id       string
	registry *serviceRegistry
	analyzer *reflection.Analyzer

	// resolveMu serializes top-level resolutions. The recursive walk below
	// a resolution runs entirely under one acquisition.
	resolveMu sync.Mutex
}

// New creates an empty container. Each container owns its own registry, so
// independent containers stay isolated.
func New() *Container {
	return &Container{
		id:       uuid.NewString(),
		registry: newServiceRegistry(),
		analyzer: reflection.New(),
	}
}

// ID returns the container's unique identity.
func (c *Container) ID() string {
	return c.id
}

// String implements fmt.Stringer for debugging.
func (c *Container) String() string {
	return fmt.Sprintf("cradle.Container(%s, %d services)", c.id, c.registry.count())
}

// Register registers a constructor under the contract declared by its first
// return type. Registering a contract that is already registered overwrites
// the prior binding.
func (c *Container) Register(constructor any, lifetime Lifetime) error {
	return c.registerContract(nil, constructor, lifetime)
}

// RegisterSingleton registers a constructor with Singleton lifetime under
// the contract declared by its first return type.
func (c *Container) RegisterSingleton(constructor any) error {
	return c.registerContract(nil, constructor, Singleton)
}

// RegisterTransient registers a constructor with Transient lifetime under
// the contract declared by its first return type.
func (c *Container) RegisterTransient(constructor any) error {
	return c.registerContract(nil, constructor, Transient)
}

// registerContract builds and stores a descriptor binding contract to
// constructor. A nil contract binds the constructor's own return type.
func (c *Container) registerContract(contract reflect.Type, constructor any, lifetime Lifetime) error {
	if !lifetime.IsValid() {
		return RegistrationError{
			ServiceType: contract,
			Operation:   "register",
			Cause:       LifetimeError{Value: lifetime},
		}
	}

	d, err := newDescriptor(contract, constructor, lifetime, c.analyzer)
	if err != nil {
		return err
	}

	c.registry.register(d)
	return nil
}

// registerInstance stores an already-constructed value as a Singleton whose
// cached slot is populated up front.
func (c *Container) registerInstance(contract reflect.Type, instance any) error {
	d, err := newInstanceDescriptor(contract, instance)
	if err != nil {
		return err
	}

	c.registry.register(d)
	return nil
}

// ResolveType produces an instance satisfying the given contract type,
// recursively constructing its dependency graph. It is the non-generic core
// behind Resolve.
func (c *Container) ResolveType(contract reflect.Type) (any, error) {
	if contract == nil {
		return nil, UnregisteredServiceError{ServiceType: nil}
	}

	c.resolveMu.Lock()
	defer c.resolveMu.Unlock()

	return c.resolve(contract)
}

// IsRegisteredType reports whether a binding exists for the contract type.
func (c *Container) IsRegisteredType(contract reflect.Type) bool {
	_, ok := c.registry.lookup(contract)
	return ok
}

// Contracts returns a snapshot of every registered contract type.
func (c *Container) Contracts() []reflect.Type {
	return c.registry.contracts()
}
