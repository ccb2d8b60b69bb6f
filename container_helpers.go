package cradle

import (
	"fmt"
	"reflect"
)

// TypeOf returns the contract type token for T. Interface contracts yield
// the interface type itself, not a pointer to it.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register binds Contract to the given constructor with the given lifetime.
// The constructor's first return type must satisfy Contract; the check runs
// at registration time, so an incompatible binding never reaches resolution.
func Register[Contract any](c *Container, constructor any, lifetime Lifetime) error {
	if c == nil {
		return ErrContainerNil
	}
	return c.registerContract(TypeOf[Contract](), constructor, lifetime)
}

// RegisterSingleton binds Contract to the constructor with Singleton
// lifetime: the instance is constructed on first resolution and shared for
// the container's lifetime.
func RegisterSingleton[Contract any](c *Container, constructor any) error {
	return Register[Contract](c, constructor, Singleton)
}

// RegisterTransient binds Contract to the constructor with Transient
// lifetime: a new instance is constructed on every resolution.
func RegisterTransient[Contract any](c *Container, constructor any) error {
	return Register[Contract](c, constructor, Transient)
}

// RegisterInstance binds Contract to an already-constructed value. The value
// behaves as a resolved Singleton.
func RegisterInstance[Contract any](c *Container, instance Contract) error {
	if c == nil {
		return ErrContainerNil
	}
	return c.registerInstance(TypeOf[Contract](), instance)
}

// Resolve produces an instance satisfying contract T, recursively
// constructing its dependency graph.
func Resolve[T any](c *Container) (T, error) {
	var zero T

	if c == nil {
		return zero, ErrContainerNil
	}

	instance, err := c.ResolveType(TypeOf[T]())
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, TypeMismatchError{
			Expected: TypeOf[T](),
			Actual:   reflect.TypeOf(instance),
			Context:  "type assertion",
		}
	}

	return typed, nil
}

// MustResolve is like Resolve but panics on error. Intended for application
// composition roots where a missing binding is a fatal configuration error.
func MustResolve[T any](c *Container) T {
	instance, err := Resolve[T](c)
	if err != nil {
		panic(fmt.Sprintf("cradle: %v", err))
	}
	return instance
}

// IsRegistered reports whether a binding exists for contract T.
func IsRegistered[T any](c *Container) bool {
	if c == nil {
		return false
	}
	return c.IsRegisteredType(TypeOf[T]())
}
