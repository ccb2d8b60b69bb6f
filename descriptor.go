package cradle

import (
	"fmt"
	"reflect"

	"github.com/cradle-di/cradle/internal/reflection"
)

// Descriptor binds a service contract to the constructor that produces it.
// Descriptors are owned by the container's registry: they are created at
// registration time and live until the binding is overwritten or the
// container is dropped. The only in-place mutation is populating the
// singleton instance slot on first resolution.
type Descriptor struct {
	// Type is the contract this descriptor satisfies.
	Type reflect.Type

	// Lifetime determines instance caching behavior.
	Lifetime Lifetime

	// Constructor is the reflected constructor function value.
	Constructor reflect.Value

	// ConstructorType is the type of the constructor function.
	ConstructorType reflect.Type

	// Dependencies are the constructor's parameter contracts, in
	// declaration order.
	Dependencies []reflect.Type

	// HasErrorReturn is true when the constructor returns (T, error).
	HasErrorReturn bool

	// IsInstance indicates this descriptor was registered with an
	// already-constructed value rather than a constructor.
	IsInstance bool

	// Singleton instance slot. Populated at most once, and only when
	// Lifetime == Singleton. Guarded by the container's resolution lock.
	instance    any
	hasInstance bool
}

// newDescriptor creates a descriptor for a constructor function bound to the
// given contract. A nil contract binds the constructor's own return type.
func newDescriptor(contract reflect.Type, constructor any, lifetime Lifetime, analyzer *reflection.Analyzer) (*Descriptor, error) {
	info, err := analyzer.Analyze(constructor)
	if err != nil {
		return nil, NoSuitableConstructorError{Constructor: constructor, Cause: err}
	}

	if contract == nil {
		contract = info.ReturnType
	} else if !info.ReturnType.AssignableTo(contract) {
		return nil, RegistrationError{
			ServiceType: contract,
			Operation:   "assert-contract",
			Cause:       fmt.Errorf("constructor returns %s, which does not satisfy %s", formatType(info.ReturnType), formatType(contract)),
		}
	}

	return &Descriptor{
		Type:            contract,
		Lifetime:        lifetime,
		Constructor:     info.Value,
		ConstructorType: info.Type,
		Dependencies:    info.Parameters,
		HasErrorReturn:  info.HasErrorReturn,
	}, nil
}

// newInstanceDescriptor creates a descriptor for an already-constructed
// value. Instance descriptors are Singletons whose slot is populated at
// registration time.
func newInstanceDescriptor(contract reflect.Type, instance any) (*Descriptor, error) {
	if instance == nil {
		return nil, RegistrationError{
			ServiceType: contract,
			Operation:   "register",
			Cause:       ErrInstanceNil,
		}
	}

	instanceType := reflect.TypeOf(instance)
	if contract == nil {
		contract = instanceType
	} else if !instanceType.AssignableTo(contract) {
		return nil, RegistrationError{
			ServiceType: contract,
			Operation:   "assert-contract",
			Cause:       fmt.Errorf("instance of type %s does not satisfy %s", formatType(instanceType), formatType(contract)),
		}
	}

	return &Descriptor{
		Type:        contract,
		Lifetime:    Singleton,
		IsInstance:  true,
		instance:    instance,
		hasInstance: true,
	}, nil
}

// CachedInstance returns the cached singleton instance, if one has been
// stored. It never reports an instance for Transient descriptors.
func (d *Descriptor) CachedInstance() (any, bool) {
	return d.instance, d.hasInstance
}

// storeInstance populates the singleton slot. The slot is written at most
// once; later calls are ignored.
func (d *Descriptor) storeInstance(instance any) {
	if d.hasInstance {
		return
	}
	d.instance = instance
	d.hasInstance = true
}

// Validate checks the descriptor's configuration.
func (d *Descriptor) Validate() error {
	if d.Type == nil {
		return RegistrationError{Operation: "validate", Cause: ErrContractNil}
	}

	if !d.Lifetime.IsValid() {
		return LifetimeError{Value: d.Lifetime}
	}

	if d.IsInstance {
		if !d.hasInstance {
			return RegistrationError{ServiceType: d.Type, Operation: "validate", Cause: ErrInstanceNil}
		}
		return nil
	}

	if !d.Constructor.IsValid() || d.ConstructorType == nil {
		return RegistrationError{ServiceType: d.Type, Operation: "validate", Cause: ErrConstructorNil}
	}

	return nil
}
