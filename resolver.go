package cradle

import "reflect"

// resolve produces a live instance satisfying the requested contract,
// recursively satisfying all of its constructor dependencies. The caller
// must hold the container's resolution lock.
//
// A missing binding anywhere in the chain aborts the entire resolution;
// there is no partial-graph fallback or default instance.
func (c *Container) resolve(contract reflect.Type) (any, error) {
	d, ok := c.registry.lookup(contract)
	if !ok {
		return nil, UnregisteredServiceError{
			ServiceType: contract,
			Available:   c.registry.contracts(),
		}
	}

	if d.Lifetime == Singleton {
		if instance, ok := d.CachedInstance(); ok {
			return instance, nil
		}
	}

	instance, err := c.construct(d)
	if err != nil {
		return nil, err
	}

	if d.Lifetime == Singleton {
		d.storeInstance(instance)
	}

	return instance, nil
}

// construct invokes the descriptor's constructor, resolving each parameter
// contract depth-first in declaration order, so leaves are constructed first
// and composed upward.
func (c *Container) construct(d *Descriptor) (any, error) {
	args := make([]reflect.Value, len(d.Dependencies))
	for i, dep := range d.Dependencies {
		resolved, err := c.resolve(dep)
		if err != nil {
			// Propagated unmodified so the error names the specific
			// missing contract, not the root.
			return nil, err
		}

		if resolved == nil {
			args[i] = reflect.Zero(dep)
		} else {
			args[i] = reflect.ValueOf(resolved)
		}
	}

	out := d.Constructor.Call(args)

	if d.HasErrorReturn && !out[1].IsNil() {
		return nil, ConstructorInvocationError{
			Constructor: d.ConstructorType,
			Parameters:  d.Dependencies,
			Cause:       out[1].Interface().(error),
		}
	}

	return out[0].Interface(), nil
}
