// Package reflection performs reflect-based analysis of constructor
// functions, extracting the ordered dependency list the resolver walks.
package reflection

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Analysis failures. The container wraps these in its own typed errors.
var (
	ErrNotFunction    = errors.New("constructor is not a function")
	ErrNilConstructor = errors.New("constructor is nil")
	ErrVariadic       = errors.New("variadic constructors are not supported")
	ErrNoReturn       = errors.New("constructor has no return value")
	ErrTooManyReturns = errors.New("constructor must return (T) or (T, error)")
	ErrBadErrorReturn = errors.New("constructor second return value must be error")
	ErrErrorService   = errors.New("constructor service return value cannot be error")
)

// ConstructorInfo contains analyzed information about a constructor function.
type ConstructorInfo struct {
	// Type is the function type of the constructor.
	Type reflect.Type

	// Value is the reflected function value, ready to Call.
	Value reflect.Value

	// Parameters are the constructor's parameter types in declaration order.
	// Each one is resolved as a contract in its own right.
	Parameters []reflect.Type

	// ReturnType is the declared type of the first return value, which the
	// container treats as the constructor's default contract.
	ReturnType reflect.Type

	// HasErrorReturn is true when the constructor returns (T, error).
	HasErrorReturn bool
}

// Analyzer analyzes constructor functions and caches the results keyed by
// function pointer, so repeated registrations of the same constructor skip
// re-analysis.
type Analyzer struct {
	mu    sync.RWMutex
	cache map[uintptr]*ConstructorInfo
}

// New creates a new Analyzer.
func New() *Analyzer {
	return &Analyzer{
		cache: make(map[uintptr]*ConstructorInfo),
	}
}

// Analyze analyzes a constructor function and extracts its dependency and
// return information. The constructor must be a non-variadic function
// returning exactly one service value, optionally followed by an error.
func (a *Analyzer) Analyze(constructor any) (*ConstructorInfo, error) {
	if constructor == nil {
		return nil, ErrNilConstructor
	}

	val := reflect.ValueOf(constructor)
	if !val.IsValid() || (val.Kind() == reflect.Func && val.IsNil()) {
		return nil, ErrNilConstructor
	}

	typ := val.Type()
	if typ.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %s", ErrNotFunction, typ.Kind())
	}

	cacheKey := val.Pointer()

	a.mu.RLock()
	if info, ok := a.cache[cacheKey]; ok {
		a.mu.RUnlock()
		return info, nil
	}
	a.mu.RUnlock()

	info, err := analyzeFunc(typ, val)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.cache[cacheKey] = info
	a.mu.Unlock()

	return info, nil
}

func analyzeFunc(typ reflect.Type, val reflect.Value) (*ConstructorInfo, error) {
	if typ.IsVariadic() {
		return nil, ErrVariadic
	}

	numOut := typ.NumOut()
	switch {
	case numOut == 0:
		return nil, ErrNoReturn
	case numOut > 2:
		return nil, ErrTooManyReturns
	case numOut == 2 && !typ.Out(1).Implements(errType):
		return nil, ErrBadErrorReturn
	}

	returnType := typ.Out(0)
	if returnType.Implements(errType) && returnType.Kind() == reflect.Interface {
		// A bare error return leaves nothing to register.
		return nil, ErrErrorService
	}

	params := make([]reflect.Type, typ.NumIn())
	for i := range params {
		in := typ.In(i)
		if err := validateParameterType(in, i); err != nil {
			return nil, err
		}
		params[i] = in
	}

	return &ConstructorInfo{
		Type:           typ,
		Value:          val,
		Parameters:     params,
		ReturnType:     returnType,
		HasErrorReturn: numOut == 2,
	}, nil
}

// validateParameterType rejects parameter kinds that cannot act as injectable
// contracts.
func validateParameterType(t reflect.Type, index int) error {
	switch t.Kind() {
	case reflect.Chan:
		return fmt.Errorf("parameter %d: channel type %s is not supported as a dependency; use an interface or struct instead", index, t)
	case reflect.UnsafePointer:
		return fmt.Errorf("parameter %d: unsafe pointer is not supported as a dependency", index)
	}
	return nil
}
