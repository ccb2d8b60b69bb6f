package cradle

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Sentinel errors. These are base errors that are wrapped in typed errors
// when returned; never return them directly to callers without context.
var (
	ErrServiceNotFound = errors.New("service not found")
	ErrContainerNil    = errors.New("container cannot be nil")
	ErrContractNil     = errors.New("contract type cannot be nil")
	ErrConstructorNil  = errors.New("constructor cannot be nil")
	ErrInstanceNil     = errors.New("instance cannot be nil")
)

var (
	_ error = LifetimeError{}
	_ error = UnregisteredServiceError{}
	_ error = NoSuitableConstructorError{}
	_ error = RegistrationError{}
	_ error = ConstructorInvocationError{}
	_ error = TypeMismatchError{}
)

// LifetimeError indicates an invalid service lifetime value.
type LifetimeError struct {
	Value any
}

func (e LifetimeError) Error() string {
	return fmt.Sprintf("invalid service lifetime: %v", e.Value)
}

// UnregisteredServiceError indicates a resolution was requested for a
// contract that has no descriptor in the registry. ServiceType names the
// specific missing contract, which for a recursive resolution is the
// contract missing somewhere in the chain, not necessarily the root.
type UnregisteredServiceError struct {
	ServiceType reflect.Type
	Available   []reflect.Type // contracts that ARE registered, for suggestions
}

func (e UnregisteredServiceError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("service not registered: %s", formatType(e.ServiceType)))

	if len(e.Available) > 0 {
		similar := findSimilarTypes(e.ServiceType, e.Available)
		if len(similar) > 0 {
			b.WriteString("\n\nDid you mean one of these?\n")
			for _, t := range similar {
				b.WriteString(fmt.Sprintf("  • %s\n", formatType(t)))
			}
		}
	}

	return b.String()
}

func (e UnregisteredServiceError) Unwrap() error {
	return ErrServiceNotFound
}

// NoSuitableConstructorError indicates the registered implementation does not
// expose a usable constructor: the registered value is not a function, or its
// signature cannot produce a service instance.
type NoSuitableConstructorError struct {
	Constructor any
	Cause       error
}

func (e NoSuitableConstructorError) Error() string {
	if e.Constructor == nil {
		return fmt.Sprintf("no suitable constructor: %v", e.Cause)
	}
	return fmt.Sprintf("no suitable constructor %T: %v", e.Constructor, e.Cause)
}

func (e NoSuitableConstructorError) Unwrap() error {
	return e.Cause
}

// RegistrationError wraps errors during service registration.
type RegistrationError struct {
	ServiceType reflect.Type
	Operation   string // "register", "analyze-constructor", "assert-contract"
	Cause       error
}

func (e RegistrationError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, formatType(e.ServiceType), e.Cause)
}

func (e RegistrationError) Unwrap() error {
	return e.Cause
}

// ConstructorInvocationError indicates a constructor was invoked and reported
// failure through its error return.
type ConstructorInvocationError struct {
	Constructor reflect.Type
	Parameters  []reflect.Type
	Cause       error
}

func (e ConstructorInvocationError) Error() string {
	paramStrs := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		paramStrs[i] = formatType(p)
	}
	return fmt.Sprintf("failed to invoke %s with parameters [%s]: %v",
		formatType(e.Constructor), strings.Join(paramStrs, ", "), e.Cause)
}

func (e ConstructorInvocationError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError indicates a resolved instance could not be asserted to
// the requested type.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
	Context  string // "type assertion", "interface implementation"
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Context, formatType(e.Expected), formatType(e.Actual))
}

// findSimilarTypes finds types with similar names using a simple
// substring/prefix match.
func findSimilarTypes(target reflect.Type, available []reflect.Type) []reflect.Type {
	if target == nil || len(available) == 0 {
		return nil
	}

	targetName := target.String()
	targetShortName := target.Name()
	if targetShortName == "" {
		targetShortName = targetName
	}

	var similar []reflect.Type
	for _, t := range available {
		if t == nil || t == target {
			continue
		}

		typeName := t.String()
		typeShortName := t.Name()
		if typeShortName == "" {
			typeShortName = typeName
		}

		if targetShortName == typeShortName ||
			strings.Contains(strings.ToLower(typeName), strings.ToLower(targetShortName)) ||
			strings.Contains(strings.ToLower(targetName), strings.ToLower(typeShortName)) {
			similar = append(similar, t)
		}

		// Limit suggestions
		if len(similar) >= 5 {
			break
		}
	}

	return similar
}

// formatType formats a reflect.Type for error messages.
func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "*" + elem.Name()
		}
		return t.String()
	case reflect.Slice:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "[]" + elem.Name()
		}
		return t.String()
	case reflect.Map:
		key := t.Key()
		elem := t.Elem()
		keyStr := key.Name()
		if keyStr == "" {
			keyStr = key.String()
		}
		elemStr := elem.Name()
		if elemStr == "" {
			elemStr = elem.String()
		}
		return "map[" + keyStr + "]" + elemStr
	case reflect.Interface, reflect.Struct:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	case reflect.Func:
		return t.String()
	default:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	}
}
