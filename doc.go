// Package cradle is a minimal inversion-of-control container.
//
// Callers register abstract service contracts against constructor functions,
// then resolve a fully-constructed object graph on demand. The container
// introspects each constructor's parameter list and recursively resolves every
// parameter as a contract of its own, building the graph depth-first and
// composing upward.
//
// Basic usage:
//
//	c := cradle.New()
//
//	cradle.RegisterSingleton[Logger](c, NewConsoleLogger)
//	cradle.RegisterTransient[UserService](c, NewUserService)
//
//	svc, err := cradle.Resolve[UserService](c)
//
// A contract is identified by its type. The generic registration functions
// bind an explicit contract type and verify at registration time that the
// constructor's return type satisfies it. The method forms
// (Container.RegisterSingleton, Container.RegisterTransient) infer the
// contract from the constructor's first declared return type.
//
// Lifetimes:
//
//   - Transient: a new instance is constructed on every resolution.
//   - Singleton: the instance is constructed on first resolution and cached
//     on its descriptor for the container's lifetime.
//
// Registering a contract that is already registered overwrites the prior
// binding, including any cached singleton instance.
//
// Each Container owns its own registry. There is no package-level container,
// so independent containers stay isolated and testable.
//
// Limitations: the container performs constructor injection only. There is
// no property or method injection, no scope support, no disposal hooks, and
// no multi-binding. Dependency cycles are not detected; resolving a contract
// whose dependency chain loops back to itself recurses until the stack is
// exhausted.
package cradle
