// Package invoker is the calling side of the registry: it resolves a bound
// callable by name, coerces loosely-typed arguments into the declared input
// type and classifies failures. The registry itself stays a passive store.
package invoker
