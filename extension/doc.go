// Package extension provides the run-time registry that binds named,
// signature-described operations to callable implementations, together with
// a registry of the Go types those signatures refer to. A signature must be
// registered before a callable can be bound under its name.
package extension
