// Package idgen wraps the UUID generator so that it can be stubbed in tests.
// Callers should treat the identifiers it produces as opaque strings.
package idgen
