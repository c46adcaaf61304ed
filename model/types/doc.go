// Package types holds the shared contract types of the registry: operation
// signatures, the type-erased callable shape and the error taxonomy.
package types
