// Package worker defines the pluggable capability that processes one action
// at a time. Concrete implementations live in sub-packages; anything
// satisfying the Worker interface can be bound to a dispatch loop.
package worker
