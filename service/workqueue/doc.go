// Package workqueue implements the lock-guarded buffer of pending actions
// shared between producers and dispatch loops. Draining is last-in first-out;
// the ordering is part of the queue's contract and is covered by tests.
package workqueue
