// Package dispatcher hosts the loop that drains the work queue through a
// worker and forwards outcomes on the delivery queue. The loop is resilient
// to per-action failures; losing the delivery queue's consumer is its only
// clean shutdown path.
package dispatcher
