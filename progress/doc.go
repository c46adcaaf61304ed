// Package progress provides a lightweight tracker that keeps aggregated
// dispatch counters (actions dispatched, completed, failed, delivered) for a
// single pipeline. The tracker lives in the context - every component that
// receives the context can atomically update the counters without a global
// registry.
package progress
