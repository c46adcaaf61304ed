// Package tracing is a thin wrapper around OpenTelemetry so that the rest of
// the code-base can open and close spans without depending on the upstream
// API directly. The dispatch loop and the invoker open one span per action
// and per registry call respectively.
package tracing
