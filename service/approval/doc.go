// Package approval implements the consumer of dispatched action results: a
// review layer where every delivered result becomes a pending request that
// can be approved or rejected. Shutting the consumer down is the clean way
// to stop the dispatch loops feeding it.
package approval
