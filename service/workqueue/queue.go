package workqueue

import (
	"sync"

	"github.com/taskwing/taskwing/model/action"
)

// Queue is the shared buffer of pending actions. A single mutex guards the
// backing slice so that no caller ever observes a partially-mutated sequence.
//
// Execute drains in LIFO order: the most recently assigned action comes back
// first. Callers must not rely on arrival order being preserved.
type Queue struct {
	mu      sync.Mutex
	pending []action.Action
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Assign appends an action to the queue. It always succeeds and is safe to
// call concurrently from multiple producers.
func (q *Queue) Assign(anAction action.Action) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, anAction)
}

// Execute removes and returns the most recently assigned action. The second
// return value is false when the queue is empty; an empty queue is a common
// state, not an error, and Execute never blocks waiting for work.
func (q *Queue) Execute() (action.Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return action.Action{}, false
	}
	last := len(q.pending) - 1
	anAction := q.pending[last]
	q.pending = q.pending[:last]
	return anAction, true
}

// Size returns the current number of pending actions.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
