package worker

import (
	"context"

	"github.com/taskwing/taskwing/model/action"
)

// Worker turns an action into a result. Implementations decide
// success/failure per action and report failures inside the result's outcome;
// Receive never aborts the caller. A Worker has to be safe for concurrent use
// as one instance may serve several dispatch loops.
type Worker interface {
	Receive(ctx context.Context, anAction action.Action) action.Result
}

// Func adapts a plain function to the Worker interface.
type Func func(ctx context.Context, anAction action.Action) action.Result

// Receive calls f.
func (f Func) Receive(ctx context.Context, anAction action.Action) action.Result {
	return f(ctx, anAction)
}
