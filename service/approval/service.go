package approval

import (
	"context"

	"github.com/taskwing/taskwing/service/messaging"
)

// Service defines the approval service interface. It is the consumer side of
// a dispatch loop's delivery queue: Start drains results and records each as
// a pending request; Shutdown drops the consumer, which in turn stops every
// dispatch loop publishing to the queue.
type Service interface {
	Start(ctx context.Context) error
	Shutdown() error
	ListPending(ctx context.Context) ([]*Request, error)
	Decide(ctx context.Context, id string, approved bool, reason string) (*Decision, error)
	Queue() messaging.Queue[Event]
}
