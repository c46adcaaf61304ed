package memory

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/taskwing/taskwing/internal/clock"
	"github.com/taskwing/taskwing/internal/idgen"
	"github.com/taskwing/taskwing/model/action"
	"github.com/taskwing/taskwing/progress"
	approval "github.com/taskwing/taskwing/service/approval"
	"github.com/taskwing/taskwing/service/dao"
	"github.com/taskwing/taskwing/service/dao/store"
	"github.com/taskwing/taskwing/service/messaging"
	qmem "github.com/taskwing/taskwing/service/messaging/memory"
)

type service struct {
	// delivery queue this consumer drains
	results messaging.Queue[action.Result]

	// DAO-backed stores
	reqDAO dao.Service[string, approval.Request]
	decDAO dao.Service[string, approval.Decision]

	// fan-out queue
	events messaging.Queue[approval.Event]
}

// key selectors – grab ID field
func reqKey(r *approval.Request) string  { return r.ID }
func decKey(d *approval.Decision) string { return d.ID }

// New creates an in-memory approval service consuming the supplied delivery
// queue.
func New(results messaging.Queue[action.Result], options ...Option) approval.Service {
	ret := &service{
		results: results,
		reqDAO:  store.NewMemoryStore[string, approval.Request](reqKey),
		decDAO:  store.NewMemoryStore[string, approval.Decision](decKey),
		events:  qmem.NewQueue[approval.Event](qmem.DefaultConfig()),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Start drains the delivery queue, recording every result as a pending
// request. It returns nil once the queue has been closed; any other consume
// failure is returned as-is.
func (s *service) Start(ctx context.Context) error {
	for {
		message, err := s.results.Consume(ctx)
		if err != nil {
			if errors.Is(err, messaging.ErrClosed) {
				return nil
			}
			return err
		}
		result := message.T()
		request := &approval.Request{
			ID:        idgen.New(),
			Result:    *result,
			CreatedAt: clock.Now(),
		}
		if err := s.reqDAO.Save(ctx, request); err != nil {
			log.Printf("failed to record request %v: %v", request.ID, err)
			_ = message.Nack(err)
			continue
		}
		_ = s.events.Publish(ctx, &approval.Event{Topic: approval.TopicRequestCreated, Data: request})
		progress.UpdateCtx(ctx, progress.Delta{Delivered: 1})
		_ = message.Ack()
	}
}

// Shutdown closes the delivery queue. Dispatch loops publishing to it
// observe the closure on their next forward and stop.
func (s *service) Shutdown() error {
	return s.results.Close()
}

func (s *service) ListPending(ctx context.Context) ([]*approval.Request, error) {
	all, err := s.reqDAO.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]*approval.Request, 0, len(all))
	for _, r := range all {
		if d, _ := s.decDAO.Load(ctx, r.ID); d == nil {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

func (s *service) Decide(ctx context.Context, id string, ok bool, reason string) (*approval.Decision, error) {
	if id == "" {
		return nil, errors.New("empty id")
	}
	request, _ := s.reqDAO.Load(ctx, id)
	if request == nil {
		return nil, fmt.Errorf("request %s not found", id)
	}
	if d, _ := s.decDAO.Load(ctx, id); d != nil {
		return nil, fmt.Errorf("already decided")
	}

	decision := &approval.Decision{
		ID:        id,
		Approved:  ok,
		Reason:    reason,
		DecidedAt: clock.Now(),
	}
	if err := s.decDAO.Save(ctx, decision); err != nil {
		return nil, err
	}
	_ = s.events.Publish(ctx, &approval.Event{Topic: approval.TopicDecisionCreated, Data: decision})
	return decision, nil
}

func (s *service) Queue() messaging.Queue[approval.Event] {
	return s.events
}
