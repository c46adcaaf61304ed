package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskwing/taskwing/model/action"
	"github.com/taskwing/taskwing/policy"
	"github.com/taskwing/taskwing/progress"
	"github.com/taskwing/taskwing/service/messaging"
	"github.com/taskwing/taskwing/service/worker"
	"github.com/taskwing/taskwing/tracing"
)

// Config represents dispatcher service configuration
type Config struct {
	// PollInterval is how long the loop backs off after finding the work
	// queue empty.
	PollInterval time.Duration
}

// DefaultConfig returns the default dispatcher configuration
func DefaultConfig() Config {
	return Config{
		PollInterval: 100 * time.Millisecond,
	}
}

// workSource is the slice of the work queue the loop polls.
type workSource interface {
	Execute() (action.Action, bool)
}

// Service drives one work queue against one worker and forwards every result
// on the delivery queue. Several Service instances may share a queue; each
// dequeued action is delivered to exactly one of them.
type Service struct {
	config  Config
	queue   workSource
	worker  worker.Worker
	results messaging.Queue[action.Result]
}

// New creates a dispatcher service
func New(options ...Option) (*Service, error) {
	s := &Service{config: DefaultConfig()}
	for _, opt := range options {
		opt(s)
	}
	if s.queue == nil {
		return nil, fmt.Errorf("work queue is required")
	}
	if s.worker == nil {
		return nil, fmt.Errorf("worker is required")
	}
	if s.results == nil {
		return nil, fmt.Errorf("results queue is required")
	}
	if s.config.PollInterval <= 0 {
		s.config.PollInterval = DefaultConfig().PollInterval
	}
	return s, nil
}

// Start runs the dispatch loop until the delivery queue goes away. A worker
// failure never stops the loop - failed actions travel downstream inside
// their result. The loop ends when the results queue has been closed by its
// consumer, or when ctx is done while the loop idles.
func (s *Service) Start(ctx context.Context) error {
	for {
		anAction, ok := s.queue.Execute()
		if !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.config.PollInterval):
			}
			continue
		}
		result := s.receive(ctx, anAction)
		if err := s.results.Publish(ctx, &result); err != nil {
			if errors.Is(err, messaging.ErrClosed) {
				return nil
			}
			return err
		}
	}
}

// receive applies the context policy and invokes the worker, recording a
// span per action.
func (s *Service) receive(ctx context.Context, anAction action.Action) action.Result {
	spanCtx, span := tracing.StartSpan(ctx, "dispatch."+string(anAction.Kind), "CONSUMER")
	span.WithAttributes(map[string]string{"action.path": anAction.Path})

	if p := policy.FromContext(ctx); !p.Admit(spanCtx, anAction) {
		err := fmt.Errorf("action %v blocked by policy", anAction.Name())
		progress.UpdateCtx(ctx, progress.Delta{Dispatched: 1, Failed: 1})
		tracing.EndSpan(span, err)
		return action.NewResult(anAction, action.Fail(err.Error()))
	}

	progress.UpdateCtx(ctx, progress.Delta{Dispatched: 1})
	result := s.worker.Receive(spanCtx, anAction)
	if result.Outcome.Failed() {
		progress.UpdateCtx(ctx, progress.Delta{Failed: 1})
		tracing.EndSpan(span, errors.New(result.Outcome.Error))
	} else {
		progress.UpdateCtx(ctx, progress.Delta{Completed: 1})
		tracing.EndSpan(span, nil)
	}
	return result
}
