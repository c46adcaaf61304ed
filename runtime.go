package taskwing

import (
	"context"
	"fmt"
	"sync"

	"github.com/taskwing/taskwing/model/action"
	"github.com/taskwing/taskwing/policy"
	"github.com/taskwing/taskwing/service/approval"
	"github.com/taskwing/taskwing/service/dispatcher"
	"github.com/taskwing/taskwing/service/messaging"
	"github.com/taskwing/taskwing/service/workqueue"
)

// Runtime controls the running dispatch pipeline.
type Runtime struct {
	queue       *workqueue.Queue
	results     messaging.Queue[action.Result]
	dispatchers []*dispatcher.Service
	approval    approval.Service
	policy      *policy.Policy

	mu      sync.Mutex
	cancel  context.CancelFunc
	started bool
	wg      sync.WaitGroup
}

func policyFromConfig(config *Config) *policy.Policy {
	if config == nil {
		return nil
	}
	return policy.FromConfig(config.Policy)
}

// Assign validates the action and adds it to the shared work queue.
func (r *Runtime) Assign(anAction action.Action) error {
	if err := anAction.Validate(); err != nil {
		return err
	}
	r.queue.Assign(anAction)
	return nil
}

// Queue returns the shared work queue.
func (r *Runtime) Queue() *workqueue.Queue {
	return r.queue
}

// Results returns the delivery queue. When an approval consumer is attached
// it owns the consuming side; callers then observe outcomes through the
// approval service instead.
func (r *Runtime) Results() messaging.Queue[action.Result] {
	return r.results
}

// Approval returns the attached approval consumer, or nil.
func (r *Runtime) Approval() approval.Service {
	return r.approval
}

// Start launches every dispatch loop and, when attached, the approval
// consumer. It returns immediately; loops run until Shutdown.
func (r *Runtime) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return fmt.Errorf("runtime already started")
	}
	if len(r.dispatchers) == 0 {
		return fmt.Errorf("no dispatch loops configured")
	}
	ctx, r.cancel = context.WithCancel(ctx)
	if r.policy != nil {
		ctx = policy.WithPolicy(ctx, r.policy)
	}
	for _, loop := range r.dispatchers {
		r.wg.Add(1)
		go func(loop *dispatcher.Service) {
			defer r.wg.Done()
			_ = loop.Start(ctx)
		}(loop)
	}
	if r.approval != nil {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			_ = r.approval.Start(ctx)
		}()
	}
	r.started = true
	return nil
}

// Shutdown closes the delivery queue so every dispatch loop stops on its
// next forward, cancels idle loops and waits for all of them to exit.
func (r *Runtime) Shutdown() error {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return nil
	}
	r.started = false
	cancel := r.cancel
	r.mu.Unlock()

	var err error
	if r.approval != nil {
		err = r.approval.Shutdown()
	} else {
		err = r.results.Close()
	}
	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
	return err
}
