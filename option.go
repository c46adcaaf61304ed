package taskwing

import (
	"github.com/viant/x"

	"github.com/taskwing/taskwing/extension"
	"github.com/taskwing/taskwing/model/action"
	"github.com/taskwing/taskwing/service/approval"
	"github.com/taskwing/taskwing/service/messaging"
	"github.com/taskwing/taskwing/service/worker"
	"github.com/taskwing/taskwing/service/workqueue"
)

// Option customises the service assembly.
type Option func(s *Service)

// WithConfig sets the engine configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithWorker sets the worker bound to every dispatch loop
func WithWorker(aWorker worker.Worker) Option {
	return func(s *Service) {
		s.worker = aWorker
	}
}

// WithWorkQueue sets the shared work queue
func WithWorkQueue(queue *workqueue.Queue) Option {
	return func(s *Service) {
		s.runtime.queue = queue
	}
}

// WithResults sets the delivery queue
func WithResults(results messaging.Queue[action.Result]) Option {
	return func(s *Service) {
		s.results = results
	}
}

// WithRegistry sets the function registry
func WithRegistry(registry *extension.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithApprovalService sets the approval consumer
func WithApprovalService(svc approval.Service) Option {
	return func(s *Service) {
		s.runtime.approval = svc
	}
}

// WithoutApproval leaves the delivery queue to an external consumer; the
// caller then drives Runtime().Results() and closes it to stop the loops.
func WithoutApproval() Option {
	return func(s *Service) {
		s.withoutConsumer = true
	}
}

// WithExtensionTypes pre-registers Go types for signature inputs/outputs
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) {
		s.extensionTypes = types
	}
}
