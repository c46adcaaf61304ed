package taskwing

import (
	"github.com/viant/x"

	"github.com/taskwing/taskwing/extension"
	"github.com/taskwing/taskwing/model/action"
	"github.com/taskwing/taskwing/service/approval"
	amemory "github.com/taskwing/taskwing/service/approval/memory"
	"github.com/taskwing/taskwing/service/dispatcher"
	"github.com/taskwing/taskwing/service/invoker"
	"github.com/taskwing/taskwing/service/messaging"
	mmemory "github.com/taskwing/taskwing/service/messaging/memory"
	"github.com/taskwing/taskwing/service/worker"
	wfs "github.com/taskwing/taskwing/service/worker/fs"
	"github.com/taskwing/taskwing/service/workqueue"
)

// Service wires the dispatch substrate together: a shared work queue, one or
// more dispatch loops bound to a worker, the delivery queue, an optional
// approval consumer and the function registry with its invoker.
type Service struct {
	config          *Config
	runtime         *Runtime
	worker          worker.Worker
	results         messaging.Queue[action.Result]
	registry        *extension.Registry
	invoker         *invoker.Service
	extensionTypes  []*x.Type
	withoutConsumer bool
}

// New creates a service with the supplied options applied on top of the
// defaults.
func New(options ...Option) *Service {
	s := &Service{
		config:  DefaultConfig(),
		runtime: &Runtime{},
	}
	s.init(options)
	return s
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()

	loops := s.config.Dispatcher.Loops
	if loops <= 0 {
		loops = DefaultConfig().Dispatcher.Loops
	}
	interval := s.config.Dispatcher.Interval()
	for i := 0; i < loops; i++ {
		loop, _ := dispatcher.New(
			dispatcher.WithQueue(s.runtime.queue),
			dispatcher.WithWorker(s.worker),
			dispatcher.WithResults(s.results),
			dispatcher.WithPollInterval(interval))
		s.runtime.dispatchers = append(s.runtime.dispatchers, loop)
	}
	if !s.withoutConsumer && s.runtime.approval == nil {
		s.runtime.approval = amemory.New(s.results)
	}
	s.runtime.results = s.results
	s.runtime.policy = policyFromConfig(s.config)
}

func (s *Service) ensureBaseSetup() {
	if s.runtime.queue == nil {
		s.runtime.queue = workqueue.New()
	}
	if s.results == nil {
		s.results = mmemory.NewQueue[action.Result](mmemory.DefaultConfig())
	}
	if s.worker == nil {
		s.worker = wfs.New(wfs.WithBaseURL(s.config.Worker.BaseURL))
	}
	if s.registry == nil {
		s.registry = extension.NewRegistry(s.extensionTypes...)
	}
	if s.invoker == nil {
		s.invoker = invoker.New(s.registry)
	}
}

// Runtime returns the runtime handle used to assign actions and control the
// loops.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// Registry returns the function registry.
func (s *Service) Registry() *extension.Registry {
	return s.registry
}

// Invoker returns the invocation service bound to the registry.
func (s *Service) Invoker() *invoker.Service {
	return s.invoker
}

// Approval returns the approval consumer, or nil when the service was built
// without one.
func (s *Service) Approval() approval.Service {
	return s.runtime.approval
}

// RegisterExtensionTypes registers Go types signature inputs/outputs refer
// to.
func (s *Service) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.registry.Types().Register(types[i])
	}
}
