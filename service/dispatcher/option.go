package dispatcher

import (
	"time"

	"github.com/taskwing/taskwing/model/action"
	"github.com/taskwing/taskwing/service/messaging"
	"github.com/taskwing/taskwing/service/worker"
	"github.com/taskwing/taskwing/service/workqueue"
)

// Option customises the dispatcher service.
type Option func(*Service)

// WithQueue sets the work queue the loop drains
func WithQueue(queue *workqueue.Queue) Option {
	return func(s *Service) {
		s.queue = queue
	}
}

// WithWorker sets the worker bound to the loop
func WithWorker(aWorker worker.Worker) Option {
	return func(s *Service) {
		s.worker = aWorker
	}
}

// WithResults sets the delivery queue results are forwarded on
func WithResults(results messaging.Queue[action.Result]) Option {
	return func(s *Service) {
		s.results = results
	}
}

// WithPollInterval overrides the idle backoff interval
func WithPollInterval(interval time.Duration) Option {
	return func(s *Service) {
		s.config.PollInterval = interval
	}
}

// WithConfig sets the configuration for the service
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}
