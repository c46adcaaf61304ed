package memory

import (
	approval "github.com/taskwing/taskwing/service/approval"
	"github.com/taskwing/taskwing/service/dao"
	"github.com/taskwing/taskwing/service/messaging"
)

type Option func(*service)

// WithRequestDAO overrides the pending-request store.
func WithRequestDAO(store dao.Service[string, approval.Request]) Option {
	return func(s *service) { s.reqDAO = store }
}

// WithDecisionDAO overrides the decision store.
func WithDecisionDAO(store dao.Service[string, approval.Decision]) Option {
	return func(s *service) { s.decDAO = store }
}

// WithEvents overrides the fan-out event queue.
func WithEvents(events messaging.Queue[approval.Event]) Option {
	return func(s *service) { s.events = events }
}
