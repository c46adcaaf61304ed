package approval

import (
	"time"

	"github.com/taskwing/taskwing/model/action"
)

// Event envelope published on the approval service's fan-out queue.
type Event struct {
	Topic   string            // see topic constants below
	Data    interface{}       // *Request | *Decision
	Headers map[string]string `json:"headers,omitempty"` // optional - tenant, correlation-id etc.
}

// Standard event topics.
const (
	TopicRequestCreated  = "request.created"
	TopicDecisionCreated = "decision.created"
)

// Request represents one delivered action result awaiting review.
type Request struct {
	ID        string                 `json:"id"` // Globally unique, primary key
	Result    action.Result          `json:"result"`
	CreatedAt time.Time              `json:"createdAt"`
	Meta      map[string]interface{} `json:"meta,omitempty"` // Free-form: tenant, user, environment, etc.
}

// Decision represents the recorded review of one request.
type Decision struct {
	ID        string    `json:"id"` // same as request.ID
	Approved  bool      `json:"approved"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}
