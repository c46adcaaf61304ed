package action

// Status describes how processing of an action concluded.
type Status string

const (
	// StatusOk marks a successfully processed action.
	StatusOk = Status("ok")

	// StatusFailed marks an action whose processing failed.
	StatusFailed = Status("failed")
)

// Outcome carries either a success payload or an error message. Exactly one
// of Output/Error is meaningful, selected by Status, so that Ok("") and
// Fail("") survive serialization as distinct values.
type Outcome struct {
	Status Status `json:"status" yaml:"status"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Ok creates a successful outcome with the supplied payload.
func Ok(output string) Outcome {
	return Outcome{Status: StatusOk, Output: output}
}

// Fail creates a failed outcome with the supplied error message.
func Fail(message string) Outcome {
	return Outcome{Status: StatusFailed, Error: message}
}

// Failed returns true when the outcome carries an error.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}

// Result pairs an action with the outcome of processing it. It is constructed
// exactly once, by whichever component executed the action, and is immutable
// thereafter.
type Result struct {
	Action  Action  `json:"action" yaml:"action"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`
}

// NewResult creates a result for the supplied action and outcome.
func NewResult(anAction Action, outcome Outcome) Result {
	return Result{Action: anAction, Outcome: outcome}
}
