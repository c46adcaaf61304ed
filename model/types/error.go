package types

import "fmt"

// ActionError classifies a failure raised by a bound callable. The taxonomy
// is coarse on purpose; callers that need detail unwrap Err.
type ActionError struct {
	Name string // operation that failed
	Kind string // classification, e.g. "invalid-input", "execution"
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%v: %v failed: %v", e.Kind, e.Name, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// NewExecutionError classifies a failure of the callable itself.
func NewExecutionError(name string, err error) *ActionError {
	return &ActionError{Name: name, Kind: "execution", Err: err}
}

// NewInvalidInputError classifies an input that could not be coerced to the
// declared signature input type.
func NewInvalidInputError(name string, err error) *ActionError {
	return &ActionError{Name: name, Kind: "invalid-input", Err: err}
}

func NewSignatureNotFoundError(name string) error {
	return fmt.Errorf("no signature found for function: %v", name)
}

func NewFunctionNotFoundError(name string) error {
	return fmt.Errorf("function %v not found", name)
}
