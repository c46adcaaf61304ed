package action

import "fmt"

// Kind discriminates the action variants.
type Kind string

const (
	// KindRead requests reading the file at Path.
	KindRead = Kind("read")

	// KindWrite requests writing Content to the file at Path.
	KindWrite = Kind("write")
)

// Action represents a unit of requested work. An action is immutable once
// constructed; duplicates are independent work items with no identity beyond
// value equality.
type Action struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// NewRead creates a read action for the supplied path.
func NewRead(path string) Action {
	return Action{Kind: KindRead, Path: path}
}

// NewWrite creates a write action for the supplied path and content.
func NewWrite(path, content string) Action {
	return Action{Kind: KindWrite, Path: path, Content: content}
}

// Validate returns an error when the action kind is unknown or the path is
// empty.
func (a *Action) Validate() error {
	switch a.Kind {
	case KindRead, KindWrite:
	default:
		return fmt.Errorf("unknown action kind: %v", a.Kind)
	}
	if a.Path == "" {
		return fmt.Errorf("action path was empty")
	}
	return nil
}

// Name returns the fully-qualified operation name of the action, e.g.
// "read /tmp/x".
func (a *Action) Name() string {
	return fmt.Sprintf("%v %v", a.Kind, a.Path)
}
