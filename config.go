package taskwing

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/taskwing/taskwing/policy"
)

// Config is a serialisable representation of the engine configuration. It
// can be populated from JSON or YAML; the zero-value is useful - all nested
// fields inherit their package defaults.
type Config struct {
	Dispatcher DispatcherConfig `json:"dispatcher" yaml:"dispatcher"`
	Worker     WorkerConfig     `json:"worker" yaml:"worker"`
	Policy     *policy.Config   `json:"policy,omitempty" yaml:"policy,omitempty"`
}

// DispatcherConfig controls the dispatch loops.
type DispatcherConfig struct {
	// Loops is the number of dispatch loops sharing the work queue.
	Loops int `json:"loops" yaml:"loops"`

	// PollInterval is the idle backoff, expressed as a duration literal
	// such as "100ms".
	PollInterval string `json:"pollInterval,omitempty" yaml:"pollInterval,omitempty"`
}

// Interval returns the parsed poll interval, falling back to the default
// when unset.
func (c *DispatcherConfig) Interval() time.Duration {
	if c.PollInterval == "" {
		return 100 * time.Millisecond
	}
	interval, err := time.ParseDuration(c.PollInterval)
	if err != nil || interval <= 0 {
		return 100 * time.Millisecond
	}
	return interval
}

// WorkerConfig controls the default filesystem worker.
type WorkerConfig struct {
	// BaseURL resolves relative action paths; any afs scheme works.
	BaseURL string `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Dispatcher: DispatcherConfig{
			Loops:        1,
			PollInterval: "100ms",
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Dispatcher.Loops <= 0 {
		return fmt.Errorf("dispatcher.loops must be > 0")
	}
	if c.Dispatcher.PollInterval != "" {
		if _, err := time.ParseDuration(c.Dispatcher.PollInterval); err != nil {
			return fmt.Errorf("dispatcher.pollInterval is invalid: %w", err)
		}
	}
	return nil
}

// LoadConfig reads and validates a YAML config from the supplied afs URL.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
