package taskwing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	_ "github.com/viant/afs/mem"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, (*Config)(nil).Validate())

	invalid := DefaultConfig()
	invalid.Dispatcher.Loops = 0
	assert.Error(t, invalid.Validate())

	invalid = DefaultConfig()
	invalid.Dispatcher.PollInterval = "soon"
	assert.Error(t, invalid.Validate())
}

func TestDispatcherConfig_Interval(t *testing.T) {
	config := DispatcherConfig{}
	assert.Equal(t, 100*time.Millisecond, config.Interval())
	config.PollInterval = "250ms"
	assert.Equal(t, 250*time.Millisecond, config.Interval())
	config.PollInterval = "garbage"
	assert.Equal(t, 100*time.Millisecond, config.Interval())
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/config/taskwing.yaml"
	data := `
dispatcher:
  loops: 3
  pollInterval: 50ms
worker:
  baseURL: mem://localhost/data
policy:
  mode: auto
  block:
    - write
`
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(data)))

	config, err := LoadConfig(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, 3, config.Dispatcher.Loops)
	assert.Equal(t, 50*time.Millisecond, config.Dispatcher.Interval())
	assert.Equal(t, "mem://localhost/data", config.Worker.BaseURL)
	require.NotNil(t, config.Policy)
	assert.Equal(t, []string{"write"}, config.Policy.BlockList)

	_, err = LoadConfig(ctx, "mem://localhost/config/missing.yaml")
	assert.Error(t, err)
}
