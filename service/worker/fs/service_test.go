package fs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	_ "github.com/viant/afs/mem"

	"github.com/taskwing/taskwing/model/action"
)

func TestService_Receive(t *testing.T) {
	ctx := context.Background()
	service := New(WithBaseURL("mem://localhost/worker"))

	// write then read back
	result := service.Receive(ctx, action.NewWrite("note.txt", "hello"))
	assert.False(t, result.Outcome.Failed(), result.Outcome.Error)

	result = service.Receive(ctx, action.NewRead("note.txt"))
	assert.False(t, result.Outcome.Failed(), result.Outcome.Error)
	assert.Equal(t, "hello", result.Outcome.Output)
	assert.Equal(t, action.KindRead, result.Action.Kind)

	// a missing asset fails the outcome, not the caller
	result = service.Receive(ctx, action.NewRead("missing.txt"))
	assert.True(t, result.Outcome.Failed())
	assert.NotEmpty(t, result.Outcome.Error)

	// invalid action reported the same way
	result = service.Receive(ctx, action.Action{Kind: "move", Path: "x"})
	assert.True(t, result.Outcome.Failed())
}
