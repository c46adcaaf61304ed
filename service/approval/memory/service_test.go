package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwing/taskwing/model/action"
	approval "github.com/taskwing/taskwing/service/approval"
	qmem "github.com/taskwing/taskwing/service/messaging/memory"
)

func TestService_ConsumeAndDecide(t *testing.T) {
	results := qmem.NewQueue[action.Result](qmem.DefaultConfig())
	service := New(results)
	ctx := context.Background()

	started := make(chan error, 1)
	go func() {
		started <- service.Start(ctx)
	}()

	result := action.NewResult(action.NewWrite("/tmp/x", "data"), action.Ok("written"))
	require.NoError(t, results.Publish(ctx, &result))

	// the consumer records the delivered result as a pending request
	var pending []*approval.Request
	for i := 0; i < 50; i++ {
		var err error
		pending, err = service.ListPending(ctx)
		require.NoError(t, err)
		if len(pending) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Len(t, pending, 1)
	assert.Equal(t, result, pending[0].Result)
	assert.False(t, pending[0].CreatedAt.IsZero())

	// a request.created event was fanned out
	eventCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	message, err := service.Queue().Consume(eventCtx)
	require.NoError(t, err)
	assert.Equal(t, approval.TopicRequestCreated, message.T().Topic)

	// deciding removes the request from the pending view
	decision, err := service.Decide(ctx, pending[0].ID, true, "looks fine")
	require.NoError(t, err)
	assert.True(t, decision.Approved)

	pending, err = service.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// repeated decisions are rejected
	_, err = service.Decide(ctx, decision.ID, false, "")
	assert.EqualError(t, err, "already decided")

	// shutdown closes the delivery queue and ends the consumer loop
	require.NoError(t, service.Shutdown())
	select {
	case err := <-started:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer loop did not stop after shutdown")
	}
}

func TestService_DecideValidation(t *testing.T) {
	results := qmem.NewQueue[action.Result](qmem.DefaultConfig())
	service := New(results)
	ctx := context.Background()

	_, err := service.Decide(ctx, "", true, "")
	assert.EqualError(t, err, "empty id")

	_, err = service.Decide(ctx, "missing", true, "")
	assert.EqualError(t, err, "request missing not found")
}

func TestAutoDecider(t *testing.T) {
	results := qmem.NewQueue[action.Result](qmem.DefaultConfig())
	service := New(results)
	ctx := context.Background()

	go func() {
		_ = service.Start(ctx)
	}()
	defer service.Shutdown()

	stop := approval.AutoDecider(ctx, service, func(r *approval.Request) (bool, string) {
		return !r.Result.Outcome.Failed(), "auto"
	}, 10*time.Millisecond)
	defer stop()

	result := action.NewResult(action.NewRead("/tmp/x"), action.Ok("done"))
	require.NoError(t, results.Publish(ctx, &result))

	// request gets created, then auto-decided
	eventCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	topics := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		message, err := service.Queue().Consume(eventCtx)
		require.NoError(t, err)
		topics = append(topics, message.T().Topic)
	}
	assert.Equal(t, []string{approval.TopicRequestCreated, approval.TopicDecisionCreated}, topics)

	pending, err := service.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
