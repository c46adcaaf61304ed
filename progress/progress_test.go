package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Update(t *testing.T) {
	ctx, tracker := WithNewTracker(context.Background(), "pipeline-1", nil)

	UpdateCtx(ctx, Delta{Dispatched: 1, Completed: 1})
	UpdateCtx(ctx, Delta{Dispatched: 1, Failed: 1})
	UpdateCtx(ctx, Delta{Delivered: 2})

	snapshot := tracker.Snapshot()
	assert.Equal(t, 2, snapshot.Dispatched)
	assert.Equal(t, 1, snapshot.Completed)
	assert.Equal(t, 1, snapshot.Failed)
	assert.Equal(t, 2, snapshot.Delivered)
	assert.Equal(t, "pipeline-1", snapshot.Pipeline)
}

func TestProgress_ConcurrentUpdate(t *testing.T) {
	tracker := &Progress{}
	var wg sync.WaitGroup
	workers := 10
	updates := 100
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < updates; j++ {
				tracker.Update(Delta{Dispatched: 1})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, workers*updates, tracker.Snapshot().Dispatched)
}

func TestProgress_OnChange(t *testing.T) {
	tracker := &Progress{}
	var seen []int
	tracker.OnChange(func(p Progress) {
		seen = append(seen, p.Dispatched)
	})
	tracker.Update(Delta{Dispatched: 1})
	tracker.Update(Delta{Dispatched: 1})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestProgress_NilSafety(t *testing.T) {
	var tracker *Progress
	tracker.Update(Delta{Dispatched: 1})
	assert.Equal(t, Progress{}, tracker.Snapshot())
	UpdateCtx(context.Background(), Delta{Dispatched: 1})
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}
