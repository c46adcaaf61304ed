package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the dispatch
// loop or the approval consumer. The fields are signed and therefore can be
// either positive (increment) or negative (decrement).
type Delta struct {
	Dispatched int
	Completed  int
	Failed     int
	Delivered  int
}

// Progress keeps aggregated action counters for one dispatch pipeline. It is
// safe for concurrent use.
type Progress struct {
	// Identification - informative only, filled when the pipeline starts.
	Pipeline  string
	StartedAt time.Time

	// Counters - modified via Update().
	Dispatched int
	Completed  int
	Failed     int
	Delivered  int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta to the tracker. It is safe to call from
// multiple goroutines. A registered onChange callback is invoked with a copy
// of the updated tracker outside the critical section so that slow callbacks
// (JSON encoding, I/O) do not block the dispatch path.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.Lock()
	p.Dispatched += d.Dispatched
	p.Completed += d.Completed
	p.Failed += d.Failed
	p.Delivered += d.Delivered

	snapshot := *p
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return *p
}

// OnChange registers a callback invoked after every successful Update.
// Passing nil disables the callback; subsequent calls overwrite the previous
// value.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, pipeline string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		Pipeline:  pipeline,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx; the second return
// value is false when the context carries no tracker.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the supplied
// delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
