package fs

import (
	"bytes"
	"context"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/taskwing/taskwing/model/action"
	"github.com/taskwing/taskwing/service/worker"
)

// Service is a Worker backed by the afs storage abstraction: read actions
// download the addressed asset, write actions upload their content. Any
// storage scheme afs understands works as an action path (file, mem, s3, …).
type Service struct {
	fs      afs.Service
	baseURL string
}

// Option customises the service.
type Option func(*Service)

// WithBaseURL resolves relative action paths against baseURL.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}

// WithService overrides the afs service, e.g. with a cache-backed one.
func WithService(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates a filesystem worker.
func New(options ...Option) *Service {
	ret := &Service{fs: afs.New()}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Receive processes one action. Failures are reported inside the returned
// result and never abort the caller.
func (s *Service) Receive(ctx context.Context, anAction action.Action) action.Result {
	if err := anAction.Validate(); err != nil {
		return action.NewResult(anAction, action.Fail(err.Error()))
	}
	switch anAction.Kind {
	case action.KindRead:
		return action.NewResult(anAction, s.read(ctx, &anAction))
	case action.KindWrite:
		return action.NewResult(anAction, s.write(ctx, &anAction))
	}
	return action.NewResult(anAction, action.Fail("unsupported action kind: "+string(anAction.Kind)))
}

func (s *Service) read(ctx context.Context, anAction *action.Action) action.Outcome {
	location := s.location(anAction.Path)
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return action.Fail(err.Error())
	}
	return action.Ok(string(data))
}

func (s *Service) write(ctx context.Context, anAction *action.Action) action.Outcome {
	location := s.location(anAction.Path)
	err := s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader([]byte(anAction.Content)))
	if err != nil {
		return action.Fail(err.Error())
	}
	return action.Ok(location)
}

func (s *Service) location(path string) string {
	if s.baseURL == "" {
		return path
	}
	if strings.Contains(path, "://") {
		return path
	}
	return url.Join(s.baseURL, path)
}

// ensure Service implements the worker contract
var _ worker.Worker = (*Service)(nil)
