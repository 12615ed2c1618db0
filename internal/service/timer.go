package service

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/xolan/tog/internal/catalog"
	"github.com/xolan/tog/internal/entry"
	"github.com/xolan/tog/internal/failure"
	"github.com/xolan/tog/internal/timeutil"
)

// TimerClient is the subset of the remote client the engine drives.
// *toggl.Client satisfies it.
type TimerClient interface {
	CurrentEntry(ctx context.Context) (*entry.Entry, error)
	ListEntries(ctx context.Context, since time.Time) ([]entry.Entry, error)
	CreateEntry(ctx context.Context, workspaceID, projectID int64, description string, start time.Time) (*entry.Entry, error)
	StopEntry(ctx context.Context, e entry.Entry) (*entry.Entry, error)
	ReplaceEntry(ctx context.Context, e entry.Entry) error
}

// TimerService provides operations on the remote running entry.
// It holds no remote state: every operation re-queries the service first.
type TimerService struct {
	client  TimerClient
	catalog catalog.Catalog
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a TimerService.
type Option func(*TimerService)

// WithClock sets the time source. Its location defines "today".
func WithClock(now func() time.Time) Option {
	return func(s *TimerService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for warnings and debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(s *TimerService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewTimerService creates a new TimerService
func NewTimerService(client TimerClient, cat catalog.Catalog, opts ...Option) *TimerService {
	s := &TimerService{
		client:  client,
		catalog: cat,
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the current time from the service's clock.
func (s *TimerService) Now() time.Time {
	return s.now()
}

// ProjectName resolves id through the catalog. Unknown ids fall back to the
// raw identifier and log a warning; they never fail.
func (s *TimerService) ProjectName(id int64) (string, bool) {
	if name, ok := s.catalog.ProjectName(id); ok {
		return name, true
	}
	s.logger.Warn("project not in catalog", "project_id", id)
	return strconv.FormatInt(id, 10), false
}

// Status reports the running entry. Nothing running is not an error.
func (s *TimerService) Status(ctx context.Context) (*TimerStatus, error) {
	current, err := s.client.CurrentEntry(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &TimerStatus{}, nil
	}

	name, known := s.ProjectName(current.ProjectID)
	return &TimerStatus{
		Running:      true,
		Entry:        current,
		ProjectName:  name,
		ProjectKnown: known,
		Elapsed:      current.Elapsed(s.now()),
	}, nil
}

// Start creates a new running entry for item at now.
// An entry that is already running is left for the service to handle.
func (s *TimerService) Start(ctx context.Context, item catalog.Item) (*entry.Entry, error) {
	created, err := s.client.CreateEntry(ctx, item.WorkspaceID, item.ProjectID, item.Description, s.now())
	if err != nil {
		return nil, err
	}
	s.logger.Debug("started entry", "id", created.ID, "project_id", created.ProjectID, "description", created.Description)
	return created, nil
}

// Stop stops the running entry and returns it with its stop time.
func (s *TimerService) Stop(ctx context.Context) (*entry.Entry, error) {
	const op = "service.stop"

	current, err := s.client.CurrentEntry(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, failure.NoRunning(op)
	}

	stopped, err := s.client.StopEntry(ctx, *current)
	if err != nil {
		return nil, err
	}
	if stopped.Stop == nil {
		return nil, failure.DecodeMsg(op, "stopped entry %d came back without a stop time", stopped.ID)
	}
	s.logger.Debug("stopped entry", "id", stopped.ID, "duration", stopped.Duration)
	return stopped, nil
}

// Swap replaces the running entry's project and description, keeping its
// start. When the entry already matches, nothing is sent.
func (s *TimerService) Swap(ctx context.Context, item catalog.Item) (*SwapResult, error) {
	const op = "service.swap"

	current, err := s.client.CurrentEntry(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, failure.NoRunning(op)
	}

	if item.WorkspaceID != 0 && item.WorkspaceID != current.WorkspaceID {
		s.logger.Warn("swap target is in another workspace; keeping the running entry's workspace",
			"entry_workspace_id", current.WorkspaceID, "item_workspace_id", item.WorkspaceID)
	}

	desired := current.WithProjectID(item.ProjectID).WithDescription(item.Description)
	if desired.Equal(*current) {
		s.logger.Debug("swap skipped, entry already in desired state", "id", current.ID)
		return &SwapResult{Entry: *current, Previous: *current}, nil
	}

	if err := s.client.ReplaceEntry(ctx, desired); err != nil {
		return nil, err
	}
	return &SwapResult{Entry: desired, Previous: *current, Changed: true}, nil
}

// RecentEntries lists entries started since local midnight, most recent first.
func (s *TimerService) RecentEntries(ctx context.Context) ([]entry.Entry, error) {
	return s.client.ListEntries(ctx, timeutil.StartOfDay(s.now()))
}
