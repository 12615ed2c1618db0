package service

import (
	"context"
	"time"

	"github.com/xolan/tog/internal/entry"
)

// fakeClient records calls and serves canned responses.
type fakeClient struct {
	current    *entry.Entry
	currentErr error

	listed  []entry.Entry
	listErr error

	created   *entry.Entry
	createErr error

	stopped *entry.Entry
	stopErr error

	replaceErr error

	listSince []time.Time
	creates   []createCall
	stops     []entry.Entry
	replaces  []entry.Entry
}

type createCall struct {
	WorkspaceID int64
	ProjectID   int64
	Description string
	Start       time.Time
}

func (f *fakeClient) CurrentEntry(ctx context.Context) (*entry.Entry, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	if f.current == nil {
		return nil, nil
	}
	e := *f.current
	return &e, nil
}

func (f *fakeClient) ListEntries(ctx context.Context, since time.Time) ([]entry.Entry, error) {
	f.listSince = append(f.listSince, since)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entry.Entry(nil), f.listed...), nil
}

func (f *fakeClient) CreateEntry(ctx context.Context, workspaceID, projectID int64, description string, start time.Time) (*entry.Entry, error) {
	f.creates = append(f.creates, createCall{workspaceID, projectID, description, start})
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &entry.Entry{
		ID:          99,
		WorkspaceID: workspaceID,
		ProjectID:   projectID,
		Description: description,
		Start:       start,
		Duration:    -1,
	}, nil
}

func (f *fakeClient) StopEntry(ctx context.Context, e entry.Entry) (*entry.Entry, error) {
	f.stops = append(f.stops, e)
	if f.stopErr != nil {
		return nil, f.stopErr
	}
	return f.stopped, nil
}

func (f *fakeClient) ReplaceEntry(ctx context.Context, e entry.Entry) error {
	f.replaces = append(f.replaces, e)
	if f.replaceErr != nil {
		return f.replaceErr
	}
	// Later reads see the replacement.
	if f.current != nil && f.current.ID == e.ID {
		replaced := e
		f.current = &replaced
	}
	for i := range f.listed {
		if f.listed[i].ID == e.ID {
			f.listed[i] = e
		}
	}
	return nil
}

func (f *fakeClient) mutations() int {
	return len(f.creates) + len(f.stops) + len(f.replaces)
}
