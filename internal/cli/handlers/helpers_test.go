package handlers

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/tog/internal/catalog"
	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/config"
	"github.com/xolan/tog/internal/entry"
	"github.com/xolan/tog/internal/osutil"
	"github.com/xolan/tog/internal/service"
)

// now is the fixed clock for every handler test: 11:00 UTC.
var now = time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		{ID: 5, Name: "Internal", WorkspaceID: 10, Activities: []string{"Coding", "Meeting"}},
		{ID: 7, Name: "Client", WorkspaceID: 10, Activities: []string{"Review"}},
	}
}

func running(id, projectID int64, desc string, start time.Time) entry.Entry {
	return entry.Entry{ID: id, WorkspaceID: 10, ProjectID: projectID, Description: desc, Start: start, Duration: -1}
}

func stopped(id, projectID int64, desc string, start, stop time.Time) entry.Entry {
	return entry.Entry{
		ID:          id,
		WorkspaceID: 10,
		ProjectID:   projectID,
		Description: desc,
		Start:       start,
		Stop:        &stop,
		Duration:    int64(stop.Sub(start).Seconds()),
	}
}

// fakeTimer is an in-memory TimerClient.
type fakeTimer struct {
	current  *entry.Entry
	entries  []entry.Entry // most recent first
	err      error
	created  []entry.Entry
	stops    int
	replaced []entry.Entry
}

func (f *fakeTimer) CurrentEntry(_ context.Context) (*entry.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.current == nil {
		return nil, nil
	}
	c := *f.current
	return &c, nil
}

func (f *fakeTimer) ListEntries(_ context.Context, _ time.Time) ([]entry.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]entry.Entry(nil), f.entries...), nil
}

func (f *fakeTimer) CreateEntry(_ context.Context, workspaceID, projectID int64, description string, start time.Time) (*entry.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	e := entry.Entry{
		ID:          int64(100 + len(f.created)),
		WorkspaceID: workspaceID,
		ProjectID:   projectID,
		Description: description,
		Start:       start,
		Duration:    -1,
	}
	f.created = append(f.created, e)
	f.current = &e
	return &e, nil
}

func (f *fakeTimer) StopEntry(_ context.Context, e entry.Entry) (*entry.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.stops++
	stop := now
	e.Stop = &stop
	e.Duration = int64(stop.Sub(e.Start).Seconds())
	f.current = nil
	return &e, nil
}

func (f *fakeTimer) ReplaceEntry(_ context.Context, e entry.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = append(f.replaced, e)
	if f.current != nil && f.current.ID == e.ID {
		c := e
		f.current = &c
	}
	for i := range f.entries {
		if f.entries[i].ID == e.ID {
			f.entries[i] = e
		}
	}
	return nil
}

// fakePrompter answers every prompt from its fields and records what it was asked.
type fakePrompter struct {
	choice  int
	input   string
	confirm bool
	err     error

	options     []string
	inputs      int
	confirms    int
	description string
}

func (p *fakePrompter) Select(_ string, options []string) (int, error) {
	p.options = options
	if p.err != nil {
		return -1, p.err
	}
	return p.choice, nil
}

func (p *fakePrompter) Input(_, _ string) (string, error) {
	p.inputs++
	if p.err != nil {
		return "", p.err
	}
	return p.input, nil
}

func (p *fakePrompter) Confirm(_, description string) (bool, error) {
	p.confirms++
	p.description = description
	if p.err != nil {
		return false, p.err
	}
	return p.confirm, nil
}

func setupTestDeps(t *testing.T, client *fakeTimer, prompter *fakePrompter) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.APIToken = "secret"
	cfg.Projects = testCatalog()

	services := &service.Services{
		Timer: service.NewTimerService(client, cfg.Projects,
			service.WithClock(func() time.Time { return now })),
		Config:  service.NewConfigService(filepath.Join(tmpDir, config.ConfigFile), cfg),
		Catalog: cfg.Projects,
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Prompter: prompter,
		Styles:   cli.PlainStyles(),
		Services: services,
	}

	return deps, stdout, stderr, &exitCode
}

// dirProvider points the config directory at a temp dir and serves env from a map.
type dirProvider struct {
	dir string
	env map[string]string
}

func (p dirProvider) UserConfigDir() (string, error)               { return p.dir, nil }
func (p dirProvider) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (p dirProvider) Getenv(key string) string                     { return p.env[key] }

// useConfigDir redirects config lookups to a fresh directory and returns it.
func useConfigDir(t *testing.T, env map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	osutil.SetProvider(dirProvider{dir: dir, env: env})
	t.Cleanup(osutil.ResetProvider)
	return filepath.Join(dir, config.AppName)
}
