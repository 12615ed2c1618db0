// Package toggl is the HTTP transport to the Toggl Track v9 API.
// It only builds requests, decodes entries and classifies failures;
// every policy decision lives in the service layer.
package toggl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xolan/tog/internal/entry"
	"github.com/xolan/tog/internal/failure"
)

const (
	// DefaultBaseURL is the API root without the version segment.
	DefaultBaseURL = "https://api.track.toggl.com/api"
	// APIVersion is appended to the base URL for every request.
	APIVersion = "v9"
	// CreatedWith identifies this client to the service.
	CreatedWith = "tog"

	// The service expects the token as username and this literal as password.
	basicAuthPassword = "api_token"

	// runningDuration marks a newly created entry as running.
	runningDuration = -1

	maxErrorBody = 512
)

// ClientConfig holds connection settings for one account.
type ClientConfig struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration    // ignored when HTTPClient is set
	HTTPClient *http.Client     // nil builds one from Timeout
	UserAgent  string           // defaults to CreatedWith
	Now        func() time.Time // nil uses time.Now
}

// Client talks to the time entry endpoints. It holds no state between calls.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
	now       func() time.Time
	logger    *slog.Logger
}

// NewClient creates a Client bound to cfg.Token and cfg.BaseURL.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = CreatedWith
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:   base,
		token:     cfg.Token,
		userAgent: userAgent,
		http:      httpClient,
		now:       now,
		logger:    logger,
	}
}

// CurrentEntry returns the running entry, or nil when nothing is running.
func (c *Client) CurrentEntry(ctx context.Context) (*entry.Entry, error) {
	const op = "toggl.current"

	body, err := c.do(ctx, op, http.MethodGet, "/me/time_entries/current", nil, nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	return decodeEntry(op, trimmed)
}

// ListEntries returns entries started in [since, now), in the order the
// service returns them (most recent first).
func (c *Client) ListEntries(ctx context.Context, since time.Time) ([]entry.Entry, error) {
	const op = "toggl.list"

	query := url.Values{}
	query.Set("start_date", since.UTC().Format(time.RFC3339))
	query.Set("end_date", c.now().UTC().Format(time.RFC3339))

	body, err := c.do(ctx, op, http.MethodGet, "/me/time_entries", query, nil)
	if err != nil {
		return nil, err
	}

	var entries []entry.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, failure.DecodeErr(op, err)
	}
	for i := range entries {
		if err := checkEntry(op, entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// CreateEntry starts a new running entry at start.
func (c *Client) CreateEntry(ctx context.Context, workspaceID, projectID int64, description string, start time.Time) (*entry.Entry, error) {
	const op = "toggl.create"

	if workspaceID == 0 {
		return nil, failure.Invalid(op, "workspace id is required")
	}

	req := createRequest{
		CreatedWith: CreatedWith,
		WorkspaceID: workspaceID,
		ProjectID:   projectID,
		Description: description,
		Start:       start.UTC().Truncate(time.Second),
		Duration:    runningDuration,
	}

	path := fmt.Sprintf("/workspaces/%d/time_entries", workspaceID)
	body, err := c.do(ctx, op, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, err
	}
	return decodeEntry(op, body)
}

// StopEntry stops e on the service and returns the stopped entry.
func (c *Client) StopEntry(ctx context.Context, e entry.Entry) (*entry.Entry, error) {
	const op = "toggl.stop"

	if err := requireIdentity(op, e); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/workspaces/%d/time_entries/%d/stop", e.WorkspaceID, e.ID)
	body, err := c.do(ctx, op, http.MethodPatch, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntry(op, body)
}

// ReplaceEntry overwrites the stored entry with e.
func (c *Client) ReplaceEntry(ctx context.Context, e entry.Entry) error {
	const op = "toggl.replace"

	if err := requireIdentity(op, e); err != nil {
		return err
	}

	path := fmt.Sprintf("/workspaces/%d/time_entries/%d", e.WorkspaceID, e.ID)
	_, err := c.do(ctx, op, http.MethodPut, path, nil, replaceRequest{Entry: e, CreatedWith: CreatedWith})
	return err
}

// do sends one request and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, failure.TransportErr(op, fmt.Errorf("encoding request: %w", err))
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.baseURL + "/" + APIVersion + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, failure.TransportErr(op, fmt.Errorf("creating request: %w", err))
	}
	req.SetBasicAuth(c.token, basicAuthPassword)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("toggl request failed", "op", op, "method", method, "path", path, "error", err)
		return nil, failure.TransportErr(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure.TransportErr(op, fmt.Errorf("reading response: %w", err))
	}

	c.logger.Debug("toggl request",
		"op", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, failure.TransportMsg(op, "HTTP %d: %s", resp.StatusCode, excerpt(body))
	}
	return body, nil
}

func decodeEntry(op string, body []byte) (*entry.Entry, error) {
	var e entry.Entry
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, failure.DecodeErr(op, err)
	}
	if err := checkEntry(op, e); err != nil {
		return nil, err
	}
	return &e, nil
}

// checkEntry rejects bodies that decoded but lack required fields.
func checkEntry(op string, e entry.Entry) error {
	switch {
	case e.ID == 0:
		return failure.DecodeMsg(op, "entry has no id")
	case e.WorkspaceID == 0:
		return failure.DecodeMsg(op, "entry %d has no workspace_id", e.ID)
	case e.Start.IsZero():
		return failure.DecodeMsg(op, "entry %d has no start", e.ID)
	}
	return nil
}

func requireIdentity(op string, e entry.Entry) error {
	if !e.HasID() {
		return failure.Invalid(op, "entry has no id")
	}
	if e.WorkspaceID == 0 {
		return failure.Invalid(op, "entry %d has no workspace id", e.ID)
	}
	return nil
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "(empty body)"
	}
	if len(s) > maxErrorBody {
		return s[:maxErrorBody-3] + "..."
	}
	return s
}
