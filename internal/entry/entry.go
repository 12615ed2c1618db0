package entry

import "time"

// Entry is one tracked interval on the remote service.
// Values are never mutated in place; use the With* methods to derive edits.
type Entry struct {
	ID          int64      `json:"id,omitempty"` // 0 until the service assigns one
	WorkspaceID int64      `json:"workspace_id"`
	ProjectID   int64      `json:"project_id,omitempty"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	Stop        *time.Time `json:"stop,omitempty"` // nil while running
	Duration    int64      `json:"duration"`       // seconds, negative while running
}

// HasID reports whether the service has assigned an identity.
func (e Entry) HasID() bool {
	return e.ID != 0
}

// IsRunning reports whether the entry is the clock that is currently ticking.
func (e Entry) IsRunning() bool {
	return e.Stop == nil || e.Duration < 0
}

// End returns the stop time, or now if the entry is still running.
func (e Entry) End(now time.Time) time.Time {
	if e.Stop == nil {
		return now
	}
	return *e.Stop
}

// Elapsed returns the length of the entry as of now.
func (e Entry) Elapsed(now time.Time) time.Duration {
	return e.End(now).Sub(e.Start)
}

// WithProjectID returns a copy of e with ProjectID replaced.
func (e Entry) WithProjectID(id int64) Entry {
	c := e.clone()
	c.ProjectID = id
	return c
}

// WithDescription returns a copy of e with Description replaced.
func (e Entry) WithDescription(desc string) Entry {
	c := e.clone()
	c.Description = desc
	return c
}

// WithStart returns a copy of e with Start replaced.
func (e Entry) WithStart(start time.Time) Entry {
	c := e.clone()
	c.Start = start
	return c
}

// Equal compares every field. Times compare as instants.
func (e Entry) Equal(o Entry) bool {
	if e.ID != o.ID ||
		e.WorkspaceID != o.WorkspaceID ||
		e.ProjectID != o.ProjectID ||
		e.Description != o.Description ||
		e.Duration != o.Duration ||
		!e.Start.Equal(o.Start) {
		return false
	}
	if e.Stop == nil || o.Stop == nil {
		return e.Stop == nil && o.Stop == nil
	}
	return e.Stop.Equal(*o.Stop)
}

func (e Entry) clone() Entry {
	if e.Stop != nil {
		stop := *e.Stop
		e.Stop = &stop
	}
	return e
}
