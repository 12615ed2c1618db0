package toggl

import (
	"time"

	"github.com/xolan/tog/internal/entry"
)

// createRequest is the JSON body sent to POST /workspaces/{wid}/time_entries.
type createRequest struct {
	CreatedWith string    `json:"created_with"`
	WorkspaceID int64     `json:"workspace_id"`
	ProjectID   int64     `json:"project_id,omitempty"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	Duration    int64     `json:"duration"`
}

// replaceRequest is the JSON body sent to PUT /workspaces/{wid}/time_entries/{id}.
// The entry is sent whole so the update is a full overwrite.
type replaceRequest struct {
	entry.Entry
	CreatedWith string `json:"created_with"`
}
