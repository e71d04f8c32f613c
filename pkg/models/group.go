package models

import (
	"time"

	"github.com/dirigent-io/dirigent/ent"
)

// JobDef describes one job inside a group-creation request.
type JobDef struct {
	JobType string  `json:"job_type"`
	Harness string  `json:"harness"`
	Context *string `json:"context,omitempty"`
}

// CreateGroupResult reports the ids minted by group creation.
type CreateGroupResult struct {
	GroupID string   `json:"group_id"`
	JobIDs  []string `json:"job_ids"`
}

// JobWithAssignment is a job with its enclosing group and assignment.
type JobWithAssignment struct {
	Job        *ent.Job        `json:"job"`
	Group      *ent.JobGroup   `json:"group"`
	Assignment *ent.Assignment `json:"assignment"`
}

// JobMetrics carries runner-reported telemetry. All fields are optional;
// present fields overwrite the stored value (last write wins).
type JobMetrics struct {
	ToolCallCount *int       `json:"tool_call_count,omitempty"`
	SubagentCount *int       `json:"subagent_count,omitempty"`
	TotalTokens   *int       `json:"total_tokens,omitempty"`
	LastEventAt   *time.Time `json:"last_event_at,omitempty"`
	ExitForced    *bool      `json:"exit_forced,omitempty"`
}
