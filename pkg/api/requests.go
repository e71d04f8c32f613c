package api

import (
	"github.com/dirigent-io/dirigent/pkg/models"
)

// BlockAssignmentRequest is the body for blocking an assignment.
type BlockAssignmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CreateGroupRequest is the body for group creation and insertion.
type CreateGroupRequest struct {
	Jobs []models.JobDef `json:"jobs"`
}

// StartJobRequest is the body for starting a job or chat job.
type StartJobRequest struct {
	Prompt *string `json:"prompt,omitempty"`
}

// CompleteJobRequest is the body for completing a job or chat job.
type CompleteJobRequest struct {
	Result  string             `json:"result"`
	Metrics *models.JobMetrics `json:"metrics,omitempty"`
}

// FailJobRequest is the body for failing a job or chat job.
type FailJobRequest struct {
	Result  *string            `json:"result,omitempty"`
	Metrics *models.JobMetrics `json:"metrics,omitempty"`
}

// UpdateThreadFieldRequest carries a single string field update.
type UpdateThreadFieldRequest struct {
	Value string `json:"value" binding:"required"`
}

// LinkAssignmentRequest is the body for linking a thread to an
// assignment. An empty id unlinks.
type LinkAssignmentRequest struct {
	AssignmentID string `json:"assignment_id"`
}

// EnableGuardianRequest is the body for enabling guardian mode.
type EnableGuardianRequest struct {
	AssignmentID string `json:"assignment_id" binding:"required"`
}
