package models

import (
	"github.com/dirigent-io/dirigent/ent"
)

// CreateAssignmentRequest contains fields for creating an assignment.
type CreateAssignmentRequest struct {
	NamespaceID string `json:"namespace_id"`
	NorthStar   string `json:"north_star"`
	Independent *bool  `json:"independent,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
}

// UpdateAssignmentRequest is a partial patch for an assignment. A status
// change in the patch atomically adjusts the namespace counters.
type UpdateAssignmentRequest struct {
	NorthStar       *string `json:"north_star,omitempty"`
	Status          *string `json:"status,omitempty"`
	Independent     *bool   `json:"independent,omitempty"`
	Priority        *int    `json:"priority,omitempty"`
	Artifacts       *string `json:"artifacts,omitempty"`
	Decisions       *string `json:"decisions,omitempty"`
	BlockedReason   *string `json:"blocked_reason,omitempty"`
	AlignmentStatus *string `json:"alignment_status,omitempty"`
}

// RemoveAssignmentResult reports what a cascade delete removed.
type RemoveAssignmentResult struct {
	GroupsDeleted int `json:"groups_deleted"`
	JobsDeleted   int `json:"jobs_deleted"`
}

// GroupWithJobs pairs a group with its member jobs.
type GroupWithJobs struct {
	Group *ent.JobGroup `json:"group"`
	Jobs  []*ent.Job    `json:"jobs"`
}

// AssignmentWithGroups is an assignment plus its full chain, in walk
// order, with all jobs attached per group.
type AssignmentWithGroups struct {
	Assignment *ent.Assignment  `json:"assignment"`
	Groups     []*GroupWithJobs `json:"groups"`
}
