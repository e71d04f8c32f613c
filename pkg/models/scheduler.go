package models

import (
	"github.com/dirigent-io/dirigent/ent"
)

// JobResult is a completed job's output as seen by the scheduler's
// chain walk: enough to rebuild context for downstream jobs.
type JobResult struct {
	JobType    string `json:"job_type"`
	Harness    string `json:"harness"`
	Result     string `json:"result"`
	GroupID    string `json:"group_id"`
	GroupIndex int    `json:"group_index"`
}

// ReadyJob is a dispatchable job together with the context snapshots
// the runner needs to build its prompt.
type ReadyJob struct {
	Job        *ent.Job        `json:"job"`
	Group      *ent.JobGroup   `json:"group"`
	Assignment *ent.Assignment `json:"assignment"`

	// AccumulatedResults is everything completed since the last pm
	// checkpoint, in chain order.
	AccumulatedResults []JobResult `json:"accumulated_results"`
	// PreviousNonPMGroupResults is the most recent completed non-pm
	// group's output.
	PreviousNonPMGroupResults []JobResult `json:"previous_non_pm_group_results"`
	// R1GroupResults is the non-pm group captured immediately before
	// the most recent review group — the work that review examined.
	R1GroupResults []JobResult `json:"r1_group_results"`
}

// QueueStatus summarizes a namespace's queues for dashboards.
type QueueStatus struct {
	NamespaceID     string `json:"namespace_id"`
	ReadyJobs       int    `json:"ready_jobs"`
	RunningJobs     int    `json:"running_jobs"`
	PendingChatJobs int    `json:"pending_chat_jobs"`
	RunningChatJobs int    `json:"running_chat_jobs"`
	ActiveWork      bool   `json:"active_work"`
}
