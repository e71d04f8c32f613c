// Package scheduler computes the set of dispatchable jobs for a
// namespace. It is a pure read: it never mutates, and any write to
// assignments, groups or jobs invalidates its result (consumers are
// re-notified through the event stream).
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/job"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/dirigent-io/dirigent/pkg/services"
)

// Scheduler answers "what should the runner execute next" per
// namespace.
type Scheduler struct {
	client *ent.Client
	logger *slog.Logger
}

// NewScheduler creates a new Scheduler
func NewScheduler(client *ent.Client, logger *slog.Logger) *Scheduler {
	return &Scheduler{client: client, logger: logger.With("component", "scheduler")}
}

// ReadyJobs returns every dispatchable job in the namespace together
// with the context snapshots its runner needs.
//
// Eligibility is decided per assignment: blocked and complete
// assignments never contribute, an assignment with a running group
// never contributes, independent assignments contribute on their own,
// and the sequential set contributes through at most one member (the
// active one, else the pending one with the lowest (priority,
// createdAt)). A corrupt chain silences its assignment rather than the
// whole namespace.
func (s *Scheduler) ReadyJobs(ctx context.Context, namespaceID string) ([]models.ReadyJob, error) {
	assignments, err := s.client.Assignment.Query().
		Where(
			assignment.NamespaceIDEQ(namespaceID),
			assignment.StatusIn(assignment.StatusPending, assignment.StatusActive),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	if len(assignments) == 0 {
		return []models.ReadyJob{}, nil
	}

	assignmentIDs := make([]string, 0, len(assignments))
	for _, asg := range assignments {
		assignmentIDs = append(assignmentIDs, asg.ID)
	}
	runningGroups, err := s.client.JobGroup.Query().
		Where(
			jobgroup.AssignmentIDIn(assignmentIDs...),
			jobgroup.StatusEQ(jobgroup.StatusRunning),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load running groups: %w", err)
	}
	hasRunningGroup := make(map[string]bool, len(runningGroups))
	for _, g := range runningGroups {
		hasRunningGroup[g.AssignmentID] = true
	}

	var candidates []*ent.Assignment
	var sequential []*ent.Assignment
	for _, asg := range assignments {
		if asg.Independent {
			if !hasRunningGroup[asg.ID] {
				candidates = append(candidates, asg)
			}
			continue
		}
		sequential = append(sequential, asg)
	}

	// The sequential slot is held by the active member, else by the
	// best pending one. A holder with a running group keeps the slot
	// occupied while contributing nothing, so no other sequential
	// assignment can slip in ahead of it.
	if holder := pickSequential(sequential); holder != nil && !hasRunningGroup[holder.ID] {
		candidates = append(candidates, holder)
	}

	ready := []models.ReadyJob{}
	for _, asg := range candidates {
		jobs, err := s.walkChain(ctx, asg)
		if err != nil {
			if errors.Is(err, services.ErrChainCorrupt) {
				s.logger.Warn("skipping assignment with corrupt chain",
					"assignment_id", asg.ID, "error", err)
				continue
			}
			return nil, err
		}
		ready = append(ready, jobs...)
	}
	return ready, nil
}

func pickSequential(sequential []*ent.Assignment) *ent.Assignment {
	var best *ent.Assignment
	for _, asg := range sequential {
		if asg.Status == assignment.StatusActive {
			return asg
		}
		if best == nil ||
			asg.Priority < best.Priority ||
			(asg.Priority == best.Priority && asg.CreatedAt.Before(best.CreatedAt)) {
			best = asg
		}
	}
	return best
}

// isReviewType reports whether a job type carries review semantics.
func isReviewType(jobType string) bool {
	return jobType == "review" || strings.HasSuffix(jobType, "review")
}

func containsJobType(jobs []*ent.Job, match func(string) bool) bool {
	for _, j := range jobs {
		if match(j.JobType) {
			return true
		}
	}
	return false
}

// walkChain walks one assignment's group chain in order, carrying three
// result accumulators:
//
//   - accumulated: every completed group's output since the last pm
//     checkpoint (pm groups clear it).
//   - lastNonPM: the most recent completed non-pm group's output.
//   - r1: lastNonPM as captured on entering a review group, i.e. the
//     work the review examined.
//
// The walk stops at the first group that is ready (has pending jobs and
// nothing running) or in flight.
func (s *Scheduler) walkChain(ctx context.Context, asg *ent.Assignment) ([]models.ReadyJob, error) {
	if asg.HeadGroupID == nil {
		return nil, nil
	}

	var accumulated, lastNonPM, r1 []models.JobResult
	groupIndex := 0

	visited := make(map[string]bool)
	nextID := *asg.HeadGroupID
	for depth := 0; depth < services.MaxChainDepth; depth++ {
		if visited[nextID] {
			return nil, fmt.Errorf("cycle at group %s in assignment %s: %w", nextID, asg.ID, services.ErrChainCorrupt)
		}
		visited[nextID] = true

		group, err := s.client.JobGroup.Get(ctx, nextID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("dangling pointer to group %s in assignment %s: %w", nextID, asg.ID, services.ErrChainCorrupt)
			}
			return nil, fmt.Errorf("failed to load group %s: %w", nextID, err)
		}

		jobs, err := s.client.Job.Query().
			Where(job.GroupIDEQ(group.ID)).
			Order(ent.Asc(job.FieldCreatedAt), ent.Asc(job.FieldID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load jobs for group %s: %w", group.ID, err)
		}

		pending := 0
		running := 0
		for _, j := range jobs {
			switch j.Status {
			case job.StatusPending:
				pending++
			case job.StatusRunning:
				running++
			}
		}

		if running > 0 {
			// In-flight group blocks everything behind it.
			return nil, nil
		}
		if pending > 0 {
			// A review group entering now examines the work directly
			// before it.
			deliveredR1 := r1
			if containsJobType(jobs, isReviewType) {
				deliveredR1 = lastNonPM
			}
			ready := make([]models.ReadyJob, 0, pending)
			for _, j := range jobs {
				if j.Status != job.StatusPending {
					continue
				}
				ready = append(ready, models.ReadyJob{
					Job:                       j,
					Group:                     group,
					Assignment:                asg,
					AccumulatedResults:        snapshotResults(accumulated),
					PreviousNonPMGroupResults: snapshotResults(lastNonPM),
					R1GroupResults:            snapshotResults(deliveredR1),
				})
			}
			return ready, nil
		}

		// All terminal: fold this group into the accumulators.
		isPM := containsJobType(jobs, func(t string) bool { return t == "pm" })
		if isPM {
			// A pm checkpoint consumes everything before it.
			accumulated = nil
			lastNonPM = nil
			groupIndex = 0
		} else {
			if containsJobType(jobs, isReviewType) {
				r1 = lastNonPM
			}
			results := groupResults(jobs, group.ID, groupIndex)
			accumulated = append(accumulated, results...)
			lastNonPM = results
			groupIndex++
		}

		if group.NextGroupID == nil {
			return nil, nil
		}
		nextID = *group.NextGroupID
	}
	return nil, fmt.Errorf("chain exceeds %d groups in assignment %s: %w", services.MaxChainDepth, asg.ID, services.ErrChainCorrupt)
}

func groupResults(jobs []*ent.Job, groupID string, groupIndex int) []models.JobResult {
	results := make([]models.JobResult, 0, len(jobs))
	for _, j := range jobs {
		if j.Result == nil {
			continue
		}
		results = append(results, models.JobResult{
			JobType:    j.JobType,
			Harness:    string(j.Harness),
			Result:     *j.Result,
			GroupID:    groupID,
			GroupIndex: groupIndex,
		})
	}
	return results
}

func snapshotResults(results []models.JobResult) []models.JobResult {
	if results == nil {
		return []models.JobResult{}
	}
	out := make([]models.JobResult, len(results))
	copy(out, results)
	return out
}

// ReadyChatJobs returns the namespace's pending chat jobs oldest first.
// Chat jobs bypass assignment eligibility entirely.
func (s *Scheduler) ReadyChatJobs(ctx context.Context, namespaceID string) ([]*ent.ChatJob, error) {
	jobs, err := s.client.ChatJob.Query().
		Where(
			chatjob.NamespaceIDEQ(namespaceID),
			chatjob.StatusEQ(chatjob.StatusPending),
		).
		Order(ent.Asc(chatjob.FieldCreatedAt), ent.Asc(chatjob.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending chat jobs: %w", err)
	}
	return jobs, nil
}

// QueueStatus summarizes both queues of a namespace.
func (s *Scheduler) QueueStatus(ctx context.Context, namespaceID string) (*models.QueueStatus, error) {
	ready, err := s.ReadyJobs(ctx, namespaceID)
	if err != nil {
		return nil, err
	}

	runningJobs, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.HasGroupWith(jobgroup.HasAssignmentWith(assignment.NamespaceIDEQ(namespaceID))),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count running jobs: %w", err)
	}

	pendingChat, err := s.client.ChatJob.Query().
		Where(chatjob.NamespaceIDEQ(namespaceID), chatjob.StatusEQ(chatjob.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending chat jobs: %w", err)
	}
	runningChat, err := s.client.ChatJob.Query().
		Where(chatjob.NamespaceIDEQ(namespaceID), chatjob.StatusEQ(chatjob.StatusRunning)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count running chat jobs: %w", err)
	}

	return &models.QueueStatus{
		NamespaceID:     namespaceID,
		ReadyJobs:       len(ready),
		RunningJobs:     runningJobs,
		PendingChatJobs: pendingChat,
		RunningChatJobs: runningChat,
		ActiveWork:      len(ready)+runningJobs+pendingChat+runningChat > 0,
	}, nil
}

// AllAssignments returns every assignment in the namespace regardless
// of status, newest first. Dashboard feed.
func (s *Scheduler) AllAssignments(ctx context.Context, namespaceID string) ([]*ent.Assignment, error) {
	assignments, err := s.client.Assignment.Query().
		Where(assignment.NamespaceIDEQ(namespaceID)).
		Order(ent.Desc(assignment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}
