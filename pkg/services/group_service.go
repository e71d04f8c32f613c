package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/job"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/google/uuid"
)

// GroupService manages job groups, their member jobs and the group
// status derivation that fires whenever a member job goes terminal.
type GroupService struct {
	client   *ent.Client
	notifier QueueNotifier
}

// NewGroupService creates a new GroupService
func NewGroupService(client *ent.Client, notifier QueueNotifier) *GroupService {
	return &GroupService{client: client, notifier: notifier}
}

func validateJobDefs(jobs []models.JobDef) error {
	if len(jobs) == 0 {
		return ErrEmptyGroup
	}
	for i, def := range jobs {
		if def.JobType == "" {
			return NewValidationError("jobs", fmt.Sprintf("job %d: job_type required", i))
		}
		if err := job.HarnessValidator(job.Harness(def.Harness)); err != nil {
			return NewValidationError("jobs", fmt.Sprintf("job %d: %v", i, err))
		}
	}
	return nil
}

// createJobs inserts the member jobs of a new group. Creation times get
// incrementing microsecond offsets so iteration order is stable.
func createJobs(ctx context.Context, tx *ent.Tx, groupID string, jobs []models.JobDef) ([]string, error) {
	base := time.Now()
	jobIDs := make([]string, 0, len(jobs))
	for i, def := range jobs {
		builder := tx.Job.Create().
			SetID(uuid.New().String()).
			SetGroupID(groupID).
			SetJobType(def.JobType).
			SetHarness(job.Harness(def.Harness)).
			SetCreatedAt(base.Add(time.Duration(i) * time.Microsecond))
		if def.Context != nil {
			builder.SetContext(*def.Context)
		}
		j, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create job: %w", err)
		}
		jobIDs = append(jobIDs, j.ID)
	}
	return jobIDs, nil
}

// CreateGroup inserts a pending group with its member jobs. The first
// group of an assignment becomes its chain head; later groups are left
// unlinked until the caller splices them in with InsertGroupAfter.
func (s *GroupService) CreateGroup(httpCtx context.Context, assignmentID string, jobs []models.JobDef) (*models.CreateGroupResult, error) {
	if err := validateJobDefs(jobs); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	result := &models.CreateGroupResult{}
	var namespaceID string
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		asg, err := tx.Assignment.Get(ctx, assignmentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		namespaceID = asg.NamespaceID

		group, err := tx.JobGroup.Create().
			SetID(uuid.New().String()).
			SetAssignmentID(assignmentID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}

		jobIDs, err := createJobs(ctx, tx, group.ID, jobs)
		if err != nil {
			return err
		}

		if asg.HeadGroupID == nil {
			err := tx.Assignment.UpdateOneID(assignmentID).
				SetHeadGroupID(group.ID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to set head group: %w", err)
			}
		}

		result.GroupID = group.ID
		result.JobIDs = jobIDs
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, namespaceID)
	return result, nil
}

// InsertGroupAfter creates a group spliced into the chain directly
// after the given group. The new group takes over the predecessor's
// next pointer, then the predecessor is patched to point at it, all in
// one transaction.
func (s *GroupService) InsertGroupAfter(httpCtx context.Context, afterGroupID string, jobs []models.JobDef) (*models.CreateGroupResult, error) {
	if err := validateJobDefs(jobs); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	result := &models.CreateGroupResult{}
	var namespaceID string
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		predecessor, err := tx.JobGroup.Get(ctx, afterGroupID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get predecessor group: %w", err)
		}

		asg, err := tx.Assignment.Get(ctx, predecessor.AssignmentID)
		if err != nil {
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		namespaceID = asg.NamespaceID

		builder := tx.JobGroup.Create().
			SetID(uuid.New().String()).
			SetAssignmentID(predecessor.AssignmentID)
		if predecessor.NextGroupID != nil {
			builder.SetNextGroupID(*predecessor.NextGroupID)
		}
		group, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}

		jobIDs, err := createJobs(ctx, tx, group.ID, jobs)
		if err != nil {
			return err
		}

		err = tx.JobGroup.UpdateOneID(afterGroupID).
			SetNextGroupID(group.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to link predecessor: %w", err)
		}

		result.GroupID = group.ID
		result.JobIDs = jobIDs
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, namespaceID)
	return result, nil
}

// ListGroups returns all groups owned by an assignment, oldest first.
// Chain order is the assignment service's concern; this is the raw set.
func (s *GroupService) ListGroups(ctx context.Context, assignmentID string) ([]*ent.JobGroup, error) {
	groups, err := s.client.JobGroup.Query().
		Where(jobgroup.AssignmentIDEQ(assignmentID)).
		Order(ent.Asc(jobgroup.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// GetGroup retrieves a group by id.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*ent.JobGroup, error) {
	group, err := s.client.JobGroup.Get(ctx, groupID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// GetGroupWithJobs retrieves a group plus its member jobs in iteration
// order.
func (s *GroupService) GetGroupWithJobs(ctx context.Context, groupID string) (*models.GroupWithJobs, error) {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	jobs, err := groupJobs(ctx, s.client.Job.Query(), groupID)
	if err != nil {
		return nil, err
	}
	return &models.GroupWithJobs{Group: group, Jobs: jobs}, nil
}

// ListJobs returns jobs filtered by group and/or status, in iteration
// order.
func (s *GroupService) ListJobs(ctx context.Context, groupID *string, status *string) ([]*ent.Job, error) {
	query := s.client.Job.Query()
	if groupID != nil {
		query = query.Where(job.GroupIDEQ(*groupID))
	}
	if status != nil {
		query = query.Where(job.StatusEQ(job.Status(*status)))
	}
	jobs, err := query.
		Order(ent.Asc(job.FieldCreatedAt), ent.Asc(job.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// GetJob retrieves a job by id.
func (s *GroupService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// GetJobWithAssignment retrieves a job together with its enclosing
// group and assignment.
func (s *GroupService) GetJobWithAssignment(ctx context.Context, jobID string) (*models.JobWithAssignment, error) {
	j, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	group, err := s.GetGroup(ctx, j.GroupID)
	if err != nil {
		return nil, err
	}
	asg, err := s.client.Assignment.Get(ctx, group.AssignmentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &models.JobWithAssignment{Job: j, Group: group, Assignment: asg}, nil
}

// StartJob transitions a pending job to running, marks its group
// running and activates the owning assignment, all in one transaction.
func (s *GroupService) StartJob(httpCtx context.Context, jobID string, prompt *string) (*ent.Job, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	var started *ent.Job
	var namespaceID string
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		j, err := tx.Job.Get(ctx, jobID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get job: %w", err)
		}
		if j.Status != job.StatusPending {
			return fmt.Errorf("cannot start job in status %s: %w", j.Status, ErrIllegalTransition)
		}

		now := time.Now()
		update := tx.Job.UpdateOneID(jobID).
			SetStatus(job.StatusRunning).
			SetStartedAt(now).
			SetLastEventAt(now)
		if prompt != nil {
			update.SetPrompt(*prompt)
		}
		started, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to start job: %w", err)
		}

		group, err := tx.JobGroup.UpdateOneID(j.GroupID).
			SetStatus(jobgroup.StatusRunning).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark group running: %w", err)
		}

		asg, err := tx.Assignment.Get(ctx, group.AssignmentID)
		if err != nil {
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		namespaceID = asg.NamespaceID

		if asg.Status != assignment.StatusActive {
			err := tx.Assignment.UpdateOneID(asg.ID).
				SetStatus(assignment.StatusActive).
				ClearBlockedReason().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to activate assignment: %w", err)
			}
			err = addStatusCount(
				addStatusCount(tx.Namespace.UpdateOneID(asg.NamespaceID), asg.Status, -1),
				assignment.StatusActive, 1,
			).Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to adjust namespace counters: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, namespaceID)
	return started, nil
}

// CompleteJob transitions a running job to complete and re-derives the
// group status.
func (s *GroupService) CompleteJob(httpCtx context.Context, jobID, result string, metrics *models.JobMetrics) (*ent.Job, error) {
	return s.finishJob(httpCtx, jobID, job.StatusComplete, &result, metrics)
}

// FailJob transitions a job to failed. A pending job may also be
// failed directly, which is the admin-cancel path.
func (s *GroupService) FailJob(httpCtx context.Context, jobID string, result *string, metrics *models.JobMetrics) (*ent.Job, error) {
	return s.finishJob(httpCtx, jobID, job.StatusFailed, result, metrics)
}

func (s *GroupService) finishJob(httpCtx context.Context, jobID string, newStatus job.Status, result *string, metrics *models.JobMetrics) (*ent.Job, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	var finished *ent.Job
	var namespaceID string
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		j, err := tx.Job.Get(ctx, jobID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get job: %w", err)
		}
		switch {
		case j.Status == job.StatusRunning:
		case j.Status == job.StatusPending && newStatus == job.StatusFailed:
		default:
			return fmt.Errorf("cannot finish job in status %s: %w", j.Status, ErrIllegalTransition)
		}

		update := tx.Job.UpdateOneID(jobID).
			SetStatus(newStatus).
			SetCompletedAt(time.Now())
		if result != nil {
			update.SetResult(*result)
		}
		applyJobMetrics(update, metrics)
		finished, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to finish job: %w", err)
		}

		group, err := deriveGroupStatus(ctx, tx, j.GroupID)
		if err != nil {
			return err
		}

		asg, err := tx.Assignment.Get(ctx, group.AssignmentID)
		if err != nil {
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		namespaceID = asg.NamespaceID
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, namespaceID)
	return finished, nil
}

// UpdateMetrics merges runner telemetry into a job. Always allowed,
// never touches status.
func (s *GroupService) UpdateMetrics(httpCtx context.Context, jobID string, metrics models.JobMetrics) (*ent.Job, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.Job.UpdateOneID(jobID)
	applyJobMetrics(update, &metrics)
	j, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update job metrics: %w", err)
	}
	return j, nil
}

func applyJobMetrics(update *ent.JobUpdateOne, metrics *models.JobMetrics) {
	if metrics == nil {
		return
	}
	if metrics.ToolCallCount != nil {
		update.SetToolCallCount(*metrics.ToolCallCount)
	}
	if metrics.SubagentCount != nil {
		update.SetSubagentCount(*metrics.SubagentCount)
	}
	if metrics.TotalTokens != nil {
		update.SetTotalTokens(*metrics.TotalTokens)
	}
	if metrics.LastEventAt != nil {
		update.SetLastEventAt(*metrics.LastEventAt)
	}
	if metrics.ExitForced != nil {
		update.SetExitForced(*metrics.ExitForced)
	}
}

// deriveGroupStatus recomputes a group's status after a member job went
// terminal. If any member is still pending or running the group is left
// alone; otherwise the group becomes complete (at least one member
// succeeded) or failed, with the aggregated result persisted alongside.
// Idempotent: re-running on an all-terminal group yields the same row.
func deriveGroupStatus(ctx context.Context, tx *ent.Tx, groupID string) (*ent.JobGroup, error) {
	group, err := tx.JobGroup.Get(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	jobs, err := groupJobs(ctx, tx.Job.Query(), groupID)
	if err != nil {
		return nil, err
	}

	anySucceeded := false
	for _, j := range jobs {
		switch j.Status {
		case job.StatusPending, job.StatusRunning:
			return group, nil
		case job.StatusComplete:
			anySucceeded = true
		}
	}

	newStatus := jobgroup.StatusFailed
	if anySucceeded {
		newStatus = jobgroup.StatusComplete
	}

	group, err = tx.JobGroup.UpdateOneID(groupID).
		SetStatus(newStatus).
		SetAggregatedResult(aggregateResults(jobs)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist group status: %w", err)
	}
	return group, nil
}

// aggregateResults joins member-job results into one markdown document.
// Jobs without a result are skipped. Each section is headed by the job
// type; when a type occurs more than once its sections get letter
// suffixes (A, B, ...) in iteration order.
func aggregateResults(jobs []*ent.Job) string {
	typeCounts := make(map[string]int)
	for _, j := range jobs {
		if j.Result != nil {
			typeCounts[j.JobType]++
		}
	}

	letterSeen := make(map[string]int)
	sections := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if j.Result == nil {
			continue
		}
		label := j.JobType
		if typeCounts[j.JobType] > 1 {
			label = fmt.Sprintf("%s %c", j.JobType, 'A'+letterSeen[j.JobType])
			letterSeen[j.JobType]++
		}
		sections = append(sections, fmt.Sprintf("## %s\n%s", label, *j.Result))
	}
	return strings.Join(sections, "\n\n---\n\n")
}

// groupJobs loads a group's jobs in their stable iteration order.
func groupJobs(ctx context.Context, query *ent.JobQuery, groupID string) ([]*ent.Job, error) {
	jobs, err := query.
		Where(job.GroupIDEQ(groupID)).
		Order(ent.Asc(job.FieldCreatedAt), ent.Asc(job.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load group jobs: %w", err)
	}
	return jobs, nil
}
