package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/job"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/google/uuid"
)

// AssignmentService manages assignment lifecycle and the head pointer of
// each assignment's group chain. Status transitions keep the owning
// namespace's counters in step inside the same transaction.
type AssignmentService struct {
	client   *ent.Client
	notifier QueueNotifier
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(client *ent.Client, notifier QueueNotifier) *AssignmentService {
	return &AssignmentService{client: client, notifier: notifier}
}

// Create inserts a pending assignment and bumps the namespace's pending
// counter.
func (s *AssignmentService) Create(httpCtx context.Context, req models.CreateAssignmentRequest) (*ent.Assignment, error) {
	if req.NamespaceID == "" {
		return nil, NewValidationError("namespace_id", "required")
	}
	if req.NorthStar == "" {
		return nil, NewValidationError("north_star", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var created *ent.Assignment
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		builder := tx.Assignment.Create().
			SetID(uuid.New().String()).
			SetNamespaceID(req.NamespaceID).
			SetNorthStar(req.NorthStar)
		if req.Independent != nil {
			builder.SetIndependent(*req.Independent)
		}
		if req.Priority != nil {
			builder.SetPriority(*req.Priority)
		}

		asg, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		err = addStatusCount(tx.Namespace.UpdateOneID(req.NamespaceID), assignment.StatusPending, 1).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to increment namespace counter: %w", err)
		}

		created = asg
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, req.NamespaceID)
	return created, nil
}

// List returns assignments in a namespace, optionally filtered by
// status, newest first.
func (s *AssignmentService) List(ctx context.Context, namespaceID string, status *string) ([]*ent.Assignment, error) {
	query := s.client.Assignment.Query().
		Where(assignment.NamespaceIDEQ(namespaceID))
	if status != nil {
		query = query.Where(assignment.StatusEQ(assignment.Status(*status)))
	}
	assignments, err := query.
		Order(ent.Desc(assignment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// Get retrieves an assignment by id.
func (s *AssignmentService) Get(ctx context.Context, assignmentID string) (*ent.Assignment, error) {
	asg, err := s.client.Assignment.Get(ctx, assignmentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return asg, nil
}

// GetGroupChain returns the assignment's groups in chain order,
// starting at headGroupID. Bounded and cycle-checked.
func (s *AssignmentService) GetGroupChain(ctx context.Context, assignmentID string) ([]*ent.JobGroup, error) {
	asg, err := s.Get(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	return walkGroupChain(ctx, s.client, asg)
}

// GetWithGroups returns the assignment plus its full chain with every
// group's jobs attached, in chain order.
func (s *AssignmentService) GetWithGroups(ctx context.Context, assignmentID string) (*models.AssignmentWithGroups, error) {
	asg, err := s.Get(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	chain, err := walkGroupChain(ctx, s.client, asg)
	if err != nil {
		return nil, err
	}

	result := &models.AssignmentWithGroups{
		Assignment: asg,
		Groups:     make([]*models.GroupWithJobs, 0, len(chain)),
	}
	for _, group := range chain {
		jobs, err := s.client.Job.Query().
			Where(job.GroupIDEQ(group.ID)).
			Order(ent.Asc(job.FieldCreatedAt), ent.Asc(job.FieldID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load jobs for group %s: %w", group.ID, err)
		}
		result.Groups = append(result.Groups, &models.GroupWithJobs{Group: group, Jobs: jobs})
	}
	return result, nil
}

// Update applies a partial patch. A status change in the patch adjusts
// the namespace counters atomically with the patch itself.
func (s *AssignmentService) Update(httpCtx context.Context, assignmentID string, req models.UpdateAssignmentRequest) (*ent.Assignment, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var updated *ent.Assignment
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		asg, err := tx.Assignment.Get(ctx, assignmentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}

		update := tx.Assignment.UpdateOneID(assignmentID)
		if req.NorthStar != nil {
			update.SetNorthStar(*req.NorthStar)
		}
		if req.Independent != nil {
			update.SetIndependent(*req.Independent)
		}
		if req.Priority != nil {
			update.SetPriority(*req.Priority)
		}
		if req.Artifacts != nil {
			update.SetArtifacts(*req.Artifacts)
		}
		if req.Decisions != nil {
			update.SetDecisions(*req.Decisions)
		}
		if req.BlockedReason != nil {
			update.SetBlockedReason(*req.BlockedReason)
		}
		if req.AlignmentStatus != nil {
			update.SetAlignmentStatus(assignment.AlignmentStatus(*req.AlignmentStatus))
		}
		if req.Status != nil {
			newStatus := assignment.Status(*req.Status)
			if err := assignment.StatusValidator(newStatus); err != nil {
				return NewValidationError("status", err.Error())
			}
			if newStatus != asg.Status {
				update.SetStatus(newStatus)
				if newStatus != assignment.StatusBlocked {
					update.ClearBlockedReason()
				}
				err := addStatusCount(
					addStatusCount(tx.Namespace.UpdateOneID(asg.NamespaceID), asg.Status, -1),
					newStatus, 1,
				).Exec(ctx)
				if err != nil {
					return fmt.Errorf("failed to adjust namespace counters: %w", err)
				}
			}
		}

		updated, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, updated.NamespaceID)
	return updated, nil
}

// Complete marks the assignment complete.
func (s *AssignmentService) Complete(httpCtx context.Context, assignmentID string) (*ent.Assignment, error) {
	return s.transition(httpCtx, assignmentID, assignment.StatusComplete, nil)
}

// Block marks the assignment blocked with a reason.
func (s *AssignmentService) Block(httpCtx context.Context, assignmentID, reason string) (*ent.Assignment, error) {
	return s.transition(httpCtx, assignmentID, assignment.StatusBlocked, &reason)
}

// Unblock forces the assignment back to active (not pending).
func (s *AssignmentService) Unblock(httpCtx context.Context, assignmentID string) (*ent.Assignment, error) {
	return s.transition(httpCtx, assignmentID, assignment.StatusActive, nil)
}

func (s *AssignmentService) transition(httpCtx context.Context, assignmentID string, newStatus assignment.Status, blockedReason *string) (*ent.Assignment, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var updated *ent.Assignment
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		asg, err := tx.Assignment.Get(ctx, assignmentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}

		update := tx.Assignment.UpdateOneID(assignmentID).SetStatus(newStatus)
		if blockedReason != nil {
			update.SetBlockedReason(*blockedReason)
		} else {
			update.ClearBlockedReason()
		}

		if asg.Status != newStatus {
			err := addStatusCount(
				addStatusCount(tx.Namespace.UpdateOneID(asg.NamespaceID), asg.Status, -1),
				newStatus, 1,
			).Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to adjust namespace counters: %w", err)
			}
		}

		updated, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, updated.NamespaceID)
	return updated, nil
}

// Remove cascade-deletes the assignment: every group owned by it, every
// job in those groups, and the status counter it held. Chat threads
// that referenced it keep existing with the link cleared.
func (s *AssignmentService) Remove(httpCtx context.Context, assignmentID string) (*models.RemoveAssignmentResult, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 15*time.Second)
	defer cancel()

	result := &models.RemoveAssignmentResult{}
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

		// Delete by ownership, not by chain walk, so orphaned groups
		// (created but never spliced) and corrupt chains still clean up.
		groupIDs, err := tx.JobGroup.Query().
			Where(jobgroup.AssignmentIDEQ(assignmentID)).
			IDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list groups: %w", err)
		}

		if len(groupIDs) > 0 {
			jobsDeleted, err := tx.Job.Delete().
				Where(job.GroupIDIn(groupIDs...)).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete jobs: %w", err)
			}
			result.JobsDeleted = jobsDeleted

			groupsDeleted, err := tx.JobGroup.Delete().
				Where(jobgroup.AssignmentIDEQ(assignmentID)).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete groups: %w", err)
			}
			result.GroupsDeleted = groupsDeleted
		}

		_, err = tx.ChatThread.Update().
			Where(chatthread.AssignmentIDEQ(assignmentID)).
			ClearAssignmentID().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to unlink chat threads: %w", err)
		}

		err = addStatusCount(tx.Namespace.UpdateOneID(asg.NamespaceID), asg.Status, -1).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to decrement namespace counter: %w", err)
		}

		if err := tx.Assignment.DeleteOneID(assignmentID).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, namespaceID)
	return result, nil
}

// walkGroupChain follows headGroupID → nextGroupID, returning groups in
// chain order. Cycles, dangling pointers and over-long chains surface
// ErrChainCorrupt.
func walkGroupChain(ctx context.Context, client *ent.Client, asg *ent.Assignment) ([]*ent.JobGroup, error) {
	if asg.HeadGroupID == nil {
		return nil, nil
	}

	var chain []*ent.JobGroup
	visited := make(map[string]bool)
	nextID := *asg.HeadGroupID
	for i := 0; i < MaxChainDepth; i++ {
		if visited[nextID] {
			return nil, fmt.Errorf("cycle at group %s in assignment %s: %w", nextID, asg.ID, ErrChainCorrupt)
		}
		visited[nextID] = true

		group, err := client.JobGroup.Get(ctx, nextID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("dangling pointer to group %s in assignment %s: %w", nextID, asg.ID, ErrChainCorrupt)
			}
			return nil, fmt.Errorf("failed to load group %s: %w", nextID, err)
		}
		chain = append(chain, group)

		if group.NextGroupID == nil {
			return chain, nil
		}
		nextID = *group.NextGroupID
	}
	return nil, fmt.Errorf("chain exceeds %d groups in assignment %s: %w", MaxChainDepth, asg.ID, ErrChainCorrupt)
}
