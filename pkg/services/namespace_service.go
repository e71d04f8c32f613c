// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/namespace"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/google/uuid"
)

// NamespaceService manages namespaces and their denormalized
// assignment-status counters.
type NamespaceService struct {
	client *ent.Client
}

// NewNamespaceService creates a new NamespaceService
func NewNamespaceService(client *ent.Client) *NamespaceService {
	return &NamespaceService{client: client}
}

// Create inserts a namespace. Idempotent on name: if the name already
// exists (including a concurrent create racing this one), the existing
// namespace is returned.
func (s *NamespaceService) Create(httpCtx context.Context, req models.CreateNamespaceRequest) (*ent.Namespace, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.Namespace.Query().
		Where(namespace.NameEQ(req.Name)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query namespace: %w", err)
	}

	builder := s.client.Namespace.Create().
		SetID(uuid.New().String()).
		SetName(req.Name)
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}

	ns, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: another request created the name first — return it.
			existing, queryErr := s.client.Namespace.Query().
				Where(namespace.NameEQ(req.Name)).
				Only(ctx)
			if queryErr != nil {
				return nil, fmt.Errorf("failed to query namespace after constraint error: %w", queryErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create namespace: %w", err)
	}

	return ns, nil
}

// List returns all namespaces ordered by name.
func (s *NamespaceService) List(ctx context.Context) ([]*ent.Namespace, error) {
	namespaces, err := s.client.Namespace.Query().
		Order(ent.Asc(namespace.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}
	return namespaces, nil
}

// Get retrieves a namespace by id.
func (s *NamespaceService) Get(ctx context.Context, namespaceID string) (*ent.Namespace, error) {
	ns, err := s.client.Namespace.Get(ctx, namespaceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get namespace: %w", err)
	}
	return ns, nil
}

// GetByName retrieves a namespace by its unique name.
func (s *NamespaceService) GetByName(ctx context.Context, name string) (*ent.Namespace, error) {
	ns, err := s.client.Namespace.Query().
		Where(namespace.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get namespace by name: %w", err)
	}
	return ns, nil
}

// Update applies a partial patch to a namespace.
func (s *NamespaceService) Update(httpCtx context.Context, namespaceID string, req models.UpdateNamespaceRequest) (*ent.Namespace, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.Namespace.UpdateOneID(namespaceID)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}

	ns, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update namespace: %w", err)
	}
	return ns, nil
}

// Remove deletes a namespace; assignments, groups, jobs, threads,
// messages and chat jobs go with it via ON DELETE CASCADE.
func (s *NamespaceService) Remove(httpCtx context.Context, namespaceID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	err := s.client.Namespace.DeleteOneID(namespaceID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete namespace: %w", err)
	}
	return nil
}

// Counts extracts the denormalized counters from a namespace row.
func Counts(ns *ent.Namespace) models.AssignmentCounts {
	return models.AssignmentCounts{
		Pending:  ns.PendingCount,
		Active:   ns.ActiveCount,
		Blocked:  ns.BlockedCount,
		Complete: ns.CompleteCount,
	}
}

// BackfillCounts recomputes assignment counters for every namespace by
// scanning its assignments. Self-healing for counter drift; safe to run
// at any time.
func (s *NamespaceService) BackfillCounts(httpCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 60*time.Second)
	defer cancel()

	namespaces, err := s.client.Namespace.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list namespaces: %w", err)
	}

	repaired := 0
	for _, ns := range namespaces {
		var rows []struct {
			Status assignment.Status `json:"status"`
			Count  int               `json:"count"`
		}
		err := s.client.Assignment.Query().
			Where(assignment.NamespaceIDEQ(ns.ID)).
			GroupBy(assignment.FieldStatus).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
		if err != nil {
			return repaired, fmt.Errorf("failed to count assignments for namespace %s: %w", ns.ID, err)
		}

		counts := map[assignment.Status]int{}
		for _, row := range rows {
			counts[row.Status] = row.Count
		}

		if counts[assignment.StatusPending] == ns.PendingCount &&
			counts[assignment.StatusActive] == ns.ActiveCount &&
			counts[assignment.StatusBlocked] == ns.BlockedCount &&
			counts[assignment.StatusComplete] == ns.CompleteCount {
			continue
		}

		err = s.client.Namespace.UpdateOneID(ns.ID).
			SetPendingCount(counts[assignment.StatusPending]).
			SetActiveCount(counts[assignment.StatusActive]).
			SetBlockedCount(counts[assignment.StatusBlocked]).
			SetCompleteCount(counts[assignment.StatusComplete]).
			Exec(ctx)
		if err != nil {
			return repaired, fmt.Errorf("failed to backfill counts for namespace %s: %w", ns.ID, err)
		}
		repaired++
	}

	return repaired, nil
}
