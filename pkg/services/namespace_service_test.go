package services

import (
	"context"
	"testing"

	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceService_Create(t *testing.T) {
	client := setupTestClient(t)
	svc := NewNamespaceService(client)
	ctx := context.Background()

	t.Run("creates namespace successfully", func(t *testing.T) {
		ns, err := svc.Create(ctx, models.CreateNamespaceRequest{
			Name:        "payments",
			Description: strptr("payment workflows"),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, ns.ID)
		assert.Equal(t, "payments", ns.Name)
		assert.Equal(t, "payment workflows", *ns.Description)
		assert.Equal(t, 0, ns.PendingCount)
	})

	t.Run("is idempotent on name", func(t *testing.T) {
		first, err := svc.Create(ctx, models.CreateNamespaceRequest{Name: "search"})
		require.NoError(t, err)

		second, err := svc.Create(ctx, models.CreateNamespaceRequest{Name: "search"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		all, err := svc.List(ctx)
		require.NoError(t, err)
		names := 0
		for _, ns := range all {
			if ns.Name == "search" {
				names++
			}
		}
		assert.Equal(t, 1, names)
	})

	t.Run("validates name required", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateNamespaceRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestNamespaceService_List(t *testing.T) {
	client := setupTestClient(t)
	svc := NewNamespaceService(client)
	ctx := context.Background()

	createTestNamespace(t, client, "zeta")
	createTestNamespace(t, client, "alpha")
	createTestNamespace(t, client, "mid")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "mid", all[1].Name)
	assert.Equal(t, "zeta", all[2].Name)
}

func TestNamespaceService_GetByName(t *testing.T) {
	client := setupTestClient(t)
	svc := NewNamespaceService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "infra")

	found, err := svc.GetByName(ctx, "infra")
	require.NoError(t, err)
	assert.Equal(t, ns.ID, found.ID)

	_, err = svc.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNamespaceService_Update(t *testing.T) {
	client := setupTestClient(t)
	svc := NewNamespaceService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "old-name")
	createTestNamespace(t, client, "taken")

	t.Run("renames", func(t *testing.T) {
		updated, err := svc.Update(ctx, ns.ID, models.UpdateNamespaceRequest{Name: strptr("new-name")})
		require.NoError(t, err)
		assert.Equal(t, "new-name", updated.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := svc.Update(ctx, ns.ID, models.UpdateNamespaceRequest{Name: strptr("")})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := svc.Update(ctx, ns.ID, models.UpdateNamespaceRequest{Name: strptr("taken")})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("returns ErrNotFound for missing namespace", func(t *testing.T) {
		_, err := svc.Update(ctx, "nonexistent", models.UpdateNamespaceRequest{Name: strptr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNamespaceService_Remove(t *testing.T) {
	client := setupTestClient(t)
	svc := NewNamespaceService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "doomed")
	asg := createTestAssignment(t, client, ns.ID, "goal")

	require.NoError(t, svc.Remove(ctx, ns.ID))

	_, err := svc.Get(ctx, ns.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Assignments cascade with the namespace.
	exists, err := client.Assignment.Query().
		Where(assignment.IDEQ(asg.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, svc.Remove(ctx, ns.ID), ErrNotFound)
}

func TestNamespaceService_BackfillCounts(t *testing.T) {
	client := setupTestClient(t)
	svc := NewNamespaceService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "drifty")
	createTestAssignment(t, client, ns.ID, "one")
	createTestAssignment(t, client, ns.ID, "two")

	t.Run("no-op when counters are accurate", func(t *testing.T) {
		repaired, err := svc.BackfillCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, repaired)
	})

	t.Run("repairs drifted counters", func(t *testing.T) {
		// Inject drift directly, bypassing the service layer.
		err := client.Namespace.UpdateOneID(ns.ID).
			SetPendingCount(7).
			SetActiveCount(3).
			Exec(ctx)
		require.NoError(t, err)

		repaired, err := svc.BackfillCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, repaired)

		fresh, err := svc.Get(ctx, ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, fresh.PendingCount)
		assert.Equal(t, 0, fresh.ActiveCount)
		assert.Equal(t, 0, fresh.BlockedCount)
		assert.Equal(t, 0, fresh.CompleteCount)
	})
}
