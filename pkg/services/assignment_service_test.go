package services

import (
	"context"
	"testing"

	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentService_Create(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAssignmentService(client, nil)
	nsSvc := NewNamespaceService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")

	t.Run("creates pending assignment and bumps counter", func(t *testing.T) {
		asg, err := svc.Create(ctx, models.CreateAssignmentRequest{
			NamespaceID: ns.ID,
			NorthStar:   "ship the feature",
			Independent: boolptr(true),
			Priority:    intptr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", string(asg.Status))
		assert.True(t, asg.Independent)
		assert.Equal(t, 3, asg.Priority)
		assert.Nil(t, asg.HeadGroupID)

		fresh, err := nsSvc.Get(ctx, ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, fresh.PendingCount)
	})

	t.Run("defaults to sequential with priority 10", func(t *testing.T) {
		asg, err := svc.Create(ctx, models.CreateAssignmentRequest{
			NamespaceID: ns.ID,
			NorthStar:   "something",
		})
		require.NoError(t, err)
		assert.False(t, asg.Independent)
		assert.Equal(t, 10, asg.Priority)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateAssignmentRequest{NorthStar: "x"})
		assert.True(t, IsValidationError(err))

		_, err = svc.Create(ctx, models.CreateAssignmentRequest{NamespaceID: ns.ID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing namespace", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateAssignmentRequest{
			NamespaceID: "nonexistent",
			NorthStar:   "x",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAssignmentService_List(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAssignmentService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	createTestAssignment(t, client, ns.ID, "first")
	second := createTestAssignment(t, client, ns.ID, "second")
	_, err := svc.Complete(ctx, second.ID)
	require.NoError(t, err)

	all, err := svc.List(ctx, ns.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.List(ctx, ns.ID, strptr("pending"))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "first", pending[0].NorthStar)
}

func TestAssignmentService_Transitions(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAssignmentService(client, nil)
	nsSvc := NewNamespaceService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")

	t.Run("block sets reason and moves counter", func(t *testing.T) {
		blocked, err := svc.Block(ctx, asg.ID, "waiting on credentials")
		require.NoError(t, err)
		assert.Equal(t, "blocked", string(blocked.Status))
		assert.Equal(t, "waiting on credentials", *blocked.BlockedReason)

		fresh, err := nsSvc.Get(ctx, ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, fresh.PendingCount)
		assert.Equal(t, 1, fresh.BlockedCount)
	})

	t.Run("unblock forces active and clears reason", func(t *testing.T) {
		active, err := svc.Unblock(ctx, asg.ID)
		require.NoError(t, err)
		assert.Equal(t, "active", string(active.Status))
		assert.Nil(t, active.BlockedReason)

		fresh, err := nsSvc.Get(ctx, ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, fresh.BlockedCount)
		assert.Equal(t, 1, fresh.ActiveCount)
	})

	t.Run("complete", func(t *testing.T) {
		done, err := svc.Complete(ctx, asg.ID)
		require.NoError(t, err)
		assert.Equal(t, "complete", string(done.Status))

		fresh, err := nsSvc.Get(ctx, ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, fresh.ActiveCount)
		assert.Equal(t, 1, fresh.CompleteCount)
	})

	t.Run("same-status transition leaves counters alone", func(t *testing.T) {
		_, err := svc.Complete(ctx, asg.ID)
		require.NoError(t, err)

		fresh, err := nsSvc.Get(ctx, ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, fresh.CompleteCount)
	})
}

func TestAssignmentService_Update(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAssignmentService(client, nil)
	nsSvc := NewNamespaceService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")

	t.Run("patches fields", func(t *testing.T) {
		updated, err := svc.Update(ctx, asg.ID, models.UpdateAssignmentRequest{
			Artifacts: strptr("- design doc"),
			Decisions: strptr("- use postgres"),
			Priority:  intptr(1),
		})
		require.NoError(t, err)
		assert.Equal(t, "- design doc", *updated.Artifacts)
		assert.Equal(t, "- use postgres", *updated.Decisions)
		assert.Equal(t, 1, updated.Priority)
	})

	t.Run("status patch adjusts counters", func(t *testing.T) {
		updated, err := svc.Update(ctx, asg.ID, models.UpdateAssignmentRequest{
			Status: strptr("active"),
		})
		require.NoError(t, err)
		assert.Equal(t, "active", string(updated.Status))

		fresh, err := nsSvc.Get(ctx, ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, fresh.PendingCount)
		assert.Equal(t, 1, fresh.ActiveCount)
	})

	t.Run("leaving blocked clears reason", func(t *testing.T) {
		_, err := svc.Block(ctx, asg.ID, "stuck")
		require.NoError(t, err)

		updated, err := svc.Update(ctx, asg.ID, models.UpdateAssignmentRequest{
			Status: strptr("active"),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.BlockedReason)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.Update(ctx, asg.ID, models.UpdateAssignmentRequest{
			Status: strptr("done"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAssignmentService_GetGroupChain(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAssignmentService(client, nil)
	groupSvc := NewGroupService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")

	t.Run("empty chain", func(t *testing.T) {
		chain, err := svc.GetGroupChain(ctx, asg.ID)
		require.NoError(t, err)
		assert.Empty(t, chain)
	})

	first, err := groupSvc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
	require.NoError(t, err)
	second, err := groupSvc.InsertGroupAfter(ctx, first.GroupID, []models.JobDef{{JobType: "review", Harness: "claude"}})
	require.NoError(t, err)

	t.Run("walks in chain order", func(t *testing.T) {
		chain, err := svc.GetGroupChain(ctx, asg.ID)
		require.NoError(t, err)
		require.Len(t, chain, 2)
		assert.Equal(t, first.GroupID, chain[0].ID)
		assert.Equal(t, second.GroupID, chain[1].ID)
	})

	t.Run("dangling next pointer is corrupt", func(t *testing.T) {
		err := client.JobGroup.UpdateOneID(second.GroupID).
			SetNextGroupID(uuid.New().String()).
			Exec(ctx)
		require.NoError(t, err)

		_, err = svc.GetGroupChain(ctx, asg.ID)
		assert.ErrorIs(t, err, ErrChainCorrupt)
	})

	t.Run("cycle is corrupt", func(t *testing.T) {
		err := client.JobGroup.UpdateOneID(second.GroupID).
			SetNextGroupID(first.GroupID).
			Exec(ctx)
		require.NoError(t, err)

		_, err = svc.GetGroupChain(ctx, asg.ID)
		assert.ErrorIs(t, err, ErrChainCorrupt)
	})
}

func TestAssignmentService_GetWithGroups(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAssignmentService(client, nil)
	groupSvc := NewGroupService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")

	created, err := groupSvc.CreateGroup(ctx, asg.ID, []models.JobDef{
		{JobType: "dev", Harness: "claude"},
		{JobType: "dev", Harness: "codex"},
	})
	require.NoError(t, err)

	full, err := svc.GetWithGroups(ctx, asg.ID)
	require.NoError(t, err)
	assert.Equal(t, asg.ID, full.Assignment.ID)
	require.Len(t, full.Groups, 1)
	assert.Equal(t, created.GroupID, full.Groups[0].Group.ID)
	require.Len(t, full.Groups[0].Jobs, 2)
	assert.Equal(t, created.JobIDs[0], full.Groups[0].Jobs[0].ID)
	assert.Equal(t, created.JobIDs[1], full.Groups[0].Jobs[1].ID)
}

func TestAssignmentService_Remove(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAssignmentService(client, nil)
	groupSvc := NewGroupService(client, nil)
	threadSvc := NewChatThreadService(client)
	nsSvc := NewNamespaceService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")

	_, err := groupSvc.CreateGroup(ctx, asg.ID, []models.JobDef{
		{JobType: "dev", Harness: "claude"},
		{JobType: "dev", Harness: "gemini"},
	})
	require.NoError(t, err)

	thread, err := threadSvc.Create(ctx, models.CreateThreadRequest{
		NamespaceID: ns.ID,
		Title:       "watching",
	})
	require.NoError(t, err)
	_, err = threadSvc.LinkAssignment(ctx, thread.ID, asg.ID)
	require.NoError(t, err)

	result, err := svc.Remove(ctx, asg.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.GroupsDeleted)
	assert.Equal(t, 2, result.JobsDeleted)

	_, err = svc.Get(ctx, asg.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The thread survives with its link cleared.
	freshThread, err := client.ChatThread.Query().
		Where(chatthread.IDEQ(thread.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, freshThread.AssignmentID)

	fresh, err := nsSvc.Get(ctx, ns.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.PendingCount)
}
