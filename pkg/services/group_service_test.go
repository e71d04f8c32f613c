package services

import (
	"context"
	"testing"
	"time"

	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupService_CreateGroup(t *testing.T) {
	client := setupTestClient(t)
	svc := NewGroupService(client, nil)
	asgSvc := NewAssignmentService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")

	t.Run("first group becomes chain head", func(t *testing.T) {
		result, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{
			{JobType: "dev", Harness: "claude", Context: strptr("fix the bug")},
		})
		require.NoError(t, err)
		require.Len(t, result.JobIDs, 1)

		fresh, err := asgSvc.Get(ctx, asg.ID)
		require.NoError(t, err)
		require.NotNil(t, fresh.HeadGroupID)
		assert.Equal(t, result.GroupID, *fresh.HeadGroupID)

		group, err := svc.GetGroup(ctx, result.GroupID)
		require.NoError(t, err)
		assert.Equal(t, "pending", string(group.Status))
	})

	t.Run("second group does not move the head", func(t *testing.T) {
		before, err := asgSvc.Get(ctx, asg.ID)
		require.NoError(t, err)

		result, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{
			{JobType: "review", Harness: "claude"},
		})
		require.NoError(t, err)

		after, err := asgSvc.Get(ctx, asg.ID)
		require.NoError(t, err)
		assert.Equal(t, *before.HeadGroupID, *after.HeadGroupID)
		assert.NotEqual(t, result.GroupID, *after.HeadGroupID)
	})

	t.Run("rejects empty job list", func(t *testing.T) {
		_, err := svc.CreateGroup(ctx, asg.ID, nil)
		assert.ErrorIs(t, err, ErrEmptyGroup)
	})

	t.Run("rejects unknown harness", func(t *testing.T) {
		_, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{
			{JobType: "dev", Harness: "gpt"},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing job type", func(t *testing.T) {
		_, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{
			{Harness: "claude"},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing assignment", func(t *testing.T) {
		_, err := svc.CreateGroup(ctx, "nonexistent", []models.JobDef{
			{JobType: "dev", Harness: "claude"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGroupService_InsertGroupAfter(t *testing.T) {
	client := setupTestClient(t)
	svc := NewGroupService(client, nil)
	asgSvc := NewAssignmentService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")

	first, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
	require.NoError(t, err)
	third, err := svc.InsertGroupAfter(ctx, first.GroupID, []models.JobDef{{JobType: "pm", Harness: "claude"}})
	require.NoError(t, err)

	// Splice between first and third.
	second, err := svc.InsertGroupAfter(ctx, first.GroupID, []models.JobDef{{JobType: "review", Harness: "claude"}})
	require.NoError(t, err)

	chain, err := asgSvc.GetGroupChain(ctx, asg.ID)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, first.GroupID, chain[0].ID)
	assert.Equal(t, second.GroupID, chain[1].ID)
	assert.Equal(t, third.GroupID, chain[2].ID)

	t.Run("returns ErrNotFound for missing predecessor", func(t *testing.T) {
		_, err := svc.InsertGroupAfter(ctx, "nonexistent", []models.JobDef{{JobType: "dev", Harness: "claude"}})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGroupService_StartJob(t *testing.T) {
	client := setupTestClient(t)
	svc := NewGroupService(client, nil)
	asgSvc := NewAssignmentService(client, nil)
	nsSvc := NewNamespaceService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")
	created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
	require.NoError(t, err)
	jobID := created.JobIDs[0]

	t.Run("transitions job, group and assignment", func(t *testing.T) {
		started, err := svc.StartJob(ctx, jobID, strptr("full prompt text"))
		require.NoError(t, err)
		assert.Equal(t, "running", string(started.Status))
		assert.Equal(t, "full prompt text", *started.Prompt)
		assert.NotNil(t, started.StartedAt)
		assert.NotNil(t, started.LastEventAt)

		group, err := svc.GetGroup(ctx, created.GroupID)
		require.NoError(t, err)
		assert.Equal(t, "running", string(group.Status))

		freshAsg, err := asgSvc.Get(ctx, asg.ID)
		require.NoError(t, err)
		assert.Equal(t, "active", string(freshAsg.Status))

		freshNs, err := nsSvc.Get(ctx, ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, freshNs.PendingCount)
		assert.Equal(t, 1, freshNs.ActiveCount)
	})

	t.Run("rejects double start", func(t *testing.T) {
		_, err := svc.StartJob(ctx, jobID, nil)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("returns ErrNotFound for missing job", func(t *testing.T) {
		_, err := svc.StartJob(ctx, "nonexistent", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGroupService_FinishJob(t *testing.T) {
	client := setupTestClient(t)
	svc := NewGroupService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")

	t.Run("single job completion completes the group", func(t *testing.T) {
		created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
		require.NoError(t, err)
		jobID := created.JobIDs[0]

		_, err = svc.StartJob(ctx, jobID, nil)
		require.NoError(t, err)

		tokens := 1200
		finished, err := svc.CompleteJob(ctx, jobID, "did the work", &models.JobMetrics{TotalTokens: &tokens})
		require.NoError(t, err)
		assert.Equal(t, "complete", string(finished.Status))
		assert.Equal(t, "did the work", *finished.Result)
		assert.Equal(t, 1200, finished.TotalTokens)
		assert.NotNil(t, finished.CompletedAt)

		group, err := svc.GetGroup(ctx, created.GroupID)
		require.NoError(t, err)
		assert.Equal(t, "complete", string(group.Status))
		assert.Equal(t, "## dev\ndid the work", *group.AggregatedResult)
	})

	t.Run("group stays running while a sibling is in flight", func(t *testing.T) {
		created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{
			{JobType: "dev", Harness: "claude"},
			{JobType: "dev", Harness: "codex"},
		})
		require.NoError(t, err)

		_, err = svc.StartJob(ctx, created.JobIDs[0], nil)
		require.NoError(t, err)
		_, err = svc.StartJob(ctx, created.JobIDs[1], nil)
		require.NoError(t, err)

		_, err = svc.CompleteJob(ctx, created.JobIDs[0], "first done", nil)
		require.NoError(t, err)

		group, err := svc.GetGroup(ctx, created.GroupID)
		require.NoError(t, err)
		assert.Equal(t, "running", string(group.Status))
		assert.Nil(t, group.AggregatedResult)

		_, err = svc.CompleteJob(ctx, created.JobIDs[1], "second done", nil)
		require.NoError(t, err)

		group, err = svc.GetGroup(ctx, created.GroupID)
		require.NoError(t, err)
		assert.Equal(t, "complete", string(group.Status))
		assert.Equal(t, "## dev A\nfirst done\n\n---\n\n## dev B\nsecond done", *group.AggregatedResult)
	})

	t.Run("fan-out aggregates in creation order regardless of finish order", func(t *testing.T) {
		created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{
			{JobType: "review", Harness: "claude"},
			{JobType: "review", Harness: "codex"},
			{JobType: "review", Harness: "gemini"},
		})
		require.NoError(t, err)

		for _, id := range created.JobIDs {
			_, err := svc.StartJob(ctx, id, nil)
			require.NoError(t, err)
		}

		// Finish out of order: B, C, then A.
		_, err = svc.CompleteJob(ctx, created.JobIDs[1], "b", nil)
		require.NoError(t, err)
		_, err = svc.CompleteJob(ctx, created.JobIDs[2], "c", nil)
		require.NoError(t, err)
		_, err = svc.CompleteJob(ctx, created.JobIDs[0], "a", nil)
		require.NoError(t, err)

		group, err := svc.GetGroup(ctx, created.GroupID)
		require.NoError(t, err)
		assert.Equal(t, "complete", string(group.Status))
		assert.Equal(t,
			"## review A\na\n\n---\n\n## review B\nb\n\n---\n\n## review C\nc",
			*group.AggregatedResult)
	})

	t.Run("partial failure still completes the group", func(t *testing.T) {
		created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{
			{JobType: "dev", Harness: "claude"},
			{JobType: "review", Harness: "gemini"},
		})
		require.NoError(t, err)

		_, err = svc.StartJob(ctx, created.JobIDs[0], nil)
		require.NoError(t, err)
		_, err = svc.CompleteJob(ctx, created.JobIDs[0], "built it", nil)
		require.NoError(t, err)

		_, err = svc.StartJob(ctx, created.JobIDs[1], nil)
		require.NoError(t, err)
		_, err = svc.FailJob(ctx, created.JobIDs[1], strptr("harness crashed"), nil)
		require.NoError(t, err)

		group, err := svc.GetGroup(ctx, created.GroupID)
		require.NoError(t, err)
		assert.Equal(t, "complete", string(group.Status))
		assert.Contains(t, *group.AggregatedResult, "## dev\nbuilt it")
		assert.Contains(t, *group.AggregatedResult, "## review\nharness crashed")
	})

	t.Run("all failures fail the group", func(t *testing.T) {
		created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
		require.NoError(t, err)

		_, err = svc.StartJob(ctx, created.JobIDs[0], nil)
		require.NoError(t, err)
		_, err = svc.FailJob(ctx, created.JobIDs[0], nil, nil)
		require.NoError(t, err)

		group, err := svc.GetGroup(ctx, created.GroupID)
		require.NoError(t, err)
		assert.Equal(t, "failed", string(group.Status))
	})

	t.Run("pending job can be failed directly", func(t *testing.T) {
		created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
		require.NoError(t, err)

		failed, err := svc.FailJob(ctx, created.JobIDs[0], strptr("cancelled"), nil)
		require.NoError(t, err)
		assert.Equal(t, "failed", string(failed.Status))
	})

	t.Run("pending job cannot be completed", func(t *testing.T) {
		created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
		require.NoError(t, err)

		_, err = svc.CompleteJob(ctx, created.JobIDs[0], "nope", nil)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("terminal job cannot be finished again", func(t *testing.T) {
		created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
		require.NoError(t, err)

		_, err = svc.StartJob(ctx, created.JobIDs[0], nil)
		require.NoError(t, err)
		_, err = svc.CompleteJob(ctx, created.JobIDs[0], "done", nil)
		require.NoError(t, err)

		_, err = svc.CompleteJob(ctx, created.JobIDs[0], "again", nil)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestGroupService_UpdateMetrics(t *testing.T) {
	client := setupTestClient(t)
	svc := NewGroupService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")
	created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
	require.NoError(t, err)
	jobID := created.JobIDs[0]

	toolCalls := 4
	now := time.Now()
	updated, err := svc.UpdateMetrics(ctx, jobID, models.JobMetrics{
		ToolCallCount: &toolCalls,
		LastEventAt:   &now,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.ToolCallCount)
	require.NotNil(t, updated.LastEventAt)
	assert.Equal(t, "pending", string(updated.Status))

	// Absent fields are preserved on the next merge.
	tokens := 99
	updated, err = svc.UpdateMetrics(ctx, jobID, models.JobMetrics{TotalTokens: &tokens})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.ToolCallCount)
	assert.Equal(t, 99, updated.TotalTokens)
}

func TestGroupService_ListJobs(t *testing.T) {
	client := setupTestClient(t)
	svc := NewGroupService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")
	created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{
		{JobType: "dev", Harness: "claude"},
		{JobType: "review", Harness: "codex"},
	})
	require.NoError(t, err)

	_, err = svc.StartJob(ctx, created.JobIDs[0], nil)
	require.NoError(t, err)

	all, err := svc.ListJobs(ctx, &created.GroupID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, created.JobIDs[0], all[0].ID)
	assert.Equal(t, created.JobIDs[1], all[1].ID)

	running, err := svc.ListJobs(ctx, &created.GroupID, strptr("running"))
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, created.JobIDs[0], running[0].ID)
}

func TestGroupService_GetJobWithAssignment(t *testing.T) {
	client := setupTestClient(t)
	svc := NewGroupService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")
	created, err := svc.CreateGroup(ctx, asg.ID, []models.JobDef{{JobType: "dev", Harness: "claude"}})
	require.NoError(t, err)

	full, err := svc.GetJobWithAssignment(ctx, created.JobIDs[0])
	require.NoError(t, err)
	assert.Equal(t, created.JobIDs[0], full.Job.ID)
	assert.Equal(t, created.GroupID, full.Group.ID)
	assert.Equal(t, asg.ID, full.Assignment.ID)
}
