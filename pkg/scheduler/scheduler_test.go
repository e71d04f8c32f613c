package scheduler

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/dirigent-io/dirigent/pkg/services"
	testdb "github.com/dirigent-io/dirigent/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	client    *ent.Client
	scheduler *Scheduler
	ns        *ent.Namespace

	namespaces  *services.NamespaceService
	assignments *services.AssignmentService
	groups      *services.GroupService
	threads     *services.ChatThreadService
	chatJobs    *services.ChatJobService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	threads := services.NewChatThreadService(client)

	f := &fixture{
		client:      client,
		scheduler:   NewScheduler(client, slog.Default()),
		namespaces:  services.NewNamespaceService(client),
		assignments: services.NewAssignmentService(client, nil),
		groups:      services.NewGroupService(client, nil),
		threads:     threads,
		chatJobs:    services.NewChatJobService(client, threads, nil),
	}

	ns, err := f.namespaces.Create(context.Background(), models.CreateNamespaceRequest{Name: "test"})
	require.NoError(t, err)
	f.ns = ns
	return f
}

func (f *fixture) createAssignment(t *testing.T, northStar string, independent bool, priority int) *ent.Assignment {
	t.Helper()
	asg, err := f.assignments.Create(context.Background(), models.CreateAssignmentRequest{
		NamespaceID: f.ns.ID,
		NorthStar:   northStar,
		Independent: &independent,
		Priority:    &priority,
	})
	require.NoError(t, err)
	return asg
}

// appendGroup creates a group at the tail of the assignment's chain.
func (f *fixture) appendGroup(t *testing.T, asg *ent.Assignment, jobs ...models.JobDef) *models.CreateGroupResult {
	t.Helper()
	ctx := context.Background()

	chain, err := f.assignments.GetGroupChain(ctx, asg.ID)
	require.NoError(t, err)

	if len(chain) == 0 {
		result, err := f.groups.CreateGroup(ctx, asg.ID, jobs)
		require.NoError(t, err)
		return result
	}
	result, err := f.groups.InsertGroupAfter(ctx, chain[len(chain)-1].ID, jobs)
	require.NoError(t, err)
	return result
}

// finishGroup runs every job in the group to completion with the given
// results, one result per job.
func (f *fixture) finishGroup(t *testing.T, created *models.CreateGroupResult, results ...string) {
	t.Helper()
	ctx := context.Background()
	require.Len(t, results, len(created.JobIDs))
	for i, jobID := range created.JobIDs {
		_, err := f.groups.StartJob(ctx, jobID, nil)
		require.NoError(t, err)
		_, err = f.groups.CompleteJob(ctx, jobID, results[i], nil)
		require.NoError(t, err)
	}
}

func TestScheduler_ReadyJobs_Basic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("empty namespace", func(t *testing.T) {
		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Empty(t, ready)
	})

	asg := f.createAssignment(t, "goal", true, 10)

	t.Run("assignment without groups contributes nothing", func(t *testing.T) {
		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Empty(t, ready)
	})

	created := f.appendGroup(t, asg,
		models.JobDef{JobType: "dev", Harness: "claude"},
		models.JobDef{JobType: "dev", Harness: "codex"},
	)

	t.Run("all pending jobs of the head group are ready", func(t *testing.T) {
		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		require.Len(t, ready, 2)
		assert.Equal(t, created.JobIDs[0], ready[0].Job.ID)
		assert.Equal(t, created.JobIDs[1], ready[1].Job.ID)
		assert.Equal(t, asg.ID, ready[0].Assignment.ID)
		assert.Empty(t, ready[0].AccumulatedResults)
		assert.Empty(t, ready[0].PreviousNonPMGroupResults)
		assert.Empty(t, ready[0].R1GroupResults)
	})

	t.Run("a running job silences the whole assignment", func(t *testing.T) {
		_, err := f.groups.StartJob(ctx, created.JobIDs[0], nil)
		require.NoError(t, err)

		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Empty(t, ready)
	})

	t.Run("blocked assignment never contributes", func(t *testing.T) {
		_, err := f.groups.CompleteJob(ctx, created.JobIDs[0], "a", nil)
		require.NoError(t, err)
		_, err = f.groups.StartJob(ctx, created.JobIDs[1], nil)
		require.NoError(t, err)
		_, err = f.groups.CompleteJob(ctx, created.JobIDs[1], "b", nil)
		require.NoError(t, err)

		f.appendGroup(t, asg, models.JobDef{JobType: "dev", Harness: "claude"})

		_, err = f.assignments.Block(ctx, asg.ID, "paused")
		require.NoError(t, err)

		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Empty(t, ready)

		_, err = f.assignments.Unblock(ctx, asg.ID)
		require.NoError(t, err)

		ready, err = f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Len(t, ready, 1)
	})
}

func TestScheduler_ChainAccumulators(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	asg := f.createAssignment(t, "goal", true, 10)

	g1 := f.appendGroup(t, asg, models.JobDef{JobType: "dev", Harness: "claude"})
	f.finishGroup(t, g1, "built the thing")

	g2 := f.appendGroup(t, asg, models.JobDef{JobType: "uat", Harness: "claude"})
	f.finishGroup(t, g2, "verified the thing")

	t.Run("accumulates completed groups in chain order", func(t *testing.T) {
		f.appendGroup(t, asg, models.JobDef{JobType: "dev", Harness: "claude"})

		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		require.Len(t, ready, 1)

		acc := ready[0].AccumulatedResults
		require.Len(t, acc, 2)
		assert.Equal(t, "dev", acc[0].JobType)
		assert.Equal(t, "built the thing", acc[0].Result)
		assert.Equal(t, 0, acc[0].GroupIndex)
		assert.Equal(t, "uat", acc[1].JobType)
		assert.Equal(t, 1, acc[1].GroupIndex)

		prev := ready[0].PreviousNonPMGroupResults
		require.Len(t, prev, 1)
		assert.Equal(t, "verified the thing", prev[0].Result)
	})
}

func TestScheduler_PMCheckpointReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	asg := f.createAssignment(t, "goal", true, 10)

	g1 := f.appendGroup(t, asg, models.JobDef{JobType: "dev", Harness: "claude"})
	f.finishGroup(t, g1, "work before checkpoint")

	pm := f.appendGroup(t, asg, models.JobDef{JobType: "pm", Harness: "claude"})
	f.finishGroup(t, pm, "checkpoint summary")

	f.appendGroup(t, asg, models.JobDef{JobType: "dev", Harness: "claude"})

	ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
	require.NoError(t, err)
	require.Len(t, ready, 1)

	// The pm checkpoint consumed everything before it.
	assert.Empty(t, ready[0].AccumulatedResults)
	assert.Empty(t, ready[0].PreviousNonPMGroupResults)

	t.Run("accumulation restarts after the checkpoint", func(t *testing.T) {
		chain, err := f.assignments.GetGroupChain(ctx, asg.ID)
		require.NoError(t, err)
		last := chain[len(chain)-1]

		jobs, err := f.groups.ListJobs(ctx, &last.ID, nil)
		require.NoError(t, err)
		_, err = f.groups.StartJob(ctx, jobs[0].ID, nil)
		require.NoError(t, err)
		_, err = f.groups.CompleteJob(ctx, jobs[0].ID, "fresh work", nil)
		require.NoError(t, err)

		f.appendGroup(t, asg, models.JobDef{JobType: "uat", Harness: "claude"})

		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		require.Len(t, ready, 1)
		require.Len(t, ready[0].AccumulatedResults, 1)
		assert.Equal(t, "fresh work", ready[0].AccumulatedResults[0].Result)
		assert.Equal(t, 0, ready[0].AccumulatedResults[0].GroupIndex)
	})
}

func TestScheduler_ReviewSnapshots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	asg := f.createAssignment(t, "goal", true, 10)

	g1 := f.appendGroup(t, asg, models.JobDef{JobType: "dev", Harness: "claude"})
	f.finishGroup(t, g1, "the work under review")

	review := f.appendGroup(t, asg, models.JobDef{JobType: "review", Harness: "claude"})

	t.Run("entering review group sees the work directly before it", func(t *testing.T) {
		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		require.Len(t, ready, 1)
		require.Len(t, ready[0].R1GroupResults, 1)
		assert.Equal(t, "the work under review", ready[0].R1GroupResults[0].Result)
	})

	f.finishGroup(t, review, "looks good with nits")

	g3 := f.appendGroup(t, asg, models.JobDef{JobType: "dev", Harness: "claude"})
	f.finishGroup(t, g3, "nits addressed")

	f.appendGroup(t, asg, models.JobDef{JobType: "uat", Harness: "claude"})

	t.Run("r1 stays pinned to the pre-review group downstream", func(t *testing.T) {
		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		require.Len(t, ready, 1)

		require.Len(t, ready[0].R1GroupResults, 1)
		assert.Equal(t, "the work under review", ready[0].R1GroupResults[0].Result)

		require.Len(t, ready[0].PreviousNonPMGroupResults, 1)
		assert.Equal(t, "nits addressed", ready[0].PreviousNonPMGroupResults[0].Result)
	})

	t.Run("suffixed review types count as reviews", func(t *testing.T) {
		other := f.createAssignment(t, "other", true, 10)
		base := f.appendGroup(t, other, models.JobDef{JobType: "impl", Harness: "claude"})
		f.finishGroup(t, base, "impl output")
		f.appendGroup(t, other, models.JobDef{JobType: "code-review", Harness: "claude"})

		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)

		var found *models.ReadyJob
		for i := range ready {
			if ready[i].Assignment.ID == other.ID {
				found = &ready[i]
			}
		}
		require.NotNil(t, found)
		require.Len(t, found.R1GroupResults, 1)
		assert.Equal(t, "impl output", found.R1GroupResults[0].Result)
	})
}

func TestScheduler_SequentialSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	low := f.createAssignment(t, "low priority", false, 20)
	lowGroup := f.appendGroup(t, low, models.JobDef{JobType: "dev", Harness: "claude"})
	high := f.createAssignment(t, "high priority", false, 1)
	highGroup := f.appendGroup(t, high, models.JobDef{JobType: "dev", Harness: "claude"})

	t.Run("only the best pending sequential assignment contributes", func(t *testing.T) {
		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		require.Len(t, ready, 1)
		assert.Equal(t, high.ID, ready[0].Assignment.ID)
	})

	t.Run("active sequential assignment holds the slot over priority", func(t *testing.T) {
		_, err := f.assignments.Update(ctx, low.ID, models.UpdateAssignmentRequest{Status: strptr("active")})
		require.NoError(t, err)

		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		require.Len(t, ready, 1)
		assert.Equal(t, low.ID, ready[0].Assignment.ID)
	})

	t.Run("a running holder blocks every sequential assignment", func(t *testing.T) {
		_, err := f.groups.StartJob(ctx, lowGroup.JobIDs[0], nil)
		require.NoError(t, err)

		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Empty(t, ready)
	})

	t.Run("independent assignments bypass the slot", func(t *testing.T) {
		indep := f.createAssignment(t, "independent", true, 50)
		f.appendGroup(t, indep, models.JobDef{JobType: "dev", Harness: "claude"})

		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		require.Len(t, ready, 1)
		assert.Equal(t, indep.ID, ready[0].Assignment.ID)
	})

	t.Run("slot frees when the holder's work completes", func(t *testing.T) {
		_, err := f.groups.CompleteJob(ctx, lowGroup.JobIDs[0], "done", nil)
		require.NoError(t, err)
		_, err = f.assignments.Complete(ctx, low.ID)
		require.NoError(t, err)

		ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
		require.NoError(t, err)

		var ids []string
		for _, r := range ready {
			ids = append(ids, r.Job.ID)
		}
		assert.Contains(t, ids, highGroup.JobIDs[0])
	})
}

func TestScheduler_CorruptChainIsolated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	broken := f.createAssignment(t, "broken", true, 10)
	brokenGroup := f.appendGroup(t, broken, models.JobDef{JobType: "dev", Harness: "claude"})
	f.finishGroup(t, brokenGroup, "done")
	err := f.client.JobGroup.UpdateOneID(brokenGroup.GroupID).
		SetNextGroupID(uuid.New().String()).
		Exec(ctx)
	require.NoError(t, err)

	healthy := f.createAssignment(t, "healthy", true, 10)
	healthyGroup := f.appendGroup(t, healthy, models.JobDef{JobType: "dev", Harness: "claude"})

	ready, err := f.scheduler.ReadyJobs(ctx, f.ns.ID)
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, healthyGroup.JobIDs[0], ready[0].Job.ID)
}

func TestScheduler_ReadyChatJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	thread, err := f.threads.Create(ctx, models.CreateThreadRequest{NamespaceID: f.ns.ID, Title: "t"})
	require.NoError(t, err)
	_, err = f.threads.AddMessage(ctx, models.AddMessageRequest{
		ThreadID: thread.ID, Role: "user", Content: "question",
	})
	require.NoError(t, err)

	first, err := f.chatJobs.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
	require.NoError(t, err)
	second, err := f.chatJobs.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
	require.NoError(t, err)

	ready, err := f.scheduler.ReadyChatJobs(ctx, f.ns.ID)
	require.NoError(t, err)
	require.Len(t, ready, 2)
	assert.Equal(t, first.ID, ready[0].ID)
	assert.Equal(t, second.ID, ready[1].ID)

	t.Run("chat jobs ignore assignment eligibility", func(t *testing.T) {
		asg := f.createAssignment(t, "busy", false, 10)
		group := f.appendGroup(t, asg, models.JobDef{JobType: "dev", Harness: "claude"})
		_, err := f.groups.StartJob(ctx, group.JobIDs[0], nil)
		require.NoError(t, err)

		ready, err := f.scheduler.ReadyChatJobs(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Len(t, ready, 2)
	})
}

func TestScheduler_QueueStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("idle namespace", func(t *testing.T) {
		status, err := f.scheduler.QueueStatus(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.False(t, status.ActiveWork)
		assert.Equal(t, 0, status.ReadyJobs)
	})

	asg := f.createAssignment(t, "goal", true, 10)
	group := f.appendGroup(t, asg,
		models.JobDef{JobType: "dev", Harness: "claude"},
		models.JobDef{JobType: "dev", Harness: "codex"},
	)

	t.Run("counts ready jobs", func(t *testing.T) {
		status, err := f.scheduler.QueueStatus(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, status.ReadyJobs)
		assert.Equal(t, 0, status.RunningJobs)
		assert.True(t, status.ActiveWork)
	})

	t.Run("counts running jobs", func(t *testing.T) {
		_, err := f.groups.StartJob(ctx, group.JobIDs[0], nil)
		require.NoError(t, err)

		status, err := f.scheduler.QueueStatus(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, status.ReadyJobs)
		assert.Equal(t, 1, status.RunningJobs)
		assert.True(t, status.ActiveWork)
	})

	t.Run("counts chat jobs", func(t *testing.T) {
		thread, err := f.threads.Create(ctx, models.CreateThreadRequest{NamespaceID: f.ns.ID, Title: "t"})
		require.NoError(t, err)
		_, err = f.threads.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "user", Content: "question",
		})
		require.NoError(t, err)
		_, err = f.chatJobs.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
		require.NoError(t, err)

		status, err := f.scheduler.QueueStatus(ctx, f.ns.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, status.PendingChatJobs)
	})
}

func strptr(s string) *string { return &s }
