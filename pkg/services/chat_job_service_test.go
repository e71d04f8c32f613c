package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChatJobService(t *testing.T) (*ent.Client, *ChatThreadService, *ChatJobService) {
	t.Helper()
	client := setupTestClient(t)
	threads := NewChatThreadService(client)
	return client, threads, NewChatJobService(client, threads, nil)
}

func TestChatJobService_Trigger(t *testing.T) {
	client, threads, svc := setupChatJobService(t)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	thread, err := threads.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "t"})
	require.NoError(t, err)

	t.Run("empty thread has no eligible message", func(t *testing.T) {
		_, err := svc.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
		assert.ErrorIs(t, err, ErrNoEligibleMessage)
	})

	t.Run("assistant-only thread has no eligible message", func(t *testing.T) {
		_, err := threads.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "assistant", Content: "unprompted",
		})
		require.NoError(t, err)

		_, err = svc.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
		assert.ErrorIs(t, err, ErrNoEligibleMessage)
	})

	t.Run("snapshots conversation into the context payload", func(t *testing.T) {
		_, err := threads.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "user", Content: "first question",
		})
		require.NoError(t, err)
		_, err = threads.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "user", Content: "second question",
		})
		require.NoError(t, err)

		cj, err := svc.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
		require.NoError(t, err)
		assert.Equal(t, "pending", string(cj.Status))
		assert.Equal(t, "claude", string(cj.Harness))
		assert.Equal(t, ns.ID, cj.NamespaceID)

		var payload models.ChatJobContext
		require.NoError(t, json.Unmarshal([]byte(cj.Context), &payload))
		assert.Equal(t, thread.ID, payload.ThreadID)
		assert.Equal(t, "jam", payload.Mode)
		assert.Equal(t, "jam", payload.EffectivePromptMode)
		assert.Equal(t, "second question", payload.LatestUserMessage)
		assert.Len(t, payload.Messages, 3)
		assert.False(t, payload.IsGuardianEvaluation)
	})

	t.Run("honors explicit harness", func(t *testing.T) {
		cj, err := svc.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID, Harness: "codex"})
		require.NoError(t, err)
		assert.Equal(t, "codex", string(cj.Harness))
	})

	t.Run("rejects unknown harness", func(t *testing.T) {
		_, err := svc.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID, Harness: "gpt"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates thread_id required", func(t *testing.T) {
		_, err := svc.Trigger(ctx, models.TriggerChatJobRequest{})
		assert.True(t, IsValidationError(err))
	})
}

func TestChatJobService_TriggerGuardian(t *testing.T) {
	client, threads, svc := setupChatJobService(t)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "watched goal")
	thread, err := threads.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "watcher"})
	require.NoError(t, err)
	_, err = threads.EnableGuardianMode(ctx, thread.ID, asg.ID)
	require.NoError(t, err)

	_, err = threads.AddMessage(ctx, models.AddMessageRequest{
		ThreadID: thread.ID, Role: "user", Content: "user chatter",
	})
	require.NoError(t, err)

	t.Run("guardian evaluation needs a pm message", func(t *testing.T) {
		_, err := svc.Trigger(ctx, models.TriggerChatJobRequest{
			ThreadID:             thread.ID,
			IsGuardianEvaluation: true,
		})
		assert.ErrorIs(t, err, ErrNoEligibleMessage)
	})

	t.Run("responds to the latest pm message in cook mode", func(t *testing.T) {
		_, err := threads.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "pm", Content: "group 3 finished",
		})
		require.NoError(t, err)

		cj, err := svc.Trigger(ctx, models.TriggerChatJobRequest{
			ThreadID:             thread.ID,
			IsGuardianEvaluation: true,
		})
		require.NoError(t, err)

		var payload models.ChatJobContext
		require.NoError(t, json.Unmarshal([]byte(cj.Context), &payload))
		assert.Equal(t, "guardian", payload.Mode)
		assert.Equal(t, "cook", payload.EffectivePromptMode)
		assert.Equal(t, "group 3 finished", payload.LatestUserMessage)
		require.NotNil(t, payload.AssignmentID)
		assert.Equal(t, asg.ID, *payload.AssignmentID)
		assert.True(t, payload.IsGuardianEvaluation)
	})
}

func TestChatJobService_Lifecycle(t *testing.T) {
	client, threads, svc := setupChatJobService(t)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	thread, err := threads.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "t"})
	require.NoError(t, err)
	_, err = threads.AddMessage(ctx, models.AddMessageRequest{
		ThreadID: thread.ID, Role: "user", Content: "question",
	})
	require.NoError(t, err)

	trigger := func(t *testing.T) *ent.ChatJob {
		t.Helper()
		cj, err := svc.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
		require.NoError(t, err)
		return cj
	}

	t.Run("start then complete", func(t *testing.T) {
		cj := trigger(t)

		started, err := svc.Start(ctx, cj.ID, strptr("rendered prompt"))
		require.NoError(t, err)
		assert.Equal(t, "running", string(started.Status))
		assert.Equal(t, "rendered prompt", *started.Prompt)

		tokens := 512
		done, err := svc.Complete(ctx, cj.ID, "the answer", &models.JobMetrics{TotalTokens: &tokens})
		require.NoError(t, err)
		assert.Equal(t, "complete", string(done.Status))
		assert.Equal(t, "the answer", *done.Result)
		assert.Equal(t, 512, done.TotalTokens)
	})

	t.Run("pending job can be failed directly", func(t *testing.T) {
		cj := trigger(t)

		failed, err := svc.Fail(ctx, cj.ID, strptr("superseded"), nil)
		require.NoError(t, err)
		assert.Equal(t, "failed", string(failed.Status))
	})

	t.Run("pending job cannot be completed", func(t *testing.T) {
		cj := trigger(t)

		_, err := svc.Complete(ctx, cj.ID, "nope", nil)
		assert.ErrorIs(t, err, ErrIllegalTransition)

		_, err = svc.Fail(ctx, cj.ID, nil, nil)
		require.NoError(t, err)
	})

	t.Run("double start is illegal", func(t *testing.T) {
		cj := trigger(t)
		_, err := svc.Start(ctx, cj.ID, nil)
		require.NoError(t, err)

		_, err = svc.Start(ctx, cj.ID, nil)
		assert.ErrorIs(t, err, ErrIllegalTransition)

		_, err = svc.Complete(ctx, cj.ID, "cleanup", nil)
		require.NoError(t, err)
	})
}

func TestChatJobService_GetActiveForThread(t *testing.T) {
	client, threads, svc := setupChatJobService(t)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	thread, err := threads.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "t"})
	require.NoError(t, err)
	_, err = threads.AddMessage(ctx, models.AddMessageRequest{
		ThreadID: thread.ID, Role: "user", Content: "question",
	})
	require.NoError(t, err)

	t.Run("nil when no jobs exist", func(t *testing.T) {
		active, err := svc.GetActiveForThread(ctx, thread.ID)
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	cj, err := svc.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
	require.NoError(t, err)

	t.Run("pending job is active", func(t *testing.T) {
		active, err := svc.GetActiveForThread(ctx, thread.ID)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, cj.ID, active.ID)
	})

	t.Run("running job is active", func(t *testing.T) {
		_, err := svc.Start(ctx, cj.ID, nil)
		require.NoError(t, err)

		active, err := svc.GetActiveForThread(ctx, thread.ID)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, cj.ID, active.ID)
	})

	t.Run("terminal job is not active", func(t *testing.T) {
		_, err := svc.Complete(ctx, cj.ID, "done", nil)
		require.NoError(t, err)

		active, err := svc.GetActiveForThread(ctx, thread.ID)
		require.NoError(t, err)
		assert.Nil(t, active)
	})
}

func TestChatJobService_GetPending(t *testing.T) {
	client, threads, svc := setupChatJobService(t)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	thread, err := threads.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "t"})
	require.NoError(t, err)
	_, err = threads.AddMessage(ctx, models.AddMessageRequest{
		ThreadID: thread.ID, Role: "user", Content: "question",
	})
	require.NoError(t, err)

	first, err := svc.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
	require.NoError(t, err)
	second, err := svc.Trigger(ctx, models.TriggerChatJobRequest{ThreadID: thread.ID})
	require.NoError(t, err)

	pending, err := svc.GetPending(ctx, ns.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)
}
