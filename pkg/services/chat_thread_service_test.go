package services

import (
	"context"
	"testing"

	"github.com/dirigent-io/dirigent/ent/chatmessage"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatThreadService_Create(t *testing.T) {
	client := setupTestClient(t)
	svc := NewChatThreadService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")

	t.Run("creates thread with defaults", func(t *testing.T) {
		thread, err := svc.Create(ctx, models.CreateThreadRequest{
			NamespaceID: ns.ID,
			Title:       "morning sync",
		})
		require.NoError(t, err)
		assert.Equal(t, "jam", string(thread.Mode))
		assert.Nil(t, thread.AssignmentID)
	})

	t.Run("honors explicit mode", func(t *testing.T) {
		thread, err := svc.Create(ctx, models.CreateThreadRequest{
			NamespaceID: ns.ID,
			Title:       "deep work",
			Mode:        "cook",
		})
		require.NoError(t, err)
		assert.Equal(t, "cook", string(thread.Mode))
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateThreadRequest{
			NamespaceID: ns.ID,
			Title:       "x",
			Mode:        "turbo",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateThreadRequest{Title: "x"})
		assert.True(t, IsValidationError(err))
	})
}

func TestChatThreadService_FieldUpdates(t *testing.T) {
	client := setupTestClient(t)
	svc := NewChatThreadService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	thread, err := svc.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "t"})
	require.NoError(t, err)

	updated, err := svc.UpdateTitle(ctx, thread.ID, "renamed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)

	updated, err = svc.UpdateMode(ctx, thread.ID, "cook")
	require.NoError(t, err)
	assert.Equal(t, "cook", string(updated.Mode))

	_, err = svc.UpdateMode(ctx, thread.ID, "bogus")
	assert.True(t, IsValidationError(err))

	updated, err = svc.UpdateSessionID(ctx, thread.ID, "sess-abc")
	require.NoError(t, err)
	assert.Equal(t, "sess-abc", *updated.ClaudeSessionID)

	updated, err = svc.UpdateLastPromptMode(ctx, thread.ID, "jam")
	require.NoError(t, err)
	assert.Equal(t, "jam", string(*updated.LastPromptMode))

	_, err = svc.UpdateLastPromptMode(ctx, thread.ID, "guardian")
	assert.True(t, IsValidationError(err))
}

func TestChatThreadService_LinkAssignment(t *testing.T) {
	client := setupTestClient(t)
	svc := NewChatThreadService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")
	thread, err := svc.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "t"})
	require.NoError(t, err)

	t.Run("links to an existing assignment", func(t *testing.T) {
		linked, err := svc.LinkAssignment(ctx, thread.ID, asg.ID)
		require.NoError(t, err)
		assert.Equal(t, asg.ID, *linked.AssignmentID)
	})

	t.Run("rejects missing assignment", func(t *testing.T) {
		_, err := svc.LinkAssignment(ctx, thread.ID, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id unlinks", func(t *testing.T) {
		unlinked, err := svc.LinkAssignment(ctx, thread.ID, "")
		require.NoError(t, err)
		assert.Nil(t, unlinked.AssignmentID)
	})

	t.Run("guardian thread refuses unlink", func(t *testing.T) {
		_, err := svc.EnableGuardianMode(ctx, thread.ID, asg.ID)
		require.NoError(t, err)

		_, err = svc.LinkAssignment(ctx, thread.ID, "")
		assert.ErrorIs(t, err, ErrGuardianLinked)
	})
}

func TestChatThreadService_EnableGuardianMode(t *testing.T) {
	client := setupTestClient(t)
	svc := NewChatThreadService(client)
	asgSvc := NewAssignmentService(client, nil)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	asg := createTestAssignment(t, client, ns.ID, "goal")
	thread, err := svc.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "watcher"})
	require.NoError(t, err)

	guardian, err := svc.EnableGuardianMode(ctx, thread.ID, asg.ID)
	require.NoError(t, err)
	assert.Equal(t, "guardian", string(guardian.Mode))
	assert.Equal(t, asg.ID, *guardian.AssignmentID)

	freshAsg, err := asgSvc.Get(ctx, asg.ID)
	require.NoError(t, err)
	require.NotNil(t, freshAsg.AlignmentStatus)
	assert.Equal(t, "aligned", string(*freshAsg.AlignmentStatus))

	found, err := svc.GetGuardianThread(ctx, asg.ID)
	require.NoError(t, err)
	assert.Equal(t, thread.ID, found.ID)

	t.Run("no guardian thread is ErrNotFound", func(t *testing.T) {
		other := createTestAssignment(t, client, ns.ID, "unwatched")
		_, err := svc.GetGuardianThread(ctx, other.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing assignment is ErrNotFound", func(t *testing.T) {
		_, err := svc.EnableGuardianMode(ctx, thread.ID, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestChatThreadService_Messages(t *testing.T) {
	client := setupTestClient(t)
	svc := NewChatThreadService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	thread, err := svc.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "t"})
	require.NoError(t, err)

	t.Run("appends and lists in order", func(t *testing.T) {
		first, err := svc.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "user", Content: "hello",
		})
		require.NoError(t, err)
		assert.Equal(t, chatmessage.RoleUser, first.Role)

		_, err = svc.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "assistant", Content: "hi there",
		})
		require.NoError(t, err)
		_, err = svc.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "pm", Content: "status update", Hint: strptr("checkpoint"),
		})
		require.NoError(t, err)

		messages, err := svc.ListMessages(ctx, thread.ID)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "hello", messages[0].Content)
		assert.Equal(t, "hi there", messages[1].Content)
		assert.Equal(t, "status update", messages[2].Content)
	})

	t.Run("bumps thread updatedAt", func(t *testing.T) {
		before, err := svc.Get(ctx, thread.ID)
		require.NoError(t, err)

		_, err = svc.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "user", Content: "another",
		})
		require.NoError(t, err)

		after, err := svc.Get(ctx, thread.ID)
		require.NoError(t, err)
		assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	})

	t.Run("validates role and content", func(t *testing.T) {
		_, err := svc.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "bot", Content: "x",
		})
		assert.True(t, IsValidationError(err))

		_, err = svc.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: thread.ID, Role: "user",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing thread is ErrNotFound", func(t *testing.T) {
		_, err := svc.AddMessage(ctx, models.AddMessageRequest{
			ThreadID: "nonexistent", Role: "user", Content: "x",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestChatThreadService_Remove(t *testing.T) {
	client := setupTestClient(t)
	svc := NewChatThreadService(client)
	ctx := context.Background()

	ns := createTestNamespace(t, client, "ops")
	thread, err := svc.Create(ctx, models.CreateThreadRequest{NamespaceID: ns.ID, Title: "t"})
	require.NoError(t, err)
	_, err = svc.AddMessage(ctx, models.AddMessageRequest{
		ThreadID: thread.ID, Role: "user", Content: "hello",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, thread.ID))

	_, err = svc.Get(ctx, thread.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Messages cascade with the thread.
	count, err := client.ChatMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
