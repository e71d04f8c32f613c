package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/chatmessage"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/google/uuid"
)

// ChatThreadService manages chat threads and their messages.
type ChatThreadService struct {
	client *ent.Client
}

// NewChatThreadService creates a new ChatThreadService
func NewChatThreadService(client *ent.Client) *ChatThreadService {
	return &ChatThreadService{client: client}
}

// Create inserts a chat thread.
func (s *ChatThreadService) Create(httpCtx context.Context, req models.CreateThreadRequest) (*ent.ChatThread, error) {
	if req.NamespaceID == "" {
		return nil, NewValidationError("namespace_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.ChatThread.Create().
		SetID(uuid.New().String()).
		SetNamespaceID(req.NamespaceID).
		SetTitle(req.Title)
	if req.Mode != "" {
		mode := chatthread.Mode(req.Mode)
		if err := chatthread.ModeValidator(mode); err != nil {
			return nil, NewValidationError("mode", err.Error())
		}
		builder.SetMode(mode)
	}

	thread, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create chat thread: %w", err)
	}
	return thread, nil
}

// List returns a namespace's threads, most recently touched first.
func (s *ChatThreadService) List(ctx context.Context, namespaceID string) ([]*ent.ChatThread, error) {
	threads, err := s.client.ChatThread.Query().
		Where(chatthread.NamespaceIDEQ(namespaceID)).
		Order(ent.Desc(chatthread.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat threads: %w", err)
	}
	return threads, nil
}

// Get retrieves a thread by id.
func (s *ChatThreadService) Get(ctx context.Context, threadID string) (*ent.ChatThread, error) {
	thread, err := s.client.ChatThread.Get(ctx, threadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat thread: %w", err)
	}
	return thread, nil
}

// UpdateMode switches the thread's conversational mode.
func (s *ChatThreadService) UpdateMode(ctx context.Context, threadID, mode string) (*ent.ChatThread, error) {
	m := chatthread.Mode(mode)
	if err := chatthread.ModeValidator(m); err != nil {
		return nil, NewValidationError("mode", err.Error())
	}
	return s.patch(ctx, threadID, func(u *ent.ChatThreadUpdateOne) {
		u.SetMode(m)
	})
}

// UpdateTitle renames the thread.
func (s *ChatThreadService) UpdateTitle(ctx context.Context, threadID, title string) (*ent.ChatThread, error) {
	if title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	return s.patch(ctx, threadID, func(u *ent.ChatThreadUpdateOne) {
		u.SetTitle(title)
	})
}

// UpdateSessionID records the harness's resumable session token.
func (s *ChatThreadService) UpdateSessionID(ctx context.Context, threadID, sessionID string) (*ent.ChatThread, error) {
	return s.patch(ctx, threadID, func(u *ent.ChatThreadUpdateOne) {
		u.SetClaudeSessionID(sessionID)
	})
}

// UpdateLastPromptMode records the mode of the last prompt sent.
func (s *ChatThreadService) UpdateLastPromptMode(ctx context.Context, threadID, mode string) (*ent.ChatThread, error) {
	m := chatthread.LastPromptMode(mode)
	if err := chatthread.LastPromptModeValidator(m); err != nil {
		return nil, NewValidationError("last_prompt_mode", err.Error())
	}
	return s.patch(ctx, threadID, func(u *ent.ChatThreadUpdateOne) {
		u.SetLastPromptMode(m)
	})
}

// LinkAssignment associates a thread with an assignment. Passing an
// empty assignmentID unlinks, which guardian threads refuse.
func (s *ChatThreadService) LinkAssignment(ctx context.Context, threadID, assignmentID string) (*ent.ChatThread, error) {
	thread, err := s.Get(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if assignmentID == "" {
		if thread.Mode == chatthread.ModeGuardian {
			return nil, ErrGuardianLinked
		}
		return s.patch(ctx, threadID, func(u *ent.ChatThreadUpdateOne) {
			u.ClearAssignmentID()
		})
	}

	if _, err := s.client.Assignment.Get(ctx, assignmentID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return s.patch(ctx, threadID, func(u *ent.ChatThreadUpdateOne) {
		u.SetAssignmentID(assignmentID)
	})
}

// EnableGuardianMode atomically links the thread to an assignment,
// flips the thread to guardian mode and stamps the assignment's
// alignment status to aligned.
func (s *ChatThreadService) EnableGuardianMode(httpCtx context.Context, threadID, assignmentID string) (*ent.ChatThread, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var updated *ent.ChatThread
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		if _, err := tx.Assignment.Get(ctx, assignmentID); err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}

		var err error
		updated, err = tx.ChatThread.UpdateOneID(threadID).
			SetAssignmentID(assignmentID).
			SetMode(chatthread.ModeGuardian).
			Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update chat thread: %w", err)
		}

		err = tx.Assignment.UpdateOneID(assignmentID).
			SetAlignmentStatus(assignment.AlignmentStatusAligned).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to stamp alignment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetGuardianThread returns the guardian thread watching an assignment,
// or ErrNotFound.
func (s *ChatThreadService) GetGuardianThread(ctx context.Context, assignmentID string) (*ent.ChatThread, error) {
	thread, err := s.client.ChatThread.Query().
		Where(
			chatthread.AssignmentIDEQ(assignmentID),
			chatthread.ModeEQ(chatthread.ModeGuardian),
		).
		Order(ent.Asc(chatthread.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get guardian thread: %w", err)
	}
	return thread, nil
}

// Remove deletes a thread; its messages and chat jobs cascade.
func (s *ChatThreadService) Remove(httpCtx context.Context, threadID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	err := s.client.ChatThread.DeleteOneID(threadID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete chat thread: %w", err)
	}
	return nil
}

// AddMessage appends a message to a thread and bumps the thread's
// updatedAt so the thread list reorders.
func (s *ChatThreadService) AddMessage(httpCtx context.Context, req models.AddMessageRequest) (*ent.ChatMessage, error) {
	if req.ThreadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}
	role := chatmessage.Role(req.Role)
	if err := chatmessage.RoleValidator(role); err != nil {
		return nil, NewValidationError("role", err.Error())
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var msg *ent.ChatMessage
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		builder := tx.ChatMessage.Create().
			SetID(uuid.New().String()).
			SetThreadID(req.ThreadID).
			SetRole(role).
			SetContent(req.Content)
		if req.Hint != nil {
			builder.SetHint(*req.Hint)
		}

		var err error
		msg, err = builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to create chat message: %w", err)
		}

		err = tx.ChatThread.UpdateOneID(req.ThreadID).
			SetUpdatedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to touch chat thread: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns a thread's messages oldest first.
func (s *ChatThreadService) ListMessages(ctx context.Context, threadID string) ([]*ent.ChatMessage, error) {
	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.ThreadIDEQ(threadID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt), ent.Asc(chatmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

func (s *ChatThreadService) patch(httpCtx context.Context, threadID string, apply func(*ent.ChatThreadUpdateOne)) (*ent.ChatThread, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.ChatThread.UpdateOneID(threadID)
	apply(update)
	thread, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update chat thread: %w", err)
	}
	return thread, nil
}
