package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/chatmessage"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/google/uuid"
)

// ChatJobService triggers and manages chat jobs: the conversational
// queue that shares the runner's worker pool with assignment jobs but
// is scheduled independently of them.
type ChatJobService struct {
	client   *ent.Client
	threads  *ChatThreadService
	notifier QueueNotifier
}

// NewChatJobService creates a new ChatJobService
func NewChatJobService(client *ent.Client, threads *ChatThreadService, notifier QueueNotifier) *ChatJobService {
	return &ChatJobService{client: client, threads: threads, notifier: notifier}
}

// Trigger snapshots the thread's conversation into an opaque context
// payload and enqueues a pending chat job for it. Guardian evaluations
// respond to the latest pm message instead of the latest user message.
func (s *ChatJobService) Trigger(httpCtx context.Context, req models.TriggerChatJobRequest) (*ent.ChatJob, error) {
	if req.ThreadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}
	harness := chatjob.HarnessClaude
	if req.Harness != "" {
		harness = chatjob.Harness(req.Harness)
		if err := chatjob.HarnessValidator(harness); err != nil {
			return nil, NewValidationError("harness", err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	thread, err := s.threads.Get(ctx, req.ThreadID)
	if err != nil {
		return nil, err
	}

	messages, err := s.threads.ListMessages(ctx, req.ThreadID)
	if err != nil {
		return nil, err
	}

	wantRole := chatmessage.RoleUser
	if req.IsGuardianEvaluation {
		wantRole = chatmessage.RolePm
	}
	var latest *ent.ChatMessage
	for _, msg := range messages {
		if msg.Role == wantRole {
			latest = msg
		}
	}
	if latest == nil {
		return nil, ErrNoEligibleMessage
	}

	effectiveMode := string(thread.Mode)
	if thread.Mode == chatthread.ModeGuardian {
		effectiveMode = string(chatthread.ModeCook)
	}

	contextMessages := make([]models.ContextMessage, 0, len(messages))
	for _, msg := range messages {
		contextMessages = append(contextMessages, models.ContextMessage{
			ID:        msg.ID,
			ThreadID:  msg.ThreadID,
			Role:      string(msg.Role),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt.UnixMilli(),
		})
	}

	payload := models.ChatJobContext{
		ThreadID:             thread.ID,
		NamespaceID:          thread.NamespaceID,
		Mode:                 string(thread.Mode),
		EffectivePromptMode:  effectiveMode,
		Messages:             contextMessages,
		LatestUserMessage:    latest.Content,
		ClaudeSessionID:      thread.ClaudeSessionID,
		AssignmentID:         thread.AssignmentID,
		IsGuardianEvaluation: req.IsGuardianEvaluation,
	}
	if thread.LastPromptMode != nil {
		mode := string(*thread.LastPromptMode)
		payload.LastPromptMode = &mode
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat job context: %w", err)
	}

	cj, err := s.client.ChatJob.Create().
		SetID(uuid.New().String()).
		SetThreadID(thread.ID).
		SetNamespaceID(thread.NamespaceID).
		SetHarness(harness).
		SetContext(string(encoded)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat job: %w", err)
	}

	notifyQueue(httpCtx, s.notifier, thread.NamespaceID)
	return cj, nil
}

// Start transitions a pending chat job to running.
func (s *ChatJobService) Start(httpCtx context.Context, chatJobID string, prompt *string) (*ent.ChatJob, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var started *ent.ChatJob
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		cj, err := tx.ChatJob.Get(ctx, chatJobID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get chat job: %w", err)
		}
		if cj.Status != chatjob.StatusPending {
			return fmt.Errorf("cannot start chat job in status %s: %w", cj.Status, ErrIllegalTransition)
		}

		now := time.Now()
		update := tx.ChatJob.UpdateOneID(chatJobID).
			SetStatus(chatjob.StatusRunning).
			SetStartedAt(now).
			SetLastEventAt(now)
		if prompt != nil {
			update.SetPrompt(*prompt)
		}
		started, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to start chat job: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, started.NamespaceID)
	return started, nil
}

// Complete transitions a running chat job to complete. No group or
// assignment is touched.
func (s *ChatJobService) Complete(httpCtx context.Context, chatJobID, result string, metrics *models.JobMetrics) (*ent.ChatJob, error) {
	return s.finish(httpCtx, chatJobID, chatjob.StatusComplete, &result, metrics)
}

// Fail transitions a chat job to failed. A pending chat job may be
// failed directly.
func (s *ChatJobService) Fail(httpCtx context.Context, chatJobID string, result *string, metrics *models.JobMetrics) (*ent.ChatJob, error) {
	return s.finish(httpCtx, chatJobID, chatjob.StatusFailed, result, metrics)
}

func (s *ChatJobService) finish(httpCtx context.Context, chatJobID string, newStatus chatjob.Status, result *string, metrics *models.JobMetrics) (*ent.ChatJob, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	var finished *ent.ChatJob
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		cj, err := tx.ChatJob.Get(ctx, chatJobID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get chat job: %w", err)
		}
		switch {
		case cj.Status == chatjob.StatusRunning:
		case cj.Status == chatjob.StatusPending && newStatus == chatjob.StatusFailed:
		default:
			return fmt.Errorf("cannot finish chat job in status %s: %w", cj.Status, ErrIllegalTransition)
		}

		update := tx.ChatJob.UpdateOneID(chatJobID).
			SetStatus(newStatus).
			SetCompletedAt(time.Now())
		if result != nil {
			update.SetResult(*result)
		}
		applyChatJobMetrics(update, metrics)
		finished, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to finish chat job: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyQueue(httpCtx, s.notifier, finished.NamespaceID)
	return finished, nil
}

// UpdateMetrics merges runner telemetry into a chat job.
func (s *ChatJobService) UpdateMetrics(httpCtx context.Context, chatJobID string, metrics models.JobMetrics) (*ent.ChatJob, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.ChatJob.UpdateOneID(chatJobID)
	applyChatJobMetrics(update, &metrics)
	cj, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update chat job metrics: %w", err)
	}
	return cj, nil
}

// Get retrieves a chat job by id.
func (s *ChatJobService) Get(ctx context.Context, chatJobID string) (*ent.ChatJob, error) {
	cj, err := s.client.ChatJob.Get(ctx, chatJobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat job: %w", err)
	}
	return cj, nil
}

// GetPending returns a namespace's pending chat jobs, oldest first.
func (s *ChatJobService) GetPending(ctx context.Context, namespaceID string) ([]*ent.ChatJob, error) {
	jobs, err := s.client.ChatJob.Query().
		Where(
			chatjob.NamespaceIDEQ(namespaceID),
			chatjob.StatusEQ(chatjob.StatusPending),
		).
		Order(ent.Asc(chatjob.FieldCreatedAt), ent.Asc(chatjob.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending chat jobs: %w", err)
	}
	return jobs, nil
}

// GetActiveForThread returns the thread's first pending chat job, else
// its first running one, else nil. Both lookups hit the
// (thread_id, status) index.
func (s *ChatJobService) GetActiveForThread(ctx context.Context, threadID string) (*ent.ChatJob, error) {
	for _, status := range []chatjob.Status{chatjob.StatusPending, chatjob.StatusRunning} {
		cj, err := s.client.ChatJob.Query().
			Where(
				chatjob.ThreadIDEQ(threadID),
				chatjob.StatusEQ(status),
			).
			Order(ent.Asc(chatjob.FieldCreatedAt), ent.Asc(chatjob.FieldID)).
			First(ctx)
		if err == nil {
			return cj, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query chat jobs for thread: %w", err)
		}
	}
	return nil, nil
}

func applyChatJobMetrics(update *ent.ChatJobUpdateOne, metrics *models.JobMetrics) {
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
