package models

// CreateThreadRequest contains fields for creating a chat thread.
type CreateThreadRequest struct {
	NamespaceID string `json:"namespace_id"`
	Title       string `json:"title"`
	Mode        string `json:"mode,omitempty"`
}

// AddMessageRequest contains fields for appending a thread message.
type AddMessageRequest struct {
	ThreadID string  `json:"thread_id"`
	Role     string  `json:"role"`
	Content  string  `json:"content"`
	Hint     *string `json:"hint,omitempty"`
}

// TriggerChatJobRequest enqueues a chat job for a thread.
type TriggerChatJobRequest struct {
	ThreadID             string `json:"thread_id"`
	Harness              string `json:"harness,omitempty"`
	IsGuardianEvaluation bool   `json:"is_guardian_evaluation,omitempty"`
}

// ContextMessage is a thread message as embedded in a chat job's
// context payload. Timestamps are milliseconds since epoch.
type ContextMessage struct {
	ID        string `json:"_id"`
	ThreadID  string `json:"threadId"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// ChatJobContext is the JSON blob stored on a chat job. The engine
// treats it as opaque; the field layout is the runner's contract.
type ChatJobContext struct {
	ThreadID             string           `json:"threadId"`
	NamespaceID          string           `json:"namespaceId"`
	Mode                 string           `json:"mode"`
	EffectivePromptMode  string           `json:"effectivePromptMode"`
	LastPromptMode       *string          `json:"lastPromptMode"`
	Messages             []ContextMessage `json:"messages"`
	LatestUserMessage    string           `json:"latestUserMessage"`
	ClaudeSessionID      *string          `json:"claudeSessionId"`
	AssignmentID         *string          `json:"assignmentId,omitempty"`
	IsGuardianEvaluation bool             `json:"isGuardianEvaluation"`
}
