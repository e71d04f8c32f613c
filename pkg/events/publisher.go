package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes queue-change events for WebSocket delivery.
// Events are stored in the events table then broadcast via NOTIFY in
// one transaction, so a catchup reader never sees a notification whose
// row it cannot find.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishQueueChanged persists a queue.changed event on the namespace
// channel and broadcasts a transient copy to the global namespaces
// channel. Both publishes are best-effort relative to each other; the
// first error is returned.
func (p *EventPublisher) PublishQueueChanged(ctx context.Context, payload QueueChangedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal QueueChangedPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, NamespaceChannel(payload.NamespaceID), payloadJSON); err != nil {
		slog.Warn("Failed to publish queue change to namespace channel",
			"namespace_id", payload.NamespaceID, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalNamespacesChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish queue change to global channel",
			"namespace_id", payload.NamespaceID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// NotifyQueueChanged is the service-layer hook fired after every
// mutation that may change a namespace's ready set. Best-effort: a
// failed publish is logged, never surfaced, so event delivery problems
// cannot fail the mutation that already committed.
func (p *EventPublisher) NotifyQueueChanged(ctx context.Context, namespaceID string) {
	payload := QueueChangedPayload{
		Type:        EventTypeQueueChanged,
		NamespaceID: namespaceID,
		Timestamp:   time.Now().UnixMilli(),
	}
	if err := p.PublishQueueChanged(ctx, payload); err != nil {
		slog.Warn("Queue change notification dropped",
			"namespace_id", namespaceID, "error", err)
	}
}

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is
// transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (channel, payload, created_at) VALUES ($1, $2, $3) RETURNING id`,
		channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// NOTIFY payload carries db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise a minimal truncation
// envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload extracts the routing fields a client needs to
// fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type        string `json:"type"`
		NamespaceID string `json:"namespace_id"`
		DBEventID   *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":         routing.Type,
		"namespace_id": routing.NamespaceID,
		"truncated":    true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
