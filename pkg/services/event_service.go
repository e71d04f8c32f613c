package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/ent/event"
)

// EventService reads and prunes the persisted event log that backs
// WebSocket catchup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince returns up to limit events on a channel with id >
// sinceID, oldest first.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return events, nil
}

// DeleteEventsBefore removes events older than the cutoff. Catchup
// clients that fall further behind reload over REST instead.
func (s *EventService) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	deleted, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return deleted, nil
}
