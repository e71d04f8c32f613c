// Package events provides real-time queue-change delivery via WebSocket
// and PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every mutation that can change a namespace's set of ready jobs
// publishes a queue.changed event. Runners keep one WebSocket open per
// watched namespace and re-query the scheduler whenever the event
// arrives; the event itself carries no job data. Events are also
// persisted so a reconnecting runner can catch up by last-seen id
// instead of blindly re-polling.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeQueueChanged signals that the ready-job or chat-job set
	// of a namespace may have changed.
	EventTypeQueueChanged = "queue.changed"
)

// GlobalNamespacesChannel carries queue.changed events for every
// namespace. Dashboards subscribe here instead of one channel per
// namespace.
const GlobalNamespacesChannel = "namespaces"

// NamespaceChannel returns the channel name for one namespace's events.
// Format: "namespace:{namespace_id}"
func NamespaceChannel(namespaceID string) string {
	return "namespace:" + namespaceID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "namespace:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
