package events

// QueueChangedPayload is the body of a queue.changed event. The
// db_event_id field is injected at NOTIFY time for catchup tracking and
// is not part of the struct.
type QueueChangedPayload struct {
	Type        string `json:"type"`         // EventTypeQueueChanged
	NamespaceID string `json:"namespace_id"` // The namespace whose queues changed
	Timestamp   int64  `json:"timestamp"`    // Milliseconds since epoch
}
