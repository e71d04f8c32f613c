package services

import "context"

// QueueNotifier receives a signal whenever a mutation may have changed
// the set of ready jobs in a namespace. Implemented by events.Publisher;
// a nil notifier disables publishing (used by tests).
type QueueNotifier interface {
	NotifyQueueChanged(ctx context.Context, namespaceID string)
}

// notifyQueue is a nil-safe helper for the optional notifier.
func notifyQueue(ctx context.Context, n QueueNotifier, namespaceID string) {
	if n == nil || namespaceID == "" {
		return
	}
	n.NotifyQueueChanged(ctx, namespaceID)
}
