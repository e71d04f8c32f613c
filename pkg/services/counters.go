package services

import (
	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/ent/assignment"
)

// addStatusCount applies a delta to the namespace counter matching an
// assignment status. Every assignment status transition calls this twice
// (-1 old, +1 new) inside the transaction performing the transition.
func addStatusCount(u *ent.NamespaceUpdateOne, s assignment.Status, delta int) *ent.NamespaceUpdateOne {
	switch s {
	case assignment.StatusPending:
		return u.AddPendingCount(delta)
	case assignment.StatusActive:
		return u.AddActiveCount(delta)
	case assignment.StatusBlocked:
		return u.AddBlockedCount(delta)
	case assignment.StatusComplete:
		return u.AddCompleteCount(delta)
	}
	return u
}
