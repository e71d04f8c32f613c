// Package models contains request/response and value types shared by
// the service layer and the HTTP API.
package models

// CreateNamespaceRequest contains fields for creating a namespace.
// Create is idempotent on name: a second create returns the existing id.
type CreateNamespaceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateNamespaceRequest is a partial patch for a namespace.
type UpdateNamespaceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AssignmentCounts is the denormalized per-status assignment tally
// carried on each namespace.
type AssignmentCounts struct {
	Pending  int `json:"pending"`
	Active   int `json:"active"`
	Blocked  int `json:"blocked"`
	Complete int `json:"complete"`
}
