// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/chatmessage"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/event"
	"github.com/dirigent-io/dirigent/ent/job"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
	"github.com/dirigent-io/dirigent/ent/namespace"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssignment  = "Assignment"
	TypeChatJob     = "ChatJob"
	TypeChatMessage = "ChatMessage"
	TypeChatThread  = "ChatThread"
	TypeEvent       = "Event"
	TypeJob         = "Job"
	TypeJobGroup    = "JobGroup"
	TypeNamespace   = "Namespace"
)

// AssignmentMutation represents an operation that mutates the Assignment nodes in the graph.
type AssignmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	north_star          *string
	status              *assignment.Status
	independent         *bool
	priority            *int
	addpriority         *int
	artifacts           *string
	decisions           *string
	blocked_reason      *string
	alignment_status    *assignment.AlignmentStatus
	head_group_id       *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	namespace           *string
	clearednamespace    bool
	groups              map[string]struct{}
	removedgroups       map[string]struct{}
	clearedgroups       bool
	chat_threads        map[string]struct{}
	removedchat_threads map[string]struct{}
	clearedchat_threads bool
	done                bool
	oldValue            func(context.Context) (*Assignment, error)
	predicates          []predicate.Assignment
}

var _ ent.Mutation = (*AssignmentMutation)(nil)

// assignmentOption allows management of the mutation configuration using functional options.
type assignmentOption func(*AssignmentMutation)

// newAssignmentMutation creates new mutation for the Assignment entity.
func newAssignmentMutation(c config, op Op, opts ...assignmentOption) *AssignmentMutation {
	m := &AssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssignmentID sets the ID field of the mutation.
func withAssignmentID(id string) assignmentOption {
	return func(m *AssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assignment
		)
		m.oldValue = func(ctx context.Context) (*Assignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssignment sets the old Assignment of the mutation.
func withAssignment(node *Assignment) assignmentOption {
	return func(m *AssignmentMutation) {
		m.oldValue = func(context.Context) (*Assignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Assignment entities.
func (m *AssignmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssignmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssignmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNamespaceID sets the "namespace_id" field.
func (m *AssignmentMutation) SetNamespaceID(s string) {
	m.namespace = &s
}

// NamespaceID returns the value of the "namespace_id" field in the mutation.
func (m *AssignmentMutation) NamespaceID() (r string, exists bool) {
	v := m.namespace
	if v == nil {
		return
	}
	return *v, true
}

// OldNamespaceID returns the old "namespace_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldNamespaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNamespaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNamespaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNamespaceID: %w", err)
	}
	return oldValue.NamespaceID, nil
}

// ResetNamespaceID resets all changes to the "namespace_id" field.
func (m *AssignmentMutation) ResetNamespaceID() {
	m.namespace = nil
}

// SetNorthStar sets the "north_star" field.
func (m *AssignmentMutation) SetNorthStar(s string) {
	m.north_star = &s
}

// NorthStar returns the value of the "north_star" field in the mutation.
func (m *AssignmentMutation) NorthStar() (r string, exists bool) {
	v := m.north_star
	if v == nil {
		return
	}
	return *v, true
}

// OldNorthStar returns the old "north_star" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldNorthStar(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNorthStar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNorthStar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNorthStar: %w", err)
	}
	return oldValue.NorthStar, nil
}

// ResetNorthStar resets all changes to the "north_star" field.
func (m *AssignmentMutation) ResetNorthStar() {
	m.north_star = nil
}

// SetStatus sets the "status" field.
func (m *AssignmentMutation) SetStatus(a assignment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AssignmentMutation) Status() (r assignment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldStatus(ctx context.Context) (v assignment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AssignmentMutation) ResetStatus() {
	m.status = nil
}

// SetIndependent sets the "independent" field.
func (m *AssignmentMutation) SetIndependent(b bool) {
	m.independent = &b
}

// Independent returns the value of the "independent" field in the mutation.
func (m *AssignmentMutation) Independent() (r bool, exists bool) {
	v := m.independent
	if v == nil {
		return
	}
	return *v, true
}

// OldIndependent returns the old "independent" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldIndependent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndependent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndependent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndependent: %w", err)
	}
	return oldValue.Independent, nil
}

// ResetIndependent resets all changes to the "independent" field.
func (m *AssignmentMutation) ResetIndependent() {
	m.independent = nil
}

// SetPriority sets the "priority" field.
func (m *AssignmentMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AssignmentMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *AssignmentMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *AssignmentMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *AssignmentMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetArtifacts sets the "artifacts" field.
func (m *AssignmentMutation) SetArtifacts(s string) {
	m.artifacts = &s
}

// Artifacts returns the value of the "artifacts" field in the mutation.
func (m *AssignmentMutation) Artifacts() (r string, exists bool) {
	v := m.artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifacts returns the old "artifacts" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldArtifacts(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifacts: %w", err)
	}
	return oldValue.Artifacts, nil
}

// ClearArtifacts clears the value of the "artifacts" field.
func (m *AssignmentMutation) ClearArtifacts() {
	m.artifacts = nil
	m.clearedFields[assignment.FieldArtifacts] = struct{}{}
}

// ArtifactsCleared returns if the "artifacts" field was cleared in this mutation.
func (m *AssignmentMutation) ArtifactsCleared() bool {
	_, ok := m.clearedFields[assignment.FieldArtifacts]
	return ok
}

// ResetArtifacts resets all changes to the "artifacts" field.
func (m *AssignmentMutation) ResetArtifacts() {
	m.artifacts = nil
	delete(m.clearedFields, assignment.FieldArtifacts)
}

// SetDecisions sets the "decisions" field.
func (m *AssignmentMutation) SetDecisions(s string) {
	m.decisions = &s
}

// Decisions returns the value of the "decisions" field in the mutation.
func (m *AssignmentMutation) Decisions() (r string, exists bool) {
	v := m.decisions
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisions returns the old "decisions" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldDecisions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisions: %w", err)
	}
	return oldValue.Decisions, nil
}

// ClearDecisions clears the value of the "decisions" field.
func (m *AssignmentMutation) ClearDecisions() {
	m.decisions = nil
	m.clearedFields[assignment.FieldDecisions] = struct{}{}
}

// DecisionsCleared returns if the "decisions" field was cleared in this mutation.
func (m *AssignmentMutation) DecisionsCleared() bool {
	_, ok := m.clearedFields[assignment.FieldDecisions]
	return ok
}

// ResetDecisions resets all changes to the "decisions" field.
func (m *AssignmentMutation) ResetDecisions() {
	m.decisions = nil
	delete(m.clearedFields, assignment.FieldDecisions)
}

// SetBlockedReason sets the "blocked_reason" field.
func (m *AssignmentMutation) SetBlockedReason(s string) {
	m.blocked_reason = &s
}

// BlockedReason returns the value of the "blocked_reason" field in the mutation.
func (m *AssignmentMutation) BlockedReason() (r string, exists bool) {
	v := m.blocked_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedReason returns the old "blocked_reason" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldBlockedReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedReason: %w", err)
	}
	return oldValue.BlockedReason, nil
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (m *AssignmentMutation) ClearBlockedReason() {
	m.blocked_reason = nil
	m.clearedFields[assignment.FieldBlockedReason] = struct{}{}
}

// BlockedReasonCleared returns if the "blocked_reason" field was cleared in this mutation.
func (m *AssignmentMutation) BlockedReasonCleared() bool {
	_, ok := m.clearedFields[assignment.FieldBlockedReason]
	return ok
}

// ResetBlockedReason resets all changes to the "blocked_reason" field.
func (m *AssignmentMutation) ResetBlockedReason() {
	m.blocked_reason = nil
	delete(m.clearedFields, assignment.FieldBlockedReason)
}

// SetAlignmentStatus sets the "alignment_status" field.
func (m *AssignmentMutation) SetAlignmentStatus(as assignment.AlignmentStatus) {
	m.alignment_status = &as
}

// AlignmentStatus returns the value of the "alignment_status" field in the mutation.
func (m *AssignmentMutation) AlignmentStatus() (r assignment.AlignmentStatus, exists bool) {
	v := m.alignment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAlignmentStatus returns the old "alignment_status" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldAlignmentStatus(ctx context.Context) (v *assignment.AlignmentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlignmentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlignmentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlignmentStatus: %w", err)
	}
	return oldValue.AlignmentStatus, nil
}

// ClearAlignmentStatus clears the value of the "alignment_status" field.
func (m *AssignmentMutation) ClearAlignmentStatus() {
	m.alignment_status = nil
	m.clearedFields[assignment.FieldAlignmentStatus] = struct{}{}
}

// AlignmentStatusCleared returns if the "alignment_status" field was cleared in this mutation.
func (m *AssignmentMutation) AlignmentStatusCleared() bool {
	_, ok := m.clearedFields[assignment.FieldAlignmentStatus]
	return ok
}

// ResetAlignmentStatus resets all changes to the "alignment_status" field.
func (m *AssignmentMutation) ResetAlignmentStatus() {
	m.alignment_status = nil
	delete(m.clearedFields, assignment.FieldAlignmentStatus)
}

// SetHeadGroupID sets the "head_group_id" field.
func (m *AssignmentMutation) SetHeadGroupID(s string) {
	m.head_group_id = &s
}

// HeadGroupID returns the value of the "head_group_id" field in the mutation.
func (m *AssignmentMutation) HeadGroupID() (r string, exists bool) {
	v := m.head_group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadGroupID returns the old "head_group_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldHeadGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadGroupID: %w", err)
	}
	return oldValue.HeadGroupID, nil
}

// ClearHeadGroupID clears the value of the "head_group_id" field.
func (m *AssignmentMutation) ClearHeadGroupID() {
	m.head_group_id = nil
	m.clearedFields[assignment.FieldHeadGroupID] = struct{}{}
}

// HeadGroupIDCleared returns if the "head_group_id" field was cleared in this mutation.
func (m *AssignmentMutation) HeadGroupIDCleared() bool {
	_, ok := m.clearedFields[assignment.FieldHeadGroupID]
	return ok
}

// ResetHeadGroupID resets all changes to the "head_group_id" field.
func (m *AssignmentMutation) ResetHeadGroupID() {
	m.head_group_id = nil
	delete(m.clearedFields, assignment.FieldHeadGroupID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssignmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssignmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssignmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearNamespace clears the "namespace" edge to the Namespace entity.
func (m *AssignmentMutation) ClearNamespace() {
	m.clearednamespace = true
	m.clearedFields[assignment.FieldNamespaceID] = struct{}{}
}

// NamespaceCleared reports if the "namespace" edge to the Namespace entity was cleared.
func (m *AssignmentMutation) NamespaceCleared() bool {
	return m.clearednamespace
}

// NamespaceIDs returns the "namespace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NamespaceID instead. It exists only for internal usage by the builders.
func (m *AssignmentMutation) NamespaceIDs() (ids []string) {
	if id := m.namespace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNamespace resets all changes to the "namespace" edge.
func (m *AssignmentMutation) ResetNamespace() {
	m.namespace = nil
	m.clearednamespace = false
}

// AddGroupIDs adds the "groups" edge to the JobGroup entity by ids.
func (m *AssignmentMutation) AddGroupIDs(ids ...string) {
	if m.groups == nil {
		m.groups = make(map[string]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the JobGroup entity.
func (m *AssignmentMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the JobGroup entity was cleared.
func (m *AssignmentMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the JobGroup entity by IDs.
func (m *AssignmentMutation) RemoveGroupIDs(ids ...string) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the JobGroup entity.
func (m *AssignmentMutation) RemovedGroupsIDs() (ids []string) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *AssignmentMutation) GroupsIDs() (ids []string) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *AssignmentMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// AddChatThreadIDs adds the "chat_threads" edge to the ChatThread entity by ids.
func (m *AssignmentMutation) AddChatThreadIDs(ids ...string) {
	if m.chat_threads == nil {
		m.chat_threads = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_threads[ids[i]] = struct{}{}
	}
}

// ClearChatThreads clears the "chat_threads" edge to the ChatThread entity.
func (m *AssignmentMutation) ClearChatThreads() {
	m.clearedchat_threads = true
}

// ChatThreadsCleared reports if the "chat_threads" edge to the ChatThread entity was cleared.
func (m *AssignmentMutation) ChatThreadsCleared() bool {
	return m.clearedchat_threads
}

// RemoveChatThreadIDs removes the "chat_threads" edge to the ChatThread entity by IDs.
func (m *AssignmentMutation) RemoveChatThreadIDs(ids ...string) {
	if m.removedchat_threads == nil {
		m.removedchat_threads = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_threads, ids[i])
		m.removedchat_threads[ids[i]] = struct{}{}
	}
}

// RemovedChatThreads returns the removed IDs of the "chat_threads" edge to the ChatThread entity.
func (m *AssignmentMutation) RemovedChatThreadsIDs() (ids []string) {
	for id := range m.removedchat_threads {
		ids = append(ids, id)
	}
	return
}

// ChatThreadsIDs returns the "chat_threads" edge IDs in the mutation.
func (m *AssignmentMutation) ChatThreadsIDs() (ids []string) {
	for id := range m.chat_threads {
		ids = append(ids, id)
	}
	return
}

// ResetChatThreads resets all changes to the "chat_threads" edge.
func (m *AssignmentMutation) ResetChatThreads() {
	m.chat_threads = nil
	m.clearedchat_threads = false
	m.removedchat_threads = nil
}

// Where appends a list predicates to the AssignmentMutation builder.
func (m *AssignmentMutation) Where(ps ...predicate.Assignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assignment).
func (m *AssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssignmentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.namespace != nil {
		fields = append(fields, assignment.FieldNamespaceID)
	}
	if m.north_star != nil {
		fields = append(fields, assignment.FieldNorthStar)
	}
	if m.status != nil {
		fields = append(fields, assignment.FieldStatus)
	}
	if m.independent != nil {
		fields = append(fields, assignment.FieldIndependent)
	}
	if m.priority != nil {
		fields = append(fields, assignment.FieldPriority)
	}
	if m.artifacts != nil {
		fields = append(fields, assignment.FieldArtifacts)
	}
	if m.decisions != nil {
		fields = append(fields, assignment.FieldDecisions)
	}
	if m.blocked_reason != nil {
		fields = append(fields, assignment.FieldBlockedReason)
	}
	if m.alignment_status != nil {
		fields = append(fields, assignment.FieldAlignmentStatus)
	}
	if m.head_group_id != nil {
		fields = append(fields, assignment.FieldHeadGroupID)
	}
	if m.created_at != nil {
		fields = append(fields, assignment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assignment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assignment.FieldNamespaceID:
		return m.NamespaceID()
	case assignment.FieldNorthStar:
		return m.NorthStar()
	case assignment.FieldStatus:
		return m.Status()
	case assignment.FieldIndependent:
		return m.Independent()
	case assignment.FieldPriority:
		return m.Priority()
	case assignment.FieldArtifacts:
		return m.Artifacts()
	case assignment.FieldDecisions:
		return m.Decisions()
	case assignment.FieldBlockedReason:
		return m.BlockedReason()
	case assignment.FieldAlignmentStatus:
		return m.AlignmentStatus()
	case assignment.FieldHeadGroupID:
		return m.HeadGroupID()
	case assignment.FieldCreatedAt:
		return m.CreatedAt()
	case assignment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assignment.FieldNamespaceID:
		return m.OldNamespaceID(ctx)
	case assignment.FieldNorthStar:
		return m.OldNorthStar(ctx)
	case assignment.FieldStatus:
		return m.OldStatus(ctx)
	case assignment.FieldIndependent:
		return m.OldIndependent(ctx)
	case assignment.FieldPriority:
		return m.OldPriority(ctx)
	case assignment.FieldArtifacts:
		return m.OldArtifacts(ctx)
	case assignment.FieldDecisions:
		return m.OldDecisions(ctx)
	case assignment.FieldBlockedReason:
		return m.OldBlockedReason(ctx)
	case assignment.FieldAlignmentStatus:
		return m.OldAlignmentStatus(ctx)
	case assignment.FieldHeadGroupID:
		return m.OldHeadGroupID(ctx)
	case assignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assignment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Assignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assignment.FieldNamespaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNamespaceID(v)
		return nil
	case assignment.FieldNorthStar:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNorthStar(v)
		return nil
	case assignment.FieldStatus:
		v, ok := value.(assignment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case assignment.FieldIndependent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndependent(v)
		return nil
	case assignment.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case assignment.FieldArtifacts:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifacts(v)
		return nil
	case assignment.FieldDecisions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisions(v)
		return nil
	case assignment.FieldBlockedReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedReason(v)
		return nil
	case assignment.FieldAlignmentStatus:
		v, ok := value.(assignment.AlignmentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlignmentStatus(v)
		return nil
	case assignment.FieldHeadGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadGroupID(v)
		return nil
	case assignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assignment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssignmentMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, assignment.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assignment.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assignment.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Assignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assignment.FieldArtifacts) {
		fields = append(fields, assignment.FieldArtifacts)
	}
	if m.FieldCleared(assignment.FieldDecisions) {
		fields = append(fields, assignment.FieldDecisions)
	}
	if m.FieldCleared(assignment.FieldBlockedReason) {
		fields = append(fields, assignment.FieldBlockedReason)
	}
	if m.FieldCleared(assignment.FieldAlignmentStatus) {
		fields = append(fields, assignment.FieldAlignmentStatus)
	}
	if m.FieldCleared(assignment.FieldHeadGroupID) {
		fields = append(fields, assignment.FieldHeadGroupID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssignmentMutation) ClearField(name string) error {
	switch name {
	case assignment.FieldArtifacts:
		m.ClearArtifacts()
		return nil
	case assignment.FieldDecisions:
		m.ClearDecisions()
		return nil
	case assignment.FieldBlockedReason:
		m.ClearBlockedReason()
		return nil
	case assignment.FieldAlignmentStatus:
		m.ClearAlignmentStatus()
		return nil
	case assignment.FieldHeadGroupID:
		m.ClearHeadGroupID()
		return nil
	}
	return fmt.Errorf("unknown Assignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssignmentMutation) ResetField(name string) error {
	switch name {
	case assignment.FieldNamespaceID:
		m.ResetNamespaceID()
		return nil
	case assignment.FieldNorthStar:
		m.ResetNorthStar()
		return nil
	case assignment.FieldStatus:
		m.ResetStatus()
		return nil
	case assignment.FieldIndependent:
		m.ResetIndependent()
		return nil
	case assignment.FieldPriority:
		m.ResetPriority()
		return nil
	case assignment.FieldArtifacts:
		m.ResetArtifacts()
		return nil
	case assignment.FieldDecisions:
		m.ResetDecisions()
		return nil
	case assignment.FieldBlockedReason:
		m.ResetBlockedReason()
		return nil
	case assignment.FieldAlignmentStatus:
		m.ResetAlignmentStatus()
		return nil
	case assignment.FieldHeadGroupID:
		m.ResetHeadGroupID()
		return nil
	case assignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assignment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.namespace != nil {
		edges = append(edges, assignment.EdgeNamespace)
	}
	if m.groups != nil {
		edges = append(edges, assignment.EdgeGroups)
	}
	if m.chat_threads != nil {
		edges = append(edges, assignment.EdgeChatThreads)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assignment.EdgeNamespace:
		if id := m.namespace; id != nil {
			return []ent.Value{*id}
		}
	case assignment.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	case assignment.EdgeChatThreads:
		ids := make([]ent.Value, 0, len(m.chat_threads))
		for id := range m.chat_threads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedgroups != nil {
		edges = append(edges, assignment.EdgeGroups)
	}
	if m.removedchat_threads != nil {
		edges = append(edges, assignment.EdgeChatThreads)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssignmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case assignment.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	case assignment.EdgeChatThreads:
		ids := make([]ent.Value, 0, len(m.removedchat_threads))
		for id := range m.removedchat_threads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearednamespace {
		edges = append(edges, assignment.EdgeNamespace)
	}
	if m.clearedgroups {
		edges = append(edges, assignment.EdgeGroups)
	}
	if m.clearedchat_threads {
		edges = append(edges, assignment.EdgeChatThreads)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case assignment.EdgeNamespace:
		return m.clearednamespace
	case assignment.EdgeGroups:
		return m.clearedgroups
	case assignment.EdgeChatThreads:
		return m.clearedchat_threads
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssignmentMutation) ClearEdge(name string) error {
	switch name {
	case assignment.EdgeNamespace:
		m.ClearNamespace()
		return nil
	}
	return fmt.Errorf("unknown Assignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssignmentMutation) ResetEdge(name string) error {
	switch name {
	case assignment.EdgeNamespace:
		m.ResetNamespace()
		return nil
	case assignment.EdgeGroups:
		m.ResetGroups()
		return nil
	case assignment.EdgeChatThreads:
		m.ResetChatThreads()
		return nil
	}
	return fmt.Errorf("unknown Assignment edge %s", name)
}

// ChatJobMutation represents an operation that mutates the ChatJob nodes in the graph.
type ChatJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	harness            *chatjob.Harness
	context            *string
	prompt             *string
	status             *chatjob.Status
	result             *string
	started_at         *time.Time
	completed_at       *time.Time
	tool_call_count    *int
	addtool_call_count *int
	subagent_count     *int
	addsubagent_count  *int
	total_tokens       *int
	addtotal_tokens    *int
	last_event_at      *time.Time
	exit_forced        *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	thread             *string
	clearedthread      bool
	namespace          *string
	clearednamespace   bool
	done               bool
	oldValue           func(context.Context) (*ChatJob, error)
	predicates         []predicate.ChatJob
}

var _ ent.Mutation = (*ChatJobMutation)(nil)

// chatjobOption allows management of the mutation configuration using functional options.
type chatjobOption func(*ChatJobMutation)

// newChatJobMutation creates new mutation for the ChatJob entity.
func newChatJobMutation(c config, op Op, opts ...chatjobOption) *ChatJobMutation {
	m := &ChatJobMutation{
		config:        c,
		op:            op,
		typ:           TypeChatJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatJobID sets the ID field of the mutation.
func withChatJobID(id string) chatjobOption {
	return func(m *ChatJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatJob
		)
		m.oldValue = func(ctx context.Context) (*ChatJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatJob sets the old ChatJob of the mutation.
func withChatJob(node *ChatJob) chatjobOption {
	return func(m *ChatJobMutation) {
		m.oldValue = func(context.Context) (*ChatJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatJob entities.
func (m *ChatJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *ChatJobMutation) SetThreadID(s string) {
	m.thread = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *ChatJobMutation) ThreadID() (r string, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *ChatJobMutation) ResetThreadID() {
	m.thread = nil
}

// SetNamespaceID sets the "namespace_id" field.
func (m *ChatJobMutation) SetNamespaceID(s string) {
	m.namespace = &s
}

// NamespaceID returns the value of the "namespace_id" field in the mutation.
func (m *ChatJobMutation) NamespaceID() (r string, exists bool) {
	v := m.namespace
	if v == nil {
		return
	}
	return *v, true
}

// OldNamespaceID returns the old "namespace_id" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldNamespaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNamespaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNamespaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNamespaceID: %w", err)
	}
	return oldValue.NamespaceID, nil
}

// ResetNamespaceID resets all changes to the "namespace_id" field.
func (m *ChatJobMutation) ResetNamespaceID() {
	m.namespace = nil
}

// SetHarness sets the "harness" field.
func (m *ChatJobMutation) SetHarness(c chatjob.Harness) {
	m.harness = &c
}

// Harness returns the value of the "harness" field in the mutation.
func (m *ChatJobMutation) Harness() (r chatjob.Harness, exists bool) {
	v := m.harness
	if v == nil {
		return
	}
	return *v, true
}

// OldHarness returns the old "harness" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldHarness(ctx context.Context) (v chatjob.Harness, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHarness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHarness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHarness: %w", err)
	}
	return oldValue.Harness, nil
}

// ResetHarness resets all changes to the "harness" field.
func (m *ChatJobMutation) ResetHarness() {
	m.harness = nil
}

// SetContext sets the "context" field.
func (m *ChatJobMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *ChatJobMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ResetContext resets all changes to the "context" field.
func (m *ChatJobMutation) ResetContext() {
	m.context = nil
}

// SetPrompt sets the "prompt" field.
func (m *ChatJobMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ChatJobMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *ChatJobMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[chatjob.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *ChatJobMutation) PromptCleared() bool {
	_, ok := m.clearedFields[chatjob.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ChatJobMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, chatjob.FieldPrompt)
}

// SetStatus sets the "status" field.
func (m *ChatJobMutation) SetStatus(c chatjob.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ChatJobMutation) Status() (r chatjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldStatus(ctx context.Context) (v chatjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ChatJobMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *ChatJobMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *ChatJobMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ChatJobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[chatjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ChatJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[chatjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ChatJobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, chatjob.FieldResult)
}

// SetStartedAt sets the "started_at" field.
func (m *ChatJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ChatJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ChatJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[chatjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ChatJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[chatjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ChatJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, chatjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ChatJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ChatJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ChatJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[chatjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ChatJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[chatjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ChatJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, chatjob.FieldCompletedAt)
}

// SetToolCallCount sets the "tool_call_count" field.
func (m *ChatJobMutation) SetToolCallCount(i int) {
	m.tool_call_count = &i
	m.addtool_call_count = nil
}

// ToolCallCount returns the value of the "tool_call_count" field in the mutation.
func (m *ChatJobMutation) ToolCallCount() (r int, exists bool) {
	v := m.tool_call_count
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallCount returns the old "tool_call_count" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldToolCallCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallCount: %w", err)
	}
	return oldValue.ToolCallCount, nil
}

// AddToolCallCount adds i to the "tool_call_count" field.
func (m *ChatJobMutation) AddToolCallCount(i int) {
	if m.addtool_call_count != nil {
		*m.addtool_call_count += i
	} else {
		m.addtool_call_count = &i
	}
}

// AddedToolCallCount returns the value that was added to the "tool_call_count" field in this mutation.
func (m *ChatJobMutation) AddedToolCallCount() (r int, exists bool) {
	v := m.addtool_call_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetToolCallCount resets all changes to the "tool_call_count" field.
func (m *ChatJobMutation) ResetToolCallCount() {
	m.tool_call_count = nil
	m.addtool_call_count = nil
}

// SetSubagentCount sets the "subagent_count" field.
func (m *ChatJobMutation) SetSubagentCount(i int) {
	m.subagent_count = &i
	m.addsubagent_count = nil
}

// SubagentCount returns the value of the "subagent_count" field in the mutation.
func (m *ChatJobMutation) SubagentCount() (r int, exists bool) {
	v := m.subagent_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSubagentCount returns the old "subagent_count" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldSubagentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubagentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubagentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubagentCount: %w", err)
	}
	return oldValue.SubagentCount, nil
}

// AddSubagentCount adds i to the "subagent_count" field.
func (m *ChatJobMutation) AddSubagentCount(i int) {
	if m.addsubagent_count != nil {
		*m.addsubagent_count += i
	} else {
		m.addsubagent_count = &i
	}
}

// AddedSubagentCount returns the value that was added to the "subagent_count" field in this mutation.
func (m *ChatJobMutation) AddedSubagentCount() (r int, exists bool) {
	v := m.addsubagent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubagentCount resets all changes to the "subagent_count" field.
func (m *ChatJobMutation) ResetSubagentCount() {
	m.subagent_count = nil
	m.addsubagent_count = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *ChatJobMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *ChatJobMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *ChatJobMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *ChatJobMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *ChatJobMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetLastEventAt sets the "last_event_at" field.
func (m *ChatJobMutation) SetLastEventAt(t time.Time) {
	m.last_event_at = &t
}

// LastEventAt returns the value of the "last_event_at" field in the mutation.
func (m *ChatJobMutation) LastEventAt() (r time.Time, exists bool) {
	v := m.last_event_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventAt returns the old "last_event_at" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldLastEventAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventAt: %w", err)
	}
	return oldValue.LastEventAt, nil
}

// ClearLastEventAt clears the value of the "last_event_at" field.
func (m *ChatJobMutation) ClearLastEventAt() {
	m.last_event_at = nil
	m.clearedFields[chatjob.FieldLastEventAt] = struct{}{}
}

// LastEventAtCleared returns if the "last_event_at" field was cleared in this mutation.
func (m *ChatJobMutation) LastEventAtCleared() bool {
	_, ok := m.clearedFields[chatjob.FieldLastEventAt]
	return ok
}

// ResetLastEventAt resets all changes to the "last_event_at" field.
func (m *ChatJobMutation) ResetLastEventAt() {
	m.last_event_at = nil
	delete(m.clearedFields, chatjob.FieldLastEventAt)
}

// SetExitForced sets the "exit_forced" field.
func (m *ChatJobMutation) SetExitForced(b bool) {
	m.exit_forced = &b
}

// ExitForced returns the value of the "exit_forced" field in the mutation.
func (m *ChatJobMutation) ExitForced() (r bool, exists bool) {
	v := m.exit_forced
	if v == nil {
		return
	}
	return *v, true
}

// OldExitForced returns the old "exit_forced" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldExitForced(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitForced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitForced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitForced: %w", err)
	}
	return oldValue.ExitForced, nil
}

// ResetExitForced resets all changes to the "exit_forced" field.
func (m *ChatJobMutation) ResetExitForced() {
	m.exit_forced = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatJob entity.
// If the ChatJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearThread clears the "thread" edge to the ChatThread entity.
func (m *ChatJobMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[chatjob.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the ChatThread entity was cleared.
func (m *ChatJobMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *ChatJobMutation) ThreadIDs() (ids []string) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *ChatJobMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// ClearNamespace clears the "namespace" edge to the Namespace entity.
func (m *ChatJobMutation) ClearNamespace() {
	m.clearednamespace = true
	m.clearedFields[chatjob.FieldNamespaceID] = struct{}{}
}

// NamespaceCleared reports if the "namespace" edge to the Namespace entity was cleared.
func (m *ChatJobMutation) NamespaceCleared() bool {
	return m.clearednamespace
}

// NamespaceIDs returns the "namespace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NamespaceID instead. It exists only for internal usage by the builders.
func (m *ChatJobMutation) NamespaceIDs() (ids []string) {
	if id := m.namespace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNamespace resets all changes to the "namespace" edge.
func (m *ChatJobMutation) ResetNamespace() {
	m.namespace = nil
	m.clearednamespace = false
}

// Where appends a list predicates to the ChatJobMutation builder.
func (m *ChatJobMutation) Where(ps ...predicate.ChatJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatJob).
func (m *ChatJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatJobMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.thread != nil {
		fields = append(fields, chatjob.FieldThreadID)
	}
	if m.namespace != nil {
		fields = append(fields, chatjob.FieldNamespaceID)
	}
	if m.harness != nil {
		fields = append(fields, chatjob.FieldHarness)
	}
	if m.context != nil {
		fields = append(fields, chatjob.FieldContext)
	}
	if m.prompt != nil {
		fields = append(fields, chatjob.FieldPrompt)
	}
	if m.status != nil {
		fields = append(fields, chatjob.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, chatjob.FieldResult)
	}
	if m.started_at != nil {
		fields = append(fields, chatjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, chatjob.FieldCompletedAt)
	}
	if m.tool_call_count != nil {
		fields = append(fields, chatjob.FieldToolCallCount)
	}
	if m.subagent_count != nil {
		fields = append(fields, chatjob.FieldSubagentCount)
	}
	if m.total_tokens != nil {
		fields = append(fields, chatjob.FieldTotalTokens)
	}
	if m.last_event_at != nil {
		fields = append(fields, chatjob.FieldLastEventAt)
	}
	if m.exit_forced != nil {
		fields = append(fields, chatjob.FieldExitForced)
	}
	if m.created_at != nil {
		fields = append(fields, chatjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatjob.FieldThreadID:
		return m.ThreadID()
	case chatjob.FieldNamespaceID:
		return m.NamespaceID()
	case chatjob.FieldHarness:
		return m.Harness()
	case chatjob.FieldContext:
		return m.Context()
	case chatjob.FieldPrompt:
		return m.Prompt()
	case chatjob.FieldStatus:
		return m.Status()
	case chatjob.FieldResult:
		return m.Result()
	case chatjob.FieldStartedAt:
		return m.StartedAt()
	case chatjob.FieldCompletedAt:
		return m.CompletedAt()
	case chatjob.FieldToolCallCount:
		return m.ToolCallCount()
	case chatjob.FieldSubagentCount:
		return m.SubagentCount()
	case chatjob.FieldTotalTokens:
		return m.TotalTokens()
	case chatjob.FieldLastEventAt:
		return m.LastEventAt()
	case chatjob.FieldExitForced:
		return m.ExitForced()
	case chatjob.FieldCreatedAt:
		return m.CreatedAt()
	case chatjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatjob.FieldThreadID:
		return m.OldThreadID(ctx)
	case chatjob.FieldNamespaceID:
		return m.OldNamespaceID(ctx)
	case chatjob.FieldHarness:
		return m.OldHarness(ctx)
	case chatjob.FieldContext:
		return m.OldContext(ctx)
	case chatjob.FieldPrompt:
		return m.OldPrompt(ctx)
	case chatjob.FieldStatus:
		return m.OldStatus(ctx)
	case chatjob.FieldResult:
		return m.OldResult(ctx)
	case chatjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case chatjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case chatjob.FieldToolCallCount:
		return m.OldToolCallCount(ctx)
	case chatjob.FieldSubagentCount:
		return m.OldSubagentCount(ctx)
	case chatjob.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case chatjob.FieldLastEventAt:
		return m.OldLastEventAt(ctx)
	case chatjob.FieldExitForced:
		return m.OldExitForced(ctx)
	case chatjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatjob.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case chatjob.FieldNamespaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNamespaceID(v)
		return nil
	case chatjob.FieldHarness:
		v, ok := value.(chatjob.Harness)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHarness(v)
		return nil
	case chatjob.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case chatjob.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case chatjob.FieldStatus:
		v, ok := value.(chatjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case chatjob.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case chatjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case chatjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case chatjob.FieldToolCallCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallCount(v)
		return nil
	case chatjob.FieldSubagentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubagentCount(v)
		return nil
	case chatjob.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case chatjob.FieldLastEventAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventAt(v)
		return nil
	case chatjob.FieldExitForced:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitForced(v)
		return nil
	case chatjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatJobMutation) AddedFields() []string {
	var fields []string
	if m.addtool_call_count != nil {
		fields = append(fields, chatjob.FieldToolCallCount)
	}
	if m.addsubagent_count != nil {
		fields = append(fields, chatjob.FieldSubagentCount)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, chatjob.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatjob.FieldToolCallCount:
		return m.AddedToolCallCount()
	case chatjob.FieldSubagentCount:
		return m.AddedSubagentCount()
	case chatjob.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatjob.FieldToolCallCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToolCallCount(v)
		return nil
	case chatjob.FieldSubagentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubagentCount(v)
		return nil
	case chatjob.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown ChatJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatjob.FieldPrompt) {
		fields = append(fields, chatjob.FieldPrompt)
	}
	if m.FieldCleared(chatjob.FieldResult) {
		fields = append(fields, chatjob.FieldResult)
	}
	if m.FieldCleared(chatjob.FieldStartedAt) {
		fields = append(fields, chatjob.FieldStartedAt)
	}
	if m.FieldCleared(chatjob.FieldCompletedAt) {
		fields = append(fields, chatjob.FieldCompletedAt)
	}
	if m.FieldCleared(chatjob.FieldLastEventAt) {
		fields = append(fields, chatjob.FieldLastEventAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatJobMutation) ClearField(name string) error {
	switch name {
	case chatjob.FieldPrompt:
		m.ClearPrompt()
		return nil
	case chatjob.FieldResult:
		m.ClearResult()
		return nil
	case chatjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case chatjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case chatjob.FieldLastEventAt:
		m.ClearLastEventAt()
		return nil
	}
	return fmt.Errorf("unknown ChatJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatJobMutation) ResetField(name string) error {
	switch name {
	case chatjob.FieldThreadID:
		m.ResetThreadID()
		return nil
	case chatjob.FieldNamespaceID:
		m.ResetNamespaceID()
		return nil
	case chatjob.FieldHarness:
		m.ResetHarness()
		return nil
	case chatjob.FieldContext:
		m.ResetContext()
		return nil
	case chatjob.FieldPrompt:
		m.ResetPrompt()
		return nil
	case chatjob.FieldStatus:
		m.ResetStatus()
		return nil
	case chatjob.FieldResult:
		m.ResetResult()
		return nil
	case chatjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case chatjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case chatjob.FieldToolCallCount:
		m.ResetToolCallCount()
		return nil
	case chatjob.FieldSubagentCount:
		m.ResetSubagentCount()
		return nil
	case chatjob.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case chatjob.FieldLastEventAt:
		m.ResetLastEventAt()
		return nil
	case chatjob.FieldExitForced:
		m.ResetExitForced()
		return nil
	case chatjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.thread != nil {
		edges = append(edges, chatjob.EdgeThread)
	}
	if m.namespace != nil {
		edges = append(edges, chatjob.EdgeNamespace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatjob.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	case chatjob.EdgeNamespace:
		if id := m.namespace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedthread {
		edges = append(edges, chatjob.EdgeThread)
	}
	if m.clearednamespace {
		edges = append(edges, chatjob.EdgeNamespace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatJobMutation) EdgeCleared(name string) bool {
	switch name {
	case chatjob.EdgeThread:
		return m.clearedthread
	case chatjob.EdgeNamespace:
		return m.clearednamespace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatJobMutation) ClearEdge(name string) error {
	switch name {
	case chatjob.EdgeThread:
		m.ClearThread()
		return nil
	case chatjob.EdgeNamespace:
		m.ClearNamespace()
		return nil
	}
	return fmt.Errorf("unknown ChatJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatJobMutation) ResetEdge(name string) error {
	switch name {
	case chatjob.EdgeThread:
		m.ResetThread()
		return nil
	case chatjob.EdgeNamespace:
		m.ResetNamespace()
		return nil
	}
	return fmt.Errorf("unknown ChatJob edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	role          *chatmessage.Role
	content       *string
	hint          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	thread        *string
	clearedthread bool
	done          bool
	oldValue      func(context.Context) (*ChatMessage, error)
	predicates    []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *ChatMessageMutation) SetThreadID(s string) {
	m.thread = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *ChatMessageMutation) ThreadID() (r string, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *ChatMessageMutation) ResetThreadID() {
	m.thread = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetHint sets the "hint" field.
func (m *ChatMessageMutation) SetHint(s string) {
	m.hint = &s
}

// Hint returns the value of the "hint" field in the mutation.
func (m *ChatMessageMutation) Hint() (r string, exists bool) {
	v := m.hint
	if v == nil {
		return
	}
	return *v, true
}

// OldHint returns the old "hint" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldHint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHint: %w", err)
	}
	return oldValue.Hint, nil
}

// ClearHint clears the value of the "hint" field.
func (m *ChatMessageMutation) ClearHint() {
	m.hint = nil
	m.clearedFields[chatmessage.FieldHint] = struct{}{}
}

// HintCleared returns if the "hint" field was cleared in this mutation.
func (m *ChatMessageMutation) HintCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldHint]
	return ok
}

// ResetHint resets all changes to the "hint" field.
func (m *ChatMessageMutation) ResetHint() {
	m.hint = nil
	delete(m.clearedFields, chatmessage.FieldHint)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearThread clears the "thread" edge to the ChatThread entity.
func (m *ChatMessageMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[chatmessage.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the ChatThread entity was cleared.
func (m *ChatMessageMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) ThreadIDs() (ids []string) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *ChatMessageMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.thread != nil {
		fields = append(fields, chatmessage.FieldThreadID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.hint != nil {
		fields = append(fields, chatmessage.FieldHint)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldThreadID:
		return m.ThreadID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldHint:
		return m.Hint()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldThreadID:
		return m.OldThreadID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldHint:
		return m.OldHint(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldHint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHint(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldHint) {
		fields = append(fields, chatmessage.FieldHint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldHint:
		m.ClearHint()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldThreadID:
		m.ResetThreadID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldHint:
		m.ResetHint()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.thread != nil {
		edges = append(edges, chatmessage.EdgeThread)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedthread {
		edges = append(edges, chatmessage.EdgeThread)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeThread:
		return m.clearedthread
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeThread:
		m.ClearThread()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeThread:
		m.ResetThread()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ChatThreadMutation represents an operation that mutates the ChatThread nodes in the graph.
type ChatThreadMutation struct {
	config
	op                Op
	typ               string
	id                *string
	title             *string
	mode              *chatthread.Mode
	last_prompt_mode  *chatthread.LastPromptMode
	claude_session_id *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	namespace         *string
	clearednamespace  bool
	assignment        *string
	clearedassignment bool
	messages          map[string]struct{}
	removedmessages   map[string]struct{}
	clearedmessages   bool
	chat_jobs         map[string]struct{}
	removedchat_jobs  map[string]struct{}
	clearedchat_jobs  bool
	done              bool
	oldValue          func(context.Context) (*ChatThread, error)
	predicates        []predicate.ChatThread
}

var _ ent.Mutation = (*ChatThreadMutation)(nil)

// chatthreadOption allows management of the mutation configuration using functional options.
type chatthreadOption func(*ChatThreadMutation)

// newChatThreadMutation creates new mutation for the ChatThread entity.
func newChatThreadMutation(c config, op Op, opts ...chatthreadOption) *ChatThreadMutation {
	m := &ChatThreadMutation{
		config:        c,
		op:            op,
		typ:           TypeChatThread,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatThreadID sets the ID field of the mutation.
func withChatThreadID(id string) chatthreadOption {
	return func(m *ChatThreadMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatThread
		)
		m.oldValue = func(ctx context.Context) (*ChatThread, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatThread.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatThread sets the old ChatThread of the mutation.
func withChatThread(node *ChatThread) chatthreadOption {
	return func(m *ChatThreadMutation) {
		m.oldValue = func(context.Context) (*ChatThread, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatThreadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatThreadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatThread entities.
func (m *ChatThreadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatThreadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatThreadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatThread.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNamespaceID sets the "namespace_id" field.
func (m *ChatThreadMutation) SetNamespaceID(s string) {
	m.namespace = &s
}

// NamespaceID returns the value of the "namespace_id" field in the mutation.
func (m *ChatThreadMutation) NamespaceID() (r string, exists bool) {
	v := m.namespace
	if v == nil {
		return
	}
	return *v, true
}

// OldNamespaceID returns the old "namespace_id" field's value of the ChatThread entity.
// If the ChatThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatThreadMutation) OldNamespaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNamespaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNamespaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNamespaceID: %w", err)
	}
	return oldValue.NamespaceID, nil
}

// ResetNamespaceID resets all changes to the "namespace_id" field.
func (m *ChatThreadMutation) ResetNamespaceID() {
	m.namespace = nil
}

// SetTitle sets the "title" field.
func (m *ChatThreadMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChatThreadMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ChatThread entity.
// If the ChatThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatThreadMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ChatThreadMutation) ResetTitle() {
	m.title = nil
}

// SetMode sets the "mode" field.
func (m *ChatThreadMutation) SetMode(c chatthread.Mode) {
	m.mode = &c
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ChatThreadMutation) Mode() (r chatthread.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ChatThread entity.
// If the ChatThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatThreadMutation) OldMode(ctx context.Context) (v chatthread.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ChatThreadMutation) ResetMode() {
	m.mode = nil
}

// SetLastPromptMode sets the "last_prompt_mode" field.
func (m *ChatThreadMutation) SetLastPromptMode(cpm chatthread.LastPromptMode) {
	m.last_prompt_mode = &cpm
}

// LastPromptMode returns the value of the "last_prompt_mode" field in the mutation.
func (m *ChatThreadMutation) LastPromptMode() (r chatthread.LastPromptMode, exists bool) {
	v := m.last_prompt_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPromptMode returns the old "last_prompt_mode" field's value of the ChatThread entity.
// If the ChatThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatThreadMutation) OldLastPromptMode(ctx context.Context) (v *chatthread.LastPromptMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPromptMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPromptMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPromptMode: %w", err)
	}
	return oldValue.LastPromptMode, nil
}

// ClearLastPromptMode clears the value of the "last_prompt_mode" field.
func (m *ChatThreadMutation) ClearLastPromptMode() {
	m.last_prompt_mode = nil
	m.clearedFields[chatthread.FieldLastPromptMode] = struct{}{}
}

// LastPromptModeCleared returns if the "last_prompt_mode" field was cleared in this mutation.
func (m *ChatThreadMutation) LastPromptModeCleared() bool {
	_, ok := m.clearedFields[chatthread.FieldLastPromptMode]
	return ok
}

// ResetLastPromptMode resets all changes to the "last_prompt_mode" field.
func (m *ChatThreadMutation) ResetLastPromptMode() {
	m.last_prompt_mode = nil
	delete(m.clearedFields, chatthread.FieldLastPromptMode)
}

// SetAssignmentID sets the "assignment_id" field.
func (m *ChatThreadMutation) SetAssignmentID(s string) {
	m.assignment = &s
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *ChatThreadMutation) AssignmentID() (r string, exists bool) {
	v := m.assignment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the ChatThread entity.
// If the ChatThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatThreadMutation) OldAssignmentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// ClearAssignmentID clears the value of the "assignment_id" field.
func (m *ChatThreadMutation) ClearAssignmentID() {
	m.assignment = nil
	m.clearedFields[chatthread.FieldAssignmentID] = struct{}{}
}

// AssignmentIDCleared returns if the "assignment_id" field was cleared in this mutation.
func (m *ChatThreadMutation) AssignmentIDCleared() bool {
	_, ok := m.clearedFields[chatthread.FieldAssignmentID]
	return ok
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *ChatThreadMutation) ResetAssignmentID() {
	m.assignment = nil
	delete(m.clearedFields, chatthread.FieldAssignmentID)
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (m *ChatThreadMutation) SetClaudeSessionID(s string) {
	m.claude_session_id = &s
}

// ClaudeSessionID returns the value of the "claude_session_id" field in the mutation.
func (m *ChatThreadMutation) ClaudeSessionID() (r string, exists bool) {
	v := m.claude_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClaudeSessionID returns the old "claude_session_id" field's value of the ChatThread entity.
// If the ChatThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatThreadMutation) OldClaudeSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaudeSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaudeSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaudeSessionID: %w", err)
	}
	return oldValue.ClaudeSessionID, nil
}

// ClearClaudeSessionID clears the value of the "claude_session_id" field.
func (m *ChatThreadMutation) ClearClaudeSessionID() {
	m.claude_session_id = nil
	m.clearedFields[chatthread.FieldClaudeSessionID] = struct{}{}
}

// ClaudeSessionIDCleared returns if the "claude_session_id" field was cleared in this mutation.
func (m *ChatThreadMutation) ClaudeSessionIDCleared() bool {
	_, ok := m.clearedFields[chatthread.FieldClaudeSessionID]
	return ok
}

// ResetClaudeSessionID resets all changes to the "claude_session_id" field.
func (m *ChatThreadMutation) ResetClaudeSessionID() {
	m.claude_session_id = nil
	delete(m.clearedFields, chatthread.FieldClaudeSessionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatThreadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatThreadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatThread entity.
// If the ChatThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatThreadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatThreadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatThreadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatThreadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatThread entity.
// If the ChatThread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatThreadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatThreadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearNamespace clears the "namespace" edge to the Namespace entity.
func (m *ChatThreadMutation) ClearNamespace() {
	m.clearednamespace = true
	m.clearedFields[chatthread.FieldNamespaceID] = struct{}{}
}

// NamespaceCleared reports if the "namespace" edge to the Namespace entity was cleared.
func (m *ChatThreadMutation) NamespaceCleared() bool {
	return m.clearednamespace
}

// NamespaceIDs returns the "namespace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NamespaceID instead. It exists only for internal usage by the builders.
func (m *ChatThreadMutation) NamespaceIDs() (ids []string) {
	if id := m.namespace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNamespace resets all changes to the "namespace" edge.
func (m *ChatThreadMutation) ResetNamespace() {
	m.namespace = nil
	m.clearednamespace = false
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (m *ChatThreadMutation) ClearAssignment() {
	m.clearedassignment = true
	m.clearedFields[chatthread.FieldAssignmentID] = struct{}{}
}

// AssignmentCleared reports if the "assignment" edge to the Assignment entity was cleared.
func (m *ChatThreadMutation) AssignmentCleared() bool {
	return m.AssignmentIDCleared() || m.clearedassignment
}

// AssignmentIDs returns the "assignment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignmentID instead. It exists only for internal usage by the builders.
func (m *ChatThreadMutation) AssignmentIDs() (ids []string) {
	if id := m.assignment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignment resets all changes to the "assignment" edge.
func (m *ChatThreadMutation) ResetAssignment() {
	m.assignment = nil
	m.clearedassignment = false
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *ChatThreadMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *ChatThreadMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *ChatThreadMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *ChatThreadMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *ChatThreadMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatThreadMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatThreadMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddChatJobIDs adds the "chat_jobs" edge to the ChatJob entity by ids.
func (m *ChatThreadMutation) AddChatJobIDs(ids ...string) {
	if m.chat_jobs == nil {
		m.chat_jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_jobs[ids[i]] = struct{}{}
	}
}

// ClearChatJobs clears the "chat_jobs" edge to the ChatJob entity.
func (m *ChatThreadMutation) ClearChatJobs() {
	m.clearedchat_jobs = true
}

// ChatJobsCleared reports if the "chat_jobs" edge to the ChatJob entity was cleared.
func (m *ChatThreadMutation) ChatJobsCleared() bool {
	return m.clearedchat_jobs
}

// RemoveChatJobIDs removes the "chat_jobs" edge to the ChatJob entity by IDs.
func (m *ChatThreadMutation) RemoveChatJobIDs(ids ...string) {
	if m.removedchat_jobs == nil {
		m.removedchat_jobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_jobs, ids[i])
		m.removedchat_jobs[ids[i]] = struct{}{}
	}
}

// RemovedChatJobs returns the removed IDs of the "chat_jobs" edge to the ChatJob entity.
func (m *ChatThreadMutation) RemovedChatJobsIDs() (ids []string) {
	for id := range m.removedchat_jobs {
		ids = append(ids, id)
	}
	return
}

// ChatJobsIDs returns the "chat_jobs" edge IDs in the mutation.
func (m *ChatThreadMutation) ChatJobsIDs() (ids []string) {
	for id := range m.chat_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetChatJobs resets all changes to the "chat_jobs" edge.
func (m *ChatThreadMutation) ResetChatJobs() {
	m.chat_jobs = nil
	m.clearedchat_jobs = false
	m.removedchat_jobs = nil
}

// Where appends a list predicates to the ChatThreadMutation builder.
func (m *ChatThreadMutation) Where(ps ...predicate.ChatThread) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatThreadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatThreadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatThread, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatThreadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatThreadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatThread).
func (m *ChatThreadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatThreadMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.namespace != nil {
		fields = append(fields, chatthread.FieldNamespaceID)
	}
	if m.title != nil {
		fields = append(fields, chatthread.FieldTitle)
	}
	if m.mode != nil {
		fields = append(fields, chatthread.FieldMode)
	}
	if m.last_prompt_mode != nil {
		fields = append(fields, chatthread.FieldLastPromptMode)
	}
	if m.assignment != nil {
		fields = append(fields, chatthread.FieldAssignmentID)
	}
	if m.claude_session_id != nil {
		fields = append(fields, chatthread.FieldClaudeSessionID)
	}
	if m.created_at != nil {
		fields = append(fields, chatthread.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatthread.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatThreadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatthread.FieldNamespaceID:
		return m.NamespaceID()
	case chatthread.FieldTitle:
		return m.Title()
	case chatthread.FieldMode:
		return m.Mode()
	case chatthread.FieldLastPromptMode:
		return m.LastPromptMode()
	case chatthread.FieldAssignmentID:
		return m.AssignmentID()
	case chatthread.FieldClaudeSessionID:
		return m.ClaudeSessionID()
	case chatthread.FieldCreatedAt:
		return m.CreatedAt()
	case chatthread.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatThreadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatthread.FieldNamespaceID:
		return m.OldNamespaceID(ctx)
	case chatthread.FieldTitle:
		return m.OldTitle(ctx)
	case chatthread.FieldMode:
		return m.OldMode(ctx)
	case chatthread.FieldLastPromptMode:
		return m.OldLastPromptMode(ctx)
	case chatthread.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	case chatthread.FieldClaudeSessionID:
		return m.OldClaudeSessionID(ctx)
	case chatthread.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatthread.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatThread field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatThreadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatthread.FieldNamespaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNamespaceID(v)
		return nil
	case chatthread.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chatthread.FieldMode:
		v, ok := value.(chatthread.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case chatthread.FieldLastPromptMode:
		v, ok := value.(chatthread.LastPromptMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPromptMode(v)
		return nil
	case chatthread.FieldAssignmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	case chatthread.FieldClaudeSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaudeSessionID(v)
		return nil
	case chatthread.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatthread.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatThread field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatThreadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatThreadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatThreadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatThread numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatThreadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatthread.FieldLastPromptMode) {
		fields = append(fields, chatthread.FieldLastPromptMode)
	}
	if m.FieldCleared(chatthread.FieldAssignmentID) {
		fields = append(fields, chatthread.FieldAssignmentID)
	}
	if m.FieldCleared(chatthread.FieldClaudeSessionID) {
		fields = append(fields, chatthread.FieldClaudeSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatThreadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatThreadMutation) ClearField(name string) error {
	switch name {
	case chatthread.FieldLastPromptMode:
		m.ClearLastPromptMode()
		return nil
	case chatthread.FieldAssignmentID:
		m.ClearAssignmentID()
		return nil
	case chatthread.FieldClaudeSessionID:
		m.ClearClaudeSessionID()
		return nil
	}
	return fmt.Errorf("unknown ChatThread nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatThreadMutation) ResetField(name string) error {
	switch name {
	case chatthread.FieldNamespaceID:
		m.ResetNamespaceID()
		return nil
	case chatthread.FieldTitle:
		m.ResetTitle()
		return nil
	case chatthread.FieldMode:
		m.ResetMode()
		return nil
	case chatthread.FieldLastPromptMode:
		m.ResetLastPromptMode()
		return nil
	case chatthread.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	case chatthread.FieldClaudeSessionID:
		m.ResetClaudeSessionID()
		return nil
	case chatthread.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatthread.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatThread field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatThreadMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.namespace != nil {
		edges = append(edges, chatthread.EdgeNamespace)
	}
	if m.assignment != nil {
		edges = append(edges, chatthread.EdgeAssignment)
	}
	if m.messages != nil {
		edges = append(edges, chatthread.EdgeMessages)
	}
	if m.chat_jobs != nil {
		edges = append(edges, chatthread.EdgeChatJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatThreadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatthread.EdgeNamespace:
		if id := m.namespace; id != nil {
			return []ent.Value{*id}
		}
	case chatthread.EdgeAssignment:
		if id := m.assignment; id != nil {
			return []ent.Value{*id}
		}
	case chatthread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case chatthread.EdgeChatJobs:
		ids := make([]ent.Value, 0, len(m.chat_jobs))
		for id := range m.chat_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatThreadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmessages != nil {
		edges = append(edges, chatthread.EdgeMessages)
	}
	if m.removedchat_jobs != nil {
		edges = append(edges, chatthread.EdgeChatJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatThreadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatthread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case chatthread.EdgeChatJobs:
		ids := make([]ent.Value, 0, len(m.removedchat_jobs))
		for id := range m.removedchat_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatThreadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearednamespace {
		edges = append(edges, chatthread.EdgeNamespace)
	}
	if m.clearedassignment {
		edges = append(edges, chatthread.EdgeAssignment)
	}
	if m.clearedmessages {
		edges = append(edges, chatthread.EdgeMessages)
	}
	if m.clearedchat_jobs {
		edges = append(edges, chatthread.EdgeChatJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatThreadMutation) EdgeCleared(name string) bool {
	switch name {
	case chatthread.EdgeNamespace:
		return m.clearednamespace
	case chatthread.EdgeAssignment:
		return m.clearedassignment
	case chatthread.EdgeMessages:
		return m.clearedmessages
	case chatthread.EdgeChatJobs:
		return m.clearedchat_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatThreadMutation) ClearEdge(name string) error {
	switch name {
	case chatthread.EdgeNamespace:
		m.ClearNamespace()
		return nil
	case chatthread.EdgeAssignment:
		m.ClearAssignment()
		return nil
	}
	return fmt.Errorf("unknown ChatThread unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatThreadMutation) ResetEdge(name string) error {
	switch name {
	case chatthread.EdgeNamespace:
		m.ResetNamespace()
		return nil
	case chatthread.EdgeAssignment:
		m.ResetAssignment()
		return nil
	case chatthread.EdgeMessages:
		m.ResetMessages()
		return nil
	case chatthread.EdgeChatJobs:
		m.ResetChatJobs()
		return nil
	}
	return fmt.Errorf("unknown ChatThread edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	job_type           *string
	harness            *job.Harness
	context            *string
	prompt             *string
	status             *job.Status
	result             *string
	started_at         *time.Time
	completed_at       *time.Time
	tool_call_count    *int
	addtool_call_count *int
	subagent_count     *int
	addsubagent_count  *int
	total_tokens       *int
	addtotal_tokens    *int
	last_event_at      *time.Time
	exit_forced        *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	group              *string
	clearedgroup       bool
	done               bool
	oldValue           func(context.Context) (*Job, error)
	predicates         []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *JobMutation) SetGroupID(s string) {
	m.group = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *JobMutation) GroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *JobMutation) ResetGroupID() {
	m.group = nil
}

// SetJobType sets the "job_type" field.
func (m *JobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *JobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *JobMutation) ResetJobType() {
	m.job_type = nil
}

// SetHarness sets the "harness" field.
func (m *JobMutation) SetHarness(j job.Harness) {
	m.harness = &j
}

// Harness returns the value of the "harness" field in the mutation.
func (m *JobMutation) Harness() (r job.Harness, exists bool) {
	v := m.harness
	if v == nil {
		return
	}
	return *v, true
}

// OldHarness returns the old "harness" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldHarness(ctx context.Context) (v job.Harness, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHarness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHarness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHarness: %w", err)
	}
	return oldValue.Harness, nil
}

// ResetHarness resets all changes to the "harness" field.
func (m *JobMutation) ResetHarness() {
	m.harness = nil
}

// SetContext sets the "context" field.
func (m *JobMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *JobMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldContext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *JobMutation) ClearContext() {
	m.context = nil
	m.clearedFields[job.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *JobMutation) ContextCleared() bool {
	_, ok := m.clearedFields[job.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *JobMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, job.FieldContext)
}

// SetPrompt sets the "prompt" field.
func (m *JobMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *JobMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *JobMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[job.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *JobMutation) PromptCleared() bool {
	_, ok := m.clearedFields[job.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *JobMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, job.FieldPrompt)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetToolCallCount sets the "tool_call_count" field.
func (m *JobMutation) SetToolCallCount(i int) {
	m.tool_call_count = &i
	m.addtool_call_count = nil
}

// ToolCallCount returns the value of the "tool_call_count" field in the mutation.
func (m *JobMutation) ToolCallCount() (r int, exists bool) {
	v := m.tool_call_count
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallCount returns the old "tool_call_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldToolCallCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallCount: %w", err)
	}
	return oldValue.ToolCallCount, nil
}

// AddToolCallCount adds i to the "tool_call_count" field.
func (m *JobMutation) AddToolCallCount(i int) {
	if m.addtool_call_count != nil {
		*m.addtool_call_count += i
	} else {
		m.addtool_call_count = &i
	}
}

// AddedToolCallCount returns the value that was added to the "tool_call_count" field in this mutation.
func (m *JobMutation) AddedToolCallCount() (r int, exists bool) {
	v := m.addtool_call_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetToolCallCount resets all changes to the "tool_call_count" field.
func (m *JobMutation) ResetToolCallCount() {
	m.tool_call_count = nil
	m.addtool_call_count = nil
}

// SetSubagentCount sets the "subagent_count" field.
func (m *JobMutation) SetSubagentCount(i int) {
	m.subagent_count = &i
	m.addsubagent_count = nil
}

// SubagentCount returns the value of the "subagent_count" field in the mutation.
func (m *JobMutation) SubagentCount() (r int, exists bool) {
	v := m.subagent_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSubagentCount returns the old "subagent_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSubagentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubagentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubagentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubagentCount: %w", err)
	}
	return oldValue.SubagentCount, nil
}

// AddSubagentCount adds i to the "subagent_count" field.
func (m *JobMutation) AddSubagentCount(i int) {
	if m.addsubagent_count != nil {
		*m.addsubagent_count += i
	} else {
		m.addsubagent_count = &i
	}
}

// AddedSubagentCount returns the value that was added to the "subagent_count" field in this mutation.
func (m *JobMutation) AddedSubagentCount() (r int, exists bool) {
	v := m.addsubagent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubagentCount resets all changes to the "subagent_count" field.
func (m *JobMutation) ResetSubagentCount() {
	m.subagent_count = nil
	m.addsubagent_count = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *JobMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *JobMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *JobMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *JobMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *JobMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetLastEventAt sets the "last_event_at" field.
func (m *JobMutation) SetLastEventAt(t time.Time) {
	m.last_event_at = &t
}

// LastEventAt returns the value of the "last_event_at" field in the mutation.
func (m *JobMutation) LastEventAt() (r time.Time, exists bool) {
	v := m.last_event_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventAt returns the old "last_event_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastEventAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventAt: %w", err)
	}
	return oldValue.LastEventAt, nil
}

// ClearLastEventAt clears the value of the "last_event_at" field.
func (m *JobMutation) ClearLastEventAt() {
	m.last_event_at = nil
	m.clearedFields[job.FieldLastEventAt] = struct{}{}
}

// LastEventAtCleared returns if the "last_event_at" field was cleared in this mutation.
func (m *JobMutation) LastEventAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastEventAt]
	return ok
}

// ResetLastEventAt resets all changes to the "last_event_at" field.
func (m *JobMutation) ResetLastEventAt() {
	m.last_event_at = nil
	delete(m.clearedFields, job.FieldLastEventAt)
}

// SetExitForced sets the "exit_forced" field.
func (m *JobMutation) SetExitForced(b bool) {
	m.exit_forced = &b
}

// ExitForced returns the value of the "exit_forced" field in the mutation.
func (m *JobMutation) ExitForced() (r bool, exists bool) {
	v := m.exit_forced
	if v == nil {
		return
	}
	return *v, true
}

// OldExitForced returns the old "exit_forced" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldExitForced(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitForced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitForced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitForced: %w", err)
	}
	return oldValue.ExitForced, nil
}

// ResetExitForced resets all changes to the "exit_forced" field.
func (m *JobMutation) ResetExitForced() {
	m.exit_forced = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearGroup clears the "group" edge to the JobGroup entity.
func (m *JobMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[job.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the JobGroup entity was cleared.
func (m *JobMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *JobMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *JobMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.group != nil {
		fields = append(fields, job.FieldGroupID)
	}
	if m.job_type != nil {
		fields = append(fields, job.FieldJobType)
	}
	if m.harness != nil {
		fields = append(fields, job.FieldHarness)
	}
	if m.context != nil {
		fields = append(fields, job.FieldContext)
	}
	if m.prompt != nil {
		fields = append(fields, job.FieldPrompt)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.tool_call_count != nil {
		fields = append(fields, job.FieldToolCallCount)
	}
	if m.subagent_count != nil {
		fields = append(fields, job.FieldSubagentCount)
	}
	if m.total_tokens != nil {
		fields = append(fields, job.FieldTotalTokens)
	}
	if m.last_event_at != nil {
		fields = append(fields, job.FieldLastEventAt)
	}
	if m.exit_forced != nil {
		fields = append(fields, job.FieldExitForced)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldGroupID:
		return m.GroupID()
	case job.FieldJobType:
		return m.JobType()
	case job.FieldHarness:
		return m.Harness()
	case job.FieldContext:
		return m.Context()
	case job.FieldPrompt:
		return m.Prompt()
	case job.FieldStatus:
		return m.Status()
	case job.FieldResult:
		return m.Result()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldToolCallCount:
		return m.ToolCallCount()
	case job.FieldSubagentCount:
		return m.SubagentCount()
	case job.FieldTotalTokens:
		return m.TotalTokens()
	case job.FieldLastEventAt:
		return m.LastEventAt()
	case job.FieldExitForced:
		return m.ExitForced()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldGroupID:
		return m.OldGroupID(ctx)
	case job.FieldJobType:
		return m.OldJobType(ctx)
	case job.FieldHarness:
		return m.OldHarness(ctx)
	case job.FieldContext:
		return m.OldContext(ctx)
	case job.FieldPrompt:
		return m.OldPrompt(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldToolCallCount:
		return m.OldToolCallCount(ctx)
	case job.FieldSubagentCount:
		return m.OldSubagentCount(ctx)
	case job.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case job.FieldLastEventAt:
		return m.OldLastEventAt(ctx)
	case job.FieldExitForced:
		return m.OldExitForced(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case job.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case job.FieldHarness:
		v, ok := value.(job.Harness)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHarness(v)
		return nil
	case job.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case job.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldToolCallCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallCount(v)
		return nil
	case job.FieldSubagentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubagentCount(v)
		return nil
	case job.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case job.FieldLastEventAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventAt(v)
		return nil
	case job.FieldExitForced:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitForced(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addtool_call_count != nil {
		fields = append(fields, job.FieldToolCallCount)
	}
	if m.addsubagent_count != nil {
		fields = append(fields, job.FieldSubagentCount)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, job.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldToolCallCount:
		return m.AddedToolCallCount()
	case job.FieldSubagentCount:
		return m.AddedSubagentCount()
	case job.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldToolCallCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToolCallCount(v)
		return nil
	case job.FieldSubagentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubagentCount(v)
		return nil
	case job.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldContext) {
		fields = append(fields, job.FieldContext)
	}
	if m.FieldCleared(job.FieldPrompt) {
		fields = append(fields, job.FieldPrompt)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldLastEventAt) {
		fields = append(fields, job.FieldLastEventAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldContext:
		m.ClearContext()
		return nil
	case job.FieldPrompt:
		m.ClearPrompt()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldLastEventAt:
		m.ClearLastEventAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldGroupID:
		m.ResetGroupID()
		return nil
	case job.FieldJobType:
		m.ResetJobType()
		return nil
	case job.FieldHarness:
		m.ResetHarness()
		return nil
	case job.FieldContext:
		m.ResetContext()
		return nil
	case job.FieldPrompt:
		m.ResetPrompt()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldToolCallCount:
		m.ResetToolCallCount()
		return nil
	case job.FieldSubagentCount:
		m.ResetSubagentCount()
		return nil
	case job.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case job.FieldLastEventAt:
		m.ResetLastEventAt()
		return nil
	case job.FieldExitForced:
		m.ResetExitForced()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.group != nil {
		edges = append(edges, job.EdgeGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgroup {
		edges = append(edges, job.EdgeGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeGroup:
		return m.clearedgroup
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeGroup:
		m.ResetGroup()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobGroupMutation represents an operation that mutates the JobGroup nodes in the graph.
type JobGroupMutation struct {
	config
	op                Op
	typ               string
	id                *string
	next_group_id     *string
	status            *jobgroup.Status
	aggregated_result *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	assignment        *string
	clearedassignment bool
	jobs              map[string]struct{}
	removedjobs       map[string]struct{}
	clearedjobs       bool
	done              bool
	oldValue          func(context.Context) (*JobGroup, error)
	predicates        []predicate.JobGroup
}

var _ ent.Mutation = (*JobGroupMutation)(nil)

// jobgroupOption allows management of the mutation configuration using functional options.
type jobgroupOption func(*JobGroupMutation)

// newJobGroupMutation creates new mutation for the JobGroup entity.
func newJobGroupMutation(c config, op Op, opts ...jobgroupOption) *JobGroupMutation {
	m := &JobGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeJobGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobGroupID sets the ID field of the mutation.
func withJobGroupID(id string) jobgroupOption {
	return func(m *JobGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *JobGroup
		)
		m.oldValue = func(ctx context.Context) (*JobGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobGroup sets the old JobGroup of the mutation.
func withJobGroup(node *JobGroup) jobgroupOption {
	return func(m *JobGroupMutation) {
		m.oldValue = func(context.Context) (*JobGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobGroup entities.
func (m *JobGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAssignmentID sets the "assignment_id" field.
func (m *JobGroupMutation) SetAssignmentID(s string) {
	m.assignment = &s
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *JobGroupMutation) AssignmentID() (r string, exists bool) {
	v := m.assignment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the JobGroup entity.
// If the JobGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGroupMutation) OldAssignmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *JobGroupMutation) ResetAssignmentID() {
	m.assignment = nil
}

// SetNextGroupID sets the "next_group_id" field.
func (m *JobGroupMutation) SetNextGroupID(s string) {
	m.next_group_id = &s
}

// NextGroupID returns the value of the "next_group_id" field in the mutation.
func (m *JobGroupMutation) NextGroupID() (r string, exists bool) {
	v := m.next_group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNextGroupID returns the old "next_group_id" field's value of the JobGroup entity.
// If the JobGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGroupMutation) OldNextGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextGroupID: %w", err)
	}
	return oldValue.NextGroupID, nil
}

// ClearNextGroupID clears the value of the "next_group_id" field.
func (m *JobGroupMutation) ClearNextGroupID() {
	m.next_group_id = nil
	m.clearedFields[jobgroup.FieldNextGroupID] = struct{}{}
}

// NextGroupIDCleared returns if the "next_group_id" field was cleared in this mutation.
func (m *JobGroupMutation) NextGroupIDCleared() bool {
	_, ok := m.clearedFields[jobgroup.FieldNextGroupID]
	return ok
}

// ResetNextGroupID resets all changes to the "next_group_id" field.
func (m *JobGroupMutation) ResetNextGroupID() {
	m.next_group_id = nil
	delete(m.clearedFields, jobgroup.FieldNextGroupID)
}

// SetStatus sets the "status" field.
func (m *JobGroupMutation) SetStatus(j jobgroup.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobGroupMutation) Status() (r jobgroup.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobGroup entity.
// If the JobGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGroupMutation) OldStatus(ctx context.Context) (v jobgroup.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobGroupMutation) ResetStatus() {
	m.status = nil
}

// SetAggregatedResult sets the "aggregated_result" field.
func (m *JobGroupMutation) SetAggregatedResult(s string) {
	m.aggregated_result = &s
}

// AggregatedResult returns the value of the "aggregated_result" field in the mutation.
func (m *JobGroupMutation) AggregatedResult() (r string, exists bool) {
	v := m.aggregated_result
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregatedResult returns the old "aggregated_result" field's value of the JobGroup entity.
// If the JobGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGroupMutation) OldAggregatedResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregatedResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregatedResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregatedResult: %w", err)
	}
	return oldValue.AggregatedResult, nil
}

// ClearAggregatedResult clears the value of the "aggregated_result" field.
func (m *JobGroupMutation) ClearAggregatedResult() {
	m.aggregated_result = nil
	m.clearedFields[jobgroup.FieldAggregatedResult] = struct{}{}
}

// AggregatedResultCleared returns if the "aggregated_result" field was cleared in this mutation.
func (m *JobGroupMutation) AggregatedResultCleared() bool {
	_, ok := m.clearedFields[jobgroup.FieldAggregatedResult]
	return ok
}

// ResetAggregatedResult resets all changes to the "aggregated_result" field.
func (m *JobGroupMutation) ResetAggregatedResult() {
	m.aggregated_result = nil
	delete(m.clearedFields, jobgroup.FieldAggregatedResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobGroup entity.
// If the JobGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobGroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobGroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the JobGroup entity.
// If the JobGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobGroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (m *JobGroupMutation) ClearAssignment() {
	m.clearedassignment = true
	m.clearedFields[jobgroup.FieldAssignmentID] = struct{}{}
}

// AssignmentCleared reports if the "assignment" edge to the Assignment entity was cleared.
func (m *JobGroupMutation) AssignmentCleared() bool {
	return m.clearedassignment
}

// AssignmentIDs returns the "assignment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignmentID instead. It exists only for internal usage by the builders.
func (m *JobGroupMutation) AssignmentIDs() (ids []string) {
	if id := m.assignment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignment resets all changes to the "assignment" edge.
func (m *JobGroupMutation) ResetAssignment() {
	m.assignment = nil
	m.clearedassignment = false
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *JobGroupMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *JobGroupMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *JobGroupMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *JobGroupMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *JobGroupMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *JobGroupMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *JobGroupMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the JobGroupMutation builder.
func (m *JobGroupMutation) Where(ps ...predicate.JobGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobGroup).
func (m *JobGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobGroupMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.assignment != nil {
		fields = append(fields, jobgroup.FieldAssignmentID)
	}
	if m.next_group_id != nil {
		fields = append(fields, jobgroup.FieldNextGroupID)
	}
	if m.status != nil {
		fields = append(fields, jobgroup.FieldStatus)
	}
	if m.aggregated_result != nil {
		fields = append(fields, jobgroup.FieldAggregatedResult)
	}
	if m.created_at != nil {
		fields = append(fields, jobgroup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, jobgroup.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobgroup.FieldAssignmentID:
		return m.AssignmentID()
	case jobgroup.FieldNextGroupID:
		return m.NextGroupID()
	case jobgroup.FieldStatus:
		return m.Status()
	case jobgroup.FieldAggregatedResult:
		return m.AggregatedResult()
	case jobgroup.FieldCreatedAt:
		return m.CreatedAt()
	case jobgroup.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobgroup.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	case jobgroup.FieldNextGroupID:
		return m.OldNextGroupID(ctx)
	case jobgroup.FieldStatus:
		return m.OldStatus(ctx)
	case jobgroup.FieldAggregatedResult:
		return m.OldAggregatedResult(ctx)
	case jobgroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobgroup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobgroup.FieldAssignmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	case jobgroup.FieldNextGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextGroupID(v)
		return nil
	case jobgroup.FieldStatus:
		v, ok := value.(jobgroup.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobgroup.FieldAggregatedResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregatedResult(v)
		return nil
	case jobgroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobgroup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobgroup.FieldNextGroupID) {
		fields = append(fields, jobgroup.FieldNextGroupID)
	}
	if m.FieldCleared(jobgroup.FieldAggregatedResult) {
		fields = append(fields, jobgroup.FieldAggregatedResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobGroupMutation) ClearField(name string) error {
	switch name {
	case jobgroup.FieldNextGroupID:
		m.ClearNextGroupID()
		return nil
	case jobgroup.FieldAggregatedResult:
		m.ClearAggregatedResult()
		return nil
	}
	return fmt.Errorf("unknown JobGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobGroupMutation) ResetField(name string) error {
	switch name {
	case jobgroup.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	case jobgroup.FieldNextGroupID:
		m.ResetNextGroupID()
		return nil
	case jobgroup.FieldStatus:
		m.ResetStatus()
		return nil
	case jobgroup.FieldAggregatedResult:
		m.ResetAggregatedResult()
		return nil
	case jobgroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobgroup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.assignment != nil {
		edges = append(edges, jobgroup.EdgeAssignment)
	}
	if m.jobs != nil {
		edges = append(edges, jobgroup.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobgroup.EdgeAssignment:
		if id := m.assignment; id != nil {
			return []ent.Value{*id}
		}
	case jobgroup.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, jobgroup.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case jobgroup.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedassignment {
		edges = append(edges, jobgroup.EdgeAssignment)
	}
	if m.clearedjobs {
		edges = append(edges, jobgroup.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case jobgroup.EdgeAssignment:
		return m.clearedassignment
	case jobgroup.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobGroupMutation) ClearEdge(name string) error {
	switch name {
	case jobgroup.EdgeAssignment:
		m.ClearAssignment()
		return nil
	}
	return fmt.Errorf("unknown JobGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobGroupMutation) ResetEdge(name string) error {
	switch name {
	case jobgroup.EdgeAssignment:
		m.ResetAssignment()
		return nil
	case jobgroup.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown JobGroup edge %s", name)
}

// NamespaceMutation represents an operation that mutates the Namespace nodes in the graph.
type NamespaceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	description         *string
	pending_count       *int
	addpending_count    *int
	active_count        *int
	addactive_count     *int
	blocked_count       *int
	addblocked_count    *int
	complete_count      *int
	addcomplete_count   *int
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	assignments         map[string]struct{}
	removedassignments  map[string]struct{}
	clearedassignments  bool
	chat_threads        map[string]struct{}
	removedchat_threads map[string]struct{}
	clearedchat_threads bool
	chat_jobs           map[string]struct{}
	removedchat_jobs    map[string]struct{}
	clearedchat_jobs    bool
	done                bool
	oldValue            func(context.Context) (*Namespace, error)
	predicates          []predicate.Namespace
}

var _ ent.Mutation = (*NamespaceMutation)(nil)

// namespaceOption allows management of the mutation configuration using functional options.
type namespaceOption func(*NamespaceMutation)

// newNamespaceMutation creates new mutation for the Namespace entity.
func newNamespaceMutation(c config, op Op, opts ...namespaceOption) *NamespaceMutation {
	m := &NamespaceMutation{
		config:        c,
		op:            op,
		typ:           TypeNamespace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNamespaceID sets the ID field of the mutation.
func withNamespaceID(id string) namespaceOption {
	return func(m *NamespaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Namespace
		)
		m.oldValue = func(ctx context.Context) (*Namespace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Namespace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNamespace sets the old Namespace of the mutation.
func withNamespace(node *Namespace) namespaceOption {
	return func(m *NamespaceMutation) {
		m.oldValue = func(context.Context) (*Namespace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NamespaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NamespaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Namespace entities.
func (m *NamespaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NamespaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NamespaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Namespace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *NamespaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *NamespaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Namespace entity.
// If the Namespace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NamespaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *NamespaceMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *NamespaceMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *NamespaceMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Namespace entity.
// If the Namespace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NamespaceMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *NamespaceMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[namespace.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *NamespaceMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[namespace.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *NamespaceMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, namespace.FieldDescription)
}

// SetPendingCount sets the "pending_count" field.
func (m *NamespaceMutation) SetPendingCount(i int) {
	m.pending_count = &i
	m.addpending_count = nil
}

// PendingCount returns the value of the "pending_count" field in the mutation.
func (m *NamespaceMutation) PendingCount() (r int, exists bool) {
	v := m.pending_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingCount returns the old "pending_count" field's value of the Namespace entity.
// If the Namespace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NamespaceMutation) OldPendingCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingCount: %w", err)
	}
	return oldValue.PendingCount, nil
}

// AddPendingCount adds i to the "pending_count" field.
func (m *NamespaceMutation) AddPendingCount(i int) {
	if m.addpending_count != nil {
		*m.addpending_count += i
	} else {
		m.addpending_count = &i
	}
}

// AddedPendingCount returns the value that was added to the "pending_count" field in this mutation.
func (m *NamespaceMutation) AddedPendingCount() (r int, exists bool) {
	v := m.addpending_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPendingCount resets all changes to the "pending_count" field.
func (m *NamespaceMutation) ResetPendingCount() {
	m.pending_count = nil
	m.addpending_count = nil
}

// SetActiveCount sets the "active_count" field.
func (m *NamespaceMutation) SetActiveCount(i int) {
	m.active_count = &i
	m.addactive_count = nil
}

// ActiveCount returns the value of the "active_count" field in the mutation.
func (m *NamespaceMutation) ActiveCount() (r int, exists bool) {
	v := m.active_count
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveCount returns the old "active_count" field's value of the Namespace entity.
// If the Namespace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NamespaceMutation) OldActiveCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveCount: %w", err)
	}
	return oldValue.ActiveCount, nil
}

// AddActiveCount adds i to the "active_count" field.
func (m *NamespaceMutation) AddActiveCount(i int) {
	if m.addactive_count != nil {
		*m.addactive_count += i
	} else {
		m.addactive_count = &i
	}
}

// AddedActiveCount returns the value that was added to the "active_count" field in this mutation.
func (m *NamespaceMutation) AddedActiveCount() (r int, exists bool) {
	v := m.addactive_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveCount resets all changes to the "active_count" field.
func (m *NamespaceMutation) ResetActiveCount() {
	m.active_count = nil
	m.addactive_count = nil
}

// SetBlockedCount sets the "blocked_count" field.
func (m *NamespaceMutation) SetBlockedCount(i int) {
	m.blocked_count = &i
	m.addblocked_count = nil
}

// BlockedCount returns the value of the "blocked_count" field in the mutation.
func (m *NamespaceMutation) BlockedCount() (r int, exists bool) {
	v := m.blocked_count
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedCount returns the old "blocked_count" field's value of the Namespace entity.
// If the Namespace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NamespaceMutation) OldBlockedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedCount: %w", err)
	}
	return oldValue.BlockedCount, nil
}

// AddBlockedCount adds i to the "blocked_count" field.
func (m *NamespaceMutation) AddBlockedCount(i int) {
	if m.addblocked_count != nil {
		*m.addblocked_count += i
	} else {
		m.addblocked_count = &i
	}
}

// AddedBlockedCount returns the value that was added to the "blocked_count" field in this mutation.
func (m *NamespaceMutation) AddedBlockedCount() (r int, exists bool) {
	v := m.addblocked_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlockedCount resets all changes to the "blocked_count" field.
func (m *NamespaceMutation) ResetBlockedCount() {
	m.blocked_count = nil
	m.addblocked_count = nil
}

// SetCompleteCount sets the "complete_count" field.
func (m *NamespaceMutation) SetCompleteCount(i int) {
	m.complete_count = &i
	m.addcomplete_count = nil
}

// CompleteCount returns the value of the "complete_count" field in the mutation.
func (m *NamespaceMutation) CompleteCount() (r int, exists bool) {
	v := m.complete_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleteCount returns the old "complete_count" field's value of the Namespace entity.
// If the Namespace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NamespaceMutation) OldCompleteCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleteCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleteCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleteCount: %w", err)
	}
	return oldValue.CompleteCount, nil
}

// AddCompleteCount adds i to the "complete_count" field.
func (m *NamespaceMutation) AddCompleteCount(i int) {
	if m.addcomplete_count != nil {
		*m.addcomplete_count += i
	} else {
		m.addcomplete_count = &i
	}
}

// AddedCompleteCount returns the value that was added to the "complete_count" field in this mutation.
func (m *NamespaceMutation) AddedCompleteCount() (r int, exists bool) {
	v := m.addcomplete_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleteCount resets all changes to the "complete_count" field.
func (m *NamespaceMutation) ResetCompleteCount() {
	m.complete_count = nil
	m.addcomplete_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NamespaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NamespaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Namespace entity.
// If the Namespace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NamespaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NamespaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NamespaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NamespaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Namespace entity.
// If the Namespace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NamespaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NamespaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by ids.
func (m *NamespaceMutation) AddAssignmentIDs(ids ...string) {
	if m.assignments == nil {
		m.assignments = make(map[string]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the Assignment entity.
func (m *NamespaceMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the Assignment entity was cleared.
func (m *NamespaceMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the Assignment entity by IDs.
func (m *NamespaceMutation) RemoveAssignmentIDs(ids ...string) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the Assignment entity.
func (m *NamespaceMutation) RemovedAssignmentsIDs() (ids []string) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *NamespaceMutation) AssignmentsIDs() (ids []string) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *NamespaceMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddChatThreadIDs adds the "chat_threads" edge to the ChatThread entity by ids.
func (m *NamespaceMutation) AddChatThreadIDs(ids ...string) {
	if m.chat_threads == nil {
		m.chat_threads = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_threads[ids[i]] = struct{}{}
	}
}

// ClearChatThreads clears the "chat_threads" edge to the ChatThread entity.
func (m *NamespaceMutation) ClearChatThreads() {
	m.clearedchat_threads = true
}

// ChatThreadsCleared reports if the "chat_threads" edge to the ChatThread entity was cleared.
func (m *NamespaceMutation) ChatThreadsCleared() bool {
	return m.clearedchat_threads
}

// RemoveChatThreadIDs removes the "chat_threads" edge to the ChatThread entity by IDs.
func (m *NamespaceMutation) RemoveChatThreadIDs(ids ...string) {
	if m.removedchat_threads == nil {
		m.removedchat_threads = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_threads, ids[i])
		m.removedchat_threads[ids[i]] = struct{}{}
	}
}

// RemovedChatThreads returns the removed IDs of the "chat_threads" edge to the ChatThread entity.
func (m *NamespaceMutation) RemovedChatThreadsIDs() (ids []string) {
	for id := range m.removedchat_threads {
		ids = append(ids, id)
	}
	return
}

// ChatThreadsIDs returns the "chat_threads" edge IDs in the mutation.
func (m *NamespaceMutation) ChatThreadsIDs() (ids []string) {
	for id := range m.chat_threads {
		ids = append(ids, id)
	}
	return
}

// ResetChatThreads resets all changes to the "chat_threads" edge.
func (m *NamespaceMutation) ResetChatThreads() {
	m.chat_threads = nil
	m.clearedchat_threads = false
	m.removedchat_threads = nil
}

// AddChatJobIDs adds the "chat_jobs" edge to the ChatJob entity by ids.
func (m *NamespaceMutation) AddChatJobIDs(ids ...string) {
	if m.chat_jobs == nil {
		m.chat_jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_jobs[ids[i]] = struct{}{}
	}
}

// ClearChatJobs clears the "chat_jobs" edge to the ChatJob entity.
func (m *NamespaceMutation) ClearChatJobs() {
	m.clearedchat_jobs = true
}

// ChatJobsCleared reports if the "chat_jobs" edge to the ChatJob entity was cleared.
func (m *NamespaceMutation) ChatJobsCleared() bool {
	return m.clearedchat_jobs
}

// RemoveChatJobIDs removes the "chat_jobs" edge to the ChatJob entity by IDs.
func (m *NamespaceMutation) RemoveChatJobIDs(ids ...string) {
	if m.removedchat_jobs == nil {
		m.removedchat_jobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_jobs, ids[i])
		m.removedchat_jobs[ids[i]] = struct{}{}
	}
}

// RemovedChatJobs returns the removed IDs of the "chat_jobs" edge to the ChatJob entity.
func (m *NamespaceMutation) RemovedChatJobsIDs() (ids []string) {
	for id := range m.removedchat_jobs {
		ids = append(ids, id)
	}
	return
}

// ChatJobsIDs returns the "chat_jobs" edge IDs in the mutation.
func (m *NamespaceMutation) ChatJobsIDs() (ids []string) {
	for id := range m.chat_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetChatJobs resets all changes to the "chat_jobs" edge.
func (m *NamespaceMutation) ResetChatJobs() {
	m.chat_jobs = nil
	m.clearedchat_jobs = false
	m.removedchat_jobs = nil
}

// Where appends a list predicates to the NamespaceMutation builder.
func (m *NamespaceMutation) Where(ps ...predicate.Namespace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NamespaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NamespaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Namespace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NamespaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NamespaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Namespace).
func (m *NamespaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NamespaceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, namespace.FieldName)
	}
	if m.description != nil {
		fields = append(fields, namespace.FieldDescription)
	}
	if m.pending_count != nil {
		fields = append(fields, namespace.FieldPendingCount)
	}
	if m.active_count != nil {
		fields = append(fields, namespace.FieldActiveCount)
	}
	if m.blocked_count != nil {
		fields = append(fields, namespace.FieldBlockedCount)
	}
	if m.complete_count != nil {
		fields = append(fields, namespace.FieldCompleteCount)
	}
	if m.created_at != nil {
		fields = append(fields, namespace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, namespace.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NamespaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case namespace.FieldName:
		return m.Name()
	case namespace.FieldDescription:
		return m.Description()
	case namespace.FieldPendingCount:
		return m.PendingCount()
	case namespace.FieldActiveCount:
		return m.ActiveCount()
	case namespace.FieldBlockedCount:
		return m.BlockedCount()
	case namespace.FieldCompleteCount:
		return m.CompleteCount()
	case namespace.FieldCreatedAt:
		return m.CreatedAt()
	case namespace.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NamespaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case namespace.FieldName:
		return m.OldName(ctx)
	case namespace.FieldDescription:
		return m.OldDescription(ctx)
	case namespace.FieldPendingCount:
		return m.OldPendingCount(ctx)
	case namespace.FieldActiveCount:
		return m.OldActiveCount(ctx)
	case namespace.FieldBlockedCount:
		return m.OldBlockedCount(ctx)
	case namespace.FieldCompleteCount:
		return m.OldCompleteCount(ctx)
	case namespace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case namespace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Namespace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NamespaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case namespace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case namespace.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case namespace.FieldPendingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingCount(v)
		return nil
	case namespace.FieldActiveCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveCount(v)
		return nil
	case namespace.FieldBlockedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedCount(v)
		return nil
	case namespace.FieldCompleteCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleteCount(v)
		return nil
	case namespace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case namespace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Namespace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NamespaceMutation) AddedFields() []string {
	var fields []string
	if m.addpending_count != nil {
		fields = append(fields, namespace.FieldPendingCount)
	}
	if m.addactive_count != nil {
		fields = append(fields, namespace.FieldActiveCount)
	}
	if m.addblocked_count != nil {
		fields = append(fields, namespace.FieldBlockedCount)
	}
	if m.addcomplete_count != nil {
		fields = append(fields, namespace.FieldCompleteCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NamespaceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case namespace.FieldPendingCount:
		return m.AddedPendingCount()
	case namespace.FieldActiveCount:
		return m.AddedActiveCount()
	case namespace.FieldBlockedCount:
		return m.AddedBlockedCount()
	case namespace.FieldCompleteCount:
		return m.AddedCompleteCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NamespaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case namespace.FieldPendingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPendingCount(v)
		return nil
	case namespace.FieldActiveCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveCount(v)
		return nil
	case namespace.FieldBlockedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlockedCount(v)
		return nil
	case namespace.FieldCompleteCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleteCount(v)
		return nil
	}
	return fmt.Errorf("unknown Namespace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NamespaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(namespace.FieldDescription) {
		fields = append(fields, namespace.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NamespaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NamespaceMutation) ClearField(name string) error {
	switch name {
	case namespace.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Namespace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NamespaceMutation) ResetField(name string) error {
	switch name {
	case namespace.FieldName:
		m.ResetName()
		return nil
	case namespace.FieldDescription:
		m.ResetDescription()
		return nil
	case namespace.FieldPendingCount:
		m.ResetPendingCount()
		return nil
	case namespace.FieldActiveCount:
		m.ResetActiveCount()
		return nil
	case namespace.FieldBlockedCount:
		m.ResetBlockedCount()
		return nil
	case namespace.FieldCompleteCount:
		m.ResetCompleteCount()
		return nil
	case namespace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case namespace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Namespace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NamespaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.assignments != nil {
		edges = append(edges, namespace.EdgeAssignments)
	}
	if m.chat_threads != nil {
		edges = append(edges, namespace.EdgeChatThreads)
	}
	if m.chat_jobs != nil {
		edges = append(edges, namespace.EdgeChatJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NamespaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case namespace.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case namespace.EdgeChatThreads:
		ids := make([]ent.Value, 0, len(m.chat_threads))
		for id := range m.chat_threads {
			ids = append(ids, id)
		}
		return ids
	case namespace.EdgeChatJobs:
		ids := make([]ent.Value, 0, len(m.chat_jobs))
		for id := range m.chat_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NamespaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedassignments != nil {
		edges = append(edges, namespace.EdgeAssignments)
	}
	if m.removedchat_threads != nil {
		edges = append(edges, namespace.EdgeChatThreads)
	}
	if m.removedchat_jobs != nil {
		edges = append(edges, namespace.EdgeChatJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NamespaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case namespace.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case namespace.EdgeChatThreads:
		ids := make([]ent.Value, 0, len(m.removedchat_threads))
		for id := range m.removedchat_threads {
			ids = append(ids, id)
		}
		return ids
	case namespace.EdgeChatJobs:
		ids := make([]ent.Value, 0, len(m.removedchat_jobs))
		for id := range m.removedchat_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NamespaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedassignments {
		edges = append(edges, namespace.EdgeAssignments)
	}
	if m.clearedchat_threads {
		edges = append(edges, namespace.EdgeChatThreads)
	}
	if m.clearedchat_jobs {
		edges = append(edges, namespace.EdgeChatJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NamespaceMutation) EdgeCleared(name string) bool {
	switch name {
	case namespace.EdgeAssignments:
		return m.clearedassignments
	case namespace.EdgeChatThreads:
		return m.clearedchat_threads
	case namespace.EdgeChatJobs:
		return m.clearedchat_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NamespaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Namespace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NamespaceMutation) ResetEdge(name string) error {
	switch name {
	case namespace.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case namespace.EdgeChatThreads:
		m.ResetChatThreads()
		return nil
	case namespace.EdgeChatJobs:
		m.ResetChatJobs()
		return nil
	}
	return fmt.Errorf("unknown Namespace edge %s", name)
}
