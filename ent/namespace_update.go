// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/namespace"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// NamespaceUpdate is the builder for updating Namespace entities.
type NamespaceUpdate struct {
	config
	hooks    []Hook
	mutation *NamespaceMutation
}

// Where appends a list predicates to the NamespaceUpdate builder.
func (_u *NamespaceUpdate) Where(ps ...predicate.Namespace) *NamespaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *NamespaceUpdate) SetName(v string) *NamespaceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *NamespaceUpdate) SetNillableName(v *string) *NamespaceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *NamespaceUpdate) SetDescription(v string) *NamespaceUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *NamespaceUpdate) SetNillableDescription(v *string) *NamespaceUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *NamespaceUpdate) ClearDescription() *NamespaceUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPendingCount sets the "pending_count" field.
func (_u *NamespaceUpdate) SetPendingCount(v int) *NamespaceUpdate {
	_u.mutation.ResetPendingCount()
	_u.mutation.SetPendingCount(v)
	return _u
}

// SetNillablePendingCount sets the "pending_count" field if the given value is not nil.
func (_u *NamespaceUpdate) SetNillablePendingCount(v *int) *NamespaceUpdate {
	if v != nil {
		_u.SetPendingCount(*v)
	}
	return _u
}

// AddPendingCount adds value to the "pending_count" field.
func (_u *NamespaceUpdate) AddPendingCount(v int) *NamespaceUpdate {
	_u.mutation.AddPendingCount(v)
	return _u
}

// SetActiveCount sets the "active_count" field.
func (_u *NamespaceUpdate) SetActiveCount(v int) *NamespaceUpdate {
	_u.mutation.ResetActiveCount()
	_u.mutation.SetActiveCount(v)
	return _u
}

// SetNillableActiveCount sets the "active_count" field if the given value is not nil.
func (_u *NamespaceUpdate) SetNillableActiveCount(v *int) *NamespaceUpdate {
	if v != nil {
		_u.SetActiveCount(*v)
	}
	return _u
}

// AddActiveCount adds value to the "active_count" field.
func (_u *NamespaceUpdate) AddActiveCount(v int) *NamespaceUpdate {
	_u.mutation.AddActiveCount(v)
	return _u
}

// SetBlockedCount sets the "blocked_count" field.
func (_u *NamespaceUpdate) SetBlockedCount(v int) *NamespaceUpdate {
	_u.mutation.ResetBlockedCount()
	_u.mutation.SetBlockedCount(v)
	return _u
}

// SetNillableBlockedCount sets the "blocked_count" field if the given value is not nil.
func (_u *NamespaceUpdate) SetNillableBlockedCount(v *int) *NamespaceUpdate {
	if v != nil {
		_u.SetBlockedCount(*v)
	}
	return _u
}

// AddBlockedCount adds value to the "blocked_count" field.
func (_u *NamespaceUpdate) AddBlockedCount(v int) *NamespaceUpdate {
	_u.mutation.AddBlockedCount(v)
	return _u
}

// SetCompleteCount sets the "complete_count" field.
func (_u *NamespaceUpdate) SetCompleteCount(v int) *NamespaceUpdate {
	_u.mutation.ResetCompleteCount()
	_u.mutation.SetCompleteCount(v)
	return _u
}

// SetNillableCompleteCount sets the "complete_count" field if the given value is not nil.
func (_u *NamespaceUpdate) SetNillableCompleteCount(v *int) *NamespaceUpdate {
	if v != nil {
		_u.SetCompleteCount(*v)
	}
	return _u
}

// AddCompleteCount adds value to the "complete_count" field.
func (_u *NamespaceUpdate) AddCompleteCount(v int) *NamespaceUpdate {
	_u.mutation.AddCompleteCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NamespaceUpdate) SetUpdatedAt(v time.Time) *NamespaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_u *NamespaceUpdate) AddAssignmentIDs(ids ...string) *NamespaceUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_u *NamespaceUpdate) AddAssignments(v ...*Assignment) *NamespaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddChatThreadIDs adds the "chat_threads" edge to the ChatThread entity by IDs.
func (_u *NamespaceUpdate) AddChatThreadIDs(ids ...string) *NamespaceUpdate {
	_u.mutation.AddChatThreadIDs(ids...)
	return _u
}

// AddChatThreads adds the "chat_threads" edges to the ChatThread entity.
func (_u *NamespaceUpdate) AddChatThreads(v ...*ChatThread) *NamespaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatThreadIDs(ids...)
}

// AddChatJobIDs adds the "chat_jobs" edge to the ChatJob entity by IDs.
func (_u *NamespaceUpdate) AddChatJobIDs(ids ...string) *NamespaceUpdate {
	_u.mutation.AddChatJobIDs(ids...)
	return _u
}

// AddChatJobs adds the "chat_jobs" edges to the ChatJob entity.
func (_u *NamespaceUpdate) AddChatJobs(v ...*ChatJob) *NamespaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatJobIDs(ids...)
}

// Mutation returns the NamespaceMutation object of the builder.
func (_u *NamespaceUpdate) Mutation() *NamespaceMutation {
	return _u.mutation
}

// ClearAssignments clears all "assignments" edges to the Assignment entity.
func (_u *NamespaceUpdate) ClearAssignments() *NamespaceUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to Assignment entities by IDs.
func (_u *NamespaceUpdate) RemoveAssignmentIDs(ids ...string) *NamespaceUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to Assignment entities.
func (_u *NamespaceUpdate) RemoveAssignments(v ...*Assignment) *NamespaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearChatThreads clears all "chat_threads" edges to the ChatThread entity.
func (_u *NamespaceUpdate) ClearChatThreads() *NamespaceUpdate {
	_u.mutation.ClearChatThreads()
	return _u
}

// RemoveChatThreadIDs removes the "chat_threads" edge to ChatThread entities by IDs.
func (_u *NamespaceUpdate) RemoveChatThreadIDs(ids ...string) *NamespaceUpdate {
	_u.mutation.RemoveChatThreadIDs(ids...)
	return _u
}

// RemoveChatThreads removes "chat_threads" edges to ChatThread entities.
func (_u *NamespaceUpdate) RemoveChatThreads(v ...*ChatThread) *NamespaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatThreadIDs(ids...)
}

// ClearChatJobs clears all "chat_jobs" edges to the ChatJob entity.
func (_u *NamespaceUpdate) ClearChatJobs() *NamespaceUpdate {
	_u.mutation.ClearChatJobs()
	return _u
}

// RemoveChatJobIDs removes the "chat_jobs" edge to ChatJob entities by IDs.
func (_u *NamespaceUpdate) RemoveChatJobIDs(ids ...string) *NamespaceUpdate {
	_u.mutation.RemoveChatJobIDs(ids...)
	return _u
}

// RemoveChatJobs removes "chat_jobs" edges to ChatJob entities.
func (_u *NamespaceUpdate) RemoveChatJobs(v ...*ChatJob) *NamespaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NamespaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NamespaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NamespaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NamespaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NamespaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := namespace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NamespaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(namespace.Table, namespace.Columns, sqlgraph.NewFieldSpec(namespace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(namespace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(namespace.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(namespace.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PendingCount(); ok {
		_spec.SetField(namespace.FieldPendingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPendingCount(); ok {
		_spec.AddField(namespace.FieldPendingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveCount(); ok {
		_spec.SetField(namespace.FieldActiveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveCount(); ok {
		_spec.AddField(namespace.FieldActiveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockedCount(); ok {
		_spec.SetField(namespace.FieldBlockedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockedCount(); ok {
		_spec.AddField(namespace.FieldBlockedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompleteCount(); ok {
		_spec.SetField(namespace.FieldCompleteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleteCount(); ok {
		_spec.AddField(namespace.FieldCompleteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(namespace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.AssignmentsTable,
			Columns: []string{namespace.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.AssignmentsTable,
			Columns: []string{namespace.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.AssignmentsTable,
			Columns: []string{namespace.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatThreadsTable,
			Columns: []string{namespace.ChatThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatThreadsIDs(); len(nodes) > 0 && !_u.mutation.ChatThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatThreadsTable,
			Columns: []string{namespace.ChatThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatThreadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatThreadsTable,
			Columns: []string{namespace.ChatThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatJobsTable,
			Columns: []string{namespace.ChatJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatJobsIDs(); len(nodes) > 0 && !_u.mutation.ChatJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatJobsTable,
			Columns: []string{namespace.ChatJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatJobsTable,
			Columns: []string{namespace.ChatJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{namespace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NamespaceUpdateOne is the builder for updating a single Namespace entity.
type NamespaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NamespaceMutation
}

// SetName sets the "name" field.
func (_u *NamespaceUpdateOne) SetName(v string) *NamespaceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *NamespaceUpdateOne) SetNillableName(v *string) *NamespaceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *NamespaceUpdateOne) SetDescription(v string) *NamespaceUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *NamespaceUpdateOne) SetNillableDescription(v *string) *NamespaceUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *NamespaceUpdateOne) ClearDescription() *NamespaceUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPendingCount sets the "pending_count" field.
func (_u *NamespaceUpdateOne) SetPendingCount(v int) *NamespaceUpdateOne {
	_u.mutation.ResetPendingCount()
	_u.mutation.SetPendingCount(v)
	return _u
}

// SetNillablePendingCount sets the "pending_count" field if the given value is not nil.
func (_u *NamespaceUpdateOne) SetNillablePendingCount(v *int) *NamespaceUpdateOne {
	if v != nil {
		_u.SetPendingCount(*v)
	}
	return _u
}

// AddPendingCount adds value to the "pending_count" field.
func (_u *NamespaceUpdateOne) AddPendingCount(v int) *NamespaceUpdateOne {
	_u.mutation.AddPendingCount(v)
	return _u
}

// SetActiveCount sets the "active_count" field.
func (_u *NamespaceUpdateOne) SetActiveCount(v int) *NamespaceUpdateOne {
	_u.mutation.ResetActiveCount()
	_u.mutation.SetActiveCount(v)
	return _u
}

// SetNillableActiveCount sets the "active_count" field if the given value is not nil.
func (_u *NamespaceUpdateOne) SetNillableActiveCount(v *int) *NamespaceUpdateOne {
	if v != nil {
		_u.SetActiveCount(*v)
	}
	return _u
}

// AddActiveCount adds value to the "active_count" field.
func (_u *NamespaceUpdateOne) AddActiveCount(v int) *NamespaceUpdateOne {
	_u.mutation.AddActiveCount(v)
	return _u
}

// SetBlockedCount sets the "blocked_count" field.
func (_u *NamespaceUpdateOne) SetBlockedCount(v int) *NamespaceUpdateOne {
	_u.mutation.ResetBlockedCount()
	_u.mutation.SetBlockedCount(v)
	return _u
}

// SetNillableBlockedCount sets the "blocked_count" field if the given value is not nil.
func (_u *NamespaceUpdateOne) SetNillableBlockedCount(v *int) *NamespaceUpdateOne {
	if v != nil {
		_u.SetBlockedCount(*v)
	}
	return _u
}

// AddBlockedCount adds value to the "blocked_count" field.
func (_u *NamespaceUpdateOne) AddBlockedCount(v int) *NamespaceUpdateOne {
	_u.mutation.AddBlockedCount(v)
	return _u
}

// SetCompleteCount sets the "complete_count" field.
func (_u *NamespaceUpdateOne) SetCompleteCount(v int) *NamespaceUpdateOne {
	_u.mutation.ResetCompleteCount()
	_u.mutation.SetCompleteCount(v)
	return _u
}

// SetNillableCompleteCount sets the "complete_count" field if the given value is not nil.
func (_u *NamespaceUpdateOne) SetNillableCompleteCount(v *int) *NamespaceUpdateOne {
	if v != nil {
		_u.SetCompleteCount(*v)
	}
	return _u
}

// AddCompleteCount adds value to the "complete_count" field.
func (_u *NamespaceUpdateOne) AddCompleteCount(v int) *NamespaceUpdateOne {
	_u.mutation.AddCompleteCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NamespaceUpdateOne) SetUpdatedAt(v time.Time) *NamespaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_u *NamespaceUpdateOne) AddAssignmentIDs(ids ...string) *NamespaceUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_u *NamespaceUpdateOne) AddAssignments(v ...*Assignment) *NamespaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddChatThreadIDs adds the "chat_threads" edge to the ChatThread entity by IDs.
func (_u *NamespaceUpdateOne) AddChatThreadIDs(ids ...string) *NamespaceUpdateOne {
	_u.mutation.AddChatThreadIDs(ids...)
	return _u
}

// AddChatThreads adds the "chat_threads" edges to the ChatThread entity.
func (_u *NamespaceUpdateOne) AddChatThreads(v ...*ChatThread) *NamespaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatThreadIDs(ids...)
}

// AddChatJobIDs adds the "chat_jobs" edge to the ChatJob entity by IDs.
func (_u *NamespaceUpdateOne) AddChatJobIDs(ids ...string) *NamespaceUpdateOne {
	_u.mutation.AddChatJobIDs(ids...)
	return _u
}

// AddChatJobs adds the "chat_jobs" edges to the ChatJob entity.
func (_u *NamespaceUpdateOne) AddChatJobs(v ...*ChatJob) *NamespaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatJobIDs(ids...)
}

// Mutation returns the NamespaceMutation object of the builder.
func (_u *NamespaceUpdateOne) Mutation() *NamespaceMutation {
	return _u.mutation
}

// ClearAssignments clears all "assignments" edges to the Assignment entity.
func (_u *NamespaceUpdateOne) ClearAssignments() *NamespaceUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to Assignment entities by IDs.
func (_u *NamespaceUpdateOne) RemoveAssignmentIDs(ids ...string) *NamespaceUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to Assignment entities.
func (_u *NamespaceUpdateOne) RemoveAssignments(v ...*Assignment) *NamespaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearChatThreads clears all "chat_threads" edges to the ChatThread entity.
func (_u *NamespaceUpdateOne) ClearChatThreads() *NamespaceUpdateOne {
	_u.mutation.ClearChatThreads()
	return _u
}

// RemoveChatThreadIDs removes the "chat_threads" edge to ChatThread entities by IDs.
func (_u *NamespaceUpdateOne) RemoveChatThreadIDs(ids ...string) *NamespaceUpdateOne {
	_u.mutation.RemoveChatThreadIDs(ids...)
	return _u
}

// RemoveChatThreads removes "chat_threads" edges to ChatThread entities.
func (_u *NamespaceUpdateOne) RemoveChatThreads(v ...*ChatThread) *NamespaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatThreadIDs(ids...)
}

// ClearChatJobs clears all "chat_jobs" edges to the ChatJob entity.
func (_u *NamespaceUpdateOne) ClearChatJobs() *NamespaceUpdateOne {
	_u.mutation.ClearChatJobs()
	return _u
}

// RemoveChatJobIDs removes the "chat_jobs" edge to ChatJob entities by IDs.
func (_u *NamespaceUpdateOne) RemoveChatJobIDs(ids ...string) *NamespaceUpdateOne {
	_u.mutation.RemoveChatJobIDs(ids...)
	return _u
}

// RemoveChatJobs removes "chat_jobs" edges to ChatJob entities.
func (_u *NamespaceUpdateOne) RemoveChatJobs(v ...*ChatJob) *NamespaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatJobIDs(ids...)
}

// Where appends a list predicates to the NamespaceUpdate builder.
func (_u *NamespaceUpdateOne) Where(ps ...predicate.Namespace) *NamespaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NamespaceUpdateOne) Select(field string, fields ...string) *NamespaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Namespace entity.
func (_u *NamespaceUpdateOne) Save(ctx context.Context) (*Namespace, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NamespaceUpdateOne) SaveX(ctx context.Context) *Namespace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NamespaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NamespaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NamespaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := namespace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NamespaceUpdateOne) sqlSave(ctx context.Context) (_node *Namespace, err error) {
	_spec := sqlgraph.NewUpdateSpec(namespace.Table, namespace.Columns, sqlgraph.NewFieldSpec(namespace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Namespace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, namespace.FieldID)
		for _, f := range fields {
			if !namespace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != namespace.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(namespace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(namespace.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(namespace.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PendingCount(); ok {
		_spec.SetField(namespace.FieldPendingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPendingCount(); ok {
		_spec.AddField(namespace.FieldPendingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveCount(); ok {
		_spec.SetField(namespace.FieldActiveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveCount(); ok {
		_spec.AddField(namespace.FieldActiveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockedCount(); ok {
		_spec.SetField(namespace.FieldBlockedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockedCount(); ok {
		_spec.AddField(namespace.FieldBlockedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompleteCount(); ok {
		_spec.SetField(namespace.FieldCompleteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleteCount(); ok {
		_spec.AddField(namespace.FieldCompleteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(namespace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.AssignmentsTable,
			Columns: []string{namespace.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.AssignmentsTable,
			Columns: []string{namespace.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.AssignmentsTable,
			Columns: []string{namespace.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatThreadsTable,
			Columns: []string{namespace.ChatThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatThreadsIDs(); len(nodes) > 0 && !_u.mutation.ChatThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatThreadsTable,
			Columns: []string{namespace.ChatThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatThreadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatThreadsTable,
			Columns: []string{namespace.ChatThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatJobsTable,
			Columns: []string{namespace.ChatJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatJobsIDs(); len(nodes) > 0 && !_u.mutation.ChatJobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatJobsTable,
			Columns: []string{namespace.ChatJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   namespace.ChatJobsTable,
			Columns: []string{namespace.ChatJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Namespace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{namespace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
