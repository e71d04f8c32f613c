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
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNorthStar sets the "north_star" field.
func (_u *AssignmentUpdate) SetNorthStar(v string) *AssignmentUpdate {
	_u.mutation.SetNorthStar(v)
	return _u
}

// SetNillableNorthStar sets the "north_star" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableNorthStar(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetNorthStar(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssignmentUpdate) SetStatus(v assignment.Status) *AssignmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableStatus(v *assignment.Status) *AssignmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIndependent sets the "independent" field.
func (_u *AssignmentUpdate) SetIndependent(v bool) *AssignmentUpdate {
	_u.mutation.SetIndependent(v)
	return _u
}

// SetNillableIndependent sets the "independent" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableIndependent(v *bool) *AssignmentUpdate {
	if v != nil {
		_u.SetIndependent(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AssignmentUpdate) SetPriority(v int) *AssignmentUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillablePriority(v *int) *AssignmentUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AssignmentUpdate) AddPriority(v int) *AssignmentUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *AssignmentUpdate) SetArtifacts(v string) *AssignmentUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// SetNillableArtifacts sets the "artifacts" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableArtifacts(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetArtifacts(*v)
	}
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *AssignmentUpdate) ClearArtifacts() *AssignmentUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetDecisions sets the "decisions" field.
func (_u *AssignmentUpdate) SetDecisions(v string) *AssignmentUpdate {
	_u.mutation.SetDecisions(v)
	return _u
}

// SetNillableDecisions sets the "decisions" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableDecisions(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetDecisions(*v)
	}
	return _u
}

// ClearDecisions clears the value of the "decisions" field.
func (_u *AssignmentUpdate) ClearDecisions() *AssignmentUpdate {
	_u.mutation.ClearDecisions()
	return _u
}

// SetBlockedReason sets the "blocked_reason" field.
func (_u *AssignmentUpdate) SetBlockedReason(v string) *AssignmentUpdate {
	_u.mutation.SetBlockedReason(v)
	return _u
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableBlockedReason(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetBlockedReason(*v)
	}
	return _u
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (_u *AssignmentUpdate) ClearBlockedReason() *AssignmentUpdate {
	_u.mutation.ClearBlockedReason()
	return _u
}

// SetAlignmentStatus sets the "alignment_status" field.
func (_u *AssignmentUpdate) SetAlignmentStatus(v assignment.AlignmentStatus) *AssignmentUpdate {
	_u.mutation.SetAlignmentStatus(v)
	return _u
}

// SetNillableAlignmentStatus sets the "alignment_status" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAlignmentStatus(v *assignment.AlignmentStatus) *AssignmentUpdate {
	if v != nil {
		_u.SetAlignmentStatus(*v)
	}
	return _u
}

// ClearAlignmentStatus clears the value of the "alignment_status" field.
func (_u *AssignmentUpdate) ClearAlignmentStatus() *AssignmentUpdate {
	_u.mutation.ClearAlignmentStatus()
	return _u
}

// SetHeadGroupID sets the "head_group_id" field.
func (_u *AssignmentUpdate) SetHeadGroupID(v string) *AssignmentUpdate {
	_u.mutation.SetHeadGroupID(v)
	return _u
}

// SetNillableHeadGroupID sets the "head_group_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableHeadGroupID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetHeadGroupID(*v)
	}
	return _u
}

// ClearHeadGroupID clears the value of the "head_group_id" field.
func (_u *AssignmentUpdate) ClearHeadGroupID() *AssignmentUpdate {
	_u.mutation.ClearHeadGroupID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssignmentUpdate) SetUpdatedAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddGroupIDs adds the "groups" edge to the JobGroup entity by IDs.
func (_u *AssignmentUpdate) AddGroupIDs(ids ...string) *AssignmentUpdate {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the JobGroup entity.
func (_u *AssignmentUpdate) AddGroups(v ...*JobGroup) *AssignmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// AddChatThreadIDs adds the "chat_threads" edge to the ChatThread entity by IDs.
func (_u *AssignmentUpdate) AddChatThreadIDs(ids ...string) *AssignmentUpdate {
	_u.mutation.AddChatThreadIDs(ids...)
	return _u
}

// AddChatThreads adds the "chat_threads" edges to the ChatThread entity.
func (_u *AssignmentUpdate) AddChatThreads(v ...*ChatThread) *AssignmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatThreadIDs(ids...)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// ClearGroups clears all "groups" edges to the JobGroup entity.
func (_u *AssignmentUpdate) ClearGroups() *AssignmentUpdate {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to JobGroup entities by IDs.
func (_u *AssignmentUpdate) RemoveGroupIDs(ids ...string) *AssignmentUpdate {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to JobGroup entities.
func (_u *AssignmentUpdate) RemoveGroups(v ...*JobGroup) *AssignmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// ClearChatThreads clears all "chat_threads" edges to the ChatThread entity.
func (_u *AssignmentUpdate) ClearChatThreads() *AssignmentUpdate {
	_u.mutation.ClearChatThreads()
	return _u
}

// RemoveChatThreadIDs removes the "chat_threads" edge to ChatThread entities by IDs.
func (_u *AssignmentUpdate) RemoveChatThreadIDs(ids ...string) *AssignmentUpdate {
	_u.mutation.RemoveChatThreadIDs(ids...)
	return _u
}

// RemoveChatThreads removes "chat_threads" edges to ChatThread entities.
func (_u *AssignmentUpdate) RemoveChatThreads(v ...*ChatThread) *AssignmentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatThreadIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssignmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assignment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AlignmentStatus(); ok {
		if err := assignment.AlignmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "alignment_status", err: fmt.Errorf(`ent: validator failed for field "Assignment.alignment_status": %w`, err)}
		}
	}
	if _u.mutation.NamespaceCleared() && len(_u.mutation.NamespaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Assignment.namespace"`)
	}
	return nil
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NorthStar(); ok {
		_spec.SetField(assignment.FieldNorthStar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Independent(); ok {
		_spec.SetField(assignment.FieldIndependent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(assignment.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(assignment.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(assignment.FieldArtifacts, field.TypeString, value)
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(assignment.FieldArtifacts, field.TypeString)
	}
	if value, ok := _u.mutation.Decisions(); ok {
		_spec.SetField(assignment.FieldDecisions, field.TypeString, value)
	}
	if _u.mutation.DecisionsCleared() {
		_spec.ClearField(assignment.FieldDecisions, field.TypeString)
	}
	if value, ok := _u.mutation.BlockedReason(); ok {
		_spec.SetField(assignment.FieldBlockedReason, field.TypeString, value)
	}
	if _u.mutation.BlockedReasonCleared() {
		_spec.ClearField(assignment.FieldBlockedReason, field.TypeString)
	}
	if value, ok := _u.mutation.AlignmentStatus(); ok {
		_spec.SetField(assignment.FieldAlignmentStatus, field.TypeEnum, value)
	}
	if _u.mutation.AlignmentStatusCleared() {
		_spec.ClearField(assignment.FieldAlignmentStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.HeadGroupID(); ok {
		_spec.SetField(assignment.FieldHeadGroupID, field.TypeString, value)
	}
	if _u.mutation.HeadGroupIDCleared() {
		_spec.ClearField(assignment.FieldHeadGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.GroupsTable,
			Columns: []string{assignment.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.GroupsTable,
			Columns: []string{assignment.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.GroupsTable,
			Columns: []string{assignment.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString),
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
			Table:   assignment.ChatThreadsTable,
			Columns: []string{assignment.ChatThreadsColumn},
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
			Table:   assignment.ChatThreadsTable,
			Columns: []string{assignment.ChatThreadsColumn},
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
			Table:   assignment.ChatThreadsTable,
			Columns: []string{assignment.ChatThreadsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetNorthStar sets the "north_star" field.
func (_u *AssignmentUpdateOne) SetNorthStar(v string) *AssignmentUpdateOne {
	_u.mutation.SetNorthStar(v)
	return _u
}

// SetNillableNorthStar sets the "north_star" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableNorthStar(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetNorthStar(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssignmentUpdateOne) SetStatus(v assignment.Status) *AssignmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableStatus(v *assignment.Status) *AssignmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIndependent sets the "independent" field.
func (_u *AssignmentUpdateOne) SetIndependent(v bool) *AssignmentUpdateOne {
	_u.mutation.SetIndependent(v)
	return _u
}

// SetNillableIndependent sets the "independent" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableIndependent(v *bool) *AssignmentUpdateOne {
	if v != nil {
		_u.SetIndependent(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AssignmentUpdateOne) SetPriority(v int) *AssignmentUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillablePriority(v *int) *AssignmentUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AssignmentUpdateOne) AddPriority(v int) *AssignmentUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *AssignmentUpdateOne) SetArtifacts(v string) *AssignmentUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// SetNillableArtifacts sets the "artifacts" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableArtifacts(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetArtifacts(*v)
	}
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *AssignmentUpdateOne) ClearArtifacts() *AssignmentUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetDecisions sets the "decisions" field.
func (_u *AssignmentUpdateOne) SetDecisions(v string) *AssignmentUpdateOne {
	_u.mutation.SetDecisions(v)
	return _u
}

// SetNillableDecisions sets the "decisions" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableDecisions(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetDecisions(*v)
	}
	return _u
}

// ClearDecisions clears the value of the "decisions" field.
func (_u *AssignmentUpdateOne) ClearDecisions() *AssignmentUpdateOne {
	_u.mutation.ClearDecisions()
	return _u
}

// SetBlockedReason sets the "blocked_reason" field.
func (_u *AssignmentUpdateOne) SetBlockedReason(v string) *AssignmentUpdateOne {
	_u.mutation.SetBlockedReason(v)
	return _u
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableBlockedReason(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetBlockedReason(*v)
	}
	return _u
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (_u *AssignmentUpdateOne) ClearBlockedReason() *AssignmentUpdateOne {
	_u.mutation.ClearBlockedReason()
	return _u
}

// SetAlignmentStatus sets the "alignment_status" field.
func (_u *AssignmentUpdateOne) SetAlignmentStatus(v assignment.AlignmentStatus) *AssignmentUpdateOne {
	_u.mutation.SetAlignmentStatus(v)
	return _u
}

// SetNillableAlignmentStatus sets the "alignment_status" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAlignmentStatus(v *assignment.AlignmentStatus) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAlignmentStatus(*v)
	}
	return _u
}

// ClearAlignmentStatus clears the value of the "alignment_status" field.
func (_u *AssignmentUpdateOne) ClearAlignmentStatus() *AssignmentUpdateOne {
	_u.mutation.ClearAlignmentStatus()
	return _u
}

// SetHeadGroupID sets the "head_group_id" field.
func (_u *AssignmentUpdateOne) SetHeadGroupID(v string) *AssignmentUpdateOne {
	_u.mutation.SetHeadGroupID(v)
	return _u
}

// SetNillableHeadGroupID sets the "head_group_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableHeadGroupID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetHeadGroupID(*v)
	}
	return _u
}

// ClearHeadGroupID clears the value of the "head_group_id" field.
func (_u *AssignmentUpdateOne) ClearHeadGroupID() *AssignmentUpdateOne {
	_u.mutation.ClearHeadGroupID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssignmentUpdateOne) SetUpdatedAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddGroupIDs adds the "groups" edge to the JobGroup entity by IDs.
func (_u *AssignmentUpdateOne) AddGroupIDs(ids ...string) *AssignmentUpdateOne {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the JobGroup entity.
func (_u *AssignmentUpdateOne) AddGroups(v ...*JobGroup) *AssignmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// AddChatThreadIDs adds the "chat_threads" edge to the ChatThread entity by IDs.
func (_u *AssignmentUpdateOne) AddChatThreadIDs(ids ...string) *AssignmentUpdateOne {
	_u.mutation.AddChatThreadIDs(ids...)
	return _u
}

// AddChatThreads adds the "chat_threads" edges to the ChatThread entity.
func (_u *AssignmentUpdateOne) AddChatThreads(v ...*ChatThread) *AssignmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatThreadIDs(ids...)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// ClearGroups clears all "groups" edges to the JobGroup entity.
func (_u *AssignmentUpdateOne) ClearGroups() *AssignmentUpdateOne {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to JobGroup entities by IDs.
func (_u *AssignmentUpdateOne) RemoveGroupIDs(ids ...string) *AssignmentUpdateOne {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to JobGroup entities.
func (_u *AssignmentUpdateOne) RemoveGroups(v ...*JobGroup) *AssignmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// ClearChatThreads clears all "chat_threads" edges to the ChatThread entity.
func (_u *AssignmentUpdateOne) ClearChatThreads() *AssignmentUpdateOne {
	_u.mutation.ClearChatThreads()
	return _u
}

// RemoveChatThreadIDs removes the "chat_threads" edge to ChatThread entities by IDs.
func (_u *AssignmentUpdateOne) RemoveChatThreadIDs(ids ...string) *AssignmentUpdateOne {
	_u.mutation.RemoveChatThreadIDs(ids...)
	return _u
}

// RemoveChatThreads removes "chat_threads" edges to ChatThread entities.
func (_u *AssignmentUpdateOne) RemoveChatThreads(v ...*ChatThread) *AssignmentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatThreadIDs(ids...)
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssignmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assignment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AlignmentStatus(); ok {
		if err := assignment.AlignmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "alignment_status", err: fmt.Errorf(`ent: validator failed for field "Assignment.alignment_status": %w`, err)}
		}
	}
	if _u.mutation.NamespaceCleared() && len(_u.mutation.NamespaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Assignment.namespace"`)
	}
	return nil
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
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
	if value, ok := _u.mutation.NorthStar(); ok {
		_spec.SetField(assignment.FieldNorthStar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Independent(); ok {
		_spec.SetField(assignment.FieldIndependent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(assignment.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(assignment.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(assignment.FieldArtifacts, field.TypeString, value)
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(assignment.FieldArtifacts, field.TypeString)
	}
	if value, ok := _u.mutation.Decisions(); ok {
		_spec.SetField(assignment.FieldDecisions, field.TypeString, value)
	}
	if _u.mutation.DecisionsCleared() {
		_spec.ClearField(assignment.FieldDecisions, field.TypeString)
	}
	if value, ok := _u.mutation.BlockedReason(); ok {
		_spec.SetField(assignment.FieldBlockedReason, field.TypeString, value)
	}
	if _u.mutation.BlockedReasonCleared() {
		_spec.ClearField(assignment.FieldBlockedReason, field.TypeString)
	}
	if value, ok := _u.mutation.AlignmentStatus(); ok {
		_spec.SetField(assignment.FieldAlignmentStatus, field.TypeEnum, value)
	}
	if _u.mutation.AlignmentStatusCleared() {
		_spec.ClearField(assignment.FieldAlignmentStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.HeadGroupID(); ok {
		_spec.SetField(assignment.FieldHeadGroupID, field.TypeString, value)
	}
	if _u.mutation.HeadGroupIDCleared() {
		_spec.ClearField(assignment.FieldHeadGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.GroupsTable,
			Columns: []string{assignment.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.GroupsTable,
			Columns: []string{assignment.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.GroupsTable,
			Columns: []string{assignment.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString),
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
			Table:   assignment.ChatThreadsTable,
			Columns: []string{assignment.ChatThreadsColumn},
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
			Table:   assignment.ChatThreadsTable,
			Columns: []string{assignment.ChatThreadsColumn},
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
			Table:   assignment.ChatThreadsTable,
			Columns: []string{assignment.ChatThreadsColumn},
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
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
