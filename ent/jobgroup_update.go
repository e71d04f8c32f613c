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
	"github.com/dirigent-io/dirigent/ent/job"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// JobGroupUpdate is the builder for updating JobGroup entities.
type JobGroupUpdate struct {
	config
	hooks    []Hook
	mutation *JobGroupMutation
}

// Where appends a list predicates to the JobGroupUpdate builder.
func (_u *JobGroupUpdate) Where(ps ...predicate.JobGroup) *JobGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNextGroupID sets the "next_group_id" field.
func (_u *JobGroupUpdate) SetNextGroupID(v string) *JobGroupUpdate {
	_u.mutation.SetNextGroupID(v)
	return _u
}

// SetNillableNextGroupID sets the "next_group_id" field if the given value is not nil.
func (_u *JobGroupUpdate) SetNillableNextGroupID(v *string) *JobGroupUpdate {
	if v != nil {
		_u.SetNextGroupID(*v)
	}
	return _u
}

// ClearNextGroupID clears the value of the "next_group_id" field.
func (_u *JobGroupUpdate) ClearNextGroupID() *JobGroupUpdate {
	_u.mutation.ClearNextGroupID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobGroupUpdate) SetStatus(v jobgroup.Status) *JobGroupUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobGroupUpdate) SetNillableStatus(v *jobgroup.Status) *JobGroupUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAggregatedResult sets the "aggregated_result" field.
func (_u *JobGroupUpdate) SetAggregatedResult(v string) *JobGroupUpdate {
	_u.mutation.SetAggregatedResult(v)
	return _u
}

// SetNillableAggregatedResult sets the "aggregated_result" field if the given value is not nil.
func (_u *JobGroupUpdate) SetNillableAggregatedResult(v *string) *JobGroupUpdate {
	if v != nil {
		_u.SetAggregatedResult(*v)
	}
	return _u
}

// ClearAggregatedResult clears the value of the "aggregated_result" field.
func (_u *JobGroupUpdate) ClearAggregatedResult() *JobGroupUpdate {
	_u.mutation.ClearAggregatedResult()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobGroupUpdate) SetUpdatedAt(v time.Time) *JobGroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *JobGroupUpdate) AddJobIDs(ids ...string) *JobGroupUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *JobGroupUpdate) AddJobs(v ...*Job) *JobGroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the JobGroupMutation object of the builder.
func (_u *JobGroupUpdate) Mutation() *JobGroupMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *JobGroupUpdate) ClearJobs() *JobGroupUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *JobGroupUpdate) RemoveJobIDs(ids ...string) *JobGroupUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *JobGroupUpdate) RemoveJobs(v ...*Job) *JobGroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobGroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobGroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobGroupUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobgroup.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobGroup.status": %w`, err)}
		}
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobGroup.assignment"`)
	}
	return nil
}

func (_u *JobGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobgroup.Table, jobgroup.Columns, sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NextGroupID(); ok {
		_spec.SetField(jobgroup.FieldNextGroupID, field.TypeString, value)
	}
	if _u.mutation.NextGroupIDCleared() {
		_spec.ClearField(jobgroup.FieldNextGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobgroup.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AggregatedResult(); ok {
		_spec.SetField(jobgroup.FieldAggregatedResult, field.TypeString, value)
	}
	if _u.mutation.AggregatedResultCleared() {
		_spec.ClearField(jobgroup.FieldAggregatedResult, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobgroup.JobsTable,
			Columns: []string{jobgroup.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobgroup.JobsTable,
			Columns: []string{jobgroup.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobgroup.JobsTable,
			Columns: []string{jobgroup.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobGroupUpdateOne is the builder for updating a single JobGroup entity.
type JobGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobGroupMutation
}

// SetNextGroupID sets the "next_group_id" field.
func (_u *JobGroupUpdateOne) SetNextGroupID(v string) *JobGroupUpdateOne {
	_u.mutation.SetNextGroupID(v)
	return _u
}

// SetNillableNextGroupID sets the "next_group_id" field if the given value is not nil.
func (_u *JobGroupUpdateOne) SetNillableNextGroupID(v *string) *JobGroupUpdateOne {
	if v != nil {
		_u.SetNextGroupID(*v)
	}
	return _u
}

// ClearNextGroupID clears the value of the "next_group_id" field.
func (_u *JobGroupUpdateOne) ClearNextGroupID() *JobGroupUpdateOne {
	_u.mutation.ClearNextGroupID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobGroupUpdateOne) SetStatus(v jobgroup.Status) *JobGroupUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobGroupUpdateOne) SetNillableStatus(v *jobgroup.Status) *JobGroupUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAggregatedResult sets the "aggregated_result" field.
func (_u *JobGroupUpdateOne) SetAggregatedResult(v string) *JobGroupUpdateOne {
	_u.mutation.SetAggregatedResult(v)
	return _u
}

// SetNillableAggregatedResult sets the "aggregated_result" field if the given value is not nil.
func (_u *JobGroupUpdateOne) SetNillableAggregatedResult(v *string) *JobGroupUpdateOne {
	if v != nil {
		_u.SetAggregatedResult(*v)
	}
	return _u
}

// ClearAggregatedResult clears the value of the "aggregated_result" field.
func (_u *JobGroupUpdateOne) ClearAggregatedResult() *JobGroupUpdateOne {
	_u.mutation.ClearAggregatedResult()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobGroupUpdateOne) SetUpdatedAt(v time.Time) *JobGroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *JobGroupUpdateOne) AddJobIDs(ids ...string) *JobGroupUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *JobGroupUpdateOne) AddJobs(v ...*Job) *JobGroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the JobGroupMutation object of the builder.
func (_u *JobGroupUpdateOne) Mutation() *JobGroupMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *JobGroupUpdateOne) ClearJobs() *JobGroupUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *JobGroupUpdateOne) RemoveJobIDs(ids ...string) *JobGroupUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *JobGroupUpdateOne) RemoveJobs(v ...*Job) *JobGroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the JobGroupUpdate builder.
func (_u *JobGroupUpdateOne) Where(ps ...predicate.JobGroup) *JobGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobGroupUpdateOne) Select(field string, fields ...string) *JobGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobGroup entity.
func (_u *JobGroupUpdateOne) Save(ctx context.Context) (*JobGroup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobGroupUpdateOne) SaveX(ctx context.Context) *JobGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobGroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobgroup.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobGroup.status": %w`, err)}
		}
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobGroup.assignment"`)
	}
	return nil
}

func (_u *JobGroupUpdateOne) sqlSave(ctx context.Context) (_node *JobGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobgroup.Table, jobgroup.Columns, sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobgroup.FieldID)
		for _, f := range fields {
			if !jobgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobgroup.FieldID {
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
	if value, ok := _u.mutation.NextGroupID(); ok {
		_spec.SetField(jobgroup.FieldNextGroupID, field.TypeString, value)
	}
	if _u.mutation.NextGroupIDCleared() {
		_spec.ClearField(jobgroup.FieldNextGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobgroup.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AggregatedResult(); ok {
		_spec.SetField(jobgroup.FieldAggregatedResult, field.TypeString, value)
	}
	if _u.mutation.AggregatedResultCleared() {
		_spec.ClearField(jobgroup.FieldAggregatedResult, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobgroup.JobsTable,
			Columns: []string{jobgroup.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobgroup.JobsTable,
			Columns: []string{jobgroup.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobgroup.JobsTable,
			Columns: []string{jobgroup.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
