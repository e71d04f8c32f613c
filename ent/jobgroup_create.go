// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/job"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
)

// JobGroupCreate is the builder for creating a JobGroup entity.
type JobGroupCreate struct {
	config
	mutation *JobGroupMutation
	hooks    []Hook
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *JobGroupCreate) SetAssignmentID(v string) *JobGroupCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetNextGroupID sets the "next_group_id" field.
func (_c *JobGroupCreate) SetNextGroupID(v string) *JobGroupCreate {
	_c.mutation.SetNextGroupID(v)
	return _c
}

// SetNillableNextGroupID sets the "next_group_id" field if the given value is not nil.
func (_c *JobGroupCreate) SetNillableNextGroupID(v *string) *JobGroupCreate {
	if v != nil {
		_c.SetNextGroupID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobGroupCreate) SetStatus(v jobgroup.Status) *JobGroupCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobGroupCreate) SetNillableStatus(v *jobgroup.Status) *JobGroupCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAggregatedResult sets the "aggregated_result" field.
func (_c *JobGroupCreate) SetAggregatedResult(v string) *JobGroupCreate {
	_c.mutation.SetAggregatedResult(v)
	return _c
}

// SetNillableAggregatedResult sets the "aggregated_result" field if the given value is not nil.
func (_c *JobGroupCreate) SetNillableAggregatedResult(v *string) *JobGroupCreate {
	if v != nil {
		_c.SetAggregatedResult(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobGroupCreate) SetCreatedAt(v time.Time) *JobGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobGroupCreate) SetNillableCreatedAt(v *time.Time) *JobGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobGroupCreate) SetUpdatedAt(v time.Time) *JobGroupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobGroupCreate) SetNillableUpdatedAt(v *time.Time) *JobGroupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobGroupCreate) SetID(v string) *JobGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_c *JobGroupCreate) SetAssignment(v *Assignment) *JobGroupCreate {
	return _c.SetAssignmentID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_c *JobGroupCreate) AddJobIDs(ids ...string) *JobGroupCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_c *JobGroupCreate) AddJobs(v ...*Job) *JobGroupCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the JobGroupMutation object of the builder.
func (_c *JobGroupCreate) Mutation() *JobGroupMutation {
	return _c.mutation
}

// Save creates the JobGroup in the database.
func (_c *JobGroupCreate) Save(ctx context.Context) (*JobGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobGroupCreate) SaveX(ctx context.Context) *JobGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobGroupCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := jobgroup.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobgroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := jobgroup.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobGroupCreate) check() error {
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "JobGroup.assignment_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobGroup.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobgroup.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobGroup.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobGroup.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "JobGroup.updated_at"`)}
	}
	if len(_c.mutation.AssignmentIDs()) == 0 {
		return &ValidationError{Name: "assignment", err: errors.New(`ent: missing required edge "JobGroup.assignment"`)}
	}
	return nil
}

func (_c *JobGroupCreate) sqlSave(ctx context.Context) (*JobGroup, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected JobGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobGroupCreate) createSpec() (*JobGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &JobGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobgroup.Table, sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NextGroupID(); ok {
		_spec.SetField(jobgroup.FieldNextGroupID, field.TypeString, value)
		_node.NextGroupID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobgroup.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AggregatedResult(); ok {
		_spec.SetField(jobgroup.FieldAggregatedResult, field.TypeString, value)
		_node.AggregatedResult = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobgroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(jobgroup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobgroup.AssignmentTable,
			Columns: []string{jobgroup.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssignmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobGroupCreateBulk is the builder for creating many JobGroup entities in bulk.
type JobGroupCreateBulk struct {
	config
	err      error
	builders []*JobGroupCreate
}

// Save creates the JobGroup entities in the database.
func (_c *JobGroupCreateBulk) Save(ctx context.Context) ([]*JobGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobGroupMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobGroupCreateBulk) SaveX(ctx context.Context) []*JobGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
