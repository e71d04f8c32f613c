// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dirigent-io/dirigent/ent/job"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetGroupID sets the "group_id" field.
func (_c *JobCreate) SetGroupID(v string) *JobCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *JobCreate) SetJobType(v string) *JobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetHarness sets the "harness" field.
func (_c *JobCreate) SetHarness(v job.Harness) *JobCreate {
	_c.mutation.SetHarness(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *JobCreate) SetContext(v string) *JobCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *JobCreate) SetNillableContext(v *string) *JobCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *JobCreate) SetPrompt(v string) *JobCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *JobCreate) SetNillablePrompt(v *string) *JobCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *JobCreate) SetResult(v string) *JobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *JobCreate) SetNillableResult(v *string) *JobCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetToolCallCount sets the "tool_call_count" field.
func (_c *JobCreate) SetToolCallCount(v int) *JobCreate {
	_c.mutation.SetToolCallCount(v)
	return _c
}

// SetNillableToolCallCount sets the "tool_call_count" field if the given value is not nil.
func (_c *JobCreate) SetNillableToolCallCount(v *int) *JobCreate {
	if v != nil {
		_c.SetToolCallCount(*v)
	}
	return _c
}

// SetSubagentCount sets the "subagent_count" field.
func (_c *JobCreate) SetSubagentCount(v int) *JobCreate {
	_c.mutation.SetSubagentCount(v)
	return _c
}

// SetNillableSubagentCount sets the "subagent_count" field if the given value is not nil.
func (_c *JobCreate) SetNillableSubagentCount(v *int) *JobCreate {
	if v != nil {
		_c.SetSubagentCount(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *JobCreate) SetTotalTokens(v int) *JobCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *JobCreate) SetNillableTotalTokens(v *int) *JobCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetLastEventAt sets the "last_event_at" field.
func (_c *JobCreate) SetLastEventAt(v time.Time) *JobCreate {
	_c.mutation.SetLastEventAt(v)
	return _c
}

// SetNillableLastEventAt sets the "last_event_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastEventAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastEventAt(*v)
	}
	return _c
}

// SetExitForced sets the "exit_forced" field.
func (_c *JobCreate) SetExitForced(v bool) *JobCreate {
	_c.mutation.SetExitForced(v)
	return _c
}

// SetNillableExitForced sets the "exit_forced" field if the given value is not nil.
func (_c *JobCreate) SetNillableExitForced(v *bool) *JobCreate {
	if v != nil {
		_c.SetExitForced(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGroup sets the "group" edge to the JobGroup entity.
func (_c *JobCreate) SetGroup(v *JobGroup) *JobCreate {
	return _c.SetGroupID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ToolCallCount(); !ok {
		v := job.DefaultToolCallCount
		_c.mutation.SetToolCallCount(v)
	}
	if _, ok := _c.mutation.SubagentCount(); !ok {
		v := job.DefaultSubagentCount
		_c.mutation.SetSubagentCount(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := job.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.ExitForced(); !ok {
		v := job.DefaultExitForced
		_c.mutation.SetExitForced(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "Job.group_id"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "Job.job_type"`)}
	}
	if _, ok := _c.mutation.Harness(); !ok {
		return &ValidationError{Name: "harness", err: errors.New(`ent: missing required field "Job.harness"`)}
	}
	if v, ok := _c.mutation.Harness(); ok {
		if err := job.HarnessValidator(v); err != nil {
			return &ValidationError{Name: "harness", err: fmt.Errorf(`ent: validator failed for field "Job.harness": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToolCallCount(); !ok {
		return &ValidationError{Name: "tool_call_count", err: errors.New(`ent: missing required field "Job.tool_call_count"`)}
	}
	if _, ok := _c.mutation.SubagentCount(); !ok {
		return &ValidationError{Name: "subagent_count", err: errors.New(`ent: missing required field "Job.subagent_count"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "Job.total_tokens"`)}
	}
	if _, ok := _c.mutation.ExitForced(); !ok {
		return &ValidationError{Name: "exit_forced", err: errors.New(`ent: missing required field "Job.exit_forced"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "Job.group"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Harness(); ok {
		_spec.SetField(job.FieldHarness, field.TypeEnum, value)
		_node.Harness = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(job.FieldContext, field.TypeString, value)
		_node.Context = &value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(job.FieldPrompt, field.TypeString, value)
		_node.Prompt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ToolCallCount(); ok {
		_spec.SetField(job.FieldToolCallCount, field.TypeInt, value)
		_node.ToolCallCount = value
	}
	if value, ok := _c.mutation.SubagentCount(); ok {
		_spec.SetField(job.FieldSubagentCount, field.TypeInt, value)
		_node.SubagentCount = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(job.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.LastEventAt(); ok {
		_spec.SetField(job.FieldLastEventAt, field.TypeTime, value)
		_node.LastEventAt = &value
	}
	if value, ok := _c.mutation.ExitForced(); ok {
		_spec.SetField(job.FieldExitForced, field.TypeBool, value)
		_node.ExitForced = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.GroupTable,
			Columns: []string{job.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobgroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.GroupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
