// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/namespace"
)

// ChatJobCreate is the builder for creating a ChatJob entity.
type ChatJobCreate struct {
	config
	mutation *ChatJobMutation
	hooks    []Hook
}

// SetThreadID sets the "thread_id" field.
func (_c *ChatJobCreate) SetThreadID(v string) *ChatJobCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNamespaceID sets the "namespace_id" field.
func (_c *ChatJobCreate) SetNamespaceID(v string) *ChatJobCreate {
	_c.mutation.SetNamespaceID(v)
	return _c
}

// SetHarness sets the "harness" field.
func (_c *ChatJobCreate) SetHarness(v chatjob.Harness) *ChatJobCreate {
	_c.mutation.SetHarness(v)
	return _c
}

// SetNillableHarness sets the "harness" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableHarness(v *chatjob.Harness) *ChatJobCreate {
	if v != nil {
		_c.SetHarness(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *ChatJobCreate) SetContext(v string) *ChatJobCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ChatJobCreate) SetPrompt(v string) *ChatJobCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillablePrompt(v *string) *ChatJobCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChatJobCreate) SetStatus(v chatjob.Status) *ChatJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableStatus(v *chatjob.Status) *ChatJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *ChatJobCreate) SetResult(v string) *ChatJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableResult(v *string) *ChatJobCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ChatJobCreate) SetStartedAt(v time.Time) *ChatJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableStartedAt(v *time.Time) *ChatJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ChatJobCreate) SetCompletedAt(v time.Time) *ChatJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableCompletedAt(v *time.Time) *ChatJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetToolCallCount sets the "tool_call_count" field.
func (_c *ChatJobCreate) SetToolCallCount(v int) *ChatJobCreate {
	_c.mutation.SetToolCallCount(v)
	return _c
}

// SetNillableToolCallCount sets the "tool_call_count" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableToolCallCount(v *int) *ChatJobCreate {
	if v != nil {
		_c.SetToolCallCount(*v)
	}
	return _c
}

// SetSubagentCount sets the "subagent_count" field.
func (_c *ChatJobCreate) SetSubagentCount(v int) *ChatJobCreate {
	_c.mutation.SetSubagentCount(v)
	return _c
}

// SetNillableSubagentCount sets the "subagent_count" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableSubagentCount(v *int) *ChatJobCreate {
	if v != nil {
		_c.SetSubagentCount(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *ChatJobCreate) SetTotalTokens(v int) *ChatJobCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableTotalTokens(v *int) *ChatJobCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetLastEventAt sets the "last_event_at" field.
func (_c *ChatJobCreate) SetLastEventAt(v time.Time) *ChatJobCreate {
	_c.mutation.SetLastEventAt(v)
	return _c
}

// SetNillableLastEventAt sets the "last_event_at" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableLastEventAt(v *time.Time) *ChatJobCreate {
	if v != nil {
		_c.SetLastEventAt(*v)
	}
	return _c
}

// SetExitForced sets the "exit_forced" field.
func (_c *ChatJobCreate) SetExitForced(v bool) *ChatJobCreate {
	_c.mutation.SetExitForced(v)
	return _c
}

// SetNillableExitForced sets the "exit_forced" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableExitForced(v *bool) *ChatJobCreate {
	if v != nil {
		_c.SetExitForced(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatJobCreate) SetCreatedAt(v time.Time) *ChatJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableCreatedAt(v *time.Time) *ChatJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatJobCreate) SetUpdatedAt(v time.Time) *ChatJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatJobCreate) SetNillableUpdatedAt(v *time.Time) *ChatJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatJobCreate) SetID(v string) *ChatJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetThread sets the "thread" edge to the ChatThread entity.
func (_c *ChatJobCreate) SetThread(v *ChatThread) *ChatJobCreate {
	return _c.SetThreadID(v.ID)
}

// SetNamespace sets the "namespace" edge to the Namespace entity.
func (_c *ChatJobCreate) SetNamespace(v *Namespace) *ChatJobCreate {
	return _c.SetNamespaceID(v.ID)
}

// Mutation returns the ChatJobMutation object of the builder.
func (_c *ChatJobCreate) Mutation() *ChatJobMutation {
	return _c.mutation
}

// Save creates the ChatJob in the database.
func (_c *ChatJobCreate) Save(ctx context.Context) (*ChatJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatJobCreate) SaveX(ctx context.Context) *ChatJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatJobCreate) defaults() {
	if _, ok := _c.mutation.Harness(); !ok {
		v := chatjob.DefaultHarness
		_c.mutation.SetHarness(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := chatjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ToolCallCount(); !ok {
		v := chatjob.DefaultToolCallCount
		_c.mutation.SetToolCallCount(v)
	}
	if _, ok := _c.mutation.SubagentCount(); !ok {
		v := chatjob.DefaultSubagentCount
		_c.mutation.SetSubagentCount(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := chatjob.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.ExitForced(); !ok {
		v := chatjob.DefaultExitForced
		_c.mutation.SetExitForced(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatJobCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "ChatJob.thread_id"`)}
	}
	if _, ok := _c.mutation.NamespaceID(); !ok {
		return &ValidationError{Name: "namespace_id", err: errors.New(`ent: missing required field "ChatJob.namespace_id"`)}
	}
	if _, ok := _c.mutation.Harness(); !ok {
		return &ValidationError{Name: "harness", err: errors.New(`ent: missing required field "ChatJob.harness"`)}
	}
	if v, ok := _c.mutation.Harness(); ok {
		if err := chatjob.HarnessValidator(v); err != nil {
			return &ValidationError{Name: "harness", err: fmt.Errorf(`ent: validator failed for field "ChatJob.harness": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "ChatJob.context"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ChatJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := chatjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToolCallCount(); !ok {
		return &ValidationError{Name: "tool_call_count", err: errors.New(`ent: missing required field "ChatJob.tool_call_count"`)}
	}
	if _, ok := _c.mutation.SubagentCount(); !ok {
		return &ValidationError{Name: "subagent_count", err: errors.New(`ent: missing required field "ChatJob.subagent_count"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "ChatJob.total_tokens"`)}
	}
	if _, ok := _c.mutation.ExitForced(); !ok {
		return &ValidationError{Name: "exit_forced", err: errors.New(`ent: missing required field "ChatJob.exit_forced"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatJob.updated_at"`)}
	}
	if len(_c.mutation.ThreadIDs()) == 0 {
		return &ValidationError{Name: "thread", err: errors.New(`ent: missing required edge "ChatJob.thread"`)}
	}
	if len(_c.mutation.NamespaceIDs()) == 0 {
		return &ValidationError{Name: "namespace", err: errors.New(`ent: missing required edge "ChatJob.namespace"`)}
	}
	return nil
}

func (_c *ChatJobCreate) sqlSave(ctx context.Context) (*ChatJob, error) {
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
			return nil, fmt.Errorf("unexpected ChatJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatJobCreate) createSpec() (*ChatJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatjob.Table, sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Harness(); ok {
		_spec.SetField(chatjob.FieldHarness, field.TypeEnum, value)
		_node.Harness = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(chatjob.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(chatjob.FieldPrompt, field.TypeString, value)
		_node.Prompt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(chatjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(chatjob.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(chatjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(chatjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ToolCallCount(); ok {
		_spec.SetField(chatjob.FieldToolCallCount, field.TypeInt, value)
		_node.ToolCallCount = value
	}
	if value, ok := _c.mutation.SubagentCount(); ok {
		_spec.SetField(chatjob.FieldSubagentCount, field.TypeInt, value)
		_node.SubagentCount = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(chatjob.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.LastEventAt(); ok {
		_spec.SetField(chatjob.FieldLastEventAt, field.TypeTime, value)
		_node.LastEventAt = &value
	}
	if value, ok := _c.mutation.ExitForced(); ok {
		_spec.SetField(chatjob.FieldExitForced, field.TypeBool, value)
		_node.ExitForced = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ThreadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatjob.ThreadTable,
			Columns: []string{chatjob.ThreadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ThreadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NamespaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatjob.NamespaceTable,
			Columns: []string{chatjob.NamespaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(namespace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.NamespaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChatJobCreateBulk is the builder for creating many ChatJob entities in bulk.
type ChatJobCreateBulk struct {
	config
	err      error
	builders []*ChatJobCreate
}

// Save creates the ChatJob entities in the database.
func (_c *ChatJobCreateBulk) Save(ctx context.Context) ([]*ChatJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatJobMutation)
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
func (_c *ChatJobCreateBulk) SaveX(ctx context.Context) []*ChatJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
