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
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/chatmessage"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/namespace"
)

// ChatThreadCreate is the builder for creating a ChatThread entity.
type ChatThreadCreate struct {
	config
	mutation *ChatThreadMutation
	hooks    []Hook
}

// SetNamespaceID sets the "namespace_id" field.
func (_c *ChatThreadCreate) SetNamespaceID(v string) *ChatThreadCreate {
	_c.mutation.SetNamespaceID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ChatThreadCreate) SetTitle(v string) *ChatThreadCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ChatThreadCreate) SetMode(v chatthread.Mode) *ChatThreadCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *ChatThreadCreate) SetNillableMode(v *chatthread.Mode) *ChatThreadCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetLastPromptMode sets the "last_prompt_mode" field.
func (_c *ChatThreadCreate) SetLastPromptMode(v chatthread.LastPromptMode) *ChatThreadCreate {
	_c.mutation.SetLastPromptMode(v)
	return _c
}

// SetNillableLastPromptMode sets the "last_prompt_mode" field if the given value is not nil.
func (_c *ChatThreadCreate) SetNillableLastPromptMode(v *chatthread.LastPromptMode) *ChatThreadCreate {
	if v != nil {
		_c.SetLastPromptMode(*v)
	}
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *ChatThreadCreate) SetAssignmentID(v string) *ChatThreadCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_c *ChatThreadCreate) SetNillableAssignmentID(v *string) *ChatThreadCreate {
	if v != nil {
		_c.SetAssignmentID(*v)
	}
	return _c
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (_c *ChatThreadCreate) SetClaudeSessionID(v string) *ChatThreadCreate {
	_c.mutation.SetClaudeSessionID(v)
	return _c
}

// SetNillableClaudeSessionID sets the "claude_session_id" field if the given value is not nil.
func (_c *ChatThreadCreate) SetNillableClaudeSessionID(v *string) *ChatThreadCreate {
	if v != nil {
		_c.SetClaudeSessionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatThreadCreate) SetCreatedAt(v time.Time) *ChatThreadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatThreadCreate) SetNillableCreatedAt(v *time.Time) *ChatThreadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatThreadCreate) SetUpdatedAt(v time.Time) *ChatThreadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatThreadCreate) SetNillableUpdatedAt(v *time.Time) *ChatThreadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatThreadCreate) SetID(v string) *ChatThreadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNamespace sets the "namespace" edge to the Namespace entity.
func (_c *ChatThreadCreate) SetNamespace(v *Namespace) *ChatThreadCreate {
	return _c.SetNamespaceID(v.ID)
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_c *ChatThreadCreate) SetAssignment(v *Assignment) *ChatThreadCreate {
	return _c.SetAssignmentID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_c *ChatThreadCreate) AddMessageIDs(ids ...string) *ChatThreadCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_c *ChatThreadCreate) AddMessages(v ...*ChatMessage) *ChatThreadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddChatJobIDs adds the "chat_jobs" edge to the ChatJob entity by IDs.
func (_c *ChatThreadCreate) AddChatJobIDs(ids ...string) *ChatThreadCreate {
	_c.mutation.AddChatJobIDs(ids...)
	return _c
}

// AddChatJobs adds the "chat_jobs" edges to the ChatJob entity.
func (_c *ChatThreadCreate) AddChatJobs(v ...*ChatJob) *ChatThreadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatJobIDs(ids...)
}

// Mutation returns the ChatThreadMutation object of the builder.
func (_c *ChatThreadCreate) Mutation() *ChatThreadMutation {
	return _c.mutation
}

// Save creates the ChatThread in the database.
func (_c *ChatThreadCreate) Save(ctx context.Context) (*ChatThread, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatThreadCreate) SaveX(ctx context.Context) *ChatThread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatThreadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatThreadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatThreadCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := chatthread.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatthread.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatthread.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatThreadCreate) check() error {
	if _, ok := _c.mutation.NamespaceID(); !ok {
		return &ValidationError{Name: "namespace_id", err: errors.New(`ent: missing required field "ChatThread.namespace_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ChatThread.title"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ChatThread.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := chatthread.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ChatThread.mode": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastPromptMode(); ok {
		if err := chatthread.LastPromptModeValidator(v); err != nil {
			return &ValidationError{Name: "last_prompt_mode", err: fmt.Errorf(`ent: validator failed for field "ChatThread.last_prompt_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatThread.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatThread.updated_at"`)}
	}
	if len(_c.mutation.NamespaceIDs()) == 0 {
		return &ValidationError{Name: "namespace", err: errors.New(`ent: missing required edge "ChatThread.namespace"`)}
	}
	return nil
}

func (_c *ChatThreadCreate) sqlSave(ctx context.Context) (*ChatThread, error) {
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
			return nil, fmt.Errorf("unexpected ChatThread.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatThreadCreate) createSpec() (*ChatThread, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatThread{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatthread.Table, sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(chatthread.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(chatthread.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.LastPromptMode(); ok {
		_spec.SetField(chatthread.FieldLastPromptMode, field.TypeEnum, value)
		_node.LastPromptMode = &value
	}
	if value, ok := _c.mutation.ClaudeSessionID(); ok {
		_spec.SetField(chatthread.FieldClaudeSessionID, field.TypeString, value)
		_node.ClaudeSessionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatthread.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatthread.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.NamespaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatthread.NamespaceTable,
			Columns: []string{chatthread.NamespaceColumn},
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
	if nodes := _c.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatthread.AssignmentTable,
			Columns: []string{chatthread.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssignmentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatthread.MessagesTable,
			Columns: []string{chatthread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatthread.ChatJobsTable,
			Columns: []string{chatthread.ChatJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChatThreadCreateBulk is the builder for creating many ChatThread entities in bulk.
type ChatThreadCreateBulk struct {
	config
	err      error
	builders []*ChatThreadCreate
}

// Save creates the ChatThread entities in the database.
func (_c *ChatThreadCreateBulk) Save(ctx context.Context) ([]*ChatThread, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatThread, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatThreadMutation)
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
func (_c *ChatThreadCreateBulk) SaveX(ctx context.Context) []*ChatThread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatThreadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatThreadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
