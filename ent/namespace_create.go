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
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/namespace"
)

// NamespaceCreate is the builder for creating a Namespace entity.
type NamespaceCreate struct {
	config
	mutation *NamespaceMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *NamespaceCreate) SetName(v string) *NamespaceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *NamespaceCreate) SetDescription(v string) *NamespaceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *NamespaceCreate) SetNillableDescription(v *string) *NamespaceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPendingCount sets the "pending_count" field.
func (_c *NamespaceCreate) SetPendingCount(v int) *NamespaceCreate {
	_c.mutation.SetPendingCount(v)
	return _c
}

// SetNillablePendingCount sets the "pending_count" field if the given value is not nil.
func (_c *NamespaceCreate) SetNillablePendingCount(v *int) *NamespaceCreate {
	if v != nil {
		_c.SetPendingCount(*v)
	}
	return _c
}

// SetActiveCount sets the "active_count" field.
func (_c *NamespaceCreate) SetActiveCount(v int) *NamespaceCreate {
	_c.mutation.SetActiveCount(v)
	return _c
}

// SetNillableActiveCount sets the "active_count" field if the given value is not nil.
func (_c *NamespaceCreate) SetNillableActiveCount(v *int) *NamespaceCreate {
	if v != nil {
		_c.SetActiveCount(*v)
	}
	return _c
}

// SetBlockedCount sets the "blocked_count" field.
func (_c *NamespaceCreate) SetBlockedCount(v int) *NamespaceCreate {
	_c.mutation.SetBlockedCount(v)
	return _c
}

// SetNillableBlockedCount sets the "blocked_count" field if the given value is not nil.
func (_c *NamespaceCreate) SetNillableBlockedCount(v *int) *NamespaceCreate {
	if v != nil {
		_c.SetBlockedCount(*v)
	}
	return _c
}

// SetCompleteCount sets the "complete_count" field.
func (_c *NamespaceCreate) SetCompleteCount(v int) *NamespaceCreate {
	_c.mutation.SetCompleteCount(v)
	return _c
}

// SetNillableCompleteCount sets the "complete_count" field if the given value is not nil.
func (_c *NamespaceCreate) SetNillableCompleteCount(v *int) *NamespaceCreate {
	if v != nil {
		_c.SetCompleteCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NamespaceCreate) SetCreatedAt(v time.Time) *NamespaceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NamespaceCreate) SetNillableCreatedAt(v *time.Time) *NamespaceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NamespaceCreate) SetUpdatedAt(v time.Time) *NamespaceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NamespaceCreate) SetNillableUpdatedAt(v *time.Time) *NamespaceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NamespaceCreate) SetID(v string) *NamespaceCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_c *NamespaceCreate) AddAssignmentIDs(ids ...string) *NamespaceCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_c *NamespaceCreate) AddAssignments(v ...*Assignment) *NamespaceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// AddChatThreadIDs adds the "chat_threads" edge to the ChatThread entity by IDs.
func (_c *NamespaceCreate) AddChatThreadIDs(ids ...string) *NamespaceCreate {
	_c.mutation.AddChatThreadIDs(ids...)
	return _c
}

// AddChatThreads adds the "chat_threads" edges to the ChatThread entity.
func (_c *NamespaceCreate) AddChatThreads(v ...*ChatThread) *NamespaceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatThreadIDs(ids...)
}

// AddChatJobIDs adds the "chat_jobs" edge to the ChatJob entity by IDs.
func (_c *NamespaceCreate) AddChatJobIDs(ids ...string) *NamespaceCreate {
	_c.mutation.AddChatJobIDs(ids...)
	return _c
}

// AddChatJobs adds the "chat_jobs" edges to the ChatJob entity.
func (_c *NamespaceCreate) AddChatJobs(v ...*ChatJob) *NamespaceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatJobIDs(ids...)
}

// Mutation returns the NamespaceMutation object of the builder.
func (_c *NamespaceCreate) Mutation() *NamespaceMutation {
	return _c.mutation
}

// Save creates the Namespace in the database.
func (_c *NamespaceCreate) Save(ctx context.Context) (*Namespace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NamespaceCreate) SaveX(ctx context.Context) *Namespace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NamespaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NamespaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NamespaceCreate) defaults() {
	if _, ok := _c.mutation.PendingCount(); !ok {
		v := namespace.DefaultPendingCount
		_c.mutation.SetPendingCount(v)
	}
	if _, ok := _c.mutation.ActiveCount(); !ok {
		v := namespace.DefaultActiveCount
		_c.mutation.SetActiveCount(v)
	}
	if _, ok := _c.mutation.BlockedCount(); !ok {
		v := namespace.DefaultBlockedCount
		_c.mutation.SetBlockedCount(v)
	}
	if _, ok := _c.mutation.CompleteCount(); !ok {
		v := namespace.DefaultCompleteCount
		_c.mutation.SetCompleteCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := namespace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := namespace.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NamespaceCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Namespace.name"`)}
	}
	if _, ok := _c.mutation.PendingCount(); !ok {
		return &ValidationError{Name: "pending_count", err: errors.New(`ent: missing required field "Namespace.pending_count"`)}
	}
	if _, ok := _c.mutation.ActiveCount(); !ok {
		return &ValidationError{Name: "active_count", err: errors.New(`ent: missing required field "Namespace.active_count"`)}
	}
	if _, ok := _c.mutation.BlockedCount(); !ok {
		return &ValidationError{Name: "blocked_count", err: errors.New(`ent: missing required field "Namespace.blocked_count"`)}
	}
	if _, ok := _c.mutation.CompleteCount(); !ok {
		return &ValidationError{Name: "complete_count", err: errors.New(`ent: missing required field "Namespace.complete_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Namespace.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Namespace.updated_at"`)}
	}
	return nil
}

func (_c *NamespaceCreate) sqlSave(ctx context.Context) (*Namespace, error) {
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
			return nil, fmt.Errorf("unexpected Namespace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NamespaceCreate) createSpec() (*Namespace, *sqlgraph.CreateSpec) {
	var (
		_node = &Namespace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(namespace.Table, sqlgraph.NewFieldSpec(namespace.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(namespace.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(namespace.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.PendingCount(); ok {
		_spec.SetField(namespace.FieldPendingCount, field.TypeInt, value)
		_node.PendingCount = value
	}
	if value, ok := _c.mutation.ActiveCount(); ok {
		_spec.SetField(namespace.FieldActiveCount, field.TypeInt, value)
		_node.ActiveCount = value
	}
	if value, ok := _c.mutation.BlockedCount(); ok {
		_spec.SetField(namespace.FieldBlockedCount, field.TypeInt, value)
		_node.BlockedCount = value
	}
	if value, ok := _c.mutation.CompleteCount(); ok {
		_spec.SetField(namespace.FieldCompleteCount, field.TypeInt, value)
		_node.CompleteCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(namespace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(namespace.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatThreadsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NamespaceCreateBulk is the builder for creating many Namespace entities in bulk.
type NamespaceCreateBulk struct {
	config
	err      error
	builders []*NamespaceCreate
}

// Save creates the Namespace entities in the database.
func (_c *NamespaceCreateBulk) Save(ctx context.Context) ([]*Namespace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Namespace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NamespaceMutation)
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
func (_c *NamespaceCreateBulk) SaveX(ctx context.Context) []*Namespace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NamespaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NamespaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
