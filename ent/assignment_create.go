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
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
	"github.com/dirigent-io/dirigent/ent/namespace"
)

// AssignmentCreate is the builder for creating a Assignment entity.
type AssignmentCreate struct {
	config
	mutation *AssignmentMutation
	hooks    []Hook
}

// SetNamespaceID sets the "namespace_id" field.
func (_c *AssignmentCreate) SetNamespaceID(v string) *AssignmentCreate {
	_c.mutation.SetNamespaceID(v)
	return _c
}

// SetNorthStar sets the "north_star" field.
func (_c *AssignmentCreate) SetNorthStar(v string) *AssignmentCreate {
	_c.mutation.SetNorthStar(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssignmentCreate) SetStatus(v assignment.Status) *AssignmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableStatus(v *assignment.Status) *AssignmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIndependent sets the "independent" field.
func (_c *AssignmentCreate) SetIndependent(v bool) *AssignmentCreate {
	_c.mutation.SetIndependent(v)
	return _c
}

// SetNillableIndependent sets the "independent" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableIndependent(v *bool) *AssignmentCreate {
	if v != nil {
		_c.SetIndependent(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AssignmentCreate) SetPriority(v int) *AssignmentCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillablePriority(v *int) *AssignmentCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetArtifacts sets the "artifacts" field.
func (_c *AssignmentCreate) SetArtifacts(v string) *AssignmentCreate {
	_c.mutation.SetArtifacts(v)
	return _c
}

// SetNillableArtifacts sets the "artifacts" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableArtifacts(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetArtifacts(*v)
	}
	return _c
}

// SetDecisions sets the "decisions" field.
func (_c *AssignmentCreate) SetDecisions(v string) *AssignmentCreate {
	_c.mutation.SetDecisions(v)
	return _c
}

// SetNillableDecisions sets the "decisions" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableDecisions(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetDecisions(*v)
	}
	return _c
}

// SetBlockedReason sets the "blocked_reason" field.
func (_c *AssignmentCreate) SetBlockedReason(v string) *AssignmentCreate {
	_c.mutation.SetBlockedReason(v)
	return _c
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableBlockedReason(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetBlockedReason(*v)
	}
	return _c
}

// SetAlignmentStatus sets the "alignment_status" field.
func (_c *AssignmentCreate) SetAlignmentStatus(v assignment.AlignmentStatus) *AssignmentCreate {
	_c.mutation.SetAlignmentStatus(v)
	return _c
}

// SetNillableAlignmentStatus sets the "alignment_status" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableAlignmentStatus(v *assignment.AlignmentStatus) *AssignmentCreate {
	if v != nil {
		_c.SetAlignmentStatus(*v)
	}
	return _c
}

// SetHeadGroupID sets the "head_group_id" field.
func (_c *AssignmentCreate) SetHeadGroupID(v string) *AssignmentCreate {
	_c.mutation.SetHeadGroupID(v)
	return _c
}

// SetNillableHeadGroupID sets the "head_group_id" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableHeadGroupID(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetHeadGroupID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssignmentCreate) SetCreatedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableCreatedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssignmentCreate) SetUpdatedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableUpdatedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssignmentCreate) SetID(v string) *AssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNamespace sets the "namespace" edge to the Namespace entity.
func (_c *AssignmentCreate) SetNamespace(v *Namespace) *AssignmentCreate {
	return _c.SetNamespaceID(v.ID)
}

// AddGroupIDs adds the "groups" edge to the JobGroup entity by IDs.
func (_c *AssignmentCreate) AddGroupIDs(ids ...string) *AssignmentCreate {
	_c.mutation.AddGroupIDs(ids...)
	return _c
}

// AddGroups adds the "groups" edges to the JobGroup entity.
func (_c *AssignmentCreate) AddGroups(v ...*JobGroup) *AssignmentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGroupIDs(ids...)
}

// AddChatThreadIDs adds the "chat_threads" edge to the ChatThread entity by IDs.
func (_c *AssignmentCreate) AddChatThreadIDs(ids ...string) *AssignmentCreate {
	_c.mutation.AddChatThreadIDs(ids...)
	return _c
}

// AddChatThreads adds the "chat_threads" edges to the ChatThread entity.
func (_c *AssignmentCreate) AddChatThreads(v ...*ChatThread) *AssignmentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatThreadIDs(ids...)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_c *AssignmentCreate) Mutation() *AssignmentMutation {
	return _c.mutation
}

// Save creates the Assignment in the database.
func (_c *AssignmentCreate) Save(ctx context.Context) (*Assignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentCreate) SaveX(ctx context.Context) *Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := assignment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Independent(); !ok {
		v := assignment.DefaultIndependent
		_c.mutation.SetIndependent(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := assignment.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assignment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentCreate) check() error {
	if _, ok := _c.mutation.NamespaceID(); !ok {
		return &ValidationError{Name: "namespace_id", err: errors.New(`ent: missing required field "Assignment.namespace_id"`)}
	}
	if _, ok := _c.mutation.NorthStar(); !ok {
		return &ValidationError{Name: "north_star", err: errors.New(`ent: missing required field "Assignment.north_star"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Assignment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := assignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assignment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Independent(); !ok {
		return &ValidationError{Name: "independent", err: errors.New(`ent: missing required field "Assignment.independent"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Assignment.priority"`)}
	}
	if v, ok := _c.mutation.AlignmentStatus(); ok {
		if err := assignment.AlignmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "alignment_status", err: fmt.Errorf(`ent: validator failed for field "Assignment.alignment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Assignment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Assignment.updated_at"`)}
	}
	if len(_c.mutation.NamespaceIDs()) == 0 {
		return &ValidationError{Name: "namespace", err: errors.New(`ent: missing required edge "Assignment.namespace"`)}
	}
	return nil
}

func (_c *AssignmentCreate) sqlSave(ctx context.Context) (*Assignment, error) {
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
			return nil, fmt.Errorf("unexpected Assignment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssignmentCreate) createSpec() (*Assignment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignment.Table, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NorthStar(); ok {
		_spec.SetField(assignment.FieldNorthStar, field.TypeString, value)
		_node.NorthStar = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assignment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Independent(); ok {
		_spec.SetField(assignment.FieldIndependent, field.TypeBool, value)
		_node.Independent = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(assignment.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Artifacts(); ok {
		_spec.SetField(assignment.FieldArtifacts, field.TypeString, value)
		_node.Artifacts = &value
	}
	if value, ok := _c.mutation.Decisions(); ok {
		_spec.SetField(assignment.FieldDecisions, field.TypeString, value)
		_node.Decisions = &value
	}
	if value, ok := _c.mutation.BlockedReason(); ok {
		_spec.SetField(assignment.FieldBlockedReason, field.TypeString, value)
		_node.BlockedReason = &value
	}
	if value, ok := _c.mutation.AlignmentStatus(); ok {
		_spec.SetField(assignment.FieldAlignmentStatus, field.TypeEnum, value)
		_node.AlignmentStatus = &value
	}
	if value, ok := _c.mutation.HeadGroupID(); ok {
		_spec.SetField(assignment.FieldHeadGroupID, field.TypeString, value)
		_node.HeadGroupID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assignment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.NamespaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.NamespaceTable,
			Columns: []string{assignment.NamespaceColumn},
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
	if nodes := _c.mutation.GroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatThreadsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssignmentCreateBulk is the builder for creating many Assignment entities in bulk.
type AssignmentCreateBulk struct {
	config
	err      error
	builders []*AssignmentCreate
}

// Save creates the Assignment entities in the database.
func (_c *AssignmentCreateBulk) Save(ctx context.Context) ([]*Assignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentMutation)
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
func (_c *AssignmentCreateBulk) SaveX(ctx context.Context) []*Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
