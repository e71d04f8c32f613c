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
	"github.com/dirigent-io/dirigent/ent/chatmessage"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// ChatThreadUpdate is the builder for updating ChatThread entities.
type ChatThreadUpdate struct {
	config
	hooks    []Hook
	mutation *ChatThreadMutation
}

// Where appends a list predicates to the ChatThreadUpdate builder.
func (_u *ChatThreadUpdate) Where(ps ...predicate.ChatThread) *ChatThreadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChatThreadUpdate) SetTitle(v string) *ChatThreadUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatThreadUpdate) SetNillableTitle(v *string) *ChatThreadUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ChatThreadUpdate) SetMode(v chatthread.Mode) *ChatThreadUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ChatThreadUpdate) SetNillableMode(v *chatthread.Mode) *ChatThreadUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetLastPromptMode sets the "last_prompt_mode" field.
func (_u *ChatThreadUpdate) SetLastPromptMode(v chatthread.LastPromptMode) *ChatThreadUpdate {
	_u.mutation.SetLastPromptMode(v)
	return _u
}

// SetNillableLastPromptMode sets the "last_prompt_mode" field if the given value is not nil.
func (_u *ChatThreadUpdate) SetNillableLastPromptMode(v *chatthread.LastPromptMode) *ChatThreadUpdate {
	if v != nil {
		_u.SetLastPromptMode(*v)
	}
	return _u
}

// ClearLastPromptMode clears the value of the "last_prompt_mode" field.
func (_u *ChatThreadUpdate) ClearLastPromptMode() *ChatThreadUpdate {
	_u.mutation.ClearLastPromptMode()
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *ChatThreadUpdate) SetAssignmentID(v string) *ChatThreadUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *ChatThreadUpdate) SetNillableAssignmentID(v *string) *ChatThreadUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// ClearAssignmentID clears the value of the "assignment_id" field.
func (_u *ChatThreadUpdate) ClearAssignmentID() *ChatThreadUpdate {
	_u.mutation.ClearAssignmentID()
	return _u
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (_u *ChatThreadUpdate) SetClaudeSessionID(v string) *ChatThreadUpdate {
	_u.mutation.SetClaudeSessionID(v)
	return _u
}

// SetNillableClaudeSessionID sets the "claude_session_id" field if the given value is not nil.
func (_u *ChatThreadUpdate) SetNillableClaudeSessionID(v *string) *ChatThreadUpdate {
	if v != nil {
		_u.SetClaudeSessionID(*v)
	}
	return _u
}

// ClearClaudeSessionID clears the value of the "claude_session_id" field.
func (_u *ChatThreadUpdate) ClearClaudeSessionID() *ChatThreadUpdate {
	_u.mutation.ClearClaudeSessionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatThreadUpdate) SetUpdatedAt(v time.Time) *ChatThreadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_u *ChatThreadUpdate) SetAssignment(v *Assignment) *ChatThreadUpdate {
	return _u.SetAssignmentID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChatThreadUpdate) AddMessageIDs(ids ...string) *ChatThreadUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChatThreadUpdate) AddMessages(v ...*ChatMessage) *ChatThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddChatJobIDs adds the "chat_jobs" edge to the ChatJob entity by IDs.
func (_u *ChatThreadUpdate) AddChatJobIDs(ids ...string) *ChatThreadUpdate {
	_u.mutation.AddChatJobIDs(ids...)
	return _u
}

// AddChatJobs adds the "chat_jobs" edges to the ChatJob entity.
func (_u *ChatThreadUpdate) AddChatJobs(v ...*ChatJob) *ChatThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatJobIDs(ids...)
}

// Mutation returns the ChatThreadMutation object of the builder.
func (_u *ChatThreadUpdate) Mutation() *ChatThreadMutation {
	return _u.mutation
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (_u *ChatThreadUpdate) ClearAssignment() *ChatThreadUpdate {
	_u.mutation.ClearAssignment()
	return _u
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChatThreadUpdate) ClearMessages() *ChatThreadUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChatThreadUpdate) RemoveMessageIDs(ids ...string) *ChatThreadUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChatThreadUpdate) RemoveMessages(v ...*ChatMessage) *ChatThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearChatJobs clears all "chat_jobs" edges to the ChatJob entity.
func (_u *ChatThreadUpdate) ClearChatJobs() *ChatThreadUpdate {
	_u.mutation.ClearChatJobs()
	return _u
}

// RemoveChatJobIDs removes the "chat_jobs" edge to ChatJob entities by IDs.
func (_u *ChatThreadUpdate) RemoveChatJobIDs(ids ...string) *ChatThreadUpdate {
	_u.mutation.RemoveChatJobIDs(ids...)
	return _u
}

// RemoveChatJobs removes "chat_jobs" edges to ChatJob entities.
func (_u *ChatThreadUpdate) RemoveChatJobs(v ...*ChatJob) *ChatThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatThreadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatThreadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatThreadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatThreadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatThreadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatthread.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatThreadUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := chatthread.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ChatThread.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastPromptMode(); ok {
		if err := chatthread.LastPromptModeValidator(v); err != nil {
			return &ValidationError{Name: "last_prompt_mode", err: fmt.Errorf(`ent: validator failed for field "ChatThread.last_prompt_mode": %w`, err)}
		}
	}
	if _u.mutation.NamespaceCleared() && len(_u.mutation.NamespaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatThread.namespace"`)
	}
	return nil
}

func (_u *ChatThreadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatthread.Table, chatthread.Columns, sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chatthread.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(chatthread.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastPromptMode(); ok {
		_spec.SetField(chatthread.FieldLastPromptMode, field.TypeEnum, value)
	}
	if _u.mutation.LastPromptModeCleared() {
		_spec.ClearField(chatthread.FieldLastPromptMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.ClaudeSessionID(); ok {
		_spec.SetField(chatthread.FieldClaudeSessionID, field.TypeString, value)
	}
	if _u.mutation.ClaudeSessionIDCleared() {
		_spec.ClearField(chatthread.FieldClaudeSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatthread.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatJobsIDs(); len(nodes) > 0 && !_u.mutation.ChatJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatthread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatThreadUpdateOne is the builder for updating a single ChatThread entity.
type ChatThreadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatThreadMutation
}

// SetTitle sets the "title" field.
func (_u *ChatThreadUpdateOne) SetTitle(v string) *ChatThreadUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatThreadUpdateOne) SetNillableTitle(v *string) *ChatThreadUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ChatThreadUpdateOne) SetMode(v chatthread.Mode) *ChatThreadUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ChatThreadUpdateOne) SetNillableMode(v *chatthread.Mode) *ChatThreadUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetLastPromptMode sets the "last_prompt_mode" field.
func (_u *ChatThreadUpdateOne) SetLastPromptMode(v chatthread.LastPromptMode) *ChatThreadUpdateOne {
	_u.mutation.SetLastPromptMode(v)
	return _u
}

// SetNillableLastPromptMode sets the "last_prompt_mode" field if the given value is not nil.
func (_u *ChatThreadUpdateOne) SetNillableLastPromptMode(v *chatthread.LastPromptMode) *ChatThreadUpdateOne {
	if v != nil {
		_u.SetLastPromptMode(*v)
	}
	return _u
}

// ClearLastPromptMode clears the value of the "last_prompt_mode" field.
func (_u *ChatThreadUpdateOne) ClearLastPromptMode() *ChatThreadUpdateOne {
	_u.mutation.ClearLastPromptMode()
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *ChatThreadUpdateOne) SetAssignmentID(v string) *ChatThreadUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *ChatThreadUpdateOne) SetNillableAssignmentID(v *string) *ChatThreadUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// ClearAssignmentID clears the value of the "assignment_id" field.
func (_u *ChatThreadUpdateOne) ClearAssignmentID() *ChatThreadUpdateOne {
	_u.mutation.ClearAssignmentID()
	return _u
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (_u *ChatThreadUpdateOne) SetClaudeSessionID(v string) *ChatThreadUpdateOne {
	_u.mutation.SetClaudeSessionID(v)
	return _u
}

// SetNillableClaudeSessionID sets the "claude_session_id" field if the given value is not nil.
func (_u *ChatThreadUpdateOne) SetNillableClaudeSessionID(v *string) *ChatThreadUpdateOne {
	if v != nil {
		_u.SetClaudeSessionID(*v)
	}
	return _u
}

// ClearClaudeSessionID clears the value of the "claude_session_id" field.
func (_u *ChatThreadUpdateOne) ClearClaudeSessionID() *ChatThreadUpdateOne {
	_u.mutation.ClearClaudeSessionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatThreadUpdateOne) SetUpdatedAt(v time.Time) *ChatThreadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_u *ChatThreadUpdateOne) SetAssignment(v *Assignment) *ChatThreadUpdateOne {
	return _u.SetAssignmentID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChatThreadUpdateOne) AddMessageIDs(ids ...string) *ChatThreadUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChatThreadUpdateOne) AddMessages(v ...*ChatMessage) *ChatThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddChatJobIDs adds the "chat_jobs" edge to the ChatJob entity by IDs.
func (_u *ChatThreadUpdateOne) AddChatJobIDs(ids ...string) *ChatThreadUpdateOne {
	_u.mutation.AddChatJobIDs(ids...)
	return _u
}

// AddChatJobs adds the "chat_jobs" edges to the ChatJob entity.
func (_u *ChatThreadUpdateOne) AddChatJobs(v ...*ChatJob) *ChatThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatJobIDs(ids...)
}

// Mutation returns the ChatThreadMutation object of the builder.
func (_u *ChatThreadUpdateOne) Mutation() *ChatThreadMutation {
	return _u.mutation
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (_u *ChatThreadUpdateOne) ClearAssignment() *ChatThreadUpdateOne {
	_u.mutation.ClearAssignment()
	return _u
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChatThreadUpdateOne) ClearMessages() *ChatThreadUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChatThreadUpdateOne) RemoveMessageIDs(ids ...string) *ChatThreadUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChatThreadUpdateOne) RemoveMessages(v ...*ChatMessage) *ChatThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearChatJobs clears all "chat_jobs" edges to the ChatJob entity.
func (_u *ChatThreadUpdateOne) ClearChatJobs() *ChatThreadUpdateOne {
	_u.mutation.ClearChatJobs()
	return _u
}

// RemoveChatJobIDs removes the "chat_jobs" edge to ChatJob entities by IDs.
func (_u *ChatThreadUpdateOne) RemoveChatJobIDs(ids ...string) *ChatThreadUpdateOne {
	_u.mutation.RemoveChatJobIDs(ids...)
	return _u
}

// RemoveChatJobs removes "chat_jobs" edges to ChatJob entities.
func (_u *ChatThreadUpdateOne) RemoveChatJobs(v ...*ChatJob) *ChatThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatJobIDs(ids...)
}

// Where appends a list predicates to the ChatThreadUpdate builder.
func (_u *ChatThreadUpdateOne) Where(ps ...predicate.ChatThread) *ChatThreadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatThreadUpdateOne) Select(field string, fields ...string) *ChatThreadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatThread entity.
func (_u *ChatThreadUpdateOne) Save(ctx context.Context) (*ChatThread, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatThreadUpdateOne) SaveX(ctx context.Context) *ChatThread {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatThreadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatThreadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatThreadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatthread.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatThreadUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := chatthread.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ChatThread.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastPromptMode(); ok {
		if err := chatthread.LastPromptModeValidator(v); err != nil {
			return &ValidationError{Name: "last_prompt_mode", err: fmt.Errorf(`ent: validator failed for field "ChatThread.last_prompt_mode": %w`, err)}
		}
	}
	if _u.mutation.NamespaceCleared() && len(_u.mutation.NamespaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatThread.namespace"`)
	}
	return nil
}

func (_u *ChatThreadUpdateOne) sqlSave(ctx context.Context) (_node *ChatThread, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatthread.Table, chatthread.Columns, sqlgraph.NewFieldSpec(chatthread.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatThread.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatthread.FieldID)
		for _, f := range fields {
			if !chatthread.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatthread.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chatthread.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(chatthread.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastPromptMode(); ok {
		_spec.SetField(chatthread.FieldLastPromptMode, field.TypeEnum, value)
	}
	if _u.mutation.LastPromptModeCleared() {
		_spec.ClearField(chatthread.FieldLastPromptMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.ClaudeSessionID(); ok {
		_spec.SetField(chatthread.FieldClaudeSessionID, field.TypeString, value)
	}
	if _u.mutation.ClaudeSessionIDCleared() {
		_spec.ClearField(chatthread.FieldClaudeSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatthread.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatJobsIDs(); len(nodes) > 0 && !_u.mutation.ChatJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatThread{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatthread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
