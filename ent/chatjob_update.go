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
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// ChatJobUpdate is the builder for updating ChatJob entities.
type ChatJobUpdate struct {
	config
	hooks    []Hook
	mutation *ChatJobMutation
}

// Where appends a list predicates to the ChatJobUpdate builder.
func (_u *ChatJobUpdate) Where(ps ...predicate.ChatJob) *ChatJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHarness sets the "harness" field.
func (_u *ChatJobUpdate) SetHarness(v chatjob.Harness) *ChatJobUpdate {
	_u.mutation.SetHarness(v)
	return _u
}

// SetNillableHarness sets the "harness" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableHarness(v *chatjob.Harness) *ChatJobUpdate {
	if v != nil {
		_u.SetHarness(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ChatJobUpdate) SetContext(v string) *ChatJobUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableContext(v *string) *ChatJobUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ChatJobUpdate) SetPrompt(v string) *ChatJobUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillablePrompt(v *string) *ChatJobUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ChatJobUpdate) ClearPrompt() *ChatJobUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatJobUpdate) SetStatus(v chatjob.Status) *ChatJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableStatus(v *chatjob.Status) *ChatJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ChatJobUpdate) SetResult(v string) *ChatJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableResult(v *string) *ChatJobUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ChatJobUpdate) ClearResult() *ChatJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ChatJobUpdate) SetStartedAt(v time.Time) *ChatJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableStartedAt(v *time.Time) *ChatJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ChatJobUpdate) ClearStartedAt() *ChatJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ChatJobUpdate) SetCompletedAt(v time.Time) *ChatJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableCompletedAt(v *time.Time) *ChatJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ChatJobUpdate) ClearCompletedAt() *ChatJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetToolCallCount sets the "tool_call_count" field.
func (_u *ChatJobUpdate) SetToolCallCount(v int) *ChatJobUpdate {
	_u.mutation.ResetToolCallCount()
	_u.mutation.SetToolCallCount(v)
	return _u
}

// SetNillableToolCallCount sets the "tool_call_count" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableToolCallCount(v *int) *ChatJobUpdate {
	if v != nil {
		_u.SetToolCallCount(*v)
	}
	return _u
}

// AddToolCallCount adds value to the "tool_call_count" field.
func (_u *ChatJobUpdate) AddToolCallCount(v int) *ChatJobUpdate {
	_u.mutation.AddToolCallCount(v)
	return _u
}

// SetSubagentCount sets the "subagent_count" field.
func (_u *ChatJobUpdate) SetSubagentCount(v int) *ChatJobUpdate {
	_u.mutation.ResetSubagentCount()
	_u.mutation.SetSubagentCount(v)
	return _u
}

// SetNillableSubagentCount sets the "subagent_count" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableSubagentCount(v *int) *ChatJobUpdate {
	if v != nil {
		_u.SetSubagentCount(*v)
	}
	return _u
}

// AddSubagentCount adds value to the "subagent_count" field.
func (_u *ChatJobUpdate) AddSubagentCount(v int) *ChatJobUpdate {
	_u.mutation.AddSubagentCount(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ChatJobUpdate) SetTotalTokens(v int) *ChatJobUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableTotalTokens(v *int) *ChatJobUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ChatJobUpdate) AddTotalTokens(v int) *ChatJobUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetLastEventAt sets the "last_event_at" field.
func (_u *ChatJobUpdate) SetLastEventAt(v time.Time) *ChatJobUpdate {
	_u.mutation.SetLastEventAt(v)
	return _u
}

// SetNillableLastEventAt sets the "last_event_at" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableLastEventAt(v *time.Time) *ChatJobUpdate {
	if v != nil {
		_u.SetLastEventAt(*v)
	}
	return _u
}

// ClearLastEventAt clears the value of the "last_event_at" field.
func (_u *ChatJobUpdate) ClearLastEventAt() *ChatJobUpdate {
	_u.mutation.ClearLastEventAt()
	return _u
}

// SetExitForced sets the "exit_forced" field.
func (_u *ChatJobUpdate) SetExitForced(v bool) *ChatJobUpdate {
	_u.mutation.SetExitForced(v)
	return _u
}

// SetNillableExitForced sets the "exit_forced" field if the given value is not nil.
func (_u *ChatJobUpdate) SetNillableExitForced(v *bool) *ChatJobUpdate {
	if v != nil {
		_u.SetExitForced(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatJobUpdate) SetUpdatedAt(v time.Time) *ChatJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatJobMutation object of the builder.
func (_u *ChatJobUpdate) Mutation() *ChatJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatJobUpdate) check() error {
	if v, ok := _u.mutation.Harness(); ok {
		if err := chatjob.HarnessValidator(v); err != nil {
			return &ValidationError{Name: "harness", err: fmt.Errorf(`ent: validator failed for field "ChatJob.harness": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := chatjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatJob.status": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatJob.thread"`)
	}
	if _u.mutation.NamespaceCleared() && len(_u.mutation.NamespaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatJob.namespace"`)
	}
	return nil
}

func (_u *ChatJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatjob.Table, chatjob.Columns, sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Harness(); ok {
		_spec.SetField(chatjob.FieldHarness, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(chatjob.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(chatjob.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(chatjob.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(chatjob.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(chatjob.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(chatjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(chatjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(chatjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(chatjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ToolCallCount(); ok {
		_spec.SetField(chatjob.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCallCount(); ok {
		_spec.AddField(chatjob.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubagentCount(); ok {
		_spec.SetField(chatjob.FieldSubagentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubagentCount(); ok {
		_spec.AddField(chatjob.FieldSubagentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(chatjob.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(chatjob.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastEventAt(); ok {
		_spec.SetField(chatjob.FieldLastEventAt, field.TypeTime, value)
	}
	if _u.mutation.LastEventAtCleared() {
		_spec.ClearField(chatjob.FieldLastEventAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExitForced(); ok {
		_spec.SetField(chatjob.FieldExitForced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatJobUpdateOne is the builder for updating a single ChatJob entity.
type ChatJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatJobMutation
}

// SetHarness sets the "harness" field.
func (_u *ChatJobUpdateOne) SetHarness(v chatjob.Harness) *ChatJobUpdateOne {
	_u.mutation.SetHarness(v)
	return _u
}

// SetNillableHarness sets the "harness" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableHarness(v *chatjob.Harness) *ChatJobUpdateOne {
	if v != nil {
		_u.SetHarness(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ChatJobUpdateOne) SetContext(v string) *ChatJobUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableContext(v *string) *ChatJobUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ChatJobUpdateOne) SetPrompt(v string) *ChatJobUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillablePrompt(v *string) *ChatJobUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ChatJobUpdateOne) ClearPrompt() *ChatJobUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatJobUpdateOne) SetStatus(v chatjob.Status) *ChatJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableStatus(v *chatjob.Status) *ChatJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ChatJobUpdateOne) SetResult(v string) *ChatJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableResult(v *string) *ChatJobUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ChatJobUpdateOne) ClearResult() *ChatJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ChatJobUpdateOne) SetStartedAt(v time.Time) *ChatJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableStartedAt(v *time.Time) *ChatJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ChatJobUpdateOne) ClearStartedAt() *ChatJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ChatJobUpdateOne) SetCompletedAt(v time.Time) *ChatJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ChatJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ChatJobUpdateOne) ClearCompletedAt() *ChatJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetToolCallCount sets the "tool_call_count" field.
func (_u *ChatJobUpdateOne) SetToolCallCount(v int) *ChatJobUpdateOne {
	_u.mutation.ResetToolCallCount()
	_u.mutation.SetToolCallCount(v)
	return _u
}

// SetNillableToolCallCount sets the "tool_call_count" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableToolCallCount(v *int) *ChatJobUpdateOne {
	if v != nil {
		_u.SetToolCallCount(*v)
	}
	return _u
}

// AddToolCallCount adds value to the "tool_call_count" field.
func (_u *ChatJobUpdateOne) AddToolCallCount(v int) *ChatJobUpdateOne {
	_u.mutation.AddToolCallCount(v)
	return _u
}

// SetSubagentCount sets the "subagent_count" field.
func (_u *ChatJobUpdateOne) SetSubagentCount(v int) *ChatJobUpdateOne {
	_u.mutation.ResetSubagentCount()
	_u.mutation.SetSubagentCount(v)
	return _u
}

// SetNillableSubagentCount sets the "subagent_count" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableSubagentCount(v *int) *ChatJobUpdateOne {
	if v != nil {
		_u.SetSubagentCount(*v)
	}
	return _u
}

// AddSubagentCount adds value to the "subagent_count" field.
func (_u *ChatJobUpdateOne) AddSubagentCount(v int) *ChatJobUpdateOne {
	_u.mutation.AddSubagentCount(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ChatJobUpdateOne) SetTotalTokens(v int) *ChatJobUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableTotalTokens(v *int) *ChatJobUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ChatJobUpdateOne) AddTotalTokens(v int) *ChatJobUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetLastEventAt sets the "last_event_at" field.
func (_u *ChatJobUpdateOne) SetLastEventAt(v time.Time) *ChatJobUpdateOne {
	_u.mutation.SetLastEventAt(v)
	return _u
}

// SetNillableLastEventAt sets the "last_event_at" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableLastEventAt(v *time.Time) *ChatJobUpdateOne {
	if v != nil {
		_u.SetLastEventAt(*v)
	}
	return _u
}

// ClearLastEventAt clears the value of the "last_event_at" field.
func (_u *ChatJobUpdateOne) ClearLastEventAt() *ChatJobUpdateOne {
	_u.mutation.ClearLastEventAt()
	return _u
}

// SetExitForced sets the "exit_forced" field.
func (_u *ChatJobUpdateOne) SetExitForced(v bool) *ChatJobUpdateOne {
	_u.mutation.SetExitForced(v)
	return _u
}

// SetNillableExitForced sets the "exit_forced" field if the given value is not nil.
func (_u *ChatJobUpdateOne) SetNillableExitForced(v *bool) *ChatJobUpdateOne {
	if v != nil {
		_u.SetExitForced(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatJobUpdateOne) SetUpdatedAt(v time.Time) *ChatJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatJobMutation object of the builder.
func (_u *ChatJobUpdateOne) Mutation() *ChatJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatJobUpdate builder.
func (_u *ChatJobUpdateOne) Where(ps ...predicate.ChatJob) *ChatJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatJobUpdateOne) Select(field string, fields ...string) *ChatJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatJob entity.
func (_u *ChatJobUpdateOne) Save(ctx context.Context) (*ChatJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatJobUpdateOne) SaveX(ctx context.Context) *ChatJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatJobUpdateOne) check() error {
	if v, ok := _u.mutation.Harness(); ok {
		if err := chatjob.HarnessValidator(v); err != nil {
			return &ValidationError{Name: "harness", err: fmt.Errorf(`ent: validator failed for field "ChatJob.harness": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := chatjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatJob.status": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatJob.thread"`)
	}
	if _u.mutation.NamespaceCleared() && len(_u.mutation.NamespaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatJob.namespace"`)
	}
	return nil
}

func (_u *ChatJobUpdateOne) sqlSave(ctx context.Context) (_node *ChatJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatjob.Table, chatjob.Columns, sqlgraph.NewFieldSpec(chatjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatjob.FieldID)
		for _, f := range fields {
			if !chatjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatjob.FieldID {
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
	if value, ok := _u.mutation.Harness(); ok {
		_spec.SetField(chatjob.FieldHarness, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(chatjob.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(chatjob.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(chatjob.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(chatjob.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(chatjob.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(chatjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(chatjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(chatjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(chatjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ToolCallCount(); ok {
		_spec.SetField(chatjob.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCallCount(); ok {
		_spec.AddField(chatjob.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubagentCount(); ok {
		_spec.SetField(chatjob.FieldSubagentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubagentCount(); ok {
		_spec.AddField(chatjob.FieldSubagentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(chatjob.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(chatjob.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastEventAt(); ok {
		_spec.SetField(chatjob.FieldLastEventAt, field.TypeTime, value)
	}
	if _u.mutation.LastEventAtCleared() {
		_spec.ClearField(chatjob.FieldLastEventAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExitForced(); ok {
		_spec.SetField(chatjob.FieldExitForced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChatJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
