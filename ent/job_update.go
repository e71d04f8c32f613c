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
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdate) SetJobType(v string) *JobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableJobType(v *string) *JobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetHarness sets the "harness" field.
func (_u *JobUpdate) SetHarness(v job.Harness) *JobUpdate {
	_u.mutation.SetHarness(v)
	return _u
}

// SetNillableHarness sets the "harness" field if the given value is not nil.
func (_u *JobUpdate) SetNillableHarness(v *job.Harness) *JobUpdate {
	if v != nil {
		_u.SetHarness(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *JobUpdate) SetContext(v string) *JobUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *JobUpdate) SetNillableContext(v *string) *JobUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *JobUpdate) ClearContext() *JobUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *JobUpdate) SetPrompt(v string) *JobUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePrompt(v *string) *JobUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *JobUpdate) ClearPrompt() *JobUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdate) SetResult(v string) *JobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *JobUpdate) SetNillableResult(v *string) *JobUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdate) ClearResult() *JobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetToolCallCount sets the "tool_call_count" field.
func (_u *JobUpdate) SetToolCallCount(v int) *JobUpdate {
	_u.mutation.ResetToolCallCount()
	_u.mutation.SetToolCallCount(v)
	return _u
}

// SetNillableToolCallCount sets the "tool_call_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableToolCallCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetToolCallCount(*v)
	}
	return _u
}

// AddToolCallCount adds value to the "tool_call_count" field.
func (_u *JobUpdate) AddToolCallCount(v int) *JobUpdate {
	_u.mutation.AddToolCallCount(v)
	return _u
}

// SetSubagentCount sets the "subagent_count" field.
func (_u *JobUpdate) SetSubagentCount(v int) *JobUpdate {
	_u.mutation.ResetSubagentCount()
	_u.mutation.SetSubagentCount(v)
	return _u
}

// SetNillableSubagentCount sets the "subagent_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSubagentCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetSubagentCount(*v)
	}
	return _u
}

// AddSubagentCount adds value to the "subagent_count" field.
func (_u *JobUpdate) AddSubagentCount(v int) *JobUpdate {
	_u.mutation.AddSubagentCount(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *JobUpdate) SetTotalTokens(v int) *JobUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTotalTokens(v *int) *JobUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *JobUpdate) AddTotalTokens(v int) *JobUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetLastEventAt sets the "last_event_at" field.
func (_u *JobUpdate) SetLastEventAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastEventAt(v)
	return _u
}

// SetNillableLastEventAt sets the "last_event_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastEventAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastEventAt(*v)
	}
	return _u
}

// ClearLastEventAt clears the value of the "last_event_at" field.
func (_u *JobUpdate) ClearLastEventAt() *JobUpdate {
	_u.mutation.ClearLastEventAt()
	return _u
}

// SetExitForced sets the "exit_forced" field.
func (_u *JobUpdate) SetExitForced(v bool) *JobUpdate {
	_u.mutation.SetExitForced(v)
	return _u
}

// SetNillableExitForced sets the "exit_forced" field if the given value is not nil.
func (_u *JobUpdate) SetNillableExitForced(v *bool) *JobUpdate {
	if v != nil {
		_u.SetExitForced(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Harness(); ok {
		if err := job.HarnessValidator(v); err != nil {
			return &ValidationError{Name: "harness", err: fmt.Errorf(`ent: validator failed for field "Job.harness": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.group"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Harness(); ok {
		_spec.SetField(job.FieldHarness, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(job.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(job.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(job.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(job.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ToolCallCount(); ok {
		_spec.SetField(job.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCallCount(); ok {
		_spec.AddField(job.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubagentCount(); ok {
		_spec.SetField(job.FieldSubagentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubagentCount(); ok {
		_spec.AddField(job.FieldSubagentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastEventAt(); ok {
		_spec.SetField(job.FieldLastEventAt, field.TypeTime, value)
	}
	if _u.mutation.LastEventAtCleared() {
		_spec.ClearField(job.FieldLastEventAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExitForced(); ok {
		_spec.SetField(job.FieldExitForced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdateOne) SetJobType(v string) *JobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableJobType(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetHarness sets the "harness" field.
func (_u *JobUpdateOne) SetHarness(v job.Harness) *JobUpdateOne {
	_u.mutation.SetHarness(v)
	return _u
}

// SetNillableHarness sets the "harness" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableHarness(v *job.Harness) *JobUpdateOne {
	if v != nil {
		_u.SetHarness(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *JobUpdateOne) SetContext(v string) *JobUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableContext(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *JobUpdateOne) ClearContext() *JobUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *JobUpdateOne) SetPrompt(v string) *JobUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePrompt(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *JobUpdateOne) ClearPrompt() *JobUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdateOne) SetResult(v string) *JobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableResult(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdateOne) ClearResult() *JobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetToolCallCount sets the "tool_call_count" field.
func (_u *JobUpdateOne) SetToolCallCount(v int) *JobUpdateOne {
	_u.mutation.ResetToolCallCount()
	_u.mutation.SetToolCallCount(v)
	return _u
}

// SetNillableToolCallCount sets the "tool_call_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableToolCallCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetToolCallCount(*v)
	}
	return _u
}

// AddToolCallCount adds value to the "tool_call_count" field.
func (_u *JobUpdateOne) AddToolCallCount(v int) *JobUpdateOne {
	_u.mutation.AddToolCallCount(v)
	return _u
}

// SetSubagentCount sets the "subagent_count" field.
func (_u *JobUpdateOne) SetSubagentCount(v int) *JobUpdateOne {
	_u.mutation.ResetSubagentCount()
	_u.mutation.SetSubagentCount(v)
	return _u
}

// SetNillableSubagentCount sets the "subagent_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSubagentCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetSubagentCount(*v)
	}
	return _u
}

// AddSubagentCount adds value to the "subagent_count" field.
func (_u *JobUpdateOne) AddSubagentCount(v int) *JobUpdateOne {
	_u.mutation.AddSubagentCount(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *JobUpdateOne) SetTotalTokens(v int) *JobUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTotalTokens(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *JobUpdateOne) AddTotalTokens(v int) *JobUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetLastEventAt sets the "last_event_at" field.
func (_u *JobUpdateOne) SetLastEventAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastEventAt(v)
	return _u
}

// SetNillableLastEventAt sets the "last_event_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastEventAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastEventAt(*v)
	}
	return _u
}

// ClearLastEventAt clears the value of the "last_event_at" field.
func (_u *JobUpdateOne) ClearLastEventAt() *JobUpdateOne {
	_u.mutation.ClearLastEventAt()
	return _u
}

// SetExitForced sets the "exit_forced" field.
func (_u *JobUpdateOne) SetExitForced(v bool) *JobUpdateOne {
	_u.mutation.SetExitForced(v)
	return _u
}

// SetNillableExitForced sets the "exit_forced" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableExitForced(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetExitForced(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Harness(); ok {
		if err := job.HarnessValidator(v); err != nil {
			return &ValidationError{Name: "harness", err: fmt.Errorf(`ent: validator failed for field "Job.harness": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.group"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Harness(); ok {
		_spec.SetField(job.FieldHarness, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(job.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(job.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(job.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(job.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ToolCallCount(); ok {
		_spec.SetField(job.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCallCount(); ok {
		_spec.AddField(job.FieldToolCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubagentCount(); ok {
		_spec.SetField(job.FieldSubagentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubagentCount(); ok {
		_spec.AddField(job.FieldSubagentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastEventAt(); ok {
		_spec.SetField(job.FieldLastEventAt, field.TypeTime, value)
	}
	if _u.mutation.LastEventAtCleared() {
		_spec.ClearField(job.FieldLastEventAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExitForced(); ok {
		_spec.SetField(job.FieldExitForced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
