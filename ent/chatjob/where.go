// Code generated by ent, DO NOT EDIT.

package chatjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContainsFold(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldThreadID, v))
}

// NamespaceID applies equality check predicate on the "namespace_id" field. It's identical to NamespaceIDEQ.
func NamespaceID(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldNamespaceID, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldContext, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldPrompt, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldResult, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldCompletedAt, v))
}

// ToolCallCount applies equality check predicate on the "tool_call_count" field. It's identical to ToolCallCountEQ.
func ToolCallCount(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldToolCallCount, v))
}

// SubagentCount applies equality check predicate on the "subagent_count" field. It's identical to SubagentCountEQ.
func SubagentCount(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldSubagentCount, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldTotalTokens, v))
}

// LastEventAt applies equality check predicate on the "last_event_at" field. It's identical to LastEventAtEQ.
func LastEventAt(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldLastEventAt, v))
}

// ExitForced applies equality check predicate on the "exit_forced" field. It's identical to ExitForcedEQ.
func ExitForced(v bool) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldExitForced, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContainsFold(FieldThreadID, v))
}

// NamespaceIDEQ applies the EQ predicate on the "namespace_id" field.
func NamespaceIDEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldNamespaceID, v))
}

// NamespaceIDNEQ applies the NEQ predicate on the "namespace_id" field.
func NamespaceIDNEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldNamespaceID, v))
}

// NamespaceIDIn applies the In predicate on the "namespace_id" field.
func NamespaceIDIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldNamespaceID, vs...))
}

// NamespaceIDNotIn applies the NotIn predicate on the "namespace_id" field.
func NamespaceIDNotIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldNamespaceID, vs...))
}

// NamespaceIDGT applies the GT predicate on the "namespace_id" field.
func NamespaceIDGT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldNamespaceID, v))
}

// NamespaceIDGTE applies the GTE predicate on the "namespace_id" field.
func NamespaceIDGTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldNamespaceID, v))
}

// NamespaceIDLT applies the LT predicate on the "namespace_id" field.
func NamespaceIDLT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldNamespaceID, v))
}

// NamespaceIDLTE applies the LTE predicate on the "namespace_id" field.
func NamespaceIDLTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldNamespaceID, v))
}

// NamespaceIDContains applies the Contains predicate on the "namespace_id" field.
func NamespaceIDContains(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContains(FieldNamespaceID, v))
}

// NamespaceIDHasPrefix applies the HasPrefix predicate on the "namespace_id" field.
func NamespaceIDHasPrefix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasPrefix(FieldNamespaceID, v))
}

// NamespaceIDHasSuffix applies the HasSuffix predicate on the "namespace_id" field.
func NamespaceIDHasSuffix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasSuffix(FieldNamespaceID, v))
}

// NamespaceIDEqualFold applies the EqualFold predicate on the "namespace_id" field.
func NamespaceIDEqualFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEqualFold(FieldNamespaceID, v))
}

// NamespaceIDContainsFold applies the ContainsFold predicate on the "namespace_id" field.
func NamespaceIDContainsFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContainsFold(FieldNamespaceID, v))
}

// HarnessEQ applies the EQ predicate on the "harness" field.
func HarnessEQ(v Harness) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldHarness, v))
}

// HarnessNEQ applies the NEQ predicate on the "harness" field.
func HarnessNEQ(v Harness) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldHarness, v))
}

// HarnessIn applies the In predicate on the "harness" field.
func HarnessIn(vs ...Harness) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldHarness, vs...))
}

// HarnessNotIn applies the NotIn predicate on the "harness" field.
func HarnessNotIn(vs ...Harness) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldHarness, vs...))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasSuffix(FieldContext, v))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContainsFold(FieldContext, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptIsNil applies the IsNil predicate on the "prompt" field.
func PromptIsNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIsNull(FieldPrompt))
}

// PromptNotNil applies the NotNil predicate on the "prompt" field.
func PromptNotNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotNull(FieldPrompt))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContainsFold(FieldPrompt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldContainsFold(FieldResult, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotNull(FieldCompletedAt))
}

// ToolCallCountEQ applies the EQ predicate on the "tool_call_count" field.
func ToolCallCountEQ(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldToolCallCount, v))
}

// ToolCallCountNEQ applies the NEQ predicate on the "tool_call_count" field.
func ToolCallCountNEQ(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldToolCallCount, v))
}

// ToolCallCountIn applies the In predicate on the "tool_call_count" field.
func ToolCallCountIn(vs ...int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldToolCallCount, vs...))
}

// ToolCallCountNotIn applies the NotIn predicate on the "tool_call_count" field.
func ToolCallCountNotIn(vs ...int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldToolCallCount, vs...))
}

// ToolCallCountGT applies the GT predicate on the "tool_call_count" field.
func ToolCallCountGT(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldToolCallCount, v))
}

// ToolCallCountGTE applies the GTE predicate on the "tool_call_count" field.
func ToolCallCountGTE(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldToolCallCount, v))
}

// ToolCallCountLT applies the LT predicate on the "tool_call_count" field.
func ToolCallCountLT(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldToolCallCount, v))
}

// ToolCallCountLTE applies the LTE predicate on the "tool_call_count" field.
func ToolCallCountLTE(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldToolCallCount, v))
}

// SubagentCountEQ applies the EQ predicate on the "subagent_count" field.
func SubagentCountEQ(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldSubagentCount, v))
}

// SubagentCountNEQ applies the NEQ predicate on the "subagent_count" field.
func SubagentCountNEQ(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldSubagentCount, v))
}

// SubagentCountIn applies the In predicate on the "subagent_count" field.
func SubagentCountIn(vs ...int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldSubagentCount, vs...))
}

// SubagentCountNotIn applies the NotIn predicate on the "subagent_count" field.
func SubagentCountNotIn(vs ...int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldSubagentCount, vs...))
}

// SubagentCountGT applies the GT predicate on the "subagent_count" field.
func SubagentCountGT(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldSubagentCount, v))
}

// SubagentCountGTE applies the GTE predicate on the "subagent_count" field.
func SubagentCountGTE(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldSubagentCount, v))
}

// SubagentCountLT applies the LT predicate on the "subagent_count" field.
func SubagentCountLT(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldSubagentCount, v))
}

// SubagentCountLTE applies the LTE predicate on the "subagent_count" field.
func SubagentCountLTE(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldSubagentCount, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldTotalTokens, v))
}

// LastEventAtEQ applies the EQ predicate on the "last_event_at" field.
func LastEventAtEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldLastEventAt, v))
}

// LastEventAtNEQ applies the NEQ predicate on the "last_event_at" field.
func LastEventAtNEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldLastEventAt, v))
}

// LastEventAtIn applies the In predicate on the "last_event_at" field.
func LastEventAtIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldLastEventAt, vs...))
}

// LastEventAtNotIn applies the NotIn predicate on the "last_event_at" field.
func LastEventAtNotIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldLastEventAt, vs...))
}

// LastEventAtGT applies the GT predicate on the "last_event_at" field.
func LastEventAtGT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldLastEventAt, v))
}

// LastEventAtGTE applies the GTE predicate on the "last_event_at" field.
func LastEventAtGTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldLastEventAt, v))
}

// LastEventAtLT applies the LT predicate on the "last_event_at" field.
func LastEventAtLT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldLastEventAt, v))
}

// LastEventAtLTE applies the LTE predicate on the "last_event_at" field.
func LastEventAtLTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldLastEventAt, v))
}

// LastEventAtIsNil applies the IsNil predicate on the "last_event_at" field.
func LastEventAtIsNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIsNull(FieldLastEventAt))
}

// LastEventAtNotNil applies the NotNil predicate on the "last_event_at" field.
func LastEventAtNotNil() predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotNull(FieldLastEventAt))
}

// ExitForcedEQ applies the EQ predicate on the "exit_forced" field.
func ExitForcedEQ(v bool) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldExitForced, v))
}

// ExitForcedNEQ applies the NEQ predicate on the "exit_forced" field.
func ExitForcedNEQ(v bool) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldExitForced, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChatJob {
	return predicate.ChatJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasThread applies the HasEdge predicate on the "thread" edge.
func HasThread() predicate.ChatJob {
	return predicate.ChatJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ThreadTable, ThreadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThreadWith applies the HasEdge predicate on the "thread" edge with a given conditions (other predicates).
func HasThreadWith(preds ...predicate.ChatThread) predicate.ChatJob {
	return predicate.ChatJob(func(s *sql.Selector) {
		step := newThreadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNamespace applies the HasEdge predicate on the "namespace" edge.
func HasNamespace() predicate.ChatJob {
	return predicate.ChatJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NamespaceTable, NamespaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNamespaceWith applies the HasEdge predicate on the "namespace" edge with a given conditions (other predicates).
func HasNamespaceWith(preds ...predicate.Namespace) predicate.ChatJob {
	return predicate.ChatJob(func(s *sql.Selector) {
		step := newNamespaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatJob) predicate.ChatJob {
	return predicate.ChatJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatJob) predicate.ChatJob {
	return predicate.ChatJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatJob) predicate.ChatJob {
	return predicate.ChatJob(sql.NotPredicates(p))
}
