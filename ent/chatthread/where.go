// Code generated by ent, DO NOT EDIT.

package chatthread

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldContainsFold(FieldID, id))
}

// NamespaceID applies equality check predicate on the "namespace_id" field. It's identical to NamespaceIDEQ.
func NamespaceID(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldNamespaceID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldTitle, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldAssignmentID, v))
}

// ClaudeSessionID applies equality check predicate on the "claude_session_id" field. It's identical to ClaudeSessionIDEQ.
func ClaudeSessionID(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldClaudeSessionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldUpdatedAt, v))
}

// NamespaceIDEQ applies the EQ predicate on the "namespace_id" field.
func NamespaceIDEQ(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldNamespaceID, v))
}

// NamespaceIDNEQ applies the NEQ predicate on the "namespace_id" field.
func NamespaceIDNEQ(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNEQ(FieldNamespaceID, v))
}

// NamespaceIDIn applies the In predicate on the "namespace_id" field.
func NamespaceIDIn(vs ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIn(FieldNamespaceID, vs...))
}

// NamespaceIDNotIn applies the NotIn predicate on the "namespace_id" field.
func NamespaceIDNotIn(vs ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotIn(FieldNamespaceID, vs...))
}

// NamespaceIDGT applies the GT predicate on the "namespace_id" field.
func NamespaceIDGT(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGT(FieldNamespaceID, v))
}

// NamespaceIDGTE applies the GTE predicate on the "namespace_id" field.
func NamespaceIDGTE(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGTE(FieldNamespaceID, v))
}

// NamespaceIDLT applies the LT predicate on the "namespace_id" field.
func NamespaceIDLT(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLT(FieldNamespaceID, v))
}

// NamespaceIDLTE applies the LTE predicate on the "namespace_id" field.
func NamespaceIDLTE(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLTE(FieldNamespaceID, v))
}

// NamespaceIDContains applies the Contains predicate on the "namespace_id" field.
func NamespaceIDContains(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldContains(FieldNamespaceID, v))
}

// NamespaceIDHasPrefix applies the HasPrefix predicate on the "namespace_id" field.
func NamespaceIDHasPrefix(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldHasPrefix(FieldNamespaceID, v))
}

// NamespaceIDHasSuffix applies the HasSuffix predicate on the "namespace_id" field.
func NamespaceIDHasSuffix(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldHasSuffix(FieldNamespaceID, v))
}

// NamespaceIDEqualFold applies the EqualFold predicate on the "namespace_id" field.
func NamespaceIDEqualFold(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEqualFold(FieldNamespaceID, v))
}

// NamespaceIDContainsFold applies the ContainsFold predicate on the "namespace_id" field.
func NamespaceIDContainsFold(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldContainsFold(FieldNamespaceID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldContainsFold(FieldTitle, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotIn(FieldMode, vs...))
}

// LastPromptModeEQ applies the EQ predicate on the "last_prompt_mode" field.
func LastPromptModeEQ(v LastPromptMode) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldLastPromptMode, v))
}

// LastPromptModeNEQ applies the NEQ predicate on the "last_prompt_mode" field.
func LastPromptModeNEQ(v LastPromptMode) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNEQ(FieldLastPromptMode, v))
}

// LastPromptModeIn applies the In predicate on the "last_prompt_mode" field.
func LastPromptModeIn(vs ...LastPromptMode) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIn(FieldLastPromptMode, vs...))
}

// LastPromptModeNotIn applies the NotIn predicate on the "last_prompt_mode" field.
func LastPromptModeNotIn(vs ...LastPromptMode) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotIn(FieldLastPromptMode, vs...))
}

// LastPromptModeIsNil applies the IsNil predicate on the "last_prompt_mode" field.
func LastPromptModeIsNil() predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIsNull(FieldLastPromptMode))
}

// LastPromptModeNotNil applies the NotNil predicate on the "last_prompt_mode" field.
func LastPromptModeNotNil() predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotNull(FieldLastPromptMode))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDIsNil applies the IsNil predicate on the "assignment_id" field.
func AssignmentIDIsNil() predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIsNull(FieldAssignmentID))
}

// AssignmentIDNotNil applies the NotNil predicate on the "assignment_id" field.
func AssignmentIDNotNil() predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotNull(FieldAssignmentID))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldContainsFold(FieldAssignmentID, v))
}

// ClaudeSessionIDEQ applies the EQ predicate on the "claude_session_id" field.
func ClaudeSessionIDEQ(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldClaudeSessionID, v))
}

// ClaudeSessionIDNEQ applies the NEQ predicate on the "claude_session_id" field.
func ClaudeSessionIDNEQ(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNEQ(FieldClaudeSessionID, v))
}

// ClaudeSessionIDIn applies the In predicate on the "claude_session_id" field.
func ClaudeSessionIDIn(vs ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIn(FieldClaudeSessionID, vs...))
}

// ClaudeSessionIDNotIn applies the NotIn predicate on the "claude_session_id" field.
func ClaudeSessionIDNotIn(vs ...string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotIn(FieldClaudeSessionID, vs...))
}

// ClaudeSessionIDGT applies the GT predicate on the "claude_session_id" field.
func ClaudeSessionIDGT(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGT(FieldClaudeSessionID, v))
}

// ClaudeSessionIDGTE applies the GTE predicate on the "claude_session_id" field.
func ClaudeSessionIDGTE(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGTE(FieldClaudeSessionID, v))
}

// ClaudeSessionIDLT applies the LT predicate on the "claude_session_id" field.
func ClaudeSessionIDLT(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLT(FieldClaudeSessionID, v))
}

// ClaudeSessionIDLTE applies the LTE predicate on the "claude_session_id" field.
func ClaudeSessionIDLTE(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLTE(FieldClaudeSessionID, v))
}

// ClaudeSessionIDContains applies the Contains predicate on the "claude_session_id" field.
func ClaudeSessionIDContains(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldContains(FieldClaudeSessionID, v))
}

// ClaudeSessionIDHasPrefix applies the HasPrefix predicate on the "claude_session_id" field.
func ClaudeSessionIDHasPrefix(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldHasPrefix(FieldClaudeSessionID, v))
}

// ClaudeSessionIDHasSuffix applies the HasSuffix predicate on the "claude_session_id" field.
func ClaudeSessionIDHasSuffix(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldHasSuffix(FieldClaudeSessionID, v))
}

// ClaudeSessionIDIsNil applies the IsNil predicate on the "claude_session_id" field.
func ClaudeSessionIDIsNil() predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIsNull(FieldClaudeSessionID))
}

// ClaudeSessionIDNotNil applies the NotNil predicate on the "claude_session_id" field.
func ClaudeSessionIDNotNil() predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotNull(FieldClaudeSessionID))
}

// ClaudeSessionIDEqualFold applies the EqualFold predicate on the "claude_session_id" field.
func ClaudeSessionIDEqualFold(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEqualFold(FieldClaudeSessionID, v))
}

// ClaudeSessionIDContainsFold applies the ContainsFold predicate on the "claude_session_id" field.
func ClaudeSessionIDContainsFold(v string) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldContainsFold(FieldClaudeSessionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChatThread {
	return predicate.ChatThread(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasNamespace applies the HasEdge predicate on the "namespace" edge.
func HasNamespace() predicate.ChatThread {
	return predicate.ChatThread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NamespaceTable, NamespaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNamespaceWith applies the HasEdge predicate on the "namespace" edge with a given conditions (other predicates).
func HasNamespaceWith(preds ...predicate.Namespace) predicate.ChatThread {
	return predicate.ChatThread(func(s *sql.Selector) {
		step := newNamespaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignment applies the HasEdge predicate on the "assignment" edge.
func HasAssignment() predicate.ChatThread {
	return predicate.ChatThread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssignmentTable, AssignmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentWith applies the HasEdge predicate on the "assignment" edge with a given conditions (other predicates).
func HasAssignmentWith(preds ...predicate.Assignment) predicate.ChatThread {
	return predicate.ChatThread(func(s *sql.Selector) {
		step := newAssignmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.ChatThread {
	return predicate.ChatThread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ChatMessage) predicate.ChatThread {
	return predicate.ChatThread(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatJobs applies the HasEdge predicate on the "chat_jobs" edge.
func HasChatJobs() predicate.ChatThread {
	return predicate.ChatThread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatJobsTable, ChatJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatJobsWith applies the HasEdge predicate on the "chat_jobs" edge with a given conditions (other predicates).
func HasChatJobsWith(preds ...predicate.ChatJob) predicate.ChatThread {
	return predicate.ChatThread(func(s *sql.Selector) {
		step := newChatJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatThread) predicate.ChatThread {
	return predicate.ChatThread(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatThread) predicate.ChatThread {
	return predicate.ChatThread(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatThread) predicate.ChatThread {
	return predicate.ChatThread(sql.NotPredicates(p))
}
