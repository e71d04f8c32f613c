// Code generated by ent, DO NOT EDIT.

package namespace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Namespace {
	return predicate.Namespace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Namespace {
	return predicate.Namespace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Namespace {
	return predicate.Namespace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Namespace {
	return predicate.Namespace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Namespace {
	return predicate.Namespace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Namespace {
	return predicate.Namespace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Namespace {
	return predicate.Namespace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Namespace {
	return predicate.Namespace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Namespace {
	return predicate.Namespace(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldDescription, v))
}

// PendingCount applies equality check predicate on the "pending_count" field. It's identical to PendingCountEQ.
func PendingCount(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldPendingCount, v))
}

// ActiveCount applies equality check predicate on the "active_count" field. It's identical to ActiveCountEQ.
func ActiveCount(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldActiveCount, v))
}

// BlockedCount applies equality check predicate on the "blocked_count" field. It's identical to BlockedCountEQ.
func BlockedCount(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldBlockedCount, v))
}

// CompleteCount applies equality check predicate on the "complete_count" field. It's identical to CompleteCountEQ.
func CompleteCount(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldCompleteCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Namespace {
	return predicate.Namespace(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Namespace {
	return predicate.Namespace(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Namespace {
	return predicate.Namespace(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Namespace {
	return predicate.Namespace(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Namespace {
	return predicate.Namespace(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Namespace {
	return predicate.Namespace(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Namespace {
	return predicate.Namespace(sql.FieldContainsFold(FieldDescription, v))
}

// PendingCountEQ applies the EQ predicate on the "pending_count" field.
func PendingCountEQ(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldPendingCount, v))
}

// PendingCountNEQ applies the NEQ predicate on the "pending_count" field.
func PendingCountNEQ(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldNEQ(FieldPendingCount, v))
}

// PendingCountIn applies the In predicate on the "pending_count" field.
func PendingCountIn(vs ...int) predicate.Namespace {
	return predicate.Namespace(sql.FieldIn(FieldPendingCount, vs...))
}

// PendingCountNotIn applies the NotIn predicate on the "pending_count" field.
func PendingCountNotIn(vs ...int) predicate.Namespace {
	return predicate.Namespace(sql.FieldNotIn(FieldPendingCount, vs...))
}

// PendingCountGT applies the GT predicate on the "pending_count" field.
func PendingCountGT(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldGT(FieldPendingCount, v))
}

// PendingCountGTE applies the GTE predicate on the "pending_count" field.
func PendingCountGTE(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldGTE(FieldPendingCount, v))
}

// PendingCountLT applies the LT predicate on the "pending_count" field.
func PendingCountLT(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldLT(FieldPendingCount, v))
}

// PendingCountLTE applies the LTE predicate on the "pending_count" field.
func PendingCountLTE(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldLTE(FieldPendingCount, v))
}

// ActiveCountEQ applies the EQ predicate on the "active_count" field.
func ActiveCountEQ(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldActiveCount, v))
}

// ActiveCountNEQ applies the NEQ predicate on the "active_count" field.
func ActiveCountNEQ(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldNEQ(FieldActiveCount, v))
}

// ActiveCountIn applies the In predicate on the "active_count" field.
func ActiveCountIn(vs ...int) predicate.Namespace {
	return predicate.Namespace(sql.FieldIn(FieldActiveCount, vs...))
}

// ActiveCountNotIn applies the NotIn predicate on the "active_count" field.
func ActiveCountNotIn(vs ...int) predicate.Namespace {
	return predicate.Namespace(sql.FieldNotIn(FieldActiveCount, vs...))
}

// ActiveCountGT applies the GT predicate on the "active_count" field.
func ActiveCountGT(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldGT(FieldActiveCount, v))
}

// ActiveCountGTE applies the GTE predicate on the "active_count" field.
func ActiveCountGTE(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldGTE(FieldActiveCount, v))
}

// ActiveCountLT applies the LT predicate on the "active_count" field.
func ActiveCountLT(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldLT(FieldActiveCount, v))
}

// ActiveCountLTE applies the LTE predicate on the "active_count" field.
func ActiveCountLTE(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldLTE(FieldActiveCount, v))
}

// BlockedCountEQ applies the EQ predicate on the "blocked_count" field.
func BlockedCountEQ(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldBlockedCount, v))
}

// BlockedCountNEQ applies the NEQ predicate on the "blocked_count" field.
func BlockedCountNEQ(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldNEQ(FieldBlockedCount, v))
}

// BlockedCountIn applies the In predicate on the "blocked_count" field.
func BlockedCountIn(vs ...int) predicate.Namespace {
	return predicate.Namespace(sql.FieldIn(FieldBlockedCount, vs...))
}

// BlockedCountNotIn applies the NotIn predicate on the "blocked_count" field.
func BlockedCountNotIn(vs ...int) predicate.Namespace {
	return predicate.Namespace(sql.FieldNotIn(FieldBlockedCount, vs...))
}

// BlockedCountGT applies the GT predicate on the "blocked_count" field.
func BlockedCountGT(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldGT(FieldBlockedCount, v))
}

// BlockedCountGTE applies the GTE predicate on the "blocked_count" field.
func BlockedCountGTE(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldGTE(FieldBlockedCount, v))
}

// BlockedCountLT applies the LT predicate on the "blocked_count" field.
func BlockedCountLT(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldLT(FieldBlockedCount, v))
}

// BlockedCountLTE applies the LTE predicate on the "blocked_count" field.
func BlockedCountLTE(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldLTE(FieldBlockedCount, v))
}

// CompleteCountEQ applies the EQ predicate on the "complete_count" field.
func CompleteCountEQ(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldCompleteCount, v))
}

// CompleteCountNEQ applies the NEQ predicate on the "complete_count" field.
func CompleteCountNEQ(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldNEQ(FieldCompleteCount, v))
}

// CompleteCountIn applies the In predicate on the "complete_count" field.
func CompleteCountIn(vs ...int) predicate.Namespace {
	return predicate.Namespace(sql.FieldIn(FieldCompleteCount, vs...))
}

// CompleteCountNotIn applies the NotIn predicate on the "complete_count" field.
func CompleteCountNotIn(vs ...int) predicate.Namespace {
	return predicate.Namespace(sql.FieldNotIn(FieldCompleteCount, vs...))
}

// CompleteCountGT applies the GT predicate on the "complete_count" field.
func CompleteCountGT(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldGT(FieldCompleteCount, v))
}

// CompleteCountGTE applies the GTE predicate on the "complete_count" field.
func CompleteCountGTE(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldGTE(FieldCompleteCount, v))
}

// CompleteCountLT applies the LT predicate on the "complete_count" field.
func CompleteCountLT(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldLT(FieldCompleteCount, v))
}

// CompleteCountLTE applies the LTE predicate on the "complete_count" field.
func CompleteCountLTE(v int) predicate.Namespace {
	return predicate.Namespace(sql.FieldLTE(FieldCompleteCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Namespace {
	return predicate.Namespace(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAssignments applies the HasEdge predicate on the "assignments" edge.
func HasAssignments() predicate.Namespace {
	return predicate.Namespace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentsWith applies the HasEdge predicate on the "assignments" edge with a given conditions (other predicates).
func HasAssignmentsWith(preds ...predicate.Assignment) predicate.Namespace {
	return predicate.Namespace(func(s *sql.Selector) {
		step := newAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatThreads applies the HasEdge predicate on the "chat_threads" edge.
func HasChatThreads() predicate.Namespace {
	return predicate.Namespace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatThreadsTable, ChatThreadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatThreadsWith applies the HasEdge predicate on the "chat_threads" edge with a given conditions (other predicates).
func HasChatThreadsWith(preds ...predicate.ChatThread) predicate.Namespace {
	return predicate.Namespace(func(s *sql.Selector) {
		step := newChatThreadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatJobs applies the HasEdge predicate on the "chat_jobs" edge.
func HasChatJobs() predicate.Namespace {
	return predicate.Namespace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatJobsTable, ChatJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatJobsWith applies the HasEdge predicate on the "chat_jobs" edge with a given conditions (other predicates).
func HasChatJobsWith(preds ...predicate.ChatJob) predicate.Namespace {
	return predicate.Namespace(func(s *sql.Selector) {
		step := newChatJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Namespace) predicate.Namespace {
	return predicate.Namespace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Namespace) predicate.Namespace {
	return predicate.Namespace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Namespace) predicate.Namespace {
	return predicate.Namespace(sql.NotPredicates(p))
}
