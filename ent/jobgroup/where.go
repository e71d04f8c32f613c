// Code generated by ent, DO NOT EDIT.

package jobgroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldContainsFold(FieldID, id))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldAssignmentID, v))
}

// NextGroupID applies equality check predicate on the "next_group_id" field. It's identical to NextGroupIDEQ.
func NextGroupID(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldNextGroupID, v))
}

// AggregatedResult applies equality check predicate on the "aggregated_result" field. It's identical to AggregatedResultEQ.
func AggregatedResult(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldAggregatedResult, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldContainsFold(FieldAssignmentID, v))
}

// NextGroupIDEQ applies the EQ predicate on the "next_group_id" field.
func NextGroupIDEQ(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldNextGroupID, v))
}

// NextGroupIDNEQ applies the NEQ predicate on the "next_group_id" field.
func NextGroupIDNEQ(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNEQ(FieldNextGroupID, v))
}

// NextGroupIDIn applies the In predicate on the "next_group_id" field.
func NextGroupIDIn(vs ...string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldIn(FieldNextGroupID, vs...))
}

// NextGroupIDNotIn applies the NotIn predicate on the "next_group_id" field.
func NextGroupIDNotIn(vs ...string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNotIn(FieldNextGroupID, vs...))
}

// NextGroupIDGT applies the GT predicate on the "next_group_id" field.
func NextGroupIDGT(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGT(FieldNextGroupID, v))
}

// NextGroupIDGTE applies the GTE predicate on the "next_group_id" field.
func NextGroupIDGTE(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGTE(FieldNextGroupID, v))
}

// NextGroupIDLT applies the LT predicate on the "next_group_id" field.
func NextGroupIDLT(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLT(FieldNextGroupID, v))
}

// NextGroupIDLTE applies the LTE predicate on the "next_group_id" field.
func NextGroupIDLTE(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLTE(FieldNextGroupID, v))
}

// NextGroupIDContains applies the Contains predicate on the "next_group_id" field.
func NextGroupIDContains(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldContains(FieldNextGroupID, v))
}

// NextGroupIDHasPrefix applies the HasPrefix predicate on the "next_group_id" field.
func NextGroupIDHasPrefix(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldHasPrefix(FieldNextGroupID, v))
}

// NextGroupIDHasSuffix applies the HasSuffix predicate on the "next_group_id" field.
func NextGroupIDHasSuffix(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldHasSuffix(FieldNextGroupID, v))
}

// NextGroupIDIsNil applies the IsNil predicate on the "next_group_id" field.
func NextGroupIDIsNil() predicate.JobGroup {
	return predicate.JobGroup(sql.FieldIsNull(FieldNextGroupID))
}

// NextGroupIDNotNil applies the NotNil predicate on the "next_group_id" field.
func NextGroupIDNotNil() predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNotNull(FieldNextGroupID))
}

// NextGroupIDEqualFold applies the EqualFold predicate on the "next_group_id" field.
func NextGroupIDEqualFold(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEqualFold(FieldNextGroupID, v))
}

// NextGroupIDContainsFold applies the ContainsFold predicate on the "next_group_id" field.
func NextGroupIDContainsFold(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldContainsFold(FieldNextGroupID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNotIn(FieldStatus, vs...))
}

// AggregatedResultEQ applies the EQ predicate on the "aggregated_result" field.
func AggregatedResultEQ(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldAggregatedResult, v))
}

// AggregatedResultNEQ applies the NEQ predicate on the "aggregated_result" field.
func AggregatedResultNEQ(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNEQ(FieldAggregatedResult, v))
}

// AggregatedResultIn applies the In predicate on the "aggregated_result" field.
func AggregatedResultIn(vs ...string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldIn(FieldAggregatedResult, vs...))
}

// AggregatedResultNotIn applies the NotIn predicate on the "aggregated_result" field.
func AggregatedResultNotIn(vs ...string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNotIn(FieldAggregatedResult, vs...))
}

// AggregatedResultGT applies the GT predicate on the "aggregated_result" field.
func AggregatedResultGT(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGT(FieldAggregatedResult, v))
}

// AggregatedResultGTE applies the GTE predicate on the "aggregated_result" field.
func AggregatedResultGTE(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGTE(FieldAggregatedResult, v))
}

// AggregatedResultLT applies the LT predicate on the "aggregated_result" field.
func AggregatedResultLT(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLT(FieldAggregatedResult, v))
}

// AggregatedResultLTE applies the LTE predicate on the "aggregated_result" field.
func AggregatedResultLTE(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLTE(FieldAggregatedResult, v))
}

// AggregatedResultContains applies the Contains predicate on the "aggregated_result" field.
func AggregatedResultContains(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldContains(FieldAggregatedResult, v))
}

// AggregatedResultHasPrefix applies the HasPrefix predicate on the "aggregated_result" field.
func AggregatedResultHasPrefix(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldHasPrefix(FieldAggregatedResult, v))
}

// AggregatedResultHasSuffix applies the HasSuffix predicate on the "aggregated_result" field.
func AggregatedResultHasSuffix(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldHasSuffix(FieldAggregatedResult, v))
}

// AggregatedResultIsNil applies the IsNil predicate on the "aggregated_result" field.
func AggregatedResultIsNil() predicate.JobGroup {
	return predicate.JobGroup(sql.FieldIsNull(FieldAggregatedResult))
}

// AggregatedResultNotNil applies the NotNil predicate on the "aggregated_result" field.
func AggregatedResultNotNil() predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNotNull(FieldAggregatedResult))
}

// AggregatedResultEqualFold applies the EqualFold predicate on the "aggregated_result" field.
func AggregatedResultEqualFold(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEqualFold(FieldAggregatedResult, v))
}

// AggregatedResultContainsFold applies the ContainsFold predicate on the "aggregated_result" field.
func AggregatedResultContainsFold(v string) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldContainsFold(FieldAggregatedResult, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.JobGroup {
	return predicate.JobGroup(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAssignment applies the HasEdge predicate on the "assignment" edge.
func HasAssignment() predicate.JobGroup {
	return predicate.JobGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssignmentTable, AssignmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentWith applies the HasEdge predicate on the "assignment" edge with a given conditions (other predicates).
func HasAssignmentWith(preds ...predicate.Assignment) predicate.JobGroup {
	return predicate.JobGroup(func(s *sql.Selector) {
		step := newAssignmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.JobGroup {
	return predicate.JobGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.Job) predicate.JobGroup {
	return predicate.JobGroup(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobGroup) predicate.JobGroup {
	return predicate.JobGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobGroup) predicate.JobGroup {
	return predicate.JobGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobGroup) predicate.JobGroup {
	return predicate.JobGroup(sql.NotPredicates(p))
}
