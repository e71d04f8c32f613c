// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dirigent-io/dirigent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldID, id))
}

// NamespaceID applies equality check predicate on the "namespace_id" field. It's identical to NamespaceIDEQ.
func NamespaceID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNamespaceID, v))
}

// NorthStar applies equality check predicate on the "north_star" field. It's identical to NorthStarEQ.
func NorthStar(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNorthStar, v))
}

// Independent applies equality check predicate on the "independent" field. It's identical to IndependentEQ.
func Independent(v bool) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldIndependent, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPriority, v))
}

// Artifacts applies equality check predicate on the "artifacts" field. It's identical to ArtifactsEQ.
func Artifacts(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldArtifacts, v))
}

// Decisions applies equality check predicate on the "decisions" field. It's identical to DecisionsEQ.
func Decisions(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDecisions, v))
}

// BlockedReason applies equality check predicate on the "blocked_reason" field. It's identical to BlockedReasonEQ.
func BlockedReason(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldBlockedReason, v))
}

// HeadGroupID applies equality check predicate on the "head_group_id" field. It's identical to HeadGroupIDEQ.
func HeadGroupID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldHeadGroupID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// NamespaceIDEQ applies the EQ predicate on the "namespace_id" field.
func NamespaceIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNamespaceID, v))
}

// NamespaceIDNEQ applies the NEQ predicate on the "namespace_id" field.
func NamespaceIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldNamespaceID, v))
}

// NamespaceIDIn applies the In predicate on the "namespace_id" field.
func NamespaceIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldNamespaceID, vs...))
}

// NamespaceIDNotIn applies the NotIn predicate on the "namespace_id" field.
func NamespaceIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldNamespaceID, vs...))
}

// NamespaceIDGT applies the GT predicate on the "namespace_id" field.
func NamespaceIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldNamespaceID, v))
}

// NamespaceIDGTE applies the GTE predicate on the "namespace_id" field.
func NamespaceIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldNamespaceID, v))
}

// NamespaceIDLT applies the LT predicate on the "namespace_id" field.
func NamespaceIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldNamespaceID, v))
}

// NamespaceIDLTE applies the LTE predicate on the "namespace_id" field.
func NamespaceIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldNamespaceID, v))
}

// NamespaceIDContains applies the Contains predicate on the "namespace_id" field.
func NamespaceIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldNamespaceID, v))
}

// NamespaceIDHasPrefix applies the HasPrefix predicate on the "namespace_id" field.
func NamespaceIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldNamespaceID, v))
}

// NamespaceIDHasSuffix applies the HasSuffix predicate on the "namespace_id" field.
func NamespaceIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldNamespaceID, v))
}

// NamespaceIDEqualFold applies the EqualFold predicate on the "namespace_id" field.
func NamespaceIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldNamespaceID, v))
}

// NamespaceIDContainsFold applies the ContainsFold predicate on the "namespace_id" field.
func NamespaceIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldNamespaceID, v))
}

// NorthStarEQ applies the EQ predicate on the "north_star" field.
func NorthStarEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNorthStar, v))
}

// NorthStarNEQ applies the NEQ predicate on the "north_star" field.
func NorthStarNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldNorthStar, v))
}

// NorthStarIn applies the In predicate on the "north_star" field.
func NorthStarIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldNorthStar, vs...))
}

// NorthStarNotIn applies the NotIn predicate on the "north_star" field.
func NorthStarNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldNorthStar, vs...))
}

// NorthStarGT applies the GT predicate on the "north_star" field.
func NorthStarGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldNorthStar, v))
}

// NorthStarGTE applies the GTE predicate on the "north_star" field.
func NorthStarGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldNorthStar, v))
}

// NorthStarLT applies the LT predicate on the "north_star" field.
func NorthStarLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldNorthStar, v))
}

// NorthStarLTE applies the LTE predicate on the "north_star" field.
func NorthStarLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldNorthStar, v))
}

// NorthStarContains applies the Contains predicate on the "north_star" field.
func NorthStarContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldNorthStar, v))
}

// NorthStarHasPrefix applies the HasPrefix predicate on the "north_star" field.
func NorthStarHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldNorthStar, v))
}

// NorthStarHasSuffix applies the HasSuffix predicate on the "north_star" field.
func NorthStarHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldNorthStar, v))
}

// NorthStarEqualFold applies the EqualFold predicate on the "north_star" field.
func NorthStarEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldNorthStar, v))
}

// NorthStarContainsFold applies the ContainsFold predicate on the "north_star" field.
func NorthStarContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldNorthStar, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldStatus, vs...))
}

// IndependentEQ applies the EQ predicate on the "independent" field.
func IndependentEQ(v bool) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldIndependent, v))
}

// IndependentNEQ applies the NEQ predicate on the "independent" field.
func IndependentNEQ(v bool) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldIndependent, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldPriority, v))
}

// ArtifactsEQ applies the EQ predicate on the "artifacts" field.
func ArtifactsEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldArtifacts, v))
}

// ArtifactsNEQ applies the NEQ predicate on the "artifacts" field.
func ArtifactsNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldArtifacts, v))
}

// ArtifactsIn applies the In predicate on the "artifacts" field.
func ArtifactsIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldArtifacts, vs...))
}

// ArtifactsNotIn applies the NotIn predicate on the "artifacts" field.
func ArtifactsNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldArtifacts, vs...))
}

// ArtifactsGT applies the GT predicate on the "artifacts" field.
func ArtifactsGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldArtifacts, v))
}

// ArtifactsGTE applies the GTE predicate on the "artifacts" field.
func ArtifactsGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldArtifacts, v))
}

// ArtifactsLT applies the LT predicate on the "artifacts" field.
func ArtifactsLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldArtifacts, v))
}

// ArtifactsLTE applies the LTE predicate on the "artifacts" field.
func ArtifactsLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldArtifacts, v))
}

// ArtifactsContains applies the Contains predicate on the "artifacts" field.
func ArtifactsContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldArtifacts, v))
}

// ArtifactsHasPrefix applies the HasPrefix predicate on the "artifacts" field.
func ArtifactsHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldArtifacts, v))
}

// ArtifactsHasSuffix applies the HasSuffix predicate on the "artifacts" field.
func ArtifactsHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldArtifacts, v))
}

// ArtifactsIsNil applies the IsNil predicate on the "artifacts" field.
func ArtifactsIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldArtifacts))
}

// ArtifactsNotNil applies the NotNil predicate on the "artifacts" field.
func ArtifactsNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldArtifacts))
}

// ArtifactsEqualFold applies the EqualFold predicate on the "artifacts" field.
func ArtifactsEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldArtifacts, v))
}

// ArtifactsContainsFold applies the ContainsFold predicate on the "artifacts" field.
func ArtifactsContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldArtifacts, v))
}

// DecisionsEQ applies the EQ predicate on the "decisions" field.
func DecisionsEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDecisions, v))
}

// DecisionsNEQ applies the NEQ predicate on the "decisions" field.
func DecisionsNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldDecisions, v))
}

// DecisionsIn applies the In predicate on the "decisions" field.
func DecisionsIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldDecisions, vs...))
}

// DecisionsNotIn applies the NotIn predicate on the "decisions" field.
func DecisionsNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldDecisions, vs...))
}

// DecisionsGT applies the GT predicate on the "decisions" field.
func DecisionsGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldDecisions, v))
}

// DecisionsGTE applies the GTE predicate on the "decisions" field.
func DecisionsGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldDecisions, v))
}

// DecisionsLT applies the LT predicate on the "decisions" field.
func DecisionsLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldDecisions, v))
}

// DecisionsLTE applies the LTE predicate on the "decisions" field.
func DecisionsLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldDecisions, v))
}

// DecisionsContains applies the Contains predicate on the "decisions" field.
func DecisionsContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldDecisions, v))
}

// DecisionsHasPrefix applies the HasPrefix predicate on the "decisions" field.
func DecisionsHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldDecisions, v))
}

// DecisionsHasSuffix applies the HasSuffix predicate on the "decisions" field.
func DecisionsHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldDecisions, v))
}

// DecisionsIsNil applies the IsNil predicate on the "decisions" field.
func DecisionsIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldDecisions))
}

// DecisionsNotNil applies the NotNil predicate on the "decisions" field.
func DecisionsNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldDecisions))
}

// DecisionsEqualFold applies the EqualFold predicate on the "decisions" field.
func DecisionsEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldDecisions, v))
}

// DecisionsContainsFold applies the ContainsFold predicate on the "decisions" field.
func DecisionsContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldDecisions, v))
}

// BlockedReasonEQ applies the EQ predicate on the "blocked_reason" field.
func BlockedReasonEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldBlockedReason, v))
}

// BlockedReasonNEQ applies the NEQ predicate on the "blocked_reason" field.
func BlockedReasonNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldBlockedReason, v))
}

// BlockedReasonIn applies the In predicate on the "blocked_reason" field.
func BlockedReasonIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldBlockedReason, vs...))
}

// BlockedReasonNotIn applies the NotIn predicate on the "blocked_reason" field.
func BlockedReasonNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldBlockedReason, vs...))
}

// BlockedReasonGT applies the GT predicate on the "blocked_reason" field.
func BlockedReasonGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldBlockedReason, v))
}

// BlockedReasonGTE applies the GTE predicate on the "blocked_reason" field.
func BlockedReasonGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldBlockedReason, v))
}

// BlockedReasonLT applies the LT predicate on the "blocked_reason" field.
func BlockedReasonLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldBlockedReason, v))
}

// BlockedReasonLTE applies the LTE predicate on the "blocked_reason" field.
func BlockedReasonLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldBlockedReason, v))
}

// BlockedReasonContains applies the Contains predicate on the "blocked_reason" field.
func BlockedReasonContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldBlockedReason, v))
}

// BlockedReasonHasPrefix applies the HasPrefix predicate on the "blocked_reason" field.
func BlockedReasonHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldBlockedReason, v))
}

// BlockedReasonHasSuffix applies the HasSuffix predicate on the "blocked_reason" field.
func BlockedReasonHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldBlockedReason, v))
}

// BlockedReasonIsNil applies the IsNil predicate on the "blocked_reason" field.
func BlockedReasonIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldBlockedReason))
}

// BlockedReasonNotNil applies the NotNil predicate on the "blocked_reason" field.
func BlockedReasonNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldBlockedReason))
}

// BlockedReasonEqualFold applies the EqualFold predicate on the "blocked_reason" field.
func BlockedReasonEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldBlockedReason, v))
}

// BlockedReasonContainsFold applies the ContainsFold predicate on the "blocked_reason" field.
func BlockedReasonContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldBlockedReason, v))
}

// AlignmentStatusEQ applies the EQ predicate on the "alignment_status" field.
func AlignmentStatusEQ(v AlignmentStatus) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAlignmentStatus, v))
}

// AlignmentStatusNEQ applies the NEQ predicate on the "alignment_status" field.
func AlignmentStatusNEQ(v AlignmentStatus) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAlignmentStatus, v))
}

// AlignmentStatusIn applies the In predicate on the "alignment_status" field.
func AlignmentStatusIn(vs ...AlignmentStatus) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAlignmentStatus, vs...))
}

// AlignmentStatusNotIn applies the NotIn predicate on the "alignment_status" field.
func AlignmentStatusNotIn(vs ...AlignmentStatus) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAlignmentStatus, vs...))
}

// AlignmentStatusIsNil applies the IsNil predicate on the "alignment_status" field.
func AlignmentStatusIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldAlignmentStatus))
}

// AlignmentStatusNotNil applies the NotNil predicate on the "alignment_status" field.
func AlignmentStatusNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldAlignmentStatus))
}

// HeadGroupIDEQ applies the EQ predicate on the "head_group_id" field.
func HeadGroupIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldHeadGroupID, v))
}

// HeadGroupIDNEQ applies the NEQ predicate on the "head_group_id" field.
func HeadGroupIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldHeadGroupID, v))
}

// HeadGroupIDIn applies the In predicate on the "head_group_id" field.
func HeadGroupIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldHeadGroupID, vs...))
}

// HeadGroupIDNotIn applies the NotIn predicate on the "head_group_id" field.
func HeadGroupIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldHeadGroupID, vs...))
}

// HeadGroupIDGT applies the GT predicate on the "head_group_id" field.
func HeadGroupIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldHeadGroupID, v))
}

// HeadGroupIDGTE applies the GTE predicate on the "head_group_id" field.
func HeadGroupIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldHeadGroupID, v))
}

// HeadGroupIDLT applies the LT predicate on the "head_group_id" field.
func HeadGroupIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldHeadGroupID, v))
}

// HeadGroupIDLTE applies the LTE predicate on the "head_group_id" field.
func HeadGroupIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldHeadGroupID, v))
}

// HeadGroupIDContains applies the Contains predicate on the "head_group_id" field.
func HeadGroupIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldHeadGroupID, v))
}

// HeadGroupIDHasPrefix applies the HasPrefix predicate on the "head_group_id" field.
func HeadGroupIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldHeadGroupID, v))
}

// HeadGroupIDHasSuffix applies the HasSuffix predicate on the "head_group_id" field.
func HeadGroupIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldHeadGroupID, v))
}

// HeadGroupIDIsNil applies the IsNil predicate on the "head_group_id" field.
func HeadGroupIDIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldHeadGroupID))
}

// HeadGroupIDNotNil applies the NotNil predicate on the "head_group_id" field.
func HeadGroupIDNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldHeadGroupID))
}

// HeadGroupIDEqualFold applies the EqualFold predicate on the "head_group_id" field.
func HeadGroupIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldHeadGroupID, v))
}

// HeadGroupIDContainsFold applies the ContainsFold predicate on the "head_group_id" field.
func HeadGroupIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldHeadGroupID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasNamespace applies the HasEdge predicate on the "namespace" edge.
func HasNamespace() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NamespaceTable, NamespaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNamespaceWith applies the HasEdge predicate on the "namespace" edge with a given conditions (other predicates).
func HasNamespaceWith(preds ...predicate.Namespace) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newNamespaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGroups applies the HasEdge predicate on the "groups" edge.
func HasGroups() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GroupsTable, GroupsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupsWith applies the HasEdge predicate on the "groups" edge with a given conditions (other predicates).
func HasGroupsWith(preds ...predicate.JobGroup) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newGroupsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatThreads applies the HasEdge predicate on the "chat_threads" edge.
func HasChatThreads() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatThreadsTable, ChatThreadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatThreadsWith applies the HasEdge predicate on the "chat_threads" edge with a given conditions (other predicates).
func HasChatThreadsWith(preds ...predicate.ChatThread) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newChatThreadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.NotPredicates(p))
}
