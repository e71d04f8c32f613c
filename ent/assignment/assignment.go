// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the assignment type in the database.
	Label = "assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "assignment_id"
	// FieldNamespaceID holds the string denoting the namespace_id field in the database.
	FieldNamespaceID = "namespace_id"
	// FieldNorthStar holds the string denoting the north_star field in the database.
	FieldNorthStar = "north_star"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIndependent holds the string denoting the independent field in the database.
	FieldIndependent = "independent"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldArtifacts holds the string denoting the artifacts field in the database.
	FieldArtifacts = "artifacts"
	// FieldDecisions holds the string denoting the decisions field in the database.
	FieldDecisions = "decisions"
	// FieldBlockedReason holds the string denoting the blocked_reason field in the database.
	FieldBlockedReason = "blocked_reason"
	// FieldAlignmentStatus holds the string denoting the alignment_status field in the database.
	FieldAlignmentStatus = "alignment_status"
	// FieldHeadGroupID holds the string denoting the head_group_id field in the database.
	FieldHeadGroupID = "head_group_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeNamespace holds the string denoting the namespace edge name in mutations.
	EdgeNamespace = "namespace"
	// EdgeGroups holds the string denoting the groups edge name in mutations.
	EdgeGroups = "groups"
	// EdgeChatThreads holds the string denoting the chat_threads edge name in mutations.
	EdgeChatThreads = "chat_threads"
	// NamespaceFieldID holds the string denoting the ID field of the Namespace.
	NamespaceFieldID = "namespace_id"
	// JobGroupFieldID holds the string denoting the ID field of the JobGroup.
	JobGroupFieldID = "group_id"
	// ChatThreadFieldID holds the string denoting the ID field of the ChatThread.
	ChatThreadFieldID = "thread_id"
	// Table holds the table name of the assignment in the database.
	Table = "assignments"
	// NamespaceTable is the table that holds the namespace relation/edge.
	NamespaceTable = "assignments"
	// NamespaceInverseTable is the table name for the Namespace entity.
	// It exists in this package in order to avoid circular dependency with the "namespace" package.
	NamespaceInverseTable = "namespaces"
	// NamespaceColumn is the table column denoting the namespace relation/edge.
	NamespaceColumn = "namespace_id"
	// GroupsTable is the table that holds the groups relation/edge.
	GroupsTable = "job_groups"
	// GroupsInverseTable is the table name for the JobGroup entity.
	// It exists in this package in order to avoid circular dependency with the "jobgroup" package.
	GroupsInverseTable = "job_groups"
	// GroupsColumn is the table column denoting the groups relation/edge.
	GroupsColumn = "assignment_id"
	// ChatThreadsTable is the table that holds the chat_threads relation/edge.
	ChatThreadsTable = "chat_threads"
	// ChatThreadsInverseTable is the table name for the ChatThread entity.
	// It exists in this package in order to avoid circular dependency with the "chatthread" package.
	ChatThreadsInverseTable = "chat_threads"
	// ChatThreadsColumn is the table column denoting the chat_threads relation/edge.
	ChatThreadsColumn = "assignment_id"
)

// Columns holds all SQL columns for assignment fields.
var Columns = []string{
	FieldID,
	FieldNamespaceID,
	FieldNorthStar,
	FieldStatus,
	FieldIndependent,
	FieldPriority,
	FieldArtifacts,
	FieldDecisions,
	FieldBlockedReason,
	FieldAlignmentStatus,
	FieldHeadGroupID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIndependent holds the default value on creation for the "independent" field.
	DefaultIndependent bool
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusBlocked  Status = "blocked"
	StatusComplete Status = "complete"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusActive, StatusBlocked, StatusComplete:
		return nil
	default:
		return fmt.Errorf("assignment: invalid enum value for status field: %q", s)
	}
}

// AlignmentStatus defines the type for the "alignment_status" enum field.
type AlignmentStatus string

// AlignmentStatus values.
const (
	AlignmentStatusAligned    AlignmentStatus = "aligned"
	AlignmentStatusUncertain  AlignmentStatus = "uncertain"
	AlignmentStatusMisaligned AlignmentStatus = "misaligned"
)

func (as AlignmentStatus) String() string {
	return string(as)
}

// AlignmentStatusValidator is a validator for the "alignment_status" field enum values. It is called by the builders before save.
func AlignmentStatusValidator(as AlignmentStatus) error {
	switch as {
	case AlignmentStatusAligned, AlignmentStatusUncertain, AlignmentStatusMisaligned:
		return nil
	default:
		return fmt.Errorf("assignment: invalid enum value for alignment_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the Assignment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNamespaceID orders the results by the namespace_id field.
func ByNamespaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNamespaceID, opts...).ToFunc()
}

// ByNorthStar orders the results by the north_star field.
func ByNorthStar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNorthStar, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIndependent orders the results by the independent field.
func ByIndependent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndependent, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByArtifacts orders the results by the artifacts field.
func ByArtifacts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifacts, opts...).ToFunc()
}

// ByDecisions orders the results by the decisions field.
func ByDecisions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisions, opts...).ToFunc()
}

// ByBlockedReason orders the results by the blocked_reason field.
func ByBlockedReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockedReason, opts...).ToFunc()
}

// ByAlignmentStatus orders the results by the alignment_status field.
func ByAlignmentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlignmentStatus, opts...).ToFunc()
}

// ByHeadGroupID orders the results by the head_group_id field.
func ByHeadGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeadGroupID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByNamespaceField orders the results by namespace field.
func ByNamespaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNamespaceStep(), sql.OrderByField(field, opts...))
	}
}

// ByGroupsCount orders the results by groups count.
func ByGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGroupsStep(), opts...)
	}
}

// ByGroups orders the results by groups terms.
func ByGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatThreadsCount orders the results by chat_threads count.
func ByChatThreadsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatThreadsStep(), opts...)
	}
}

// ByChatThreads orders the results by chat_threads terms.
func ByChatThreads(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatThreadsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNamespaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NamespaceInverseTable, NamespaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, NamespaceTable, NamespaceColumn),
	)
}
func newGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupsInverseTable, JobGroupFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GroupsTable, GroupsColumn),
	)
}
func newChatThreadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatThreadsInverseTable, ChatThreadFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatThreadsTable, ChatThreadsColumn),
	)
}
