// Code generated by ent, DO NOT EDIT.

package namespace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the namespace type in the database.
	Label = "namespace"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "namespace_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPendingCount holds the string denoting the pending_count field in the database.
	FieldPendingCount = "pending_count"
	// FieldActiveCount holds the string denoting the active_count field in the database.
	FieldActiveCount = "active_count"
	// FieldBlockedCount holds the string denoting the blocked_count field in the database.
	FieldBlockedCount = "blocked_count"
	// FieldCompleteCount holds the string denoting the complete_count field in the database.
	FieldCompleteCount = "complete_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// EdgeChatThreads holds the string denoting the chat_threads edge name in mutations.
	EdgeChatThreads = "chat_threads"
	// EdgeChatJobs holds the string denoting the chat_jobs edge name in mutations.
	EdgeChatJobs = "chat_jobs"
	// AssignmentFieldID holds the string denoting the ID field of the Assignment.
	AssignmentFieldID = "assignment_id"
	// ChatThreadFieldID holds the string denoting the ID field of the ChatThread.
	ChatThreadFieldID = "thread_id"
	// ChatJobFieldID holds the string denoting the ID field of the ChatJob.
	ChatJobFieldID = "chat_job_id"
	// Table holds the table name of the namespace in the database.
	Table = "namespaces"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "assignments"
	// AssignmentsInverseTable is the table name for the Assignment entity.
	// It exists in this package in order to avoid circular dependency with the "assignment" package.
	AssignmentsInverseTable = "assignments"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "namespace_id"
	// ChatThreadsTable is the table that holds the chat_threads relation/edge.
	ChatThreadsTable = "chat_threads"
	// ChatThreadsInverseTable is the table name for the ChatThread entity.
	// It exists in this package in order to avoid circular dependency with the "chatthread" package.
	ChatThreadsInverseTable = "chat_threads"
	// ChatThreadsColumn is the table column denoting the chat_threads relation/edge.
	ChatThreadsColumn = "namespace_id"
	// ChatJobsTable is the table that holds the chat_jobs relation/edge.
	ChatJobsTable = "chat_jobs"
	// ChatJobsInverseTable is the table name for the ChatJob entity.
	// It exists in this package in order to avoid circular dependency with the "chatjob" package.
	ChatJobsInverseTable = "chat_jobs"
	// ChatJobsColumn is the table column denoting the chat_jobs relation/edge.
	ChatJobsColumn = "namespace_id"
)

// Columns holds all SQL columns for namespace fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldPendingCount,
	FieldActiveCount,
	FieldBlockedCount,
	FieldCompleteCount,
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
	// DefaultPendingCount holds the default value on creation for the "pending_count" field.
	DefaultPendingCount int
	// DefaultActiveCount holds the default value on creation for the "active_count" field.
	DefaultActiveCount int
	// DefaultBlockedCount holds the default value on creation for the "blocked_count" field.
	DefaultBlockedCount int
	// DefaultCompleteCount holds the default value on creation for the "complete_count" field.
	DefaultCompleteCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Namespace queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPendingCount orders the results by the pending_count field.
func ByPendingCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingCount, opts...).ToFunc()
}

// ByActiveCount orders the results by the active_count field.
func ByActiveCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveCount, opts...).ToFunc()
}

// ByBlockedCount orders the results by the blocked_count field.
func ByBlockedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockedCount, opts...).ToFunc()
}

// ByCompleteCount orders the results by the complete_count field.
func ByCompleteCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleteCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAssignmentsCount orders the results by assignments count.
func ByAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignmentsStep(), opts...)
	}
}

// ByAssignments orders the results by assignments terms.
func ByAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByChatJobsCount orders the results by chat_jobs count.
func ByChatJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatJobsStep(), opts...)
	}
}

// ByChatJobs orders the results by chat_jobs terms.
func ByChatJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, AssignmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
func newChatThreadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatThreadsInverseTable, ChatThreadFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatThreadsTable, ChatThreadsColumn),
	)
}
func newChatJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatJobsInverseTable, ChatJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatJobsTable, ChatJobsColumn),
	)
}
