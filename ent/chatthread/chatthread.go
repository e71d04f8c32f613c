// Code generated by ent, DO NOT EDIT.

package chatthread

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatthread type in the database.
	Label = "chat_thread"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "thread_id"
	// FieldNamespaceID holds the string denoting the namespace_id field in the database.
	FieldNamespaceID = "namespace_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldLastPromptMode holds the string denoting the last_prompt_mode field in the database.
	FieldLastPromptMode = "last_prompt_mode"
	// FieldAssignmentID holds the string denoting the assignment_id field in the database.
	FieldAssignmentID = "assignment_id"
	// FieldClaudeSessionID holds the string denoting the claude_session_id field in the database.
	FieldClaudeSessionID = "claude_session_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeNamespace holds the string denoting the namespace edge name in mutations.
	EdgeNamespace = "namespace"
	// EdgeAssignment holds the string denoting the assignment edge name in mutations.
	EdgeAssignment = "assignment"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeChatJobs holds the string denoting the chat_jobs edge name in mutations.
	EdgeChatJobs = "chat_jobs"
	// NamespaceFieldID holds the string denoting the ID field of the Namespace.
	NamespaceFieldID = "namespace_id"
	// AssignmentFieldID holds the string denoting the ID field of the Assignment.
	AssignmentFieldID = "assignment_id"
	// ChatMessageFieldID holds the string denoting the ID field of the ChatMessage.
	ChatMessageFieldID = "message_id"
	// ChatJobFieldID holds the string denoting the ID field of the ChatJob.
	ChatJobFieldID = "chat_job_id"
	// Table holds the table name of the chatthread in the database.
	Table = "chat_threads"
	// NamespaceTable is the table that holds the namespace relation/edge.
	NamespaceTable = "chat_threads"
	// NamespaceInverseTable is the table name for the Namespace entity.
	// It exists in this package in order to avoid circular dependency with the "namespace" package.
	NamespaceInverseTable = "namespaces"
	// NamespaceColumn is the table column denoting the namespace relation/edge.
	NamespaceColumn = "namespace_id"
	// AssignmentTable is the table that holds the assignment relation/edge.
	AssignmentTable = "chat_threads"
	// AssignmentInverseTable is the table name for the Assignment entity.
	// It exists in this package in order to avoid circular dependency with the "assignment" package.
	AssignmentInverseTable = "assignments"
	// AssignmentColumn is the table column denoting the assignment relation/edge.
	AssignmentColumn = "assignment_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "chat_messages"
	// MessagesInverseTable is the table name for the ChatMessage entity.
	// It exists in this package in order to avoid circular dependency with the "chatmessage" package.
	MessagesInverseTable = "chat_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "thread_id"
	// ChatJobsTable is the table that holds the chat_jobs relation/edge.
	ChatJobsTable = "chat_jobs"
	// ChatJobsInverseTable is the table name for the ChatJob entity.
	// It exists in this package in order to avoid circular dependency with the "chatjob" package.
	ChatJobsInverseTable = "chat_jobs"
	// ChatJobsColumn is the table column denoting the chat_jobs relation/edge.
	ChatJobsColumn = "thread_id"
)

// Columns holds all SQL columns for chatthread fields.
var Columns = []string{
	FieldID,
	FieldNamespaceID,
	FieldTitle,
	FieldMode,
	FieldLastPromptMode,
	FieldAssignmentID,
	FieldClaudeSessionID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeJam is the default value of the Mode enum.
const DefaultMode = ModeJam

// Mode values.
const (
	ModeJam      Mode = "jam"
	ModeCook     Mode = "cook"
	ModeGuardian Mode = "guardian"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeJam, ModeCook, ModeGuardian:
		return nil
	default:
		return fmt.Errorf("chatthread: invalid enum value for mode field: %q", m)
	}
}

// LastPromptMode defines the type for the "last_prompt_mode" enum field.
type LastPromptMode string

// LastPromptMode values.
const (
	LastPromptModeJam  LastPromptMode = "jam"
	LastPromptModeCook LastPromptMode = "cook"
)

func (lpm LastPromptMode) String() string {
	return string(lpm)
}

// LastPromptModeValidator is a validator for the "last_prompt_mode" field enum values. It is called by the builders before save.
func LastPromptModeValidator(lpm LastPromptMode) error {
	switch lpm {
	case LastPromptModeJam, LastPromptModeCook:
		return nil
	default:
		return fmt.Errorf("chatthread: invalid enum value for last_prompt_mode field: %q", lpm)
	}
}

// OrderOption defines the ordering options for the ChatThread queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNamespaceID orders the results by the namespace_id field.
func ByNamespaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNamespaceID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByLastPromptMode orders the results by the last_prompt_mode field.
func ByLastPromptMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPromptMode, opts...).ToFunc()
}

// ByAssignmentID orders the results by the assignment_id field.
func ByAssignmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentID, opts...).ToFunc()
}

// ByClaudeSessionID orders the results by the claude_session_id field.
func ByClaudeSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaudeSessionID, opts...).ToFunc()
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

// ByAssignmentField orders the results by assignment field.
func ByAssignmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newNamespaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NamespaceInverseTable, NamespaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, NamespaceTable, NamespaceColumn),
	)
}
func newAssignmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentInverseTable, AssignmentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AssignmentTable, AssignmentColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, ChatMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newChatJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatJobsInverseTable, ChatJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatJobsTable, ChatJobsColumn),
	)
}
