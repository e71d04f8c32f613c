// Code generated by ent, DO NOT EDIT.

package chatjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatjob type in the database.
	Label = "chat_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "chat_job_id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldNamespaceID holds the string denoting the namespace_id field in the database.
	FieldNamespaceID = "namespace_id"
	// FieldHarness holds the string denoting the harness field in the database.
	FieldHarness = "harness"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldToolCallCount holds the string denoting the tool_call_count field in the database.
	FieldToolCallCount = "tool_call_count"
	// FieldSubagentCount holds the string denoting the subagent_count field in the database.
	FieldSubagentCount = "subagent_count"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldLastEventAt holds the string denoting the last_event_at field in the database.
	FieldLastEventAt = "last_event_at"
	// FieldExitForced holds the string denoting the exit_forced field in the database.
	FieldExitForced = "exit_forced"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeThread holds the string denoting the thread edge name in mutations.
	EdgeThread = "thread"
	// EdgeNamespace holds the string denoting the namespace edge name in mutations.
	EdgeNamespace = "namespace"
	// ChatThreadFieldID holds the string denoting the ID field of the ChatThread.
	ChatThreadFieldID = "thread_id"
	// NamespaceFieldID holds the string denoting the ID field of the Namespace.
	NamespaceFieldID = "namespace_id"
	// Table holds the table name of the chatjob in the database.
	Table = "chat_jobs"
	// ThreadTable is the table that holds the thread relation/edge.
	ThreadTable = "chat_jobs"
	// ThreadInverseTable is the table name for the ChatThread entity.
	// It exists in this package in order to avoid circular dependency with the "chatthread" package.
	ThreadInverseTable = "chat_threads"
	// ThreadColumn is the table column denoting the thread relation/edge.
	ThreadColumn = "thread_id"
	// NamespaceTable is the table that holds the namespace relation/edge.
	NamespaceTable = "chat_jobs"
	// NamespaceInverseTable is the table name for the Namespace entity.
	// It exists in this package in order to avoid circular dependency with the "namespace" package.
	NamespaceInverseTable = "namespaces"
	// NamespaceColumn is the table column denoting the namespace relation/edge.
	NamespaceColumn = "namespace_id"
)

// Columns holds all SQL columns for chatjob fields.
var Columns = []string{
	FieldID,
	FieldThreadID,
	FieldNamespaceID,
	FieldHarness,
	FieldContext,
	FieldPrompt,
	FieldStatus,
	FieldResult,
	FieldStartedAt,
	FieldCompletedAt,
	FieldToolCallCount,
	FieldSubagentCount,
	FieldTotalTokens,
	FieldLastEventAt,
	FieldExitForced,
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
	// DefaultToolCallCount holds the default value on creation for the "tool_call_count" field.
	DefaultToolCallCount int
	// DefaultSubagentCount holds the default value on creation for the "subagent_count" field.
	DefaultSubagentCount int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// DefaultExitForced holds the default value on creation for the "exit_forced" field.
	DefaultExitForced bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Harness defines the type for the "harness" enum field.
type Harness string

// HarnessClaude is the default value of the Harness enum.
const DefaultHarness = HarnessClaude

// Harness values.
const (
	HarnessClaude Harness = "claude"
	HarnessCodex  Harness = "codex"
	HarnessGemini Harness = "gemini"
)

func (h Harness) String() string {
	return string(h)
}

// HarnessValidator is a validator for the "harness" field enum values. It is called by the builders before save.
func HarnessValidator(h Harness) error {
	switch h {
	case HarnessClaude, HarnessCodex, HarnessGemini:
		return nil
	default:
		return fmt.Errorf("chatjob: invalid enum value for harness field: %q", h)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusRunning  Status = "running"
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusComplete, StatusFailed:
		return nil
	default:
		return fmt.Errorf("chatjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ChatJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByNamespaceID orders the results by the namespace_id field.
func ByNamespaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNamespaceID, opts...).ToFunc()
}

// ByHarness orders the results by the harness field.
func ByHarness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHarness, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByToolCallCount orders the results by the tool_call_count field.
func ByToolCallCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolCallCount, opts...).ToFunc()
}

// BySubagentCount orders the results by the subagent_count field.
func BySubagentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubagentCount, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByLastEventAt orders the results by the last_event_at field.
func ByLastEventAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEventAt, opts...).ToFunc()
}

// ByExitForced orders the results by the exit_forced field.
func ByExitForced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExitForced, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByThreadField orders the results by thread field.
func ByThreadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newThreadStep(), sql.OrderByField(field, opts...))
	}
}

// ByNamespaceField orders the results by namespace field.
func ByNamespaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNamespaceStep(), sql.OrderByField(field, opts...))
	}
}
func newThreadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ThreadInverseTable, ChatThreadFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ThreadTable, ThreadColumn),
	)
}
func newNamespaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NamespaceInverseTable, NamespaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, NamespaceTable, NamespaceColumn),
	)
}
