// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/namespace"
)

// ChatJob is the model entity for the ChatJob schema.
type ChatJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID string `json:"thread_id,omitempty"`
	// Denormalized for queue indexing
	NamespaceID string `json:"namespace_id,omitempty"`
	// Harness holds the value of the "harness" field.
	Harness chatjob.Harness `json:"harness,omitempty"`
	// JSON-encoded thread snapshot (opaque to the engine)
	Context string `json:"context,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt *string `json:"prompt,omitempty"`
	// Status holds the value of the "status" field.
	Status chatjob.Status `json:"status,omitempty"`
	// Result holds the value of the "result" field.
	Result *string `json:"result,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ToolCallCount holds the value of the "tool_call_count" field.
	ToolCallCount int `json:"tool_call_count,omitempty"`
	// SubagentCount holds the value of the "subagent_count" field.
	SubagentCount int `json:"subagent_count,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// LastEventAt holds the value of the "last_event_at" field.
	LastEventAt *time.Time `json:"last_event_at,omitempty"`
	// ExitForced holds the value of the "exit_forced" field.
	ExitForced bool `json:"exit_forced,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatJobQuery when eager-loading is set.
	Edges        ChatJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatJobEdges holds the relations/edges for other nodes in the graph.
type ChatJobEdges struct {
	// Thread holds the value of the thread edge.
	Thread *ChatThread `json:"thread,omitempty"`
	// Namespace holds the value of the namespace edge.
	Namespace *Namespace `json:"namespace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ThreadOrErr returns the Thread value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatJobEdges) ThreadOrErr() (*ChatThread, error) {
	if e.Thread != nil {
		return e.Thread, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatthread.Label}
	}
	return nil, &NotLoadedError{edge: "thread"}
}

// NamespaceOrErr returns the Namespace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatJobEdges) NamespaceOrErr() (*Namespace, error) {
	if e.Namespace != nil {
		return e.Namespace, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: namespace.Label}
	}
	return nil, &NotLoadedError{edge: "namespace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatjob.FieldExitForced:
			values[i] = new(sql.NullBool)
		case chatjob.FieldToolCallCount, chatjob.FieldSubagentCount, chatjob.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case chatjob.FieldID, chatjob.FieldThreadID, chatjob.FieldNamespaceID, chatjob.FieldHarness, chatjob.FieldContext, chatjob.FieldPrompt, chatjob.FieldStatus, chatjob.FieldResult:
			values[i] = new(sql.NullString)
		case chatjob.FieldStartedAt, chatjob.FieldCompletedAt, chatjob.FieldLastEventAt, chatjob.FieldCreatedAt, chatjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatJob fields.
func (_m *ChatJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatjob.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case chatjob.FieldNamespaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field namespace_id", values[i])
			} else if value.Valid {
				_m.NamespaceID = value.String
			}
		case chatjob.FieldHarness:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field harness", values[i])
			} else if value.Valid {
				_m.Harness = chatjob.Harness(value.String)
			}
		case chatjob.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case chatjob.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = new(string)
				*_m.Prompt = value.String
			}
		case chatjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = chatjob.Status(value.String)
			}
		case chatjob.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = new(string)
				*_m.Result = value.String
			}
		case chatjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case chatjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case chatjob.FieldToolCallCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tool_call_count", values[i])
			} else if value.Valid {
				_m.ToolCallCount = int(value.Int64)
			}
		case chatjob.FieldSubagentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subagent_count", values[i])
			} else if value.Valid {
				_m.SubagentCount = int(value.Int64)
			}
		case chatjob.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case chatjob.FieldLastEventAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_event_at", values[i])
			} else if value.Valid {
				_m.LastEventAt = new(time.Time)
				*_m.LastEventAt = value.Time
			}
		case chatjob.FieldExitForced:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field exit_forced", values[i])
			} else if value.Valid {
				_m.ExitForced = value.Bool
			}
		case chatjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chatjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChatJob.
// This includes values selected through modifiers, order, etc.
func (_m *ChatJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryThread queries the "thread" edge of the ChatJob entity.
func (_m *ChatJob) QueryThread() *ChatThreadQuery {
	return NewChatJobClient(_m.config).QueryThread(_m)
}

// QueryNamespace queries the "namespace" edge of the ChatJob entity.
func (_m *ChatJob) QueryNamespace() *NamespaceQuery {
	return NewChatJobClient(_m.config).QueryNamespace(_m)
}

// Update returns a builder for updating this ChatJob.
// Note that you need to call ChatJob.Unwrap() before calling this method if this ChatJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatJob) Update() *ChatJobUpdateOne {
	return NewChatJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatJob) Unwrap() *ChatJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatJob) String() string {
	var builder strings.Builder
	builder.WriteString("ChatJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	builder.WriteString("namespace_id=")
	builder.WriteString(_m.NamespaceID)
	builder.WriteString(", ")
	builder.WriteString("harness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Harness))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	if v := _m.Prompt; v != nil {
		builder.WriteString("prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Result; v != nil {
		builder.WriteString("result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("tool_call_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolCallCount))
	builder.WriteString(", ")
	builder.WriteString("subagent_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubagentCount))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	if v := _m.LastEventAt; v != nil {
		builder.WriteString("last_event_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("exit_forced=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExitForced))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatJobs is a parsable slice of ChatJob.
type ChatJobs []*ChatJob
