// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/chatthread"
	"github.com/dirigent-io/dirigent/ent/namespace"
)

// ChatThread is the model entity for the ChatThread schema.
type ChatThread struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// NamespaceID holds the value of the "namespace_id" field.
	NamespaceID string `json:"namespace_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode chatthread.Mode `json:"mode,omitempty"`
	// Last non-guardian mode sent to the harness; the runner uses it to decide on differential prompts
	LastPromptMode *chatthread.LastPromptMode `json:"last_prompt_mode,omitempty"`
	// Guardian mode links a thread to an assignment
	AssignmentID *string `json:"assignment_id,omitempty"`
	// Opaque resumable-session token owned by the harness
	ClaudeSessionID *string `json:"claude_session_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatThreadQuery when eager-loading is set.
	Edges        ChatThreadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatThreadEdges holds the relations/edges for other nodes in the graph.
type ChatThreadEdges struct {
	// Namespace holds the value of the namespace edge.
	Namespace *Namespace `json:"namespace,omitempty"`
	// Assignment holds the value of the assignment edge.
	Assignment *Assignment `json:"assignment,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*ChatMessage `json:"messages,omitempty"`
	// ChatJobs holds the value of the chat_jobs edge.
	ChatJobs []*ChatJob `json:"chat_jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// NamespaceOrErr returns the Namespace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatThreadEdges) NamespaceOrErr() (*Namespace, error) {
	if e.Namespace != nil {
		return e.Namespace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: namespace.Label}
	}
	return nil, &NotLoadedError{edge: "namespace"}
}

// AssignmentOrErr returns the Assignment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatThreadEdges) AssignmentOrErr() (*Assignment, error) {
	if e.Assignment != nil {
		return e.Assignment, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: assignment.Label}
	}
	return nil, &NotLoadedError{edge: "assignment"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ChatThreadEdges) MessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[2] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// ChatJobsOrErr returns the ChatJobs value or an error if the edge
// was not loaded in eager-loading.
func (e ChatThreadEdges) ChatJobsOrErr() ([]*ChatJob, error) {
	if e.loadedTypes[3] {
		return e.ChatJobs, nil
	}
	return nil, &NotLoadedError{edge: "chat_jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatThread) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatthread.FieldID, chatthread.FieldNamespaceID, chatthread.FieldTitle, chatthread.FieldMode, chatthread.FieldLastPromptMode, chatthread.FieldAssignmentID, chatthread.FieldClaudeSessionID:
			values[i] = new(sql.NullString)
		case chatthread.FieldCreatedAt, chatthread.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatThread fields.
func (_m *ChatThread) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatthread.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatthread.FieldNamespaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field namespace_id", values[i])
			} else if value.Valid {
				_m.NamespaceID = value.String
			}
		case chatthread.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case chatthread.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = chatthread.Mode(value.String)
			}
		case chatthread.FieldLastPromptMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_prompt_mode", values[i])
			} else if value.Valid {
				_m.LastPromptMode = new(chatthread.LastPromptMode)
				*_m.LastPromptMode = chatthread.LastPromptMode(value.String)
			}
		case chatthread.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				_m.AssignmentID = new(string)
				*_m.AssignmentID = value.String
			}
		case chatthread.FieldClaudeSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claude_session_id", values[i])
			} else if value.Valid {
				_m.ClaudeSessionID = new(string)
				*_m.ClaudeSessionID = value.String
			}
		case chatthread.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chatthread.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChatThread.
// This includes values selected through modifiers, order, etc.
func (_m *ChatThread) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNamespace queries the "namespace" edge of the ChatThread entity.
func (_m *ChatThread) QueryNamespace() *NamespaceQuery {
	return NewChatThreadClient(_m.config).QueryNamespace(_m)
}

// QueryAssignment queries the "assignment" edge of the ChatThread entity.
func (_m *ChatThread) QueryAssignment() *AssignmentQuery {
	return NewChatThreadClient(_m.config).QueryAssignment(_m)
}

// QueryMessages queries the "messages" edge of the ChatThread entity.
func (_m *ChatThread) QueryMessages() *ChatMessageQuery {
	return NewChatThreadClient(_m.config).QueryMessages(_m)
}

// QueryChatJobs queries the "chat_jobs" edge of the ChatThread entity.
func (_m *ChatThread) QueryChatJobs() *ChatJobQuery {
	return NewChatThreadClient(_m.config).QueryChatJobs(_m)
}

// Update returns a builder for updating this ChatThread.
// Note that you need to call ChatThread.Unwrap() before calling this method if this ChatThread
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatThread) Update() *ChatThreadUpdateOne {
	return NewChatThreadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatThread entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatThread) Unwrap() *ChatThread {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatThread is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatThread) String() string {
	var builder strings.Builder
	builder.WriteString("ChatThread(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("namespace_id=")
	builder.WriteString(_m.NamespaceID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	if v := _m.LastPromptMode; v != nil {
		builder.WriteString("last_prompt_mode=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AssignmentID; v != nil {
		builder.WriteString("assignment_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaudeSessionID; v != nil {
		builder.WriteString("claude_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatThreads is a parsable slice of ChatThread.
type ChatThreads []*ChatThread
