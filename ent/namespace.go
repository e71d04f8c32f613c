// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dirigent-io/dirigent/ent/namespace"
)

// Namespace is the model entity for the Namespace schema.
type Namespace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// PendingCount holds the value of the "pending_count" field.
	PendingCount int `json:"pending_count,omitempty"`
	// ActiveCount holds the value of the "active_count" field.
	ActiveCount int `json:"active_count,omitempty"`
	// BlockedCount holds the value of the "blocked_count" field.
	BlockedCount int `json:"blocked_count,omitempty"`
	// CompleteCount holds the value of the "complete_count" field.
	CompleteCount int `json:"complete_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NamespaceQuery when eager-loading is set.
	Edges        NamespaceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NamespaceEdges holds the relations/edges for other nodes in the graph.
type NamespaceEdges struct {
	// Assignments holds the value of the assignments edge.
	Assignments []*Assignment `json:"assignments,omitempty"`
	// ChatThreads holds the value of the chat_threads edge.
	ChatThreads []*ChatThread `json:"chat_threads,omitempty"`
	// ChatJobs holds the value of the chat_jobs edge.
	ChatJobs []*ChatJob `json:"chat_jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e NamespaceEdges) AssignmentsOrErr() ([]*Assignment, error) {
	if e.loadedTypes[0] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// ChatThreadsOrErr returns the ChatThreads value or an error if the edge
// was not loaded in eager-loading.
func (e NamespaceEdges) ChatThreadsOrErr() ([]*ChatThread, error) {
	if e.loadedTypes[1] {
		return e.ChatThreads, nil
	}
	return nil, &NotLoadedError{edge: "chat_threads"}
}

// ChatJobsOrErr returns the ChatJobs value or an error if the edge
// was not loaded in eager-loading.
func (e NamespaceEdges) ChatJobsOrErr() ([]*ChatJob, error) {
	if e.loadedTypes[2] {
		return e.ChatJobs, nil
	}
	return nil, &NotLoadedError{edge: "chat_jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Namespace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case namespace.FieldPendingCount, namespace.FieldActiveCount, namespace.FieldBlockedCount, namespace.FieldCompleteCount:
			values[i] = new(sql.NullInt64)
		case namespace.FieldID, namespace.FieldName, namespace.FieldDescription:
			values[i] = new(sql.NullString)
		case namespace.FieldCreatedAt, namespace.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Namespace fields.
func (_m *Namespace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case namespace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case namespace.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case namespace.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case namespace.FieldPendingCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pending_count", values[i])
			} else if value.Valid {
				_m.PendingCount = int(value.Int64)
			}
		case namespace.FieldActiveCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_count", values[i])
			} else if value.Valid {
				_m.ActiveCount = int(value.Int64)
			}
		case namespace.FieldBlockedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_count", values[i])
			} else if value.Valid {
				_m.BlockedCount = int(value.Int64)
			}
		case namespace.FieldCompleteCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field complete_count", values[i])
			} else if value.Valid {
				_m.CompleteCount = int(value.Int64)
			}
		case namespace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case namespace.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Namespace.
// This includes values selected through modifiers, order, etc.
func (_m *Namespace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssignments queries the "assignments" edge of the Namespace entity.
func (_m *Namespace) QueryAssignments() *AssignmentQuery {
	return NewNamespaceClient(_m.config).QueryAssignments(_m)
}

// QueryChatThreads queries the "chat_threads" edge of the Namespace entity.
func (_m *Namespace) QueryChatThreads() *ChatThreadQuery {
	return NewNamespaceClient(_m.config).QueryChatThreads(_m)
}

// QueryChatJobs queries the "chat_jobs" edge of the Namespace entity.
func (_m *Namespace) QueryChatJobs() *ChatJobQuery {
	return NewNamespaceClient(_m.config).QueryChatJobs(_m)
}

// Update returns a builder for updating this Namespace.
// Note that you need to call Namespace.Unwrap() before calling this method if this Namespace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Namespace) Update() *NamespaceUpdateOne {
	return NewNamespaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Namespace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Namespace) Unwrap() *Namespace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Namespace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Namespace) String() string {
	var builder strings.Builder
	builder.WriteString("Namespace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("pending_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PendingCount))
	builder.WriteString(", ")
	builder.WriteString("active_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveCount))
	builder.WriteString(", ")
	builder.WriteString("blocked_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockedCount))
	builder.WriteString(", ")
	builder.WriteString("complete_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompleteCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Namespaces is a parsable slice of Namespace.
type Namespaces []*Namespace
