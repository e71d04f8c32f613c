// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/namespace"
)

// Assignment is the model entity for the Assignment schema.
type Assignment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// NamespaceID holds the value of the "namespace_id" field.
	NamespaceID string `json:"namespace_id,omitempty"`
	// Free-form goal string
	NorthStar string `json:"north_star,omitempty"`
	// Status holds the value of the "status" field.
	Status assignment.Status `json:"status,omitempty"`
	// false ⇒ competes for the namespace's single sequential slot
	Independent bool `json:"independent,omitempty"`
	// Lower runs earlier; chat-triggered assignments use 0
	Priority int `json:"priority,omitempty"`
	// Artifacts holds the value of the "artifacts" field.
	Artifacts *string `json:"artifacts,omitempty"`
	// Decisions holds the value of the "decisions" field.
	Decisions *string `json:"decisions,omitempty"`
	// Set iff status = blocked
	BlockedReason *string `json:"blocked_reason,omitempty"`
	// Guardian-mode annotation; no scheduling effect
	AlignmentStatus *assignment.AlignmentStatus `json:"alignment_status,omitempty"`
	// Start of the group chain; null until the first group exists
	HeadGroupID *string `json:"head_group_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssignmentQuery when eager-loading is set.
	Edges        AssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssignmentEdges holds the relations/edges for other nodes in the graph.
type AssignmentEdges struct {
	// Namespace holds the value of the namespace edge.
	Namespace *Namespace `json:"namespace,omitempty"`
	// Groups holds the value of the groups edge.
	Groups []*JobGroup `json:"groups,omitempty"`
	// ChatThreads holds the value of the chat_threads edge.
	ChatThreads []*ChatThread `json:"chat_threads,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// NamespaceOrErr returns the Namespace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssignmentEdges) NamespaceOrErr() (*Namespace, error) {
	if e.Namespace != nil {
		return e.Namespace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: namespace.Label}
	}
	return nil, &NotLoadedError{edge: "namespace"}
}

// GroupsOrErr returns the Groups value or an error if the edge
// was not loaded in eager-loading.
func (e AssignmentEdges) GroupsOrErr() ([]*JobGroup, error) {
	if e.loadedTypes[1] {
		return e.Groups, nil
	}
	return nil, &NotLoadedError{edge: "groups"}
}

// ChatThreadsOrErr returns the ChatThreads value or an error if the edge
// was not loaded in eager-loading.
func (e AssignmentEdges) ChatThreadsOrErr() ([]*ChatThread, error) {
	if e.loadedTypes[2] {
		return e.ChatThreads, nil
	}
	return nil, &NotLoadedError{edge: "chat_threads"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assignment.FieldIndependent:
			values[i] = new(sql.NullBool)
		case assignment.FieldPriority:
			values[i] = new(sql.NullInt64)
		case assignment.FieldID, assignment.FieldNamespaceID, assignment.FieldNorthStar, assignment.FieldStatus, assignment.FieldArtifacts, assignment.FieldDecisions, assignment.FieldBlockedReason, assignment.FieldAlignmentStatus, assignment.FieldHeadGroupID:
			values[i] = new(sql.NullString)
		case assignment.FieldCreatedAt, assignment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assignment fields.
func (_m *Assignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assignment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case assignment.FieldNamespaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field namespace_id", values[i])
			} else if value.Valid {
				_m.NamespaceID = value.String
			}
		case assignment.FieldNorthStar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field north_star", values[i])
			} else if value.Valid {
				_m.NorthStar = value.String
			}
		case assignment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = assignment.Status(value.String)
			}
		case assignment.FieldIndependent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field independent", values[i])
			} else if value.Valid {
				_m.Independent = value.Bool
			}
		case assignment.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case assignment.FieldArtifacts:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifacts", values[i])
			} else if value.Valid {
				_m.Artifacts = new(string)
				*_m.Artifacts = value.String
			}
		case assignment.FieldDecisions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decisions", values[i])
			} else if value.Valid {
				_m.Decisions = new(string)
				*_m.Decisions = value.String
			}
		case assignment.FieldBlockedReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_reason", values[i])
			} else if value.Valid {
				_m.BlockedReason = new(string)
				*_m.BlockedReason = value.String
			}
		case assignment.FieldAlignmentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alignment_status", values[i])
			} else if value.Valid {
				_m.AlignmentStatus = new(assignment.AlignmentStatus)
				*_m.AlignmentStatus = assignment.AlignmentStatus(value.String)
			}
		case assignment.FieldHeadGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field head_group_id", values[i])
			} else if value.Valid {
				_m.HeadGroupID = new(string)
				*_m.HeadGroupID = value.String
			}
		case assignment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assignment.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Assignment.
// This includes values selected through modifiers, order, etc.
func (_m *Assignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNamespace queries the "namespace" edge of the Assignment entity.
func (_m *Assignment) QueryNamespace() *NamespaceQuery {
	return NewAssignmentClient(_m.config).QueryNamespace(_m)
}

// QueryGroups queries the "groups" edge of the Assignment entity.
func (_m *Assignment) QueryGroups() *JobGroupQuery {
	return NewAssignmentClient(_m.config).QueryGroups(_m)
}

// QueryChatThreads queries the "chat_threads" edge of the Assignment entity.
func (_m *Assignment) QueryChatThreads() *ChatThreadQuery {
	return NewAssignmentClient(_m.config).QueryChatThreads(_m)
}

// Update returns a builder for updating this Assignment.
// Note that you need to call Assignment.Unwrap() before calling this method if this Assignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assignment) Update() *AssignmentUpdateOne {
	return NewAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assignment) Unwrap() *Assignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Assignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assignment) String() string {
	var builder strings.Builder
	builder.WriteString("Assignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("namespace_id=")
	builder.WriteString(_m.NamespaceID)
	builder.WriteString(", ")
	builder.WriteString("north_star=")
	builder.WriteString(_m.NorthStar)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("independent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Independent))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.Artifacts; v != nil {
		builder.WriteString("artifacts=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Decisions; v != nil {
		builder.WriteString("decisions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BlockedReason; v != nil {
		builder.WriteString("blocked_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AlignmentStatus; v != nil {
		builder.WriteString("alignment_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.HeadGroupID; v != nil {
		builder.WriteString("head_group_id=")
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

// Assignments is a parsable slice of Assignment.
type Assignments []*Assignment
