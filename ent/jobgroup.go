// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dirigent-io/dirigent/ent/assignment"
	"github.com/dirigent-io/dirigent/ent/jobgroup"
)

// JobGroup is the model entity for the JobGroup schema.
type JobGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AssignmentID holds the value of the "assignment_id" field.
	AssignmentID string `json:"assignment_id,omitempty"`
	// Forward pointer in the per-assignment chain; null = tail
	NextGroupID *string `json:"next_group_id,omitempty"`
	// Status holds the value of the "status" field.
	Status jobgroup.Status `json:"status,omitempty"`
	// Joined member results, populated at terminal status
	AggregatedResult *string `json:"aggregated_result,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobGroupQuery when eager-loading is set.
	Edges        JobGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobGroupEdges holds the relations/edges for other nodes in the graph.
type JobGroupEdges struct {
	// Assignment holds the value of the assignment edge.
	Assignment *Assignment `json:"assignment,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AssignmentOrErr returns the Assignment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobGroupEdges) AssignmentOrErr() (*Assignment, error) {
	if e.Assignment != nil {
		return e.Assignment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: assignment.Label}
	}
	return nil, &NotLoadedError{edge: "assignment"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e JobGroupEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobgroup.FieldID, jobgroup.FieldAssignmentID, jobgroup.FieldNextGroupID, jobgroup.FieldStatus, jobgroup.FieldAggregatedResult:
			values[i] = new(sql.NullString)
		case jobgroup.FieldCreatedAt, jobgroup.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobGroup fields.
func (_m *JobGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobgroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case jobgroup.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				_m.AssignmentID = value.String
			}
		case jobgroup.FieldNextGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field next_group_id", values[i])
			} else if value.Valid {
				_m.NextGroupID = new(string)
				*_m.NextGroupID = value.String
			}
		case jobgroup.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = jobgroup.Status(value.String)
			}
		case jobgroup.FieldAggregatedResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field aggregated_result", values[i])
			} else if value.Valid {
				_m.AggregatedResult = new(string)
				*_m.AggregatedResult = value.String
			}
		case jobgroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case jobgroup.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the JobGroup.
// This includes values selected through modifiers, order, etc.
func (_m *JobGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssignment queries the "assignment" edge of the JobGroup entity.
func (_m *JobGroup) QueryAssignment() *AssignmentQuery {
	return NewJobGroupClient(_m.config).QueryAssignment(_m)
}

// QueryJobs queries the "jobs" edge of the JobGroup entity.
func (_m *JobGroup) QueryJobs() *JobQuery {
	return NewJobGroupClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this JobGroup.
// Note that you need to call JobGroup.Unwrap() before calling this method if this JobGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobGroup) Update() *JobGroupUpdateOne {
	return NewJobGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobGroup) Unwrap() *JobGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobGroup) String() string {
	var builder strings.Builder
	builder.WriteString("JobGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("assignment_id=")
	builder.WriteString(_m.AssignmentID)
	builder.WriteString(", ")
	if v := _m.NextGroupID; v != nil {
		builder.WriteString("next_group_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AggregatedResult; v != nil {
		builder.WriteString("aggregated_result=")
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

// JobGroups is a parsable slice of JobGroup.
type JobGroups []*JobGroup
