// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime int64 `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *int64 `json:"end_time,omitempty"`
	// running, completed, failed, cancelled, timeout, interrupted
	Status *string `json:"status,omitempty"`
	// InitialRequestText holds the value of the "initial_request_text" field.
	InitialRequestText *string `json:"initial_request_text,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName *string `json:"agent_name,omitempty"`
	// BackgroundExecutionEnabled holds the value of the "background_execution_enabled" field.
	BackgroundExecutionEnabled bool `json:"background_execution_enabled,omitempty"`
	// MaxExecutionTimeMs holds the value of the "max_execution_time_ms" field.
	MaxExecutionTimeMs *int64 `json:"max_execution_time_ms,omitempty"`
	// Touched on every bus event — drives the timeout sweep
	LastActivityTime *int64 `json:"last_activity_time,omitempty"`
	// Set when the persistent SSE buffer holds events for this task
	HasBufferedEvents bool `json:"has_buffered_events,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Events holds the value of the events edge.
	Events []*TaskEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) EventsOrErr() ([]*TaskEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldBackgroundExecutionEnabled, task.FieldHasBufferedEvents:
			values[i] = new(sql.NullBool)
		case task.FieldStartTime, task.FieldEndTime, task.FieldMaxExecutionTimeMs, task.FieldLastActivityTime:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldUserID, task.FieldStatus, task.FieldInitialRequestText, task.FieldAgentName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case task.FieldStartTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Int64
			}
		case task.FieldEndTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(int64)
				*_m.EndTime = value.Int64
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case task.FieldInitialRequestText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_request_text", values[i])
			} else if value.Valid {
				_m.InitialRequestText = new(string)
				*_m.InitialRequestText = value.String
			}
		case task.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = new(string)
				*_m.AgentName = value.String
			}
		case task.FieldBackgroundExecutionEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field background_execution_enabled", values[i])
			} else if value.Valid {
				_m.BackgroundExecutionEnabled = value.Bool
			}
		case task.FieldMaxExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_execution_time_ms", values[i])
			} else if value.Valid {
				_m.MaxExecutionTimeMs = new(int64)
				*_m.MaxExecutionTimeMs = value.Int64
			}
		case task.FieldLastActivityTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_time", values[i])
			} else if value.Valid {
				_m.LastActivityTime = new(int64)
				*_m.LastActivityTime = value.Int64
			}
		case task.FieldHasBufferedEvents:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_buffered_events", values[i])
			} else if value.Valid {
				_m.HasBufferedEvents = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the Task entity.
func (_m *Task) QueryEvents() *TaskEventQuery {
	return NewTaskClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartTime))
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InitialRequestText; v != nil {
		builder.WriteString("initial_request_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AgentName; v != nil {
		builder.WriteString("agent_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("background_execution_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.BackgroundExecutionEnabled))
	builder.WriteString(", ")
	if v := _m.MaxExecutionTimeMs; v != nil {
		builder.WriteString("max_execution_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastActivityTime; v != nil {
		builder.WriteString("last_activity_time=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("has_buffered_events=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasBufferedEvents))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
