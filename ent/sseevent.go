// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
)

// SSEEvent is the model entity for the SSEEvent schema.
type SSEEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// EventSequence holds the value of the "event_sequence" field.
	EventSequence int64 `json:"event_sequence,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// EventData holds the value of the "event_data" field.
	EventData string `json:"event_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt int64 `json:"created_at,omitempty"`
	// Consumed holds the value of the "consumed" field.
	Consumed bool `json:"consumed,omitempty"`
	// ConsumedAt holds the value of the "consumed_at" field.
	ConsumedAt *int64 `json:"consumed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SSEEventQuery when eager-loading is set.
	Edges        SSEEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SSEEventEdges holds the relations/edges for other nodes in the graph.
type SSEEventEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SSEEventEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SSEEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sseevent.FieldConsumed:
			values[i] = new(sql.NullBool)
		case sseevent.FieldID, sseevent.FieldEventSequence, sseevent.FieldCreatedAt, sseevent.FieldConsumedAt:
			values[i] = new(sql.NullInt64)
		case sseevent.FieldTaskID, sseevent.FieldSessionID, sseevent.FieldUserID, sseevent.FieldEventType, sseevent.FieldEventData:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SSEEvent fields.
func (_m *SSEEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sseevent.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case sseevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sseevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sseevent.FieldEventSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_sequence", values[i])
			} else if value.Valid {
				_m.EventSequence = value.Int64
			}
		case sseevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case sseevent.FieldEventData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_data", values[i])
			} else if value.Valid {
				_m.EventData = value.String
			}
		case sseevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Int64
			}
		case sseevent.FieldConsumed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field consumed", values[i])
			} else if value.Valid {
				_m.Consumed = value.Bool
			}
		case sseevent.FieldConsumedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consumed_at", values[i])
			} else if value.Valid {
				_m.ConsumedAt = new(int64)
				*_m.ConsumedAt = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SSEEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SSEEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SSEEvent entity.
func (_m *SSEEvent) QuerySession() *SessionQuery {
	return NewSSEEventClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this SSEEvent.
// Note that you need to call SSEEvent.Unwrap() before calling this method if this SSEEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SSEEvent) Update() *SSEEventUpdateOne {
	return NewSSEEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SSEEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SSEEvent) Unwrap() *SSEEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SSEEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SSEEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SSEEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("event_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventSequence))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("event_data=")
	builder.WriteString(_m.EventData)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAt))
	builder.WriteString(", ")
	builder.WriteString("consumed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Consumed))
	builder.WriteString(", ")
	if v := _m.ConsumedAt; v != nil {
		builder.WriteString("consumed_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SSEEvents is a parsable slice of SSEEvent.
type SSEEvents []*SSEEvent
