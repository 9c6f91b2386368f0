// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/chattask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
)

// ChatTask is the model entity for the ChatTask schema.
type ChatTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// UserMessage holds the value of the "user_message" field.
	UserMessage *string `json:"user_message,omitempty"`
	// Opaque JSON string — schema belongs to the frontend
	MessageBubbles string `json:"message_bubbles,omitempty"`
	// Opaque JSON string
	TaskMetadata *string `json:"task_metadata,omitempty"`
	// CreatedTime holds the value of the "created_time" field.
	CreatedTime int64 `json:"created_time,omitempty"`
	// UpdatedTime holds the value of the "updated_time" field.
	UpdatedTime *int64 `json:"updated_time,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatTaskQuery when eager-loading is set.
	Edges        ChatTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatTaskEdges holds the relations/edges for other nodes in the graph.
type ChatTaskEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatTaskEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chattask.FieldCreatedTime, chattask.FieldUpdatedTime:
			values[i] = new(sql.NullInt64)
		case chattask.FieldID, chattask.FieldSessionID, chattask.FieldUserID, chattask.FieldUserMessage, chattask.FieldMessageBubbles, chattask.FieldTaskMetadata:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatTask fields.
func (_m *ChatTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chattask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chattask.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case chattask.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case chattask.FieldUserMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_message", values[i])
			} else if value.Valid {
				_m.UserMessage = new(string)
				*_m.UserMessage = value.String
			}
		case chattask.FieldMessageBubbles:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_bubbles", values[i])
			} else if value.Valid {
				_m.MessageBubbles = value.String
			}
		case chattask.FieldTaskMetadata:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_metadata", values[i])
			} else if value.Valid {
				_m.TaskMetadata = new(string)
				*_m.TaskMetadata = value.String
			}
		case chattask.FieldCreatedTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_time", values[i])
			} else if value.Valid {
				_m.CreatedTime = value.Int64
			}
		case chattask.FieldUpdatedTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated_time", values[i])
			} else if value.Valid {
				_m.UpdatedTime = new(int64)
				*_m.UpdatedTime = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChatTask.
// This includes values selected through modifiers, order, etc.
func (_m *ChatTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ChatTask entity.
func (_m *ChatTask) QuerySession() *SessionQuery {
	return NewChatTaskClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this ChatTask.
// Note that you need to call ChatTask.Unwrap() before calling this method if this ChatTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatTask) Update() *ChatTaskUpdateOne {
	return NewChatTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatTask) Unwrap() *ChatTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatTask) String() string {
	var builder strings.Builder
	builder.WriteString("ChatTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.UserMessage; v != nil {
		builder.WriteString("user_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("message_bubbles=")
	builder.WriteString(_m.MessageBubbles)
	builder.WriteString(", ")
	if v := _m.TaskMetadata; v != nil {
		builder.WriteString("task_metadata=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedTime))
	builder.WriteString(", ")
	if v := _m.UpdatedTime; v != nil {
		builder.WriteString("updated_time=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ChatTasks is a parsable slice of ChatTask.
type ChatTasks []*ChatTask
