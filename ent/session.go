// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user — all queries filter by this
	UserID string `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name *string `json:"name,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *string `json:"agent_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *string `json:"project_id,omitempty"`
	// CreatedTime holds the value of the "created_time" field.
	CreatedTime int64 `json:"created_time,omitempty"`
	// UpdatedTime holds the value of the "updated_time" field.
	UpdatedTime int64 `json:"updated_time,omitempty"`
	// GatewayType holds the value of the "gateway_type" field.
	GatewayType *string `json:"gateway_type,omitempty"`
	// Client-scoped A2A context id, for lookup by external callers
	ExternalContextID *string `json:"external_context_id,omitempty"`
	// IsCompressionBranch holds the value of the "is_compression_branch" field.
	IsCompressionBranch bool `json:"is_compression_branch,omitempty"`
	// Parent session id, compressed message count, token estimates
	CompressionMetadata map[string]interface{} `json:"compression_metadata,omitempty"`
	// Soft delete — excluded by all default queries
	DeletedAt *int64 `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// ChatTasks holds the value of the chat_tasks edge.
	ChatTasks []*ChatTask `json:"chat_tasks,omitempty"`
	// SseEvents holds the value of the sse_events edge.
	SseEvents []*SSEEvent `json:"sse_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ChatTasksOrErr returns the ChatTasks value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) ChatTasksOrErr() ([]*ChatTask, error) {
	if e.loadedTypes[0] {
		return e.ChatTasks, nil
	}
	return nil, &NotLoadedError{edge: "chat_tasks"}
}

// SseEventsOrErr returns the SseEvents value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) SseEventsOrErr() ([]*SSEEvent, error) {
	if e.loadedTypes[1] {
		return e.SseEvents, nil
	}
	return nil, &NotLoadedError{edge: "sse_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldCompressionMetadata:
			values[i] = new([]byte)
		case session.FieldIsCompressionBranch:
			values[i] = new(sql.NullBool)
		case session.FieldCreatedTime, session.FieldUpdatedTime, session.FieldDeletedAt:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldUserID, session.FieldName, session.FieldAgentID, session.FieldProjectID, session.FieldGatewayType, session.FieldExternalContextID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case session.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = new(string)
				*_m.Name = value.String
			}
		case session.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(string)
				*_m.AgentID = value.String
			}
		case session.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(string)
				*_m.ProjectID = value.String
			}
		case session.FieldCreatedTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_time", values[i])
			} else if value.Valid {
				_m.CreatedTime = value.Int64
			}
		case session.FieldUpdatedTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated_time", values[i])
			} else if value.Valid {
				_m.UpdatedTime = value.Int64
			}
		case session.FieldGatewayType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gateway_type", values[i])
			} else if value.Valid {
				_m.GatewayType = new(string)
				*_m.GatewayType = value.String
			}
		case session.FieldExternalContextID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_context_id", values[i])
			} else if value.Valid {
				_m.ExternalContextID = new(string)
				*_m.ExternalContextID = value.String
			}
		case session.FieldIsCompressionBranch:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_compression_branch", values[i])
			} else if value.Valid {
				_m.IsCompressionBranch = value.Bool
			}
		case session.FieldCompressionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field compression_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompressionMetadata); err != nil {
					return fmt.Errorf("unmarshal field compression_metadata: %w", err)
				}
			}
		case session.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(int64)
				*_m.DeletedAt = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChatTasks queries the "chat_tasks" edge of the Session entity.
func (_m *Session) QueryChatTasks() *ChatTaskQuery {
	return NewSessionClient(_m.config).QueryChatTasks(_m)
}

// QuerySseEvents queries the "sse_events" edge of the Session entity.
func (_m *Session) QuerySseEvents() *SSEEventQuery {
	return NewSessionClient(_m.config).QuerySseEvents(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.Name; v != nil {
		builder.WriteString("name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedTime))
	builder.WriteString(", ")
	builder.WriteString("updated_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpdatedTime))
	builder.WriteString(", ")
	if v := _m.GatewayType; v != nil {
		builder.WriteString("gateway_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExternalContextID; v != nil {
		builder.WriteString("external_context_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_compression_branch=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCompressionBranch))
	builder.WriteString(", ")
	builder.WriteString("compression_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompressionMetadata))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
