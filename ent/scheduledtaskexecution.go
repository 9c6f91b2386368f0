// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
)

// ScheduledTaskExecution is the model entity for the ScheduledTaskExecution schema.
type ScheduledTaskExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ScheduledTaskID holds the value of the "scheduled_task_id" field.
	ScheduledTaskID string `json:"scheduled_task_id,omitempty"`
	// Status holds the value of the "status" field.
	Status scheduledtaskexecution.Status `json:"status,omitempty"`
	// Correlation key for the result collector
	A2aTaskID *string `json:"a2a_task_id,omitempty"`
	// ScheduledFor holds the value of the "scheduled_for" field.
	ScheduledFor int64 `json:"scheduled_for,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *int64 `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *int64 `json:"completed_at,omitempty"`
	// ResultSummary holds the value of the "result_summary" field.
	ResultSummary map[string]interface{} `json:"result_summary,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// Artifacts holds the value of the "artifacts" field.
	Artifacts []map[string]interface{} `json:"artifacts,omitempty"`
	// NotificationsSent holds the value of the "notifications_sent" field.
	NotificationsSent map[string]interface{} `json:"notifications_sent,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScheduledTaskExecutionQuery when eager-loading is set.
	Edges        ScheduledTaskExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScheduledTaskExecutionEdges holds the relations/edges for other nodes in the graph.
type ScheduledTaskExecutionEdges struct {
	// ScheduledTask holds the value of the scheduled_task edge.
	ScheduledTask *ScheduledTask `json:"scheduled_task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ScheduledTaskOrErr returns the ScheduledTask value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduledTaskExecutionEdges) ScheduledTaskOrErr() (*ScheduledTask, error) {
	if e.ScheduledTask != nil {
		return e.ScheduledTask, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scheduledtask.Label}
	}
	return nil, &NotLoadedError{edge: "scheduled_task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledTaskExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledtaskexecution.FieldResultSummary, scheduledtaskexecution.FieldArtifacts, scheduledtaskexecution.FieldNotificationsSent:
			values[i] = new([]byte)
		case scheduledtaskexecution.FieldScheduledFor, scheduledtaskexecution.FieldStartedAt, scheduledtaskexecution.FieldCompletedAt, scheduledtaskexecution.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case scheduledtaskexecution.FieldID, scheduledtaskexecution.FieldScheduledTaskID, scheduledtaskexecution.FieldStatus, scheduledtaskexecution.FieldA2aTaskID, scheduledtaskexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledTaskExecution fields.
func (_m *ScheduledTaskExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledtaskexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scheduledtaskexecution.FieldScheduledTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_task_id", values[i])
			} else if value.Valid {
				_m.ScheduledTaskID = value.String
			}
		case scheduledtaskexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scheduledtaskexecution.Status(value.String)
			}
		case scheduledtaskexecution.FieldA2aTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field a2a_task_id", values[i])
			} else if value.Valid {
				_m.A2aTaskID = new(string)
				*_m.A2aTaskID = value.String
			}
		case scheduledtaskexecution.FieldScheduledFor:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_for", values[i])
			} else if value.Valid {
				_m.ScheduledFor = value.Int64
			}
		case scheduledtaskexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(int64)
				*_m.StartedAt = value.Int64
			}
		case scheduledtaskexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(int64)
				*_m.CompletedAt = value.Int64
			}
		case scheduledtaskexecution.FieldResultSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultSummary); err != nil {
					return fmt.Errorf("unmarshal field result_summary: %w", err)
				}
			}
		case scheduledtaskexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case scheduledtaskexecution.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case scheduledtaskexecution.FieldArtifacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field artifacts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Artifacts); err != nil {
					return fmt.Errorf("unmarshal field artifacts: %w", err)
				}
			}
		case scheduledtaskexecution.FieldNotificationsSent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notifications_sent", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NotificationsSent); err != nil {
					return fmt.Errorf("unmarshal field notifications_sent: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledTaskExecution.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledTaskExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScheduledTask queries the "scheduled_task" edge of the ScheduledTaskExecution entity.
func (_m *ScheduledTaskExecution) QueryScheduledTask() *ScheduledTaskQuery {
	return NewScheduledTaskExecutionClient(_m.config).QueryScheduledTask(_m)
}

// Update returns a builder for updating this ScheduledTaskExecution.
// Note that you need to call ScheduledTaskExecution.Unwrap() before calling this method if this ScheduledTaskExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledTaskExecution) Update() *ScheduledTaskExecutionUpdateOne {
	return NewScheduledTaskExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledTaskExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledTaskExecution) Unwrap() *ScheduledTaskExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledTaskExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledTaskExecution) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledTaskExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scheduled_task_id=")
	builder.WriteString(_m.ScheduledTaskID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.A2aTaskID; v != nil {
		builder.WriteString("a2a_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("scheduled_for=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduledFor))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("result_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultSummary))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("artifacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Artifacts))
	builder.WriteString(", ")
	builder.WriteString("notifications_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotificationsSent))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledTaskExecutions is a parsable slice of ScheduledTaskExecution.
type ScheduledTaskExecutions []*ScheduledTaskExecution
