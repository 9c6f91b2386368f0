// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtask"
)

// ScheduledTask is the model entity for the ScheduledTask schema.
type ScheduledTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Namespace holds the value of the "namespace" field.
	Namespace string `json:"namespace,omitempty"`
	// Null = namespace-level task, executable by any member
	UserID *string `json:"user_id,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// ScheduleType holds the value of the "schedule_type" field.
	ScheduleType scheduledtask.ScheduleType `json:"schedule_type,omitempty"`
	// ScheduleExpression holds the value of the "schedule_expression" field.
	ScheduleExpression string `json:"schedule_expression,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// TargetAgentName holds the value of the "target_agent_name" field.
	TargetAgentName string `json:"target_agent_name,omitempty"`
	// A2A message parts
	TaskMessage []map[string]interface{} `json:"task_message,omitempty"`
	// TaskMetadata holds the value of the "task_metadata" field.
	TaskMetadata map[string]interface{} `json:"task_metadata,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// MaxRetries holds the value of the "max_retries" field.
	MaxRetries int `json:"max_retries,omitempty"`
	// RetryDelaySeconds holds the value of the "retry_delay_seconds" field.
	RetryDelaySeconds int `json:"retry_delay_seconds,omitempty"`
	// TimeoutSeconds holds the value of the "timeout_seconds" field.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
	// NotificationConfig holds the value of the "notification_config" field.
	NotificationConfig map[string]interface{} `json:"notification_config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt int64 `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt int64 `json:"updated_at,omitempty"`
	// NextRunAt holds the value of the "next_run_at" field.
	NextRunAt *int64 `json:"next_run_at,omitempty"`
	// LastRunAt holds the value of the "last_run_at" field.
	LastRunAt *int64 `json:"last_run_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *int64 `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScheduledTaskQuery when eager-loading is set.
	Edges        ScheduledTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScheduledTaskEdges holds the relations/edges for other nodes in the graph.
type ScheduledTaskEdges struct {
	// Executions holds the value of the executions edge.
	Executions []*ScheduledTaskExecution `json:"executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e ScheduledTaskEdges) ExecutionsOrErr() ([]*ScheduledTaskExecution, error) {
	if e.loadedTypes[0] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledtask.FieldTaskMessage, scheduledtask.FieldTaskMetadata, scheduledtask.FieldNotificationConfig:
			values[i] = new([]byte)
		case scheduledtask.FieldEnabled:
			values[i] = new(sql.NullBool)
		case scheduledtask.FieldMaxRetries, scheduledtask.FieldRetryDelaySeconds, scheduledtask.FieldTimeoutSeconds, scheduledtask.FieldCreatedAt, scheduledtask.FieldUpdatedAt, scheduledtask.FieldNextRunAt, scheduledtask.FieldLastRunAt, scheduledtask.FieldDeletedAt:
			values[i] = new(sql.NullInt64)
		case scheduledtask.FieldID, scheduledtask.FieldName, scheduledtask.FieldNamespace, scheduledtask.FieldUserID, scheduledtask.FieldCreatedBy, scheduledtask.FieldScheduleType, scheduledtask.FieldScheduleExpression, scheduledtask.FieldTimezone, scheduledtask.FieldTargetAgentName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledTask fields.
func (_m *ScheduledTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledtask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scheduledtask.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case scheduledtask.FieldNamespace:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field namespace", values[i])
			} else if value.Valid {
				_m.Namespace = value.String
			}
		case scheduledtask.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case scheduledtask.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case scheduledtask.FieldScheduleType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_type", values[i])
			} else if value.Valid {
				_m.ScheduleType = scheduledtask.ScheduleType(value.String)
			}
		case scheduledtask.FieldScheduleExpression:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_expression", values[i])
			} else if value.Valid {
				_m.ScheduleExpression = value.String
			}
		case scheduledtask.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case scheduledtask.FieldTargetAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_agent_name", values[i])
			} else if value.Valid {
				_m.TargetAgentName = value.String
			}
		case scheduledtask.FieldTaskMessage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field task_message", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TaskMessage); err != nil {
					return fmt.Errorf("unmarshal field task_message: %w", err)
				}
			}
		case scheduledtask.FieldTaskMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field task_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TaskMetadata); err != nil {
					return fmt.Errorf("unmarshal field task_metadata: %w", err)
				}
			}
		case scheduledtask.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case scheduledtask.FieldMaxRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retries", values[i])
			} else if value.Valid {
				_m.MaxRetries = int(value.Int64)
			}
		case scheduledtask.FieldRetryDelaySeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_delay_seconds", values[i])
			} else if value.Valid {
				_m.RetryDelaySeconds = int(value.Int64)
			}
		case scheduledtask.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = int(value.Int64)
			}
		case scheduledtask.FieldNotificationConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notification_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NotificationConfig); err != nil {
					return fmt.Errorf("unmarshal field notification_config: %w", err)
				}
			}
		case scheduledtask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Int64
			}
		case scheduledtask.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Int64
			}
		case scheduledtask.FieldNextRunAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field next_run_at", values[i])
			} else if value.Valid {
				_m.NextRunAt = new(int64)
				*_m.NextRunAt = value.Int64
			}
		case scheduledtask.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = new(int64)
				*_m.LastRunAt = value.Int64
			}
		case scheduledtask.FieldDeletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledTask.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecutions queries the "executions" edge of the ScheduledTask entity.
func (_m *ScheduledTask) QueryExecutions() *ScheduledTaskExecutionQuery {
	return NewScheduledTaskClient(_m.config).QueryExecutions(_m)
}

// Update returns a builder for updating this ScheduledTask.
// Note that you need to call ScheduledTask.Unwrap() before calling this method if this ScheduledTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledTask) Update() *ScheduledTaskUpdateOne {
	return NewScheduledTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledTask) Unwrap() *ScheduledTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledTask) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("namespace=")
	builder.WriteString(_m.Namespace)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("schedule_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduleType))
	builder.WriteString(", ")
	builder.WriteString("schedule_expression=")
	builder.WriteString(_m.ScheduleExpression)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("target_agent_name=")
	builder.WriteString(_m.TargetAgentName)
	builder.WriteString(", ")
	builder.WriteString("task_message=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskMessage))
	builder.WriteString(", ")
	builder.WriteString("task_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskMetadata))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("max_retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetries))
	builder.WriteString(", ")
	builder.WriteString("retry_delay_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryDelaySeconds))
	builder.WriteString(", ")
	builder.WriteString("timeout_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutSeconds))
	builder.WriteString(", ")
	builder.WriteString("notification_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotificationConfig))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAt))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpdatedAt))
	builder.WriteString(", ")
	if v := _m.NextRunAt; v != nil {
		builder.WriteString("next_run_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledTasks is a parsable slice of ScheduledTask.
type ScheduledTasks []*ScheduledTask
