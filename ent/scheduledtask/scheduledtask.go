// Code generated by ent, DO NOT EDIT.

package scheduledtask

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the scheduledtask type in the database.
	Label = "scheduled_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "scheduled_task_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNamespace holds the string denoting the namespace field in the database.
	FieldNamespace = "namespace"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldScheduleType holds the string denoting the schedule_type field in the database.
	FieldScheduleType = "schedule_type"
	// FieldScheduleExpression holds the string denoting the schedule_expression field in the database.
	FieldScheduleExpression = "schedule_expression"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldTargetAgentName holds the string denoting the target_agent_name field in the database.
	FieldTargetAgentName = "target_agent_name"
	// FieldTaskMessage holds the string denoting the task_message field in the database.
	FieldTaskMessage = "task_message"
	// FieldTaskMetadata holds the string denoting the task_metadata field in the database.
	FieldTaskMetadata = "task_metadata"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldRetryDelaySeconds holds the string denoting the retry_delay_seconds field in the database.
	FieldRetryDelaySeconds = "retry_delay_seconds"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldNotificationConfig holds the string denoting the notification_config field in the database.
	FieldNotificationConfig = "notification_config"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// ScheduledTaskExecutionFieldID holds the string denoting the ID field of the ScheduledTaskExecution.
	ScheduledTaskExecutionFieldID = "execution_id"
	// Table holds the table name of the scheduledtask in the database.
	Table = "scheduled_tasks"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "scheduled_task_executions"
	// ExecutionsInverseTable is the table name for the ScheduledTaskExecution entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledtaskexecution" package.
	ExecutionsInverseTable = "scheduled_task_executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "scheduled_task_id"
)

// Columns holds all SQL columns for scheduledtask fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldNamespace,
	FieldUserID,
	FieldCreatedBy,
	FieldScheduleType,
	FieldScheduleExpression,
	FieldTimezone,
	FieldTargetAgentName,
	FieldTaskMessage,
	FieldTaskMetadata,
	FieldEnabled,
	FieldMaxRetries,
	FieldRetryDelaySeconds,
	FieldTimeoutSeconds,
	FieldNotificationConfig,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNextRunAt,
	FieldLastRunAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// DefaultRetryDelaySeconds holds the default value on creation for the "retry_delay_seconds" field.
	DefaultRetryDelaySeconds int
	// DefaultTimeoutSeconds holds the default value on creation for the "timeout_seconds" field.
	DefaultTimeoutSeconds int
)

// ScheduleType defines the type for the "schedule_type" enum field.
type ScheduleType string

// ScheduleType values.
const (
	ScheduleTypeCron     ScheduleType = "cron"
	ScheduleTypeInterval ScheduleType = "interval"
	ScheduleTypeOneTime  ScheduleType = "one_time"
)

func (st ScheduleType) String() string {
	return string(st)
}

// ScheduleTypeValidator is a validator for the "schedule_type" field enum values. It is called by the builders before save.
func ScheduleTypeValidator(st ScheduleType) error {
	switch st {
	case ScheduleTypeCron, ScheduleTypeInterval, ScheduleTypeOneTime:
		return nil
	default:
		return fmt.Errorf("scheduledtask: invalid enum value for schedule_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the ScheduledTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNamespace orders the results by the namespace field.
func ByNamespace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNamespace, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByScheduleType orders the results by the schedule_type field.
func ByScheduleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleType, opts...).ToFunc()
}

// ByScheduleExpression orders the results by the schedule_expression field.
func ByScheduleExpression(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleExpression, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByTargetAgentName orders the results by the target_agent_name field.
func ByTargetAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAgentName, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByRetryDelaySeconds orders the results by the retry_delay_seconds field.
func ByRetryDelaySeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryDelaySeconds, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, ScheduledTaskExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
