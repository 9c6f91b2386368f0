// Code generated by ent, DO NOT EDIT.

package scheduledtaskexecution

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the scheduledtaskexecution type in the database.
	Label = "scheduled_task_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldScheduledTaskID holds the string denoting the scheduled_task_id field in the database.
	FieldScheduledTaskID = "scheduled_task_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldA2aTaskID holds the string denoting the a2a_task_id field in the database.
	FieldA2aTaskID = "a2a_task_id"
	// FieldScheduledFor holds the string denoting the scheduled_for field in the database.
	FieldScheduledFor = "scheduled_for"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldArtifacts holds the string denoting the artifacts field in the database.
	FieldArtifacts = "artifacts"
	// FieldNotificationsSent holds the string denoting the notifications_sent field in the database.
	FieldNotificationsSent = "notifications_sent"
	// EdgeScheduledTask holds the string denoting the scheduled_task edge name in mutations.
	EdgeScheduledTask = "scheduled_task"
	// ScheduledTaskFieldID holds the string denoting the ID field of the ScheduledTask.
	ScheduledTaskFieldID = "scheduled_task_id"
	// Table holds the table name of the scheduledtaskexecution in the database.
	Table = "scheduled_task_executions"
	// ScheduledTaskTable is the table that holds the scheduled_task relation/edge.
	ScheduledTaskTable = "scheduled_task_executions"
	// ScheduledTaskInverseTable is the table name for the ScheduledTask entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledtask" package.
	ScheduledTaskInverseTable = "scheduled_tasks"
	// ScheduledTaskColumn is the table column denoting the scheduled_task relation/edge.
	ScheduledTaskColumn = "scheduled_task_id"
)

// Columns holds all SQL columns for scheduledtaskexecution fields.
var Columns = []string{
	FieldID,
	FieldScheduledTaskID,
	FieldStatus,
	FieldA2aTaskID,
	FieldScheduledFor,
	FieldStartedAt,
	FieldCompletedAt,
	FieldResultSummary,
	FieldErrorMessage,
	FieldRetryCount,
	FieldArtifacts,
	FieldNotificationsSent,
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
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusTimeout   Status = "timeout"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusTimeout, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("scheduledtaskexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScheduledTaskExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScheduledTaskID orders the results by the scheduled_task_id field.
func ByScheduledTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledTaskID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByA2aTaskID orders the results by the a2a_task_id field.
func ByA2aTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldA2aTaskID, opts...).ToFunc()
}

// ByScheduledFor orders the results by the scheduled_for field.
func ByScheduledFor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledFor, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByScheduledTaskField orders the results by scheduled_task field.
func ByScheduledTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScheduledTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newScheduledTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScheduledTaskInverseTable, ScheduledTaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ScheduledTaskTable, ScheduledTaskColumn),
	)
}
