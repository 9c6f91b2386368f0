// Code generated by ent, DO NOT EDIT.

package task

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInitialRequestText holds the string denoting the initial_request_text field in the database.
	FieldInitialRequestText = "initial_request_text"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldBackgroundExecutionEnabled holds the string denoting the background_execution_enabled field in the database.
	FieldBackgroundExecutionEnabled = "background_execution_enabled"
	// FieldMaxExecutionTimeMs holds the string denoting the max_execution_time_ms field in the database.
	FieldMaxExecutionTimeMs = "max_execution_time_ms"
	// FieldLastActivityTime holds the string denoting the last_activity_time field in the database.
	FieldLastActivityTime = "last_activity_time"
	// FieldHasBufferedEvents holds the string denoting the has_buffered_events field in the database.
	FieldHasBufferedEvents = "has_buffered_events"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// TaskEventFieldID holds the string denoting the ID field of the TaskEvent.
	TaskEventFieldID = "event_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "task_events"
	// EventsInverseTable is the table name for the TaskEvent entity.
	// It exists in this package in order to avoid circular dependency with the "taskevent" package.
	EventsInverseTable = "task_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStartTime,
	FieldEndTime,
	FieldStatus,
	FieldInitialRequestText,
	FieldAgentName,
	FieldBackgroundExecutionEnabled,
	FieldMaxExecutionTimeMs,
	FieldLastActivityTime,
	FieldHasBufferedEvents,
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
	// DefaultBackgroundExecutionEnabled holds the default value on creation for the "background_execution_enabled" field.
	DefaultBackgroundExecutionEnabled bool
	// DefaultHasBufferedEvents holds the default value on creation for the "has_buffered_events" field.
	DefaultHasBufferedEvents bool
)

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInitialRequestText orders the results by the initial_request_text field.
func ByInitialRequestText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialRequestText, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByBackgroundExecutionEnabled orders the results by the background_execution_enabled field.
func ByBackgroundExecutionEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackgroundExecutionEnabled, opts...).ToFunc()
}

// ByMaxExecutionTimeMs orders the results by the max_execution_time_ms field.
func ByMaxExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxExecutionTimeMs, opts...).ToFunc()
}

// ByLastActivityTime orders the results by the last_activity_time field.
func ByLastActivityTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityTime, opts...).ToFunc()
}

// ByHasBufferedEvents orders the results by the has_buffered_events field.
func ByHasBufferedEvents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasBufferedEvents, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, TaskEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
