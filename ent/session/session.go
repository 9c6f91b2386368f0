// Code generated by ent, DO NOT EDIT.

package session

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldCreatedTime holds the string denoting the created_time field in the database.
	FieldCreatedTime = "created_time"
	// FieldUpdatedTime holds the string denoting the updated_time field in the database.
	FieldUpdatedTime = "updated_time"
	// FieldGatewayType holds the string denoting the gateway_type field in the database.
	FieldGatewayType = "gateway_type"
	// FieldExternalContextID holds the string denoting the external_context_id field in the database.
	FieldExternalContextID = "external_context_id"
	// FieldIsCompressionBranch holds the string denoting the is_compression_branch field in the database.
	FieldIsCompressionBranch = "is_compression_branch"
	// FieldCompressionMetadata holds the string denoting the compression_metadata field in the database.
	FieldCompressionMetadata = "compression_metadata"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeChatTasks holds the string denoting the chat_tasks edge name in mutations.
	EdgeChatTasks = "chat_tasks"
	// EdgeSseEvents holds the string denoting the sse_events edge name in mutations.
	EdgeSseEvents = "sse_events"
	// ChatTaskFieldID holds the string denoting the ID field of the ChatTask.
	ChatTaskFieldID = "task_id"
	// SSEEventFieldID holds the string denoting the ID field of the SSEEvent.
	SSEEventFieldID = "id"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// ChatTasksTable is the table that holds the chat_tasks relation/edge.
	ChatTasksTable = "chat_tasks"
	// ChatTasksInverseTable is the table name for the ChatTask entity.
	// It exists in this package in order to avoid circular dependency with the "chattask" package.
	ChatTasksInverseTable = "chat_tasks"
	// ChatTasksColumn is the table column denoting the chat_tasks relation/edge.
	ChatTasksColumn = "session_id"
	// SseEventsTable is the table that holds the sse_events relation/edge.
	SseEventsTable = "sse_events"
	// SseEventsInverseTable is the table name for the SSEEvent entity.
	// It exists in this package in order to avoid circular dependency with the "sseevent" package.
	SseEventsInverseTable = "sse_events"
	// SseEventsColumn is the table column denoting the sse_events relation/edge.
	SseEventsColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldAgentID,
	FieldProjectID,
	FieldCreatedTime,
	FieldUpdatedTime,
	FieldGatewayType,
	FieldExternalContextID,
	FieldIsCompressionBranch,
	FieldCompressionMetadata,
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
	// DefaultIsCompressionBranch holds the default value on creation for the "is_compression_branch" field.
	DefaultIsCompressionBranch bool
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByCreatedTime orders the results by the created_time field.
func ByCreatedTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedTime, opts...).ToFunc()
}

// ByUpdatedTime orders the results by the updated_time field.
func ByUpdatedTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedTime, opts...).ToFunc()
}

// ByGatewayType orders the results by the gateway_type field.
func ByGatewayType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGatewayType, opts...).ToFunc()
}

// ByExternalContextID orders the results by the external_context_id field.
func ByExternalContextID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalContextID, opts...).ToFunc()
}

// ByIsCompressionBranch orders the results by the is_compression_branch field.
func ByIsCompressionBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCompressionBranch, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByChatTasksCount orders the results by chat_tasks count.
func ByChatTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatTasksStep(), opts...)
	}
}

// ByChatTasks orders the results by chat_tasks terms.
func ByChatTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySseEventsCount orders the results by sse_events count.
func BySseEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSseEventsStep(), opts...)
	}
}

// BySseEvents orders the results by sse_events terms.
func BySseEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSseEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChatTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatTasksInverseTable, ChatTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatTasksTable, ChatTasksColumn),
	)
}
func newSseEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SseEventsInverseTable, SSEEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SseEventsTable, SseEventsColumn),
	)
}
