// Code generated by ent, DO NOT EDIT.

package chattask

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chattask type in the database.
	Label = "chat_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldUserMessage holds the string denoting the user_message field in the database.
	FieldUserMessage = "user_message"
	// FieldMessageBubbles holds the string denoting the message_bubbles field in the database.
	FieldMessageBubbles = "message_bubbles"
	// FieldTaskMetadata holds the string denoting the task_metadata field in the database.
	FieldTaskMetadata = "task_metadata"
	// FieldCreatedTime holds the string denoting the created_time field in the database.
	FieldCreatedTime = "created_time"
	// FieldUpdatedTime holds the string denoting the updated_time field in the database.
	FieldUpdatedTime = "updated_time"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the chattask in the database.
	Table = "chat_tasks"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "chat_tasks"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for chattask fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserID,
	FieldUserMessage,
	FieldMessageBubbles,
	FieldTaskMetadata,
	FieldCreatedTime,
	FieldUpdatedTime,
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

// OrderOption defines the ordering options for the ChatTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUserMessage orders the results by the user_message field.
func ByUserMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserMessage, opts...).ToFunc()
}

// ByMessageBubbles orders the results by the message_bubbles field.
func ByMessageBubbles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageBubbles, opts...).ToFunc()
}

// ByTaskMetadata orders the results by the task_metadata field.
func ByTaskMetadata(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskMetadata, opts...).ToFunc()
}

// ByCreatedTime orders the results by the created_time field.
func ByCreatedTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedTime, opts...).ToFunc()
}

// ByUpdatedTime orders the results by the updated_time field.
func ByUpdatedTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedTime, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
