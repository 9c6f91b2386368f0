// Code generated by ent, DO NOT EDIT.

package schedulerlock

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the schedulerlock type in the database.
	Label = "scheduler_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLeaderID holds the string denoting the leader_id field in the database.
	FieldLeaderID = "leader_id"
	// FieldLeaderNamespace holds the string denoting the leader_namespace field in the database.
	FieldLeaderNamespace = "leader_namespace"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// Table holds the table name of the schedulerlock in the database.
	Table = "scheduler_locks"
)

// Columns holds all SQL columns for schedulerlock fields.
var Columns = []string{
	FieldID,
	FieldLeaderID,
	FieldLeaderNamespace,
	FieldAcquiredAt,
	FieldExpiresAt,
	FieldHeartbeatAt,
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

// OrderOption defines the ordering options for the SchedulerLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeaderID orders the results by the leader_id field.
func ByLeaderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaderID, opts...).ToFunc()
}

// ByLeaderNamespace orders the results by the leader_namespace field.
func ByLeaderNamespace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaderNamespace, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}
