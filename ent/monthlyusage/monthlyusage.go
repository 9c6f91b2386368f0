// Code generated by ent, DO NOT EDIT.

package monthlyusage

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the monthlyusage type in the database.
	Label = "monthly_usage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMonth holds the string denoting the month field in the database.
	FieldMonth = "month"
	// FieldTotalUsage holds the string denoting the total_usage field in the database.
	FieldTotalUsage = "total_usage"
	// FieldPromptUsage holds the string denoting the prompt_usage field in the database.
	FieldPromptUsage = "prompt_usage"
	// FieldCompletionUsage holds the string denoting the completion_usage field in the database.
	FieldCompletionUsage = "completion_usage"
	// FieldCachedUsage holds the string denoting the cached_usage field in the database.
	FieldCachedUsage = "cached_usage"
	// FieldUsageByModel holds the string denoting the usage_by_model field in the database.
	FieldUsageByModel = "usage_by_model"
	// FieldUsageBySource holds the string denoting the usage_by_source field in the database.
	FieldUsageBySource = "usage_by_source"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the monthlyusage in the database.
	Table = "monthly_usages"
)

// Columns holds all SQL columns for monthlyusage fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldMonth,
	FieldTotalUsage,
	FieldPromptUsage,
	FieldCompletionUsage,
	FieldCachedUsage,
	FieldUsageByModel,
	FieldUsageBySource,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultTotalUsage holds the default value on creation for the "total_usage" field.
	DefaultTotalUsage int64
	// DefaultPromptUsage holds the default value on creation for the "prompt_usage" field.
	DefaultPromptUsage int64
	// DefaultCompletionUsage holds the default value on creation for the "completion_usage" field.
	DefaultCompletionUsage int64
	// DefaultCachedUsage holds the default value on creation for the "cached_usage" field.
	DefaultCachedUsage int64
)

// OrderOption defines the ordering options for the MonthlyUsage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMonth orders the results by the month field.
func ByMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonth, opts...).ToFunc()
}

// ByTotalUsage orders the results by the total_usage field.
func ByTotalUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalUsage, opts...).ToFunc()
}

// ByPromptUsage orders the results by the prompt_usage field.
func ByPromptUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptUsage, opts...).ToFunc()
}

// ByCompletionUsage orders the results by the completion_usage field.
func ByCompletionUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionUsage, opts...).ToFunc()
}

// ByCachedUsage orders the results by the cached_usage field.
func ByCachedUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCachedUsage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
