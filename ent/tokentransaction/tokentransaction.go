// Code generated by ent, DO NOT EDIT.

package tokentransaction

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tokentransaction type in the database.
	Label = "token_transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldTransactionType holds the string denoting the transaction_type field in the database.
	FieldTransactionType = "transaction_type"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldRawTokens holds the string denoting the raw_tokens field in the database.
	FieldRawTokens = "raw_tokens"
	// FieldTokenCost holds the string denoting the token_cost field in the database.
	FieldTokenCost = "token_cost"
	// FieldRate holds the string denoting the rate field in the database.
	FieldRate = "rate"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the tokentransaction in the database.
	Table = "token_transactions"
)

// Columns holds all SQL columns for tokentransaction fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTaskID,
	FieldTransactionType,
	FieldModel,
	FieldRawTokens,
	FieldTokenCost,
	FieldRate,
	FieldSource,
	FieldToolName,
	FieldContext,
	FieldCreatedAt,
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

// TransactionType defines the type for the "transaction_type" enum field.
type TransactionType string

// TransactionType values.
const (
	TransactionTypePrompt     TransactionType = "prompt"
	TransactionTypeCompletion TransactionType = "completion"
	TransactionTypeCached     TransactionType = "cached"
)

func (tt TransactionType) String() string {
	return string(tt)
}

// TransactionTypeValidator is a validator for the "transaction_type" field enum values. It is called by the builders before save.
func TransactionTypeValidator(tt TransactionType) error {
	switch tt {
	case TransactionTypePrompt, TransactionTypeCompletion, TransactionTypeCached:
		return nil
	default:
		return fmt.Errorf("tokentransaction: invalid enum value for transaction_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the TokenTransaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByTransactionType orders the results by the transaction_type field.
func ByTransactionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionType, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByRawTokens orders the results by the raw_tokens field.
func ByRawTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawTokens, opts...).ToFunc()
}

// ByTokenCost orders the results by the token_cost field.
func ByTokenCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCost, opts...).ToFunc()
}

// ByRate orders the results by the rate field.
func ByRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRate, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
