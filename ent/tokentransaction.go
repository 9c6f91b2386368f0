// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/tokentransaction"
)

// TokenTransaction is the model entity for the TokenTransaction schema.
type TokenTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID *string `json:"task_id,omitempty"`
	// TransactionType holds the value of the "transaction_type" field.
	TransactionType tokentransaction.TransactionType `json:"transaction_type,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// RawTokens holds the value of the "raw_tokens" field.
	RawTokens int64 `json:"raw_tokens,omitempty"`
	// Credits; 1,000,000 = $1
	TokenCost int64 `json:"token_cost,omitempty"`
	// Rate holds the value of the "rate" field.
	Rate float64 `json:"rate,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName *string `json:"tool_name,omitempty"`
	// Context holds the value of the "context" field.
	Context *string `json:"context,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    int64 `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TokenTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tokentransaction.FieldRate:
			values[i] = new(sql.NullFloat64)
		case tokentransaction.FieldID, tokentransaction.FieldRawTokens, tokentransaction.FieldTokenCost, tokentransaction.FieldCreatedAt:
			values[i] = new(sql.NullInt64)
		case tokentransaction.FieldUserID, tokentransaction.FieldTaskID, tokentransaction.FieldTransactionType, tokentransaction.FieldModel, tokentransaction.FieldSource, tokentransaction.FieldToolName, tokentransaction.FieldContext:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TokenTransaction fields.
func (_m *TokenTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tokentransaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tokentransaction.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case tokentransaction.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(string)
				*_m.TaskID = value.String
			}
		case tokentransaction.FieldTransactionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_type", values[i])
			} else if value.Valid {
				_m.TransactionType = tokentransaction.TransactionType(value.String)
			}
		case tokentransaction.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case tokentransaction.FieldRawTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_tokens", values[i])
			} else if value.Valid {
				_m.RawTokens = value.Int64
			}
		case tokentransaction.FieldTokenCost:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_cost", values[i])
			} else if value.Valid {
				_m.TokenCost = value.Int64
			}
		case tokentransaction.FieldRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate", values[i])
			} else if value.Valid {
				_m.Rate = value.Float64
			}
		case tokentransaction.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case tokentransaction.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = new(string)
				*_m.ToolName = value.String
			}
		case tokentransaction.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = new(string)
				*_m.Context = value.String
			}
		case tokentransaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TokenTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *TokenTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TokenTransaction.
// Note that you need to call TokenTransaction.Unwrap() before calling this method if this TokenTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TokenTransaction) Update() *TokenTransactionUpdateOne {
	return NewTokenTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TokenTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TokenTransaction) Unwrap() *TokenTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TokenTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TokenTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("TokenTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("transaction_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TransactionType))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("raw_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawTokens))
	builder.WriteString(", ")
	builder.WriteString("token_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenCost))
	builder.WriteString(", ")
	builder.WriteString("rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rate))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.ToolName; v != nil {
		builder.WriteString("tool_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Context; v != nil {
		builder.WriteString("context=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAt))
	builder.WriteByte(')')
	return builder.String()
}

// TokenTransactions is a parsable slice of TokenTransaction.
type TokenTransactions []*TokenTransaction
