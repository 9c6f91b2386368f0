// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/monthlyusage"
)

// MonthlyUsage is the model entity for the MonthlyUsage schema.
type MonthlyUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// YYYY-MM
	Month string `json:"month,omitempty"`
	// TotalUsage holds the value of the "total_usage" field.
	TotalUsage int64 `json:"total_usage,omitempty"`
	// PromptUsage holds the value of the "prompt_usage" field.
	PromptUsage int64 `json:"prompt_usage,omitempty"`
	// CompletionUsage holds the value of the "completion_usage" field.
	CompletionUsage int64 `json:"completion_usage,omitempty"`
	// CachedUsage holds the value of the "cached_usage" field.
	CachedUsage int64 `json:"cached_usage,omitempty"`
	// UsageByModel holds the value of the "usage_by_model" field.
	UsageByModel map[string]int64 `json:"usage_by_model,omitempty"`
	// UsageBySource holds the value of the "usage_by_source" field.
	UsageBySource map[string]int64 `json:"usage_by_source,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt int64 `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    int64 `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MonthlyUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case monthlyusage.FieldUsageByModel, monthlyusage.FieldUsageBySource:
			values[i] = new([]byte)
		case monthlyusage.FieldID, monthlyusage.FieldTotalUsage, monthlyusage.FieldPromptUsage, monthlyusage.FieldCompletionUsage, monthlyusage.FieldCachedUsage, monthlyusage.FieldCreatedAt, monthlyusage.FieldUpdatedAt:
			values[i] = new(sql.NullInt64)
		case monthlyusage.FieldUserID, monthlyusage.FieldMonth:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MonthlyUsage fields.
func (_m *MonthlyUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case monthlyusage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case monthlyusage.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case monthlyusage.FieldMonth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				_m.Month = value.String
			}
		case monthlyusage.FieldTotalUsage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_usage", values[i])
			} else if value.Valid {
				_m.TotalUsage = value.Int64
			}
		case monthlyusage.FieldPromptUsage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_usage", values[i])
			} else if value.Valid {
				_m.PromptUsage = value.Int64
			}
		case monthlyusage.FieldCompletionUsage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_usage", values[i])
			} else if value.Valid {
				_m.CompletionUsage = value.Int64
			}
		case monthlyusage.FieldCachedUsage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cached_usage", values[i])
			} else if value.Valid {
				_m.CachedUsage = value.Int64
			}
		case monthlyusage.FieldUsageByModel:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field usage_by_model", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UsageByModel); err != nil {
					return fmt.Errorf("unmarshal field usage_by_model: %w", err)
				}
			}
		case monthlyusage.FieldUsageBySource:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field usage_by_source", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UsageBySource); err != nil {
					return fmt.Errorf("unmarshal field usage_by_source: %w", err)
				}
			}
		case monthlyusage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Int64
			}
		case monthlyusage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MonthlyUsage.
// This includes values selected through modifiers, order, etc.
func (_m *MonthlyUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MonthlyUsage.
// Note that you need to call MonthlyUsage.Unwrap() before calling this method if this MonthlyUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MonthlyUsage) Update() *MonthlyUsageUpdateOne {
	return NewMonthlyUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MonthlyUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MonthlyUsage) Unwrap() *MonthlyUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MonthlyUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MonthlyUsage) String() string {
	var builder strings.Builder
	builder.WriteString("MonthlyUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("month=")
	builder.WriteString(_m.Month)
	builder.WriteString(", ")
	builder.WriteString("total_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalUsage))
	builder.WriteString(", ")
	builder.WriteString("prompt_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptUsage))
	builder.WriteString(", ")
	builder.WriteString("completion_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionUsage))
	builder.WriteString(", ")
	builder.WriteString("cached_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CachedUsage))
	builder.WriteString(", ")
	builder.WriteString("usage_by_model=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageByModel))
	builder.WriteString(", ")
	builder.WriteString("usage_by_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageBySource))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAt))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpdatedAt))
	builder.WriteByte(')')
	return builder.String()
}

// MonthlyUsages is a parsable slice of MonthlyUsage.
type MonthlyUsages []*MonthlyUsage
