package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonthlyUsage holds the schema definition for the per-(user, month) token
// cost aggregate. Costs are credits: 1,000,000 credits = $1.
type MonthlyUsage struct {
	ent.Schema
}

// Fields of the MonthlyUsage.
func (MonthlyUsage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique(),
		field.String("user_id"),
		field.String("month").
			Comment("YYYY-MM"),
		field.Int64("total_usage").
			Default(0),
		field.Int64("prompt_usage").
			Default(0),
		field.Int64("completion_usage").
			Default(0),
		field.Int64("cached_usage").
			Default(0),
		field.JSON("usage_by_model", map[string]int64{}).
			Optional(),
		field.JSON("usage_by_source", map[string]int64{}).
			Optional(),
		field.Int64("created_at").
			Immutable(),
		field.Int64("updated_at"),
	}
}

// Indexes of the MonthlyUsage.
func (MonthlyUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "month").
			Unique(),
	}
}
