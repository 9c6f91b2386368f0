package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenTransaction holds the schema definition for the append-only audit row
// recorded per LLM call.
type TokenTransaction struct {
	ent.Schema
}

// Fields of the TokenTransaction.
func (TokenTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique(),
		field.String("user_id"),
		field.String("task_id").
			Optional().
			Nillable(),
		field.Enum("transaction_type").
			Values("prompt", "completion", "cached"),
		field.String("model"),
		field.Int64("raw_tokens"),
		field.Int64("token_cost").
			Comment("Credits; 1,000,000 = $1"),
		field.Float("rate"),
		field.String("source"),
		field.String("tool_name").
			Optional().
			Nillable(),
		field.String("context").
			Optional().
			Nillable(),
		field.Int64("created_at").
			Immutable(),
	}
}

// Indexes of the TokenTransaction.
func (TokenTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("task_id"),
	}
}
