package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Feedback holds the schema definition for the Feedback entity.
type Feedback struct {
	ent.Schema
}

// Fields of the Feedback.
func (Feedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("task_id"),
		field.String("user_id"),
		field.Enum("rating").
			Values("up", "down"),
		field.Text("comment").
			Optional().
			Nillable(),
		field.Int64("created_time").
			Immutable(),
	}
}

// Indexes of the Feedback.
func (Feedback) Indexes() []ent.Index {
	return []ent.Index{
		// One rating of each polarity per user per task.
		index.Fields("user_id", "task_id", "rating").
			Unique(),
		index.Fields("created_time"),
	}
}
