package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatTask holds the schema definition for the ChatTask entity.
// One row per user↔agent exchange. The id equals the A2A task id that
// produced the exchange, so repeated saves for the same task upsert.
type ChatTask struct {
	ent.Schema
}

// Fields of the ChatTask.
func (ChatTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("user_id"),
		field.Text("user_message").
			Optional().
			Nillable(),
		field.Text("message_bubbles").
			Comment("Opaque JSON string — schema belongs to the frontend"),
		field.Text("task_metadata").
			Optional().
			Nillable().
			Comment("Opaque JSON string"),
		field.Int64("created_time").
			Immutable(),
		field.Int64("updated_time").
			Optional().
			Nillable(),
	}
}

// Edges of the ChatTask.
func (ChatTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("chat_tasks").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the ChatTask.
func (ChatTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_time"),
		index.Fields("user_id"),
	}
}
