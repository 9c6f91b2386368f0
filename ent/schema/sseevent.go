package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SSEEvent holds the schema definition for the SSEEvent entity — one
// persisted SSE payload for a background task. event_sequence is strictly
// increasing per task in insertion order; assigned inside the insert
// transaction.
type SSEEvent struct {
	ent.Schema
}

// Fields of the SSEEvent.
func (SSEEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique(),
		field.String("task_id"),
		field.String("session_id"),
		field.String("user_id"),
		field.Int64("event_sequence"),
		field.String("event_type"),
		field.Text("event_data"),
		field.Int64("created_at").
			Immutable(),
		field.Bool("consumed").
			Default(false),
		field.Int64("consumed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the SSEEvent.
func (SSEEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("sse_events").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the SSEEvent.
func (SSEEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "event_sequence").
			Unique(),
		index.Fields("session_id", "consumed"),
		index.Fields("created_at"),
	}
}
