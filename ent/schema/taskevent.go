package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskEvent holds the schema definition for the TaskEvent entity.
// Append-only log of every bus message tied to a task.
type TaskEvent struct {
	ent.Schema
}

// Fields of the TaskEvent.
func (TaskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.String("user_id").
			Optional().
			Nillable(),
		field.Int64("created_time").
			Immutable(),
		field.String("topic"),
		field.Enum("direction").
			Values("request", "response", "status_update", "artifact_update"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Sanitized JSON — NaN/Infinity replaced before persist"),
	}
}

// Edges of the TaskEvent.
func (TaskEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("events").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the TaskEvent.
func (TaskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_time"),
	}
}
