package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — the audit record of
// one A2A task. Created on the first request event, finalized when the
// terminal response arrives (or by the background monitor on timeout).
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.Int64("start_time").
			Immutable(),
		field.Int64("end_time").
			Optional().
			Nillable(),
		field.String("status").
			Optional().
			Nillable().
			Comment("running, completed, failed, cancelled, timeout, interrupted"),
		field.Text("initial_request_text").
			Optional().
			Nillable(),
		field.String("agent_name").
			Optional().
			Nillable(),
		field.Bool("background_execution_enabled").
			Default(false),
		field.Int64("max_execution_time_ms").
			Optional().
			Nillable(),
		field.Int64("last_activity_time").
			Optional().
			Nillable().
			Comment("Touched on every bus event — drives the timeout sweep"),
		field.Bool("has_buffered_events").
			Default(false).
			Comment("Set when the persistent SSE buffer holds events for this task"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", TaskEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("start_time"),
		index.Fields("status", "background_execution_enabled"),
	}
}
