package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledTaskExecution holds the schema definition for one firing of a
// scheduled task.
type ScheduledTaskExecution struct {
	ent.Schema
}

// Fields of the ScheduledTaskExecution.
func (ScheduledTaskExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("scheduled_task_id"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "timeout", "cancelled").
			Default("pending"),
		field.String("a2a_task_id").
			Optional().
			Nillable().
			Comment("Correlation key for the result collector"),
		field.Int64("scheduled_for"),
		field.Int64("started_at").
			Optional().
			Nillable(),
		field.Int64("completed_at").
			Optional().
			Nillable(),
		field.JSON("result_summary", map[string]interface{}{}).
			Optional(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.JSON("artifacts", []map[string]interface{}{}).
			Optional(),
		field.JSON("notifications_sent", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the ScheduledTaskExecution.
func (ScheduledTaskExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scheduled_task", ScheduledTask.Type).
			Ref("executions").
			Field("scheduled_task_id").
			Unique().
			Required(),
	}
}

// Indexes of the ScheduledTaskExecution.
func (ScheduledTaskExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scheduled_task_id", "scheduled_for"),
		index.Fields("status"),
		index.Fields("a2a_task_id"),
	}
}
