package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledTask holds the schema definition for the ScheduledTask entity —
// a trigger definition owned by a user, or namespace-level when user_id is
// null.
type ScheduledTask struct {
	ent.Schema
}

// Fields of the ScheduledTask.
func (ScheduledTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scheduled_task_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("namespace"),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Null = namespace-level task, executable by any member"),
		field.String("created_by"),
		field.Enum("schedule_type").
			Values("cron", "interval", "one_time"),
		field.String("schedule_expression"),
		field.String("timezone").
			Default("UTC"),
		field.String("target_agent_name"),
		field.JSON("task_message", []map[string]interface{}{}).
			Comment("A2A message parts"),
		field.JSON("task_metadata", map[string]interface{}{}).
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Int("max_retries").
			Default(0),
		field.Int("retry_delay_seconds").
			Default(60),
		field.Int("timeout_seconds").
			Default(300),
		field.JSON("notification_config", map[string]interface{}{}).
			Optional(),
		field.Int64("created_at").
			Immutable(),
		field.Int64("updated_at"),
		field.Int64("next_run_at").
			Optional().
			Nillable(),
		field.Int64("last_run_at").
			Optional().
			Nillable(),
		field.Int64("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ScheduledTask.
func (ScheduledTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("executions", ScheduledTaskExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ScheduledTask.
func (ScheduledTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("namespace", "enabled"),
		index.Fields("user_id"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
