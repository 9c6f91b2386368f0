package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session is the user-facing conversation container; every chat task and
// buffered SSE event hangs off one.
type Session struct {
	ent.Schema
}

// Fields of the Session. Domain timestamps are epoch milliseconds.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Owning user — all queries filter by this"),
		field.String("name").
			Optional().
			Nillable(),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("project_id").
			Optional().
			Nillable(),
		field.Int64("created_time").
			Immutable(),
		field.Int64("updated_time"),
		field.String("gateway_type").
			Optional().
			Nillable(),
		field.String("external_context_id").
			Optional().
			Nillable().
			Comment("Client-scoped A2A context id, for lookup by external callers"),
		field.Bool("is_compression_branch").
			Default(false),
		field.JSON("compression_metadata", map[string]interface{}{}).
			Optional().
			Comment("Parent session id, compressed message count, token estimates"),
		field.Int64("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete — excluded by all default queries"),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chat_tasks", ChatTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sse_events", SSEEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "updated_time"),
		index.Fields("user_id", "project_id"),
		index.Fields("external_context_id"),

		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
