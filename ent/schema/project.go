package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity — a named
// system-prompt container sessions can be grouped under.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("user_id"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Text("system_prompt").
			Optional().
			Nillable(),
		field.String("default_agent_id").
			Optional().
			Nillable(),
		field.Int64("created_at").
			Immutable(),
		field.Int64("updated_at").
			Optional().
			Nillable(),
		field.Int64("deleted_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
