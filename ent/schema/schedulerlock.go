package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SchedulerLock holds the schema definition for the single-row leader
// election lock. The table contains zero or one rows (id is always 1); a row
// whose expires_at is in the past is treated as absent for acquisition.
type SchedulerLock struct {
	ent.Schema
}

// Fields of the SchedulerLock.
func (SchedulerLock) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique(),
		field.String("leader_id"),
		field.String("leader_namespace"),
		field.Int64("acquired_at"),
		field.Int64("expires_at"),
		field.Int64("heartbeat_at"),
	}
}
