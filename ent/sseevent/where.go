// Code generated by ent, DO NOT EDIT.

package sseevent

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldTaskID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldUserID, v))
}

// EventSequence applies equality check predicate on the "event_sequence" field. It's identical to EventSequenceEQ.
func EventSequence(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldEventSequence, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldEventType, v))
}

// EventData applies equality check predicate on the "event_data" field. It's identical to EventDataEQ.
func EventData(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldEventData, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// Consumed applies equality check predicate on the "consumed" field. It's identical to ConsumedEQ.
func Consumed(v bool) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldConsumed, v))
}

// ConsumedAt applies equality check predicate on the "consumed_at" field. It's identical to ConsumedAtEQ.
func ConsumedAt(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldConsumedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContainsFold(FieldTaskID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContainsFold(FieldUserID, v))
}

// EventSequenceEQ applies the EQ predicate on the "event_sequence" field.
func EventSequenceEQ(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldEventSequence, v))
}

// EventSequenceNEQ applies the NEQ predicate on the "event_sequence" field.
func EventSequenceNEQ(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldEventSequence, v))
}

// EventSequenceIn applies the In predicate on the "event_sequence" field.
func EventSequenceIn(vs ...int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIn(FieldEventSequence, vs...))
}

// EventSequenceNotIn applies the NotIn predicate on the "event_sequence" field.
func EventSequenceNotIn(vs ...int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotIn(FieldEventSequence, vs...))
}

// EventSequenceGT applies the GT predicate on the "event_sequence" field.
func EventSequenceGT(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGT(FieldEventSequence, v))
}

// EventSequenceGTE applies the GTE predicate on the "event_sequence" field.
func EventSequenceGTE(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGTE(FieldEventSequence, v))
}

// EventSequenceLT applies the LT predicate on the "event_sequence" field.
func EventSequenceLT(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLT(FieldEventSequence, v))
}

// EventSequenceLTE applies the LTE predicate on the "event_sequence" field.
func EventSequenceLTE(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLTE(FieldEventSequence, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContainsFold(FieldEventType, v))
}

// EventDataEQ applies the EQ predicate on the "event_data" field.
func EventDataEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldEventData, v))
}

// EventDataNEQ applies the NEQ predicate on the "event_data" field.
func EventDataNEQ(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldEventData, v))
}

// EventDataIn applies the In predicate on the "event_data" field.
func EventDataIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIn(FieldEventData, vs...))
}

// EventDataNotIn applies the NotIn predicate on the "event_data" field.
func EventDataNotIn(vs ...string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotIn(FieldEventData, vs...))
}

// EventDataGT applies the GT predicate on the "event_data" field.
func EventDataGT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGT(FieldEventData, v))
}

// EventDataGTE applies the GTE predicate on the "event_data" field.
func EventDataGTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGTE(FieldEventData, v))
}

// EventDataLT applies the LT predicate on the "event_data" field.
func EventDataLT(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLT(FieldEventData, v))
}

// EventDataLTE applies the LTE predicate on the "event_data" field.
func EventDataLTE(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLTE(FieldEventData, v))
}

// EventDataContains applies the Contains predicate on the "event_data" field.
func EventDataContains(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContains(FieldEventData, v))
}

// EventDataHasPrefix applies the HasPrefix predicate on the "event_data" field.
func EventDataHasPrefix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasPrefix(FieldEventData, v))
}

// EventDataHasSuffix applies the HasSuffix predicate on the "event_data" field.
func EventDataHasSuffix(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldHasSuffix(FieldEventData, v))
}

// EventDataEqualFold applies the EqualFold predicate on the "event_data" field.
func EventDataEqualFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEqualFold(FieldEventData, v))
}

// EventDataContainsFold applies the ContainsFold predicate on the "event_data" field.
func EventDataContainsFold(v string) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldContainsFold(FieldEventData, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// ConsumedEQ applies the EQ predicate on the "consumed" field.
func ConsumedEQ(v bool) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldConsumed, v))
}

// ConsumedNEQ applies the NEQ predicate on the "consumed" field.
func ConsumedNEQ(v bool) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldConsumed, v))
}

// ConsumedAtEQ applies the EQ predicate on the "consumed_at" field.
func ConsumedAtEQ(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldEQ(FieldConsumedAt, v))
}

// ConsumedAtNEQ applies the NEQ predicate on the "consumed_at" field.
func ConsumedAtNEQ(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNEQ(FieldConsumedAt, v))
}

// ConsumedAtIn applies the In predicate on the "consumed_at" field.
func ConsumedAtIn(vs ...int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIn(FieldConsumedAt, vs...))
}

// ConsumedAtNotIn applies the NotIn predicate on the "consumed_at" field.
func ConsumedAtNotIn(vs ...int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotIn(FieldConsumedAt, vs...))
}

// ConsumedAtGT applies the GT predicate on the "consumed_at" field.
func ConsumedAtGT(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGT(FieldConsumedAt, v))
}

// ConsumedAtGTE applies the GTE predicate on the "consumed_at" field.
func ConsumedAtGTE(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldGTE(FieldConsumedAt, v))
}

// ConsumedAtLT applies the LT predicate on the "consumed_at" field.
func ConsumedAtLT(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLT(FieldConsumedAt, v))
}

// ConsumedAtLTE applies the LTE predicate on the "consumed_at" field.
func ConsumedAtLTE(v int64) predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldLTE(FieldConsumedAt, v))
}

// ConsumedAtIsNil applies the IsNil predicate on the "consumed_at" field.
func ConsumedAtIsNil() predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldIsNull(FieldConsumedAt))
}

// ConsumedAtNotNil applies the NotNil predicate on the "consumed_at" field.
func ConsumedAtNotNil() predicate.SSEEvent {
	return predicate.SSEEvent(sql.FieldNotNull(FieldConsumedAt))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SSEEvent {
	return predicate.SSEEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.SSEEvent {
	return predicate.SSEEvent(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SSEEvent) predicate.SSEEvent {
	return predicate.SSEEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SSEEvent) predicate.SSEEvent {
	return predicate.SSEEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SSEEvent) predicate.SSEEvent {
	return predicate.SSEEvent(sql.NotPredicates(p))
}
