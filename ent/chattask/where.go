// Code generated by ent, DO NOT EDIT.

package chattask

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldUserID, v))
}

// UserMessage applies equality check predicate on the "user_message" field. It's identical to UserMessageEQ.
func UserMessage(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldUserMessage, v))
}

// MessageBubbles applies equality check predicate on the "message_bubbles" field. It's identical to MessageBubblesEQ.
func MessageBubbles(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldMessageBubbles, v))
}

// TaskMetadata applies equality check predicate on the "task_metadata" field. It's identical to TaskMetadataEQ.
func TaskMetadata(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldTaskMetadata, v))
}

// CreatedTime applies equality check predicate on the "created_time" field. It's identical to CreatedTimeEQ.
func CreatedTime(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldCreatedTime, v))
}

// UpdatedTime applies equality check predicate on the "updated_time" field. It's identical to UpdatedTimeEQ.
func UpdatedTime(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldUpdatedTime, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContainsFold(FieldUserID, v))
}

// UserMessageEQ applies the EQ predicate on the "user_message" field.
func UserMessageEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldUserMessage, v))
}

// UserMessageNEQ applies the NEQ predicate on the "user_message" field.
func UserMessageNEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNEQ(FieldUserMessage, v))
}

// UserMessageIn applies the In predicate on the "user_message" field.
func UserMessageIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIn(FieldUserMessage, vs...))
}

// UserMessageNotIn applies the NotIn predicate on the "user_message" field.
func UserMessageNotIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotIn(FieldUserMessage, vs...))
}

// UserMessageGT applies the GT predicate on the "user_message" field.
func UserMessageGT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGT(FieldUserMessage, v))
}

// UserMessageGTE applies the GTE predicate on the "user_message" field.
func UserMessageGTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGTE(FieldUserMessage, v))
}

// UserMessageLT applies the LT predicate on the "user_message" field.
func UserMessageLT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLT(FieldUserMessage, v))
}

// UserMessageLTE applies the LTE predicate on the "user_message" field.
func UserMessageLTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLTE(FieldUserMessage, v))
}

// UserMessageContains applies the Contains predicate on the "user_message" field.
func UserMessageContains(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContains(FieldUserMessage, v))
}

// UserMessageHasPrefix applies the HasPrefix predicate on the "user_message" field.
func UserMessageHasPrefix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasPrefix(FieldUserMessage, v))
}

// UserMessageHasSuffix applies the HasSuffix predicate on the "user_message" field.
func UserMessageHasSuffix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasSuffix(FieldUserMessage, v))
}

// UserMessageIsNil applies the IsNil predicate on the "user_message" field.
func UserMessageIsNil() predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIsNull(FieldUserMessage))
}

// UserMessageNotNil applies the NotNil predicate on the "user_message" field.
func UserMessageNotNil() predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotNull(FieldUserMessage))
}

// UserMessageEqualFold applies the EqualFold predicate on the "user_message" field.
func UserMessageEqualFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEqualFold(FieldUserMessage, v))
}

// UserMessageContainsFold applies the ContainsFold predicate on the "user_message" field.
func UserMessageContainsFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContainsFold(FieldUserMessage, v))
}

// MessageBubblesEQ applies the EQ predicate on the "message_bubbles" field.
func MessageBubblesEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldMessageBubbles, v))
}

// MessageBubblesNEQ applies the NEQ predicate on the "message_bubbles" field.
func MessageBubblesNEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNEQ(FieldMessageBubbles, v))
}

// MessageBubblesIn applies the In predicate on the "message_bubbles" field.
func MessageBubblesIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIn(FieldMessageBubbles, vs...))
}

// MessageBubblesNotIn applies the NotIn predicate on the "message_bubbles" field.
func MessageBubblesNotIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotIn(FieldMessageBubbles, vs...))
}

// MessageBubblesGT applies the GT predicate on the "message_bubbles" field.
func MessageBubblesGT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGT(FieldMessageBubbles, v))
}

// MessageBubblesGTE applies the GTE predicate on the "message_bubbles" field.
func MessageBubblesGTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGTE(FieldMessageBubbles, v))
}

// MessageBubblesLT applies the LT predicate on the "message_bubbles" field.
func MessageBubblesLT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLT(FieldMessageBubbles, v))
}

// MessageBubblesLTE applies the LTE predicate on the "message_bubbles" field.
func MessageBubblesLTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLTE(FieldMessageBubbles, v))
}

// MessageBubblesContains applies the Contains predicate on the "message_bubbles" field.
func MessageBubblesContains(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContains(FieldMessageBubbles, v))
}

// MessageBubblesHasPrefix applies the HasPrefix predicate on the "message_bubbles" field.
func MessageBubblesHasPrefix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasPrefix(FieldMessageBubbles, v))
}

// MessageBubblesHasSuffix applies the HasSuffix predicate on the "message_bubbles" field.
func MessageBubblesHasSuffix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasSuffix(FieldMessageBubbles, v))
}

// MessageBubblesEqualFold applies the EqualFold predicate on the "message_bubbles" field.
func MessageBubblesEqualFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEqualFold(FieldMessageBubbles, v))
}

// MessageBubblesContainsFold applies the ContainsFold predicate on the "message_bubbles" field.
func MessageBubblesContainsFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContainsFold(FieldMessageBubbles, v))
}

// TaskMetadataEQ applies the EQ predicate on the "task_metadata" field.
func TaskMetadataEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldTaskMetadata, v))
}

// TaskMetadataNEQ applies the NEQ predicate on the "task_metadata" field.
func TaskMetadataNEQ(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNEQ(FieldTaskMetadata, v))
}

// TaskMetadataIn applies the In predicate on the "task_metadata" field.
func TaskMetadataIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIn(FieldTaskMetadata, vs...))
}

// TaskMetadataNotIn applies the NotIn predicate on the "task_metadata" field.
func TaskMetadataNotIn(vs ...string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotIn(FieldTaskMetadata, vs...))
}

// TaskMetadataGT applies the GT predicate on the "task_metadata" field.
func TaskMetadataGT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGT(FieldTaskMetadata, v))
}

// TaskMetadataGTE applies the GTE predicate on the "task_metadata" field.
func TaskMetadataGTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGTE(FieldTaskMetadata, v))
}

// TaskMetadataLT applies the LT predicate on the "task_metadata" field.
func TaskMetadataLT(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLT(FieldTaskMetadata, v))
}

// TaskMetadataLTE applies the LTE predicate on the "task_metadata" field.
func TaskMetadataLTE(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLTE(FieldTaskMetadata, v))
}

// TaskMetadataContains applies the Contains predicate on the "task_metadata" field.
func TaskMetadataContains(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContains(FieldTaskMetadata, v))
}

// TaskMetadataHasPrefix applies the HasPrefix predicate on the "task_metadata" field.
func TaskMetadataHasPrefix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasPrefix(FieldTaskMetadata, v))
}

// TaskMetadataHasSuffix applies the HasSuffix predicate on the "task_metadata" field.
func TaskMetadataHasSuffix(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldHasSuffix(FieldTaskMetadata, v))
}

// TaskMetadataIsNil applies the IsNil predicate on the "task_metadata" field.
func TaskMetadataIsNil() predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIsNull(FieldTaskMetadata))
}

// TaskMetadataNotNil applies the NotNil predicate on the "task_metadata" field.
func TaskMetadataNotNil() predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotNull(FieldTaskMetadata))
}

// TaskMetadataEqualFold applies the EqualFold predicate on the "task_metadata" field.
func TaskMetadataEqualFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEqualFold(FieldTaskMetadata, v))
}

// TaskMetadataContainsFold applies the ContainsFold predicate on the "task_metadata" field.
func TaskMetadataContainsFold(v string) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldContainsFold(FieldTaskMetadata, v))
}

// CreatedTimeEQ applies the EQ predicate on the "created_time" field.
func CreatedTimeEQ(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldCreatedTime, v))
}

// CreatedTimeNEQ applies the NEQ predicate on the "created_time" field.
func CreatedTimeNEQ(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNEQ(FieldCreatedTime, v))
}

// CreatedTimeIn applies the In predicate on the "created_time" field.
func CreatedTimeIn(vs ...int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIn(FieldCreatedTime, vs...))
}

// CreatedTimeNotIn applies the NotIn predicate on the "created_time" field.
func CreatedTimeNotIn(vs ...int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotIn(FieldCreatedTime, vs...))
}

// CreatedTimeGT applies the GT predicate on the "created_time" field.
func CreatedTimeGT(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGT(FieldCreatedTime, v))
}

// CreatedTimeGTE applies the GTE predicate on the "created_time" field.
func CreatedTimeGTE(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGTE(FieldCreatedTime, v))
}

// CreatedTimeLT applies the LT predicate on the "created_time" field.
func CreatedTimeLT(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLT(FieldCreatedTime, v))
}

// CreatedTimeLTE applies the LTE predicate on the "created_time" field.
func CreatedTimeLTE(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLTE(FieldCreatedTime, v))
}

// UpdatedTimeEQ applies the EQ predicate on the "updated_time" field.
func UpdatedTimeEQ(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldEQ(FieldUpdatedTime, v))
}

// UpdatedTimeNEQ applies the NEQ predicate on the "updated_time" field.
func UpdatedTimeNEQ(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNEQ(FieldUpdatedTime, v))
}

// UpdatedTimeIn applies the In predicate on the "updated_time" field.
func UpdatedTimeIn(vs ...int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIn(FieldUpdatedTime, vs...))
}

// UpdatedTimeNotIn applies the NotIn predicate on the "updated_time" field.
func UpdatedTimeNotIn(vs ...int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotIn(FieldUpdatedTime, vs...))
}

// UpdatedTimeGT applies the GT predicate on the "updated_time" field.
func UpdatedTimeGT(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGT(FieldUpdatedTime, v))
}

// UpdatedTimeGTE applies the GTE predicate on the "updated_time" field.
func UpdatedTimeGTE(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldGTE(FieldUpdatedTime, v))
}

// UpdatedTimeLT applies the LT predicate on the "updated_time" field.
func UpdatedTimeLT(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLT(FieldUpdatedTime, v))
}

// UpdatedTimeLTE applies the LTE predicate on the "updated_time" field.
func UpdatedTimeLTE(v int64) predicate.ChatTask {
	return predicate.ChatTask(sql.FieldLTE(FieldUpdatedTime, v))
}

// UpdatedTimeIsNil applies the IsNil predicate on the "updated_time" field.
func UpdatedTimeIsNil() predicate.ChatTask {
	return predicate.ChatTask(sql.FieldIsNull(FieldUpdatedTime))
}

// UpdatedTimeNotNil applies the NotNil predicate on the "updated_time" field.
func UpdatedTimeNotNil() predicate.ChatTask {
	return predicate.ChatTask(sql.FieldNotNull(FieldUpdatedTime))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ChatTask {
	return predicate.ChatTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.ChatTask {
	return predicate.ChatTask(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatTask) predicate.ChatTask {
	return predicate.ChatTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatTask) predicate.ChatTask {
	return predicate.ChatTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatTask) predicate.ChatTask {
	return predicate.ChatTask(sql.NotPredicates(p))
}
