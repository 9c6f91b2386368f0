// Code generated by ent, DO NOT EDIT.

package task

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUserID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEndTime, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// InitialRequestText applies equality check predicate on the "initial_request_text" field. It's identical to InitialRequestTextEQ.
func InitialRequestText(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldInitialRequestText, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAgentName, v))
}

// BackgroundExecutionEnabled applies equality check predicate on the "background_execution_enabled" field. It's identical to BackgroundExecutionEnabledEQ.
func BackgroundExecutionEnabled(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBackgroundExecutionEnabled, v))
}

// MaxExecutionTimeMs applies equality check predicate on the "max_execution_time_ms" field. It's identical to MaxExecutionTimeMsEQ.
func MaxExecutionTimeMs(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxExecutionTimeMs, v))
}

// LastActivityTime applies equality check predicate on the "last_activity_time" field. It's identical to LastActivityTimeEQ.
func LastActivityTime(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastActivityTime, v))
}

// HasBufferedEvents applies equality check predicate on the "has_buffered_events" field. It's identical to HasBufferedEventsEQ.
func HasBufferedEvents(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHasBufferedEvents, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldUserID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldEndTime))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldStatus, v))
}

// InitialRequestTextEQ applies the EQ predicate on the "initial_request_text" field.
func InitialRequestTextEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldInitialRequestText, v))
}

// InitialRequestTextNEQ applies the NEQ predicate on the "initial_request_text" field.
func InitialRequestTextNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldInitialRequestText, v))
}

// InitialRequestTextIn applies the In predicate on the "initial_request_text" field.
func InitialRequestTextIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldInitialRequestText, vs...))
}

// InitialRequestTextNotIn applies the NotIn predicate on the "initial_request_text" field.
func InitialRequestTextNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldInitialRequestText, vs...))
}

// InitialRequestTextGT applies the GT predicate on the "initial_request_text" field.
func InitialRequestTextGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldInitialRequestText, v))
}

// InitialRequestTextGTE applies the GTE predicate on the "initial_request_text" field.
func InitialRequestTextGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldInitialRequestText, v))
}

// InitialRequestTextLT applies the LT predicate on the "initial_request_text" field.
func InitialRequestTextLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldInitialRequestText, v))
}

// InitialRequestTextLTE applies the LTE predicate on the "initial_request_text" field.
func InitialRequestTextLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldInitialRequestText, v))
}

// InitialRequestTextContains applies the Contains predicate on the "initial_request_text" field.
func InitialRequestTextContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldInitialRequestText, v))
}

// InitialRequestTextHasPrefix applies the HasPrefix predicate on the "initial_request_text" field.
func InitialRequestTextHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldInitialRequestText, v))
}

// InitialRequestTextHasSuffix applies the HasSuffix predicate on the "initial_request_text" field.
func InitialRequestTextHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldInitialRequestText, v))
}

// InitialRequestTextIsNil applies the IsNil predicate on the "initial_request_text" field.
func InitialRequestTextIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldInitialRequestText))
}

// InitialRequestTextNotNil applies the NotNil predicate on the "initial_request_text" field.
func InitialRequestTextNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldInitialRequestText))
}

// InitialRequestTextEqualFold applies the EqualFold predicate on the "initial_request_text" field.
func InitialRequestTextEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldInitialRequestText, v))
}

// InitialRequestTextContainsFold applies the ContainsFold predicate on the "initial_request_text" field.
func InitialRequestTextContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldInitialRequestText, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameIsNil applies the IsNil predicate on the "agent_name" field.
func AgentNameIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAgentName))
}

// AgentNameNotNil applies the NotNil predicate on the "agent_name" field.
func AgentNameNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAgentName))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAgentName, v))
}

// BackgroundExecutionEnabledEQ applies the EQ predicate on the "background_execution_enabled" field.
func BackgroundExecutionEnabledEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBackgroundExecutionEnabled, v))
}

// BackgroundExecutionEnabledNEQ applies the NEQ predicate on the "background_execution_enabled" field.
func BackgroundExecutionEnabledNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldBackgroundExecutionEnabled, v))
}

// MaxExecutionTimeMsEQ applies the EQ predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxExecutionTimeMs, v))
}

// MaxExecutionTimeMsNEQ applies the NEQ predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMaxExecutionTimeMs, v))
}

// MaxExecutionTimeMsIn applies the In predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMaxExecutionTimeMs, vs...))
}

// MaxExecutionTimeMsNotIn applies the NotIn predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMaxExecutionTimeMs, vs...))
}

// MaxExecutionTimeMsGT applies the GT predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMaxExecutionTimeMs, v))
}

// MaxExecutionTimeMsGTE applies the GTE predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMaxExecutionTimeMs, v))
}

// MaxExecutionTimeMsLT applies the LT predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMaxExecutionTimeMs, v))
}

// MaxExecutionTimeMsLTE applies the LTE predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMaxExecutionTimeMs, v))
}

// MaxExecutionTimeMsIsNil applies the IsNil predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldMaxExecutionTimeMs))
}

// MaxExecutionTimeMsNotNil applies the NotNil predicate on the "max_execution_time_ms" field.
func MaxExecutionTimeMsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldMaxExecutionTimeMs))
}

// LastActivityTimeEQ applies the EQ predicate on the "last_activity_time" field.
func LastActivityTimeEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastActivityTime, v))
}

// LastActivityTimeNEQ applies the NEQ predicate on the "last_activity_time" field.
func LastActivityTimeNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastActivityTime, v))
}

// LastActivityTimeIn applies the In predicate on the "last_activity_time" field.
func LastActivityTimeIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastActivityTime, vs...))
}

// LastActivityTimeNotIn applies the NotIn predicate on the "last_activity_time" field.
func LastActivityTimeNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastActivityTime, vs...))
}

// LastActivityTimeGT applies the GT predicate on the "last_activity_time" field.
func LastActivityTimeGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastActivityTime, v))
}

// LastActivityTimeGTE applies the GTE predicate on the "last_activity_time" field.
func LastActivityTimeGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastActivityTime, v))
}

// LastActivityTimeLT applies the LT predicate on the "last_activity_time" field.
func LastActivityTimeLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastActivityTime, v))
}

// LastActivityTimeLTE applies the LTE predicate on the "last_activity_time" field.
func LastActivityTimeLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastActivityTime, v))
}

// LastActivityTimeIsNil applies the IsNil predicate on the "last_activity_time" field.
func LastActivityTimeIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastActivityTime))
}

// LastActivityTimeNotNil applies the NotNil predicate on the "last_activity_time" field.
func LastActivityTimeNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastActivityTime))
}

// HasBufferedEventsEQ applies the EQ predicate on the "has_buffered_events" field.
func HasBufferedEventsEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHasBufferedEvents, v))
}

// HasBufferedEventsNEQ applies the NEQ predicate on the "has_buffered_events" field.
func HasBufferedEventsNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldHasBufferedEvents, v))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.TaskEvent) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
