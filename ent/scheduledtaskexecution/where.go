// Code generated by ent, DO NOT EDIT.

package scheduledtaskexecution

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldContainsFold(FieldID, id))
}

// ScheduledTaskID applies equality check predicate on the "scheduled_task_id" field. It's identical to ScheduledTaskIDEQ.
func ScheduledTaskID(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldScheduledTaskID, v))
}

// A2aTaskID applies equality check predicate on the "a2a_task_id" field. It's identical to A2aTaskIDEQ.
func A2aTaskID(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldA2aTaskID, v))
}

// ScheduledFor applies equality check predicate on the "scheduled_for" field. It's identical to ScheduledForEQ.
func ScheduledFor(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldScheduledFor, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldRetryCount, v))
}

// ScheduledTaskIDEQ applies the EQ predicate on the "scheduled_task_id" field.
func ScheduledTaskIDEQ(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldScheduledTaskID, v))
}

// ScheduledTaskIDNEQ applies the NEQ predicate on the "scheduled_task_id" field.
func ScheduledTaskIDNEQ(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNEQ(FieldScheduledTaskID, v))
}

// ScheduledTaskIDIn applies the In predicate on the "scheduled_task_id" field.
func ScheduledTaskIDIn(vs ...string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIn(FieldScheduledTaskID, vs...))
}

// ScheduledTaskIDNotIn applies the NotIn predicate on the "scheduled_task_id" field.
func ScheduledTaskIDNotIn(vs ...string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotIn(FieldScheduledTaskID, vs...))
}

// ScheduledTaskIDGT applies the GT predicate on the "scheduled_task_id" field.
func ScheduledTaskIDGT(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGT(FieldScheduledTaskID, v))
}

// ScheduledTaskIDGTE applies the GTE predicate on the "scheduled_task_id" field.
func ScheduledTaskIDGTE(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGTE(FieldScheduledTaskID, v))
}

// ScheduledTaskIDLT applies the LT predicate on the "scheduled_task_id" field.
func ScheduledTaskIDLT(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLT(FieldScheduledTaskID, v))
}

// ScheduledTaskIDLTE applies the LTE predicate on the "scheduled_task_id" field.
func ScheduledTaskIDLTE(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLTE(FieldScheduledTaskID, v))
}

// ScheduledTaskIDContains applies the Contains predicate on the "scheduled_task_id" field.
func ScheduledTaskIDContains(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldContains(FieldScheduledTaskID, v))
}

// ScheduledTaskIDHasPrefix applies the HasPrefix predicate on the "scheduled_task_id" field.
func ScheduledTaskIDHasPrefix(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldHasPrefix(FieldScheduledTaskID, v))
}

// ScheduledTaskIDHasSuffix applies the HasSuffix predicate on the "scheduled_task_id" field.
func ScheduledTaskIDHasSuffix(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldHasSuffix(FieldScheduledTaskID, v))
}

// ScheduledTaskIDEqualFold applies the EqualFold predicate on the "scheduled_task_id" field.
func ScheduledTaskIDEqualFold(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEqualFold(FieldScheduledTaskID, v))
}

// ScheduledTaskIDContainsFold applies the ContainsFold predicate on the "scheduled_task_id" field.
func ScheduledTaskIDContainsFold(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldContainsFold(FieldScheduledTaskID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// A2aTaskIDEQ applies the EQ predicate on the "a2a_task_id" field.
func A2aTaskIDEQ(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldA2aTaskID, v))
}

// A2aTaskIDNEQ applies the NEQ predicate on the "a2a_task_id" field.
func A2aTaskIDNEQ(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNEQ(FieldA2aTaskID, v))
}

// A2aTaskIDIn applies the In predicate on the "a2a_task_id" field.
func A2aTaskIDIn(vs ...string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIn(FieldA2aTaskID, vs...))
}

// A2aTaskIDNotIn applies the NotIn predicate on the "a2a_task_id" field.
func A2aTaskIDNotIn(vs ...string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotIn(FieldA2aTaskID, vs...))
}

// A2aTaskIDGT applies the GT predicate on the "a2a_task_id" field.
func A2aTaskIDGT(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGT(FieldA2aTaskID, v))
}

// A2aTaskIDGTE applies the GTE predicate on the "a2a_task_id" field.
func A2aTaskIDGTE(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGTE(FieldA2aTaskID, v))
}

// A2aTaskIDLT applies the LT predicate on the "a2a_task_id" field.
func A2aTaskIDLT(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLT(FieldA2aTaskID, v))
}

// A2aTaskIDLTE applies the LTE predicate on the "a2a_task_id" field.
func A2aTaskIDLTE(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLTE(FieldA2aTaskID, v))
}

// A2aTaskIDContains applies the Contains predicate on the "a2a_task_id" field.
func A2aTaskIDContains(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldContains(FieldA2aTaskID, v))
}

// A2aTaskIDHasPrefix applies the HasPrefix predicate on the "a2a_task_id" field.
func A2aTaskIDHasPrefix(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldHasPrefix(FieldA2aTaskID, v))
}

// A2aTaskIDHasSuffix applies the HasSuffix predicate on the "a2a_task_id" field.
func A2aTaskIDHasSuffix(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldHasSuffix(FieldA2aTaskID, v))
}

// A2aTaskIDIsNil applies the IsNil predicate on the "a2a_task_id" field.
func A2aTaskIDIsNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIsNull(FieldA2aTaskID))
}

// A2aTaskIDNotNil applies the NotNil predicate on the "a2a_task_id" field.
func A2aTaskIDNotNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotNull(FieldA2aTaskID))
}

// A2aTaskIDEqualFold applies the EqualFold predicate on the "a2a_task_id" field.
func A2aTaskIDEqualFold(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEqualFold(FieldA2aTaskID, v))
}

// A2aTaskIDContainsFold applies the ContainsFold predicate on the "a2a_task_id" field.
func A2aTaskIDContainsFold(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldContainsFold(FieldA2aTaskID, v))
}

// ScheduledForEQ applies the EQ predicate on the "scheduled_for" field.
func ScheduledForEQ(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldScheduledFor, v))
}

// ScheduledForNEQ applies the NEQ predicate on the "scheduled_for" field.
func ScheduledForNEQ(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNEQ(FieldScheduledFor, v))
}

// ScheduledForIn applies the In predicate on the "scheduled_for" field.
func ScheduledForIn(vs ...int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIn(FieldScheduledFor, vs...))
}

// ScheduledForNotIn applies the NotIn predicate on the "scheduled_for" field.
func ScheduledForNotIn(vs ...int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotIn(FieldScheduledFor, vs...))
}

// ScheduledForGT applies the GT predicate on the "scheduled_for" field.
func ScheduledForGT(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGT(FieldScheduledFor, v))
}

// ScheduledForGTE applies the GTE predicate on the "scheduled_for" field.
func ScheduledForGTE(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGTE(FieldScheduledFor, v))
}

// ScheduledForLT applies the LT predicate on the "scheduled_for" field.
func ScheduledForLT(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLT(FieldScheduledFor, v))
}

// ScheduledForLTE applies the LTE predicate on the "scheduled_for" field.
func ScheduledForLTE(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLTE(FieldScheduledFor, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v int64) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotNull(FieldCompletedAt))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotNull(FieldResultSummary))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldLTE(FieldRetryCount, v))
}

// ArtifactsIsNil applies the IsNil predicate on the "artifacts" field.
func ArtifactsIsNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIsNull(FieldArtifacts))
}

// ArtifactsNotNil applies the NotNil predicate on the "artifacts" field.
func ArtifactsNotNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotNull(FieldArtifacts))
}

// NotificationsSentIsNil applies the IsNil predicate on the "notifications_sent" field.
func NotificationsSentIsNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldIsNull(FieldNotificationsSent))
}

// NotificationsSentNotNil applies the NotNil predicate on the "notifications_sent" field.
func NotificationsSentNotNil() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.FieldNotNull(FieldNotificationsSent))
}

// HasScheduledTask applies the HasEdge predicate on the "scheduled_task" edge.
func HasScheduledTask() predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScheduledTaskTable, ScheduledTaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScheduledTaskWith applies the HasEdge predicate on the "scheduled_task" edge with a given conditions (other predicates).
func HasScheduledTaskWith(preds ...predicate.ScheduledTask) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(func(s *sql.Selector) {
		step := newScheduledTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledTaskExecution) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledTaskExecution) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledTaskExecution) predicate.ScheduledTaskExecution {
	return predicate.ScheduledTaskExecution(sql.NotPredicates(p))
}
