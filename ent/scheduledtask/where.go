// Code generated by ent, DO NOT EDIT.

package scheduledtask

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldName, v))
}

// Namespace applies equality check predicate on the "namespace" field. It's identical to NamespaceEQ.
func Namespace(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNamespace, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldUserID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedBy, v))
}

// ScheduleExpression applies equality check predicate on the "schedule_expression" field. It's identical to ScheduleExpressionEQ.
func ScheduleExpression(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldScheduleExpression, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldTimezone, v))
}

// TargetAgentName applies equality check predicate on the "target_agent_name" field. It's identical to TargetAgentNameEQ.
func TargetAgentName(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldTargetAgentName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldEnabled, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldMaxRetries, v))
}

// RetryDelaySeconds applies equality check predicate on the "retry_delay_seconds" field. It's identical to RetryDelaySecondsEQ.
func RetryDelaySeconds(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldRetryDelaySeconds, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNextRunAt, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastRunAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldDeletedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldName, v))
}

// NamespaceEQ applies the EQ predicate on the "namespace" field.
func NamespaceEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNamespace, v))
}

// NamespaceNEQ applies the NEQ predicate on the "namespace" field.
func NamespaceNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldNamespace, v))
}

// NamespaceIn applies the In predicate on the "namespace" field.
func NamespaceIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldNamespace, vs...))
}

// NamespaceNotIn applies the NotIn predicate on the "namespace" field.
func NamespaceNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldNamespace, vs...))
}

// NamespaceGT applies the GT predicate on the "namespace" field.
func NamespaceGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldNamespace, v))
}

// NamespaceGTE applies the GTE predicate on the "namespace" field.
func NamespaceGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldNamespace, v))
}

// NamespaceLT applies the LT predicate on the "namespace" field.
func NamespaceLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldNamespace, v))
}

// NamespaceLTE applies the LTE predicate on the "namespace" field.
func NamespaceLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldNamespace, v))
}

// NamespaceContains applies the Contains predicate on the "namespace" field.
func NamespaceContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldNamespace, v))
}

// NamespaceHasPrefix applies the HasPrefix predicate on the "namespace" field.
func NamespaceHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldNamespace, v))
}

// NamespaceHasSuffix applies the HasSuffix predicate on the "namespace" field.
func NamespaceHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldNamespace, v))
}

// NamespaceEqualFold applies the EqualFold predicate on the "namespace" field.
func NamespaceEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldNamespace, v))
}

// NamespaceContainsFold applies the ContainsFold predicate on the "namespace" field.
func NamespaceContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldNamespace, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldUserID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldCreatedBy, v))
}

// ScheduleTypeEQ applies the EQ predicate on the "schedule_type" field.
func ScheduleTypeEQ(v ScheduleType) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldScheduleType, v))
}

// ScheduleTypeNEQ applies the NEQ predicate on the "schedule_type" field.
func ScheduleTypeNEQ(v ScheduleType) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldScheduleType, v))
}

// ScheduleTypeIn applies the In predicate on the "schedule_type" field.
func ScheduleTypeIn(vs ...ScheduleType) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldScheduleType, vs...))
}

// ScheduleTypeNotIn applies the NotIn predicate on the "schedule_type" field.
func ScheduleTypeNotIn(vs ...ScheduleType) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldScheduleType, vs...))
}

// ScheduleExpressionEQ applies the EQ predicate on the "schedule_expression" field.
func ScheduleExpressionEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldScheduleExpression, v))
}

// ScheduleExpressionNEQ applies the NEQ predicate on the "schedule_expression" field.
func ScheduleExpressionNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldScheduleExpression, v))
}

// ScheduleExpressionIn applies the In predicate on the "schedule_expression" field.
func ScheduleExpressionIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldScheduleExpression, vs...))
}

// ScheduleExpressionNotIn applies the NotIn predicate on the "schedule_expression" field.
func ScheduleExpressionNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldScheduleExpression, vs...))
}

// ScheduleExpressionGT applies the GT predicate on the "schedule_expression" field.
func ScheduleExpressionGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldScheduleExpression, v))
}

// ScheduleExpressionGTE applies the GTE predicate on the "schedule_expression" field.
func ScheduleExpressionGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldScheduleExpression, v))
}

// ScheduleExpressionLT applies the LT predicate on the "schedule_expression" field.
func ScheduleExpressionLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldScheduleExpression, v))
}

// ScheduleExpressionLTE applies the LTE predicate on the "schedule_expression" field.
func ScheduleExpressionLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldScheduleExpression, v))
}

// ScheduleExpressionContains applies the Contains predicate on the "schedule_expression" field.
func ScheduleExpressionContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldScheduleExpression, v))
}

// ScheduleExpressionHasPrefix applies the HasPrefix predicate on the "schedule_expression" field.
func ScheduleExpressionHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldScheduleExpression, v))
}

// ScheduleExpressionHasSuffix applies the HasSuffix predicate on the "schedule_expression" field.
func ScheduleExpressionHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldScheduleExpression, v))
}

// ScheduleExpressionEqualFold applies the EqualFold predicate on the "schedule_expression" field.
func ScheduleExpressionEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldScheduleExpression, v))
}

// ScheduleExpressionContainsFold applies the ContainsFold predicate on the "schedule_expression" field.
func ScheduleExpressionContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldScheduleExpression, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldTimezone, v))
}

// TargetAgentNameEQ applies the EQ predicate on the "target_agent_name" field.
func TargetAgentNameEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldTargetAgentName, v))
}

// TargetAgentNameNEQ applies the NEQ predicate on the "target_agent_name" field.
func TargetAgentNameNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldTargetAgentName, v))
}

// TargetAgentNameIn applies the In predicate on the "target_agent_name" field.
func TargetAgentNameIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldTargetAgentName, vs...))
}

// TargetAgentNameNotIn applies the NotIn predicate on the "target_agent_name" field.
func TargetAgentNameNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldTargetAgentName, vs...))
}

// TargetAgentNameGT applies the GT predicate on the "target_agent_name" field.
func TargetAgentNameGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldTargetAgentName, v))
}

// TargetAgentNameGTE applies the GTE predicate on the "target_agent_name" field.
func TargetAgentNameGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldTargetAgentName, v))
}

// TargetAgentNameLT applies the LT predicate on the "target_agent_name" field.
func TargetAgentNameLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldTargetAgentName, v))
}

// TargetAgentNameLTE applies the LTE predicate on the "target_agent_name" field.
func TargetAgentNameLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldTargetAgentName, v))
}

// TargetAgentNameContains applies the Contains predicate on the "target_agent_name" field.
func TargetAgentNameContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldTargetAgentName, v))
}

// TargetAgentNameHasPrefix applies the HasPrefix predicate on the "target_agent_name" field.
func TargetAgentNameHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldTargetAgentName, v))
}

// TargetAgentNameHasSuffix applies the HasSuffix predicate on the "target_agent_name" field.
func TargetAgentNameHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldTargetAgentName, v))
}

// TargetAgentNameEqualFold applies the EqualFold predicate on the "target_agent_name" field.
func TargetAgentNameEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldTargetAgentName, v))
}

// TargetAgentNameContainsFold applies the ContainsFold predicate on the "target_agent_name" field.
func TargetAgentNameContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldTargetAgentName, v))
}

// TaskMetadataIsNil applies the IsNil predicate on the "task_metadata" field.
func TaskMetadataIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldTaskMetadata))
}

// TaskMetadataNotNil applies the NotNil predicate on the "task_metadata" field.
func TaskMetadataNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldTaskMetadata))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldEnabled, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldMaxRetries, v))
}

// RetryDelaySecondsEQ applies the EQ predicate on the "retry_delay_seconds" field.
func RetryDelaySecondsEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldRetryDelaySeconds, v))
}

// RetryDelaySecondsNEQ applies the NEQ predicate on the "retry_delay_seconds" field.
func RetryDelaySecondsNEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldRetryDelaySeconds, v))
}

// RetryDelaySecondsIn applies the In predicate on the "retry_delay_seconds" field.
func RetryDelaySecondsIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldRetryDelaySeconds, vs...))
}

// RetryDelaySecondsNotIn applies the NotIn predicate on the "retry_delay_seconds" field.
func RetryDelaySecondsNotIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldRetryDelaySeconds, vs...))
}

// RetryDelaySecondsGT applies the GT predicate on the "retry_delay_seconds" field.
func RetryDelaySecondsGT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldRetryDelaySeconds, v))
}

// RetryDelaySecondsGTE applies the GTE predicate on the "retry_delay_seconds" field.
func RetryDelaySecondsGTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldRetryDelaySeconds, v))
}

// RetryDelaySecondsLT applies the LT predicate on the "retry_delay_seconds" field.
func RetryDelaySecondsLT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldRetryDelaySeconds, v))
}

// RetryDelaySecondsLTE applies the LTE predicate on the "retry_delay_seconds" field.
func RetryDelaySecondsLTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldRetryDelaySeconds, v))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// NotificationConfigIsNil applies the IsNil predicate on the "notification_config" field.
func NotificationConfigIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldNotificationConfig))
}

// NotificationConfigNotNil applies the NotNil predicate on the "notification_config" field.
func NotificationConfigNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldNotificationConfig))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldUpdatedAt, v))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldNextRunAt))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldLastRunAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v int64) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldDeletedAt))
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.ScheduledTask {
	return predicate.ScheduledTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.ScheduledTaskExecution) predicate.ScheduledTask {
	return predicate.ScheduledTask(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.NotPredicates(p))
}
