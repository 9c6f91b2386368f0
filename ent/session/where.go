// Code generated by ent, DO NOT EDIT.

package session

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldName, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAgentID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectID, v))
}

// CreatedTime applies equality check predicate on the "created_time" field. It's identical to CreatedTimeEQ.
func CreatedTime(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedTime, v))
}

// UpdatedTime applies equality check predicate on the "updated_time" field. It's identical to UpdatedTimeEQ.
func UpdatedTime(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedTime, v))
}

// GatewayType applies equality check predicate on the "gateway_type" field. It's identical to GatewayTypeEQ.
func GatewayType(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldGatewayType, v))
}

// ExternalContextID applies equality check predicate on the "external_context_id" field. It's identical to ExternalContextIDEQ.
func ExternalContextID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExternalContextID, v))
}

// IsCompressionBranch applies equality check predicate on the "is_compression_branch" field. It's identical to IsCompressionBranchEQ.
func IsCompressionBranch(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIsCompressionBranch, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDeletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldName, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldAgentID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProjectID, v))
}

// CreatedTimeEQ applies the EQ predicate on the "created_time" field.
func CreatedTimeEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedTime, v))
}

// CreatedTimeNEQ applies the NEQ predicate on the "created_time" field.
func CreatedTimeNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedTime, v))
}

// CreatedTimeIn applies the In predicate on the "created_time" field.
func CreatedTimeIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedTime, vs...))
}

// CreatedTimeNotIn applies the NotIn predicate on the "created_time" field.
func CreatedTimeNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedTime, vs...))
}

// CreatedTimeGT applies the GT predicate on the "created_time" field.
func CreatedTimeGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedTime, v))
}

// CreatedTimeGTE applies the GTE predicate on the "created_time" field.
func CreatedTimeGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedTime, v))
}

// CreatedTimeLT applies the LT predicate on the "created_time" field.
func CreatedTimeLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedTime, v))
}

// CreatedTimeLTE applies the LTE predicate on the "created_time" field.
func CreatedTimeLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedTime, v))
}

// UpdatedTimeEQ applies the EQ predicate on the "updated_time" field.
func UpdatedTimeEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedTime, v))
}

// UpdatedTimeNEQ applies the NEQ predicate on the "updated_time" field.
func UpdatedTimeNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedTime, v))
}

// UpdatedTimeIn applies the In predicate on the "updated_time" field.
func UpdatedTimeIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedTime, vs...))
}

// UpdatedTimeNotIn applies the NotIn predicate on the "updated_time" field.
func UpdatedTimeNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedTime, vs...))
}

// UpdatedTimeGT applies the GT predicate on the "updated_time" field.
func UpdatedTimeGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedTime, v))
}

// UpdatedTimeGTE applies the GTE predicate on the "updated_time" field.
func UpdatedTimeGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedTime, v))
}

// UpdatedTimeLT applies the LT predicate on the "updated_time" field.
func UpdatedTimeLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedTime, v))
}

// UpdatedTimeLTE applies the LTE predicate on the "updated_time" field.
func UpdatedTimeLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedTime, v))
}

// GatewayTypeEQ applies the EQ predicate on the "gateway_type" field.
func GatewayTypeEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldGatewayType, v))
}

// GatewayTypeNEQ applies the NEQ predicate on the "gateway_type" field.
func GatewayTypeNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldGatewayType, v))
}

// GatewayTypeIn applies the In predicate on the "gateway_type" field.
func GatewayTypeIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldGatewayType, vs...))
}

// GatewayTypeNotIn applies the NotIn predicate on the "gateway_type" field.
func GatewayTypeNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldGatewayType, vs...))
}

// GatewayTypeGT applies the GT predicate on the "gateway_type" field.
func GatewayTypeGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldGatewayType, v))
}

// GatewayTypeGTE applies the GTE predicate on the "gateway_type" field.
func GatewayTypeGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldGatewayType, v))
}

// GatewayTypeLT applies the LT predicate on the "gateway_type" field.
func GatewayTypeLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldGatewayType, v))
}

// GatewayTypeLTE applies the LTE predicate on the "gateway_type" field.
func GatewayTypeLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldGatewayType, v))
}

// GatewayTypeContains applies the Contains predicate on the "gateway_type" field.
func GatewayTypeContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldGatewayType, v))
}

// GatewayTypeHasPrefix applies the HasPrefix predicate on the "gateway_type" field.
func GatewayTypeHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldGatewayType, v))
}

// GatewayTypeHasSuffix applies the HasSuffix predicate on the "gateway_type" field.
func GatewayTypeHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldGatewayType, v))
}

// GatewayTypeIsNil applies the IsNil predicate on the "gateway_type" field.
func GatewayTypeIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldGatewayType))
}

// GatewayTypeNotNil applies the NotNil predicate on the "gateway_type" field.
func GatewayTypeNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldGatewayType))
}

// GatewayTypeEqualFold applies the EqualFold predicate on the "gateway_type" field.
func GatewayTypeEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldGatewayType, v))
}

// GatewayTypeContainsFold applies the ContainsFold predicate on the "gateway_type" field.
func GatewayTypeContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldGatewayType, v))
}

// ExternalContextIDEQ applies the EQ predicate on the "external_context_id" field.
func ExternalContextIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExternalContextID, v))
}

// ExternalContextIDNEQ applies the NEQ predicate on the "external_context_id" field.
func ExternalContextIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldExternalContextID, v))
}

// ExternalContextIDIn applies the In predicate on the "external_context_id" field.
func ExternalContextIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldExternalContextID, vs...))
}

// ExternalContextIDNotIn applies the NotIn predicate on the "external_context_id" field.
func ExternalContextIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldExternalContextID, vs...))
}

// ExternalContextIDGT applies the GT predicate on the "external_context_id" field.
func ExternalContextIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldExternalContextID, v))
}

// ExternalContextIDGTE applies the GTE predicate on the "external_context_id" field.
func ExternalContextIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldExternalContextID, v))
}

// ExternalContextIDLT applies the LT predicate on the "external_context_id" field.
func ExternalContextIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldExternalContextID, v))
}

// ExternalContextIDLTE applies the LTE predicate on the "external_context_id" field.
func ExternalContextIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldExternalContextID, v))
}

// ExternalContextIDContains applies the Contains predicate on the "external_context_id" field.
func ExternalContextIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldExternalContextID, v))
}

// ExternalContextIDHasPrefix applies the HasPrefix predicate on the "external_context_id" field.
func ExternalContextIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldExternalContextID, v))
}

// ExternalContextIDHasSuffix applies the HasSuffix predicate on the "external_context_id" field.
func ExternalContextIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldExternalContextID, v))
}

// ExternalContextIDIsNil applies the IsNil predicate on the "external_context_id" field.
func ExternalContextIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldExternalContextID))
}

// ExternalContextIDNotNil applies the NotNil predicate on the "external_context_id" field.
func ExternalContextIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldExternalContextID))
}

// ExternalContextIDEqualFold applies the EqualFold predicate on the "external_context_id" field.
func ExternalContextIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldExternalContextID, v))
}

// ExternalContextIDContainsFold applies the ContainsFold predicate on the "external_context_id" field.
func ExternalContextIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldExternalContextID, v))
}

// IsCompressionBranchEQ applies the EQ predicate on the "is_compression_branch" field.
func IsCompressionBranchEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIsCompressionBranch, v))
}

// IsCompressionBranchNEQ applies the NEQ predicate on the "is_compression_branch" field.
func IsCompressionBranchNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldIsCompressionBranch, v))
}

// CompressionMetadataIsNil applies the IsNil predicate on the "compression_metadata" field.
func CompressionMetadataIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCompressionMetadata))
}

// CompressionMetadataNotNil applies the NotNil predicate on the "compression_metadata" field.
func CompressionMetadataNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCompressionMetadata))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDeletedAt))
}

// HasChatTasks applies the HasEdge predicate on the "chat_tasks" edge.
func HasChatTasks() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatTasksTable, ChatTasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatTasksWith applies the HasEdge predicate on the "chat_tasks" edge with a given conditions (other predicates).
func HasChatTasksWith(preds ...predicate.ChatTask) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newChatTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSseEvents applies the HasEdge predicate on the "sse_events" edge.
func HasSseEvents() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SseEventsTable, SseEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSseEventsWith applies the HasEdge predicate on the "sse_events" edge with a given conditions (other predicates).
func HasSseEventsWith(preds ...predicate.SSEEvent) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newSseEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
