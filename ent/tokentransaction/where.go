// Code generated by ent, DO NOT EDIT.

package tokentransaction

import (
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldUserID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldTaskID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldModel, v))
}

// RawTokens applies equality check predicate on the "raw_tokens" field. It's identical to RawTokensEQ.
func RawTokens(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldRawTokens, v))
}

// TokenCost applies equality check predicate on the "token_cost" field. It's identical to TokenCostEQ.
func TokenCost(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldTokenCost, v))
}

// Rate applies equality check predicate on the "rate" field. It's identical to RateEQ.
func Rate(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldRate, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldSource, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldToolName, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldContext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContainsFold(FieldUserID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContainsFold(FieldTaskID, v))
}

// TransactionTypeEQ applies the EQ predicate on the "transaction_type" field.
func TransactionTypeEQ(v TransactionType) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldTransactionType, v))
}

// TransactionTypeNEQ applies the NEQ predicate on the "transaction_type" field.
func TransactionTypeNEQ(v TransactionType) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldTransactionType, v))
}

// TransactionTypeIn applies the In predicate on the "transaction_type" field.
func TransactionTypeIn(vs ...TransactionType) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldTransactionType, vs...))
}

// TransactionTypeNotIn applies the NotIn predicate on the "transaction_type" field.
func TransactionTypeNotIn(vs ...TransactionType) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldTransactionType, vs...))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContainsFold(FieldModel, v))
}

// RawTokensEQ applies the EQ predicate on the "raw_tokens" field.
func RawTokensEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldRawTokens, v))
}

// RawTokensNEQ applies the NEQ predicate on the "raw_tokens" field.
func RawTokensNEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldRawTokens, v))
}

// RawTokensIn applies the In predicate on the "raw_tokens" field.
func RawTokensIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldRawTokens, vs...))
}

// RawTokensNotIn applies the NotIn predicate on the "raw_tokens" field.
func RawTokensNotIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldRawTokens, vs...))
}

// RawTokensGT applies the GT predicate on the "raw_tokens" field.
func RawTokensGT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldRawTokens, v))
}

// RawTokensGTE applies the GTE predicate on the "raw_tokens" field.
func RawTokensGTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldRawTokens, v))
}

// RawTokensLT applies the LT predicate on the "raw_tokens" field.
func RawTokensLT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldRawTokens, v))
}

// RawTokensLTE applies the LTE predicate on the "raw_tokens" field.
func RawTokensLTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldRawTokens, v))
}

// TokenCostEQ applies the EQ predicate on the "token_cost" field.
func TokenCostEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldTokenCost, v))
}

// TokenCostNEQ applies the NEQ predicate on the "token_cost" field.
func TokenCostNEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldTokenCost, v))
}

// TokenCostIn applies the In predicate on the "token_cost" field.
func TokenCostIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldTokenCost, vs...))
}

// TokenCostNotIn applies the NotIn predicate on the "token_cost" field.
func TokenCostNotIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldTokenCost, vs...))
}

// TokenCostGT applies the GT predicate on the "token_cost" field.
func TokenCostGT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldTokenCost, v))
}

// TokenCostGTE applies the GTE predicate on the "token_cost" field.
func TokenCostGTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldTokenCost, v))
}

// TokenCostLT applies the LT predicate on the "token_cost" field.
func TokenCostLT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldTokenCost, v))
}

// TokenCostLTE applies the LTE predicate on the "token_cost" field.
func TokenCostLTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldTokenCost, v))
}

// RateEQ applies the EQ predicate on the "rate" field.
func RateEQ(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldRate, v))
}

// RateNEQ applies the NEQ predicate on the "rate" field.
func RateNEQ(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldRate, v))
}

// RateIn applies the In predicate on the "rate" field.
func RateIn(vs ...float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldRate, vs...))
}

// RateNotIn applies the NotIn predicate on the "rate" field.
func RateNotIn(vs ...float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldRate, vs...))
}

// RateGT applies the GT predicate on the "rate" field.
func RateGT(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldRate, v))
}

// RateGTE applies the GTE predicate on the "rate" field.
func RateGTE(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldRate, v))
}

// RateLT applies the LT predicate on the "rate" field.
func RateLT(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldRate, v))
}

// RateLTE applies the LTE predicate on the "rate" field.
func RateLTE(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldRate, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContainsFold(FieldSource, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameIsNil applies the IsNil predicate on the "tool_name" field.
func ToolNameIsNil() predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIsNull(FieldToolName))
}

// ToolNameNotNil applies the NotNil predicate on the "tool_name" field.
func ToolNameNotNil() predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotNull(FieldToolName))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContainsFold(FieldToolName, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContainsFold(FieldContext, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenTransaction) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenTransaction) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenTransaction) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.NotPredicates(p))
}
