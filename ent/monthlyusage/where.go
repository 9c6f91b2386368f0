// Code generated by ent, DO NOT EDIT.

package monthlyusage

import (
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldUserID, v))
}

// Month applies equality check predicate on the "month" field. It's identical to MonthEQ.
func Month(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldMonth, v))
}

// TotalUsage applies equality check predicate on the "total_usage" field. It's identical to TotalUsageEQ.
func TotalUsage(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldTotalUsage, v))
}

// PromptUsage applies equality check predicate on the "prompt_usage" field. It's identical to PromptUsageEQ.
func PromptUsage(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldPromptUsage, v))
}

// CompletionUsage applies equality check predicate on the "completion_usage" field. It's identical to CompletionUsageEQ.
func CompletionUsage(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldCompletionUsage, v))
}

// CachedUsage applies equality check predicate on the "cached_usage" field. It's identical to CachedUsageEQ.
func CachedUsage(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldCachedUsage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldContainsFold(FieldUserID, v))
}

// MonthEQ applies the EQ predicate on the "month" field.
func MonthEQ(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldMonth, v))
}

// MonthNEQ applies the NEQ predicate on the "month" field.
func MonthNEQ(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNEQ(FieldMonth, v))
}

// MonthIn applies the In predicate on the "month" field.
func MonthIn(vs ...string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIn(FieldMonth, vs...))
}

// MonthNotIn applies the NotIn predicate on the "month" field.
func MonthNotIn(vs ...string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotIn(FieldMonth, vs...))
}

// MonthGT applies the GT predicate on the "month" field.
func MonthGT(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGT(FieldMonth, v))
}

// MonthGTE applies the GTE predicate on the "month" field.
func MonthGTE(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGTE(FieldMonth, v))
}

// MonthLT applies the LT predicate on the "month" field.
func MonthLT(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLT(FieldMonth, v))
}

// MonthLTE applies the LTE predicate on the "month" field.
func MonthLTE(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLTE(FieldMonth, v))
}

// MonthContains applies the Contains predicate on the "month" field.
func MonthContains(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldContains(FieldMonth, v))
}

// MonthHasPrefix applies the HasPrefix predicate on the "month" field.
func MonthHasPrefix(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldHasPrefix(FieldMonth, v))
}

// MonthHasSuffix applies the HasSuffix predicate on the "month" field.
func MonthHasSuffix(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldHasSuffix(FieldMonth, v))
}

// MonthEqualFold applies the EqualFold predicate on the "month" field.
func MonthEqualFold(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEqualFold(FieldMonth, v))
}

// MonthContainsFold applies the ContainsFold predicate on the "month" field.
func MonthContainsFold(v string) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldContainsFold(FieldMonth, v))
}

// TotalUsageEQ applies the EQ predicate on the "total_usage" field.
func TotalUsageEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldTotalUsage, v))
}

// TotalUsageNEQ applies the NEQ predicate on the "total_usage" field.
func TotalUsageNEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNEQ(FieldTotalUsage, v))
}

// TotalUsageIn applies the In predicate on the "total_usage" field.
func TotalUsageIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIn(FieldTotalUsage, vs...))
}

// TotalUsageNotIn applies the NotIn predicate on the "total_usage" field.
func TotalUsageNotIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotIn(FieldTotalUsage, vs...))
}

// TotalUsageGT applies the GT predicate on the "total_usage" field.
func TotalUsageGT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGT(FieldTotalUsage, v))
}

// TotalUsageGTE applies the GTE predicate on the "total_usage" field.
func TotalUsageGTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGTE(FieldTotalUsage, v))
}

// TotalUsageLT applies the LT predicate on the "total_usage" field.
func TotalUsageLT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLT(FieldTotalUsage, v))
}

// TotalUsageLTE applies the LTE predicate on the "total_usage" field.
func TotalUsageLTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLTE(FieldTotalUsage, v))
}

// PromptUsageEQ applies the EQ predicate on the "prompt_usage" field.
func PromptUsageEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldPromptUsage, v))
}

// PromptUsageNEQ applies the NEQ predicate on the "prompt_usage" field.
func PromptUsageNEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNEQ(FieldPromptUsage, v))
}

// PromptUsageIn applies the In predicate on the "prompt_usage" field.
func PromptUsageIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIn(FieldPromptUsage, vs...))
}

// PromptUsageNotIn applies the NotIn predicate on the "prompt_usage" field.
func PromptUsageNotIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotIn(FieldPromptUsage, vs...))
}

// PromptUsageGT applies the GT predicate on the "prompt_usage" field.
func PromptUsageGT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGT(FieldPromptUsage, v))
}

// PromptUsageGTE applies the GTE predicate on the "prompt_usage" field.
func PromptUsageGTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGTE(FieldPromptUsage, v))
}

// PromptUsageLT applies the LT predicate on the "prompt_usage" field.
func PromptUsageLT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLT(FieldPromptUsage, v))
}

// PromptUsageLTE applies the LTE predicate on the "prompt_usage" field.
func PromptUsageLTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLTE(FieldPromptUsage, v))
}

// CompletionUsageEQ applies the EQ predicate on the "completion_usage" field.
func CompletionUsageEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldCompletionUsage, v))
}

// CompletionUsageNEQ applies the NEQ predicate on the "completion_usage" field.
func CompletionUsageNEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNEQ(FieldCompletionUsage, v))
}

// CompletionUsageIn applies the In predicate on the "completion_usage" field.
func CompletionUsageIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIn(FieldCompletionUsage, vs...))
}

// CompletionUsageNotIn applies the NotIn predicate on the "completion_usage" field.
func CompletionUsageNotIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotIn(FieldCompletionUsage, vs...))
}

// CompletionUsageGT applies the GT predicate on the "completion_usage" field.
func CompletionUsageGT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGT(FieldCompletionUsage, v))
}

// CompletionUsageGTE applies the GTE predicate on the "completion_usage" field.
func CompletionUsageGTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGTE(FieldCompletionUsage, v))
}

// CompletionUsageLT applies the LT predicate on the "completion_usage" field.
func CompletionUsageLT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLT(FieldCompletionUsage, v))
}

// CompletionUsageLTE applies the LTE predicate on the "completion_usage" field.
func CompletionUsageLTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLTE(FieldCompletionUsage, v))
}

// CachedUsageEQ applies the EQ predicate on the "cached_usage" field.
func CachedUsageEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldCachedUsage, v))
}

// CachedUsageNEQ applies the NEQ predicate on the "cached_usage" field.
func CachedUsageNEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNEQ(FieldCachedUsage, v))
}

// CachedUsageIn applies the In predicate on the "cached_usage" field.
func CachedUsageIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIn(FieldCachedUsage, vs...))
}

// CachedUsageNotIn applies the NotIn predicate on the "cached_usage" field.
func CachedUsageNotIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotIn(FieldCachedUsage, vs...))
}

// CachedUsageGT applies the GT predicate on the "cached_usage" field.
func CachedUsageGT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGT(FieldCachedUsage, v))
}

// CachedUsageGTE applies the GTE predicate on the "cached_usage" field.
func CachedUsageGTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGTE(FieldCachedUsage, v))
}

// CachedUsageLT applies the LT predicate on the "cached_usage" field.
func CachedUsageLT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLT(FieldCachedUsage, v))
}

// CachedUsageLTE applies the LTE predicate on the "cached_usage" field.
func CachedUsageLTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLTE(FieldCachedUsage, v))
}

// UsageByModelIsNil applies the IsNil predicate on the "usage_by_model" field.
func UsageByModelIsNil() predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIsNull(FieldUsageByModel))
}

// UsageByModelNotNil applies the NotNil predicate on the "usage_by_model" field.
func UsageByModelNotNil() predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotNull(FieldUsageByModel))
}

// UsageBySourceIsNil applies the IsNil predicate on the "usage_by_source" field.
func UsageBySourceIsNil() predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIsNull(FieldUsageBySource))
}

// UsageBySourceNotNil applies the NotNil predicate on the "usage_by_source" field.
func UsageBySourceNotNil() predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotNull(FieldUsageBySource))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v int64) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MonthlyUsage) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MonthlyUsage) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MonthlyUsage) predicate.MonthlyUsage {
	return predicate.MonthlyUsage(sql.NotPredicates(p))
}
