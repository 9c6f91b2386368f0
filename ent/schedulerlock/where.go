// Code generated by ent, DO NOT EDIT.

package schedulerlock

import (
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLTE(FieldID, id))
}

// LeaderID applies equality check predicate on the "leader_id" field. It's identical to LeaderIDEQ.
func LeaderID(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldLeaderID, v))
}

// LeaderNamespace applies equality check predicate on the "leader_namespace" field. It's identical to LeaderNamespaceEQ.
func LeaderNamespace(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldLeaderNamespace, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldExpiresAt, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldHeartbeatAt, v))
}

// LeaderIDEQ applies the EQ predicate on the "leader_id" field.
func LeaderIDEQ(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldLeaderID, v))
}

// LeaderIDNEQ applies the NEQ predicate on the "leader_id" field.
func LeaderIDNEQ(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNEQ(FieldLeaderID, v))
}

// LeaderIDIn applies the In predicate on the "leader_id" field.
func LeaderIDIn(vs ...string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldIn(FieldLeaderID, vs...))
}

// LeaderIDNotIn applies the NotIn predicate on the "leader_id" field.
func LeaderIDNotIn(vs ...string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNotIn(FieldLeaderID, vs...))
}

// LeaderIDGT applies the GT predicate on the "leader_id" field.
func LeaderIDGT(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGT(FieldLeaderID, v))
}

// LeaderIDGTE applies the GTE predicate on the "leader_id" field.
func LeaderIDGTE(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGTE(FieldLeaderID, v))
}

// LeaderIDLT applies the LT predicate on the "leader_id" field.
func LeaderIDLT(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLT(FieldLeaderID, v))
}

// LeaderIDLTE applies the LTE predicate on the "leader_id" field.
func LeaderIDLTE(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLTE(FieldLeaderID, v))
}

// LeaderIDContains applies the Contains predicate on the "leader_id" field.
func LeaderIDContains(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldContains(FieldLeaderID, v))
}

// LeaderIDHasPrefix applies the HasPrefix predicate on the "leader_id" field.
func LeaderIDHasPrefix(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldHasPrefix(FieldLeaderID, v))
}

// LeaderIDHasSuffix applies the HasSuffix predicate on the "leader_id" field.
func LeaderIDHasSuffix(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldHasSuffix(FieldLeaderID, v))
}

// LeaderIDEqualFold applies the EqualFold predicate on the "leader_id" field.
func LeaderIDEqualFold(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEqualFold(FieldLeaderID, v))
}

// LeaderIDContainsFold applies the ContainsFold predicate on the "leader_id" field.
func LeaderIDContainsFold(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldContainsFold(FieldLeaderID, v))
}

// LeaderNamespaceEQ applies the EQ predicate on the "leader_namespace" field.
func LeaderNamespaceEQ(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldLeaderNamespace, v))
}

// LeaderNamespaceNEQ applies the NEQ predicate on the "leader_namespace" field.
func LeaderNamespaceNEQ(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNEQ(FieldLeaderNamespace, v))
}

// LeaderNamespaceIn applies the In predicate on the "leader_namespace" field.
func LeaderNamespaceIn(vs ...string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldIn(FieldLeaderNamespace, vs...))
}

// LeaderNamespaceNotIn applies the NotIn predicate on the "leader_namespace" field.
func LeaderNamespaceNotIn(vs ...string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNotIn(FieldLeaderNamespace, vs...))
}

// LeaderNamespaceGT applies the GT predicate on the "leader_namespace" field.
func LeaderNamespaceGT(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGT(FieldLeaderNamespace, v))
}

// LeaderNamespaceGTE applies the GTE predicate on the "leader_namespace" field.
func LeaderNamespaceGTE(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGTE(FieldLeaderNamespace, v))
}

// LeaderNamespaceLT applies the LT predicate on the "leader_namespace" field.
func LeaderNamespaceLT(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLT(FieldLeaderNamespace, v))
}

// LeaderNamespaceLTE applies the LTE predicate on the "leader_namespace" field.
func LeaderNamespaceLTE(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLTE(FieldLeaderNamespace, v))
}

// LeaderNamespaceContains applies the Contains predicate on the "leader_namespace" field.
func LeaderNamespaceContains(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldContains(FieldLeaderNamespace, v))
}

// LeaderNamespaceHasPrefix applies the HasPrefix predicate on the "leader_namespace" field.
func LeaderNamespaceHasPrefix(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldHasPrefix(FieldLeaderNamespace, v))
}

// LeaderNamespaceHasSuffix applies the HasSuffix predicate on the "leader_namespace" field.
func LeaderNamespaceHasSuffix(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldHasSuffix(FieldLeaderNamespace, v))
}

// LeaderNamespaceEqualFold applies the EqualFold predicate on the "leader_namespace" field.
func LeaderNamespaceEqualFold(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEqualFold(FieldLeaderNamespace, v))
}

// LeaderNamespaceContainsFold applies the ContainsFold predicate on the "leader_namespace" field.
func LeaderNamespaceContainsFold(v string) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldContainsFold(FieldLeaderNamespace, v))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLTE(FieldAcquiredAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLTE(FieldExpiresAt, v))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v int64) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.FieldLTE(FieldHeartbeatAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SchedulerLock) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SchedulerLock) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SchedulerLock) predicate.SchedulerLock {
	return predicate.SchedulerLock(sql.NotPredicates(p))
}
