// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
	"github.com/solacecommunity/agent-mesh-gateway/ent/schedulerlock"
)

// SchedulerLockUpdate is the builder for updating SchedulerLock entities.
type SchedulerLockUpdate struct {
	config
	hooks    []Hook
	mutation *SchedulerLockMutation
}

// Where appends a list predicates to the SchedulerLockUpdate builder.
func (_u *SchedulerLockUpdate) Where(ps ...predicate.SchedulerLock) *SchedulerLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeaderID sets the "leader_id" field.
func (_u *SchedulerLockUpdate) SetLeaderID(v string) *SchedulerLockUpdate {
	_u.mutation.SetLeaderID(v)
	return _u
}

// SetNillableLeaderID sets the "leader_id" field if the given value is not nil.
func (_u *SchedulerLockUpdate) SetNillableLeaderID(v *string) *SchedulerLockUpdate {
	if v != nil {
		_u.SetLeaderID(*v)
	}
	return _u
}

// SetLeaderNamespace sets the "leader_namespace" field.
func (_u *SchedulerLockUpdate) SetLeaderNamespace(v string) *SchedulerLockUpdate {
	_u.mutation.SetLeaderNamespace(v)
	return _u
}

// SetNillableLeaderNamespace sets the "leader_namespace" field if the given value is not nil.
func (_u *SchedulerLockUpdate) SetNillableLeaderNamespace(v *string) *SchedulerLockUpdate {
	if v != nil {
		_u.SetLeaderNamespace(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *SchedulerLockUpdate) SetAcquiredAt(v int64) *SchedulerLockUpdate {
	_u.mutation.ResetAcquiredAt()
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *SchedulerLockUpdate) SetNillableAcquiredAt(v *int64) *SchedulerLockUpdate {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// AddAcquiredAt adds value to the "acquired_at" field.
func (_u *SchedulerLockUpdate) AddAcquiredAt(v int64) *SchedulerLockUpdate {
	_u.mutation.AddAcquiredAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SchedulerLockUpdate) SetExpiresAt(v int64) *SchedulerLockUpdate {
	_u.mutation.ResetExpiresAt()
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SchedulerLockUpdate) SetNillableExpiresAt(v *int64) *SchedulerLockUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// AddExpiresAt adds value to the "expires_at" field.
func (_u *SchedulerLockUpdate) AddExpiresAt(v int64) *SchedulerLockUpdate {
	_u.mutation.AddExpiresAt(v)
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *SchedulerLockUpdate) SetHeartbeatAt(v int64) *SchedulerLockUpdate {
	_u.mutation.ResetHeartbeatAt()
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *SchedulerLockUpdate) SetNillableHeartbeatAt(v *int64) *SchedulerLockUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// AddHeartbeatAt adds value to the "heartbeat_at" field.
func (_u *SchedulerLockUpdate) AddHeartbeatAt(v int64) *SchedulerLockUpdate {
	_u.mutation.AddHeartbeatAt(v)
	return _u
}

// Mutation returns the SchedulerLockMutation object of the builder.
func (_u *SchedulerLockUpdate) Mutation() *SchedulerLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchedulerLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchedulerLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchedulerLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchedulerLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SchedulerLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedulerlock.Table, schedulerlock.Columns, sqlgraph.NewFieldSpec(schedulerlock.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LeaderID(); ok {
		_spec.SetField(schedulerlock.FieldLeaderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeaderNamespace(); ok {
		_spec.SetField(schedulerlock.FieldLeaderNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(schedulerlock.FieldAcquiredAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAcquiredAt(); ok {
		_spec.AddField(schedulerlock.FieldAcquiredAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(schedulerlock.FieldExpiresAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExpiresAt(); ok {
		_spec.AddField(schedulerlock.FieldExpiresAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(schedulerlock.FieldHeartbeatAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatAt(); ok {
		_spec.AddField(schedulerlock.FieldHeartbeatAt, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulerlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchedulerLockUpdateOne is the builder for updating a single SchedulerLock entity.
type SchedulerLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchedulerLockMutation
}

// SetLeaderID sets the "leader_id" field.
func (_u *SchedulerLockUpdateOne) SetLeaderID(v string) *SchedulerLockUpdateOne {
	_u.mutation.SetLeaderID(v)
	return _u
}

// SetNillableLeaderID sets the "leader_id" field if the given value is not nil.
func (_u *SchedulerLockUpdateOne) SetNillableLeaderID(v *string) *SchedulerLockUpdateOne {
	if v != nil {
		_u.SetLeaderID(*v)
	}
	return _u
}

// SetLeaderNamespace sets the "leader_namespace" field.
func (_u *SchedulerLockUpdateOne) SetLeaderNamespace(v string) *SchedulerLockUpdateOne {
	_u.mutation.SetLeaderNamespace(v)
	return _u
}

// SetNillableLeaderNamespace sets the "leader_namespace" field if the given value is not nil.
func (_u *SchedulerLockUpdateOne) SetNillableLeaderNamespace(v *string) *SchedulerLockUpdateOne {
	if v != nil {
		_u.SetLeaderNamespace(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *SchedulerLockUpdateOne) SetAcquiredAt(v int64) *SchedulerLockUpdateOne {
	_u.mutation.ResetAcquiredAt()
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *SchedulerLockUpdateOne) SetNillableAcquiredAt(v *int64) *SchedulerLockUpdateOne {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// AddAcquiredAt adds value to the "acquired_at" field.
func (_u *SchedulerLockUpdateOne) AddAcquiredAt(v int64) *SchedulerLockUpdateOne {
	_u.mutation.AddAcquiredAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SchedulerLockUpdateOne) SetExpiresAt(v int64) *SchedulerLockUpdateOne {
	_u.mutation.ResetExpiresAt()
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SchedulerLockUpdateOne) SetNillableExpiresAt(v *int64) *SchedulerLockUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// AddExpiresAt adds value to the "expires_at" field.
func (_u *SchedulerLockUpdateOne) AddExpiresAt(v int64) *SchedulerLockUpdateOne {
	_u.mutation.AddExpiresAt(v)
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *SchedulerLockUpdateOne) SetHeartbeatAt(v int64) *SchedulerLockUpdateOne {
	_u.mutation.ResetHeartbeatAt()
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *SchedulerLockUpdateOne) SetNillableHeartbeatAt(v *int64) *SchedulerLockUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// AddHeartbeatAt adds value to the "heartbeat_at" field.
func (_u *SchedulerLockUpdateOne) AddHeartbeatAt(v int64) *SchedulerLockUpdateOne {
	_u.mutation.AddHeartbeatAt(v)
	return _u
}

// Mutation returns the SchedulerLockMutation object of the builder.
func (_u *SchedulerLockUpdateOne) Mutation() *SchedulerLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the SchedulerLockUpdate builder.
func (_u *SchedulerLockUpdateOne) Where(ps ...predicate.SchedulerLock) *SchedulerLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchedulerLockUpdateOne) Select(field string, fields ...string) *SchedulerLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchedulerLock entity.
func (_u *SchedulerLockUpdateOne) Save(ctx context.Context) (*SchedulerLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchedulerLockUpdateOne) SaveX(ctx context.Context) *SchedulerLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchedulerLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchedulerLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SchedulerLockUpdateOne) sqlSave(ctx context.Context) (_node *SchedulerLock, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedulerlock.Table, schedulerlock.Columns, sqlgraph.NewFieldSpec(schedulerlock.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchedulerLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedulerlock.FieldID)
		for _, f := range fields {
			if !schedulerlock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedulerlock.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LeaderID(); ok {
		_spec.SetField(schedulerlock.FieldLeaderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeaderNamespace(); ok {
		_spec.SetField(schedulerlock.FieldLeaderNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(schedulerlock.FieldAcquiredAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAcquiredAt(); ok {
		_spec.AddField(schedulerlock.FieldAcquiredAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(schedulerlock.FieldExpiresAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExpiresAt(); ok {
		_spec.AddField(schedulerlock.FieldExpiresAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(schedulerlock.FieldHeartbeatAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatAt(); ok {
		_spec.AddField(schedulerlock.FieldHeartbeatAt, field.TypeInt64, value)
	}
	_node = &SchedulerLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulerlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
