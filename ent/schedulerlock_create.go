// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/schedulerlock"
)

// SchedulerLockCreate is the builder for creating a SchedulerLock entity.
type SchedulerLockCreate struct {
	config
	mutation *SchedulerLockMutation
	hooks    []Hook
}

// SetLeaderID sets the "leader_id" field.
func (_c *SchedulerLockCreate) SetLeaderID(v string) *SchedulerLockCreate {
	_c.mutation.SetLeaderID(v)
	return _c
}

// SetLeaderNamespace sets the "leader_namespace" field.
func (_c *SchedulerLockCreate) SetLeaderNamespace(v string) *SchedulerLockCreate {
	_c.mutation.SetLeaderNamespace(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *SchedulerLockCreate) SetAcquiredAt(v int64) *SchedulerLockCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SchedulerLockCreate) SetExpiresAt(v int64) *SchedulerLockCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *SchedulerLockCreate) SetHeartbeatAt(v int64) *SchedulerLockCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SchedulerLockCreate) SetID(v int) *SchedulerLockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SchedulerLockMutation object of the builder.
func (_c *SchedulerLockCreate) Mutation() *SchedulerLockMutation {
	return _c.mutation
}

// Save creates the SchedulerLock in the database.
func (_c *SchedulerLockCreate) Save(ctx context.Context) (*SchedulerLock, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchedulerLockCreate) SaveX(ctx context.Context) *SchedulerLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchedulerLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchedulerLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchedulerLockCreate) check() error {
	if _, ok := _c.mutation.LeaderID(); !ok {
		return &ValidationError{Name: "leader_id", err: errors.New(`ent: missing required field "SchedulerLock.leader_id"`)}
	}
	if _, ok := _c.mutation.LeaderNamespace(); !ok {
		return &ValidationError{Name: "leader_namespace", err: errors.New(`ent: missing required field "SchedulerLock.leader_namespace"`)}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "SchedulerLock.acquired_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "SchedulerLock.expires_at"`)}
	}
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		return &ValidationError{Name: "heartbeat_at", err: errors.New(`ent: missing required field "SchedulerLock.heartbeat_at"`)}
	}
	return nil
}

func (_c *SchedulerLockCreate) sqlSave(ctx context.Context) (*SchedulerLock, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SchedulerLockCreate) createSpec() (*SchedulerLock, *sqlgraph.CreateSpec) {
	var (
		_node = &SchedulerLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedulerlock.Table, sqlgraph.NewFieldSpec(schedulerlock.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LeaderID(); ok {
		_spec.SetField(schedulerlock.FieldLeaderID, field.TypeString, value)
		_node.LeaderID = value
	}
	if value, ok := _c.mutation.LeaderNamespace(); ok {
		_spec.SetField(schedulerlock.FieldLeaderNamespace, field.TypeString, value)
		_node.LeaderNamespace = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(schedulerlock.FieldAcquiredAt, field.TypeInt64, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(schedulerlock.FieldExpiresAt, field.TypeInt64, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(schedulerlock.FieldHeartbeatAt, field.TypeInt64, value)
		_node.HeartbeatAt = value
	}
	return _node, _spec
}

// SchedulerLockCreateBulk is the builder for creating many SchedulerLock entities in bulk.
type SchedulerLockCreateBulk struct {
	config
	err      error
	builders []*SchedulerLockCreate
}

// Save creates the SchedulerLock entities in the database.
func (_c *SchedulerLockCreateBulk) Save(ctx context.Context) ([]*SchedulerLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchedulerLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchedulerLockMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SchedulerLockCreateBulk) SaveX(ctx context.Context) []*SchedulerLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchedulerLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchedulerLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
