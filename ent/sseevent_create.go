// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
)

// SSEEventCreate is the builder for creating a SSEEvent entity.
type SSEEventCreate struct {
	config
	mutation *SSEEventMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *SSEEventCreate) SetTaskID(v string) *SSEEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SSEEventCreate) SetSessionID(v string) *SSEEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SSEEventCreate) SetUserID(v string) *SSEEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEventSequence sets the "event_sequence" field.
func (_c *SSEEventCreate) SetEventSequence(v int64) *SSEEventCreate {
	_c.mutation.SetEventSequence(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *SSEEventCreate) SetEventType(v string) *SSEEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventData sets the "event_data" field.
func (_c *SSEEventCreate) SetEventData(v string) *SSEEventCreate {
	_c.mutation.SetEventData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SSEEventCreate) SetCreatedAt(v int64) *SSEEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetConsumed sets the "consumed" field.
func (_c *SSEEventCreate) SetConsumed(v bool) *SSEEventCreate {
	_c.mutation.SetConsumed(v)
	return _c
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_c *SSEEventCreate) SetNillableConsumed(v *bool) *SSEEventCreate {
	if v != nil {
		_c.SetConsumed(*v)
	}
	return _c
}

// SetConsumedAt sets the "consumed_at" field.
func (_c *SSEEventCreate) SetConsumedAt(v int64) *SSEEventCreate {
	_c.mutation.SetConsumedAt(v)
	return _c
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_c *SSEEventCreate) SetNillableConsumedAt(v *int64) *SSEEventCreate {
	if v != nil {
		_c.SetConsumedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SSEEventCreate) SetID(v int) *SSEEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *SSEEventCreate) SetSession(v *Session) *SSEEventCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SSEEventMutation object of the builder.
func (_c *SSEEventCreate) Mutation() *SSEEventMutation {
	return _c.mutation
}

// Save creates the SSEEvent in the database.
func (_c *SSEEventCreate) Save(ctx context.Context) (*SSEEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SSEEventCreate) SaveX(ctx context.Context) *SSEEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SSEEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SSEEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SSEEventCreate) defaults() {
	if _, ok := _c.mutation.Consumed(); !ok {
		v := sseevent.DefaultConsumed
		_c.mutation.SetConsumed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SSEEventCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SSEEvent.task_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SSEEvent.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SSEEvent.user_id"`)}
	}
	if _, ok := _c.mutation.EventSequence(); !ok {
		return &ValidationError{Name: "event_sequence", err: errors.New(`ent: missing required field "SSEEvent.event_sequence"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "SSEEvent.event_type"`)}
	}
	if _, ok := _c.mutation.EventData(); !ok {
		return &ValidationError{Name: "event_data", err: errors.New(`ent: missing required field "SSEEvent.event_data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SSEEvent.created_at"`)}
	}
	if _, ok := _c.mutation.Consumed(); !ok {
		return &ValidationError{Name: "consumed", err: errors.New(`ent: missing required field "SSEEvent.consumed"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SSEEvent.session"`)}
	}
	return nil
}

func (_c *SSEEventCreate) sqlSave(ctx context.Context) (*SSEEvent, error) {
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

func (_c *SSEEventCreate) createSpec() (*SSEEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SSEEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sseevent.Table, sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(sseevent.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sseevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.EventSequence(); ok {
		_spec.SetField(sseevent.FieldEventSequence, field.TypeInt64, value)
		_node.EventSequence = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(sseevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventData(); ok {
		_spec.SetField(sseevent.FieldEventData, field.TypeString, value)
		_node.EventData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sseevent.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Consumed(); ok {
		_spec.SetField(sseevent.FieldConsumed, field.TypeBool, value)
		_node.Consumed = value
	}
	if value, ok := _c.mutation.ConsumedAt(); ok {
		_spec.SetField(sseevent.FieldConsumedAt, field.TypeInt64, value)
		_node.ConsumedAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sseevent.SessionTable,
			Columns: []string{sseevent.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SSEEventCreateBulk is the builder for creating many SSEEvent entities in bulk.
type SSEEventCreateBulk struct {
	config
	err      error
	builders []*SSEEventCreate
}

// Save creates the SSEEvent entities in the database.
func (_c *SSEEventCreateBulk) Save(ctx context.Context) ([]*SSEEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SSEEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SSEEventMutation)
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
func (_c *SSEEventCreateBulk) SaveX(ctx context.Context) []*SSEEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SSEEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SSEEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
