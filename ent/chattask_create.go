// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/chattask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
)

// ChatTaskCreate is the builder for creating a ChatTask entity.
type ChatTaskCreate struct {
	config
	mutation *ChatTaskMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ChatTaskCreate) SetSessionID(v string) *ChatTaskCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChatTaskCreate) SetUserID(v string) *ChatTaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUserMessage sets the "user_message" field.
func (_c *ChatTaskCreate) SetUserMessage(v string) *ChatTaskCreate {
	_c.mutation.SetUserMessage(v)
	return _c
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_c *ChatTaskCreate) SetNillableUserMessage(v *string) *ChatTaskCreate {
	if v != nil {
		_c.SetUserMessage(*v)
	}
	return _c
}

// SetMessageBubbles sets the "message_bubbles" field.
func (_c *ChatTaskCreate) SetMessageBubbles(v string) *ChatTaskCreate {
	_c.mutation.SetMessageBubbles(v)
	return _c
}

// SetTaskMetadata sets the "task_metadata" field.
func (_c *ChatTaskCreate) SetTaskMetadata(v string) *ChatTaskCreate {
	_c.mutation.SetTaskMetadata(v)
	return _c
}

// SetNillableTaskMetadata sets the "task_metadata" field if the given value is not nil.
func (_c *ChatTaskCreate) SetNillableTaskMetadata(v *string) *ChatTaskCreate {
	if v != nil {
		_c.SetTaskMetadata(*v)
	}
	return _c
}

// SetCreatedTime sets the "created_time" field.
func (_c *ChatTaskCreate) SetCreatedTime(v int64) *ChatTaskCreate {
	_c.mutation.SetCreatedTime(v)
	return _c
}

// SetUpdatedTime sets the "updated_time" field.
func (_c *ChatTaskCreate) SetUpdatedTime(v int64) *ChatTaskCreate {
	_c.mutation.SetUpdatedTime(v)
	return _c
}

// SetNillableUpdatedTime sets the "updated_time" field if the given value is not nil.
func (_c *ChatTaskCreate) SetNillableUpdatedTime(v *int64) *ChatTaskCreate {
	if v != nil {
		_c.SetUpdatedTime(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatTaskCreate) SetID(v string) *ChatTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ChatTaskCreate) SetSession(v *Session) *ChatTaskCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ChatTaskMutation object of the builder.
func (_c *ChatTaskCreate) Mutation() *ChatTaskMutation {
	return _c.mutation
}

// Save creates the ChatTask in the database.
func (_c *ChatTaskCreate) Save(ctx context.Context) (*ChatTask, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatTaskCreate) SaveX(ctx context.Context) *ChatTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatTaskCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ChatTask.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChatTask.user_id"`)}
	}
	if _, ok := _c.mutation.MessageBubbles(); !ok {
		return &ValidationError{Name: "message_bubbles", err: errors.New(`ent: missing required field "ChatTask.message_bubbles"`)}
	}
	if _, ok := _c.mutation.CreatedTime(); !ok {
		return &ValidationError{Name: "created_time", err: errors.New(`ent: missing required field "ChatTask.created_time"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ChatTask.session"`)}
	}
	return nil
}

func (_c *ChatTaskCreate) sqlSave(ctx context.Context) (*ChatTask, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ChatTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatTaskCreate) createSpec() (*ChatTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chattask.Table, sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(chattask.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.UserMessage(); ok {
		_spec.SetField(chattask.FieldUserMessage, field.TypeString, value)
		_node.UserMessage = &value
	}
	if value, ok := _c.mutation.MessageBubbles(); ok {
		_spec.SetField(chattask.FieldMessageBubbles, field.TypeString, value)
		_node.MessageBubbles = value
	}
	if value, ok := _c.mutation.TaskMetadata(); ok {
		_spec.SetField(chattask.FieldTaskMetadata, field.TypeString, value)
		_node.TaskMetadata = &value
	}
	if value, ok := _c.mutation.CreatedTime(); ok {
		_spec.SetField(chattask.FieldCreatedTime, field.TypeInt64, value)
		_node.CreatedTime = value
	}
	if value, ok := _c.mutation.UpdatedTime(); ok {
		_spec.SetField(chattask.FieldUpdatedTime, field.TypeInt64, value)
		_node.UpdatedTime = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chattask.SessionTable,
			Columns: []string{chattask.SessionColumn},
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

// ChatTaskCreateBulk is the builder for creating many ChatTask entities in bulk.
type ChatTaskCreateBulk struct {
	config
	err      error
	builders []*ChatTaskCreate
}

// Save creates the ChatTask entities in the database.
func (_c *ChatTaskCreateBulk) Save(ctx context.Context) ([]*ChatTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatTaskMutation)
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
func (_c *ChatTaskCreateBulk) SaveX(ctx context.Context) []*ChatTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
