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
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SessionCreate) SetUserID(v string) *SessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SessionCreate) SetName(v string) *SessionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *SessionCreate) SetNillableName(v *string) *SessionCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *SessionCreate) SetAgentID(v string) *SessionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableAgentID(v *string) *SessionCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SessionCreate) SetProjectID(v string) *SessionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProjectID(v *string) *SessionCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetCreatedTime sets the "created_time" field.
func (_c *SessionCreate) SetCreatedTime(v int64) *SessionCreate {
	_c.mutation.SetCreatedTime(v)
	return _c
}

// SetUpdatedTime sets the "updated_time" field.
func (_c *SessionCreate) SetUpdatedTime(v int64) *SessionCreate {
	_c.mutation.SetUpdatedTime(v)
	return _c
}

// SetGatewayType sets the "gateway_type" field.
func (_c *SessionCreate) SetGatewayType(v string) *SessionCreate {
	_c.mutation.SetGatewayType(v)
	return _c
}

// SetNillableGatewayType sets the "gateway_type" field if the given value is not nil.
func (_c *SessionCreate) SetNillableGatewayType(v *string) *SessionCreate {
	if v != nil {
		_c.SetGatewayType(*v)
	}
	return _c
}

// SetExternalContextID sets the "external_context_id" field.
func (_c *SessionCreate) SetExternalContextID(v string) *SessionCreate {
	_c.mutation.SetExternalContextID(v)
	return _c
}

// SetNillableExternalContextID sets the "external_context_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableExternalContextID(v *string) *SessionCreate {
	if v != nil {
		_c.SetExternalContextID(*v)
	}
	return _c
}

// SetIsCompressionBranch sets the "is_compression_branch" field.
func (_c *SessionCreate) SetIsCompressionBranch(v bool) *SessionCreate {
	_c.mutation.SetIsCompressionBranch(v)
	return _c
}

// SetNillableIsCompressionBranch sets the "is_compression_branch" field if the given value is not nil.
func (_c *SessionCreate) SetNillableIsCompressionBranch(v *bool) *SessionCreate {
	if v != nil {
		_c.SetIsCompressionBranch(*v)
	}
	return _c
}

// SetCompressionMetadata sets the "compression_metadata" field.
func (_c *SessionCreate) SetCompressionMetadata(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetCompressionMetadata(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SessionCreate) SetDeletedAt(v int64) *SessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDeletedAt(v *int64) *SessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddChatTaskIDs adds the "chat_tasks" edge to the ChatTask entity by IDs.
func (_c *SessionCreate) AddChatTaskIDs(ids ...string) *SessionCreate {
	_c.mutation.AddChatTaskIDs(ids...)
	return _c
}

// AddChatTasks adds the "chat_tasks" edges to the ChatTask entity.
func (_c *SessionCreate) AddChatTasks(v ...*ChatTask) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatTaskIDs(ids...)
}

// AddSseEventIDs adds the "sse_events" edge to the SSEEvent entity by IDs.
func (_c *SessionCreate) AddSseEventIDs(ids ...int) *SessionCreate {
	_c.mutation.AddSseEventIDs(ids...)
	return _c
}

// AddSseEvents adds the "sse_events" edges to the SSEEvent entity.
func (_c *SessionCreate) AddSseEvents(v ...*SSEEvent) *SessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSseEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.IsCompressionBranch(); !ok {
		v := session.DefaultIsCompressionBranch
		_c.mutation.SetIsCompressionBranch(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Session.user_id"`)}
	}
	if _, ok := _c.mutation.CreatedTime(); !ok {
		return &ValidationError{Name: "created_time", err: errors.New(`ent: missing required field "Session.created_time"`)}
	}
	if _, ok := _c.mutation.UpdatedTime(); !ok {
		return &ValidationError{Name: "updated_time", err: errors.New(`ent: missing required field "Session.updated_time"`)}
	}
	if _, ok := _c.mutation.IsCompressionBranch(); !ok {
		return &ValidationError{Name: "is_compression_branch", err: errors.New(`ent: missing required field "Session.is_compression_branch"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(session.FieldName, field.TypeString, value)
		_node.Name = &value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(session.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(session.FieldProjectID, field.TypeString, value)
		_node.ProjectID = &value
	}
	if value, ok := _c.mutation.CreatedTime(); ok {
		_spec.SetField(session.FieldCreatedTime, field.TypeInt64, value)
		_node.CreatedTime = value
	}
	if value, ok := _c.mutation.UpdatedTime(); ok {
		_spec.SetField(session.FieldUpdatedTime, field.TypeInt64, value)
		_node.UpdatedTime = value
	}
	if value, ok := _c.mutation.GatewayType(); ok {
		_spec.SetField(session.FieldGatewayType, field.TypeString, value)
		_node.GatewayType = &value
	}
	if value, ok := _c.mutation.ExternalContextID(); ok {
		_spec.SetField(session.FieldExternalContextID, field.TypeString, value)
		_node.ExternalContextID = &value
	}
	if value, ok := _c.mutation.IsCompressionBranch(); ok {
		_spec.SetField(session.FieldIsCompressionBranch, field.TypeBool, value)
		_node.IsCompressionBranch = value
	}
	if value, ok := _c.mutation.CompressionMetadata(); ok {
		_spec.SetField(session.FieldCompressionMetadata, field.TypeJSON, value)
		_node.CompressionMetadata = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(session.FieldDeletedAt, field.TypeInt64, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ChatTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ChatTasksTable,
			Columns: []string{session.ChatTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SseEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.SseEventsTable,
			Columns: []string{session.SseEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
