// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/task"
	"github.com/solacecommunity/agent-mesh-gateway/ent/taskevent"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TaskCreate) SetUserID(v string) *TaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TaskCreate) SetStartTime(v int64) *TaskCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TaskCreate) SetEndTime(v int64) *TaskCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEndTime(v *int64) *TaskCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v string) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *string) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInitialRequestText sets the "initial_request_text" field.
func (_c *TaskCreate) SetInitialRequestText(v string) *TaskCreate {
	_c.mutation.SetInitialRequestText(v)
	return _c
}

// SetNillableInitialRequestText sets the "initial_request_text" field if the given value is not nil.
func (_c *TaskCreate) SetNillableInitialRequestText(v *string) *TaskCreate {
	if v != nil {
		_c.SetInitialRequestText(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *TaskCreate) SetAgentName(v string) *TaskCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAgentName(v *string) *TaskCreate {
	if v != nil {
		_c.SetAgentName(*v)
	}
	return _c
}

// SetBackgroundExecutionEnabled sets the "background_execution_enabled" field.
func (_c *TaskCreate) SetBackgroundExecutionEnabled(v bool) *TaskCreate {
	_c.mutation.SetBackgroundExecutionEnabled(v)
	return _c
}

// SetNillableBackgroundExecutionEnabled sets the "background_execution_enabled" field if the given value is not nil.
func (_c *TaskCreate) SetNillableBackgroundExecutionEnabled(v *bool) *TaskCreate {
	if v != nil {
		_c.SetBackgroundExecutionEnabled(*v)
	}
	return _c
}

// SetMaxExecutionTimeMs sets the "max_execution_time_ms" field.
func (_c *TaskCreate) SetMaxExecutionTimeMs(v int64) *TaskCreate {
	_c.mutation.SetMaxExecutionTimeMs(v)
	return _c
}

// SetNillableMaxExecutionTimeMs sets the "max_execution_time_ms" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxExecutionTimeMs(v *int64) *TaskCreate {
	if v != nil {
		_c.SetMaxExecutionTimeMs(*v)
	}
	return _c
}

// SetLastActivityTime sets the "last_activity_time" field.
func (_c *TaskCreate) SetLastActivityTime(v int64) *TaskCreate {
	_c.mutation.SetLastActivityTime(v)
	return _c
}

// SetNillableLastActivityTime sets the "last_activity_time" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastActivityTime(v *int64) *TaskCreate {
	if v != nil {
		_c.SetLastActivityTime(*v)
	}
	return _c
}

// SetHasBufferedEvents sets the "has_buffered_events" field.
func (_c *TaskCreate) SetHasBufferedEvents(v bool) *TaskCreate {
	_c.mutation.SetHasBufferedEvents(v)
	return _c
}

// SetNillableHasBufferedEvents sets the "has_buffered_events" field if the given value is not nil.
func (_c *TaskCreate) SetNillableHasBufferedEvents(v *bool) *TaskCreate {
	if v != nil {
		_c.SetHasBufferedEvents(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_c *TaskCreate) AddEventIDs(ids ...string) *TaskCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_c *TaskCreate) AddEvents(v ...*TaskEvent) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.BackgroundExecutionEnabled(); !ok {
		v := task.DefaultBackgroundExecutionEnabled
		_c.mutation.SetBackgroundExecutionEnabled(v)
	}
	if _, ok := _c.mutation.HasBufferedEvents(); !ok {
		v := task.DefaultHasBufferedEvents
		_c.mutation.SetHasBufferedEvents(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Task.user_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Task.start_time"`)}
	}
	if _, ok := _c.mutation.BackgroundExecutionEnabled(); !ok {
		return &ValidationError{Name: "background_execution_enabled", err: errors.New(`ent: missing required field "Task.background_execution_enabled"`)}
	}
	if _, ok := _c.mutation.HasBufferedEvents(); !ok {
		return &ValidationError{Name: "has_buffered_events", err: errors.New(`ent: missing required field "Task.has_buffered_events"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(task.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(task.FieldStartTime, field.TypeInt64, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(task.FieldEndTime, field.TypeInt64, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.InitialRequestText(); ok {
		_spec.SetField(task.FieldInitialRequestText, field.TypeString, value)
		_node.InitialRequestText = &value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(task.FieldAgentName, field.TypeString, value)
		_node.AgentName = &value
	}
	if value, ok := _c.mutation.BackgroundExecutionEnabled(); ok {
		_spec.SetField(task.FieldBackgroundExecutionEnabled, field.TypeBool, value)
		_node.BackgroundExecutionEnabled = value
	}
	if value, ok := _c.mutation.MaxExecutionTimeMs(); ok {
		_spec.SetField(task.FieldMaxExecutionTimeMs, field.TypeInt64, value)
		_node.MaxExecutionTimeMs = &value
	}
	if value, ok := _c.mutation.LastActivityTime(); ok {
		_spec.SetField(task.FieldLastActivityTime, field.TypeInt64, value)
		_node.LastActivityTime = &value
	}
	if value, ok := _c.mutation.HasBufferedEvents(); ok {
		_spec.SetField(task.FieldHasBufferedEvents, field.TypeBool, value)
		_node.HasBufferedEvents = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
