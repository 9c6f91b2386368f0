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
	"github.com/solacecommunity/agent-mesh-gateway/ent/task"
	"github.com/solacecommunity/agent-mesh-gateway/ent/taskevent"
)

// TaskEventUpdate is the builder for updating TaskEvent entities.
type TaskEventUpdate struct {
	config
	hooks    []Hook
	mutation *TaskEventMutation
}

// Where appends a list predicates to the TaskEventUpdate builder.
func (_u *TaskEventUpdate) Where(ps ...predicate.TaskEvent) *TaskEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskEventUpdate) SetTaskID(v string) *TaskEventUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableTaskID(v *string) *TaskEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskEventUpdate) SetUserID(v string) *TaskEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableUserID(v *string) *TaskEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TaskEventUpdate) ClearUserID() *TaskEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TaskEventUpdate) SetTopic(v string) *TaskEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableTopic(v *string) *TaskEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *TaskEventUpdate) SetDirection(v taskevent.Direction) *TaskEventUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableDirection(v *taskevent.Direction) *TaskEventUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TaskEventUpdate) SetPayload(v map[string]interface{}) *TaskEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskEventUpdate) SetTask(v *Task) *TaskEventUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskEventMutation object of the builder.
func (_u *TaskEventUpdate) Mutation() *TaskEventMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskEventUpdate) ClearTask() *TaskEventUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskEventUpdate) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := taskevent.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.direction": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskEvent.task"`)
	}
	return nil
}

func (_u *TaskEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskevent.Table, taskevent.Columns, sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(taskevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(taskevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(taskevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(taskevent.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(taskevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskevent.TaskTable,
			Columns: []string{taskevent.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskevent.TaskTable,
			Columns: []string{taskevent.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskEventUpdateOne is the builder for updating a single TaskEvent entity.
type TaskEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskEventMutation
}

// SetTaskID sets the "task_id" field.
func (_u *TaskEventUpdateOne) SetTaskID(v string) *TaskEventUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableTaskID(v *string) *TaskEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskEventUpdateOne) SetUserID(v string) *TaskEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableUserID(v *string) *TaskEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TaskEventUpdateOne) ClearUserID() *TaskEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TaskEventUpdateOne) SetTopic(v string) *TaskEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableTopic(v *string) *TaskEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *TaskEventUpdateOne) SetDirection(v taskevent.Direction) *TaskEventUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableDirection(v *taskevent.Direction) *TaskEventUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TaskEventUpdateOne) SetPayload(v map[string]interface{}) *TaskEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskEventUpdateOne) SetTask(v *Task) *TaskEventUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskEventMutation object of the builder.
func (_u *TaskEventUpdateOne) Mutation() *TaskEventMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskEventUpdateOne) ClearTask() *TaskEventUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the TaskEventUpdate builder.
func (_u *TaskEventUpdateOne) Where(ps ...predicate.TaskEvent) *TaskEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskEventUpdateOne) Select(field string, fields ...string) *TaskEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskEvent entity.
func (_u *TaskEventUpdateOne) Save(ctx context.Context) (*TaskEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskEventUpdateOne) SaveX(ctx context.Context) *TaskEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskEventUpdateOne) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := taskevent.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.direction": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskEvent.task"`)
	}
	return nil
}

func (_u *TaskEventUpdateOne) sqlSave(ctx context.Context) (_node *TaskEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskevent.Table, taskevent.Columns, sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskevent.FieldID)
		for _, f := range fields {
			if !taskevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(taskevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(taskevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(taskevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(taskevent.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(taskevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskevent.TaskTable,
			Columns: []string{taskevent.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskevent.TaskTable,
			Columns: []string{taskevent.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
