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
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
)

// SSEEventUpdate is the builder for updating SSEEvent entities.
type SSEEventUpdate struct {
	config
	hooks    []Hook
	mutation *SSEEventMutation
}

// Where appends a list predicates to the SSEEventUpdate builder.
func (_u *SSEEventUpdate) Where(ps ...predicate.SSEEvent) *SSEEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SSEEventUpdate) SetTaskID(v string) *SSEEventUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SSEEventUpdate) SetNillableTaskID(v *string) *SSEEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SSEEventUpdate) SetSessionID(v string) *SSEEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SSEEventUpdate) SetNillableSessionID(v *string) *SSEEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SSEEventUpdate) SetUserID(v string) *SSEEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SSEEventUpdate) SetNillableUserID(v *string) *SSEEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEventSequence sets the "event_sequence" field.
func (_u *SSEEventUpdate) SetEventSequence(v int64) *SSEEventUpdate {
	_u.mutation.ResetEventSequence()
	_u.mutation.SetEventSequence(v)
	return _u
}

// SetNillableEventSequence sets the "event_sequence" field if the given value is not nil.
func (_u *SSEEventUpdate) SetNillableEventSequence(v *int64) *SSEEventUpdate {
	if v != nil {
		_u.SetEventSequence(*v)
	}
	return _u
}

// AddEventSequence adds value to the "event_sequence" field.
func (_u *SSEEventUpdate) AddEventSequence(v int64) *SSEEventUpdate {
	_u.mutation.AddEventSequence(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SSEEventUpdate) SetEventType(v string) *SSEEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SSEEventUpdate) SetNillableEventType(v *string) *SSEEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventData sets the "event_data" field.
func (_u *SSEEventUpdate) SetEventData(v string) *SSEEventUpdate {
	_u.mutation.SetEventData(v)
	return _u
}

// SetNillableEventData sets the "event_data" field if the given value is not nil.
func (_u *SSEEventUpdate) SetNillableEventData(v *string) *SSEEventUpdate {
	if v != nil {
		_u.SetEventData(*v)
	}
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *SSEEventUpdate) SetConsumed(v bool) *SSEEventUpdate {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *SSEEventUpdate) SetNillableConsumed(v *bool) *SSEEventUpdate {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *SSEEventUpdate) SetConsumedAt(v int64) *SSEEventUpdate {
	_u.mutation.ResetConsumedAt()
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *SSEEventUpdate) SetNillableConsumedAt(v *int64) *SSEEventUpdate {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// AddConsumedAt adds value to the "consumed_at" field.
func (_u *SSEEventUpdate) AddConsumedAt(v int64) *SSEEventUpdate {
	_u.mutation.AddConsumedAt(v)
	return _u
}

// ClearConsumedAt clears the value of the "consumed_at" field.
func (_u *SSEEventUpdate) ClearConsumedAt() *SSEEventUpdate {
	_u.mutation.ClearConsumedAt()
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SSEEventUpdate) SetSession(v *Session) *SSEEventUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SSEEventMutation object of the builder.
func (_u *SSEEventUpdate) Mutation() *SSEEventMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SSEEventUpdate) ClearSession() *SSEEventUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SSEEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SSEEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SSEEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SSEEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SSEEventUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SSEEvent.session"`)
	}
	return nil
}

func (_u *SSEEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sseevent.Table, sseevent.Columns, sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(sseevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventSequence(); ok {
		_spec.SetField(sseevent.FieldEventSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventSequence(); ok {
		_spec.AddField(sseevent.FieldEventSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(sseevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventData(); ok {
		_spec.SetField(sseevent.FieldEventData, field.TypeString, value)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(sseevent.FieldConsumed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(sseevent.FieldConsumedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsumedAt(); ok {
		_spec.AddField(sseevent.FieldConsumedAt, field.TypeInt64, value)
	}
	if _u.mutation.ConsumedAtCleared() {
		_spec.ClearField(sseevent.FieldConsumedAt, field.TypeInt64)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SSEEventUpdateOne is the builder for updating a single SSEEvent entity.
type SSEEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SSEEventMutation
}

// SetTaskID sets the "task_id" field.
func (_u *SSEEventUpdateOne) SetTaskID(v string) *SSEEventUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SSEEventUpdateOne) SetNillableTaskID(v *string) *SSEEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SSEEventUpdateOne) SetSessionID(v string) *SSEEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SSEEventUpdateOne) SetNillableSessionID(v *string) *SSEEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SSEEventUpdateOne) SetUserID(v string) *SSEEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SSEEventUpdateOne) SetNillableUserID(v *string) *SSEEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEventSequence sets the "event_sequence" field.
func (_u *SSEEventUpdateOne) SetEventSequence(v int64) *SSEEventUpdateOne {
	_u.mutation.ResetEventSequence()
	_u.mutation.SetEventSequence(v)
	return _u
}

// SetNillableEventSequence sets the "event_sequence" field if the given value is not nil.
func (_u *SSEEventUpdateOne) SetNillableEventSequence(v *int64) *SSEEventUpdateOne {
	if v != nil {
		_u.SetEventSequence(*v)
	}
	return _u
}

// AddEventSequence adds value to the "event_sequence" field.
func (_u *SSEEventUpdateOne) AddEventSequence(v int64) *SSEEventUpdateOne {
	_u.mutation.AddEventSequence(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SSEEventUpdateOne) SetEventType(v string) *SSEEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SSEEventUpdateOne) SetNillableEventType(v *string) *SSEEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventData sets the "event_data" field.
func (_u *SSEEventUpdateOne) SetEventData(v string) *SSEEventUpdateOne {
	_u.mutation.SetEventData(v)
	return _u
}

// SetNillableEventData sets the "event_data" field if the given value is not nil.
func (_u *SSEEventUpdateOne) SetNillableEventData(v *string) *SSEEventUpdateOne {
	if v != nil {
		_u.SetEventData(*v)
	}
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *SSEEventUpdateOne) SetConsumed(v bool) *SSEEventUpdateOne {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *SSEEventUpdateOne) SetNillableConsumed(v *bool) *SSEEventUpdateOne {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// SetConsumedAt sets the "consumed_at" field.
func (_u *SSEEventUpdateOne) SetConsumedAt(v int64) *SSEEventUpdateOne {
	_u.mutation.ResetConsumedAt()
	_u.mutation.SetConsumedAt(v)
	return _u
}

// SetNillableConsumedAt sets the "consumed_at" field if the given value is not nil.
func (_u *SSEEventUpdateOne) SetNillableConsumedAt(v *int64) *SSEEventUpdateOne {
	if v != nil {
		_u.SetConsumedAt(*v)
	}
	return _u
}

// AddConsumedAt adds value to the "consumed_at" field.
func (_u *SSEEventUpdateOne) AddConsumedAt(v int64) *SSEEventUpdateOne {
	_u.mutation.AddConsumedAt(v)
	return _u
}

// ClearConsumedAt clears the value of the "consumed_at" field.
func (_u *SSEEventUpdateOne) ClearConsumedAt() *SSEEventUpdateOne {
	_u.mutation.ClearConsumedAt()
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SSEEventUpdateOne) SetSession(v *Session) *SSEEventUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SSEEventMutation object of the builder.
func (_u *SSEEventUpdateOne) Mutation() *SSEEventMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SSEEventUpdateOne) ClearSession() *SSEEventUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the SSEEventUpdate builder.
func (_u *SSEEventUpdateOne) Where(ps ...predicate.SSEEvent) *SSEEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SSEEventUpdateOne) Select(field string, fields ...string) *SSEEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SSEEvent entity.
func (_u *SSEEventUpdateOne) Save(ctx context.Context) (*SSEEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SSEEventUpdateOne) SaveX(ctx context.Context) *SSEEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SSEEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SSEEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SSEEventUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SSEEvent.session"`)
	}
	return nil
}

func (_u *SSEEventUpdateOne) sqlSave(ctx context.Context) (_node *SSEEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sseevent.Table, sseevent.Columns, sqlgraph.NewFieldSpec(sseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SSEEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sseevent.FieldID)
		for _, f := range fields {
			if !sseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sseevent.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(sseevent.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventSequence(); ok {
		_spec.SetField(sseevent.FieldEventSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventSequence(); ok {
		_spec.AddField(sseevent.FieldEventSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(sseevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventData(); ok {
		_spec.SetField(sseevent.FieldEventData, field.TypeString, value)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(sseevent.FieldConsumed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsumedAt(); ok {
		_spec.SetField(sseevent.FieldConsumedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsumedAt(); ok {
		_spec.AddField(sseevent.FieldConsumedAt, field.TypeInt64, value)
	}
	if _u.mutation.ConsumedAtCleared() {
		_spec.ClearField(sseevent.FieldConsumedAt, field.TypeInt64)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SSEEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
