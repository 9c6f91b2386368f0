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

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskUpdate) SetUserID(v string) *TaskUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableUserID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TaskUpdate) SetEndTime(v int64) *TaskUpdate {
	_u.mutation.ResetEndTime()
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEndTime(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// AddEndTime adds value to the "end_time" field.
func (_u *TaskUpdate) AddEndTime(v int64) *TaskUpdate {
	_u.mutation.AddEndTime(v)
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TaskUpdate) ClearEndTime() *TaskUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v string) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *string) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *TaskUpdate) ClearStatus() *TaskUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetInitialRequestText sets the "initial_request_text" field.
func (_u *TaskUpdate) SetInitialRequestText(v string) *TaskUpdate {
	_u.mutation.SetInitialRequestText(v)
	return _u
}

// SetNillableInitialRequestText sets the "initial_request_text" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableInitialRequestText(v *string) *TaskUpdate {
	if v != nil {
		_u.SetInitialRequestText(*v)
	}
	return _u
}

// ClearInitialRequestText clears the value of the "initial_request_text" field.
func (_u *TaskUpdate) ClearInitialRequestText() *TaskUpdate {
	_u.mutation.ClearInitialRequestText()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *TaskUpdate) SetAgentName(v string) *TaskUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAgentName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *TaskUpdate) ClearAgentName() *TaskUpdate {
	_u.mutation.ClearAgentName()
	return _u
}

// SetBackgroundExecutionEnabled sets the "background_execution_enabled" field.
func (_u *TaskUpdate) SetBackgroundExecutionEnabled(v bool) *TaskUpdate {
	_u.mutation.SetBackgroundExecutionEnabled(v)
	return _u
}

// SetNillableBackgroundExecutionEnabled sets the "background_execution_enabled" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBackgroundExecutionEnabled(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetBackgroundExecutionEnabled(*v)
	}
	return _u
}

// SetMaxExecutionTimeMs sets the "max_execution_time_ms" field.
func (_u *TaskUpdate) SetMaxExecutionTimeMs(v int64) *TaskUpdate {
	_u.mutation.ResetMaxExecutionTimeMs()
	_u.mutation.SetMaxExecutionTimeMs(v)
	return _u
}

// SetNillableMaxExecutionTimeMs sets the "max_execution_time_ms" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxExecutionTimeMs(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetMaxExecutionTimeMs(*v)
	}
	return _u
}

// AddMaxExecutionTimeMs adds value to the "max_execution_time_ms" field.
func (_u *TaskUpdate) AddMaxExecutionTimeMs(v int64) *TaskUpdate {
	_u.mutation.AddMaxExecutionTimeMs(v)
	return _u
}

// ClearMaxExecutionTimeMs clears the value of the "max_execution_time_ms" field.
func (_u *TaskUpdate) ClearMaxExecutionTimeMs() *TaskUpdate {
	_u.mutation.ClearMaxExecutionTimeMs()
	return _u
}

// SetLastActivityTime sets the "last_activity_time" field.
func (_u *TaskUpdate) SetLastActivityTime(v int64) *TaskUpdate {
	_u.mutation.ResetLastActivityTime()
	_u.mutation.SetLastActivityTime(v)
	return _u
}

// SetNillableLastActivityTime sets the "last_activity_time" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastActivityTime(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetLastActivityTime(*v)
	}
	return _u
}

// AddLastActivityTime adds value to the "last_activity_time" field.
func (_u *TaskUpdate) AddLastActivityTime(v int64) *TaskUpdate {
	_u.mutation.AddLastActivityTime(v)
	return _u
}

// ClearLastActivityTime clears the value of the "last_activity_time" field.
func (_u *TaskUpdate) ClearLastActivityTime() *TaskUpdate {
	_u.mutation.ClearLastActivityTime()
	return _u
}

// SetHasBufferedEvents sets the "has_buffered_events" field.
func (_u *TaskUpdate) SetHasBufferedEvents(v bool) *TaskUpdate {
	_u.mutation.SetHasBufferedEvents(v)
	return _u
}

// SetNillableHasBufferedEvents sets the "has_buffered_events" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableHasBufferedEvents(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetHasBufferedEvents(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdate) AddEventIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_u *TaskUpdate) AddEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (_u *TaskUpdate) ClearEvents() *TaskUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdate) RemoveEventIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (_u *TaskUpdate) RemoveEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(task.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(task.FieldEndTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEndTime(); ok {
		_spec.AddField(task.FieldEndTime, field.TypeInt64, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(task.FieldEndTime, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(task.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.InitialRequestText(); ok {
		_spec.SetField(task.FieldInitialRequestText, field.TypeString, value)
	}
	if _u.mutation.InitialRequestTextCleared() {
		_spec.ClearField(task.FieldInitialRequestText, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(task.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(task.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.BackgroundExecutionEnabled(); ok {
		_spec.SetField(task.FieldBackgroundExecutionEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxExecutionTimeMs(); ok {
		_spec.SetField(task.FieldMaxExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMaxExecutionTimeMs(); ok {
		_spec.AddField(task.FieldMaxExecutionTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.MaxExecutionTimeMsCleared() {
		_spec.ClearField(task.FieldMaxExecutionTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.LastActivityTime(); ok {
		_spec.SetField(task.FieldLastActivityTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastActivityTime(); ok {
		_spec.AddField(task.FieldLastActivityTime, field.TypeInt64, value)
	}
	if _u.mutation.LastActivityTimeCleared() {
		_spec.ClearField(task.FieldLastActivityTime, field.TypeInt64)
	}
	if value, ok := _u.mutation.HasBufferedEvents(); ok {
		_spec.SetField(task.FieldHasBufferedEvents, field.TypeBool, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetUserID sets the "user_id" field.
func (_u *TaskUpdateOne) SetUserID(v string) *TaskUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableUserID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TaskUpdateOne) SetEndTime(v int64) *TaskUpdateOne {
	_u.mutation.ResetEndTime()
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEndTime(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// AddEndTime adds value to the "end_time" field.
func (_u *TaskUpdateOne) AddEndTime(v int64) *TaskUpdateOne {
	_u.mutation.AddEndTime(v)
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TaskUpdateOne) ClearEndTime() *TaskUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v string) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *TaskUpdateOne) ClearStatus() *TaskUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetInitialRequestText sets the "initial_request_text" field.
func (_u *TaskUpdateOne) SetInitialRequestText(v string) *TaskUpdateOne {
	_u.mutation.SetInitialRequestText(v)
	return _u
}

// SetNillableInitialRequestText sets the "initial_request_text" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableInitialRequestText(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetInitialRequestText(*v)
	}
	return _u
}

// ClearInitialRequestText clears the value of the "initial_request_text" field.
func (_u *TaskUpdateOne) ClearInitialRequestText() *TaskUpdateOne {
	_u.mutation.ClearInitialRequestText()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *TaskUpdateOne) SetAgentName(v string) *TaskUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAgentName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *TaskUpdateOne) ClearAgentName() *TaskUpdateOne {
	_u.mutation.ClearAgentName()
	return _u
}

// SetBackgroundExecutionEnabled sets the "background_execution_enabled" field.
func (_u *TaskUpdateOne) SetBackgroundExecutionEnabled(v bool) *TaskUpdateOne {
	_u.mutation.SetBackgroundExecutionEnabled(v)
	return _u
}

// SetNillableBackgroundExecutionEnabled sets the "background_execution_enabled" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBackgroundExecutionEnabled(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetBackgroundExecutionEnabled(*v)
	}
	return _u
}

// SetMaxExecutionTimeMs sets the "max_execution_time_ms" field.
func (_u *TaskUpdateOne) SetMaxExecutionTimeMs(v int64) *TaskUpdateOne {
	_u.mutation.ResetMaxExecutionTimeMs()
	_u.mutation.SetMaxExecutionTimeMs(v)
	return _u
}

// SetNillableMaxExecutionTimeMs sets the "max_execution_time_ms" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxExecutionTimeMs(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxExecutionTimeMs(*v)
	}
	return _u
}

// AddMaxExecutionTimeMs adds value to the "max_execution_time_ms" field.
func (_u *TaskUpdateOne) AddMaxExecutionTimeMs(v int64) *TaskUpdateOne {
	_u.mutation.AddMaxExecutionTimeMs(v)
	return _u
}

// ClearMaxExecutionTimeMs clears the value of the "max_execution_time_ms" field.
func (_u *TaskUpdateOne) ClearMaxExecutionTimeMs() *TaskUpdateOne {
	_u.mutation.ClearMaxExecutionTimeMs()
	return _u
}

// SetLastActivityTime sets the "last_activity_time" field.
func (_u *TaskUpdateOne) SetLastActivityTime(v int64) *TaskUpdateOne {
	_u.mutation.ResetLastActivityTime()
	_u.mutation.SetLastActivityTime(v)
	return _u
}

// SetNillableLastActivityTime sets the "last_activity_time" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastActivityTime(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetLastActivityTime(*v)
	}
	return _u
}

// AddLastActivityTime adds value to the "last_activity_time" field.
func (_u *TaskUpdateOne) AddLastActivityTime(v int64) *TaskUpdateOne {
	_u.mutation.AddLastActivityTime(v)
	return _u
}

// ClearLastActivityTime clears the value of the "last_activity_time" field.
func (_u *TaskUpdateOne) ClearLastActivityTime() *TaskUpdateOne {
	_u.mutation.ClearLastActivityTime()
	return _u
}

// SetHasBufferedEvents sets the "has_buffered_events" field.
func (_u *TaskUpdateOne) SetHasBufferedEvents(v bool) *TaskUpdateOne {
	_u.mutation.SetHasBufferedEvents(v)
	return _u
}

// SetNillableHasBufferedEvents sets the "has_buffered_events" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableHasBufferedEvents(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetHasBufferedEvents(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdateOne) AddEventIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) AddEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) ClearEvents() *TaskUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdateOne) RemoveEventIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (_u *TaskUpdateOne) RemoveEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
		_spec.SetField(task.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(task.FieldEndTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEndTime(); ok {
		_spec.AddField(task.FieldEndTime, field.TypeInt64, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(task.FieldEndTime, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(task.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.InitialRequestText(); ok {
		_spec.SetField(task.FieldInitialRequestText, field.TypeString, value)
	}
	if _u.mutation.InitialRequestTextCleared() {
		_spec.ClearField(task.FieldInitialRequestText, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(task.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(task.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.BackgroundExecutionEnabled(); ok {
		_spec.SetField(task.FieldBackgroundExecutionEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxExecutionTimeMs(); ok {
		_spec.SetField(task.FieldMaxExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMaxExecutionTimeMs(); ok {
		_spec.AddField(task.FieldMaxExecutionTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.MaxExecutionTimeMsCleared() {
		_spec.ClearField(task.FieldMaxExecutionTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.LastActivityTime(); ok {
		_spec.SetField(task.FieldLastActivityTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastActivityTime(); ok {
		_spec.AddField(task.FieldLastActivityTime, field.TypeInt64, value)
	}
	if _u.mutation.LastActivityTimeCleared() {
		_spec.ClearField(task.FieldLastActivityTime, field.TypeInt64)
	}
	if value, ok := _u.mutation.HasBufferedEvents(); ok {
		_spec.SetField(task.FieldHasBufferedEvents, field.TypeBool, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
