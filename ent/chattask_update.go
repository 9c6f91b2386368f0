// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/chattask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
	"github.com/solacecommunity/agent-mesh-gateway/ent/session"
)

// ChatTaskUpdate is the builder for updating ChatTask entities.
type ChatTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ChatTaskMutation
}

// Where appends a list predicates to the ChatTaskUpdate builder.
func (_u *ChatTaskUpdate) Where(ps ...predicate.ChatTask) *ChatTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatTaskUpdate) SetSessionID(v string) *ChatTaskUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatTaskUpdate) SetNillableSessionID(v *string) *ChatTaskUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatTaskUpdate) SetUserID(v string) *ChatTaskUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatTaskUpdate) SetNillableUserID(v *string) *ChatTaskUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUserMessage sets the "user_message" field.
func (_u *ChatTaskUpdate) SetUserMessage(v string) *ChatTaskUpdate {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *ChatTaskUpdate) SetNillableUserMessage(v *string) *ChatTaskUpdate {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// ClearUserMessage clears the value of the "user_message" field.
func (_u *ChatTaskUpdate) ClearUserMessage() *ChatTaskUpdate {
	_u.mutation.ClearUserMessage()
	return _u
}

// SetMessageBubbles sets the "message_bubbles" field.
func (_u *ChatTaskUpdate) SetMessageBubbles(v string) *ChatTaskUpdate {
	_u.mutation.SetMessageBubbles(v)
	return _u
}

// SetNillableMessageBubbles sets the "message_bubbles" field if the given value is not nil.
func (_u *ChatTaskUpdate) SetNillableMessageBubbles(v *string) *ChatTaskUpdate {
	if v != nil {
		_u.SetMessageBubbles(*v)
	}
	return _u
}

// SetTaskMetadata sets the "task_metadata" field.
func (_u *ChatTaskUpdate) SetTaskMetadata(v string) *ChatTaskUpdate {
	_u.mutation.SetTaskMetadata(v)
	return _u
}

// SetNillableTaskMetadata sets the "task_metadata" field if the given value is not nil.
func (_u *ChatTaskUpdate) SetNillableTaskMetadata(v *string) *ChatTaskUpdate {
	if v != nil {
		_u.SetTaskMetadata(*v)
	}
	return _u
}

// ClearTaskMetadata clears the value of the "task_metadata" field.
func (_u *ChatTaskUpdate) ClearTaskMetadata() *ChatTaskUpdate {
	_u.mutation.ClearTaskMetadata()
	return _u
}

// SetUpdatedTime sets the "updated_time" field.
func (_u *ChatTaskUpdate) SetUpdatedTime(v int64) *ChatTaskUpdate {
	_u.mutation.ResetUpdatedTime()
	_u.mutation.SetUpdatedTime(v)
	return _u
}

// SetNillableUpdatedTime sets the "updated_time" field if the given value is not nil.
func (_u *ChatTaskUpdate) SetNillableUpdatedTime(v *int64) *ChatTaskUpdate {
	if v != nil {
		_u.SetUpdatedTime(*v)
	}
	return _u
}

// AddUpdatedTime adds value to the "updated_time" field.
func (_u *ChatTaskUpdate) AddUpdatedTime(v int64) *ChatTaskUpdate {
	_u.mutation.AddUpdatedTime(v)
	return _u
}

// ClearUpdatedTime clears the value of the "updated_time" field.
func (_u *ChatTaskUpdate) ClearUpdatedTime() *ChatTaskUpdate {
	_u.mutation.ClearUpdatedTime()
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ChatTaskUpdate) SetSession(v *Session) *ChatTaskUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ChatTaskMutation object of the builder.
func (_u *ChatTaskUpdate) Mutation() *ChatTaskMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ChatTaskUpdate) ClearSession() *ChatTaskUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatTaskUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatTask.session"`)
	}
	return nil
}

func (_u *ChatTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chattask.Table, chattask.Columns, sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chattask.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(chattask.FieldUserMessage, field.TypeString, value)
	}
	if _u.mutation.UserMessageCleared() {
		_spec.ClearField(chattask.FieldUserMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MessageBubbles(); ok {
		_spec.SetField(chattask.FieldMessageBubbles, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskMetadata(); ok {
		_spec.SetField(chattask.FieldTaskMetadata, field.TypeString, value)
	}
	if _u.mutation.TaskMetadataCleared() {
		_spec.ClearField(chattask.FieldTaskMetadata, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedTime(); ok {
		_spec.SetField(chattask.FieldUpdatedTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedTime(); ok {
		_spec.AddField(chattask.FieldUpdatedTime, field.TypeInt64, value)
	}
	if _u.mutation.UpdatedTimeCleared() {
		_spec.ClearField(chattask.FieldUpdatedTime, field.TypeInt64)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chattask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatTaskUpdateOne is the builder for updating a single ChatTask entity.
type ChatTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatTaskMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChatTaskUpdateOne) SetSessionID(v string) *ChatTaskUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatTaskUpdateOne) SetNillableSessionID(v *string) *ChatTaskUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatTaskUpdateOne) SetUserID(v string) *ChatTaskUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatTaskUpdateOne) SetNillableUserID(v *string) *ChatTaskUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUserMessage sets the "user_message" field.
func (_u *ChatTaskUpdateOne) SetUserMessage(v string) *ChatTaskUpdateOne {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *ChatTaskUpdateOne) SetNillableUserMessage(v *string) *ChatTaskUpdateOne {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// ClearUserMessage clears the value of the "user_message" field.
func (_u *ChatTaskUpdateOne) ClearUserMessage() *ChatTaskUpdateOne {
	_u.mutation.ClearUserMessage()
	return _u
}

// SetMessageBubbles sets the "message_bubbles" field.
func (_u *ChatTaskUpdateOne) SetMessageBubbles(v string) *ChatTaskUpdateOne {
	_u.mutation.SetMessageBubbles(v)
	return _u
}

// SetNillableMessageBubbles sets the "message_bubbles" field if the given value is not nil.
func (_u *ChatTaskUpdateOne) SetNillableMessageBubbles(v *string) *ChatTaskUpdateOne {
	if v != nil {
		_u.SetMessageBubbles(*v)
	}
	return _u
}

// SetTaskMetadata sets the "task_metadata" field.
func (_u *ChatTaskUpdateOne) SetTaskMetadata(v string) *ChatTaskUpdateOne {
	_u.mutation.SetTaskMetadata(v)
	return _u
}

// SetNillableTaskMetadata sets the "task_metadata" field if the given value is not nil.
func (_u *ChatTaskUpdateOne) SetNillableTaskMetadata(v *string) *ChatTaskUpdateOne {
	if v != nil {
		_u.SetTaskMetadata(*v)
	}
	return _u
}

// ClearTaskMetadata clears the value of the "task_metadata" field.
func (_u *ChatTaskUpdateOne) ClearTaskMetadata() *ChatTaskUpdateOne {
	_u.mutation.ClearTaskMetadata()
	return _u
}

// SetUpdatedTime sets the "updated_time" field.
func (_u *ChatTaskUpdateOne) SetUpdatedTime(v int64) *ChatTaskUpdateOne {
	_u.mutation.ResetUpdatedTime()
	_u.mutation.SetUpdatedTime(v)
	return _u
}

// SetNillableUpdatedTime sets the "updated_time" field if the given value is not nil.
func (_u *ChatTaskUpdateOne) SetNillableUpdatedTime(v *int64) *ChatTaskUpdateOne {
	if v != nil {
		_u.SetUpdatedTime(*v)
	}
	return _u
}

// AddUpdatedTime adds value to the "updated_time" field.
func (_u *ChatTaskUpdateOne) AddUpdatedTime(v int64) *ChatTaskUpdateOne {
	_u.mutation.AddUpdatedTime(v)
	return _u
}

// ClearUpdatedTime clears the value of the "updated_time" field.
func (_u *ChatTaskUpdateOne) ClearUpdatedTime() *ChatTaskUpdateOne {
	_u.mutation.ClearUpdatedTime()
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ChatTaskUpdateOne) SetSession(v *Session) *ChatTaskUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ChatTaskMutation object of the builder.
func (_u *ChatTaskUpdateOne) Mutation() *ChatTaskMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ChatTaskUpdateOne) ClearSession() *ChatTaskUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the ChatTaskUpdate builder.
func (_u *ChatTaskUpdateOne) Where(ps ...predicate.ChatTask) *ChatTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatTaskUpdateOne) Select(field string, fields ...string) *ChatTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatTask entity.
func (_u *ChatTaskUpdateOne) Save(ctx context.Context) (*ChatTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatTaskUpdateOne) SaveX(ctx context.Context) *ChatTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatTaskUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatTask.session"`)
	}
	return nil
}

func (_u *ChatTaskUpdateOne) sqlSave(ctx context.Context) (_node *ChatTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chattask.Table, chattask.Columns, sqlgraph.NewFieldSpec(chattask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chattask.FieldID)
		for _, f := range fields {
			if !chattask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chattask.FieldID {
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
		_spec.SetField(chattask.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(chattask.FieldUserMessage, field.TypeString, value)
	}
	if _u.mutation.UserMessageCleared() {
		_spec.ClearField(chattask.FieldUserMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MessageBubbles(); ok {
		_spec.SetField(chattask.FieldMessageBubbles, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskMetadata(); ok {
		_spec.SetField(chattask.FieldTaskMetadata, field.TypeString, value)
	}
	if _u.mutation.TaskMetadataCleared() {
		_spec.ClearField(chattask.FieldTaskMetadata, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedTime(); ok {
		_spec.SetField(chattask.FieldUpdatedTime, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedTime(); ok {
		_spec.AddField(chattask.FieldUpdatedTime, field.TypeInt64, value)
	}
	if _u.mutation.UpdatedTimeCleared() {
		_spec.ClearField(chattask.FieldUpdatedTime, field.TypeInt64)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chattask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
