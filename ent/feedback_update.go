// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/feedback"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// FeedbackUpdate is the builder for updating Feedback entities.
type FeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackMutation
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (_u *FeedbackUpdate) Where(ps ...predicate.Feedback) *FeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FeedbackUpdate) SetSessionID(v string) *FeedbackUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableSessionID(v *string) *FeedbackUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *FeedbackUpdate) SetTaskID(v string) *FeedbackUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableTaskID(v *string) *FeedbackUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FeedbackUpdate) SetUserID(v string) *FeedbackUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableUserID(v *string) *FeedbackUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackUpdate) SetRating(v feedback.Rating) *FeedbackUpdate {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableRating(v *feedback.Rating) *FeedbackUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackUpdate) SetComment(v string) *FeedbackUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableComment(v *string) *FeedbackUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *FeedbackUpdate) ClearComment() *FeedbackUpdate {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the FeedbackMutation object of the builder.
func (_u *FeedbackUpdate) Mutation() *FeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Feedback.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(feedback.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(feedback.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(feedback.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedback.FieldRating, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(feedback.FieldComment, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackUpdateOne is the builder for updating a single Feedback entity.
type FeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackMutation
}

// SetSessionID sets the "session_id" field.
func (_u *FeedbackUpdateOne) SetSessionID(v string) *FeedbackUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableSessionID(v *string) *FeedbackUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *FeedbackUpdateOne) SetTaskID(v string) *FeedbackUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableTaskID(v *string) *FeedbackUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FeedbackUpdateOne) SetUserID(v string) *FeedbackUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableUserID(v *string) *FeedbackUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackUpdateOne) SetRating(v feedback.Rating) *FeedbackUpdateOne {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableRating(v *feedback.Rating) *FeedbackUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackUpdateOne) SetComment(v string) *FeedbackUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableComment(v *string) *FeedbackUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *FeedbackUpdateOne) ClearComment() *FeedbackUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the FeedbackMutation object of the builder.
func (_u *FeedbackUpdateOne) Mutation() *FeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (_u *FeedbackUpdateOne) Where(ps ...predicate.Feedback) *FeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackUpdateOne) Select(field string, fields ...string) *FeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Feedback entity.
func (_u *FeedbackUpdateOne) Save(ctx context.Context) (*Feedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackUpdateOne) SaveX(ctx context.Context) *Feedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedback.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Feedback.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackUpdateOne) sqlSave(ctx context.Context) (_node *Feedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedback.FieldID)
		for _, f := range fields {
			if !feedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedback.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(feedback.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(feedback.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(feedback.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedback.FieldRating, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(feedback.FieldComment, field.TypeString)
	}
	_node = &Feedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
