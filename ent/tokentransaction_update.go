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
	"github.com/solacecommunity/agent-mesh-gateway/ent/tokentransaction"
)

// TokenTransactionUpdate is the builder for updating TokenTransaction entities.
type TokenTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TokenTransactionMutation
}

// Where appends a list predicates to the TokenTransactionUpdate builder.
func (_u *TokenTransactionUpdate) Where(ps ...predicate.TokenTransaction) *TokenTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TokenTransactionUpdate) SetUserID(v string) *TokenTransactionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableUserID(v *string) *TokenTransactionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TokenTransactionUpdate) SetTaskID(v string) *TokenTransactionUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableTaskID(v *string) *TokenTransactionUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *TokenTransactionUpdate) ClearTaskID() *TokenTransactionUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetTransactionType sets the "transaction_type" field.
func (_u *TokenTransactionUpdate) SetTransactionType(v tokentransaction.TransactionType) *TokenTransactionUpdate {
	_u.mutation.SetTransactionType(v)
	return _u
}

// SetNillableTransactionType sets the "transaction_type" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableTransactionType(v *tokentransaction.TransactionType) *TokenTransactionUpdate {
	if v != nil {
		_u.SetTransactionType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenTransactionUpdate) SetModel(v string) *TokenTransactionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableModel(v *string) *TokenTransactionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetRawTokens sets the "raw_tokens" field.
func (_u *TokenTransactionUpdate) SetRawTokens(v int64) *TokenTransactionUpdate {
	_u.mutation.ResetRawTokens()
	_u.mutation.SetRawTokens(v)
	return _u
}

// SetNillableRawTokens sets the "raw_tokens" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableRawTokens(v *int64) *TokenTransactionUpdate {
	if v != nil {
		_u.SetRawTokens(*v)
	}
	return _u
}

// AddRawTokens adds value to the "raw_tokens" field.
func (_u *TokenTransactionUpdate) AddRawTokens(v int64) *TokenTransactionUpdate {
	_u.mutation.AddRawTokens(v)
	return _u
}

// SetTokenCost sets the "token_cost" field.
func (_u *TokenTransactionUpdate) SetTokenCost(v int64) *TokenTransactionUpdate {
	_u.mutation.ResetTokenCost()
	_u.mutation.SetTokenCost(v)
	return _u
}

// SetNillableTokenCost sets the "token_cost" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableTokenCost(v *int64) *TokenTransactionUpdate {
	if v != nil {
		_u.SetTokenCost(*v)
	}
	return _u
}

// AddTokenCost adds value to the "token_cost" field.
func (_u *TokenTransactionUpdate) AddTokenCost(v int64) *TokenTransactionUpdate {
	_u.mutation.AddTokenCost(v)
	return _u
}

// SetRate sets the "rate" field.
func (_u *TokenTransactionUpdate) SetRate(v float64) *TokenTransactionUpdate {
	_u.mutation.ResetRate()
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableRate(v *float64) *TokenTransactionUpdate {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// AddRate adds value to the "rate" field.
func (_u *TokenTransactionUpdate) AddRate(v float64) *TokenTransactionUpdate {
	_u.mutation.AddRate(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TokenTransactionUpdate) SetSource(v string) *TokenTransactionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableSource(v *string) *TokenTransactionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *TokenTransactionUpdate) SetToolName(v string) *TokenTransactionUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableToolName(v *string) *TokenTransactionUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *TokenTransactionUpdate) ClearToolName() *TokenTransactionUpdate {
	_u.mutation.ClearToolName()
	return _u
}

// SetContext sets the "context" field.
func (_u *TokenTransactionUpdate) SetContext(v string) *TokenTransactionUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableContext(v *string) *TokenTransactionUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *TokenTransactionUpdate) ClearContext() *TokenTransactionUpdate {
	_u.mutation.ClearContext()
	return _u
}

// Mutation returns the TokenTransactionMutation object of the builder.
func (_u *TokenTransactionUpdate) Mutation() *TokenTransactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenTransactionUpdate) check() error {
	if v, ok := _u.mutation.TransactionType(); ok {
		if err := tokentransaction.TransactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "transaction_type", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.transaction_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokentransaction.Table, tokentransaction.Columns, sqlgraph.NewFieldSpec(tokentransaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tokentransaction.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(tokentransaction.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(tokentransaction.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionType(); ok {
		_spec.SetField(tokentransaction.FieldTransactionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokentransaction.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawTokens(); ok {
		_spec.SetField(tokentransaction.FieldRawTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRawTokens(); ok {
		_spec.AddField(tokentransaction.FieldRawTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokenCost(); ok {
		_spec.SetField(tokentransaction.FieldTokenCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokenCost(); ok {
		_spec.AddField(tokentransaction.FieldTokenCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(tokentransaction.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRate(); ok {
		_spec.AddField(tokentransaction.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(tokentransaction.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(tokentransaction.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(tokentransaction.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(tokentransaction.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(tokentransaction.FieldContext, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokentransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenTransactionUpdateOne is the builder for updating a single TokenTransaction entity.
type TokenTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenTransactionMutation
}

// SetUserID sets the "user_id" field.
func (_u *TokenTransactionUpdateOne) SetUserID(v string) *TokenTransactionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableUserID(v *string) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TokenTransactionUpdateOne) SetTaskID(v string) *TokenTransactionUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableTaskID(v *string) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *TokenTransactionUpdateOne) ClearTaskID() *TokenTransactionUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetTransactionType sets the "transaction_type" field.
func (_u *TokenTransactionUpdateOne) SetTransactionType(v tokentransaction.TransactionType) *TokenTransactionUpdateOne {
	_u.mutation.SetTransactionType(v)
	return _u
}

// SetNillableTransactionType sets the "transaction_type" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableTransactionType(v *tokentransaction.TransactionType) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetTransactionType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenTransactionUpdateOne) SetModel(v string) *TokenTransactionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableModel(v *string) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetRawTokens sets the "raw_tokens" field.
func (_u *TokenTransactionUpdateOne) SetRawTokens(v int64) *TokenTransactionUpdateOne {
	_u.mutation.ResetRawTokens()
	_u.mutation.SetRawTokens(v)
	return _u
}

// SetNillableRawTokens sets the "raw_tokens" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableRawTokens(v *int64) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetRawTokens(*v)
	}
	return _u
}

// AddRawTokens adds value to the "raw_tokens" field.
func (_u *TokenTransactionUpdateOne) AddRawTokens(v int64) *TokenTransactionUpdateOne {
	_u.mutation.AddRawTokens(v)
	return _u
}

// SetTokenCost sets the "token_cost" field.
func (_u *TokenTransactionUpdateOne) SetTokenCost(v int64) *TokenTransactionUpdateOne {
	_u.mutation.ResetTokenCost()
	_u.mutation.SetTokenCost(v)
	return _u
}

// SetNillableTokenCost sets the "token_cost" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableTokenCost(v *int64) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetTokenCost(*v)
	}
	return _u
}

// AddTokenCost adds value to the "token_cost" field.
func (_u *TokenTransactionUpdateOne) AddTokenCost(v int64) *TokenTransactionUpdateOne {
	_u.mutation.AddTokenCost(v)
	return _u
}

// SetRate sets the "rate" field.
func (_u *TokenTransactionUpdateOne) SetRate(v float64) *TokenTransactionUpdateOne {
	_u.mutation.ResetRate()
	_u.mutation.SetRate(v)
	return _u
}

// SetNillableRate sets the "rate" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableRate(v *float64) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetRate(*v)
	}
	return _u
}

// AddRate adds value to the "rate" field.
func (_u *TokenTransactionUpdateOne) AddRate(v float64) *TokenTransactionUpdateOne {
	_u.mutation.AddRate(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TokenTransactionUpdateOne) SetSource(v string) *TokenTransactionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableSource(v *string) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *TokenTransactionUpdateOne) SetToolName(v string) *TokenTransactionUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableToolName(v *string) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *TokenTransactionUpdateOne) ClearToolName() *TokenTransactionUpdateOne {
	_u.mutation.ClearToolName()
	return _u
}

// SetContext sets the "context" field.
func (_u *TokenTransactionUpdateOne) SetContext(v string) *TokenTransactionUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableContext(v *string) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *TokenTransactionUpdateOne) ClearContext() *TokenTransactionUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// Mutation returns the TokenTransactionMutation object of the builder.
func (_u *TokenTransactionUpdateOne) Mutation() *TokenTransactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenTransactionUpdate builder.
func (_u *TokenTransactionUpdateOne) Where(ps ...predicate.TokenTransaction) *TokenTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenTransactionUpdateOne) Select(field string, fields ...string) *TokenTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenTransaction entity.
func (_u *TokenTransactionUpdateOne) Save(ctx context.Context) (*TokenTransaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenTransactionUpdateOne) SaveX(ctx context.Context) *TokenTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.TransactionType(); ok {
		if err := tokentransaction.TransactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "transaction_type", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.transaction_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenTransactionUpdateOne) sqlSave(ctx context.Context) (_node *TokenTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokentransaction.Table, tokentransaction.Columns, sqlgraph.NewFieldSpec(tokentransaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokentransaction.FieldID)
		for _, f := range fields {
			if !tokentransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokentransaction.FieldID {
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
		_spec.SetField(tokentransaction.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(tokentransaction.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(tokentransaction.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionType(); ok {
		_spec.SetField(tokentransaction.FieldTransactionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokentransaction.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawTokens(); ok {
		_spec.SetField(tokentransaction.FieldRawTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRawTokens(); ok {
		_spec.AddField(tokentransaction.FieldRawTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokenCost(); ok {
		_spec.SetField(tokentransaction.FieldTokenCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokenCost(); ok {
		_spec.AddField(tokentransaction.FieldTokenCost, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Rate(); ok {
		_spec.SetField(tokentransaction.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRate(); ok {
		_spec.AddField(tokentransaction.FieldRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(tokentransaction.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(tokentransaction.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(tokentransaction.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(tokentransaction.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(tokentransaction.FieldContext, field.TypeString)
	}
	_node = &TokenTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokentransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
