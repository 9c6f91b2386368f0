// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/monthlyusage"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// MonthlyUsageUpdate is the builder for updating MonthlyUsage entities.
type MonthlyUsageUpdate struct {
	config
	hooks    []Hook
	mutation *MonthlyUsageMutation
}

// Where appends a list predicates to the MonthlyUsageUpdate builder.
func (_u *MonthlyUsageUpdate) Where(ps ...predicate.MonthlyUsage) *MonthlyUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MonthlyUsageUpdate) SetUserID(v string) *MonthlyUsageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MonthlyUsageUpdate) SetNillableUserID(v *string) *MonthlyUsageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *MonthlyUsageUpdate) SetMonth(v string) *MonthlyUsageUpdate {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *MonthlyUsageUpdate) SetNillableMonth(v *string) *MonthlyUsageUpdate {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetTotalUsage sets the "total_usage" field.
func (_u *MonthlyUsageUpdate) SetTotalUsage(v int64) *MonthlyUsageUpdate {
	_u.mutation.ResetTotalUsage()
	_u.mutation.SetTotalUsage(v)
	return _u
}

// SetNillableTotalUsage sets the "total_usage" field if the given value is not nil.
func (_u *MonthlyUsageUpdate) SetNillableTotalUsage(v *int64) *MonthlyUsageUpdate {
	if v != nil {
		_u.SetTotalUsage(*v)
	}
	return _u
}

// AddTotalUsage adds value to the "total_usage" field.
func (_u *MonthlyUsageUpdate) AddTotalUsage(v int64) *MonthlyUsageUpdate {
	_u.mutation.AddTotalUsage(v)
	return _u
}

// SetPromptUsage sets the "prompt_usage" field.
func (_u *MonthlyUsageUpdate) SetPromptUsage(v int64) *MonthlyUsageUpdate {
	_u.mutation.ResetPromptUsage()
	_u.mutation.SetPromptUsage(v)
	return _u
}

// SetNillablePromptUsage sets the "prompt_usage" field if the given value is not nil.
func (_u *MonthlyUsageUpdate) SetNillablePromptUsage(v *int64) *MonthlyUsageUpdate {
	if v != nil {
		_u.SetPromptUsage(*v)
	}
	return _u
}

// AddPromptUsage adds value to the "prompt_usage" field.
func (_u *MonthlyUsageUpdate) AddPromptUsage(v int64) *MonthlyUsageUpdate {
	_u.mutation.AddPromptUsage(v)
	return _u
}

// SetCompletionUsage sets the "completion_usage" field.
func (_u *MonthlyUsageUpdate) SetCompletionUsage(v int64) *MonthlyUsageUpdate {
	_u.mutation.ResetCompletionUsage()
	_u.mutation.SetCompletionUsage(v)
	return _u
}

// SetNillableCompletionUsage sets the "completion_usage" field if the given value is not nil.
func (_u *MonthlyUsageUpdate) SetNillableCompletionUsage(v *int64) *MonthlyUsageUpdate {
	if v != nil {
		_u.SetCompletionUsage(*v)
	}
	return _u
}

// AddCompletionUsage adds value to the "completion_usage" field.
func (_u *MonthlyUsageUpdate) AddCompletionUsage(v int64) *MonthlyUsageUpdate {
	_u.mutation.AddCompletionUsage(v)
	return _u
}

// SetCachedUsage sets the "cached_usage" field.
func (_u *MonthlyUsageUpdate) SetCachedUsage(v int64) *MonthlyUsageUpdate {
	_u.mutation.ResetCachedUsage()
	_u.mutation.SetCachedUsage(v)
	return _u
}

// SetNillableCachedUsage sets the "cached_usage" field if the given value is not nil.
func (_u *MonthlyUsageUpdate) SetNillableCachedUsage(v *int64) *MonthlyUsageUpdate {
	if v != nil {
		_u.SetCachedUsage(*v)
	}
	return _u
}

// AddCachedUsage adds value to the "cached_usage" field.
func (_u *MonthlyUsageUpdate) AddCachedUsage(v int64) *MonthlyUsageUpdate {
	_u.mutation.AddCachedUsage(v)
	return _u
}

// SetUsageByModel sets the "usage_by_model" field.
func (_u *MonthlyUsageUpdate) SetUsageByModel(v map[string]int64) *MonthlyUsageUpdate {
	_u.mutation.SetUsageByModel(v)
	return _u
}

// ClearUsageByModel clears the value of the "usage_by_model" field.
func (_u *MonthlyUsageUpdate) ClearUsageByModel() *MonthlyUsageUpdate {
	_u.mutation.ClearUsageByModel()
	return _u
}

// SetUsageBySource sets the "usage_by_source" field.
func (_u *MonthlyUsageUpdate) SetUsageBySource(v map[string]int64) *MonthlyUsageUpdate {
	_u.mutation.SetUsageBySource(v)
	return _u
}

// ClearUsageBySource clears the value of the "usage_by_source" field.
func (_u *MonthlyUsageUpdate) ClearUsageBySource() *MonthlyUsageUpdate {
	_u.mutation.ClearUsageBySource()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonthlyUsageUpdate) SetUpdatedAt(v int64) *MonthlyUsageUpdate {
	_u.mutation.ResetUpdatedAt()
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *MonthlyUsageUpdate) SetNillableUpdatedAt(v *int64) *MonthlyUsageUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddUpdatedAt adds value to the "updated_at" field.
func (_u *MonthlyUsageUpdate) AddUpdatedAt(v int64) *MonthlyUsageUpdate {
	_u.mutation.AddUpdatedAt(v)
	return _u
}

// Mutation returns the MonthlyUsageMutation object of the builder.
func (_u *MonthlyUsageUpdate) Mutation() *MonthlyUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonthlyUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonthlyUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonthlyUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonthlyUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MonthlyUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(monthlyusage.Table, monthlyusage.Columns, sqlgraph.NewFieldSpec(monthlyusage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(monthlyusage.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(monthlyusage.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalUsage(); ok {
		_spec.SetField(monthlyusage.FieldTotalUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalUsage(); ok {
		_spec.AddField(monthlyusage.FieldTotalUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PromptUsage(); ok {
		_spec.SetField(monthlyusage.FieldPromptUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptUsage(); ok {
		_spec.AddField(monthlyusage.FieldPromptUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionUsage(); ok {
		_spec.SetField(monthlyusage.FieldCompletionUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionUsage(); ok {
		_spec.AddField(monthlyusage.FieldCompletionUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CachedUsage(); ok {
		_spec.SetField(monthlyusage.FieldCachedUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCachedUsage(); ok {
		_spec.AddField(monthlyusage.FieldCachedUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UsageByModel(); ok {
		_spec.SetField(monthlyusage.FieldUsageByModel, field.TypeJSON, value)
	}
	if _u.mutation.UsageByModelCleared() {
		_spec.ClearField(monthlyusage.FieldUsageByModel, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsageBySource(); ok {
		_spec.SetField(monthlyusage.FieldUsageBySource, field.TypeJSON, value)
	}
	if _u.mutation.UsageBySourceCleared() {
		_spec.ClearField(monthlyusage.FieldUsageBySource, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(monthlyusage.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAt(); ok {
		_spec.AddField(monthlyusage.FieldUpdatedAt, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monthlyusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonthlyUsageUpdateOne is the builder for updating a single MonthlyUsage entity.
type MonthlyUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonthlyUsageMutation
}

// SetUserID sets the "user_id" field.
func (_u *MonthlyUsageUpdateOne) SetUserID(v string) *MonthlyUsageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MonthlyUsageUpdateOne) SetNillableUserID(v *string) *MonthlyUsageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *MonthlyUsageUpdateOne) SetMonth(v string) *MonthlyUsageUpdateOne {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *MonthlyUsageUpdateOne) SetNillableMonth(v *string) *MonthlyUsageUpdateOne {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetTotalUsage sets the "total_usage" field.
func (_u *MonthlyUsageUpdateOne) SetTotalUsage(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.ResetTotalUsage()
	_u.mutation.SetTotalUsage(v)
	return _u
}

// SetNillableTotalUsage sets the "total_usage" field if the given value is not nil.
func (_u *MonthlyUsageUpdateOne) SetNillableTotalUsage(v *int64) *MonthlyUsageUpdateOne {
	if v != nil {
		_u.SetTotalUsage(*v)
	}
	return _u
}

// AddTotalUsage adds value to the "total_usage" field.
func (_u *MonthlyUsageUpdateOne) AddTotalUsage(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.AddTotalUsage(v)
	return _u
}

// SetPromptUsage sets the "prompt_usage" field.
func (_u *MonthlyUsageUpdateOne) SetPromptUsage(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.ResetPromptUsage()
	_u.mutation.SetPromptUsage(v)
	return _u
}

// SetNillablePromptUsage sets the "prompt_usage" field if the given value is not nil.
func (_u *MonthlyUsageUpdateOne) SetNillablePromptUsage(v *int64) *MonthlyUsageUpdateOne {
	if v != nil {
		_u.SetPromptUsage(*v)
	}
	return _u
}

// AddPromptUsage adds value to the "prompt_usage" field.
func (_u *MonthlyUsageUpdateOne) AddPromptUsage(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.AddPromptUsage(v)
	return _u
}

// SetCompletionUsage sets the "completion_usage" field.
func (_u *MonthlyUsageUpdateOne) SetCompletionUsage(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.ResetCompletionUsage()
	_u.mutation.SetCompletionUsage(v)
	return _u
}

// SetNillableCompletionUsage sets the "completion_usage" field if the given value is not nil.
func (_u *MonthlyUsageUpdateOne) SetNillableCompletionUsage(v *int64) *MonthlyUsageUpdateOne {
	if v != nil {
		_u.SetCompletionUsage(*v)
	}
	return _u
}

// AddCompletionUsage adds value to the "completion_usage" field.
func (_u *MonthlyUsageUpdateOne) AddCompletionUsage(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.AddCompletionUsage(v)
	return _u
}

// SetCachedUsage sets the "cached_usage" field.
func (_u *MonthlyUsageUpdateOne) SetCachedUsage(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.ResetCachedUsage()
	_u.mutation.SetCachedUsage(v)
	return _u
}

// SetNillableCachedUsage sets the "cached_usage" field if the given value is not nil.
func (_u *MonthlyUsageUpdateOne) SetNillableCachedUsage(v *int64) *MonthlyUsageUpdateOne {
	if v != nil {
		_u.SetCachedUsage(*v)
	}
	return _u
}

// AddCachedUsage adds value to the "cached_usage" field.
func (_u *MonthlyUsageUpdateOne) AddCachedUsage(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.AddCachedUsage(v)
	return _u
}

// SetUsageByModel sets the "usage_by_model" field.
func (_u *MonthlyUsageUpdateOne) SetUsageByModel(v map[string]int64) *MonthlyUsageUpdateOne {
	_u.mutation.SetUsageByModel(v)
	return _u
}

// ClearUsageByModel clears the value of the "usage_by_model" field.
func (_u *MonthlyUsageUpdateOne) ClearUsageByModel() *MonthlyUsageUpdateOne {
	_u.mutation.ClearUsageByModel()
	return _u
}

// SetUsageBySource sets the "usage_by_source" field.
func (_u *MonthlyUsageUpdateOne) SetUsageBySource(v map[string]int64) *MonthlyUsageUpdateOne {
	_u.mutation.SetUsageBySource(v)
	return _u
}

// ClearUsageBySource clears the value of the "usage_by_source" field.
func (_u *MonthlyUsageUpdateOne) ClearUsageBySource() *MonthlyUsageUpdateOne {
	_u.mutation.ClearUsageBySource()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonthlyUsageUpdateOne) SetUpdatedAt(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.ResetUpdatedAt()
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *MonthlyUsageUpdateOne) SetNillableUpdatedAt(v *int64) *MonthlyUsageUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddUpdatedAt adds value to the "updated_at" field.
func (_u *MonthlyUsageUpdateOne) AddUpdatedAt(v int64) *MonthlyUsageUpdateOne {
	_u.mutation.AddUpdatedAt(v)
	return _u
}

// Mutation returns the MonthlyUsageMutation object of the builder.
func (_u *MonthlyUsageUpdateOne) Mutation() *MonthlyUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MonthlyUsageUpdate builder.
func (_u *MonthlyUsageUpdateOne) Where(ps ...predicate.MonthlyUsage) *MonthlyUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonthlyUsageUpdateOne) Select(field string, fields ...string) *MonthlyUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonthlyUsage entity.
func (_u *MonthlyUsageUpdateOne) Save(ctx context.Context) (*MonthlyUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonthlyUsageUpdateOne) SaveX(ctx context.Context) *MonthlyUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonthlyUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonthlyUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MonthlyUsageUpdateOne) sqlSave(ctx context.Context) (_node *MonthlyUsage, err error) {
	_spec := sqlgraph.NewUpdateSpec(monthlyusage.Table, monthlyusage.Columns, sqlgraph.NewFieldSpec(monthlyusage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MonthlyUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monthlyusage.FieldID)
		for _, f := range fields {
			if !monthlyusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != monthlyusage.FieldID {
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
		_spec.SetField(monthlyusage.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(monthlyusage.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalUsage(); ok {
		_spec.SetField(monthlyusage.FieldTotalUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalUsage(); ok {
		_spec.AddField(monthlyusage.FieldTotalUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PromptUsage(); ok {
		_spec.SetField(monthlyusage.FieldPromptUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptUsage(); ok {
		_spec.AddField(monthlyusage.FieldPromptUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionUsage(); ok {
		_spec.SetField(monthlyusage.FieldCompletionUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionUsage(); ok {
		_spec.AddField(monthlyusage.FieldCompletionUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CachedUsage(); ok {
		_spec.SetField(monthlyusage.FieldCachedUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCachedUsage(); ok {
		_spec.AddField(monthlyusage.FieldCachedUsage, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UsageByModel(); ok {
		_spec.SetField(monthlyusage.FieldUsageByModel, field.TypeJSON, value)
	}
	if _u.mutation.UsageByModelCleared() {
		_spec.ClearField(monthlyusage.FieldUsageByModel, field.TypeJSON)
	}
	if value, ok := _u.mutation.UsageBySource(); ok {
		_spec.SetField(monthlyusage.FieldUsageBySource, field.TypeJSON, value)
	}
	if _u.mutation.UsageBySourceCleared() {
		_spec.ClearField(monthlyusage.FieldUsageBySource, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(monthlyusage.FieldUpdatedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdatedAt(); ok {
		_spec.AddField(monthlyusage.FieldUpdatedAt, field.TypeInt64, value)
	}
	_node = &MonthlyUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monthlyusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
