// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/monthlyusage"
)

// MonthlyUsageCreate is the builder for creating a MonthlyUsage entity.
type MonthlyUsageCreate struct {
	config
	mutation *MonthlyUsageMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MonthlyUsageCreate) SetUserID(v string) *MonthlyUsageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMonth sets the "month" field.
func (_c *MonthlyUsageCreate) SetMonth(v string) *MonthlyUsageCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetTotalUsage sets the "total_usage" field.
func (_c *MonthlyUsageCreate) SetTotalUsage(v int64) *MonthlyUsageCreate {
	_c.mutation.SetTotalUsage(v)
	return _c
}

// SetNillableTotalUsage sets the "total_usage" field if the given value is not nil.
func (_c *MonthlyUsageCreate) SetNillableTotalUsage(v *int64) *MonthlyUsageCreate {
	if v != nil {
		_c.SetTotalUsage(*v)
	}
	return _c
}

// SetPromptUsage sets the "prompt_usage" field.
func (_c *MonthlyUsageCreate) SetPromptUsage(v int64) *MonthlyUsageCreate {
	_c.mutation.SetPromptUsage(v)
	return _c
}

// SetNillablePromptUsage sets the "prompt_usage" field if the given value is not nil.
func (_c *MonthlyUsageCreate) SetNillablePromptUsage(v *int64) *MonthlyUsageCreate {
	if v != nil {
		_c.SetPromptUsage(*v)
	}
	return _c
}

// SetCompletionUsage sets the "completion_usage" field.
func (_c *MonthlyUsageCreate) SetCompletionUsage(v int64) *MonthlyUsageCreate {
	_c.mutation.SetCompletionUsage(v)
	return _c
}

// SetNillableCompletionUsage sets the "completion_usage" field if the given value is not nil.
func (_c *MonthlyUsageCreate) SetNillableCompletionUsage(v *int64) *MonthlyUsageCreate {
	if v != nil {
		_c.SetCompletionUsage(*v)
	}
	return _c
}

// SetCachedUsage sets the "cached_usage" field.
func (_c *MonthlyUsageCreate) SetCachedUsage(v int64) *MonthlyUsageCreate {
	_c.mutation.SetCachedUsage(v)
	return _c
}

// SetNillableCachedUsage sets the "cached_usage" field if the given value is not nil.
func (_c *MonthlyUsageCreate) SetNillableCachedUsage(v *int64) *MonthlyUsageCreate {
	if v != nil {
		_c.SetCachedUsage(*v)
	}
	return _c
}

// SetUsageByModel sets the "usage_by_model" field.
func (_c *MonthlyUsageCreate) SetUsageByModel(v map[string]int64) *MonthlyUsageCreate {
	_c.mutation.SetUsageByModel(v)
	return _c
}

// SetUsageBySource sets the "usage_by_source" field.
func (_c *MonthlyUsageCreate) SetUsageBySource(v map[string]int64) *MonthlyUsageCreate {
	_c.mutation.SetUsageBySource(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MonthlyUsageCreate) SetCreatedAt(v int64) *MonthlyUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MonthlyUsageCreate) SetUpdatedAt(v int64) *MonthlyUsageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MonthlyUsageCreate) SetID(v int) *MonthlyUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MonthlyUsageMutation object of the builder.
func (_c *MonthlyUsageCreate) Mutation() *MonthlyUsageMutation {
	return _c.mutation
}

// Save creates the MonthlyUsage in the database.
func (_c *MonthlyUsageCreate) Save(ctx context.Context) (*MonthlyUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonthlyUsageCreate) SaveX(ctx context.Context) *MonthlyUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonthlyUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonthlyUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonthlyUsageCreate) defaults() {
	if _, ok := _c.mutation.TotalUsage(); !ok {
		v := monthlyusage.DefaultTotalUsage
		_c.mutation.SetTotalUsage(v)
	}
	if _, ok := _c.mutation.PromptUsage(); !ok {
		v := monthlyusage.DefaultPromptUsage
		_c.mutation.SetPromptUsage(v)
	}
	if _, ok := _c.mutation.CompletionUsage(); !ok {
		v := monthlyusage.DefaultCompletionUsage
		_c.mutation.SetCompletionUsage(v)
	}
	if _, ok := _c.mutation.CachedUsage(); !ok {
		v := monthlyusage.DefaultCachedUsage
		_c.mutation.SetCachedUsage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonthlyUsageCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MonthlyUsage.user_id"`)}
	}
	if _, ok := _c.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`ent: missing required field "MonthlyUsage.month"`)}
	}
	if _, ok := _c.mutation.TotalUsage(); !ok {
		return &ValidationError{Name: "total_usage", err: errors.New(`ent: missing required field "MonthlyUsage.total_usage"`)}
	}
	if _, ok := _c.mutation.PromptUsage(); !ok {
		return &ValidationError{Name: "prompt_usage", err: errors.New(`ent: missing required field "MonthlyUsage.prompt_usage"`)}
	}
	if _, ok := _c.mutation.CompletionUsage(); !ok {
		return &ValidationError{Name: "completion_usage", err: errors.New(`ent: missing required field "MonthlyUsage.completion_usage"`)}
	}
	if _, ok := _c.mutation.CachedUsage(); !ok {
		return &ValidationError{Name: "cached_usage", err: errors.New(`ent: missing required field "MonthlyUsage.cached_usage"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MonthlyUsage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MonthlyUsage.updated_at"`)}
	}
	return nil
}

func (_c *MonthlyUsageCreate) sqlSave(ctx context.Context) (*MonthlyUsage, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MonthlyUsageCreate) createSpec() (*MonthlyUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &MonthlyUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monthlyusage.Table, sqlgraph.NewFieldSpec(monthlyusage.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(monthlyusage.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(monthlyusage.FieldMonth, field.TypeString, value)
		_node.Month = value
	}
	if value, ok := _c.mutation.TotalUsage(); ok {
		_spec.SetField(monthlyusage.FieldTotalUsage, field.TypeInt64, value)
		_node.TotalUsage = value
	}
	if value, ok := _c.mutation.PromptUsage(); ok {
		_spec.SetField(monthlyusage.FieldPromptUsage, field.TypeInt64, value)
		_node.PromptUsage = value
	}
	if value, ok := _c.mutation.CompletionUsage(); ok {
		_spec.SetField(monthlyusage.FieldCompletionUsage, field.TypeInt64, value)
		_node.CompletionUsage = value
	}
	if value, ok := _c.mutation.CachedUsage(); ok {
		_spec.SetField(monthlyusage.FieldCachedUsage, field.TypeInt64, value)
		_node.CachedUsage = value
	}
	if value, ok := _c.mutation.UsageByModel(); ok {
		_spec.SetField(monthlyusage.FieldUsageByModel, field.TypeJSON, value)
		_node.UsageByModel = value
	}
	if value, ok := _c.mutation.UsageBySource(); ok {
		_spec.SetField(monthlyusage.FieldUsageBySource, field.TypeJSON, value)
		_node.UsageBySource = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(monthlyusage.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(monthlyusage.FieldUpdatedAt, field.TypeInt64, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MonthlyUsageCreateBulk is the builder for creating many MonthlyUsage entities in bulk.
type MonthlyUsageCreateBulk struct {
	config
	err      error
	builders []*MonthlyUsageCreate
}

// Save creates the MonthlyUsage entities in the database.
func (_c *MonthlyUsageCreateBulk) Save(ctx context.Context) ([]*MonthlyUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonthlyUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonthlyUsageMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *MonthlyUsageCreateBulk) SaveX(ctx context.Context) []*MonthlyUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonthlyUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonthlyUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
