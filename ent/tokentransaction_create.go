// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/tokentransaction"
)

// TokenTransactionCreate is the builder for creating a TokenTransaction entity.
type TokenTransactionCreate struct {
	config
	mutation *TokenTransactionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TokenTransactionCreate) SetUserID(v string) *TokenTransactionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TokenTransactionCreate) SetTaskID(v string) *TokenTransactionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *TokenTransactionCreate) SetNillableTaskID(v *string) *TokenTransactionCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetTransactionType sets the "transaction_type" field.
func (_c *TokenTransactionCreate) SetTransactionType(v tokentransaction.TransactionType) *TokenTransactionCreate {
	_c.mutation.SetTransactionType(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *TokenTransactionCreate) SetModel(v string) *TokenTransactionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetRawTokens sets the "raw_tokens" field.
func (_c *TokenTransactionCreate) SetRawTokens(v int64) *TokenTransactionCreate {
	_c.mutation.SetRawTokens(v)
	return _c
}

// SetTokenCost sets the "token_cost" field.
func (_c *TokenTransactionCreate) SetTokenCost(v int64) *TokenTransactionCreate {
	_c.mutation.SetTokenCost(v)
	return _c
}

// SetRate sets the "rate" field.
func (_c *TokenTransactionCreate) SetRate(v float64) *TokenTransactionCreate {
	_c.mutation.SetRate(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *TokenTransactionCreate) SetSource(v string) *TokenTransactionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *TokenTransactionCreate) SetToolName(v string) *TokenTransactionCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *TokenTransactionCreate) SetNillableToolName(v *string) *TokenTransactionCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *TokenTransactionCreate) SetContext(v string) *TokenTransactionCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *TokenTransactionCreate) SetNillableContext(v *string) *TokenTransactionCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenTransactionCreate) SetCreatedAt(v int64) *TokenTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TokenTransactionCreate) SetID(v int) *TokenTransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TokenTransactionMutation object of the builder.
func (_c *TokenTransactionCreate) Mutation() *TokenTransactionMutation {
	return _c.mutation
}

// Save creates the TokenTransaction in the database.
func (_c *TokenTransactionCreate) Save(ctx context.Context) (*TokenTransaction, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenTransactionCreate) SaveX(ctx context.Context) *TokenTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenTransactionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TokenTransaction.user_id"`)}
	}
	if _, ok := _c.mutation.TransactionType(); !ok {
		return &ValidationError{Name: "transaction_type", err: errors.New(`ent: missing required field "TokenTransaction.transaction_type"`)}
	}
	if v, ok := _c.mutation.TransactionType(); ok {
		if err := tokentransaction.TransactionTypeValidator(v); err != nil {
			return &ValidationError{Name: "transaction_type", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.transaction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "TokenTransaction.model"`)}
	}
	if _, ok := _c.mutation.RawTokens(); !ok {
		return &ValidationError{Name: "raw_tokens", err: errors.New(`ent: missing required field "TokenTransaction.raw_tokens"`)}
	}
	if _, ok := _c.mutation.TokenCost(); !ok {
		return &ValidationError{Name: "token_cost", err: errors.New(`ent: missing required field "TokenTransaction.token_cost"`)}
	}
	if _, ok := _c.mutation.Rate(); !ok {
		return &ValidationError{Name: "rate", err: errors.New(`ent: missing required field "TokenTransaction.rate"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "TokenTransaction.source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenTransaction.created_at"`)}
	}
	return nil
}

func (_c *TokenTransactionCreate) sqlSave(ctx context.Context) (*TokenTransaction, error) {
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

func (_c *TokenTransactionCreate) createSpec() (*TokenTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokentransaction.Table, sqlgraph.NewFieldSpec(tokentransaction.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(tokentransaction.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(tokentransaction.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.TransactionType(); ok {
		_spec.SetField(tokentransaction.FieldTransactionType, field.TypeEnum, value)
		_node.TransactionType = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(tokentransaction.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.RawTokens(); ok {
		_spec.SetField(tokentransaction.FieldRawTokens, field.TypeInt64, value)
		_node.RawTokens = value
	}
	if value, ok := _c.mutation.TokenCost(); ok {
		_spec.SetField(tokentransaction.FieldTokenCost, field.TypeInt64, value)
		_node.TokenCost = value
	}
	if value, ok := _c.mutation.Rate(); ok {
		_spec.SetField(tokentransaction.FieldRate, field.TypeFloat64, value)
		_node.Rate = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(tokentransaction.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(tokentransaction.FieldToolName, field.TypeString, value)
		_node.ToolName = &value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(tokentransaction.FieldContext, field.TypeString, value)
		_node.Context = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokentransaction.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TokenTransactionCreateBulk is the builder for creating many TokenTransaction entities in bulk.
type TokenTransactionCreateBulk struct {
	config
	err      error
	builders []*TokenTransactionCreate
}

// Save creates the TokenTransaction entities in the database.
func (_c *TokenTransactionCreateBulk) Save(ctx context.Context) ([]*TokenTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenTransactionMutation)
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
func (_c *TokenTransactionCreateBulk) SaveX(ctx context.Context) []*TokenTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
