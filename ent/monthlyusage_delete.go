// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/monthlyusage"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// MonthlyUsageDelete is the builder for deleting a MonthlyUsage entity.
type MonthlyUsageDelete struct {
	config
	hooks    []Hook
	mutation *MonthlyUsageMutation
}

// Where appends a list predicates to the MonthlyUsageDelete builder.
func (_d *MonthlyUsageDelete) Where(ps ...predicate.MonthlyUsage) *MonthlyUsageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MonthlyUsageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonthlyUsageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MonthlyUsageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(monthlyusage.Table, sqlgraph.NewFieldSpec(monthlyusage.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MonthlyUsageDeleteOne is the builder for deleting a single MonthlyUsage entity.
type MonthlyUsageDeleteOne struct {
	_d *MonthlyUsageDelete
}

// Where appends a list predicates to the MonthlyUsageDelete builder.
func (_d *MonthlyUsageDeleteOne) Where(ps ...predicate.MonthlyUsage) *MonthlyUsageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MonthlyUsageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{monthlyusage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonthlyUsageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
