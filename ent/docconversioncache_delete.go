// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/docconversioncache"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// DocConversionCacheDelete is the builder for deleting a DocConversionCache entity.
type DocConversionCacheDelete struct {
	config
	hooks    []Hook
	mutation *DocConversionCacheMutation
}

// Where appends a list predicates to the DocConversionCacheDelete builder.
func (_d *DocConversionCacheDelete) Where(ps ...predicate.DocConversionCache) *DocConversionCacheDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DocConversionCacheDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocConversionCacheDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DocConversionCacheDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(docconversioncache.Table, sqlgraph.NewFieldSpec(docconversioncache.FieldID, field.TypeInt))
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

// DocConversionCacheDeleteOne is the builder for deleting a single DocConversionCache entity.
type DocConversionCacheDeleteOne struct {
	_d *DocConversionCacheDelete
}

// Where appends a list predicates to the DocConversionCacheDelete builder.
func (_d *DocConversionCacheDeleteOne) Where(ps ...predicate.DocConversionCache) *DocConversionCacheDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DocConversionCacheDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{docconversioncache.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocConversionCacheDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
