// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/docconversioncache"
)

// DocConversionCacheCreate is the builder for creating a DocConversionCache entity.
type DocConversionCacheCreate struct {
	config
	mutation *DocConversionCacheMutation
	hooks    []Hook
}

// SetContentHash sets the "content_hash" field.
func (_c *DocConversionCacheCreate) SetContentHash(v string) *DocConversionCacheCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFileExtension sets the "file_extension" field.
func (_c *DocConversionCacheCreate) SetFileExtension(v string) *DocConversionCacheCreate {
	_c.mutation.SetFileExtension(v)
	return _c
}

// SetOriginalSizeBytes sets the "original_size_bytes" field.
func (_c *DocConversionCacheCreate) SetOriginalSizeBytes(v int64) *DocConversionCacheCreate {
	_c.mutation.SetOriginalSizeBytes(v)
	return _c
}

// SetPdfData sets the "pdf_data" field.
func (_c *DocConversionCacheCreate) SetPdfData(v []byte) *DocConversionCacheCreate {
	_c.mutation.SetPdfData(v)
	return _c
}

// SetPdfSizeBytes sets the "pdf_size_bytes" field.
func (_c *DocConversionCacheCreate) SetPdfSizeBytes(v int64) *DocConversionCacheCreate {
	_c.mutation.SetPdfSizeBytes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocConversionCacheCreate) SetCreatedAt(v int64) *DocConversionCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_c *DocConversionCacheCreate) SetLastAccessedAt(v int64) *DocConversionCacheCreate {
	_c.mutation.SetLastAccessedAt(v)
	return _c
}

// SetAccessCount sets the "access_count" field.
func (_c *DocConversionCacheCreate) SetAccessCount(v int64) *DocConversionCacheCreate {
	_c.mutation.SetAccessCount(v)
	return _c
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_c *DocConversionCacheCreate) SetNillableAccessCount(v *int64) *DocConversionCacheCreate {
	if v != nil {
		_c.SetAccessCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocConversionCacheCreate) SetID(v int) *DocConversionCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DocConversionCacheMutation object of the builder.
func (_c *DocConversionCacheCreate) Mutation() *DocConversionCacheMutation {
	return _c.mutation
}

// Save creates the DocConversionCache in the database.
func (_c *DocConversionCacheCreate) Save(ctx context.Context) (*DocConversionCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocConversionCacheCreate) SaveX(ctx context.Context) *DocConversionCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocConversionCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocConversionCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocConversionCacheCreate) defaults() {
	if _, ok := _c.mutation.AccessCount(); !ok {
		v := docconversioncache.DefaultAccessCount
		_c.mutation.SetAccessCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocConversionCacheCreate) check() error {
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "DocConversionCache.content_hash"`)}
	}
	if _, ok := _c.mutation.FileExtension(); !ok {
		return &ValidationError{Name: "file_extension", err: errors.New(`ent: missing required field "DocConversionCache.file_extension"`)}
	}
	if _, ok := _c.mutation.OriginalSizeBytes(); !ok {
		return &ValidationError{Name: "original_size_bytes", err: errors.New(`ent: missing required field "DocConversionCache.original_size_bytes"`)}
	}
	if _, ok := _c.mutation.PdfData(); !ok {
		return &ValidationError{Name: "pdf_data", err: errors.New(`ent: missing required field "DocConversionCache.pdf_data"`)}
	}
	if _, ok := _c.mutation.PdfSizeBytes(); !ok {
		return &ValidationError{Name: "pdf_size_bytes", err: errors.New(`ent: missing required field "DocConversionCache.pdf_size_bytes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocConversionCache.created_at"`)}
	}
	if _, ok := _c.mutation.LastAccessedAt(); !ok {
		return &ValidationError{Name: "last_accessed_at", err: errors.New(`ent: missing required field "DocConversionCache.last_accessed_at"`)}
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		return &ValidationError{Name: "access_count", err: errors.New(`ent: missing required field "DocConversionCache.access_count"`)}
	}
	return nil
}

func (_c *DocConversionCacheCreate) sqlSave(ctx context.Context) (*DocConversionCache, error) {
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

func (_c *DocConversionCacheCreate) createSpec() (*DocConversionCache, *sqlgraph.CreateSpec) {
	var (
		_node = &DocConversionCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(docconversioncache.Table, sqlgraph.NewFieldSpec(docconversioncache.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(docconversioncache.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.FileExtension(); ok {
		_spec.SetField(docconversioncache.FieldFileExtension, field.TypeString, value)
		_node.FileExtension = value
	}
	if value, ok := _c.mutation.OriginalSizeBytes(); ok {
		_spec.SetField(docconversioncache.FieldOriginalSizeBytes, field.TypeInt64, value)
		_node.OriginalSizeBytes = value
	}
	if value, ok := _c.mutation.PdfData(); ok {
		_spec.SetField(docconversioncache.FieldPdfData, field.TypeBytes, value)
		_node.PdfData = value
	}
	if value, ok := _c.mutation.PdfSizeBytes(); ok {
		_spec.SetField(docconversioncache.FieldPdfSizeBytes, field.TypeInt64, value)
		_node.PdfSizeBytes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(docconversioncache.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastAccessedAt(); ok {
		_spec.SetField(docconversioncache.FieldLastAccessedAt, field.TypeInt64, value)
		_node.LastAccessedAt = value
	}
	if value, ok := _c.mutation.AccessCount(); ok {
		_spec.SetField(docconversioncache.FieldAccessCount, field.TypeInt64, value)
		_node.AccessCount = value
	}
	return _node, _spec
}

// DocConversionCacheCreateBulk is the builder for creating many DocConversionCache entities in bulk.
type DocConversionCacheCreateBulk struct {
	config
	err      error
	builders []*DocConversionCacheCreate
}

// Save creates the DocConversionCache entities in the database.
func (_c *DocConversionCacheCreateBulk) Save(ctx context.Context) ([]*DocConversionCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocConversionCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocConversionCacheMutation)
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
func (_c *DocConversionCacheCreateBulk) SaveX(ctx context.Context) []*DocConversionCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocConversionCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocConversionCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
