// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solacecommunity/agent-mesh-gateway/ent/docconversioncache"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// DocConversionCacheUpdate is the builder for updating DocConversionCache entities.
type DocConversionCacheUpdate struct {
	config
	hooks    []Hook
	mutation *DocConversionCacheMutation
}

// Where appends a list predicates to the DocConversionCacheUpdate builder.
func (_u *DocConversionCacheUpdate) Where(ps ...predicate.DocConversionCache) *DocConversionCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocConversionCacheUpdate) SetContentHash(v string) *DocConversionCacheUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocConversionCacheUpdate) SetNillableContentHash(v *string) *DocConversionCacheUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetFileExtension sets the "file_extension" field.
func (_u *DocConversionCacheUpdate) SetFileExtension(v string) *DocConversionCacheUpdate {
	_u.mutation.SetFileExtension(v)
	return _u
}

// SetNillableFileExtension sets the "file_extension" field if the given value is not nil.
func (_u *DocConversionCacheUpdate) SetNillableFileExtension(v *string) *DocConversionCacheUpdate {
	if v != nil {
		_u.SetFileExtension(*v)
	}
	return _u
}

// SetOriginalSizeBytes sets the "original_size_bytes" field.
func (_u *DocConversionCacheUpdate) SetOriginalSizeBytes(v int64) *DocConversionCacheUpdate {
	_u.mutation.ResetOriginalSizeBytes()
	_u.mutation.SetOriginalSizeBytes(v)
	return _u
}

// SetNillableOriginalSizeBytes sets the "original_size_bytes" field if the given value is not nil.
func (_u *DocConversionCacheUpdate) SetNillableOriginalSizeBytes(v *int64) *DocConversionCacheUpdate {
	if v != nil {
		_u.SetOriginalSizeBytes(*v)
	}
	return _u
}

// AddOriginalSizeBytes adds value to the "original_size_bytes" field.
func (_u *DocConversionCacheUpdate) AddOriginalSizeBytes(v int64) *DocConversionCacheUpdate {
	_u.mutation.AddOriginalSizeBytes(v)
	return _u
}

// SetPdfData sets the "pdf_data" field.
func (_u *DocConversionCacheUpdate) SetPdfData(v []byte) *DocConversionCacheUpdate {
	_u.mutation.SetPdfData(v)
	return _u
}

// SetPdfSizeBytes sets the "pdf_size_bytes" field.
func (_u *DocConversionCacheUpdate) SetPdfSizeBytes(v int64) *DocConversionCacheUpdate {
	_u.mutation.ResetPdfSizeBytes()
	_u.mutation.SetPdfSizeBytes(v)
	return _u
}

// SetNillablePdfSizeBytes sets the "pdf_size_bytes" field if the given value is not nil.
func (_u *DocConversionCacheUpdate) SetNillablePdfSizeBytes(v *int64) *DocConversionCacheUpdate {
	if v != nil {
		_u.SetPdfSizeBytes(*v)
	}
	return _u
}

// AddPdfSizeBytes adds value to the "pdf_size_bytes" field.
func (_u *DocConversionCacheUpdate) AddPdfSizeBytes(v int64) *DocConversionCacheUpdate {
	_u.mutation.AddPdfSizeBytes(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *DocConversionCacheUpdate) SetLastAccessedAt(v int64) *DocConversionCacheUpdate {
	_u.mutation.ResetLastAccessedAt()
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *DocConversionCacheUpdate) SetNillableLastAccessedAt(v *int64) *DocConversionCacheUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// AddLastAccessedAt adds value to the "last_accessed_at" field.
func (_u *DocConversionCacheUpdate) AddLastAccessedAt(v int64) *DocConversionCacheUpdate {
	_u.mutation.AddLastAccessedAt(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *DocConversionCacheUpdate) SetAccessCount(v int64) *DocConversionCacheUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *DocConversionCacheUpdate) SetNillableAccessCount(v *int64) *DocConversionCacheUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *DocConversionCacheUpdate) AddAccessCount(v int64) *DocConversionCacheUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// Mutation returns the DocConversionCacheMutation object of the builder.
func (_u *DocConversionCacheUpdate) Mutation() *DocConversionCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocConversionCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocConversionCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocConversionCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocConversionCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocConversionCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(docconversioncache.Table, docconversioncache.Columns, sqlgraph.NewFieldSpec(docconversioncache.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(docconversioncache.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExtension(); ok {
		_spec.SetField(docconversioncache.FieldFileExtension, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalSizeBytes(); ok {
		_spec.SetField(docconversioncache.FieldOriginalSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOriginalSizeBytes(); ok {
		_spec.AddField(docconversioncache.FieldOriginalSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PdfData(); ok {
		_spec.SetField(docconversioncache.FieldPdfData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.PdfSizeBytes(); ok {
		_spec.SetField(docconversioncache.FieldPdfSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPdfSizeBytes(); ok {
		_spec.AddField(docconversioncache.FieldPdfSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(docconversioncache.FieldLastAccessedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastAccessedAt(); ok {
		_spec.AddField(docconversioncache.FieldLastAccessedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(docconversioncache.FieldAccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(docconversioncache.FieldAccessCount, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{docconversioncache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocConversionCacheUpdateOne is the builder for updating a single DocConversionCache entity.
type DocConversionCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocConversionCacheMutation
}

// SetContentHash sets the "content_hash" field.
func (_u *DocConversionCacheUpdateOne) SetContentHash(v string) *DocConversionCacheUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocConversionCacheUpdateOne) SetNillableContentHash(v *string) *DocConversionCacheUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetFileExtension sets the "file_extension" field.
func (_u *DocConversionCacheUpdateOne) SetFileExtension(v string) *DocConversionCacheUpdateOne {
	_u.mutation.SetFileExtension(v)
	return _u
}

// SetNillableFileExtension sets the "file_extension" field if the given value is not nil.
func (_u *DocConversionCacheUpdateOne) SetNillableFileExtension(v *string) *DocConversionCacheUpdateOne {
	if v != nil {
		_u.SetFileExtension(*v)
	}
	return _u
}

// SetOriginalSizeBytes sets the "original_size_bytes" field.
func (_u *DocConversionCacheUpdateOne) SetOriginalSizeBytes(v int64) *DocConversionCacheUpdateOne {
	_u.mutation.ResetOriginalSizeBytes()
	_u.mutation.SetOriginalSizeBytes(v)
	return _u
}

// SetNillableOriginalSizeBytes sets the "original_size_bytes" field if the given value is not nil.
func (_u *DocConversionCacheUpdateOne) SetNillableOriginalSizeBytes(v *int64) *DocConversionCacheUpdateOne {
	if v != nil {
		_u.SetOriginalSizeBytes(*v)
	}
	return _u
}

// AddOriginalSizeBytes adds value to the "original_size_bytes" field.
func (_u *DocConversionCacheUpdateOne) AddOriginalSizeBytes(v int64) *DocConversionCacheUpdateOne {
	_u.mutation.AddOriginalSizeBytes(v)
	return _u
}

// SetPdfData sets the "pdf_data" field.
func (_u *DocConversionCacheUpdateOne) SetPdfData(v []byte) *DocConversionCacheUpdateOne {
	_u.mutation.SetPdfData(v)
	return _u
}

// SetPdfSizeBytes sets the "pdf_size_bytes" field.
func (_u *DocConversionCacheUpdateOne) SetPdfSizeBytes(v int64) *DocConversionCacheUpdateOne {
	_u.mutation.ResetPdfSizeBytes()
	_u.mutation.SetPdfSizeBytes(v)
	return _u
}

// SetNillablePdfSizeBytes sets the "pdf_size_bytes" field if the given value is not nil.
func (_u *DocConversionCacheUpdateOne) SetNillablePdfSizeBytes(v *int64) *DocConversionCacheUpdateOne {
	if v != nil {
		_u.SetPdfSizeBytes(*v)
	}
	return _u
}

// AddPdfSizeBytes adds value to the "pdf_size_bytes" field.
func (_u *DocConversionCacheUpdateOne) AddPdfSizeBytes(v int64) *DocConversionCacheUpdateOne {
	_u.mutation.AddPdfSizeBytes(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *DocConversionCacheUpdateOne) SetLastAccessedAt(v int64) *DocConversionCacheUpdateOne {
	_u.mutation.ResetLastAccessedAt()
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *DocConversionCacheUpdateOne) SetNillableLastAccessedAt(v *int64) *DocConversionCacheUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// AddLastAccessedAt adds value to the "last_accessed_at" field.
func (_u *DocConversionCacheUpdateOne) AddLastAccessedAt(v int64) *DocConversionCacheUpdateOne {
	_u.mutation.AddLastAccessedAt(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *DocConversionCacheUpdateOne) SetAccessCount(v int64) *DocConversionCacheUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *DocConversionCacheUpdateOne) SetNillableAccessCount(v *int64) *DocConversionCacheUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *DocConversionCacheUpdateOne) AddAccessCount(v int64) *DocConversionCacheUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// Mutation returns the DocConversionCacheMutation object of the builder.
func (_u *DocConversionCacheUpdateOne) Mutation() *DocConversionCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocConversionCacheUpdate builder.
func (_u *DocConversionCacheUpdateOne) Where(ps ...predicate.DocConversionCache) *DocConversionCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocConversionCacheUpdateOne) Select(field string, fields ...string) *DocConversionCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocConversionCache entity.
func (_u *DocConversionCacheUpdateOne) Save(ctx context.Context) (*DocConversionCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocConversionCacheUpdateOne) SaveX(ctx context.Context) *DocConversionCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocConversionCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocConversionCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocConversionCacheUpdateOne) sqlSave(ctx context.Context) (_node *DocConversionCache, err error) {
	_spec := sqlgraph.NewUpdateSpec(docconversioncache.Table, docconversioncache.Columns, sqlgraph.NewFieldSpec(docconversioncache.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocConversionCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, docconversioncache.FieldID)
		for _, f := range fields {
			if !docconversioncache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != docconversioncache.FieldID {
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
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(docconversioncache.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExtension(); ok {
		_spec.SetField(docconversioncache.FieldFileExtension, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalSizeBytes(); ok {
		_spec.SetField(docconversioncache.FieldOriginalSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOriginalSizeBytes(); ok {
		_spec.AddField(docconversioncache.FieldOriginalSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PdfData(); ok {
		_spec.SetField(docconversioncache.FieldPdfData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.PdfSizeBytes(); ok {
		_spec.SetField(docconversioncache.FieldPdfSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPdfSizeBytes(); ok {
		_spec.AddField(docconversioncache.FieldPdfSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(docconversioncache.FieldLastAccessedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastAccessedAt(); ok {
		_spec.AddField(docconversioncache.FieldLastAccessedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(docconversioncache.FieldAccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(docconversioncache.FieldAccessCount, field.TypeInt64, value)
	}
	_node = &DocConversionCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{docconversioncache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
