// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/docconversioncache"
)

// DocConversionCache is the model entity for the DocConversionCache schema.
type DocConversionCache struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// FileExtension holds the value of the "file_extension" field.
	FileExtension string `json:"file_extension,omitempty"`
	// OriginalSizeBytes holds the value of the "original_size_bytes" field.
	OriginalSizeBytes int64 `json:"original_size_bytes,omitempty"`
	// PdfData holds the value of the "pdf_data" field.
	PdfData []byte `json:"pdf_data,omitempty"`
	// PdfSizeBytes holds the value of the "pdf_size_bytes" field.
	PdfSizeBytes int64 `json:"pdf_size_bytes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt int64 `json:"created_at,omitempty"`
	// LastAccessedAt holds the value of the "last_accessed_at" field.
	LastAccessedAt int64 `json:"last_accessed_at,omitempty"`
	// AccessCount holds the value of the "access_count" field.
	AccessCount  int64 `json:"access_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocConversionCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case docconversioncache.FieldPdfData:
			values[i] = new([]byte)
		case docconversioncache.FieldID, docconversioncache.FieldOriginalSizeBytes, docconversioncache.FieldPdfSizeBytes, docconversioncache.FieldCreatedAt, docconversioncache.FieldLastAccessedAt, docconversioncache.FieldAccessCount:
			values[i] = new(sql.NullInt64)
		case docconversioncache.FieldContentHash, docconversioncache.FieldFileExtension:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocConversionCache fields.
func (_m *DocConversionCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case docconversioncache.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case docconversioncache.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case docconversioncache.FieldFileExtension:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_extension", values[i])
			} else if value.Valid {
				_m.FileExtension = value.String
			}
		case docconversioncache.FieldOriginalSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field original_size_bytes", values[i])
			} else if value.Valid {
				_m.OriginalSizeBytes = value.Int64
			}
		case docconversioncache.FieldPdfData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_data", values[i])
			} else if value != nil {
				_m.PdfData = *value
			}
		case docconversioncache.FieldPdfSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_size_bytes", values[i])
			} else if value.Valid {
				_m.PdfSizeBytes = value.Int64
			}
		case docconversioncache.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Int64
			}
		case docconversioncache.FieldLastAccessedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_accessed_at", values[i])
			} else if value.Valid {
				_m.LastAccessedAt = value.Int64
			}
		case docconversioncache.FieldAccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field access_count", values[i])
			} else if value.Valid {
				_m.AccessCount = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocConversionCache.
// This includes values selected through modifiers, order, etc.
func (_m *DocConversionCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DocConversionCache.
// Note that you need to call DocConversionCache.Unwrap() before calling this method if this DocConversionCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocConversionCache) Update() *DocConversionCacheUpdateOne {
	return NewDocConversionCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocConversionCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocConversionCache) Unwrap() *DocConversionCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocConversionCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocConversionCache) String() string {
	var builder strings.Builder
	builder.WriteString("DocConversionCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("file_extension=")
	builder.WriteString(_m.FileExtension)
	builder.WriteString(", ")
	builder.WriteString("original_size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalSizeBytes))
	builder.WriteString(", ")
	builder.WriteString("pdf_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.PdfData))
	builder.WriteString(", ")
	builder.WriteString("pdf_size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PdfSizeBytes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAt))
	builder.WriteString(", ")
	builder.WriteString("last_accessed_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastAccessedAt))
	builder.WriteString(", ")
	builder.WriteString("access_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccessCount))
	builder.WriteByte(')')
	return builder.String()
}

// DocConversionCaches is a parsable slice of DocConversionCache.
type DocConversionCaches []*DocConversionCache
