// Code generated by ent, DO NOT EDIT.

package docconversioncache

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the docconversioncache type in the database.
	Label = "doc_conversion_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldFileExtension holds the string denoting the file_extension field in the database.
	FieldFileExtension = "file_extension"
	// FieldOriginalSizeBytes holds the string denoting the original_size_bytes field in the database.
	FieldOriginalSizeBytes = "original_size_bytes"
	// FieldPdfData holds the string denoting the pdf_data field in the database.
	FieldPdfData = "pdf_data"
	// FieldPdfSizeBytes holds the string denoting the pdf_size_bytes field in the database.
	FieldPdfSizeBytes = "pdf_size_bytes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastAccessedAt holds the string denoting the last_accessed_at field in the database.
	FieldLastAccessedAt = "last_accessed_at"
	// FieldAccessCount holds the string denoting the access_count field in the database.
	FieldAccessCount = "access_count"
	// Table holds the table name of the docconversioncache in the database.
	Table = "doc_conversion_caches"
)

// Columns holds all SQL columns for docconversioncache fields.
var Columns = []string{
	FieldID,
	FieldContentHash,
	FieldFileExtension,
	FieldOriginalSizeBytes,
	FieldPdfData,
	FieldPdfSizeBytes,
	FieldCreatedAt,
	FieldLastAccessedAt,
	FieldAccessCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAccessCount holds the default value on creation for the "access_count" field.
	DefaultAccessCount int64
)

// OrderOption defines the ordering options for the DocConversionCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByFileExtension orders the results by the file_extension field.
func ByFileExtension(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileExtension, opts...).ToFunc()
}

// ByOriginalSizeBytes orders the results by the original_size_bytes field.
func ByOriginalSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalSizeBytes, opts...).ToFunc()
}

// ByPdfSizeBytes orders the results by the pdf_size_bytes field.
func ByPdfSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfSizeBytes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastAccessedAt orders the results by the last_accessed_at field.
func ByLastAccessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessedAt, opts...).ToFunc()
}

// ByAccessCount orders the results by the access_count field.
func ByAccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessCount, opts...).ToFunc()
}
