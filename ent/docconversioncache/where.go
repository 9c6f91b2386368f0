// Code generated by ent, DO NOT EDIT.

package docconversioncache

import (
	"entgo.io/ent/dialect/sql"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLTE(FieldID, id))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldContentHash, v))
}

// FileExtension applies equality check predicate on the "file_extension" field. It's identical to FileExtensionEQ.
func FileExtension(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldFileExtension, v))
}

// OriginalSizeBytes applies equality check predicate on the "original_size_bytes" field. It's identical to OriginalSizeBytesEQ.
func OriginalSizeBytes(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldOriginalSizeBytes, v))
}

// PdfData applies equality check predicate on the "pdf_data" field. It's identical to PdfDataEQ.
func PdfData(v []byte) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldPdfData, v))
}

// PdfSizeBytes applies equality check predicate on the "pdf_size_bytes" field. It's identical to PdfSizeBytesEQ.
func PdfSizeBytes(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldPdfSizeBytes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldCreatedAt, v))
}

// LastAccessedAt applies equality check predicate on the "last_accessed_at" field. It's identical to LastAccessedAtEQ.
func LastAccessedAt(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldLastAccessedAt, v))
}

// AccessCount applies equality check predicate on the "access_count" field. It's identical to AccessCountEQ.
func AccessCount(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldAccessCount, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldContainsFold(FieldContentHash, v))
}

// FileExtensionEQ applies the EQ predicate on the "file_extension" field.
func FileExtensionEQ(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldFileExtension, v))
}

// FileExtensionNEQ applies the NEQ predicate on the "file_extension" field.
func FileExtensionNEQ(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNEQ(FieldFileExtension, v))
}

// FileExtensionIn applies the In predicate on the "file_extension" field.
func FileExtensionIn(vs ...string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldIn(FieldFileExtension, vs...))
}

// FileExtensionNotIn applies the NotIn predicate on the "file_extension" field.
func FileExtensionNotIn(vs ...string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNotIn(FieldFileExtension, vs...))
}

// FileExtensionGT applies the GT predicate on the "file_extension" field.
func FileExtensionGT(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGT(FieldFileExtension, v))
}

// FileExtensionGTE applies the GTE predicate on the "file_extension" field.
func FileExtensionGTE(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGTE(FieldFileExtension, v))
}

// FileExtensionLT applies the LT predicate on the "file_extension" field.
func FileExtensionLT(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLT(FieldFileExtension, v))
}

// FileExtensionLTE applies the LTE predicate on the "file_extension" field.
func FileExtensionLTE(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLTE(FieldFileExtension, v))
}

// FileExtensionContains applies the Contains predicate on the "file_extension" field.
func FileExtensionContains(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldContains(FieldFileExtension, v))
}

// FileExtensionHasPrefix applies the HasPrefix predicate on the "file_extension" field.
func FileExtensionHasPrefix(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldHasPrefix(FieldFileExtension, v))
}

// FileExtensionHasSuffix applies the HasSuffix predicate on the "file_extension" field.
func FileExtensionHasSuffix(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldHasSuffix(FieldFileExtension, v))
}

// FileExtensionEqualFold applies the EqualFold predicate on the "file_extension" field.
func FileExtensionEqualFold(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEqualFold(FieldFileExtension, v))
}

// FileExtensionContainsFold applies the ContainsFold predicate on the "file_extension" field.
func FileExtensionContainsFold(v string) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldContainsFold(FieldFileExtension, v))
}

// OriginalSizeBytesEQ applies the EQ predicate on the "original_size_bytes" field.
func OriginalSizeBytesEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldOriginalSizeBytes, v))
}

// OriginalSizeBytesNEQ applies the NEQ predicate on the "original_size_bytes" field.
func OriginalSizeBytesNEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNEQ(FieldOriginalSizeBytes, v))
}

// OriginalSizeBytesIn applies the In predicate on the "original_size_bytes" field.
func OriginalSizeBytesIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldIn(FieldOriginalSizeBytes, vs...))
}

// OriginalSizeBytesNotIn applies the NotIn predicate on the "original_size_bytes" field.
func OriginalSizeBytesNotIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNotIn(FieldOriginalSizeBytes, vs...))
}

// OriginalSizeBytesGT applies the GT predicate on the "original_size_bytes" field.
func OriginalSizeBytesGT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGT(FieldOriginalSizeBytes, v))
}

// OriginalSizeBytesGTE applies the GTE predicate on the "original_size_bytes" field.
func OriginalSizeBytesGTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGTE(FieldOriginalSizeBytes, v))
}

// OriginalSizeBytesLT applies the LT predicate on the "original_size_bytes" field.
func OriginalSizeBytesLT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLT(FieldOriginalSizeBytes, v))
}

// OriginalSizeBytesLTE applies the LTE predicate on the "original_size_bytes" field.
func OriginalSizeBytesLTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLTE(FieldOriginalSizeBytes, v))
}

// PdfDataEQ applies the EQ predicate on the "pdf_data" field.
func PdfDataEQ(v []byte) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldPdfData, v))
}

// PdfDataNEQ applies the NEQ predicate on the "pdf_data" field.
func PdfDataNEQ(v []byte) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNEQ(FieldPdfData, v))
}

// PdfDataIn applies the In predicate on the "pdf_data" field.
func PdfDataIn(vs ...[]byte) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldIn(FieldPdfData, vs...))
}

// PdfDataNotIn applies the NotIn predicate on the "pdf_data" field.
func PdfDataNotIn(vs ...[]byte) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNotIn(FieldPdfData, vs...))
}

// PdfDataGT applies the GT predicate on the "pdf_data" field.
func PdfDataGT(v []byte) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGT(FieldPdfData, v))
}

// PdfDataGTE applies the GTE predicate on the "pdf_data" field.
func PdfDataGTE(v []byte) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGTE(FieldPdfData, v))
}

// PdfDataLT applies the LT predicate on the "pdf_data" field.
func PdfDataLT(v []byte) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLT(FieldPdfData, v))
}

// PdfDataLTE applies the LTE predicate on the "pdf_data" field.
func PdfDataLTE(v []byte) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLTE(FieldPdfData, v))
}

// PdfSizeBytesEQ applies the EQ predicate on the "pdf_size_bytes" field.
func PdfSizeBytesEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldPdfSizeBytes, v))
}

// PdfSizeBytesNEQ applies the NEQ predicate on the "pdf_size_bytes" field.
func PdfSizeBytesNEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNEQ(FieldPdfSizeBytes, v))
}

// PdfSizeBytesIn applies the In predicate on the "pdf_size_bytes" field.
func PdfSizeBytesIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldIn(FieldPdfSizeBytes, vs...))
}

// PdfSizeBytesNotIn applies the NotIn predicate on the "pdf_size_bytes" field.
func PdfSizeBytesNotIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNotIn(FieldPdfSizeBytes, vs...))
}

// PdfSizeBytesGT applies the GT predicate on the "pdf_size_bytes" field.
func PdfSizeBytesGT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGT(FieldPdfSizeBytes, v))
}

// PdfSizeBytesGTE applies the GTE predicate on the "pdf_size_bytes" field.
func PdfSizeBytesGTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGTE(FieldPdfSizeBytes, v))
}

// PdfSizeBytesLT applies the LT predicate on the "pdf_size_bytes" field.
func PdfSizeBytesLT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLT(FieldPdfSizeBytes, v))
}

// PdfSizeBytesLTE applies the LTE predicate on the "pdf_size_bytes" field.
func PdfSizeBytesLTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLTE(FieldPdfSizeBytes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLTE(FieldCreatedAt, v))
}

// LastAccessedAtEQ applies the EQ predicate on the "last_accessed_at" field.
func LastAccessedAtEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtNEQ applies the NEQ predicate on the "last_accessed_at" field.
func LastAccessedAtNEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtIn applies the In predicate on the "last_accessed_at" field.
func LastAccessedAtIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtNotIn applies the NotIn predicate on the "last_accessed_at" field.
func LastAccessedAtNotIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNotIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtGT applies the GT predicate on the "last_accessed_at" field.
func LastAccessedAtGT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGT(FieldLastAccessedAt, v))
}

// LastAccessedAtGTE applies the GTE predicate on the "last_accessed_at" field.
func LastAccessedAtGTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGTE(FieldLastAccessedAt, v))
}

// LastAccessedAtLT applies the LT predicate on the "last_accessed_at" field.
func LastAccessedAtLT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLT(FieldLastAccessedAt, v))
}

// LastAccessedAtLTE applies the LTE predicate on the "last_accessed_at" field.
func LastAccessedAtLTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLTE(FieldLastAccessedAt, v))
}

// AccessCountEQ applies the EQ predicate on the "access_count" field.
func AccessCountEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldEQ(FieldAccessCount, v))
}

// AccessCountNEQ applies the NEQ predicate on the "access_count" field.
func AccessCountNEQ(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNEQ(FieldAccessCount, v))
}

// AccessCountIn applies the In predicate on the "access_count" field.
func AccessCountIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldIn(FieldAccessCount, vs...))
}

// AccessCountNotIn applies the NotIn predicate on the "access_count" field.
func AccessCountNotIn(vs ...int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldNotIn(FieldAccessCount, vs...))
}

// AccessCountGT applies the GT predicate on the "access_count" field.
func AccessCountGT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGT(FieldAccessCount, v))
}

// AccessCountGTE applies the GTE predicate on the "access_count" field.
func AccessCountGTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldGTE(FieldAccessCount, v))
}

// AccessCountLT applies the LT predicate on the "access_count" field.
func AccessCountLT(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLT(FieldAccessCount, v))
}

// AccessCountLTE applies the LTE predicate on the "access_count" field.
func AccessCountLTE(v int64) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.FieldLTE(FieldAccessCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocConversionCache) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocConversionCache) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocConversionCache) predicate.DocConversionCache {
	return predicate.DocConversionCache(sql.NotPredicates(p))
}
