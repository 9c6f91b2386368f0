package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocConversionCache holds the schema definition for cached Office→PDF
// conversion results, keyed by content hash and source extension.
type DocConversionCache struct {
	ent.Schema
}

// Fields of the DocConversionCache.
func (DocConversionCache) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique(),
		field.String("content_hash"),
		field.String("file_extension"),
		field.Int64("original_size_bytes"),
		field.Bytes("pdf_data"),
		field.Int64("pdf_size_bytes"),
		field.Int64("created_at").
			Immutable(),
		field.Int64("last_accessed_at"),
		field.Int64("access_count").
			Default(0),
	}
}

// Indexes of the DocConversionCache.
func (DocConversionCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash", "file_extension").
			Unique(),
		index.Fields("last_accessed_at"),
	}
}
