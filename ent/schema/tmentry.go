package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	pgvector "github.com/pgvector/pgvector-go"
)

// TMEntry holds the schema definition for the Translation Memory: global,
// cross-job approved (en, fa) pairs with embeddings. Entries are promoted
// by the librarian and never deleted by the pipeline; en_hash uniqueness
// makes promotion idempotent.
type TMEntry struct {
	ent.Schema
}

// Fields of the TMEntry.
func (TMEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tm_entry_id").
			Unique().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("source_lang").
			Default("en"),
		field.String("target_lang").
			Default("fa"),
		field.Text("en_text").
			NotEmpty(),
		field.Text("fa_text").
			NotEmpty(),
		field.Int("version").
			Default(1),
		field.Enum("quality_grade").
			Values("candidate", "trusted").
			Default("candidate"),
		field.Float("qa_score").
			Optional().
			Nillable(),
		field.Int("confidence").
			Optional().
			Nillable(),
		field.String("en_hash").
			NotEmpty().
			Unique().
			Comment("SHA-256 of the normalized English text"),
		field.JSON("domain_tags", []string{}).
			Optional(),
		field.Other("embedding", pgvector.Vector{}).
			SchemaType(map[string]string{
				dialect.Postgres: "vector(3072)",
			}).
			Optional().
			Comment("3072 dims exceeds the pgvector ANN index cap; recall is a scan"),
	}
}

// Indexes of the TMEntry.
func (TMEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quality_grade"),
	}
}
