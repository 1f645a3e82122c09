package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobGlossaryTerm holds the schema definition for a per-job bilingual
// glossary binding produced by the terminologist. Near-duplicate terms are
// allowed; only en_term is required to be non-empty.
type JobGlossaryTerm struct {
	ent.Schema
}

// Fields of the JobGlossaryTerm.
func (JobGlossaryTerm) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("term_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("en_term").
			NotEmpty(),
		field.String("fa_term"),
		field.String("term_type").
			Optional().
			Nillable().
			Comment("jargon|product|acronym|name|other"),
		field.Bool("mandatory").
			Default(true),
		field.Int("confidence").
			Optional().
			Nillable(),
		field.Text("notes").
			Optional().
			Nillable(),
	}
}

// Edges of the JobGlossaryTerm.
func (JobGlossaryTerm) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("glossary_terms").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobGlossaryTerm.
func (JobGlossaryTerm) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
	}
}
