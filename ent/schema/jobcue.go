package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobCue holds the schema definition for the JobCue entity: one subtitle
// cue of a job, identified by a dense 1-based cue_index.
type JobCue struct {
	ent.Schema
}

// Fields of the JobCue.
func (JobCue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cue_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Int("cue_index"),
		field.Int("start_ms"),
		field.Int("end_ms"),
		field.Text("en_text").
			NotEmpty(),
		field.Text("fa_text").
			Optional().
			Nillable(),
		field.Text("fa_text_qa").
			Optional().
			Nillable(),
		field.Bool("tm_reused").
			Default(false),
		field.String("tm_entry_id").
			Optional().
			Nillable().
			Comment("Non-owning back-reference into the TM"),
		field.Bool("needs_translation").
			Default(true),
		field.Float("tm_confidence").
			Optional().
			Nillable(),
		field.Float("qa_score").
			Optional().
			Nillable(),
		field.JSON("issues", []string{}).
			Optional(),
	}
}

// Edges of the JobCue.
func (JobCue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("cues").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.To("llm_runs", LLMRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the JobCue.
func (JobCue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "cue_index").
			Unique(),
	}
}
