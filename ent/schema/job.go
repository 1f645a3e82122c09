package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity. A Job is the single
// source of truth for one subtitle run: the pipeline advances its status
// through the stage machine and persists every transition before executing
// the stage body.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
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
		field.Enum("status").
			NamedValues(
				"Uploaded", "UPLOADED",
				"AudioPrep", "AUDIO_PREP",
				"ASR", "ASR",
				"Segment", "SEGMENT",
				"Strategy", "STRATEGY",
				"TMGating", "TM_GATING",
				"Terms", "TERMS",
				"Translate", "TRANSLATE",
				"QA", "QA",
				"Finalize", "FINALIZE",
				"Librarian", "LIBRARIAN",
				"Done", "DONE",
			).
			Default("UPLOADED").
			Comment("Current pipeline stage; advances strictly in stage order"),
		field.Enum("queue_state").
			Values("queued", "running", "done", "failed").
			Default("queued").
			Comment("Queue discipline, independent of the pipeline stage"),
		field.String("input_type").
			Default("upload"),
		field.String("input_uri"),
		field.String("normalized_uri").
			Optional().
			Nillable(),
		field.String("asr_json_uri").
			Optional().
			Nillable(),
		field.String("final_srt_uri").
			Optional().
			Nillable(),

		// Subtitle shape, snapshotted from config at creation.
		field.Int("max_lines").
			Default(2),
		field.Int("max_chars_per_line").
			Default(42),
		field.Float("target_cps").
			Default(15.0).
			Comment("Stored but not consulted by the pipeline"),
		field.Int("min_cue_ms").
			Default(900),
		field.Int("max_cue_ms").
			Default(6500),

		// Written by STRATEGY.
		field.String("risk_level").
			Optional().
			Nillable(),
		field.Int("difficulty_score").
			Optional().
			Nillable(),
		field.Int("strategist_conf").
			Optional().
			Nillable(),
		field.String("genre").
			Optional().
			Nillable(),
		field.String("tone").
			Optional().
			Nillable(),
		field.JSON("domain_tags", []string{}).
			Optional(),
		field.Bool("needs_terminologist").
			Optional().
			Nillable().
			Comment("Persisted so a resumed run can decide the TERMS skip"),

		field.String("error_message").
			Optional().
			Nillable().
			Comment("Last stage failure; status stays at the failing stage"),

		// Worker claim bookkeeping.
		field.String("claimed_by").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("cues", JobCue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("glossary_terms", JobGlossaryTerm.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_runs", LLMRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("queue_state", "created_at"),
		index.Fields("queue_state", "heartbeat_at"),
	}
}
