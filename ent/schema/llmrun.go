package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRun holds the schema definition for the LLMRun entity: the audit
// record of one routed model call. The router inserts the row in error
// state before the first attempt; a later success overrides it, so the
// final row always reflects the last attempted model.
type LLMRun struct {
	ent.Schema
}

// Fields of the LLMRun.
func (LLMRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Optional().
			Nillable(),
		field.String("cue_id").
			Optional().
			Nillable(),
		field.String("agent_name"),
		field.String("model").
			Comment("Last attempted model"),
		field.String("provider").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Int("prompt_tokens").
			Optional().
			Nillable(),
		field.Int("completion_tokens").
			Optional().
			Nillable(),
		field.Float("cost_usd").
			Optional().
			Nillable().
			Comment("Schema slot only; cost accounting is out of scope"),
		field.Enum("status").
			Values("success", "error").
			Default("success"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("input_sha").
			Optional().
			Nillable(),
		field.String("output_sha").
			Optional().
			Nillable(),
		field.JSON("meta", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the LLMRun.
func (LLMRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("llm_runs").
			Field("job_id").
			Unique(),
		edge.From("cue", JobCue.Type).
			Ref("llm_runs").
			Field("cue_id").
			Unique(),
	}
}

// Indexes of the LLMRun.
func (LLMRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "started_at"),
		index.Fields("agent_name"),
	}
}
