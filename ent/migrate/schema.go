// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_lang", Type: field.TypeString, Default: "en"},
		{Name: "target_lang", Type: field.TypeString, Default: "fa"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"UPLOADED", "AUDIO_PREP", "ASR", "SEGMENT", "STRATEGY", "TM_GATING", "TERMS", "TRANSLATE", "QA", "FINALIZE", "LIBRARIAN", "DONE"}, Default: "UPLOADED"},
		{Name: "queue_state", Type: field.TypeEnum, Enums: []string{"queued", "running", "done", "failed"}, Default: "queued"},
		{Name: "input_type", Type: field.TypeString, Default: "upload"},
		{Name: "input_uri", Type: field.TypeString},
		{Name: "normalized_uri", Type: field.TypeString, Nullable: true},
		{Name: "asr_json_uri", Type: field.TypeString, Nullable: true},
		{Name: "final_srt_uri", Type: field.TypeString, Nullable: true},
		{Name: "max_lines", Type: field.TypeInt, Default: 2},
		{Name: "max_chars_per_line", Type: field.TypeInt, Default: 42},
		{Name: "target_cps", Type: field.TypeFloat64, Default: 15},
		{Name: "min_cue_ms", Type: field.TypeInt, Default: 900},
		{Name: "max_cue_ms", Type: field.TypeInt, Default: 6500},
		{Name: "risk_level", Type: field.TypeString, Nullable: true},
		{Name: "difficulty_score", Type: field.TypeInt, Nullable: true},
		{Name: "strategist_conf", Type: field.TypeInt, Nullable: true},
		{Name: "genre", Type: field.TypeString, Nullable: true},
		{Name: "tone", Type: field.TypeString, Nullable: true},
		{Name: "domain_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "needs_terminologist", Type: field.TypeBool, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5]},
			},
			{
				Name:    "job_queue_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[6], JobsColumns[1]},
			},
			{
				Name:    "job_queue_state_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[6], JobsColumns[26]},
			},
		},
	}
	// JobCuesColumns holds the columns for the "job_cues" table.
	JobCuesColumns = []*schema.Column{
		{Name: "cue_id", Type: field.TypeString, Unique: true},
		{Name: "cue_index", Type: field.TypeInt},
		{Name: "start_ms", Type: field.TypeInt},
		{Name: "end_ms", Type: field.TypeInt},
		{Name: "en_text", Type: field.TypeString, Size: 2147483647},
		{Name: "fa_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fa_text_qa", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tm_reused", Type: field.TypeBool, Default: false},
		{Name: "tm_entry_id", Type: field.TypeString, Nullable: true},
		{Name: "needs_translation", Type: field.TypeBool, Default: true},
		{Name: "tm_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "qa_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "job_id", Type: field.TypeString},
	}
	// JobCuesTable holds the schema information for the "job_cues" table.
	JobCuesTable = &schema.Table{
		Name:       "job_cues",
		Columns:    JobCuesColumns,
		PrimaryKey: []*schema.Column{JobCuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_cues_jobs_cues",
				Columns:    []*schema.Column{JobCuesColumns[13]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobcue_job_id_cue_index",
				Unique:  true,
				Columns: []*schema.Column{JobCuesColumns[13], JobCuesColumns[1]},
			},
		},
	}
	// JobGlossaryTermsColumns holds the columns for the "job_glossary_terms" table.
	JobGlossaryTermsColumns = []*schema.Column{
		{Name: "term_id", Type: field.TypeString, Unique: true},
		{Name: "en_term", Type: field.TypeString},
		{Name: "fa_term", Type: field.TypeString},
		{Name: "term_type", Type: field.TypeString, Nullable: true},
		{Name: "mandatory", Type: field.TypeBool, Default: true},
		{Name: "confidence", Type: field.TypeInt, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "job_id", Type: field.TypeString},
	}
	// JobGlossaryTermsTable holds the schema information for the "job_glossary_terms" table.
	JobGlossaryTermsTable = &schema.Table{
		Name:       "job_glossary_terms",
		Columns:    JobGlossaryTermsColumns,
		PrimaryKey: []*schema.Column{JobGlossaryTermsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_glossary_terms_jobs_glossary_terms",
				Columns:    []*schema.Column{JobGlossaryTermsColumns[7]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobglossaryterm_job_id",
				Unique:  false,
				Columns: []*schema.Column{JobGlossaryTermsColumns[7]},
			},
		},
	}
	// LlmRunsColumns holds the columns for the "llm_runs" table.
	LlmRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "completion_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "error"}, Default: "success"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "input_sha", Type: field.TypeString, Nullable: true},
		{Name: "output_sha", Type: field.TypeString, Nullable: true},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "cue_id", Type: field.TypeString, Nullable: true},
	}
	// LlmRunsTable holds the schema information for the "llm_runs" table.
	LlmRunsTable = &schema.Table{
		Name:       "llm_runs",
		Columns:    LlmRunsColumns,
		PrimaryKey: []*schema.Column{LlmRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_runs_jobs_llm_runs",
				Columns:    []*schema.Column{LlmRunsColumns[14]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "llm_runs_job_cues_llm_runs",
				Columns:    []*schema.Column{LlmRunsColumns[15]},
				RefColumns: []*schema.Column{JobCuesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llmrun_job_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRunsColumns[14], LlmRunsColumns[4]},
			},
			{
				Name:    "llmrun_agent_name",
				Unique:  false,
				Columns: []*schema.Column{LlmRunsColumns[1]},
			},
		},
	}
	// TmEntriesColumns holds the columns for the "tm_entries" table.
	TmEntriesColumns = []*schema.Column{
		{Name: "tm_entry_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_lang", Type: field.TypeString, Default: "en"},
		{Name: "target_lang", Type: field.TypeString, Default: "fa"},
		{Name: "en_text", Type: field.TypeString, Size: 2147483647},
		{Name: "fa_text", Type: field.TypeString, Size: 2147483647},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "quality_grade", Type: field.TypeEnum, Enums: []string{"candidate", "trusted"}, Default: "candidate"},
		{Name: "qa_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "confidence", Type: field.TypeInt, Nullable: true},
		{Name: "en_hash", Type: field.TypeString, Unique: true},
		{Name: "domain_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(3072)"}},
	}
	// TmEntriesTable holds the schema information for the "tm_entries" table.
	TmEntriesTable = &schema.Table{
		Name:       "tm_entries",
		Columns:    TmEntriesColumns,
		PrimaryKey: []*schema.Column{TmEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tmentry_quality_grade",
				Unique:  false,
				Columns: []*schema.Column{TmEntriesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		JobCuesTable,
		JobGlossaryTermsTable,
		LlmRunsTable,
		TmEntriesTable,
	}
)

func init() {
	JobCuesTable.ForeignKeys[0].RefTable = JobsTable
	JobGlossaryTermsTable.ForeignKeys[0].RefTable = JobsTable
	LlmRunsTable.ForeignKeys[0].RefTable = JobsTable
	LlmRunsTable.ForeignKeys[1].RefTable = JobCuesTable
}
