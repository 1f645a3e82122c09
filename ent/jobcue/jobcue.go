// Code generated by ent, DO NOT EDIT.

package jobcue

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the jobcue type in the database.
	Label = "job_cue"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cue_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldCueIndex holds the string denoting the cue_index field in the database.
	FieldCueIndex = "cue_index"
	// FieldStartMs holds the string denoting the start_ms field in the database.
	FieldStartMs = "start_ms"
	// FieldEndMs holds the string denoting the end_ms field in the database.
	FieldEndMs = "end_ms"
	// FieldEnText holds the string denoting the en_text field in the database.
	FieldEnText = "en_text"
	// FieldFaText holds the string denoting the fa_text field in the database.
	FieldFaText = "fa_text"
	// FieldFaTextQa holds the string denoting the fa_text_qa field in the database.
	FieldFaTextQa = "fa_text_qa"
	// FieldTmReused holds the string denoting the tm_reused field in the database.
	FieldTmReused = "tm_reused"
	// FieldTmEntryID holds the string denoting the tm_entry_id field in the database.
	FieldTmEntryID = "tm_entry_id"
	// FieldNeedsTranslation holds the string denoting the needs_translation field in the database.
	FieldNeedsTranslation = "needs_translation"
	// FieldTmConfidence holds the string denoting the tm_confidence field in the database.
	FieldTmConfidence = "tm_confidence"
	// FieldQaScore holds the string denoting the qa_score field in the database.
	FieldQaScore = "qa_score"
	// FieldIssues holds the string denoting the issues field in the database.
	FieldIssues = "issues"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeLlmRuns holds the string denoting the llm_runs edge name in mutations.
	EdgeLlmRuns = "llm_runs"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// LLMRunFieldID holds the string denoting the ID field of the LLMRun.
	LLMRunFieldID = "run_id"
	// Table holds the table name of the jobcue in the database.
	Table = "job_cues"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_cues"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// LlmRunsTable is the table that holds the llm_runs relation/edge.
	LlmRunsTable = "llm_runs"
	// LlmRunsInverseTable is the table name for the LLMRun entity.
	// It exists in this package in order to avoid circular dependency with the "llmrun" package.
	LlmRunsInverseTable = "llm_runs"
	// LlmRunsColumn is the table column denoting the llm_runs relation/edge.
	LlmRunsColumn = "cue_id"
)

// Columns holds all SQL columns for jobcue fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldCueIndex,
	FieldStartMs,
	FieldEndMs,
	FieldEnText,
	FieldFaText,
	FieldFaTextQa,
	FieldTmReused,
	FieldTmEntryID,
	FieldNeedsTranslation,
	FieldTmConfidence,
	FieldQaScore,
	FieldIssues,
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
	// EnTextValidator is a validator for the "en_text" field. It is called by the builders before save.
	EnTextValidator func(string) error
	// DefaultTmReused holds the default value on creation for the "tm_reused" field.
	DefaultTmReused bool
	// DefaultNeedsTranslation holds the default value on creation for the "needs_translation" field.
	DefaultNeedsTranslation bool
)

// OrderOption defines the ordering options for the JobCue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByCueIndex orders the results by the cue_index field.
func ByCueIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCueIndex, opts...).ToFunc()
}

// ByStartMs orders the results by the start_ms field.
func ByStartMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartMs, opts...).ToFunc()
}

// ByEndMs orders the results by the end_ms field.
func ByEndMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndMs, opts...).ToFunc()
}

// ByEnText orders the results by the en_text field.
func ByEnText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnText, opts...).ToFunc()
}

// ByFaText orders the results by the fa_text field.
func ByFaText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFaText, opts...).ToFunc()
}

// ByFaTextQa orders the results by the fa_text_qa field.
func ByFaTextQa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFaTextQa, opts...).ToFunc()
}

// ByTmReused orders the results by the tm_reused field.
func ByTmReused(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTmReused, opts...).ToFunc()
}

// ByTmEntryID orders the results by the tm_entry_id field.
func ByTmEntryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTmEntryID, opts...).ToFunc()
}

// ByNeedsTranslation orders the results by the needs_translation field.
func ByNeedsTranslation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsTranslation, opts...).ToFunc()
}

// ByTmConfidence orders the results by the tm_confidence field.
func ByTmConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTmConfidence, opts...).ToFunc()
}

// ByQaScore orders the results by the qa_score field.
func ByQaScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQaScore, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByLlmRunsCount orders the results by llm_runs count.
func ByLlmRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLlmRunsStep(), opts...)
	}
}

// ByLlmRuns orders the results by llm_runs terms.
func ByLlmRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLlmRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newLlmRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LlmRunsInverseTable, LLMRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LlmRunsTable, LlmRunsColumn),
	)
}
