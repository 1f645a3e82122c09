// Code generated by ent, DO NOT EDIT.

package llmrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the llmrun type in the database.
	Label = "llm_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldCueID holds the string denoting the cue_id field in the database.
	FieldCueID = "cue_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldPromptTokens holds the string denoting the prompt_tokens field in the database.
	FieldPromptTokens = "prompt_tokens"
	// FieldCompletionTokens holds the string denoting the completion_tokens field in the database.
	FieldCompletionTokens = "completion_tokens"
	// FieldCostUsd holds the string denoting the cost_usd field in the database.
	FieldCostUsd = "cost_usd"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldInputSha holds the string denoting the input_sha field in the database.
	FieldInputSha = "input_sha"
	// FieldOutputSha holds the string denoting the output_sha field in the database.
	FieldOutputSha = "output_sha"
	// FieldMeta holds the string denoting the meta field in the database.
	FieldMeta = "meta"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeCue holds the string denoting the cue edge name in mutations.
	EdgeCue = "cue"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// JobCueFieldID holds the string denoting the ID field of the JobCue.
	JobCueFieldID = "cue_id"
	// Table holds the table name of the llmrun in the database.
	Table = "llm_runs"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "llm_runs"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// CueTable is the table that holds the cue relation/edge.
	CueTable = "llm_runs"
	// CueInverseTable is the table name for the JobCue entity.
	// It exists in this package in order to avoid circular dependency with the "jobcue" package.
	CueInverseTable = "job_cues"
	// CueColumn is the table column denoting the cue relation/edge.
	CueColumn = "cue_id"
)

// Columns holds all SQL columns for llmrun fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldCueID,
	FieldAgentName,
	FieldModel,
	FieldProvider,
	FieldStartedAt,
	FieldFinishedAt,
	FieldPromptTokens,
	FieldCompletionTokens,
	FieldCostUsd,
	FieldStatus,
	FieldErrorMessage,
	FieldInputSha,
	FieldOutputSha,
	FieldMeta,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusSuccess is the default value of the Status enum.
const DefaultStatus = StatusSuccess

// Status values.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusError:
		return nil
	default:
		return fmt.Errorf("llmrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the LLMRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByCueID orders the results by the cue_id field.
func ByCueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCueID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByPromptTokens orders the results by the prompt_tokens field.
func ByPromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokens, opts...).ToFunc()
}

// ByCompletionTokens orders the results by the completion_tokens field.
func ByCompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTokens, opts...).ToFunc()
}

// ByCostUsd orders the results by the cost_usd field.
func ByCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsd, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByInputSha orders the results by the input_sha field.
func ByInputSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputSha, opts...).ToFunc()
}

// ByOutputSha orders the results by the output_sha field.
func ByOutputSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputSha, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByCueField orders the results by cue field.
func ByCueField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCueStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newCueStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CueInverseTable, JobCueFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CueTable, CueColumn),
	)
}
