// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourceLang holds the string denoting the source_lang field in the database.
	FieldSourceLang = "source_lang"
	// FieldTargetLang holds the string denoting the target_lang field in the database.
	FieldTargetLang = "target_lang"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldQueueState holds the string denoting the queue_state field in the database.
	FieldQueueState = "queue_state"
	// FieldInputType holds the string denoting the input_type field in the database.
	FieldInputType = "input_type"
	// FieldInputURI holds the string denoting the input_uri field in the database.
	FieldInputURI = "input_uri"
	// FieldNormalizedURI holds the string denoting the normalized_uri field in the database.
	FieldNormalizedURI = "normalized_uri"
	// FieldAsrJSONURI holds the string denoting the asr_json_uri field in the database.
	FieldAsrJSONURI = "asr_json_uri"
	// FieldFinalSrtURI holds the string denoting the final_srt_uri field in the database.
	FieldFinalSrtURI = "final_srt_uri"
	// FieldMaxLines holds the string denoting the max_lines field in the database.
	FieldMaxLines = "max_lines"
	// FieldMaxCharsPerLine holds the string denoting the max_chars_per_line field in the database.
	FieldMaxCharsPerLine = "max_chars_per_line"
	// FieldTargetCps holds the string denoting the target_cps field in the database.
	FieldTargetCps = "target_cps"
	// FieldMinCueMs holds the string denoting the min_cue_ms field in the database.
	FieldMinCueMs = "min_cue_ms"
	// FieldMaxCueMs holds the string denoting the max_cue_ms field in the database.
	FieldMaxCueMs = "max_cue_ms"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldDifficultyScore holds the string denoting the difficulty_score field in the database.
	FieldDifficultyScore = "difficulty_score"
	// FieldStrategistConf holds the string denoting the strategist_conf field in the database.
	FieldStrategistConf = "strategist_conf"
	// FieldGenre holds the string denoting the genre field in the database.
	FieldGenre = "genre"
	// FieldTone holds the string denoting the tone field in the database.
	FieldTone = "tone"
	// FieldDomainTags holds the string denoting the domain_tags field in the database.
	FieldDomainTags = "domain_tags"
	// FieldNeedsTerminologist holds the string denoting the needs_terminologist field in the database.
	FieldNeedsTerminologist = "needs_terminologist"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// EdgeCues holds the string denoting the cues edge name in mutations.
	EdgeCues = "cues"
	// EdgeGlossaryTerms holds the string denoting the glossary_terms edge name in mutations.
	EdgeGlossaryTerms = "glossary_terms"
	// EdgeLlmRuns holds the string denoting the llm_runs edge name in mutations.
	EdgeLlmRuns = "llm_runs"
	// JobCueFieldID holds the string denoting the ID field of the JobCue.
	JobCueFieldID = "cue_id"
	// JobGlossaryTermFieldID holds the string denoting the ID field of the JobGlossaryTerm.
	JobGlossaryTermFieldID = "term_id"
	// LLMRunFieldID holds the string denoting the ID field of the LLMRun.
	LLMRunFieldID = "run_id"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// CuesTable is the table that holds the cues relation/edge.
	CuesTable = "job_cues"
	// CuesInverseTable is the table name for the JobCue entity.
	// It exists in this package in order to avoid circular dependency with the "jobcue" package.
	CuesInverseTable = "job_cues"
	// CuesColumn is the table column denoting the cues relation/edge.
	CuesColumn = "job_id"
	// GlossaryTermsTable is the table that holds the glossary_terms relation/edge.
	GlossaryTermsTable = "job_glossary_terms"
	// GlossaryTermsInverseTable is the table name for the JobGlossaryTerm entity.
	// It exists in this package in order to avoid circular dependency with the "jobglossaryterm" package.
	GlossaryTermsInverseTable = "job_glossary_terms"
	// GlossaryTermsColumn is the table column denoting the glossary_terms relation/edge.
	GlossaryTermsColumn = "job_id"
	// LlmRunsTable is the table that holds the llm_runs relation/edge.
	LlmRunsTable = "llm_runs"
	// LlmRunsInverseTable is the table name for the LLMRun entity.
	// It exists in this package in order to avoid circular dependency with the "llmrun" package.
	LlmRunsInverseTable = "llm_runs"
	// LlmRunsColumn is the table column denoting the llm_runs relation/edge.
	LlmRunsColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourceLang,
	FieldTargetLang,
	FieldStatus,
	FieldQueueState,
	FieldInputType,
	FieldInputURI,
	FieldNormalizedURI,
	FieldAsrJSONURI,
	FieldFinalSrtURI,
	FieldMaxLines,
	FieldMaxCharsPerLine,
	FieldTargetCps,
	FieldMinCueMs,
	FieldMaxCueMs,
	FieldRiskLevel,
	FieldDifficultyScore,
	FieldStrategistConf,
	FieldGenre,
	FieldTone,
	FieldDomainTags,
	FieldNeedsTerminologist,
	FieldErrorMessage,
	FieldClaimedBy,
	FieldHeartbeatAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultSourceLang holds the default value on creation for the "source_lang" field.
	DefaultSourceLang string
	// DefaultTargetLang holds the default value on creation for the "target_lang" field.
	DefaultTargetLang string
	// DefaultInputType holds the default value on creation for the "input_type" field.
	DefaultInputType string
	// DefaultMaxLines holds the default value on creation for the "max_lines" field.
	DefaultMaxLines int
	// DefaultMaxCharsPerLine holds the default value on creation for the "max_chars_per_line" field.
	DefaultMaxCharsPerLine int
	// DefaultTargetCps holds the default value on creation for the "target_cps" field.
	DefaultTargetCps float64
	// DefaultMinCueMs holds the default value on creation for the "min_cue_ms" field.
	DefaultMinCueMs int
	// DefaultMaxCueMs holds the default value on creation for the "max_cue_ms" field.
	DefaultMaxCueMs int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusUploaded is the default value of the Status enum.
const DefaultStatus = StatusUploaded

// Status values.
const (
	StatusUploaded  Status = "UPLOADED"
	StatusAudioPrep Status = "AUDIO_PREP"
	StatusASR       Status = "ASR"
	StatusSegment   Status = "SEGMENT"
	StatusStrategy  Status = "STRATEGY"
	StatusTMGating  Status = "TM_GATING"
	StatusTerms     Status = "TERMS"
	StatusTranslate Status = "TRANSLATE"
	StatusQA        Status = "QA"
	StatusFinalize  Status = "FINALIZE"
	StatusLibrarian Status = "LIBRARIAN"
	StatusDone      Status = "DONE"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusUploaded, StatusAudioPrep, StatusASR, StatusSegment, StatusStrategy, StatusTMGating, StatusTerms, StatusTranslate, StatusQA, StatusFinalize, StatusLibrarian, StatusDone:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for status field: %q", s)
	}
}

// QueueState defines the type for the "queue_state" enum field.
type QueueState string

// QueueStateQueued is the default value of the QueueState enum.
const DefaultQueueState = QueueStateQueued

// QueueState values.
const (
	QueueStateQueued  QueueState = "queued"
	QueueStateRunning QueueState = "running"
	QueueStateDone    QueueState = "done"
	QueueStateFailed  QueueState = "failed"
)

func (qs QueueState) String() string {
	return string(qs)
}

// QueueStateValidator is a validator for the "queue_state" field enum values. It is called by the builders before save.
func QueueStateValidator(qs QueueState) error {
	switch qs {
	case QueueStateQueued, QueueStateRunning, QueueStateDone, QueueStateFailed:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for queue_state field: %q", qs)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySourceLang orders the results by the source_lang field.
func BySourceLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLang, opts...).ToFunc()
}

// ByTargetLang orders the results by the target_lang field.
func ByTargetLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLang, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByQueueState orders the results by the queue_state field.
func ByQueueState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueState, opts...).ToFunc()
}

// ByInputType orders the results by the input_type field.
func ByInputType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputType, opts...).ToFunc()
}

// ByInputURI orders the results by the input_uri field.
func ByInputURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputURI, opts...).ToFunc()
}

// ByNormalizedURI orders the results by the normalized_uri field.
func ByNormalizedURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedURI, opts...).ToFunc()
}

// ByAsrJSONURI orders the results by the asr_json_uri field.
func ByAsrJSONURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAsrJSONURI, opts...).ToFunc()
}

// ByFinalSrtURI orders the results by the final_srt_uri field.
func ByFinalSrtURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalSrtURI, opts...).ToFunc()
}

// ByMaxLines orders the results by the max_lines field.
func ByMaxLines(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxLines, opts...).ToFunc()
}

// ByMaxCharsPerLine orders the results by the max_chars_per_line field.
func ByMaxCharsPerLine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxCharsPerLine, opts...).ToFunc()
}

// ByTargetCps orders the results by the target_cps field.
func ByTargetCps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetCps, opts...).ToFunc()
}

// ByMinCueMs orders the results by the min_cue_ms field.
func ByMinCueMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinCueMs, opts...).ToFunc()
}

// ByMaxCueMs orders the results by the max_cue_ms field.
func ByMaxCueMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxCueMs, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByDifficultyScore orders the results by the difficulty_score field.
func ByDifficultyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyScore, opts...).ToFunc()
}

// ByStrategistConf orders the results by the strategist_conf field.
func ByStrategistConf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategistConf, opts...).ToFunc()
}

// ByGenre orders the results by the genre field.
func ByGenre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenre, opts...).ToFunc()
}

// ByTone orders the results by the tone field.
func ByTone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTone, opts...).ToFunc()
}

// ByNeedsTerminologist orders the results by the needs_terminologist field.
func ByNeedsTerminologist(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsTerminologist, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}

// ByCuesCount orders the results by cues count.
func ByCuesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCuesStep(), opts...)
	}
}

// ByCues orders the results by cues terms.
func ByCues(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCuesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGlossaryTermsCount orders the results by glossary_terms count.
func ByGlossaryTermsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGlossaryTermsStep(), opts...)
	}
}

// ByGlossaryTerms orders the results by glossary_terms terms.
func ByGlossaryTerms(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGlossaryTermsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newCuesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CuesInverseTable, JobCueFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CuesTable, CuesColumn),
	)
}
func newGlossaryTermsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GlossaryTermsInverseTable, JobGlossaryTermFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GlossaryTermsTable, GlossaryTermsColumn),
	)
}
func newLlmRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LlmRunsInverseTable, LLMRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LlmRunsTable, LlmRunsColumn),
	)
}
