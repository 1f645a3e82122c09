// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/subtitle-ai/zirnevis/ent/job"
)

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourceLang holds the value of the "source_lang" field.
	SourceLang string `json:"source_lang,omitempty"`
	// TargetLang holds the value of the "target_lang" field.
	TargetLang string `json:"target_lang,omitempty"`
	// Current pipeline stage; advances strictly in stage order
	Status job.Status `json:"status,omitempty"`
	// Queue discipline, independent of the pipeline stage
	QueueState job.QueueState `json:"queue_state,omitempty"`
	// InputType holds the value of the "input_type" field.
	InputType string `json:"input_type,omitempty"`
	// InputURI holds the value of the "input_uri" field.
	InputURI string `json:"input_uri,omitempty"`
	// NormalizedURI holds the value of the "normalized_uri" field.
	NormalizedURI *string `json:"normalized_uri,omitempty"`
	// AsrJSONURI holds the value of the "asr_json_uri" field.
	AsrJSONURI *string `json:"asr_json_uri,omitempty"`
	// FinalSrtURI holds the value of the "final_srt_uri" field.
	FinalSrtURI *string `json:"final_srt_uri,omitempty"`
	// MaxLines holds the value of the "max_lines" field.
	MaxLines int `json:"max_lines,omitempty"`
	// MaxCharsPerLine holds the value of the "max_chars_per_line" field.
	MaxCharsPerLine int `json:"max_chars_per_line,omitempty"`
	// Stored but not consulted by the pipeline
	TargetCps float64 `json:"target_cps,omitempty"`
	// MinCueMs holds the value of the "min_cue_ms" field.
	MinCueMs int `json:"min_cue_ms,omitempty"`
	// MaxCueMs holds the value of the "max_cue_ms" field.
	MaxCueMs int `json:"max_cue_ms,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel *string `json:"risk_level,omitempty"`
	// DifficultyScore holds the value of the "difficulty_score" field.
	DifficultyScore *int `json:"difficulty_score,omitempty"`
	// StrategistConf holds the value of the "strategist_conf" field.
	StrategistConf *int `json:"strategist_conf,omitempty"`
	// Genre holds the value of the "genre" field.
	Genre *string `json:"genre,omitempty"`
	// Tone holds the value of the "tone" field.
	Tone *string `json:"tone,omitempty"`
	// DomainTags holds the value of the "domain_tags" field.
	DomainTags []string `json:"domain_tags,omitempty"`
	// Persisted so a resumed run can decide the TERMS skip
	NeedsTerminologist *bool `json:"needs_terminologist,omitempty"`
	// Last stage failure; status stays at the failing stage
	ErrorMessage *string `json:"error_message,omitempty"`
	// ClaimedBy holds the value of the "claimed_by" field.
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// For orphan detection
	HeartbeatAt *time.Time `json:"heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobQuery when eager-loading is set.
	Edges        JobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEdges holds the relations/edges for other nodes in the graph.
type JobEdges struct {
	// Cues holds the value of the cues edge.
	Cues []*JobCue `json:"cues,omitempty"`
	// GlossaryTerms holds the value of the glossary_terms edge.
	GlossaryTerms []*JobGlossaryTerm `json:"glossary_terms,omitempty"`
	// LlmRuns holds the value of the llm_runs edge.
	LlmRuns []*LLMRun `json:"llm_runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CuesOrErr returns the Cues value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) CuesOrErr() ([]*JobCue, error) {
	if e.loadedTypes[0] {
		return e.Cues, nil
	}
	return nil, &NotLoadedError{edge: "cues"}
}

// GlossaryTermsOrErr returns the GlossaryTerms value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) GlossaryTermsOrErr() ([]*JobGlossaryTerm, error) {
	if e.loadedTypes[1] {
		return e.GlossaryTerms, nil
	}
	return nil, &NotLoadedError{edge: "glossary_terms"}
}

// LlmRunsOrErr returns the LlmRuns value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) LlmRunsOrErr() ([]*LLMRun, error) {
	if e.loadedTypes[2] {
		return e.LlmRuns, nil
	}
	return nil, &NotLoadedError{edge: "llm_runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldDomainTags:
			values[i] = new([]byte)
		case job.FieldNeedsTerminologist:
			values[i] = new(sql.NullBool)
		case job.FieldTargetCps:
			values[i] = new(sql.NullFloat64)
		case job.FieldMaxLines, job.FieldMaxCharsPerLine, job.FieldMinCueMs, job.FieldMaxCueMs, job.FieldDifficultyScore, job.FieldStrategistConf:
			values[i] = new(sql.NullInt64)
		case job.FieldID, job.FieldSourceLang, job.FieldTargetLang, job.FieldStatus, job.FieldQueueState, job.FieldInputType, job.FieldInputURI, job.FieldNormalizedURI, job.FieldAsrJSONURI, job.FieldFinalSrtURI, job.FieldRiskLevel, job.FieldGenre, job.FieldTone, job.FieldErrorMessage, job.FieldClaimedBy:
			values[i] = new(sql.NullString)
		case job.FieldCreatedAt, job.FieldUpdatedAt, job.FieldHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (_m *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case job.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case job.FieldSourceLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_lang", values[i])
			} else if value.Valid {
				_m.SourceLang = value.String
			}
		case job.FieldTargetLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_lang", values[i])
			} else if value.Valid {
				_m.TargetLang = value.String
			}
		case job.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = job.Status(value.String)
			}
		case job.FieldQueueState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue_state", values[i])
			} else if value.Valid {
				_m.QueueState = job.QueueState(value.String)
			}
		case job.FieldInputType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_type", values[i])
			} else if value.Valid {
				_m.InputType = value.String
			}
		case job.FieldInputURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_uri", values[i])
			} else if value.Valid {
				_m.InputURI = value.String
			}
		case job.FieldNormalizedURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_uri", values[i])
			} else if value.Valid {
				_m.NormalizedURI = new(string)
				*_m.NormalizedURI = value.String
			}
		case job.FieldAsrJSONURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field asr_json_uri", values[i])
			} else if value.Valid {
				_m.AsrJSONURI = new(string)
				*_m.AsrJSONURI = value.String
			}
		case job.FieldFinalSrtURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_srt_uri", values[i])
			} else if value.Valid {
				_m.FinalSrtURI = new(string)
				*_m.FinalSrtURI = value.String
			}
		case job.FieldMaxLines:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_lines", values[i])
			} else if value.Valid {
				_m.MaxLines = int(value.Int64)
			}
		case job.FieldMaxCharsPerLine:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_chars_per_line", values[i])
			} else if value.Valid {
				_m.MaxCharsPerLine = int(value.Int64)
			}
		case job.FieldTargetCps:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field target_cps", values[i])
			} else if value.Valid {
				_m.TargetCps = value.Float64
			}
		case job.FieldMinCueMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_cue_ms", values[i])
			} else if value.Valid {
				_m.MinCueMs = int(value.Int64)
			}
		case job.FieldMaxCueMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_cue_ms", values[i])
			} else if value.Valid {
				_m.MaxCueMs = int(value.Int64)
			}
		case job.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = new(string)
				*_m.RiskLevel = value.String
			}
		case job.FieldDifficultyScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_score", values[i])
			} else if value.Valid {
				_m.DifficultyScore = new(int)
				*_m.DifficultyScore = int(value.Int64)
			}
		case job.FieldStrategistConf:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field strategist_conf", values[i])
			} else if value.Valid {
				_m.StrategistConf = new(int)
				*_m.StrategistConf = int(value.Int64)
			}
		case job.FieldGenre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genre", values[i])
			} else if value.Valid {
				_m.Genre = new(string)
				*_m.Genre = value.String
			}
		case job.FieldTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tone", values[i])
			} else if value.Valid {
				_m.Tone = new(string)
				*_m.Tone = value.String
			}
		case job.FieldDomainTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domain_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainTags); err != nil {
					return fmt.Errorf("unmarshal field domain_tags: %w", err)
				}
			}
		case job.FieldNeedsTerminologist:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_terminologist", values[i])
			} else if value.Valid {
				_m.NeedsTerminologist = new(bool)
				*_m.NeedsTerminologist = value.Bool
			}
		case job.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case job.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case job.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = new(time.Time)
				*_m.HeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (_m *Job) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCues queries the "cues" edge of the Job entity.
func (_m *Job) QueryCues() *JobCueQuery {
	return NewJobClient(_m.config).QueryCues(_m)
}

// QueryGlossaryTerms queries the "glossary_terms" edge of the Job entity.
func (_m *Job) QueryGlossaryTerms() *JobGlossaryTermQuery {
	return NewJobClient(_m.config).QueryGlossaryTerms(_m)
}

// QueryLlmRuns queries the "llm_runs" edge of the Job entity.
func (_m *Job) QueryLlmRuns() *LLMRunQuery {
	return NewJobClient(_m.config).QueryLlmRuns(_m)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Job) Update() *JobUpdateOne {
	return NewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Job) Unwrap() *Job {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_lang=")
	builder.WriteString(_m.SourceLang)
	builder.WriteString(", ")
	builder.WriteString("target_lang=")
	builder.WriteString(_m.TargetLang)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("queue_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueueState))
	builder.WriteString(", ")
	builder.WriteString("input_type=")
	builder.WriteString(_m.InputType)
	builder.WriteString(", ")
	builder.WriteString("input_uri=")
	builder.WriteString(_m.InputURI)
	builder.WriteString(", ")
	if v := _m.NormalizedURI; v != nil {
		builder.WriteString("normalized_uri=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AsrJSONURI; v != nil {
		builder.WriteString("asr_json_uri=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FinalSrtURI; v != nil {
		builder.WriteString("final_srt_uri=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("max_lines=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxLines))
	builder.WriteString(", ")
	builder.WriteString("max_chars_per_line=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxCharsPerLine))
	builder.WriteString(", ")
	builder.WriteString("target_cps=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetCps))
	builder.WriteString(", ")
	builder.WriteString("min_cue_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinCueMs))
	builder.WriteString(", ")
	builder.WriteString("max_cue_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxCueMs))
	builder.WriteString(", ")
	if v := _m.RiskLevel; v != nil {
		builder.WriteString("risk_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DifficultyScore; v != nil {
		builder.WriteString("difficulty_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StrategistConf; v != nil {
		builder.WriteString("strategist_conf=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Genre; v != nil {
		builder.WriteString("genre=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Tone; v != nil {
		builder.WriteString("tone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("domain_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainTags))
	builder.WriteString(", ")
	if v := _m.NeedsTerminologist; v != nil {
		builder.WriteString("needs_terminologist=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HeartbeatAt; v != nil {
		builder.WriteString("heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job
