// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
)

// JobCue is the model entity for the JobCue schema.
type JobCue struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// CueIndex holds the value of the "cue_index" field.
	CueIndex int `json:"cue_index,omitempty"`
	// StartMs holds the value of the "start_ms" field.
	StartMs int `json:"start_ms,omitempty"`
	// EndMs holds the value of the "end_ms" field.
	EndMs int `json:"end_ms,omitempty"`
	// EnText holds the value of the "en_text" field.
	EnText string `json:"en_text,omitempty"`
	// FaText holds the value of the "fa_text" field.
	FaText *string `json:"fa_text,omitempty"`
	// FaTextQa holds the value of the "fa_text_qa" field.
	FaTextQa *string `json:"fa_text_qa,omitempty"`
	// TmReused holds the value of the "tm_reused" field.
	TmReused bool `json:"tm_reused,omitempty"`
	// Non-owning back-reference into the TM
	TmEntryID *string `json:"tm_entry_id,omitempty"`
	// NeedsTranslation holds the value of the "needs_translation" field.
	NeedsTranslation bool `json:"needs_translation,omitempty"`
	// TmConfidence holds the value of the "tm_confidence" field.
	TmConfidence *float64 `json:"tm_confidence,omitempty"`
	// QaScore holds the value of the "qa_score" field.
	QaScore *float64 `json:"qa_score,omitempty"`
	// Issues holds the value of the "issues" field.
	Issues []string `json:"issues,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobCueQuery when eager-loading is set.
	Edges        JobCueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobCueEdges holds the relations/edges for other nodes in the graph.
type JobCueEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// LlmRuns holds the value of the llm_runs edge.
	LlmRuns []*LLMRun `json:"llm_runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobCueEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// LlmRunsOrErr returns the LlmRuns value or an error if the edge
// was not loaded in eager-loading.
func (e JobCueEdges) LlmRunsOrErr() ([]*LLMRun, error) {
	if e.loadedTypes[1] {
		return e.LlmRuns, nil
	}
	return nil, &NotLoadedError{edge: "llm_runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobCue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobcue.FieldIssues:
			values[i] = new([]byte)
		case jobcue.FieldTmReused, jobcue.FieldNeedsTranslation:
			values[i] = new(sql.NullBool)
		case jobcue.FieldTmConfidence, jobcue.FieldQaScore:
			values[i] = new(sql.NullFloat64)
		case jobcue.FieldCueIndex, jobcue.FieldStartMs, jobcue.FieldEndMs:
			values[i] = new(sql.NullInt64)
		case jobcue.FieldID, jobcue.FieldJobID, jobcue.FieldEnText, jobcue.FieldFaText, jobcue.FieldFaTextQa, jobcue.FieldTmEntryID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobCue fields.
func (_m *JobCue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobcue.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case jobcue.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case jobcue.FieldCueIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cue_index", values[i])
			} else if value.Valid {
				_m.CueIndex = int(value.Int64)
			}
		case jobcue.FieldStartMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_ms", values[i])
			} else if value.Valid {
				_m.StartMs = int(value.Int64)
			}
		case jobcue.FieldEndMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_ms", values[i])
			} else if value.Valid {
				_m.EndMs = int(value.Int64)
			}
		case jobcue.FieldEnText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field en_text", values[i])
			} else if value.Valid {
				_m.EnText = value.String
			}
		case jobcue.FieldFaText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fa_text", values[i])
			} else if value.Valid {
				_m.FaText = new(string)
				*_m.FaText = value.String
			}
		case jobcue.FieldFaTextQa:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fa_text_qa", values[i])
			} else if value.Valid {
				_m.FaTextQa = new(string)
				*_m.FaTextQa = value.String
			}
		case jobcue.FieldTmReused:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field tm_reused", values[i])
			} else if value.Valid {
				_m.TmReused = value.Bool
			}
		case jobcue.FieldTmEntryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tm_entry_id", values[i])
			} else if value.Valid {
				_m.TmEntryID = new(string)
				*_m.TmEntryID = value.String
			}
		case jobcue.FieldNeedsTranslation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_translation", values[i])
			} else if value.Valid {
				_m.NeedsTranslation = value.Bool
			}
		case jobcue.FieldTmConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tm_confidence", values[i])
			} else if value.Valid {
				_m.TmConfidence = new(float64)
				*_m.TmConfidence = value.Float64
			}
		case jobcue.FieldQaScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field qa_score", values[i])
			} else if value.Valid {
				_m.QaScore = new(float64)
				*_m.QaScore = value.Float64
			}
		case jobcue.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobCue.
// This includes values selected through modifiers, order, etc.
func (_m *JobCue) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobCue entity.
func (_m *JobCue) QueryJob() *JobQuery {
	return NewJobCueClient(_m.config).QueryJob(_m)
}

// QueryLlmRuns queries the "llm_runs" edge of the JobCue entity.
func (_m *JobCue) QueryLlmRuns() *LLMRunQuery {
	return NewJobCueClient(_m.config).QueryLlmRuns(_m)
}

// Update returns a builder for updating this JobCue.
// Note that you need to call JobCue.Unwrap() before calling this method if this JobCue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobCue) Update() *JobCueUpdateOne {
	return NewJobCueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobCue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobCue) Unwrap() *JobCue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobCue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobCue) String() string {
	var builder strings.Builder
	builder.WriteString("JobCue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("cue_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CueIndex))
	builder.WriteString(", ")
	builder.WriteString("start_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartMs))
	builder.WriteString(", ")
	builder.WriteString("end_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndMs))
	builder.WriteString(", ")
	builder.WriteString("en_text=")
	builder.WriteString(_m.EnText)
	builder.WriteString(", ")
	if v := _m.FaText; v != nil {
		builder.WriteString("fa_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FaTextQa; v != nil {
		builder.WriteString("fa_text_qa=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tm_reused=")
	builder.WriteString(fmt.Sprintf("%v", _m.TmReused))
	builder.WriteString(", ")
	if v := _m.TmEntryID; v != nil {
		builder.WriteString("tm_entry_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("needs_translation=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsTranslation))
	builder.WriteString(", ")
	if v := _m.TmConfidence; v != nil {
		builder.WriteString("tm_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.QaScore; v != nil {
		builder.WriteString("qa_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.Issues))
	builder.WriteByte(')')
	return builder.String()
}

// JobCues is a parsable slice of JobCue.
type JobCues []*JobCue
