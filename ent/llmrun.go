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
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
)

// LLMRun is the model entity for the LLMRun schema.
type LLMRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID *string `json:"job_id,omitempty"`
	// CueID holds the value of the "cue_id" field.
	CueID *string `json:"cue_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// Last attempted model
	Model string `json:"model,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider *string `json:"provider,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens *int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens *int `json:"completion_tokens,omitempty"`
	// Schema slot only; cost accounting is out of scope
	CostUsd *float64 `json:"cost_usd,omitempty"`
	// Status holds the value of the "status" field.
	Status llmrun.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// InputSha holds the value of the "input_sha" field.
	InputSha *string `json:"input_sha,omitempty"`
	// OutputSha holds the value of the "output_sha" field.
	OutputSha *string `json:"output_sha,omitempty"`
	// Meta holds the value of the "meta" field.
	Meta map[string]interface{} `json:"meta,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LLMRunQuery when eager-loading is set.
	Edges        LLMRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LLMRunEdges holds the relations/edges for other nodes in the graph.
type LLMRunEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// Cue holds the value of the cue edge.
	Cue *JobCue `json:"cue,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LLMRunEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// CueOrErr returns the Cue value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LLMRunEdges) CueOrErr() (*JobCue, error) {
	if e.Cue != nil {
		return e.Cue, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: jobcue.Label}
	}
	return nil, &NotLoadedError{edge: "cue"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmrun.FieldMeta:
			values[i] = new([]byte)
		case llmrun.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case llmrun.FieldPromptTokens, llmrun.FieldCompletionTokens:
			values[i] = new(sql.NullInt64)
		case llmrun.FieldID, llmrun.FieldJobID, llmrun.FieldCueID, llmrun.FieldAgentName, llmrun.FieldModel, llmrun.FieldProvider, llmrun.FieldStatus, llmrun.FieldErrorMessage, llmrun.FieldInputSha, llmrun.FieldOutputSha:
			values[i] = new(sql.NullString)
		case llmrun.FieldStartedAt, llmrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMRun fields.
func (_m *LLMRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llmrun.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(string)
				*_m.JobID = value.String
			}
		case llmrun.FieldCueID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cue_id", values[i])
			} else if value.Valid {
				_m.CueID = new(string)
				*_m.CueID = value.String
			}
		case llmrun.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case llmrun.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case llmrun.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = new(string)
				*_m.Provider = value.String
			}
		case llmrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case llmrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case llmrun.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = new(int)
				*_m.PromptTokens = int(value.Int64)
			}
		case llmrun.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = new(int)
				*_m.CompletionTokens = int(value.Int64)
			}
		case llmrun.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = new(float64)
				*_m.CostUsd = value.Float64
			}
		case llmrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = llmrun.Status(value.String)
			}
		case llmrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case llmrun.FieldInputSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_sha", values[i])
			} else if value.Valid {
				_m.InputSha = new(string)
				*_m.InputSha = value.String
			}
		case llmrun.FieldOutputSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_sha", values[i])
			} else if value.Valid {
				_m.OutputSha = new(string)
				*_m.OutputSha = value.String
			}
		case llmrun.FieldMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meta); err != nil {
					return fmt.Errorf("unmarshal field meta: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMRun.
// This includes values selected through modifiers, order, etc.
func (_m *LLMRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the LLMRun entity.
func (_m *LLMRun) QueryJob() *JobQuery {
	return NewLLMRunClient(_m.config).QueryJob(_m)
}

// QueryCue queries the "cue" edge of the LLMRun entity.
func (_m *LLMRun) QueryCue() *JobCueQuery {
	return NewLLMRunClient(_m.config).QueryCue(_m)
}

// Update returns a builder for updating this LLMRun.
// Note that you need to call LLMRun.Unwrap() before calling this method if this LLMRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMRun) Update() *LLMRunUpdateOne {
	return NewLLMRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMRun) Unwrap() *LLMRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMRun) String() string {
	var builder strings.Builder
	builder.WriteString("LLMRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CueID; v != nil {
		builder.WriteString("cue_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	if v := _m.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PromptTokens; v != nil {
		builder.WriteString("prompt_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletionTokens; v != nil {
		builder.WriteString("completion_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CostUsd; v != nil {
		builder.WriteString("cost_usd=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InputSha; v != nil {
		builder.WriteString("input_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OutputSha; v != nil {
		builder.WriteString("output_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meta))
	builder.WriteByte(')')
	return builder.String()
}

// LLMRuns is a parsable slice of LLMRun.
type LLMRuns []*LLMRun
