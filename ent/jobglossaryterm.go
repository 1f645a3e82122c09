// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
)

// JobGlossaryTerm is the model entity for the JobGlossaryTerm schema.
type JobGlossaryTerm struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// EnTerm holds the value of the "en_term" field.
	EnTerm string `json:"en_term,omitempty"`
	// FaTerm holds the value of the "fa_term" field.
	FaTerm string `json:"fa_term,omitempty"`
	// jargon|product|acronym|name|other
	TermType *string `json:"term_type,omitempty"`
	// Mandatory holds the value of the "mandatory" field.
	Mandatory bool `json:"mandatory,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *int `json:"confidence,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobGlossaryTermQuery when eager-loading is set.
	Edges        JobGlossaryTermEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobGlossaryTermEdges holds the relations/edges for other nodes in the graph.
type JobGlossaryTermEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobGlossaryTermEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobGlossaryTerm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobglossaryterm.FieldMandatory:
			values[i] = new(sql.NullBool)
		case jobglossaryterm.FieldConfidence:
			values[i] = new(sql.NullInt64)
		case jobglossaryterm.FieldID, jobglossaryterm.FieldJobID, jobglossaryterm.FieldEnTerm, jobglossaryterm.FieldFaTerm, jobglossaryterm.FieldTermType, jobglossaryterm.FieldNotes:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobGlossaryTerm fields.
func (_m *JobGlossaryTerm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobglossaryterm.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case jobglossaryterm.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case jobglossaryterm.FieldEnTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field en_term", values[i])
			} else if value.Valid {
				_m.EnTerm = value.String
			}
		case jobglossaryterm.FieldFaTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fa_term", values[i])
			} else if value.Valid {
				_m.FaTerm = value.String
			}
		case jobglossaryterm.FieldTermType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term_type", values[i])
			} else if value.Valid {
				_m.TermType = new(string)
				*_m.TermType = value.String
			}
		case jobglossaryterm.FieldMandatory:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mandatory", values[i])
			} else if value.Valid {
				_m.Mandatory = value.Bool
			}
		case jobglossaryterm.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(int)
				*_m.Confidence = int(value.Int64)
			}
		case jobglossaryterm.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobGlossaryTerm.
// This includes values selected through modifiers, order, etc.
func (_m *JobGlossaryTerm) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobGlossaryTerm entity.
func (_m *JobGlossaryTerm) QueryJob() *JobQuery {
	return NewJobGlossaryTermClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobGlossaryTerm.
// Note that you need to call JobGlossaryTerm.Unwrap() before calling this method if this JobGlossaryTerm
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobGlossaryTerm) Update() *JobGlossaryTermUpdateOne {
	return NewJobGlossaryTermClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobGlossaryTerm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobGlossaryTerm) Unwrap() *JobGlossaryTerm {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobGlossaryTerm is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobGlossaryTerm) String() string {
	var builder strings.Builder
	builder.WriteString("JobGlossaryTerm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("en_term=")
	builder.WriteString(_m.EnTerm)
	builder.WriteString(", ")
	builder.WriteString("fa_term=")
	builder.WriteString(_m.FaTerm)
	builder.WriteString(", ")
	if v := _m.TermType; v != nil {
		builder.WriteString("term_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("mandatory=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mandatory))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// JobGlossaryTerms is a parsable slice of JobGlossaryTerm.
type JobGlossaryTerms []*JobGlossaryTerm
