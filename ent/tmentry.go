// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/subtitle-ai/zirnevis/ent/tmentry"
)

// TMEntry is the model entity for the TMEntry schema.
type TMEntry struct {
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
	// EnText holds the value of the "en_text" field.
	EnText string `json:"en_text,omitempty"`
	// FaText holds the value of the "fa_text" field.
	FaText string `json:"fa_text,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// QualityGrade holds the value of the "quality_grade" field.
	QualityGrade tmentry.QualityGrade `json:"quality_grade,omitempty"`
	// QaScore holds the value of the "qa_score" field.
	QaScore *float64 `json:"qa_score,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *int `json:"confidence,omitempty"`
	// SHA-256 of the normalized English text
	EnHash string `json:"en_hash,omitempty"`
	// DomainTags holds the value of the "domain_tags" field.
	DomainTags []string `json:"domain_tags,omitempty"`
	// 3072 dims exceeds the pgvector ANN index cap; recall is a scan
	Embedding    pgvector.Vector `json:"embedding,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TMEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tmentry.FieldDomainTags:
			values[i] = new([]byte)
		case tmentry.FieldEmbedding:
			values[i] = new(pgvector.Vector)
		case tmentry.FieldQaScore:
			values[i] = new(sql.NullFloat64)
		case tmentry.FieldVersion, tmentry.FieldConfidence:
			values[i] = new(sql.NullInt64)
		case tmentry.FieldID, tmentry.FieldSourceLang, tmentry.FieldTargetLang, tmentry.FieldEnText, tmentry.FieldFaText, tmentry.FieldQualityGrade, tmentry.FieldEnHash:
			values[i] = new(sql.NullString)
		case tmentry.FieldCreatedAt, tmentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TMEntry fields.
func (_m *TMEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tmentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tmentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tmentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tmentry.FieldSourceLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_lang", values[i])
			} else if value.Valid {
				_m.SourceLang = value.String
			}
		case tmentry.FieldTargetLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_lang", values[i])
			} else if value.Valid {
				_m.TargetLang = value.String
			}
		case tmentry.FieldEnText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field en_text", values[i])
			} else if value.Valid {
				_m.EnText = value.String
			}
		case tmentry.FieldFaText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fa_text", values[i])
			} else if value.Valid {
				_m.FaText = value.String
			}
		case tmentry.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case tmentry.FieldQualityGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quality_grade", values[i])
			} else if value.Valid {
				_m.QualityGrade = tmentry.QualityGrade(value.String)
			}
		case tmentry.FieldQaScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field qa_score", values[i])
			} else if value.Valid {
				_m.QaScore = new(float64)
				*_m.QaScore = value.Float64
			}
		case tmentry.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(int)
				*_m.Confidence = int(value.Int64)
			}
		case tmentry.FieldEnHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field en_hash", values[i])
			} else if value.Valid {
				_m.EnHash = value.String
			}
		case tmentry.FieldDomainTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domain_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainTags); err != nil {
					return fmt.Errorf("unmarshal field domain_tags: %w", err)
				}
			}
		case tmentry.FieldEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TMEntry.
// This includes values selected through modifiers, order, etc.
func (_m *TMEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TMEntry.
// Note that you need to call TMEntry.Unwrap() before calling this method if this TMEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TMEntry) Update() *TMEntryUpdateOne {
	return NewTMEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TMEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TMEntry) Unwrap() *TMEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TMEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TMEntry) String() string {
	var builder strings.Builder
	builder.WriteString("TMEntry(")
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
	builder.WriteString("en_text=")
	builder.WriteString(_m.EnText)
	builder.WriteString(", ")
	builder.WriteString("fa_text=")
	builder.WriteString(_m.FaText)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("quality_grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityGrade))
	builder.WriteString(", ")
	if v := _m.QaScore; v != nil {
		builder.WriteString("qa_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("en_hash=")
	builder.WriteString(_m.EnHash)
	builder.WriteString(", ")
	builder.WriteString("domain_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainTags))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteByte(')')
	return builder.String()
}

// TMEntries is a parsable slice of TMEntry.
type TMEntries []*TMEntry
