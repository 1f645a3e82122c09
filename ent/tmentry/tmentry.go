// Code generated by ent, DO NOT EDIT.

package tmentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tmentry type in the database.
	Label = "tm_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tm_entry_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourceLang holds the string denoting the source_lang field in the database.
	FieldSourceLang = "source_lang"
	// FieldTargetLang holds the string denoting the target_lang field in the database.
	FieldTargetLang = "target_lang"
	// FieldEnText holds the string denoting the en_text field in the database.
	FieldEnText = "en_text"
	// FieldFaText holds the string denoting the fa_text field in the database.
	FieldFaText = "fa_text"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldQualityGrade holds the string denoting the quality_grade field in the database.
	FieldQualityGrade = "quality_grade"
	// FieldQaScore holds the string denoting the qa_score field in the database.
	FieldQaScore = "qa_score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEnHash holds the string denoting the en_hash field in the database.
	FieldEnHash = "en_hash"
	// FieldDomainTags holds the string denoting the domain_tags field in the database.
	FieldDomainTags = "domain_tags"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// Table holds the table name of the tmentry in the database.
	Table = "tm_entries"
)

// Columns holds all SQL columns for tmentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourceLang,
	FieldTargetLang,
	FieldEnText,
	FieldFaText,
	FieldVersion,
	FieldQualityGrade,
	FieldQaScore,
	FieldConfidence,
	FieldEnHash,
	FieldDomainTags,
	FieldEmbedding,
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
	// EnTextValidator is a validator for the "en_text" field. It is called by the builders before save.
	EnTextValidator func(string) error
	// FaTextValidator is a validator for the "fa_text" field. It is called by the builders before save.
	FaTextValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// EnHashValidator is a validator for the "en_hash" field. It is called by the builders before save.
	EnHashValidator func(string) error
)

// QualityGrade defines the type for the "quality_grade" enum field.
type QualityGrade string

// QualityGradeCandidate is the default value of the QualityGrade enum.
const DefaultQualityGrade = QualityGradeCandidate

// QualityGrade values.
const (
	QualityGradeCandidate QualityGrade = "candidate"
	QualityGradeTrusted   QualityGrade = "trusted"
)

func (qg QualityGrade) String() string {
	return string(qg)
}

// QualityGradeValidator is a validator for the "quality_grade" field enum values. It is called by the builders before save.
func QualityGradeValidator(qg QualityGrade) error {
	switch qg {
	case QualityGradeCandidate, QualityGradeTrusted:
		return nil
	default:
		return fmt.Errorf("tmentry: invalid enum value for quality_grade field: %q", qg)
	}
}

// OrderOption defines the ordering options for the TMEntry queries.
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

// ByEnText orders the results by the en_text field.
func ByEnText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnText, opts...).ToFunc()
}

// ByFaText orders the results by the fa_text field.
func ByFaText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFaText, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByQualityGrade orders the results by the quality_grade field.
func ByQualityGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityGrade, opts...).ToFunc()
}

// ByQaScore orders the results by the qa_score field.
func ByQaScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQaScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByEnHash orders the results by the en_hash field.
func ByEnHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnHash, opts...).ToFunc()
}

// ByEmbedding orders the results by the embedding field.
func ByEmbedding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbedding, opts...).ToFunc()
}
