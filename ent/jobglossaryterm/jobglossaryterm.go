// Code generated by ent, DO NOT EDIT.

package jobglossaryterm

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the jobglossaryterm type in the database.
	Label = "job_glossary_term"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "term_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldEnTerm holds the string denoting the en_term field in the database.
	FieldEnTerm = "en_term"
	// FieldFaTerm holds the string denoting the fa_term field in the database.
	FieldFaTerm = "fa_term"
	// FieldTermType holds the string denoting the term_type field in the database.
	FieldTermType = "term_type"
	// FieldMandatory holds the string denoting the mandatory field in the database.
	FieldMandatory = "mandatory"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// Table holds the table name of the jobglossaryterm in the database.
	Table = "job_glossary_terms"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_glossary_terms"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for jobglossaryterm fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldEnTerm,
	FieldFaTerm,
	FieldTermType,
	FieldMandatory,
	FieldConfidence,
	FieldNotes,
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
	// EnTermValidator is a validator for the "en_term" field. It is called by the builders before save.
	EnTermValidator func(string) error
	// DefaultMandatory holds the default value on creation for the "mandatory" field.
	DefaultMandatory bool
)

// OrderOption defines the ordering options for the JobGlossaryTerm queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByEnTerm orders the results by the en_term field.
func ByEnTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnTerm, opts...).ToFunc()
}

// ByFaTerm orders the results by the fa_term field.
func ByFaTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFaTerm, opts...).ToFunc()
}

// ByTermType orders the results by the term_type field.
func ByTermType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTermType, opts...).ToFunc()
}

// ByMandatory orders the results by the mandatory field.
func ByMandatory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMandatory, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
