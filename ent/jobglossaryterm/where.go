// Code generated by ent, DO NOT EDIT.

package jobglossaryterm

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldJobID, v))
}

// EnTerm applies equality check predicate on the "en_term" field. It's identical to EnTermEQ.
func EnTerm(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldEnTerm, v))
}

// FaTerm applies equality check predicate on the "fa_term" field. It's identical to FaTermEQ.
func FaTerm(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldFaTerm, v))
}

// TermType applies equality check predicate on the "term_type" field. It's identical to TermTypeEQ.
func TermType(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldTermType, v))
}

// Mandatory applies equality check predicate on the "mandatory" field. It's identical to MandatoryEQ.
func Mandatory(v bool) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldMandatory, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldConfidence, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldNotes, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContainsFold(FieldJobID, v))
}

// EnTermEQ applies the EQ predicate on the "en_term" field.
func EnTermEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldEnTerm, v))
}

// EnTermNEQ applies the NEQ predicate on the "en_term" field.
func EnTermNEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNEQ(FieldEnTerm, v))
}

// EnTermIn applies the In predicate on the "en_term" field.
func EnTermIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIn(FieldEnTerm, vs...))
}

// EnTermNotIn applies the NotIn predicate on the "en_term" field.
func EnTermNotIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotIn(FieldEnTerm, vs...))
}

// EnTermGT applies the GT predicate on the "en_term" field.
func EnTermGT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGT(FieldEnTerm, v))
}

// EnTermGTE applies the GTE predicate on the "en_term" field.
func EnTermGTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGTE(FieldEnTerm, v))
}

// EnTermLT applies the LT predicate on the "en_term" field.
func EnTermLT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLT(FieldEnTerm, v))
}

// EnTermLTE applies the LTE predicate on the "en_term" field.
func EnTermLTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLTE(FieldEnTerm, v))
}

// EnTermContains applies the Contains predicate on the "en_term" field.
func EnTermContains(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContains(FieldEnTerm, v))
}

// EnTermHasPrefix applies the HasPrefix predicate on the "en_term" field.
func EnTermHasPrefix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasPrefix(FieldEnTerm, v))
}

// EnTermHasSuffix applies the HasSuffix predicate on the "en_term" field.
func EnTermHasSuffix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasSuffix(FieldEnTerm, v))
}

// EnTermEqualFold applies the EqualFold predicate on the "en_term" field.
func EnTermEqualFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEqualFold(FieldEnTerm, v))
}

// EnTermContainsFold applies the ContainsFold predicate on the "en_term" field.
func EnTermContainsFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContainsFold(FieldEnTerm, v))
}

// FaTermEQ applies the EQ predicate on the "fa_term" field.
func FaTermEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldFaTerm, v))
}

// FaTermNEQ applies the NEQ predicate on the "fa_term" field.
func FaTermNEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNEQ(FieldFaTerm, v))
}

// FaTermIn applies the In predicate on the "fa_term" field.
func FaTermIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIn(FieldFaTerm, vs...))
}

// FaTermNotIn applies the NotIn predicate on the "fa_term" field.
func FaTermNotIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotIn(FieldFaTerm, vs...))
}

// FaTermGT applies the GT predicate on the "fa_term" field.
func FaTermGT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGT(FieldFaTerm, v))
}

// FaTermGTE applies the GTE predicate on the "fa_term" field.
func FaTermGTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGTE(FieldFaTerm, v))
}

// FaTermLT applies the LT predicate on the "fa_term" field.
func FaTermLT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLT(FieldFaTerm, v))
}

// FaTermLTE applies the LTE predicate on the "fa_term" field.
func FaTermLTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLTE(FieldFaTerm, v))
}

// FaTermContains applies the Contains predicate on the "fa_term" field.
func FaTermContains(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContains(FieldFaTerm, v))
}

// FaTermHasPrefix applies the HasPrefix predicate on the "fa_term" field.
func FaTermHasPrefix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasPrefix(FieldFaTerm, v))
}

// FaTermHasSuffix applies the HasSuffix predicate on the "fa_term" field.
func FaTermHasSuffix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasSuffix(FieldFaTerm, v))
}

// FaTermEqualFold applies the EqualFold predicate on the "fa_term" field.
func FaTermEqualFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEqualFold(FieldFaTerm, v))
}

// FaTermContainsFold applies the ContainsFold predicate on the "fa_term" field.
func FaTermContainsFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContainsFold(FieldFaTerm, v))
}

// TermTypeEQ applies the EQ predicate on the "term_type" field.
func TermTypeEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldTermType, v))
}

// TermTypeNEQ applies the NEQ predicate on the "term_type" field.
func TermTypeNEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNEQ(FieldTermType, v))
}

// TermTypeIn applies the In predicate on the "term_type" field.
func TermTypeIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIn(FieldTermType, vs...))
}

// TermTypeNotIn applies the NotIn predicate on the "term_type" field.
func TermTypeNotIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotIn(FieldTermType, vs...))
}

// TermTypeGT applies the GT predicate on the "term_type" field.
func TermTypeGT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGT(FieldTermType, v))
}

// TermTypeGTE applies the GTE predicate on the "term_type" field.
func TermTypeGTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGTE(FieldTermType, v))
}

// TermTypeLT applies the LT predicate on the "term_type" field.
func TermTypeLT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLT(FieldTermType, v))
}

// TermTypeLTE applies the LTE predicate on the "term_type" field.
func TermTypeLTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLTE(FieldTermType, v))
}

// TermTypeContains applies the Contains predicate on the "term_type" field.
func TermTypeContains(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContains(FieldTermType, v))
}

// TermTypeHasPrefix applies the HasPrefix predicate on the "term_type" field.
func TermTypeHasPrefix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasPrefix(FieldTermType, v))
}

// TermTypeHasSuffix applies the HasSuffix predicate on the "term_type" field.
func TermTypeHasSuffix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasSuffix(FieldTermType, v))
}

// TermTypeIsNil applies the IsNil predicate on the "term_type" field.
func TermTypeIsNil() predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIsNull(FieldTermType))
}

// TermTypeNotNil applies the NotNil predicate on the "term_type" field.
func TermTypeNotNil() predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotNull(FieldTermType))
}

// TermTypeEqualFold applies the EqualFold predicate on the "term_type" field.
func TermTypeEqualFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEqualFold(FieldTermType, v))
}

// TermTypeContainsFold applies the ContainsFold predicate on the "term_type" field.
func TermTypeContainsFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContainsFold(FieldTermType, v))
}

// MandatoryEQ applies the EQ predicate on the "mandatory" field.
func MandatoryEQ(v bool) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldMandatory, v))
}

// MandatoryNEQ applies the NEQ predicate on the "mandatory" field.
func MandatoryNEQ(v bool) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNEQ(FieldMandatory, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotNull(FieldConfidence))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.FieldContainsFold(FieldNotes, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobGlossaryTerm) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobGlossaryTerm) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobGlossaryTerm) predicate.JobGlossaryTerm {
	return predicate.JobGlossaryTerm(sql.NotPredicates(p))
}
