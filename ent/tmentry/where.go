// Code generated by ent, DO NOT EDIT.

package tmentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceLang applies equality check predicate on the "source_lang" field. It's identical to SourceLangEQ.
func SourceLang(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldSourceLang, v))
}

// TargetLang applies equality check predicate on the "target_lang" field. It's identical to TargetLangEQ.
func TargetLang(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldTargetLang, v))
}

// EnText applies equality check predicate on the "en_text" field. It's identical to EnTextEQ.
func EnText(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldEnText, v))
}

// FaText applies equality check predicate on the "fa_text" field. It's identical to FaTextEQ.
func FaText(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldFaText, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldVersion, v))
}

// QaScore applies equality check predicate on the "qa_score" field. It's identical to QaScoreEQ.
func QaScore(v float64) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldQaScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldConfidence, v))
}

// EnHash applies equality check predicate on the "en_hash" field. It's identical to EnHashEQ.
func EnHash(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldEnHash, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v pgvector.Vector) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldEmbedding, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourceLangEQ applies the EQ predicate on the "source_lang" field.
func SourceLangEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldSourceLang, v))
}

// SourceLangNEQ applies the NEQ predicate on the "source_lang" field.
func SourceLangNEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldSourceLang, v))
}

// SourceLangIn applies the In predicate on the "source_lang" field.
func SourceLangIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldSourceLang, vs...))
}

// SourceLangNotIn applies the NotIn predicate on the "source_lang" field.
func SourceLangNotIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldSourceLang, vs...))
}

// SourceLangGT applies the GT predicate on the "source_lang" field.
func SourceLangGT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldSourceLang, v))
}

// SourceLangGTE applies the GTE predicate on the "source_lang" field.
func SourceLangGTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldSourceLang, v))
}

// SourceLangLT applies the LT predicate on the "source_lang" field.
func SourceLangLT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldSourceLang, v))
}

// SourceLangLTE applies the LTE predicate on the "source_lang" field.
func SourceLangLTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldSourceLang, v))
}

// SourceLangContains applies the Contains predicate on the "source_lang" field.
func SourceLangContains(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContains(FieldSourceLang, v))
}

// SourceLangHasPrefix applies the HasPrefix predicate on the "source_lang" field.
func SourceLangHasPrefix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasPrefix(FieldSourceLang, v))
}

// SourceLangHasSuffix applies the HasSuffix predicate on the "source_lang" field.
func SourceLangHasSuffix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasSuffix(FieldSourceLang, v))
}

// SourceLangEqualFold applies the EqualFold predicate on the "source_lang" field.
func SourceLangEqualFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEqualFold(FieldSourceLang, v))
}

// SourceLangContainsFold applies the ContainsFold predicate on the "source_lang" field.
func SourceLangContainsFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContainsFold(FieldSourceLang, v))
}

// TargetLangEQ applies the EQ predicate on the "target_lang" field.
func TargetLangEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldTargetLang, v))
}

// TargetLangNEQ applies the NEQ predicate on the "target_lang" field.
func TargetLangNEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldTargetLang, v))
}

// TargetLangIn applies the In predicate on the "target_lang" field.
func TargetLangIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldTargetLang, vs...))
}

// TargetLangNotIn applies the NotIn predicate on the "target_lang" field.
func TargetLangNotIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldTargetLang, vs...))
}

// TargetLangGT applies the GT predicate on the "target_lang" field.
func TargetLangGT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldTargetLang, v))
}

// TargetLangGTE applies the GTE predicate on the "target_lang" field.
func TargetLangGTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldTargetLang, v))
}

// TargetLangLT applies the LT predicate on the "target_lang" field.
func TargetLangLT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldTargetLang, v))
}

// TargetLangLTE applies the LTE predicate on the "target_lang" field.
func TargetLangLTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldTargetLang, v))
}

// TargetLangContains applies the Contains predicate on the "target_lang" field.
func TargetLangContains(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContains(FieldTargetLang, v))
}

// TargetLangHasPrefix applies the HasPrefix predicate on the "target_lang" field.
func TargetLangHasPrefix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasPrefix(FieldTargetLang, v))
}

// TargetLangHasSuffix applies the HasSuffix predicate on the "target_lang" field.
func TargetLangHasSuffix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasSuffix(FieldTargetLang, v))
}

// TargetLangEqualFold applies the EqualFold predicate on the "target_lang" field.
func TargetLangEqualFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEqualFold(FieldTargetLang, v))
}

// TargetLangContainsFold applies the ContainsFold predicate on the "target_lang" field.
func TargetLangContainsFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContainsFold(FieldTargetLang, v))
}

// EnTextEQ applies the EQ predicate on the "en_text" field.
func EnTextEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldEnText, v))
}

// EnTextNEQ applies the NEQ predicate on the "en_text" field.
func EnTextNEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldEnText, v))
}

// EnTextIn applies the In predicate on the "en_text" field.
func EnTextIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldEnText, vs...))
}

// EnTextNotIn applies the NotIn predicate on the "en_text" field.
func EnTextNotIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldEnText, vs...))
}

// EnTextGT applies the GT predicate on the "en_text" field.
func EnTextGT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldEnText, v))
}

// EnTextGTE applies the GTE predicate on the "en_text" field.
func EnTextGTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldEnText, v))
}

// EnTextLT applies the LT predicate on the "en_text" field.
func EnTextLT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldEnText, v))
}

// EnTextLTE applies the LTE predicate on the "en_text" field.
func EnTextLTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldEnText, v))
}

// EnTextContains applies the Contains predicate on the "en_text" field.
func EnTextContains(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContains(FieldEnText, v))
}

// EnTextHasPrefix applies the HasPrefix predicate on the "en_text" field.
func EnTextHasPrefix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasPrefix(FieldEnText, v))
}

// EnTextHasSuffix applies the HasSuffix predicate on the "en_text" field.
func EnTextHasSuffix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasSuffix(FieldEnText, v))
}

// EnTextEqualFold applies the EqualFold predicate on the "en_text" field.
func EnTextEqualFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEqualFold(FieldEnText, v))
}

// EnTextContainsFold applies the ContainsFold predicate on the "en_text" field.
func EnTextContainsFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContainsFold(FieldEnText, v))
}

// FaTextEQ applies the EQ predicate on the "fa_text" field.
func FaTextEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldFaText, v))
}

// FaTextNEQ applies the NEQ predicate on the "fa_text" field.
func FaTextNEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldFaText, v))
}

// FaTextIn applies the In predicate on the "fa_text" field.
func FaTextIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldFaText, vs...))
}

// FaTextNotIn applies the NotIn predicate on the "fa_text" field.
func FaTextNotIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldFaText, vs...))
}

// FaTextGT applies the GT predicate on the "fa_text" field.
func FaTextGT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldFaText, v))
}

// FaTextGTE applies the GTE predicate on the "fa_text" field.
func FaTextGTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldFaText, v))
}

// FaTextLT applies the LT predicate on the "fa_text" field.
func FaTextLT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldFaText, v))
}

// FaTextLTE applies the LTE predicate on the "fa_text" field.
func FaTextLTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldFaText, v))
}

// FaTextContains applies the Contains predicate on the "fa_text" field.
func FaTextContains(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContains(FieldFaText, v))
}

// FaTextHasPrefix applies the HasPrefix predicate on the "fa_text" field.
func FaTextHasPrefix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasPrefix(FieldFaText, v))
}

// FaTextHasSuffix applies the HasSuffix predicate on the "fa_text" field.
func FaTextHasSuffix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasSuffix(FieldFaText, v))
}

// FaTextEqualFold applies the EqualFold predicate on the "fa_text" field.
func FaTextEqualFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEqualFold(FieldFaText, v))
}

// FaTextContainsFold applies the ContainsFold predicate on the "fa_text" field.
func FaTextContainsFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContainsFold(FieldFaText, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldVersion, v))
}

// QualityGradeEQ applies the EQ predicate on the "quality_grade" field.
func QualityGradeEQ(v QualityGrade) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldQualityGrade, v))
}

// QualityGradeNEQ applies the NEQ predicate on the "quality_grade" field.
func QualityGradeNEQ(v QualityGrade) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldQualityGrade, v))
}

// QualityGradeIn applies the In predicate on the "quality_grade" field.
func QualityGradeIn(vs ...QualityGrade) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldQualityGrade, vs...))
}

// QualityGradeNotIn applies the NotIn predicate on the "quality_grade" field.
func QualityGradeNotIn(vs ...QualityGrade) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldQualityGrade, vs...))
}

// QaScoreEQ applies the EQ predicate on the "qa_score" field.
func QaScoreEQ(v float64) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldQaScore, v))
}

// QaScoreNEQ applies the NEQ predicate on the "qa_score" field.
func QaScoreNEQ(v float64) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldQaScore, v))
}

// QaScoreIn applies the In predicate on the "qa_score" field.
func QaScoreIn(vs ...float64) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldQaScore, vs...))
}

// QaScoreNotIn applies the NotIn predicate on the "qa_score" field.
func QaScoreNotIn(vs ...float64) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldQaScore, vs...))
}

// QaScoreGT applies the GT predicate on the "qa_score" field.
func QaScoreGT(v float64) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldQaScore, v))
}

// QaScoreGTE applies the GTE predicate on the "qa_score" field.
func QaScoreGTE(v float64) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldQaScore, v))
}

// QaScoreLT applies the LT predicate on the "qa_score" field.
func QaScoreLT(v float64) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldQaScore, v))
}

// QaScoreLTE applies the LTE predicate on the "qa_score" field.
func QaScoreLTE(v float64) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldQaScore, v))
}

// QaScoreIsNil applies the IsNil predicate on the "qa_score" field.
func QaScoreIsNil() predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIsNull(FieldQaScore))
}

// QaScoreNotNil applies the NotNil predicate on the "qa_score" field.
func QaScoreNotNil() predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotNull(FieldQaScore))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotNull(FieldConfidence))
}

// EnHashEQ applies the EQ predicate on the "en_hash" field.
func EnHashEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldEnHash, v))
}

// EnHashNEQ applies the NEQ predicate on the "en_hash" field.
func EnHashNEQ(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldEnHash, v))
}

// EnHashIn applies the In predicate on the "en_hash" field.
func EnHashIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldEnHash, vs...))
}

// EnHashNotIn applies the NotIn predicate on the "en_hash" field.
func EnHashNotIn(vs ...string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldEnHash, vs...))
}

// EnHashGT applies the GT predicate on the "en_hash" field.
func EnHashGT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldEnHash, v))
}

// EnHashGTE applies the GTE predicate on the "en_hash" field.
func EnHashGTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldEnHash, v))
}

// EnHashLT applies the LT predicate on the "en_hash" field.
func EnHashLT(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldEnHash, v))
}

// EnHashLTE applies the LTE predicate on the "en_hash" field.
func EnHashLTE(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldEnHash, v))
}

// EnHashContains applies the Contains predicate on the "en_hash" field.
func EnHashContains(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContains(FieldEnHash, v))
}

// EnHashHasPrefix applies the HasPrefix predicate on the "en_hash" field.
func EnHashHasPrefix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasPrefix(FieldEnHash, v))
}

// EnHashHasSuffix applies the HasSuffix predicate on the "en_hash" field.
func EnHashHasSuffix(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldHasSuffix(FieldEnHash, v))
}

// EnHashEqualFold applies the EqualFold predicate on the "en_hash" field.
func EnHashEqualFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEqualFold(FieldEnHash, v))
}

// EnHashContainsFold applies the ContainsFold predicate on the "en_hash" field.
func EnHashContainsFold(v string) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldContainsFold(FieldEnHash, v))
}

// DomainTagsIsNil applies the IsNil predicate on the "domain_tags" field.
func DomainTagsIsNil() predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIsNull(FieldDomainTags))
}

// DomainTagsNotNil applies the NotNil predicate on the "domain_tags" field.
func DomainTagsNotNil() predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotNull(FieldDomainTags))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v pgvector.Vector) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v pgvector.Vector) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...pgvector.Vector) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...pgvector.Vector) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v pgvector.Vector) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v pgvector.Vector) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v pgvector.Vector) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v pgvector.Vector) predicate.TMEntry {
	return predicate.TMEntry(sql.FieldLTE(FieldEmbedding, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.TMEntry {
	return predicate.TMEntry(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.TMEntry {
	return predicate.TMEntry(sql.FieldNotNull(FieldEmbedding))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TMEntry) predicate.TMEntry {
	return predicate.TMEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TMEntry) predicate.TMEntry {
	return predicate.TMEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TMEntry) predicate.TMEntry {
	return predicate.TMEntry(sql.NotPredicates(p))
}
