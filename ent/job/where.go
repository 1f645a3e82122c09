// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceLang applies equality check predicate on the "source_lang" field. It's identical to SourceLangEQ.
func SourceLang(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSourceLang, v))
}

// TargetLang applies equality check predicate on the "target_lang" field. It's identical to TargetLangEQ.
func TargetLang(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetLang, v))
}

// InputType applies equality check predicate on the "input_type" field. It's identical to InputTypeEQ.
func InputType(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldInputType, v))
}

// InputURI applies equality check predicate on the "input_uri" field. It's identical to InputURIEQ.
func InputURI(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldInputURI, v))
}

// NormalizedURI applies equality check predicate on the "normalized_uri" field. It's identical to NormalizedURIEQ.
func NormalizedURI(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldNormalizedURI, v))
}

// AsrJSONURI applies equality check predicate on the "asr_json_uri" field. It's identical to AsrJSONURIEQ.
func AsrJSONURI(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAsrJSONURI, v))
}

// FinalSrtURI applies equality check predicate on the "final_srt_uri" field. It's identical to FinalSrtURIEQ.
func FinalSrtURI(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFinalSrtURI, v))
}

// MaxLines applies equality check predicate on the "max_lines" field. It's identical to MaxLinesEQ.
func MaxLines(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxLines, v))
}

// MaxCharsPerLine applies equality check predicate on the "max_chars_per_line" field. It's identical to MaxCharsPerLineEQ.
func MaxCharsPerLine(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxCharsPerLine, v))
}

// TargetCps applies equality check predicate on the "target_cps" field. It's identical to TargetCpsEQ.
func TargetCps(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetCps, v))
}

// MinCueMs applies equality check predicate on the "min_cue_ms" field. It's identical to MinCueMsEQ.
func MinCueMs(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMinCueMs, v))
}

// MaxCueMs applies equality check predicate on the "max_cue_ms" field. It's identical to MaxCueMsEQ.
func MaxCueMs(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxCueMs, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRiskLevel, v))
}

// DifficultyScore applies equality check predicate on the "difficulty_score" field. It's identical to DifficultyScoreEQ.
func DifficultyScore(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDifficultyScore, v))
}

// StrategistConf applies equality check predicate on the "strategist_conf" field. It's identical to StrategistConfEQ.
func StrategistConf(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStrategistConf, v))
}

// Genre applies equality check predicate on the "genre" field. It's identical to GenreEQ.
func Genre(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldGenre, v))
}

// Tone applies equality check predicate on the "tone" field. It's identical to ToneEQ.
func Tone(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTone, v))
}

// NeedsTerminologist applies equality check predicate on the "needs_terminologist" field. It's identical to NeedsTerminologistEQ.
func NeedsTerminologist(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldNeedsTerminologist, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClaimedBy, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldHeartbeatAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourceLangEQ applies the EQ predicate on the "source_lang" field.
func SourceLangEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSourceLang, v))
}

// SourceLangNEQ applies the NEQ predicate on the "source_lang" field.
func SourceLangNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSourceLang, v))
}

// SourceLangIn applies the In predicate on the "source_lang" field.
func SourceLangIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSourceLang, vs...))
}

// SourceLangNotIn applies the NotIn predicate on the "source_lang" field.
func SourceLangNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSourceLang, vs...))
}

// SourceLangGT applies the GT predicate on the "source_lang" field.
func SourceLangGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSourceLang, v))
}

// SourceLangGTE applies the GTE predicate on the "source_lang" field.
func SourceLangGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSourceLang, v))
}

// SourceLangLT applies the LT predicate on the "source_lang" field.
func SourceLangLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSourceLang, v))
}

// SourceLangLTE applies the LTE predicate on the "source_lang" field.
func SourceLangLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSourceLang, v))
}

// SourceLangContains applies the Contains predicate on the "source_lang" field.
func SourceLangContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSourceLang, v))
}

// SourceLangHasPrefix applies the HasPrefix predicate on the "source_lang" field.
func SourceLangHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSourceLang, v))
}

// SourceLangHasSuffix applies the HasSuffix predicate on the "source_lang" field.
func SourceLangHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSourceLang, v))
}

// SourceLangEqualFold applies the EqualFold predicate on the "source_lang" field.
func SourceLangEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSourceLang, v))
}

// SourceLangContainsFold applies the ContainsFold predicate on the "source_lang" field.
func SourceLangContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSourceLang, v))
}

// TargetLangEQ applies the EQ predicate on the "target_lang" field.
func TargetLangEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetLang, v))
}

// TargetLangNEQ applies the NEQ predicate on the "target_lang" field.
func TargetLangNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTargetLang, v))
}

// TargetLangIn applies the In predicate on the "target_lang" field.
func TargetLangIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTargetLang, vs...))
}

// TargetLangNotIn applies the NotIn predicate on the "target_lang" field.
func TargetLangNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTargetLang, vs...))
}

// TargetLangGT applies the GT predicate on the "target_lang" field.
func TargetLangGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTargetLang, v))
}

// TargetLangGTE applies the GTE predicate on the "target_lang" field.
func TargetLangGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTargetLang, v))
}

// TargetLangLT applies the LT predicate on the "target_lang" field.
func TargetLangLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTargetLang, v))
}

// TargetLangLTE applies the LTE predicate on the "target_lang" field.
func TargetLangLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTargetLang, v))
}

// TargetLangContains applies the Contains predicate on the "target_lang" field.
func TargetLangContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTargetLang, v))
}

// TargetLangHasPrefix applies the HasPrefix predicate on the "target_lang" field.
func TargetLangHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTargetLang, v))
}

// TargetLangHasSuffix applies the HasSuffix predicate on the "target_lang" field.
func TargetLangHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTargetLang, v))
}

// TargetLangEqualFold applies the EqualFold predicate on the "target_lang" field.
func TargetLangEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTargetLang, v))
}

// TargetLangContainsFold applies the ContainsFold predicate on the "target_lang" field.
func TargetLangContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTargetLang, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// QueueStateEQ applies the EQ predicate on the "queue_state" field.
func QueueStateEQ(v QueueState) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldQueueState, v))
}

// QueueStateNEQ applies the NEQ predicate on the "queue_state" field.
func QueueStateNEQ(v QueueState) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldQueueState, v))
}

// QueueStateIn applies the In predicate on the "queue_state" field.
func QueueStateIn(vs ...QueueState) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldQueueState, vs...))
}

// QueueStateNotIn applies the NotIn predicate on the "queue_state" field.
func QueueStateNotIn(vs ...QueueState) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldQueueState, vs...))
}

// InputTypeEQ applies the EQ predicate on the "input_type" field.
func InputTypeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldInputType, v))
}

// InputTypeNEQ applies the NEQ predicate on the "input_type" field.
func InputTypeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldInputType, v))
}

// InputTypeIn applies the In predicate on the "input_type" field.
func InputTypeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldInputType, vs...))
}

// InputTypeNotIn applies the NotIn predicate on the "input_type" field.
func InputTypeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldInputType, vs...))
}

// InputTypeGT applies the GT predicate on the "input_type" field.
func InputTypeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldInputType, v))
}

// InputTypeGTE applies the GTE predicate on the "input_type" field.
func InputTypeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldInputType, v))
}

// InputTypeLT applies the LT predicate on the "input_type" field.
func InputTypeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldInputType, v))
}

// InputTypeLTE applies the LTE predicate on the "input_type" field.
func InputTypeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldInputType, v))
}

// InputTypeContains applies the Contains predicate on the "input_type" field.
func InputTypeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldInputType, v))
}

// InputTypeHasPrefix applies the HasPrefix predicate on the "input_type" field.
func InputTypeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldInputType, v))
}

// InputTypeHasSuffix applies the HasSuffix predicate on the "input_type" field.
func InputTypeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldInputType, v))
}

// InputTypeEqualFold applies the EqualFold predicate on the "input_type" field.
func InputTypeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldInputType, v))
}

// InputTypeContainsFold applies the ContainsFold predicate on the "input_type" field.
func InputTypeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldInputType, v))
}

// InputURIEQ applies the EQ predicate on the "input_uri" field.
func InputURIEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldInputURI, v))
}

// InputURINEQ applies the NEQ predicate on the "input_uri" field.
func InputURINEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldInputURI, v))
}

// InputURIIn applies the In predicate on the "input_uri" field.
func InputURIIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldInputURI, vs...))
}

// InputURINotIn applies the NotIn predicate on the "input_uri" field.
func InputURINotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldInputURI, vs...))
}

// InputURIGT applies the GT predicate on the "input_uri" field.
func InputURIGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldInputURI, v))
}

// InputURIGTE applies the GTE predicate on the "input_uri" field.
func InputURIGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldInputURI, v))
}

// InputURILT applies the LT predicate on the "input_uri" field.
func InputURILT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldInputURI, v))
}

// InputURILTE applies the LTE predicate on the "input_uri" field.
func InputURILTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldInputURI, v))
}

// InputURIContains applies the Contains predicate on the "input_uri" field.
func InputURIContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldInputURI, v))
}

// InputURIHasPrefix applies the HasPrefix predicate on the "input_uri" field.
func InputURIHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldInputURI, v))
}

// InputURIHasSuffix applies the HasSuffix predicate on the "input_uri" field.
func InputURIHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldInputURI, v))
}

// InputURIEqualFold applies the EqualFold predicate on the "input_uri" field.
func InputURIEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldInputURI, v))
}

// InputURIContainsFold applies the ContainsFold predicate on the "input_uri" field.
func InputURIContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldInputURI, v))
}

// NormalizedURIEQ applies the EQ predicate on the "normalized_uri" field.
func NormalizedURIEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldNormalizedURI, v))
}

// NormalizedURINEQ applies the NEQ predicate on the "normalized_uri" field.
func NormalizedURINEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldNormalizedURI, v))
}

// NormalizedURIIn applies the In predicate on the "normalized_uri" field.
func NormalizedURIIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldNormalizedURI, vs...))
}

// NormalizedURINotIn applies the NotIn predicate on the "normalized_uri" field.
func NormalizedURINotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldNormalizedURI, vs...))
}

// NormalizedURIGT applies the GT predicate on the "normalized_uri" field.
func NormalizedURIGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldNormalizedURI, v))
}

// NormalizedURIGTE applies the GTE predicate on the "normalized_uri" field.
func NormalizedURIGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldNormalizedURI, v))
}

// NormalizedURILT applies the LT predicate on the "normalized_uri" field.
func NormalizedURILT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldNormalizedURI, v))
}

// NormalizedURILTE applies the LTE predicate on the "normalized_uri" field.
func NormalizedURILTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldNormalizedURI, v))
}

// NormalizedURIContains applies the Contains predicate on the "normalized_uri" field.
func NormalizedURIContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldNormalizedURI, v))
}

// NormalizedURIHasPrefix applies the HasPrefix predicate on the "normalized_uri" field.
func NormalizedURIHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldNormalizedURI, v))
}

// NormalizedURIHasSuffix applies the HasSuffix predicate on the "normalized_uri" field.
func NormalizedURIHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldNormalizedURI, v))
}

// NormalizedURIIsNil applies the IsNil predicate on the "normalized_uri" field.
func NormalizedURIIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldNormalizedURI))
}

// NormalizedURINotNil applies the NotNil predicate on the "normalized_uri" field.
func NormalizedURINotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldNormalizedURI))
}

// NormalizedURIEqualFold applies the EqualFold predicate on the "normalized_uri" field.
func NormalizedURIEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldNormalizedURI, v))
}

// NormalizedURIContainsFold applies the ContainsFold predicate on the "normalized_uri" field.
func NormalizedURIContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldNormalizedURI, v))
}

// AsrJSONURIEQ applies the EQ predicate on the "asr_json_uri" field.
func AsrJSONURIEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAsrJSONURI, v))
}

// AsrJSONURINEQ applies the NEQ predicate on the "asr_json_uri" field.
func AsrJSONURINEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAsrJSONURI, v))
}

// AsrJSONURIIn applies the In predicate on the "asr_json_uri" field.
func AsrJSONURIIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAsrJSONURI, vs...))
}

// AsrJSONURINotIn applies the NotIn predicate on the "asr_json_uri" field.
func AsrJSONURINotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAsrJSONURI, vs...))
}

// AsrJSONURIGT applies the GT predicate on the "asr_json_uri" field.
func AsrJSONURIGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAsrJSONURI, v))
}

// AsrJSONURIGTE applies the GTE predicate on the "asr_json_uri" field.
func AsrJSONURIGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAsrJSONURI, v))
}

// AsrJSONURILT applies the LT predicate on the "asr_json_uri" field.
func AsrJSONURILT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAsrJSONURI, v))
}

// AsrJSONURILTE applies the LTE predicate on the "asr_json_uri" field.
func AsrJSONURILTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAsrJSONURI, v))
}

// AsrJSONURIContains applies the Contains predicate on the "asr_json_uri" field.
func AsrJSONURIContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldAsrJSONURI, v))
}

// AsrJSONURIHasPrefix applies the HasPrefix predicate on the "asr_json_uri" field.
func AsrJSONURIHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldAsrJSONURI, v))
}

// AsrJSONURIHasSuffix applies the HasSuffix predicate on the "asr_json_uri" field.
func AsrJSONURIHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldAsrJSONURI, v))
}

// AsrJSONURIIsNil applies the IsNil predicate on the "asr_json_uri" field.
func AsrJSONURIIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldAsrJSONURI))
}

// AsrJSONURINotNil applies the NotNil predicate on the "asr_json_uri" field.
func AsrJSONURINotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldAsrJSONURI))
}

// AsrJSONURIEqualFold applies the EqualFold predicate on the "asr_json_uri" field.
func AsrJSONURIEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldAsrJSONURI, v))
}

// AsrJSONURIContainsFold applies the ContainsFold predicate on the "asr_json_uri" field.
func AsrJSONURIContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldAsrJSONURI, v))
}

// FinalSrtURIEQ applies the EQ predicate on the "final_srt_uri" field.
func FinalSrtURIEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFinalSrtURI, v))
}

// FinalSrtURINEQ applies the NEQ predicate on the "final_srt_uri" field.
func FinalSrtURINEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFinalSrtURI, v))
}

// FinalSrtURIIn applies the In predicate on the "final_srt_uri" field.
func FinalSrtURIIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFinalSrtURI, vs...))
}

// FinalSrtURINotIn applies the NotIn predicate on the "final_srt_uri" field.
func FinalSrtURINotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFinalSrtURI, vs...))
}

// FinalSrtURIGT applies the GT predicate on the "final_srt_uri" field.
func FinalSrtURIGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFinalSrtURI, v))
}

// FinalSrtURIGTE applies the GTE predicate on the "final_srt_uri" field.
func FinalSrtURIGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFinalSrtURI, v))
}

// FinalSrtURILT applies the LT predicate on the "final_srt_uri" field.
func FinalSrtURILT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFinalSrtURI, v))
}

// FinalSrtURILTE applies the LTE predicate on the "final_srt_uri" field.
func FinalSrtURILTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFinalSrtURI, v))
}

// FinalSrtURIContains applies the Contains predicate on the "final_srt_uri" field.
func FinalSrtURIContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldFinalSrtURI, v))
}

// FinalSrtURIHasPrefix applies the HasPrefix predicate on the "final_srt_uri" field.
func FinalSrtURIHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldFinalSrtURI, v))
}

// FinalSrtURIHasSuffix applies the HasSuffix predicate on the "final_srt_uri" field.
func FinalSrtURIHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldFinalSrtURI, v))
}

// FinalSrtURIIsNil applies the IsNil predicate on the "final_srt_uri" field.
func FinalSrtURIIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldFinalSrtURI))
}

// FinalSrtURINotNil applies the NotNil predicate on the "final_srt_uri" field.
func FinalSrtURINotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldFinalSrtURI))
}

// FinalSrtURIEqualFold applies the EqualFold predicate on the "final_srt_uri" field.
func FinalSrtURIEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldFinalSrtURI, v))
}

// FinalSrtURIContainsFold applies the ContainsFold predicate on the "final_srt_uri" field.
func FinalSrtURIContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldFinalSrtURI, v))
}

// MaxLinesEQ applies the EQ predicate on the "max_lines" field.
func MaxLinesEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxLines, v))
}

// MaxLinesNEQ applies the NEQ predicate on the "max_lines" field.
func MaxLinesNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMaxLines, v))
}

// MaxLinesIn applies the In predicate on the "max_lines" field.
func MaxLinesIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMaxLines, vs...))
}

// MaxLinesNotIn applies the NotIn predicate on the "max_lines" field.
func MaxLinesNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMaxLines, vs...))
}

// MaxLinesGT applies the GT predicate on the "max_lines" field.
func MaxLinesGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMaxLines, v))
}

// MaxLinesGTE applies the GTE predicate on the "max_lines" field.
func MaxLinesGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMaxLines, v))
}

// MaxLinesLT applies the LT predicate on the "max_lines" field.
func MaxLinesLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMaxLines, v))
}

// MaxLinesLTE applies the LTE predicate on the "max_lines" field.
func MaxLinesLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMaxLines, v))
}

// MaxCharsPerLineEQ applies the EQ predicate on the "max_chars_per_line" field.
func MaxCharsPerLineEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxCharsPerLine, v))
}

// MaxCharsPerLineNEQ applies the NEQ predicate on the "max_chars_per_line" field.
func MaxCharsPerLineNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMaxCharsPerLine, v))
}

// MaxCharsPerLineIn applies the In predicate on the "max_chars_per_line" field.
func MaxCharsPerLineIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMaxCharsPerLine, vs...))
}

// MaxCharsPerLineNotIn applies the NotIn predicate on the "max_chars_per_line" field.
func MaxCharsPerLineNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMaxCharsPerLine, vs...))
}

// MaxCharsPerLineGT applies the GT predicate on the "max_chars_per_line" field.
func MaxCharsPerLineGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMaxCharsPerLine, v))
}

// MaxCharsPerLineGTE applies the GTE predicate on the "max_chars_per_line" field.
func MaxCharsPerLineGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMaxCharsPerLine, v))
}

// MaxCharsPerLineLT applies the LT predicate on the "max_chars_per_line" field.
func MaxCharsPerLineLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMaxCharsPerLine, v))
}

// MaxCharsPerLineLTE applies the LTE predicate on the "max_chars_per_line" field.
func MaxCharsPerLineLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMaxCharsPerLine, v))
}

// TargetCpsEQ applies the EQ predicate on the "target_cps" field.
func TargetCpsEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetCps, v))
}

// TargetCpsNEQ applies the NEQ predicate on the "target_cps" field.
func TargetCpsNEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTargetCps, v))
}

// TargetCpsIn applies the In predicate on the "target_cps" field.
func TargetCpsIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTargetCps, vs...))
}

// TargetCpsNotIn applies the NotIn predicate on the "target_cps" field.
func TargetCpsNotIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTargetCps, vs...))
}

// TargetCpsGT applies the GT predicate on the "target_cps" field.
func TargetCpsGT(v float64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTargetCps, v))
}

// TargetCpsGTE applies the GTE predicate on the "target_cps" field.
func TargetCpsGTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTargetCps, v))
}

// TargetCpsLT applies the LT predicate on the "target_cps" field.
func TargetCpsLT(v float64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTargetCps, v))
}

// TargetCpsLTE applies the LTE predicate on the "target_cps" field.
func TargetCpsLTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTargetCps, v))
}

// MinCueMsEQ applies the EQ predicate on the "min_cue_ms" field.
func MinCueMsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMinCueMs, v))
}

// MinCueMsNEQ applies the NEQ predicate on the "min_cue_ms" field.
func MinCueMsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMinCueMs, v))
}

// MinCueMsIn applies the In predicate on the "min_cue_ms" field.
func MinCueMsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMinCueMs, vs...))
}

// MinCueMsNotIn applies the NotIn predicate on the "min_cue_ms" field.
func MinCueMsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMinCueMs, vs...))
}

// MinCueMsGT applies the GT predicate on the "min_cue_ms" field.
func MinCueMsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMinCueMs, v))
}

// MinCueMsGTE applies the GTE predicate on the "min_cue_ms" field.
func MinCueMsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMinCueMs, v))
}

// MinCueMsLT applies the LT predicate on the "min_cue_ms" field.
func MinCueMsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMinCueMs, v))
}

// MinCueMsLTE applies the LTE predicate on the "min_cue_ms" field.
func MinCueMsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMinCueMs, v))
}

// MaxCueMsEQ applies the EQ predicate on the "max_cue_ms" field.
func MaxCueMsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxCueMs, v))
}

// MaxCueMsNEQ applies the NEQ predicate on the "max_cue_ms" field.
func MaxCueMsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMaxCueMs, v))
}

// MaxCueMsIn applies the In predicate on the "max_cue_ms" field.
func MaxCueMsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMaxCueMs, vs...))
}

// MaxCueMsNotIn applies the NotIn predicate on the "max_cue_ms" field.
func MaxCueMsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMaxCueMs, vs...))
}

// MaxCueMsGT applies the GT predicate on the "max_cue_ms" field.
func MaxCueMsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMaxCueMs, v))
}

// MaxCueMsGTE applies the GTE predicate on the "max_cue_ms" field.
func MaxCueMsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMaxCueMs, v))
}

// MaxCueMsLT applies the LT predicate on the "max_cue_ms" field.
func MaxCueMsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMaxCueMs, v))
}

// MaxCueMsLTE applies the LTE predicate on the "max_cue_ms" field.
func MaxCueMsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMaxCueMs, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelIsNil applies the IsNil predicate on the "risk_level" field.
func RiskLevelIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldRiskLevel))
}

// RiskLevelNotNil applies the NotNil predicate on the "risk_level" field.
func RiskLevelNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldRiskLevel))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldRiskLevel, v))
}

// DifficultyScoreEQ applies the EQ predicate on the "difficulty_score" field.
func DifficultyScoreEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDifficultyScore, v))
}

// DifficultyScoreNEQ applies the NEQ predicate on the "difficulty_score" field.
func DifficultyScoreNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDifficultyScore, v))
}

// DifficultyScoreIn applies the In predicate on the "difficulty_score" field.
func DifficultyScoreIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDifficultyScore, vs...))
}

// DifficultyScoreNotIn applies the NotIn predicate on the "difficulty_score" field.
func DifficultyScoreNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDifficultyScore, vs...))
}

// DifficultyScoreGT applies the GT predicate on the "difficulty_score" field.
func DifficultyScoreGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDifficultyScore, v))
}

// DifficultyScoreGTE applies the GTE predicate on the "difficulty_score" field.
func DifficultyScoreGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDifficultyScore, v))
}

// DifficultyScoreLT applies the LT predicate on the "difficulty_score" field.
func DifficultyScoreLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDifficultyScore, v))
}

// DifficultyScoreLTE applies the LTE predicate on the "difficulty_score" field.
func DifficultyScoreLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDifficultyScore, v))
}

// DifficultyScoreIsNil applies the IsNil predicate on the "difficulty_score" field.
func DifficultyScoreIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDifficultyScore))
}

// DifficultyScoreNotNil applies the NotNil predicate on the "difficulty_score" field.
func DifficultyScoreNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDifficultyScore))
}

// StrategistConfEQ applies the EQ predicate on the "strategist_conf" field.
func StrategistConfEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStrategistConf, v))
}

// StrategistConfNEQ applies the NEQ predicate on the "strategist_conf" field.
func StrategistConfNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStrategistConf, v))
}

// StrategistConfIn applies the In predicate on the "strategist_conf" field.
func StrategistConfIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStrategistConf, vs...))
}

// StrategistConfNotIn applies the NotIn predicate on the "strategist_conf" field.
func StrategistConfNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStrategistConf, vs...))
}

// StrategistConfGT applies the GT predicate on the "strategist_conf" field.
func StrategistConfGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStrategistConf, v))
}

// StrategistConfGTE applies the GTE predicate on the "strategist_conf" field.
func StrategistConfGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStrategistConf, v))
}

// StrategistConfLT applies the LT predicate on the "strategist_conf" field.
func StrategistConfLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStrategistConf, v))
}

// StrategistConfLTE applies the LTE predicate on the "strategist_conf" field.
func StrategistConfLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStrategistConf, v))
}

// StrategistConfIsNil applies the IsNil predicate on the "strategist_conf" field.
func StrategistConfIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStrategistConf))
}

// StrategistConfNotNil applies the NotNil predicate on the "strategist_conf" field.
func StrategistConfNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStrategistConf))
}

// GenreEQ applies the EQ predicate on the "genre" field.
func GenreEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldGenre, v))
}

// GenreNEQ applies the NEQ predicate on the "genre" field.
func GenreNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldGenre, v))
}

// GenreIn applies the In predicate on the "genre" field.
func GenreIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldGenre, vs...))
}

// GenreNotIn applies the NotIn predicate on the "genre" field.
func GenreNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldGenre, vs...))
}

// GenreGT applies the GT predicate on the "genre" field.
func GenreGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldGenre, v))
}

// GenreGTE applies the GTE predicate on the "genre" field.
func GenreGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldGenre, v))
}

// GenreLT applies the LT predicate on the "genre" field.
func GenreLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldGenre, v))
}

// GenreLTE applies the LTE predicate on the "genre" field.
func GenreLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldGenre, v))
}

// GenreContains applies the Contains predicate on the "genre" field.
func GenreContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldGenre, v))
}

// GenreHasPrefix applies the HasPrefix predicate on the "genre" field.
func GenreHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldGenre, v))
}

// GenreHasSuffix applies the HasSuffix predicate on the "genre" field.
func GenreHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldGenre, v))
}

// GenreIsNil applies the IsNil predicate on the "genre" field.
func GenreIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldGenre))
}

// GenreNotNil applies the NotNil predicate on the "genre" field.
func GenreNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldGenre))
}

// GenreEqualFold applies the EqualFold predicate on the "genre" field.
func GenreEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldGenre, v))
}

// GenreContainsFold applies the ContainsFold predicate on the "genre" field.
func GenreContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldGenre, v))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTone, vs...))
}

// ToneGT applies the GT predicate on the "tone" field.
func ToneGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTone, v))
}

// ToneGTE applies the GTE predicate on the "tone" field.
func ToneGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTone, v))
}

// ToneLT applies the LT predicate on the "tone" field.
func ToneLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTone, v))
}

// ToneLTE applies the LTE predicate on the "tone" field.
func ToneLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTone, v))
}

// ToneContains applies the Contains predicate on the "tone" field.
func ToneContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTone, v))
}

// ToneHasPrefix applies the HasPrefix predicate on the "tone" field.
func ToneHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTone, v))
}

// ToneHasSuffix applies the HasSuffix predicate on the "tone" field.
func ToneHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTone, v))
}

// ToneIsNil applies the IsNil predicate on the "tone" field.
func ToneIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldTone))
}

// ToneNotNil applies the NotNil predicate on the "tone" field.
func ToneNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldTone))
}

// ToneEqualFold applies the EqualFold predicate on the "tone" field.
func ToneEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTone, v))
}

// ToneContainsFold applies the ContainsFold predicate on the "tone" field.
func ToneContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTone, v))
}

// DomainTagsIsNil applies the IsNil predicate on the "domain_tags" field.
func DomainTagsIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDomainTags))
}

// DomainTagsNotNil applies the NotNil predicate on the "domain_tags" field.
func DomainTagsNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDomainTags))
}

// NeedsTerminologistEQ applies the EQ predicate on the "needs_terminologist" field.
func NeedsTerminologistEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldNeedsTerminologist, v))
}

// NeedsTerminologistNEQ applies the NEQ predicate on the "needs_terminologist" field.
func NeedsTerminologistNEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldNeedsTerminologist, v))
}

// NeedsTerminologistIsNil applies the IsNil predicate on the "needs_terminologist" field.
func NeedsTerminologistIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldNeedsTerminologist))
}

// NeedsTerminologistNotNil applies the NotNil predicate on the "needs_terminologist" field.
func NeedsTerminologistNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldNeedsTerminologist))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldClaimedBy, v))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldHeartbeatAt))
}

// HasCues applies the HasEdge predicate on the "cues" edge.
func HasCues() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CuesTable, CuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCuesWith applies the HasEdge predicate on the "cues" edge with a given conditions (other predicates).
func HasCuesWith(preds ...predicate.JobCue) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newCuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGlossaryTerms applies the HasEdge predicate on the "glossary_terms" edge.
func HasGlossaryTerms() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GlossaryTermsTable, GlossaryTermsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGlossaryTermsWith applies the HasEdge predicate on the "glossary_terms" edge with a given conditions (other predicates).
func HasGlossaryTermsWith(preds ...predicate.JobGlossaryTerm) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newGlossaryTermsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmRuns applies the HasEdge predicate on the "llm_runs" edge.
func HasLlmRuns() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmRunsTable, LlmRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmRunsWith applies the HasEdge predicate on the "llm_runs" edge with a given conditions (other predicates).
func HasLlmRunsWith(preds ...predicate.LLMRun) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newLlmRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
