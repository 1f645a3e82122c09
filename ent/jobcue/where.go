// Code generated by ent, DO NOT EDIT.

package jobcue

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldJobID, v))
}

// CueIndex applies equality check predicate on the "cue_index" field. It's identical to CueIndexEQ.
func CueIndex(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldCueIndex, v))
}

// StartMs applies equality check predicate on the "start_ms" field. It's identical to StartMsEQ.
func StartMs(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldStartMs, v))
}

// EndMs applies equality check predicate on the "end_ms" field. It's identical to EndMsEQ.
func EndMs(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldEndMs, v))
}

// EnText applies equality check predicate on the "en_text" field. It's identical to EnTextEQ.
func EnText(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldEnText, v))
}

// FaText applies equality check predicate on the "fa_text" field. It's identical to FaTextEQ.
func FaText(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldFaText, v))
}

// FaTextQa applies equality check predicate on the "fa_text_qa" field. It's identical to FaTextQaEQ.
func FaTextQa(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldFaTextQa, v))
}

// TmReused applies equality check predicate on the "tm_reused" field. It's identical to TmReusedEQ.
func TmReused(v bool) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldTmReused, v))
}

// TmEntryID applies equality check predicate on the "tm_entry_id" field. It's identical to TmEntryIDEQ.
func TmEntryID(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldTmEntryID, v))
}

// NeedsTranslation applies equality check predicate on the "needs_translation" field. It's identical to NeedsTranslationEQ.
func NeedsTranslation(v bool) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldNeedsTranslation, v))
}

// TmConfidence applies equality check predicate on the "tm_confidence" field. It's identical to TmConfidenceEQ.
func TmConfidence(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldTmConfidence, v))
}

// QaScore applies equality check predicate on the "qa_score" field. It's identical to QaScoreEQ.
func QaScore(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldQaScore, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContainsFold(FieldJobID, v))
}

// CueIndexEQ applies the EQ predicate on the "cue_index" field.
func CueIndexEQ(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldCueIndex, v))
}

// CueIndexNEQ applies the NEQ predicate on the "cue_index" field.
func CueIndexNEQ(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldCueIndex, v))
}

// CueIndexIn applies the In predicate on the "cue_index" field.
func CueIndexIn(vs ...int) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldCueIndex, vs...))
}

// CueIndexNotIn applies the NotIn predicate on the "cue_index" field.
func CueIndexNotIn(vs ...int) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldCueIndex, vs...))
}

// CueIndexGT applies the GT predicate on the "cue_index" field.
func CueIndexGT(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldCueIndex, v))
}

// CueIndexGTE applies the GTE predicate on the "cue_index" field.
func CueIndexGTE(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldCueIndex, v))
}

// CueIndexLT applies the LT predicate on the "cue_index" field.
func CueIndexLT(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldCueIndex, v))
}

// CueIndexLTE applies the LTE predicate on the "cue_index" field.
func CueIndexLTE(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldCueIndex, v))
}

// StartMsEQ applies the EQ predicate on the "start_ms" field.
func StartMsEQ(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldStartMs, v))
}

// StartMsNEQ applies the NEQ predicate on the "start_ms" field.
func StartMsNEQ(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldStartMs, v))
}

// StartMsIn applies the In predicate on the "start_ms" field.
func StartMsIn(vs ...int) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldStartMs, vs...))
}

// StartMsNotIn applies the NotIn predicate on the "start_ms" field.
func StartMsNotIn(vs ...int) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldStartMs, vs...))
}

// StartMsGT applies the GT predicate on the "start_ms" field.
func StartMsGT(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldStartMs, v))
}

// StartMsGTE applies the GTE predicate on the "start_ms" field.
func StartMsGTE(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldStartMs, v))
}

// StartMsLT applies the LT predicate on the "start_ms" field.
func StartMsLT(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldStartMs, v))
}

// StartMsLTE applies the LTE predicate on the "start_ms" field.
func StartMsLTE(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldStartMs, v))
}

// EndMsEQ applies the EQ predicate on the "end_ms" field.
func EndMsEQ(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldEndMs, v))
}

// EndMsNEQ applies the NEQ predicate on the "end_ms" field.
func EndMsNEQ(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldEndMs, v))
}

// EndMsIn applies the In predicate on the "end_ms" field.
func EndMsIn(vs ...int) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldEndMs, vs...))
}

// EndMsNotIn applies the NotIn predicate on the "end_ms" field.
func EndMsNotIn(vs ...int) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldEndMs, vs...))
}

// EndMsGT applies the GT predicate on the "end_ms" field.
func EndMsGT(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldEndMs, v))
}

// EndMsGTE applies the GTE predicate on the "end_ms" field.
func EndMsGTE(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldEndMs, v))
}

// EndMsLT applies the LT predicate on the "end_ms" field.
func EndMsLT(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldEndMs, v))
}

// EndMsLTE applies the LTE predicate on the "end_ms" field.
func EndMsLTE(v int) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldEndMs, v))
}

// EnTextEQ applies the EQ predicate on the "en_text" field.
func EnTextEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldEnText, v))
}

// EnTextNEQ applies the NEQ predicate on the "en_text" field.
func EnTextNEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldEnText, v))
}

// EnTextIn applies the In predicate on the "en_text" field.
func EnTextIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldEnText, vs...))
}

// EnTextNotIn applies the NotIn predicate on the "en_text" field.
func EnTextNotIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldEnText, vs...))
}

// EnTextGT applies the GT predicate on the "en_text" field.
func EnTextGT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldEnText, v))
}

// EnTextGTE applies the GTE predicate on the "en_text" field.
func EnTextGTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldEnText, v))
}

// EnTextLT applies the LT predicate on the "en_text" field.
func EnTextLT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldEnText, v))
}

// EnTextLTE applies the LTE predicate on the "en_text" field.
func EnTextLTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldEnText, v))
}

// EnTextContains applies the Contains predicate on the "en_text" field.
func EnTextContains(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContains(FieldEnText, v))
}

// EnTextHasPrefix applies the HasPrefix predicate on the "en_text" field.
func EnTextHasPrefix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasPrefix(FieldEnText, v))
}

// EnTextHasSuffix applies the HasSuffix predicate on the "en_text" field.
func EnTextHasSuffix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasSuffix(FieldEnText, v))
}

// EnTextEqualFold applies the EqualFold predicate on the "en_text" field.
func EnTextEqualFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEqualFold(FieldEnText, v))
}

// EnTextContainsFold applies the ContainsFold predicate on the "en_text" field.
func EnTextContainsFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContainsFold(FieldEnText, v))
}

// FaTextEQ applies the EQ predicate on the "fa_text" field.
func FaTextEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldFaText, v))
}

// FaTextNEQ applies the NEQ predicate on the "fa_text" field.
func FaTextNEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldFaText, v))
}

// FaTextIn applies the In predicate on the "fa_text" field.
func FaTextIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldFaText, vs...))
}

// FaTextNotIn applies the NotIn predicate on the "fa_text" field.
func FaTextNotIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldFaText, vs...))
}

// FaTextGT applies the GT predicate on the "fa_text" field.
func FaTextGT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldFaText, v))
}

// FaTextGTE applies the GTE predicate on the "fa_text" field.
func FaTextGTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldFaText, v))
}

// FaTextLT applies the LT predicate on the "fa_text" field.
func FaTextLT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldFaText, v))
}

// FaTextLTE applies the LTE predicate on the "fa_text" field.
func FaTextLTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldFaText, v))
}

// FaTextContains applies the Contains predicate on the "fa_text" field.
func FaTextContains(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContains(FieldFaText, v))
}

// FaTextHasPrefix applies the HasPrefix predicate on the "fa_text" field.
func FaTextHasPrefix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasPrefix(FieldFaText, v))
}

// FaTextHasSuffix applies the HasSuffix predicate on the "fa_text" field.
func FaTextHasSuffix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasSuffix(FieldFaText, v))
}

// FaTextIsNil applies the IsNil predicate on the "fa_text" field.
func FaTextIsNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldIsNull(FieldFaText))
}

// FaTextNotNil applies the NotNil predicate on the "fa_text" field.
func FaTextNotNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldNotNull(FieldFaText))
}

// FaTextEqualFold applies the EqualFold predicate on the "fa_text" field.
func FaTextEqualFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEqualFold(FieldFaText, v))
}

// FaTextContainsFold applies the ContainsFold predicate on the "fa_text" field.
func FaTextContainsFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContainsFold(FieldFaText, v))
}

// FaTextQaEQ applies the EQ predicate on the "fa_text_qa" field.
func FaTextQaEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldFaTextQa, v))
}

// FaTextQaNEQ applies the NEQ predicate on the "fa_text_qa" field.
func FaTextQaNEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldFaTextQa, v))
}

// FaTextQaIn applies the In predicate on the "fa_text_qa" field.
func FaTextQaIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldFaTextQa, vs...))
}

// FaTextQaNotIn applies the NotIn predicate on the "fa_text_qa" field.
func FaTextQaNotIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldFaTextQa, vs...))
}

// FaTextQaGT applies the GT predicate on the "fa_text_qa" field.
func FaTextQaGT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldFaTextQa, v))
}

// FaTextQaGTE applies the GTE predicate on the "fa_text_qa" field.
func FaTextQaGTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldFaTextQa, v))
}

// FaTextQaLT applies the LT predicate on the "fa_text_qa" field.
func FaTextQaLT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldFaTextQa, v))
}

// FaTextQaLTE applies the LTE predicate on the "fa_text_qa" field.
func FaTextQaLTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldFaTextQa, v))
}

// FaTextQaContains applies the Contains predicate on the "fa_text_qa" field.
func FaTextQaContains(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContains(FieldFaTextQa, v))
}

// FaTextQaHasPrefix applies the HasPrefix predicate on the "fa_text_qa" field.
func FaTextQaHasPrefix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasPrefix(FieldFaTextQa, v))
}

// FaTextQaHasSuffix applies the HasSuffix predicate on the "fa_text_qa" field.
func FaTextQaHasSuffix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasSuffix(FieldFaTextQa, v))
}

// FaTextQaIsNil applies the IsNil predicate on the "fa_text_qa" field.
func FaTextQaIsNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldIsNull(FieldFaTextQa))
}

// FaTextQaNotNil applies the NotNil predicate on the "fa_text_qa" field.
func FaTextQaNotNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldNotNull(FieldFaTextQa))
}

// FaTextQaEqualFold applies the EqualFold predicate on the "fa_text_qa" field.
func FaTextQaEqualFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEqualFold(FieldFaTextQa, v))
}

// FaTextQaContainsFold applies the ContainsFold predicate on the "fa_text_qa" field.
func FaTextQaContainsFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContainsFold(FieldFaTextQa, v))
}

// TmReusedEQ applies the EQ predicate on the "tm_reused" field.
func TmReusedEQ(v bool) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldTmReused, v))
}

// TmReusedNEQ applies the NEQ predicate on the "tm_reused" field.
func TmReusedNEQ(v bool) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldTmReused, v))
}

// TmEntryIDEQ applies the EQ predicate on the "tm_entry_id" field.
func TmEntryIDEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldTmEntryID, v))
}

// TmEntryIDNEQ applies the NEQ predicate on the "tm_entry_id" field.
func TmEntryIDNEQ(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldTmEntryID, v))
}

// TmEntryIDIn applies the In predicate on the "tm_entry_id" field.
func TmEntryIDIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldTmEntryID, vs...))
}

// TmEntryIDNotIn applies the NotIn predicate on the "tm_entry_id" field.
func TmEntryIDNotIn(vs ...string) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldTmEntryID, vs...))
}

// TmEntryIDGT applies the GT predicate on the "tm_entry_id" field.
func TmEntryIDGT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldTmEntryID, v))
}

// TmEntryIDGTE applies the GTE predicate on the "tm_entry_id" field.
func TmEntryIDGTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldTmEntryID, v))
}

// TmEntryIDLT applies the LT predicate on the "tm_entry_id" field.
func TmEntryIDLT(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldTmEntryID, v))
}

// TmEntryIDLTE applies the LTE predicate on the "tm_entry_id" field.
func TmEntryIDLTE(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldTmEntryID, v))
}

// TmEntryIDContains applies the Contains predicate on the "tm_entry_id" field.
func TmEntryIDContains(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContains(FieldTmEntryID, v))
}

// TmEntryIDHasPrefix applies the HasPrefix predicate on the "tm_entry_id" field.
func TmEntryIDHasPrefix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasPrefix(FieldTmEntryID, v))
}

// TmEntryIDHasSuffix applies the HasSuffix predicate on the "tm_entry_id" field.
func TmEntryIDHasSuffix(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldHasSuffix(FieldTmEntryID, v))
}

// TmEntryIDIsNil applies the IsNil predicate on the "tm_entry_id" field.
func TmEntryIDIsNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldIsNull(FieldTmEntryID))
}

// TmEntryIDNotNil applies the NotNil predicate on the "tm_entry_id" field.
func TmEntryIDNotNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldNotNull(FieldTmEntryID))
}

// TmEntryIDEqualFold applies the EqualFold predicate on the "tm_entry_id" field.
func TmEntryIDEqualFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldEqualFold(FieldTmEntryID, v))
}

// TmEntryIDContainsFold applies the ContainsFold predicate on the "tm_entry_id" field.
func TmEntryIDContainsFold(v string) predicate.JobCue {
	return predicate.JobCue(sql.FieldContainsFold(FieldTmEntryID, v))
}

// NeedsTranslationEQ applies the EQ predicate on the "needs_translation" field.
func NeedsTranslationEQ(v bool) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldNeedsTranslation, v))
}

// NeedsTranslationNEQ applies the NEQ predicate on the "needs_translation" field.
func NeedsTranslationNEQ(v bool) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldNeedsTranslation, v))
}

// TmConfidenceEQ applies the EQ predicate on the "tm_confidence" field.
func TmConfidenceEQ(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldTmConfidence, v))
}

// TmConfidenceNEQ applies the NEQ predicate on the "tm_confidence" field.
func TmConfidenceNEQ(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldTmConfidence, v))
}

// TmConfidenceIn applies the In predicate on the "tm_confidence" field.
func TmConfidenceIn(vs ...float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldTmConfidence, vs...))
}

// TmConfidenceNotIn applies the NotIn predicate on the "tm_confidence" field.
func TmConfidenceNotIn(vs ...float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldTmConfidence, vs...))
}

// TmConfidenceGT applies the GT predicate on the "tm_confidence" field.
func TmConfidenceGT(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldTmConfidence, v))
}

// TmConfidenceGTE applies the GTE predicate on the "tm_confidence" field.
func TmConfidenceGTE(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldTmConfidence, v))
}

// TmConfidenceLT applies the LT predicate on the "tm_confidence" field.
func TmConfidenceLT(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldTmConfidence, v))
}

// TmConfidenceLTE applies the LTE predicate on the "tm_confidence" field.
func TmConfidenceLTE(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldTmConfidence, v))
}

// TmConfidenceIsNil applies the IsNil predicate on the "tm_confidence" field.
func TmConfidenceIsNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldIsNull(FieldTmConfidence))
}

// TmConfidenceNotNil applies the NotNil predicate on the "tm_confidence" field.
func TmConfidenceNotNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldNotNull(FieldTmConfidence))
}

// QaScoreEQ applies the EQ predicate on the "qa_score" field.
func QaScoreEQ(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldEQ(FieldQaScore, v))
}

// QaScoreNEQ applies the NEQ predicate on the "qa_score" field.
func QaScoreNEQ(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldNEQ(FieldQaScore, v))
}

// QaScoreIn applies the In predicate on the "qa_score" field.
func QaScoreIn(vs ...float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldIn(FieldQaScore, vs...))
}

// QaScoreNotIn applies the NotIn predicate on the "qa_score" field.
func QaScoreNotIn(vs ...float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldNotIn(FieldQaScore, vs...))
}

// QaScoreGT applies the GT predicate on the "qa_score" field.
func QaScoreGT(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldGT(FieldQaScore, v))
}

// QaScoreGTE applies the GTE predicate on the "qa_score" field.
func QaScoreGTE(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldGTE(FieldQaScore, v))
}

// QaScoreLT applies the LT predicate on the "qa_score" field.
func QaScoreLT(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldLT(FieldQaScore, v))
}

// QaScoreLTE applies the LTE predicate on the "qa_score" field.
func QaScoreLTE(v float64) predicate.JobCue {
	return predicate.JobCue(sql.FieldLTE(FieldQaScore, v))
}

// QaScoreIsNil applies the IsNil predicate on the "qa_score" field.
func QaScoreIsNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldIsNull(FieldQaScore))
}

// QaScoreNotNil applies the NotNil predicate on the "qa_score" field.
func QaScoreNotNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldNotNull(FieldQaScore))
}

// IssuesIsNil applies the IsNil predicate on the "issues" field.
func IssuesIsNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldIsNull(FieldIssues))
}

// IssuesNotNil applies the NotNil predicate on the "issues" field.
func IssuesNotNil() predicate.JobCue {
	return predicate.JobCue(sql.FieldNotNull(FieldIssues))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobCue {
	return predicate.JobCue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobCue {
	return predicate.JobCue(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmRuns applies the HasEdge predicate on the "llm_runs" edge.
func HasLlmRuns() predicate.JobCue {
	return predicate.JobCue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmRunsTable, LlmRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmRunsWith applies the HasEdge predicate on the "llm_runs" edge with a given conditions (other predicates).
func HasLlmRunsWith(preds ...predicate.LLMRun) predicate.JobCue {
	return predicate.JobCue(func(s *sql.Selector) {
		step := newLlmRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobCue) predicate.JobCue {
	return predicate.JobCue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobCue) predicate.JobCue {
	return predicate.JobCue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobCue) predicate.JobCue {
	return predicate.JobCue(sql.NotPredicates(p))
}
