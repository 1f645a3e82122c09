// Code generated by ent, DO NOT EDIT.

package llmrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldJobID, v))
}

// CueID applies equality check predicate on the "cue_id" field. It's identical to CueIDEQ.
func CueID(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldCueID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldAgentName, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldModel, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldProvider, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldFinishedAt, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldCompletionTokens, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldCostUsd, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldErrorMessage, v))
}

// InputSha applies equality check predicate on the "input_sha" field. It's identical to InputShaEQ.
func InputSha(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldInputSha, v))
}

// OutputSha applies equality check predicate on the "output_sha" field. It's identical to OutputShaEQ.
func OutputSha(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldOutputSha, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldJobID))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContainsFold(FieldJobID, v))
}

// CueIDEQ applies the EQ predicate on the "cue_id" field.
func CueIDEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldCueID, v))
}

// CueIDNEQ applies the NEQ predicate on the "cue_id" field.
func CueIDNEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldCueID, v))
}

// CueIDIn applies the In predicate on the "cue_id" field.
func CueIDIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldCueID, vs...))
}

// CueIDNotIn applies the NotIn predicate on the "cue_id" field.
func CueIDNotIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldCueID, vs...))
}

// CueIDGT applies the GT predicate on the "cue_id" field.
func CueIDGT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldCueID, v))
}

// CueIDGTE applies the GTE predicate on the "cue_id" field.
func CueIDGTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldCueID, v))
}

// CueIDLT applies the LT predicate on the "cue_id" field.
func CueIDLT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldCueID, v))
}

// CueIDLTE applies the LTE predicate on the "cue_id" field.
func CueIDLTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldCueID, v))
}

// CueIDContains applies the Contains predicate on the "cue_id" field.
func CueIDContains(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContains(FieldCueID, v))
}

// CueIDHasPrefix applies the HasPrefix predicate on the "cue_id" field.
func CueIDHasPrefix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasPrefix(FieldCueID, v))
}

// CueIDHasSuffix applies the HasSuffix predicate on the "cue_id" field.
func CueIDHasSuffix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasSuffix(FieldCueID, v))
}

// CueIDIsNil applies the IsNil predicate on the "cue_id" field.
func CueIDIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldCueID))
}

// CueIDNotNil applies the NotNil predicate on the "cue_id" field.
func CueIDNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldCueID))
}

// CueIDEqualFold applies the EqualFold predicate on the "cue_id" field.
func CueIDEqualFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEqualFold(FieldCueID, v))
}

// CueIDContainsFold applies the ContainsFold predicate on the "cue_id" field.
func CueIDContainsFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContainsFold(FieldCueID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContainsFold(FieldAgentName, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContainsFold(FieldModel, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContainsFold(FieldProvider, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldFinishedAt))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldPromptTokens, v))
}

// PromptTokensIsNil applies the IsNil predicate on the "prompt_tokens" field.
func PromptTokensIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldPromptTokens))
}

// PromptTokensNotNil applies the NotNil predicate on the "prompt_tokens" field.
func PromptTokensNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldPromptTokens))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldCompletionTokens, v))
}

// CompletionTokensIsNil applies the IsNil predicate on the "completion_tokens" field.
func CompletionTokensIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldCompletionTokens))
}

// CompletionTokensNotNil applies the NotNil predicate on the "completion_tokens" field.
func CompletionTokensNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldCompletionTokens))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldCostUsd, v))
}

// CostUsdIsNil applies the IsNil predicate on the "cost_usd" field.
func CostUsdIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldCostUsd))
}

// CostUsdNotNil applies the NotNil predicate on the "cost_usd" field.
func CostUsdNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldCostUsd))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// InputShaEQ applies the EQ predicate on the "input_sha" field.
func InputShaEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldInputSha, v))
}

// InputShaNEQ applies the NEQ predicate on the "input_sha" field.
func InputShaNEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldInputSha, v))
}

// InputShaIn applies the In predicate on the "input_sha" field.
func InputShaIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldInputSha, vs...))
}

// InputShaNotIn applies the NotIn predicate on the "input_sha" field.
func InputShaNotIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldInputSha, vs...))
}

// InputShaGT applies the GT predicate on the "input_sha" field.
func InputShaGT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldInputSha, v))
}

// InputShaGTE applies the GTE predicate on the "input_sha" field.
func InputShaGTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldInputSha, v))
}

// InputShaLT applies the LT predicate on the "input_sha" field.
func InputShaLT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldInputSha, v))
}

// InputShaLTE applies the LTE predicate on the "input_sha" field.
func InputShaLTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldInputSha, v))
}

// InputShaContains applies the Contains predicate on the "input_sha" field.
func InputShaContains(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContains(FieldInputSha, v))
}

// InputShaHasPrefix applies the HasPrefix predicate on the "input_sha" field.
func InputShaHasPrefix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasPrefix(FieldInputSha, v))
}

// InputShaHasSuffix applies the HasSuffix predicate on the "input_sha" field.
func InputShaHasSuffix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasSuffix(FieldInputSha, v))
}

// InputShaIsNil applies the IsNil predicate on the "input_sha" field.
func InputShaIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldInputSha))
}

// InputShaNotNil applies the NotNil predicate on the "input_sha" field.
func InputShaNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldInputSha))
}

// InputShaEqualFold applies the EqualFold predicate on the "input_sha" field.
func InputShaEqualFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEqualFold(FieldInputSha, v))
}

// InputShaContainsFold applies the ContainsFold predicate on the "input_sha" field.
func InputShaContainsFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContainsFold(FieldInputSha, v))
}

// OutputShaEQ applies the EQ predicate on the "output_sha" field.
func OutputShaEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEQ(FieldOutputSha, v))
}

// OutputShaNEQ applies the NEQ predicate on the "output_sha" field.
func OutputShaNEQ(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNEQ(FieldOutputSha, v))
}

// OutputShaIn applies the In predicate on the "output_sha" field.
func OutputShaIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIn(FieldOutputSha, vs...))
}

// OutputShaNotIn applies the NotIn predicate on the "output_sha" field.
func OutputShaNotIn(vs ...string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotIn(FieldOutputSha, vs...))
}

// OutputShaGT applies the GT predicate on the "output_sha" field.
func OutputShaGT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGT(FieldOutputSha, v))
}

// OutputShaGTE applies the GTE predicate on the "output_sha" field.
func OutputShaGTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldGTE(FieldOutputSha, v))
}

// OutputShaLT applies the LT predicate on the "output_sha" field.
func OutputShaLT(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLT(FieldOutputSha, v))
}

// OutputShaLTE applies the LTE predicate on the "output_sha" field.
func OutputShaLTE(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldLTE(FieldOutputSha, v))
}

// OutputShaContains applies the Contains predicate on the "output_sha" field.
func OutputShaContains(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContains(FieldOutputSha, v))
}

// OutputShaHasPrefix applies the HasPrefix predicate on the "output_sha" field.
func OutputShaHasPrefix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasPrefix(FieldOutputSha, v))
}

// OutputShaHasSuffix applies the HasSuffix predicate on the "output_sha" field.
func OutputShaHasSuffix(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldHasSuffix(FieldOutputSha, v))
}

// OutputShaIsNil applies the IsNil predicate on the "output_sha" field.
func OutputShaIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldOutputSha))
}

// OutputShaNotNil applies the NotNil predicate on the "output_sha" field.
func OutputShaNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldOutputSha))
}

// OutputShaEqualFold applies the EqualFold predicate on the "output_sha" field.
func OutputShaEqualFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldEqualFold(FieldOutputSha, v))
}

// OutputShaContainsFold applies the ContainsFold predicate on the "output_sha" field.
func OutputShaContainsFold(v string) predicate.LLMRun {
	return predicate.LLMRun(sql.FieldContainsFold(FieldOutputSha, v))
}

// MetaIsNil applies the IsNil predicate on the "meta" field.
func MetaIsNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldIsNull(FieldMeta))
}

// MetaNotNil applies the NotNil predicate on the "meta" field.
func MetaNotNil() predicate.LLMRun {
	return predicate.LLMRun(sql.FieldNotNull(FieldMeta))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.LLMRun {
	return predicate.LLMRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.LLMRun {
	return predicate.LLMRun(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCue applies the HasEdge predicate on the "cue" edge.
func HasCue() predicate.LLMRun {
	return predicate.LLMRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CueTable, CueColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCueWith applies the HasEdge predicate on the "cue" edge with a given conditions (other predicates).
func HasCueWith(preds ...predicate.JobCue) predicate.LLMRun {
	return predicate.LLMRun(func(s *sql.Selector) {
		step := newCueStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMRun) predicate.LLMRun {
	return predicate.LLMRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMRun) predicate.LLMRun {
	return predicate.LLMRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMRun) predicate.LLMRun {
	return predicate.LLMRun(sql.NotPredicates(p))
}
