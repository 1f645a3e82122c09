// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceLang sets the "source_lang" field.
func (_u *JobUpdate) SetSourceLang(v string) *JobUpdate {
	_u.mutation.SetSourceLang(v)
	return _u
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSourceLang(v *string) *JobUpdate {
	if v != nil {
		_u.SetSourceLang(*v)
	}
	return _u
}

// SetTargetLang sets the "target_lang" field.
func (_u *JobUpdate) SetTargetLang(v string) *JobUpdate {
	_u.mutation.SetTargetLang(v)
	return _u
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTargetLang(v *string) *JobUpdate {
	if v != nil {
		_u.SetTargetLang(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQueueState sets the "queue_state" field.
func (_u *JobUpdate) SetQueueState(v job.QueueState) *JobUpdate {
	_u.mutation.SetQueueState(v)
	return _u
}

// SetNillableQueueState sets the "queue_state" field if the given value is not nil.
func (_u *JobUpdate) SetNillableQueueState(v *job.QueueState) *JobUpdate {
	if v != nil {
		_u.SetQueueState(*v)
	}
	return _u
}

// SetInputType sets the "input_type" field.
func (_u *JobUpdate) SetInputType(v string) *JobUpdate {
	_u.mutation.SetInputType(v)
	return _u
}

// SetNillableInputType sets the "input_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableInputType(v *string) *JobUpdate {
	if v != nil {
		_u.SetInputType(*v)
	}
	return _u
}

// SetInputURI sets the "input_uri" field.
func (_u *JobUpdate) SetInputURI(v string) *JobUpdate {
	_u.mutation.SetInputURI(v)
	return _u
}

// SetNillableInputURI sets the "input_uri" field if the given value is not nil.
func (_u *JobUpdate) SetNillableInputURI(v *string) *JobUpdate {
	if v != nil {
		_u.SetInputURI(*v)
	}
	return _u
}

// SetNormalizedURI sets the "normalized_uri" field.
func (_u *JobUpdate) SetNormalizedURI(v string) *JobUpdate {
	_u.mutation.SetNormalizedURI(v)
	return _u
}

// SetNillableNormalizedURI sets the "normalized_uri" field if the given value is not nil.
func (_u *JobUpdate) SetNillableNormalizedURI(v *string) *JobUpdate {
	if v != nil {
		_u.SetNormalizedURI(*v)
	}
	return _u
}

// ClearNormalizedURI clears the value of the "normalized_uri" field.
func (_u *JobUpdate) ClearNormalizedURI() *JobUpdate {
	_u.mutation.ClearNormalizedURI()
	return _u
}

// SetAsrJSONURI sets the "asr_json_uri" field.
func (_u *JobUpdate) SetAsrJSONURI(v string) *JobUpdate {
	_u.mutation.SetAsrJSONURI(v)
	return _u
}

// SetNillableAsrJSONURI sets the "asr_json_uri" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAsrJSONURI(v *string) *JobUpdate {
	if v != nil {
		_u.SetAsrJSONURI(*v)
	}
	return _u
}

// ClearAsrJSONURI clears the value of the "asr_json_uri" field.
func (_u *JobUpdate) ClearAsrJSONURI() *JobUpdate {
	_u.mutation.ClearAsrJSONURI()
	return _u
}

// SetFinalSrtURI sets the "final_srt_uri" field.
func (_u *JobUpdate) SetFinalSrtURI(v string) *JobUpdate {
	_u.mutation.SetFinalSrtURI(v)
	return _u
}

// SetNillableFinalSrtURI sets the "final_srt_uri" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFinalSrtURI(v *string) *JobUpdate {
	if v != nil {
		_u.SetFinalSrtURI(*v)
	}
	return _u
}

// ClearFinalSrtURI clears the value of the "final_srt_uri" field.
func (_u *JobUpdate) ClearFinalSrtURI() *JobUpdate {
	_u.mutation.ClearFinalSrtURI()
	return _u
}

// SetMaxLines sets the "max_lines" field.
func (_u *JobUpdate) SetMaxLines(v int) *JobUpdate {
	_u.mutation.ResetMaxLines()
	_u.mutation.SetMaxLines(v)
	return _u
}

// SetNillableMaxLines sets the "max_lines" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMaxLines(v *int) *JobUpdate {
	if v != nil {
		_u.SetMaxLines(*v)
	}
	return _u
}

// AddMaxLines adds value to the "max_lines" field.
func (_u *JobUpdate) AddMaxLines(v int) *JobUpdate {
	_u.mutation.AddMaxLines(v)
	return _u
}

// SetMaxCharsPerLine sets the "max_chars_per_line" field.
func (_u *JobUpdate) SetMaxCharsPerLine(v int) *JobUpdate {
	_u.mutation.ResetMaxCharsPerLine()
	_u.mutation.SetMaxCharsPerLine(v)
	return _u
}

// SetNillableMaxCharsPerLine sets the "max_chars_per_line" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMaxCharsPerLine(v *int) *JobUpdate {
	if v != nil {
		_u.SetMaxCharsPerLine(*v)
	}
	return _u
}

// AddMaxCharsPerLine adds value to the "max_chars_per_line" field.
func (_u *JobUpdate) AddMaxCharsPerLine(v int) *JobUpdate {
	_u.mutation.AddMaxCharsPerLine(v)
	return _u
}

// SetTargetCps sets the "target_cps" field.
func (_u *JobUpdate) SetTargetCps(v float64) *JobUpdate {
	_u.mutation.ResetTargetCps()
	_u.mutation.SetTargetCps(v)
	return _u
}

// SetNillableTargetCps sets the "target_cps" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTargetCps(v *float64) *JobUpdate {
	if v != nil {
		_u.SetTargetCps(*v)
	}
	return _u
}

// AddTargetCps adds value to the "target_cps" field.
func (_u *JobUpdate) AddTargetCps(v float64) *JobUpdate {
	_u.mutation.AddTargetCps(v)
	return _u
}

// SetMinCueMs sets the "min_cue_ms" field.
func (_u *JobUpdate) SetMinCueMs(v int) *JobUpdate {
	_u.mutation.ResetMinCueMs()
	_u.mutation.SetMinCueMs(v)
	return _u
}

// SetNillableMinCueMs sets the "min_cue_ms" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMinCueMs(v *int) *JobUpdate {
	if v != nil {
		_u.SetMinCueMs(*v)
	}
	return _u
}

// AddMinCueMs adds value to the "min_cue_ms" field.
func (_u *JobUpdate) AddMinCueMs(v int) *JobUpdate {
	_u.mutation.AddMinCueMs(v)
	return _u
}

// SetMaxCueMs sets the "max_cue_ms" field.
func (_u *JobUpdate) SetMaxCueMs(v int) *JobUpdate {
	_u.mutation.ResetMaxCueMs()
	_u.mutation.SetMaxCueMs(v)
	return _u
}

// SetNillableMaxCueMs sets the "max_cue_ms" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMaxCueMs(v *int) *JobUpdate {
	if v != nil {
		_u.SetMaxCueMs(*v)
	}
	return _u
}

// AddMaxCueMs adds value to the "max_cue_ms" field.
func (_u *JobUpdate) AddMaxCueMs(v int) *JobUpdate {
	_u.mutation.AddMaxCueMs(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *JobUpdate) SetRiskLevel(v string) *JobUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRiskLevel(v *string) *JobUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *JobUpdate) ClearRiskLevel() *JobUpdate {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_u *JobUpdate) SetDifficultyScore(v int) *JobUpdate {
	_u.mutation.ResetDifficultyScore()
	_u.mutation.SetDifficultyScore(v)
	return _u
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDifficultyScore(v *int) *JobUpdate {
	if v != nil {
		_u.SetDifficultyScore(*v)
	}
	return _u
}

// AddDifficultyScore adds value to the "difficulty_score" field.
func (_u *JobUpdate) AddDifficultyScore(v int) *JobUpdate {
	_u.mutation.AddDifficultyScore(v)
	return _u
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (_u *JobUpdate) ClearDifficultyScore() *JobUpdate {
	_u.mutation.ClearDifficultyScore()
	return _u
}

// SetStrategistConf sets the "strategist_conf" field.
func (_u *JobUpdate) SetStrategistConf(v int) *JobUpdate {
	_u.mutation.ResetStrategistConf()
	_u.mutation.SetStrategistConf(v)
	return _u
}

// SetNillableStrategistConf sets the "strategist_conf" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStrategistConf(v *int) *JobUpdate {
	if v != nil {
		_u.SetStrategistConf(*v)
	}
	return _u
}

// AddStrategistConf adds value to the "strategist_conf" field.
func (_u *JobUpdate) AddStrategistConf(v int) *JobUpdate {
	_u.mutation.AddStrategistConf(v)
	return _u
}

// ClearStrategistConf clears the value of the "strategist_conf" field.
func (_u *JobUpdate) ClearStrategistConf() *JobUpdate {
	_u.mutation.ClearStrategistConf()
	return _u
}

// SetGenre sets the "genre" field.
func (_u *JobUpdate) SetGenre(v string) *JobUpdate {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *JobUpdate) SetNillableGenre(v *string) *JobUpdate {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// ClearGenre clears the value of the "genre" field.
func (_u *JobUpdate) ClearGenre() *JobUpdate {
	_u.mutation.ClearGenre()
	return _u
}

// SetTone sets the "tone" field.
func (_u *JobUpdate) SetTone(v string) *JobUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTone(v *string) *JobUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// ClearTone clears the value of the "tone" field.
func (_u *JobUpdate) ClearTone() *JobUpdate {
	_u.mutation.ClearTone()
	return _u
}

// SetDomainTags sets the "domain_tags" field.
func (_u *JobUpdate) SetDomainTags(v []string) *JobUpdate {
	_u.mutation.SetDomainTags(v)
	return _u
}

// AppendDomainTags appends value to the "domain_tags" field.
func (_u *JobUpdate) AppendDomainTags(v []string) *JobUpdate {
	_u.mutation.AppendDomainTags(v)
	return _u
}

// ClearDomainTags clears the value of the "domain_tags" field.
func (_u *JobUpdate) ClearDomainTags() *JobUpdate {
	_u.mutation.ClearDomainTags()
	return _u
}

// SetNeedsTerminologist sets the "needs_terminologist" field.
func (_u *JobUpdate) SetNeedsTerminologist(v bool) *JobUpdate {
	_u.mutation.SetNeedsTerminologist(v)
	return _u
}

// SetNillableNeedsTerminologist sets the "needs_terminologist" field if the given value is not nil.
func (_u *JobUpdate) SetNillableNeedsTerminologist(v *bool) *JobUpdate {
	if v != nil {
		_u.SetNeedsTerminologist(*v)
	}
	return _u
}

// ClearNeedsTerminologist clears the value of the "needs_terminologist" field.
func (_u *JobUpdate) ClearNeedsTerminologist() *JobUpdate {
	_u.mutation.ClearNeedsTerminologist()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *JobUpdate) SetClaimedBy(v string) *JobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *JobUpdate) SetNillableClaimedBy(v *string) *JobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *JobUpdate) ClearClaimedBy() *JobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *JobUpdate) SetHeartbeatAt(v time.Time) *JobUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableHeartbeatAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *JobUpdate) ClearHeartbeatAt() *JobUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// AddCueIDs adds the "cues" edge to the JobCue entity by IDs.
func (_u *JobUpdate) AddCueIDs(ids ...string) *JobUpdate {
	_u.mutation.AddCueIDs(ids...)
	return _u
}

// AddCues adds the "cues" edges to the JobCue entity.
func (_u *JobUpdate) AddCues(v ...*JobCue) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCueIDs(ids...)
}

// AddGlossaryTermIDs adds the "glossary_terms" edge to the JobGlossaryTerm entity by IDs.
func (_u *JobUpdate) AddGlossaryTermIDs(ids ...string) *JobUpdate {
	_u.mutation.AddGlossaryTermIDs(ids...)
	return _u
}

// AddGlossaryTerms adds the "glossary_terms" edges to the JobGlossaryTerm entity.
func (_u *JobUpdate) AddGlossaryTerms(v ...*JobGlossaryTerm) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGlossaryTermIDs(ids...)
}

// AddLlmRunIDs adds the "llm_runs" edge to the LLMRun entity by IDs.
func (_u *JobUpdate) AddLlmRunIDs(ids ...string) *JobUpdate {
	_u.mutation.AddLlmRunIDs(ids...)
	return _u
}

// AddLlmRuns adds the "llm_runs" edges to the LLMRun entity.
func (_u *JobUpdate) AddLlmRuns(v ...*LLMRun) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmRunIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCues clears all "cues" edges to the JobCue entity.
func (_u *JobUpdate) ClearCues() *JobUpdate {
	_u.mutation.ClearCues()
	return _u
}

// RemoveCueIDs removes the "cues" edge to JobCue entities by IDs.
func (_u *JobUpdate) RemoveCueIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveCueIDs(ids...)
	return _u
}

// RemoveCues removes "cues" edges to JobCue entities.
func (_u *JobUpdate) RemoveCues(v ...*JobCue) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCueIDs(ids...)
}

// ClearGlossaryTerms clears all "glossary_terms" edges to the JobGlossaryTerm entity.
func (_u *JobUpdate) ClearGlossaryTerms() *JobUpdate {
	_u.mutation.ClearGlossaryTerms()
	return _u
}

// RemoveGlossaryTermIDs removes the "glossary_terms" edge to JobGlossaryTerm entities by IDs.
func (_u *JobUpdate) RemoveGlossaryTermIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveGlossaryTermIDs(ids...)
	return _u
}

// RemoveGlossaryTerms removes "glossary_terms" edges to JobGlossaryTerm entities.
func (_u *JobUpdate) RemoveGlossaryTerms(v ...*JobGlossaryTerm) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGlossaryTermIDs(ids...)
}

// ClearLlmRuns clears all "llm_runs" edges to the LLMRun entity.
func (_u *JobUpdate) ClearLlmRuns() *JobUpdate {
	_u.mutation.ClearLlmRuns()
	return _u
}

// RemoveLlmRunIDs removes the "llm_runs" edge to LLMRun entities by IDs.
func (_u *JobUpdate) RemoveLlmRunIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveLlmRunIDs(ids...)
	return _u
}

// RemoveLlmRuns removes "llm_runs" edges to LLMRun entities.
func (_u *JobUpdate) RemoveLlmRuns(v ...*LLMRun) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QueueState(); ok {
		if err := job.QueueStateValidator(v); err != nil {
			return &ValidationError{Name: "queue_state", err: fmt.Errorf(`ent: validator failed for field "Job.queue_state": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceLang(); ok {
		_spec.SetField(job.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLang(); ok {
		_spec.SetField(job.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QueueState(); ok {
		_spec.SetField(job.FieldQueueState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputType(); ok {
		_spec.SetField(job.FieldInputType, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputURI(); ok {
		_spec.SetField(job.FieldInputURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedURI(); ok {
		_spec.SetField(job.FieldNormalizedURI, field.TypeString, value)
	}
	if _u.mutation.NormalizedURICleared() {
		_spec.ClearField(job.FieldNormalizedURI, field.TypeString)
	}
	if value, ok := _u.mutation.AsrJSONURI(); ok {
		_spec.SetField(job.FieldAsrJSONURI, field.TypeString, value)
	}
	if _u.mutation.AsrJSONURICleared() {
		_spec.ClearField(job.FieldAsrJSONURI, field.TypeString)
	}
	if value, ok := _u.mutation.FinalSrtURI(); ok {
		_spec.SetField(job.FieldFinalSrtURI, field.TypeString, value)
	}
	if _u.mutation.FinalSrtURICleared() {
		_spec.ClearField(job.FieldFinalSrtURI, field.TypeString)
	}
	if value, ok := _u.mutation.MaxLines(); ok {
		_spec.SetField(job.FieldMaxLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLines(); ok {
		_spec.AddField(job.FieldMaxLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCharsPerLine(); ok {
		_spec.SetField(job.FieldMaxCharsPerLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCharsPerLine(); ok {
		_spec.AddField(job.FieldMaxCharsPerLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetCps(); ok {
		_spec.SetField(job.FieldTargetCps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetCps(); ok {
		_spec.AddField(job.FieldTargetCps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinCueMs(); ok {
		_spec.SetField(job.FieldMinCueMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinCueMs(); ok {
		_spec.AddField(job.FieldMinCueMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCueMs(); ok {
		_spec.SetField(job.FieldMaxCueMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCueMs(); ok {
		_spec.AddField(job.FieldMaxCueMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(job.FieldRiskLevel, field.TypeString, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(job.FieldRiskLevel, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyScore(); ok {
		_spec.SetField(job.FieldDifficultyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyScore(); ok {
		_spec.AddField(job.FieldDifficultyScore, field.TypeInt, value)
	}
	if _u.mutation.DifficultyScoreCleared() {
		_spec.ClearField(job.FieldDifficultyScore, field.TypeInt)
	}
	if value, ok := _u.mutation.StrategistConf(); ok {
		_spec.SetField(job.FieldStrategistConf, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrategistConf(); ok {
		_spec.AddField(job.FieldStrategistConf, field.TypeInt, value)
	}
	if _u.mutation.StrategistConfCleared() {
		_spec.ClearField(job.FieldStrategistConf, field.TypeInt)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(job.FieldGenre, field.TypeString, value)
	}
	if _u.mutation.GenreCleared() {
		_spec.ClearField(job.FieldGenre, field.TypeString)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(job.FieldTone, field.TypeString, value)
	}
	if _u.mutation.ToneCleared() {
		_spec.ClearField(job.FieldTone, field.TypeString)
	}
	if value, ok := _u.mutation.DomainTags(); ok {
		_spec.SetField(job.FieldDomainTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomainTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldDomainTags, value)
		})
	}
	if _u.mutation.DomainTagsCleared() {
		_spec.ClearField(job.FieldDomainTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsTerminologist(); ok {
		_spec.SetField(job.FieldNeedsTerminologist, field.TypeBool, value)
	}
	if _u.mutation.NeedsTerminologistCleared() {
		_spec.ClearField(job.FieldNeedsTerminologist, field.TypeBool)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(job.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(job.FieldHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.CuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CuesTable,
			Columns: []string{job.CuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCuesIDs(); len(nodes) > 0 && !_u.mutation.CuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CuesTable,
			Columns: []string{job.CuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CuesTable,
			Columns: []string{job.CuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GlossaryTermsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.GlossaryTermsTable,
			Columns: []string{job.GlossaryTermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGlossaryTermsIDs(); len(nodes) > 0 && !_u.mutation.GlossaryTermsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.GlossaryTermsTable,
			Columns: []string{job.GlossaryTermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GlossaryTermsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.GlossaryTermsTable,
			Columns: []string{job.GlossaryTermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LlmRunsTable,
			Columns: []string{job.LlmRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llmrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmRunsIDs(); len(nodes) > 0 && !_u.mutation.LlmRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LlmRunsTable,
			Columns: []string{job.LlmRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llmrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LlmRunsTable,
			Columns: []string{job.LlmRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llmrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceLang sets the "source_lang" field.
func (_u *JobUpdateOne) SetSourceLang(v string) *JobUpdateOne {
	_u.mutation.SetSourceLang(v)
	return _u
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSourceLang(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSourceLang(*v)
	}
	return _u
}

// SetTargetLang sets the "target_lang" field.
func (_u *JobUpdateOne) SetTargetLang(v string) *JobUpdateOne {
	_u.mutation.SetTargetLang(v)
	return _u
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTargetLang(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTargetLang(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQueueState sets the "queue_state" field.
func (_u *JobUpdateOne) SetQueueState(v job.QueueState) *JobUpdateOne {
	_u.mutation.SetQueueState(v)
	return _u
}

// SetNillableQueueState sets the "queue_state" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableQueueState(v *job.QueueState) *JobUpdateOne {
	if v != nil {
		_u.SetQueueState(*v)
	}
	return _u
}

// SetInputType sets the "input_type" field.
func (_u *JobUpdateOne) SetInputType(v string) *JobUpdateOne {
	_u.mutation.SetInputType(v)
	return _u
}

// SetNillableInputType sets the "input_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableInputType(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetInputType(*v)
	}
	return _u
}

// SetInputURI sets the "input_uri" field.
func (_u *JobUpdateOne) SetInputURI(v string) *JobUpdateOne {
	_u.mutation.SetInputURI(v)
	return _u
}

// SetNillableInputURI sets the "input_uri" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableInputURI(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetInputURI(*v)
	}
	return _u
}

// SetNormalizedURI sets the "normalized_uri" field.
func (_u *JobUpdateOne) SetNormalizedURI(v string) *JobUpdateOne {
	_u.mutation.SetNormalizedURI(v)
	return _u
}

// SetNillableNormalizedURI sets the "normalized_uri" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableNormalizedURI(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetNormalizedURI(*v)
	}
	return _u
}

// ClearNormalizedURI clears the value of the "normalized_uri" field.
func (_u *JobUpdateOne) ClearNormalizedURI() *JobUpdateOne {
	_u.mutation.ClearNormalizedURI()
	return _u
}

// SetAsrJSONURI sets the "asr_json_uri" field.
func (_u *JobUpdateOne) SetAsrJSONURI(v string) *JobUpdateOne {
	_u.mutation.SetAsrJSONURI(v)
	return _u
}

// SetNillableAsrJSONURI sets the "asr_json_uri" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAsrJSONURI(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetAsrJSONURI(*v)
	}
	return _u
}

// ClearAsrJSONURI clears the value of the "asr_json_uri" field.
func (_u *JobUpdateOne) ClearAsrJSONURI() *JobUpdateOne {
	_u.mutation.ClearAsrJSONURI()
	return _u
}

// SetFinalSrtURI sets the "final_srt_uri" field.
func (_u *JobUpdateOne) SetFinalSrtURI(v string) *JobUpdateOne {
	_u.mutation.SetFinalSrtURI(v)
	return _u
}

// SetNillableFinalSrtURI sets the "final_srt_uri" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFinalSrtURI(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFinalSrtURI(*v)
	}
	return _u
}

// ClearFinalSrtURI clears the value of the "final_srt_uri" field.
func (_u *JobUpdateOne) ClearFinalSrtURI() *JobUpdateOne {
	_u.mutation.ClearFinalSrtURI()
	return _u
}

// SetMaxLines sets the "max_lines" field.
func (_u *JobUpdateOne) SetMaxLines(v int) *JobUpdateOne {
	_u.mutation.ResetMaxLines()
	_u.mutation.SetMaxLines(v)
	return _u
}

// SetNillableMaxLines sets the "max_lines" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMaxLines(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMaxLines(*v)
	}
	return _u
}

// AddMaxLines adds value to the "max_lines" field.
func (_u *JobUpdateOne) AddMaxLines(v int) *JobUpdateOne {
	_u.mutation.AddMaxLines(v)
	return _u
}

// SetMaxCharsPerLine sets the "max_chars_per_line" field.
func (_u *JobUpdateOne) SetMaxCharsPerLine(v int) *JobUpdateOne {
	_u.mutation.ResetMaxCharsPerLine()
	_u.mutation.SetMaxCharsPerLine(v)
	return _u
}

// SetNillableMaxCharsPerLine sets the "max_chars_per_line" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMaxCharsPerLine(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMaxCharsPerLine(*v)
	}
	return _u
}

// AddMaxCharsPerLine adds value to the "max_chars_per_line" field.
func (_u *JobUpdateOne) AddMaxCharsPerLine(v int) *JobUpdateOne {
	_u.mutation.AddMaxCharsPerLine(v)
	return _u
}

// SetTargetCps sets the "target_cps" field.
func (_u *JobUpdateOne) SetTargetCps(v float64) *JobUpdateOne {
	_u.mutation.ResetTargetCps()
	_u.mutation.SetTargetCps(v)
	return _u
}

// SetNillableTargetCps sets the "target_cps" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTargetCps(v *float64) *JobUpdateOne {
	if v != nil {
		_u.SetTargetCps(*v)
	}
	return _u
}

// AddTargetCps adds value to the "target_cps" field.
func (_u *JobUpdateOne) AddTargetCps(v float64) *JobUpdateOne {
	_u.mutation.AddTargetCps(v)
	return _u
}

// SetMinCueMs sets the "min_cue_ms" field.
func (_u *JobUpdateOne) SetMinCueMs(v int) *JobUpdateOne {
	_u.mutation.ResetMinCueMs()
	_u.mutation.SetMinCueMs(v)
	return _u
}

// SetNillableMinCueMs sets the "min_cue_ms" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMinCueMs(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMinCueMs(*v)
	}
	return _u
}

// AddMinCueMs adds value to the "min_cue_ms" field.
func (_u *JobUpdateOne) AddMinCueMs(v int) *JobUpdateOne {
	_u.mutation.AddMinCueMs(v)
	return _u
}

// SetMaxCueMs sets the "max_cue_ms" field.
func (_u *JobUpdateOne) SetMaxCueMs(v int) *JobUpdateOne {
	_u.mutation.ResetMaxCueMs()
	_u.mutation.SetMaxCueMs(v)
	return _u
}

// SetNillableMaxCueMs sets the "max_cue_ms" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMaxCueMs(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMaxCueMs(*v)
	}
	return _u
}

// AddMaxCueMs adds value to the "max_cue_ms" field.
func (_u *JobUpdateOne) AddMaxCueMs(v int) *JobUpdateOne {
	_u.mutation.AddMaxCueMs(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *JobUpdateOne) SetRiskLevel(v string) *JobUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRiskLevel(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *JobUpdateOne) ClearRiskLevel() *JobUpdateOne {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_u *JobUpdateOne) SetDifficultyScore(v int) *JobUpdateOne {
	_u.mutation.ResetDifficultyScore()
	_u.mutation.SetDifficultyScore(v)
	return _u
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDifficultyScore(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetDifficultyScore(*v)
	}
	return _u
}

// AddDifficultyScore adds value to the "difficulty_score" field.
func (_u *JobUpdateOne) AddDifficultyScore(v int) *JobUpdateOne {
	_u.mutation.AddDifficultyScore(v)
	return _u
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (_u *JobUpdateOne) ClearDifficultyScore() *JobUpdateOne {
	_u.mutation.ClearDifficultyScore()
	return _u
}

// SetStrategistConf sets the "strategist_conf" field.
func (_u *JobUpdateOne) SetStrategistConf(v int) *JobUpdateOne {
	_u.mutation.ResetStrategistConf()
	_u.mutation.SetStrategistConf(v)
	return _u
}

// SetNillableStrategistConf sets the "strategist_conf" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStrategistConf(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetStrategistConf(*v)
	}
	return _u
}

// AddStrategistConf adds value to the "strategist_conf" field.
func (_u *JobUpdateOne) AddStrategistConf(v int) *JobUpdateOne {
	_u.mutation.AddStrategistConf(v)
	return _u
}

// ClearStrategistConf clears the value of the "strategist_conf" field.
func (_u *JobUpdateOne) ClearStrategistConf() *JobUpdateOne {
	_u.mutation.ClearStrategistConf()
	return _u
}

// SetGenre sets the "genre" field.
func (_u *JobUpdateOne) SetGenre(v string) *JobUpdateOne {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableGenre(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// ClearGenre clears the value of the "genre" field.
func (_u *JobUpdateOne) ClearGenre() *JobUpdateOne {
	_u.mutation.ClearGenre()
	return _u
}

// SetTone sets the "tone" field.
func (_u *JobUpdateOne) SetTone(v string) *JobUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTone(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// ClearTone clears the value of the "tone" field.
func (_u *JobUpdateOne) ClearTone() *JobUpdateOne {
	_u.mutation.ClearTone()
	return _u
}

// SetDomainTags sets the "domain_tags" field.
func (_u *JobUpdateOne) SetDomainTags(v []string) *JobUpdateOne {
	_u.mutation.SetDomainTags(v)
	return _u
}

// AppendDomainTags appends value to the "domain_tags" field.
func (_u *JobUpdateOne) AppendDomainTags(v []string) *JobUpdateOne {
	_u.mutation.AppendDomainTags(v)
	return _u
}

// ClearDomainTags clears the value of the "domain_tags" field.
func (_u *JobUpdateOne) ClearDomainTags() *JobUpdateOne {
	_u.mutation.ClearDomainTags()
	return _u
}

// SetNeedsTerminologist sets the "needs_terminologist" field.
func (_u *JobUpdateOne) SetNeedsTerminologist(v bool) *JobUpdateOne {
	_u.mutation.SetNeedsTerminologist(v)
	return _u
}

// SetNillableNeedsTerminologist sets the "needs_terminologist" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableNeedsTerminologist(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetNeedsTerminologist(*v)
	}
	return _u
}

// ClearNeedsTerminologist clears the value of the "needs_terminologist" field.
func (_u *JobUpdateOne) ClearNeedsTerminologist() *JobUpdateOne {
	_u.mutation.ClearNeedsTerminologist()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *JobUpdateOne) SetClaimedBy(v string) *JobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableClaimedBy(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *JobUpdateOne) ClearClaimedBy() *JobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *JobUpdateOne) SetHeartbeatAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableHeartbeatAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *JobUpdateOne) ClearHeartbeatAt() *JobUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// AddCueIDs adds the "cues" edge to the JobCue entity by IDs.
func (_u *JobUpdateOne) AddCueIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddCueIDs(ids...)
	return _u
}

// AddCues adds the "cues" edges to the JobCue entity.
func (_u *JobUpdateOne) AddCues(v ...*JobCue) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCueIDs(ids...)
}

// AddGlossaryTermIDs adds the "glossary_terms" edge to the JobGlossaryTerm entity by IDs.
func (_u *JobUpdateOne) AddGlossaryTermIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddGlossaryTermIDs(ids...)
	return _u
}

// AddGlossaryTerms adds the "glossary_terms" edges to the JobGlossaryTerm entity.
func (_u *JobUpdateOne) AddGlossaryTerms(v ...*JobGlossaryTerm) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGlossaryTermIDs(ids...)
}

// AddLlmRunIDs adds the "llm_runs" edge to the LLMRun entity by IDs.
func (_u *JobUpdateOne) AddLlmRunIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddLlmRunIDs(ids...)
	return _u
}

// AddLlmRuns adds the "llm_runs" edges to the LLMRun entity.
func (_u *JobUpdateOne) AddLlmRuns(v ...*LLMRun) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmRunIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCues clears all "cues" edges to the JobCue entity.
func (_u *JobUpdateOne) ClearCues() *JobUpdateOne {
	_u.mutation.ClearCues()
	return _u
}

// RemoveCueIDs removes the "cues" edge to JobCue entities by IDs.
func (_u *JobUpdateOne) RemoveCueIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveCueIDs(ids...)
	return _u
}

// RemoveCues removes "cues" edges to JobCue entities.
func (_u *JobUpdateOne) RemoveCues(v ...*JobCue) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCueIDs(ids...)
}

// ClearGlossaryTerms clears all "glossary_terms" edges to the JobGlossaryTerm entity.
func (_u *JobUpdateOne) ClearGlossaryTerms() *JobUpdateOne {
	_u.mutation.ClearGlossaryTerms()
	return _u
}

// RemoveGlossaryTermIDs removes the "glossary_terms" edge to JobGlossaryTerm entities by IDs.
func (_u *JobUpdateOne) RemoveGlossaryTermIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveGlossaryTermIDs(ids...)
	return _u
}

// RemoveGlossaryTerms removes "glossary_terms" edges to JobGlossaryTerm entities.
func (_u *JobUpdateOne) RemoveGlossaryTerms(v ...*JobGlossaryTerm) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGlossaryTermIDs(ids...)
}

// ClearLlmRuns clears all "llm_runs" edges to the LLMRun entity.
func (_u *JobUpdateOne) ClearLlmRuns() *JobUpdateOne {
	_u.mutation.ClearLlmRuns()
	return _u
}

// RemoveLlmRunIDs removes the "llm_runs" edge to LLMRun entities by IDs.
func (_u *JobUpdateOne) RemoveLlmRunIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveLlmRunIDs(ids...)
	return _u
}

// RemoveLlmRuns removes "llm_runs" edges to LLMRun entities.
func (_u *JobUpdateOne) RemoveLlmRuns(v ...*LLMRun) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmRunIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QueueState(); ok {
		if err := job.QueueStateValidator(v); err != nil {
			return &ValidationError{Name: "queue_state", err: fmt.Errorf(`ent: validator failed for field "Job.queue_state": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceLang(); ok {
		_spec.SetField(job.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLang(); ok {
		_spec.SetField(job.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QueueState(); ok {
		_spec.SetField(job.FieldQueueState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputType(); ok {
		_spec.SetField(job.FieldInputType, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputURI(); ok {
		_spec.SetField(job.FieldInputURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedURI(); ok {
		_spec.SetField(job.FieldNormalizedURI, field.TypeString, value)
	}
	if _u.mutation.NormalizedURICleared() {
		_spec.ClearField(job.FieldNormalizedURI, field.TypeString)
	}
	if value, ok := _u.mutation.AsrJSONURI(); ok {
		_spec.SetField(job.FieldAsrJSONURI, field.TypeString, value)
	}
	if _u.mutation.AsrJSONURICleared() {
		_spec.ClearField(job.FieldAsrJSONURI, field.TypeString)
	}
	if value, ok := _u.mutation.FinalSrtURI(); ok {
		_spec.SetField(job.FieldFinalSrtURI, field.TypeString, value)
	}
	if _u.mutation.FinalSrtURICleared() {
		_spec.ClearField(job.FieldFinalSrtURI, field.TypeString)
	}
	if value, ok := _u.mutation.MaxLines(); ok {
		_spec.SetField(job.FieldMaxLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLines(); ok {
		_spec.AddField(job.FieldMaxLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCharsPerLine(); ok {
		_spec.SetField(job.FieldMaxCharsPerLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCharsPerLine(); ok {
		_spec.AddField(job.FieldMaxCharsPerLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetCps(); ok {
		_spec.SetField(job.FieldTargetCps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetCps(); ok {
		_spec.AddField(job.FieldTargetCps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinCueMs(); ok {
		_spec.SetField(job.FieldMinCueMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinCueMs(); ok {
		_spec.AddField(job.FieldMinCueMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCueMs(); ok {
		_spec.SetField(job.FieldMaxCueMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCueMs(); ok {
		_spec.AddField(job.FieldMaxCueMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(job.FieldRiskLevel, field.TypeString, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(job.FieldRiskLevel, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyScore(); ok {
		_spec.SetField(job.FieldDifficultyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyScore(); ok {
		_spec.AddField(job.FieldDifficultyScore, field.TypeInt, value)
	}
	if _u.mutation.DifficultyScoreCleared() {
		_spec.ClearField(job.FieldDifficultyScore, field.TypeInt)
	}
	if value, ok := _u.mutation.StrategistConf(); ok {
		_spec.SetField(job.FieldStrategistConf, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrategistConf(); ok {
		_spec.AddField(job.FieldStrategistConf, field.TypeInt, value)
	}
	if _u.mutation.StrategistConfCleared() {
		_spec.ClearField(job.FieldStrategistConf, field.TypeInt)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(job.FieldGenre, field.TypeString, value)
	}
	if _u.mutation.GenreCleared() {
		_spec.ClearField(job.FieldGenre, field.TypeString)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(job.FieldTone, field.TypeString, value)
	}
	if _u.mutation.ToneCleared() {
		_spec.ClearField(job.FieldTone, field.TypeString)
	}
	if value, ok := _u.mutation.DomainTags(); ok {
		_spec.SetField(job.FieldDomainTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomainTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldDomainTags, value)
		})
	}
	if _u.mutation.DomainTagsCleared() {
		_spec.ClearField(job.FieldDomainTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsTerminologist(); ok {
		_spec.SetField(job.FieldNeedsTerminologist, field.TypeBool, value)
	}
	if _u.mutation.NeedsTerminologistCleared() {
		_spec.ClearField(job.FieldNeedsTerminologist, field.TypeBool)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(job.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(job.FieldHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.CuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CuesTable,
			Columns: []string{job.CuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCuesIDs(); len(nodes) > 0 && !_u.mutation.CuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CuesTable,
			Columns: []string{job.CuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CuesTable,
			Columns: []string{job.CuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GlossaryTermsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.GlossaryTermsTable,
			Columns: []string{job.GlossaryTermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGlossaryTermsIDs(); len(nodes) > 0 && !_u.mutation.GlossaryTermsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.GlossaryTermsTable,
			Columns: []string{job.GlossaryTermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GlossaryTermsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.GlossaryTermsTable,
			Columns: []string{job.GlossaryTermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LlmRunsTable,
			Columns: []string{job.LlmRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llmrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmRunsIDs(); len(nodes) > 0 && !_u.mutation.LlmRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LlmRunsTable,
			Columns: []string{job.LlmRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llmrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LlmRunsTable,
			Columns: []string{job.LlmRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llmrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
