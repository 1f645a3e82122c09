// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourceLang sets the "source_lang" field.
func (_c *JobCreate) SetSourceLang(v string) *JobCreate {
	_c.mutation.SetSourceLang(v)
	return _c
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_c *JobCreate) SetNillableSourceLang(v *string) *JobCreate {
	if v != nil {
		_c.SetSourceLang(*v)
	}
	return _c
}

// SetTargetLang sets the "target_lang" field.
func (_c *JobCreate) SetTargetLang(v string) *JobCreate {
	_c.mutation.SetTargetLang(v)
	return _c
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_c *JobCreate) SetNillableTargetLang(v *string) *JobCreate {
	if v != nil {
		_c.SetTargetLang(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetQueueState sets the "queue_state" field.
func (_c *JobCreate) SetQueueState(v job.QueueState) *JobCreate {
	_c.mutation.SetQueueState(v)
	return _c
}

// SetNillableQueueState sets the "queue_state" field if the given value is not nil.
func (_c *JobCreate) SetNillableQueueState(v *job.QueueState) *JobCreate {
	if v != nil {
		_c.SetQueueState(*v)
	}
	return _c
}

// SetInputType sets the "input_type" field.
func (_c *JobCreate) SetInputType(v string) *JobCreate {
	_c.mutation.SetInputType(v)
	return _c
}

// SetNillableInputType sets the "input_type" field if the given value is not nil.
func (_c *JobCreate) SetNillableInputType(v *string) *JobCreate {
	if v != nil {
		_c.SetInputType(*v)
	}
	return _c
}

// SetInputURI sets the "input_uri" field.
func (_c *JobCreate) SetInputURI(v string) *JobCreate {
	_c.mutation.SetInputURI(v)
	return _c
}

// SetNormalizedURI sets the "normalized_uri" field.
func (_c *JobCreate) SetNormalizedURI(v string) *JobCreate {
	_c.mutation.SetNormalizedURI(v)
	return _c
}

// SetNillableNormalizedURI sets the "normalized_uri" field if the given value is not nil.
func (_c *JobCreate) SetNillableNormalizedURI(v *string) *JobCreate {
	if v != nil {
		_c.SetNormalizedURI(*v)
	}
	return _c
}

// SetAsrJSONURI sets the "asr_json_uri" field.
func (_c *JobCreate) SetAsrJSONURI(v string) *JobCreate {
	_c.mutation.SetAsrJSONURI(v)
	return _c
}

// SetNillableAsrJSONURI sets the "asr_json_uri" field if the given value is not nil.
func (_c *JobCreate) SetNillableAsrJSONURI(v *string) *JobCreate {
	if v != nil {
		_c.SetAsrJSONURI(*v)
	}
	return _c
}

// SetFinalSrtURI sets the "final_srt_uri" field.
func (_c *JobCreate) SetFinalSrtURI(v string) *JobCreate {
	_c.mutation.SetFinalSrtURI(v)
	return _c
}

// SetNillableFinalSrtURI sets the "final_srt_uri" field if the given value is not nil.
func (_c *JobCreate) SetNillableFinalSrtURI(v *string) *JobCreate {
	if v != nil {
		_c.SetFinalSrtURI(*v)
	}
	return _c
}

// SetMaxLines sets the "max_lines" field.
func (_c *JobCreate) SetMaxLines(v int) *JobCreate {
	_c.mutation.SetMaxLines(v)
	return _c
}

// SetNillableMaxLines sets the "max_lines" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxLines(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxLines(*v)
	}
	return _c
}

// SetMaxCharsPerLine sets the "max_chars_per_line" field.
func (_c *JobCreate) SetMaxCharsPerLine(v int) *JobCreate {
	_c.mutation.SetMaxCharsPerLine(v)
	return _c
}

// SetNillableMaxCharsPerLine sets the "max_chars_per_line" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxCharsPerLine(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxCharsPerLine(*v)
	}
	return _c
}

// SetTargetCps sets the "target_cps" field.
func (_c *JobCreate) SetTargetCps(v float64) *JobCreate {
	_c.mutation.SetTargetCps(v)
	return _c
}

// SetNillableTargetCps sets the "target_cps" field if the given value is not nil.
func (_c *JobCreate) SetNillableTargetCps(v *float64) *JobCreate {
	if v != nil {
		_c.SetTargetCps(*v)
	}
	return _c
}

// SetMinCueMs sets the "min_cue_ms" field.
func (_c *JobCreate) SetMinCueMs(v int) *JobCreate {
	_c.mutation.SetMinCueMs(v)
	return _c
}

// SetNillableMinCueMs sets the "min_cue_ms" field if the given value is not nil.
func (_c *JobCreate) SetNillableMinCueMs(v *int) *JobCreate {
	if v != nil {
		_c.SetMinCueMs(*v)
	}
	return _c
}

// SetMaxCueMs sets the "max_cue_ms" field.
func (_c *JobCreate) SetMaxCueMs(v int) *JobCreate {
	_c.mutation.SetMaxCueMs(v)
	return _c
}

// SetNillableMaxCueMs sets the "max_cue_ms" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxCueMs(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxCueMs(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *JobCreate) SetRiskLevel(v string) *JobCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *JobCreate) SetNillableRiskLevel(v *string) *JobCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_c *JobCreate) SetDifficultyScore(v int) *JobCreate {
	_c.mutation.SetDifficultyScore(v)
	return _c
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_c *JobCreate) SetNillableDifficultyScore(v *int) *JobCreate {
	if v != nil {
		_c.SetDifficultyScore(*v)
	}
	return _c
}

// SetStrategistConf sets the "strategist_conf" field.
func (_c *JobCreate) SetStrategistConf(v int) *JobCreate {
	_c.mutation.SetStrategistConf(v)
	return _c
}

// SetNillableStrategistConf sets the "strategist_conf" field if the given value is not nil.
func (_c *JobCreate) SetNillableStrategistConf(v *int) *JobCreate {
	if v != nil {
		_c.SetStrategistConf(*v)
	}
	return _c
}

// SetGenre sets the "genre" field.
func (_c *JobCreate) SetGenre(v string) *JobCreate {
	_c.mutation.SetGenre(v)
	return _c
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_c *JobCreate) SetNillableGenre(v *string) *JobCreate {
	if v != nil {
		_c.SetGenre(*v)
	}
	return _c
}

// SetTone sets the "tone" field.
func (_c *JobCreate) SetTone(v string) *JobCreate {
	_c.mutation.SetTone(v)
	return _c
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_c *JobCreate) SetNillableTone(v *string) *JobCreate {
	if v != nil {
		_c.SetTone(*v)
	}
	return _c
}

// SetDomainTags sets the "domain_tags" field.
func (_c *JobCreate) SetDomainTags(v []string) *JobCreate {
	_c.mutation.SetDomainTags(v)
	return _c
}

// SetNeedsTerminologist sets the "needs_terminologist" field.
func (_c *JobCreate) SetNeedsTerminologist(v bool) *JobCreate {
	_c.mutation.SetNeedsTerminologist(v)
	return _c
}

// SetNillableNeedsTerminologist sets the "needs_terminologist" field if the given value is not nil.
func (_c *JobCreate) SetNillableNeedsTerminologist(v *bool) *JobCreate {
	if v != nil {
		_c.SetNeedsTerminologist(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobCreate) SetErrorMessage(v string) *JobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *JobCreate) SetClaimedBy(v string) *JobCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *JobCreate) SetNillableClaimedBy(v *string) *JobCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *JobCreate) SetHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCueIDs adds the "cues" edge to the JobCue entity by IDs.
func (_c *JobCreate) AddCueIDs(ids ...string) *JobCreate {
	_c.mutation.AddCueIDs(ids...)
	return _c
}

// AddCues adds the "cues" edges to the JobCue entity.
func (_c *JobCreate) AddCues(v ...*JobCue) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCueIDs(ids...)
}

// AddGlossaryTermIDs adds the "glossary_terms" edge to the JobGlossaryTerm entity by IDs.
func (_c *JobCreate) AddGlossaryTermIDs(ids ...string) *JobCreate {
	_c.mutation.AddGlossaryTermIDs(ids...)
	return _c
}

// AddGlossaryTerms adds the "glossary_terms" edges to the JobGlossaryTerm entity.
func (_c *JobCreate) AddGlossaryTerms(v ...*JobGlossaryTerm) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGlossaryTermIDs(ids...)
}

// AddLlmRunIDs adds the "llm_runs" edge to the LLMRun entity by IDs.
func (_c *JobCreate) AddLlmRunIDs(ids ...string) *JobCreate {
	_c.mutation.AddLlmRunIDs(ids...)
	return _c
}

// AddLlmRuns adds the "llm_runs" edges to the LLMRun entity.
func (_c *JobCreate) AddLlmRuns(v ...*LLMRun) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmRunIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SourceLang(); !ok {
		v := job.DefaultSourceLang
		_c.mutation.SetSourceLang(v)
	}
	if _, ok := _c.mutation.TargetLang(); !ok {
		v := job.DefaultTargetLang
		_c.mutation.SetTargetLang(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.QueueState(); !ok {
		v := job.DefaultQueueState
		_c.mutation.SetQueueState(v)
	}
	if _, ok := _c.mutation.InputType(); !ok {
		v := job.DefaultInputType
		_c.mutation.SetInputType(v)
	}
	if _, ok := _c.mutation.MaxLines(); !ok {
		v := job.DefaultMaxLines
		_c.mutation.SetMaxLines(v)
	}
	if _, ok := _c.mutation.MaxCharsPerLine(); !ok {
		v := job.DefaultMaxCharsPerLine
		_c.mutation.SetMaxCharsPerLine(v)
	}
	if _, ok := _c.mutation.TargetCps(); !ok {
		v := job.DefaultTargetCps
		_c.mutation.SetTargetCps(v)
	}
	if _, ok := _c.mutation.MinCueMs(); !ok {
		v := job.DefaultMinCueMs
		_c.mutation.SetMinCueMs(v)
	}
	if _, ok := _c.mutation.MaxCueMs(); !ok {
		v := job.DefaultMaxCueMs
		_c.mutation.SetMaxCueMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	if _, ok := _c.mutation.SourceLang(); !ok {
		return &ValidationError{Name: "source_lang", err: errors.New(`ent: missing required field "Job.source_lang"`)}
	}
	if _, ok := _c.mutation.TargetLang(); !ok {
		return &ValidationError{Name: "target_lang", err: errors.New(`ent: missing required field "Job.target_lang"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QueueState(); !ok {
		return &ValidationError{Name: "queue_state", err: errors.New(`ent: missing required field "Job.queue_state"`)}
	}
	if v, ok := _c.mutation.QueueState(); ok {
		if err := job.QueueStateValidator(v); err != nil {
			return &ValidationError{Name: "queue_state", err: fmt.Errorf(`ent: validator failed for field "Job.queue_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputType(); !ok {
		return &ValidationError{Name: "input_type", err: errors.New(`ent: missing required field "Job.input_type"`)}
	}
	if _, ok := _c.mutation.InputURI(); !ok {
		return &ValidationError{Name: "input_uri", err: errors.New(`ent: missing required field "Job.input_uri"`)}
	}
	if _, ok := _c.mutation.MaxLines(); !ok {
		return &ValidationError{Name: "max_lines", err: errors.New(`ent: missing required field "Job.max_lines"`)}
	}
	if _, ok := _c.mutation.MaxCharsPerLine(); !ok {
		return &ValidationError{Name: "max_chars_per_line", err: errors.New(`ent: missing required field "Job.max_chars_per_line"`)}
	}
	if _, ok := _c.mutation.TargetCps(); !ok {
		return &ValidationError{Name: "target_cps", err: errors.New(`ent: missing required field "Job.target_cps"`)}
	}
	if _, ok := _c.mutation.MinCueMs(); !ok {
		return &ValidationError{Name: "min_cue_ms", err: errors.New(`ent: missing required field "Job.min_cue_ms"`)}
	}
	if _, ok := _c.mutation.MaxCueMs(); !ok {
		return &ValidationError{Name: "max_cue_ms", err: errors.New(`ent: missing required field "Job.max_cue_ms"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourceLang(); ok {
		_spec.SetField(job.FieldSourceLang, field.TypeString, value)
		_node.SourceLang = value
	}
	if value, ok := _c.mutation.TargetLang(); ok {
		_spec.SetField(job.FieldTargetLang, field.TypeString, value)
		_node.TargetLang = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.QueueState(); ok {
		_spec.SetField(job.FieldQueueState, field.TypeEnum, value)
		_node.QueueState = value
	}
	if value, ok := _c.mutation.InputType(); ok {
		_spec.SetField(job.FieldInputType, field.TypeString, value)
		_node.InputType = value
	}
	if value, ok := _c.mutation.InputURI(); ok {
		_spec.SetField(job.FieldInputURI, field.TypeString, value)
		_node.InputURI = value
	}
	if value, ok := _c.mutation.NormalizedURI(); ok {
		_spec.SetField(job.FieldNormalizedURI, field.TypeString, value)
		_node.NormalizedURI = &value
	}
	if value, ok := _c.mutation.AsrJSONURI(); ok {
		_spec.SetField(job.FieldAsrJSONURI, field.TypeString, value)
		_node.AsrJSONURI = &value
	}
	if value, ok := _c.mutation.FinalSrtURI(); ok {
		_spec.SetField(job.FieldFinalSrtURI, field.TypeString, value)
		_node.FinalSrtURI = &value
	}
	if value, ok := _c.mutation.MaxLines(); ok {
		_spec.SetField(job.FieldMaxLines, field.TypeInt, value)
		_node.MaxLines = value
	}
	if value, ok := _c.mutation.MaxCharsPerLine(); ok {
		_spec.SetField(job.FieldMaxCharsPerLine, field.TypeInt, value)
		_node.MaxCharsPerLine = value
	}
	if value, ok := _c.mutation.TargetCps(); ok {
		_spec.SetField(job.FieldTargetCps, field.TypeFloat64, value)
		_node.TargetCps = value
	}
	if value, ok := _c.mutation.MinCueMs(); ok {
		_spec.SetField(job.FieldMinCueMs, field.TypeInt, value)
		_node.MinCueMs = value
	}
	if value, ok := _c.mutation.MaxCueMs(); ok {
		_spec.SetField(job.FieldMaxCueMs, field.TypeInt, value)
		_node.MaxCueMs = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(job.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = &value
	}
	if value, ok := _c.mutation.DifficultyScore(); ok {
		_spec.SetField(job.FieldDifficultyScore, field.TypeInt, value)
		_node.DifficultyScore = &value
	}
	if value, ok := _c.mutation.StrategistConf(); ok {
		_spec.SetField(job.FieldStrategistConf, field.TypeInt, value)
		_node.StrategistConf = &value
	}
	if value, ok := _c.mutation.Genre(); ok {
		_spec.SetField(job.FieldGenre, field.TypeString, value)
		_node.Genre = &value
	}
	if value, ok := _c.mutation.Tone(); ok {
		_spec.SetField(job.FieldTone, field.TypeString, value)
		_node.Tone = &value
	}
	if value, ok := _c.mutation.DomainTags(); ok {
		_spec.SetField(job.FieldDomainTags, field.TypeJSON, value)
		_node.DomainTags = value
	}
	if value, ok := _c.mutation.NeedsTerminologist(); ok {
		_spec.SetField(job.FieldNeedsTerminologist, field.TypeBool, value)
		_node.NeedsTerminologist = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if nodes := _c.mutation.CuesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GlossaryTermsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LlmRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
