// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// LLMRunUpdate is the builder for updating LLMRun entities.
type LLMRunUpdate struct {
	config
	hooks    []Hook
	mutation *LLMRunMutation
}

// Where appends a list predicates to the LLMRunUpdate builder.
func (_u *LLMRunUpdate) Where(ps ...predicate.LLMRun) *LLMRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *LLMRunUpdate) SetJobID(v string) *LLMRunUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableJobID(v *string) *LLMRunUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *LLMRunUpdate) ClearJobID() *LLMRunUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetCueID sets the "cue_id" field.
func (_u *LLMRunUpdate) SetCueID(v string) *LLMRunUpdate {
	_u.mutation.SetCueID(v)
	return _u
}

// SetNillableCueID sets the "cue_id" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableCueID(v *string) *LLMRunUpdate {
	if v != nil {
		_u.SetCueID(*v)
	}
	return _u
}

// ClearCueID clears the value of the "cue_id" field.
func (_u *LLMRunUpdate) ClearCueID() *LLMRunUpdate {
	_u.mutation.ClearCueID()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *LLMRunUpdate) SetAgentName(v string) *LLMRunUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableAgentName(v *string) *LLMRunUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMRunUpdate) SetModel(v string) *LLMRunUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableModel(v *string) *LLMRunUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMRunUpdate) SetProvider(v string) *LLMRunUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableProvider(v *string) *LLMRunUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *LLMRunUpdate) ClearProvider() *LLMRunUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *LLMRunUpdate) SetStartedAt(v time.Time) *LLMRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableStartedAt(v *time.Time) *LLMRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *LLMRunUpdate) SetFinishedAt(v time.Time) *LLMRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableFinishedAt(v *time.Time) *LLMRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *LLMRunUpdate) ClearFinishedAt() *LLMRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMRunUpdate) SetPromptTokens(v int) *LLMRunUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillablePromptTokens(v *int) *LLMRunUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMRunUpdate) AddPromptTokens(v int) *LLMRunUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *LLMRunUpdate) ClearPromptTokens() *LLMRunUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMRunUpdate) SetCompletionTokens(v int) *LLMRunUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableCompletionTokens(v *int) *LLMRunUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMRunUpdate) AddCompletionTokens(v int) *LLMRunUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *LLMRunUpdate) ClearCompletionTokens() *LLMRunUpdate {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *LLMRunUpdate) SetCostUsd(v float64) *LLMRunUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableCostUsd(v *float64) *LLMRunUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *LLMRunUpdate) AddCostUsd(v float64) *LLMRunUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *LLMRunUpdate) ClearCostUsd() *LLMRunUpdate {
	_u.mutation.ClearCostUsd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LLMRunUpdate) SetStatus(v llmrun.Status) *LLMRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableStatus(v *llmrun.Status) *LLMRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMRunUpdate) SetErrorMessage(v string) *LLMRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableErrorMessage(v *string) *LLMRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMRunUpdate) ClearErrorMessage() *LLMRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInputSha sets the "input_sha" field.
func (_u *LLMRunUpdate) SetInputSha(v string) *LLMRunUpdate {
	_u.mutation.SetInputSha(v)
	return _u
}

// SetNillableInputSha sets the "input_sha" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableInputSha(v *string) *LLMRunUpdate {
	if v != nil {
		_u.SetInputSha(*v)
	}
	return _u
}

// ClearInputSha clears the value of the "input_sha" field.
func (_u *LLMRunUpdate) ClearInputSha() *LLMRunUpdate {
	_u.mutation.ClearInputSha()
	return _u
}

// SetOutputSha sets the "output_sha" field.
func (_u *LLMRunUpdate) SetOutputSha(v string) *LLMRunUpdate {
	_u.mutation.SetOutputSha(v)
	return _u
}

// SetNillableOutputSha sets the "output_sha" field if the given value is not nil.
func (_u *LLMRunUpdate) SetNillableOutputSha(v *string) *LLMRunUpdate {
	if v != nil {
		_u.SetOutputSha(*v)
	}
	return _u
}

// ClearOutputSha clears the value of the "output_sha" field.
func (_u *LLMRunUpdate) ClearOutputSha() *LLMRunUpdate {
	_u.mutation.ClearOutputSha()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *LLMRunUpdate) SetMeta(v map[string]interface{}) *LLMRunUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *LLMRunUpdate) ClearMeta() *LLMRunUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *LLMRunUpdate) SetJob(v *Job) *LLMRunUpdate {
	return _u.SetJobID(v.ID)
}

// SetCue sets the "cue" edge to the JobCue entity.
func (_u *LLMRunUpdate) SetCue(v *JobCue) *LLMRunUpdate {
	return _u.SetCueID(v.ID)
}

// Mutation returns the LLMRunMutation object of the builder.
func (_u *LLMRunUpdate) Mutation() *LLMRunMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *LLMRunUpdate) ClearJob() *LLMRunUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearCue clears the "cue" edge to the JobCue entity.
func (_u *LLMRunUpdate) ClearCue() *LLMRunUpdate {
	_u.mutation.ClearCue()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := llmrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmrun.Table, llmrun.Columns, sqlgraph.NewFieldSpec(llmrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(llmrun.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmrun.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(llmrun.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(llmrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(llmrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(llmrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llmrun.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llmrun.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(llmrun.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llmrun.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llmrun.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(llmrun.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(llmrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(llmrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(llmrun.FieldCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(llmrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InputSha(); ok {
		_spec.SetField(llmrun.FieldInputSha, field.TypeString, value)
	}
	if _u.mutation.InputShaCleared() {
		_spec.ClearField(llmrun.FieldInputSha, field.TypeString)
	}
	if value, ok := _u.mutation.OutputSha(); ok {
		_spec.SetField(llmrun.FieldOutputSha, field.TypeString, value)
	}
	if _u.mutation.OutputShaCleared() {
		_spec.ClearField(llmrun.FieldOutputSha, field.TypeString)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(llmrun.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(llmrun.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmrun.JobTable,
			Columns: []string{llmrun.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmrun.JobTable,
			Columns: []string{llmrun.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CueCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmrun.CueTable,
			Columns: []string{llmrun.CueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmrun.CueTable,
			Columns: []string{llmrun.CueColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMRunUpdateOne is the builder for updating a single LLMRun entity.
type LLMRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMRunMutation
}

// SetJobID sets the "job_id" field.
func (_u *LLMRunUpdateOne) SetJobID(v string) *LLMRunUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableJobID(v *string) *LLMRunUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *LLMRunUpdateOne) ClearJobID() *LLMRunUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetCueID sets the "cue_id" field.
func (_u *LLMRunUpdateOne) SetCueID(v string) *LLMRunUpdateOne {
	_u.mutation.SetCueID(v)
	return _u
}

// SetNillableCueID sets the "cue_id" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableCueID(v *string) *LLMRunUpdateOne {
	if v != nil {
		_u.SetCueID(*v)
	}
	return _u
}

// ClearCueID clears the value of the "cue_id" field.
func (_u *LLMRunUpdateOne) ClearCueID() *LLMRunUpdateOne {
	_u.mutation.ClearCueID()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *LLMRunUpdateOne) SetAgentName(v string) *LLMRunUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableAgentName(v *string) *LLMRunUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMRunUpdateOne) SetModel(v string) *LLMRunUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableModel(v *string) *LLMRunUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMRunUpdateOne) SetProvider(v string) *LLMRunUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableProvider(v *string) *LLMRunUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *LLMRunUpdateOne) ClearProvider() *LLMRunUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *LLMRunUpdateOne) SetStartedAt(v time.Time) *LLMRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableStartedAt(v *time.Time) *LLMRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *LLMRunUpdateOne) SetFinishedAt(v time.Time) *LLMRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableFinishedAt(v *time.Time) *LLMRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *LLMRunUpdateOne) ClearFinishedAt() *LLMRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMRunUpdateOne) SetPromptTokens(v int) *LLMRunUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillablePromptTokens(v *int) *LLMRunUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMRunUpdateOne) AddPromptTokens(v int) *LLMRunUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *LLMRunUpdateOne) ClearPromptTokens() *LLMRunUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMRunUpdateOne) SetCompletionTokens(v int) *LLMRunUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableCompletionTokens(v *int) *LLMRunUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMRunUpdateOne) AddCompletionTokens(v int) *LLMRunUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *LLMRunUpdateOne) ClearCompletionTokens() *LLMRunUpdateOne {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *LLMRunUpdateOne) SetCostUsd(v float64) *LLMRunUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableCostUsd(v *float64) *LLMRunUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *LLMRunUpdateOne) AddCostUsd(v float64) *LLMRunUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *LLMRunUpdateOne) ClearCostUsd() *LLMRunUpdateOne {
	_u.mutation.ClearCostUsd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LLMRunUpdateOne) SetStatus(v llmrun.Status) *LLMRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableStatus(v *llmrun.Status) *LLMRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMRunUpdateOne) SetErrorMessage(v string) *LLMRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableErrorMessage(v *string) *LLMRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMRunUpdateOne) ClearErrorMessage() *LLMRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInputSha sets the "input_sha" field.
func (_u *LLMRunUpdateOne) SetInputSha(v string) *LLMRunUpdateOne {
	_u.mutation.SetInputSha(v)
	return _u
}

// SetNillableInputSha sets the "input_sha" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableInputSha(v *string) *LLMRunUpdateOne {
	if v != nil {
		_u.SetInputSha(*v)
	}
	return _u
}

// ClearInputSha clears the value of the "input_sha" field.
func (_u *LLMRunUpdateOne) ClearInputSha() *LLMRunUpdateOne {
	_u.mutation.ClearInputSha()
	return _u
}

// SetOutputSha sets the "output_sha" field.
func (_u *LLMRunUpdateOne) SetOutputSha(v string) *LLMRunUpdateOne {
	_u.mutation.SetOutputSha(v)
	return _u
}

// SetNillableOutputSha sets the "output_sha" field if the given value is not nil.
func (_u *LLMRunUpdateOne) SetNillableOutputSha(v *string) *LLMRunUpdateOne {
	if v != nil {
		_u.SetOutputSha(*v)
	}
	return _u
}

// ClearOutputSha clears the value of the "output_sha" field.
func (_u *LLMRunUpdateOne) ClearOutputSha() *LLMRunUpdateOne {
	_u.mutation.ClearOutputSha()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *LLMRunUpdateOne) SetMeta(v map[string]interface{}) *LLMRunUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *LLMRunUpdateOne) ClearMeta() *LLMRunUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *LLMRunUpdateOne) SetJob(v *Job) *LLMRunUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetCue sets the "cue" edge to the JobCue entity.
func (_u *LLMRunUpdateOne) SetCue(v *JobCue) *LLMRunUpdateOne {
	return _u.SetCueID(v.ID)
}

// Mutation returns the LLMRunMutation object of the builder.
func (_u *LLMRunUpdateOne) Mutation() *LLMRunMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *LLMRunUpdateOne) ClearJob() *LLMRunUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearCue clears the "cue" edge to the JobCue entity.
func (_u *LLMRunUpdateOne) ClearCue() *LLMRunUpdateOne {
	_u.mutation.ClearCue()
	return _u
}

// Where appends a list predicates to the LLMRunUpdate builder.
func (_u *LLMRunUpdateOne) Where(ps ...predicate.LLMRun) *LLMRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMRunUpdateOne) Select(field string, fields ...string) *LLMRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMRun entity.
func (_u *LLMRunUpdateOne) Save(ctx context.Context) (*LLMRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRunUpdateOne) SaveX(ctx context.Context) *LLMRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := llmrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMRunUpdateOne) sqlSave(ctx context.Context) (_node *LLMRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmrun.Table, llmrun.Columns, sqlgraph.NewFieldSpec(llmrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmrun.FieldID)
		for _, f := range fields {
			if !llmrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmrun.FieldID {
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
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(llmrun.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmrun.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(llmrun.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(llmrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(llmrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(llmrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llmrun.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llmrun.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(llmrun.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llmrun.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llmrun.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(llmrun.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(llmrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(llmrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(llmrun.FieldCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(llmrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InputSha(); ok {
		_spec.SetField(llmrun.FieldInputSha, field.TypeString, value)
	}
	if _u.mutation.InputShaCleared() {
		_spec.ClearField(llmrun.FieldInputSha, field.TypeString)
	}
	if value, ok := _u.mutation.OutputSha(); ok {
		_spec.SetField(llmrun.FieldOutputSha, field.TypeString, value)
	}
	if _u.mutation.OutputShaCleared() {
		_spec.ClearField(llmrun.FieldOutputSha, field.TypeString)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(llmrun.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(llmrun.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmrun.JobTable,
			Columns: []string{llmrun.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmrun.JobTable,
			Columns: []string{llmrun.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CueCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmrun.CueTable,
			Columns: []string{llmrun.CueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmrun.CueTable,
			Columns: []string{llmrun.CueColumn},
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
	_node = &LLMRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
