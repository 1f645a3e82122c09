// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// JobCueUpdate is the builder for updating JobCue entities.
type JobCueUpdate struct {
	config
	hooks    []Hook
	mutation *JobCueMutation
}

// Where appends a list predicates to the JobCueUpdate builder.
func (_u *JobCueUpdate) Where(ps ...predicate.JobCue) *JobCueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCueIndex sets the "cue_index" field.
func (_u *JobCueUpdate) SetCueIndex(v int) *JobCueUpdate {
	_u.mutation.ResetCueIndex()
	_u.mutation.SetCueIndex(v)
	return _u
}

// SetNillableCueIndex sets the "cue_index" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableCueIndex(v *int) *JobCueUpdate {
	if v != nil {
		_u.SetCueIndex(*v)
	}
	return _u
}

// AddCueIndex adds value to the "cue_index" field.
func (_u *JobCueUpdate) AddCueIndex(v int) *JobCueUpdate {
	_u.mutation.AddCueIndex(v)
	return _u
}

// SetStartMs sets the "start_ms" field.
func (_u *JobCueUpdate) SetStartMs(v int) *JobCueUpdate {
	_u.mutation.ResetStartMs()
	_u.mutation.SetStartMs(v)
	return _u
}

// SetNillableStartMs sets the "start_ms" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableStartMs(v *int) *JobCueUpdate {
	if v != nil {
		_u.SetStartMs(*v)
	}
	return _u
}

// AddStartMs adds value to the "start_ms" field.
func (_u *JobCueUpdate) AddStartMs(v int) *JobCueUpdate {
	_u.mutation.AddStartMs(v)
	return _u
}

// SetEndMs sets the "end_ms" field.
func (_u *JobCueUpdate) SetEndMs(v int) *JobCueUpdate {
	_u.mutation.ResetEndMs()
	_u.mutation.SetEndMs(v)
	return _u
}

// SetNillableEndMs sets the "end_ms" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableEndMs(v *int) *JobCueUpdate {
	if v != nil {
		_u.SetEndMs(*v)
	}
	return _u
}

// AddEndMs adds value to the "end_ms" field.
func (_u *JobCueUpdate) AddEndMs(v int) *JobCueUpdate {
	_u.mutation.AddEndMs(v)
	return _u
}

// SetEnText sets the "en_text" field.
func (_u *JobCueUpdate) SetEnText(v string) *JobCueUpdate {
	_u.mutation.SetEnText(v)
	return _u
}

// SetNillableEnText sets the "en_text" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableEnText(v *string) *JobCueUpdate {
	if v != nil {
		_u.SetEnText(*v)
	}
	return _u
}

// SetFaText sets the "fa_text" field.
func (_u *JobCueUpdate) SetFaText(v string) *JobCueUpdate {
	_u.mutation.SetFaText(v)
	return _u
}

// SetNillableFaText sets the "fa_text" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableFaText(v *string) *JobCueUpdate {
	if v != nil {
		_u.SetFaText(*v)
	}
	return _u
}

// ClearFaText clears the value of the "fa_text" field.
func (_u *JobCueUpdate) ClearFaText() *JobCueUpdate {
	_u.mutation.ClearFaText()
	return _u
}

// SetFaTextQa sets the "fa_text_qa" field.
func (_u *JobCueUpdate) SetFaTextQa(v string) *JobCueUpdate {
	_u.mutation.SetFaTextQa(v)
	return _u
}

// SetNillableFaTextQa sets the "fa_text_qa" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableFaTextQa(v *string) *JobCueUpdate {
	if v != nil {
		_u.SetFaTextQa(*v)
	}
	return _u
}

// ClearFaTextQa clears the value of the "fa_text_qa" field.
func (_u *JobCueUpdate) ClearFaTextQa() *JobCueUpdate {
	_u.mutation.ClearFaTextQa()
	return _u
}

// SetTmReused sets the "tm_reused" field.
func (_u *JobCueUpdate) SetTmReused(v bool) *JobCueUpdate {
	_u.mutation.SetTmReused(v)
	return _u
}

// SetNillableTmReused sets the "tm_reused" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableTmReused(v *bool) *JobCueUpdate {
	if v != nil {
		_u.SetTmReused(*v)
	}
	return _u
}

// SetTmEntryID sets the "tm_entry_id" field.
func (_u *JobCueUpdate) SetTmEntryID(v string) *JobCueUpdate {
	_u.mutation.SetTmEntryID(v)
	return _u
}

// SetNillableTmEntryID sets the "tm_entry_id" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableTmEntryID(v *string) *JobCueUpdate {
	if v != nil {
		_u.SetTmEntryID(*v)
	}
	return _u
}

// ClearTmEntryID clears the value of the "tm_entry_id" field.
func (_u *JobCueUpdate) ClearTmEntryID() *JobCueUpdate {
	_u.mutation.ClearTmEntryID()
	return _u
}

// SetNeedsTranslation sets the "needs_translation" field.
func (_u *JobCueUpdate) SetNeedsTranslation(v bool) *JobCueUpdate {
	_u.mutation.SetNeedsTranslation(v)
	return _u
}

// SetNillableNeedsTranslation sets the "needs_translation" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableNeedsTranslation(v *bool) *JobCueUpdate {
	if v != nil {
		_u.SetNeedsTranslation(*v)
	}
	return _u
}

// SetTmConfidence sets the "tm_confidence" field.
func (_u *JobCueUpdate) SetTmConfidence(v float64) *JobCueUpdate {
	_u.mutation.ResetTmConfidence()
	_u.mutation.SetTmConfidence(v)
	return _u
}

// SetNillableTmConfidence sets the "tm_confidence" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableTmConfidence(v *float64) *JobCueUpdate {
	if v != nil {
		_u.SetTmConfidence(*v)
	}
	return _u
}

// AddTmConfidence adds value to the "tm_confidence" field.
func (_u *JobCueUpdate) AddTmConfidence(v float64) *JobCueUpdate {
	_u.mutation.AddTmConfidence(v)
	return _u
}

// ClearTmConfidence clears the value of the "tm_confidence" field.
func (_u *JobCueUpdate) ClearTmConfidence() *JobCueUpdate {
	_u.mutation.ClearTmConfidence()
	return _u
}

// SetQaScore sets the "qa_score" field.
func (_u *JobCueUpdate) SetQaScore(v float64) *JobCueUpdate {
	_u.mutation.ResetQaScore()
	_u.mutation.SetQaScore(v)
	return _u
}

// SetNillableQaScore sets the "qa_score" field if the given value is not nil.
func (_u *JobCueUpdate) SetNillableQaScore(v *float64) *JobCueUpdate {
	if v != nil {
		_u.SetQaScore(*v)
	}
	return _u
}

// AddQaScore adds value to the "qa_score" field.
func (_u *JobCueUpdate) AddQaScore(v float64) *JobCueUpdate {
	_u.mutation.AddQaScore(v)
	return _u
}

// ClearQaScore clears the value of the "qa_score" field.
func (_u *JobCueUpdate) ClearQaScore() *JobCueUpdate {
	_u.mutation.ClearQaScore()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *JobCueUpdate) SetIssues(v []string) *JobCueUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *JobCueUpdate) AppendIssues(v []string) *JobCueUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *JobCueUpdate) ClearIssues() *JobCueUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// AddLlmRunIDs adds the "llm_runs" edge to the LLMRun entity by IDs.
func (_u *JobCueUpdate) AddLlmRunIDs(ids ...string) *JobCueUpdate {
	_u.mutation.AddLlmRunIDs(ids...)
	return _u
}

// AddLlmRuns adds the "llm_runs" edges to the LLMRun entity.
func (_u *JobCueUpdate) AddLlmRuns(v ...*LLMRun) *JobCueUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmRunIDs(ids...)
}

// Mutation returns the JobCueMutation object of the builder.
func (_u *JobCueUpdate) Mutation() *JobCueMutation {
	return _u.mutation
}

// ClearLlmRuns clears all "llm_runs" edges to the LLMRun entity.
func (_u *JobCueUpdate) ClearLlmRuns() *JobCueUpdate {
	_u.mutation.ClearLlmRuns()
	return _u
}

// RemoveLlmRunIDs removes the "llm_runs" edge to LLMRun entities by IDs.
func (_u *JobCueUpdate) RemoveLlmRunIDs(ids ...string) *JobCueUpdate {
	_u.mutation.RemoveLlmRunIDs(ids...)
	return _u
}

// RemoveLlmRuns removes "llm_runs" edges to LLMRun entities.
func (_u *JobCueUpdate) RemoveLlmRuns(v ...*LLMRun) *JobCueUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobCueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobCueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobCueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobCueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobCueUpdate) check() error {
	if v, ok := _u.mutation.EnText(); ok {
		if err := jobcue.EnTextValidator(v); err != nil {
			return &ValidationError{Name: "en_text", err: fmt.Errorf(`ent: validator failed for field "JobCue.en_text": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobCue.job"`)
	}
	return nil
}

func (_u *JobCueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobcue.Table, jobcue.Columns, sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CueIndex(); ok {
		_spec.SetField(jobcue.FieldCueIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCueIndex(); ok {
		_spec.AddField(jobcue.FieldCueIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartMs(); ok {
		_spec.SetField(jobcue.FieldStartMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMs(); ok {
		_spec.AddField(jobcue.FieldStartMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMs(); ok {
		_spec.SetField(jobcue.FieldEndMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMs(); ok {
		_spec.AddField(jobcue.FieldEndMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnText(); ok {
		_spec.SetField(jobcue.FieldEnText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FaText(); ok {
		_spec.SetField(jobcue.FieldFaText, field.TypeString, value)
	}
	if _u.mutation.FaTextCleared() {
		_spec.ClearField(jobcue.FieldFaText, field.TypeString)
	}
	if value, ok := _u.mutation.FaTextQa(); ok {
		_spec.SetField(jobcue.FieldFaTextQa, field.TypeString, value)
	}
	if _u.mutation.FaTextQaCleared() {
		_spec.ClearField(jobcue.FieldFaTextQa, field.TypeString)
	}
	if value, ok := _u.mutation.TmReused(); ok {
		_spec.SetField(jobcue.FieldTmReused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TmEntryID(); ok {
		_spec.SetField(jobcue.FieldTmEntryID, field.TypeString, value)
	}
	if _u.mutation.TmEntryIDCleared() {
		_spec.ClearField(jobcue.FieldTmEntryID, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsTranslation(); ok {
		_spec.SetField(jobcue.FieldNeedsTranslation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TmConfidence(); ok {
		_spec.SetField(jobcue.FieldTmConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTmConfidence(); ok {
		_spec.AddField(jobcue.FieldTmConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.TmConfidenceCleared() {
		_spec.ClearField(jobcue.FieldTmConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QaScore(); ok {
		_spec.SetField(jobcue.FieldQaScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQaScore(); ok {
		_spec.AddField(jobcue.FieldQaScore, field.TypeFloat64, value)
	}
	if _u.mutation.QaScoreCleared() {
		_spec.ClearField(jobcue.FieldQaScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(jobcue.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobcue.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(jobcue.FieldIssues, field.TypeJSON)
	}
	if _u.mutation.LlmRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobcue.LlmRunsTable,
			Columns: []string{jobcue.LlmRunsColumn},
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
			Table:   jobcue.LlmRunsTable,
			Columns: []string{jobcue.LlmRunsColumn},
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
			Table:   jobcue.LlmRunsTable,
			Columns: []string{jobcue.LlmRunsColumn},
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
			err = &NotFoundError{jobcue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobCueUpdateOne is the builder for updating a single JobCue entity.
type JobCueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobCueMutation
}

// SetCueIndex sets the "cue_index" field.
func (_u *JobCueUpdateOne) SetCueIndex(v int) *JobCueUpdateOne {
	_u.mutation.ResetCueIndex()
	_u.mutation.SetCueIndex(v)
	return _u
}

// SetNillableCueIndex sets the "cue_index" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableCueIndex(v *int) *JobCueUpdateOne {
	if v != nil {
		_u.SetCueIndex(*v)
	}
	return _u
}

// AddCueIndex adds value to the "cue_index" field.
func (_u *JobCueUpdateOne) AddCueIndex(v int) *JobCueUpdateOne {
	_u.mutation.AddCueIndex(v)
	return _u
}

// SetStartMs sets the "start_ms" field.
func (_u *JobCueUpdateOne) SetStartMs(v int) *JobCueUpdateOne {
	_u.mutation.ResetStartMs()
	_u.mutation.SetStartMs(v)
	return _u
}

// SetNillableStartMs sets the "start_ms" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableStartMs(v *int) *JobCueUpdateOne {
	if v != nil {
		_u.SetStartMs(*v)
	}
	return _u
}

// AddStartMs adds value to the "start_ms" field.
func (_u *JobCueUpdateOne) AddStartMs(v int) *JobCueUpdateOne {
	_u.mutation.AddStartMs(v)
	return _u
}

// SetEndMs sets the "end_ms" field.
func (_u *JobCueUpdateOne) SetEndMs(v int) *JobCueUpdateOne {
	_u.mutation.ResetEndMs()
	_u.mutation.SetEndMs(v)
	return _u
}

// SetNillableEndMs sets the "end_ms" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableEndMs(v *int) *JobCueUpdateOne {
	if v != nil {
		_u.SetEndMs(*v)
	}
	return _u
}

// AddEndMs adds value to the "end_ms" field.
func (_u *JobCueUpdateOne) AddEndMs(v int) *JobCueUpdateOne {
	_u.mutation.AddEndMs(v)
	return _u
}

// SetEnText sets the "en_text" field.
func (_u *JobCueUpdateOne) SetEnText(v string) *JobCueUpdateOne {
	_u.mutation.SetEnText(v)
	return _u
}

// SetNillableEnText sets the "en_text" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableEnText(v *string) *JobCueUpdateOne {
	if v != nil {
		_u.SetEnText(*v)
	}
	return _u
}

// SetFaText sets the "fa_text" field.
func (_u *JobCueUpdateOne) SetFaText(v string) *JobCueUpdateOne {
	_u.mutation.SetFaText(v)
	return _u
}

// SetNillableFaText sets the "fa_text" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableFaText(v *string) *JobCueUpdateOne {
	if v != nil {
		_u.SetFaText(*v)
	}
	return _u
}

// ClearFaText clears the value of the "fa_text" field.
func (_u *JobCueUpdateOne) ClearFaText() *JobCueUpdateOne {
	_u.mutation.ClearFaText()
	return _u
}

// SetFaTextQa sets the "fa_text_qa" field.
func (_u *JobCueUpdateOne) SetFaTextQa(v string) *JobCueUpdateOne {
	_u.mutation.SetFaTextQa(v)
	return _u
}

// SetNillableFaTextQa sets the "fa_text_qa" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableFaTextQa(v *string) *JobCueUpdateOne {
	if v != nil {
		_u.SetFaTextQa(*v)
	}
	return _u
}

// ClearFaTextQa clears the value of the "fa_text_qa" field.
func (_u *JobCueUpdateOne) ClearFaTextQa() *JobCueUpdateOne {
	_u.mutation.ClearFaTextQa()
	return _u
}

// SetTmReused sets the "tm_reused" field.
func (_u *JobCueUpdateOne) SetTmReused(v bool) *JobCueUpdateOne {
	_u.mutation.SetTmReused(v)
	return _u
}

// SetNillableTmReused sets the "tm_reused" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableTmReused(v *bool) *JobCueUpdateOne {
	if v != nil {
		_u.SetTmReused(*v)
	}
	return _u
}

// SetTmEntryID sets the "tm_entry_id" field.
func (_u *JobCueUpdateOne) SetTmEntryID(v string) *JobCueUpdateOne {
	_u.mutation.SetTmEntryID(v)
	return _u
}

// SetNillableTmEntryID sets the "tm_entry_id" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableTmEntryID(v *string) *JobCueUpdateOne {
	if v != nil {
		_u.SetTmEntryID(*v)
	}
	return _u
}

// ClearTmEntryID clears the value of the "tm_entry_id" field.
func (_u *JobCueUpdateOne) ClearTmEntryID() *JobCueUpdateOne {
	_u.mutation.ClearTmEntryID()
	return _u
}

// SetNeedsTranslation sets the "needs_translation" field.
func (_u *JobCueUpdateOne) SetNeedsTranslation(v bool) *JobCueUpdateOne {
	_u.mutation.SetNeedsTranslation(v)
	return _u
}

// SetNillableNeedsTranslation sets the "needs_translation" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableNeedsTranslation(v *bool) *JobCueUpdateOne {
	if v != nil {
		_u.SetNeedsTranslation(*v)
	}
	return _u
}

// SetTmConfidence sets the "tm_confidence" field.
func (_u *JobCueUpdateOne) SetTmConfidence(v float64) *JobCueUpdateOne {
	_u.mutation.ResetTmConfidence()
	_u.mutation.SetTmConfidence(v)
	return _u
}

// SetNillableTmConfidence sets the "tm_confidence" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableTmConfidence(v *float64) *JobCueUpdateOne {
	if v != nil {
		_u.SetTmConfidence(*v)
	}
	return _u
}

// AddTmConfidence adds value to the "tm_confidence" field.
func (_u *JobCueUpdateOne) AddTmConfidence(v float64) *JobCueUpdateOne {
	_u.mutation.AddTmConfidence(v)
	return _u
}

// ClearTmConfidence clears the value of the "tm_confidence" field.
func (_u *JobCueUpdateOne) ClearTmConfidence() *JobCueUpdateOne {
	_u.mutation.ClearTmConfidence()
	return _u
}

// SetQaScore sets the "qa_score" field.
func (_u *JobCueUpdateOne) SetQaScore(v float64) *JobCueUpdateOne {
	_u.mutation.ResetQaScore()
	_u.mutation.SetQaScore(v)
	return _u
}

// SetNillableQaScore sets the "qa_score" field if the given value is not nil.
func (_u *JobCueUpdateOne) SetNillableQaScore(v *float64) *JobCueUpdateOne {
	if v != nil {
		_u.SetQaScore(*v)
	}
	return _u
}

// AddQaScore adds value to the "qa_score" field.
func (_u *JobCueUpdateOne) AddQaScore(v float64) *JobCueUpdateOne {
	_u.mutation.AddQaScore(v)
	return _u
}

// ClearQaScore clears the value of the "qa_score" field.
func (_u *JobCueUpdateOne) ClearQaScore() *JobCueUpdateOne {
	_u.mutation.ClearQaScore()
	return _u
}

// SetIssues sets the "issues" field.
func (_u *JobCueUpdateOne) SetIssues(v []string) *JobCueUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *JobCueUpdateOne) AppendIssues(v []string) *JobCueUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *JobCueUpdateOne) ClearIssues() *JobCueUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// AddLlmRunIDs adds the "llm_runs" edge to the LLMRun entity by IDs.
func (_u *JobCueUpdateOne) AddLlmRunIDs(ids ...string) *JobCueUpdateOne {
	_u.mutation.AddLlmRunIDs(ids...)
	return _u
}

// AddLlmRuns adds the "llm_runs" edges to the LLMRun entity.
func (_u *JobCueUpdateOne) AddLlmRuns(v ...*LLMRun) *JobCueUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmRunIDs(ids...)
}

// Mutation returns the JobCueMutation object of the builder.
func (_u *JobCueUpdateOne) Mutation() *JobCueMutation {
	return _u.mutation
}

// ClearLlmRuns clears all "llm_runs" edges to the LLMRun entity.
func (_u *JobCueUpdateOne) ClearLlmRuns() *JobCueUpdateOne {
	_u.mutation.ClearLlmRuns()
	return _u
}

// RemoveLlmRunIDs removes the "llm_runs" edge to LLMRun entities by IDs.
func (_u *JobCueUpdateOne) RemoveLlmRunIDs(ids ...string) *JobCueUpdateOne {
	_u.mutation.RemoveLlmRunIDs(ids...)
	return _u
}

// RemoveLlmRuns removes "llm_runs" edges to LLMRun entities.
func (_u *JobCueUpdateOne) RemoveLlmRuns(v ...*LLMRun) *JobCueUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmRunIDs(ids...)
}

// Where appends a list predicates to the JobCueUpdate builder.
func (_u *JobCueUpdateOne) Where(ps ...predicate.JobCue) *JobCueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobCueUpdateOne) Select(field string, fields ...string) *JobCueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobCue entity.
func (_u *JobCueUpdateOne) Save(ctx context.Context) (*JobCue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobCueUpdateOne) SaveX(ctx context.Context) *JobCue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobCueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobCueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobCueUpdateOne) check() error {
	if v, ok := _u.mutation.EnText(); ok {
		if err := jobcue.EnTextValidator(v); err != nil {
			return &ValidationError{Name: "en_text", err: fmt.Errorf(`ent: validator failed for field "JobCue.en_text": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobCue.job"`)
	}
	return nil
}

func (_u *JobCueUpdateOne) sqlSave(ctx context.Context) (_node *JobCue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobcue.Table, jobcue.Columns, sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobCue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobcue.FieldID)
		for _, f := range fields {
			if !jobcue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobcue.FieldID {
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
	if value, ok := _u.mutation.CueIndex(); ok {
		_spec.SetField(jobcue.FieldCueIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCueIndex(); ok {
		_spec.AddField(jobcue.FieldCueIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartMs(); ok {
		_spec.SetField(jobcue.FieldStartMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMs(); ok {
		_spec.AddField(jobcue.FieldStartMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMs(); ok {
		_spec.SetField(jobcue.FieldEndMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMs(); ok {
		_spec.AddField(jobcue.FieldEndMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnText(); ok {
		_spec.SetField(jobcue.FieldEnText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FaText(); ok {
		_spec.SetField(jobcue.FieldFaText, field.TypeString, value)
	}
	if _u.mutation.FaTextCleared() {
		_spec.ClearField(jobcue.FieldFaText, field.TypeString)
	}
	if value, ok := _u.mutation.FaTextQa(); ok {
		_spec.SetField(jobcue.FieldFaTextQa, field.TypeString, value)
	}
	if _u.mutation.FaTextQaCleared() {
		_spec.ClearField(jobcue.FieldFaTextQa, field.TypeString)
	}
	if value, ok := _u.mutation.TmReused(); ok {
		_spec.SetField(jobcue.FieldTmReused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TmEntryID(); ok {
		_spec.SetField(jobcue.FieldTmEntryID, field.TypeString, value)
	}
	if _u.mutation.TmEntryIDCleared() {
		_spec.ClearField(jobcue.FieldTmEntryID, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsTranslation(); ok {
		_spec.SetField(jobcue.FieldNeedsTranslation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TmConfidence(); ok {
		_spec.SetField(jobcue.FieldTmConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTmConfidence(); ok {
		_spec.AddField(jobcue.FieldTmConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.TmConfidenceCleared() {
		_spec.ClearField(jobcue.FieldTmConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QaScore(); ok {
		_spec.SetField(jobcue.FieldQaScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQaScore(); ok {
		_spec.AddField(jobcue.FieldQaScore, field.TypeFloat64, value)
	}
	if _u.mutation.QaScoreCleared() {
		_spec.ClearField(jobcue.FieldQaScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(jobcue.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobcue.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(jobcue.FieldIssues, field.TypeJSON)
	}
	if _u.mutation.LlmRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobcue.LlmRunsTable,
			Columns: []string{jobcue.LlmRunsColumn},
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
			Table:   jobcue.LlmRunsTable,
			Columns: []string{jobcue.LlmRunsColumn},
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
			Table:   jobcue.LlmRunsTable,
			Columns: []string{jobcue.LlmRunsColumn},
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
	_node = &JobCue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobcue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
