// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
)

// JobCueCreate is the builder for creating a JobCue entity.
type JobCueCreate struct {
	config
	mutation *JobCueMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobCueCreate) SetJobID(v string) *JobCueCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetCueIndex sets the "cue_index" field.
func (_c *JobCueCreate) SetCueIndex(v int) *JobCueCreate {
	_c.mutation.SetCueIndex(v)
	return _c
}

// SetStartMs sets the "start_ms" field.
func (_c *JobCueCreate) SetStartMs(v int) *JobCueCreate {
	_c.mutation.SetStartMs(v)
	return _c
}

// SetEndMs sets the "end_ms" field.
func (_c *JobCueCreate) SetEndMs(v int) *JobCueCreate {
	_c.mutation.SetEndMs(v)
	return _c
}

// SetEnText sets the "en_text" field.
func (_c *JobCueCreate) SetEnText(v string) *JobCueCreate {
	_c.mutation.SetEnText(v)
	return _c
}

// SetFaText sets the "fa_text" field.
func (_c *JobCueCreate) SetFaText(v string) *JobCueCreate {
	_c.mutation.SetFaText(v)
	return _c
}

// SetNillableFaText sets the "fa_text" field if the given value is not nil.
func (_c *JobCueCreate) SetNillableFaText(v *string) *JobCueCreate {
	if v != nil {
		_c.SetFaText(*v)
	}
	return _c
}

// SetFaTextQa sets the "fa_text_qa" field.
func (_c *JobCueCreate) SetFaTextQa(v string) *JobCueCreate {
	_c.mutation.SetFaTextQa(v)
	return _c
}

// SetNillableFaTextQa sets the "fa_text_qa" field if the given value is not nil.
func (_c *JobCueCreate) SetNillableFaTextQa(v *string) *JobCueCreate {
	if v != nil {
		_c.SetFaTextQa(*v)
	}
	return _c
}

// SetTmReused sets the "tm_reused" field.
func (_c *JobCueCreate) SetTmReused(v bool) *JobCueCreate {
	_c.mutation.SetTmReused(v)
	return _c
}

// SetNillableTmReused sets the "tm_reused" field if the given value is not nil.
func (_c *JobCueCreate) SetNillableTmReused(v *bool) *JobCueCreate {
	if v != nil {
		_c.SetTmReused(*v)
	}
	return _c
}

// SetTmEntryID sets the "tm_entry_id" field.
func (_c *JobCueCreate) SetTmEntryID(v string) *JobCueCreate {
	_c.mutation.SetTmEntryID(v)
	return _c
}

// SetNillableTmEntryID sets the "tm_entry_id" field if the given value is not nil.
func (_c *JobCueCreate) SetNillableTmEntryID(v *string) *JobCueCreate {
	if v != nil {
		_c.SetTmEntryID(*v)
	}
	return _c
}

// SetNeedsTranslation sets the "needs_translation" field.
func (_c *JobCueCreate) SetNeedsTranslation(v bool) *JobCueCreate {
	_c.mutation.SetNeedsTranslation(v)
	return _c
}

// SetNillableNeedsTranslation sets the "needs_translation" field if the given value is not nil.
func (_c *JobCueCreate) SetNillableNeedsTranslation(v *bool) *JobCueCreate {
	if v != nil {
		_c.SetNeedsTranslation(*v)
	}
	return _c
}

// SetTmConfidence sets the "tm_confidence" field.
func (_c *JobCueCreate) SetTmConfidence(v float64) *JobCueCreate {
	_c.mutation.SetTmConfidence(v)
	return _c
}

// SetNillableTmConfidence sets the "tm_confidence" field if the given value is not nil.
func (_c *JobCueCreate) SetNillableTmConfidence(v *float64) *JobCueCreate {
	if v != nil {
		_c.SetTmConfidence(*v)
	}
	return _c
}

// SetQaScore sets the "qa_score" field.
func (_c *JobCueCreate) SetQaScore(v float64) *JobCueCreate {
	_c.mutation.SetQaScore(v)
	return _c
}

// SetNillableQaScore sets the "qa_score" field if the given value is not nil.
func (_c *JobCueCreate) SetNillableQaScore(v *float64) *JobCueCreate {
	if v != nil {
		_c.SetQaScore(*v)
	}
	return _c
}

// SetIssues sets the "issues" field.
func (_c *JobCueCreate) SetIssues(v []string) *JobCueCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetID sets the "id" field.
func (_c *JobCueCreate) SetID(v string) *JobCueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobCueCreate) SetJob(v *Job) *JobCueCreate {
	return _c.SetJobID(v.ID)
}

// AddLlmRunIDs adds the "llm_runs" edge to the LLMRun entity by IDs.
func (_c *JobCueCreate) AddLlmRunIDs(ids ...string) *JobCueCreate {
	_c.mutation.AddLlmRunIDs(ids...)
	return _c
}

// AddLlmRuns adds the "llm_runs" edges to the LLMRun entity.
func (_c *JobCueCreate) AddLlmRuns(v ...*LLMRun) *JobCueCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmRunIDs(ids...)
}

// Mutation returns the JobCueMutation object of the builder.
func (_c *JobCueCreate) Mutation() *JobCueMutation {
	return _c.mutation
}

// Save creates the JobCue in the database.
func (_c *JobCueCreate) Save(ctx context.Context) (*JobCue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCueCreate) SaveX(ctx context.Context) *JobCue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCueCreate) defaults() {
	if _, ok := _c.mutation.TmReused(); !ok {
		v := jobcue.DefaultTmReused
		_c.mutation.SetTmReused(v)
	}
	if _, ok := _c.mutation.NeedsTranslation(); !ok {
		v := jobcue.DefaultNeedsTranslation
		_c.mutation.SetNeedsTranslation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCueCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobCue.job_id"`)}
	}
	if _, ok := _c.mutation.CueIndex(); !ok {
		return &ValidationError{Name: "cue_index", err: errors.New(`ent: missing required field "JobCue.cue_index"`)}
	}
	if _, ok := _c.mutation.StartMs(); !ok {
		return &ValidationError{Name: "start_ms", err: errors.New(`ent: missing required field "JobCue.start_ms"`)}
	}
	if _, ok := _c.mutation.EndMs(); !ok {
		return &ValidationError{Name: "end_ms", err: errors.New(`ent: missing required field "JobCue.end_ms"`)}
	}
	if _, ok := _c.mutation.EnText(); !ok {
		return &ValidationError{Name: "en_text", err: errors.New(`ent: missing required field "JobCue.en_text"`)}
	}
	if v, ok := _c.mutation.EnText(); ok {
		if err := jobcue.EnTextValidator(v); err != nil {
			return &ValidationError{Name: "en_text", err: fmt.Errorf(`ent: validator failed for field "JobCue.en_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TmReused(); !ok {
		return &ValidationError{Name: "tm_reused", err: errors.New(`ent: missing required field "JobCue.tm_reused"`)}
	}
	if _, ok := _c.mutation.NeedsTranslation(); !ok {
		return &ValidationError{Name: "needs_translation", err: errors.New(`ent: missing required field "JobCue.needs_translation"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobCue.job"`)}
	}
	return nil
}

func (_c *JobCueCreate) sqlSave(ctx context.Context) (*JobCue, error) {
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
			return nil, fmt.Errorf("unexpected JobCue.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCueCreate) createSpec() (*JobCue, *sqlgraph.CreateSpec) {
	var (
		_node = &JobCue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobcue.Table, sqlgraph.NewFieldSpec(jobcue.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CueIndex(); ok {
		_spec.SetField(jobcue.FieldCueIndex, field.TypeInt, value)
		_node.CueIndex = value
	}
	if value, ok := _c.mutation.StartMs(); ok {
		_spec.SetField(jobcue.FieldStartMs, field.TypeInt, value)
		_node.StartMs = value
	}
	if value, ok := _c.mutation.EndMs(); ok {
		_spec.SetField(jobcue.FieldEndMs, field.TypeInt, value)
		_node.EndMs = value
	}
	if value, ok := _c.mutation.EnText(); ok {
		_spec.SetField(jobcue.FieldEnText, field.TypeString, value)
		_node.EnText = value
	}
	if value, ok := _c.mutation.FaText(); ok {
		_spec.SetField(jobcue.FieldFaText, field.TypeString, value)
		_node.FaText = &value
	}
	if value, ok := _c.mutation.FaTextQa(); ok {
		_spec.SetField(jobcue.FieldFaTextQa, field.TypeString, value)
		_node.FaTextQa = &value
	}
	if value, ok := _c.mutation.TmReused(); ok {
		_spec.SetField(jobcue.FieldTmReused, field.TypeBool, value)
		_node.TmReused = value
	}
	if value, ok := _c.mutation.TmEntryID(); ok {
		_spec.SetField(jobcue.FieldTmEntryID, field.TypeString, value)
		_node.TmEntryID = &value
	}
	if value, ok := _c.mutation.NeedsTranslation(); ok {
		_spec.SetField(jobcue.FieldNeedsTranslation, field.TypeBool, value)
		_node.NeedsTranslation = value
	}
	if value, ok := _c.mutation.TmConfidence(); ok {
		_spec.SetField(jobcue.FieldTmConfidence, field.TypeFloat64, value)
		_node.TmConfidence = &value
	}
	if value, ok := _c.mutation.QaScore(); ok {
		_spec.SetField(jobcue.FieldQaScore, field.TypeFloat64, value)
		_node.QaScore = &value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(jobcue.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobcue.JobTable,
			Columns: []string{jobcue.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LlmRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCueCreateBulk is the builder for creating many JobCue entities in bulk.
type JobCueCreateBulk struct {
	config
	err      error
	builders []*JobCueCreate
}

// Save creates the JobCue entities in the database.
func (_c *JobCueCreateBulk) Save(ctx context.Context) ([]*JobCue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobCue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobCueMutation)
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
func (_c *JobCueCreateBulk) SaveX(ctx context.Context) []*JobCue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
