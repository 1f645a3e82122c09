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
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
)

// LLMRunCreate is the builder for creating a LLMRun entity.
type LLMRunCreate struct {
	config
	mutation *LLMRunMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *LLMRunCreate) SetJobID(v string) *LLMRunCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableJobID(v *string) *LLMRunCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetCueID sets the "cue_id" field.
func (_c *LLMRunCreate) SetCueID(v string) *LLMRunCreate {
	_c.mutation.SetCueID(v)
	return _c
}

// SetNillableCueID sets the "cue_id" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableCueID(v *string) *LLMRunCreate {
	if v != nil {
		_c.SetCueID(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *LLMRunCreate) SetAgentName(v string) *LLMRunCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMRunCreate) SetModel(v string) *LLMRunCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMRunCreate) SetProvider(v string) *LLMRunCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableProvider(v *string) *LLMRunCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *LLMRunCreate) SetStartedAt(v time.Time) *LLMRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableStartedAt(v *time.Time) *LLMRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *LLMRunCreate) SetFinishedAt(v time.Time) *LLMRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableFinishedAt(v *time.Time) *LLMRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *LLMRunCreate) SetPromptTokens(v int) *LLMRunCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillablePromptTokens(v *int) *LLMRunCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *LLMRunCreate) SetCompletionTokens(v int) *LLMRunCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableCompletionTokens(v *int) *LLMRunCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *LLMRunCreate) SetCostUsd(v float64) *LLMRunCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableCostUsd(v *float64) *LLMRunCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LLMRunCreate) SetStatus(v llmrun.Status) *LLMRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableStatus(v *llmrun.Status) *LLMRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMRunCreate) SetErrorMessage(v string) *LLMRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableErrorMessage(v *string) *LLMRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetInputSha sets the "input_sha" field.
func (_c *LLMRunCreate) SetInputSha(v string) *LLMRunCreate {
	_c.mutation.SetInputSha(v)
	return _c
}

// SetNillableInputSha sets the "input_sha" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableInputSha(v *string) *LLMRunCreate {
	if v != nil {
		_c.SetInputSha(*v)
	}
	return _c
}

// SetOutputSha sets the "output_sha" field.
func (_c *LLMRunCreate) SetOutputSha(v string) *LLMRunCreate {
	_c.mutation.SetOutputSha(v)
	return _c
}

// SetNillableOutputSha sets the "output_sha" field if the given value is not nil.
func (_c *LLMRunCreate) SetNillableOutputSha(v *string) *LLMRunCreate {
	if v != nil {
		_c.SetOutputSha(*v)
	}
	return _c
}

// SetMeta sets the "meta" field.
func (_c *LLMRunCreate) SetMeta(v map[string]interface{}) *LLMRunCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LLMRunCreate) SetID(v string) *LLMRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *LLMRunCreate) SetJob(v *Job) *LLMRunCreate {
	return _c.SetJobID(v.ID)
}

// SetCue sets the "cue" edge to the JobCue entity.
func (_c *LLMRunCreate) SetCue(v *JobCue) *LLMRunCreate {
	return _c.SetCueID(v.ID)
}

// Mutation returns the LLMRunMutation object of the builder.
func (_c *LLMRunCreate) Mutation() *LLMRunMutation {
	return _c.mutation
}

// Save creates the LLMRun in the database.
func (_c *LLMRunCreate) Save(ctx context.Context) (*LLMRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMRunCreate) SaveX(ctx context.Context) *LLMRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMRunCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := llmrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := llmrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMRunCreate) check() error {
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "LLMRun.agent_name"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMRun.model"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "LLMRun.started_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LLMRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := llmrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMRun.status": %w`, err)}
		}
	}
	return nil
}

func (_c *LLMRunCreate) sqlSave(ctx context.Context) (*LLMRun, error) {
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
			return nil, fmt.Errorf("unexpected LLMRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMRunCreate) createSpec() (*LLMRun, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmrun.Table, sqlgraph.NewFieldSpec(llmrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(llmrun.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmrun.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmrun.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(llmrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(llmrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(llmrun.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = &value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(llmrun.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = &value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(llmrun.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(llmrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.InputSha(); ok {
		_spec.SetField(llmrun.FieldInputSha, field.TypeString, value)
		_node.InputSha = &value
	}
	if value, ok := _c.mutation.OutputSha(); ok {
		_spec.SetField(llmrun.FieldOutputSha, field.TypeString, value)
		_node.OutputSha = &value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(llmrun.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CueIDs(); len(nodes) > 0 {
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
		_node.CueID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LLMRunCreateBulk is the builder for creating many LLMRun entities in bulk.
type LLMRunCreateBulk struct {
	config
	err      error
	builders []*LLMRunCreate
}

// Save creates the LLMRun entities in the database.
func (_c *LLMRunCreateBulk) Save(ctx context.Context) ([]*LLMRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMRunMutation)
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
func (_c *LLMRunCreateBulk) SaveX(ctx context.Context) []*LLMRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
