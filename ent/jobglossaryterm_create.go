// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
)

// JobGlossaryTermCreate is the builder for creating a JobGlossaryTerm entity.
type JobGlossaryTermCreate struct {
	config
	mutation *JobGlossaryTermMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobGlossaryTermCreate) SetJobID(v string) *JobGlossaryTermCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetEnTerm sets the "en_term" field.
func (_c *JobGlossaryTermCreate) SetEnTerm(v string) *JobGlossaryTermCreate {
	_c.mutation.SetEnTerm(v)
	return _c
}

// SetFaTerm sets the "fa_term" field.
func (_c *JobGlossaryTermCreate) SetFaTerm(v string) *JobGlossaryTermCreate {
	_c.mutation.SetFaTerm(v)
	return _c
}

// SetTermType sets the "term_type" field.
func (_c *JobGlossaryTermCreate) SetTermType(v string) *JobGlossaryTermCreate {
	_c.mutation.SetTermType(v)
	return _c
}

// SetNillableTermType sets the "term_type" field if the given value is not nil.
func (_c *JobGlossaryTermCreate) SetNillableTermType(v *string) *JobGlossaryTermCreate {
	if v != nil {
		_c.SetTermType(*v)
	}
	return _c
}

// SetMandatory sets the "mandatory" field.
func (_c *JobGlossaryTermCreate) SetMandatory(v bool) *JobGlossaryTermCreate {
	_c.mutation.SetMandatory(v)
	return _c
}

// SetNillableMandatory sets the "mandatory" field if the given value is not nil.
func (_c *JobGlossaryTermCreate) SetNillableMandatory(v *bool) *JobGlossaryTermCreate {
	if v != nil {
		_c.SetMandatory(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *JobGlossaryTermCreate) SetConfidence(v int) *JobGlossaryTermCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *JobGlossaryTermCreate) SetNillableConfidence(v *int) *JobGlossaryTermCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *JobGlossaryTermCreate) SetNotes(v string) *JobGlossaryTermCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *JobGlossaryTermCreate) SetNillableNotes(v *string) *JobGlossaryTermCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobGlossaryTermCreate) SetID(v string) *JobGlossaryTermCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobGlossaryTermCreate) SetJob(v *Job) *JobGlossaryTermCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobGlossaryTermMutation object of the builder.
func (_c *JobGlossaryTermCreate) Mutation() *JobGlossaryTermMutation {
	return _c.mutation
}

// Save creates the JobGlossaryTerm in the database.
func (_c *JobGlossaryTermCreate) Save(ctx context.Context) (*JobGlossaryTerm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobGlossaryTermCreate) SaveX(ctx context.Context) *JobGlossaryTerm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobGlossaryTermCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobGlossaryTermCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobGlossaryTermCreate) defaults() {
	if _, ok := _c.mutation.Mandatory(); !ok {
		v := jobglossaryterm.DefaultMandatory
		_c.mutation.SetMandatory(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobGlossaryTermCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobGlossaryTerm.job_id"`)}
	}
	if _, ok := _c.mutation.EnTerm(); !ok {
		return &ValidationError{Name: "en_term", err: errors.New(`ent: missing required field "JobGlossaryTerm.en_term"`)}
	}
	if v, ok := _c.mutation.EnTerm(); ok {
		if err := jobglossaryterm.EnTermValidator(v); err != nil {
			return &ValidationError{Name: "en_term", err: fmt.Errorf(`ent: validator failed for field "JobGlossaryTerm.en_term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FaTerm(); !ok {
		return &ValidationError{Name: "fa_term", err: errors.New(`ent: missing required field "JobGlossaryTerm.fa_term"`)}
	}
	if _, ok := _c.mutation.Mandatory(); !ok {
		return &ValidationError{Name: "mandatory", err: errors.New(`ent: missing required field "JobGlossaryTerm.mandatory"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobGlossaryTerm.job"`)}
	}
	return nil
}

func (_c *JobGlossaryTermCreate) sqlSave(ctx context.Context) (*JobGlossaryTerm, error) {
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
			return nil, fmt.Errorf("unexpected JobGlossaryTerm.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobGlossaryTermCreate) createSpec() (*JobGlossaryTerm, *sqlgraph.CreateSpec) {
	var (
		_node = &JobGlossaryTerm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobglossaryterm.Table, sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EnTerm(); ok {
		_spec.SetField(jobglossaryterm.FieldEnTerm, field.TypeString, value)
		_node.EnTerm = value
	}
	if value, ok := _c.mutation.FaTerm(); ok {
		_spec.SetField(jobglossaryterm.FieldFaTerm, field.TypeString, value)
		_node.FaTerm = value
	}
	if value, ok := _c.mutation.TermType(); ok {
		_spec.SetField(jobglossaryterm.FieldTermType, field.TypeString, value)
		_node.TermType = &value
	}
	if value, ok := _c.mutation.Mandatory(); ok {
		_spec.SetField(jobglossaryterm.FieldMandatory, field.TypeBool, value)
		_node.Mandatory = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(jobglossaryterm.FieldConfidence, field.TypeInt, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(jobglossaryterm.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobglossaryterm.JobTable,
			Columns: []string{jobglossaryterm.JobColumn},
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
	return _node, _spec
}

// JobGlossaryTermCreateBulk is the builder for creating many JobGlossaryTerm entities in bulk.
type JobGlossaryTermCreateBulk struct {
	config
	err      error
	builders []*JobGlossaryTermCreate
}

// Save creates the JobGlossaryTerm entities in the database.
func (_c *JobGlossaryTermCreateBulk) Save(ctx context.Context) ([]*JobGlossaryTerm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobGlossaryTerm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobGlossaryTermMutation)
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
func (_c *JobGlossaryTermCreateBulk) SaveX(ctx context.Context) []*JobGlossaryTerm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobGlossaryTermCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobGlossaryTermCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
