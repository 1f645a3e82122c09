// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// JobGlossaryTermDelete is the builder for deleting a JobGlossaryTerm entity.
type JobGlossaryTermDelete struct {
	config
	hooks    []Hook
	mutation *JobGlossaryTermMutation
}

// Where appends a list predicates to the JobGlossaryTermDelete builder.
func (_d *JobGlossaryTermDelete) Where(ps ...predicate.JobGlossaryTerm) *JobGlossaryTermDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *JobGlossaryTermDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JobGlossaryTermDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *JobGlossaryTermDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(jobglossaryterm.Table, sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// JobGlossaryTermDeleteOne is the builder for deleting a single JobGlossaryTerm entity.
type JobGlossaryTermDeleteOne struct {
	_d *JobGlossaryTermDelete
}

// Where appends a list predicates to the JobGlossaryTermDelete builder.
func (_d *JobGlossaryTermDeleteOne) Where(ps ...predicate.JobGlossaryTerm) *JobGlossaryTermDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *JobGlossaryTermDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{jobglossaryterm.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JobGlossaryTermDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
