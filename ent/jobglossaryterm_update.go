// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
)

// JobGlossaryTermUpdate is the builder for updating JobGlossaryTerm entities.
type JobGlossaryTermUpdate struct {
	config
	hooks    []Hook
	mutation *JobGlossaryTermMutation
}

// Where appends a list predicates to the JobGlossaryTermUpdate builder.
func (_u *JobGlossaryTermUpdate) Where(ps ...predicate.JobGlossaryTerm) *JobGlossaryTermUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnTerm sets the "en_term" field.
func (_u *JobGlossaryTermUpdate) SetEnTerm(v string) *JobGlossaryTermUpdate {
	_u.mutation.SetEnTerm(v)
	return _u
}

// SetNillableEnTerm sets the "en_term" field if the given value is not nil.
func (_u *JobGlossaryTermUpdate) SetNillableEnTerm(v *string) *JobGlossaryTermUpdate {
	if v != nil {
		_u.SetEnTerm(*v)
	}
	return _u
}

// SetFaTerm sets the "fa_term" field.
func (_u *JobGlossaryTermUpdate) SetFaTerm(v string) *JobGlossaryTermUpdate {
	_u.mutation.SetFaTerm(v)
	return _u
}

// SetNillableFaTerm sets the "fa_term" field if the given value is not nil.
func (_u *JobGlossaryTermUpdate) SetNillableFaTerm(v *string) *JobGlossaryTermUpdate {
	if v != nil {
		_u.SetFaTerm(*v)
	}
	return _u
}

// SetTermType sets the "term_type" field.
func (_u *JobGlossaryTermUpdate) SetTermType(v string) *JobGlossaryTermUpdate {
	_u.mutation.SetTermType(v)
	return _u
}

// SetNillableTermType sets the "term_type" field if the given value is not nil.
func (_u *JobGlossaryTermUpdate) SetNillableTermType(v *string) *JobGlossaryTermUpdate {
	if v != nil {
		_u.SetTermType(*v)
	}
	return _u
}

// ClearTermType clears the value of the "term_type" field.
func (_u *JobGlossaryTermUpdate) ClearTermType() *JobGlossaryTermUpdate {
	_u.mutation.ClearTermType()
	return _u
}

// SetMandatory sets the "mandatory" field.
func (_u *JobGlossaryTermUpdate) SetMandatory(v bool) *JobGlossaryTermUpdate {
	_u.mutation.SetMandatory(v)
	return _u
}

// SetNillableMandatory sets the "mandatory" field if the given value is not nil.
func (_u *JobGlossaryTermUpdate) SetNillableMandatory(v *bool) *JobGlossaryTermUpdate {
	if v != nil {
		_u.SetMandatory(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *JobGlossaryTermUpdate) SetConfidence(v int) *JobGlossaryTermUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *JobGlossaryTermUpdate) SetNillableConfidence(v *int) *JobGlossaryTermUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *JobGlossaryTermUpdate) AddConfidence(v int) *JobGlossaryTermUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *JobGlossaryTermUpdate) ClearConfidence() *JobGlossaryTermUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *JobGlossaryTermUpdate) SetNotes(v string) *JobGlossaryTermUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *JobGlossaryTermUpdate) SetNillableNotes(v *string) *JobGlossaryTermUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *JobGlossaryTermUpdate) ClearNotes() *JobGlossaryTermUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the JobGlossaryTermMutation object of the builder.
func (_u *JobGlossaryTermUpdate) Mutation() *JobGlossaryTermMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobGlossaryTermUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobGlossaryTermUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobGlossaryTermUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobGlossaryTermUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobGlossaryTermUpdate) check() error {
	if v, ok := _u.mutation.EnTerm(); ok {
		if err := jobglossaryterm.EnTermValidator(v); err != nil {
			return &ValidationError{Name: "en_term", err: fmt.Errorf(`ent: validator failed for field "JobGlossaryTerm.en_term": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobGlossaryTerm.job"`)
	}
	return nil
}

func (_u *JobGlossaryTermUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobglossaryterm.Table, jobglossaryterm.Columns, sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnTerm(); ok {
		_spec.SetField(jobglossaryterm.FieldEnTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.FaTerm(); ok {
		_spec.SetField(jobglossaryterm.FieldFaTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.TermType(); ok {
		_spec.SetField(jobglossaryterm.FieldTermType, field.TypeString, value)
	}
	if _u.mutation.TermTypeCleared() {
		_spec.ClearField(jobglossaryterm.FieldTermType, field.TypeString)
	}
	if value, ok := _u.mutation.Mandatory(); ok {
		_spec.SetField(jobglossaryterm.FieldMandatory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(jobglossaryterm.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(jobglossaryterm.FieldConfidence, field.TypeInt, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(jobglossaryterm.FieldConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(jobglossaryterm.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(jobglossaryterm.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobglossaryterm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobGlossaryTermUpdateOne is the builder for updating a single JobGlossaryTerm entity.
type JobGlossaryTermUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobGlossaryTermMutation
}

// SetEnTerm sets the "en_term" field.
func (_u *JobGlossaryTermUpdateOne) SetEnTerm(v string) *JobGlossaryTermUpdateOne {
	_u.mutation.SetEnTerm(v)
	return _u
}

// SetNillableEnTerm sets the "en_term" field if the given value is not nil.
func (_u *JobGlossaryTermUpdateOne) SetNillableEnTerm(v *string) *JobGlossaryTermUpdateOne {
	if v != nil {
		_u.SetEnTerm(*v)
	}
	return _u
}

// SetFaTerm sets the "fa_term" field.
func (_u *JobGlossaryTermUpdateOne) SetFaTerm(v string) *JobGlossaryTermUpdateOne {
	_u.mutation.SetFaTerm(v)
	return _u
}

// SetNillableFaTerm sets the "fa_term" field if the given value is not nil.
func (_u *JobGlossaryTermUpdateOne) SetNillableFaTerm(v *string) *JobGlossaryTermUpdateOne {
	if v != nil {
		_u.SetFaTerm(*v)
	}
	return _u
}

// SetTermType sets the "term_type" field.
func (_u *JobGlossaryTermUpdateOne) SetTermType(v string) *JobGlossaryTermUpdateOne {
	_u.mutation.SetTermType(v)
	return _u
}

// SetNillableTermType sets the "term_type" field if the given value is not nil.
func (_u *JobGlossaryTermUpdateOne) SetNillableTermType(v *string) *JobGlossaryTermUpdateOne {
	if v != nil {
		_u.SetTermType(*v)
	}
	return _u
}

// ClearTermType clears the value of the "term_type" field.
func (_u *JobGlossaryTermUpdateOne) ClearTermType() *JobGlossaryTermUpdateOne {
	_u.mutation.ClearTermType()
	return _u
}

// SetMandatory sets the "mandatory" field.
func (_u *JobGlossaryTermUpdateOne) SetMandatory(v bool) *JobGlossaryTermUpdateOne {
	_u.mutation.SetMandatory(v)
	return _u
}

// SetNillableMandatory sets the "mandatory" field if the given value is not nil.
func (_u *JobGlossaryTermUpdateOne) SetNillableMandatory(v *bool) *JobGlossaryTermUpdateOne {
	if v != nil {
		_u.SetMandatory(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *JobGlossaryTermUpdateOne) SetConfidence(v int) *JobGlossaryTermUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *JobGlossaryTermUpdateOne) SetNillableConfidence(v *int) *JobGlossaryTermUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *JobGlossaryTermUpdateOne) AddConfidence(v int) *JobGlossaryTermUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *JobGlossaryTermUpdateOne) ClearConfidence() *JobGlossaryTermUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *JobGlossaryTermUpdateOne) SetNotes(v string) *JobGlossaryTermUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *JobGlossaryTermUpdateOne) SetNillableNotes(v *string) *JobGlossaryTermUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *JobGlossaryTermUpdateOne) ClearNotes() *JobGlossaryTermUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the JobGlossaryTermMutation object of the builder.
func (_u *JobGlossaryTermUpdateOne) Mutation() *JobGlossaryTermMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobGlossaryTermUpdate builder.
func (_u *JobGlossaryTermUpdateOne) Where(ps ...predicate.JobGlossaryTerm) *JobGlossaryTermUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobGlossaryTermUpdateOne) Select(field string, fields ...string) *JobGlossaryTermUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobGlossaryTerm entity.
func (_u *JobGlossaryTermUpdateOne) Save(ctx context.Context) (*JobGlossaryTerm, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobGlossaryTermUpdateOne) SaveX(ctx context.Context) *JobGlossaryTerm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobGlossaryTermUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobGlossaryTermUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobGlossaryTermUpdateOne) check() error {
	if v, ok := _u.mutation.EnTerm(); ok {
		if err := jobglossaryterm.EnTermValidator(v); err != nil {
			return &ValidationError{Name: "en_term", err: fmt.Errorf(`ent: validator failed for field "JobGlossaryTerm.en_term": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobGlossaryTerm.job"`)
	}
	return nil
}

func (_u *JobGlossaryTermUpdateOne) sqlSave(ctx context.Context) (_node *JobGlossaryTerm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobglossaryterm.Table, jobglossaryterm.Columns, sqlgraph.NewFieldSpec(jobglossaryterm.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobGlossaryTerm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobglossaryterm.FieldID)
		for _, f := range fields {
			if !jobglossaryterm.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobglossaryterm.FieldID {
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
	if value, ok := _u.mutation.EnTerm(); ok {
		_spec.SetField(jobglossaryterm.FieldEnTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.FaTerm(); ok {
		_spec.SetField(jobglossaryterm.FieldFaTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.TermType(); ok {
		_spec.SetField(jobglossaryterm.FieldTermType, field.TypeString, value)
	}
	if _u.mutation.TermTypeCleared() {
		_spec.ClearField(jobglossaryterm.FieldTermType, field.TypeString)
	}
	if value, ok := _u.mutation.Mandatory(); ok {
		_spec.SetField(jobglossaryterm.FieldMandatory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(jobglossaryterm.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(jobglossaryterm.FieldConfidence, field.TypeInt, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(jobglossaryterm.FieldConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(jobglossaryterm.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(jobglossaryterm.FieldNotes, field.TypeString)
	}
	_node = &JobGlossaryTerm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobglossaryterm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
