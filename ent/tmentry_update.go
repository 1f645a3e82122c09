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
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
	"github.com/subtitle-ai/zirnevis/ent/tmentry"
)

// TMEntryUpdate is the builder for updating TMEntry entities.
type TMEntryUpdate struct {
	config
	hooks    []Hook
	mutation *TMEntryMutation
}

// Where appends a list predicates to the TMEntryUpdate builder.
func (_u *TMEntryUpdate) Where(ps ...predicate.TMEntry) *TMEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TMEntryUpdate) SetUpdatedAt(v time.Time) *TMEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceLang sets the "source_lang" field.
func (_u *TMEntryUpdate) SetSourceLang(v string) *TMEntryUpdate {
	_u.mutation.SetSourceLang(v)
	return _u
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableSourceLang(v *string) *TMEntryUpdate {
	if v != nil {
		_u.SetSourceLang(*v)
	}
	return _u
}

// SetTargetLang sets the "target_lang" field.
func (_u *TMEntryUpdate) SetTargetLang(v string) *TMEntryUpdate {
	_u.mutation.SetTargetLang(v)
	return _u
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableTargetLang(v *string) *TMEntryUpdate {
	if v != nil {
		_u.SetTargetLang(*v)
	}
	return _u
}

// SetEnText sets the "en_text" field.
func (_u *TMEntryUpdate) SetEnText(v string) *TMEntryUpdate {
	_u.mutation.SetEnText(v)
	return _u
}

// SetNillableEnText sets the "en_text" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableEnText(v *string) *TMEntryUpdate {
	if v != nil {
		_u.SetEnText(*v)
	}
	return _u
}

// SetFaText sets the "fa_text" field.
func (_u *TMEntryUpdate) SetFaText(v string) *TMEntryUpdate {
	_u.mutation.SetFaText(v)
	return _u
}

// SetNillableFaText sets the "fa_text" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableFaText(v *string) *TMEntryUpdate {
	if v != nil {
		_u.SetFaText(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TMEntryUpdate) SetVersion(v int) *TMEntryUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableVersion(v *int) *TMEntryUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TMEntryUpdate) AddVersion(v int) *TMEntryUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetQualityGrade sets the "quality_grade" field.
func (_u *TMEntryUpdate) SetQualityGrade(v tmentry.QualityGrade) *TMEntryUpdate {
	_u.mutation.SetQualityGrade(v)
	return _u
}

// SetNillableQualityGrade sets the "quality_grade" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableQualityGrade(v *tmentry.QualityGrade) *TMEntryUpdate {
	if v != nil {
		_u.SetQualityGrade(*v)
	}
	return _u
}

// SetQaScore sets the "qa_score" field.
func (_u *TMEntryUpdate) SetQaScore(v float64) *TMEntryUpdate {
	_u.mutation.ResetQaScore()
	_u.mutation.SetQaScore(v)
	return _u
}

// SetNillableQaScore sets the "qa_score" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableQaScore(v *float64) *TMEntryUpdate {
	if v != nil {
		_u.SetQaScore(*v)
	}
	return _u
}

// AddQaScore adds value to the "qa_score" field.
func (_u *TMEntryUpdate) AddQaScore(v float64) *TMEntryUpdate {
	_u.mutation.AddQaScore(v)
	return _u
}

// ClearQaScore clears the value of the "qa_score" field.
func (_u *TMEntryUpdate) ClearQaScore() *TMEntryUpdate {
	_u.mutation.ClearQaScore()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TMEntryUpdate) SetConfidence(v int) *TMEntryUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableConfidence(v *int) *TMEntryUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TMEntryUpdate) AddConfidence(v int) *TMEntryUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TMEntryUpdate) ClearConfidence() *TMEntryUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetEnHash sets the "en_hash" field.
func (_u *TMEntryUpdate) SetEnHash(v string) *TMEntryUpdate {
	_u.mutation.SetEnHash(v)
	return _u
}

// SetNillableEnHash sets the "en_hash" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableEnHash(v *string) *TMEntryUpdate {
	if v != nil {
		_u.SetEnHash(*v)
	}
	return _u
}

// SetDomainTags sets the "domain_tags" field.
func (_u *TMEntryUpdate) SetDomainTags(v []string) *TMEntryUpdate {
	_u.mutation.SetDomainTags(v)
	return _u
}

// AppendDomainTags appends value to the "domain_tags" field.
func (_u *TMEntryUpdate) AppendDomainTags(v []string) *TMEntryUpdate {
	_u.mutation.AppendDomainTags(v)
	return _u
}

// ClearDomainTags clears the value of the "domain_tags" field.
func (_u *TMEntryUpdate) ClearDomainTags() *TMEntryUpdate {
	_u.mutation.ClearDomainTags()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *TMEntryUpdate) SetEmbedding(v pgvector.Vector) *TMEntryUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *TMEntryUpdate) SetNillableEmbedding(v *pgvector.Vector) *TMEntryUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *TMEntryUpdate) ClearEmbedding() *TMEntryUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the TMEntryMutation object of the builder.
func (_u *TMEntryUpdate) Mutation() *TMEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TMEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TMEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TMEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TMEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TMEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tmentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TMEntryUpdate) check() error {
	if v, ok := _u.mutation.EnText(); ok {
		if err := tmentry.EnTextValidator(v); err != nil {
			return &ValidationError{Name: "en_text", err: fmt.Errorf(`ent: validator failed for field "TMEntry.en_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FaText(); ok {
		if err := tmentry.FaTextValidator(v); err != nil {
			return &ValidationError{Name: "fa_text", err: fmt.Errorf(`ent: validator failed for field "TMEntry.fa_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QualityGrade(); ok {
		if err := tmentry.QualityGradeValidator(v); err != nil {
			return &ValidationError{Name: "quality_grade", err: fmt.Errorf(`ent: validator failed for field "TMEntry.quality_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnHash(); ok {
		if err := tmentry.EnHashValidator(v); err != nil {
			return &ValidationError{Name: "en_hash", err: fmt.Errorf(`ent: validator failed for field "TMEntry.en_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *TMEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tmentry.Table, tmentry.Columns, sqlgraph.NewFieldSpec(tmentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tmentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceLang(); ok {
		_spec.SetField(tmentry.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLang(); ok {
		_spec.SetField(tmentry.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnText(); ok {
		_spec.SetField(tmentry.FieldEnText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FaText(); ok {
		_spec.SetField(tmentry.FieldFaText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(tmentry.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(tmentry.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityGrade(); ok {
		_spec.SetField(tmentry.FieldQualityGrade, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QaScore(); ok {
		_spec.SetField(tmentry.FieldQaScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQaScore(); ok {
		_spec.AddField(tmentry.FieldQaScore, field.TypeFloat64, value)
	}
	if _u.mutation.QaScoreCleared() {
		_spec.ClearField(tmentry.FieldQaScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(tmentry.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(tmentry.FieldConfidence, field.TypeInt, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(tmentry.FieldConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.EnHash(); ok {
		_spec.SetField(tmentry.FieldEnHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainTags(); ok {
		_spec.SetField(tmentry.FieldDomainTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomainTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tmentry.FieldDomainTags, value)
		})
	}
	if _u.mutation.DomainTagsCleared() {
		_spec.ClearField(tmentry.FieldDomainTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(tmentry.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(tmentry.FieldEmbedding, field.TypeOther)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tmentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TMEntryUpdateOne is the builder for updating a single TMEntry entity.
type TMEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TMEntryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TMEntryUpdateOne) SetUpdatedAt(v time.Time) *TMEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceLang sets the "source_lang" field.
func (_u *TMEntryUpdateOne) SetSourceLang(v string) *TMEntryUpdateOne {
	_u.mutation.SetSourceLang(v)
	return _u
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableSourceLang(v *string) *TMEntryUpdateOne {
	if v != nil {
		_u.SetSourceLang(*v)
	}
	return _u
}

// SetTargetLang sets the "target_lang" field.
func (_u *TMEntryUpdateOne) SetTargetLang(v string) *TMEntryUpdateOne {
	_u.mutation.SetTargetLang(v)
	return _u
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableTargetLang(v *string) *TMEntryUpdateOne {
	if v != nil {
		_u.SetTargetLang(*v)
	}
	return _u
}

// SetEnText sets the "en_text" field.
func (_u *TMEntryUpdateOne) SetEnText(v string) *TMEntryUpdateOne {
	_u.mutation.SetEnText(v)
	return _u
}

// SetNillableEnText sets the "en_text" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableEnText(v *string) *TMEntryUpdateOne {
	if v != nil {
		_u.SetEnText(*v)
	}
	return _u
}

// SetFaText sets the "fa_text" field.
func (_u *TMEntryUpdateOne) SetFaText(v string) *TMEntryUpdateOne {
	_u.mutation.SetFaText(v)
	return _u
}

// SetNillableFaText sets the "fa_text" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableFaText(v *string) *TMEntryUpdateOne {
	if v != nil {
		_u.SetFaText(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TMEntryUpdateOne) SetVersion(v int) *TMEntryUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableVersion(v *int) *TMEntryUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TMEntryUpdateOne) AddVersion(v int) *TMEntryUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetQualityGrade sets the "quality_grade" field.
func (_u *TMEntryUpdateOne) SetQualityGrade(v tmentry.QualityGrade) *TMEntryUpdateOne {
	_u.mutation.SetQualityGrade(v)
	return _u
}

// SetNillableQualityGrade sets the "quality_grade" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableQualityGrade(v *tmentry.QualityGrade) *TMEntryUpdateOne {
	if v != nil {
		_u.SetQualityGrade(*v)
	}
	return _u
}

// SetQaScore sets the "qa_score" field.
func (_u *TMEntryUpdateOne) SetQaScore(v float64) *TMEntryUpdateOne {
	_u.mutation.ResetQaScore()
	_u.mutation.SetQaScore(v)
	return _u
}

// SetNillableQaScore sets the "qa_score" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableQaScore(v *float64) *TMEntryUpdateOne {
	if v != nil {
		_u.SetQaScore(*v)
	}
	return _u
}

// AddQaScore adds value to the "qa_score" field.
func (_u *TMEntryUpdateOne) AddQaScore(v float64) *TMEntryUpdateOne {
	_u.mutation.AddQaScore(v)
	return _u
}

// ClearQaScore clears the value of the "qa_score" field.
func (_u *TMEntryUpdateOne) ClearQaScore() *TMEntryUpdateOne {
	_u.mutation.ClearQaScore()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TMEntryUpdateOne) SetConfidence(v int) *TMEntryUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableConfidence(v *int) *TMEntryUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TMEntryUpdateOne) AddConfidence(v int) *TMEntryUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TMEntryUpdateOne) ClearConfidence() *TMEntryUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetEnHash sets the "en_hash" field.
func (_u *TMEntryUpdateOne) SetEnHash(v string) *TMEntryUpdateOne {
	_u.mutation.SetEnHash(v)
	return _u
}

// SetNillableEnHash sets the "en_hash" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableEnHash(v *string) *TMEntryUpdateOne {
	if v != nil {
		_u.SetEnHash(*v)
	}
	return _u
}

// SetDomainTags sets the "domain_tags" field.
func (_u *TMEntryUpdateOne) SetDomainTags(v []string) *TMEntryUpdateOne {
	_u.mutation.SetDomainTags(v)
	return _u
}

// AppendDomainTags appends value to the "domain_tags" field.
func (_u *TMEntryUpdateOne) AppendDomainTags(v []string) *TMEntryUpdateOne {
	_u.mutation.AppendDomainTags(v)
	return _u
}

// ClearDomainTags clears the value of the "domain_tags" field.
func (_u *TMEntryUpdateOne) ClearDomainTags() *TMEntryUpdateOne {
	_u.mutation.ClearDomainTags()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *TMEntryUpdateOne) SetEmbedding(v pgvector.Vector) *TMEntryUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *TMEntryUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *TMEntryUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *TMEntryUpdateOne) ClearEmbedding() *TMEntryUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the TMEntryMutation object of the builder.
func (_u *TMEntryUpdateOne) Mutation() *TMEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TMEntryUpdate builder.
func (_u *TMEntryUpdateOne) Where(ps ...predicate.TMEntry) *TMEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TMEntryUpdateOne) Select(field string, fields ...string) *TMEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TMEntry entity.
func (_u *TMEntryUpdateOne) Save(ctx context.Context) (*TMEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TMEntryUpdateOne) SaveX(ctx context.Context) *TMEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TMEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TMEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TMEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tmentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TMEntryUpdateOne) check() error {
	if v, ok := _u.mutation.EnText(); ok {
		if err := tmentry.EnTextValidator(v); err != nil {
			return &ValidationError{Name: "en_text", err: fmt.Errorf(`ent: validator failed for field "TMEntry.en_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FaText(); ok {
		if err := tmentry.FaTextValidator(v); err != nil {
			return &ValidationError{Name: "fa_text", err: fmt.Errorf(`ent: validator failed for field "TMEntry.fa_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QualityGrade(); ok {
		if err := tmentry.QualityGradeValidator(v); err != nil {
			return &ValidationError{Name: "quality_grade", err: fmt.Errorf(`ent: validator failed for field "TMEntry.quality_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnHash(); ok {
		if err := tmentry.EnHashValidator(v); err != nil {
			return &ValidationError{Name: "en_hash", err: fmt.Errorf(`ent: validator failed for field "TMEntry.en_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *TMEntryUpdateOne) sqlSave(ctx context.Context) (_node *TMEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tmentry.Table, tmentry.Columns, sqlgraph.NewFieldSpec(tmentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TMEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tmentry.FieldID)
		for _, f := range fields {
			if !tmentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tmentry.FieldID {
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
		_spec.SetField(tmentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceLang(); ok {
		_spec.SetField(tmentry.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLang(); ok {
		_spec.SetField(tmentry.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnText(); ok {
		_spec.SetField(tmentry.FieldEnText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FaText(); ok {
		_spec.SetField(tmentry.FieldFaText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(tmentry.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(tmentry.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityGrade(); ok {
		_spec.SetField(tmentry.FieldQualityGrade, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QaScore(); ok {
		_spec.SetField(tmentry.FieldQaScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQaScore(); ok {
		_spec.AddField(tmentry.FieldQaScore, field.TypeFloat64, value)
	}
	if _u.mutation.QaScoreCleared() {
		_spec.ClearField(tmentry.FieldQaScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(tmentry.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(tmentry.FieldConfidence, field.TypeInt, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(tmentry.FieldConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.EnHash(); ok {
		_spec.SetField(tmentry.FieldEnHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainTags(); ok {
		_spec.SetField(tmentry.FieldDomainTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomainTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tmentry.FieldDomainTags, value)
		})
	}
	if _u.mutation.DomainTagsCleared() {
		_spec.ClearField(tmentry.FieldDomainTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(tmentry.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(tmentry.FieldEmbedding, field.TypeOther)
	}
	_node = &TMEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tmentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
