// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/subtitle-ai/zirnevis/ent/tmentry"
)

// TMEntryCreate is the builder for creating a TMEntry entity.
type TMEntryCreate struct {
	config
	mutation *TMEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TMEntryCreate) SetCreatedAt(v time.Time) *TMEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TMEntryCreate) SetNillableCreatedAt(v *time.Time) *TMEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TMEntryCreate) SetUpdatedAt(v time.Time) *TMEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TMEntryCreate) SetNillableUpdatedAt(v *time.Time) *TMEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourceLang sets the "source_lang" field.
func (_c *TMEntryCreate) SetSourceLang(v string) *TMEntryCreate {
	_c.mutation.SetSourceLang(v)
	return _c
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (_c *TMEntryCreate) SetNillableSourceLang(v *string) *TMEntryCreate {
	if v != nil {
		_c.SetSourceLang(*v)
	}
	return _c
}

// SetTargetLang sets the "target_lang" field.
func (_c *TMEntryCreate) SetTargetLang(v string) *TMEntryCreate {
	_c.mutation.SetTargetLang(v)
	return _c
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (_c *TMEntryCreate) SetNillableTargetLang(v *string) *TMEntryCreate {
	if v != nil {
		_c.SetTargetLang(*v)
	}
	return _c
}

// SetEnText sets the "en_text" field.
func (_c *TMEntryCreate) SetEnText(v string) *TMEntryCreate {
	_c.mutation.SetEnText(v)
	return _c
}

// SetFaText sets the "fa_text" field.
func (_c *TMEntryCreate) SetFaText(v string) *TMEntryCreate {
	_c.mutation.SetFaText(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *TMEntryCreate) SetVersion(v int) *TMEntryCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *TMEntryCreate) SetNillableVersion(v *int) *TMEntryCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetQualityGrade sets the "quality_grade" field.
func (_c *TMEntryCreate) SetQualityGrade(v tmentry.QualityGrade) *TMEntryCreate {
	_c.mutation.SetQualityGrade(v)
	return _c
}

// SetNillableQualityGrade sets the "quality_grade" field if the given value is not nil.
func (_c *TMEntryCreate) SetNillableQualityGrade(v *tmentry.QualityGrade) *TMEntryCreate {
	if v != nil {
		_c.SetQualityGrade(*v)
	}
	return _c
}

// SetQaScore sets the "qa_score" field.
func (_c *TMEntryCreate) SetQaScore(v float64) *TMEntryCreate {
	_c.mutation.SetQaScore(v)
	return _c
}

// SetNillableQaScore sets the "qa_score" field if the given value is not nil.
func (_c *TMEntryCreate) SetNillableQaScore(v *float64) *TMEntryCreate {
	if v != nil {
		_c.SetQaScore(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TMEntryCreate) SetConfidence(v int) *TMEntryCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TMEntryCreate) SetNillableConfidence(v *int) *TMEntryCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetEnHash sets the "en_hash" field.
func (_c *TMEntryCreate) SetEnHash(v string) *TMEntryCreate {
	_c.mutation.SetEnHash(v)
	return _c
}

// SetDomainTags sets the "domain_tags" field.
func (_c *TMEntryCreate) SetDomainTags(v []string) *TMEntryCreate {
	_c.mutation.SetDomainTags(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *TMEntryCreate) SetEmbedding(v pgvector.Vector) *TMEntryCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_c *TMEntryCreate) SetNillableEmbedding(v *pgvector.Vector) *TMEntryCreate {
	if v != nil {
		_c.SetEmbedding(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TMEntryCreate) SetID(v string) *TMEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TMEntryMutation object of the builder.
func (_c *TMEntryCreate) Mutation() *TMEntryMutation {
	return _c.mutation
}

// Save creates the TMEntry in the database.
func (_c *TMEntryCreate) Save(ctx context.Context) (*TMEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TMEntryCreate) SaveX(ctx context.Context) *TMEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TMEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TMEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TMEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tmentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tmentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SourceLang(); !ok {
		v := tmentry.DefaultSourceLang
		_c.mutation.SetSourceLang(v)
	}
	if _, ok := _c.mutation.TargetLang(); !ok {
		v := tmentry.DefaultTargetLang
		_c.mutation.SetTargetLang(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := tmentry.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.QualityGrade(); !ok {
		v := tmentry.DefaultQualityGrade
		_c.mutation.SetQualityGrade(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TMEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TMEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TMEntry.updated_at"`)}
	}
	if _, ok := _c.mutation.SourceLang(); !ok {
		return &ValidationError{Name: "source_lang", err: errors.New(`ent: missing required field "TMEntry.source_lang"`)}
	}
	if _, ok := _c.mutation.TargetLang(); !ok {
		return &ValidationError{Name: "target_lang", err: errors.New(`ent: missing required field "TMEntry.target_lang"`)}
	}
	if _, ok := _c.mutation.EnText(); !ok {
		return &ValidationError{Name: "en_text", err: errors.New(`ent: missing required field "TMEntry.en_text"`)}
	}
	if v, ok := _c.mutation.EnText(); ok {
		if err := tmentry.EnTextValidator(v); err != nil {
			return &ValidationError{Name: "en_text", err: fmt.Errorf(`ent: validator failed for field "TMEntry.en_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FaText(); !ok {
		return &ValidationError{Name: "fa_text", err: errors.New(`ent: missing required field "TMEntry.fa_text"`)}
	}
	if v, ok := _c.mutation.FaText(); ok {
		if err := tmentry.FaTextValidator(v); err != nil {
			return &ValidationError{Name: "fa_text", err: fmt.Errorf(`ent: validator failed for field "TMEntry.fa_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "TMEntry.version"`)}
	}
	if _, ok := _c.mutation.QualityGrade(); !ok {
		return &ValidationError{Name: "quality_grade", err: errors.New(`ent: missing required field "TMEntry.quality_grade"`)}
	}
	if v, ok := _c.mutation.QualityGrade(); ok {
		if err := tmentry.QualityGradeValidator(v); err != nil {
			return &ValidationError{Name: "quality_grade", err: fmt.Errorf(`ent: validator failed for field "TMEntry.quality_grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnHash(); !ok {
		return &ValidationError{Name: "en_hash", err: errors.New(`ent: missing required field "TMEntry.en_hash"`)}
	}
	if v, ok := _c.mutation.EnHash(); ok {
		if err := tmentry.EnHashValidator(v); err != nil {
			return &ValidationError{Name: "en_hash", err: fmt.Errorf(`ent: validator failed for field "TMEntry.en_hash": %w`, err)}
		}
	}
	return nil
}

func (_c *TMEntryCreate) sqlSave(ctx context.Context) (*TMEntry, error) {
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
			return nil, fmt.Errorf("unexpected TMEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TMEntryCreate) createSpec() (*TMEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &TMEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tmentry.Table, sqlgraph.NewFieldSpec(tmentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tmentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tmentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourceLang(); ok {
		_spec.SetField(tmentry.FieldSourceLang, field.TypeString, value)
		_node.SourceLang = value
	}
	if value, ok := _c.mutation.TargetLang(); ok {
		_spec.SetField(tmentry.FieldTargetLang, field.TypeString, value)
		_node.TargetLang = value
	}
	if value, ok := _c.mutation.EnText(); ok {
		_spec.SetField(tmentry.FieldEnText, field.TypeString, value)
		_node.EnText = value
	}
	if value, ok := _c.mutation.FaText(); ok {
		_spec.SetField(tmentry.FieldFaText, field.TypeString, value)
		_node.FaText = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(tmentry.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.QualityGrade(); ok {
		_spec.SetField(tmentry.FieldQualityGrade, field.TypeEnum, value)
		_node.QualityGrade = value
	}
	if value, ok := _c.mutation.QaScore(); ok {
		_spec.SetField(tmentry.FieldQaScore, field.TypeFloat64, value)
		_node.QaScore = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(tmentry.FieldConfidence, field.TypeInt, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.EnHash(); ok {
		_spec.SetField(tmentry.FieldEnHash, field.TypeString, value)
		_node.EnHash = value
	}
	if value, ok := _c.mutation.DomainTags(); ok {
		_spec.SetField(tmentry.FieldDomainTags, field.TypeJSON, value)
		_node.DomainTags = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(tmentry.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = value
	}
	return _node, _spec
}

// TMEntryCreateBulk is the builder for creating many TMEntry entities in bulk.
type TMEntryCreateBulk struct {
	config
	err      error
	builders []*TMEntryCreate
}

// Save creates the TMEntry entities in the database.
func (_c *TMEntryCreateBulk) Save(ctx context.Context) ([]*TMEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TMEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TMEntryMutation)
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
func (_c *TMEntryCreateBulk) SaveX(ctx context.Context) []*TMEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TMEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TMEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
