// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
	"github.com/subtitle-ai/zirnevis/ent/predicate"
	"github.com/subtitle-ai/zirnevis/ent/tmentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJob             = "Job"
	TypeJobCue          = "JobCue"
	TypeJobGlossaryTerm = "JobGlossaryTerm"
	TypeLLMRun          = "LLMRun"
	TypeTMEntry         = "TMEntry"
)

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	source_lang           *string
	target_lang           *string
	status                *job.Status
	queue_state           *job.QueueState
	input_type            *string
	input_uri             *string
	normalized_uri        *string
	asr_json_uri          *string
	final_srt_uri         *string
	max_lines             *int
	addmax_lines          *int
	max_chars_per_line    *int
	addmax_chars_per_line *int
	target_cps            *float64
	addtarget_cps         *float64
	min_cue_ms            *int
	addmin_cue_ms         *int
	max_cue_ms            *int
	addmax_cue_ms         *int
	risk_level            *string
	difficulty_score      *int
	adddifficulty_score   *int
	strategist_conf       *int
	addstrategist_conf    *int
	genre                 *string
	tone                  *string
	domain_tags           *[]string
	appenddomain_tags     []string
	needs_terminologist   *bool
	error_message         *string
	claimed_by            *string
	heartbeat_at          *time.Time
	clearedFields         map[string]struct{}
	cues                  map[string]struct{}
	removedcues           map[string]struct{}
	clearedcues           bool
	glossary_terms        map[string]struct{}
	removedglossary_terms map[string]struct{}
	clearedglossary_terms bool
	llm_runs              map[string]struct{}
	removedllm_runs       map[string]struct{}
	clearedllm_runs       bool
	done                  bool
	oldValue              func(context.Context) (*Job, error)
	predicates            []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourceLang sets the "source_lang" field.
func (m *JobMutation) SetSourceLang(s string) {
	m.source_lang = &s
}

// SourceLang returns the value of the "source_lang" field in the mutation.
func (m *JobMutation) SourceLang() (r string, exists bool) {
	v := m.source_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceLang returns the old "source_lang" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSourceLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceLang: %w", err)
	}
	return oldValue.SourceLang, nil
}

// ResetSourceLang resets all changes to the "source_lang" field.
func (m *JobMutation) ResetSourceLang() {
	m.source_lang = nil
}

// SetTargetLang sets the "target_lang" field.
func (m *JobMutation) SetTargetLang(s string) {
	m.target_lang = &s
}

// TargetLang returns the value of the "target_lang" field in the mutation.
func (m *JobMutation) TargetLang() (r string, exists bool) {
	v := m.target_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLang returns the old "target_lang" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTargetLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLang: %w", err)
	}
	return oldValue.TargetLang, nil
}

// ResetTargetLang resets all changes to the "target_lang" field.
func (m *JobMutation) ResetTargetLang() {
	m.target_lang = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetQueueState sets the "queue_state" field.
func (m *JobMutation) SetQueueState(js job.QueueState) {
	m.queue_state = &js
}

// QueueState returns the value of the "queue_state" field in the mutation.
func (m *JobMutation) QueueState() (r job.QueueState, exists bool) {
	v := m.queue_state
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueState returns the old "queue_state" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueueState(ctx context.Context) (v job.QueueState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueState: %w", err)
	}
	return oldValue.QueueState, nil
}

// ResetQueueState resets all changes to the "queue_state" field.
func (m *JobMutation) ResetQueueState() {
	m.queue_state = nil
}

// SetInputType sets the "input_type" field.
func (m *JobMutation) SetInputType(s string) {
	m.input_type = &s
}

// InputType returns the value of the "input_type" field in the mutation.
func (m *JobMutation) InputType() (r string, exists bool) {
	v := m.input_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInputType returns the old "input_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldInputType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputType: %w", err)
	}
	return oldValue.InputType, nil
}

// ResetInputType resets all changes to the "input_type" field.
func (m *JobMutation) ResetInputType() {
	m.input_type = nil
}

// SetInputURI sets the "input_uri" field.
func (m *JobMutation) SetInputURI(s string) {
	m.input_uri = &s
}

// InputURI returns the value of the "input_uri" field in the mutation.
func (m *JobMutation) InputURI() (r string, exists bool) {
	v := m.input_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldInputURI returns the old "input_uri" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldInputURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputURI: %w", err)
	}
	return oldValue.InputURI, nil
}

// ResetInputURI resets all changes to the "input_uri" field.
func (m *JobMutation) ResetInputURI() {
	m.input_uri = nil
}

// SetNormalizedURI sets the "normalized_uri" field.
func (m *JobMutation) SetNormalizedURI(s string) {
	m.normalized_uri = &s
}

// NormalizedURI returns the value of the "normalized_uri" field in the mutation.
func (m *JobMutation) NormalizedURI() (r string, exists bool) {
	v := m.normalized_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedURI returns the old "normalized_uri" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNormalizedURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedURI: %w", err)
	}
	return oldValue.NormalizedURI, nil
}

// ClearNormalizedURI clears the value of the "normalized_uri" field.
func (m *JobMutation) ClearNormalizedURI() {
	m.normalized_uri = nil
	m.clearedFields[job.FieldNormalizedURI] = struct{}{}
}

// NormalizedURICleared returns if the "normalized_uri" field was cleared in this mutation.
func (m *JobMutation) NormalizedURICleared() bool {
	_, ok := m.clearedFields[job.FieldNormalizedURI]
	return ok
}

// ResetNormalizedURI resets all changes to the "normalized_uri" field.
func (m *JobMutation) ResetNormalizedURI() {
	m.normalized_uri = nil
	delete(m.clearedFields, job.FieldNormalizedURI)
}

// SetAsrJSONURI sets the "asr_json_uri" field.
func (m *JobMutation) SetAsrJSONURI(s string) {
	m.asr_json_uri = &s
}

// AsrJSONURI returns the value of the "asr_json_uri" field in the mutation.
func (m *JobMutation) AsrJSONURI() (r string, exists bool) {
	v := m.asr_json_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldAsrJSONURI returns the old "asr_json_uri" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAsrJSONURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAsrJSONURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAsrJSONURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAsrJSONURI: %w", err)
	}
	return oldValue.AsrJSONURI, nil
}

// ClearAsrJSONURI clears the value of the "asr_json_uri" field.
func (m *JobMutation) ClearAsrJSONURI() {
	m.asr_json_uri = nil
	m.clearedFields[job.FieldAsrJSONURI] = struct{}{}
}

// AsrJSONURICleared returns if the "asr_json_uri" field was cleared in this mutation.
func (m *JobMutation) AsrJSONURICleared() bool {
	_, ok := m.clearedFields[job.FieldAsrJSONURI]
	return ok
}

// ResetAsrJSONURI resets all changes to the "asr_json_uri" field.
func (m *JobMutation) ResetAsrJSONURI() {
	m.asr_json_uri = nil
	delete(m.clearedFields, job.FieldAsrJSONURI)
}

// SetFinalSrtURI sets the "final_srt_uri" field.
func (m *JobMutation) SetFinalSrtURI(s string) {
	m.final_srt_uri = &s
}

// FinalSrtURI returns the value of the "final_srt_uri" field in the mutation.
func (m *JobMutation) FinalSrtURI() (r string, exists bool) {
	v := m.final_srt_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalSrtURI returns the old "final_srt_uri" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinalSrtURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalSrtURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalSrtURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalSrtURI: %w", err)
	}
	return oldValue.FinalSrtURI, nil
}

// ClearFinalSrtURI clears the value of the "final_srt_uri" field.
func (m *JobMutation) ClearFinalSrtURI() {
	m.final_srt_uri = nil
	m.clearedFields[job.FieldFinalSrtURI] = struct{}{}
}

// FinalSrtURICleared returns if the "final_srt_uri" field was cleared in this mutation.
func (m *JobMutation) FinalSrtURICleared() bool {
	_, ok := m.clearedFields[job.FieldFinalSrtURI]
	return ok
}

// ResetFinalSrtURI resets all changes to the "final_srt_uri" field.
func (m *JobMutation) ResetFinalSrtURI() {
	m.final_srt_uri = nil
	delete(m.clearedFields, job.FieldFinalSrtURI)
}

// SetMaxLines sets the "max_lines" field.
func (m *JobMutation) SetMaxLines(i int) {
	m.max_lines = &i
	m.addmax_lines = nil
}

// MaxLines returns the value of the "max_lines" field in the mutation.
func (m *JobMutation) MaxLines() (r int, exists bool) {
	v := m.max_lines
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxLines returns the old "max_lines" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxLines(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxLines is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxLines requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxLines: %w", err)
	}
	return oldValue.MaxLines, nil
}

// AddMaxLines adds i to the "max_lines" field.
func (m *JobMutation) AddMaxLines(i int) {
	if m.addmax_lines != nil {
		*m.addmax_lines += i
	} else {
		m.addmax_lines = &i
	}
}

// AddedMaxLines returns the value that was added to the "max_lines" field in this mutation.
func (m *JobMutation) AddedMaxLines() (r int, exists bool) {
	v := m.addmax_lines
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxLines resets all changes to the "max_lines" field.
func (m *JobMutation) ResetMaxLines() {
	m.max_lines = nil
	m.addmax_lines = nil
}

// SetMaxCharsPerLine sets the "max_chars_per_line" field.
func (m *JobMutation) SetMaxCharsPerLine(i int) {
	m.max_chars_per_line = &i
	m.addmax_chars_per_line = nil
}

// MaxCharsPerLine returns the value of the "max_chars_per_line" field in the mutation.
func (m *JobMutation) MaxCharsPerLine() (r int, exists bool) {
	v := m.max_chars_per_line
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxCharsPerLine returns the old "max_chars_per_line" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxCharsPerLine(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxCharsPerLine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxCharsPerLine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxCharsPerLine: %w", err)
	}
	return oldValue.MaxCharsPerLine, nil
}

// AddMaxCharsPerLine adds i to the "max_chars_per_line" field.
func (m *JobMutation) AddMaxCharsPerLine(i int) {
	if m.addmax_chars_per_line != nil {
		*m.addmax_chars_per_line += i
	} else {
		m.addmax_chars_per_line = &i
	}
}

// AddedMaxCharsPerLine returns the value that was added to the "max_chars_per_line" field in this mutation.
func (m *JobMutation) AddedMaxCharsPerLine() (r int, exists bool) {
	v := m.addmax_chars_per_line
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxCharsPerLine resets all changes to the "max_chars_per_line" field.
func (m *JobMutation) ResetMaxCharsPerLine() {
	m.max_chars_per_line = nil
	m.addmax_chars_per_line = nil
}

// SetTargetCps sets the "target_cps" field.
func (m *JobMutation) SetTargetCps(f float64) {
	m.target_cps = &f
	m.addtarget_cps = nil
}

// TargetCps returns the value of the "target_cps" field in the mutation.
func (m *JobMutation) TargetCps() (r float64, exists bool) {
	v := m.target_cps
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetCps returns the old "target_cps" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTargetCps(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetCps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetCps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetCps: %w", err)
	}
	return oldValue.TargetCps, nil
}

// AddTargetCps adds f to the "target_cps" field.
func (m *JobMutation) AddTargetCps(f float64) {
	if m.addtarget_cps != nil {
		*m.addtarget_cps += f
	} else {
		m.addtarget_cps = &f
	}
}

// AddedTargetCps returns the value that was added to the "target_cps" field in this mutation.
func (m *JobMutation) AddedTargetCps() (r float64, exists bool) {
	v := m.addtarget_cps
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetCps resets all changes to the "target_cps" field.
func (m *JobMutation) ResetTargetCps() {
	m.target_cps = nil
	m.addtarget_cps = nil
}

// SetMinCueMs sets the "min_cue_ms" field.
func (m *JobMutation) SetMinCueMs(i int) {
	m.min_cue_ms = &i
	m.addmin_cue_ms = nil
}

// MinCueMs returns the value of the "min_cue_ms" field in the mutation.
func (m *JobMutation) MinCueMs() (r int, exists bool) {
	v := m.min_cue_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldMinCueMs returns the old "min_cue_ms" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMinCueMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinCueMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinCueMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinCueMs: %w", err)
	}
	return oldValue.MinCueMs, nil
}

// AddMinCueMs adds i to the "min_cue_ms" field.
func (m *JobMutation) AddMinCueMs(i int) {
	if m.addmin_cue_ms != nil {
		*m.addmin_cue_ms += i
	} else {
		m.addmin_cue_ms = &i
	}
}

// AddedMinCueMs returns the value that was added to the "min_cue_ms" field in this mutation.
func (m *JobMutation) AddedMinCueMs() (r int, exists bool) {
	v := m.addmin_cue_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinCueMs resets all changes to the "min_cue_ms" field.
func (m *JobMutation) ResetMinCueMs() {
	m.min_cue_ms = nil
	m.addmin_cue_ms = nil
}

// SetMaxCueMs sets the "max_cue_ms" field.
func (m *JobMutation) SetMaxCueMs(i int) {
	m.max_cue_ms = &i
	m.addmax_cue_ms = nil
}

// MaxCueMs returns the value of the "max_cue_ms" field in the mutation.
func (m *JobMutation) MaxCueMs() (r int, exists bool) {
	v := m.max_cue_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxCueMs returns the old "max_cue_ms" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxCueMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxCueMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxCueMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxCueMs: %w", err)
	}
	return oldValue.MaxCueMs, nil
}

// AddMaxCueMs adds i to the "max_cue_ms" field.
func (m *JobMutation) AddMaxCueMs(i int) {
	if m.addmax_cue_ms != nil {
		*m.addmax_cue_ms += i
	} else {
		m.addmax_cue_ms = &i
	}
}

// AddedMaxCueMs returns the value that was added to the "max_cue_ms" field in this mutation.
func (m *JobMutation) AddedMaxCueMs() (r int, exists bool) {
	v := m.addmax_cue_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxCueMs resets all changes to the "max_cue_ms" field.
func (m *JobMutation) ResetMaxCueMs() {
	m.max_cue_ms = nil
	m.addmax_cue_ms = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *JobMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *JobMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRiskLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (m *JobMutation) ClearRiskLevel() {
	m.risk_level = nil
	m.clearedFields[job.FieldRiskLevel] = struct{}{}
}

// RiskLevelCleared returns if the "risk_level" field was cleared in this mutation.
func (m *JobMutation) RiskLevelCleared() bool {
	_, ok := m.clearedFields[job.FieldRiskLevel]
	return ok
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *JobMutation) ResetRiskLevel() {
	m.risk_level = nil
	delete(m.clearedFields, job.FieldRiskLevel)
}

// SetDifficultyScore sets the "difficulty_score" field.
func (m *JobMutation) SetDifficultyScore(i int) {
	m.difficulty_score = &i
	m.adddifficulty_score = nil
}

// DifficultyScore returns the value of the "difficulty_score" field in the mutation.
func (m *JobMutation) DifficultyScore() (r int, exists bool) {
	v := m.difficulty_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyScore returns the old "difficulty_score" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDifficultyScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyScore: %w", err)
	}
	return oldValue.DifficultyScore, nil
}

// AddDifficultyScore adds i to the "difficulty_score" field.
func (m *JobMutation) AddDifficultyScore(i int) {
	if m.adddifficulty_score != nil {
		*m.adddifficulty_score += i
	} else {
		m.adddifficulty_score = &i
	}
}

// AddedDifficultyScore returns the value that was added to the "difficulty_score" field in this mutation.
func (m *JobMutation) AddedDifficultyScore() (r int, exists bool) {
	v := m.adddifficulty_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (m *JobMutation) ClearDifficultyScore() {
	m.difficulty_score = nil
	m.adddifficulty_score = nil
	m.clearedFields[job.FieldDifficultyScore] = struct{}{}
}

// DifficultyScoreCleared returns if the "difficulty_score" field was cleared in this mutation.
func (m *JobMutation) DifficultyScoreCleared() bool {
	_, ok := m.clearedFields[job.FieldDifficultyScore]
	return ok
}

// ResetDifficultyScore resets all changes to the "difficulty_score" field.
func (m *JobMutation) ResetDifficultyScore() {
	m.difficulty_score = nil
	m.adddifficulty_score = nil
	delete(m.clearedFields, job.FieldDifficultyScore)
}

// SetStrategistConf sets the "strategist_conf" field.
func (m *JobMutation) SetStrategistConf(i int) {
	m.strategist_conf = &i
	m.addstrategist_conf = nil
}

// StrategistConf returns the value of the "strategist_conf" field in the mutation.
func (m *JobMutation) StrategistConf() (r int, exists bool) {
	v := m.strategist_conf
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategistConf returns the old "strategist_conf" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStrategistConf(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategistConf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategistConf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategistConf: %w", err)
	}
	return oldValue.StrategistConf, nil
}

// AddStrategistConf adds i to the "strategist_conf" field.
func (m *JobMutation) AddStrategistConf(i int) {
	if m.addstrategist_conf != nil {
		*m.addstrategist_conf += i
	} else {
		m.addstrategist_conf = &i
	}
}

// AddedStrategistConf returns the value that was added to the "strategist_conf" field in this mutation.
func (m *JobMutation) AddedStrategistConf() (r int, exists bool) {
	v := m.addstrategist_conf
	if v == nil {
		return
	}
	return *v, true
}

// ClearStrategistConf clears the value of the "strategist_conf" field.
func (m *JobMutation) ClearStrategistConf() {
	m.strategist_conf = nil
	m.addstrategist_conf = nil
	m.clearedFields[job.FieldStrategistConf] = struct{}{}
}

// StrategistConfCleared returns if the "strategist_conf" field was cleared in this mutation.
func (m *JobMutation) StrategistConfCleared() bool {
	_, ok := m.clearedFields[job.FieldStrategistConf]
	return ok
}

// ResetStrategistConf resets all changes to the "strategist_conf" field.
func (m *JobMutation) ResetStrategistConf() {
	m.strategist_conf = nil
	m.addstrategist_conf = nil
	delete(m.clearedFields, job.FieldStrategistConf)
}

// SetGenre sets the "genre" field.
func (m *JobMutation) SetGenre(s string) {
	m.genre = &s
}

// Genre returns the value of the "genre" field in the mutation.
func (m *JobMutation) Genre() (r string, exists bool) {
	v := m.genre
	if v == nil {
		return
	}
	return *v, true
}

// OldGenre returns the old "genre" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldGenre(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenre: %w", err)
	}
	return oldValue.Genre, nil
}

// ClearGenre clears the value of the "genre" field.
func (m *JobMutation) ClearGenre() {
	m.genre = nil
	m.clearedFields[job.FieldGenre] = struct{}{}
}

// GenreCleared returns if the "genre" field was cleared in this mutation.
func (m *JobMutation) GenreCleared() bool {
	_, ok := m.clearedFields[job.FieldGenre]
	return ok
}

// ResetGenre resets all changes to the "genre" field.
func (m *JobMutation) ResetGenre() {
	m.genre = nil
	delete(m.clearedFields, job.FieldGenre)
}

// SetTone sets the "tone" field.
func (m *JobMutation) SetTone(s string) {
	m.tone = &s
}

// Tone returns the value of the "tone" field in the mutation.
func (m *JobMutation) Tone() (r string, exists bool) {
	v := m.tone
	if v == nil {
		return
	}
	return *v, true
}

// OldTone returns the old "tone" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTone: %w", err)
	}
	return oldValue.Tone, nil
}

// ClearTone clears the value of the "tone" field.
func (m *JobMutation) ClearTone() {
	m.tone = nil
	m.clearedFields[job.FieldTone] = struct{}{}
}

// ToneCleared returns if the "tone" field was cleared in this mutation.
func (m *JobMutation) ToneCleared() bool {
	_, ok := m.clearedFields[job.FieldTone]
	return ok
}

// ResetTone resets all changes to the "tone" field.
func (m *JobMutation) ResetTone() {
	m.tone = nil
	delete(m.clearedFields, job.FieldTone)
}

// SetDomainTags sets the "domain_tags" field.
func (m *JobMutation) SetDomainTags(s []string) {
	m.domain_tags = &s
	m.appenddomain_tags = nil
}

// DomainTags returns the value of the "domain_tags" field in the mutation.
func (m *JobMutation) DomainTags() (r []string, exists bool) {
	v := m.domain_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainTags returns the old "domain_tags" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDomainTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainTags: %w", err)
	}
	return oldValue.DomainTags, nil
}

// AppendDomainTags adds s to the "domain_tags" field.
func (m *JobMutation) AppendDomainTags(s []string) {
	m.appenddomain_tags = append(m.appenddomain_tags, s...)
}

// AppendedDomainTags returns the list of values that were appended to the "domain_tags" field in this mutation.
func (m *JobMutation) AppendedDomainTags() ([]string, bool) {
	if len(m.appenddomain_tags) == 0 {
		return nil, false
	}
	return m.appenddomain_tags, true
}

// ClearDomainTags clears the value of the "domain_tags" field.
func (m *JobMutation) ClearDomainTags() {
	m.domain_tags = nil
	m.appenddomain_tags = nil
	m.clearedFields[job.FieldDomainTags] = struct{}{}
}

// DomainTagsCleared returns if the "domain_tags" field was cleared in this mutation.
func (m *JobMutation) DomainTagsCleared() bool {
	_, ok := m.clearedFields[job.FieldDomainTags]
	return ok
}

// ResetDomainTags resets all changes to the "domain_tags" field.
func (m *JobMutation) ResetDomainTags() {
	m.domain_tags = nil
	m.appenddomain_tags = nil
	delete(m.clearedFields, job.FieldDomainTags)
}

// SetNeedsTerminologist sets the "needs_terminologist" field.
func (m *JobMutation) SetNeedsTerminologist(b bool) {
	m.needs_terminologist = &b
}

// NeedsTerminologist returns the value of the "needs_terminologist" field in the mutation.
func (m *JobMutation) NeedsTerminologist() (r bool, exists bool) {
	v := m.needs_terminologist
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsTerminologist returns the old "needs_terminologist" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNeedsTerminologist(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsTerminologist is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsTerminologist requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsTerminologist: %w", err)
	}
	return oldValue.NeedsTerminologist, nil
}

// ClearNeedsTerminologist clears the value of the "needs_terminologist" field.
func (m *JobMutation) ClearNeedsTerminologist() {
	m.needs_terminologist = nil
	m.clearedFields[job.FieldNeedsTerminologist] = struct{}{}
}

// NeedsTerminologistCleared returns if the "needs_terminologist" field was cleared in this mutation.
func (m *JobMutation) NeedsTerminologistCleared() bool {
	_, ok := m.clearedFields[job.FieldNeedsTerminologist]
	return ok
}

// ResetNeedsTerminologist resets all changes to the "needs_terminologist" field.
func (m *JobMutation) ResetNeedsTerminologist() {
	m.needs_terminologist = nil
	delete(m.clearedFields, job.FieldNeedsTerminologist)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *JobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *JobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *JobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[job.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *JobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[job.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *JobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, job.FieldClaimedBy)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *JobMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *JobMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *JobMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[job.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *JobMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, job.FieldHeartbeatAt)
}

// AddCueIDs adds the "cues" edge to the JobCue entity by ids.
func (m *JobMutation) AddCueIDs(ids ...string) {
	if m.cues == nil {
		m.cues = make(map[string]struct{})
	}
	for i := range ids {
		m.cues[ids[i]] = struct{}{}
	}
}

// ClearCues clears the "cues" edge to the JobCue entity.
func (m *JobMutation) ClearCues() {
	m.clearedcues = true
}

// CuesCleared reports if the "cues" edge to the JobCue entity was cleared.
func (m *JobMutation) CuesCleared() bool {
	return m.clearedcues
}

// RemoveCueIDs removes the "cues" edge to the JobCue entity by IDs.
func (m *JobMutation) RemoveCueIDs(ids ...string) {
	if m.removedcues == nil {
		m.removedcues = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cues, ids[i])
		m.removedcues[ids[i]] = struct{}{}
	}
}

// RemovedCues returns the removed IDs of the "cues" edge to the JobCue entity.
func (m *JobMutation) RemovedCuesIDs() (ids []string) {
	for id := range m.removedcues {
		ids = append(ids, id)
	}
	return
}

// CuesIDs returns the "cues" edge IDs in the mutation.
func (m *JobMutation) CuesIDs() (ids []string) {
	for id := range m.cues {
		ids = append(ids, id)
	}
	return
}

// ResetCues resets all changes to the "cues" edge.
func (m *JobMutation) ResetCues() {
	m.cues = nil
	m.clearedcues = false
	m.removedcues = nil
}

// AddGlossaryTermIDs adds the "glossary_terms" edge to the JobGlossaryTerm entity by ids.
func (m *JobMutation) AddGlossaryTermIDs(ids ...string) {
	if m.glossary_terms == nil {
		m.glossary_terms = make(map[string]struct{})
	}
	for i := range ids {
		m.glossary_terms[ids[i]] = struct{}{}
	}
}

// ClearGlossaryTerms clears the "glossary_terms" edge to the JobGlossaryTerm entity.
func (m *JobMutation) ClearGlossaryTerms() {
	m.clearedglossary_terms = true
}

// GlossaryTermsCleared reports if the "glossary_terms" edge to the JobGlossaryTerm entity was cleared.
func (m *JobMutation) GlossaryTermsCleared() bool {
	return m.clearedglossary_terms
}

// RemoveGlossaryTermIDs removes the "glossary_terms" edge to the JobGlossaryTerm entity by IDs.
func (m *JobMutation) RemoveGlossaryTermIDs(ids ...string) {
	if m.removedglossary_terms == nil {
		m.removedglossary_terms = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.glossary_terms, ids[i])
		m.removedglossary_terms[ids[i]] = struct{}{}
	}
}

// RemovedGlossaryTerms returns the removed IDs of the "glossary_terms" edge to the JobGlossaryTerm entity.
func (m *JobMutation) RemovedGlossaryTermsIDs() (ids []string) {
	for id := range m.removedglossary_terms {
		ids = append(ids, id)
	}
	return
}

// GlossaryTermsIDs returns the "glossary_terms" edge IDs in the mutation.
func (m *JobMutation) GlossaryTermsIDs() (ids []string) {
	for id := range m.glossary_terms {
		ids = append(ids, id)
	}
	return
}

// ResetGlossaryTerms resets all changes to the "glossary_terms" edge.
func (m *JobMutation) ResetGlossaryTerms() {
	m.glossary_terms = nil
	m.clearedglossary_terms = false
	m.removedglossary_terms = nil
}

// AddLlmRunIDs adds the "llm_runs" edge to the LLMRun entity by ids.
func (m *JobMutation) AddLlmRunIDs(ids ...string) {
	if m.llm_runs == nil {
		m.llm_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_runs[ids[i]] = struct{}{}
	}
}

// ClearLlmRuns clears the "llm_runs" edge to the LLMRun entity.
func (m *JobMutation) ClearLlmRuns() {
	m.clearedllm_runs = true
}

// LlmRunsCleared reports if the "llm_runs" edge to the LLMRun entity was cleared.
func (m *JobMutation) LlmRunsCleared() bool {
	return m.clearedllm_runs
}

// RemoveLlmRunIDs removes the "llm_runs" edge to the LLMRun entity by IDs.
func (m *JobMutation) RemoveLlmRunIDs(ids ...string) {
	if m.removedllm_runs == nil {
		m.removedllm_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_runs, ids[i])
		m.removedllm_runs[ids[i]] = struct{}{}
	}
}

// RemovedLlmRuns returns the removed IDs of the "llm_runs" edge to the LLMRun entity.
func (m *JobMutation) RemovedLlmRunsIDs() (ids []string) {
	for id := range m.removedllm_runs {
		ids = append(ids, id)
	}
	return
}

// LlmRunsIDs returns the "llm_runs" edge IDs in the mutation.
func (m *JobMutation) LlmRunsIDs() (ids []string) {
	for id := range m.llm_runs {
		ids = append(ids, id)
	}
	return
}

// ResetLlmRuns resets all changes to the "llm_runs" edge.
func (m *JobMutation) ResetLlmRuns() {
	m.llm_runs = nil
	m.clearedllm_runs = false
	m.removedllm_runs = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.source_lang != nil {
		fields = append(fields, job.FieldSourceLang)
	}
	if m.target_lang != nil {
		fields = append(fields, job.FieldTargetLang)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.queue_state != nil {
		fields = append(fields, job.FieldQueueState)
	}
	if m.input_type != nil {
		fields = append(fields, job.FieldInputType)
	}
	if m.input_uri != nil {
		fields = append(fields, job.FieldInputURI)
	}
	if m.normalized_uri != nil {
		fields = append(fields, job.FieldNormalizedURI)
	}
	if m.asr_json_uri != nil {
		fields = append(fields, job.FieldAsrJSONURI)
	}
	if m.final_srt_uri != nil {
		fields = append(fields, job.FieldFinalSrtURI)
	}
	if m.max_lines != nil {
		fields = append(fields, job.FieldMaxLines)
	}
	if m.max_chars_per_line != nil {
		fields = append(fields, job.FieldMaxCharsPerLine)
	}
	if m.target_cps != nil {
		fields = append(fields, job.FieldTargetCps)
	}
	if m.min_cue_ms != nil {
		fields = append(fields, job.FieldMinCueMs)
	}
	if m.max_cue_ms != nil {
		fields = append(fields, job.FieldMaxCueMs)
	}
	if m.risk_level != nil {
		fields = append(fields, job.FieldRiskLevel)
	}
	if m.difficulty_score != nil {
		fields = append(fields, job.FieldDifficultyScore)
	}
	if m.strategist_conf != nil {
		fields = append(fields, job.FieldStrategistConf)
	}
	if m.genre != nil {
		fields = append(fields, job.FieldGenre)
	}
	if m.tone != nil {
		fields = append(fields, job.FieldTone)
	}
	if m.domain_tags != nil {
		fields = append(fields, job.FieldDomainTags)
	}
	if m.needs_terminologist != nil {
		fields = append(fields, job.FieldNeedsTerminologist)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.claimed_by != nil {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldSourceLang:
		return m.SourceLang()
	case job.FieldTargetLang:
		return m.TargetLang()
	case job.FieldStatus:
		return m.Status()
	case job.FieldQueueState:
		return m.QueueState()
	case job.FieldInputType:
		return m.InputType()
	case job.FieldInputURI:
		return m.InputURI()
	case job.FieldNormalizedURI:
		return m.NormalizedURI()
	case job.FieldAsrJSONURI:
		return m.AsrJSONURI()
	case job.FieldFinalSrtURI:
		return m.FinalSrtURI()
	case job.FieldMaxLines:
		return m.MaxLines()
	case job.FieldMaxCharsPerLine:
		return m.MaxCharsPerLine()
	case job.FieldTargetCps:
		return m.TargetCps()
	case job.FieldMinCueMs:
		return m.MinCueMs()
	case job.FieldMaxCueMs:
		return m.MaxCueMs()
	case job.FieldRiskLevel:
		return m.RiskLevel()
	case job.FieldDifficultyScore:
		return m.DifficultyScore()
	case job.FieldStrategistConf:
		return m.StrategistConf()
	case job.FieldGenre:
		return m.Genre()
	case job.FieldTone:
		return m.Tone()
	case job.FieldDomainTags:
		return m.DomainTags()
	case job.FieldNeedsTerminologist:
		return m.NeedsTerminologist()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldClaimedBy:
		return m.ClaimedBy()
	case job.FieldHeartbeatAt:
		return m.HeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldSourceLang:
		return m.OldSourceLang(ctx)
	case job.FieldTargetLang:
		return m.OldTargetLang(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldQueueState:
		return m.OldQueueState(ctx)
	case job.FieldInputType:
		return m.OldInputType(ctx)
	case job.FieldInputURI:
		return m.OldInputURI(ctx)
	case job.FieldNormalizedURI:
		return m.OldNormalizedURI(ctx)
	case job.FieldAsrJSONURI:
		return m.OldAsrJSONURI(ctx)
	case job.FieldFinalSrtURI:
		return m.OldFinalSrtURI(ctx)
	case job.FieldMaxLines:
		return m.OldMaxLines(ctx)
	case job.FieldMaxCharsPerLine:
		return m.OldMaxCharsPerLine(ctx)
	case job.FieldTargetCps:
		return m.OldTargetCps(ctx)
	case job.FieldMinCueMs:
		return m.OldMinCueMs(ctx)
	case job.FieldMaxCueMs:
		return m.OldMaxCueMs(ctx)
	case job.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case job.FieldDifficultyScore:
		return m.OldDifficultyScore(ctx)
	case job.FieldStrategistConf:
		return m.OldStrategistConf(ctx)
	case job.FieldGenre:
		return m.OldGenre(ctx)
	case job.FieldTone:
		return m.OldTone(ctx)
	case job.FieldDomainTags:
		return m.OldDomainTags(ctx)
	case job.FieldNeedsTerminologist:
		return m.OldNeedsTerminologist(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case job.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldSourceLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceLang(v)
		return nil
	case job.FieldTargetLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLang(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldQueueState:
		v, ok := value.(job.QueueState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueState(v)
		return nil
	case job.FieldInputType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputType(v)
		return nil
	case job.FieldInputURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputURI(v)
		return nil
	case job.FieldNormalizedURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedURI(v)
		return nil
	case job.FieldAsrJSONURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAsrJSONURI(v)
		return nil
	case job.FieldFinalSrtURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalSrtURI(v)
		return nil
	case job.FieldMaxLines:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxLines(v)
		return nil
	case job.FieldMaxCharsPerLine:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxCharsPerLine(v)
		return nil
	case job.FieldTargetCps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetCps(v)
		return nil
	case job.FieldMinCueMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinCueMs(v)
		return nil
	case job.FieldMaxCueMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxCueMs(v)
		return nil
	case job.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case job.FieldDifficultyScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyScore(v)
		return nil
	case job.FieldStrategistConf:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategistConf(v)
		return nil
	case job.FieldGenre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenre(v)
		return nil
	case job.FieldTone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTone(v)
		return nil
	case job.FieldDomainTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainTags(v)
		return nil
	case job.FieldNeedsTerminologist:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsTerminologist(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case job.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addmax_lines != nil {
		fields = append(fields, job.FieldMaxLines)
	}
	if m.addmax_chars_per_line != nil {
		fields = append(fields, job.FieldMaxCharsPerLine)
	}
	if m.addtarget_cps != nil {
		fields = append(fields, job.FieldTargetCps)
	}
	if m.addmin_cue_ms != nil {
		fields = append(fields, job.FieldMinCueMs)
	}
	if m.addmax_cue_ms != nil {
		fields = append(fields, job.FieldMaxCueMs)
	}
	if m.adddifficulty_score != nil {
		fields = append(fields, job.FieldDifficultyScore)
	}
	if m.addstrategist_conf != nil {
		fields = append(fields, job.FieldStrategistConf)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldMaxLines:
		return m.AddedMaxLines()
	case job.FieldMaxCharsPerLine:
		return m.AddedMaxCharsPerLine()
	case job.FieldTargetCps:
		return m.AddedTargetCps()
	case job.FieldMinCueMs:
		return m.AddedMinCueMs()
	case job.FieldMaxCueMs:
		return m.AddedMaxCueMs()
	case job.FieldDifficultyScore:
		return m.AddedDifficultyScore()
	case job.FieldStrategistConf:
		return m.AddedStrategistConf()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldMaxLines:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxLines(v)
		return nil
	case job.FieldMaxCharsPerLine:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxCharsPerLine(v)
		return nil
	case job.FieldTargetCps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetCps(v)
		return nil
	case job.FieldMinCueMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinCueMs(v)
		return nil
	case job.FieldMaxCueMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxCueMs(v)
		return nil
	case job.FieldDifficultyScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyScore(v)
		return nil
	case job.FieldStrategistConf:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStrategistConf(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldNormalizedURI) {
		fields = append(fields, job.FieldNormalizedURI)
	}
	if m.FieldCleared(job.FieldAsrJSONURI) {
		fields = append(fields, job.FieldAsrJSONURI)
	}
	if m.FieldCleared(job.FieldFinalSrtURI) {
		fields = append(fields, job.FieldFinalSrtURI)
	}
	if m.FieldCleared(job.FieldRiskLevel) {
		fields = append(fields, job.FieldRiskLevel)
	}
	if m.FieldCleared(job.FieldDifficultyScore) {
		fields = append(fields, job.FieldDifficultyScore)
	}
	if m.FieldCleared(job.FieldStrategistConf) {
		fields = append(fields, job.FieldStrategistConf)
	}
	if m.FieldCleared(job.FieldGenre) {
		fields = append(fields, job.FieldGenre)
	}
	if m.FieldCleared(job.FieldTone) {
		fields = append(fields, job.FieldTone)
	}
	if m.FieldCleared(job.FieldDomainTags) {
		fields = append(fields, job.FieldDomainTags)
	}
	if m.FieldCleared(job.FieldNeedsTerminologist) {
		fields = append(fields, job.FieldNeedsTerminologist)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldClaimedBy) {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.FieldCleared(job.FieldHeartbeatAt) {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldNormalizedURI:
		m.ClearNormalizedURI()
		return nil
	case job.FieldAsrJSONURI:
		m.ClearAsrJSONURI()
		return nil
	case job.FieldFinalSrtURI:
		m.ClearFinalSrtURI()
		return nil
	case job.FieldRiskLevel:
		m.ClearRiskLevel()
		return nil
	case job.FieldDifficultyScore:
		m.ClearDifficultyScore()
		return nil
	case job.FieldStrategistConf:
		m.ClearStrategistConf()
		return nil
	case job.FieldGenre:
		m.ClearGenre()
		return nil
	case job.FieldTone:
		m.ClearTone()
		return nil
	case job.FieldDomainTags:
		m.ClearDomainTags()
		return nil
	case job.FieldNeedsTerminologist:
		m.ClearNeedsTerminologist()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case job.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldSourceLang:
		m.ResetSourceLang()
		return nil
	case job.FieldTargetLang:
		m.ResetTargetLang()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldQueueState:
		m.ResetQueueState()
		return nil
	case job.FieldInputType:
		m.ResetInputType()
		return nil
	case job.FieldInputURI:
		m.ResetInputURI()
		return nil
	case job.FieldNormalizedURI:
		m.ResetNormalizedURI()
		return nil
	case job.FieldAsrJSONURI:
		m.ResetAsrJSONURI()
		return nil
	case job.FieldFinalSrtURI:
		m.ResetFinalSrtURI()
		return nil
	case job.FieldMaxLines:
		m.ResetMaxLines()
		return nil
	case job.FieldMaxCharsPerLine:
		m.ResetMaxCharsPerLine()
		return nil
	case job.FieldTargetCps:
		m.ResetTargetCps()
		return nil
	case job.FieldMinCueMs:
		m.ResetMinCueMs()
		return nil
	case job.FieldMaxCueMs:
		m.ResetMaxCueMs()
		return nil
	case job.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case job.FieldDifficultyScore:
		m.ResetDifficultyScore()
		return nil
	case job.FieldStrategistConf:
		m.ResetStrategistConf()
		return nil
	case job.FieldGenre:
		m.ResetGenre()
		return nil
	case job.FieldTone:
		m.ResetTone()
		return nil
	case job.FieldDomainTags:
		m.ResetDomainTags()
		return nil
	case job.FieldNeedsTerminologist:
		m.ResetNeedsTerminologist()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case job.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cues != nil {
		edges = append(edges, job.EdgeCues)
	}
	if m.glossary_terms != nil {
		edges = append(edges, job.EdgeGlossaryTerms)
	}
	if m.llm_runs != nil {
		edges = append(edges, job.EdgeLlmRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeCues:
		ids := make([]ent.Value, 0, len(m.cues))
		for id := range m.cues {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeGlossaryTerms:
		ids := make([]ent.Value, 0, len(m.glossary_terms))
		for id := range m.glossary_terms {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeLlmRuns:
		ids := make([]ent.Value, 0, len(m.llm_runs))
		for id := range m.llm_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcues != nil {
		edges = append(edges, job.EdgeCues)
	}
	if m.removedglossary_terms != nil {
		edges = append(edges, job.EdgeGlossaryTerms)
	}
	if m.removedllm_runs != nil {
		edges = append(edges, job.EdgeLlmRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeCues:
		ids := make([]ent.Value, 0, len(m.removedcues))
		for id := range m.removedcues {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeGlossaryTerms:
		ids := make([]ent.Value, 0, len(m.removedglossary_terms))
		for id := range m.removedglossary_terms {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeLlmRuns:
		ids := make([]ent.Value, 0, len(m.removedllm_runs))
		for id := range m.removedllm_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcues {
		edges = append(edges, job.EdgeCues)
	}
	if m.clearedglossary_terms {
		edges = append(edges, job.EdgeGlossaryTerms)
	}
	if m.clearedllm_runs {
		edges = append(edges, job.EdgeLlmRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeCues:
		return m.clearedcues
	case job.EdgeGlossaryTerms:
		return m.clearedglossary_terms
	case job.EdgeLlmRuns:
		return m.clearedllm_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeCues:
		m.ResetCues()
		return nil
	case job.EdgeGlossaryTerms:
		m.ResetGlossaryTerms()
		return nil
	case job.EdgeLlmRuns:
		m.ResetLlmRuns()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobCueMutation represents an operation that mutates the JobCue nodes in the graph.
type JobCueMutation struct {
	config
	op                Op
	typ               string
	id                *string
	cue_index         *int
	addcue_index      *int
	start_ms          *int
	addstart_ms       *int
	end_ms            *int
	addend_ms         *int
	en_text           *string
	fa_text           *string
	fa_text_qa        *string
	tm_reused         *bool
	tm_entry_id       *string
	needs_translation *bool
	tm_confidence     *float64
	addtm_confidence  *float64
	qa_score          *float64
	addqa_score       *float64
	issues            *[]string
	appendissues      []string
	clearedFields     map[string]struct{}
	job               *string
	clearedjob        bool
	llm_runs          map[string]struct{}
	removedllm_runs   map[string]struct{}
	clearedllm_runs   bool
	done              bool
	oldValue          func(context.Context) (*JobCue, error)
	predicates        []predicate.JobCue
}

var _ ent.Mutation = (*JobCueMutation)(nil)

// jobcueOption allows management of the mutation configuration using functional options.
type jobcueOption func(*JobCueMutation)

// newJobCueMutation creates new mutation for the JobCue entity.
func newJobCueMutation(c config, op Op, opts ...jobcueOption) *JobCueMutation {
	m := &JobCueMutation{
		config:        c,
		op:            op,
		typ:           TypeJobCue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobCueID sets the ID field of the mutation.
func withJobCueID(id string) jobcueOption {
	return func(m *JobCueMutation) {
		var (
			err   error
			once  sync.Once
			value *JobCue
		)
		m.oldValue = func(ctx context.Context) (*JobCue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobCue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobCue sets the old JobCue of the mutation.
func withJobCue(node *JobCue) jobcueOption {
	return func(m *JobCueMutation) {
		m.oldValue = func(context.Context) (*JobCue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobCueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobCueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobCue entities.
func (m *JobCueMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobCueMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobCueMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobCue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobCueMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobCueMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobCueMutation) ResetJobID() {
	m.job = nil
}

// SetCueIndex sets the "cue_index" field.
func (m *JobCueMutation) SetCueIndex(i int) {
	m.cue_index = &i
	m.addcue_index = nil
}

// CueIndex returns the value of the "cue_index" field in the mutation.
func (m *JobCueMutation) CueIndex() (r int, exists bool) {
	v := m.cue_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCueIndex returns the old "cue_index" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldCueIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCueIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCueIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCueIndex: %w", err)
	}
	return oldValue.CueIndex, nil
}

// AddCueIndex adds i to the "cue_index" field.
func (m *JobCueMutation) AddCueIndex(i int) {
	if m.addcue_index != nil {
		*m.addcue_index += i
	} else {
		m.addcue_index = &i
	}
}

// AddedCueIndex returns the value that was added to the "cue_index" field in this mutation.
func (m *JobCueMutation) AddedCueIndex() (r int, exists bool) {
	v := m.addcue_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCueIndex resets all changes to the "cue_index" field.
func (m *JobCueMutation) ResetCueIndex() {
	m.cue_index = nil
	m.addcue_index = nil
}

// SetStartMs sets the "start_ms" field.
func (m *JobCueMutation) SetStartMs(i int) {
	m.start_ms = &i
	m.addstart_ms = nil
}

// StartMs returns the value of the "start_ms" field in the mutation.
func (m *JobCueMutation) StartMs() (r int, exists bool) {
	v := m.start_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldStartMs returns the old "start_ms" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldStartMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartMs: %w", err)
	}
	return oldValue.StartMs, nil
}

// AddStartMs adds i to the "start_ms" field.
func (m *JobCueMutation) AddStartMs(i int) {
	if m.addstart_ms != nil {
		*m.addstart_ms += i
	} else {
		m.addstart_ms = &i
	}
}

// AddedStartMs returns the value that was added to the "start_ms" field in this mutation.
func (m *JobCueMutation) AddedStartMs() (r int, exists bool) {
	v := m.addstart_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartMs resets all changes to the "start_ms" field.
func (m *JobCueMutation) ResetStartMs() {
	m.start_ms = nil
	m.addstart_ms = nil
}

// SetEndMs sets the "end_ms" field.
func (m *JobCueMutation) SetEndMs(i int) {
	m.end_ms = &i
	m.addend_ms = nil
}

// EndMs returns the value of the "end_ms" field in the mutation.
func (m *JobCueMutation) EndMs() (r int, exists bool) {
	v := m.end_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldEndMs returns the old "end_ms" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldEndMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndMs: %w", err)
	}
	return oldValue.EndMs, nil
}

// AddEndMs adds i to the "end_ms" field.
func (m *JobCueMutation) AddEndMs(i int) {
	if m.addend_ms != nil {
		*m.addend_ms += i
	} else {
		m.addend_ms = &i
	}
}

// AddedEndMs returns the value that was added to the "end_ms" field in this mutation.
func (m *JobCueMutation) AddedEndMs() (r int, exists bool) {
	v := m.addend_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndMs resets all changes to the "end_ms" field.
func (m *JobCueMutation) ResetEndMs() {
	m.end_ms = nil
	m.addend_ms = nil
}

// SetEnText sets the "en_text" field.
func (m *JobCueMutation) SetEnText(s string) {
	m.en_text = &s
}

// EnText returns the value of the "en_text" field in the mutation.
func (m *JobCueMutation) EnText() (r string, exists bool) {
	v := m.en_text
	if v == nil {
		return
	}
	return *v, true
}

// OldEnText returns the old "en_text" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldEnText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnText: %w", err)
	}
	return oldValue.EnText, nil
}

// ResetEnText resets all changes to the "en_text" field.
func (m *JobCueMutation) ResetEnText() {
	m.en_text = nil
}

// SetFaText sets the "fa_text" field.
func (m *JobCueMutation) SetFaText(s string) {
	m.fa_text = &s
}

// FaText returns the value of the "fa_text" field in the mutation.
func (m *JobCueMutation) FaText() (r string, exists bool) {
	v := m.fa_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFaText returns the old "fa_text" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldFaText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFaText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFaText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFaText: %w", err)
	}
	return oldValue.FaText, nil
}

// ClearFaText clears the value of the "fa_text" field.
func (m *JobCueMutation) ClearFaText() {
	m.fa_text = nil
	m.clearedFields[jobcue.FieldFaText] = struct{}{}
}

// FaTextCleared returns if the "fa_text" field was cleared in this mutation.
func (m *JobCueMutation) FaTextCleared() bool {
	_, ok := m.clearedFields[jobcue.FieldFaText]
	return ok
}

// ResetFaText resets all changes to the "fa_text" field.
func (m *JobCueMutation) ResetFaText() {
	m.fa_text = nil
	delete(m.clearedFields, jobcue.FieldFaText)
}

// SetFaTextQa sets the "fa_text_qa" field.
func (m *JobCueMutation) SetFaTextQa(s string) {
	m.fa_text_qa = &s
}

// FaTextQa returns the value of the "fa_text_qa" field in the mutation.
func (m *JobCueMutation) FaTextQa() (r string, exists bool) {
	v := m.fa_text_qa
	if v == nil {
		return
	}
	return *v, true
}

// OldFaTextQa returns the old "fa_text_qa" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldFaTextQa(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFaTextQa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFaTextQa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFaTextQa: %w", err)
	}
	return oldValue.FaTextQa, nil
}

// ClearFaTextQa clears the value of the "fa_text_qa" field.
func (m *JobCueMutation) ClearFaTextQa() {
	m.fa_text_qa = nil
	m.clearedFields[jobcue.FieldFaTextQa] = struct{}{}
}

// FaTextQaCleared returns if the "fa_text_qa" field was cleared in this mutation.
func (m *JobCueMutation) FaTextQaCleared() bool {
	_, ok := m.clearedFields[jobcue.FieldFaTextQa]
	return ok
}

// ResetFaTextQa resets all changes to the "fa_text_qa" field.
func (m *JobCueMutation) ResetFaTextQa() {
	m.fa_text_qa = nil
	delete(m.clearedFields, jobcue.FieldFaTextQa)
}

// SetTmReused sets the "tm_reused" field.
func (m *JobCueMutation) SetTmReused(b bool) {
	m.tm_reused = &b
}

// TmReused returns the value of the "tm_reused" field in the mutation.
func (m *JobCueMutation) TmReused() (r bool, exists bool) {
	v := m.tm_reused
	if v == nil {
		return
	}
	return *v, true
}

// OldTmReused returns the old "tm_reused" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldTmReused(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTmReused is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTmReused requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTmReused: %w", err)
	}
	return oldValue.TmReused, nil
}

// ResetTmReused resets all changes to the "tm_reused" field.
func (m *JobCueMutation) ResetTmReused() {
	m.tm_reused = nil
}

// SetTmEntryID sets the "tm_entry_id" field.
func (m *JobCueMutation) SetTmEntryID(s string) {
	m.tm_entry_id = &s
}

// TmEntryID returns the value of the "tm_entry_id" field in the mutation.
func (m *JobCueMutation) TmEntryID() (r string, exists bool) {
	v := m.tm_entry_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTmEntryID returns the old "tm_entry_id" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldTmEntryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTmEntryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTmEntryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTmEntryID: %w", err)
	}
	return oldValue.TmEntryID, nil
}

// ClearTmEntryID clears the value of the "tm_entry_id" field.
func (m *JobCueMutation) ClearTmEntryID() {
	m.tm_entry_id = nil
	m.clearedFields[jobcue.FieldTmEntryID] = struct{}{}
}

// TmEntryIDCleared returns if the "tm_entry_id" field was cleared in this mutation.
func (m *JobCueMutation) TmEntryIDCleared() bool {
	_, ok := m.clearedFields[jobcue.FieldTmEntryID]
	return ok
}

// ResetTmEntryID resets all changes to the "tm_entry_id" field.
func (m *JobCueMutation) ResetTmEntryID() {
	m.tm_entry_id = nil
	delete(m.clearedFields, jobcue.FieldTmEntryID)
}

// SetNeedsTranslation sets the "needs_translation" field.
func (m *JobCueMutation) SetNeedsTranslation(b bool) {
	m.needs_translation = &b
}

// NeedsTranslation returns the value of the "needs_translation" field in the mutation.
func (m *JobCueMutation) NeedsTranslation() (r bool, exists bool) {
	v := m.needs_translation
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsTranslation returns the old "needs_translation" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldNeedsTranslation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsTranslation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsTranslation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsTranslation: %w", err)
	}
	return oldValue.NeedsTranslation, nil
}

// ResetNeedsTranslation resets all changes to the "needs_translation" field.
func (m *JobCueMutation) ResetNeedsTranslation() {
	m.needs_translation = nil
}

// SetTmConfidence sets the "tm_confidence" field.
func (m *JobCueMutation) SetTmConfidence(f float64) {
	m.tm_confidence = &f
	m.addtm_confidence = nil
}

// TmConfidence returns the value of the "tm_confidence" field in the mutation.
func (m *JobCueMutation) TmConfidence() (r float64, exists bool) {
	v := m.tm_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldTmConfidence returns the old "tm_confidence" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldTmConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTmConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTmConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTmConfidence: %w", err)
	}
	return oldValue.TmConfidence, nil
}

// AddTmConfidence adds f to the "tm_confidence" field.
func (m *JobCueMutation) AddTmConfidence(f float64) {
	if m.addtm_confidence != nil {
		*m.addtm_confidence += f
	} else {
		m.addtm_confidence = &f
	}
}

// AddedTmConfidence returns the value that was added to the "tm_confidence" field in this mutation.
func (m *JobCueMutation) AddedTmConfidence() (r float64, exists bool) {
	v := m.addtm_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearTmConfidence clears the value of the "tm_confidence" field.
func (m *JobCueMutation) ClearTmConfidence() {
	m.tm_confidence = nil
	m.addtm_confidence = nil
	m.clearedFields[jobcue.FieldTmConfidence] = struct{}{}
}

// TmConfidenceCleared returns if the "tm_confidence" field was cleared in this mutation.
func (m *JobCueMutation) TmConfidenceCleared() bool {
	_, ok := m.clearedFields[jobcue.FieldTmConfidence]
	return ok
}

// ResetTmConfidence resets all changes to the "tm_confidence" field.
func (m *JobCueMutation) ResetTmConfidence() {
	m.tm_confidence = nil
	m.addtm_confidence = nil
	delete(m.clearedFields, jobcue.FieldTmConfidence)
}

// SetQaScore sets the "qa_score" field.
func (m *JobCueMutation) SetQaScore(f float64) {
	m.qa_score = &f
	m.addqa_score = nil
}

// QaScore returns the value of the "qa_score" field in the mutation.
func (m *JobCueMutation) QaScore() (r float64, exists bool) {
	v := m.qa_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQaScore returns the old "qa_score" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldQaScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQaScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQaScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQaScore: %w", err)
	}
	return oldValue.QaScore, nil
}

// AddQaScore adds f to the "qa_score" field.
func (m *JobCueMutation) AddQaScore(f float64) {
	if m.addqa_score != nil {
		*m.addqa_score += f
	} else {
		m.addqa_score = &f
	}
}

// AddedQaScore returns the value that was added to the "qa_score" field in this mutation.
func (m *JobCueMutation) AddedQaScore() (r float64, exists bool) {
	v := m.addqa_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQaScore clears the value of the "qa_score" field.
func (m *JobCueMutation) ClearQaScore() {
	m.qa_score = nil
	m.addqa_score = nil
	m.clearedFields[jobcue.FieldQaScore] = struct{}{}
}

// QaScoreCleared returns if the "qa_score" field was cleared in this mutation.
func (m *JobCueMutation) QaScoreCleared() bool {
	_, ok := m.clearedFields[jobcue.FieldQaScore]
	return ok
}

// ResetQaScore resets all changes to the "qa_score" field.
func (m *JobCueMutation) ResetQaScore() {
	m.qa_score = nil
	m.addqa_score = nil
	delete(m.clearedFields, jobcue.FieldQaScore)
}

// SetIssues sets the "issues" field.
func (m *JobCueMutation) SetIssues(s []string) {
	m.issues = &s
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *JobCueMutation) Issues() (r []string, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the JobCue entity.
// If the JobCue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobCueMutation) OldIssues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds s to the "issues" field.
func (m *JobCueMutation) AppendIssues(s []string) {
	m.appendissues = append(m.appendissues, s...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *JobCueMutation) AppendedIssues() ([]string, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *JobCueMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[jobcue.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *JobCueMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[jobcue.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *JobCueMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, jobcue.FieldIssues)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobCueMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobcue.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobCueMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobCueMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobCueMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddLlmRunIDs adds the "llm_runs" edge to the LLMRun entity by ids.
func (m *JobCueMutation) AddLlmRunIDs(ids ...string) {
	if m.llm_runs == nil {
		m.llm_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_runs[ids[i]] = struct{}{}
	}
}

// ClearLlmRuns clears the "llm_runs" edge to the LLMRun entity.
func (m *JobCueMutation) ClearLlmRuns() {
	m.clearedllm_runs = true
}

// LlmRunsCleared reports if the "llm_runs" edge to the LLMRun entity was cleared.
func (m *JobCueMutation) LlmRunsCleared() bool {
	return m.clearedllm_runs
}

// RemoveLlmRunIDs removes the "llm_runs" edge to the LLMRun entity by IDs.
func (m *JobCueMutation) RemoveLlmRunIDs(ids ...string) {
	if m.removedllm_runs == nil {
		m.removedllm_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_runs, ids[i])
		m.removedllm_runs[ids[i]] = struct{}{}
	}
}

// RemovedLlmRuns returns the removed IDs of the "llm_runs" edge to the LLMRun entity.
func (m *JobCueMutation) RemovedLlmRunsIDs() (ids []string) {
	for id := range m.removedllm_runs {
		ids = append(ids, id)
	}
	return
}

// LlmRunsIDs returns the "llm_runs" edge IDs in the mutation.
func (m *JobCueMutation) LlmRunsIDs() (ids []string) {
	for id := range m.llm_runs {
		ids = append(ids, id)
	}
	return
}

// ResetLlmRuns resets all changes to the "llm_runs" edge.
func (m *JobCueMutation) ResetLlmRuns() {
	m.llm_runs = nil
	m.clearedllm_runs = false
	m.removedllm_runs = nil
}

// Where appends a list predicates to the JobCueMutation builder.
func (m *JobCueMutation) Where(ps ...predicate.JobCue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobCueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobCueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobCue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobCueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobCueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobCue).
func (m *JobCueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobCueMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job != nil {
		fields = append(fields, jobcue.FieldJobID)
	}
	if m.cue_index != nil {
		fields = append(fields, jobcue.FieldCueIndex)
	}
	if m.start_ms != nil {
		fields = append(fields, jobcue.FieldStartMs)
	}
	if m.end_ms != nil {
		fields = append(fields, jobcue.FieldEndMs)
	}
	if m.en_text != nil {
		fields = append(fields, jobcue.FieldEnText)
	}
	if m.fa_text != nil {
		fields = append(fields, jobcue.FieldFaText)
	}
	if m.fa_text_qa != nil {
		fields = append(fields, jobcue.FieldFaTextQa)
	}
	if m.tm_reused != nil {
		fields = append(fields, jobcue.FieldTmReused)
	}
	if m.tm_entry_id != nil {
		fields = append(fields, jobcue.FieldTmEntryID)
	}
	if m.needs_translation != nil {
		fields = append(fields, jobcue.FieldNeedsTranslation)
	}
	if m.tm_confidence != nil {
		fields = append(fields, jobcue.FieldTmConfidence)
	}
	if m.qa_score != nil {
		fields = append(fields, jobcue.FieldQaScore)
	}
	if m.issues != nil {
		fields = append(fields, jobcue.FieldIssues)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobCueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobcue.FieldJobID:
		return m.JobID()
	case jobcue.FieldCueIndex:
		return m.CueIndex()
	case jobcue.FieldStartMs:
		return m.StartMs()
	case jobcue.FieldEndMs:
		return m.EndMs()
	case jobcue.FieldEnText:
		return m.EnText()
	case jobcue.FieldFaText:
		return m.FaText()
	case jobcue.FieldFaTextQa:
		return m.FaTextQa()
	case jobcue.FieldTmReused:
		return m.TmReused()
	case jobcue.FieldTmEntryID:
		return m.TmEntryID()
	case jobcue.FieldNeedsTranslation:
		return m.NeedsTranslation()
	case jobcue.FieldTmConfidence:
		return m.TmConfidence()
	case jobcue.FieldQaScore:
		return m.QaScore()
	case jobcue.FieldIssues:
		return m.Issues()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobCueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobcue.FieldJobID:
		return m.OldJobID(ctx)
	case jobcue.FieldCueIndex:
		return m.OldCueIndex(ctx)
	case jobcue.FieldStartMs:
		return m.OldStartMs(ctx)
	case jobcue.FieldEndMs:
		return m.OldEndMs(ctx)
	case jobcue.FieldEnText:
		return m.OldEnText(ctx)
	case jobcue.FieldFaText:
		return m.OldFaText(ctx)
	case jobcue.FieldFaTextQa:
		return m.OldFaTextQa(ctx)
	case jobcue.FieldTmReused:
		return m.OldTmReused(ctx)
	case jobcue.FieldTmEntryID:
		return m.OldTmEntryID(ctx)
	case jobcue.FieldNeedsTranslation:
		return m.OldNeedsTranslation(ctx)
	case jobcue.FieldTmConfidence:
		return m.OldTmConfidence(ctx)
	case jobcue.FieldQaScore:
		return m.OldQaScore(ctx)
	case jobcue.FieldIssues:
		return m.OldIssues(ctx)
	}
	return nil, fmt.Errorf("unknown JobCue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobCueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobcue.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobcue.FieldCueIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCueIndex(v)
		return nil
	case jobcue.FieldStartMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartMs(v)
		return nil
	case jobcue.FieldEndMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndMs(v)
		return nil
	case jobcue.FieldEnText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnText(v)
		return nil
	case jobcue.FieldFaText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFaText(v)
		return nil
	case jobcue.FieldFaTextQa:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFaTextQa(v)
		return nil
	case jobcue.FieldTmReused:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTmReused(v)
		return nil
	case jobcue.FieldTmEntryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTmEntryID(v)
		return nil
	case jobcue.FieldNeedsTranslation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsTranslation(v)
		return nil
	case jobcue.FieldTmConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTmConfidence(v)
		return nil
	case jobcue.FieldQaScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQaScore(v)
		return nil
	case jobcue.FieldIssues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	}
	return fmt.Errorf("unknown JobCue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobCueMutation) AddedFields() []string {
	var fields []string
	if m.addcue_index != nil {
		fields = append(fields, jobcue.FieldCueIndex)
	}
	if m.addstart_ms != nil {
		fields = append(fields, jobcue.FieldStartMs)
	}
	if m.addend_ms != nil {
		fields = append(fields, jobcue.FieldEndMs)
	}
	if m.addtm_confidence != nil {
		fields = append(fields, jobcue.FieldTmConfidence)
	}
	if m.addqa_score != nil {
		fields = append(fields, jobcue.FieldQaScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobCueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobcue.FieldCueIndex:
		return m.AddedCueIndex()
	case jobcue.FieldStartMs:
		return m.AddedStartMs()
	case jobcue.FieldEndMs:
		return m.AddedEndMs()
	case jobcue.FieldTmConfidence:
		return m.AddedTmConfidence()
	case jobcue.FieldQaScore:
		return m.AddedQaScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobCueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobcue.FieldCueIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCueIndex(v)
		return nil
	case jobcue.FieldStartMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartMs(v)
		return nil
	case jobcue.FieldEndMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndMs(v)
		return nil
	case jobcue.FieldTmConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTmConfidence(v)
		return nil
	case jobcue.FieldQaScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQaScore(v)
		return nil
	}
	return fmt.Errorf("unknown JobCue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobCueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobcue.FieldFaText) {
		fields = append(fields, jobcue.FieldFaText)
	}
	if m.FieldCleared(jobcue.FieldFaTextQa) {
		fields = append(fields, jobcue.FieldFaTextQa)
	}
	if m.FieldCleared(jobcue.FieldTmEntryID) {
		fields = append(fields, jobcue.FieldTmEntryID)
	}
	if m.FieldCleared(jobcue.FieldTmConfidence) {
		fields = append(fields, jobcue.FieldTmConfidence)
	}
	if m.FieldCleared(jobcue.FieldQaScore) {
		fields = append(fields, jobcue.FieldQaScore)
	}
	if m.FieldCleared(jobcue.FieldIssues) {
		fields = append(fields, jobcue.FieldIssues)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobCueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobCueMutation) ClearField(name string) error {
	switch name {
	case jobcue.FieldFaText:
		m.ClearFaText()
		return nil
	case jobcue.FieldFaTextQa:
		m.ClearFaTextQa()
		return nil
	case jobcue.FieldTmEntryID:
		m.ClearTmEntryID()
		return nil
	case jobcue.FieldTmConfidence:
		m.ClearTmConfidence()
		return nil
	case jobcue.FieldQaScore:
		m.ClearQaScore()
		return nil
	case jobcue.FieldIssues:
		m.ClearIssues()
		return nil
	}
	return fmt.Errorf("unknown JobCue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobCueMutation) ResetField(name string) error {
	switch name {
	case jobcue.FieldJobID:
		m.ResetJobID()
		return nil
	case jobcue.FieldCueIndex:
		m.ResetCueIndex()
		return nil
	case jobcue.FieldStartMs:
		m.ResetStartMs()
		return nil
	case jobcue.FieldEndMs:
		m.ResetEndMs()
		return nil
	case jobcue.FieldEnText:
		m.ResetEnText()
		return nil
	case jobcue.FieldFaText:
		m.ResetFaText()
		return nil
	case jobcue.FieldFaTextQa:
		m.ResetFaTextQa()
		return nil
	case jobcue.FieldTmReused:
		m.ResetTmReused()
		return nil
	case jobcue.FieldTmEntryID:
		m.ResetTmEntryID()
		return nil
	case jobcue.FieldNeedsTranslation:
		m.ResetNeedsTranslation()
		return nil
	case jobcue.FieldTmConfidence:
		m.ResetTmConfidence()
		return nil
	case jobcue.FieldQaScore:
		m.ResetQaScore()
		return nil
	case jobcue.FieldIssues:
		m.ResetIssues()
		return nil
	}
	return fmt.Errorf("unknown JobCue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobCueMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, jobcue.EdgeJob)
	}
	if m.llm_runs != nil {
		edges = append(edges, jobcue.EdgeLlmRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobCueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobcue.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case jobcue.EdgeLlmRuns:
		ids := make([]ent.Value, 0, len(m.llm_runs))
		for id := range m.llm_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobCueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedllm_runs != nil {
		edges = append(edges, jobcue.EdgeLlmRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobCueMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case jobcue.EdgeLlmRuns:
		ids := make([]ent.Value, 0, len(m.removedllm_runs))
		for id := range m.removedllm_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobCueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, jobcue.EdgeJob)
	}
	if m.clearedllm_runs {
		edges = append(edges, jobcue.EdgeLlmRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobCueMutation) EdgeCleared(name string) bool {
	switch name {
	case jobcue.EdgeJob:
		return m.clearedjob
	case jobcue.EdgeLlmRuns:
		return m.clearedllm_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobCueMutation) ClearEdge(name string) error {
	switch name {
	case jobcue.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobCue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobCueMutation) ResetEdge(name string) error {
	switch name {
	case jobcue.EdgeJob:
		m.ResetJob()
		return nil
	case jobcue.EdgeLlmRuns:
		m.ResetLlmRuns()
		return nil
	}
	return fmt.Errorf("unknown JobCue edge %s", name)
}

// JobGlossaryTermMutation represents an operation that mutates the JobGlossaryTerm nodes in the graph.
type JobGlossaryTermMutation struct {
	config
	op            Op
	typ           string
	id            *string
	en_term       *string
	fa_term       *string
	term_type     *string
	mandatory     *bool
	confidence    *int
	addconfidence *int
	notes         *string
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*JobGlossaryTerm, error)
	predicates    []predicate.JobGlossaryTerm
}

var _ ent.Mutation = (*JobGlossaryTermMutation)(nil)

// jobglossarytermOption allows management of the mutation configuration using functional options.
type jobglossarytermOption func(*JobGlossaryTermMutation)

// newJobGlossaryTermMutation creates new mutation for the JobGlossaryTerm entity.
func newJobGlossaryTermMutation(c config, op Op, opts ...jobglossarytermOption) *JobGlossaryTermMutation {
	m := &JobGlossaryTermMutation{
		config:        c,
		op:            op,
		typ:           TypeJobGlossaryTerm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobGlossaryTermID sets the ID field of the mutation.
func withJobGlossaryTermID(id string) jobglossarytermOption {
	return func(m *JobGlossaryTermMutation) {
		var (
			err   error
			once  sync.Once
			value *JobGlossaryTerm
		)
		m.oldValue = func(ctx context.Context) (*JobGlossaryTerm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobGlossaryTerm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobGlossaryTerm sets the old JobGlossaryTerm of the mutation.
func withJobGlossaryTerm(node *JobGlossaryTerm) jobglossarytermOption {
	return func(m *JobGlossaryTermMutation) {
		m.oldValue = func(context.Context) (*JobGlossaryTerm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobGlossaryTermMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobGlossaryTermMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobGlossaryTerm entities.
func (m *JobGlossaryTermMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobGlossaryTermMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobGlossaryTermMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobGlossaryTerm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobGlossaryTermMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobGlossaryTermMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobGlossaryTerm entity.
// If the JobGlossaryTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGlossaryTermMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobGlossaryTermMutation) ResetJobID() {
	m.job = nil
}

// SetEnTerm sets the "en_term" field.
func (m *JobGlossaryTermMutation) SetEnTerm(s string) {
	m.en_term = &s
}

// EnTerm returns the value of the "en_term" field in the mutation.
func (m *JobGlossaryTermMutation) EnTerm() (r string, exists bool) {
	v := m.en_term
	if v == nil {
		return
	}
	return *v, true
}

// OldEnTerm returns the old "en_term" field's value of the JobGlossaryTerm entity.
// If the JobGlossaryTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGlossaryTermMutation) OldEnTerm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnTerm: %w", err)
	}
	return oldValue.EnTerm, nil
}

// ResetEnTerm resets all changes to the "en_term" field.
func (m *JobGlossaryTermMutation) ResetEnTerm() {
	m.en_term = nil
}

// SetFaTerm sets the "fa_term" field.
func (m *JobGlossaryTermMutation) SetFaTerm(s string) {
	m.fa_term = &s
}

// FaTerm returns the value of the "fa_term" field in the mutation.
func (m *JobGlossaryTermMutation) FaTerm() (r string, exists bool) {
	v := m.fa_term
	if v == nil {
		return
	}
	return *v, true
}

// OldFaTerm returns the old "fa_term" field's value of the JobGlossaryTerm entity.
// If the JobGlossaryTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGlossaryTermMutation) OldFaTerm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFaTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFaTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFaTerm: %w", err)
	}
	return oldValue.FaTerm, nil
}

// ResetFaTerm resets all changes to the "fa_term" field.
func (m *JobGlossaryTermMutation) ResetFaTerm() {
	m.fa_term = nil
}

// SetTermType sets the "term_type" field.
func (m *JobGlossaryTermMutation) SetTermType(s string) {
	m.term_type = &s
}

// TermType returns the value of the "term_type" field in the mutation.
func (m *JobGlossaryTermMutation) TermType() (r string, exists bool) {
	v := m.term_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTermType returns the old "term_type" field's value of the JobGlossaryTerm entity.
// If the JobGlossaryTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGlossaryTermMutation) OldTermType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTermType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTermType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTermType: %w", err)
	}
	return oldValue.TermType, nil
}

// ClearTermType clears the value of the "term_type" field.
func (m *JobGlossaryTermMutation) ClearTermType() {
	m.term_type = nil
	m.clearedFields[jobglossaryterm.FieldTermType] = struct{}{}
}

// TermTypeCleared returns if the "term_type" field was cleared in this mutation.
func (m *JobGlossaryTermMutation) TermTypeCleared() bool {
	_, ok := m.clearedFields[jobglossaryterm.FieldTermType]
	return ok
}

// ResetTermType resets all changes to the "term_type" field.
func (m *JobGlossaryTermMutation) ResetTermType() {
	m.term_type = nil
	delete(m.clearedFields, jobglossaryterm.FieldTermType)
}

// SetMandatory sets the "mandatory" field.
func (m *JobGlossaryTermMutation) SetMandatory(b bool) {
	m.mandatory = &b
}

// Mandatory returns the value of the "mandatory" field in the mutation.
func (m *JobGlossaryTermMutation) Mandatory() (r bool, exists bool) {
	v := m.mandatory
	if v == nil {
		return
	}
	return *v, true
}

// OldMandatory returns the old "mandatory" field's value of the JobGlossaryTerm entity.
// If the JobGlossaryTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGlossaryTermMutation) OldMandatory(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMandatory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMandatory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMandatory: %w", err)
	}
	return oldValue.Mandatory, nil
}

// ResetMandatory resets all changes to the "mandatory" field.
func (m *JobGlossaryTermMutation) ResetMandatory() {
	m.mandatory = nil
}

// SetConfidence sets the "confidence" field.
func (m *JobGlossaryTermMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *JobGlossaryTermMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the JobGlossaryTerm entity.
// If the JobGlossaryTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGlossaryTermMutation) OldConfidence(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *JobGlossaryTermMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *JobGlossaryTermMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *JobGlossaryTermMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[jobglossaryterm.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *JobGlossaryTermMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[jobglossaryterm.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *JobGlossaryTermMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, jobglossaryterm.FieldConfidence)
}

// SetNotes sets the "notes" field.
func (m *JobGlossaryTermMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *JobGlossaryTermMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the JobGlossaryTerm entity.
// If the JobGlossaryTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobGlossaryTermMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *JobGlossaryTermMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[jobglossaryterm.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *JobGlossaryTermMutation) NotesCleared() bool {
	_, ok := m.clearedFields[jobglossaryterm.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *JobGlossaryTermMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, jobglossaryterm.FieldNotes)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobGlossaryTermMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobglossaryterm.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobGlossaryTermMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobGlossaryTermMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobGlossaryTermMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobGlossaryTermMutation builder.
func (m *JobGlossaryTermMutation) Where(ps ...predicate.JobGlossaryTerm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobGlossaryTermMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobGlossaryTermMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobGlossaryTerm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobGlossaryTermMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobGlossaryTermMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobGlossaryTerm).
func (m *JobGlossaryTermMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobGlossaryTermMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.job != nil {
		fields = append(fields, jobglossaryterm.FieldJobID)
	}
	if m.en_term != nil {
		fields = append(fields, jobglossaryterm.FieldEnTerm)
	}
	if m.fa_term != nil {
		fields = append(fields, jobglossaryterm.FieldFaTerm)
	}
	if m.term_type != nil {
		fields = append(fields, jobglossaryterm.FieldTermType)
	}
	if m.mandatory != nil {
		fields = append(fields, jobglossaryterm.FieldMandatory)
	}
	if m.confidence != nil {
		fields = append(fields, jobglossaryterm.FieldConfidence)
	}
	if m.notes != nil {
		fields = append(fields, jobglossaryterm.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobGlossaryTermMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobglossaryterm.FieldJobID:
		return m.JobID()
	case jobglossaryterm.FieldEnTerm:
		return m.EnTerm()
	case jobglossaryterm.FieldFaTerm:
		return m.FaTerm()
	case jobglossaryterm.FieldTermType:
		return m.TermType()
	case jobglossaryterm.FieldMandatory:
		return m.Mandatory()
	case jobglossaryterm.FieldConfidence:
		return m.Confidence()
	case jobglossaryterm.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobGlossaryTermMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobglossaryterm.FieldJobID:
		return m.OldJobID(ctx)
	case jobglossaryterm.FieldEnTerm:
		return m.OldEnTerm(ctx)
	case jobglossaryterm.FieldFaTerm:
		return m.OldFaTerm(ctx)
	case jobglossaryterm.FieldTermType:
		return m.OldTermType(ctx)
	case jobglossaryterm.FieldMandatory:
		return m.OldMandatory(ctx)
	case jobglossaryterm.FieldConfidence:
		return m.OldConfidence(ctx)
	case jobglossaryterm.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown JobGlossaryTerm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobGlossaryTermMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobglossaryterm.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobglossaryterm.FieldEnTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnTerm(v)
		return nil
	case jobglossaryterm.FieldFaTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFaTerm(v)
		return nil
	case jobglossaryterm.FieldTermType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTermType(v)
		return nil
	case jobglossaryterm.FieldMandatory:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMandatory(v)
		return nil
	case jobglossaryterm.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case jobglossaryterm.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown JobGlossaryTerm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobGlossaryTermMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, jobglossaryterm.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobGlossaryTermMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobglossaryterm.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobGlossaryTermMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobglossaryterm.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown JobGlossaryTerm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobGlossaryTermMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobglossaryterm.FieldTermType) {
		fields = append(fields, jobglossaryterm.FieldTermType)
	}
	if m.FieldCleared(jobglossaryterm.FieldConfidence) {
		fields = append(fields, jobglossaryterm.FieldConfidence)
	}
	if m.FieldCleared(jobglossaryterm.FieldNotes) {
		fields = append(fields, jobglossaryterm.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobGlossaryTermMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobGlossaryTermMutation) ClearField(name string) error {
	switch name {
	case jobglossaryterm.FieldTermType:
		m.ClearTermType()
		return nil
	case jobglossaryterm.FieldConfidence:
		m.ClearConfidence()
		return nil
	case jobglossaryterm.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown JobGlossaryTerm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobGlossaryTermMutation) ResetField(name string) error {
	switch name {
	case jobglossaryterm.FieldJobID:
		m.ResetJobID()
		return nil
	case jobglossaryterm.FieldEnTerm:
		m.ResetEnTerm()
		return nil
	case jobglossaryterm.FieldFaTerm:
		m.ResetFaTerm()
		return nil
	case jobglossaryterm.FieldTermType:
		m.ResetTermType()
		return nil
	case jobglossaryterm.FieldMandatory:
		m.ResetMandatory()
		return nil
	case jobglossaryterm.FieldConfidence:
		m.ResetConfidence()
		return nil
	case jobglossaryterm.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown JobGlossaryTerm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobGlossaryTermMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobglossaryterm.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobGlossaryTermMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobglossaryterm.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobGlossaryTermMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobGlossaryTermMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobGlossaryTermMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobglossaryterm.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobGlossaryTermMutation) EdgeCleared(name string) bool {
	switch name {
	case jobglossaryterm.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobGlossaryTermMutation) ClearEdge(name string) error {
	switch name {
	case jobglossaryterm.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobGlossaryTerm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobGlossaryTermMutation) ResetEdge(name string) error {
	switch name {
	case jobglossaryterm.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobGlossaryTerm edge %s", name)
}

// LLMRunMutation represents an operation that mutates the LLMRun nodes in the graph.
type LLMRunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_name           *string
	model                *string
	provider             *string
	started_at           *time.Time
	finished_at          *time.Time
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	cost_usd             *float64
	addcost_usd          *float64
	status               *llmrun.Status
	error_message        *string
	input_sha            *string
	output_sha           *string
	meta                 *map[string]interface{}
	clearedFields        map[string]struct{}
	job                  *string
	clearedjob           bool
	cue                  *string
	clearedcue           bool
	done                 bool
	oldValue             func(context.Context) (*LLMRun, error)
	predicates           []predicate.LLMRun
}

var _ ent.Mutation = (*LLMRunMutation)(nil)

// llmrunOption allows management of the mutation configuration using functional options.
type llmrunOption func(*LLMRunMutation)

// newLLMRunMutation creates new mutation for the LLMRun entity.
func newLLMRunMutation(c config, op Op, opts ...llmrunOption) *LLMRunMutation {
	m := &LLMRunMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRunID sets the ID field of the mutation.
func withLLMRunID(id string) llmrunOption {
	return func(m *LLMRunMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRun
		)
		m.oldValue = func(ctx context.Context) (*LLMRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRun sets the old LLMRun of the mutation.
func withLLMRun(node *LLMRun) llmrunOption {
	return func(m *LLMRunMutation) {
		m.oldValue = func(context.Context) (*LLMRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMRun entities.
func (m *LLMRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *LLMRunMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *LLMRunMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *LLMRunMutation) ClearJobID() {
	m.job = nil
	m.clearedFields[llmrun.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *LLMRunMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *LLMRunMutation) ResetJobID() {
	m.job = nil
	delete(m.clearedFields, llmrun.FieldJobID)
}

// SetCueID sets the "cue_id" field.
func (m *LLMRunMutation) SetCueID(s string) {
	m.cue = &s
}

// CueID returns the value of the "cue_id" field in the mutation.
func (m *LLMRunMutation) CueID() (r string, exists bool) {
	v := m.cue
	if v == nil {
		return
	}
	return *v, true
}

// OldCueID returns the old "cue_id" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldCueID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCueID: %w", err)
	}
	return oldValue.CueID, nil
}

// ClearCueID clears the value of the "cue_id" field.
func (m *LLMRunMutation) ClearCueID() {
	m.cue = nil
	m.clearedFields[llmrun.FieldCueID] = struct{}{}
}

// CueIDCleared returns if the "cue_id" field was cleared in this mutation.
func (m *LLMRunMutation) CueIDCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldCueID]
	return ok
}

// ResetCueID resets all changes to the "cue_id" field.
func (m *LLMRunMutation) ResetCueID() {
	m.cue = nil
	delete(m.clearedFields, llmrun.FieldCueID)
}

// SetAgentName sets the "agent_name" field.
func (m *LLMRunMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *LLMRunMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *LLMRunMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetModel sets the "model" field.
func (m *LLMRunMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRunMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRunMutation) ResetModel() {
	m.model = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRunMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRunMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *LLMRunMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[llmrun.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *LLMRunMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRunMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, llmrun.FieldProvider)
}

// SetStartedAt sets the "started_at" field.
func (m *LLMRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *LLMRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *LLMRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *LLMRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *LLMRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *LLMRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[llmrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *LLMRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *LLMRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, llmrun.FieldFinishedAt)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *LLMRunMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *LLMRunMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldPromptTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *LLMRunMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *LLMRunMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (m *LLMRunMutation) ClearPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	m.clearedFields[llmrun.FieldPromptTokens] = struct{}{}
}

// PromptTokensCleared returns if the "prompt_tokens" field was cleared in this mutation.
func (m *LLMRunMutation) PromptTokensCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldPromptTokens]
	return ok
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *LLMRunMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	delete(m.clearedFields, llmrun.FieldPromptTokens)
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *LLMRunMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *LLMRunMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldCompletionTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *LLMRunMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *LLMRunMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (m *LLMRunMutation) ClearCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	m.clearedFields[llmrun.FieldCompletionTokens] = struct{}{}
}

// CompletionTokensCleared returns if the "completion_tokens" field was cleared in this mutation.
func (m *LLMRunMutation) CompletionTokensCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldCompletionTokens]
	return ok
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *LLMRunMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	delete(m.clearedFields, llmrun.FieldCompletionTokens)
}

// SetCostUsd sets the "cost_usd" field.
func (m *LLMRunMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *LLMRunMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldCostUsd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *LLMRunMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *LLMRunMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (m *LLMRunMutation) ClearCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
	m.clearedFields[llmrun.FieldCostUsd] = struct{}{}
}

// CostUsdCleared returns if the "cost_usd" field was cleared in this mutation.
func (m *LLMRunMutation) CostUsdCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldCostUsd]
	return ok
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *LLMRunMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
	delete(m.clearedFields, llmrun.FieldCostUsd)
}

// SetStatus sets the "status" field.
func (m *LLMRunMutation) SetStatus(l llmrun.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LLMRunMutation) Status() (r llmrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldStatus(ctx context.Context) (v llmrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LLMRunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmrun.FieldErrorMessage)
}

// SetInputSha sets the "input_sha" field.
func (m *LLMRunMutation) SetInputSha(s string) {
	m.input_sha = &s
}

// InputSha returns the value of the "input_sha" field in the mutation.
func (m *LLMRunMutation) InputSha() (r string, exists bool) {
	v := m.input_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSha returns the old "input_sha" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldInputSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSha: %w", err)
	}
	return oldValue.InputSha, nil
}

// ClearInputSha clears the value of the "input_sha" field.
func (m *LLMRunMutation) ClearInputSha() {
	m.input_sha = nil
	m.clearedFields[llmrun.FieldInputSha] = struct{}{}
}

// InputShaCleared returns if the "input_sha" field was cleared in this mutation.
func (m *LLMRunMutation) InputShaCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldInputSha]
	return ok
}

// ResetInputSha resets all changes to the "input_sha" field.
func (m *LLMRunMutation) ResetInputSha() {
	m.input_sha = nil
	delete(m.clearedFields, llmrun.FieldInputSha)
}

// SetOutputSha sets the "output_sha" field.
func (m *LLMRunMutation) SetOutputSha(s string) {
	m.output_sha = &s
}

// OutputSha returns the value of the "output_sha" field in the mutation.
func (m *LLMRunMutation) OutputSha() (r string, exists bool) {
	v := m.output_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSha returns the old "output_sha" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldOutputSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSha: %w", err)
	}
	return oldValue.OutputSha, nil
}

// ClearOutputSha clears the value of the "output_sha" field.
func (m *LLMRunMutation) ClearOutputSha() {
	m.output_sha = nil
	m.clearedFields[llmrun.FieldOutputSha] = struct{}{}
}

// OutputShaCleared returns if the "output_sha" field was cleared in this mutation.
func (m *LLMRunMutation) OutputShaCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldOutputSha]
	return ok
}

// ResetOutputSha resets all changes to the "output_sha" field.
func (m *LLMRunMutation) ResetOutputSha() {
	m.output_sha = nil
	delete(m.clearedFields, llmrun.FieldOutputSha)
}

// SetMeta sets the "meta" field.
func (m *LLMRunMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *LLMRunMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the LLMRun entity.
// If the LLMRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRunMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *LLMRunMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[llmrun.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *LLMRunMutation) MetaCleared() bool {
	_, ok := m.clearedFields[llmrun.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *LLMRunMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, llmrun.FieldMeta)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *LLMRunMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[llmrun.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *LLMRunMutation) JobCleared() bool {
	return m.JobIDCleared() || m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *LLMRunMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *LLMRunMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearCue clears the "cue" edge to the JobCue entity.
func (m *LLMRunMutation) ClearCue() {
	m.clearedcue = true
	m.clearedFields[llmrun.FieldCueID] = struct{}{}
}

// CueCleared reports if the "cue" edge to the JobCue entity was cleared.
func (m *LLMRunMutation) CueCleared() bool {
	return m.CueIDCleared() || m.clearedcue
}

// CueIDs returns the "cue" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CueID instead. It exists only for internal usage by the builders.
func (m *LLMRunMutation) CueIDs() (ids []string) {
	if id := m.cue; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCue resets all changes to the "cue" edge.
func (m *LLMRunMutation) ResetCue() {
	m.cue = nil
	m.clearedcue = false
}

// Where appends a list predicates to the LLMRunMutation builder.
func (m *LLMRunMutation) Where(ps ...predicate.LLMRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRun).
func (m *LLMRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRunMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.job != nil {
		fields = append(fields, llmrun.FieldJobID)
	}
	if m.cue != nil {
		fields = append(fields, llmrun.FieldCueID)
	}
	if m.agent_name != nil {
		fields = append(fields, llmrun.FieldAgentName)
	}
	if m.model != nil {
		fields = append(fields, llmrun.FieldModel)
	}
	if m.provider != nil {
		fields = append(fields, llmrun.FieldProvider)
	}
	if m.started_at != nil {
		fields = append(fields, llmrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, llmrun.FieldFinishedAt)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, llmrun.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, llmrun.FieldCompletionTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, llmrun.FieldCostUsd)
	}
	if m.status != nil {
		fields = append(fields, llmrun.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, llmrun.FieldErrorMessage)
	}
	if m.input_sha != nil {
		fields = append(fields, llmrun.FieldInputSha)
	}
	if m.output_sha != nil {
		fields = append(fields, llmrun.FieldOutputSha)
	}
	if m.meta != nil {
		fields = append(fields, llmrun.FieldMeta)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrun.FieldJobID:
		return m.JobID()
	case llmrun.FieldCueID:
		return m.CueID()
	case llmrun.FieldAgentName:
		return m.AgentName()
	case llmrun.FieldModel:
		return m.Model()
	case llmrun.FieldProvider:
		return m.Provider()
	case llmrun.FieldStartedAt:
		return m.StartedAt()
	case llmrun.FieldFinishedAt:
		return m.FinishedAt()
	case llmrun.FieldPromptTokens:
		return m.PromptTokens()
	case llmrun.FieldCompletionTokens:
		return m.CompletionTokens()
	case llmrun.FieldCostUsd:
		return m.CostUsd()
	case llmrun.FieldStatus:
		return m.Status()
	case llmrun.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrun.FieldInputSha:
		return m.InputSha()
	case llmrun.FieldOutputSha:
		return m.OutputSha()
	case llmrun.FieldMeta:
		return m.Meta()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrun.FieldJobID:
		return m.OldJobID(ctx)
	case llmrun.FieldCueID:
		return m.OldCueID(ctx)
	case llmrun.FieldAgentName:
		return m.OldAgentName(ctx)
	case llmrun.FieldModel:
		return m.OldModel(ctx)
	case llmrun.FieldProvider:
		return m.OldProvider(ctx)
	case llmrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case llmrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case llmrun.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case llmrun.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case llmrun.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case llmrun.FieldStatus:
		return m.OldStatus(ctx)
	case llmrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrun.FieldInputSha:
		return m.OldInputSha(ctx)
	case llmrun.FieldOutputSha:
		return m.OldOutputSha(ctx)
	case llmrun.FieldMeta:
		return m.OldMeta(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrun.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case llmrun.FieldCueID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCueID(v)
		return nil
	case llmrun.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case llmrun.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrun.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case llmrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case llmrun.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case llmrun.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case llmrun.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case llmrun.FieldStatus:
		v, ok := value.(llmrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case llmrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrun.FieldInputSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSha(v)
		return nil
	case llmrun.FieldOutputSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSha(v)
		return nil
	case llmrun.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRunMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, llmrun.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, llmrun.FieldCompletionTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, llmrun.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrun.FieldPromptTokens:
		return m.AddedPromptTokens()
	case llmrun.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case llmrun.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrun.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case llmrun.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case llmrun.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmrun.FieldJobID) {
		fields = append(fields, llmrun.FieldJobID)
	}
	if m.FieldCleared(llmrun.FieldCueID) {
		fields = append(fields, llmrun.FieldCueID)
	}
	if m.FieldCleared(llmrun.FieldProvider) {
		fields = append(fields, llmrun.FieldProvider)
	}
	if m.FieldCleared(llmrun.FieldFinishedAt) {
		fields = append(fields, llmrun.FieldFinishedAt)
	}
	if m.FieldCleared(llmrun.FieldPromptTokens) {
		fields = append(fields, llmrun.FieldPromptTokens)
	}
	if m.FieldCleared(llmrun.FieldCompletionTokens) {
		fields = append(fields, llmrun.FieldCompletionTokens)
	}
	if m.FieldCleared(llmrun.FieldCostUsd) {
		fields = append(fields, llmrun.FieldCostUsd)
	}
	if m.FieldCleared(llmrun.FieldErrorMessage) {
		fields = append(fields, llmrun.FieldErrorMessage)
	}
	if m.FieldCleared(llmrun.FieldInputSha) {
		fields = append(fields, llmrun.FieldInputSha)
	}
	if m.FieldCleared(llmrun.FieldOutputSha) {
		fields = append(fields, llmrun.FieldOutputSha)
	}
	if m.FieldCleared(llmrun.FieldMeta) {
		fields = append(fields, llmrun.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRunMutation) ClearField(name string) error {
	switch name {
	case llmrun.FieldJobID:
		m.ClearJobID()
		return nil
	case llmrun.FieldCueID:
		m.ClearCueID()
		return nil
	case llmrun.FieldProvider:
		m.ClearProvider()
		return nil
	case llmrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case llmrun.FieldPromptTokens:
		m.ClearPromptTokens()
		return nil
	case llmrun.FieldCompletionTokens:
		m.ClearCompletionTokens()
		return nil
	case llmrun.FieldCostUsd:
		m.ClearCostUsd()
		return nil
	case llmrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case llmrun.FieldInputSha:
		m.ClearInputSha()
		return nil
	case llmrun.FieldOutputSha:
		m.ClearOutputSha()
		return nil
	case llmrun.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown LLMRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRunMutation) ResetField(name string) error {
	switch name {
	case llmrun.FieldJobID:
		m.ResetJobID()
		return nil
	case llmrun.FieldCueID:
		m.ResetCueID()
		return nil
	case llmrun.FieldAgentName:
		m.ResetAgentName()
		return nil
	case llmrun.FieldModel:
		m.ResetModel()
		return nil
	case llmrun.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case llmrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case llmrun.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case llmrun.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case llmrun.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case llmrun.FieldStatus:
		m.ResetStatus()
		return nil
	case llmrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrun.FieldInputSha:
		m.ResetInputSha()
		return nil
	case llmrun.FieldOutputSha:
		m.ResetOutputSha()
		return nil
	case llmrun.FieldMeta:
		m.ResetMeta()
		return nil
	}
	return fmt.Errorf("unknown LLMRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, llmrun.EdgeJob)
	}
	if m.cue != nil {
		edges = append(edges, llmrun.EdgeCue)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case llmrun.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case llmrun.EdgeCue:
		if id := m.cue; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, llmrun.EdgeJob)
	}
	if m.clearedcue {
		edges = append(edges, llmrun.EdgeCue)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRunMutation) EdgeCleared(name string) bool {
	switch name {
	case llmrun.EdgeJob:
		return m.clearedjob
	case llmrun.EdgeCue:
		return m.clearedcue
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRunMutation) ClearEdge(name string) error {
	switch name {
	case llmrun.EdgeJob:
		m.ClearJob()
		return nil
	case llmrun.EdgeCue:
		m.ClearCue()
		return nil
	}
	return fmt.Errorf("unknown LLMRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRunMutation) ResetEdge(name string) error {
	switch name {
	case llmrun.EdgeJob:
		m.ResetJob()
		return nil
	case llmrun.EdgeCue:
		m.ResetCue()
		return nil
	}
	return fmt.Errorf("unknown LLMRun edge %s", name)
}

// TMEntryMutation represents an operation that mutates the TMEntry nodes in the graph.
type TMEntryMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	source_lang       *string
	target_lang       *string
	en_text           *string
	fa_text           *string
	version           *int
	addversion        *int
	quality_grade     *tmentry.QualityGrade
	qa_score          *float64
	addqa_score       *float64
	confidence        *int
	addconfidence     *int
	en_hash           *string
	domain_tags       *[]string
	appenddomain_tags []string
	embedding         *pgvector.Vector
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*TMEntry, error)
	predicates        []predicate.TMEntry
}

var _ ent.Mutation = (*TMEntryMutation)(nil)

// tmentryOption allows management of the mutation configuration using functional options.
type tmentryOption func(*TMEntryMutation)

// newTMEntryMutation creates new mutation for the TMEntry entity.
func newTMEntryMutation(c config, op Op, opts ...tmentryOption) *TMEntryMutation {
	m := &TMEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeTMEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTMEntryID sets the ID field of the mutation.
func withTMEntryID(id string) tmentryOption {
	return func(m *TMEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *TMEntry
		)
		m.oldValue = func(ctx context.Context) (*TMEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TMEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTMEntry sets the old TMEntry of the mutation.
func withTMEntry(node *TMEntry) tmentryOption {
	return func(m *TMEntryMutation) {
		m.oldValue = func(context.Context) (*TMEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TMEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TMEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TMEntry entities.
func (m *TMEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TMEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TMEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TMEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TMEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TMEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TMEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TMEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TMEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TMEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourceLang sets the "source_lang" field.
func (m *TMEntryMutation) SetSourceLang(s string) {
	m.source_lang = &s
}

// SourceLang returns the value of the "source_lang" field in the mutation.
func (m *TMEntryMutation) SourceLang() (r string, exists bool) {
	v := m.source_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceLang returns the old "source_lang" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldSourceLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceLang: %w", err)
	}
	return oldValue.SourceLang, nil
}

// ResetSourceLang resets all changes to the "source_lang" field.
func (m *TMEntryMutation) ResetSourceLang() {
	m.source_lang = nil
}

// SetTargetLang sets the "target_lang" field.
func (m *TMEntryMutation) SetTargetLang(s string) {
	m.target_lang = &s
}

// TargetLang returns the value of the "target_lang" field in the mutation.
func (m *TMEntryMutation) TargetLang() (r string, exists bool) {
	v := m.target_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLang returns the old "target_lang" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldTargetLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLang: %w", err)
	}
	return oldValue.TargetLang, nil
}

// ResetTargetLang resets all changes to the "target_lang" field.
func (m *TMEntryMutation) ResetTargetLang() {
	m.target_lang = nil
}

// SetEnText sets the "en_text" field.
func (m *TMEntryMutation) SetEnText(s string) {
	m.en_text = &s
}

// EnText returns the value of the "en_text" field in the mutation.
func (m *TMEntryMutation) EnText() (r string, exists bool) {
	v := m.en_text
	if v == nil {
		return
	}
	return *v, true
}

// OldEnText returns the old "en_text" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldEnText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnText: %w", err)
	}
	return oldValue.EnText, nil
}

// ResetEnText resets all changes to the "en_text" field.
func (m *TMEntryMutation) ResetEnText() {
	m.en_text = nil
}

// SetFaText sets the "fa_text" field.
func (m *TMEntryMutation) SetFaText(s string) {
	m.fa_text = &s
}

// FaText returns the value of the "fa_text" field in the mutation.
func (m *TMEntryMutation) FaText() (r string, exists bool) {
	v := m.fa_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFaText returns the old "fa_text" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldFaText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFaText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFaText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFaText: %w", err)
	}
	return oldValue.FaText, nil
}

// ResetFaText resets all changes to the "fa_text" field.
func (m *TMEntryMutation) ResetFaText() {
	m.fa_text = nil
}

// SetVersion sets the "version" field.
func (m *TMEntryMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *TMEntryMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *TMEntryMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *TMEntryMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *TMEntryMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetQualityGrade sets the "quality_grade" field.
func (m *TMEntryMutation) SetQualityGrade(tg tmentry.QualityGrade) {
	m.quality_grade = &tg
}

// QualityGrade returns the value of the "quality_grade" field in the mutation.
func (m *TMEntryMutation) QualityGrade() (r tmentry.QualityGrade, exists bool) {
	v := m.quality_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityGrade returns the old "quality_grade" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldQualityGrade(ctx context.Context) (v tmentry.QualityGrade, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityGrade: %w", err)
	}
	return oldValue.QualityGrade, nil
}

// ResetQualityGrade resets all changes to the "quality_grade" field.
func (m *TMEntryMutation) ResetQualityGrade() {
	m.quality_grade = nil
}

// SetQaScore sets the "qa_score" field.
func (m *TMEntryMutation) SetQaScore(f float64) {
	m.qa_score = &f
	m.addqa_score = nil
}

// QaScore returns the value of the "qa_score" field in the mutation.
func (m *TMEntryMutation) QaScore() (r float64, exists bool) {
	v := m.qa_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQaScore returns the old "qa_score" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldQaScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQaScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQaScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQaScore: %w", err)
	}
	return oldValue.QaScore, nil
}

// AddQaScore adds f to the "qa_score" field.
func (m *TMEntryMutation) AddQaScore(f float64) {
	if m.addqa_score != nil {
		*m.addqa_score += f
	} else {
		m.addqa_score = &f
	}
}

// AddedQaScore returns the value that was added to the "qa_score" field in this mutation.
func (m *TMEntryMutation) AddedQaScore() (r float64, exists bool) {
	v := m.addqa_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQaScore clears the value of the "qa_score" field.
func (m *TMEntryMutation) ClearQaScore() {
	m.qa_score = nil
	m.addqa_score = nil
	m.clearedFields[tmentry.FieldQaScore] = struct{}{}
}

// QaScoreCleared returns if the "qa_score" field was cleared in this mutation.
func (m *TMEntryMutation) QaScoreCleared() bool {
	_, ok := m.clearedFields[tmentry.FieldQaScore]
	return ok
}

// ResetQaScore resets all changes to the "qa_score" field.
func (m *TMEntryMutation) ResetQaScore() {
	m.qa_score = nil
	m.addqa_score = nil
	delete(m.clearedFields, tmentry.FieldQaScore)
}

// SetConfidence sets the "confidence" field.
func (m *TMEntryMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TMEntryMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldConfidence(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *TMEntryMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TMEntryMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *TMEntryMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[tmentry.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *TMEntryMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[tmentry.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TMEntryMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, tmentry.FieldConfidence)
}

// SetEnHash sets the "en_hash" field.
func (m *TMEntryMutation) SetEnHash(s string) {
	m.en_hash = &s
}

// EnHash returns the value of the "en_hash" field in the mutation.
func (m *TMEntryMutation) EnHash() (r string, exists bool) {
	v := m.en_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldEnHash returns the old "en_hash" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldEnHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnHash: %w", err)
	}
	return oldValue.EnHash, nil
}

// ResetEnHash resets all changes to the "en_hash" field.
func (m *TMEntryMutation) ResetEnHash() {
	m.en_hash = nil
}

// SetDomainTags sets the "domain_tags" field.
func (m *TMEntryMutation) SetDomainTags(s []string) {
	m.domain_tags = &s
	m.appenddomain_tags = nil
}

// DomainTags returns the value of the "domain_tags" field in the mutation.
func (m *TMEntryMutation) DomainTags() (r []string, exists bool) {
	v := m.domain_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainTags returns the old "domain_tags" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldDomainTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainTags: %w", err)
	}
	return oldValue.DomainTags, nil
}

// AppendDomainTags adds s to the "domain_tags" field.
func (m *TMEntryMutation) AppendDomainTags(s []string) {
	m.appenddomain_tags = append(m.appenddomain_tags, s...)
}

// AppendedDomainTags returns the list of values that were appended to the "domain_tags" field in this mutation.
func (m *TMEntryMutation) AppendedDomainTags() ([]string, bool) {
	if len(m.appenddomain_tags) == 0 {
		return nil, false
	}
	return m.appenddomain_tags, true
}

// ClearDomainTags clears the value of the "domain_tags" field.
func (m *TMEntryMutation) ClearDomainTags() {
	m.domain_tags = nil
	m.appenddomain_tags = nil
	m.clearedFields[tmentry.FieldDomainTags] = struct{}{}
}

// DomainTagsCleared returns if the "domain_tags" field was cleared in this mutation.
func (m *TMEntryMutation) DomainTagsCleared() bool {
	_, ok := m.clearedFields[tmentry.FieldDomainTags]
	return ok
}

// ResetDomainTags resets all changes to the "domain_tags" field.
func (m *TMEntryMutation) ResetDomainTags() {
	m.domain_tags = nil
	m.appenddomain_tags = nil
	delete(m.clearedFields, tmentry.FieldDomainTags)
}

// SetEmbedding sets the "embedding" field.
func (m *TMEntryMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *TMEntryMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the TMEntry entity.
// If the TMEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TMEntryMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *TMEntryMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[tmentry.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *TMEntryMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[tmentry.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *TMEntryMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, tmentry.FieldEmbedding)
}

// Where appends a list predicates to the TMEntryMutation builder.
func (m *TMEntryMutation) Where(ps ...predicate.TMEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TMEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TMEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TMEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TMEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TMEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TMEntry).
func (m *TMEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TMEntryMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, tmentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tmentry.FieldUpdatedAt)
	}
	if m.source_lang != nil {
		fields = append(fields, tmentry.FieldSourceLang)
	}
	if m.target_lang != nil {
		fields = append(fields, tmentry.FieldTargetLang)
	}
	if m.en_text != nil {
		fields = append(fields, tmentry.FieldEnText)
	}
	if m.fa_text != nil {
		fields = append(fields, tmentry.FieldFaText)
	}
	if m.version != nil {
		fields = append(fields, tmentry.FieldVersion)
	}
	if m.quality_grade != nil {
		fields = append(fields, tmentry.FieldQualityGrade)
	}
	if m.qa_score != nil {
		fields = append(fields, tmentry.FieldQaScore)
	}
	if m.confidence != nil {
		fields = append(fields, tmentry.FieldConfidence)
	}
	if m.en_hash != nil {
		fields = append(fields, tmentry.FieldEnHash)
	}
	if m.domain_tags != nil {
		fields = append(fields, tmentry.FieldDomainTags)
	}
	if m.embedding != nil {
		fields = append(fields, tmentry.FieldEmbedding)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TMEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tmentry.FieldCreatedAt:
		return m.CreatedAt()
	case tmentry.FieldUpdatedAt:
		return m.UpdatedAt()
	case tmentry.FieldSourceLang:
		return m.SourceLang()
	case tmentry.FieldTargetLang:
		return m.TargetLang()
	case tmentry.FieldEnText:
		return m.EnText()
	case tmentry.FieldFaText:
		return m.FaText()
	case tmentry.FieldVersion:
		return m.Version()
	case tmentry.FieldQualityGrade:
		return m.QualityGrade()
	case tmentry.FieldQaScore:
		return m.QaScore()
	case tmentry.FieldConfidence:
		return m.Confidence()
	case tmentry.FieldEnHash:
		return m.EnHash()
	case tmentry.FieldDomainTags:
		return m.DomainTags()
	case tmentry.FieldEmbedding:
		return m.Embedding()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TMEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tmentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tmentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tmentry.FieldSourceLang:
		return m.OldSourceLang(ctx)
	case tmentry.FieldTargetLang:
		return m.OldTargetLang(ctx)
	case tmentry.FieldEnText:
		return m.OldEnText(ctx)
	case tmentry.FieldFaText:
		return m.OldFaText(ctx)
	case tmentry.FieldVersion:
		return m.OldVersion(ctx)
	case tmentry.FieldQualityGrade:
		return m.OldQualityGrade(ctx)
	case tmentry.FieldQaScore:
		return m.OldQaScore(ctx)
	case tmentry.FieldConfidence:
		return m.OldConfidence(ctx)
	case tmentry.FieldEnHash:
		return m.OldEnHash(ctx)
	case tmentry.FieldDomainTags:
		return m.OldDomainTags(ctx)
	case tmentry.FieldEmbedding:
		return m.OldEmbedding(ctx)
	}
	return nil, fmt.Errorf("unknown TMEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TMEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tmentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tmentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tmentry.FieldSourceLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceLang(v)
		return nil
	case tmentry.FieldTargetLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLang(v)
		return nil
	case tmentry.FieldEnText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnText(v)
		return nil
	case tmentry.FieldFaText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFaText(v)
		return nil
	case tmentry.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case tmentry.FieldQualityGrade:
		v, ok := value.(tmentry.QualityGrade)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityGrade(v)
		return nil
	case tmentry.FieldQaScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQaScore(v)
		return nil
	case tmentry.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case tmentry.FieldEnHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnHash(v)
		return nil
	case tmentry.FieldDomainTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainTags(v)
		return nil
	case tmentry.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	}
	return fmt.Errorf("unknown TMEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TMEntryMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, tmentry.FieldVersion)
	}
	if m.addqa_score != nil {
		fields = append(fields, tmentry.FieldQaScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, tmentry.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TMEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tmentry.FieldVersion:
		return m.AddedVersion()
	case tmentry.FieldQaScore:
		return m.AddedQaScore()
	case tmentry.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TMEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tmentry.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case tmentry.FieldQaScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQaScore(v)
		return nil
	case tmentry.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TMEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TMEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tmentry.FieldQaScore) {
		fields = append(fields, tmentry.FieldQaScore)
	}
	if m.FieldCleared(tmentry.FieldConfidence) {
		fields = append(fields, tmentry.FieldConfidence)
	}
	if m.FieldCleared(tmentry.FieldDomainTags) {
		fields = append(fields, tmentry.FieldDomainTags)
	}
	if m.FieldCleared(tmentry.FieldEmbedding) {
		fields = append(fields, tmentry.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TMEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TMEntryMutation) ClearField(name string) error {
	switch name {
	case tmentry.FieldQaScore:
		m.ClearQaScore()
		return nil
	case tmentry.FieldConfidence:
		m.ClearConfidence()
		return nil
	case tmentry.FieldDomainTags:
		m.ClearDomainTags()
		return nil
	case tmentry.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown TMEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TMEntryMutation) ResetField(name string) error {
	switch name {
	case tmentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tmentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tmentry.FieldSourceLang:
		m.ResetSourceLang()
		return nil
	case tmentry.FieldTargetLang:
		m.ResetTargetLang()
		return nil
	case tmentry.FieldEnText:
		m.ResetEnText()
		return nil
	case tmentry.FieldFaText:
		m.ResetFaText()
		return nil
	case tmentry.FieldVersion:
		m.ResetVersion()
		return nil
	case tmentry.FieldQualityGrade:
		m.ResetQualityGrade()
		return nil
	case tmentry.FieldQaScore:
		m.ResetQaScore()
		return nil
	case tmentry.FieldConfidence:
		m.ResetConfidence()
		return nil
	case tmentry.FieldEnHash:
		m.ResetEnHash()
		return nil
	case tmentry.FieldDomainTags:
		m.ResetDomainTags()
		return nil
	case tmentry.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	}
	return fmt.Errorf("unknown TMEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TMEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TMEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TMEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TMEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TMEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TMEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TMEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TMEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TMEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TMEntry edge %s", name)
}
