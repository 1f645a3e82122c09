// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
	"github.com/subtitle-ai/zirnevis/ent/schema"
	"github.com/subtitle-ai/zirnevis/ent/tmentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[1].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[2].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescSourceLang is the schema descriptor for source_lang field.
	jobDescSourceLang := jobFields[3].Descriptor()
	// job.DefaultSourceLang holds the default value on creation for the source_lang field.
	job.DefaultSourceLang = jobDescSourceLang.Default.(string)
	// jobDescTargetLang is the schema descriptor for target_lang field.
	jobDescTargetLang := jobFields[4].Descriptor()
	// job.DefaultTargetLang holds the default value on creation for the target_lang field.
	job.DefaultTargetLang = jobDescTargetLang.Default.(string)
	// jobDescInputType is the schema descriptor for input_type field.
	jobDescInputType := jobFields[7].Descriptor()
	// job.DefaultInputType holds the default value on creation for the input_type field.
	job.DefaultInputType = jobDescInputType.Default.(string)
	// jobDescMaxLines is the schema descriptor for max_lines field.
	jobDescMaxLines := jobFields[12].Descriptor()
	// job.DefaultMaxLines holds the default value on creation for the max_lines field.
	job.DefaultMaxLines = jobDescMaxLines.Default.(int)
	// jobDescMaxCharsPerLine is the schema descriptor for max_chars_per_line field.
	jobDescMaxCharsPerLine := jobFields[13].Descriptor()
	// job.DefaultMaxCharsPerLine holds the default value on creation for the max_chars_per_line field.
	job.DefaultMaxCharsPerLine = jobDescMaxCharsPerLine.Default.(int)
	// jobDescTargetCps is the schema descriptor for target_cps field.
	jobDescTargetCps := jobFields[14].Descriptor()
	// job.DefaultTargetCps holds the default value on creation for the target_cps field.
	job.DefaultTargetCps = jobDescTargetCps.Default.(float64)
	// jobDescMinCueMs is the schema descriptor for min_cue_ms field.
	jobDescMinCueMs := jobFields[15].Descriptor()
	// job.DefaultMinCueMs holds the default value on creation for the min_cue_ms field.
	job.DefaultMinCueMs = jobDescMinCueMs.Default.(int)
	// jobDescMaxCueMs is the schema descriptor for max_cue_ms field.
	jobDescMaxCueMs := jobFields[16].Descriptor()
	// job.DefaultMaxCueMs holds the default value on creation for the max_cue_ms field.
	job.DefaultMaxCueMs = jobDescMaxCueMs.Default.(int)
	jobcueFields := schema.JobCue{}.Fields()
	_ = jobcueFields
	// jobcueDescEnText is the schema descriptor for en_text field.
	jobcueDescEnText := jobcueFields[5].Descriptor()
	// jobcue.EnTextValidator is a validator for the "en_text" field. It is called by the builders before save.
	jobcue.EnTextValidator = jobcueDescEnText.Validators[0].(func(string) error)
	// jobcueDescTmReused is the schema descriptor for tm_reused field.
	jobcueDescTmReused := jobcueFields[8].Descriptor()
	// jobcue.DefaultTmReused holds the default value on creation for the tm_reused field.
	jobcue.DefaultTmReused = jobcueDescTmReused.Default.(bool)
	// jobcueDescNeedsTranslation is the schema descriptor for needs_translation field.
	jobcueDescNeedsTranslation := jobcueFields[10].Descriptor()
	// jobcue.DefaultNeedsTranslation holds the default value on creation for the needs_translation field.
	jobcue.DefaultNeedsTranslation = jobcueDescNeedsTranslation.Default.(bool)
	jobglossarytermFields := schema.JobGlossaryTerm{}.Fields()
	_ = jobglossarytermFields
	// jobglossarytermDescEnTerm is the schema descriptor for en_term field.
	jobglossarytermDescEnTerm := jobglossarytermFields[2].Descriptor()
	// jobglossaryterm.EnTermValidator is a validator for the "en_term" field. It is called by the builders before save.
	jobglossaryterm.EnTermValidator = jobglossarytermDescEnTerm.Validators[0].(func(string) error)
	// jobglossarytermDescMandatory is the schema descriptor for mandatory field.
	jobglossarytermDescMandatory := jobglossarytermFields[5].Descriptor()
	// jobglossaryterm.DefaultMandatory holds the default value on creation for the mandatory field.
	jobglossaryterm.DefaultMandatory = jobglossarytermDescMandatory.Default.(bool)
	llmrunFields := schema.LLMRun{}.Fields()
	_ = llmrunFields
	// llmrunDescStartedAt is the schema descriptor for started_at field.
	llmrunDescStartedAt := llmrunFields[6].Descriptor()
	// llmrun.DefaultStartedAt holds the default value on creation for the started_at field.
	llmrun.DefaultStartedAt = llmrunDescStartedAt.Default.(func() time.Time)
	tmentryFields := schema.TMEntry{}.Fields()
	_ = tmentryFields
	// tmentryDescCreatedAt is the schema descriptor for created_at field.
	tmentryDescCreatedAt := tmentryFields[1].Descriptor()
	// tmentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	tmentry.DefaultCreatedAt = tmentryDescCreatedAt.Default.(func() time.Time)
	// tmentryDescUpdatedAt is the schema descriptor for updated_at field.
	tmentryDescUpdatedAt := tmentryFields[2].Descriptor()
	// tmentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tmentry.DefaultUpdatedAt = tmentryDescUpdatedAt.Default.(func() time.Time)
	// tmentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tmentry.UpdateDefaultUpdatedAt = tmentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tmentryDescSourceLang is the schema descriptor for source_lang field.
	tmentryDescSourceLang := tmentryFields[3].Descriptor()
	// tmentry.DefaultSourceLang holds the default value on creation for the source_lang field.
	tmentry.DefaultSourceLang = tmentryDescSourceLang.Default.(string)
	// tmentryDescTargetLang is the schema descriptor for target_lang field.
	tmentryDescTargetLang := tmentryFields[4].Descriptor()
	// tmentry.DefaultTargetLang holds the default value on creation for the target_lang field.
	tmentry.DefaultTargetLang = tmentryDescTargetLang.Default.(string)
	// tmentryDescEnText is the schema descriptor for en_text field.
	tmentryDescEnText := tmentryFields[5].Descriptor()
	// tmentry.EnTextValidator is a validator for the "en_text" field. It is called by the builders before save.
	tmentry.EnTextValidator = tmentryDescEnText.Validators[0].(func(string) error)
	// tmentryDescFaText is the schema descriptor for fa_text field.
	tmentryDescFaText := tmentryFields[6].Descriptor()
	// tmentry.FaTextValidator is a validator for the "fa_text" field. It is called by the builders before save.
	tmentry.FaTextValidator = tmentryDescFaText.Validators[0].(func(string) error)
	// tmentryDescVersion is the schema descriptor for version field.
	tmentryDescVersion := tmentryFields[7].Descriptor()
	// tmentry.DefaultVersion holds the default value on creation for the version field.
	tmentry.DefaultVersion = tmentryDescVersion.Default.(int)
	// tmentryDescEnHash is the schema descriptor for en_hash field.
	tmentryDescEnHash := tmentryFields[11].Descriptor()
	// tmentry.EnHashValidator is a validator for the "en_hash" field. It is called by the builders before save.
	tmentry.EnHashValidator = tmentryDescEnHash.Validators[0].(func(string) error)
}
