// Package pipeline drives a job through the subtitle stage machine:
// AUDIO_PREP → ASR → SEGMENT → STRATEGY → TM_GATING → TERMS? → TRANSLATE
// → QA → FINALIZE → LIBRARIAN → DONE. Every transition is persisted before
// the stage body runs, and every stage is idempotent, so a rerun resumes
// from the recorded stage.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/pkg/agents"
	"github.com/subtitle-ai/zirnevis/pkg/asr"
	"github.com/subtitle-ai/zirnevis/pkg/config"
	"github.com/subtitle-ai/zirnevis/pkg/services"
	"github.com/subtitle-ai/zirnevis/pkg/storage"
	"github.com/subtitle-ai/zirnevis/pkg/tm"
)

// AudioNormalizer prepares uploaded media for transcription.
type AudioNormalizer interface {
	Normalize(ctx context.Context, inputPath, outWavPath string) error
	MaybeVADTrim(wavPath string) string
}

// Transcriber produces the word-timed transcript for a prepared WAV.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (*asr.Transcript, error)
}

// Embedder computes dense vectors for English cue texts.
type Embedder interface {
	Embed(ctx context.Context, model string, texts []string) ([][]float32, error)
}

// TMStore is the librarian's view of the Translation Memory.
type TMStore interface {
	HasHash(ctx context.Context, enHash string) (bool, error)
	Promote(ctx context.Context, in services.PromoteInput) (bool, error)
}

// Executor runs the stage machine for one job at a time.
type Executor struct {
	cfg      *config.Config
	store    *storage.Store
	audio    AudioNormalizer
	asr      Transcriber
	embedder Embedder
	agents   *agents.Agents
	gate     *tm.Engine
	tmStore  TMStore

	jobs     *services.JobService
	cues     *services.CueService
	glossary *services.GlossaryService
}

// Deps bundles the executor's collaborators.
type Deps struct {
	Config   *config.Config
	Store    *storage.Store
	Audio    AudioNormalizer
	ASR      Transcriber
	Embedder Embedder
	Agents   *agents.Agents
	Gate     *tm.Engine
	TMStore  TMStore

	Jobs     *services.JobService
	Cues     *services.CueService
	Glossary *services.GlossaryService
}

// NewExecutor wires a pipeline executor.
func NewExecutor(d Deps) *Executor {
	return &Executor{
		cfg:      d.Config,
		store:    d.Store,
		audio:    d.Audio,
		asr:      d.ASR,
		embedder: d.Embedder,
		agents:   d.Agents,
		gate:     d.Gate,
		tmStore:  d.TMStore,
		jobs:     d.Jobs,
		cues:     d.Cues,
		glossary: d.Glossary,
	}
}

// stageDef is one stage of the machine. skip, when set, is re-evaluated
// on every run from persisted job state, so resumed jobs make the same
// decision as fresh ones.
type stageDef struct {
	status job.Status
	skip   func(r *run) bool
	fn     func(ctx context.Context, r *run) error
}

func (e *Executor) stages() []stageDef {
	return []stageDef{
		{status: job.StatusAudioPrep, fn: e.stageAudioPrep},
		{status: job.StatusASR, fn: e.stageASR},
		{status: job.StatusSegment, fn: e.stageSegment},
		{status: job.StatusStrategy, fn: e.stageStrategy},
		{status: job.StatusTMGating, fn: e.stageTMGating},
		{status: job.StatusTerms, skip: skipTerms, fn: e.stageTerms},
		{status: job.StatusTranslate, fn: e.stageTranslate},
		{status: job.StatusQA, fn: e.stageQA},
		{status: job.StatusFinalize, fn: e.stageFinalize},
		{status: job.StatusLibrarian, fn: e.stageLibrarian},
	}
}

// skipTerms holds when the strategist saw no need for a glossary or the
// source is easy enough to translate without one.
func skipTerms(r *run) bool {
	needs := r.job.NeedsTerminologist != nil && *r.job.NeedsTerminologist
	return !needs || r.difficulty() < 4
}

// run is the per-execution working state. Everything in it is derived
// from persisted job state, so a resumed run rebuilds it on demand.
type run struct {
	job        *ent.Job
	transcript *asr.Transcript
	log        *slog.Logger
}

// difficulty returns the strategist's score, defaulting to the midpoint
// before STRATEGY has run.
func (r *run) difficulty() int {
	if r.job.DifficultyScore != nil {
		return *r.job.DifficultyScore
	}
	return 5
}

// Execute drives the job from its recorded stage to DONE. On stage
// failure the error message is persisted and the status is left at the
// failing stage; partial cue updates made before the failure remain.
func (e *Executor) Execute(ctx context.Context, j *ent.Job) error {
	r := &run{job: j, log: slog.With("job_id", j.ID)}

	stages := e.stages()
	start := 0
	switch j.Status {
	case job.StatusUploaded:
		start = 0
	case job.StatusDone:
		r.log.Info("Job already done, nothing to execute")
		return nil
	default:
		found := false
		for i, s := range stages {
			if s.status == j.Status {
				start = i
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("job %s has unknown stage %q", j.ID, j.Status)
		}
		r.log.Info("Resuming job", "stage", j.Status)
	}

	for _, s := range stages[start:] {
		if s.skip != nil && s.skip(r) {
			r.log.Info("Skipping stage", "stage", s.status)
			continue
		}
		if err := e.enterStage(ctx, r, s.status); err != nil {
			return err
		}
		if err := s.fn(ctx, r); err != nil {
			r.log.Error("Stage failed", "stage", s.status, "error", err)
			e.recordFailure(r, s.status, err)
			return fmt.Errorf("stage %s failed: %w", s.status, err)
		}
		r.log.Info("Stage complete", "stage", s.status)
	}

	if err := e.jobs.SetStatus(ctx, r.job.ID, job.StatusDone); err != nil {
		return err
	}
	r.job.Status = job.StatusDone
	r.log.Info("Job done")
	return nil
}

// enterStage persists the transition before the stage body runs, so a
// crash mid-stage is recoverable at exactly that stage.
func (e *Executor) enterStage(ctx context.Context, r *run, status job.Status) error {
	if err := e.jobs.SetStatus(ctx, r.job.ID, status); err != nil {
		return err
	}
	r.job.Status = status
	return nil
}

// recordFailure writes the error message with a fresh context: the stage
// context may already be cancelled.
func (e *Executor) recordFailure(r *run, status job.Status, stageErr error) {
	msg := fmt.Sprintf("%s: %v", status, stageErr)
	if err := e.jobs.SetErrorMessage(context.Background(), r.job.ID, msg); err != nil {
		r.log.Error("Failed to persist stage error", "error", err)
	}
}
