package services

import (
	"context"
	"fmt"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/pkg/config"
)

// JobService manages Job rows: creation on upload, stage transitions, and
// the fields each stage persists.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJobInput describes a freshly uploaded job. The subtitle shape is
// snapshotted onto the row so later config changes do not affect running
// jobs.
type CreateJobInput struct {
	ID       string
	InputURI string
	Shape    config.SubtitleConfig
}

// CreateJob inserts the UPLOADED job row. The insert is the enqueue: the
// row starts in queue_state=queued and a worker will claim it.
func (s *JobService) CreateJob(ctx context.Context, in CreateJobInput) (*ent.Job, error) {
	if in.ID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if in.InputURI == "" {
		return nil, NewValidationError("input_uri", "required")
	}

	j, err := s.client.Job.Create().
		SetID(in.ID).
		SetInputURI(in.InputURI).
		SetMaxLines(in.Shape.MaxLines).
		SetMaxCharsPerLine(in.Shape.MaxCharsPerLine).
		SetTargetCps(in.Shape.TargetCPS).
		SetMinCueMs(in.Shape.MinCueMs).
		SetMaxCueMs(in.Shape.MaxCueMs).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

// GetJob fetches a job by id.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// SetStatus persists a stage transition. Callers advance strictly in
// stage order; the transition is committed before the stage body runs.
func (s *JobService) SetStatus(ctx context.Context, jobID string, status job.Status) error {
	if err := s.client.Job.UpdateOneID(jobID).SetStatus(status).Exec(ctx); err != nil {
		return fmt.Errorf("failed to set job status: %w", err)
	}
	return nil
}

// SetNormalizedURI records the AUDIO_PREP artifact.
func (s *JobService) SetNormalizedURI(ctx context.Context, jobID, uri string) error {
	if err := s.client.Job.UpdateOneID(jobID).SetNormalizedURI(uri).Exec(ctx); err != nil {
		return fmt.Errorf("failed to set normalized uri: %w", err)
	}
	return nil
}

// SetASRJSONURI records the persisted transcript path.
func (s *JobService) SetASRJSONURI(ctx context.Context, jobID, uri string) error {
	if err := s.client.Job.UpdateOneID(jobID).SetAsrJSONURI(uri).Exec(ctx); err != nil {
		return fmt.Errorf("failed to set asr json uri: %w", err)
	}
	return nil
}

// SetRiskLevel persists the classifier verdict before the strategist runs.
func (s *JobService) SetRiskLevel(ctx context.Context, jobID, level string) error {
	if err := s.client.Job.UpdateOneID(jobID).SetRiskLevel(level).Exec(ctx); err != nil {
		return fmt.Errorf("failed to set risk level: %w", err)
	}
	return nil
}

// StrategyInput is what the STRATEGY stage persists onto the job.
type StrategyInput struct {
	Genre              string
	Tone               string
	DomainTags         []string
	DifficultyScore    int
	StrategistConf     int
	NeedsTerminologist bool
}

// SaveStrategy writes the strategist outcome.
func (s *JobService) SaveStrategy(ctx context.Context, jobID string, in StrategyInput) error {
	err := s.client.Job.UpdateOneID(jobID).
		SetGenre(in.Genre).
		SetTone(in.Tone).
		SetDomainTags(in.DomainTags).
		SetDifficultyScore(in.DifficultyScore).
		SetStrategistConf(in.StrategistConf).
		SetNeedsTerminologist(in.NeedsTerminologist).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save strategy: %w", err)
	}
	return nil
}

// SetFinalSrtURI records the Persian SRT produced at FINALIZE.
func (s *JobService) SetFinalSrtURI(ctx context.Context, jobID, uri string) error {
	if err := s.client.Job.UpdateOneID(jobID).SetFinalSrtURI(uri).Exec(ctx); err != nil {
		return fmt.Errorf("failed to set final srt uri: %w", err)
	}
	return nil
}

// SetErrorMessage records the failure that halted the pipeline. The
// status is intentionally left at the failing stage.
func (s *JobService) SetErrorMessage(ctx context.Context, jobID, msg string) error {
	if err := s.client.Job.UpdateOneID(jobID).SetErrorMessage(msg).Exec(ctx); err != nil {
		return fmt.Errorf("failed to set error message: %w", err)
	}
	return nil
}
