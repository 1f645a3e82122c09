package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/ent/jobcue"
	"github.com/subtitle-ai/zirnevis/pkg/subtitle"
	"github.com/subtitle-ai/zirnevis/pkg/tm"
)

// CueService manages the cue rows of a job.
type CueService struct {
	client *ent.Client
}

// NewCueService creates a new CueService.
func NewCueService(client *ent.Client) *CueService {
	return &CueService{client: client}
}

// ReplaceCues deletes any prior cues of the job and inserts the segmenter
// output with dense 1-based indices, inside one transaction. Rebuilding
// from scratch keeps the SEGMENT stage idempotent on restart.
func (s *CueService) ReplaceCues(ctx context.Context, jobID string, segments []subtitle.Segment) ([]*ent.JobCue, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.JobCue.Delete().Where(jobcue.JobIDEQ(jobID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete prior cues: %w", err)
	}

	builders := make([]*ent.JobCueCreate, 0, len(segments))
	for i, seg := range segments {
		builders = append(builders, tx.JobCue.Create().
			SetID(uuid.New().String()).
			SetJobID(jobID).
			SetCueIndex(i+1).
			SetStartMs(seg.StartMs).
			SetEndMs(seg.EndMs).
			SetEnText(seg.Text))
	}
	cues, err := tx.JobCue.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cues: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cue replacement: %w", err)
	}
	return cues, nil
}

// ListCues returns the job's cues in cue_index order.
func (s *CueService) ListCues(ctx context.Context, jobID string) ([]*ent.JobCue, error) {
	cues, err := s.client.JobCue.Query().
		Where(jobcue.JobIDEQ(jobID)).
		Order(ent.Asc(jobcue.FieldCueIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cues: %w", err)
	}
	return cues, nil
}

// ApplyTMDecision overwrites the cue's gating fields. Because every field
// is written on every call, rerunning TM_GATING is idempotent.
func (s *CueService) ApplyTMDecision(ctx context.Context, cueID string, d tm.Decision) error {
	upd := s.client.JobCue.UpdateOneID(cueID).
		SetTmReused(d.Reused).
		SetNeedsTranslation(d.NeedsTranslation)
	if d.HadCandidates {
		upd.SetTmConfidence(d.Confidence)
	}
	if d.Reused {
		upd.SetTmEntryID(d.EntryID).SetFaText(d.FaText)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to apply tm decision: %w", err)
	}
	return nil
}

// SetTranslation replaces the cue's Persian text.
func (s *CueService) SetTranslation(ctx context.Context, cueID, faText string) error {
	if err := s.client.JobCue.UpdateOneID(cueID).SetFaText(faText).Exec(ctx); err != nil {
		return fmt.Errorf("failed to set translation: %w", err)
	}
	return nil
}

// QAInput carries one cue's share of the QA Polisher output.
type QAInput struct {
	FaTextQA string
	QAScore  *float64
	Issues   []string
}

// ApplyQA writes the polished text, score, and issue tags for one cue.
func (s *CueService) ApplyQA(ctx context.Context, cueID string, in QAInput) error {
	upd := s.client.JobCue.UpdateOneID(cueID).
		SetFaTextQa(in.FaTextQA).
		SetIssues(in.Issues)
	if in.QAScore != nil {
		upd.SetQaScore(*in.QAScore)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to apply qa result: %w", err)
	}
	return nil
}
