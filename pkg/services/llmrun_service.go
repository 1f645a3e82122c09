package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/ent/llmrun"
	"github.com/subtitle-ai/zirnevis/pkg/llm"
)

// LLMRunService persists router audit rows. It implements llm.RunRecorder:
// the row is born in error state and its final state reflects the last
// attempted model.
type LLMRunService struct {
	client *ent.Client
}

// NewLLMRunService creates a new LLMRunService.
func NewLLMRunService(client *ent.Client) *LLMRunService {
	return &LLMRunService{client: client}
}

var _ llm.RunRecorder = (*LLMRunService)(nil)

// BeginRun inserts the audit row before the first attempt.
func (s *LLMRunService) BeginRun(ctx context.Context, in llm.BeginRunInput) (string, error) {
	runID := uuid.New().String()
	b := s.client.LLMRun.Create().
		SetID(runID).
		SetAgentName(in.AgentName).
		SetModel(in.Model).
		SetProvider(in.Provider).
		SetStatus(llmrun.StatusError).
		SetInputSha(in.InputSHA)
	if in.JobID != "" {
		b.SetJobID(in.JobID)
	}
	if in.CueID != "" {
		b.SetCueID(in.CueID)
	}
	if in.Meta != nil {
		b.SetMeta(in.Meta)
	}
	if err := b.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to create llm run: %w", err)
	}
	return runID, nil
}

// MarkAttempt stamps the model about to be tried.
func (s *LLMRunService) MarkAttempt(ctx context.Context, runID, model string, startedAt time.Time) error {
	err := s.client.LLMRun.UpdateOneID(runID).
		SetModel(model).
		SetStartedAt(startedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark llm attempt: %w", err)
	}
	return nil
}

// MarkSuccess finalizes the row after a successful attempt. A success
// overrides any earlier failure on the same run.
func (s *LLMRunService) MarkSuccess(ctx context.Context, runID string, in llm.RunSuccessInput) error {
	err := s.client.LLMRun.UpdateOneID(runID).
		SetStatus(llmrun.StatusSuccess).
		SetProvider(in.Provider).
		SetFinishedAt(in.FinishedAt).
		SetOutputSha(in.OutputSHA).
		SetPromptTokens(in.PromptTokens).
		SetCompletionTokens(in.CompletionTokens).
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark llm success: %w", err)
	}
	return nil
}

// MarkFailure records one failed attempt; the router may still move on to
// a fallback model.
func (s *LLMRunService) MarkFailure(ctx context.Context, runID, errMsg string, finishedAt time.Time) error {
	err := s.client.LLMRun.UpdateOneID(runID).
		SetStatus(llmrun.StatusError).
		SetErrorMessage(errMsg).
		SetFinishedAt(finishedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark llm failure: %w", err)
	}
	return nil
}

// ListRunsForJob returns the job's audit rows in call order.
func (s *LLMRunService) ListRunsForJob(ctx context.Context, jobID string) ([]*ent.LLMRun, error) {
	runs, err := s.client.LLMRun.Query().
		Where(llmrun.JobIDEQ(jobID)).
		Order(ent.Asc(llmrun.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list llm runs: %w", err)
	}
	return runs, nil
}
