package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/ent/jobglossaryterm"
)

// GlossaryService manages the per-job bilingual glossary.
type GlossaryService struct {
	client *ent.Client
}

// NewGlossaryService creates a new GlossaryService.
func NewGlossaryService(client *ent.Client) *GlossaryService {
	return &GlossaryService{client: client}
}

// TermInput is one glossary binding to persist. Near-duplicates are
// allowed; only the English term is mandatory.
type TermInput struct {
	EnTerm     string
	FaTerm     string
	TermType   string
	Mandatory  bool
	Confidence *int
	Notes      string
}

// ReplaceGlossary swaps the job's glossary for the given terms in one
// transaction, so the TERMS stage can be rerun safely. Terms with an
// empty English side are dropped rather than violating the schema.
func (s *GlossaryService) ReplaceGlossary(ctx context.Context, jobID string, terms []TermInput) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.JobGlossaryTerm.Delete().
		Where(jobglossaryterm.JobIDEQ(jobID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior glossary: %w", err)
	}

	builders := make([]*ent.JobGlossaryTermCreate, 0, len(terms))
	for _, t := range terms {
		if t.EnTerm == "" {
			continue
		}
		b := tx.JobGlossaryTerm.Create().
			SetID(uuid.New().String()).
			SetJobID(jobID).
			SetEnTerm(t.EnTerm).
			SetFaTerm(t.FaTerm).
			SetMandatory(t.Mandatory)
		if t.TermType != "" {
			b.SetTermType(t.TermType)
		}
		if t.Confidence != nil {
			b.SetConfidence(*t.Confidence)
		}
		if t.Notes != "" {
			b.SetNotes(t.Notes)
		}
		builders = append(builders, b)
	}
	if _, err := tx.JobGlossaryTerm.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to insert glossary terms: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit glossary replacement: %w", err)
	}
	return nil
}

// ListGlossary returns the job's glossary terms.
func (s *GlossaryService) ListGlossary(ctx context.Context, jobID string) ([]*ent.JobGlossaryTerm, error) {
	terms, err := s.client.JobGlossaryTerm.Query().
		Where(jobglossaryterm.JobIDEQ(jobID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list glossary: %w", err)
	}
	return terms, nil
}
