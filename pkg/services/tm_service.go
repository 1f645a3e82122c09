package services

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/ent/tmentry"
	"github.com/subtitle-ai/zirnevis/pkg/tm"
)

// TMService is the persistence side of the Translation Memory: vector
// recall for gating and guarded inserts for the librarian. Recall goes
// through raw SQL because the cosine-distance operator has no ent
// predicate; everything else rides the ent client.
type TMService struct {
	client *ent.Client
	db     *stdsql.DB
}

// NewTMService creates a new TMService over the shared connection pool.
func NewTMService(client *ent.Client, db *stdsql.DB) *TMService {
	return &TMService{client: client, db: db}
}

var _ tm.Recall = (*TMService)(nil)

// TopK returns the k nearest TM entries by cosine distance, closest
// first. Entries without an embedding never match. The embedding column
// is 3072-dimensional, past the pgvector ANN index cap, so this is a
// sequential scan — acceptable at TM sizes the librarian gate produces.
func (s *TMService) TopK(ctx context.Context, embedding []float32, k int) ([]tm.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tm_entry_id, en_text, fa_text, embedding
		FROM   tm_entries
		WHERE  embedding IS NOT NULL
		ORDER  BY embedding <=> $1
		LIMIT  $2`,
		pgvector.NewVector(embedding), k)
	if err != nil {
		return nil, fmt.Errorf("tm recall query failed: %w", err)
	}
	defer rows.Close()

	var out []tm.Candidate
	for rows.Next() {
		var (
			c   tm.Candidate
			vec pgvector.Vector
		)
		if err := rows.Scan(&c.EntryID, &c.EnText, &c.FaText, &vec); err != nil {
			return nil, fmt.Errorf("tm recall scan failed: %w", err)
		}
		c.Embedding = vec.Slice()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tm recall rows failed: %w", err)
	}
	return out, nil
}

// HasHash reports whether a TM entry with this en_hash already exists.
func (s *TMService) HasHash(ctx context.Context, enHash string) (bool, error) {
	exists, err := s.client.TMEntry.Query().
		Where(tmentry.EnHashEQ(enHash)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check en_hash: %w", err)
	}
	return exists, nil
}

// PromoteInput is one librarian promotion.
type PromoteInput struct {
	EnText     string
	FaText     string
	EnHash     string
	DomainTags []string
	QAScore    *float64
	Confidence int
	Embedding  []float32
}

// Promote inserts a trusted TM entry. A duplicate en_hash — a concurrent
// librarian won the race — reports inserted=false instead of an error.
func (s *TMService) Promote(ctx context.Context, in PromoteInput) (bool, error) {
	b := s.client.TMEntry.Create().
		SetID(uuid.New().String()).
		SetEnText(in.EnText).
		SetFaText(in.FaText).
		SetEnHash(in.EnHash).
		SetQualityGrade(tmentry.QualityGradeTrusted).
		SetConfidence(in.Confidence).
		SetDomainTags(in.DomainTags).
		SetEmbedding(pgvector.NewVector(in.Embedding))
	if in.QAScore != nil {
		b.SetQaScore(*in.QAScore)
	}

	if err := b.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert tm entry: %w", err)
	}
	return true, nil
}

// CountEntries returns the TM size, used by health reporting.
func (s *TMService) CountEntries(ctx context.Context) (int, error) {
	n, err := s.client.TMEntry.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count tm entries: %w", err)
	}
	return n, nil
}

// GetEntry fetches one TM entry by id.
func (s *TMService) GetEntry(ctx context.Context, entryID string) (*ent.TMEntry, error) {
	e, err := s.client.TMEntry.Get(ctx, entryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tm entry: %w", err)
	}
	return e, nil
}

// IsNotFound reports whether err is the service's not-found sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
