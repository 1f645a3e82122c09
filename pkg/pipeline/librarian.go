package pipeline

import (
	"context"
	"strings"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/pkg/services"
	"github.com/subtitle-ai/zirnevis/pkg/tm"
)

// Quality bar for promoting a cue into the Translation Memory.
const (
	promoteMinQAScore = 85.0
	promoteConfidence = 90
)

// Issues that disqualify a cue from promotion regardless of score.
var disqualifyingIssues = map[string]bool{
	"meaning_drift":    true,
	"numbers_mismatch": true,
}

// shouldPromote decides whether a polished cue is trustworthy enough to
// seed future reuse.
func shouldPromote(c *ent.JobCue) bool {
	if c.QaScore == nil || *c.QaScore < promoteMinQAScore {
		return false
	}
	for _, issue := range c.Issues {
		if disqualifyingIssues[issue] {
			return false
		}
	}
	return true
}

// promoteCues inserts the qualifying cues as trusted TM entries and
// returns how many were stored. Cues whose English hash is already in
// the TM are skipped, which keeps reruns from double-inserting.
func (e *Executor) promoteCues(ctx context.Context, domainTags []string, cues []*ent.JobCue) (int, error) {
	promoted := 0
	for _, c := range cues {
		if !shouldPromote(c) {
			continue
		}
		en := strings.TrimSpace(c.EnText)
		fa := strings.TrimSpace(finalPersian(c))
		if en == "" || fa == "" {
			continue
		}

		hash := tm.EnHash(en)
		exists, err := e.tmStore.HasHash(ctx, hash)
		if err != nil {
			return promoted, err
		}
		if exists {
			continue
		}

		embeddings, err := e.embedder.Embed(ctx, e.cfg.EmbeddingModel, []string{en})
		if err != nil {
			return promoted, err
		}
		var embedding []float32
		if len(embeddings) > 0 {
			embedding = embeddings[0]
		}

		inserted, err := e.tmStore.Promote(ctx, services.PromoteInput{
			EnText:     en,
			FaText:     fa,
			EnHash:     hash,
			DomainTags: domainTags,
			QAScore:    c.QaScore,
			Confidence: promoteConfidence,
			Embedding:  embedding,
		})
		if err != nil {
			return promoted, err
		}
		if inserted {
			promoted++
		}
	}
	return promoted, nil
}
