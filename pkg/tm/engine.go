package tm

import (
	"context"
	"fmt"
)

// Candidate is one recalled TM entry, closest-first by cosine distance.
type Candidate struct {
	EntryID   string
	EnText    string
	FaText    string
	Embedding []float32
}

// Recall returns the k nearest TM entries to the query embedding.
type Recall interface {
	TopK(ctx context.Context, embedding []float32, k int) ([]Candidate, error)
}

// Judge adjudicates borderline reuse. Implementations degrade to false on
// malformed model output rather than failing the stage.
type Judge interface {
	ShouldReuse(ctx context.Context, jobID, enText, faText string) (bool, error)
}

// Thresholds are the gating cut points; JudgeThreshold must not exceed
// AutoReuseThreshold.
type Thresholds struct {
	AutoReuse float64
	Judge     float64
}

// Decision is the gating outcome for one cue.
type Decision struct {
	Reused           bool
	NeedsTranslation bool
	EntryID          string
	FaText           string
	// Confidence is the composite score of the best candidate; zero when
	// recall returned nothing.
	Confidence    float64
	HadCandidates bool
}

// TopK is the recall depth for gating.
const TopK = 8

// Engine applies the gating policy over a recall source and a judge.
type Engine struct {
	recall     Recall
	judge      Judge
	thresholds Thresholds
}

// NewEngine builds a gating engine.
func NewEngine(recall Recall, judge Judge, thresholds Thresholds) *Engine {
	return &Engine{recall: recall, judge: judge, thresholds: thresholds}
}

// Evaluate gates one cue: recall the nearest entries, score the best one,
// then auto-reuse above the upper threshold, consult the judge between the
// thresholds, and fall through to translation otherwise. The similarity
// term is the real cosine between the query and the candidate's stored
// embedding.
func (e *Engine) Evaluate(ctx context.Context, jobID, enText string, embedding []float32) (Decision, error) {
	cands, err := e.recall.TopK(ctx, embedding, TopK)
	if err != nil {
		return Decision{}, fmt.Errorf("tm recall failed: %w", err)
	}
	if len(cands) == 0 {
		return Decision{NeedsTranslation: true}, nil
	}

	best := cands[0]
	sim := CosineSimilarity(embedding, best.Embedding)
	conf := CompositeConfidence(enText, best.EnText, sim)

	d := Decision{Confidence: conf, HadCandidates: true}
	switch {
	case conf >= e.thresholds.AutoReuse:
		d.Reused = true
		d.EntryID = best.EntryID
		d.FaText = best.FaText
	case conf >= e.thresholds.Judge:
		reuse, err := e.judge.ShouldReuse(ctx, jobID, enText, best.FaText)
		if err != nil {
			return Decision{}, fmt.Errorf("tm judge failed: %w", err)
		}
		if reuse {
			d.Reused = true
			d.EntryID = best.EntryID
			d.FaText = best.FaText
		} else {
			d.NeedsTranslation = true
		}
	default:
		d.NeedsTranslation = true
	}
	return d, nil
}
