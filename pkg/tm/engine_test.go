package tm

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecall struct {
	candidates []Candidate
	err        error
}

func (f *fakeRecall) TopK(_ context.Context, _ []float32, _ int) ([]Candidate, error) {
	return f.candidates, f.err
}

type fakeJudge struct {
	reuse bool
	err   error
	calls int
}

func (f *fakeJudge) ShouldReuse(_ context.Context, _, _, _ string) (bool, error) {
	f.calls++
	return f.reuse, f.err
}

func defaultThresholds() Thresholds {
	return Thresholds{AutoReuse: 0.88, Judge: 0.82}
}

// embeddingWithCosine returns a 2-d unit vector at the given cosine to (1,0).
func embeddingWithCosine(sim float64) []float32 {
	theta := math.Acos(sim)
	return []float32{float32(math.Cos(theta)), float32(math.Sin(theta))}
}

func TestEvaluateAutoReuseSkipsJudge(t *testing.T) {
	// Same-length candidate, equal numbers, identical embedding: conf = 1.0.
	recall := &fakeRecall{candidates: []Candidate{{
		EntryID:   "tm-1",
		EnText:    "Start docker container",
		FaText:    "کانتینر داکر را اجرا کن",
		Embedding: []float32{1, 0},
	}}}
	judge := &fakeJudge{}
	engine := NewEngine(recall, judge, defaultThresholds())

	d, err := engine.Evaluate(context.Background(), "job-1", "Start Docker container", []float32{1, 0})
	require.NoError(t, err)

	assert.True(t, d.Reused)
	assert.False(t, d.NeedsTranslation)
	assert.Equal(t, "tm-1", d.EntryID)
	assert.Equal(t, "کانتینر داکر را اجرا کن", d.FaText)
	assert.GreaterOrEqual(t, d.Confidence, 0.88)
	assert.Zero(t, judge.calls, "judge must not run above the auto-reuse threshold")
}

func TestEvaluateBorderlineConsultsJudgeOnce(t *testing.T) {
	// sim=0.95, len_ratio=1, num_match=0 → conf = 0.8625, inside the judge band.
	recall := &fakeRecall{candidates: []Candidate{{
		EntryID:   "tm-2",
		EnText:    "Use port 9090",
		FaText:    "از پورت ۹۰۹۰ استفاده کن",
		Embedding: embeddingWithCosine(0.95),
	}}}

	t.Run("judge rejects", func(t *testing.T) {
		judge := &fakeJudge{reuse: false}
		engine := NewEngine(recall, judge, defaultThresholds())

		d, err := engine.Evaluate(context.Background(), "job-1", "Use port 8080", []float32{1, 0})
		require.NoError(t, err)

		assert.Equal(t, 1, judge.calls)
		assert.False(t, d.Reused)
		assert.True(t, d.NeedsTranslation)
		assert.InDelta(t, 0.8625, d.Confidence, 1e-4)
	})

	t.Run("judge accepts", func(t *testing.T) {
		judge := &fakeJudge{reuse: true}
		engine := NewEngine(recall, judge, defaultThresholds())

		d, err := engine.Evaluate(context.Background(), "job-1", "Use port 8080", []float32{1, 0})
		require.NoError(t, err)

		assert.Equal(t, 1, judge.calls)
		assert.True(t, d.Reused)
		assert.Equal(t, "tm-2", d.EntryID)
	})
}

func TestEvaluateLowConfidenceNeverCallsJudge(t *testing.T) {
	// Orthogonal embedding: sim = 0 → conf well below the judge threshold.
	recall := &fakeRecall{candidates: []Candidate{{
		EntryID:   "tm-3",
		EnText:    "Completely unrelated sentence",
		FaText:    "جملهٔ بی‌ربط",
		Embedding: []float32{0, 1},
	}}}
	judge := &fakeJudge{}
	engine := NewEngine(recall, judge, defaultThresholds())

	d, err := engine.Evaluate(context.Background(), "job-1", "Use port 8080", []float32{1, 0})
	require.NoError(t, err)

	assert.Zero(t, judge.calls)
	assert.True(t, d.NeedsTranslation)
	assert.False(t, d.Reused)
}

func TestEvaluateNoCandidates(t *testing.T) {
	engine := NewEngine(&fakeRecall{}, &fakeJudge{}, defaultThresholds())

	d, err := engine.Evaluate(context.Background(), "job-1", "Hello", []float32{1, 0})
	require.NoError(t, err)

	assert.True(t, d.NeedsTranslation)
	assert.False(t, d.HadCandidates)
	assert.Zero(t, d.Confidence)
}

func TestEvaluateRecallError(t *testing.T) {
	engine := NewEngine(&fakeRecall{err: errors.New("db down")}, &fakeJudge{}, defaultThresholds())

	_, err := engine.Evaluate(context.Background(), "job-1", "Hello", []float32{1, 0})
	require.Error(t, err)
}
