package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/pkg/config"
	"github.com/subtitle-ai/zirnevis/pkg/llm"
	"github.com/subtitle-ai/zirnevis/pkg/subtitle"
	"github.com/subtitle-ai/zirnevis/pkg/tm"
	testdb "github.com/subtitle-ai/zirnevis/test/database"
)

func testShape() config.SubtitleConfig {
	return config.SubtitleConfig{
		MaxLines:        2,
		MaxCharsPerLine: 42,
		TargetCPS:       15.0,
		MinCueMs:        900,
		MaxCueMs:        6500,
	}
}

// testEmbedding returns a 3072-dim vector with a single hot axis, so
// cosine distances between different axes are maximal.
func testEmbedding(axis int) []float32 {
	v := make([]float32, 3072)
	v[axis] = 1
	return v
}

func TestJobLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	jobs := NewJobService(client.Client)

	jobID := uuid.New().String()
	j, err := jobs.CreateJob(ctx, CreateJobInput{
		ID:       jobID,
		InputURI: "/data/uploads/" + jobID + "__clip.mp4",
		Shape:    testShape(),
	})
	require.NoError(t, err)

	assert.Equal(t, job.StatusUploaded, j.Status)
	assert.Equal(t, job.QueueStateQueued, j.QueueState)
	assert.Equal(t, 2, j.MaxLines)
	assert.Equal(t, 42, j.MaxCharsPerLine)
	assert.Equal(t, "en", j.SourceLang)
	assert.Equal(t, "fa", j.TargetLang)

	// Duplicate id is rejected.
	_, err = jobs.CreateJob(ctx, CreateJobInput{ID: jobID, InputURI: "x", Shape: testShape()})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Stage transition and per-stage fields.
	require.NoError(t, jobs.SetStatus(ctx, jobID, job.StatusStrategy))
	require.NoError(t, jobs.SetRiskLevel(ctx, jobID, "medium"))
	require.NoError(t, jobs.SaveStrategy(ctx, jobID, StrategyInput{
		Genre:              "documentary",
		Tone:               "formal",
		DomainTags:         []string{"science"},
		DifficultyScore:    6,
		StrategistConf:     80,
		NeedsTerminologist: true,
	}))

	j, err = jobs.GetJob(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusStrategy, j.Status)
	require.NotNil(t, j.RiskLevel)
	assert.Equal(t, "medium", *j.RiskLevel)
	require.NotNil(t, j.DifficultyScore)
	assert.Equal(t, 6, *j.DifficultyScore)
	require.NotNil(t, j.NeedsTerminologist)
	assert.True(t, *j.NeedsTerminologist)

	// Unknown job maps to the sentinel.
	_, err = jobs.GetJob(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceCuesIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	jobs := NewJobService(client.Client)
	cues := NewCueService(client.Client)

	jobID := uuid.New().String()
	_, err := jobs.CreateJob(ctx, CreateJobInput{ID: jobID, InputURI: "x", Shape: testShape()})
	require.NoError(t, err)

	first := []subtitle.Segment{
		{StartMs: 0, EndMs: 900, Text: "Hello world."},
		{StartMs: 1400, EndMs: 2200, Text: "Next sentence."},
	}
	_, err = cues.ReplaceCues(ctx, jobID, first)
	require.NoError(t, err)

	// A rerun replaces, never appends.
	second := []subtitle.Segment{
		{StartMs: 0, EndMs: 1000, Text: "Hello again."},
	}
	_, err = cues.ReplaceCues(ctx, jobID, second)
	require.NoError(t, err)

	got, err := cues.ListCues(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].CueIndex)
	assert.Equal(t, "Hello again.", got[0].EnText)
	assert.True(t, got[0].NeedsTranslation)
}

func TestCueGatingTranslationAndQA(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	jobs := NewJobService(client.Client)
	cues := NewCueService(client.Client)

	jobID := uuid.New().String()
	_, err := jobs.CreateJob(ctx, CreateJobInput{ID: jobID, InputURI: "x", Shape: testShape()})
	require.NoError(t, err)

	inserted, err := cues.ReplaceCues(ctx, jobID, []subtitle.Segment{
		{StartMs: 0, EndMs: 900, Text: "Hello world."},
	})
	require.NoError(t, err)
	cueID := inserted[0].ID

	// Gating without reuse keeps the cue on the translation path.
	require.NoError(t, cues.ApplyTMDecision(ctx, cueID, tm.Decision{
		NeedsTranslation: true,
		Confidence:       0.41,
		HadCandidates:    true,
	}))

	require.NoError(t, cues.SetTranslation(ctx, cueID, "سلام دنیا."))

	score := 91.0
	require.NoError(t, cues.ApplyQA(ctx, cueID, QAInput{
		FaTextQA: "سلام، دنیا.",
		QAScore:  &score,
		Issues:   []string{},
	}))

	got, err := cues.ListCues(ctx, jobID)
	require.NoError(t, err)
	c := got[0]
	assert.False(t, c.TmReused)
	assert.True(t, c.NeedsTranslation)
	require.NotNil(t, c.TmConfidence)
	assert.InDelta(t, 0.41, *c.TmConfidence, 1e-9)
	require.NotNil(t, c.FaText)
	assert.Equal(t, "سلام دنیا.", *c.FaText)
	require.NotNil(t, c.FaTextQa)
	assert.Equal(t, "سلام، دنیا.", *c.FaTextQa)
	require.NotNil(t, c.QaScore)
	assert.Equal(t, 91.0, *c.QaScore)
	assert.Equal(t, []string{}, c.Issues)
}

func TestReplaceGlossaryDropsEmptyTerms(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	jobs := NewJobService(client.Client)
	glossary := NewGlossaryService(client.Client)

	jobID := uuid.New().String()
	_, err := jobs.CreateJob(ctx, CreateJobInput{ID: jobID, InputURI: "x", Shape: testShape()})
	require.NoError(t, err)

	conf := 85
	require.NoError(t, glossary.ReplaceGlossary(ctx, jobID, []TermInput{
		{EnTerm: "neural network", FaTerm: "شبکه عصبی", TermType: "jargon", Mandatory: true, Confidence: &conf},
		{EnTerm: "", FaTerm: "بی‌نام"},
	}))

	terms, err := glossary.ListGlossary(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "neural network", terms[0].EnTerm)
	require.NotNil(t, terms[0].TermType)
	assert.Equal(t, "jargon", *terms[0].TermType)

	// Replacement swaps the whole set.
	require.NoError(t, glossary.ReplaceGlossary(ctx, jobID, []TermInput{
		{EnTerm: "API", FaTerm: "رابط برنامه‌نویسی", Mandatory: true},
	}))
	terms, err = glossary.ListGlossary(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "API", terms[0].EnTerm)
}

func TestTMServicePromoteHasHashAndRecall(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	tms := NewTMService(client.Client, client.DB())

	score := 92.0
	inserted, err := tms.Promote(ctx, PromoteInput{
		EnText:     "Hello world.",
		FaText:     "سلام دنیا.",
		EnHash:     tm.EnHash("Hello world."),
		DomainTags: []string{"general"},
		QAScore:    &score,
		Confidence: 90,
		Embedding:  testEmbedding(0),
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same hash again: the unique constraint swallows the insert.
	inserted, err = tms.Promote(ctx, PromoteInput{
		EnText:     "Hello world.",
		FaText:     "سلام، دنیا.",
		EnHash:     tm.EnHash("Hello world."),
		Confidence: 90,
		Embedding:  testEmbedding(0),
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	exists, err := tms.HasHash(ctx, tm.EnHash("Hello world."))
	require.NoError(t, err)
	assert.True(t, exists)

	// A second entry on an orthogonal axis ranks behind the exact match.
	inserted, err = tms.Promote(ctx, PromoteInput{
		EnText:     "Goodbye.",
		FaText:     "خداحافظ.",
		EnHash:     tm.EnHash("Goodbye."),
		Confidence: 90,
		Embedding:  testEmbedding(1),
	})
	require.NoError(t, err)
	require.True(t, inserted)

	n, err := tms.CountEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cands, err := tms.TopK(ctx, testEmbedding(0), tm.TopK)
	require.NoError(t, err)
	require.Len(t, cands, 2)
	assert.Equal(t, "Hello world.", cands[0].EnText)
	assert.Equal(t, "سلام دنیا.", cands[0].FaText)
	assert.Equal(t, "Goodbye.", cands[1].EnText)
	assert.InDelta(t, 1.0, tm.CosineSimilarity(testEmbedding(0), cands[0].Embedding), 1e-6)
}

func TestLLMRunRecorder(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	jobs := NewJobService(client.Client)
	runs := NewLLMRunService(client.Client)

	jobID := uuid.New().String()
	_, err := jobs.CreateJob(ctx, CreateJobInput{ID: jobID, InputURI: "x", Shape: testShape()})
	require.NoError(t, err)

	runID, err := runs.BeginRun(ctx, llm.BeginRunInput{
		JobID:     jobID,
		AgentName: "strategist",
		Model:     "google/gemini-3-flash",
		Provider:  "openrouter",
		InputSHA:  "abc",
		Meta:      map[string]any{"risk_level": "low"},
	})
	require.NoError(t, err)

	// The row is born in error state.
	rows, err := runs.ListRunsForJob(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "error", string(rows[0].Status))

	start := time.Now()
	require.NoError(t, runs.MarkAttempt(ctx, runID, "deepseek/deepseek-v3.2", start))
	require.NoError(t, runs.MarkFailure(ctx, runID, "timeout", start.Add(time.Second)))
	require.NoError(t, runs.MarkSuccess(ctx, runID, llm.RunSuccessInput{
		Provider:         "openrouter",
		FinishedAt:       start.Add(2 * time.Second),
		OutputSHA:        "def",
		PromptTokens:     120,
		CompletionTokens: 40,
	}))

	rows, err = runs.ListRunsForJob(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	got := rows[0]
	assert.Equal(t, "success", string(got.Status))
	assert.Equal(t, "deepseek/deepseek-v3.2", got.Model)
	assert.Nil(t, got.ErrorMessage)
	require.NotNil(t, got.PromptTokens)
	assert.Equal(t, 120, *got.PromptTokens)
}
