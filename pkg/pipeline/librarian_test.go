package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/pkg/config"
	"github.com/subtitle-ai/zirnevis/pkg/services"
	"github.com/subtitle-ai/zirnevis/pkg/tm"
)

type fakeTMStore struct {
	hashes   map[string]bool
	promoted []services.PromoteInput
}

func newFakeTMStore() *fakeTMStore {
	return &fakeTMStore{hashes: make(map[string]bool)}
}

func (f *fakeTMStore) HasHash(ctx context.Context, enHash string) (bool, error) {
	return f.hashes[enHash], nil
}

func (f *fakeTMStore) Promote(ctx context.Context, in services.PromoteInput) (bool, error) {
	if f.hashes[in.EnHash] {
		return false, nil
	}
	f.hashes[in.EnHash] = true
	f.promoted = append(f.promoted, in)
	return true, nil
}

type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) Embed(ctx context.Context, model string, texts []string) ([][]float32, error) {
	f.calls++
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func newLibrarianExecutor(store *fakeTMStore, emb *fakeEmbedder) *Executor {
	return NewExecutor(Deps{
		Config:   &config.Config{EmbeddingModel: "openai/text-embedding-3-large"},
		Embedder: emb,
		TMStore:  store,
	})
}

func TestShouldPromote(t *testing.T) {
	tests := []struct {
		name string
		cue  *ent.JobCue
		want bool
	}{
		{
			name: "high score no issues",
			cue:  &ent.JobCue{QaScore: floatPtr(92)},
			want: true,
		},
		{
			name: "score exactly at threshold",
			cue:  &ent.JobCue{QaScore: floatPtr(85)},
			want: true,
		},
		{
			name: "score below threshold",
			cue:  &ent.JobCue{QaScore: floatPtr(84.9)},
			want: false,
		},
		{
			name: "no score recorded",
			cue:  &ent.JobCue{},
			want: false,
		},
		{
			name: "meaning drift disqualifies",
			cue:  &ent.JobCue{QaScore: floatPtr(95), Issues: []string{"meaning_drift"}},
			want: false,
		},
		{
			name: "numbers mismatch disqualifies",
			cue:  &ent.JobCue{QaScore: floatPtr(95), Issues: []string{"numbers_mismatch"}},
			want: false,
		},
		{
			name: "cosmetic issue does not disqualify",
			cue:  &ent.JobCue{QaScore: floatPtr(90), Issues: []string{"punctuation"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldPromote(tt.cue))
		})
	}
}

func TestPromoteCuesStoresTrustedEntry(t *testing.T) {
	store := newFakeTMStore()
	emb := &fakeEmbedder{}
	e := newLibrarianExecutor(store, emb)

	cues := []*ent.JobCue{
		{
			EnText:   "The quarterly report is due Friday.",
			FaText:   strPtr("گزارش فصلی جمعه موعدش است."),
			FaTextQa: strPtr("گزارش فصلی تا جمعه موعد دارد."),
			QaScore:  floatPtr(93),
		},
	}

	promoted, err := e.promoteCues(context.Background(), []string{"business"}, cues)
	require.NoError(t, err)
	assert.Equal(t, 1, promoted)

	require.Len(t, store.promoted, 1)
	entry := store.promoted[0]
	assert.Equal(t, "The quarterly report is due Friday.", entry.EnText)
	assert.Equal(t, "گزارش فصلی تا جمعه موعد دارد.", entry.FaText, "polished text wins over raw translation")
	assert.Equal(t, tm.EnHash("The quarterly report is due Friday."), entry.EnHash)
	assert.Equal(t, []string{"business"}, entry.DomainTags)
	assert.Equal(t, 90, entry.Confidence)
	require.NotNil(t, entry.QAScore)
	assert.Equal(t, 93.0, *entry.QAScore)
	assert.NotEmpty(t, entry.Embedding)
}

func TestPromoteCuesRejectsLowQuality(t *testing.T) {
	store := newFakeTMStore()
	e := newLibrarianExecutor(store, &fakeEmbedder{})

	cues := []*ent.JobCue{
		{
			EnText:  "It was a dark and stormy night.",
			FaText:  strPtr("شبی تاریک و طوفانی بود."),
			QaScore: floatPtr(72),
		},
		{
			EnText:  "Revenue grew 40 percent.",
			FaText:  strPtr("درآمد چهل درصد رشد کرد."),
			QaScore: floatPtr(96),
			Issues:  []string{"numbers_mismatch"},
		},
		{
			EnText:  "Good cue, empty Persian.",
			FaText:  strPtr("   "),
			QaScore: floatPtr(96),
		},
	}

	promoted, err := e.promoteCues(context.Background(), nil, cues)
	require.NoError(t, err)
	assert.Zero(t, promoted)
	assert.Empty(t, store.promoted)
}

func TestPromoteCuesSkipsExistingHash(t *testing.T) {
	store := newFakeTMStore()
	emb := &fakeEmbedder{}
	e := newLibrarianExecutor(store, emb)

	cues := []*ent.JobCue{
		{
			EnText:   "Hello, world.",
			FaTextQa: strPtr("سلام، دنیا."),
			QaScore:  floatPtr(90),
		},
	}

	promoted, err := e.promoteCues(context.Background(), nil, cues)
	require.NoError(t, err)
	assert.Equal(t, 1, promoted)

	// A rerun of LIBRARIAN sees the hash already stored and inserts
	// nothing new.
	promoted, err = e.promoteCues(context.Background(), nil, cues)
	require.NoError(t, err)
	assert.Zero(t, promoted)
	assert.Len(t, store.promoted, 1)
	assert.Equal(t, 1, emb.calls, "no embedding computed for a known hash")
}

func TestPromoteCuesDeduplicatesWithinJob(t *testing.T) {
	store := newFakeTMStore()
	e := newLibrarianExecutor(store, &fakeEmbedder{})

	// Same English text twice; normalization makes the hashes collide.
	cues := []*ent.JobCue{
		{EnText: "See you tomorrow.", FaTextQa: strPtr("فردا می‌بینمت."), QaScore: floatPtr(91)},
		{EnText: "  see   you TOMORROW. ", FaTextQa: strPtr("فردا می‌بینمت."), QaScore: floatPtr(95)},
	}

	promoted, err := e.promoteCues(context.Background(), nil, cues)
	require.NoError(t, err)
	assert.Equal(t, 1, promoted)
}
