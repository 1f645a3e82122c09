package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterBaseURL)

	assert.Equal(t, "openai/text-embedding-3-large", cfg.EmbeddingModel)
	assert.Equal(t, 3072, cfg.EmbeddingDim)
	assert.Equal(t, 0.88, cfg.TMAutoReuseThreshold)
	assert.Equal(t, 0.82, cfg.TMJudgeThreshold)

	assert.Equal(t, 2, cfg.Subtitle.MaxLines)
	assert.Equal(t, 42, cfg.Subtitle.MaxCharsPerLine)
	assert.Equal(t, 900, cfg.Subtitle.MinCueMs)
	assert.Equal(t, 6500, cfg.Subtitle.MaxCueMs)
	assert.Equal(t, 20, cfg.TranslationBatchSize)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.PollIntervalJitter)
	assert.Equal(t, 15*time.Minute, cfg.Queue.StaleClaimAfter)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MAX_LINES", "3")
	t.Setenv("TRANSLATION_BATCH_SIZE", "5")
	t.Setenv("MODEL_TRANSLATOR_MID", "example/custom-model")
	t.Setenv("FALLBACK_TRANSLATOR_MID", "example/a, example/b")
	t.Setenv("QUEUE_POLL_INTERVAL", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Subtitle.MaxLines)
	assert.Equal(t, 5, cfg.TranslationBatchSize)
	assert.Equal(t, "example/custom-model", cfg.Models.TranslatorMid)
	assert.Equal(t, []string{"example/a", "example/b"}, cfg.Models.FallbackTranslatorMid)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.TranslationBatchSize = 0 },
			wantErr: "TRANSLATION_BATCH_SIZE",
		},
		{
			name:    "zero max lines",
			mutate:  func(c *Config) { c.Subtitle.MaxLines = 0 },
			wantErr: "subtitle shape",
		},
		{
			name:    "max cue not above min",
			mutate:  func(c *Config) { c.Subtitle.MaxCueMs = c.Subtitle.MinCueMs },
			wantErr: "cue duration bounds",
		},
		{
			name:    "judge threshold above auto reuse",
			mutate:  func(c *Config) { c.TMJudgeThreshold = 0.95 },
			wantErr: "TM_JUDGE_THRESHOLD",
		},
		{
			name:    "no workers",
			mutate:  func(c *Config) { c.Queue.WorkerCount = 0 },
			wantErr: "WORKER_COUNT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSplitModelsCSV(t *testing.T) {
	assert.Equal(t, []string{"a/x", "b/y"}, SplitModelsCSV("a/x,b/y"))
	assert.Equal(t, []string{"a/x", "b/y"}, SplitModelsCSV(" a/x , b/y ,"))
	assert.Nil(t, SplitModelsCSV(""))
	assert.Nil(t, SplitModelsCSV(" , ,"))
}
