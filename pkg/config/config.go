// Package config loads process configuration from environment variables.
// A .env file, when present, is loaded by main before this runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full runtime configuration.
type Config struct {
	AppEnv   string
	DataDir  string
	HTTPAddr string

	AssemblyAIAPIKey   string
	OpenRouterAPIKey   string
	OpenRouterBaseURL  string
	PicovoiceAccessKey string

	EmbeddingModel string
	EmbeddingDim   int

	TMAutoReuseThreshold float64
	TMJudgeThreshold     float64

	Subtitle             SubtitleConfig
	TranslationBatchSize int

	Models ModelsConfig
	Queue  QueueConfig
}

// SubtitleConfig is the subtitle shape snapshotted onto each job at
// creation time.
type SubtitleConfig struct {
	MaxLines        int
	MaxCharsPerLine int
	// TargetCPS is stored on the job but not consulted by the pipeline.
	TargetCPS float64
	MinCueMs  int
	MaxCueMs  int
}

// ModelsConfig names the model per agent plus its configured fallbacks.
// Fallback lists come from CSV environment values; some agents carry
// additional fixed fallbacks in code.
type ModelsConfig struct {
	StrategistLow          string
	StrategistHigh         string
	FallbackStrategistHigh []string

	TerminologistMid      string
	TerminologistHard     string
	FallbackTerminologist []string

	TranslatorEasy         string
	TranslatorMid          string
	TranslatorHard         string
	FallbackTranslatorMid  []string
	FallbackTranslatorHard []string

	QAEasy         string
	QAHard         string
	FallbackQAHard []string

	TMJudge string

	// Configured but not consulted by the pipeline; the librarian gate is
	// a pure filter.
	Librarian         string
	FallbackLibrarian []string
}

// QueueConfig controls how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines; each drives one job
	// at a time through the full stage machine.
	WorkerCount int

	// PollInterval is the base interval for checking queued jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration

	// HeartbeatInterval is how often a worker refreshes its claim.
	HeartbeatInterval time.Duration

	// StaleClaimAfter is how long a claim may go without a heartbeat
	// before startup recovery releases it.
	StaleClaimAfter time.Duration

	// GracefulShutdownTimeout bounds the wait for workers to release
	// their jobs during shutdown.
	GracefulShutdownTimeout time.Duration
}

// Load reads the configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:   getEnvOrDefault("APP_ENV", "local"),
		DataDir:  getEnvOrDefault("DATA_DIR", "/data"),
		HTTPAddr: getEnvOrDefault("HTTP_ADDR", ":8080"),

		AssemblyAIAPIKey:   os.Getenv("ASSEMBLYAI_API_KEY"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL:  getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		PicovoiceAccessKey: os.Getenv("PICOVOICE_ACCESS_KEY"),

		EmbeddingModel: getEnvOrDefault("EMBEDDING_MODEL", "openai/text-embedding-3-large"),
		EmbeddingDim:   getEnvIntOrDefault("EMBEDDING_DIM", 3072),

		TMAutoReuseThreshold: getEnvFloatOrDefault("TM_AUTO_REUSE_THRESHOLD", 0.88),
		TMJudgeThreshold:     getEnvFloatOrDefault("TM_JUDGE_THRESHOLD", 0.82),

		Subtitle: SubtitleConfig{
			MaxLines:        getEnvIntOrDefault("MAX_LINES", 2),
			MaxCharsPerLine: getEnvIntOrDefault("MAX_CHARS_PER_LINE", 42),
			TargetCPS:       getEnvFloatOrDefault("TARGET_CPS", 15.0),
			MinCueMs:        getEnvIntOrDefault("MIN_CUE_MS", 900),
			MaxCueMs:        getEnvIntOrDefault("MAX_CUE_MS", 6500),
		},
		TranslationBatchSize: getEnvIntOrDefault("TRANSLATION_BATCH_SIZE", 20),

		Models: ModelsConfig{
			StrategistLow:          getEnvOrDefault("MODEL_STRATEGIST_LOW", "google/gemini-3-flash"),
			StrategistHigh:         getEnvOrDefault("MODEL_STRATEGIST_HIGH", "deepseek/deepseek-r1-0528"),
			FallbackStrategistHigh: SplitModelsCSV(getEnvOrDefault("FALLBACK_STRATEGIST_HIGH", "google/gemini-3-pro,openai/gpt-5.2")),

			TerminologistMid:      getEnvOrDefault("MODEL_TERMINOLOGIST_MID", "deepseek/deepseek-v3.2"),
			TerminologistHard:     getEnvOrDefault("MODEL_TERMINOLOGIST_HARD", "deepseek/deepseek-r1-0528"),
			FallbackTerminologist: SplitModelsCSV(getEnvOrDefault("FALLBACK_TERMINOLOGIST", "google/gemini-3-pro,openai/gpt-5.2")),

			TranslatorEasy:         getEnvOrDefault("MODEL_TRANSLATOR_EASY", "anthropic/claude-haiku-4.5"),
			TranslatorMid:          getEnvOrDefault("MODEL_TRANSLATOR_MID", "google/gemini-3-pro"),
			TranslatorHard:         getEnvOrDefault("MODEL_TRANSLATOR_HARD", "openai/gpt-5.2"),
			FallbackTranslatorMid:  SplitModelsCSV(getEnvOrDefault("FALLBACK_TRANSLATOR_MID", "anthropic/claude-sonnet-4.5,openai/gpt-5.2")),
			FallbackTranslatorHard: SplitModelsCSV(getEnvOrDefault("FALLBACK_TRANSLATOR_HARD", "anthropic/claude-sonnet-4.5,deepseek/deepseek-r1-0528")),

			QAEasy:         getEnvOrDefault("MODEL_QA_EASY", "google/gemini-3-flash"),
			QAHard:         getEnvOrDefault("MODEL_QA_HARD", "google/gemini-3-pro"),
			FallbackQAHard: SplitModelsCSV(getEnvOrDefault("FALLBACK_QA_HARD", "anthropic/claude-sonnet-4.5,openai/gpt-5.2")),

			TMJudge: getEnvOrDefault("MODEL_TM_JUDGE", "google/gemini-3-flash"),

			Librarian:         getEnvOrDefault("MODEL_LIBRARIAN", "deepseek/deepseek-v3.2"),
			FallbackLibrarian: SplitModelsCSV(getEnvOrDefault("FALLBACK_LIBRARIAN", "deepseek/deepseek-r1-0528,google/gemini-3-pro")),
		},

		Queue: QueueConfig{
			WorkerCount:             getEnvIntOrDefault("WORKER_COUNT", 2),
			PollInterval:            getEnvDurationOrDefault("QUEUE_POLL_INTERVAL", time.Second),
			PollIntervalJitter:      getEnvDurationOrDefault("QUEUE_POLL_JITTER", 500*time.Millisecond),
			HeartbeatInterval:       getEnvDurationOrDefault("HEARTBEAT_INTERVAL", 30*time.Second),
			StaleClaimAfter:         getEnvDurationOrDefault("STALE_CLAIM_AFTER", 15*time.Minute),
			GracefulShutdownTimeout: getEnvDurationOrDefault("GRACEFUL_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.TranslationBatchSize < 1 {
		return fmt.Errorf("TRANSLATION_BATCH_SIZE must be >= 1, got %d", c.TranslationBatchSize)
	}
	if c.Subtitle.MaxLines < 1 || c.Subtitle.MaxCharsPerLine < 1 {
		return fmt.Errorf("subtitle shape must be positive, got max_lines=%d max_chars_per_line=%d",
			c.Subtitle.MaxLines, c.Subtitle.MaxCharsPerLine)
	}
	if c.Subtitle.MinCueMs < 0 || c.Subtitle.MaxCueMs <= c.Subtitle.MinCueMs {
		return fmt.Errorf("cue duration bounds invalid: min_cue_ms=%d max_cue_ms=%d",
			c.Subtitle.MinCueMs, c.Subtitle.MaxCueMs)
	}
	if c.TMJudgeThreshold > c.TMAutoReuseThreshold {
		return fmt.Errorf("TM_JUDGE_THRESHOLD (%.2f) must not exceed TM_AUTO_REUSE_THRESHOLD (%.2f)",
			c.TMJudgeThreshold, c.TMAutoReuseThreshold)
	}
	if c.EmbeddingDim < 1 {
		return fmt.Errorf("EMBEDDING_DIM must be positive, got %d", c.EmbeddingDim)
	}
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be >= 1, got %d", c.Queue.WorkerCount)
	}
	return nil
}

// SplitModelsCSV parses a comma-separated model list, dropping empty items.
func SplitModelsCSV(csv string) []string {
	var out []string
	for _, m := range strings.Split(csv, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloatOrDefault(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
