// Zirnevis server — accepts subtitle jobs over HTTP, runs the
// translation pipeline in background workers, and serves the produced
// artifacts.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/subtitle-ai/zirnevis/pkg/agents"
	"github.com/subtitle-ai/zirnevis/pkg/api"
	"github.com/subtitle-ai/zirnevis/pkg/asr"
	"github.com/subtitle-ai/zirnevis/pkg/audio"
	"github.com/subtitle-ai/zirnevis/pkg/config"
	"github.com/subtitle-ai/zirnevis/pkg/database"
	"github.com/subtitle-ai/zirnevis/pkg/llm"
	"github.com/subtitle-ai/zirnevis/pkg/pipeline"
	"github.com/subtitle-ai/zirnevis/pkg/queue"
	"github.com/subtitle-ai/zirnevis/pkg/services"
	"github.com/subtitle-ai/zirnevis/pkg/storage"
	"github.com/subtitle-ai/zirnevis/pkg/tm"
	"github.com/subtitle-ai/zirnevis/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica claim
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()
	slog.Info("Starting zirnevis", "version", version.Full(), "pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (connects, migrates, ensures pgvector)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Storage layout
	store := storage.New(cfg.DataDir)
	if err := store.EnsureDirs(); err != nil {
		slog.Error("Failed to prepare data directories", "data_dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	// 4. One-time release of claims left over from a previous run
	if err := queue.ReleaseStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to release startup orphans", "error", err)
		// Non-fatal, the periodic scan catches them too
	}

	// 5. Services over the ent client
	jobService := services.NewJobService(dbClient.Client)
	cueService := services.NewCueService(dbClient.Client)
	glossaryService := services.NewGlossaryService(dbClient.Client)
	tmService := services.NewTMService(dbClient.Client, dbClient.DB())
	llmRunService := services.NewLLMRunService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. LLM provider, router, agents, TM gate
	llmClient := llm.NewClient(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL)
	router := llm.NewRouter(llmClient, llmRunService)
	agentSet := agents.New(router, cfg.Models)
	gate := tm.NewEngine(tmService, agentSet, tm.Thresholds{
		AutoReuse: cfg.TMAutoReuseThreshold,
		Judge:     cfg.TMJudgeThreshold,
	})

	// 7. Pipeline executor
	executor := pipeline.NewExecutor(pipeline.Deps{
		Config:   cfg,
		Store:    store,
		Audio:    audio.NewNormalizer(cfg.PicovoiceAccessKey),
		ASR:      asr.NewClient(cfg.AssemblyAIAPIKey),
		Embedder: llmClient,
		Agents:   agentSet,
		Gate:     gate,
		TMStore:  tmService,
		Jobs:     jobService,
		Cues:     cueService,
		Glossary: glossaryService,
	})

	// 8. Worker pool (before HTTP, so queued jobs resume immediately)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, &cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. HTTP server
	apiServer := api.NewServer(cfg, dbClient, store, jobService, workerPool)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Zirnevis started", "pod_id", podID, "workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: HTTP first so no new jobs arrive, then the
	// workers with a grace period, then the DB via the deferred close.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — running jobs will be released by orphan recovery")
	}

	slog.Info("Shutdown complete")
}
