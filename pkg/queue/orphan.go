package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/ent/job"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned claims.
// All pods run this independently, the release is idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.StaleClaimAfter / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndReleaseOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndReleaseOrphans finds running jobs whose heartbeat went stale
// and puts them back in the queue. The pipeline stage machine resumes
// them from their recorded stage, so releasing loses no work.
func (p *WorkerPool) detectAndReleaseOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.StaleClaimAfter)

	orphans, err := p.client.Job.Query().
		Where(
			job.QueueStateEQ(job.QueueStateRunning),
			job.HeartbeatAtNotNil(),
			job.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, j := range orphans {
		if err := releaseClaim(ctx, j); err != nil {
			slog.Error("Failed to release orphaned job", "job_id", j.ID, "error", err)
			continue
		}
		slog.Warn("Orphaned job released back to queue",
			"job_id", j.ID, "stage", j.Status, "old_claim", deref(j.ClaimedBy))
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// releaseClaim puts a running job back in the queue.
func releaseClaim(ctx context.Context, j *ent.Job) error {
	return j.Update().
		SetQueueState(job.QueueStateQueued).
		ClearClaimedBy().
		ClearHeartbeatAt().
		Exec(ctx)
}

// ReleaseStartupOrphans releases jobs still claimed by this pod's workers
// from a previous run. Called once during startup, before the worker pool
// begins processing; the released jobs are re-claimed and resumed.
func ReleaseStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.QueueStateEQ(job.QueueStateRunning),
			job.ClaimedByHasPrefix(podID+"-worker-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID, "count", len(orphans))

	for _, j := range orphans {
		if err := releaseClaim(ctx, j); err != nil {
			slog.Error("Failed to release startup orphan", "job_id", j.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan released", "job_id", j.ID, "stage", j.Status)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
