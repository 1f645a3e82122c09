// Package queue drives queued jobs through the pipeline using the jobs
// table itself as the queue.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/subtitle-ai/zirnevis/ent"
)

// ErrNoJobsAvailable indicates no queued jobs were found on a poll.
var ErrNoJobsAvailable = errors.New("no jobs available")

// JobExecutor is the interface for job processing.
//
// The executor owns the ENTIRE pipeline internally: it resumes from the
// job's recorded stage, persists every transition, and writes the error
// message itself when a stage fails. The worker only handles claiming,
// heartbeat, and the terminal queue_state update.
type JobExecutor interface {
	Execute(ctx context.Context, j *ent.Job) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	RunningJobs      int            `json:"running_jobs"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
