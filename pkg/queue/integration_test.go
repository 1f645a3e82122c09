package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/ent/job"
	"github.com/subtitle-ai/zirnevis/pkg/config"
	testdb "github.com/subtitle-ai/zirnevis/test/database"
)

// createTestJob inserts a freshly uploaded job in queued state.
func createTestJob(ctx context.Context, t *testing.T, client *ent.Client) *ent.Job {
	t.Helper()
	id := uuid.New().String()
	j, err := client.Job.Create().
		SetID(id).
		SetInputURI("/data/uploads/" + id + "__clip.mp4").
		Save(ctx)
	require.NoError(t, err)
	return j
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      0,
		HeartbeatInterval:       30 * time.Second,
		StaleClaimAfter:         2 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a queued job.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	created := createTestJob(ctx, t, client)

	cfg := intTestQueueConfig()
	w := NewWorker("test-pod-worker-0", "test-pod", client, cfg, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the queued job")
	assert.Equal(t, created.ID, claimed.ID)
	assert.Equal(t, job.QueueStateRunning, claimed.QueueState)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "test-pod-worker-0", *claimed.ClaimedBy)
	require.NotNil(t, claimed.HeartbeatAt)
	assert.WithinDuration(t, time.Now(), *claimed.HeartbeatAt, time.Minute)

	// Second claim should return ErrNoJobsAvailable
	claimed2, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	assert.Nil(t, claimed2, "no more queued jobs should be available")
}

// TestClaimOrderIsFIFO tests that the oldest queued job is claimed first.
func TestClaimOrderIsFIFO(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	old, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetInputURI("/data/uploads/old.mp4").
		SetCreatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	createTestJob(ctx, t, client)

	cfg := intTestQueueConfig()
	w := NewWorker("test-pod-worker-0", "test-pod", client, cfg, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, old.ID, claimed.ID, "the older job should be claimed first")
}

// TestConcurrentClaimsDifferentJobs tests that concurrent workers claim different jobs.
func TestConcurrentClaimsDifferentJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		j := createTestJob(ctx, t, client)
		jobIDs[j.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("test-pod-worker-%d", workerID), "test-pod", client, cfg, nil)
			j, err := w.claimNextJob(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, j.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 jobs should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 jobs should be claimed")
	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := jobIDs[id]
		assert.True(t, ok, "claimed job %s was not in original set", id)
	}
}

// TestOrphanRelease tests that stale running claims go back to the queue.
func TestOrphanRelease(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Simulate a crashed worker: running, stale heartbeat, mid-pipeline.
	staleBeat := time.Now().Add(-10 * time.Minute)
	orphan, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetInputURI("/data/uploads/orphan.mp4").
		SetStatus(job.StatusTranslate).
		SetQueueState(job.QueueStateRunning).
		SetClaimedBy("crashed-pod-worker-0").
		SetHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	// A fresh claim must survive the sweep.
	fresh, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetInputURI("/data/uploads/fresh.mp4").
		SetQueueState(job.QueueStateRunning).
		SetClaimedBy("live-pod-worker-0").
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.StaleClaimAfter = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
	}

	require.NoError(t, pool.detectAndReleaseOrphans(ctx))

	// The orphan is queued again with its stage intact, so the pipeline
	// resumes from TRANSLATE instead of starting over.
	updated, err := client.Job.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, job.QueueStateQueued, updated.QueueState)
	assert.Equal(t, job.StatusTranslate, updated.Status)
	assert.Nil(t, updated.ClaimedBy)
	assert.Nil(t, updated.HeartbeatAt)

	untouched, err := client.Job.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, job.QueueStateRunning, untouched.QueueState)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestReleaseStartupOrphans tests the one-time startup claim release.
func TestReleaseStartupOrphans(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	for i := 0; i < 3; i++ {
		_, err := client.Job.Create().
			SetID(uuid.New().String()).
			SetInputURI("/data/uploads/mine.mp4").
			SetQueueState(job.QueueStateRunning).
			SetClaimedBy(fmt.Sprintf("%s-worker-%d", podID, i)).
			SetHeartbeatAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}

	// Another pod's claim must not be touched.
	other, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetInputURI("/data/uploads/other.mp4").
		SetQueueState(job.QueueStateRunning).
		SetClaimedBy("other-pod-worker-0").
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, ReleaseStartupOrphans(ctx, client, podID))

	queued, err := client.Job.Query().
		Where(job.QueueStateEQ(job.QueueStateQueued)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, queued, "this pod's claims should be released")

	untouched, err := client.Job.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, job.QueueStateRunning, untouched.QueueState)
	require.NotNil(t, untouched.ClaimedBy)
	assert.Equal(t, "other-pod-worker-0", *untouched.ClaimedBy)
}

// mockExecutor counts executions and tracks which jobs were processed.
type mockExecutor struct {
	processed atomic.Int64
	jobs      sync.Map // string → struct{}
	failIDs   sync.Map // string → struct{}; jobs that should fail
}

func (m *mockExecutor) Execute(ctx context.Context, j *ent.Job) error {
	m.processed.Add(1)
	m.jobs.Store(j.ID, struct{}{})

	select {
	case <-time.After(20 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}

	if _, fail := m.failIDs.Load(j.ID); fail {
		return errors.New("pipeline stage failed")
	}
	return nil
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	executor := &mockExecutor{}
	for i := 0; i < 3; i++ {
		j := createTestJob(ctx, t, client)
		if i == 2 {
			executor.failIDs.Store(j.ID, struct{}{})
		}
	}

	cfg := intTestQueueConfig()
	pool := NewWorkerPool("test-pod", client, cfg, executor)
	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for jobs to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	done, err := client.Job.Query().
		Where(job.QueueStateEQ(job.QueueStateDone)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, done, "successful jobs end in done")

	failed, err := client.Job.Query().
		Where(job.QueueStateEQ(job.QueueStateFailed)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failed, "the failing job ends in failed")

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.True(t, health.DBReachable)
}
