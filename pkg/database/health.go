package database

import (
	"context"
	"time"
)

// HealthStatus reports connectivity plus connection pool pressure.
type HealthStatus struct {
	Status         string `json:"status"`
	ResponseTimeMs int64  `json:"response_time_ms"`
	OpenConns      int    `json:"open_conns"`
	InUse          int    `json:"in_use"`
	Idle           int    `json:"idle"`
	WaitCount      int64  `json:"wait_count"`
	WaitMs         int64  `json:"wait_ms"`
	MaxOpenConns   int    `json:"max_open_conns"`
}

// Health pings the database and returns pool statistics.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	if err := c.db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:         "unhealthy",
			ResponseTimeMs: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()
	return &HealthStatus{
		Status:         "healthy",
		ResponseTimeMs: time.Since(start).Milliseconds(),
		OpenConns:      stats.OpenConnections,
		InUse:          stats.InUse,
		Idle:           stats.Idle,
		WaitCount:      stats.WaitCount,
		WaitMs:         stats.WaitDuration.Milliseconds(),
		MaxOpenConns:   stats.MaxOpenConnections,
	}, nil
}
