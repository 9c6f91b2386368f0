package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is the connection pool snapshot reported alongside health.
type PoolStats struct {
	Open         int   `json:"open_connections"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	WaitCount    int64 `json:"wait_count"`
	WaitDuration int64 `json:"wait_duration_ms"`
	MaxOpen      int   `json:"max_open_conns"`
}

// HealthStatus is the database portion of the /health payload.
type HealthStatus struct {
	Status       string    `json:"status"`
	ResponseTime int64     `json:"response_time_ms"`
	Pool         PoolStats `json:"pool"`
}

// Health pings the database and snapshots pool statistics. On ping failure
// the returned status is "unhealthy" and the error is non-nil.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	s := db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:         s.OpenConnections,
			InUse:        s.InUse,
			Idle:         s.Idle,
			WaitCount:    s.WaitCount,
			WaitDuration: s.WaitDuration.Milliseconds(),
			MaxOpen:      s.MaxOpenConnections,
		},
	}, nil
}
