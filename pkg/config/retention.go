package config

import (
	"log/slog"
	"time"
)

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// TaskRetentionDays is how many days to keep task audit rows and their
	// events before deletion.
	TaskRetentionDays int `yaml:"task_retention_days"`

	// FeedbackRetentionDays is how many days to keep feedback rows.
	FeedbackRetentionDays int `yaml:"feedback_retention_days"`

	// SSEEventRetentionDays is how many days to keep buffered SSE events.
	// Applies to consumed and unconsumed rows alike — backlogs that were
	// never reattached to are aged out.
	SSEEventRetentionDays int `yaml:"sse_event_retention_days"`

	// CleanupIntervalHours is how often the retention loop runs.
	CleanupIntervalHours int `yaml:"cleanup_interval_hours"`

	// BatchSize bounds each DELETE so pruning stays foreground-safe on
	// large tables.
	BatchSize int `yaml:"batch_size"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetentionDays:     90,
		FeedbackRetentionDays: 90,
		SSEEventRetentionDays: 30,
		CleanupIntervalHours:  12,
		BatchSize:             1000,
	}
}

// Validate clamps out-of-range values to their hard floors (or cap, for
// batch size) and warns, rather than failing startup.
func (c *RetentionConfig) Validate() {
	if c.TaskRetentionDays < 1 {
		slog.Warn("retention: task_retention_days below floor, clamping to 1",
			"configured", c.TaskRetentionDays)
		c.TaskRetentionDays = 1
	}
	if c.FeedbackRetentionDays < 1 {
		slog.Warn("retention: feedback_retention_days below floor, clamping to 1",
			"configured", c.FeedbackRetentionDays)
		c.FeedbackRetentionDays = 1
	}
	if c.SSEEventRetentionDays < 1 {
		slog.Warn("retention: sse_event_retention_days below floor, clamping to 1",
			"configured", c.SSEEventRetentionDays)
		c.SSEEventRetentionDays = 1
	}
	if c.CleanupIntervalHours < 1 {
		slog.Warn("retention: cleanup_interval_hours below floor, clamping to 1",
			"configured", c.CleanupIntervalHours)
		c.CleanupIntervalHours = 1
	}
	if c.BatchSize < 1 {
		slog.Warn("retention: batch_size below floor, clamping to 1",
			"configured", c.BatchSize)
		c.BatchSize = 1
	}
	if c.BatchSize > 10000 {
		slog.Warn("retention: batch_size above cap, clamping to 10000",
			"configured", c.BatchSize)
		c.BatchSize = 10000
	}
}

// CleanupInterval returns the loop interval as a duration.
func (c *RetentionConfig) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalHours) * time.Hour
}
