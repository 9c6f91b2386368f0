// Package retention periodically prunes aged-out rows: task audit records,
// feedback, and buffered SSE events.
package retention

import (
	"context"
	"log/slog"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
)

// Service runs the retention loop. Every pass is a batched hard delete, so
// it is idempotent and safe to run from multiple instances concurrently.
type Service struct {
	config   *config.RetentionConfig
	tasks    *services.TaskService
	feedback *services.FeedbackService
	events   *sse.PersistentEventBuffer

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service.
func NewService(
	cfg *config.RetentionConfig,
	tasks *services.TaskService,
	feedback *services.FeedbackService,
	events *sse.PersistentEventBuffer,
) *Service {
	return &Service{
		config:   cfg,
		tasks:    tasks,
		feedback: feedback,
		events:   events,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"feedback_retention_days", s.config.FeedbackRetentionDays,
		"sse_event_retention_days", s.config.SSEEventRetentionDays,
		"interval_hours", s.config.CleanupIntervalHours)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.pruneTasks(ctx)
	s.pruneFeedback(ctx)
	s.pruneSSEEvents(ctx)
}

func (s *Service) pruneTasks(ctx context.Context) {
	cutoff := daysAgo(s.config.TaskRetentionDays)
	count, err := s.tasks.DeleteTasksOlderThan(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		slog.Error("Retention: task pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old tasks", "count", count)
	}
}

func (s *Service) pruneFeedback(ctx context.Context) {
	cutoff := daysAgo(s.config.FeedbackRetentionDays)
	count, err := s.feedback.DeleteFeedbackOlderThan(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		slog.Error("Retention: feedback pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old feedback", "count", count)
	}
}

// pruneSSEEvents ages out buffered events regardless of their consumed
// flag: a backlog nobody ever reattached to still expires.
func (s *Service) pruneSSEEvents(ctx context.Context) {
	cutoff := daysAgo(s.config.SSEEventRetentionDays)
	count, err := s.events.DeleteEventsOlderThan(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		slog.Error("Retention: SSE event pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned buffered SSE events", "count", count)
	}
}

func daysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}
