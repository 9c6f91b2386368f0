// Package monitor enforces execution time limits on background tasks and
// recovers orphans after a crash.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// Canceller issues best-effort cancellations to the owning agent.
// Implemented by dispatch.Dispatcher.
type Canceller interface {
	CancelTask(ctx context.Context, taskID, agentName, userID string) error
}

// BackgroundTaskMonitor sweeps running background tasks against their
// activity deadline and interrupts tasks orphaned by a restart.
type BackgroundTaskMonitor struct {
	config    *config.MonitorConfig
	tasks     *services.TaskService
	canceller Canceller

	recoverOnce sync.Once

	cancel context.CancelFunc
	done   chan struct{}
}

// NewBackgroundTaskMonitor creates a new monitor.
func NewBackgroundTaskMonitor(cfg *config.MonitorConfig, tasks *services.TaskService, canceller Canceller) *BackgroundTaskMonitor {
	return &BackgroundTaskMonitor{
		config:    cfg,
		tasks:     tasks,
		canceller: canceller,
	}
}

// RecoverInterrupted marks every background task that was running or
// pending with no end time as interrupted. Those tasks lost their
// in-process state to a crash and cannot be resumed. Idempotent; only the
// first call does work.
func (m *BackgroundTaskMonitor) RecoverInterrupted(ctx context.Context) error {
	var err error
	m.recoverOnce.Do(func() {
		err = m.recover(ctx)
	})
	return err
}

func (m *BackgroundTaskMonitor) recover(ctx context.Context) error {
	tasks, err := m.tasks.FindBackgroundTasksByStatus(ctx,
		services.TaskStatusRunning, services.TaskStatusPending)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	recovered := 0
	for _, t := range tasks {
		if t.EndTime != nil {
			continue
		}
		if err := m.tasks.MarkInterrupted(ctx, t.ID, now); err != nil {
			slog.Error("Failed to mark task interrupted", "task_id", t.ID, "error", err)
			continue
		}
		recovered++
	}
	if recovered > 0 {
		slog.Warn("Recovered orphaned background tasks", "count", recovered)
	}
	return nil
}

// Start launches the periodic timeout sweep.
func (m *BackgroundTaskMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go m.run(ctx)

	slog.Info("Background task monitor started",
		"sweep_interval", m.config.SweepInterval,
		"default_max_execution_time", m.config.DefaultMaxExecutionTime)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (m *BackgroundTaskMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	slog.Info("Background task monitor stopped")
}

func (m *BackgroundTaskMonitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

// sweep times out running background tasks whose last activity is older
// than their execution limit.
func (m *BackgroundTaskMonitor) sweep(ctx context.Context) {
	tasks, err := m.tasks.FindBackgroundTasksByStatus(ctx, services.TaskStatusRunning)
	if err != nil {
		slog.Error("Timeout sweep failed to list tasks", "error", err)
		return
	}

	now := time.Now().UnixMilli()
	for _, t := range tasks {
		if !m.expired(t, now) {
			continue
		}
		m.timeOut(ctx, t, now)
	}
}

func (m *BackgroundTaskMonitor) expired(t *ent.Task, nowMs int64) bool {
	lastActivity := t.StartTime
	if t.LastActivityTime != nil {
		lastActivity = *t.LastActivityTime
	}

	limit := m.config.DefaultMaxExecutionTime.Milliseconds()
	if t.MaxExecutionTimeMs != nil && *t.MaxExecutionTimeMs > 0 {
		limit = *t.MaxExecutionTimeMs
	}
	return nowMs-lastActivity > limit
}

// timeOut finalizes the task and then asks the owning agent to stop.
// Cancellation is best effort: a missing agent name skips it and a publish
// failure never rolls back the status change.
func (m *BackgroundTaskMonitor) timeOut(ctx context.Context, t *ent.Task, nowMs int64) {
	if err := m.tasks.FinalizeTask(ctx, t.ID, services.TaskStatusTimeout, nowMs); err != nil {
		slog.Error("Failed to time out task", "task_id", t.ID, "error", err)
		return
	}
	slog.Warn("Background task timed out", "task_id", t.ID)

	if t.AgentName == nil || *t.AgentName == "" {
		return
	}
	if err := m.canceller.CancelTask(ctx, t.ID, *t.AgentName, t.UserID); err != nil {
		slog.Warn("Failed to cancel timed-out task",
			"task_id", t.ID, "agent", *t.AgentName, "error", err)
	}
}
