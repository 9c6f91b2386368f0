package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
)

// JobRunner is the narrow container-orchestrator contract used in
// orchestrator-delegated mode. The database stays authoritative; the
// orchestrator only mirrors it.
type JobRunner interface {
	// EnsureCronJob creates or updates the recurring job for a task.
	EnsureCronJob(ctx context.Context, spec CronJobSpec) error

	// EnsureJob creates a one-shot job. Idempotent on name.
	EnsureJob(ctx context.Context, spec JobSpec) error

	// DeleteJob removes the cron job or job named after a task, if present.
	DeleteJob(ctx context.Context, name string) error
}

// CronJobSpec describes a recurring orchestrator job.
type CronJobSpec struct {
	Name      string
	Schedule  string // standard 5-field cron
	Timezone  string
	TaskID    string
	RunAsUser string
}

// JobSpec describes a one-shot orchestrator job.
type JobSpec struct {
	Name      string
	TaskID    string
	RunAsUser string
}

// Orchestrator reflects scheduled tasks into orchestrator jobs. It replaces
// the in-process engine when orchestrator delegation is configured: task
// mutations arrive through the same Notifier interface, plus a periodic
// full sync reconciles drift.
type Orchestrator struct {
	store  *Store
	runner JobRunner
}

// NewOrchestrator wires orchestrator delegation and registers for task
// mutations.
func NewOrchestrator(store *Store, runner JobRunner) *Orchestrator {
	o := &Orchestrator{store: store, runner: runner}
	store.SetNotifier(o)
	return o
}

// Run performs an initial sync then reconciles every interval until ctx is
// cancelled.
func (o *Orchestrator) Run(ctx context.Context, interval time.Duration) {
	o.Sync(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.Sync(ctx)
		}
	}
}

// Sync reflects every enabled task into the orchestrator. One-shot tasks
// whose scheduled time has already passed get an immediate job.
func (o *Orchestrator) Sync(ctx context.Context) {
	tasks, err := o.store.ListEnabled(ctx)
	if err != nil {
		slog.Error("Orchestrator sync failed to list tasks", "error", err)
		return
	}

	now := time.Now()
	for _, task := range tasks {
		if err := o.reflect(ctx, task, now); err != nil {
			slog.Error("Failed to reflect scheduled task",
				"scheduled_task_id", task.ID, "error", err)
		}
	}
	slog.Debug("Orchestrator sync complete", "task_count", len(tasks))
}

// TaskChanged reflects one created or updated task immediately.
func (o *Orchestrator) TaskChanged(task *ent.ScheduledTask) {
	ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
	defer cancel()

	if err := o.reflect(ctx, task, time.Now()); err != nil {
		slog.Error("Failed to reflect scheduled task",
			"scheduled_task_id", task.ID, "error", err)
	}
}

// TaskRemoved deletes the mirrored job.
func (o *Orchestrator) TaskRemoved(taskID string) {
	ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
	defer cancel()

	if err := o.runner.DeleteJob(ctx, jobName(taskID)); err != nil {
		slog.Error("Failed to delete orchestrator job",
			"scheduled_task_id", taskID, "error", err)
	}
}

func (o *Orchestrator) reflect(ctx context.Context, task *ent.ScheduledTask, now time.Time) error {
	trigger, err := ParseTrigger(string(task.ScheduleType), task.ScheduleExpression, task.Timezone, true)
	if err != nil {
		return err
	}

	switch trigger.Type {
	case ScheduleTypeOneTime:
		if task.LastRunAt != nil {
			return nil
		}
		next := trigger.Next(now)
		if !next.IsZero() && next.After(now) {
			// Not due yet; the periodic sync picks it up once it is.
			return nil
		}
		return o.runner.EnsureJob(ctx, JobSpec{
			Name:      jobName(task.ID),
			TaskID:    task.ID,
			RunAsUser: executionUserID(task),
		})

	case ScheduleTypeInterval:
		return o.runner.EnsureCronJob(ctx, CronJobSpec{
			Name:      jobName(task.ID),
			Schedule:  intervalToCron(task.ScheduleExpression),
			Timezone:  task.Timezone,
			TaskID:    task.ID,
			RunAsUser: executionUserID(task),
		})

	default:
		return o.runner.EnsureCronJob(ctx, CronJobSpec{
			Name:      jobName(task.ID),
			Schedule:  task.ScheduleExpression,
			Timezone:  task.Timezone,
			TaskID:    task.ID,
			RunAsUser: executionUserID(task),
		})
	}
}

// jobName derives the orchestrator object name from the task id.
func jobName(taskID string) string {
	return "scheduled-" + taskID
}

// intervalToCron rewrites an Ns|Nm|Nh|Nd interval into the closest cron
// expression. Sub-minute intervals never reach here: ParseTrigger rejects
// them in orchestrator mode.
func intervalToCron(expression string) string {
	interval, err := parseInterval(expression)
	if err != nil {
		return "* * * * *"
	}

	minutes := int(interval.Minutes())
	if minutes < 1 {
		minutes = 1
	}
	switch {
	case minutes < 60:
		return fmt.Sprintf("*/%d * * * *", minutes)
	case minutes%(24*60) == 0:
		return fmt.Sprintf("0 0 */%d * *", minutes/(24*60))
	case minutes%60 == 0:
		return fmt.Sprintf("0 */%d * * *", minutes/60)
	default:
		return fmt.Sprintf("*/%d */%d * * *", minutes%60, minutes/60)
	}
}
