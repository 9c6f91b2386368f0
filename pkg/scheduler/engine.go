package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// Publisher is the bus write surface the engine needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte, headers map[string]string) error
}

// fireTimeout bounds the DB and publish work of a single firing.
const fireTimeout = 30 * time.Second

// Engine runs the triggers of the leading instance. It holds one cron
// runner whose entries mirror the enabled tasks in the store; Store
// mutations reach it through the Notifier interface. Followers keep the
// engine constructed but idle.
type Engine struct {
	store     *Store
	client    *ent.Client
	publisher Publisher
	elector   *LeaderElector

	namespace  string
	instanceID string
	mode       string

	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]cron.EntryID
	leading bool
}

// NewEngine wires an engine and registers it for leadership transitions.
func NewEngine(store *Store, client *ent.Client, publisher Publisher, elector *LeaderElector, namespace, instanceID, mode string) *Engine {
	e := &Engine{
		store:      store,
		client:     client,
		publisher:  publisher,
		elector:    elector,
		namespace:  namespace,
		instanceID: instanceID,
		mode:       mode,
		entries:    make(map[string]cron.EntryID),
	}
	store.SetNotifier(e)
	elector.OnPromote = e.onPromote
	elector.OnDemote = e.onDemote
	return e
}

// triggerSchedule adapts a Trigger to the cron runner. A spent one_time
// trigger returns the zero time, which retires the entry.
type triggerSchedule struct {
	trigger *Trigger
}

func (s triggerSchedule) Next(t time.Time) time.Time {
	return s.trigger.Next(t)
}

// onPromote loads every enabled task and starts firing.
func (e *Engine) onPromote(ctx context.Context) {
	tasks, err := e.store.ListEnabled(ctx)
	if err != nil {
		slog.Error("Failed to load scheduled tasks on promotion", "error", err)
		tasks = nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cron = cron.New()
	e.entries = make(map[string]cron.EntryID)
	for _, task := range tasks {
		e.scheduleLocked(task)
	}
	e.cron.Start()
	e.leading = true
	slog.Info("Scheduler engine started", "instance_id", e.instanceID, "task_count", len(e.entries))
}

// onDemote stops the runner. In-flight firings finish; their results are
// collected by whichever instance leads when the agent replies.
func (e *Engine) onDemote(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cron != nil {
		e.cron.Stop()
		e.cron = nil
	}
	e.entries = make(map[string]cron.EntryID)
	e.leading = false
	slog.Info("Scheduler engine stopped", "instance_id", e.instanceID)
}

// TaskChanged reschedules a created or updated task. No-op on followers.
func (e *Engine) TaskChanged(task *ent.ScheduledTask) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.leading {
		return
	}
	if id, ok := e.entries[task.ID]; ok {
		e.cron.Remove(id)
		delete(e.entries, task.ID)
	}
	e.scheduleLocked(task)
}

// TaskRemoved unschedules a disabled or deleted task. No-op on followers.
func (e *Engine) TaskRemoved(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.leading {
		return
	}
	if id, ok := e.entries[taskID]; ok {
		e.cron.Remove(id)
		delete(e.entries, taskID)
	}
}

// scheduleLocked adds one cron entry for task. Triggers were validated on
// write, so a parse failure here means the row was corrupted out of band.
func (e *Engine) scheduleLocked(task *ent.ScheduledTask) {
	trigger, err := ParseTrigger(string(task.ScheduleType), task.ScheduleExpression, task.Timezone, e.mode == "orchestrator")
	if err != nil {
		slog.Error("Stored schedule no longer parses, skipping task",
			"scheduled_task_id", task.ID, "error", err)
		return
	}
	taskID := task.ID
	entryID := e.cron.Schedule(triggerSchedule{trigger}, cron.FuncJob(func() {
		e.fire(taskID)
	}))
	e.entries[taskID] = entryID
}

// fire runs one scheduled firing: reload the definition, skip when a prior
// firing is still in flight, then dispatch.
func (e *Engine) fire(taskID string) {
	ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
	defer cancel()

	task, err := e.loadEnabled(ctx, taskID)
	if err != nil {
		slog.Error("Failed to load scheduled task for firing", "scheduled_task_id", taskID, "error", err)
		return
	}
	if task == nil {
		// Disabled or deleted since scheduling; drop the entry.
		e.TaskRemoved(taskID)
		return
	}

	active, err := e.hasActiveExecution(ctx, taskID)
	if err != nil {
		slog.Error("Failed to check in-flight executions", "scheduled_task_id", taskID, "error", err)
		return
	}
	if active {
		slog.Warn("Skipping firing, previous execution still in flight", "scheduled_task_id", taskID)
		return
	}

	if _, err := e.dispatch(ctx, task, time.Now()); err != nil {
		slog.Error("Scheduled firing failed", "scheduled_task_id", taskID, "error", err)
	}
}

// RunNow fires the task immediately on behalf of userID, bypassing the
// trigger. Works on followers too; only the timer lives on the leader.
func (e *Engine) RunNow(ctx context.Context, userID, taskID string) (*ent.ScheduledTaskExecution, error) {
	task, err := e.store.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	return e.dispatch(ctx, task, time.Now())
}

// dispatch creates the execution record and publishes the A2A request. The
// execution ends up running on success and failed when the publish or the
// request build fails.
func (e *Engine) dispatch(ctx context.Context, task *ent.ScheduledTask, scheduledFor time.Time) (*ent.ScheduledTaskExecution, error) {
	executionID := "exec-" + uuid.NewString()
	a2aTaskID := "task-" + uuid.NewString()

	execution, err := e.client.ScheduledTaskExecution.Create().
		SetID(executionID).
		SetScheduledTaskID(task.ID).
		SetStatus(scheduledtaskexecution.StatusPending).
		SetA2aTaskID(a2aTaskID).
		SetScheduledFor(scheduledFor.UnixMilli()).
		Save(ctx)
	if err != nil {
		return nil, classifyErr("create execution", err)
	}

	payload, err := e.buildRequest(task, a2aTaskID)
	if err != nil {
		return e.failExecution(ctx, execution, err)
	}

	headers := map[string]string{
		bus.HeaderReplyTo: a2a.SchedulerResponseTopic(e.namespace, e.instanceID),
		bus.HeaderUserID:  executionUserID(task),
	}
	topic := a2a.AgentRequestTopic(e.namespace, task.TargetAgentName)
	if err := e.publisher.Publish(ctx, topic, payload, headers); err != nil {
		return e.failExecution(ctx, execution, fmt.Errorf("%w: %v", services.ErrUpstreamUnavailable, err))
	}

	execution, err = execution.Update().
		SetStatus(scheduledtaskexecution.StatusRunning).
		SetStartedAt(time.Now().UnixMilli()).
		Save(ctx)
	if err != nil {
		return nil, classifyErr("mark execution running", err)
	}

	if err := e.recordFired(ctx, task, scheduledFor); err != nil {
		slog.Warn("Failed to advance run timestamps", "scheduled_task_id", task.ID, "error", err)
	}

	slog.Info("Scheduled task fired",
		"scheduled_task_id", task.ID, "execution_id", executionID,
		"a2a_task_id", a2aTaskID, "agent", task.TargetAgentName)
	return execution, nil
}

// buildRequest assembles the message/send payload. Every firing runs in a
// fresh context with RUN_BASED session behavior so the agent returns its
// full result in the final status message.
func (e *Engine) buildRequest(task *ent.ScheduledTask, a2aTaskID string) ([]byte, error) {
	parts, err := decodeParts(task.TaskMessage)
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]any, len(task.TaskMetadata)+1)
	for k, v := range task.TaskMetadata {
		metadata[k] = v
	}
	metadata["sessionBehavior"] = a2a.SessionBehaviorRunBased

	msg := a2a.Message{
		Kind:      a2a.KindMessage,
		MessageID: uuid.NewString(),
		Role:      "user",
		Parts:     parts,
		TaskID:    a2aTaskID,
		ContextID: "ctx-" + uuid.NewString(),
		Metadata:  metadata,
	}
	req, err := a2a.NewRequest(a2aTaskID, a2a.MethodSendMessage, a2a.MessageSendParams{Message: msg})
	if err != nil {
		return nil, err
	}
	return req.Marshal()
}

// recordFired advances last_run_at and next_run_at. A one_time task is
// disabled after its single firing.
func (e *Engine) recordFired(ctx context.Context, task *ent.ScheduledTask, firedAt time.Time) error {
	update := task.Update().SetLastRunAt(firedAt.UnixMilli())

	if task.ScheduleType == "one_time" {
		update.SetEnabled(false).ClearNextRunAt()
	} else {
		trigger, err := ParseTrigger(string(task.ScheduleType), task.ScheduleExpression, task.Timezone, e.mode == "orchestrator")
		if err == nil {
			if next := trigger.Next(firedAt); !next.IsZero() {
				update.SetNextRunAt(next.UnixMilli())
			}
		}
	}
	if err := update.Exec(ctx); err != nil {
		return classifyErr("record firing", err)
	}
	if task.ScheduleType == "one_time" {
		e.TaskRemoved(task.ID)
	}
	return nil
}

func (e *Engine) failExecution(ctx context.Context, execution *ent.ScheduledTaskExecution, cause error) (*ent.ScheduledTaskExecution, error) {
	failed, err := execution.Update().
		SetStatus(scheduledtaskexecution.StatusFailed).
		SetErrorMessage(cause.Error()).
		SetCompletedAt(time.Now().UnixMilli()).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to mark execution failed",
			"execution_id", execution.ID, "error", err, "cause", cause)
		return execution, cause
	}
	return failed, cause
}

// loadEnabled returns the task if it is still enabled and not deleted, nil
// otherwise.
func (e *Engine) loadEnabled(ctx context.Context, taskID string) (*ent.ScheduledTask, error) {
	tasks, err := e.store.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == taskID {
			return t, nil
		}
	}
	return nil, nil
}

func (e *Engine) hasActiveExecution(ctx context.Context, taskID string) (bool, error) {
	exists, err := e.client.ScheduledTaskExecution.Query().
		Where(
			scheduledtaskexecution.ScheduledTaskID(taskID),
			scheduledtaskexecution.StatusIn(
				scheduledtaskexecution.StatusPending,
				scheduledtaskexecution.StatusRunning,
			),
		).
		Exist(ctx)
	if err != nil {
		return false, classifyErr("check active executions", err)
	}
	return exists, nil
}

// Status answers the scheduler status query on any instance.
func (e *Engine) Status(ctx context.Context) (*models.SchedulerStatus, error) {
	running, err := e.client.ScheduledTaskExecution.Query().
		Where(scheduledtaskexecution.StatusIn(
			scheduledtaskexecution.StatusPending,
			scheduledtaskexecution.StatusRunning,
		)).
		Count(ctx)
	if err != nil {
		return nil, classifyErr("count running executions", err)
	}

	leaderID := e.elector.CurrentLeader(ctx)

	e.mu.Lock()
	isLeader := e.leading
	active := len(e.entries)
	e.mu.Unlock()

	return &models.SchedulerStatus{
		IsLeader:          isLeader,
		LeaderID:          leaderID,
		ActiveTaskCount:   active,
		RunningExecutions: running,
		Mode:              e.mode,
	}, nil
}

// executionUserID resolves the user a firing runs as: the owner, or the
// creator for namespace-level tasks.
func executionUserID(task *ent.ScheduledTask) string {
	if task.UserID != nil && *task.UserID != "" {
		return *task.UserID
	}
	return task.CreatedBy
}

// decodeParts converts the stored JSON part objects into typed parts.
func decodeParts(raw []map[string]any) ([]a2a.Part, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task message: %w", err)
	}
	var parts []a2a.Part
	if err := json.Unmarshal(buf, &parts); err != nil {
		return nil, fmt.Errorf("failed to decode task message parts: %w", err)
	}
	if len(parts) == 0 {
		return nil, services.NewValidationError("taskMessage", "must contain at least one part")
	}
	return parts, nil
}
