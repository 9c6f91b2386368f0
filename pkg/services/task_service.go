package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
	"github.com/solacecommunity/agent-mesh-gateway/ent/task"
	"github.com/solacecommunity/agent-mesh-gateway/ent/taskevent"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
)

// Task audit statuses.
const (
	TaskStatusRunning     = "running"
	TaskStatusPending     = "pending"
	TaskStatusCompleted   = "completed"
	TaskStatusFailed      = "failed"
	TaskStatusCancelled   = "cancelled"
	TaskStatusTimeout     = "timeout"
	TaskStatusInterrupted = "interrupted"
)

// TaskSubmission captures what the dispatcher knows at publish time.
type TaskSubmission struct {
	TaskID             string
	UserID             string
	AgentName          string
	InitialRequestText string
	Background         bool
	MaxExecutionTimeMs int64
	StartTime          int64
}

// TaskService owns the task audit trail: one Task row per A2A task plus an
// append-only TaskEvent log of every bus message tied to it.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// RecordSubmission opens the audit record for a freshly dispatched task.
func (s *TaskService) RecordSubmission(httpCtx context.Context, rec TaskSubmission) error {
	if rec.TaskID == "" {
		return NewValidationError("task_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.Task.Create().
		SetID(rec.TaskID).
		SetUserID(rec.UserID).
		SetStartTime(rec.StartTime).
		SetStatus(TaskStatusRunning).
		SetBackgroundExecutionEnabled(rec.Background).
		SetLastActivityTime(rec.StartTime)
	if rec.AgentName != "" {
		create.SetAgentName(rec.AgentName)
	}
	if rec.InitialRequestText != "" {
		create.SetInitialRequestText(rec.InitialRequestText)
	}
	if rec.MaxExecutionTimeMs > 0 {
		create.SetMaxExecutionTimeMs(rec.MaxExecutionTimeMs)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return ClassifyDBError("record task submission", err)
	}
	return nil
}

// RecordEvent appends one bus message to the task's event log. Discovery
// traffic is never logged. The payload is sanitized so it always stores as
// valid JSON.
func (s *TaskService) RecordEvent(httpCtx context.Context, taskID, topic, direction string, payload map[string]any) error {
	if a2a.IsDiscoveryTopic(topic) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.TaskEvent.Create().
		SetID("event-" + uuid.New().String()).
		SetTaskID(taskID).
		SetTopic(topic).
		SetDirection(taskevent.Direction(direction)).
		SetPayload(a2a.SanitizeMap(payload)).
		SetCreatedTime(nowMs()).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// No parent Task row; the submission record failed or the task
			// belongs to another instance. The event is not worth failing
			// correlation over.
			return nil
		}
		return ClassifyDBError("record task event", err)
	}
	return nil
}

// TouchActivity advances lastActivityTime; the background monitor sweeps
// against it.
func (s *TaskService) TouchActivity(ctx context.Context, taskID string, atMs int64) error {
	err := s.client.Task.Update().
		Where(task.ID(taskID)).
		SetLastActivityTime(atMs).
		Exec(ctx)
	return ClassifyDBError("touch task activity", err)
}

// FinalizeTask closes the audit record with a terminal status.
func (s *TaskService) FinalizeTask(httpCtx context.Context, taskID, status string, endTimeMs int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Task.Update().
		Where(task.ID(taskID)).
		SetStatus(status).
		SetEndTime(endTimeMs).
		SetLastActivityTime(endTimeMs).
		Exec(ctx)
	return ClassifyDBError("finalize task", err)
}

// GetTask returns the audit record for taskID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, ClassifyDBError("get task", err)
	}
	return t, nil
}

// GetTaskStatus answers the background-status query used by reconnecting
// clients.
func (s *TaskService) GetTaskStatus(ctx context.Context, taskID string) (*models.TaskStatusResponse, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	isRunning := t.Status != nil &&
		(*t.Status == TaskStatusRunning || *t.Status == TaskStatusPending)
	return &models.TaskStatusResponse{
		Task:         models.NewTaskRecord(t),
		IsRunning:    isRunning,
		IsBackground: t.BackgroundExecutionEnabled,
		CanReconnect: t.BackgroundExecutionEnabled && (isRunning || t.HasBufferedEvents),
	}, nil
}

// GetTaskEvents returns the event log for replay, optionally after a
// timestamp, limited to limit entries (default 100). HasMore reports
// whether the window was truncated.
func (s *TaskService) GetTaskEvents(ctx context.Context, taskID string, sinceMs int64, limit int) (*models.TaskEventsResponse, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}

	preds := []predicate.TaskEvent{taskevent.TaskID(taskID)}
	if sinceMs > 0 {
		preds = append(preds, taskevent.CreatedTimeGT(sinceMs))
	}

	totalEvents, err := s.client.TaskEvent.Query().Where(preds...).Count(ctx)
	if err != nil {
		return nil, ClassifyDBError("count task events", err)
	}
	events, err := s.client.TaskEvent.Query().
		Where(preds...).
		Order(ent.Asc(taskevent.FieldCreatedTime)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, ClassifyDBError("list task events", err)
	}

	records := make([]models.TaskEventRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, models.NewTaskEventRecord(ev))
	}
	return &models.TaskEventsResponse{
		Task:        models.NewTaskRecord(t),
		Events:      records,
		TotalEvents: totalEvents,
		HasMore:     totalEvents > len(records),
	}, nil
}

// FindBackgroundTasksByStatus returns background tasks in any of the given
// statuses. The monitor uses this for startup recovery and timeout sweeps.
func (s *TaskService) FindBackgroundTasksByStatus(ctx context.Context, statuses ...string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(
			task.BackgroundExecutionEnabled(true),
			task.StatusIn(statuses...),
		).
		All(ctx)
	if err != nil {
		return nil, ClassifyDBError("find background tasks", err)
	}
	return tasks, nil
}

// ListActiveBackgroundTasks returns a user's running background tasks,
// newest first.
func (s *TaskService) ListActiveBackgroundTasks(ctx context.Context, userID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(
			task.UserID(userID),
			task.BackgroundExecutionEnabled(true),
			task.StatusIn(TaskStatusRunning, TaskStatusPending),
		).
		Order(ent.Desc(task.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, ClassifyDBError("list active background tasks", err)
	}
	return tasks, nil
}

// MarkInterrupted closes a task that lost its in-process state to a crash.
func (s *TaskService) MarkInterrupted(ctx context.Context, taskID string, atMs int64) error {
	return s.FinalizeTask(ctx, taskID, TaskStatusInterrupted, atMs)
}

// DeleteTasksOlderThan removes tasks whose startTime predates cutoff,
// batchSize at a time; task events follow by cascade. Returns the number of
// tasks deleted.
func (s *TaskService) DeleteTasksOlderThan(ctx context.Context, cutoff time.Time, batchSize int) (int, error) {
	cutoffMs := cutoff.UnixMilli()
	total := 0
	for {
		ids, err := s.client.Task.Query().
			Where(task.StartTimeLT(cutoffMs)).
			Limit(batchSize).
			IDs(ctx)
		if err != nil {
			return total, ClassifyDBError("select tasks for deletion", err)
		}
		if len(ids) == 0 {
			return total, nil
		}
		n, err := s.client.Task.Delete().
			Where(task.IDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return total, ClassifyDBError("delete tasks", err)
		}
		total += n
		if len(ids) < batchSize {
			return total, nil
		}
	}
}
