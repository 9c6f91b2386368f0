package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtask"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// Notifier is told about task mutations so the running engine can follow
// the database. All methods are no-ops on followers.
type Notifier interface {
	TaskChanged(task *ent.ScheduledTask)
	TaskRemoved(taskID string)
}

// Store owns scheduled-task CRUD, including authorization and trigger
// validation. The engine reads from it on promotion and is notified of
// changes while leading.
type Store struct {
	client           *ent.Client
	namespace        string
	orchestratorMode bool
	notifier         Notifier
}

// NewStore creates a Store for one namespace.
func NewStore(client *ent.Client, namespace string, orchestratorMode bool) *Store {
	return &Store{client: client, namespace: namespace, orchestratorMode: orchestratorMode}
}

// SetNotifier attaches the engine. Must be called before the HTTP surface
// starts mutating tasks.
func (s *Store) SetNotifier(n Notifier) {
	s.notifier = n
}

// canAccess rejects when the requesting user neither owns the task nor the
// task is namespace-level.
func canAccess(task *ent.ScheduledTask, userID string) error {
	if task.UserID == nil || *task.UserID == userID {
		return nil
	}
	return services.ErrForbidden
}

// Create validates and persists a new scheduled task.
func (s *Store) Create(ctx context.Context, userID string, req models.CreateScheduledTaskRequest) (*ent.ScheduledTask, error) {
	if req.Name == "" {
		return nil, services.NewValidationError("name", "required")
	}
	if req.TargetAgentName == "" {
		return nil, services.NewValidationError("targetAgentName", "required")
	}
	if len(req.TaskMessage) == 0 {
		return nil, services.NewValidationError("taskMessage", "required")
	}
	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	trigger, err := ParseTrigger(req.ScheduleType, req.ScheduleExpression, timezone, s.orchestratorMode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	create := s.client.ScheduledTask.Create().
		SetID("sched-" + uuid.New().String()).
		SetName(req.Name).
		SetNamespace(s.namespace).
		SetCreatedBy(userID).
		SetScheduleType(scheduledtask.ScheduleType(req.ScheduleType)).
		SetScheduleExpression(req.ScheduleExpression).
		SetTimezone(timezone).
		SetTargetAgentName(req.TargetAgentName).
		SetTaskMessage(req.TaskMessage).
		SetCreatedAt(now.UnixMilli()).
		SetUpdatedAt(now.UnixMilli())
	if !req.NamespaceLevel {
		create.SetUserID(userID)
	}
	if req.TaskMetadata != nil {
		create.SetTaskMetadata(req.TaskMetadata)
	}
	if req.Enabled != nil {
		create.SetEnabled(*req.Enabled)
	}
	if req.MaxRetries > 0 {
		create.SetMaxRetries(req.MaxRetries)
	}
	if req.RetryDelaySeconds > 0 {
		create.SetRetryDelaySeconds(req.RetryDelaySeconds)
	}
	if req.TimeoutSeconds > 0 {
		create.SetTimeoutSeconds(req.TimeoutSeconds)
	}
	if next := trigger.Next(now); !next.IsZero() {
		create.SetNextRunAt(next.UnixMilli())
	}

	task, err := create.Save(ctx)
	if err != nil {
		return nil, classifyErr("create scheduled task", err)
	}
	if s.notifier != nil && task.Enabled {
		s.notifier.TaskChanged(task)
	}
	return task, nil
}

// Get returns the task after an ownership check.
func (s *Store) Get(ctx context.Context, userID, id string) (*ent.ScheduledTask, error) {
	task, err := s.client.ScheduledTask.Query().
		Where(
			scheduledtask.ID(id),
			scheduledtask.Namespace(s.namespace),
			scheduledtask.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, classifyErr("get scheduled task", err)
	}
	if err := canAccess(task, userID); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns the user's tasks plus namespace-level ones, newest first.
func (s *Store) List(ctx context.Context, userID string) ([]*ent.ScheduledTask, error) {
	tasks, err := s.client.ScheduledTask.Query().
		Where(
			scheduledtask.Namespace(s.namespace),
			scheduledtask.DeletedAtIsNil(),
			scheduledtask.Or(
				scheduledtask.UserID(userID),
				scheduledtask.UserIDIsNil(),
			),
		).
		Order(ent.Desc(scheduledtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, classifyErr("list scheduled tasks", err)
	}
	return tasks, nil
}

// ListEnabled returns every enabled, non-deleted task in the namespace.
// The engine loads these on promotion.
func (s *Store) ListEnabled(ctx context.Context) ([]*ent.ScheduledTask, error) {
	tasks, err := s.client.ScheduledTask.Query().
		Where(
			scheduledtask.Namespace(s.namespace),
			scheduledtask.Enabled(true),
			scheduledtask.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, classifyErr("list enabled scheduled tasks", err)
	}
	return tasks, nil
}

// Update patches a task, re-validating the trigger when schedule fields
// change.
func (s *Store) Update(ctx context.Context, userID, id string, req models.UpdateScheduledTaskRequest) (*ent.ScheduledTask, error) {
	task, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	scheduleType := string(task.ScheduleType)
	if req.ScheduleType != nil {
		scheduleType = *req.ScheduleType
	}
	expression := task.ScheduleExpression
	if req.ScheduleExpression != nil {
		expression = *req.ScheduleExpression
	}
	timezone := task.Timezone
	if req.Timezone != nil {
		timezone = *req.Timezone
	}
	trigger, err := ParseTrigger(scheduleType, expression, timezone, s.orchestratorMode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	update := task.Update().
		SetScheduleType(scheduledtask.ScheduleType(scheduleType)).
		SetScheduleExpression(expression).
		SetTimezone(timezone).
		SetUpdatedAt(now.UnixMilli())
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.TargetAgentName != nil {
		update.SetTargetAgentName(*req.TargetAgentName)
	}
	if req.TaskMessage != nil {
		update.SetTaskMessage(*req.TaskMessage)
	}
	if req.TaskMetadata != nil {
		update.SetTaskMetadata(*req.TaskMetadata)
	}
	if req.Enabled != nil {
		update.SetEnabled(*req.Enabled)
	}
	if req.TimeoutSeconds != nil {
		update.SetTimeoutSeconds(*req.TimeoutSeconds)
	}
	if next := trigger.Next(now); !next.IsZero() {
		update.SetNextRunAt(next.UnixMilli())
	} else {
		update.ClearNextRunAt()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, classifyErr("update scheduled task", err)
	}

	if s.notifier != nil {
		if updated.Enabled {
			s.notifier.TaskChanged(updated)
		} else {
			s.notifier.TaskRemoved(updated.ID)
		}
	}
	return updated, nil
}

// SetEnabled flips the enabled flag.
func (s *Store) SetEnabled(ctx context.Context, userID, id string, enabled bool) (*ent.ScheduledTask, error) {
	enabledCopy := enabled
	return s.Update(ctx, userID, id, models.UpdateScheduledTaskRequest{Enabled: &enabledCopy})
}

// SoftDelete marks the task deleted and unschedules it.
func (s *Store) SoftDelete(ctx context.Context, userID, id string) error {
	task, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := task.Update().
		SetDeletedAt(time.Now().UnixMilli()).
		SetEnabled(false).
		Exec(ctx); err != nil {
		return classifyErr("delete scheduled task", err)
	}
	if s.notifier != nil {
		s.notifier.TaskRemoved(id)
	}
	return nil
}

// ListExecutions returns one page of a task's firings, newest first.
func (s *Store) ListExecutions(ctx context.Context, userID, taskID string, p models.Pagination) ([]*ent.ScheduledTaskExecution, int, error) {
	if _, err := s.Get(ctx, userID, taskID); err != nil {
		return nil, 0, err
	}
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize <= 0 || p.PageSize > 100 {
		p.PageSize = 20
	}

	query := s.client.ScheduledTaskExecution.Query().
		Where(scheduledtaskexecution.ScheduledTaskID(taskID))
	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, classifyErr("count executions", err)
	}
	executions, err := query.
		Order(ent.Desc(scheduledtaskexecution.FieldScheduledFor)).
		Offset((p.PageNumber - 1) * p.PageSize).
		Limit(p.PageSize).
		All(ctx)
	if err != nil {
		return nil, 0, classifyErr("list executions", err)
	}
	return executions, total, nil
}

// classifyErr mirrors the services-layer transient classification.
func classifyErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return services.ClassifyDBError(op, err)
}
