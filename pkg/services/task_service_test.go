package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func submit(t *testing.T, svc *services.TaskService, taskID string, background bool, startMs int64) {
	t.Helper()
	require.NoError(t, svc.RecordSubmission(context.Background(), services.TaskSubmission{
		TaskID:             taskID,
		UserID:             "user-1",
		AgentName:          "weather",
		InitialRequestText: "forecast",
		Background:         background,
		StartTime:          startMs,
	}))
}

func TestTaskAuditTrail(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("record submission", func(t *testing.T) {
		submit(t, svc, "task-1", false, 1000)

		task, err := svc.GetTask(ctx, "task-1")
		require.NoError(t, err)
		assert.Equal(t, services.TaskStatusRunning, *task.Status)
		assert.Equal(t, "weather", *task.AgentName)
		assert.Equal(t, int64(1000), task.StartTime)

		assert.ErrorIs(t, svc.RecordSubmission(ctx, services.TaskSubmission{TaskID: "task-1"}), services.ErrAlreadyExists)
		assert.True(t, services.IsValidationError(svc.RecordSubmission(ctx, services.TaskSubmission{})))
	})

	t.Run("event log", func(t *testing.T) {
		require.NoError(t, svc.RecordEvent(ctx, "task-1", "sam/a2a/v1/gateway/status/gw-1", "status_update",
			map[string]any{"state": "working"}))
		require.NoError(t, svc.RecordEvent(ctx, "task-1", "sam/a2a/v1/gateway/response/gw-1", "response",
			map[string]any{"state": "completed"}))

		// Discovery traffic and orphan events are silently dropped.
		require.NoError(t, svc.RecordEvent(ctx, "task-1", "sam/a2a/v1/discovery/agentcards", "status_update", nil))
		require.NoError(t, svc.RecordEvent(ctx, "task-missing", "sam/a2a/v1/gateway/status/gw-1", "status_update", nil))

		resp, err := svc.GetTaskEvents(ctx, "task-1", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalEvents)
		assert.False(t, resp.HasMore)
		assert.Equal(t, "status_update", resp.Events[0].Direction)
	})

	t.Run("event window", func(t *testing.T) {
		resp, err := svc.GetTaskEvents(ctx, "task-1", 0, 1)
		require.NoError(t, err)
		assert.Len(t, resp.Events, 1)
		assert.True(t, resp.HasMore)

		resp, err = svc.GetTaskEvents(ctx, "task-1", time.Now().UnixMilli()+60_000, 0)
		require.NoError(t, err)
		assert.Empty(t, resp.Events)

		_, err = svc.GetTaskEvents(ctx, "task-missing", 0, 0)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("finalize", func(t *testing.T) {
		require.NoError(t, svc.FinalizeTask(ctx, "task-1", services.TaskStatusCompleted, 2000))

		task, err := svc.GetTask(ctx, "task-1")
		require.NoError(t, err)
		assert.Equal(t, services.TaskStatusCompleted, *task.Status)
		require.NotNil(t, task.EndTime)
		assert.Equal(t, int64(2000), *task.EndTime)
		assert.Equal(t, int64(2000), *task.LastActivityTime)
	})

	t.Run("touch activity", func(t *testing.T) {
		submit(t, svc, "task-2", false, 1000)
		require.NoError(t, svc.TouchActivity(ctx, "task-2", 5000))

		task, err := svc.GetTask(ctx, "task-2")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), *task.LastActivityTime)
	})
}

func TestTaskStatusQuery(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTaskService(client.Client)
	ctx := context.Background()

	submit(t, svc, "task-bg", true, 1000)
	submit(t, svc, "task-fg", false, 1000)

	t.Run("running background task can reconnect", func(t *testing.T) {
		status, err := svc.GetTaskStatus(ctx, "task-bg")
		require.NoError(t, err)
		assert.True(t, status.IsRunning)
		assert.True(t, status.IsBackground)
		assert.True(t, status.CanReconnect)
	})

	t.Run("foreground task never reconnects", func(t *testing.T) {
		status, err := svc.GetTaskStatus(ctx, "task-fg")
		require.NoError(t, err)
		assert.True(t, status.IsRunning)
		assert.False(t, status.CanReconnect)
	})

	t.Run("finished background task without buffered events", func(t *testing.T) {
		require.NoError(t, svc.FinalizeTask(ctx, "task-bg", services.TaskStatusCompleted, 2000))

		status, err := svc.GetTaskStatus(ctx, "task-bg")
		require.NoError(t, err)
		assert.False(t, status.IsRunning)
		assert.False(t, status.CanReconnect)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.GetTaskStatus(ctx, "task-missing")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestBackgroundTaskQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTaskService(client.Client)
	ctx := context.Background()

	submit(t, svc, "task-a", true, 1000)
	submit(t, svc, "task-b", true, 2000)
	submit(t, svc, "task-c", false, 3000)
	require.NoError(t, svc.FinalizeTask(ctx, "task-b", services.TaskStatusCompleted, 4000))

	t.Run("find by status", func(t *testing.T) {
		running, err := svc.FindBackgroundTasksByStatus(ctx, services.TaskStatusRunning, services.TaskStatusPending)
		require.NoError(t, err)
		require.Len(t, running, 1)
		assert.Equal(t, "task-a", running[0].ID)
	})

	t.Run("list active for user", func(t *testing.T) {
		active, err := svc.ListActiveBackgroundTasks(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "task-a", active[0].ID)

		active, err = svc.ListActiveBackgroundTasks(ctx, "user-2")
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("mark interrupted", func(t *testing.T) {
		require.NoError(t, svc.MarkInterrupted(ctx, "task-a", 5000))

		task, err := svc.GetTask(ctx, "task-a")
		require.NoError(t, err)
		assert.Equal(t, services.TaskStatusInterrupted, *task.Status)
	})
}

func TestDeleteTasksOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewTaskService(client.Client)
	ctx := context.Background()

	cutoff := time.Now()
	for i := 0; i < 5; i++ {
		submit(t, svc, fmt.Sprintf("task-old-%d", i), false, cutoff.Add(-time.Hour).UnixMilli())
	}
	submit(t, svc, "task-new", false, cutoff.Add(time.Hour).UnixMilli())

	deleted, err := svc.DeleteTasksOlderThan(ctx, cutoff, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, deleted)

	_, err = svc.GetTask(ctx, "task-new")
	assert.NoError(t, err)
	_, err = svc.GetTask(ctx, "task-old-0")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
