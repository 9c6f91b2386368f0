package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

type recordingNotifier struct {
	mu      sync.Mutex
	changed []string
	removed []string
}

func (n *recordingNotifier) TaskChanged(task *ent.ScheduledTask) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, task.ID)
}

func (n *recordingNotifier) TaskRemoved(taskID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removed = append(n.removed, taskID)
}

func createRequest(name string) models.CreateScheduledTaskRequest {
	return models.CreateScheduledTaskRequest{
		Name:               name,
		ScheduleType:       "cron",
		ScheduleExpression: "0 9 * * *",
		TargetAgentName:    "weather",
		TaskMessage:        []map[string]any{{"kind": "text", "text": "daily forecast"}},
	}
}

func TestStoreCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "sam", false)
	notifier := &recordingNotifier{}
	store.SetNotifier(notifier)
	ctx := context.Background()

	t.Run("valid task", func(t *testing.T) {
		task, err := store.Create(ctx, "user-1", createRequest("morning report"))
		require.NoError(t, err)
		assert.Equal(t, "morning report", task.Name)
		assert.Equal(t, "sam", task.Namespace)
		require.NotNil(t, task.UserID)
		assert.Equal(t, "user-1", *task.UserID)
		assert.True(t, task.Enabled)
		require.NotNil(t, task.NextRunAt)
		assert.Equal(t, []string{task.ID}, notifier.changed)
	})

	t.Run("namespace-level task has no owner", func(t *testing.T) {
		req := createRequest("shared report")
		req.NamespaceLevel = true
		task, err := store.Create(ctx, "user-1", req)
		require.NoError(t, err)
		assert.Nil(t, task.UserID)
	})

	t.Run("validation", func(t *testing.T) {
		req := createRequest("")
		_, err := store.Create(ctx, "user-1", req)
		assert.True(t, services.IsValidationError(err))

		req = createRequest("bad cron")
		req.ScheduleExpression = "not a cron"
		_, err = store.Create(ctx, "user-1", req)
		assert.True(t, services.IsValidationError(err))

		req = createRequest("no message")
		req.TaskMessage = nil
		_, err = store.Create(ctx, "user-1", req)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("disabled task does not notify", func(t *testing.T) {
		before := len(notifier.changed)
		enabled := false
		req := createRequest("paused")
		req.Enabled = &enabled

		task, err := store.Create(ctx, "user-1", req)
		require.NoError(t, err)
		assert.False(t, task.Enabled)
		assert.Len(t, notifier.changed, before)
	})
}

func TestStoreAccessControl(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "sam", false)
	ctx := context.Background()

	owned, err := store.Create(ctx, "user-1", createRequest("mine"))
	require.NoError(t, err)
	sharedReq := createRequest("shared")
	sharedReq.NamespaceLevel = true
	shared, err := store.Create(ctx, "user-1", sharedReq)
	require.NoError(t, err)

	t.Run("owner reads own task", func(t *testing.T) {
		_, err := store.Get(ctx, "user-1", owned.ID)
		assert.NoError(t, err)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := store.Get(ctx, "user-2", owned.ID)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("namespace-level tasks are shared", func(t *testing.T) {
		_, err := store.Get(ctx, "user-2", shared.ID)
		assert.NoError(t, err)

		tasks, err := store.List(ctx, "user-2")
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, shared.ID, tasks[0].ID)

		tasks, err = store.List(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})
}

func TestStoreUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "sam", false)
	notifier := &recordingNotifier{}
	store.SetNotifier(notifier)
	ctx := context.Background()

	task, err := store.Create(ctx, "user-1", createRequest("report"))
	require.NoError(t, err)

	t.Run("reschedule", func(t *testing.T) {
		expr := "30m"
		typ := "interval"
		updated, err := store.Update(ctx, "user-1", task.ID, models.UpdateScheduledTaskRequest{
			ScheduleType:       &typ,
			ScheduleExpression: &expr,
		})
		require.NoError(t, err)
		assert.Equal(t, "interval", string(updated.ScheduleType))
		require.NotNil(t, updated.NextRunAt)
	})

	t.Run("invalid schedule rejected", func(t *testing.T) {
		expr := "never"
		_, err := store.Update(ctx, "user-1", task.ID, models.UpdateScheduledTaskRequest{ScheduleExpression: &expr})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("disable unschedules", func(t *testing.T) {
		updated, err := store.SetEnabled(ctx, "user-1", task.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.Enabled)
		assert.Contains(t, notifier.removed, task.ID)

		enabledTasks, err := store.ListEnabled(ctx)
		require.NoError(t, err)
		assert.Empty(t, enabledTasks)
	})
}

func TestStoreSoftDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "sam", false)
	notifier := &recordingNotifier{}
	store.SetNotifier(notifier)
	ctx := context.Background()

	task, err := store.Create(ctx, "user-1", createRequest("ephemeral"))
	require.NoError(t, err)

	require.NoError(t, store.SoftDelete(ctx, "user-1", task.ID))
	assert.Contains(t, notifier.removed, task.ID)

	_, err = store.Get(ctx, "user-1", task.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, store.SoftDelete(ctx, "user-1", task.ID), services.ErrNotFound)
}

func TestStoreListExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "sam", false)
	ctx := context.Background()

	task, err := store.Create(ctx, "user-1", createRequest("with history"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := client.Client.ScheduledTaskExecution.Create().
			SetID("exec-" + uuid.NewString()).
			SetScheduledTaskID(task.ID).
			SetStatus("completed").
			SetScheduledFor(int64(1000 * (i + 1))).
			Save(ctx)
		require.NoError(t, err)
	}

	executions, total, err := store.ListExecutions(ctx, "user-1", task.ID, models.Pagination{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, executions, 2)
	// Newest scheduled-for first.
	assert.Equal(t, int64(3000), executions[0].ScheduledFor)

	_, _, err = store.ListExecutions(ctx, "user-2", task.ID, models.Pagination{})
	assert.ErrorIs(t, err, services.ErrForbidden)
}
