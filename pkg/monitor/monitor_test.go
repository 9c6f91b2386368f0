package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

type fakeCanceller struct {
	mu      sync.Mutex
	cancels []string
	err     error
}

func (c *fakeCanceller) CancelTask(_ context.Context, taskID, _, _ string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancels = append(c.cancels, taskID)
	return c.err
}

func newTestMonitor(t *testing.T) (*BackgroundTaskMonitor, *services.TaskService, *fakeCanceller) {
	t.Helper()
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client)
	canceller := &fakeCanceller{}
	monitor := NewBackgroundTaskMonitor(&config.MonitorConfig{
		SweepInterval:           time.Minute,
		DefaultMaxExecutionTime: 30 * time.Minute,
	}, tasks, canceller)
	return monitor, tasks, canceller
}

func record(t *testing.T, tasks *services.TaskService, taskID string, background bool, startMs, maxMs int64) {
	t.Helper()
	require.NoError(t, tasks.RecordSubmission(context.Background(), services.TaskSubmission{
		TaskID:             taskID,
		UserID:             "user-1",
		AgentName:          "weather",
		Background:         background,
		MaxExecutionTimeMs: maxMs,
		StartTime:          startMs,
	}))
}

func TestRecoverInterrupted(t *testing.T) {
	monitor, tasks, _ := newTestMonitor(t)
	ctx := context.Background()

	now := time.Now().UnixMilli()
	record(t, tasks, "task-orphan", true, now, 0)
	record(t, tasks, "task-fg", false, now, 0)
	record(t, tasks, "task-done", true, now, 0)
	require.NoError(t, tasks.FinalizeTask(ctx, "task-done", services.TaskStatusCompleted, now))

	require.NoError(t, monitor.RecoverInterrupted(ctx))

	orphan, err := tasks.GetTask(ctx, "task-orphan")
	require.NoError(t, err)
	assert.Equal(t, services.TaskStatusInterrupted, *orphan.Status)

	// Foreground and finished tasks are untouched.
	fg, err := tasks.GetTask(ctx, "task-fg")
	require.NoError(t, err)
	assert.Equal(t, services.TaskStatusRunning, *fg.Status)
	done, err := tasks.GetTask(ctx, "task-done")
	require.NoError(t, err)
	assert.Equal(t, services.TaskStatusCompleted, *done.Status)

	t.Run("second call is a no-op", func(t *testing.T) {
		record(t, tasks, "task-late", true, time.Now().UnixMilli(), 0)
		require.NoError(t, monitor.RecoverInterrupted(ctx))

		late, err := tasks.GetTask(ctx, "task-late")
		require.NoError(t, err)
		assert.Equal(t, services.TaskStatusRunning, *late.Status)
	})
}

func TestSweepTimesOutStaleTasks(t *testing.T) {
	monitor, tasks, canceller := newTestMonitor(t)
	ctx := context.Background()

	now := time.Now().UnixMilli()
	hourAgo := now - time.Hour.Milliseconds()

	// Stale beyond the 30m default limit.
	record(t, tasks, "task-stale", true, hourAgo, 0)
	// Stale by wall clock but with a generous per-task limit.
	record(t, tasks, "task-roomy", true, hourAgo, 2*time.Hour.Milliseconds())
	// Old start but recent activity.
	record(t, tasks, "task-active", true, hourAgo, 0)
	require.NoError(t, tasks.TouchActivity(ctx, "task-active", now))

	monitor.sweep(ctx)

	stale, err := tasks.GetTask(ctx, "task-stale")
	require.NoError(t, err)
	assert.Equal(t, services.TaskStatusTimeout, *stale.Status)
	assert.Equal(t, []string{"task-stale"}, canceller.cancels)

	roomy, err := tasks.GetTask(ctx, "task-roomy")
	require.NoError(t, err)
	assert.Equal(t, services.TaskStatusRunning, *roomy.Status)

	active, err := tasks.GetTask(ctx, "task-active")
	require.NoError(t, err)
	assert.Equal(t, services.TaskStatusRunning, *active.Status)
}

func TestTimeOutSurvivesCancelFailure(t *testing.T) {
	monitor, tasks, canceller := newTestMonitor(t)
	canceller.err = errors.New("no responders")
	ctx := context.Background()

	record(t, tasks, "task-stale", true, time.Now().Add(-time.Hour).UnixMilli(), 0)
	monitor.sweep(ctx)

	stale, err := tasks.GetTask(ctx, "task-stale")
	require.NoError(t, err)
	assert.Equal(t, services.TaskStatusTimeout, *stale.Status)
}

func TestMonitorStartStop(t *testing.T) {
	monitor, _, _ := newTestMonitor(t)

	monitor.Start(context.Background())
	monitor.Stop()

	// Stop without Start is safe.
	fresh, _, _ := newTestMonitor(t)
	fresh.Stop()
}
