package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

type fakeRunner struct {
	cronJobs map[string]CronJobSpec
	jobs     map[string]JobSpec
	deleted  []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{cronJobs: map[string]CronJobSpec{}, jobs: map[string]JobSpec{}}
}

func (r *fakeRunner) EnsureCronJob(_ context.Context, spec CronJobSpec) error {
	r.cronJobs[spec.Name] = spec
	return nil
}

func (r *fakeRunner) EnsureJob(_ context.Context, spec JobSpec) error {
	r.jobs[spec.Name] = spec
	return nil
}

func (r *fakeRunner) DeleteJob(_ context.Context, name string) error {
	r.deleted = append(r.deleted, name)
	delete(r.cronJobs, name)
	delete(r.jobs, name)
	return nil
}

func TestOrchestratorReflectsTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "sam", true)
	runner := newFakeRunner()
	NewOrchestrator(store, runner)
	ctx := context.Background()

	t.Run("cron task mirrors as cron job", func(t *testing.T) {
		task, err := store.Create(ctx, "user-1", createRequest("cron job"))
		require.NoError(t, err)

		spec, ok := runner.cronJobs[jobName(task.ID)]
		require.True(t, ok)
		assert.Equal(t, "0 9 * * *", spec.Schedule)
		assert.Equal(t, task.ID, spec.TaskID)
		assert.Equal(t, "user-1", spec.RunAsUser)
	})

	t.Run("interval task mirrors as rewritten cron", func(t *testing.T) {
		req := createRequest("interval job")
		req.ScheduleType = "interval"
		req.ScheduleExpression = "2h"
		task, err := store.Create(ctx, "user-1", req)
		require.NoError(t, err)

		spec, ok := runner.cronJobs[jobName(task.ID)]
		require.True(t, ok)
		assert.Equal(t, "0 */2 * * *", spec.Schedule)
	})

	t.Run("due one-shot task mirrors as job", func(t *testing.T) {
		req := createRequest("one shot")
		req.ScheduleType = "one_time"
		req.ScheduleExpression = time.Now().Add(-time.Minute).UTC().Format(time.RFC3339)
		task, err := store.Create(ctx, "user-1", req)
		require.NoError(t, err)

		spec, ok := runner.jobs[jobName(task.ID)]
		require.True(t, ok)
		assert.Equal(t, task.ID, spec.TaskID)
	})

	t.Run("future one-shot waits for the periodic sync", func(t *testing.T) {
		req := createRequest("future shot")
		req.ScheduleType = "one_time"
		req.ScheduleExpression = time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
		task, err := store.Create(ctx, "user-1", req)
		require.NoError(t, err)

		_, ok := runner.jobs[jobName(task.ID)]
		assert.False(t, ok)
	})

	t.Run("delete removes the mirror", func(t *testing.T) {
		task, err := store.Create(ctx, "user-1", createRequest("short lived"))
		require.NoError(t, err)
		require.Contains(t, runner.cronJobs, jobName(task.ID))

		require.NoError(t, store.SoftDelete(ctx, "user-1", task.ID))
		assert.Contains(t, runner.deleted, jobName(task.ID))
		assert.NotContains(t, runner.cronJobs, jobName(task.ID))
	})

	t.Run("disable removes the mirror", func(t *testing.T) {
		task, err := store.Create(ctx, "user-1", createRequest("paused job"))
		require.NoError(t, err)

		_, err = store.Update(ctx, "user-1", task.ID, models.UpdateScheduledTaskRequest{Enabled: boolPtr(false)})
		require.NoError(t, err)
		assert.NotContains(t, runner.cronJobs, jobName(task.ID))
	})

	t.Run("full sync reconciles drift", func(t *testing.T) {
		orchestrator := NewOrchestrator(store, runner)

		// Simulate the orchestrator losing a job out of band.
		tasks, err := store.ListEnabled(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, tasks)
		delete(runner.cronJobs, jobName(tasks[0].ID))

		orchestrator.Sync(ctx)
		assert.Contains(t, runner.cronJobs, jobName(tasks[0].ID))
	})
}

func TestIntervalToCron(t *testing.T) {
	assert.Equal(t, "*/5 * * * *", intervalToCron("5m"))
	assert.Equal(t, "0 */2 * * *", intervalToCron("2h"))
	assert.Equal(t, "0 0 */1 * *", intervalToCron("1d"))
	assert.Equal(t, "*/30 */1 * * *", intervalToCron("90m"))
	assert.Equal(t, "* * * * *", intervalToCron("garbage"))
}

func boolPtr(b bool) *bool { return &b }
