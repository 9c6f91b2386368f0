package retention

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/feedback"
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/task"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func newTestService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.RetentionConfig{
		TaskRetentionDays:     30,
		FeedbackRetentionDays: 30,
		SSEEventRetentionDays: 7,
		CleanupIntervalHours:  1,
		BatchSize:             2,
	}
	svc := NewService(cfg,
		services.NewTaskService(client.Client),
		services.NewFeedbackService(client.Client),
		sse.NewPersistentEventBuffer(client.Client))
	return svc, client.Client
}

func seedTask(t *testing.T, client *ent.Client, taskID string, startMs int64) {
	t.Helper()
	require.NoError(t, client.Task.Create().
		SetID(taskID).
		SetUserID("user-1").
		SetStartTime(startMs).
		SetStatus(services.TaskStatusCompleted).
		Exec(context.Background()))
}

func seedFeedback(t *testing.T, client *ent.Client, id string, createdMs int64) {
	t.Helper()
	require.NoError(t, client.Feedback.Create().
		SetID(id).
		SetSessionID("session-1").
		SetTaskID(id).
		SetUserID("user-1").
		SetRating(feedback.RatingUp).
		SetCreatedTime(createdMs).
		Exec(context.Background()))
}

func seedSession(t *testing.T, client *ent.Client, sessionID string) {
	t.Helper()
	_, err := services.NewSessionService(client).CreateSession(context.Background(), "user-1",
		models.CreateSessionRequest{SessionID: sessionID})
	require.NoError(t, err)
}

func seedSSEEvent(t *testing.T, client *ent.Client, taskID string, seq, createdMs int64) {
	t.Helper()
	require.NoError(t, client.SSEEvent.Create().
		SetTaskID(taskID).
		SetSessionID("session-1").
		SetUserID("user-1").
		SetEventSequence(seq).
		SetEventType("status_update").
		SetEventData("{}").
		SetCreatedAt(createdMs).
		Exec(context.Background()))
}

func TestRunAllPrunesAgedRows(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	now := time.Now()
	oldMs := now.AddDate(0, 0, -60).UnixMilli()
	recentMs := now.UnixMilli()

	// Three aged tasks exercise the batch loop (batch size 2).
	seedTask(t, client, "task-old-1", oldMs)
	seedTask(t, client, "task-old-2", oldMs)
	seedTask(t, client, "task-old-3", oldMs)
	seedTask(t, client, "task-new", recentMs)

	seedFeedback(t, client, "feedback-old", oldMs)
	seedFeedback(t, client, "feedback-new", recentMs)

	// SSE events age out on their own, shorter horizon.
	seedSession(t, client, "session-1")
	seedSSEEvent(t, client, "task-new", 1, now.AddDate(0, 0, -8).UnixMilli())
	seedSSEEvent(t, client, "task-new", 2, recentMs)

	svc.runAll(ctx)

	taskIDs, err := client.Task.Query().IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"task-new"}, taskIDs)

	feedbackCount, err := client.Feedback.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, feedbackCount)
	remaining, err := client.Feedback.Query().Where(feedback.ID("feedback-new")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	events, err := client.SSEEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(2), events[0].EventSequence)
}

func TestRunAllIsIdempotent(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	seedTask(t, client, "task-old", time.Now().AddDate(0, 0, -60).UnixMilli())

	svc.runAll(ctx)
	svc.runAll(ctx)

	count, err := client.Task.Query().Where(task.ID("task-old")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTaskPruningCascadesEvents(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	oldMs := time.Now().AddDate(0, 0, -60).UnixMilli()
	seedTask(t, client, "task-old", oldMs)
	seedSession(t, client, "session-1")
	seedSSEEvent(t, client, "task-old", 1, time.Now().UnixMilli())

	svc.runAll(ctx)

	// The task goes by age; its fresh SSE row is unrelated to the task
	// cascade and survives until its own horizon.
	eventCount, err := client.SSEEvent.Query().Where(sseevent.TaskID("task-old")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, eventCount)
}

func TestStartStop(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Start(context.Background())
	svc.Stop()

	// Stop without Start is safe.
	fresh, _ := newTestService(t)
	fresh.Stop()
}
