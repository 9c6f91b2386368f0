package scheduler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func newCollectorFixture(t *testing.T) (*ResultCollector, *Store, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "sam", false)
	collector := NewResultCollector(client.Client, nil, "sam", "pod-a", 0)
	return collector, store, client.Client
}

// openExecution creates a scheduled task with one running execution and
// returns the execution.
func openExecution(t *testing.T, store *Store, client *ent.Client, a2aTaskID string, timeoutSeconds int) *ent.ScheduledTaskExecution {
	t.Helper()
	ctx := context.Background()

	req := createRequest("collector target " + a2aTaskID)
	req.TimeoutSeconds = timeoutSeconds
	task, err := store.Create(ctx, "user-1", req)
	require.NoError(t, err)

	execution, err := client.ScheduledTaskExecution.Create().
		SetID("exec-" + a2aTaskID).
		SetScheduledTaskID(task.ID).
		SetStatus(scheduledtaskexecution.StatusRunning).
		SetA2aTaskID(a2aTaskID).
		SetScheduledFor(time.Now().UnixMilli()).
		SetStartedAt(time.Now().UnixMilli()).
		Save(ctx)
	require.NoError(t, err)
	return execution
}

func schedulerReply(t *testing.T, id string, result any) *bus.Message {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	data, err := json.Marshal(a2a.Response{JSONRPC: "2.0", ID: id, Result: raw})
	require.NoError(t, err)
	return &bus.Message{Topic: "sam/a2a/v1/scheduler/response/pod-a", Data: data}
}

func finalTask(id, state, text string) a2a.Task {
	return a2a.Task{
		Kind: a2a.KindTask,
		ID:   id,
		Status: a2a.TaskStatus{
			State: state,
			Message: &a2a.Message{
				Kind:  a2a.KindMessage,
				Role:  "agent",
				Parts: []a2a.Part{a2a.TextPart(text)},
			},
		},
	}
}

func TestCollectorClosesCompleted(t *testing.T) {
	collector, store, client := newCollectorFixture(t)
	ctx := context.Background()

	execution := openExecution(t, store, client, "task-ok", 0)

	task := finalTask("task-ok", a2a.StateCompleted, "forecast: sunny")
	task.Artifacts = []a2a.Artifact{{
		ArtifactID: "a-1",
		Name:       "report.pdf",
		Parts:      []a2a.Part{{Kind: "file", File: &a2a.FilePart{URI: "https://files/report.pdf"}}},
	}}
	collector.handleMessage(schedulerReply(t, "task-ok", task))

	closed, err := client.ScheduledTaskExecution.Get(ctx, execution.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledtaskexecution.StatusCompleted, closed.Status)
	require.NotNil(t, closed.CompletedAt)
	assert.Equal(t, "completed", closed.ResultSummary["state"])
	assert.Equal(t, "forecast: sunny", closed.ResultSummary["agentResponse"])
	require.Len(t, closed.Artifacts, 1)
	assert.Equal(t, "https://files/report.pdf", closed.Artifacts[0]["uri"])
}

func TestCollectorClosesFailedStates(t *testing.T) {
	collector, store, client := newCollectorFixture(t)
	ctx := context.Background()

	t.Run("failed terminal task", func(t *testing.T) {
		execution := openExecution(t, store, client, "task-fail", 0)
		collector.handleMessage(schedulerReply(t, "task-fail", finalTask("task-fail", a2a.StateFailed, "agent gave up")))

		closed, err := client.ScheduledTaskExecution.Get(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledtaskexecution.StatusFailed, closed.Status)
		require.NotNil(t, closed.ErrorMessage)
		assert.Equal(t, "agent gave up", *closed.ErrorMessage)
	})

	t.Run("canceled terminal task", func(t *testing.T) {
		execution := openExecution(t, store, client, "task-cancel", 0)
		collector.handleMessage(schedulerReply(t, "task-cancel", finalTask("task-cancel", a2a.StateCanceled, "")))

		closed, err := client.ScheduledTaskExecution.Get(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledtaskexecution.StatusCancelled, closed.Status)
	})

	t.Run("json-rpc error reply", func(t *testing.T) {
		execution := openExecution(t, store, client, "task-rpc-err", 0)
		data, err := json.Marshal(a2a.Response{
			JSONRPC: "2.0",
			ID:      "task-rpc-err",
			Error:   &a2a.ResponseError{Code: a2a.ErrorCodeInternal, Message: "agent crashed"},
		})
		require.NoError(t, err)
		collector.handleMessage(&bus.Message{Topic: "sam/a2a/v1/scheduler/response/pod-a", Data: data})

		closed, err := client.ScheduledTaskExecution.Get(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledtaskexecution.StatusFailed, closed.Status)
		assert.Equal(t, "agent crashed", *closed.ErrorMessage)
		assert.Equal(t, float64(a2a.ErrorCodeInternal), closed.ResultSummary["errorCode"])
	})

	t.Run("undecodable result", func(t *testing.T) {
		execution := openExecution(t, store, client, "task-garbage", 0)
		collector.handleMessage(schedulerReply(t, "task-garbage", map[string]any{"kind": "mystery"}))

		closed, err := client.ScheduledTaskExecution.Get(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledtaskexecution.StatusFailed, closed.Status)
		assert.Contains(t, *closed.ErrorMessage, "malformed agent response")
	})
}

func TestCollectorIgnoresNoise(t *testing.T) {
	collector, store, client := newCollectorFixture(t)
	ctx := context.Background()

	execution := openExecution(t, store, client, "task-live", 0)

	t.Run("intermediate updates do not close", func(t *testing.T) {
		collector.handleMessage(schedulerReply(t, "task-live", a2a.StatusUpdate{
			Kind:   a2a.KindStatusUpdate,
			TaskID: "task-live",
			Status: a2a.TaskStatus{State: a2a.StateWorking},
		}))

		open, err := client.ScheduledTaskExecution.Get(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledtaskexecution.StatusRunning, open.Status)
	})

	t.Run("unknown and malformed replies are dropped", func(t *testing.T) {
		collector.handleMessage(&bus.Message{Topic: "x", Data: []byte("not json")})
		collector.handleMessage(schedulerReply(t, "task-unknown", finalTask("task-unknown", a2a.StateCompleted, "x")))
		collector.handleMessage(&bus.Message{Topic: "x", Data: []byte(`{"jsonrpc":"2.0","id":"","result":{}}`)})
	})

	t.Run("duplicate reply is a no-op", func(t *testing.T) {
		collector.handleMessage(schedulerReply(t, "task-live", finalTask("task-live", a2a.StateCompleted, "done")))
		first, err := client.ScheduledTaskExecution.Get(ctx, execution.ID)
		require.NoError(t, err)
		firstCompletedAt := *first.CompletedAt

		collector.handleMessage(schedulerReply(t, "task-live", finalTask("task-live", a2a.StateFailed, "late duplicate")))
		second, err := client.ScheduledTaskExecution.Get(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledtaskexecution.StatusCompleted, second.Status)
		assert.Equal(t, firstCompletedAt, *second.CompletedAt)
	})
}

func TestCollectorReapsStaleExecutions(t *testing.T) {
	collector, store, client := newCollectorFixture(t)
	ctx := context.Background()

	// Started two minutes ago with a one-second timeout: overdue.
	stale := openExecution(t, store, client, "task-stale", 1)
	_, err := stale.Update().SetStartedAt(time.Now().Add(-2 * time.Minute).UnixMilli()).Save(ctx)
	require.NoError(t, err)

	// Default 300s timeout, just started: not overdue.
	fresh := openExecution(t, store, client, "task-fresh", 0)

	collector.reapStale(ctx)

	reaped, err := client.ScheduledTaskExecution.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledtaskexecution.StatusTimeout, reaped.Status)
	require.NotNil(t, reaped.ErrorMessage)

	untouched, err := client.ScheduledTaskExecution.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledtaskexecution.StatusRunning, untouched.Status)
}

func TestBuildResultSummary(t *testing.T) {
	task := finalTask("task-1", a2a.StateCompleted, "all good")
	task.History = []a2a.Message{
		{Role: "user", Parts: []a2a.Part{a2a.TextPart("do the thing")}},
		{Role: "agent", Parts: []a2a.Part{a2a.TextPart("all good")}},
	}

	summary := buildResultSummary(&task)
	assert.Equal(t, "completed", summary["state"])
	assert.Equal(t, "all good", summary["agentResponse"])
	history, ok := summary["history"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, history, 2)
}

func TestMaterializeArtifacts(t *testing.T) {
	out := materializeArtifacts("exec-1", []a2a.Artifact{
		{ArtifactID: "a-1", Name: "report", Parts: []a2a.Part{{Kind: "file", File: &a2a.FilePart{URI: "s3://x"}}}},
		{ArtifactID: "a-2", Name: "inline"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "s3://x", out[0]["uri"])
	assert.Equal(t, "artifact://exec-1/a-2", out[1]["uri"])

	assert.Nil(t, materializeArtifacts("exec-1", nil))
}
