package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

type capturePublisher struct {
	mu      sync.Mutex
	topics  []string
	payload []byte
	headers map[string]string
	err     error
}

func (p *capturePublisher) Publish(_ context.Context, topic string, payload []byte, headers map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.payload = payload
	p.headers = headers
	return p.err
}

func newTestEngine(t *testing.T, pub *capturePublisher) (*Engine, *Store) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "sam", false)
	elector := NewLeaderElector(client.Client, "pod-a", "sam", 50*time.Millisecond, time.Minute)
	engine := NewEngine(store, client.Client, pub, elector, "sam", "pod-a", "embedded")
	return engine, store
}

func TestEngineRunNow(t *testing.T) {
	pub := &capturePublisher{}
	engine, store := newTestEngine(t, pub)
	ctx := context.Background()

	task, err := store.Create(ctx, "user-1", createRequest("on demand"))
	require.NoError(t, err)

	execution, err := engine.RunNow(ctx, "user-1", task.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledtaskexecution.StatusRunning, execution.Status)
	require.NotNil(t, execution.A2aTaskID)
	require.NotNil(t, execution.StartedAt)

	require.Len(t, pub.topics, 1)
	assert.Equal(t, "sam/a2a/v1/agent/weather/request", pub.topics[0])
	assert.Equal(t, "sam/a2a/v1/scheduler/response/pod-a", pub.headers[bus.HeaderReplyTo])
	assert.Equal(t, "user-1", pub.headers[bus.HeaderUserID])

	var req a2a.Request
	require.NoError(t, json.Unmarshal(pub.payload, &req))
	assert.Equal(t, a2a.MethodSendMessage, req.Method)
	assert.Equal(t, *execution.A2aTaskID, req.ID)

	var params a2a.MessageSendParams
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, a2a.SessionBehaviorRunBased, params.Message.Metadata["sessionBehavior"])
	assert.Equal(t, "daily forecast", params.Message.Text())

	// The firing advances last_run_at.
	reloaded, err := store.Get(ctx, "user-1", task.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.LastRunAt)
}

func TestEngineRunNowAccessControl(t *testing.T) {
	engine, store := newTestEngine(t, &capturePublisher{})
	ctx := context.Background()

	task, err := store.Create(ctx, "user-1", createRequest("private"))
	require.NoError(t, err)

	_, err = engine.RunNow(ctx, "user-2", task.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestEnginePublishFailureFailsExecution(t *testing.T) {
	pub := &capturePublisher{err: errors.New("no responders")}
	engine, store := newTestEngine(t, pub)
	ctx := context.Background()

	task, err := store.Create(ctx, "user-1", createRequest("doomed"))
	require.NoError(t, err)

	_, err = engine.RunNow(ctx, "user-1", task.ID)
	require.ErrorIs(t, err, services.ErrUpstreamUnavailable)

	executions, total, err := store.ListExecutions(ctx, "user-1", task.ID, models.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, executions, 1)
	assert.Equal(t, scheduledtaskexecution.StatusFailed, executions[0].Status)
	require.NotNil(t, executions[0].ErrorMessage)
	assert.Contains(t, *executions[0].ErrorMessage, "no responders")
}

func TestEngineOneTimeDisablesAfterFiring(t *testing.T) {
	pub := &capturePublisher{}
	engine, store := newTestEngine(t, pub)
	ctx := context.Background()

	req := createRequest("once")
	req.ScheduleType = "one_time"
	req.ScheduleExpression = time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	task, err := store.Create(ctx, "user-1", req)
	require.NoError(t, err)

	_, err = engine.RunNow(ctx, "user-1", task.ID)
	require.NoError(t, err)

	reloaded, err := store.Get(ctx, "user-1", task.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Enabled)
	assert.Nil(t, reloaded.NextRunAt)
}

func TestEngineLeadershipTransitions(t *testing.T) {
	pub := &capturePublisher{}
	engine, store := newTestEngine(t, pub)
	ctx := context.Background()

	task, err := store.Create(ctx, "user-1", createRequest("mirrored"))
	require.NoError(t, err)

	t.Run("promotion loads enabled tasks", func(t *testing.T) {
		engine.onPromote(ctx)

		status, err := engine.Status(ctx)
		require.NoError(t, err)
		assert.True(t, status.IsLeader)
		assert.Equal(t, 1, status.ActiveTaskCount)
		assert.Equal(t, "embedded", status.Mode)
	})

	t.Run("store mutations follow while leading", func(t *testing.T) {
		second, err := store.Create(ctx, "user-1", createRequest("added live"))
		require.NoError(t, err)

		status, err := engine.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, status.ActiveTaskCount)

		require.NoError(t, store.SoftDelete(ctx, "user-1", second.ID))
		status, err = engine.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, status.ActiveTaskCount)
	})

	t.Run("demotion idles the engine", func(t *testing.T) {
		engine.onDemote(ctx)

		status, err := engine.Status(ctx)
		require.NoError(t, err)
		assert.False(t, status.IsLeader)
		assert.Equal(t, 0, status.ActiveTaskCount)

		// Mutations on a follower are accepted but not mirrored.
		_, err = store.SetEnabled(ctx, "user-1", task.ID, false)
		require.NoError(t, err)
	})
}

func TestEngineSkipsOverlappingFirings(t *testing.T) {
	pub := &capturePublisher{}
	engine, store := newTestEngine(t, pub)
	ctx := context.Background()

	task, err := store.Create(ctx, "user-1", createRequest("slow task"))
	require.NoError(t, err)

	// First firing leaves a running execution behind.
	_, err = engine.RunNow(ctx, "user-1", task.ID)
	require.NoError(t, err)
	require.Len(t, pub.topics, 1)

	// The trigger path refuses to overlap it.
	engine.fire(task.ID)
	assert.Len(t, pub.topics, 1)

	active, err := engine.hasActiveExecution(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestExecutionUserID(t *testing.T) {
	_, store := newTestEngine(t, &capturePublisher{})
	ctx := context.Background()

	req := createRequest("namespace task")
	req.NamespaceLevel = true
	task, err := store.Create(ctx, "user-1", req)
	require.NoError(t, err)

	// Namespace-level firings run as the creator.
	assert.Equal(t, "user-1", executionUserID(task))
}
