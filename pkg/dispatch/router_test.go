package dispatch

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
)

type recordedEvent struct {
	taskID    string
	direction string
}

type fakeTaskStore struct {
	mu        sync.Mutex
	events    []recordedEvent
	touched   []string
	finalized map[string]string
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{finalized: map[string]string{}}
}

func (s *fakeTaskStore) RecordEvent(_ context.Context, taskID, _, direction string, _ map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, recordedEvent{taskID: taskID, direction: direction})
	return nil
}

func (s *fakeTaskStore) TouchActivity(_ context.Context, taskID string, _ int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = append(s.touched, taskID)
	return nil
}

func (s *fakeTaskStore) FinalizeTask(_ context.Context, taskID, status string, _ int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalized[taskID] = status
	return nil
}

func response(t *testing.T, id string, result any) *bus.Message {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	data, err := json.Marshal(a2a.Response{JSONRPC: "2.0", ID: id, Result: raw})
	require.NoError(t, err)
	return &bus.Message{Topic: "sam/a2a/v1/gateway/response/gw-1", Data: data}
}

func newTestRouter() (*Router, *sse.Manager, *fakeTaskStore) {
	m := sse.NewManager(nil, 10, 50*time.Millisecond)
	store := newFakeTaskStore()
	return NewRouter(m, store, "sam", "gw-1"), m, store
}

func TestRouterFinalResponse(t *testing.T) {
	r, m, store := newTestRouter()
	ch := m.Subscribe("task-1")

	r.handleMessage(response(t, "task-1", a2a.Task{
		Kind:   a2a.KindTask,
		ID:     "task-1",
		Status: a2a.TaskStatus{State: a2a.StateCompleted},
	}))

	ev := <-ch
	assert.Equal(t, sse.EventTypeFinalResponse, ev.Type)

	// The fan-out closes after the terminal event.
	_, open := <-ch
	assert.False(t, open)

	assert.Equal(t, "completed", store.finalized["task-1"])
	require.Len(t, store.events, 1)
	assert.Equal(t, "response", store.events[0].direction)
}

func TestRouterFinalStates(t *testing.T) {
	for state, want := range map[string]string{
		a2a.StateFailed:   "failed",
		a2a.StateCanceled: "cancelled",
		a2a.StateWorking:  "completed",
	} {
		r, _, store := newTestRouter()
		r.handleMessage(response(t, "task-1", a2a.Task{
			Kind:   a2a.KindTask,
			ID:     "task-1",
			Status: a2a.TaskStatus{State: state},
		}))
		assert.Equal(t, want, store.finalized["task-1"], "state %q", state)
	}
}

func TestRouterIntermediateUpdates(t *testing.T) {
	r, m, store := newTestRouter()
	ch := m.Subscribe("task-1")

	r.handleMessage(response(t, "task-1", a2a.StatusUpdate{
		Kind:   a2a.KindStatusUpdate,
		TaskID: "task-1",
		Status: a2a.TaskStatus{State: a2a.StateWorking},
	}))
	r.handleMessage(response(t, "task-1", a2a.ArtifactUpdate{
		Kind:     a2a.KindArtifactUpdate,
		TaskID:   "task-1",
		Artifact: a2a.Artifact{ArtifactID: "a-1"},
	}))

	assert.Equal(t, sse.EventTypeStatusUpdate, (<-ch).Type)
	assert.Equal(t, sse.EventTypeArtifactUpdate, (<-ch).Type)

	require.Len(t, store.events, 2)
	assert.Equal(t, "status_update", store.events[0].direction)
	assert.Equal(t, "artifact_update", store.events[1].direction)
	assert.Equal(t, []string{"task-1", "task-1"}, store.touched)
	assert.Empty(t, store.finalized)
}

func TestRouterErrorResponse(t *testing.T) {
	r, m, store := newTestRouter()
	ch := m.Subscribe("task-1")

	data, err := json.Marshal(a2a.Response{
		JSONRPC: "2.0",
		ID:      "task-1",
		Error:   &a2a.ResponseError{Code: a2a.ErrorCodeInternal, Message: "agent crashed"},
	})
	require.NoError(t, err)
	r.handleMessage(&bus.Message{Topic: "sam/a2a/v1/gateway/response/gw-1", Data: data})

	ev := <-ch
	assert.Equal(t, sse.EventTypeError, ev.Type)
	assert.JSONEq(t, `{"error":"agent crashed"}`, ev.Data)

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, "failed", store.finalized["task-1"])
}

func TestRouterDropsNoise(t *testing.T) {
	r, _, store := newTestRouter()

	// Discovery heartbeats share the connection and are not task traffic.
	r.handleMessage(&bus.Message{Topic: "sam/a2a/v1/discovery/agentcards", Data: []byte(`{"name":"x"}`)})
	r.handleMessage(&bus.Message{Topic: "sam/a2a/v1/gateway/response/gw-1", Data: []byte("not json")})
	r.handleMessage(&bus.Message{Topic: "sam/a2a/v1/gateway/response/gw-1", Data: []byte(`{"jsonrpc":"2.0","id":"","result":{}}`)})

	assert.Empty(t, store.events)
	assert.Empty(t, store.finalized)
}

func TestRouterMalformedResult(t *testing.T) {
	r, m, store := newTestRouter()
	ch := m.Subscribe("task-1")

	r.handleMessage(response(t, "task-1", map[string]any{"kind": "mystery"}))

	ev := <-ch
	assert.Equal(t, sse.EventTypeError, ev.Type)
	assert.JSONEq(t, `{"error":"malformed agent response"}`, ev.Data)
	assert.Empty(t, store.finalized)
}
