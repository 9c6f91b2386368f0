package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(nil, 10, 50*time.Millisecond)
}

func collect(ch <-chan Event, n int) []Event {
	out := make([]Event, 0, n)
	for ev := range ch {
		out = append(out, ev)
		if len(out) == n {
			break
		}
	}
	return out
}

func TestManagerBuffersBeforeFirstConsumer(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.PrepareTask("task-1")
	m.SendEvent(ctx, "task-1", EventTypeStatusUpdate, map[string]any{"state": "working"})
	m.SendEvent(ctx, "task-1", EventTypeFinalResponse, map[string]any{"state": "completed"})
	assert.Equal(t, 2, m.BufferedCount("task-1"))

	// The first subscriber drains the backlog in order, then goes live.
	ch := m.Subscribe("task-1")
	m.SendEvent(ctx, "task-1", EventTypeError, map[string]any{"error": "late"})

	events := collect(ch, 3)
	require.Len(t, events, 3)
	assert.Equal(t, EventTypeStatusUpdate, events[0].Type)
	assert.Equal(t, EventTypeFinalResponse, events[1].Type)
	assert.Equal(t, EventTypeError, events[2].Type)
	assert.Contains(t, events[0].Data, `"working"`)
	assert.Equal(t, 0, m.BufferedCount("task-1"))
}

func TestManagerFanOut(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	ch1 := m.Subscribe("task-1")
	ch2 := m.Subscribe("task-1")
	assert.Equal(t, 2, m.ConsumerCount("task-1"))

	m.SendEvent(ctx, "task-1", EventTypeStatusUpdate, map[string]any{"n": 1})

	assert.Equal(t, EventTypeStatusUpdate, (<-ch1).Type)
	assert.Equal(t, EventTypeStatusUpdate, (<-ch2).Type)
}

func TestManagerDropsSlowConsumer(t *testing.T) {
	m := NewManager(nil, 1, 10*time.Millisecond)
	ctx := context.Background()

	slow := m.Subscribe("task-1")
	live := m.Subscribe("task-1")

	// Fill the slow consumer's queue; the second event cannot be delivered
	// within the put timeout, so the consumer is dropped and its channel
	// closed. The healthy consumer keeps receiving.
	m.SendEvent(ctx, "task-1", EventTypeStatusUpdate, map[string]any{"n": 1})
	<-live
	m.SendEvent(ctx, "task-1", EventTypeStatusUpdate, map[string]any{"n": 2})
	<-live
	assert.Equal(t, 1, m.ConsumerCount("task-1"))

	// Drain the one delivered event, then observe the close.
	<-slow
	_, open := <-slow
	assert.False(t, open)
}

func TestManagerUnsubscribe(t *testing.T) {
	m := newTestManager()

	ch := m.Subscribe("task-1")
	m.Unsubscribe("task-1", ch)
	assert.Equal(t, 0, m.ConsumerCount("task-1"))

	_, open := <-ch
	assert.False(t, open)
}

func TestManagerCloseTask(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	t.Run("closes live queues", func(t *testing.T) {
		ch := m.Subscribe("task-1")
		m.CloseTask("task-1")
		_, open := <-ch
		assert.False(t, open)
	})

	t.Run("keeps unseen backlog", func(t *testing.T) {
		m.PrepareTask("task-2")
		m.SendEvent(ctx, "task-2", EventTypeFinalResponse, map[string]any{"state": "completed"})
		m.CloseTask("task-2")

		// A client that raced the completion still gets the backlog.
		ch := m.Subscribe("task-2")
		ev := <-ch
		assert.Equal(t, EventTypeFinalResponse, ev.Type)
	})
}

func TestManagerBackgroundSkipsMemoryBufferOnceAttached(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.RegisterBackgroundTask(ctx, "task-1", "session-1", "user-1")
	assert.True(t, m.IsBackgroundTask("task-1"))

	// First attach-and-detach marks the task as everAttached.
	ch := m.Subscribe("task-1")
	m.Unsubscribe("task-1", ch)

	// With no consumer, events for an already-attached background task must
	// not accumulate on the heap.
	m.SendEvent(ctx, "task-1", EventTypeStatusUpdate, map[string]any{"n": 1})
	assert.Equal(t, 0, m.BufferedCount("task-1"))
}

func TestManagerSendError(t *testing.T) {
	m := newTestManager()
	ch := m.Subscribe("task-1")

	m.SendError(context.Background(), "task-1", "agent unavailable")

	ev := <-ch
	assert.Equal(t, EventTypeError, ev.Type)
	assert.JSONEq(t, `{"error":"agent unavailable"}`, ev.Data)
}
