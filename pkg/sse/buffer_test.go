package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func TestPersistentEventBuffer(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffer := NewPersistentEventBuffer(client.Client)
	ctx := context.Background()

	buffer.RegisterTask("task-1", "session-1", "user-1")

	t.Run("assigns strictly increasing sequences", func(t *testing.T) {
		require.NoError(t, buffer.BufferEvent(ctx, "task-1", EventTypeStatusUpdate, `{"n":1}`))
		require.NoError(t, buffer.BufferEvent(ctx, "task-1", EventTypeStatusUpdate, `{"n":2}`))
		require.NoError(t, buffer.BufferEvent(ctx, "task-1", EventTypeFinalResponse, `{"n":3}`))

		events, err := buffer.GetBufferedEvents(ctx, "task-1", false)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, int64(1), events[0].EventSequence)
		assert.Equal(t, int64(2), events[1].EventSequence)
		assert.Equal(t, int64(3), events[2].EventSequence)
		assert.Equal(t, "session-1", events[0].SessionID)
		assert.Equal(t, "user-1", events[0].UserID)
		assert.False(t, events[0].Consumed)
	})

	t.Run("drops events for unregistered tasks", func(t *testing.T) {
		require.NoError(t, buffer.BufferEvent(ctx, "task-unknown", EventTypeStatusUpdate, `{}`))

		events, err := buffer.GetBufferedEvents(ctx, "task-unknown", false)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("marks consumed on replay", func(t *testing.T) {
		events, err := buffer.GetBufferedEvents(ctx, "task-1", true)
		require.NoError(t, err)
		require.Len(t, events, 3)

		reloaded, err := buffer.GetBufferedEvents(ctx, "task-1", false)
		require.NoError(t, err)
		for _, ev := range reloaded {
			assert.True(t, ev.Consumed)
			require.NotNil(t, ev.ConsumedAt)
		}
	})

	t.Run("events since timestamp", func(t *testing.T) {
		events, err := buffer.GetEventsSince(ctx, "task-1", 0)
		require.NoError(t, err)
		assert.Len(t, events, 3)

		events, err = buffer.GetEventsSince(ctx, "task-1", time.Now().UnixMilli()+time.Hour.Milliseconds())
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("unconsumed events for session", func(t *testing.T) {
		buffer.RegisterTask("task-2", "session-1", "user-1")
		require.NoError(t, buffer.BufferEvent(ctx, "task-2", EventTypeStatusUpdate, `{"n":1}`))

		events, err := buffer.GetUnconsumedEventsForSession(ctx, "session-1")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "task-2", events[0].TaskID)
	})

	t.Run("cleanup consumed events", func(t *testing.T) {
		deleted, err := buffer.CleanupConsumedEvents(ctx, time.Now().Add(time.Hour), 2)
		require.NoError(t, err)
		assert.Equal(t, 3, deleted)

		remaining, err := buffer.GetBufferedEvents(ctx, "task-1", false)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("delete by age regardless of consumed", func(t *testing.T) {
		deleted, err := buffer.DeleteEventsOlderThan(ctx, time.Now().Add(time.Hour), 100)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)
	})

	t.Run("unregister stops persistence", func(t *testing.T) {
		buffer.UnregisterTask("task-2")
		require.NoError(t, buffer.BufferEvent(ctx, "task-2", EventTypeStatusUpdate, `{}`))

		events, err := buffer.GetBufferedEvents(ctx, "task-2", false)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
