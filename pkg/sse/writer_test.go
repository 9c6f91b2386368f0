package sse

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
)

func TestWriterHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	_, err := NewWriter(rec)
	require.NoError(t, err)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))
	assert.Equal(t, 200, rec.Code)
}

func TestWriterFraming(t *testing.T) {
	rec := httptest.NewRecorder()
	w, err := NewWriter(rec)
	require.NoError(t, err)

	require.NoError(t, w.WriteEvent("status_update", `{"state":"working"}`))
	assert.Equal(t, "event: status_update\ndata: {\"state\":\"working\"}\n\n", rec.Body.String())
}

func TestWriterMultilineData(t *testing.T) {
	rec := httptest.NewRecorder()
	w, err := NewWriter(rec)
	require.NoError(t, err)

	// Every line gets its own data: prefix so embedded newlines cannot
	// terminate the event early.
	require.NoError(t, w.WriteEvent("status_update", "line1\nline2"))
	assert.Equal(t, "event: status_update\ndata: line1\ndata: line2\n\n", rec.Body.String())
}

func TestWriterComment(t *testing.T) {
	rec := httptest.NewRecorder()
	w, err := NewWriter(rec)
	require.NoError(t, err)

	require.NoError(t, w.WriteComment("keep-alive"))
	assert.Equal(t, ": keep-alive\n\n", rec.Body.String())
}

func TestFilterReplay(t *testing.T) {
	t.Run("no final response passes through", func(t *testing.T) {
		events := []*ent.SSEEvent{
			{EventType: EventTypeStatusUpdate},
			{EventType: EventTypeArtifactUpdate},
		}
		assert.Len(t, FilterReplay(events), 2)
	})

	t.Run("final response suppresses artifact updates", func(t *testing.T) {
		events := []*ent.SSEEvent{
			{EventType: EventTypeStatusUpdate},
			{EventType: EventTypeArtifactUpdate},
			{EventType: EventTypeFinalResponse},
		}
		out := FilterReplay(events)
		require.Len(t, out, 2)
		assert.Equal(t, EventTypeStatusUpdate, out[0].EventType)
		assert.Equal(t, EventTypeFinalResponse, out[1].EventType)
	})
}
