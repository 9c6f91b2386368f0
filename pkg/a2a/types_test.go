package a2a

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	req, err := NewRequest("task-1", MethodSendMessage, MessageSendParams{
		Message: Message{
			Kind:      "message",
			MessageID: "msg-1",
			Role:      "user",
			Parts:     []Part{TextPart("hello")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2.0", req.JSONRPC)
	assert.Equal(t, "task-1", req.ID)
	assert.Equal(t, MethodSendMessage, req.Method)

	raw, err := req.Marshal()
	require.NoError(t, err)

	var decoded Request
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, req.ID, decoded.ID)

	var params MessageSendParams
	require.NoError(t, json.Unmarshal(decoded.Params, &params))
	assert.Equal(t, "hello", params.Message.Text())
}

func TestDecodeResult(t *testing.T) {
	t.Run("task", func(t *testing.T) {
		raw := []byte(`{"kind":"task","id":"task-1","status":{"state":"completed","message":{"kind":"message","role":"agent","parts":[{"kind":"text","text":"done"}]}}}`)
		result, err := DecodeResult(raw)
		require.NoError(t, err)
		assert.Equal(t, KindTask, result.Kind)
		require.NotNil(t, result.Task)
		assert.Equal(t, StateCompleted, result.Task.Status.State)
		assert.Equal(t, "done", result.Task.Status.Message.Text())
	})

	t.Run("status update", func(t *testing.T) {
		raw := []byte(`{"kind":"status-update","taskId":"task-1","status":{"state":"working"}}`)
		result, err := DecodeResult(raw)
		require.NoError(t, err)
		assert.Equal(t, KindStatusUpdate, result.Kind)
		require.NotNil(t, result.StatusUpdate)
		assert.Equal(t, StateWorking, result.StatusUpdate.Status.State)
	})

	t.Run("artifact update", func(t *testing.T) {
		raw := []byte(`{"kind":"artifact-update","taskId":"task-1","artifact":{"artifactId":"a-1","name":"report"}}`)
		result, err := DecodeResult(raw)
		require.NoError(t, err)
		assert.Equal(t, KindArtifactUpdate, result.Kind)
		assert.Equal(t, "report", result.ArtifactUpdate.Artifact.Name)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := DecodeResult([]byte(`{"kind":"mystery"}`))
		assert.ErrorContains(t, err, "unknown result kind")
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeResult([]byte(`nope`))
		assert.Error(t, err)
	})
}

func TestMessageText(t *testing.T) {
	m := Message{Parts: []Part{
		TextPart("hello "),
		{Kind: "file", File: &FilePart{Name: "a.txt"}},
		TextPart("world"),
	}}
	assert.Equal(t, "hello world", m.Text())

	empty := Message{}
	assert.Equal(t, "", empty.Text())
}

func TestSanitize(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := map[string]any{
		"ok":   1.5,
		"nan":  math.NaN(),
		"inf":  math.Inf(1),
		"when": now,
		"nested": []any{
			math.Inf(-1),
			map[string]any{"also": math.NaN()},
		},
	}

	out := SanitizeMap(in)
	assert.Equal(t, 1.5, out["ok"])
	assert.Nil(t, out["nan"])
	assert.Nil(t, out["inf"])
	assert.Equal(t, "2026-03-01T12:00:00Z", out["when"])

	nested := out["nested"].([]any)
	assert.Nil(t, nested[0])
	assert.Nil(t, nested[1].(map[string]any)["also"])

	// The sanitized value must marshal cleanly.
	_, err := json.Marshal(out)
	require.NoError(t, err)
}
