package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/llm"
)

type fixedGenerator struct {
	raw string
	err error
}

func (g *fixedGenerator) Complete(_ context.Context, _ llm.Request) (string, *llm.Usage, error) {
	return g.raw, nil, g.err
}

func TestBuilderChat(t *testing.T) {
	ctx := context.Background()

	t.Run("well-formed reply", func(t *testing.T) {
		a := NewTaskBuilderAssistant(&fixedGenerator{
			raw: `{"message":"Got it, daily at 9am.","taskUpdates":{"scheduleType":"cron","scheduleExpression":"0 9 * * *"},"confidence":0.9,"readyToSave":false}`,
		})

		reply, err := a.Chat(ctx, nil, "run it every morning at 9")
		require.NoError(t, err)
		assert.Equal(t, "Got it, daily at 9am.", reply.Message)
		assert.Equal(t, "cron", reply.TaskUpdates["scheduleType"])
		assert.InDelta(t, 0.9, reply.Confidence, 0.001)
		assert.False(t, reply.ReadyToSave)
	})

	t.Run("generator failure degrades to fallback", func(t *testing.T) {
		a := NewTaskBuilderAssistant(&fixedGenerator{err: errors.New("sidecar down")})

		reply, err := a.Chat(ctx, nil, "hello")
		require.NoError(t, err)
		assert.Equal(t, builderFallback.Message, reply.Message)
		assert.False(t, reply.ReadyToSave)
	})

	t.Run("no generator", func(t *testing.T) {
		a := NewTaskBuilderAssistant(nil)
		_, err := a.Chat(ctx, nil, "hello")
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	})

	t.Run("empty message", func(t *testing.T) {
		a := NewTaskBuilderAssistant(&fixedGenerator{})
		_, err := a.Chat(ctx, nil, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestParseBuilderReply(t *testing.T) {
	t.Run("fenced output is salvaged", func(t *testing.T) {
		raw := "Here is my answer:\n```json\n{\"message\":\"ok\",\"confidence\":2}\n```"
		reply := parseBuilderReply(raw)
		assert.Equal(t, "ok", reply.Message)
		// Confidence is clamped into [0,1] and nil updates become empty.
		assert.Equal(t, 1.0, reply.Confidence)
		assert.NotNil(t, reply.TaskUpdates)
	})

	t.Run("garbage falls back", func(t *testing.T) {
		assert.Equal(t, builderFallback, parseBuilderReply("I cannot answer in JSON, sorry."))
		assert.Equal(t, builderFallback, parseBuilderReply(""))
		assert.Equal(t, builderFallback, parseBuilderReply(`{"taskUpdates":{}}`))
	})

	t.Run("negative confidence clamps to zero", func(t *testing.T) {
		reply := parseBuilderReply(`{"message":"ok","confidence":-0.5}`)
		assert.Equal(t, 0.0, reply.Confidence)
	})
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSONObject(`prose {"a":1} more prose`))
	assert.Equal(t, "", extractJSONObject("no braces here"))
	assert.Equal(t, "", extractJSONObject("}{"))
}
