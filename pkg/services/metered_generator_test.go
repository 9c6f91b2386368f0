package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/llm"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

type stubGenerator struct {
	text  string
	usage *llm.Usage
	err   error
}

func (g *stubGenerator) Complete(_ context.Context, _ llm.Request) (string, *llm.Usage, error) {
	return g.text, g.usage, g.err
}

func TestMeteredGenerator(t *testing.T) {
	client := testdb.NewTestClient(t)
	usageSvc := services.NewUsageService(client.Client)
	ctx := context.Background()

	t.Run("bills the acting user", func(t *testing.T) {
		gen := services.NewMeteredGenerator(&stubGenerator{
			text:  "summary",
			usage: &llm.Usage{PromptTokens: 1000, CompletionTokens: 100, CachedTokens: 400},
		}, usageSvc)

		text, usage, err := gen.Complete(services.WithUsageActor(ctx, "user-1", "task-1"), llm.Request{Model: "gpt-smart"})
		require.NoError(t, err)
		assert.Equal(t, "summary", text)
		require.NotNil(t, usage)

		row, err := usageSvc.GetMonthlyUsage(ctx, "user-1", currentMonth())
		require.NoError(t, err)
		// 1000 prompt * 2.5 + 100 completion * 10.0 + 400 cached * 0.25
		assert.Equal(t, int64(2500), row.PromptUsage)
		assert.Equal(t, int64(1000), row.CompletionUsage)
		assert.Equal(t, int64(100), row.CachedUsage)
		assert.Equal(t, int64(3600), row.TotalUsage)
		assert.Equal(t, int64(3600), row.UsageBySource["gateway"])
	})

	t.Run("no actor falls back to system", func(t *testing.T) {
		gen := services.NewMeteredGenerator(&stubGenerator{
			usage: &llm.Usage{PromptTokens: 10},
		}, usageSvc)

		_, _, err := gen.Complete(ctx, llm.Request{Model: "gpt-smart"})
		require.NoError(t, err)

		row, err := usageSvc.GetMonthlyUsage(ctx, "system", currentMonth())
		require.NoError(t, err)
		assert.Equal(t, int64(25), row.TotalUsage)
	})

	t.Run("zero counts record nothing", func(t *testing.T) {
		gen := services.NewMeteredGenerator(&stubGenerator{usage: &llm.Usage{}}, usageSvc)

		_, _, err := gen.Complete(services.WithUsageActor(ctx, "user-zero", ""), llm.Request{})
		require.NoError(t, err)

		_, err = usageSvc.GetMonthlyUsage(ctx, "user-zero", currentMonth())
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("upstream failure skips accounting", func(t *testing.T) {
		gen := services.NewMeteredGenerator(&stubGenerator{
			err:   errors.New("backend down"),
			usage: &llm.Usage{PromptTokens: 999},
		}, usageSvc)

		_, _, err := gen.Complete(services.WithUsageActor(ctx, "user-err", ""), llm.Request{})
		require.Error(t, err)

		_, err = usageSvc.GetMonthlyUsage(ctx, "user-err", currentMonth())
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
