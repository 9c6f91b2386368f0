package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func currentMonth() string {
	return time.Now().UTC().Format("2006-01")
}

func TestRecordUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewUsageService(client.Client)
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		err := svc.RecordUsage(ctx, services.TokenUsage{Type: "prompt"})
		assert.True(t, services.IsValidationError(err))

		err = svc.RecordUsage(ctx, services.TokenUsage{UserID: "user-1", Type: "bogus"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("first transaction creates the monthly row", func(t *testing.T) {
		require.NoError(t, svc.RecordUsage(ctx, services.TokenUsage{
			UserID:    "user-1",
			TaskID:    "task-1",
			Type:      "prompt",
			Model:     "gpt-smart",
			RawTokens: 1000,
			Rate:      2.5,
			Source:    "gateway",
		}))

		row, err := svc.GetMonthlyUsage(ctx, "user-1", currentMonth())
		require.NoError(t, err)
		assert.Equal(t, int64(2500), row.TotalUsage)
		assert.Equal(t, int64(2500), row.PromptUsage)
		assert.Equal(t, int64(0), row.CompletionUsage)
		assert.Equal(t, int64(2500), row.UsageByModel["gpt-smart"])
		assert.Equal(t, int64(2500), row.UsageBySource["gateway"])
	})

	t.Run("later transactions fold into the aggregate", func(t *testing.T) {
		require.NoError(t, svc.RecordUsage(ctx, services.TokenUsage{
			UserID:    "user-1",
			Type:      "completion",
			Model:     "gpt-smart",
			RawTokens: 100,
			Rate:      10.0,
			Source:    "gateway",
		}))
		require.NoError(t, svc.RecordUsage(ctx, services.TokenUsage{
			UserID:    "user-1",
			Type:      "cached",
			Model:     "gpt-cheap",
			RawTokens: 400,
			Rate:      0.25,
			Source:    "scheduler",
		}))

		row, err := svc.GetMonthlyUsage(ctx, "user-1", currentMonth())
		require.NoError(t, err)
		assert.Equal(t, int64(2500+1000+100), row.TotalUsage)
		assert.Equal(t, int64(1000), row.CompletionUsage)
		assert.Equal(t, int64(100), row.CachedUsage)
		assert.Equal(t, int64(3500), row.UsageByModel["gpt-smart"])
		assert.Equal(t, int64(100), row.UsageByModel["gpt-cheap"])
		assert.Equal(t, int64(100), row.UsageBySource["scheduler"])
	})

	t.Run("users do not share aggregates", func(t *testing.T) {
		require.NoError(t, svc.RecordUsage(ctx, services.TokenUsage{
			UserID:    "user-2",
			Type:      "prompt",
			Model:     "gpt-smart",
			RawTokens: 10,
			Rate:      2.5,
			Source:    "gateway",
		}))

		row, err := svc.GetMonthlyUsage(ctx, "user-2", currentMonth())
		require.NoError(t, err)
		assert.Equal(t, int64(25), row.TotalUsage)
	})

	t.Run("unknown month", func(t *testing.T) {
		_, err := svc.GetMonthlyUsage(ctx, "user-1", "1999-01")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
