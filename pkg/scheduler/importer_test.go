package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

const tasksYAML = `
tasks:
  - name: daily-report
    schedule_type: cron
    schedule_expression: "0 9 * * *"
    target_agent_name: weather
    message: daily forecast please
  - name: hourly-check
    schedule_type: interval
    schedule_expression: 1h
    target_agent_name: monitor
    parts:
      - kind: text
        text: check the dashboards
    enabled: false
  - name: broken
    schedule_type: cron
    schedule_expression: not a cron
    target_agent_name: weather
    message: never imported
`

func TestImportTasksFile(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client, "sam", false)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tasksYAML), 0o600))

	t.Run("valid definitions are provisioned", func(t *testing.T) {
		require.NoError(t, ImportTasksFile(ctx, store, client.Client, "sam", path))

		tasks, err := store.List(ctx, "anyone")
		require.NoError(t, err)
		require.Len(t, tasks, 2, "the invalid definition is skipped")

		byName := map[string]bool{}
		for _, task := range tasks {
			byName[task.Name] = task.Enabled
			// Provisioned tasks are namespace-level.
			assert.Nil(t, task.UserID)
			assert.Equal(t, "system", task.CreatedBy)
		}
		assert.True(t, byName["daily-report"])
		assert.False(t, byName["hourly-check"])
	})

	t.Run("reload is idempotent", func(t *testing.T) {
		require.NoError(t, ImportTasksFile(ctx, store, client.Client, "sam", path))

		tasks, err := store.List(ctx, "anyone")
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("missing file errors", func(t *testing.T) {
		err := ImportTasksFile(ctx, store, client.Client, "sam", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("tasks: ["), 0o600))
		assert.Error(t, ImportTasksFile(ctx, store, client.Client, "sam", bad))
	})
}
