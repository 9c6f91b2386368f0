package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gateway.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitializeDefaults(t *testing.T) {
	// No gateway.yaml at all: the gateway runs on built-in defaults.
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.System.Namespace)
	assert.Equal(t, "nats://localhost:4222", cfg.Bus.URL)
	assert.Equal(t, 200, cfg.SSE.MaxQueueSize)
	assert.Equal(t, 90*time.Second, cfg.Registry.GatewayTTL)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 30, cfg.Scheduler.HeartbeatIntervalSeconds)
	assert.Equal(t, 60, cfg.Scheduler.LeaseDurationSeconds)
	assert.Equal(t, 90, cfg.Retention.TaskRetentionDays)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "sam_dev_user", cfg.Auth.DevUserID)
}

func TestInitializeOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `
system:
  namespace: prod
  gateway_type: slack
bus:
  url: nats://bus.internal:4222
sse:
  max_queue_size: 500
scheduler:
  orchestrator_delegated: true
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.System.Namespace)
	assert.Equal(t, "slack", cfg.System.GatewayType)
	assert.Equal(t, "nats://bus.internal:4222", cfg.Bus.URL)
	assert.Equal(t, 500, cfg.SSE.MaxQueueSize)
	assert.True(t, cfg.Scheduler.OrchestratorDelegated)

	// Untouched sections keep their defaults.
	assert.Equal(t, 90*time.Second, cfg.Registry.GatewayTTL)
	assert.True(t, cfg.Scheduler.Enabled)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_BUS_URL", "nats://expanded:4222")
	dir := writeConfig(t, `
bus:
  url: "{{.TEST_BUS_URL}}"
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "nats://expanded:4222", cfg.Bus.URL)
}

func TestInitializeRejectsInvalid(t *testing.T) {
	t.Run("lease not exceeding heartbeat", func(t *testing.T) {
		dir := writeConfig(t, `
scheduler:
  heartbeat_interval_seconds: 60
  lease_duration_seconds: 60
`)
		_, err := Initialize(dir)
		assert.ErrorContains(t, err, "lease_duration_seconds")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := writeConfig(t, "system: [")
		_, err := Initialize(dir)
		assert.Error(t, err)
	})
}

func TestRetentionValidateClamps(t *testing.T) {
	c := &RetentionConfig{
		TaskRetentionDays:     0,
		FeedbackRetentionDays: -3,
		SSEEventRetentionDays: 0,
		CleanupIntervalHours:  0,
		BatchSize:             50000,
	}
	c.Validate()

	assert.Equal(t, 1, c.TaskRetentionDays)
	assert.Equal(t, 1, c.FeedbackRetentionDays)
	assert.Equal(t, 1, c.SSEEventRetentionDays)
	assert.Equal(t, 1, c.CleanupIntervalHours)
	assert.Equal(t, 10000, c.BatchSize)
	assert.Equal(t, time.Hour, c.CleanupInterval())
}

func TestExpandEnvMissingVariable(t *testing.T) {
	out := ExpandEnv([]byte("value: {{.DEFINITELY_NOT_SET_ANYWHERE}}"))
	assert.Equal(t, "value: ", string(out))
}
