package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads gateway.yaml from configDir, expands environment
// variables, merges defaults for absent sections, and validates the result.
// A missing file is not an error — the gateway runs on defaults.
func Initialize(configDir string) (*Config, error) {
	cfg := defaults()

	path := filepath.Join(configDir, "gateway.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("No gateway.yaml found, using built-in defaults", "path", path)
			cfg.Retention.Validate()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	expanded := ExpandEnv(data)

	var loaded Config
	if err := yaml.Unmarshal(expanded, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Loaded sections override defaults field-by-field.
	if err := mergo.Merge(cfg, &loaded, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	cfg.Retention.Validate()

	if err := validate(cfg); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded",
		"path", path,
		"namespace", cfg.System.Namespace,
		"scheduler_enabled", cfg.Scheduler.Enabled)

	return cfg, nil
}

// defaults returns the fully populated built-in configuration.
func defaults() *Config {
	return &Config{
		System: &SystemConfig{
			Namespace:   "default",
			GatewayType: "webui",
		},
		Bus: &BusConfig{
			URL:           "nats://localhost:4222",
			ClientID:      "agent-mesh-gateway",
			MaxReconnects: -1,
		},
		SSE: &SSEConfig{
			MaxQueueSize: 200,
			PutTimeout:   100 * time.Millisecond,
			IdleTimeout:  120 * time.Second,
		},
		Registry: &RegistryConfig{
			AgentMaxMissedHeartbeats: 30,
			GatewayTTL:               90 * time.Second,
			HealthCheckInterval:      10 * time.Second,
		},
		Scheduler: DefaultSchedulerConfig(),
		Retention: DefaultRetentionConfig(),
		Features: &FeatureFlags{
			Persistence:        true,
			Feedback:           true,
			PromptLibrary:      true,
			PromptAIAssisted:   true,
			Scheduler:          true,
			DocumentConversion: true,
		},
		Auth: &AuthConfig{
			Enabled:   false,
			DevUserID: "sam_dev_user",
		},
		Monitor: &MonitorConfig{
			SweepInterval:           30 * time.Second,
			DefaultMaxExecutionTime: 30 * time.Minute,
		},
		LLM: &LLMConfig{
			Addr: "localhost:50051",
		},
	}
}

// validate rejects configurations the gateway cannot run with.
func validate(cfg *Config) error {
	if cfg.System.Namespace == "" {
		return fmt.Errorf("system.namespace is required")
	}
	if cfg.Bus.URL == "" {
		return fmt.Errorf("bus.url is required")
	}
	if cfg.SSE.MaxQueueSize < 1 {
		return fmt.Errorf("sse.max_queue_size must be positive, got %d", cfg.SSE.MaxQueueSize)
	}
	if cfg.Scheduler.HeartbeatIntervalSeconds < 1 {
		return fmt.Errorf("scheduler.heartbeat_interval_seconds must be positive")
	}
	if cfg.Scheduler.LeaseDurationSeconds <= cfg.Scheduler.HeartbeatIntervalSeconds {
		return fmt.Errorf("scheduler.lease_duration_seconds (%d) must exceed heartbeat interval (%d)",
			cfg.Scheduler.LeaseDurationSeconds, cfg.Scheduler.HeartbeatIntervalSeconds)
	}
	return nil
}
