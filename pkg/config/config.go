// Package config loads and validates the gateway configuration from
// gateway.yaml plus environment variables.
package config

import (
	"time"
)

// Config is the fully loaded and validated gateway configuration.
type Config struct {
	System    *SystemConfig    `yaml:"system"`
	Bus       *BusConfig       `yaml:"bus"`
	SSE       *SSEConfig       `yaml:"sse"`
	Registry  *RegistryConfig  `yaml:"registry"`
	Scheduler *SchedulerConfig `yaml:"scheduler"`
	Retention *RetentionConfig `yaml:"retention"`
	Features  *FeatureFlags    `yaml:"features"`
	Auth      *AuthConfig      `yaml:"auth"`
	Monitor   *MonitorConfig   `yaml:"monitor"`
	LLM       *LLMConfig       `yaml:"llm"`
}

// SystemConfig groups system-wide settings.
type SystemConfig struct {
	// GatewayID identifies this gateway instance on the bus. Defaults to the
	// pod id resolved at startup.
	GatewayID string `yaml:"gateway_id"`

	// Namespace is the administrative partition used as the topic prefix
	// (with a trailing slash) and for scheduler scoping.
	Namespace string `yaml:"namespace"`

	// GatewayType appears in this gateway's card extensions.
	GatewayType string `yaml:"gateway_type"`

	// DeploymentID appears in this gateway's card extensions.
	DeploymentID string `yaml:"deployment_id"`
}

// BusConfig holds pub/sub bus connection settings.
type BusConfig struct {
	URL           string `yaml:"url"`
	ClientID      string `yaml:"client_id"`
	MaxReconnects int    `yaml:"max_reconnects"`
}

// SSEConfig holds SSE fan-out tuning.
type SSEConfig struct {
	// MaxQueueSize bounds each consumer queue. A consumer whose queue is
	// full when an event arrives is dropped.
	MaxQueueSize int `yaml:"max_queue_size"`

	// PutTimeout bounds how long a producer waits on a slow consumer queue.
	PutTimeout time.Duration `yaml:"put_timeout"`

	// IdleTimeout is how long an SSE generator waits on its queue before
	// probing for client disconnect.
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// RegistryConfig holds agent and gateway discovery tuning.
type RegistryConfig struct {
	// AgentMaxMissedHeartbeats is how many health-check cycles an agent may
	// miss before eviction.
	AgentMaxMissedHeartbeats int `yaml:"agent_max_missed_heartbeats"`

	// GatewayTTL is how long a gateway card stays fresh without a heartbeat.
	GatewayTTL time.Duration `yaml:"gateway_ttl"`

	// HealthCheckInterval is how often the health checker runs.
	HealthCheckInterval time.Duration `yaml:"health_check_interval"`
}

// MonitorConfig holds background-task monitor tuning.
type MonitorConfig struct {
	// SweepInterval is how often the timeout sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// DefaultMaxExecutionTime applies to background tasks that did not set
	// their own limit.
	DefaultMaxExecutionTime time.Duration `yaml:"default_max_execution_time"`
}

// FeatureFlags are reported by GET /config. Flags that depend on persistence
// are forced off when the database is unavailable, so the frontend always
// sees resolved capability rather than intent.
type FeatureFlags struct {
	Persistence          bool `yaml:"persistence" json:"persistence"`
	Feedback             bool `yaml:"feedback" json:"feedback"`
	PromptLibrary        bool `yaml:"prompt_library" json:"promptLibrary"`
	PromptAIAssisted     bool `yaml:"prompt_ai_assisted" json:"promptAIAssisted"`
	PromptVersionHistory bool `yaml:"prompt_version_history" json:"promptVersionHistory"`
	Scheduler            bool `yaml:"scheduler" json:"scheduler"`
	DocumentConversion   bool `yaml:"document_conversion" json:"documentConversion"`
}

// AuthConfig controls identity resolution. With Enabled=false every request
// runs as DevUserID.
type AuthConfig struct {
	Enabled   bool   `yaml:"enabled"`
	DevUserID string `yaml:"dev_user_id"`
}

// LLMConfig holds the gRPC LLM service connection used for summarization and
// the builder assistants.
type LLMConfig struct {
	Addr         string `yaml:"addr"`
	DefaultModel string `yaml:"default_model"`
}
