package config

// SchedulerConfig controls the trigger engine and leader election.
type SchedulerConfig struct {
	Enabled bool `yaml:"enabled"`

	// HeartbeatIntervalSeconds is how often the leader extends its lease.
	HeartbeatIntervalSeconds int `yaml:"heartbeat_interval_seconds"`

	// LeaseDurationSeconds is how long a lease lasts without a heartbeat.
	// A follower may take over once expires_at passes.
	LeaseDurationSeconds int `yaml:"lease_duration_seconds"`

	// OrchestratorDelegated reflects scheduled tasks into container
	// orchestrator jobs instead of firing them in-process. Interval
	// triggers below 60s are rejected in this mode.
	OrchestratorDelegated bool `yaml:"orchestrator_delegated"`

	// TasksFile optionally provisions scheduled tasks declaratively at
	// startup.
	TasksFile string `yaml:"tasks_file"`

	// ReaperIntervalSeconds is how often stale running executions are
	// reaped as timed out.
	ReaperIntervalSeconds int `yaml:"reaper_interval_seconds"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		Enabled:                  true,
		HeartbeatIntervalSeconds: 30,
		LeaseDurationSeconds:     60,
		ReaperIntervalSeconds:    60,
	}
}
