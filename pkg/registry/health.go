package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
)

// HealthChecker periodically steps retry counters for agents that missed a
// heartbeat and evicts agents and gateways past their bounds. Eviction lives
// here, not in the registries: the registries only hold state.
type HealthChecker struct {
	agents   *AgentRegistry
	gateways *GatewayRegistry

	interval   time.Duration
	maxMissed  int
	gatewayTTL time.Duration
}

// NewHealthChecker builds a checker from config, applying defaults for
// unset values.
func NewHealthChecker(agents *AgentRegistry, gateways *GatewayRegistry, cfg *config.RegistryConfig) *HealthChecker {
	interval := cfg.HealthCheckInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	maxMissed := cfg.AgentMaxMissedHeartbeats
	if maxMissed <= 0 {
		maxMissed = 30
	}
	ttl := cfg.GatewayTTL
	if ttl <= 0 {
		ttl = DefaultGatewayTTL
	}
	return &HealthChecker{
		agents:     agents,
		gateways:   gateways,
		interval:   interval,
		maxMissed:  maxMissed,
		gatewayTTL: ttl,
	}
}

// Start runs the check loop until ctx is cancelled.
func (h *HealthChecker) Start(ctx context.Context) {
	slog.Info("Registry health checker started",
		"interval", h.interval, "max_missed", h.maxMissed, "gateway_ttl", h.gatewayTTL)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Registry health checker stopped")
			return
		case <-ticker.C:
			h.checkAgents()
			h.gateways.RemoveExpired(h.gatewayTTL)
		}
	}
}

// checkAgents steps retry counters for agents silent over a full check
// interval and evicts those past the bound.
func (h *HealthChecker) checkAgents() {
	for name, entry := range h.agents.Entries() {
		if time.Since(entry.LastSeen) <= h.interval {
			continue
		}

		retries := h.agents.IncrementRetry(name)
		switch {
		case retries > h.maxMissed:
			slog.Error("Evicting agent after missed heartbeats", "agent", name, "retries", retries)
			h.agents.Remove(name)
		case retries >= 20:
			slog.Error("Agent heartbeats missing", "agent", name, "retries", retries, "max", h.maxMissed)
		case retries >= 10:
			slog.Warn("Agent heartbeats missing", "agent", name, "retries", retries, "max", h.maxMissed)
		default:
			slog.Debug("Agent heartbeat missed", "agent", name, "retries", retries)
		}
	}
}
