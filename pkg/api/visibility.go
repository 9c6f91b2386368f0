package api

import "github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"

// CardVisibility decides which discovered agent cards a user may see on
// /agentCards. The external config-resolver integration implements it from
// per-user scopes against each tool's requiredScopes.
type CardVisibility interface {
	VisibleCard(userID string, card *a2a.AgentCard) bool
}

// allowAllCards is the default: every card is visible, matching
// deployments with authorization disabled.
type allowAllCards struct{}

func (allowAllCards) VisibleCard(string, *a2a.AgentCard) bool { return true }
