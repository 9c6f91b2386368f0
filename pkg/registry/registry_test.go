package registry

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
)

func agentCard(name string) *a2a.AgentCard {
	return &a2a.AgentCard{Name: name}
}

func peerCard(name string) *a2a.AgentCard {
	return &a2a.AgentCard{
		Name: name,
		Capabilities: a2a.Capabilities{
			Extensions: []a2a.Extension{{
				URI:    a2a.ExtensionURIGatewayRole,
				Params: map[string]any{"gatewayType": "webui", "namespace": "sam"},
			}},
		},
	}
}

func TestAgentRegistryAddOrUpdate(t *testing.T) {
	r := NewAgentRegistry()

	var added []string
	r.OnAdded(func(name string, _ *a2a.AgentCard) { added = append(added, name) })

	assert.True(t, r.AddOrUpdate(agentCard("weather")))
	assert.False(t, r.AddOrUpdate(agentCard("weather")))
	assert.Equal(t, []string{"weather"}, added)
	assert.Equal(t, 1, r.Len())

	card, ok := r.Get("weather")
	require.True(t, ok)
	assert.Equal(t, "weather", card.Name)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestAgentRegistryHeartbeatResetsRetries(t *testing.T) {
	r := NewAgentRegistry()
	r.AddOrUpdate(agentCard("weather"))

	assert.Equal(t, 1, r.IncrementRetry("weather"))
	assert.Equal(t, 2, r.IncrementRetry("weather"))
	assert.Equal(t, 0, r.IncrementRetry("missing"))

	// Any heartbeat wipes the missed-heartbeat count.
	r.AddOrUpdate(agentCard("weather"))
	entries := r.Entries()
	assert.Equal(t, 0, entries["weather"].RetryCount)
}

func TestAgentRegistryRemove(t *testing.T) {
	r := NewAgentRegistry()

	var removed []string
	r.OnRemoved(func(name string) { removed = append(removed, name) })

	r.AddOrUpdate(agentCard("weather"))
	assert.True(t, r.Remove("weather"))
	assert.False(t, r.Remove("weather"))
	assert.Equal(t, []string{"weather"}, removed)
	assert.Empty(t, r.List())
}

func TestGatewayRegistryExpiry(t *testing.T) {
	r := NewGatewayRegistry()
	r.AddOrUpdate(peerCard("gw-1"))

	t.Run("fresh gateway is not expired", func(t *testing.T) {
		expired, since := r.Expiry("gw-1", time.Minute)
		assert.False(t, expired)
		assert.LessOrEqual(t, since, int64(1))
	})

	t.Run("stale gateway is expired", func(t *testing.T) {
		expired, _ := r.Expiry("gw-1", -time.Second)
		assert.True(t, expired)
	})

	t.Run("unknown gateway is not expired", func(t *testing.T) {
		// Absence of a lastSeen is not evidence of death.
		expired, since := r.Expiry("unknown", time.Minute)
		assert.False(t, expired)
		assert.Equal(t, int64(0), since)
	})
}

func TestGatewayRegistryRemoveExpired(t *testing.T) {
	r := NewGatewayRegistry()

	var removed []string
	r.OnRemoved(func(id string) { removed = append(removed, id) })

	r.AddOrUpdate(peerCard("gw-1"))
	r.AddOrUpdate(peerCard("gw-2"))

	expired := r.RemoveExpired(-time.Second)
	assert.Len(t, expired, 2)
	assert.Len(t, removed, 2)
	assert.Equal(t, 0, r.Len())

	assert.Empty(t, r.RemoveExpired(-time.Second))
}

func TestDiscoveryListenerRoutesCards(t *testing.T) {
	agents := NewAgentRegistry()
	gateways := NewGatewayRegistry()
	l := NewDiscoveryListener(agents, gateways, "sam")

	deliver := func(card *a2a.AgentCard) {
		data, err := json.Marshal(card)
		require.NoError(t, err)
		l.handleCard(&bus.Message{Topic: "sam/a2a/v1/discovery/agentcards", Data: data})
	}

	deliver(agentCard("weather"))
	deliver(peerCard("gw-1"))

	assert.Equal(t, 1, agents.Len())
	assert.Equal(t, 1, gateways.Len())

	// Garbage and nameless cards are dropped without effect.
	l.handleCard(&bus.Message{Topic: "sam/a2a/v1/discovery/agentcards", Data: []byte("not json")})
	l.handleCard(&bus.Message{Topic: "sam/a2a/v1/discovery/agentcards", Data: []byte(`{"name":""}`)})
	assert.Equal(t, 1, agents.Len())
	assert.Equal(t, 1, gateways.Len())
}
