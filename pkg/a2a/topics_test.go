package a2a

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNamespace(t *testing.T) {
	assert.Equal(t, "sam/", NormalizeNamespace("sam"))
	assert.Equal(t, "sam/", NormalizeNamespace("sam/"))
	assert.Equal(t, "sam/", NormalizeNamespace("sam//"))
	assert.Equal(t, "/", NormalizeNamespace(""))
}

func TestTopicTaxonomy(t *testing.T) {
	assert.Equal(t, "sam/a2a/v1/agent/weather/request", AgentRequestTopic("sam", "weather"))
	assert.Equal(t, "sam/a2a/v1/gateway/response/gw-1", GatewayResponseTopic("sam", "gw-1"))
	assert.Equal(t, "sam/a2a/v1/gateway/status/gw-1", GatewayStatusTopic("sam", "gw-1"))
	assert.Equal(t, "sam/a2a/v1/scheduler/response/pod-0", SchedulerResponseTopic("sam", "pod-0"))
	assert.Equal(t, "sam/a2a/v1/discovery/agentcards", DiscoveryTopic("sam"))

	// Trailing slash on the namespace must not double up.
	assert.Equal(t, "sam/a2a/v1/agent/weather/request", AgentRequestTopic("sam/", "weather"))
}

func TestIsDiscoveryTopic(t *testing.T) {
	assert.True(t, IsDiscoveryTopic("sam/a2a/v1/discovery/agentcards"))
	assert.True(t, IsDiscoveryTopic("sam/a2a/v1/discovery/agentcards/gw-1"))
	assert.False(t, IsDiscoveryTopic("sam/a2a/v1/agent/weather/request"))
}

func TestToSubject(t *testing.T) {
	assert.Equal(t, "sam.a2a.v1.agent.weather.request", ToSubject("sam/a2a/v1/agent/weather/request"))
	assert.Equal(t, "a.b", ToSubject("/a/b/"))
}
