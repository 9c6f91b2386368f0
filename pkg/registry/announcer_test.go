package registry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
)

type capturePublisher struct {
	topic   string
	payload []byte
}

func (p *capturePublisher) Publish(_ context.Context, topic string, payload []byte, _ map[string]string) error {
	p.topic = topic
	p.payload = payload
	return nil
}

func TestCardAnnouncer(t *testing.T) {
	pub := &capturePublisher{}
	announcer, err := NewCardAnnouncer(pub, &config.SystemConfig{
		GatewayID:    "gw-1",
		Namespace:    "sam",
		GatewayType:  "webui",
		DeploymentID: "deploy-7",
	})
	require.NoError(t, err)

	announcer.announce(context.Background())
	assert.Equal(t, "sam/a2a/v1/discovery/agentcards/gw-1", pub.topic)

	var card a2a.AgentCard
	require.NoError(t, json.Unmarshal(pub.payload, &card))
	assert.Equal(t, "gw-1", card.Name)
	assert.True(t, card.IsGateway())
	assert.Equal(t, "webui", card.GatewayType())
	assert.Equal(t, "sam", card.Namespace())
	assert.Equal(t, "deploy-7", card.DeploymentID())
	assert.True(t, card.Capabilities.Streaming)
}
