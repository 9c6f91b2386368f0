package registry

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
)

// announceInterval is how often this gateway re-heartbeats its card. Peers
// evict after their TTL (default 90s), so three beats fit one horizon.
const announceInterval = 30 * time.Second

// Publisher is the bus write surface the announcer needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte, headers map[string]string) error
}

// CardAnnouncer heartbeats this gateway's own card on the discovery topic
// so peer gateways can track fleet health.
type CardAnnouncer struct {
	publisher Publisher
	topic     string
	payload   []byte
}

// NewCardAnnouncer builds the announcer and the card it will publish.
func NewCardAnnouncer(publisher Publisher, system *config.SystemConfig) (*CardAnnouncer, error) {
	card := a2a.AgentCard{
		Name: system.GatewayID,
		Capabilities: a2a.Capabilities{
			Streaming: true,
			Extensions: []a2a.Extension{
				{
					URI: a2a.ExtensionURIGatewayRole,
					Params: map[string]any{
						"gatewayType": system.GatewayType,
						"namespace":   system.Namespace,
					},
				},
				{
					URI: a2a.ExtensionURIDeployment,
					Params: map[string]any{
						"deploymentId": system.DeploymentID,
					},
				},
			},
		},
	}

	payload, err := json.Marshal(card)
	if err != nil {
		return nil, err
	}
	return &CardAnnouncer{
		publisher: publisher,
		topic:     a2a.DiscoveryTopic(system.Namespace) + "/" + system.GatewayID,
		payload:   payload,
	}, nil
}

// Run announces immediately, then on every interval until ctx is cancelled.
func (a *CardAnnouncer) Run(ctx context.Context) {
	a.announce(ctx)

	ticker := time.NewTicker(announceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.announce(ctx)
		}
	}
}

func (a *CardAnnouncer) announce(ctx context.Context) {
	if err := a.publisher.Publish(ctx, a.topic, a.payload, nil); err != nil {
		slog.Warn("Failed to announce gateway card", "topic", a.topic, "error", err)
	}
}
