package registry

import (
	"encoding/json"
	"log/slog"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
)

// Subscriber is the bus read surface the listener needs.
type Subscriber interface {
	Subscribe(topic string, handler bus.Handler) (bus.Subscription, error)
}

// DiscoveryListener consumes heartbeat cards from the discovery subtree and
// routes each to the agent or gateway registry based on the gateway-role
// extension.
type DiscoveryListener struct {
	agents   *AgentRegistry
	gateways *GatewayRegistry

	namespace string
	subs      []bus.Subscription
}

// NewDiscoveryListener wires a listener for one namespace.
func NewDiscoveryListener(agents *AgentRegistry, gateways *GatewayRegistry, namespace string) *DiscoveryListener {
	return &DiscoveryListener{agents: agents, gateways: gateways, namespace: namespace}
}

// Start subscribes to the discovery topic and its per-peer subtopics.
func (l *DiscoveryListener) Start(subscriber Subscriber) error {
	for _, topic := range []string{
		a2a.DiscoveryTopic(l.namespace),
		a2a.DiscoveryTopic(l.namespace) + "/>",
	} {
		sub, err := subscriber.Subscribe(topic, l.handleCard)
		if err != nil {
			l.Stop()
			return err
		}
		l.subs = append(l.subs, sub)
	}
	slog.Info("Discovery listener started", "namespace", l.namespace)
	return nil
}

// Stop unsubscribes from the discovery topics.
func (l *DiscoveryListener) Stop() {
	for _, sub := range l.subs {
		if err := sub.Unsubscribe(); err != nil {
			slog.Warn("Failed to unsubscribe from discovery", "error", err)
		}
	}
	l.subs = nil
}

func (l *DiscoveryListener) handleCard(msg *bus.Message) {
	var card a2a.AgentCard
	if err := json.Unmarshal(msg.Data, &card); err != nil {
		slog.Warn("Dropping unparseable discovery card", "topic", msg.Topic, "error", err)
		return
	}
	if card.Name == "" {
		slog.Warn("Dropping discovery card without name", "topic", msg.Topic)
		return
	}

	if card.IsGateway() {
		l.gateways.AddOrUpdate(&card)
	} else {
		l.agents.AddOrUpdate(&card)
	}
}
