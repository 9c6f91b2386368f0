package registry

import (
	"log/slog"
	"sync"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
)

// DefaultGatewayTTL is the liveness horizon for peer gateways when the
// caller does not supply one.
const DefaultGatewayTTL = 90 * time.Second

// GatewayEntry is one tracked peer gateway.
type GatewayEntry struct {
	Card     *a2a.AgentCard
	LastSeen time.Time
}

// GatewayRegistry tracks peer gateways by card name with TTL-based
// liveness. Typed extension fields (gatewayType, namespace, deploymentId)
// are read from the card itself.
type GatewayRegistry struct {
	mu       sync.Mutex
	gateways map[string]*GatewayEntry

	onRemoved []func(id string)
}

// NewGatewayRegistry creates an empty registry.
func NewGatewayRegistry() *GatewayRegistry {
	return &GatewayRegistry{gateways: make(map[string]*GatewayEntry)}
}

// OnRemoved registers a callback fired outside the lock when a gateway is
// removed.
func (r *GatewayRegistry) OnRemoved(fn func(id string)) {
	r.onRemoved = append(r.onRemoved, fn)
}

// AddOrUpdate upserts a gateway card and reports whether it is new. An
// identical re-heartbeat only advances lastSeen.
func (r *GatewayRegistry) AddOrUpdate(card *a2a.AgentCard) bool {
	r.mu.Lock()
	entry, exists := r.gateways[card.Name]
	if exists {
		entry.Card = card
		entry.LastSeen = time.Now()
	} else {
		r.gateways[card.Name] = &GatewayEntry{Card: card, LastSeen: time.Now()}
	}
	r.mu.Unlock()

	if !exists {
		slog.Info("Peer gateway discovered",
			"gateway", card.Name, "type", card.GatewayType(), "namespace", card.Namespace())
	}
	return !exists
}

// Get returns the entry for id.
func (r *GatewayRegistry) Get(id string) (*GatewayEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.gateways[id]
	if !ok {
		return nil, false
	}
	copied := *entry
	return &copied, true
}

// List returns a snapshot of all entries.
func (r *GatewayRegistry) List() []*GatewayEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*GatewayEntry, 0, len(r.gateways))
	for _, entry := range r.gateways {
		copied := *entry
		out = append(out, &copied)
	}
	return out
}

// Expiry evaluates id against ttl and returns whether the gateway has
// expired plus the seconds since it was last seen. An unknown id (no
// lastSeen at all) is reported as (false, 0) — absence of evidence is not a
// death certificate.
func (r *GatewayRegistry) Expiry(id string, ttl time.Duration) (bool, int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.gateways[id]
	if !ok || entry.LastSeen.IsZero() {
		return false, 0
	}
	since := time.Since(entry.LastSeen)
	return since > ttl, int64(since.Seconds())
}

// Remove drops id and reports whether it existed. Removal callbacks run
// after the mutex is released.
func (r *GatewayRegistry) Remove(id string) bool {
	r.mu.Lock()
	_, existed := r.gateways[id]
	delete(r.gateways, id)
	callbacks := r.onRemoved
	r.mu.Unlock()

	if existed {
		slog.Info("Peer gateway removed", "gateway", id)
		for _, fn := range callbacks {
			fn(id)
		}
	}
	return existed
}

// RemoveExpired drops every gateway past ttl and returns the removed ids.
func (r *GatewayRegistry) RemoveExpired(ttl time.Duration) []string {
	r.mu.Lock()
	var expired []string
	for id, entry := range r.gateways {
		if time.Since(entry.LastSeen) > ttl {
			expired = append(expired, id)
			delete(r.gateways, id)
		}
	}
	callbacks := r.onRemoved
	r.mu.Unlock()

	for _, id := range expired {
		slog.Info("Peer gateway expired", "gateway", id)
		for _, fn := range callbacks {
			fn(id)
		}
	}
	return expired
}

// Len returns the number of tracked gateways.
func (r *GatewayRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.gateways)
}
