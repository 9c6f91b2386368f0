// Package registry tracks peers discovered from heartbeat cards on the bus:
// agents that can receive tasks and peer gateways in the same namespace.
package registry

import (
	"log/slog"
	"sync"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
)

// AgentEntry is one tracked agent.
type AgentEntry struct {
	Card       *a2a.AgentCard
	LastSeen   time.Time
	RetryCount int
}

// AgentRegistry tracks agents by card name. A retry counter is stepped by
// the health checker on missed heartbeats and reset by any heartbeat; the
// checker evicts past the configured bound. All callbacks run outside the
// registry mutex.
type AgentRegistry struct {
	mu     sync.Mutex
	agents map[string]*AgentEntry

	onAdded   []func(name string, card *a2a.AgentCard)
	onRemoved []func(name string)
}

// NewAgentRegistry creates an empty registry.
func NewAgentRegistry() *AgentRegistry {
	return &AgentRegistry{agents: make(map[string]*AgentEntry)}
}

// OnAdded registers a callback fired when a previously unknown agent
// appears. Register before the discovery listener starts.
func (r *AgentRegistry) OnAdded(fn func(name string, card *a2a.AgentCard)) {
	r.onAdded = append(r.onAdded, fn)
}

// OnRemoved registers a callback fired when an agent is removed.
func (r *AgentRegistry) OnRemoved(fn func(name string)) {
	r.onRemoved = append(r.onRemoved, fn)
}

// AddOrUpdate upserts a heartbeat card and reports whether the agent is new.
// The retry counter reset and the lastSeen update happen in the same
// critical section as the upsert, so a concurrent health check can never
// observe a fresh heartbeat with a stale counter.
func (r *AgentRegistry) AddOrUpdate(card *a2a.AgentCard) bool {
	r.mu.Lock()
	entry, exists := r.agents[card.Name]
	if exists {
		entry.Card = card
		entry.LastSeen = time.Now()
		entry.RetryCount = 0
	} else {
		r.agents[card.Name] = &AgentEntry{Card: card, LastSeen: time.Now()}
	}
	callbacks := r.onAdded
	r.mu.Unlock()

	if !exists {
		slog.Info("Agent discovered", "agent", card.Name)
		for _, fn := range callbacks {
			fn(card.Name, card)
		}
	}
	return !exists
}

// Get returns the card for name.
func (r *AgentRegistry) Get(name string) (*a2a.AgentCard, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.agents[name]
	if !ok {
		return nil, false
	}
	return entry.Card, true
}

// List returns all known cards, in no particular order.
func (r *AgentRegistry) List() []*a2a.AgentCard {
	r.mu.Lock()
	defer r.mu.Unlock()
	cards := make([]*a2a.AgentCard, 0, len(r.agents))
	for _, entry := range r.agents {
		cards = append(cards, entry.Card)
	}
	return cards
}

// Entries returns a snapshot of name → (lastSeen, retryCount) for the health
// checker.
func (r *AgentRegistry) Entries() map[string]AgentEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]AgentEntry, len(r.agents))
	for name, entry := range r.agents {
		out[name] = *entry
	}
	return out
}

// IncrementRetry steps the retry counter for name and returns the new value.
// Unknown names return 0.
func (r *AgentRegistry) IncrementRetry(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.agents[name]
	if !ok {
		return 0
	}
	entry.RetryCount++
	return entry.RetryCount
}

// Remove drops name and reports whether it existed. Removal callbacks run
// after the mutex is released.
func (r *AgentRegistry) Remove(name string) bool {
	r.mu.Lock()
	_, existed := r.agents[name]
	delete(r.agents, name)
	callbacks := r.onRemoved
	r.mu.Unlock()

	if existed {
		for _, fn := range callbacks {
			fn(name)
		}
	}
	return existed
}

// Len returns the number of tracked agents.
func (r *AgentRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.agents)
}
