// Package sse fans task events out to Server-Sent-Events consumers. A
// short-lived in-memory buffer covers the race between task submission and
// the client's stream request; a persistent buffer (buffer.go) covers
// background tasks whose clients reattach much later.
package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
)

// Event is one SSE event ready for delivery. Data is serialized JSON.
type Event struct {
	Type string
	Data string
}

// Event types emitted on the stream.
const (
	EventTypeStatusUpdate   = "status_update"
	EventTypeArtifactUpdate = "artifact_update"
	EventTypeFinalResponse  = "final_response"
	EventTypeError          = "error"
)

// backgroundTask records the metadata given at dispatch time, before any
// task row exists.
type backgroundTask struct {
	sessionID string
	userID    string
}

// Manager fans out events to any number of consumers per task id.
//
// All map mutations happen under one mutex; channel sends happen outside the
// critical section with a bounded timeout so a slow consumer can never stall
// the bus loop. Registering a consumer and draining the in-memory buffer is
// a single critical section — no event can fall between "buffer ended" and
// "queue started".
type Manager struct {
	mu sync.Mutex

	// queues holds the live consumer channels per task.
	queues map[string][]chan Event

	// buffers holds events for tasks with no consumer attached yet.
	buffers map[string][]Event

	// everAttached marks tasks that have had at least one consumer. Until
	// then the in-memory buffer is retained indefinitely — the first client
	// must see the backlog.
	everAttached map[string]bool

	// background holds tasks registered for persistent buffering.
	background map[string]backgroundTask

	persistent *PersistentEventBuffer // nil when persistence is disabled

	maxQueueSize int
	putTimeout   time.Duration
}

// NewManager creates a Manager. persistent may be nil.
func NewManager(persistent *PersistentEventBuffer, maxQueueSize int, putTimeout time.Duration) *Manager {
	return &Manager{
		queues:       make(map[string][]chan Event),
		buffers:      make(map[string][]Event),
		everAttached: make(map[string]bool),
		background:   make(map[string]backgroundTask),
		persistent:   persistent,
		maxQueueSize: maxQueueSize,
		putTimeout:   putTimeout,
	}
}

// RegisterBackgroundTask marks taskID for persistent buffering so events are
// recorded even before any client attaches.
func (m *Manager) RegisterBackgroundTask(ctx context.Context, taskID, sessionID, userID string) {
	m.mu.Lock()
	m.background[taskID] = backgroundTask{sessionID: sessionID, userID: userID}
	m.mu.Unlock()

	if m.persistent != nil {
		m.persistent.RegisterTask(taskID, sessionID, userID)
	}
	_ = ctx
}

// PrepareTask ensures taskID has a buffer slot before its request is
// published, closing the race where a reply arrives before the client's
// stream request does.
func (m *Manager) PrepareTask(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buffers[taskID]; !ok && len(m.queues[taskID]) == 0 {
		m.buffers[taskID] = []Event{}
	}
}

// IsBackgroundTask reports whether taskID was registered as background.
func (m *Manager) IsBackgroundTask(taskID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.background[taskID]
	return ok
}

// Subscribe registers a new consumer for taskID and returns its queue. Any
// events buffered before the first consumer attached are delivered first, in
// order. The returned channel is closed when the task ends or the consumer
// is dropped.
func (m *Manager) Subscribe(taskID string) <-chan Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan Event, m.maxQueueSize)

	// Drain the pre-attach buffer into the new queue atomically with
	// registration. The queue is empty and sized maxQueueSize, so only a
	// backlog beyond capacity can drop (oldest kept — clients replay the
	// rest from the persistent buffer).
	if backlog, ok := m.buffers[taskID]; ok {
		for _, ev := range backlog {
			select {
			case ch <- ev:
			default:
				slog.Warn("SSE backlog exceeds queue capacity, truncating",
					"task_id", taskID, "backlog", len(backlog))
			}
		}
		delete(m.buffers, taskID)
	}

	m.queues[taskID] = append(m.queues[taskID], ch)
	m.everAttached[taskID] = true
	return ch
}

// Unsubscribe removes one consumer queue and closes it.
func (m *Manager) Unsubscribe(taskID string, ch <-chan Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeQueueLocked(taskID, ch)
}

// removeQueueLocked removes ch from taskID's queue list and closes it.
// Callers must hold m.mu.
func (m *Manager) removeQueueLocked(taskID string, ch <-chan Event) {
	queues := m.queues[taskID]
	for i, q := range queues {
		if q == ch {
			m.queues[taskID] = append(queues[:i], queues[i+1:]...)
			close(q)
			break
		}
	}
	if len(m.queues[taskID]) == 0 {
		delete(m.queues, taskID)
	}
}

// SendEvent serializes data and delivers it to every consumer of taskID.
//
// With no consumer attached, the event is buffered in memory — unless the
// task is a background task that has already been attached to once, in
// which case the in-memory buffer is skipped (the persistent buffer has it,
// and an unattended long-running task must not grow the heap).
//
// Background task events are always persisted, attached or not.
func (m *Manager) SendEvent(ctx context.Context, taskID, eventType string, data any) {
	payload, err := json.Marshal(a2a.Sanitize(data))
	if err != nil {
		slog.Error("Failed to serialize SSE event", "task_id", taskID, "type", eventType, "error", err)
		return
	}
	ev := Event{Type: eventType, Data: string(payload)}

	m.mu.Lock()
	bg, isBackground := m.background[taskID]
	attached := m.everAttached[taskID]
	queues := make([]chan Event, len(m.queues[taskID]))
	copy(queues, m.queues[taskID])

	if len(queues) == 0 {
		if !(isBackground && attached) {
			m.buffers[taskID] = append(m.buffers[taskID], ev)
		}
	}
	m.mu.Unlock()

	if isBackground && m.persistent != nil {
		if err := m.persistent.BufferEvent(ctx, taskID, eventType, ev.Data); err != nil {
			slog.Error("Failed to persist background task event",
				"task_id", taskID, "session_id", bg.sessionID, "error", err)
		}
	}

	// Queue puts happen outside the mutex with a bounded timeout. A full
	// or stuck queue drops that consumer only.
	for _, q := range queues {
		if !m.putWithTimeout(q, ev) {
			slog.Warn("Dropping slow SSE consumer", "task_id", taskID)
			m.mu.Lock()
			m.removeQueueLocked(taskID, q)
			m.mu.Unlock()
		}
	}
}

// putWithTimeout attempts a bounded send. Returns false if the queue did not
// accept the event in time.
func (m *Manager) putWithTimeout(q chan Event, ev Event) (ok bool) {
	// Sending on a channel another goroutine just closed would panic;
	// treat that as a failed put so the caller's removal is a no-op.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	select {
	case q <- ev:
		return true
	default:
	}

	timer := time.NewTimer(m.putTimeout)
	defer timer.Stop()
	select {
	case q <- ev:
		return true
	case <-timer.C:
		return false
	}
}

// SendError delivers an error event with the standard single-field shape.
func (m *Manager) SendError(ctx context.Context, taskID, message string) {
	m.SendEvent(ctx, taskID, EventTypeError, map[string]any{"error": message})
}

// CloseTask closes every consumer queue for taskID. The in-memory buffer is
// dropped only if a consumer ever attached; a backlog nobody has seen yet is
// kept for the first subscriber.
func (m *Manager) CloseTask(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, q := range m.queues[taskID] {
		close(q)
	}
	delete(m.queues, taskID)

	if m.everAttached[taskID] {
		delete(m.buffers, taskID)
		delete(m.everAttached, taskID)
		delete(m.background, taskID)
	}
}

// ConsumerCount returns the number of attached consumers for taskID.
func (m *Manager) ConsumerCount(taskID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queues[taskID])
}

// BufferedCount returns the size of the in-memory backlog for taskID.
func (m *Manager) BufferedCount(taskID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buffers[taskID])
}

// String implements fmt.Stringer for debug logging.
func (m *Manager) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("sse.Manager{tasks=%d buffered=%d background=%d}",
		len(m.queues), len(m.buffers), len(m.background))
}
