package sse

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/predicate"
	"github.com/solacecommunity/agent-mesh-gateway/ent/sseevent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/task"
)

// taskMeta is the ownership metadata captured at registration time.
type taskMeta struct {
	sessionID string
	userID    string
	nextSeq   int64
}

// PersistentEventBuffer stores background task events in the database so a
// client can reconnect hours later and replay everything it missed. Event
// sequences are strictly increasing per task in insertion order.
type PersistentEventBuffer struct {
	client *ent.Client

	mu    sync.Mutex
	tasks map[string]*taskMeta
}

// NewPersistentEventBuffer creates a buffer backed by client.
func NewPersistentEventBuffer(client *ent.Client) *PersistentEventBuffer {
	return &PersistentEventBuffer{
		client: client,
		tasks:  make(map[string]*taskMeta),
	}
}

// RegisterTask records the session and user a task belongs to. Events for
// unregistered tasks are dropped — registration happens at dispatch time,
// before the first event can arrive.
func (b *PersistentEventBuffer) RegisterTask(taskID, sessionID, userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.tasks[taskID]; !ok {
		b.tasks[taskID] = &taskMeta{sessionID: sessionID, userID: userID, nextSeq: 1}
	}
}

// UnregisterTask drops the in-memory registration. Persisted rows remain
// until consumed-cleanup or retention removes them.
func (b *PersistentEventBuffer) UnregisterTask(taskID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tasks, taskID)
}

// BufferEvent persists one event for taskID with the next sequence number
// and marks the task row as having buffered events.
func (b *PersistentEventBuffer) BufferEvent(ctx context.Context, taskID, eventType, eventData string) error {
	b.mu.Lock()
	meta, ok := b.tasks[taskID]
	if !ok {
		b.mu.Unlock()
		slog.Warn("Dropping event for unregistered background task", "task_id", taskID)
		return nil
	}
	seq := meta.nextSeq
	meta.nextSeq++
	b.mu.Unlock()

	_, err := b.client.SSEEvent.Create().
		SetTaskID(taskID).
		SetSessionID(meta.sessionID).
		SetUserID(meta.userID).
		SetEventSequence(seq).
		SetEventType(eventType).
		SetEventData(eventData).
		SetCreatedAt(time.Now().UnixMilli()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to buffer event for task %s: %w", taskID, err)
	}

	// The task row may not exist yet for the very first events; the flag is
	// re-derivable from the sse_events table, so a miss here is harmless.
	if err := b.client.Task.Update().
		Where(task.ID(taskID), task.HasBufferedEvents(false)).
		SetHasBufferedEvents(true).
		Exec(ctx); err != nil {
		slog.Debug("Could not flag task as buffered", "task_id", taskID, "error", err)
	}
	return nil
}

// GetBufferedEvents returns all events for taskID in sequence order. When
// markConsumed is set, the returned events are flagged consumed in the same
// call so consumed-cleanup can reclaim them.
func (b *PersistentEventBuffer) GetBufferedEvents(ctx context.Context, taskID string, markConsumed bool) ([]*ent.SSEEvent, error) {
	events, err := b.client.SSEEvent.Query().
		Where(sseevent.TaskID(taskID)).
		Order(ent.Asc(sseevent.FieldEventSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load buffered events for task %s: %w", taskID, err)
	}

	if markConsumed && len(events) > 0 {
		ids := make([]int, 0, len(events))
		for _, ev := range events {
			if !ev.Consumed {
				ids = append(ids, ev.ID)
			}
		}
		if len(ids) > 0 {
			if err := b.client.SSEEvent.Update().
				Where(sseevent.IDIn(ids...)).
				SetConsumed(true).
				SetConsumedAt(time.Now().UnixMilli()).
				Exec(ctx); err != nil {
				// Replay already succeeded; worst case the events are
				// replayed again on the next reconnect.
				slog.Warn("Failed to mark events consumed", "task_id", taskID, "error", err)
			}
		}
	}
	return events, nil
}

// GetEventsSince returns taskID's events created after sinceMs, in sequence
// order. Used for reconnects that supply a last-seen timestamp.
func (b *PersistentEventBuffer) GetEventsSince(ctx context.Context, taskID string, sinceMs int64) ([]*ent.SSEEvent, error) {
	events, err := b.client.SSEEvent.Query().
		Where(sseevent.TaskID(taskID), sseevent.CreatedAtGT(sinceMs)).
		Order(ent.Asc(sseevent.FieldEventSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events since %d for task %s: %w", sinceMs, taskID, err)
	}
	return events, nil
}

// GetUnconsumedEventsForSession returns every unconsumed event across all of
// a session's tasks, ordered by task then sequence.
func (b *PersistentEventBuffer) GetUnconsumedEventsForSession(ctx context.Context, sessionID string) ([]*ent.SSEEvent, error) {
	events, err := b.client.SSEEvent.Query().
		Where(sseevent.SessionID(sessionID), sseevent.Consumed(false)).
		Order(ent.Asc(sseevent.FieldTaskID), ent.Asc(sseevent.FieldEventSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unconsumed events for session %s: %w", sessionID, err)
	}
	return events, nil
}

// CleanupConsumedEvents deletes consumed events older than olderThan,
// returning the number deleted. Batched so a large backlog cannot hold row
// locks for long.
func (b *PersistentEventBuffer) CleanupConsumedEvents(ctx context.Context, olderThan time.Time, batchSize int) (int, error) {
	return b.deleteBatched(ctx, batchSize, []predicate.SSEEvent{
		sseevent.Consumed(true),
		sseevent.ConsumedAtLT(olderThan.UnixMilli()),
	})
}

// DeleteEventsOlderThan deletes events created before cutoff regardless of
// consumed state. Retention calls this on the task retention horizon.
func (b *PersistentEventBuffer) DeleteEventsOlderThan(ctx context.Context, cutoff time.Time, batchSize int) (int, error) {
	return b.deleteBatched(ctx, batchSize, []predicate.SSEEvent{
		sseevent.CreatedAtLT(cutoff.UnixMilli()),
	})
}

// deleteBatched deletes matching rows batchSize at a time, selecting ids
// first since the dialect has no bounded DELETE.
func (b *PersistentEventBuffer) deleteBatched(ctx context.Context, batchSize int, preds []predicate.SSEEvent) (int, error) {
	total := 0
	for {
		ids, err := b.client.SSEEvent.Query().
			Where(preds...).
			Limit(batchSize).
			IDs(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to select events for deletion: %w", err)
		}
		if len(ids) == 0 {
			return total, nil
		}
		n, err := b.client.SSEEvent.Delete().
			Where(sseevent.IDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to delete events: %w", err)
		}
		total += n
		if len(ids) < batchSize {
			return total, nil
		}
	}
}
