package api

import (
	"log/slog"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
)

// defaultIdleTimeout is how long the stream waits between events before
// probing the client with a comment.
const defaultIdleTimeout = 120 * time.Second

// sseSubscribeHandler handles GET /api/v1/sse/subscribe/:taskId.
//
// All database work (replay lookup) finishes before the first byte is
// streamed; a long-lived stream never pins a connection. Replay runs first,
// then the live queue is attached — the manager drains any events buffered
// in the gap into the queue atomically, so nothing is lost between the two
// phases.
func (s *Server) sseSubscribeHandler(c *echo.Context) error {
	taskID := c.Param("taskId")
	if taskID == "" {
		return rpcError(c, "", services.NewValidationError("taskId", "required"))
	}

	reconnect := c.QueryParam("reconnect") == "true"
	var sinceMs int64
	if v := c.QueryParam("last_event_timestamp"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed < 0 {
			return rpcError(c, taskID, services.NewValidationError("last_event_timestamp", "must be epoch milliseconds"))
		}
		sinceMs = parsed
	}

	// Replay lookup happens on a short-lived DB session, released before
	// streaming starts.
	var replay []*ent.SSEEvent
	if reconnect {
		var err error
		replay, err = s.loadReplay(c, taskID, sinceMs)
		if err != nil {
			return rpcError(c, taskID, err)
		}
	}

	writer, err := sse.NewWriter(c.Response())
	if err != nil {
		return rpcError(c, taskID, err)
	}

	if err := writer.WriteComment("connected"); err != nil {
		return nil
	}
	for _, ev := range sse.FilterReplay(replay) {
		if err := writer.WriteEvent(ev.EventType, ev.EventData); err != nil {
			return nil
		}
	}

	queue := s.sseManager.Subscribe(taskID)
	defer s.sseManager.Unsubscribe(taskID, queue)

	idleTimeout := defaultIdleTimeout
	if s.cfg.SSE != nil && s.cfg.SSE.IdleTimeout > 0 {
		idleTimeout = s.cfg.SSE.IdleTimeout
	}

	ctx := c.Request().Context()
	idle := time.NewTimer(idleTimeout)
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-queue:
			if !ok {
				// Task closed; the final event is already delivered.
				return nil
			}
			if err := writer.WriteEvent(ev.Type, ev.Data); err != nil {
				slog.Debug("SSE client write failed, closing stream", "task_id", taskID)
				return nil
			}
			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(idleTimeout)
		case <-idle.C:
			// Probe for client disconnect; a dead connection errors here.
			if err := writer.WriteComment("keep-alive"); err != nil {
				return nil
			}
			idle.Reset(idleTimeout)
		}
	}
}

// loadReplay fetches persisted events for a reconnecting client. With a
// timestamp the window is everything after it; otherwise the whole backlog
// is returned and marked consumed.
func (s *Server) loadReplay(c *echo.Context, taskID string, sinceMs int64) ([]*ent.SSEEvent, error) {
	ctx := c.Request().Context()
	if sinceMs > 0 {
		return s.buffer.GetEventsSince(ctx, taskID, sinceMs)
	}
	return s.buffer.GetBufferedEvents(ctx, taskID, true)
}
