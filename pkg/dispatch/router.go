package dispatch

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
)

// Subscriber is the bus read surface the router needs.
type Subscriber interface {
	Subscribe(topic string, handler bus.Handler) (bus.Subscription, error)
}

// TaskStore finalizes the task audit records the dispatcher opened.
// Implemented by services.TaskService.
type TaskStore interface {
	RecordEvent(ctx context.Context, taskID, topic, direction string, payload map[string]any) error
	TouchActivity(ctx context.Context, taskID string, atMs int64) error
	FinalizeTask(ctx context.Context, taskID, status string, endTimeMs int64) error
}

// writeTimeout bounds the DB work done per bus message. The bus consumer
// goroutine is shared; a stuck write must not stall all correlation.
const writeTimeout = 10 * time.Second

// Router consumes this instance's response and status topics and fans each
// event out to the SSE layer and the task log. Correlation is stateless: the
// JSON-RPC response id is the A2A task id.
type Router struct {
	sse   *sse.Manager
	tasks TaskStore

	namespace string
	gatewayID string

	subs []bus.Subscription
}

// NewRouter wires a router for one gateway instance.
func NewRouter(sseManager *sse.Manager, tasks TaskStore, namespace, gatewayID string) *Router {
	return &Router{
		sse:       sseManager,
		tasks:     tasks,
		namespace: namespace,
		gatewayID: gatewayID,
	}
}

// Start subscribes to the instance's reply topics.
func (r *Router) Start(subscriber Subscriber) error {
	for _, topic := range []string{
		a2a.GatewayResponseTopic(r.namespace, r.gatewayID),
		a2a.GatewayStatusTopic(r.namespace, r.gatewayID),
	} {
		sub, err := subscriber.Subscribe(topic, r.handleMessage)
		if err != nil {
			r.Stop()
			return err
		}
		r.subs = append(r.subs, sub)
	}
	slog.Info("Response router started", "gateway_id", r.gatewayID)
	return nil
}

// Stop unsubscribes from the reply topics.
func (r *Router) Stop() {
	for _, sub := range r.subs {
		if err := sub.Unsubscribe(); err != nil {
			slog.Warn("Failed to unsubscribe", "error", err)
		}
	}
	r.subs = nil
}

func (r *Router) handleMessage(msg *bus.Message) {
	if a2a.IsDiscoveryTopic(msg.Topic) {
		return
	}

	var resp a2a.Response
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		slog.Warn("Dropping unparseable bus response", "topic", msg.Topic, "error", err)
		return
	}
	taskID := resp.ID
	if taskID == "" {
		slog.Warn("Dropping bus response without task id", "topic", msg.Topic)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if resp.Error != nil {
		r.handleError(ctx, taskID, msg.Topic, resp.Error)
		return
	}

	result, err := a2a.DecodeResult(resp.Result)
	if err != nil {
		slog.Warn("Dropping response with undecodable result", "task_id", taskID, "error", err)
		r.sse.SendError(ctx, taskID, "malformed agent response")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(resp.Result, &payload); err != nil {
		payload = map[string]any{}
	}

	switch result.Kind {
	case a2a.KindTask:
		r.handleFinal(ctx, taskID, msg.Topic, result.Task, payload)
	case a2a.KindStatusUpdate:
		r.sse.SendEvent(ctx, taskID, sse.EventTypeStatusUpdate, payload)
		r.logEvent(ctx, taskID, msg.Topic, "status_update", payload)
		r.touch(ctx, taskID)
	case a2a.KindArtifactUpdate:
		r.sse.SendEvent(ctx, taskID, sse.EventTypeArtifactUpdate, payload)
		r.logEvent(ctx, taskID, msg.Topic, "artifact_update", payload)
		r.touch(ctx, taskID)
	}
}

// handleFinal delivers the terminal Task result and closes the task's SSE
// fan-out. The event is sent before queues are closed so attached consumers
// see it ahead of the close sentinel.
func (r *Router) handleFinal(ctx context.Context, taskID, topic string, task *a2a.Task, payload map[string]any) {
	r.sse.SendEvent(ctx, taskID, sse.EventTypeFinalResponse, payload)
	r.logEvent(ctx, taskID, topic, "response", payload)

	status := finalStatus(task.Status.State)
	if err := r.tasks.FinalizeTask(ctx, taskID, status, time.Now().UnixMilli()); err != nil {
		slog.Error("Failed to finalize task", "task_id", taskID, "status", status, "error", err)
	}

	r.sse.CloseTask(taskID)
	slog.Info("Task finished", "task_id", taskID, "status", status)
}

// handleError surfaces a JSON-RPC error response as an SSE error event and
// marks the task failed. Per-consumer delivery problems never retry the
// upstream.
func (r *Router) handleError(ctx context.Context, taskID, topic string, respErr *a2a.ResponseError) {
	r.sse.SendError(ctx, taskID, respErr.Message)
	r.logEvent(ctx, taskID, topic, "response", map[string]any{
		"error": map[string]any{
			"code":    respErr.Code,
			"message": respErr.Message,
			"data":    json.RawMessage(respErr.Data),
		},
	})
	if err := r.tasks.FinalizeTask(ctx, taskID, "failed", time.Now().UnixMilli()); err != nil {
		slog.Error("Failed to finalize errored task", "task_id", taskID, "error", err)
	}
	r.sse.CloseTask(taskID)
	slog.Warn("Task failed upstream", "task_id", taskID, "code", respErr.Code, "message", respErr.Message)
}

func (r *Router) logEvent(ctx context.Context, taskID, topic, direction string, payload map[string]any) {
	if err := r.tasks.RecordEvent(ctx, taskID, topic, direction, payload); err != nil {
		slog.Error("Failed to record task event", "task_id", taskID, "direction", direction, "error", err)
	}
}

func (r *Router) touch(ctx context.Context, taskID string) {
	if err := r.tasks.TouchActivity(ctx, taskID, time.Now().UnixMilli()); err != nil {
		slog.Debug("Failed to touch task activity", "task_id", taskID, "error", err)
	}
}

// finalStatus maps an A2A terminal state onto the task audit status.
func finalStatus(state string) string {
	switch state {
	case a2a.StateFailed:
		return "failed"
	case a2a.StateCanceled:
		return "cancelled"
	default:
		return "completed"
	}
}
