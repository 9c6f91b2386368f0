// Package dispatch turns HTTP task submissions into A2A requests on the bus
// and routes the replies back to SSE streams and the task log.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
)

// Publisher is the bus write surface the dispatcher needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte, headers map[string]string) error
}

// TaskLog records task lifecycle for the audit trail. Implemented by
// services.TaskService.
type TaskLog interface {
	RecordSubmission(ctx context.Context, rec services.TaskSubmission) error
}

// Submission is one HTTP task submission.
type Submission struct {
	AgentName          string
	Parts              []a2a.Part
	UserID             string
	ClientID           string
	SessionID          string
	ExternalContext    map[string]string
	Streaming          bool
	Background         bool
	MaxExecutionTimeMs int64
}

// Dispatcher translates submissions into bus requests. The returned taskId
// is generated before publish so the caller and the SSE layer are correlated
// regardless of how fast the agent answers.
type Dispatcher struct {
	publisher Publisher
	sse       *sse.Manager
	tasks     TaskLog

	namespace string
	gatewayID string
}

// NewDispatcher wires a dispatcher for one gateway instance.
func NewDispatcher(publisher Publisher, sseManager *sse.Manager, tasks TaskLog, namespace, gatewayID string) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		sse:       sseManager,
		tasks:     tasks,
		namespace: namespace,
		gatewayID: gatewayID,
	}
}

// SubmitTask publishes an A2A request for sub and returns the task id.
//
// Ordering matters here: the SSE queue (for streaming submissions) and the
// background registration exist before the publish, so a reply can never
// arrive with nowhere to go. Publish is attempted exactly once; a failure
// surfaces as ErrUpstreamUnavailable with no retry.
func (d *Dispatcher) SubmitTask(ctx context.Context, sub Submission) (string, error) {
	if sub.AgentName == "" {
		return "", services.NewValidationError("agent_name", "agent name is required")
	}
	if len(sub.Parts) == 0 {
		return "", services.NewValidationError("message", "message must not be empty")
	}

	taskID := "task-" + uuid.NewString()
	contextID := sub.SessionID
	if contextID == "" {
		contextID = "ctx-" + uuid.NewString()
	}

	method := a2a.MethodSendMessage
	if sub.Streaming {
		method = a2a.MethodStreamMessage
	}

	msg := a2a.Message{
		Kind:      a2a.KindMessage,
		MessageID: uuid.NewString(),
		Role:      "user",
		Parts:     sub.Parts,
		TaskID:    taskID,
		ContextID: contextID,
	}
	req, err := a2a.NewRequest(taskID, method, a2a.MessageSendParams{Message: msg})
	if err != nil {
		return "", err
	}
	payload, err := req.Marshal()
	if err != nil {
		return "", err
	}

	if sub.Streaming {
		d.sse.PrepareTask(taskID)
	}
	if sub.Background {
		d.sse.RegisterBackgroundTask(ctx, taskID, sub.SessionID, sub.UserID)
	}

	if err := d.tasks.RecordSubmission(ctx, services.TaskSubmission{
		TaskID:             taskID,
		UserID:             sub.UserID,
		AgentName:          sub.AgentName,
		InitialRequestText: firstText(sub.Parts),
		Background:         sub.Background,
		MaxExecutionTimeMs: sub.MaxExecutionTimeMs,
		StartTime:          time.Now().UnixMilli(),
	}); err != nil {
		// The audit row is best effort; the submission proceeds without it.
		slog.Error("Failed to record task submission", "task_id", taskID, "error", err)
	}

	headers := map[string]string{
		bus.HeaderReplyTo:     a2a.GatewayResponseTopic(d.namespace, d.gatewayID),
		bus.HeaderStatusTopic: a2a.GatewayStatusTopic(d.namespace, d.gatewayID),
		bus.HeaderClientID:    sub.ClientID,
		bus.HeaderUserID:      sub.UserID,
	}
	topic := a2a.AgentRequestTopic(d.namespace, sub.AgentName)
	if err := d.publisher.Publish(ctx, topic, payload, headers); err != nil {
		slog.Error("Task publish failed", "task_id", taskID, "agent", sub.AgentName, "error", err)
		return "", fmt.Errorf("%w: %v", services.ErrUpstreamUnavailable, err)
	}

	slog.Info("Task dispatched",
		"task_id", taskID, "agent", sub.AgentName, "user_id", sub.UserID,
		"streaming", sub.Streaming, "background", sub.Background)
	return taskID, nil
}

// CancelTask publishes a best-effort tasks/cancel request to the agent that
// owns taskID.
func (d *Dispatcher) CancelTask(ctx context.Context, taskID, agentName, userID string) error {
	if agentName == "" {
		return services.NewValidationError("agent_name", "agent name is required for cancellation")
	}

	req, err := a2a.NewRequest(taskID, a2a.MethodCancelTask, a2a.CancelParams{TaskID: taskID})
	if err != nil {
		return err
	}
	payload, err := req.Marshal()
	if err != nil {
		return err
	}

	headers := map[string]string{
		bus.HeaderReplyTo: a2a.GatewayResponseTopic(d.namespace, d.gatewayID),
		bus.HeaderUserID:  userID,
	}
	topic := a2a.AgentRequestTopic(d.namespace, agentName)
	if err := d.publisher.Publish(ctx, topic, payload, headers); err != nil {
		return fmt.Errorf("%w: %v", services.ErrUpstreamUnavailable, err)
	}

	slog.Info("Cancellation requested", "task_id", taskID, "agent", agentName)
	return nil
}

// firstText returns the first text part, truncated for the audit record.
func firstText(parts []a2a.Part) string {
	const maxLen = 2000
	for _, p := range parts {
		if p.Kind == "text" && p.Text != "" {
			if len(p.Text) > maxLen {
				return p.Text[:maxLen]
			}
			return p.Text
		}
	}
	return ""
}
