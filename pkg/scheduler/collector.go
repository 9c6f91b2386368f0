package scheduler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/scheduledtaskexecution"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
)

// Subscriber is the bus read surface the collector needs.
type Subscriber interface {
	Subscribe(topic string, handler bus.Handler) (bus.Subscription, error)
}

const (
	// collectorWriteTimeout bounds the DB work of one reply.
	collectorWriteTimeout = 10 * time.Second

	// maxResponseText caps the agent response stored in the result summary.
	maxResponseText = 1000

	// defaultReapInterval is how often running executions are swept for
	// timeout when no interval is configured.
	defaultReapInterval = time.Minute
)

// ResultCollector consumes replies on the scheduler response topic and
// closes the matching executions. Correlation is by a2a_task_id in the
// database, so a reply can be collected by any instance, including one that
// was not the leader when the task fired.
type ResultCollector struct {
	client       *ent.Client
	subscriber   Subscriber
	namespace    string
	instanceID   string
	reapInterval time.Duration

	sub bus.Subscription
}

// NewResultCollector builds a collector for one instance. A non-positive
// reapInterval falls back to the default.
func NewResultCollector(client *ent.Client, subscriber Subscriber, namespace, instanceID string, reapInterval time.Duration) *ResultCollector {
	if reapInterval <= 0 {
		reapInterval = defaultReapInterval
	}
	return &ResultCollector{
		client:       client,
		subscriber:   subscriber,
		namespace:    namespace,
		instanceID:   instanceID,
		reapInterval: reapInterval,
	}
}

// Start subscribes to the response topic and launches the timeout reaper.
func (c *ResultCollector) Start(ctx context.Context) error {
	topic := a2a.SchedulerResponseTopic(c.namespace, c.instanceID)
	sub, err := c.subscriber.Subscribe(topic, c.handleMessage)
	if err != nil {
		return err
	}
	c.sub = sub
	slog.Info("Scheduler result collector started", "topic", topic)

	go c.reapLoop(ctx)
	return nil
}

// Stop drops the subscription.
func (c *ResultCollector) Stop() {
	if c.sub != nil {
		if err := c.sub.Unsubscribe(); err != nil {
			slog.Warn("Failed to unsubscribe scheduler collector", "error", err)
		}
		c.sub = nil
	}
}

func (c *ResultCollector) handleMessage(msg *bus.Message) {
	var resp a2a.Response
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		slog.Warn("Dropping unparseable scheduler reply", "topic", msg.Topic, "error", err)
		return
	}
	if resp.ID == "" {
		slog.Warn("Dropping scheduler reply without task id", "topic", msg.Topic)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), collectorWriteTimeout)
	defer cancel()

	execution, err := c.findExecution(ctx, resp.ID)
	if err != nil {
		slog.Error("Failed to look up execution for reply", "a2a_task_id", resp.ID, "error", err)
		return
	}
	if execution == nil {
		// Already closed (timeout reaper, duplicate reply) or unknown.
		slog.Debug("No open execution for scheduler reply", "a2a_task_id", resp.ID)
		return
	}

	if resp.Error != nil {
		c.closeFailed(ctx, execution, resp.Error)
		return
	}

	result, err := a2a.DecodeResult(resp.Result)
	if err != nil {
		c.closeFailed(ctx, execution, &a2a.ResponseError{
			Code:    a2a.ErrorCodeInternal,
			Message: "malformed agent response: " + err.Error(),
		})
		return
	}
	if result.Kind != a2a.KindTask {
		// Intermediate update on a RUN_BASED request; only the terminal
		// task object closes the execution.
		slog.Debug("Ignoring intermediate scheduler update",
			"a2a_task_id", resp.ID, "kind", result.Kind)
		return
	}

	c.closeCompleted(ctx, execution, result.Task)
}

// findExecution resolves a reply to its open execution by a2a task id.
func (c *ResultCollector) findExecution(ctx context.Context, a2aTaskID string) (*ent.ScheduledTaskExecution, error) {
	execution, err := c.client.ScheduledTaskExecution.Query().
		Where(
			scheduledtaskexecution.A2aTaskID(a2aTaskID),
			scheduledtaskexecution.StatusIn(
				scheduledtaskexecution.StatusPending,
				scheduledtaskexecution.StatusRunning,
			),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, classifyErr("find execution", err)
	}
	return execution, nil
}

func (c *ResultCollector) closeCompleted(ctx context.Context, execution *ent.ScheduledTaskExecution, task *a2a.Task) {
	status := scheduledtaskexecution.StatusCompleted
	switch task.Status.State {
	case a2a.StateFailed:
		status = scheduledtaskexecution.StatusFailed
	case a2a.StateCanceled:
		status = scheduledtaskexecution.StatusCancelled
	}

	summary := buildResultSummary(task)
	update := execution.Update().
		SetStatus(status).
		SetCompletedAt(time.Now().UnixMilli()).
		SetResultSummary(summary)
	if artifacts := materializeArtifacts(execution.ID, task.Artifacts); len(artifacts) > 0 {
		update.SetArtifacts(artifacts)
	}
	if status == scheduledtaskexecution.StatusFailed {
		if text := finalText(task); text != "" {
			update.SetErrorMessage(truncate(text, maxResponseText))
		}
	}

	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to close execution", "execution_id", execution.ID, "error", err)
		return
	}
	slog.Info("Scheduled execution closed",
		"execution_id", execution.ID, "status", status, "state", task.Status.State)
}

func (c *ResultCollector) closeFailed(ctx context.Context, execution *ent.ScheduledTaskExecution, respErr *a2a.ResponseError) {
	summary := map[string]any{"errorCode": respErr.Code}
	if len(respErr.Data) > 0 {
		summary["errorData"] = json.RawMessage(respErr.Data)
	}

	err := execution.Update().
		SetStatus(scheduledtaskexecution.StatusFailed).
		SetErrorMessage(truncate(respErr.Message, maxResponseText)).
		SetCompletedAt(time.Now().UnixMilli()).
		SetResultSummary(summary).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to close failed execution", "execution_id", execution.ID, "error", err)
		return
	}
	slog.Warn("Scheduled execution failed",
		"execution_id", execution.ID, "code", respErr.Code, "message", respErr.Message)
}

// reapLoop times out executions whose agent never answered.
func (c *ResultCollector) reapLoop(ctx context.Context) {
	ticker := time.NewTicker(c.reapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.reapStale(ctx)
		}
	}
}

// reapStale marks running executions as timed out once startedAt plus the
// task's timeoutSeconds has passed.
func (c *ResultCollector) reapStale(ctx context.Context) {
	executions, err := c.client.ScheduledTaskExecution.Query().
		Where(scheduledtaskexecution.StatusEQ(scheduledtaskexecution.StatusRunning)).
		WithScheduledTask().
		All(ctx)
	if err != nil {
		slog.Error("Failed to query running executions for reaping", "error", err)
		return
	}

	now := time.Now().UnixMilli()
	for _, execution := range executions {
		if execution.StartedAt == nil {
			continue
		}
		timeoutSeconds := 300
		if task := execution.Edges.ScheduledTask; task != nil && task.TimeoutSeconds > 0 {
			timeoutSeconds = task.TimeoutSeconds
		}
		deadline := *execution.StartedAt + int64(timeoutSeconds)*1000
		if now < deadline {
			continue
		}

		err := execution.Update().
			SetStatus(scheduledtaskexecution.StatusTimeout).
			SetErrorMessage("execution timed out waiting for agent response").
			SetCompletedAt(now).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to time out execution", "execution_id", execution.ID, "error", err)
			continue
		}
		slog.Warn("Scheduled execution timed out",
			"execution_id", execution.ID, "timeout_seconds", timeoutSeconds)
	}
}

// buildResultSummary projects the terminal task object into the stored
// summary: final state, the agent's response text, and a truncated history.
func buildResultSummary(task *a2a.Task) map[string]any {
	summary := map[string]any{"state": task.Status.State}
	if text := finalText(task); text != "" {
		summary["agentResponse"] = truncate(text, maxResponseText)
	}
	if len(task.History) > 0 {
		history := make([]map[string]any, 0, len(task.History))
		for _, m := range task.History {
			history = append(history, map[string]any{
				"role": m.Role,
				"text": truncate(m.Text(), 200),
			})
		}
		summary["history"] = history
	}
	if len(task.Metadata) > 0 {
		summary["metadata"] = a2a.SanitizeMap(task.Metadata)
	}
	return summary
}

// materializeArtifacts stores name/uri references only; artifact bytes never
// land in the execution row.
func materializeArtifacts(executionID string, artifacts []a2a.Artifact) []map[string]any {
	if len(artifacts) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(artifacts))
	for _, a := range artifacts {
		uri := ""
		for _, p := range a.Parts {
			if p.File != nil && p.File.URI != "" {
				uri = p.File.URI
				break
			}
		}
		if uri == "" {
			uri = "artifact://" + executionID + "/" + a.ArtifactID
		}
		out = append(out, map[string]any{
			"artifactId": a.ArtifactID,
			"name":       a.Name,
			"uri":        uri,
		})
	}
	return out
}

// finalText is the agent's final status message text, the RUN_BASED result
// channel.
func finalText(task *a2a.Task) string {
	if task.Status.Message == nil {
		return ""
	}
	return task.Status.Message.Text()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
