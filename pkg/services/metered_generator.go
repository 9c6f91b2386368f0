package services

import (
	"context"
	"log/slog"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/llm"
)

// Credit rates per raw token, by transaction type. 1,000,000 credits = $1.
const (
	promptRate     = 2.5
	completionRate = 10.0
	cachedRate     = 0.25
)

// usageSourceGateway tags transactions originating from the gateway's own
// LLM calls (summarization, builder assistant) rather than agent traffic.
const usageSourceGateway = "gateway"

type usageActorKey struct{}

type usageActor struct {
	userID string
	taskID string
}

// WithUsageActor annotates ctx with the user (and optionally the task) a
// subsequent LLM call should be billed to.
func WithUsageActor(ctx context.Context, userID, taskID string) context.Context {
	return context.WithValue(ctx, usageActorKey{}, usageActor{userID: userID, taskID: taskID})
}

// MeteredGenerator decorates a Generator with token accounting. Every
// completion that reports usage is folded into the acting user's transaction
// log; accounting failures are logged and never affect the completion.
type MeteredGenerator struct {
	inner llm.Generator
	usage *UsageService
}

// NewMeteredGenerator wraps inner with accounting through usage.
func NewMeteredGenerator(inner llm.Generator, usage *UsageService) *MeteredGenerator {
	return &MeteredGenerator{inner: inner, usage: usage}
}

// Complete proxies to the wrapped generator and records the reported token
// usage. Calls with no actor on the context are billed to "system".
func (g *MeteredGenerator) Complete(ctx context.Context, req llm.Request) (string, *llm.Usage, error) {
	text, usage, err := g.inner.Complete(ctx, req)
	if err != nil || usage == nil {
		return text, usage, err
	}

	actor, _ := ctx.Value(usageActorKey{}).(usageActor)
	if actor.userID == "" {
		actor.userID = "system"
	}

	g.record(ctx, actor, req.Model, "prompt", usage.PromptTokens, promptRate)
	g.record(ctx, actor, req.Model, "completion", usage.CompletionTokens, completionRate)
	g.record(ctx, actor, req.Model, "cached", usage.CachedTokens, cachedRate)
	return text, usage, nil
}

func (g *MeteredGenerator) record(ctx context.Context, actor usageActor, model, usageType string, tokens int64, rate float64) {
	if tokens <= 0 {
		return
	}
	err := g.usage.RecordUsage(ctx, TokenUsage{
		UserID:    actor.userID,
		TaskID:    actor.taskID,
		Type:      usageType,
		Model:     model,
		RawTokens: tokens,
		Rate:      rate,
		Source:    usageSourceGateway,
	})
	if err != nil {
		slog.Warn("Failed to record token usage",
			"user_id", actor.userID, "type", usageType, "error", err)
	}
}
