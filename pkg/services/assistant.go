package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/llm"
)

const builderSystemPrompt = `You are a scheduled-task builder assistant. You help the user define a scheduled task (name, schedule, target agent, message) through conversation.

You MUST respond with a single JSON object and nothing else, with exactly these fields:
{
  "message": "<your reply to the user>",
  "taskUpdates": { <fields of the task definition you are proposing, may be empty> },
  "confidence": <number between 0 and 1>,
  "readyToSave": <true only when the task definition is complete and valid>
}`

// BuilderReply is the structured response of one builder assistant turn.
type BuilderReply struct {
	Message     string         `json:"message"`
	TaskUpdates map[string]any `json:"taskUpdates"`
	Confidence  float64        `json:"confidence"`
	ReadyToSave bool           `json:"readyToSave"`
}

// BuilderTurn is one prior turn of the builder conversation.
type BuilderTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// builderFallback is returned whenever the model output cannot be coerced
// into a valid reply.
var builderFallback = BuilderReply{
	Message:     "I couldn't process that. Could you rephrase what you'd like the scheduled task to do?",
	TaskUpdates: map[string]any{},
	Confidence:  0,
	ReadyToSave: false,
}

// TaskBuilderAssistant is the JSON-constrained chat loop behind the
// AI-assisted scheduled-task builder.
type TaskBuilderAssistant struct {
	generator llm.Generator
}

// NewTaskBuilderAssistant creates a new TaskBuilderAssistant.
func NewTaskBuilderAssistant(generator llm.Generator) *TaskBuilderAssistant {
	return &TaskBuilderAssistant{generator: generator}
}

// Chat runs one assistant turn. Malformed model output triggers a
// JSON-object extraction pass; total failure returns the fixed fallback —
// the builder never errors out of a conversation.
func (a *TaskBuilderAssistant) Chat(ctx context.Context, history []BuilderTurn, userMessage string) (*BuilderReply, error) {
	if userMessage == "" {
		return nil, NewValidationError("message", "required")
	}
	if a.generator == nil {
		return nil, ErrUpstreamUnavailable
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: builderSystemPrompt})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: userMessage})

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	raw, _, err := a.generator.Complete(ctx, llm.Request{
		Messages: messages,
		JSONMode: true,
	})
	if err != nil {
		slog.Warn("Builder assistant call failed", "error", err)
		reply := builderFallback
		return &reply, nil
	}

	reply := parseBuilderReply(raw)
	return &reply, nil
}

// parseBuilderReply decodes the model output, retrying on the extracted
// JSON object when the raw text fails.
func parseBuilderReply(raw string) BuilderReply {
	var reply BuilderReply
	if err := json.Unmarshal([]byte(raw), &reply); err == nil && reply.Message != "" {
		return normalizeBuilderReply(reply)
	}

	if extracted := extractJSONObject(raw); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), &reply); err == nil && reply.Message != "" {
			return normalizeBuilderReply(reply)
		}
	}

	slog.Warn("Builder assistant returned unparseable output", "length", len(raw))
	return builderFallback
}

func normalizeBuilderReply(reply BuilderReply) BuilderReply {
	if reply.TaskUpdates == nil {
		reply.TaskUpdates = map[string]any{}
	}
	if reply.Confidence < 0 {
		reply.Confidence = 0
	}
	if reply.Confidence > 1 {
		reply.Confidence = 1
	}
	return reply
}

// extractJSONObject returns the outermost {...} span of text, if any.
// Models wrap JSON in prose or code fences often enough to make this worth
// one retry.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
