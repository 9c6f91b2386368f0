package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/llm"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
)

const summarySystemPrompt = `You are a conversation summarizer. Produce a concise summary of the conversation below that preserves: the user's goals, key decisions made, important facts established, and any unresolved questions. Write in markdown. Do not invent content.`

// summaryHeader starts every branch summary bubble; the frontend keys its
// rendering off this prefix.
const summaryHeader = "📋 **Conversation Summary**"

// CompressionService builds compressed continuation branches of long
// sessions. LLM summarization is best effort: any failure degrades to a
// deterministic structured summary and is never propagated.
type CompressionService struct {
	sessions  *SessionService
	generator llm.Generator // nil when no LLM sidecar is configured
}

// NewCompressionService creates a new CompressionService.
func NewCompressionService(sessions *SessionService, generator llm.Generator) *CompressionService {
	return &CompressionService{sessions: sessions, generator: generator}
}

// CompressAndBranch summarizes the source session into a fresh branch
// session containing a single synthetic system task. The source session is
// never modified.
func (s *CompressionService) CompressAndBranch(ctx context.Context, userID, sourceSessionID string, req models.CompressAndBranchRequest) (*models.CompressAndBranchResponse, error) {
	source, err := s.sessions.GetSession(ctx, userID, sourceSessionID)
	if err != nil {
		return nil, err
	}
	messages, err := s.sessions.GetSessionMessagesFromTasks(ctx, userID, sourceSessionID)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, NewValidationError("session", "nothing to compress")
	}

	summary := s.summarize(WithUsageActor(ctx, userID, ""), messages, req.LLMProvider, req.LLMModel)

	branchName := req.Name
	if branchName == "" {
		branchName = branchNameFor(source)
	}
	agentID := req.AgentID
	if agentID == "" && source.AgentID != nil {
		agentID = *source.AgentID
	}

	branch, err := s.sessions.CreateSession(ctx, userID, models.CreateSessionRequest{
		Name:    branchName,
		AgentID: agentID,
	})
	if err != nil {
		return nil, err
	}

	metadata := map[string]any{
		"parentSessionId":        source.ID,
		"compressedMessageCount": len(messages),
		"originalTokenEstimate":  estimateTokens(messages),
		"summaryTokenEstimate":   len(summary) / 4,
		"artifacts":              extractArtifactMetadata(messages),
	}
	branch, err = s.markAsBranch(ctx, branch, metadata)
	if err != nil {
		return nil, err
	}

	summaryTask, err := s.insertSummaryTask(ctx, userID, branch.ID, source, summary)
	if err != nil {
		return nil, err
	}

	return &models.CompressAndBranchResponse{
		NewSessionID:           branch.ID,
		ParentSessionID:        source.ID,
		SummaryTaskID:          summaryTask.ID,
		CompressedMessageCount: len(messages),
	}, nil
}

func (s *CompressionService) markAsBranch(ctx context.Context, branch *ent.Session, metadata map[string]any) (*ent.Session, error) {
	updated, err := branch.Update().
		SetIsCompressionBranch(true).
		SetCompressionMetadata(metadata).
		Save(ctx)
	if err != nil {
		return nil, ClassifyDBError("mark compression branch", err)
	}
	return updated, nil
}

// insertSummaryTask writes the one synthetic system task whose single
// bubble carries the formatted summary.
func (s *CompressionService) insertSummaryTask(ctx context.Context, userID, branchID string, source *ent.Session, summary string) (*ent.ChatTask, error) {
	sourceName := source.ID
	if source.Name != nil && *source.Name != "" {
		sourceName = *source.Name
	}
	sourceDate := time.UnixMilli(source.CreatedTime).UTC().Format("2006-01-02")

	text := fmt.Sprintf("%s\n\nCompressed from **%s** (started %s).\n\n%s",
		summaryHeader, sourceName, sourceDate, summary)
	bubble := []map[string]any{{
		"id":   "summary-" + uuid.New().String(),
		"type": "system",
		"text": text,
	}}
	bubbleJSON, err := json.Marshal(bubble)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary bubble: %w", err)
	}

	return s.sessions.SaveChatTask(ctx, userID, branchID, models.SaveChatTaskRequest{
		TaskID:         "task-" + uuid.New().String(),
		MessageBubbles: string(bubbleJSON),
	})
}

// summarize asks the LLM and falls back to the structured summary on any
// failure.
func (s *CompressionService) summarize(ctx context.Context, messages []models.ChatMessage, provider, model string) string {
	if s.generator != nil {
		if summary, err := s.llmSummary(ctx, messages, provider, model); err == nil && summary != "" {
			return summary
		} else if err != nil {
			slog.Warn("LLM summarization failed, using structured fallback", "error", err)
		}
	}
	return structuredSummary(messages)
}

func (s *CompressionService) llmSummary(ctx context.Context, messages []models.ChatMessage, provider, model string) (string, error) {
	var transcript strings.Builder
	for _, m := range messages {
		if m.Text == "" {
			continue
		}
		fmt.Fprintf(&transcript, "%s: %s\n", m.Role, m.Text)
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	summary, _, err := s.generator.Complete(ctx, llm.Request{
		Provider: provider,
		Model:    model,
		Messages: []llm.Message{
			{Role: "system", Content: summarySystemPrompt},
			{Role: "user", Content: transcript.String()},
		},
	})
	return strings.TrimSpace(summary), err
}

// structuredSummary is the deterministic fallback: topic keywords plus
// first and last message excerpts.
func structuredSummary(messages []models.ChatMessage) string {
	var sb strings.Builder
	sb.WriteString("**Topics discussed:** ")
	sb.WriteString(strings.Join(topicKeywords(messages, 8), ", "))
	sb.WriteString("\n\n")

	if first := firstUserText(messages); first != "" {
		fmt.Fprintf(&sb, "**Started with:** %s\n\n", excerpt(first, 200))
	}
	if last := lastText(messages); last != "" {
		fmt.Fprintf(&sb, "**Most recent:** %s\n\n", excerpt(last, 200))
	}
	fmt.Fprintf(&sb, "_%d messages compressed._", len(messages))
	return sb.String()
}

// topicKeywords extracts the most frequent non-trivial words.
func topicKeywords(messages []models.ChatMessage, limit int) []string {
	stop := map[string]bool{
		"the": true, "and": true, "for": true, "that": true, "this": true,
		"with": true, "you": true, "your": true, "have": true, "from": true,
		"what": true, "how": true, "can": true, "are": true, "was": true,
		"not": true, "but": true, "all": true, "its": true, "out": true,
	}
	counts := make(map[string]int)
	for _, m := range messages {
		for _, word := range strings.Fields(strings.ToLower(m.Text)) {
			word = strings.Trim(word, ".,!?:;\"'()[]{}")
			if len(word) < 4 || stop[word] {
				continue
			}
			counts[word]++
		}
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > limit {
		words = words[:limit]
	}
	if len(words) == 0 {
		return []string{"(none)"}
	}
	return words
}

func firstUserText(messages []models.ChatMessage) string {
	for _, m := range messages {
		if m.Role == "user" && m.Text != "" {
			return m.Text
		}
	}
	return ""
}

func lastText(messages []models.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Text != "" {
			return messages[i].Text
		}
	}
	return ""
}

func excerpt(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "…"
}

// estimateTokens uses the len/4 heuristic over all message text.
func estimateTokens(messages []models.ChatMessage) int {
	total := 0
	for _, m := range messages {
		total += len(m.Text)
	}
	return total / 4
}

// extractArtifactMetadata collects artifact references mentioned in bubble
// metadata so the branch records what the summary may refer to.
func extractArtifactMetadata(messages []models.ChatMessage) []map[string]any {
	var artifacts []map[string]any
	for _, m := range messages {
		raw, ok := m.Metadata["artifacts"].([]any)
		if !ok {
			continue
		}
		for _, a := range raw {
			if artifact, ok := a.(map[string]any); ok {
				artifacts = append(artifacts, artifact)
			}
		}
	}
	return artifacts
}

func branchNameFor(source *ent.Session) string {
	base := "Continuation"
	if source.Name != nil && *source.Name != "" {
		base = *source.Name
	}
	return base + " (compressed)"
}
