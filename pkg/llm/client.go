// Package llm wraps the gRPC inference sidecar behind a small completion
// interface. Summarization and the builder assistants are the only
// consumers; task traffic never passes through here.
package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/solacecommunity/agent-mesh-gateway/proto"
)

// Request is one chat completion request.
type Request struct {
	Provider    string
	Model       string
	Messages    []Message
	Temperature *float32
	MaxTokens   *int32
	JSONMode    bool
}

// Message is one chat turn.
type Message struct {
	Role    string
	Content string
}

// Usage is the token accounting returned with a completion.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	CachedTokens     int64
}

// Generator produces chat completions. Implemented by Client; tests
// substitute a fake.
type Generator interface {
	Complete(ctx context.Context, req Request) (string, *Usage, error)
}

// Client is the gRPC-backed Generator.
type Client struct {
	conn         *grpc.ClientConn
	client       llmv1.LLMServiceClient
	defaultModel string
}

// NewClient connects to the inference sidecar at addr.
func NewClient(addr, defaultModel string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	slog.Info("LLM client configured", "addr", addr, "default_model", defaultModel)
	return &Client{
		conn:         conn,
		client:       llmv1.NewLLMServiceClient(conn),
		defaultModel: defaultModel,
	}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Complete collects the full streamed response into one string.
func (c *Client) Complete(ctx context.Context, req Request) (string, *Usage, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	messages := make([]*llmv1.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, &llmv1.ChatMessage{Role: m.Role, Content: m.Content})
	}
	protoReq := &llmv1.GenerateRequest{
		Provider:    req.Provider,
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JsonMode:    req.JSONMode,
	}

	stream, err := c.client.Generate(ctx, protoReq)
	if err != nil {
		return "", nil, fmt.Errorf("LLM generate call failed: %w", err)
	}

	var sb strings.Builder
	var usage *Usage
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("LLM stream failed: %w", err)
		}
		if resp.Error != nil && *resp.Error != "" {
			return "", nil, fmt.Errorf("LLM error: %s", *resp.Error)
		}
		sb.WriteString(resp.Content)
		if resp.Usage != nil {
			usage = &Usage{
				PromptTokens:     resp.Usage.PromptTokens,
				CompletionTokens: resp.Usage.CompletionTokens,
				CachedTokens:     resp.Usage.CachedTokens,
			}
		}
		if resp.IsFinal {
			break
		}
	}
	return sb.String(), usage, nil
}
