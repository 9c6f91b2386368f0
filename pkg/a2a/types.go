// Package a2a defines the agent-to-agent JSON-RPC protocol types carried
// over the bus: request/response envelopes, the discriminated result kinds,
// discovery cards, and the topic taxonomy.
package a2a

import (
	"encoding/json"
	"fmt"
)

// JSON-RPC method names used on the bus.
const (
	MethodSendMessage   = "message/send"
	MethodStreamMessage = "message/stream"
	MethodCancelTask    = "tasks/cancel"
)

// Result kind discriminators. Every response result carries one.
const (
	KindTask           = "task"
	KindStatusUpdate   = "status-update"
	KindArtifactUpdate = "artifact-update"
	KindMessage        = "message"
)

// Task states.
const (
	StateSubmitted = "submitted"
	StateWorking   = "working"
	StateCompleted = "completed"
	StateFailed    = "failed"
	StateCanceled  = "canceled"
)

// SessionBehaviorRunBased asks the agent to carry its full final text in
// status.message instead of only artifacts. Set in message metadata for
// scheduler-originated requests.
const SessionBehaviorRunBased = "RUN_BASED"

// JSON-RPC error codes surfaced to A2A clients.
const (
	ErrorCodeInvalidRequest = -32600
	ErrorCodeMethodNotFound = -32601
	ErrorCodeInternal       = -32603
)

// Request is a JSON-RPC 2.0 request envelope. The id equals the A2A task id
// so that the reply can be correlated without additional state.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC 2.0 response envelope.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ResponseError  `json:"error,omitempty"`
}

// ResponseError is the JSON-RPC error object.
type ResponseError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// MessageSendParams is the params object for message/send and message/stream.
type MessageSendParams struct {
	Message  Message        `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// CancelParams is the params object for tasks/cancel.
type CancelParams struct {
	TaskID string `json:"id"`
}

// Message is one A2A message.
type Message struct {
	Kind      string         `json:"kind"`
	MessageID string         `json:"messageId"`
	Role      string         `json:"role"`
	Parts     []Part         `json:"parts"`
	TaskID    string         `json:"taskId,omitempty"`
	ContextID string         `json:"contextId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Part is one message part, discriminated by Kind (text, file, data).
type Part struct {
	Kind string         `json:"kind"`
	Text string         `json:"text,omitempty"`
	File *FilePart      `json:"file,omitempty"`
	Data map[string]any `json:"data,omitempty"`
}

// FilePart carries file content by value or by reference.
type FilePart struct {
	Name     string `json:"name,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Bytes    string `json:"bytes,omitempty"`
	URI      string `json:"uri,omitempty"`
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Kind: "text", Text: text}
}

// Task is the terminal result object: final status, history, artifacts.
type Task struct {
	Kind      string         `json:"kind"`
	ID        string         `json:"id"`
	ContextID string         `json:"contextId,omitempty"`
	Status    TaskStatus     `json:"status"`
	History   []Message      `json:"history,omitempty"`
	Artifacts []Artifact     `json:"artifacts,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// TaskStatus describes the task's current state and, for RUN_BASED requests,
// carries the agent's final text in Message.
type TaskStatus struct {
	State     string   `json:"state"`
	Message   *Message `json:"message,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// StatusUpdate is an intermediate status-update result.
type StatusUpdate struct {
	Kind      string         `json:"kind"`
	TaskID    string         `json:"taskId"`
	ContextID string         `json:"contextId,omitempty"`
	Status    TaskStatus     `json:"status"`
	Final     bool           `json:"final,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ArtifactUpdate is an intermediate artifact-update result.
type ArtifactUpdate struct {
	Kind      string   `json:"kind"`
	TaskID    string   `json:"taskId"`
	ContextID string   `json:"contextId,omitempty"`
	Artifact  Artifact `json:"artifact"`
	Append    bool     `json:"append,omitempty"`
	LastChunk bool     `json:"lastChunk,omitempty"`
}

// Artifact is one produced artifact.
type Artifact struct {
	ArtifactID string `json:"artifactId"`
	Name       string `json:"name,omitempty"`
	Parts      []Part `json:"parts,omitempty"`
}

// Result is a decoded response result.
type Result struct {
	Kind           string
	Task           *Task
	StatusUpdate   *StatusUpdate
	ArtifactUpdate *ArtifactUpdate
}

// DecodeResult parses a response result by its kind discriminator.
func DecodeResult(raw json.RawMessage) (*Result, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("failed to probe result kind: %w", err)
	}

	switch probe.Kind {
	case KindTask:
		var t Task
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("failed to decode task result: %w", err)
		}
		return &Result{Kind: KindTask, Task: &t}, nil
	case KindStatusUpdate:
		var su StatusUpdate
		if err := json.Unmarshal(raw, &su); err != nil {
			return nil, fmt.Errorf("failed to decode status-update result: %w", err)
		}
		return &Result{Kind: KindStatusUpdate, StatusUpdate: &su}, nil
	case KindArtifactUpdate:
		var au ArtifactUpdate
		if err := json.Unmarshal(raw, &au); err != nil {
			return nil, fmt.Errorf("failed to decode artifact-update result: %w", err)
		}
		return &Result{Kind: KindArtifactUpdate, ArtifactUpdate: &au}, nil
	default:
		return nil, fmt.Errorf("unknown result kind %q", probe.Kind)
	}
}

// Text returns the concatenated text parts of a message.
func (m *Message) Text() string {
	var out string
	for _, p := range m.Parts {
		if p.Kind == "text" {
			out += p.Text
		}
	}
	return out
}

// Marshal serializes the request for publish.
func (r *Request) Marshal() ([]byte, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", r.Method, err)
	}
	return raw, nil
}

// NewRequest builds a request envelope with marshaled params.
func NewRequest(id, method string, params any) (*Request, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s params: %w", method, err)
	}
	return &Request{JSONRPC: "2.0", ID: id, Method: method, Params: raw}, nil
}
