package models

import (
	"github.com/solacecommunity/agent-mesh-gateway/ent"
)

// SaveChatTaskRequest upserts one chat task. MessageBubbles and TaskMetadata
// are opaque JSON strings whose schema belongs to the frontend.
type SaveChatTaskRequest struct {
	TaskID         string  `json:"taskId"`
	UserMessage    *string `json:"userMessage,omitempty"`
	MessageBubbles string  `json:"messageBubbles"`
	TaskMetadata   *string `json:"taskMetadata,omitempty"`
}

// ChatTaskResponse is the projection of one chat task.
type ChatTaskResponse struct {
	TaskID         string  `json:"taskId"`
	SessionID      string  `json:"sessionId"`
	UserID         string  `json:"userId"`
	UserMessage    *string `json:"userMessage"`
	MessageBubbles string  `json:"messageBubbles"`
	TaskMetadata   *string `json:"taskMetadata"`
	CreatedTime    int64   `json:"createdTime"`
	UpdatedTime    *int64  `json:"updatedTime"`
}

// NewChatTaskResponse projects an ent row.
func NewChatTaskResponse(t *ent.ChatTask) ChatTaskResponse {
	return ChatTaskResponse{
		TaskID:         t.ID,
		SessionID:      t.SessionID,
		UserID:         t.UserID,
		UserMessage:    t.UserMessage,
		MessageBubbles: t.MessageBubbles,
		TaskMetadata:   t.TaskMetadata,
		CreatedTime:    t.CreatedTime,
		UpdatedTime:    t.UpdatedTime,
	}
}

// ChatMessage is the flattened legacy view of one bubble.
type ChatMessage struct {
	TaskID      string         `json:"taskId"`
	Role        string         `json:"role"`
	Text        string         `json:"text,omitempty"`
	BubbleID    string         `json:"bubbleId,omitempty"`
	BubbleType  string         `json:"bubbleType,omitempty"`
	CreatedTime int64          `json:"createdTime"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
