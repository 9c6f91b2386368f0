package models

import (
	"github.com/solacecommunity/agent-mesh-gateway/ent"
)

// TaskRecord is the projection of one audit task.
type TaskRecord struct {
	TaskID                     string  `json:"taskId"`
	UserID                     string  `json:"userId"`
	StartTime                  int64   `json:"startTime"`
	EndTime                    *int64  `json:"endTime"`
	Status                     *string `json:"status"`
	InitialRequestText         *string `json:"initialRequestText"`
	AgentName                  *string `json:"agentName"`
	BackgroundExecutionEnabled bool    `json:"backgroundExecutionEnabled"`
	MaxExecutionTimeMs         *int64  `json:"maxExecutionTimeMs"`
	LastActivityTime           *int64  `json:"lastActivityTime"`
	HasBufferedEvents          bool    `json:"hasBufferedEvents"`
}

// NewTaskRecord projects an ent row.
func NewTaskRecord(t *ent.Task) TaskRecord {
	return TaskRecord{
		TaskID:                     t.ID,
		UserID:                     t.UserID,
		StartTime:                  t.StartTime,
		EndTime:                    t.EndTime,
		Status:                     t.Status,
		InitialRequestText:         t.InitialRequestText,
		AgentName:                  t.AgentName,
		BackgroundExecutionEnabled: t.BackgroundExecutionEnabled,
		MaxExecutionTimeMs:         t.MaxExecutionTimeMs,
		LastActivityTime:           t.LastActivityTime,
		HasBufferedEvents:          t.HasBufferedEvents,
	}
}

// TaskStatusResponse answers GET /tasks/{id}/status.
type TaskStatusResponse struct {
	Task         TaskRecord `json:"task"`
	IsRunning    bool       `json:"isRunning"`
	IsBackground bool       `json:"isBackground"`
	CanReconnect bool       `json:"canReconnect"`
}

// TaskEventRecord is the projection of one logged bus event.
type TaskEventRecord struct {
	ID          string         `json:"id"`
	TaskID      string         `json:"taskId"`
	Topic       string         `json:"topic"`
	Direction   string         `json:"direction"`
	Payload     map[string]any `json:"payload"`
	CreatedTime int64          `json:"createdTime"`
}

// NewTaskEventRecord projects an ent row.
func NewTaskEventRecord(e *ent.TaskEvent) TaskEventRecord {
	return TaskEventRecord{
		ID:          e.ID,
		TaskID:      e.TaskID,
		Topic:       e.Topic,
		Direction:   string(e.Direction),
		Payload:     e.Payload,
		CreatedTime: e.CreatedTime,
	}
}

// TaskEventsResponse answers GET /tasks/{id}/events.
type TaskEventsResponse struct {
	Task        TaskRecord        `json:"task"`
	Events      []TaskEventRecord `json:"events"`
	TotalEvents int               `json:"totalEvents"`
	HasMore     bool              `json:"hasMore"`
}
