package models

import (
	"github.com/solacecommunity/agent-mesh-gateway/ent"
)

// CreateScheduledTaskRequest defines a new trigger.
type CreateScheduledTaskRequest struct {
	Name               string           `json:"name"`
	ScheduleType       string           `json:"scheduleType"`
	ScheduleExpression string           `json:"scheduleExpression"`
	Timezone           string           `json:"timezone,omitempty"`
	TargetAgentName    string           `json:"targetAgentName"`
	TaskMessage        []map[string]any `json:"taskMessage"`
	TaskMetadata       map[string]any   `json:"taskMetadata,omitempty"`
	Enabled            *bool            `json:"enabled,omitempty"`
	MaxRetries         int              `json:"maxRetries,omitempty"`
	RetryDelaySeconds  int              `json:"retryDelaySeconds,omitempty"`
	TimeoutSeconds     int              `json:"timeoutSeconds,omitempty"`
	NamespaceLevel     bool             `json:"namespaceLevel,omitempty"`
}

// UpdateScheduledTaskRequest patches a trigger. Nil fields are untouched.
type UpdateScheduledTaskRequest struct {
	Name               *string           `json:"name,omitempty"`
	ScheduleType       *string           `json:"scheduleType,omitempty"`
	ScheduleExpression *string           `json:"scheduleExpression,omitempty"`
	Timezone           *string           `json:"timezone,omitempty"`
	TargetAgentName    *string           `json:"targetAgentName,omitempty"`
	TaskMessage        *[]map[string]any `json:"taskMessage,omitempty"`
	TaskMetadata       *map[string]any   `json:"taskMetadata,omitempty"`
	Enabled            *bool             `json:"enabled,omitempty"`
	TimeoutSeconds     *int              `json:"timeoutSeconds,omitempty"`
}

// ScheduledTaskResponse is the projection of one trigger.
type ScheduledTaskResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Namespace          string           `json:"namespace"`
	UserID             *string          `json:"userId"`
	CreatedBy          string           `json:"createdBy"`
	ScheduleType       string           `json:"scheduleType"`
	ScheduleExpression string           `json:"scheduleExpression"`
	Timezone           string           `json:"timezone"`
	TargetAgentName    string           `json:"targetAgentName"`
	TaskMessage        []map[string]any `json:"taskMessage"`
	TaskMetadata       map[string]any   `json:"taskMetadata,omitempty"`
	Enabled            bool             `json:"enabled"`
	TimeoutSeconds     int              `json:"timeoutSeconds"`
	CreatedAt          int64            `json:"createdAt"`
	UpdatedAt          int64            `json:"updatedAt"`
	NextRunAt          *int64           `json:"nextRunAt"`
	LastRunAt          *int64           `json:"lastRunAt"`
}

// NewScheduledTaskResponse projects an ent row.
func NewScheduledTaskResponse(t *ent.ScheduledTask) ScheduledTaskResponse {
	return ScheduledTaskResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Namespace:          t.Namespace,
		UserID:             t.UserID,
		CreatedBy:          t.CreatedBy,
		ScheduleType:       string(t.ScheduleType),
		ScheduleExpression: t.ScheduleExpression,
		Timezone:           t.Timezone,
		TargetAgentName:    t.TargetAgentName,
		TaskMessage:        t.TaskMessage,
		TaskMetadata:       t.TaskMetadata,
		Enabled:            t.Enabled,
		TimeoutSeconds:     t.TimeoutSeconds,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
		NextRunAt:          t.NextRunAt,
		LastRunAt:          t.LastRunAt,
	}
}

// ExecutionResponse is the projection of one firing.
type ExecutionResponse struct {
	ID              string           `json:"id"`
	ScheduledTaskID string           `json:"scheduledTaskId"`
	Status          string           `json:"status"`
	A2ATaskID       *string          `json:"a2aTaskId"`
	ScheduledFor    int64            `json:"scheduledFor"`
	StartedAt       *int64           `json:"startedAt"`
	CompletedAt     *int64           `json:"completedAt"`
	ResultSummary   map[string]any   `json:"resultSummary,omitempty"`
	ErrorMessage    *string          `json:"errorMessage"`
	Artifacts       []map[string]any `json:"artifacts,omitempty"`
}

// NewExecutionResponse projects an ent row.
func NewExecutionResponse(e *ent.ScheduledTaskExecution) ExecutionResponse {
	return ExecutionResponse{
		ID:              e.ID,
		ScheduledTaskID: e.ScheduledTaskID,
		Status:          string(e.Status),
		A2ATaskID:       e.A2aTaskID,
		ScheduledFor:    e.ScheduledFor,
		StartedAt:       e.StartedAt,
		CompletedAt:     e.CompletedAt,
		ResultSummary:   e.ResultSummary,
		ErrorMessage:    e.ErrorMessage,
		Artifacts:       e.Artifacts,
	}
}

// SchedulerStatus answers GET /scheduler/status.
type SchedulerStatus struct {
	IsLeader          bool   `json:"isLeader"`
	LeaderID          string `json:"leaderId,omitempty"`
	ActiveTaskCount   int    `json:"activeTaskCount"`
	RunningExecutions int    `json:"runningExecutions"`
	Mode              string `json:"mode"`
}
