package api

import (
	"encoding/base64"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/dispatch"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// maxUploadBytes bounds the in-memory portion of multipart submissions.
const maxUploadBytes = 32 << 20

// sendTaskHandler handles POST /api/v1/tasks/send — non-streaming
// submission.
func (s *Server) sendTaskHandler(c *echo.Context) error {
	return s.submitTask(c, false)
}

// subscribeTaskHandler handles POST /api/v1/tasks/subscribe — streaming
// submission whose events are consumed on /sse/subscribe/{taskId}.
func (s *Server) subscribeTaskHandler(c *echo.Context) error {
	return s.submitTask(c, true)
}

func (s *Server) submitTask(c *echo.Context, streaming bool) error {
	userID := currentUser(c)

	sub, err := s.parseSubmission(c, streaming, userID)
	if err != nil {
		return rpcError(c, "", err)
	}

	// The streaming flow hands the client a session id to save chat tasks
	// under; create the row up front when the client did not bring one.
	createdSession := false
	if streaming && sub.SessionID == "" {
		sub.SessionID = "session-" + uuid.NewString()
		createdSession = true
	}

	taskID, err := s.dispatcher.SubmitTask(c.Request().Context(), sub)
	if err != nil {
		return rpcError(c, "", err)
	}

	if createdSession {
		_, err := s.sessions.CreateSession(c.Request().Context(), userID, models.CreateSessionRequest{
			SessionID: sub.SessionID,
			AgentID:   sub.AgentName,
		})
		if err != nil {
			// The task is already dispatched; history just has no home.
			slog.Warn("Failed to create session for streaming task",
				"task_id", taskID, "session_id", sub.SessionID, "error", err)
		}
	}

	result := map[string]any{"taskId": taskID}
	if streaming {
		result["sessionId"] = sub.SessionID
	}
	return c.JSON(http.StatusOK, map[string]any{
		"jsonrpc": "2.0",
		"id":      taskID,
		"result":  result,
	})
}

// parseSubmission reads the multipart submission form.
func (s *Server) parseSubmission(c *echo.Context, streaming bool, userID string) (dispatch.Submission, error) {
	sub := dispatch.Submission{
		UserID:    userID,
		Streaming: streaming,
	}

	if err := c.Request().ParseMultipartForm(maxUploadBytes); err != nil {
		return sub, services.NewValidationError("body", "expected multipart form data")
	}

	sub.AgentName = c.FormValue("agent_name")
	sub.SessionID = c.FormValue("session_id")
	sub.ClientID = c.FormValue("client_id")
	sub.Background = c.FormValue("background") == "true"
	if v := c.FormValue("max_execution_time_ms"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil || ms < 0 {
			return sub, services.NewValidationError("max_execution_time_ms", "must be a non-negative integer")
		}
		sub.MaxExecutionTimeMs = ms
	}

	if message := c.FormValue("message"); message != "" {
		sub.Parts = append(sub.Parts, a2a.TextPart(message))
	}

	if form := c.Request().MultipartForm; form != nil {
		for _, header := range form.File["files"] {
			part, err := filePart(header)
			if err != nil {
				return sub, err
			}
			sub.Parts = append(sub.Parts, part)
		}
	}
	return sub, nil
}

// filePart reads one uploaded file into a base64 file part.
func filePart(header *multipart.FileHeader) (a2a.Part, error) {
	f, err := header.Open()
	if err != nil {
		return a2a.Part{}, services.NewValidationError("files", "failed to open uploaded file "+header.Filename)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return a2a.Part{}, services.NewValidationError("files", "failed to read uploaded file "+header.Filename)
	}

	return a2a.Part{
		Kind: "file",
		File: &a2a.FilePart{
			Name:     header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Bytes:    base64.StdEncoding.EncodeToString(content),
		},
	}, nil
}

// cancelTaskHandler handles POST /api/v1/tasks/cancel (form: task_id).
func (s *Server) cancelTaskHandler(c *echo.Context) error {
	taskID := c.FormValue("task_id")
	if taskID == "" {
		return rpcError(c, "", services.NewValidationError("task_id", "required"))
	}

	task, err := s.tasks.GetTask(c.Request().Context(), taskID)
	if err != nil {
		return rpcError(c, taskID, err)
	}
	agentName := ""
	if task.AgentName != nil {
		agentName = *task.AgentName
	}

	if err := s.dispatcher.CancelTask(c.Request().Context(), taskID, agentName, currentUser(c)); err != nil {
		return rpcError(c, taskID, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"jsonrpc": "2.0",
		"id":      taskID,
		"result":  map[string]any{"taskId": taskID, "cancelled": true},
	})
}

// taskStatusHandler handles GET /api/v1/tasks/:id/status — the background
// reconnect probe.
func (s *Server) taskStatusHandler(c *echo.Context) error {
	status, err := s.tasks.GetTaskStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return rpcError(c, c.Param("id"), err)
	}
	return c.JSON(http.StatusOK, status)
}

// taskEventsHandler handles GET /api/v1/tasks/:id/events — the audit log
// replay used by reconnecting clients.
func (s *Server) taskEventsHandler(c *echo.Context) error {
	var sinceMs int64
	if v := c.QueryParam("since_timestamp"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return rpcError(c, c.Param("id"), services.NewValidationError("since_timestamp", "must be epoch milliseconds"))
		}
		sinceMs = parsed
	}
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return rpcError(c, c.Param("id"), services.NewValidationError("limit", "must be a positive integer"))
		}
		limit = parsed
	}

	events, err := s.tasks.GetTaskEvents(c.Request().Context(), c.Param("id"), sinceMs, limit)
	if err != nil {
		return rpcError(c, c.Param("id"), err)
	}
	return c.JSON(http.StatusOK, events)
}

// activeBackgroundTasksHandler handles GET /api/v1/tasks/background/active.
func (s *Server) activeBackgroundTasksHandler(c *echo.Context) error {
	tasks, err := s.tasks.ListActiveBackgroundTasks(c.Request().Context(), currentUser(c))
	if err != nil {
		return rpcError(c, "", err)
	}

	records := make([]models.TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, models.NewTaskRecord(t))
	}
	return c.JSON(http.StatusOK, map[string]any{"tasks": records})
}
