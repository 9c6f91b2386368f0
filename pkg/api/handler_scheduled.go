package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// schedulerReady reports whether the scheduler surface is wired.
func (s *Server) schedulerReady(c *echo.Context) error {
	if s.schedStore == nil || s.schedEngine == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}
	return nil
}

// createScheduledTaskHandler handles POST /api/v1/scheduled-tasks.
func (s *Server) createScheduledTaskHandler(c *echo.Context) error {
	if err := s.schedulerReady(c); err != nil {
		return err
	}
	var req models.CreateScheduledTaskRequest
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	task, err := s.schedStore.Create(c.Request().Context(), currentUser(c), req)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusCreated, models.NewScheduledTaskResponse(task))
}

// listScheduledTasksHandler handles GET /api/v1/scheduled-tasks.
func (s *Server) listScheduledTasksHandler(c *echo.Context) error {
	if err := s.schedulerReady(c); err != nil {
		return err
	}
	tasks, err := s.schedStore.List(c.Request().Context(), currentUser(c))
	if err != nil {
		return restError(c, err)
	}

	responses := make([]models.ScheduledTaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, models.NewScheduledTaskResponse(t))
	}
	return c.JSON(http.StatusOK, map[string]any{"tasks": responses})
}

// getScheduledTaskHandler handles GET /api/v1/scheduled-tasks/:id.
func (s *Server) getScheduledTaskHandler(c *echo.Context) error {
	if err := s.schedulerReady(c); err != nil {
		return err
	}
	task, err := s.schedStore.Get(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewScheduledTaskResponse(task))
}

// updateScheduledTaskHandler handles PATCH /api/v1/scheduled-tasks/:id.
func (s *Server) updateScheduledTaskHandler(c *echo.Context) error {
	if err := s.schedulerReady(c); err != nil {
		return err
	}
	var req models.UpdateScheduledTaskRequest
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	task, err := s.schedStore.Update(c.Request().Context(), currentUser(c), c.Param("id"), req)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewScheduledTaskResponse(task))
}

// deleteScheduledTaskHandler handles DELETE /api/v1/scheduled-tasks/:id.
func (s *Server) deleteScheduledTaskHandler(c *echo.Context) error {
	if err := s.schedulerReady(c); err != nil {
		return err
	}
	if err := s.schedStore.SoftDelete(c.Request().Context(), currentUser(c), c.Param("id")); err != nil {
		return restError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// enableScheduledTaskHandler handles POST /api/v1/scheduled-tasks/:id/enable.
func (s *Server) enableScheduledTaskHandler(c *echo.Context) error {
	return s.setScheduledTaskEnabled(c, true)
}

// disableScheduledTaskHandler handles POST /api/v1/scheduled-tasks/:id/disable.
func (s *Server) disableScheduledTaskHandler(c *echo.Context) error {
	return s.setScheduledTaskEnabled(c, false)
}

func (s *Server) setScheduledTaskEnabled(c *echo.Context, enabled bool) error {
	if err := s.schedulerReady(c); err != nil {
		return err
	}
	task, err := s.schedStore.SetEnabled(c.Request().Context(), currentUser(c), c.Param("id"), enabled)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewScheduledTaskResponse(task))
}

// runScheduledTaskHandler handles POST /api/v1/scheduled-tasks/:id/run —
// fire immediately, bypassing the trigger.
func (s *Server) runScheduledTaskHandler(c *echo.Context) error {
	if err := s.schedulerReady(c); err != nil {
		return err
	}
	execution, err := s.schedEngine.RunNow(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusAccepted, models.NewExecutionResponse(execution))
}

// listExecutionsHandler handles GET /api/v1/scheduled-tasks/:id/executions.
func (s *Server) listExecutionsHandler(c *echo.Context) error {
	if err := s.schedulerReady(c); err != nil {
		return err
	}
	p, err := parsePagination(c)
	if err != nil {
		return restError(c, err)
	}

	executions, total, err := s.schedStore.ListExecutions(c.Request().Context(), currentUser(c), c.Param("id"), p)
	if err != nil {
		return restError(c, err)
	}

	responses := make([]models.ExecutionResponse, 0, len(executions))
	for _, e := range executions {
		responses = append(responses, models.NewExecutionResponse(e))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"executions": responses,
		"totalCount": total,
	})
}

// schedulerStatusHandler handles GET /api/v1/scheduler/status.
func (s *Server) schedulerStatusHandler(c *echo.Context) error {
	if err := s.schedulerReady(c); err != nil {
		return err
	}
	status, err := s.schedEngine.Status(c.Request().Context())
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

// builderChatHandler handles POST /api/v1/scheduled-tasks/builder/chat —
// the AI-assisted task builder.
func (s *Server) builderChatHandler(c *echo.Context) error {
	if s.assistant == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}

	var req struct {
		Message string                 `json:"message"`
		History []services.BuilderTurn `json:"history,omitempty"`
	}
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}
	if req.Message == "" {
		return restError(c, services.NewValidationError("message", "required"))
	}

	ctx := services.WithUsageActor(c.Request().Context(), currentUser(c), "")
	reply, err := s.assistant.Chat(ctx, req.History, req.Message)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, reply)
}
