package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// parsePagination reads the pageNumber/pageSize query parameters. Range
// validation happens in the service layer.
func parsePagination(c *echo.Context) (models.Pagination, error) {
	p := models.Pagination{}
	if v := c.QueryParam("pageNumber"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, services.NewValidationError("pageNumber", "must be an integer")
		}
		p.PageNumber = n
	}
	if v := c.QueryParam("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, services.NewValidationError("pageSize", "must be an integer")
		}
		p.PageSize = n
	}
	return p, nil
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	p, err := parsePagination(c)
	if err != nil {
		return restError(c, err)
	}

	result, err := s.sessions.GetUserSessions(c.Request().Context(), currentUser(c), p, c.QueryParam("project_id"))
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// searchSessionsHandler handles GET /api/v1/sessions/search — name-only
// search.
func (s *Server) searchSessionsHandler(c *echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return restError(c, services.NewValidationError("query", "required"))
	}
	p, err := parsePagination(c)
	if err != nil {
		return restError(c, err)
	}

	result, err := s.sessions.SearchSessions(c.Request().Context(), currentUser(c), query, c.QueryParam("projectId"), p)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// createSessionHandler handles POST /api/v1/sessions.
func (s *Server) createSessionHandler(c *echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	sess, err := s.sessions.CreateSession(c.Request().Context(), currentUser(c), req)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusCreated, models.NewSessionSummary(sess))
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sess, err := s.sessions.GetSession(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewSessionSummary(sess))
}

// updateSessionHandler handles PATCH /api/v1/sessions/:id — rename.
func (s *Server) updateSessionHandler(c *echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	sess, err := s.sessions.UpdateSessionName(c.Request().Context(), currentUser(c), c.Param("id"), req.Name)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewSessionSummary(sess))
}

// deleteSessionHandler handles DELETE /api/v1/sessions/:id. Deleting an
// unknown or already-deleted session is still a 204.
func (s *Server) deleteSessionHandler(c *echo.Context) error {
	_, err := s.sessions.SoftDeleteSession(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return restError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// saveChatTaskHandler handles POST /api/v1/sessions/:id/chat-tasks — the
// frontend's upsert of one rendered task.
func (s *Server) saveChatTaskHandler(c *echo.Context) error {
	var req models.SaveChatTaskRequest
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	task, err := s.sessions.SaveChatTask(c.Request().Context(), currentUser(c), c.Param("id"), req)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewChatTaskResponse(task))
}

// listChatTasksHandler handles GET /api/v1/sessions/:id/chat-tasks.
func (s *Server) listChatTasksHandler(c *echo.Context) error {
	tasks, err := s.sessions.GetSessionTasks(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return restError(c, err)
	}

	responses := make([]models.ChatTaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, models.NewChatTaskResponse(t))
	}
	return c.JSON(http.StatusOK, map[string]any{"tasks": responses})
}

// sessionMessagesHandler handles GET /api/v1/sessions/:id/messages — the
// flattened legacy view.
func (s *Server) sessionMessagesHandler(c *echo.Context) error {
	messages, err := s.sessions.GetSessionMessagesFromTasks(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"messages": messages})
}

// moveSessionHandler handles PATCH /api/v1/sessions/:id/project.
func (s *Server) moveSessionHandler(c *echo.Context) error {
	var req struct {
		ProjectID string `json:"projectId"`
	}
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	sess, err := s.sessions.MoveSessionToProject(c.Request().Context(), currentUser(c), c.Param("id"), req.ProjectID)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewSessionSummary(sess))
}

// compressAndBranchHandler handles POST /api/v1/sessions/:id/compress-and-branch.
func (s *Server) compressAndBranchHandler(c *echo.Context) error {
	if s.compression == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}

	var req models.CompressAndBranchRequest
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	result, err := s.compression.CompressAndBranch(c.Request().Context(), currentUser(c), c.Param("id"), req)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
