package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// projectResponse is the camelCase projection of one project.
type projectResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	SystemPrompt   *string `json:"systemPrompt,omitempty"`
	DefaultAgentID *string `json:"defaultAgentId,omitempty"`
	CreatedAt      int64   `json:"createdAt"`
}

func newProjectResponse(p *ent.Project) projectResponse {
	return projectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		SystemPrompt:   p.SystemPrompt,
		DefaultAgentID: p.DefaultAgentID,
		CreatedAt:      p.CreatedAt,
	}
}

// listProjectsHandler handles GET /api/v1/projects.
func (s *Server) listProjectsHandler(c *echo.Context) error {
	if s.projects == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}
	projects, err := s.projects.ListProjects(c.Request().Context(), currentUser(c))
	if err != nil {
		return restError(c, err)
	}

	responses := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, newProjectResponse(p))
	}
	return c.JSON(http.StatusOK, map[string]any{"projects": responses})
}

// createProjectHandler handles POST /api/v1/projects.
func (s *Server) createProjectHandler(c *echo.Context) error {
	if s.projects == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}
	var req services.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	proj, err := s.projects.CreateProject(c.Request().Context(), currentUser(c), req)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusCreated, newProjectResponse(proj))
}

// getProjectHandler handles GET /api/v1/projects/:id.
func (s *Server) getProjectHandler(c *echo.Context) error {
	if s.projects == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}
	proj, err := s.projects.GetProject(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, newProjectResponse(proj))
}

// updateProjectHandler handles PATCH /api/v1/projects/:id.
func (s *Server) updateProjectHandler(c *echo.Context) error {
	if s.projects == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}
	var req services.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	proj, err := s.projects.UpdateProject(c.Request().Context(), currentUser(c), c.Param("id"), req)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, newProjectResponse(proj))
}

// deleteProjectHandler handles DELETE /api/v1/projects/:id.
func (s *Server) deleteProjectHandler(c *echo.Context) error {
	if s.projects == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}
	if _, err := s.projects.SoftDeleteProject(c.Request().Context(), currentUser(c), c.Param("id")); err != nil {
		return restError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
