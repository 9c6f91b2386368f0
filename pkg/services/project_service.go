package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/project"
)

// CreateProjectRequest defines a new project.
type CreateProjectRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	SystemPrompt   string `json:"systemPrompt,omitempty"`
	DefaultAgentID string `json:"defaultAgentId,omitempty"`
}

// UpdateProjectRequest patches a project. Nil fields are untouched.
type UpdateProjectRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	SystemPrompt   *string `json:"systemPrompt,omitempty"`
	DefaultAgentID *string `json:"defaultAgentId,omitempty"`
}

// ProjectService manages the named system-prompt containers sessions can be
// grouped under.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a project owned by userID.
func (s *ProjectService) CreateProject(ctx context.Context, userID string, req CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	create := s.client.Project.Create().
		SetID("project-" + uuid.New().String()).
		SetName(req.Name).
		SetUserID(userID).
		SetCreatedAt(nowMs())
	if req.Description != "" {
		create.SetDescription(req.Description)
	}
	if req.SystemPrompt != "" {
		create.SetSystemPrompt(req.SystemPrompt)
	}
	if req.DefaultAgentID != "" {
		create.SetDefaultAgentID(req.DefaultAgentID)
	}

	proj, err := create.Save(ctx)
	if err != nil {
		return nil, ClassifyDBError("create project", err)
	}
	return proj, nil
}

// GetProject returns the user's project by id.
func (s *ProjectService) GetProject(ctx context.Context, userID, id string) (*ent.Project, error) {
	proj, err := s.client.Project.Query().
		Where(project.ID(id), project.UserID(userID), project.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, ClassifyDBError("get project", err)
	}
	return proj, nil
}

// ListProjects returns all of the user's projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, userID string) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Where(project.UserID(userID), project.DeletedAtIsNil()).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, ClassifyDBError("list projects", err)
	}
	return projects, nil
}

// UpdateProject patches the user's project.
func (s *ProjectService) UpdateProject(ctx context.Context, userID, id string, req UpdateProjectRequest) (*ent.Project, error) {
	update := s.client.Project.Update().
		Where(project.ID(id), project.UserID(userID), project.DeletedAtIsNil()).
		SetUpdatedAt(nowMs())
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.SystemPrompt != nil {
		update.SetSystemPrompt(*req.SystemPrompt)
	}
	if req.DefaultAgentID != nil {
		update.SetDefaultAgentID(*req.DefaultAgentID)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, ClassifyDBError("update project", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetProject(ctx, userID, id)
}

// SoftDeleteProject marks the project deleted. Sessions keep their
// projectId; list enrichment simply stops resolving the name.
func (s *ProjectService) SoftDeleteProject(ctx context.Context, userID, id string) (bool, error) {
	n, err := s.client.Project.Update().
		Where(project.ID(id), project.UserID(userID), project.DeletedAtIsNil()).
		SetDeletedAt(nowMs()).
		Save(ctx)
	if err != nil {
		return false, ClassifyDBError("delete project", err)
	}
	return n > 0, nil
}
