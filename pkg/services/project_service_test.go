package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func TestProjectCRUD(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		proj, err := svc.CreateProject(ctx, "user-1", services.CreateProjectRequest{
			Name:         "Research",
			SystemPrompt: "You are terse.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Research", proj.Name)
		require.NotNil(t, proj.SystemPrompt)
		assert.Equal(t, "You are terse.", *proj.SystemPrompt)

		_, err = svc.CreateProject(ctx, "user-1", services.CreateProjectRequest{})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("get scoped to owner", func(t *testing.T) {
		projects, err := svc.ListProjects(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, projects, 1)

		_, err = svc.GetProject(ctx, "user-2", projects[0].ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		projects, err := svc.ListProjects(ctx, "user-1")
		require.NoError(t, err)
		id := projects[0].ID

		desc := "weather experiments"
		updated, err := svc.UpdateProject(ctx, "user-1", id, services.UpdateProjectRequest{Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, "Research", updated.Name)
		require.NotNil(t, updated.Description)
		assert.Equal(t, desc, *updated.Description)

		_, err = svc.UpdateProject(ctx, "user-1", "project-missing", services.UpdateProjectRequest{Description: &desc})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("soft delete", func(t *testing.T) {
		projects, err := svc.ListProjects(ctx, "user-1")
		require.NoError(t, err)
		id := projects[0].ID

		deleted, err := svc.SoftDeleteProject(ctx, "user-1", id)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = svc.SoftDeleteProject(ctx, "user-1", id)
		require.NoError(t, err)
		assert.False(t, deleted)

		projects, err = svc.ListProjects(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, projects)
	})
}
