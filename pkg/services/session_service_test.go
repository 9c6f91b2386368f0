package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func TestSessionLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("create with generated id", func(t *testing.T) {
		sess, err := svc.CreateSession(ctx, "user-1", models.CreateSessionRequest{Name: "first"})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, "user-1", sess.UserID)
		require.NotNil(t, sess.Name)
		assert.Equal(t, "first", *sess.Name)
	})

	t.Run("create honors client id and rejects duplicates", func(t *testing.T) {
		sess, err := svc.CreateSession(ctx, "user-1", models.CreateSessionRequest{SessionID: "session-client"})
		require.NoError(t, err)
		assert.Equal(t, "session-client", sess.ID)

		_, err = svc.CreateSession(ctx, "user-1", models.CreateSessionRequest{SessionID: "session-client"})
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})

	t.Run("create requires user", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, "", models.CreateSessionRequest{})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("get scoped to owner", func(t *testing.T) {
		_, err := svc.GetSession(ctx, "user-1", "session-client")
		require.NoError(t, err)

		_, err = svc.GetSession(ctx, "user-2", "session-client")
		assert.ErrorIs(t, err, services.ErrNotFound)

		// Serialized missing values map to NotFound, not BadRequest.
		_, err = svc.GetSession(ctx, "user-1", "undefined")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("rename", func(t *testing.T) {
		sess, err := svc.UpdateSessionName(ctx, "user-1", "session-client", "renamed")
		require.NoError(t, err)
		assert.Equal(t, "renamed", *sess.Name)

		_, err = svc.UpdateSessionName(ctx, "user-1", "session-client", "")
		assert.True(t, services.IsValidationError(err))

		_, err = svc.UpdateSessionName(ctx, "user-1", "session-missing", "x")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("soft delete is idempotent", func(t *testing.T) {
		deleted, err := svc.SoftDeleteSession(ctx, "user-1", "session-client")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = svc.SoftDeleteSession(ctx, "user-1", "session-client")
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = svc.GetSession(ctx, "user-1", "session-client")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestSessionListing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client)
	projects := services.NewProjectService(client.Client)
	ctx := context.Background()

	proj, err := projects.CreateProject(ctx, "user-1", services.CreateProjectRequest{Name: "Research"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		req := models.CreateSessionRequest{Name: fmt.Sprintf("chat %d", i)}
		if i == 0 {
			req.ProjectID = proj.ID
		}
		_, err := svc.CreateSession(ctx, "user-1", req)
		require.NoError(t, err)
	}
	_, err = svc.CreateSession(ctx, "user-2", models.CreateSessionRequest{Name: "other user"})
	require.NoError(t, err)

	t.Run("lists only the user's sessions", func(t *testing.T) {
		resp, err := svc.GetUserSessions(ctx, "user-1", models.Pagination{}, "")
		require.NoError(t, err)
		assert.Len(t, resp.Data, 3)
		assert.Equal(t, 3, resp.Meta.TotalCount)
	})

	t.Run("project filter and name enrichment", func(t *testing.T) {
		resp, err := svc.GetUserSessions(ctx, "user-1", models.Pagination{}, proj.ID)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		require.NotNil(t, resp.Data[0].ProjectName)
		assert.Equal(t, "Research", *resp.Data[0].ProjectName)
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.GetUserSessions(ctx, "user-1", models.Pagination{PageNumber: 1, PageSize: 2}, "")
		require.NoError(t, err)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, 2, resp.Meta.TotalPages)
		require.NotNil(t, resp.Meta.NextPage)
		assert.Equal(t, 2, *resp.Meta.NextPage)

		_, err = svc.GetUserSessions(ctx, "user-1", models.Pagination{PageNumber: -1}, "")
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("search by name", func(t *testing.T) {
		resp, err := svc.SearchSessions(ctx, "user-1", "CHAT 1", "", models.Pagination{})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "chat 1", *resp.Data[0].Name)

		_, err = svc.SearchSessions(ctx, "user-1", "", "", models.Pagination{})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestMoveSessionToProject(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client)
	projects := services.NewProjectService(client.Client)
	ctx := context.Background()

	proj, err := projects.CreateProject(ctx, "user-1", services.CreateProjectRequest{Name: "Home"})
	require.NoError(t, err)
	sess, err := svc.CreateSession(ctx, "user-1", models.CreateSessionRequest{})
	require.NoError(t, err)

	t.Run("move into project", func(t *testing.T) {
		moved, err := svc.MoveSessionToProject(ctx, "user-1", sess.ID, proj.ID)
		require.NoError(t, err)
		require.NotNil(t, moved.ProjectID)
		assert.Equal(t, proj.ID, *moved.ProjectID)
	})

	t.Run("target must belong to the user", func(t *testing.T) {
		otherProj, err := projects.CreateProject(ctx, "user-2", services.CreateProjectRequest{Name: "Theirs"})
		require.NoError(t, err)

		_, err = svc.MoveSessionToProject(ctx, "user-1", sess.ID, otherProj.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("empty project clears the association", func(t *testing.T) {
		moved, err := svc.MoveSessionToProject(ctx, "user-1", sess.ID, "")
		require.NoError(t, err)
		assert.Nil(t, moved.ProjectID)
	})
}

func TestSaveChatTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, "user-1", models.CreateSessionRequest{})
	require.NoError(t, err)

	userMsg := "what is the weather"
	bubbles := `[{"id":"b-1","type":"user","text":"what is the weather"},{"id":"b-2","type":"agent","text":"sunny"}]`

	t.Run("create", func(t *testing.T) {
		saved, err := svc.SaveChatTask(ctx, "user-1", sess.ID, models.SaveChatTaskRequest{
			TaskID:         "task-1",
			UserMessage:    &userMsg,
			MessageBubbles: bubbles,
		})
		require.NoError(t, err)
		assert.Equal(t, "task-1", saved.ID)
		assert.Equal(t, sess.ID, saved.SessionID)
	})

	t.Run("upsert keeps one row", func(t *testing.T) {
		updated := `[{"id":"b-1","type":"user","text":"edited"}]`
		saved, err := svc.SaveChatTask(ctx, "user-1", sess.ID, models.SaveChatTaskRequest{
			TaskID:         "task-1",
			MessageBubbles: updated,
		})
		require.NoError(t, err)
		assert.Equal(t, updated, saved.MessageBubbles)

		tasks, err := svc.GetSessionTasks(ctx, "user-1", sess.ID)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.SaveChatTask(ctx, "user-1", sess.ID, models.SaveChatTaskRequest{MessageBubbles: bubbles})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.SaveChatTask(ctx, "user-1", sess.ID, models.SaveChatTaskRequest{TaskID: "task-2"})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.SaveChatTask(ctx, "user-1", sess.ID, models.SaveChatTaskRequest{
			TaskID:         "task-2",
			MessageBubbles: "{not json",
		})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.SaveChatTask(ctx, "user-1", "session-missing", models.SaveChatTaskRequest{
			TaskID:         "task-2",
			MessageBubbles: bubbles,
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("flattened messages", func(t *testing.T) {
		_, err := svc.SaveChatTask(ctx, "user-1", sess.ID, models.SaveChatTaskRequest{
			TaskID:         "task-3",
			MessageBubbles: bubbles,
		})
		require.NoError(t, err)

		messages, err := svc.GetSessionMessagesFromTasks(ctx, "user-1", sess.ID)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "user", messages[0].Role)
		assert.Equal(t, "edited", messages[0].Text)
		assert.Equal(t, "assistant", messages[2].Role)
	})
}

func TestFindByExternalContextID(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSessionService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, "user-1", models.CreateSessionRequest{ExternalContextID: "ext-1"})
	require.NoError(t, err)

	found, err := svc.FindByExternalContextID(ctx, "user-1", "ext-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.FindByExternalContextID(ctx, "user-1", "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.FindByExternalContextID(ctx, "user-2", "ext-1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
