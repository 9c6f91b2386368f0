package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func seedConversation(t *testing.T, svc *services.SessionService, userID string) string {
	t.Helper()
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, userID, models.CreateSessionRequest{Name: "weather chat"})
	require.NoError(t, err)

	_, err = svc.SaveChatTask(ctx, userID, sess.ID, models.SaveChatTaskRequest{
		TaskID:         "task-" + userID,
		MessageBubbles: `[{"id":"b-1","type":"user","text":"what is the forecast for berlin tomorrow"},{"id":"b-2","type":"agent","text":"Sunny with light wind."}]`,
	})
	require.NoError(t, err)
	return sess.ID
}

func TestCompressAndBranch(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("llm summary", func(t *testing.T) {
		svc := services.NewCompressionService(sessions, &stubGenerator{text: "The user asked for the Berlin forecast."})
		sourceID := seedConversation(t, sessions, "user-1")

		resp, err := svc.CompressAndBranch(ctx, "user-1", sourceID, models.CompressAndBranchRequest{})
		require.NoError(t, err)
		assert.Equal(t, sourceID, resp.ParentSessionID)
		assert.Equal(t, 2, resp.CompressedMessageCount)

		branch, err := sessions.GetSession(ctx, "user-1", resp.NewSessionID)
		require.NoError(t, err)
		assert.True(t, branch.IsCompressionBranch)
		assert.Equal(t, "weather chat (compressed)", *branch.Name)
		assert.Equal(t, sourceID, branch.CompressionMetadata["parentSessionId"])

		messages, err := sessions.GetSessionMessagesFromTasks(ctx, "user-1", resp.NewSessionID)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.True(t, strings.HasPrefix(messages[0].Text, "📋 **Conversation Summary**"))
		assert.Contains(t, messages[0].Text, "The user asked for the Berlin forecast.")
	})

	t.Run("llm failure falls back to structured summary", func(t *testing.T) {
		svc := services.NewCompressionService(sessions, &stubGenerator{err: errors.New("sidecar down")})
		sourceID := seedConversation(t, sessions, "user-2")

		resp, err := svc.CompressAndBranch(ctx, "user-2", sourceID, models.CompressAndBranchRequest{Name: "resumed"})
		require.NoError(t, err)

		branch, err := sessions.GetSession(ctx, "user-2", resp.NewSessionID)
		require.NoError(t, err)
		assert.Equal(t, "resumed", *branch.Name)

		messages, err := sessions.GetSessionMessagesFromTasks(ctx, "user-2", resp.NewSessionID)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Contains(t, messages[0].Text, "**Topics discussed:**")
		assert.Contains(t, messages[0].Text, "forecast")
		assert.Contains(t, messages[0].Text, "_2 messages compressed._")
	})

	t.Run("no generator uses structured summary", func(t *testing.T) {
		svc := services.NewCompressionService(sessions, nil)
		sourceID := seedConversation(t, sessions, "user-3")

		resp, err := svc.CompressAndBranch(ctx, "user-3", sourceID, models.CompressAndBranchRequest{})
		require.NoError(t, err)

		messages, err := sessions.GetSessionMessagesFromTasks(ctx, "user-3", resp.NewSessionID)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Contains(t, messages[0].Text, "**Started with:**")
	})

	t.Run("empty session", func(t *testing.T) {
		svc := services.NewCompressionService(sessions, nil)
		empty, err := sessions.CreateSession(ctx, "user-4", models.CreateSessionRequest{})
		require.NoError(t, err)

		_, err = svc.CompressAndBranch(ctx, "user-4", empty.ID, models.CompressAndBranchRequest{})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("source must belong to the user", func(t *testing.T) {
		svc := services.NewCompressionService(sessions, nil)
		sourceID := seedConversation(t, sessions, "user-5")

		_, err := svc.CompressAndBranch(ctx, "user-6", sourceID, models.CompressAndBranchRequest{})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
