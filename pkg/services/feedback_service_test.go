package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/ent/feedback"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

func TestSubmitFeedback(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewFeedbackService(client.Client)
	ctx := context.Background()

	t.Run("stores a rating", func(t *testing.T) {
		require.NoError(t, svc.SubmitFeedback(ctx, "user-1", services.FeedbackRequest{
			TaskID:    "task-1",
			SessionID: "session-1",
			Rating:    "up",
			Comment:   "helpful",
		}))

		rows, err := client.Client.Feedback.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, feedback.RatingUp, rows[0].Rating)
		assert.Equal(t, "helpful", *rows[0].Comment)
	})

	t.Run("repeat of same polarity updates the comment", func(t *testing.T) {
		require.NoError(t, svc.SubmitFeedback(ctx, "user-1", services.FeedbackRequest{
			TaskID:    "task-1",
			SessionID: "session-1",
			Rating:    "up",
			Comment:   "even better",
		}))

		rows, err := client.Client.Feedback.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "even better", *rows[0].Comment)
	})

	t.Run("opposite polarity is a new row", func(t *testing.T) {
		require.NoError(t, svc.SubmitFeedback(ctx, "user-1", services.FeedbackRequest{
			TaskID:    "task-1",
			SessionID: "session-1",
			Rating:    "down",
		}))

		n, err := client.Client.Feedback.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("validation", func(t *testing.T) {
		err := svc.SubmitFeedback(ctx, "user-1", services.FeedbackRequest{SessionID: "s", Rating: "up"})
		assert.True(t, services.IsValidationError(err))

		err = svc.SubmitFeedback(ctx, "user-1", services.FeedbackRequest{TaskID: "t", Rating: "up"})
		assert.True(t, services.IsValidationError(err))

		err = svc.SubmitFeedback(ctx, "user-1", services.FeedbackRequest{TaskID: "t", SessionID: "s", Rating: "meh"})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestDeleteFeedbackOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewFeedbackService(client.Client)
	ctx := context.Background()

	for _, taskID := range []string{"task-1", "task-2", "task-3"} {
		require.NoError(t, svc.SubmitFeedback(ctx, "user-1", services.FeedbackRequest{
			TaskID:    taskID,
			SessionID: "session-1",
			Rating:    "up",
		}))
	}

	deleted, err := svc.DeleteFeedbackOlderThan(ctx, time.Now().Add(time.Minute), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	deleted, err = svc.DeleteFeedbackOlderThan(ctx, time.Now(), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}
