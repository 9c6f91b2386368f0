package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/feedback"
)

// FeedbackRequest is one thumbs-up/down submission.
type FeedbackRequest struct {
	TaskID    string `json:"messageId"`
	SessionID string `json:"sessionId"`
	Rating    string `json:"feedbackType"`
	Comment   string `json:"feedbackText,omitempty"`
}

// FeedbackService records user feedback on task responses.
type FeedbackService struct {
	client *ent.Client
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(client *ent.Client) *FeedbackService {
	return &FeedbackService{client: client}
}

// SubmitFeedback stores one rating. A repeat of the same polarity by the
// same user on the same task updates the comment instead of duplicating.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, userID string, req FeedbackRequest) error {
	if req.TaskID == "" {
		return NewValidationError("messageId", "required")
	}
	if req.SessionID == "" {
		return NewValidationError("sessionId", "required")
	}
	if req.Rating != "up" && req.Rating != "down" {
		return NewValidationError("feedbackType", "must be 'up' or 'down'")
	}

	create := s.client.Feedback.Create().
		SetID("feedback-" + uuid.New().String()).
		SetSessionID(req.SessionID).
		SetTaskID(req.TaskID).
		SetUserID(userID).
		SetRating(feedback.Rating(req.Rating)).
		SetCreatedTime(nowMs())
	if req.Comment != "" {
		create.SetComment(req.Comment)
	}

	if err := create.Exec(ctx); err != nil {
		if !ent.IsConstraintError(err) {
			return ClassifyDBError("submit feedback", err)
		}
		update := s.client.Feedback.Update().
			Where(
				feedback.UserID(userID),
				feedback.TaskID(req.TaskID),
				feedback.RatingEQ(feedback.Rating(req.Rating)),
			)
		if req.Comment != "" {
			update.SetComment(req.Comment)
		}
		if err := update.Exec(ctx); err != nil {
			return ClassifyDBError("update feedback", err)
		}
	}
	return nil
}

// DeleteFeedbackOlderThan removes feedback predating cutoff in batches.
func (s *FeedbackService) DeleteFeedbackOlderThan(ctx context.Context, cutoff time.Time, batchSize int) (int, error) {
	cutoffMs := cutoff.UnixMilli()
	total := 0
	for {
		ids, err := s.client.Feedback.Query().
			Where(feedback.CreatedTimeLT(cutoffMs)).
			Limit(batchSize).
			IDs(ctx)
		if err != nil {
			return total, ClassifyDBError("select feedback for deletion", err)
		}
		if len(ids) == 0 {
			return total, nil
		}
		n, err := s.client.Feedback.Delete().
			Where(feedback.IDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return total, ClassifyDBError("delete feedback", err)
		}
		total += n
		if len(ids) < batchSize {
			return total, nil
		}
	}
}
