package api

import (
	"encoding/base64"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// submitFeedbackHandler handles POST /api/v1/feedback. Accepted, not
// created: feedback is fire-and-forget from the frontend's view.
func (s *Server) submitFeedbackHandler(c *echo.Context) error {
	if s.feedback == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}

	var req services.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}

	if err := s.feedback.SubmitFeedback(c.Request().Context(), currentUser(c), req); err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}

// convertToPDFHandler handles POST /api/v1/document-conversion/to-pdf.
// Input and output documents travel base64-encoded.
func (s *Server) convertToPDFHandler(c *echo.Context) error {
	if s.docconv == nil {
		return restError(c, services.ErrUpstreamUnavailable)
	}

	var req struct {
		Content   string `json:"content"`
		Extension string `json:"extension"`
	}
	if err := c.Bind(&req); err != nil {
		return restError(c, services.NewValidationError("body", "invalid JSON"))
	}
	if req.Content == "" {
		return restError(c, services.NewValidationError("content", "required"))
	}
	extension := strings.ToLower(strings.TrimPrefix(req.Extension, "."))
	if extension == "" {
		return restError(c, services.NewValidationError("extension", "required"))
	}

	input, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return restError(c, services.NewValidationError("content", "must be base64"))
	}

	pdf, err := s.docconv.ToPDF(c.Request().Context(), input, extension)
	if err != nil {
		return restError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"content":  base64.StdEncoding.EncodeToString(pdf),
		"mimeType": "application/pdf",
	})
}
