package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// restError maps service-layer errors to the REST error shape `{detail}`.
func restError(c *echo.Context, err error) error {
	status, detail := classifyError(err)
	return c.JSON(status, map[string]string{"detail": detail})
}

// rpcError maps service-layer errors to a JSON-RPC error envelope. Used on
// /tasks/* and /sse/* paths so A2A clients can consume the failure directly.
func rpcError(c *echo.Context, id string, err error) error {
	status, detail := classifyError(err)

	code := a2a.ErrorCodeInternal
	switch status {
	case http.StatusBadRequest:
		code = a2a.ErrorCodeInvalidRequest
	case http.StatusNotFound:
		code = a2a.ErrorCodeMethodNotFound
	}

	return c.JSON(status, map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error": map[string]any{
			"code":    code,
			"message": detail,
		},
	})
}

// classifyError resolves the HTTP status and user-visible message for a
// service error. Unexpected errors are logged and masked.
func classifyError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}
	if errors.Is(err, services.ErrForbidden) {
		return http.StatusForbidden, "access denied"
	}
	if errors.Is(err, services.ErrUnauthenticated) {
		return http.StatusUnauthorized, "authentication required"
	}
	if errors.Is(err, services.ErrTransientBackend) {
		return http.StatusServiceUnavailable, "temporary backend issue, please retry"
	}
	if errors.Is(err, services.ErrUpstreamUnavailable) {
		return http.StatusServiceUnavailable, "upstream service unavailable"
	}
	if errors.Is(err, services.ErrUpstreamTimeout) {
		return http.StatusGatewayTimeout, "upstream service timed out"
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		return http.StatusConflict, "resource was modified concurrently"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}
