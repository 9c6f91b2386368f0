package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/a2a"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/registry"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
)

// agentCardsHandler handles GET /api/v1/agentCards. Cards the user's scopes
// do not cover are filtered out entirely.
func (s *Server) agentCardsHandler(c *echo.Context) error {
	userID := currentUser(c)
	visible := make([]*a2a.AgentCard, 0)
	for _, card := range s.agents.List() {
		if s.visibility.VisibleCard(userID, card) {
			visible = append(visible, card)
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"cards": visible})
}

// agentModelHandler handles GET /api/v1/agents/:name/model.
func (s *Server) agentModelHandler(c *echo.Context) error {
	card, ok := s.agents.Get(c.Param("name"))
	if !ok {
		return restError(c, services.ErrNotFound)
	}

	model, _ := card.Metadata["model"].(string)
	return c.JSON(http.StatusOK, map[string]any{
		"agentName": card.Name,
		"model":     model,
	})
}

// gatewayCardsHandler handles GET /api/v1/gatewayCards.
func (s *Server) gatewayCardsHandler(c *echo.Context) error {
	entries := s.gateways.List()
	cards := make([]any, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, e.Card)
	}
	return c.JSON(http.StatusOK, map[string]any{"cards": cards})
}

// gatewayHealth is the per-gateway projection of fleet health.
type gatewayHealth struct {
	ID           string `json:"id"`
	GatewayType  string `json:"gatewayType,omitempty"`
	Namespace    string `json:"namespace,omitempty"`
	DeploymentID string `json:"deploymentId,omitempty"`
	Healthy      bool   `json:"healthy"`
	LastSeen     int64  `json:"lastSeen"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// gatewaysHealthHandler handles GET /api/v1/gateways/health.
func (s *Server) gatewaysHealthHandler(c *echo.Context) error {
	ttl, err := parseTTL(c)
	if err != nil {
		return restError(c, err)
	}

	entries := s.gateways.List()
	fleet := make([]gatewayHealth, 0, len(entries))
	healthy := 0
	for _, e := range entries {
		expired, _ := s.gateways.Expiry(e.Card.Name, ttl)
		if !expired {
			healthy++
		}
		fleet = append(fleet, gatewayHealth{
			ID:           e.Card.Name,
			GatewayType:  e.Card.GatewayType(),
			Namespace:    e.Card.Namespace(),
			DeploymentID: e.Card.DeploymentID(),
			Healthy:      !expired,
			LastSeen:     e.LastSeen.UnixMilli(),
			ExpiresAt:    e.LastSeen.Add(ttl).UnixMilli(),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"gateways":     fleet,
		"totalCount":   len(fleet),
		"healthyCount": healthy,
	})
}

// gatewayHealthHandler handles GET /api/v1/gateways/:id/health.
func (s *Server) gatewayHealthHandler(c *echo.Context) error {
	ttl, err := parseTTL(c)
	if err != nil {
		return restError(c, err)
	}

	entry, ok := s.gateways.Get(c.Param("id"))
	if !ok {
		return restError(c, services.ErrNotFound)
	}
	expired, _ := s.gateways.Expiry(c.Param("id"), ttl)

	return c.JSON(http.StatusOK, gatewayHealth{
		ID:           entry.Card.Name,
		GatewayType:  entry.Card.GatewayType(),
		Namespace:    entry.Card.Namespace(),
		DeploymentID: entry.Card.DeploymentID(),
		Healthy:      !expired,
		LastSeen:     entry.LastSeen.UnixMilli(),
		ExpiresAt:    entry.LastSeen.Add(ttl).UnixMilli(),
	})
}

// parseTTL reads the optional ttl query parameter in seconds.
func parseTTL(c *echo.Context) (time.Duration, error) {
	v := c.QueryParam("ttl")
	if v == "" {
		return registry.DefaultGatewayTTL, nil
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds < 1 {
		return 0, services.NewValidationError("ttl", "must be a positive number of seconds")
	}
	return time.Duration(seconds) * time.Second, nil
}
