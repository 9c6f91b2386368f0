// Package api exposes the gateway's REST and SSE surface on /api/v1.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/database"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/dispatch"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/registry"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/scheduler"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/version"
)

// Server is the HTTP server for one gateway instance.
type Server struct {
	echo *echo.Echo
	http *http.Server

	cfg *config.Config
	db  *database.Client

	dispatcher *dispatch.Dispatcher
	sseManager *sse.Manager
	buffer     *sse.PersistentEventBuffer

	sessions *services.SessionService
	tasks    *services.TaskService

	agents   *registry.AgentRegistry
	gateways *registry.GatewayRegistry

	feedback    *services.FeedbackService
	projects    *services.ProjectService
	compression *services.CompressionService
	docconv     *services.DocConversionService
	assistant   *services.TaskBuilderAssistant

	schedStore  *scheduler.Store
	schedEngine *scheduler.Engine

	visibility CardVisibility
}

// NewServer creates the API server with its mandatory collaborators.
// Optional surfaces (feedback, projects, compression, document conversion,
// scheduler, builder assistant) are attached with setters before Start.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	dispatcher *dispatch.Dispatcher,
	sseManager *sse.Manager,
	buffer *sse.PersistentEventBuffer,
	sessions *services.SessionService,
	tasks *services.TaskService,
	agents *registry.AgentRegistry,
	gateways *registry.GatewayRegistry,
) *Server {
	s := &Server{
		cfg:        cfg,
		db:         db,
		dispatcher: dispatcher,
		sseManager: sseManager,
		buffer:     buffer,
		sessions:   sessions,
		tasks:      tasks,
		agents:     agents,
		gateways:   gateways,
		visibility: allowAllCards{},
	}
	s.echo = echo.New()
	s.registerRoutes()
	return s
}

// SetFeedbackService attaches the feedback surface.
func (s *Server) SetFeedbackService(svc *services.FeedbackService) {
	s.feedback = svc
}

// SetProjectService attaches the project surface.
func (s *Server) SetProjectService(svc *services.ProjectService) {
	s.projects = svc
}

// SetCompressionService attaches compress-and-branch.
func (s *Server) SetCompressionService(svc *services.CompressionService) {
	s.compression = svc
}

// SetDocConversionService attaches document conversion.
func (s *Server) SetDocConversionService(svc *services.DocConversionService) {
	s.docconv = svc
}

// SetAssistant attaches the scheduled-task builder assistant.
func (s *Server) SetAssistant(a *services.TaskBuilderAssistant) {
	s.assistant = a
}

// SetCardVisibility attaches a scope-aware card filter for /agentCards.
func (s *Server) SetCardVisibility(v CardVisibility) {
	s.visibility = v
}

// SetScheduler attaches the scheduled-task store and engine.
func (s *Server) SetScheduler(store *scheduler.Store, engine *scheduler.Engine) {
	s.schedStore = store
	s.schedEngine = engine
}

func (s *Server) registerRoutes() {
	s.echo.Use(securityHeaders())

	v1 := s.echo.Group("/api/v1", identity(s.cfg.Auth))

	v1.GET("/health", s.healthHandler)
	v1.GET("/config", s.configHandler)
	v1.GET("/me", s.meHandler)

	// Task dispatch; errors on these paths use the JSON-RPC envelope.
	v1.POST("/tasks/send", s.sendTaskHandler)
	v1.POST("/tasks/subscribe", s.subscribeTaskHandler)
	v1.POST("/tasks/cancel", s.cancelTaskHandler)
	v1.GET("/tasks/background/active", s.activeBackgroundTasksHandler)
	v1.GET("/tasks/:id/status", s.taskStatusHandler)
	v1.GET("/tasks/:id/events", s.taskEventsHandler)
	v1.GET("/sse/subscribe/:taskId", s.sseSubscribeHandler)

	// Sessions & chat history.
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/search", s.searchSessionsHandler)
	v1.POST("/sessions", s.createSessionHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.PATCH("/sessions/:id", s.updateSessionHandler)
	v1.DELETE("/sessions/:id", s.deleteSessionHandler)
	v1.POST("/sessions/:id/chat-tasks", s.saveChatTaskHandler)
	v1.GET("/sessions/:id/chat-tasks", s.listChatTasksHandler)
	v1.GET("/sessions/:id/messages", s.sessionMessagesHandler)
	v1.PATCH("/sessions/:id/project", s.moveSessionHandler)
	v1.POST("/sessions/:id/compress-and-branch", s.compressAndBranchHandler)

	// Projects.
	v1.GET("/projects", s.listProjectsHandler)
	v1.POST("/projects", s.createProjectHandler)
	v1.GET("/projects/:id", s.getProjectHandler)
	v1.PATCH("/projects/:id", s.updateProjectHandler)
	v1.DELETE("/projects/:id", s.deleteProjectHandler)

	// Discovery.
	v1.GET("/agentCards", s.agentCardsHandler)
	v1.GET("/agents/:name/model", s.agentModelHandler)
	v1.GET("/gatewayCards", s.gatewayCardsHandler)
	v1.GET("/gateways/health", s.gatewaysHealthHandler)
	v1.GET("/gateways/:id/health", s.gatewayHealthHandler)

	// Feedback.
	v1.POST("/feedback", s.submitFeedbackHandler)

	// Scheduled tasks.
	v1.POST("/scheduled-tasks", s.createScheduledTaskHandler)
	v1.GET("/scheduled-tasks", s.listScheduledTasksHandler)
	v1.POST("/scheduled-tasks/builder/chat", s.builderChatHandler)
	v1.GET("/scheduled-tasks/:id", s.getScheduledTaskHandler)
	v1.PATCH("/scheduled-tasks/:id", s.updateScheduledTaskHandler)
	v1.DELETE("/scheduled-tasks/:id", s.deleteScheduledTaskHandler)
	v1.POST("/scheduled-tasks/:id/enable", s.enableScheduledTaskHandler)
	v1.POST("/scheduled-tasks/:id/disable", s.disableScheduledTaskHandler)
	v1.POST("/scheduled-tasks/:id/run", s.runScheduledTaskHandler)
	v1.GET("/scheduled-tasks/:id/executions", s.listExecutionsHandler)
	v1.GET("/scheduler/status", s.schedulerStatusHandler)

	// Document conversion.
	v1.POST("/document-conversion/to-pdf", s.convertToPDFHandler)
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// healthHandler handles GET /api/v1/health.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}

// configHandler handles GET /api/v1/config. Flags reflect resolved
// capability: persistence-dependent features are reported off when the
// database is down, regardless of configuration.
func (s *Server) configHandler(c *echo.Context) error {
	flags := *s.cfg.Features

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if _, err := database.Health(ctx, s.db.DB()); err != nil {
		flags.Persistence = false
		flags.Feedback = false
		flags.PromptVersionHistory = false
		flags.Scheduler = false
	}
	return c.JSON(http.StatusOK, flags)
}

// meHandler handles GET /api/v1/me.
func (s *Server) meHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"userId":        currentUser(c),
		"authenticated": s.cfg.Auth.Enabled,
	})
}
